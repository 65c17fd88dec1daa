package dto

import "time"

type ClaimRewardRequestDTO struct {
	CampaignID int    `json:"campaignId" example:"12"`
	Type       string `json:"type" example:"QR"`
}

// ClaimRewardResponseDTO is returned with HTTP 200 even when the claim is
// rejected; Success distinguishes the two outcomes.
type ClaimRewardResponseDTO struct {
	Success bool   `json:"success" example:"true"`
	Coins   int    `json:"coins" example:"25"`
	Message string `json:"message" example:"You earned 25 coins!"`
}

type BalanceResponseDTO struct {
	TotalCoins int `json:"totalCoins" example:"320"`
	DailyCoins int `json:"dailyCoins" example:"45"`
	DailyLimit int `json:"dailyLimit" example:"200"`
}

type TransactionResponseDTO struct {
	ID         int       `json:"id" example:"101"`
	CampaignID *int      `json:"campaignId,omitempty" example:"12"`
	Type       string    `json:"type" example:"QR"`
	Coins      int       `json:"coins" example:"25"`
	CreatedAt  time.Time `json:"createdAt" example:"2024-06-15T10:30:00Z"`
}
