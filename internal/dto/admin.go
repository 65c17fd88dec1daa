package dto

type StatsResponseDTO struct {
	Users           int `json:"users" example:"42"`
	QRScans         int `json:"qrScans" example:"310"`
	CoinsGranted    int `json:"coinsGranted" example:"8150"`
	ActiveCampaigns int `json:"activeCampaigns" example:"3"`
}

type GrantCoinsRequestDTO struct {
	UserID int `json:"userId" example:"1"`
	Coins  int `json:"coins" example:"50"`
}

type GrantCoinsResponseDTO struct {
	Success bool   `json:"success" example:"true"`
	Coins   int    `json:"coins" example:"50"`
	Message string `json:"message" example:"Granted 50 coins"`
}
