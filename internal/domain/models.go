package domain

import "time"

type ClaimType string

const (
	ClaimTypeQR        ClaimType = "QR"
	ClaimTypeInstagram ClaimType = "INSTAGRAM"
	ClaimTypeAdmin     ClaimType = "ADMIN"
)

func (t ClaimType) Valid() bool {
	switch t {
	case ClaimTypeQR, ClaimTypeInstagram, ClaimTypeAdmin:
		return true
	}
	return false
}

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID            int       `db:"id"`
	Login         string    `db:"login"`
	PasswordHash  string    `db:"password_hash"`
	Role          string    `db:"role"`
	TotalCoins    int       `db:"total_coins"`
	DailyCoins    int       `db:"daily_coins"`
	PreferredArea string    `db:"preferred_area"`
	CreatedAt     time.Time `db:"created_at"`
}

type Brand struct {
	ID          int     `db:"id"`
	Name        string  `db:"name"`
	Description string  `db:"description"`
	Address     string  `db:"address"`
	Latitude    float64 `db:"latitude"`
	Longitude   float64 `db:"longitude"`
	Phone       string  `db:"phone"`
	Instagram   string  `db:"instagram"`
	Website     string  `db:"website"`
}

type Campaign struct {
	ID                 int       `db:"id"`
	BrandID            int       `db:"brand_id"`
	Title              string    `db:"title"`
	Description        string    `db:"description"`
	Active             bool      `db:"active"`
	ExtraRewardEnabled bool      `db:"extra_reward_enabled"`
	CreatedAt          time.Time `db:"created_at"`
}

type Place struct {
	ID          int      `db:"id"`
	Name        string   `db:"name"`
	Category    string   `db:"category"`
	Area        string   `db:"area"`
	Description string   `db:"description"`
	Latitude    *float64 `db:"latitude"`
	Longitude   *float64 `db:"longitude"`
	Address     string   `db:"address"`
	Phone       string   `db:"phone"`
	Timing      string   `db:"timing"`
}

// RewardTransaction is an append-only ledger entry; rows are never updated
// or deleted once written.
type RewardTransaction struct {
	ID         int       `db:"id"`
	UserID     int       `db:"user_id"`
	CampaignID *int      `db:"campaign_id"`
	Type       ClaimType `db:"type"`
	Coins      int       `db:"coins"`
	CreatedAt  time.Time `db:"created_at"`
}

type QREvent struct {
	ID         int       `db:"id"`
	CampaignID int       `db:"campaign_id"`
	UserID     int       `db:"user_id"`
	IP         string    `db:"ip"`
	DeviceID   string    `db:"device_id"`
	ScannedAt  time.Time `db:"scanned_at"`
}
