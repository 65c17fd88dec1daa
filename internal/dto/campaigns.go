package dto

type CampaignResponseDTO struct {
	ID                 int    `json:"id" example:"12"`
	BrandID            int    `json:"brandId" example:"7"`
	Title              string `json:"title" example:"Scan and win"`
	Description        string `json:"description,omitempty"`
	Active             bool   `json:"active" example:"true"`
	ExtraRewardEnabled bool   `json:"extraRewardEnabled" example:"false"`
}

type BrandResponseDTO struct {
	ID        int    `json:"id" example:"7"`
	Name      string `json:"name" example:"Chai Corner"`
	Address   string `json:"address,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Website   string `json:"website,omitempty"`
}

type CampaignDetailResponseDTO struct {
	CampaignResponseDTO
	Brand *BrandResponseDTO `json:"brand,omitempty"`
}
