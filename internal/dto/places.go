package dto

type PlaceResponseDTO struct {
	ID            int      `json:"id" example:"3"`
	Name          string   `json:"name" example:"Napier Museum"`
	Category      string   `json:"category" example:"culture"`
	Area          string   `json:"area" example:"Palayam"`
	Description   string   `json:"description,omitempty"`
	Latitude      *float64 `json:"latitude,omitempty" example:"8.5088"`
	Longitude     *float64 `json:"longitude,omitempty" example:"76.9514"`
	Address       string   `json:"address,omitempty"`
	Phone         string   `json:"phone,omitempty"`
	Timing        string   `json:"timing,omitempty"`
	DistanceKm    *float64 `json:"distanceKm,omitempty" example:"2.1"`
	DistanceLabel string   `json:"distanceLabel,omitempty" example:"2.1 km"`
	WalkingETA    string   `json:"walkingEta,omitempty" example:"25 min"`
}
