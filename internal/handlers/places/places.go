package places

import (
	"context"
	"net/http"
	"strconv"

	"github.com/tripkoin/cityguide/internal/dto"
	placeservice "github.com/tripkoin/cityguide/internal/service/placeservice"
	"github.com/tripkoin/cityguide/pkg/geo"
	"github.com/tripkoin/cityguide/pkg/utils"
)

type Service interface {
	List(ctx context.Context, category string, originLat, originLon *float64) ([]placeservice.RankedPlace, error)
}

type PlaceHandler struct {
	placeService Service
}

func New(placeService Service) *PlaceHandler {
	return &PlaceHandler{
		placeService: placeService,
	}
}

// GetPlaces godoc
//
//	@Summary		List city places
//	@Description	Retrieve places, optionally filtered by category and ranked by distance from the given coordinates
//	@Tags			Places
//	@Produce		json
//	@Param			category	query	string	false	"Category filter"
//	@Param			lat			query	number	false	"Origin latitude"
//	@Param			lon			query	number	false	"Origin longitude"
//	@Security		BearerAuth
//	@Success		200	{array}		dto.PlaceResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid coordinates"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/places [get]
func (h *PlaceHandler) GetPlaces(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	lat, err := parseCoord(query.Get("lat"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid lat parameter")
		return
	}
	lon, err := parseCoord(query.Get("lon"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid lon parameter")
		return
	}
	// Ranking needs both coordinates; a single one is a client mistake.
	if (lat == nil) != (lon == nil) {
		utils.RespondWithError(w, http.StatusBadRequest, "Both lat and lon are required for ranking")
		return
	}

	ranked, err := h.placeService.List(r.Context(), query.Get("category"), lat, lon)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.PlaceResponseDTO, 0, len(ranked))
	for _, place := range ranked {
		item := dto.PlaceResponseDTO{
			ID:          place.ID,
			Name:        place.Name,
			Category:    place.Category,
			Area:        place.Area,
			Description: place.Description,
			Latitude:    place.Latitude,
			Longitude:   place.Longitude,
			Address:     place.Address,
			Phone:       place.Phone,
			Timing:      place.Timing,
			DistanceKm:  place.DistanceKm,
		}
		if place.DistanceKm != nil {
			item.DistanceLabel = geo.FormatDistance(*place.DistanceKm)
			item.WalkingETA = geo.ETA(*place.DistanceKm)
		}
		response = append(response, item)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func parseCoord(raw string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
