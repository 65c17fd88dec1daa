package campaigns

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/tripkoin/cityguide/internal/domain"
	"github.com/tripkoin/cityguide/internal/dto"
	campaignservice "github.com/tripkoin/cityguide/internal/service/campaignservice"
	"github.com/tripkoin/cityguide/pkg/utils"
)

type Service interface {
	ListActive(ctx context.Context) ([]domain.Campaign, error)
	Get(ctx context.Context, id int) (*campaignservice.CampaignWithBrand, error)
}

type CampaignHandler struct {
	campaignService Service
}

func New(campaignService Service) *CampaignHandler {
	return &CampaignHandler{
		campaignService: campaignService,
	}
}

// GetCampaigns godoc
//
//	@Summary		List active campaigns
//	@Description	Retrieve the campaigns currently open for reward claims
//	@Tags			Campaigns
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.CampaignResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/campaigns [get]
func (h *CampaignHandler) GetCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.campaignService.ListActive(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.CampaignResponseDTO, 0, len(campaigns))
	for _, campaign := range campaigns {
		response = append(response, dto.CampaignResponseDTO{
			ID:                 campaign.ID,
			BrandID:            campaign.BrandID,
			Title:              campaign.Title,
			Description:        campaign.Description,
			Active:             campaign.Active,
			ExtraRewardEnabled: campaign.ExtraRewardEnabled,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetCampaign godoc
//
//	@Summary		Get campaign details
//	@Description	Retrieve a campaign together with its brand
//	@Tags			Campaigns
//	@Produce		json
//	@Param			id	path	int	true	"Campaign ID"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.CampaignDetailResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid campaign ID"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Campaign not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/campaigns/{id} [get]
func (h *CampaignHandler) GetCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid campaign ID")
		return
	}

	result, err := h.campaignService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, campaignservice.ErrCampaignNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := dto.CampaignDetailResponseDTO{
		CampaignResponseDTO: dto.CampaignResponseDTO{
			ID:                 result.ID,
			BrandID:            result.BrandID,
			Title:              result.Title,
			Description:        result.Description,
			Active:             result.Active,
			ExtraRewardEnabled: result.ExtraRewardEnabled,
		},
	}
	if result.Brand != nil {
		response.Brand = &dto.BrandResponseDTO{
			ID:        result.Brand.ID,
			Name:      result.Brand.Name,
			Address:   result.Brand.Address,
			Phone:     result.Brand.Phone,
			Instagram: result.Brand.Instagram,
			Website:   result.Brand.Website,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
