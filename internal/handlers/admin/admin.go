package admin

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/tripkoin/cityguide/internal/domain"
	"github.com/tripkoin/cityguide/internal/dto"
	rewardservice "github.com/tripkoin/cityguide/internal/service/rewardservice"
	statsservice "github.com/tripkoin/cityguide/internal/service/statsservice"
	"github.com/tripkoin/cityguide/pkg/utils"
)

type StatsService interface {
	Collect(ctx context.Context) (*statsservice.Stats, error)
}

type GrantService interface {
	ClaimReward(ctx context.Context, userID, campaignID int, claimType domain.ClaimType, minCoins, maxCoins int) (int, error)
}

type AdminHandler struct {
	statsService StatsService
	grantService GrantService
}

func New(statsService StatsService, grantService GrantService) *AdminHandler {
	return &AdminHandler{
		statsService: statsService,
		grantService: grantService,
	}
}

// GetStats godoc
//
//	@Summary		Get dashboard counters
//	@Description	Retrieve aggregate user, scan, coin and campaign counters for the admin dashboard
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.StatsResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin role required"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/stats [get]
func (h *AdminHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsService.Collect(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.StatsResponseDTO{
		Users:           stats.Users,
		QRScans:         stats.QRScans,
		CoinsGranted:    stats.CoinsGranted,
		ActiveCampaigns: stats.ActiveCampaigns,
	})
}

// GrantCoins godoc
//
//	@Summary		Grant coins to a user
//	@Description	Credit a fixed amount of coins to a user through the reward ledger; the daily limit still applies
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.GrantCoinsRequestDTO	true	"Grant request body"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.GrantCoinsResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin role required"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/grant [post]
func (h *AdminHandler) GrantCoins(w http.ResponseWriter, r *http.Request) {
	var req dto.GrantCoinsRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.UserID <= 0 || req.Coins <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "userId and coins must be positive")
		return
	}

	coins, err := h.grantService.ClaimReward(r.Context(), req.UserID, 0, domain.ClaimTypeAdmin, req.Coins, req.Coins)
	if err != nil {
		switch {
		case errors.Is(err, rewardservice.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, rewardservice.ErrDailyLimitReached):
			utils.RespondWithJSON(w, http.StatusOK, dto.GrantCoinsResponseDTO{
				Success: false,
				Message: err.Error(),
			})
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.GrantCoinsResponseDTO{
		Success: true,
		Coins:   coins,
		Message: fmt.Sprintf("Granted %d coins", coins),
	})
}
