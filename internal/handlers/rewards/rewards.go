package rewards

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/tripkoin/cityguide/internal/config"
	"github.com/tripkoin/cityguide/internal/domain"
	"github.com/tripkoin/cityguide/internal/dto"
	rewardservice "github.com/tripkoin/cityguide/internal/service/rewardservice"
	"github.com/tripkoin/cityguide/pkg/auth"
	"github.com/tripkoin/cityguide/pkg/utils"
)

type Service interface {
	ClaimReward(ctx context.Context, userID, campaignID int, claimType domain.ClaimType, minCoins, maxCoins int) (int, error)
	GetBalance(ctx context.Context, userID int) (total, today int, err error)
	GetTransactions(ctx context.Context, userID int) ([]domain.RewardTransaction, error)
}

type RewardHandler struct {
	rewardService Service
	cfg           *config.Config
}

func New(rewardService Service, cfg *config.Config) *RewardHandler {
	return &RewardHandler{
		rewardService: rewardService,
		cfg:           cfg,
	}
}

// coinRange maps a claim type to its configured payout bounds.
func (h *RewardHandler) coinRange(claimType domain.ClaimType) (int, int, bool) {
	switch claimType {
	case domain.ClaimTypeQR:
		return h.cfg.QRMinCoins, h.cfg.QRMaxCoins, true
	case domain.ClaimTypeInstagram:
		return h.cfg.InstagramMinCoins, h.cfg.InstagramMaxCoins, true
	}
	return 0, 0, false
}

// ClaimReward godoc
//
//	@Summary		Claim a campaign reward
//	@Description	Credit a randomized coin reward for a QR scan or an Instagram story, subject to the daily limit and one claim per campaign per day.
//	@Tags			Rewards
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.ClaimRewardRequestDTO	true	"Claim request body"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.ClaimRewardResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body or claim type"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/rewards/claim [post]
func (h *RewardHandler) ClaimReward(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.ClaimRewardRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	claimType := domain.ClaimType(req.Type)
	minCoins, maxCoins, ok := h.coinRange(claimType)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid claim type")
		return
	}

	coins, err := h.rewardService.ClaimReward(r.Context(), userID, req.CampaignID, claimType, minCoins, maxCoins)
	if err != nil {
		switch {
		// Expected rejections are part of the normal claim flow; the client
		// shows them as a toast, not an error screen.
		case errors.Is(err, rewardservice.ErrDailyLimitReached),
			errors.Is(err, rewardservice.ErrDuplicateClaim),
			errors.Is(err, rewardservice.ErrCampaignInactive),
			errors.Is(err, rewardservice.ErrExtraRewardDisabled):
			utils.RespondWithJSON(w, http.StatusOK, dto.ClaimRewardResponseDTO{
				Success: false,
				Message: err.Error(),
			})
		case errors.Is(err, rewardservice.ErrCampaignRequired),
			errors.Is(err, rewardservice.ErrInvalidClaimType),
			errors.Is(err, rewardservice.ErrInvalidCoinRange):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, rewardservice.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusUnauthorized, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.ClaimRewardResponseDTO{
		Success: true,
		Coins:   coins,
		Message: fmt.Sprintf("You earned %d coins!", coins),
	})
}

// GetBalance godoc
//
//	@Summary		Get coin balance
//	@Description	Retrieve the lifetime coin total and the amount earned today for the authorized user
//	@Tags			Rewards
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.BalanceResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/rewards/balance [get]
func (h *RewardHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	total, today, err := h.rewardService.GetBalance(r.Context(), userID)
	if err != nil {
		if errors.Is(err, rewardservice.ErrUserNotFound) {
			utils.RespondWithError(w, http.StatusUnauthorized, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		TotalCoins: total,
		DailyCoins: today,
		DailyLimit: h.cfg.DailyCoinLimit,
	})
}

// GetTransactions godoc
//
//	@Summary		Get reward history
//	@Description	Retrieve the reward ledger entries for the authorized user, newest first
//	@Tags			Rewards
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.TransactionResponseDTO
//	@Failure		204	{object}	utils.Response	"No data available"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/rewards/transactions [get]
func (h *RewardHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	transactions, err := h.rewardService.GetTransactions(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if len(transactions) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No data available")
		return
	}

	var response []dto.TransactionResponseDTO
	for _, txn := range transactions {
		response = append(response, dto.TransactionResponseDTO{
			ID:         txn.ID,
			CampaignID: txn.CampaignID,
			Type:       string(txn.Type),
			Coins:      txn.Coins,
			CreatedAt:  txn.CreatedAt,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
