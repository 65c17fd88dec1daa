package rewardservice

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"

	"github.com/tripkoin/cityguide/internal/config"
	"github.com/tripkoin/cityguide/internal/domain"
	"github.com/tripkoin/cityguide/internal/pg"
	"go.uber.org/zap"
)

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
	FindByIDForUpdate(ctx context.Context, id int) (*domain.User, error)
	AddCoins(ctx context.Context, id int, coins int) error
}

type RewardRepo interface {
	CreateTransaction(ctx context.Context, txn *domain.RewardTransaction) (*domain.RewardTransaction, error)
	CreateQREvent(ctx context.Context, event *domain.QREvent) (*domain.QREvent, error)
	SumCoins(ctx context.Context, userID int, claimType *domain.ClaimType, from, to time.Time) (int, error)
	HasClaim(ctx context.Context, userID int, claimType domain.ClaimType, campaignID int, from, to time.Time) (bool, error)
	FindTransactionsByUserID(ctx context.Context, userID int) ([]domain.RewardTransaction, error)
}

type CampaignRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Campaign, error)
}

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrDailyLimitReached   = errors.New("daily coin limit reached")
	ErrDuplicateClaim      = errors.New("reward already claimed today")
	ErrCampaignRequired    = errors.New("campaign required for this claim type")
	ErrCampaignInactive    = errors.New("campaign is not active")
	ErrExtraRewardDisabled = errors.New("extra reward is not enabled for this campaign")
	ErrInvalidClaimType    = errors.New("invalid claim type")
	ErrInvalidCoinRange    = errors.New("invalid coin range")
)

// storageTimeout bounds every claim so a stalled storage call cannot hang
// the caller indefinitely.
const storageTimeout = 5 * time.Second

type Service struct {
	userRepo     UserRepo
	rewardRepo   RewardRepo
	campaignRepo CampaignRepo
	txManager    pg.TXManager

	dailyLimit int
	perTypeCap bool
	loc        *time.Location

	now  func() time.Time
	intn func(n int) int
}

func New(userRepo UserRepo, rewardRepo RewardRepo, campaignRepo CampaignRepo, txManager pg.TXManager, cfg *config.Config) *Service {
	return &Service{
		userRepo:     userRepo,
		rewardRepo:   rewardRepo,
		campaignRepo: campaignRepo,
		txManager:    txManager,
		dailyLimit:   cfg.DailyCoinLimit,
		perTypeCap:   cfg.DailyCapPerType,
		loc:          cfg.Location(),
		now:          time.Now,
		intn:         rand.IntN,
	}
}

// ClaimReward decides whether the user may earn coins for the given campaign
// and claim type, draws a payout in [minCoins, maxCoins] clamped to the
// remaining daily capacity, and persists the transaction, the coin balance
// update and the QR scan event in a single database transaction. The user
// row is locked first, so concurrent claims for one user serialize and the
// daily cap holds.
func (s *Service) ClaimReward(ctx context.Context, userID, campaignID int, claimType domain.ClaimType, minCoins, maxCoins int) (int, error) {
	if !claimType.Valid() {
		return 0, ErrInvalidClaimType
	}
	if minCoins <= 0 || maxCoins < minCoins {
		return 0, ErrInvalidCoinRange
	}
	if campaignID <= 0 && claimType != domain.ClaimTypeAdmin {
		return 0, ErrCampaignRequired
	}

	ctx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()

	var coins int
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		user, err := s.userRepo.FindByIDForUpdate(ctx, userID)
		if err != nil {
			zap.L().Error("failed to get user for claim", zap.Error(err))
			return err
		}
		if user == nil {
			return ErrUserNotFound
		}

		if campaignID > 0 {
			campaign, err := s.campaignRepo.FindByID(ctx, campaignID)
			if err != nil {
				zap.L().Error("failed to get campaign for claim", zap.Error(err))
				return err
			}
			if campaign == nil || !campaign.Active {
				return ErrCampaignInactive
			}
			if claimType == domain.ClaimTypeInstagram && !campaign.ExtraRewardEnabled {
				return ErrExtraRewardDisabled
			}
		}

		from, to := s.dayBounds()

		var typeFilter *domain.ClaimType
		if s.perTypeCap {
			typeFilter = &claimType
		}
		earned, err := s.rewardRepo.SumCoins(ctx, userID, typeFilter, from, to)
		if err != nil {
			zap.L().Error("failed to sum today's coins", zap.Error(err))
			return err
		}
		if earned >= s.dailyLimit {
			return ErrDailyLimitReached
		}

		if campaignID > 0 {
			claimed, err := s.rewardRepo.HasClaim(ctx, userID, claimType, campaignID, from, to)
			if err != nil {
				zap.L().Error("failed to check for duplicate claim", zap.Error(err))
				return err
			}
			if claimed {
				return ErrDuplicateClaim
			}
		}

		amount := s.intn(maxCoins-minCoins+1) + minCoins
		if remaining := s.dailyLimit - earned; amount > remaining {
			amount = remaining
		}
		if amount <= 0 {
			return ErrDailyLimitReached
		}

		now := s.now()
		txn := &domain.RewardTransaction{
			UserID:    userID,
			Type:      claimType,
			Coins:     amount,
			CreatedAt: now,
		}
		if campaignID > 0 {
			id := campaignID
			txn.CampaignID = &id
		}
		if _, err := s.rewardRepo.CreateTransaction(ctx, txn); err != nil {
			zap.L().Error("failed to create reward transaction", zap.Error(err))
			return err
		}
		if err := s.userRepo.AddCoins(ctx, userID, amount); err != nil {
			zap.L().Error("failed to update user coins", zap.Error(err))
			return err
		}
		if claimType == domain.ClaimTypeQR {
			event := &domain.QREvent{
				CampaignID: campaignID,
				UserID:     userID,
				ScannedAt:  now,
			}
			if _, err := s.rewardRepo.CreateQREvent(ctx, event); err != nil {
				zap.L().Error("failed to record qr event", zap.Error(err))
				return err
			}
		}

		coins = amount
		return nil
	})
	if err != nil {
		return 0, err
	}

	zap.L().Info("reward claimed",
		zap.Int("userID", userID),
		zap.Int("campaignID", campaignID),
		zap.String("type", string(claimType)),
		zap.Int("coins", coins),
	)
	return coins, nil
}

// GetBalance returns the user's cumulative coins and the coins earned during
// the current calendar day. The daily figure is derived from the ledger
// rather than the cached counter.
func (s *Service) GetBalance(ctx context.Context, userID int) (total, today int, err error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get user", zap.Error(err))
		return 0, 0, err
	}
	if user == nil {
		return 0, 0, ErrUserNotFound
	}

	from, to := s.dayBounds()
	today, err = s.rewardRepo.SumCoins(ctx, userID, nil, from, to)
	if err != nil {
		zap.L().Error("failed to sum today's coins", zap.Error(err))
		return 0, 0, err
	}
	return user.TotalCoins, today, nil
}

func (s *Service) GetTransactions(ctx context.Context, userID int) ([]domain.RewardTransaction, error) {
	transactions, err := s.rewardRepo.FindTransactionsByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch reward transactions", zap.Error(err))
		return nil, err
	}
	return transactions, nil
}

// dayBounds returns the half-open interval [from, to) of the current
// calendar day in the configured time zone.
func (s *Service) dayBounds() (time.Time, time.Time) {
	year, month, day := s.now().In(s.loc).Date()
	from := time.Date(year, month, day, 0, 0, 0, 0, s.loc)
	return from, from.AddDate(0, 0, 1)
}
