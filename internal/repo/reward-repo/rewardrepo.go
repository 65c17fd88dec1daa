package rewardrepo

import (
	"context"
	"time"

	"github.com/tripkoin/cityguide/internal/domain"
	"github.com/tripkoin/cityguide/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) CreateTransaction(ctx context.Context, txn *domain.RewardTransaction) (*domain.RewardTransaction, error) {
	query := `
		INSERT INTO reward_transactions (user_id, campaign_id, type, coins, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, txn.UserID, txn.CampaignID, txn.Type, txn.Coins, txn.CreatedAt).Scan(&txn.ID)
	if err != nil {
		zap.L().Error("can't save reward transaction", zap.Error(err))
		return nil, err
	}
	return txn, nil
}

func (r *Repository) CreateQREvent(ctx context.Context, event *domain.QREvent) (*domain.QREvent, error) {
	query := `
		INSERT INTO qr_events (campaign_id, user_id, ip, device_id, scanned_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, event.CampaignID, event.UserID, event.IP, event.DeviceID, event.ScannedAt).Scan(&event.ID)
	if err != nil {
		zap.L().Error("can't save qr event", zap.Error(err))
		return nil, err
	}
	return event, nil
}

// SumCoins totals the coins a user earned in [from, to). A nil claimType
// sums across all claim types.
func (r *Repository) SumCoins(ctx context.Context, userID int, claimType *domain.ClaimType, from, to time.Time) (int, error) {
	var sum int
	var err error
	if claimType != nil {
		query := `
            SELECT COALESCE(SUM(coins), 0)
            FROM reward_transactions
            WHERE user_id = $1 AND type = $2 AND created_at >= $3 AND created_at < $4
        `
		err = r.db.QueryRow(ctx, query, userID, *claimType, from, to).Scan(&sum)
	} else {
		query := `
            SELECT COALESCE(SUM(coins), 0)
            FROM reward_transactions
            WHERE user_id = $1 AND created_at >= $2 AND created_at < $3
        `
		err = r.db.QueryRow(ctx, query, userID, from, to).Scan(&sum)
	}
	if err != nil {
		zap.L().Error("can't sum reward transactions", zap.Error(err))
		return 0, err
	}
	return sum, nil
}

// HasClaim reports whether the user already has a transaction for this
// campaign and type in [from, to).
func (r *Repository) HasClaim(ctx context.Context, userID int, claimType domain.ClaimType, campaignID int, from, to time.Time) (bool, error) {
	query := `
        SELECT EXISTS (
            SELECT 1
            FROM reward_transactions
            WHERE user_id = $1 AND type = $2 AND campaign_id = $3 AND created_at >= $4 AND created_at < $5
        )
    `
	var exists bool
	err := r.db.QueryRow(ctx, query, userID, claimType, campaignID, from, to).Scan(&exists)
	if err != nil {
		zap.L().Error("can't check for existing claim", zap.Error(err))
		return false, err
	}
	return exists, nil
}

func (r *Repository) FindTransactionsByUserID(ctx context.Context, userID int) ([]domain.RewardTransaction, error) {
	query := `
        SELECT id, user_id, campaign_id, type, coins, created_at
        FROM reward_transactions
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get reward transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.RewardTransaction
	for rows.Next() {
		var txn domain.RewardTransaction
		err := rows.Scan(&txn.ID, &txn.UserID, &txn.CampaignID, &txn.Type, &txn.Coins, &txn.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan reward transaction row", zap.Error(err))
			return nil, err
		}
		transactions = append(transactions, txn)
	}
	return transactions, nil
}

func (r *Repository) CountQREvents(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM qr_events`).Scan(&count)
	if err != nil {
		zap.L().Error("can't count qr events", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) TotalCoinsGranted(ctx context.Context) (int, error) {
	var sum int
	err := r.db.QueryRow(ctx, `SELECT COALESCE(SUM(coins), 0) FROM reward_transactions`).Scan(&sum)
	if err != nil {
		zap.L().Error("can't total granted coins", zap.Error(err))
		return 0, err
	}
	return sum, nil
}
