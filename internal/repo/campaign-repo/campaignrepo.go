package campaignrepo

import (
	"context"

	"github.com/jackc/pgx/v5"

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

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Campaign, error) {
	query := `
        SELECT id, brand_id, title, description, active, extra_reward_enabled, created_at
        FROM campaigns
        WHERE id = $1
    `
	var campaign domain.Campaign
	err := r.db.QueryRow(ctx, query, id).Scan(
		&campaign.ID, &campaign.BrandID, &campaign.Title, &campaign.Description,
		&campaign.Active, &campaign.ExtraRewardEnabled, &campaign.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find campaign", zap.Error(err))
		return nil, err
	}
	return &campaign, nil
}

func (r *Repository) FindActive(ctx context.Context) ([]domain.Campaign, error) {
	query := `
        SELECT id, brand_id, title, description, active, extra_reward_enabled, created_at
        FROM campaigns
        WHERE active = TRUE
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get active campaigns", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var campaigns []domain.Campaign
	for rows.Next() {
		var campaign domain.Campaign
		err := rows.Scan(
			&campaign.ID, &campaign.BrandID, &campaign.Title, &campaign.Description,
			&campaign.Active, &campaign.ExtraRewardEnabled, &campaign.CreatedAt,
		)
		if err != nil {
			zap.L().Error("can't scan campaign row", zap.Error(err))
			return nil, err
		}
		campaigns = append(campaigns, campaign)
	}
	return campaigns, nil
}

func (r *Repository) FindBrandByID(ctx context.Context, id int) (*domain.Brand, error) {
	query := `
        SELECT id, name, description, address, latitude, longitude, phone, instagram, website
        FROM brands
        WHERE id = $1
    `
	var brand domain.Brand
	err := r.db.QueryRow(ctx, query, id).Scan(
		&brand.ID, &brand.Name, &brand.Description, &brand.Address,
		&brand.Latitude, &brand.Longitude, &brand.Phone, &brand.Instagram, &brand.Website,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find brand", zap.Error(err))
		return nil, err
	}
	return &brand, nil
}

func (r *Repository) CountActive(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM campaigns WHERE active = TRUE`).Scan(&count)
	if err != nil {
		zap.L().Error("can't count active campaigns", zap.Error(err))
		return 0, err
	}
	return count, nil
}
