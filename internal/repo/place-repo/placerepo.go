package placerepo

import (
	"context"

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

func (r *Repository) FindAll(ctx context.Context) ([]domain.Place, error) {
	query := `
        SELECT id, name, category, area, description, latitude, longitude, address, phone, timing
        FROM places
        ORDER BY name ASC
    `
	return r.find(ctx, query)
}

func (r *Repository) FindByCategory(ctx context.Context, category string) ([]domain.Place, error) {
	query := `
        SELECT id, name, category, area, description, latitude, longitude, address, phone, timing
        FROM places
        WHERE category = $1
        ORDER BY name ASC
    `
	return r.find(ctx, query, category)
}

func (r *Repository) find(ctx context.Context, query string, args ...any) ([]domain.Place, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get places", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var places []domain.Place
	for rows.Next() {
		var place domain.Place
		err := rows.Scan(
			&place.ID, &place.Name, &place.Category, &place.Area, &place.Description,
			&place.Latitude, &place.Longitude, &place.Address, &place.Phone, &place.Timing,
		)
		if err != nil {
			zap.L().Error("can't scan place row", zap.Error(err))
			return nil, err
		}
		places = append(places, place)
	}
	return places, nil
}
