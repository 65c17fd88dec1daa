package userrepo

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

func (r *Repository) FindByLogin(ctx context.Context, login string) (*domain.User, error) {
	query := `
        SELECT id, login, password_hash, role, total_coins, daily_coins, preferred_area, created_at
        FROM users
        WHERE login = $1
    `
	var user domain.User
	err := r.db.QueryRow(ctx, query, login).Scan(
		&user.ID, &user.Login, &user.PasswordHash, &user.Role,
		&user.TotalCoins, &user.DailyCoins, &user.PreferredArea, &user.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.User, error) {
	query := `
        SELECT id, login, password_hash, role, total_coins, daily_coins, preferred_area, created_at
        FROM users
        WHERE id = $1
    `
	return r.findOne(ctx, query, id)
}

// FindByIDForUpdate locks the user row for the duration of the surrounding
// transaction, serializing concurrent claims for the same user.
func (r *Repository) FindByIDForUpdate(ctx context.Context, id int) (*domain.User, error) {
	query := `
        SELECT id, login, password_hash, role, total_coins, daily_coins, preferred_area, created_at
        FROM users
        WHERE id = $1
        FOR UPDATE
    `
	return r.findOne(ctx, query, id)
}

func (r *Repository) findOne(ctx context.Context, query string, id int) (*domain.User, error) {
	var user domain.User
	err := r.db.QueryRow(ctx, query, id).Scan(
		&user.ID, &user.Login, &user.PasswordHash, &user.Role,
		&user.TotalCoins, &user.DailyCoins, &user.PreferredArea, &user.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (r *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
        INSERT INTO users (login, password_hash, role, total_coins, daily_coins, preferred_area)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query,
		user.Login, user.PasswordHash, user.Role,
		user.TotalCoins, user.DailyCoins, user.PreferredArea,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

// AddCoins increments both coin counters in a single statement.
func (r *Repository) AddCoins(ctx context.Context, id int, coins int) error {
	query := `
        UPDATE users
        SET total_coins = total_coins + $1, daily_coins = daily_coins + $1
        WHERE id = $2
    `
	_, err := r.db.Exec(ctx, query, coins, id)
	if err != nil {
		zap.L().Error("can't add coins to user", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count)
	if err != nil {
		zap.L().Error("can't count users", zap.Error(err))
		return 0, err
	}
	return count, nil
}

// ResetDailyCoins zeroes the cached per-day counter for every user and
// returns the number of affected rows.
func (r *Repository) ResetDailyCoins(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, `UPDATE users SET daily_coins = 0 WHERE daily_coins <> 0`)
	if err != nil {
		zap.L().Error("can't reset daily coins", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}
