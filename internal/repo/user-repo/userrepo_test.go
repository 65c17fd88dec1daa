package userrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/tripkoin/cityguide/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

var userColumns = []string{"id", "login", "password_hash", "role", "total_coins", "daily_coins", "preferred_area", "created_at"}

func TestRepository_FindByLogin(t *testing.T) {
	repo, mock := NewMock(t)

	createdAt := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		login     string
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name:  "User found",
			login: "visitor@example.com",
			mockSetup: func() {
				rows := pgxmock.NewRows(userColumns).
					AddRow(1, "visitor@example.com", "hashed_password", "user", 320, 45, "Palayam", createdAt)
				mock.ExpectQuery(regexp.QuoteMeta("WHERE login = $1")).
					WithArgs("visitor@example.com").
					WillReturnRows(rows)
			},
			result: &domain.User{
				ID:            1,
				Login:         "visitor@example.com",
				PasswordHash:  "hashed_password",
				Role:          "user",
				TotalCoins:    320,
				DailyCoins:    45,
				PreferredArea: "Palayam",
				CreatedAt:     createdAt,
			},
		},
		{
			name:  "User not found",
			login: "nobody@example.com",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE login = $1")).
					WithArgs("nobody@example.com").
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name:  "Database error",
			login: "visitor@example.com",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE login = $1")).
					WithArgs("visitor@example.com").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByLogin(context.Background(), tt.login)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_FindByIDForUpdate(t *testing.T) {
	repo, mock := NewMock(t)

	createdAt := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		id        int
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name: "User found and locked",
			id:   1,
			mockSetup: func() {
				rows := pgxmock.NewRows(userColumns).
					AddRow(1, "visitor@example.com", "hashed_password", "user", 320, 45, "", createdAt)
				mock.ExpectQuery("FOR UPDATE").
					WithArgs(1).
					WillReturnRows(rows)
			},
			result: &domain.User{
				ID:           1,
				Login:        "visitor@example.com",
				PasswordHash: "hashed_password",
				Role:         "user",
				TotalCoins:   320,
				DailyCoins:   45,
				CreatedAt:    createdAt,
			},
		},
		{
			name: "User not found",
			id:   99,
			mockSetup: func() {
				mock.ExpectQuery("FOR UPDATE").
					WithArgs(99).
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByIDForUpdate(context.Background(), tt.id)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	createdAt := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		user      *domain.User
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Create user successfully",
			user: &domain.User{Login: "visitor@example.com", PasswordHash: "hashed_password", Role: "user"},
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "created_at"}).AddRow(1, createdAt)
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
					WithArgs("visitor@example.com", "hashed_password", "user", 0, 0, "").
					WillReturnRows(rows)
			},
		},
		{
			name: "Database error",
			user: &domain.User{Login: "visitor@example.com", PasswordHash: "hashed_password", Role: "user"},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
					WithArgs("visitor@example.com", "hashed_password", "user", 0, 0, "").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), tt.user)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 1, result.ID)
				assert.Equal(t, createdAt, result.CreatedAt)
			}
		})
	}
}

func TestRepository_AddCoins(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Coins added",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("UPDATE users")).
					WithArgs(25, 1).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("UPDATE users")).
					WithArgs(25, 1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.AddCoins(context.Background(), 1, 25)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepository_Count(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM users")).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(42))

	count, err := repo.Count(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 42, count)
}

func TestRepository_ResetDailyCoins(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		affected  int64
	}{
		{
			name: "Counters reset",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET daily_coins = 0")).
					WillReturnResult(pgxmock.NewResult("UPDATE", 7))
			},
			affected: 7,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET daily_coins = 0")).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			affected, err := repo.ResetDailyCoins(context.Background())
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.affected, affected)
			}
		})
	}
}
