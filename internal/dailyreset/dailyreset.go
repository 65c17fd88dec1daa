package dailyreset

import (
	"context"
	"time"

	"github.com/tripkoin/cityguide/internal/config"
	"go.uber.org/zap"
)

type UserRepo interface {
	ResetDailyCoins(ctx context.Context) (int64, error)
}

// Service zeroes the cached per-day coin counters when the calendar day
// rolls over. The reward ledger itself is the source of truth for cap
// checks, so a missed tick only delays the cosmetic counter reset.
type Service struct {
	userRepo      UserRepo
	loc           *time.Location
	checkInterval time.Duration

	now     func() time.Time
	lastDay string
}

func New(cfg *config.Config, userRepo UserRepo) *Service {
	return &Service{
		userRepo:      userRepo,
		loc:           cfg.Location(),
		checkInterval: time.Minute,
		now:           time.Now,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Daily reset service started")
	s.lastDay = s.currentDay()
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.checkInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping daily reset service")
			return
		case <-ticker.C:
			s.Tick(ctx)
		}
	}
}

// Tick resets the counters if the day has changed since the last check.
func (s *Service) Tick(ctx context.Context) {
	day := s.currentDay()
	if day == s.lastDay {
		return
	}

	affected, err := s.userRepo.ResetDailyCoins(ctx)
	if err != nil {
		// Keep lastDay unchanged so the next tick retries.
		zap.L().Error("Failed to reset daily coins", zap.Error(err))
		return
	}

	s.lastDay = day
	zap.L().Info("Daily coin counters reset",
		zap.String("day", day),
		zap.Int64("users", affected),
	)
}

func (s *Service) currentDay() string {
	return s.now().In(s.loc).Format("2006-01-02")
}
