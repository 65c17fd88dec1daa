package dailyreset

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tripkoin/cityguide/internal/config"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockUserRepo) {
	ctrl := gomock.NewController(t)
	userRepo := NewMockUserRepo(ctrl)

	service := New(&config.Config{}, userRepo)
	defer ctrl.Finish()
	return service, userRepo
}

func TestTickSameDay(t *testing.T) {
	service, _ := NewMock(t)

	service.now = func() time.Time { return time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC) }
	service.lastDay = service.currentDay()

	// Same day, no repository call expected.
	service.Tick(context.Background())
	assert.Equal(t, "2024-06-15", service.lastDay)
}

func TestTickDayRollover(t *testing.T) {
	service, userRepo := NewMock(t)

	service.now = func() time.Time { return time.Date(2024, 6, 15, 23, 59, 0, 0, time.UTC) }
	service.lastDay = service.currentDay()

	service.now = func() time.Time { return time.Date(2024, 6, 16, 0, 1, 0, 0, time.UTC) }
	userRepo.EXPECT().ResetDailyCoins(gomock.Any()).Return(int64(7), nil)

	service.Tick(context.Background())
	assert.Equal(t, "2024-06-16", service.lastDay)
}

func TestTickRetriesAfterError(t *testing.T) {
	service, userRepo := NewMock(t)

	service.now = func() time.Time { return time.Date(2024, 6, 15, 23, 59, 0, 0, time.UTC) }
	service.lastDay = service.currentDay()

	service.now = func() time.Time { return time.Date(2024, 6, 16, 0, 1, 0, 0, time.UTC) }
	userRepo.EXPECT().ResetDailyCoins(gomock.Any()).Return(int64(0), errors.New("database error"))

	service.Tick(context.Background())
	// Failure keeps lastDay so the next tick tries again.
	assert.Equal(t, "2024-06-15", service.lastDay)

	userRepo.EXPECT().ResetDailyCoins(gomock.Any()).Return(int64(7), nil)
	service.Tick(context.Background())
	assert.Equal(t, "2024-06-16", service.lastDay)
}

func TestStartStopsOnContextCancel(t *testing.T) {
	service, _ := NewMock(t)
	service.checkInterval = 10 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	service.Start(ctx)
	cancel()

	// Give the goroutine a moment to observe cancellation.
	time.Sleep(30 * time.Millisecond)
}
