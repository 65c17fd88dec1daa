package statsservice

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type UserRepo interface {
	Count(ctx context.Context) (int, error)
}

type RewardRepo interface {
	CountQREvents(ctx context.Context) (int, error)
	TotalCoinsGranted(ctx context.Context) (int, error)
}

type CampaignRepo interface {
	CountActive(ctx context.Context) (int, error)
}

type Service struct {
	userRepo     UserRepo
	rewardRepo   RewardRepo
	campaignRepo CampaignRepo
}

func New(userRepo UserRepo, rewardRepo RewardRepo, campaignRepo CampaignRepo) *Service {
	return &Service{
		userRepo:     userRepo,
		rewardRepo:   rewardRepo,
		campaignRepo: campaignRepo,
	}
}

type Stats struct {
	Users           int `json:"users"`
	QRScans         int `json:"qrScans"`
	CoinsGranted    int `json:"coinsGranted"`
	ActiveCampaigns int `json:"activeCampaigns"`
}

// Collect gathers the dashboard counters. The four counts are independent
// queries, so they run concurrently; the first failure cancels the rest.
func (s *Service) Collect(ctx context.Context) (*Stats, error) {
	var stats Stats

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.userRepo.Count(ctx)
		stats.Users = n
		return err
	})
	g.Go(func() error {
		n, err := s.rewardRepo.CountQREvents(ctx)
		stats.QRScans = n
		return err
	})
	g.Go(func() error {
		n, err := s.rewardRepo.TotalCoinsGranted(ctx)
		stats.CoinsGranted = n
		return err
	})
	g.Go(func() error {
		n, err := s.campaignRepo.CountActive(ctx)
		stats.ActiveCampaigns = n
		return err
	})

	if err := g.Wait(); err != nil {
		zap.L().Error("failed to collect stats", zap.Error(err))
		return nil, err
	}
	return &stats, nil
}
