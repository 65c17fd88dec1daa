package campaignservice

import (
	"context"
	"errors"

	"github.com/tripkoin/cityguide/internal/domain"
	"go.uber.org/zap"
)

var ErrCampaignNotFound = errors.New("campaign not found")

type Repo interface {
	FindByID(ctx context.Context, id int) (*domain.Campaign, error)
	FindActive(ctx context.Context) ([]domain.Campaign, error)
	FindBrandByID(ctx context.Context, id int) (*domain.Brand, error)
}

type Service struct {
	campaignRepo Repo
}

func New(campaignRepo Repo) *Service {
	return &Service{
		campaignRepo: campaignRepo,
	}
}

// CampaignWithBrand pairs a campaign with its owning brand. Brand is nil when
// the brand record is missing.
type CampaignWithBrand struct {
	domain.Campaign
	Brand *domain.Brand
}

// ListActive returns only campaigns currently open for claims.
func (s *Service) ListActive(ctx context.Context) ([]domain.Campaign, error) {
	campaigns, err := s.campaignRepo.FindActive(ctx)
	if err != nil {
		zap.L().Error("failed to fetch active campaigns", zap.Error(err))
		return nil, err
	}
	return campaigns, nil
}

func (s *Service) Get(ctx context.Context, id int) (*CampaignWithBrand, error) {
	campaign, err := s.campaignRepo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("failed to fetch campaign", zap.Int("campaignID", id), zap.Error(err))
		return nil, err
	}
	if campaign == nil {
		return nil, ErrCampaignNotFound
	}

	brand, err := s.campaignRepo.FindBrandByID(ctx, campaign.BrandID)
	if err != nil {
		zap.L().Error("failed to fetch brand", zap.Int("brandID", campaign.BrandID), zap.Error(err))
		return nil, err
	}
	return &CampaignWithBrand{Campaign: *campaign, Brand: brand}, nil
}
