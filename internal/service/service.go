package service

import (
	"github.com/tripkoin/cityguide/internal/config"
	"github.com/tripkoin/cityguide/internal/handlers/admin"
	"github.com/tripkoin/cityguide/internal/handlers/auth"
	"github.com/tripkoin/cityguide/internal/handlers/campaigns"
	"github.com/tripkoin/cityguide/internal/handlers/places"
	"github.com/tripkoin/cityguide/internal/handlers/rewards"

	pkgauth "github.com/tripkoin/cityguide/pkg/auth"

	"github.com/tripkoin/cityguide/internal/pg"
	"github.com/tripkoin/cityguide/internal/repo"
	authservice "github.com/tripkoin/cityguide/internal/service/authservice"
	campaignservice "github.com/tripkoin/cityguide/internal/service/campaignservice"
	placeservice "github.com/tripkoin/cityguide/internal/service/placeservice"
	rewardservice "github.com/tripkoin/cityguide/internal/service/rewardservice"
	statsservice "github.com/tripkoin/cityguide/internal/service/statsservice"
)

type Services struct {
	AuthService     auth.Service
	RewardService   rewards.Service
	PlaceService    places.Service
	CampaignService campaigns.Service
	StatsService    admin.StatsService
	GrantService    admin.GrantService
}

func New(repo *repo.Repositories, txManager pg.TXManager, cfg *config.Config) *Services {
	authService := authservice.New(repo.UserRepo, &pkgauth.HashService{}, &pkgauth.JWTService{})
	rewardService := rewardservice.New(repo.UserRepo, repo.RewardRepo, repo.CampaignRepo, txManager, cfg)
	placeService := placeservice.New(repo.PlaceRepo)
	campaignService := campaignservice.New(repo.CampaignRepo)
	statsService := statsservice.New(repo.UserRepo, repo.RewardRepo, repo.CampaignRepo)

	return &Services{
		AuthService:     authService,
		RewardService:   rewardService,
		PlaceService:    placeService,
		CampaignService: campaignService,
		StatsService:    statsService,
		GrantService:    rewardService,
	}
}
