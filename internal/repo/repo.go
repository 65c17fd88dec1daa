package repo

import (
	"github.com/tripkoin/cityguide/internal/pg"
	campaignrepo "github.com/tripkoin/cityguide/internal/repo/campaign-repo"
	placerepo "github.com/tripkoin/cityguide/internal/repo/place-repo"
	rewardrepo "github.com/tripkoin/cityguide/internal/repo/reward-repo"
	userrepo "github.com/tripkoin/cityguide/internal/repo/user-repo"
)

type Repositories struct {
	UserRepo     *userrepo.Repository
	RewardRepo   *rewardrepo.Repository
	CampaignRepo *campaignrepo.Repository
	PlaceRepo    *placerepo.Repository
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		UserRepo:     userrepo.New(conn),
		RewardRepo:   rewardrepo.New(conn),
		CampaignRepo: campaignrepo.New(conn),
		PlaceRepo:    placerepo.New(conn),
	}
}
