package repo

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	campaignrepo "github.com/tripkoin/cityguide/internal/repo/campaign-repo"
	placerepo "github.com/tripkoin/cityguide/internal/repo/place-repo"
	rewardrepo "github.com/tripkoin/cityguide/internal/repo/reward-repo"
	userrepo "github.com/tripkoin/cityguide/internal/repo/user-repo"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.NotNil(t, repo.UserRepo)
	assert.NotNil(t, repo.RewardRepo)
	assert.NotNil(t, repo.CampaignRepo)
	assert.NotNil(t, repo.PlaceRepo)

	assert.IsType(t, &userrepo.Repository{}, repo.UserRepo)
	assert.IsType(t, &rewardrepo.Repository{}, repo.RewardRepo)
	assert.IsType(t, &campaignrepo.Repository{}, repo.CampaignRepo)
	assert.IsType(t, &placerepo.Repository{}, repo.PlaceRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}
