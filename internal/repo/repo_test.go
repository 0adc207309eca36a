package repo

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/affiliate/internal/pg"
	auditrepo "github.com/GlebRadaev/affiliate/internal/repo/audit-repo"
	commissionrepo "github.com/GlebRadaev/affiliate/internal/repo/commission-repo"
	eventrepo "github.com/GlebRadaev/affiliate/internal/repo/event-repo"
	partnerrepo "github.com/GlebRadaev/affiliate/internal/repo/partner-repo"
	payoutrepo "github.com/GlebRadaev/affiliate/internal/repo/payout-repo"
	storefrontrepo "github.com/GlebRadaev/affiliate/internal/repo/storefront-repo"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	t.Cleanup(mockDB.Close)
	return New(mockDB, pg.NewMockTXManager(ctrl)), mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.IsType(t, &partnerrepo.Repository{}, repo.PartnerRepo)
	assert.IsType(t, &commissionrepo.Repository{}, repo.CommissionRepo)
	assert.IsType(t, &payoutrepo.Repository{}, repo.PayoutRepo)
	assert.IsType(t, &eventrepo.Repository{}, repo.EventRepo)
	assert.IsType(t, &auditrepo.Repository{}, repo.AuditRepo)
	assert.IsType(t, &storefrontrepo.Repository{}, repo.Storefront)
	assert.NotNil(t, repo.TxManager)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
