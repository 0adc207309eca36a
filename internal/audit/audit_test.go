package audit

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/affiliate/internal/domain"
)

func TestTrail_Record(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	trail := New(repo)
	admin := domain.Actor{ID: "admin-1", Role: domain.RoleAdmin}

	repo.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e *domain.AuditEntry) error {
		assert.Equal(t, "admin-1", e.ActorID)
		assert.Equal(t, "admin", e.ActorRole)
		assert.Equal(t, ActionPayoutProcessed, e.Action)
		assert.Equal(t, 2, e.Metadata["commissions"])
		assert.False(t, e.CreatedAt.IsZero())
		return nil
	})
	trail.Record(context.Background(), admin, ActionPayoutProcessed, EntityPayout, "p1", map[string]any{"commissions": 2})

	repo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
	assert.NotPanics(t, func() {
		trail.Record(context.Background(), admin, ActionCommissionVoided, EntityCommission, "c1", nil)
	})
}
