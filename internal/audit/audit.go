// Package audit appends administrative actions to the audit log. Appends never fail the
// operation they describe: a failed write is logged locally and dropped.
package audit

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/affiliate/internal/domain"
)

//go:generate mockgen -source=audit.go -destination=mock_audit.go -package=audit

const (
	ActionCommissionApproved = "commission.approved"
	ActionCommissionVoided   = "commission.voided"
	ActionCommissionReviewed = "commission.reviewed"
	ActionCommissionRecorded = "commission.recorded"
	ActionPayoutRequested    = "payout.requested"
	ActionPayoutApproved     = "payout.approved"
	ActionPayoutRejected     = "payout.rejected"
	ActionPayoutProcessed    = "payout.processed"
	ActionPayoutRecorded     = "payout.recorded"
	ActionAffiliateDeleted   = "affiliate.deleted"

	EntityCommission = "commission"
	EntityPayout     = "payout"
	EntityPartner    = "partner"
)

type Repo interface {
	Append(ctx context.Context, entry *domain.AuditEntry) error
}

type Trail struct {
	repo  Repo
	nowFn func() time.Time
}

func New(repo Repo) *Trail {
	return &Trail{repo: repo, nowFn: time.Now}
}

func (t *Trail) Record(ctx context.Context, actor domain.Actor, action, entityType, entityID string, metadata map[string]any) {
	entry := &domain.AuditEntry{
		ActorID:    actor.ID,
		ActorRole:  string(actor.Role),
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Metadata:   metadata,
		CreatedAt:  t.nowFn(),
	}
	if err := t.repo.Append(ctx, entry); err != nil {
		zap.L().Error("audit entry lost",
			zap.String("action", action),
			zap.String("entityType", entityType),
			zap.String("entityID", entityID),
			zap.String("actorID", actor.ID),
			zap.Any("metadata", metadata),
			zap.Error(err),
		)
	}
}
