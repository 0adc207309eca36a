// Package ledger owns commission status and the partner balance counters. Transition is the only
// writer of a commission's status, and it always commits the status change together with the
// balance delta it causes.
package ledger

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/affiliate/internal/domain"
	"github.com/GlebRadaev/affiliate/internal/pg"
)

//go:generate mockgen -source=ledger.go -destination=mock_ledger.go -package=ledger

type CommissionRepo interface {
	Create(ctx context.Context, c *domain.Commission) (*domain.Commission, error)
	GetByID(ctx context.Context, id string) (*domain.Commission, error)
	GetByIDForUpdate(ctx context.Context, id string) (*domain.Commission, error)
	GetByOrderID(ctx context.Context, orderID string) (*domain.Commission, error)
	UpdateStatus(ctx context.Context, c *domain.Commission) error
	ListByPartner(ctx context.Context, partnerID string, status domain.CommissionStatus, limit, offset int) ([]domain.Commission, error)
	ListByStatus(ctx context.Context, status domain.CommissionStatus, limit, offset int) ([]domain.Commission, error)
	ListPendingBefore(ctx context.Context, cutoff time.Time, after domain.Cursor, limit int) ([]domain.Commission, error)
	ListApprovedUnpaidForUpdate(ctx context.Context, partnerID string) ([]domain.Commission, error)
	ListByIDsForUpdate(ctx context.Context, ids []string) ([]domain.Commission, error)
	CountRecentByCustomer(ctx context.Context, partnerID, customerID string, since time.Time) (int, error)
}

type PartnerRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Partner, error)
	GetByIDForUpdate(ctx context.Context, id string) (*domain.Partner, error)
	GetByReferralCode(ctx context.Context, code string) (*domain.Partner, error)
	ApplyBalanceDelta(ctx context.Context, partnerID string, delta domain.BalanceDelta) (*domain.Partner, error)
	ListEligibleForPayout(ctx context.Context, minimum int64) ([]domain.Partner, error)
	Leaderboard(ctx context.Context, limit int) ([]domain.Partner, error)
	DeleteCascade(ctx context.Context, partnerID string) (*domain.DeletionReport, error)
}

type Review struct {
	Reviewer string
	Notes    string
	Reason   string
}

type Ledger struct {
	commissions CommissionRepo
	partners    PartnerRepo
	txManager   pg.TXManager
	nowFn       func() time.Time
}

func New(commissions CommissionRepo, partners PartnerRepo, txManager pg.TXManager) *Ledger {
	return &Ledger{
		commissions: commissions,
		partners:    partners,
		txManager:   txManager,
		nowFn:       time.Now,
	}
}

// Record inserts a new commission. A clean (pending) commission accrues to the partner in the
// same transaction; a flagged one accrues nothing until it is approved.
// Returns domain.ErrAlreadyRecorded when the order already has a commission.
func (l *Ledger) Record(ctx context.Context, c *domain.Commission) (*domain.Commission, error) {
	now := l.nowFn()
	c.CreatedAt = now
	if c.Status == domain.CommissionFlagged {
		c.FlaggedAt = &now
	}

	var created *domain.Commission
	err := l.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		created, err = l.commissions.Create(ctx, c)
		if err != nil {
			return err
		}
		if created.Status != domain.CommissionPending {
			return nil
		}
		_, err = l.partners.ApplyBalanceDelta(ctx, created.PartnerID, domain.AccrualDelta(created))
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Transition moves c to the target status and applies the matching balance delta atomically.
// Callers load c with GetByIDForUpdate inside their own transaction; Transition joins it.
// On success c reflects the stored row.
func (l *Ledger) Transition(ctx context.Context, c *domain.Commission, to domain.CommissionStatus, review Review) error {
	if err := c.Status.CheckTransition(c.ID, to); err != nil {
		return err
	}

	delta := domain.TransitionDelta(c, to)
	next := *c
	now := l.nowFn()
	next.Status = to

	switch to {
	case domain.CommissionApproved:
		next.ApprovedAt = &now
		if c.Status == domain.CommissionFlagged || review.Reviewer != "" {
			setReview(&next, review, now)
		}
	case domain.CommissionVoid:
		next.VoidedAt = &now
		if review.Reason != "" {
			reason := review.Reason
			next.VoidReason = &reason
		}
		setReview(&next, review, now)
	case domain.CommissionPaid:
		next.PaidAt = &now
	}

	err := l.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := l.commissions.UpdateStatus(ctx, &next); err != nil {
			return err
		}
		if delta.IsZero() {
			return nil
		}
		_, err := l.partners.ApplyBalanceDelta(ctx, next.PartnerID, delta)
		return err
	})
	if err != nil {
		zap.L().Error("commission transition failed",
			zap.String("commissionID", c.ID),
			zap.String("from", string(c.Status)),
			zap.String("to", string(to)),
			zap.Error(err),
		)
		return err
	}

	*c = next
	return nil
}

func setReview(c *domain.Commission, review Review, at time.Time) {
	if review.Reviewer == "" {
		return
	}
	reviewer := review.Reviewer
	c.ReviewedBy = &reviewer
	c.ReviewedAt = &at
	if review.Notes != "" {
		notes := review.Notes
		c.ReviewNotes = &notes
	}
}
