package payoutrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/affiliate/internal/domain"
	"github.com/GlebRadaev/affiliate/internal/pg"
)

const payoutColumns = `id, partner_id, amount, status, payment_method, notes, rejection_reason,
        processed_by, created_at, approved_at, rejected_at, paid_at`

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func scanPayout(row pgx.Row) (*domain.Payout, error) {
	var p domain.Payout
	var status string
	err := row.Scan(
		&p.ID, &p.PartnerID, &p.Amount, &status, &p.PaymentMethod, &p.Notes, &p.RejectionReason,
		&p.ProcessedBy, &p.CreatedAt, &p.ApprovedAt, &p.RejectedAt, &p.PaidAt,
	)
	if err != nil {
		return nil, err
	}
	p.Status = domain.PayoutStatus(status)
	return &p, nil
}

func (r *Repository) Create(ctx context.Context, p *domain.Payout) (*domain.Payout, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	query := `
        INSERT INTO payouts (id, partner_id, amount, status, payment_method, notes, processed_by, created_at, approved_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING ` + payoutColumns

	row := r.db.QueryRow(ctx, query,
		p.ID, p.PartnerID, p.Amount, string(p.Status), p.PaymentMethod, p.Notes, p.ProcessedBy, p.CreatedAt, p.ApprovedAt,
	)
	created, err := scanPayout(row)
	if err != nil {
		zap.L().Error("can't create payout", zap.String("partnerID", p.PartnerID), zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) getOne(ctx context.Context, query string, args ...any) (*domain.Payout, error) {
	p, err := scanPayout(r.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get payout", zap.Error(err))
		return nil, err
	}
	return p, nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Payout, error) {
	query := `
        SELECT ` + payoutColumns + `
        FROM payouts
        WHERE id = $1
    `
	return r.getOne(ctx, query, id)
}

func (r *Repository) GetByIDForUpdate(ctx context.Context, id string) (*domain.Payout, error) {
	query := `
        SELECT ` + payoutColumns + `
        FROM payouts
        WHERE id = $1
        FOR UPDATE
    `
	return r.getOne(ctx, query, id)
}

func (r *Repository) UpdateStatus(ctx context.Context, p *domain.Payout) error {
	query := `
        UPDATE payouts
        SET status = $2,
            rejection_reason = $3,
            processed_by = $4,
            approved_at = $5,
            rejected_at = $6,
            paid_at = $7
        WHERE id = $1
    `
	tag, err := r.db.Exec(ctx, query,
		p.ID, string(p.Status), p.RejectionReason, p.ProcessedBy, p.ApprovedAt, p.RejectedAt, p.PaidAt,
	)
	if err != nil {
		zap.L().Error("can't update payout status", zap.String("payoutID", p.ID), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *Repository) ListByPartner(ctx context.Context, partnerID string, limit, offset int) ([]domain.Payout, error) {
	query := `
        SELECT ` + payoutColumns + `
        FROM payouts
        WHERE partner_id = $1
        ORDER BY created_at DESC, id
        LIMIT $2 OFFSET $3
    `
	rows, err := r.db.Query(ctx, query, partnerID, limit, offset)
	if err != nil {
		zap.L().Error("can't list payouts", zap.String("partnerID", partnerID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var payouts []domain.Payout
	for rows.Next() {
		p, err := scanPayout(rows)
		if err != nil {
			zap.L().Error("can't scan payout row", zap.Error(err))
			return nil, err
		}
		payouts = append(payouts, *p)
	}
	return payouts, rows.Err()
}

// HasOpen reports whether the partner has a payout that is still pending or approved.
func (r *Repository) HasOpen(ctx context.Context, partnerID string) (bool, error) {
	query := `
        SELECT EXISTS (
            SELECT 1 FROM payouts WHERE partner_id = $1 AND status IN ('pending', 'approved')
        )
    `
	var open bool
	if err := r.db.QueryRow(ctx, query, partnerID).Scan(&open); err != nil {
		zap.L().Error("can't check open payouts", zap.String("partnerID", partnerID), zap.Error(err))
		return false, err
	}
	return open, nil
}

// LinkCommissions records which commissions a payout settles. A commission can belong to
// one payout only; linking it twice fails with domain.ErrInvalidState.
func (r *Repository) LinkCommissions(ctx context.Context, payoutID string, commissionIDs []string) error {
	if len(commissionIDs) == 0 {
		return nil
	}
	query := `
        INSERT INTO payout_commissions (payout_id, commission_id)
        SELECT $1, unnest($2::text[])
    `
	_, err := r.db.Exec(ctx, query, payoutID, commissionIDs)
	if pg.IsUniqueViolation(err) {
		return fmt.Errorf("%w: commission already linked to another payout", domain.ErrInvalidState)
	}
	if err != nil {
		zap.L().Error("can't link payout commissions", zap.String("payoutID", payoutID), zap.Error(err))
		return err
	}
	return nil
}

// UnlinkCommissions releases a rejected payout's commissions so a later payout can settle them.
func (r *Repository) UnlinkCommissions(ctx context.Context, payoutID string) error {
	query := `DELETE FROM payout_commissions WHERE payout_id = $1`
	if _, err := r.db.Exec(ctx, query, payoutID); err != nil {
		zap.L().Error("can't unlink payout commissions", zap.String("payoutID", payoutID), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListCommissionIDs(ctx context.Context, payoutID string) ([]string, error) {
	query := `
        SELECT commission_id
        FROM payout_commissions
        WHERE payout_id = $1
        ORDER BY commission_id
    `
	rows, err := r.db.Query(ctx, query, payoutID)
	if err != nil {
		zap.L().Error("can't list payout commissions", zap.String("payoutID", payoutID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
