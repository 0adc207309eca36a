package commissionrepo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/affiliate/internal/domain"
	"github.com/GlebRadaev/affiliate/internal/pg"
)

const commissionColumns = `id, partner_id, order_id, customer_id, order_amount, order_total,
        commission_rate, commission_amount, status, attribution_type, flag_reason, flag_details,
        reviewed_by, review_notes, reviewed_at, void_reason,
        created_at, approved_at, flagged_at, paid_at, voided_at`

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

func scanCommission(row pgx.Row) (*domain.Commission, error) {
	var c domain.Commission
	var status, attribution string
	var flagReason *string
	err := row.Scan(
		&c.ID, &c.PartnerID, &c.OrderID, &c.CustomerID, &c.OrderAmount, &c.OrderTotal,
		&c.CommissionRate, &c.CommissionAmount, &status, &attribution, &flagReason, &c.FlagDetails,
		&c.ReviewedBy, &c.ReviewNotes, &c.ReviewedAt, &c.VoidReason,
		&c.CreatedAt, &c.ApprovedAt, &c.FlaggedAt, &c.PaidAt, &c.VoidedAt,
	)
	if err != nil {
		return nil, err
	}
	c.Status = domain.CommissionStatus(status)
	c.AttributionType = domain.AttributionType(attribution)
	if flagReason != nil {
		reason := domain.FlagReason(*flagReason)
		c.FlagReason = &reason
	}
	return &c, nil
}

func flagReasonArg(reason *domain.FlagReason) *string {
	if reason == nil {
		return nil
	}
	s := string(*reason)
	return &s
}

// Create inserts the commission unless its order already has one, in which case
// domain.ErrAlreadyRecorded is returned and the surrounding transaction stays usable.
func (r *Repository) Create(ctx context.Context, c *domain.Commission) (*domain.Commission, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	query := `
        INSERT INTO commissions (id, partner_id, order_id, customer_id, order_amount, order_total,
            commission_rate, commission_amount, status, attribution_type, flag_reason, flag_details,
            created_at, flagged_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
        ON CONFLICT (order_id) DO NOTHING
        RETURNING ` + commissionColumns

	row := r.db.QueryRow(ctx, query,
		c.ID, c.PartnerID, c.OrderID, c.CustomerID, c.OrderAmount, c.OrderTotal,
		c.CommissionRate, c.CommissionAmount, string(c.Status), string(c.AttributionType),
		flagReasonArg(c.FlagReason), c.FlagDetails, c.CreatedAt, c.FlaggedAt,
	)
	created, err := scanCommission(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrAlreadyRecorded
	}
	if err != nil {
		zap.L().Error("can't create commission", zap.String("orderID", c.OrderID), zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) getOne(ctx context.Context, query string, args ...any) (*domain.Commission, error) {
	c, err := scanCommission(r.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get commission", zap.Error(err))
		return nil, err
	}
	return c, nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Commission, error) {
	query := `
        SELECT ` + commissionColumns + `
        FROM commissions
        WHERE id = $1
    `
	return r.getOne(ctx, query, id)
}

func (r *Repository) GetByIDForUpdate(ctx context.Context, id string) (*domain.Commission, error) {
	query := `
        SELECT ` + commissionColumns + `
        FROM commissions
        WHERE id = $1
        FOR UPDATE
    `
	return r.getOne(ctx, query, id)
}

func (r *Repository) GetByOrderID(ctx context.Context, orderID string) (*domain.Commission, error) {
	query := `
        SELECT ` + commissionColumns + `
        FROM commissions
        WHERE order_id = $1
    `
	return r.getOne(ctx, query, orderID)
}

func (r *Repository) UpdateStatus(ctx context.Context, c *domain.Commission) error {
	query := `
        UPDATE commissions
        SET status = $2,
            reviewed_by = $3,
            review_notes = $4,
            reviewed_at = $5,
            void_reason = $6,
            approved_at = $7,
            paid_at = $8,
            voided_at = $9
        WHERE id = $1
    `
	tag, err := r.db.Exec(ctx, query,
		c.ID, string(c.Status), c.ReviewedBy, c.ReviewNotes, c.ReviewedAt, c.VoidReason,
		c.ApprovedAt, c.PaidAt, c.VoidedAt,
	)
	if err != nil {
		zap.L().Error("can't update commission status", zap.String("commissionID", c.ID), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]domain.Commission, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't list commissions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var commissions []domain.Commission
	for rows.Next() {
		c, err := scanCommission(rows)
		if err != nil {
			zap.L().Error("can't scan commission row", zap.Error(err))
			return nil, err
		}
		commissions = append(commissions, *c)
	}
	return commissions, rows.Err()
}

// ListByPartner returns the partner's commissions, newest first. An empty status matches all.
func (r *Repository) ListByPartner(ctx context.Context, partnerID string, status domain.CommissionStatus, limit, offset int) ([]domain.Commission, error) {
	query := `
        SELECT ` + commissionColumns + `
        FROM commissions
        WHERE partner_id = $1 AND ($2 = '' OR status = $2)
        ORDER BY created_at DESC, id
        LIMIT $3 OFFSET $4
    `
	return r.list(ctx, query, partnerID, string(status), limit, offset)
}

func (r *Repository) ListByStatus(ctx context.Context, status domain.CommissionStatus, limit, offset int) ([]domain.Commission, error) {
	query := `
        SELECT ` + commissionColumns + `
        FROM commissions
        WHERE status = $1
        ORDER BY created_at, id
        LIMIT $2 OFFSET $3
    `
	return r.list(ctx, query, string(status), limit, offset)
}

// ListPendingBefore pages pending commissions created before cutoff by keyset, so rows that stay
// pending never hide the ones after them.
func (r *Repository) ListPendingBefore(ctx context.Context, cutoff time.Time, after domain.Cursor, limit int) ([]domain.Commission, error) {
	query := `
        SELECT ` + commissionColumns + `
        FROM commissions
        WHERE status = 'pending' AND created_at < $1
          AND (created_at, id) > ($2, $3)
        ORDER BY created_at, id
        LIMIT $4
    `
	return r.list(ctx, query, cutoff, after.CreatedAt, after.ID, limit)
}

// ListApprovedUnpaidForUpdate locks the partner's approved commissions that no payout has
// claimed yet, oldest first.
func (r *Repository) ListApprovedUnpaidForUpdate(ctx context.Context, partnerID string) ([]domain.Commission, error) {
	query := `
        SELECT ` + commissionColumns + `
        FROM commissions
        WHERE partner_id = $1 AND status = 'approved'
          AND NOT EXISTS (SELECT 1 FROM payout_commissions pc WHERE pc.commission_id = commissions.id)
        ORDER BY created_at, id
        FOR UPDATE
    `
	return r.list(ctx, query, partnerID)
}

func (r *Repository) ListByIDsForUpdate(ctx context.Context, ids []string) ([]domain.Commission, error) {
	query := `
        SELECT ` + commissionColumns + `
        FROM commissions
        WHERE id = ANY($1)
        ORDER BY created_at, id
        FOR UPDATE
    `
	return r.list(ctx, query, ids)
}

func (r *Repository) CountRecentByCustomer(ctx context.Context, partnerID, customerID string, since time.Time) (int, error) {
	query := `
        SELECT COUNT(*)
        FROM commissions
        WHERE partner_id = $1 AND customer_id = $2 AND created_at >= $3
    `
	var count int
	if err := r.db.QueryRow(ctx, query, partnerID, customerID, since).Scan(&count); err != nil {
		zap.L().Error("can't count recent commissions", zap.String("partnerID", partnerID), zap.Error(err))
		return 0, err
	}
	return count, nil
}
