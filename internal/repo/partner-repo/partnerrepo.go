package partnerrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/affiliate/internal/domain"
	"github.com/GlebRadaev/affiliate/internal/pg"
)

const partnerColumns = `id, COALESCE(owner_customer_id, ''), referral_code, status,
        total_earnings, pending_balance, paid_balance, total_referrals, total_sales,
        COALESCE(custom_rate_type, ''), COALESCE(custom_rate_value, 0)::text,
        friends_family_enabled, created_at, updated_at`

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

func scanPartner(row pgx.Row) (*domain.Partner, error) {
	var p domain.Partner
	var status, rateType, rateValue string
	err := row.Scan(
		&p.ID, &p.OwnerCustomerID, &p.ReferralCode, &status,
		&p.TotalEarnings, &p.PendingBalance, &p.PaidBalance, &p.TotalReferrals, &p.TotalSales,
		&rateType, &rateValue,
		&p.FriendsFamilyEnabled, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.Status = domain.PartnerStatus(status)
	if rateType != "" {
		value, err := decimal.NewFromString(rateValue)
		if err != nil {
			return nil, fmt.Errorf("parse custom rate of partner %s: %w", p.ID, err)
		}
		p.CustomRate = &domain.Rate{Type: domain.RateType(rateType), Value: value}
	}
	return &p, nil
}

func (r *Repository) getOne(ctx context.Context, query string, args ...any) (*domain.Partner, error) {
	partner, err := scanPartner(r.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get partner", zap.Error(err))
		return nil, err
	}
	return partner, nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Partner, error) {
	query := `
        SELECT ` + partnerColumns + `
        FROM partners
        WHERE id = $1
    `
	return r.getOne(ctx, query, id)
}

// GetByIDForUpdate locks the partner row until the surrounding transaction ends.
func (r *Repository) GetByIDForUpdate(ctx context.Context, id string) (*domain.Partner, error) {
	query := `
        SELECT ` + partnerColumns + `
        FROM partners
        WHERE id = $1
        FOR UPDATE
    `
	return r.getOne(ctx, query, id)
}

func (r *Repository) GetByReferralCode(ctx context.Context, code string) (*domain.Partner, error) {
	query := `
        SELECT ` + partnerColumns + `
        FROM partners
        WHERE referral_code = $1
    `
	return r.getOne(ctx, query, code)
}

// ApplyBalanceDelta is the only statement that writes balance counters. It refuses any delta
// that would leave pending, paid or the derived approved balance negative.
func (r *Repository) ApplyBalanceDelta(ctx context.Context, partnerID string, delta domain.BalanceDelta) (*domain.Partner, error) {
	query := `
        UPDATE partners
        SET total_earnings = total_earnings + $2,
            pending_balance = pending_balance + $3,
            paid_balance = paid_balance + $4,
            total_referrals = total_referrals + $5,
            total_sales = total_sales + $6,
            updated_at = NOW()
        WHERE id = $1
          AND pending_balance + $3 >= 0
          AND paid_balance + $4 >= 0
          AND (total_earnings + $2) - (pending_balance + $3) - (paid_balance + $4) >= 0
        RETURNING ` + partnerColumns

	row := r.db.QueryRow(ctx, query, partnerID, delta.Earnings, delta.Pending, delta.Paid, delta.Referrals, delta.Sales)
	partner, err := scanPartner(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.Is(err, pgx.ErrNoRows) || (errors.As(err, &pgErr) && pgErr.Code == pgerrcode.CheckViolation) {
			zap.L().Warn("balance delta rejected", zap.String("partnerID", partnerID), zap.Any("delta", delta))
			return nil, &domain.BalanceError{Err: domain.ErrInsufficientBalance, PartnerID: partnerID}
		}
		zap.L().Error("can't apply balance delta", zap.String("partnerID", partnerID), zap.Error(err))
		return nil, err
	}
	return partner, nil
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]domain.Partner, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't list partners", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var partners []domain.Partner
	for rows.Next() {
		partner, err := scanPartner(rows)
		if err != nil {
			zap.L().Error("can't scan partner row", zap.Error(err))
			return nil, err
		}
		partners = append(partners, *partner)
	}
	return partners, rows.Err()
}

func (r *Repository) ListEligibleForPayout(ctx context.Context, minimum int64) ([]domain.Partner, error) {
	query := `
        SELECT ` + partnerColumns + `
        FROM partners
        WHERE status = 'active'
          AND total_earnings - pending_balance - paid_balance > 0
          AND total_earnings - pending_balance - paid_balance >= $1
        ORDER BY id
    `
	return r.list(ctx, query, minimum)
}

func (r *Repository) Leaderboard(ctx context.Context, limit int) ([]domain.Partner, error) {
	query := `
        SELECT ` + partnerColumns + `
        FROM partners
        WHERE status = 'active'
        ORDER BY total_earnings DESC, total_referrals DESC, id
        LIMIT $1
    `
	return r.list(ctx, query, limit)
}

type deleteStep struct {
	query string
	count *int64
}

// DeleteCascade hard-deletes a partner and everything hanging off it in one transaction,
// giving back the invite uses the partner consumed.
func (r *Repository) DeleteCascade(ctx context.Context, partnerID string) (*domain.DeletionReport, error) {
	var report domain.DeletionReport
	var partners int64
	steps := []deleteStep{
		{query: `UPDATE affiliate_invites SET times_used = GREATEST(times_used - 1, 0) WHERE id IN (SELECT invite_id FROM affiliate_invite_usages WHERE partner_id = $1)`},
		{query: `DELETE FROM affiliate_invite_usages WHERE partner_id = $1`, count: &report.InviteUsages},
		{query: `DELETE FROM payout_commissions WHERE payout_id IN (SELECT id FROM payouts WHERE partner_id = $1)`},
		{query: `DELETE FROM payouts WHERE partner_id = $1`, count: &report.Payouts},
		{query: `DELETE FROM commissions WHERE partner_id = $1`, count: &report.Commissions},
		{query: `DELETE FROM affiliate_clicks WHERE partner_id = $1`, count: &report.Clicks},
		{query: `DELETE FROM affiliate_agreements WHERE partner_id = $1`, count: &report.Agreements},
		{query: `DELETE FROM affiliate_payout_accounts WHERE partner_id = $1`, count: &report.PayoutAccounts},
		{query: `DELETE FROM partners WHERE id = $1`, count: &partners},
	}

	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		for _, step := range steps {
			tag, err := r.db.Exec(ctx, step.query, partnerID)
			if err != nil {
				zap.L().Error("can't delete partner data", zap.String("partnerID", partnerID), zap.Error(err))
				return err
			}
			if step.count != nil {
				*step.count = tag.RowsAffected()
			}
		}
		if partners == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &report, nil
}
