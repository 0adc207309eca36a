package payoutrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/affiliate/internal/domain"
	"github.com/GlebRadaev/affiliate/internal/pg"
)

var columns = []string{
	"id", "partner_id", "amount", "status", "payment_method", "notes", "rejection_reason",
	"processed_by", "created_at", "approved_at", "rejected_at", "paid_at",
}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	t.Cleanup(mockDB.Close)

	return repo, mockDB
}

func row(p domain.Payout) []any {
	return []any{
		p.ID, p.PartnerID, p.Amount, string(p.Status), p.PaymentMethod, p.Notes, p.RejectionReason,
		p.ProcessedBy, p.CreatedAt, p.ApprovedAt, p.RejectedAt, p.PaidAt,
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	p := domain.Payout{ID: "p1", PartnerID: "aff-1", Amount: 3000, Status: domain.PayoutPending, PaymentMethod: "bank_transfer", CreatedAt: now}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "payout created",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO payouts`)).
					WithArgs("p1", "aff-1", int64(3000), "pending", "bank_transfer", (*string)(nil), (*string)(nil), now, (*time.Time)(nil)).
					WillReturnRows(pgxmock.NewRows(columns).AddRow(row(p)...))
			},
		},
		{
			name: "database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO payouts`)).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			in := p
			got, err := repo.Create(context.Background(), &in)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, got)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, p, *got)
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByIDForUpdate(t *testing.T) {
	repo, mock := NewMock(t)
	p := domain.Payout{ID: "p1", PartnerID: "aff-1", Amount: 3000, Status: domain.PayoutApproved}

	mock.ExpectQuery(regexp.QuoteMeta(`FROM payouts WHERE id = $1 FOR UPDATE`)).
		WithArgs("p1").
		WillReturnRows(pgxmock.NewRows(columns).AddRow(row(p)...))
	mock.ExpectQuery(regexp.QuoteMeta(`FROM payouts WHERE id = $1 FOR UPDATE`)).
		WithArgs("p2").
		WillReturnError(pgx.ErrNoRows)

	got, err := repo.GetByIDForUpdate(context.Background(), "p1")
	assert.NoError(t, err)
	assert.Equal(t, domain.PayoutApproved, got.Status)

	got, err = repo.GetByIDForUpdate(context.Background(), "p2")
	assert.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	reason := "duplicate request"
	p := &domain.Payout{ID: "p1", Status: domain.PayoutRejected, RejectionReason: &reason, RejectedAt: &now}
	query := regexp.QuoteMeta(`UPDATE payouts SET status = $2`)

	mock.ExpectExec(query).
		WithArgs("p1", "rejected", &reason, (*string)(nil), (*time.Time)(nil), &now, (*time.Time)(nil)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	assert.NoError(t, repo.UpdateStatus(context.Background(), p))

	mock.ExpectExec(query).WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	assert.ErrorIs(t, repo.UpdateStatus(context.Background(), p), domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_HasOpen(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`status IN ('pending', 'approved')`)).
		WithArgs("aff-1").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
	open, err := repo.HasOpen(context.Background(), "aff-1")
	assert.NoError(t, err)
	assert.True(t, open)

	mock.ExpectQuery(regexp.QuoteMeta(`status IN ('pending', 'approved')`)).
		WithArgs("aff-1").
		WillReturnError(errors.New("database error"))
	_, err = repo.HasOpen(context.Background(), "aff-1")
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_LinkCommissions(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`INSERT INTO payout_commissions`)

	tests := []struct {
		name      string
		ids       []string
		mockSetup func()
		wantErr   error
		anyErr    bool
	}{
		{name: "nothing to link", ids: nil, mockSetup: func() {}},
		{
			name: "links commissions",
			ids:  []string{"c1", "c2"},
			mockSetup: func() {
				mock.ExpectExec(query).WithArgs("p1", []string{"c1", "c2"}).WillReturnResult(pgxmock.NewResult("INSERT", 2))
			},
		},
		{
			name: "commission claimed by another payout",
			ids:  []string{"c1"},
			mockSetup: func() {
				mock.ExpectExec(query).WithArgs("p1", []string{"c1"}).WillReturnError(&pgconn.PgError{Code: "23505"})
			},
			wantErr: domain.ErrInvalidState,
		},
		{
			name: "database error",
			ids:  []string{"c1"},
			mockSetup: func() {
				mock.ExpectExec(query).WithArgs("p1", []string{"c1"}).WillReturnError(errors.New("database error"))
			},
			anyErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.LinkCommissions(context.Background(), "p1", tt.ids)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.anyErr:
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
			}
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListCommissionIDs(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT commission_id FROM payout_commissions`)).
		WithArgs("p1").
		WillReturnRows(pgxmock.NewRows([]string{"commission_id"}).AddRow("c1").AddRow("c2"))

	ids, err := repo.ListCommissionIDs(context.Background(), "p1")
	assert.NoError(t, err)
	assert.Equal(t, []string{"c1", "c2"}, ids)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM payout_commissions WHERE payout_id = $1`)).
		WithArgs("p1").
		WillReturnResult(pgxmock.NewResult("DELETE", 2))
	assert.NoError(t, repo.UnlinkCommissions(context.Background(), "p1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
