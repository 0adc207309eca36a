package payoutservice

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/affiliate/internal/audit"
	"github.com/GlebRadaev/affiliate/internal/domain"
	"github.com/GlebRadaev/affiliate/internal/ledger"
	"github.com/GlebRadaev/affiliate/internal/pg"
	"github.com/GlebRadaev/affiliate/internal/storefront"
	"github.com/GlebRadaev/affiliate/internal/testutil/memstore"
)

var (
	admin   = domain.Actor{ID: "admin-1", Role: domain.RoleAdmin}
	testNow = time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
)

type mocks struct {
	payouts     *MockPayoutRepo
	commissions *ledger.MockCommissionRepo
	partners    *ledger.MockPartnerRepo
	settings    *storefront.MockSettingsLookup
	ledger      *MockLedger
	audit       *MockAuditor
	notifier    *MockNotifier
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		payouts:     NewMockPayoutRepo(ctrl),
		commissions: ledger.NewMockCommissionRepo(ctrl),
		partners:    ledger.NewMockPartnerRepo(ctrl),
		settings:    storefront.NewMockSettingsLookup(ctrl),
		ledger:      NewMockLedger(ctrl),
		audit:       NewMockAuditor(ctrl),
		notifier:    NewMockNotifier(ctrl),
	}
	tx := pg.NewMockTXManager(ctrl)
	tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	}).AnyTimes()
	m.audit.EXPECT().Record(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	s := New(Deps{
		Payouts:     m.payouts,
		Commissions: m.commissions,
		Partners:    m.partners,
		Settings:    m.settings,
		Ledger:      m.ledger,
		TxManager:   tx,
		Audit:       m.audit,
		Notifier:    m.notifier,
	})
	s.nowFn = func() time.Time { return testNow }
	return s, m
}

func TestService_RequestPayout(t *testing.T) {
	s, m := NewMock(t)
	settings := domain.DefaultProgramSettings()

	tests := []struct {
		name        string
		actor       domain.Actor
		partnerID   string
		prepareMock func()
		wantErr     error
		wantAmount  int64
	}{
		{
			name:      "partner requests full pending balance",
			actor:     domain.Actor{ID: "u1", Role: domain.RolePartner, PartnerID: "aff-1"},
			partnerID: "aff-1",
			prepareMock: func() {
				m.settings.EXPECT().GetProgramSettings(gomock.Any()).Return(&settings, nil)
				m.partners.EXPECT().GetByIDForUpdate(gomock.Any(), "aff-1").Return(&domain.Partner{
					ID: "aff-1", Status: domain.PartnerActive, TotalEarnings: 9000, PendingBalance: 6000,
				}, nil)
				m.payouts.EXPECT().HasOpen(gomock.Any(), "aff-1").Return(false, nil)
				m.payouts.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p *domain.Payout) (*domain.Payout, error) {
					assert.Equal(t, domain.PayoutPending, p.Status)
					assert.Equal(t, "paypal", p.PaymentMethod)
					p.ID = "p1"
					return p, nil
				})
			},
			wantAmount: 6000,
		},
		{
			name:      "other partner is forbidden",
			actor:     domain.Actor{ID: "u2", Role: domain.RolePartner, PartnerID: "aff-2"},
			partnerID: "aff-1",
			wantErr:   domain.ErrForbidden,
		},
		{
			name:      "below minimum",
			actor:     admin,
			partnerID: "aff-1",
			prepareMock: func() {
				m.settings.EXPECT().GetProgramSettings(gomock.Any()).Return(&settings, nil)
				m.partners.EXPECT().GetByIDForUpdate(gomock.Any(), "aff-1").Return(&domain.Partner{
					ID: "aff-1", Status: domain.PartnerActive, TotalEarnings: 4999, PendingBalance: 4999,
				}, nil)
				m.payouts.EXPECT().HasOpen(gomock.Any(), "aff-1").Return(false, nil)
			},
			wantErr: domain.ErrBelowMinimumPayout,
		},
		{
			name:      "payout already open",
			actor:     admin,
			partnerID: "aff-1",
			prepareMock: func() {
				m.settings.EXPECT().GetProgramSettings(gomock.Any()).Return(&settings, nil)
				m.partners.EXPECT().GetByIDForUpdate(gomock.Any(), "aff-1").Return(&domain.Partner{
					ID: "aff-1", Status: domain.PartnerActive, TotalEarnings: 9000, PendingBalance: 9000,
				}, nil)
				m.payouts.EXPECT().HasOpen(gomock.Any(), "aff-1").Return(true, nil)
			},
			wantErr: domain.ErrPayoutInFlight,
		},
		{
			name:      "suspended partner",
			actor:     admin,
			partnerID: "aff-1",
			prepareMock: func() {
				m.settings.EXPECT().GetProgramSettings(gomock.Any()).Return(&settings, nil)
				m.partners.EXPECT().GetByIDForUpdate(gomock.Any(), "aff-1").Return(&domain.Partner{
					ID: "aff-1", Status: domain.PartnerSuspended, PendingBalance: 9000, TotalEarnings: 9000,
				}, nil)
			},
			wantErr: domain.ErrPartnerInactive,
		},
		{
			name:      "unknown partner",
			actor:     admin,
			partnerID: "missing",
			prepareMock: func() {
				m.settings.EXPECT().GetProgramSettings(gomock.Any()).Return(&settings, nil)
				m.partners.EXPECT().GetByIDForUpdate(gomock.Any(), "missing").Return(nil, nil)
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}
			got, err := s.RequestPayout(context.Background(), tt.actor, tt.partnerID, "paypal")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantAmount, got.Amount)
		})
	}
}

func TestService_RequestPayoutBelowMinimumReportsNumbers(t *testing.T) {
	s, m := NewMock(t)
	settings := domain.DefaultProgramSettings()
	m.settings.EXPECT().GetProgramSettings(gomock.Any()).Return(&settings, nil)
	m.partners.EXPECT().GetByIDForUpdate(gomock.Any(), "aff-1").Return(&domain.Partner{
		ID: "aff-1", Status: domain.PartnerActive, TotalEarnings: 1200, PendingBalance: 1200,
	}, nil)
	m.payouts.EXPECT().HasOpen(gomock.Any(), "aff-1").Return(false, nil)

	_, err := s.RequestPayout(context.Background(), admin, "aff-1", "")

	var balanceErr *domain.BalanceError
	require.True(t, errors.As(err, &balanceErr))
	assert.Equal(t, int64(1200), balanceErr.Available)
	assert.Equal(t, int64(domain.DefaultMinimumPayout), balanceErr.Minimum)
}

func TestService_RejectPayoutRequest(t *testing.T) {
	s, m := NewMock(t)

	tests := []struct {
		name        string
		id          string
		reason      string
		prepareMock func()
		wantErr     error
	}{
		{
			name:   "pending payout rejected and commissions released",
			id:     "p1",
			reason: "bank details missing",
			prepareMock: func() {
				m.payouts.EXPECT().GetByIDForUpdate(gomock.Any(), "p1").Return(&domain.Payout{ID: "p1", PartnerID: "aff-1", Amount: 5000, Status: domain.PayoutPending}, nil)
				m.payouts.EXPECT().UpdateStatus(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p *domain.Payout) error {
					assert.Equal(t, domain.PayoutRejected, p.Status)
					assert.Equal(t, "bank details missing", *p.RejectionReason)
					assert.NotNil(t, p.RejectedAt)
					return nil
				})
				m.payouts.EXPECT().UnlinkCommissions(gomock.Any(), "p1").Return(nil)
			},
		},
		{
			name:    "reason required",
			id:      "p1",
			reason:  "  ",
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:   "paid payout cannot be rejected",
			id:     "p2",
			reason: "too late",
			prepareMock: func() {
				m.payouts.EXPECT().GetByIDForUpdate(gomock.Any(), "p2").Return(&domain.Payout{ID: "p2", Status: domain.PayoutPaid}, nil)
			},
			wantErr: domain.ErrAlreadyPaid,
		},
		{
			name:   "missing payout",
			id:     "p3",
			reason: "x",
			prepareMock: func() {
				m.payouts.EXPECT().GetByIDForUpdate(gomock.Any(), "p3").Return(nil, nil)
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}
			got, err := s.RejectPayoutRequest(context.Background(), admin, tt.id, tt.reason)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.PayoutRejected, got.Status)
		})
	}
}

func TestService_ProcessPayoutInsufficientBalance(t *testing.T) {
	s, m := NewMock(t)
	m.payouts.EXPECT().GetByID(gomock.Any(), "p1").Return(&domain.Payout{ID: "p1", PartnerID: "aff-1", Amount: 4000, Status: domain.PayoutApproved}, nil)
	m.partners.EXPECT().GetByIDForUpdate(gomock.Any(), "aff-1").Return(&domain.Partner{
		ID: "aff-1", TotalEarnings: 8000, PendingBalance: 5000,
	}, nil)
	m.payouts.EXPECT().GetByIDForUpdate(gomock.Any(), "p1").Return(&domain.Payout{ID: "p1", PartnerID: "aff-1", Amount: 4000, Status: domain.PayoutApproved}, nil)

	got, err := s.ProcessPayout(context.Background(), admin, "p1")

	assert.Nil(t, got)
	var balanceErr *domain.BalanceError
	require.True(t, errors.As(err, &balanceErr))
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
	assert.Equal(t, int64(4000), balanceErr.Requested)
	assert.Equal(t, int64(3000), balanceErr.Available)
}

func TestService_ProcessPayoutRequiresApproval(t *testing.T) {
	s, m := NewMock(t)
	m.payouts.EXPECT().GetByID(gomock.Any(), "p1").Return(&domain.Payout{ID: "p1", PartnerID: "aff-1", Amount: 100, Status: domain.PayoutPending}, nil)
	m.partners.EXPECT().GetByIDForUpdate(gomock.Any(), "aff-1").Return(&domain.Partner{ID: "aff-1", TotalEarnings: 1000}, nil)
	m.payouts.EXPECT().GetByIDForUpdate(gomock.Any(), "p1").Return(&domain.Payout{ID: "p1", PartnerID: "aff-1", Amount: 100, Status: domain.PayoutPending}, nil)

	_, err := s.ProcessPayout(context.Background(), admin, "p1")
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestCoverAndFit(t *testing.T) {
	cs := []domain.Commission{
		{ID: "a", CommissionAmount: 1000},
		{ID: "b", CommissionAmount: 3000},
		{ID: "c", CommissionAmount: 500},
	}

	selected, sum := cover(cs, 4000)
	assert.Equal(t, []string{"a", "b"}, commissionIDs(selected))
	assert.Equal(t, int64(4000), sum)

	selected, sum = cover(cs, 3500)
	assert.Equal(t, []string{"b", "c"}, commissionIDs(selected))
	assert.Equal(t, int64(3500), sum)

	selected, sum = cover(cs, 2000)
	assert.Nil(t, selected)
	assert.Equal(t, int64(1500), sum)

	selected, sum = cover(cs, 10000)
	assert.Nil(t, selected)
	assert.Equal(t, int64(4500), sum)

	selected, sum = fit(cs, 1600)
	assert.Equal(t, []string{"a", "c"}, commissionIDs(selected))
	assert.Equal(t, int64(1500), sum)
}

func TestService_ListByPartnerClampsPage(t *testing.T) {
	s, m := NewMock(t)
	m.payouts.EXPECT().ListByPartner(gomock.Any(), "aff-1", MaxPageSize, 0).Return(nil, nil)

	_, err := s.ListByPartner(context.Background(), admin, "aff-1", 10000, -5)
	assert.NoError(t, err)

	_, err = s.ListByPartner(context.Background(), domain.Actor{Role: domain.RolePartner, PartnerID: "aff-2"}, "aff-1", 10, 0)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// The tests below run against the in-memory store with the real ledger.

type fixture struct {
	store *memstore.Store
	svc   *Service
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	notifier := NewMockNotifier(ctrl)
	notifier.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	store := memstore.New()
	svc := New(Deps{
		Payouts:     store.Payouts(),
		Commissions: store.Commissions(),
		Partners:    store.Partners(),
		Settings:    store,
		Ledger:      ledger.New(store.Commissions(), store.Partners(), store),
		TxManager:   store,
		Audit:       audit.New(store),
		Notifier:    notifier,
		Concurrency: 4,
	})
	return &fixture{store: store, svc: svc}
}

// seedApproved stores approved commissions and the partner balance they imply.
func (f *fixture) seedApproved(t *testing.T, partnerID string, amounts ...int64) []string {
	var ids []string
	var total int64
	for i, amount := range amounts {
		c, err := f.store.Commissions().Create(context.Background(), &domain.Commission{
			PartnerID:        partnerID,
			OrderID:          partnerID + "-order-" + string(rune('a'+i)),
			CommissionAmount: amount,
			Status:           domain.CommissionApproved,
			CreatedAt:        testNow.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
		ids = append(ids, c.ID)
		total += amount
	}
	p := f.store.Partner(partnerID)
	if p.ID == "" {
		p = domain.Partner{ID: partnerID, ReferralCode: "code-" + partnerID}
	}
	p.TotalEarnings += total
	f.store.AddPartner(p)
	return ids
}

func TestService_ProcessPayoutSettlesOldestCommissions(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ids := f.seedApproved(t, "aff-1", 2000, 3000, 4000)

	p, err := f.store.Payouts().Create(ctx, &domain.Payout{PartnerID: "aff-1", Amount: 5000, Status: domain.PayoutApproved})
	require.NoError(t, err)

	st, err := f.svc.ProcessPayout(ctx, admin, p.ID)
	require.NoError(t, err)

	assert.Equal(t, domain.PayoutPaid, st.Payout.Status)
	assert.Len(t, st.Commissions, 2)
	assert.Equal(t, domain.CommissionPaid, f.store.Commission(ids[0]).Status)
	assert.Equal(t, domain.CommissionPaid, f.store.Commission(ids[1]).Status)
	assert.Equal(t, domain.CommissionApproved, f.store.Commission(ids[2]).Status)

	partner := f.store.Partner("aff-1")
	assert.Equal(t, int64(5000), partner.PaidBalance)
	assert.Equal(t, int64(4000), partner.ApprovedBalance())

	var processed int
	for _, e := range f.store.AuditLog() {
		if e.Action == audit.ActionPayoutProcessed {
			processed++
			assert.Equal(t, p.ID, e.EntityID)
		}
	}
	assert.Equal(t, 1, processed)

	_, err = f.svc.ProcessPayout(ctx, admin, p.ID)
	assert.ErrorIs(t, err, domain.ErrAlreadyPaid)
	assert.Equal(t, int64(5000), f.store.Partner("aff-1").PaidBalance)
}

func TestService_ProcessPayoutFailureChangesNothing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.store.AddPartner(domain.Partner{ID: "aff-1", ReferralCode: "A", TotalEarnings: 8000, PendingBalance: 5000})

	p, err := f.store.Payouts().Create(ctx, &domain.Payout{PartnerID: "aff-1", Amount: 4000, Status: domain.PayoutApproved})
	require.NoError(t, err)

	_, err = f.svc.ProcessPayout(ctx, admin, p.ID)
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)

	partner := f.store.Partner("aff-1")
	assert.Equal(t, int64(0), partner.PaidBalance)
	assert.Equal(t, int64(3000), partner.ApprovedBalance())
	assert.Equal(t, domain.PayoutApproved, f.store.Payout(p.ID).Status)
}

func TestService_ConcurrentProcessPayoutPaysOnce(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seedApproved(t, "aff-1", 3000, 3000)

	var payoutIDs []string
	for i := 0; i < 2; i++ {
		p, err := f.store.Payouts().Create(ctx, &domain.Payout{PartnerID: "aff-1", Amount: 6000, Status: domain.PayoutApproved})
		require.NoError(t, err)
		payoutIDs = append(payoutIDs, p.ID)
	}

	errs := make([]error, len(payoutIDs))
	var wg sync.WaitGroup
	for i, id := range payoutIDs {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			_, errs[i] = f.svc.ProcessPayout(ctx, admin, id)
		}(i, id)
	}
	wg.Wait()

	var ok, insufficient int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, domain.ErrInsufficientBalance):
			insufficient++
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, 1, insufficient)

	partner := f.store.Partner("aff-1")
	assert.Equal(t, int64(6000), partner.PaidBalance)
	assert.Equal(t, int64(0), partner.ApprovedBalance())
}

func TestService_ProcessPayoutRequiresExactCover(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ids := f.seedApproved(t, "aff-1", 3000, 3000)

	p, err := f.store.Payouts().Create(ctx, &domain.Payout{PartnerID: "aff-1", Amount: 4000, Status: domain.PayoutApproved})
	require.NoError(t, err)

	got, err := f.svc.ProcessPayout(ctx, admin, p.ID)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
	var stateErr *domain.StateError
	require.True(t, errors.As(err, &stateErr))
	assert.Equal(t, int64(4000), stateErr.Amount)
	assert.Equal(t, int64(6000), stateErr.Balance)
	assert.Equal(t, int64(3000), stateErr.Covered)
	assert.Contains(t, err.Error(), "short by 1000")

	partner := f.store.Partner("aff-1")
	assert.Equal(t, int64(0), partner.PaidBalance)
	assert.Equal(t, int64(6000), partner.ApprovedBalance())
	for _, id := range ids {
		assert.Equal(t, domain.CommissionApproved, f.store.Commission(id).Status)
	}
	assert.Equal(t, domain.PayoutApproved, f.store.Payout(p.ID).Status)

	result, err := f.svc.RunPayoutBatch(ctx, admin, false)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Succeeded)
	assert.Contains(t, result.Payouts[0].Error, domain.ErrPayoutInFlight.Error())

	_, err = f.svc.RejectPayoutRequest(ctx, admin, p.ID, "amount does not match commissions")
	require.NoError(t, err)
	result, err = f.svc.RunPayoutBatch(ctx, admin, false)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Succeeded)
	assert.Equal(t, int64(6000), result.Total)
	assert.Equal(t, int64(6000), f.store.Partner("aff-1").PaidBalance)
	assert.Equal(t, int64(0), f.store.Partner("aff-1").ApprovedBalance())
}

func TestService_RequestApproveProcess(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	partner := domain.Actor{ID: "u1", Role: domain.RolePartner, PartnerID: "aff-1"}
	f.store.AddPartner(domain.Partner{ID: "aff-1", ReferralCode: "A", TotalEarnings: 6000, PendingBalance: 6000})

	p, err := f.svc.RequestPayout(ctx, partner, "aff-1", "bank")
	require.NoError(t, err)
	assert.Equal(t, int64(6000), p.Amount)

	_, err = f.svc.RequestPayout(ctx, partner, "aff-1", "bank")
	assert.ErrorIs(t, err, domain.ErrPayoutInFlight)

	p, err = f.svc.ApprovePayoutRequest(ctx, admin, p.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PayoutApproved, p.Status)

	_, err = f.svc.ProcessPayout(ctx, admin, p.ID)
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)

	p, err = f.svc.RejectPayoutRequest(ctx, admin, p.ID, "commissions still pending")
	require.NoError(t, err)
	assert.Equal(t, domain.PayoutRejected, p.Status)

	open, err := f.store.Payouts().HasOpen(ctx, "aff-1")
	require.NoError(t, err)
	assert.False(t, open)
}

func TestService_RecordManualPayout(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ids := f.seedApproved(t, "aff-1", 1500, 2500)
	f.seedApproved(t, "aff-2", 1000)

	st, err := f.svc.RecordManualPayout(ctx, admin, "aff-1", 2500, []string{ids[1]}, "", "wire 42")
	require.NoError(t, err)
	assert.Equal(t, MethodManual, st.Payout.PaymentMethod)
	assert.Equal(t, "wire 42", *st.Payout.Notes)
	assert.Equal(t, []string{ids[1]}, st.Commissions)
	assert.Equal(t, domain.CommissionApproved, f.store.Commission(ids[0]).Status)
	assert.Equal(t, int64(2500), f.store.Partner("aff-1").PaidBalance)

	_, err = f.svc.RecordManualPayout(ctx, admin, "aff-1", 1500, []string{ids[1]}, "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidState)

	_, err = f.svc.RecordManualPayout(ctx, admin, "aff-2", 1500, []string{ids[0]}, "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.svc.RecordManualPayout(ctx, admin, "aff-1", 1000, []string{ids[0]}, "", "")
	var stateErr *domain.StateError
	require.True(t, errors.As(err, &stateErr))
	assert.Equal(t, int64(1000), stateErr.Amount)
	assert.Equal(t, int64(1500), stateErr.Covered)
	assert.Contains(t, err.Error(), "over by 500")
	assert.Equal(t, domain.CommissionApproved, f.store.Commission(ids[0]).Status)
	assert.Equal(t, int64(2500), f.store.Partner("aff-1").PaidBalance)

	_, err = f.svc.RecordManualPayout(ctx, admin, "aff-1", 0, nil, "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	st, err = f.svc.RecordManualPayout(ctx, admin, "aff-1", 1500, nil, "check", "")
	require.NoError(t, err)
	assert.Equal(t, []string{ids[0]}, st.Commissions)
	assert.Equal(t, int64(0), f.store.Partner("aff-1").ApprovedBalance())
}

func TestService_RunPayoutBatch(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seedApproved(t, "aff-1", 3000, 4000)
	f.seedApproved(t, "aff-2", 2000)
	f.seedApproved(t, "aff-3", 6000)
	_, err := f.store.Payouts().Create(ctx, &domain.Payout{PartnerID: "aff-3", Amount: 6000, Status: domain.PayoutPending})
	require.NoError(t, err)

	preview, err := f.svc.RunPayoutBatch(ctx, admin, true)
	require.NoError(t, err)
	assert.True(t, preview.DryRun)
	require.Len(t, preview.Payouts, 2)
	assert.Equal(t, "aff-1", preview.Payouts[0].PartnerID)
	assert.Equal(t, int64(7000), preview.Payouts[0].Amount)
	assert.Equal(t, int64(0), f.store.Partner("aff-1").PaidBalance)

	result, err := f.svc.RunPayoutBatch(ctx, admin, false)
	require.NoError(t, err)
	assert.Equal(t, preview.Succeeded, result.Succeeded)
	assert.Equal(t, preview.Failed, result.Failed)
	assert.Equal(t, preview.Total, result.Total)
	for i := range preview.Payouts {
		assert.Equal(t, preview.Payouts[i].PartnerID, result.Payouts[i].PartnerID)
		assert.Equal(t, preview.Payouts[i].Amount, result.Payouts[i].Amount)
		assert.Equal(t, preview.Payouts[i].Commissions, result.Payouts[i].Commissions)
		assert.Equal(t, preview.Payouts[i].Error, result.Payouts[i].Error)
	}
	assert.Equal(t, 1, result.Succeeded)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, int64(7000), result.Total)
	assert.Equal(t, 2, result.Payouts[0].Commissions)
	assert.NotEmpty(t, result.Payouts[0].PayoutID)
	assert.Contains(t, result.Payouts[1].Error, domain.ErrPayoutInFlight.Error())

	assert.Equal(t, int64(7000), f.store.Partner("aff-1").PaidBalance)
	assert.Equal(t, int64(0), f.store.Partner("aff-3").PaidBalance)
	assert.Equal(t, int64(0), f.store.Partner("aff-2").PaidBalance)

	again, err := f.svc.RunPayoutBatch(ctx, admin, false)
	require.NoError(t, err)
	assert.Equal(t, 0, again.Succeeded)
}

func TestService_RunPayoutBatchDryRunMatchesRealRun(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(t *testing.T, f *fixture)
		wantErr error
	}{
		{
			name: "open payout blocks the partner",
			prepare: func(t *testing.T, f *fixture) {
				f.seedApproved(t, "aff-1", 6000)
				_, err := f.store.Payouts().Create(context.Background(), &domain.Payout{PartnerID: "aff-1", Amount: 6000, Status: domain.PayoutPending})
				require.NoError(t, err)
			},
			wantErr: domain.ErrPayoutInFlight,
		},
		{
			name: "fitting commissions stay below minimum",
			prepare: func(t *testing.T, f *fixture) {
				f.seedApproved(t, "aff-1", 4000, 3000)
				p := f.store.Partner("aff-1")
				p.PaidBalance = 1000
				f.store.AddPartner(p)
			},
			wantErr: domain.ErrBelowMinimumPayout,
		},
		{
			name: "no commission fits the balance",
			prepare: func(t *testing.T, f *fixture) {
				f.seedApproved(t, "aff-1", 9000)
				p := f.store.Partner("aff-1")
				p.PendingBalance = 3000
				f.store.AddPartner(p)
			},
			wantErr: errNothingToPay,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			ctx := context.Background()
			tt.prepare(t, f)
			before := f.store.Partner("aff-1")

			preview, err := f.svc.RunPayoutBatch(ctx, admin, true)
			require.NoError(t, err)
			assert.Equal(t, before, f.store.Partner("aff-1"))

			result, err := f.svc.RunPayoutBatch(ctx, admin, false)
			require.NoError(t, err)

			for _, r := range []*BatchResult{preview, result} {
				assert.Equal(t, 0, r.Succeeded)
				assert.Equal(t, 1, r.Failed)
				assert.Equal(t, int64(0), r.Total)
				require.Len(t, r.Payouts, 1)
				assert.Contains(t, r.Payouts[0].Error, tt.wantErr.Error())
			}
			assert.Equal(t, before, f.store.Partner("aff-1"))
		})
	}
}
