package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommissionStatus_CheckTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    CommissionStatus
		to      CommissionStatus
		wantErr error
	}{
		{name: "pending to approved", from: CommissionPending, to: CommissionApproved},
		{name: "pending to void", from: CommissionPending, to: CommissionVoid},
		{name: "flagged to approved", from: CommissionFlagged, to: CommissionApproved},
		{name: "flagged to void", from: CommissionFlagged, to: CommissionVoid},
		{name: "approved to paid", from: CommissionApproved, to: CommissionPaid},
		{name: "pending to paid", from: CommissionPending, to: CommissionPaid, wantErr: ErrInvalidState},
		{name: "approved to void", from: CommissionApproved, to: CommissionVoid, wantErr: ErrInvalidState},
		{name: "void to approved", from: CommissionVoid, to: CommissionApproved, wantErr: ErrInvalidState},
		{name: "paid to void", from: CommissionPaid, to: CommissionVoid, wantErr: ErrAlreadyPaid},
		{name: "paid to approved", from: CommissionPaid, to: CommissionApproved, wantErr: ErrAlreadyPaid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.from.CheckTransition("c1", tt.to)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			var stateErr *StateError
			assert.True(t, errors.As(err, &stateErr))
			assert.Equal(t, "commission", stateErr.Entity)
		})
	}
}

func TestPayoutStatus_CheckTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    PayoutStatus
		to      PayoutStatus
		wantErr error
	}{
		{name: "pending to approved", from: PayoutPending, to: PayoutApproved},
		{name: "pending to rejected", from: PayoutPending, to: PayoutRejected},
		{name: "approved to paid", from: PayoutApproved, to: PayoutPaid},
		{name: "approved to rejected", from: PayoutApproved, to: PayoutRejected},
		{name: "pending to paid", from: PayoutPending, to: PayoutPaid, wantErr: ErrInvalidState},
		{name: "rejected to approved", from: PayoutRejected, to: PayoutApproved, wantErr: ErrInvalidState},
		{name: "paid to rejected", from: PayoutPaid, to: PayoutRejected, wantErr: ErrAlreadyPaid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.from.CheckTransition("p1", tt.to)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTransitionDelta(t *testing.T) {
	c := &Commission{CommissionAmount: 1000, OrderTotal: 12000}

	tests := []struct {
		name string
		from CommissionStatus
		to   CommissionStatus
		want BalanceDelta
	}{
		{name: "approve pending moves out of pending", from: CommissionPending, to: CommissionApproved, want: BalanceDelta{Pending: -1000}},
		{name: "approve flagged accrues deferred totals", from: CommissionFlagged, to: CommissionApproved, want: BalanceDelta{Earnings: 1000, Referrals: 1, Sales: 12000}},
		{name: "void pending reverses accrual", from: CommissionPending, to: CommissionVoid, want: BalanceDelta{Earnings: -1000, Pending: -1000}},
		{name: "void flagged touches nothing", from: CommissionFlagged, to: CommissionVoid, want: BalanceDelta{}},
		{name: "pay approved touches nothing", from: CommissionApproved, to: CommissionPaid, want: BalanceDelta{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c.Status = tt.from
			assert.Equal(t, tt.want, TransitionDelta(c, tt.to))
		})
	}
}

func TestPartner_ApprovedBalance(t *testing.T) {
	p := Partner{TotalEarnings: 8000, PendingBalance: 5000, PaidBalance: 0}
	assert.Equal(t, int64(3000), p.ApprovedBalance())
}

func TestBalanceError(t *testing.T) {
	err := error(&BalanceError{Err: ErrInsufficientBalance, PartnerID: "p1", Requested: 4000, Available: 3000})
	assert.ErrorIs(t, err, ErrInsufficientBalance)
	assert.Contains(t, err.Error(), "requested 4000, available 3000")

	err = &BalanceError{Err: ErrBelowMinimumPayout, PartnerID: "p1", Available: 100, Minimum: 5000}
	assert.ErrorIs(t, err, ErrBelowMinimumPayout)
	assert.Contains(t, err.Error(), "minimum 5000")
}

func TestStateError(t *testing.T) {
	tests := []struct {
		name string
		err  *StateError
		want string
		not  string
	}{
		{
			name: "plain transition",
			err:  &StateError{Err: ErrInvalidState, Entity: "payout", ID: "po1", From: "rejected", To: "paid"},
			want: "payout po1 cannot move from rejected to paid",
			not:  "amount",
		},
		{
			name: "commissions fall short",
			err:  &StateError{Err: ErrInvalidState, Entity: "payout", ID: "po1", From: "approved", To: "paid", Amount: 4000, Balance: 6000, Covered: 3000},
			want: "amount 4000, approved balance 6000, commissions cover 3000, short by 1000",
		},
		{
			name: "commissions overshoot",
			err:  &StateError{Err: ErrInvalidState, Entity: "payout", ID: "po1", From: "approved", To: "paid", Amount: 4000, Balance: 6000, Covered: 6000},
			want: "over by 2000",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, ErrInvalidState)
			assert.Contains(t, tt.err.Error(), tt.want)
			if tt.not != "" {
				assert.NotContains(t, tt.err.Error(), tt.not)
			}
		})
	}
}
