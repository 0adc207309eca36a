package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound            = errors.New("not found")
	ErrInvalidState        = errors.New("invalid state transition")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrAlreadyPaid         = errors.New("already paid")
	ErrAlreadyRecorded     = errors.New("commission already recorded")
	ErrDuplicateEvent      = errors.New("event already processed")
	ErrTransient           = errors.New("transient store error")
	ErrPartnerInactive     = errors.New("partner is not active")
	ErrNotAttributed       = errors.New("order has no referral code")
	ErrBelowMinimumPayout  = errors.New("balance below minimum payout")
	ErrPayoutInFlight      = errors.New("payout already in progress")
	ErrInvalidInput        = errors.New("invalid input")
	ErrForbidden           = errors.New("forbidden")
)

// BalanceError reports a sufficiency check failure with the numbers an operator needs.
type BalanceError struct {
	Err       error
	PartnerID string
	Requested int64
	Available int64
	Minimum   int64
}

func (e *BalanceError) Error() string {
	if e.Minimum > 0 {
		return fmt.Sprintf("%s: partner %s has %d, minimum %d", e.Err, e.PartnerID, e.Available, e.Minimum)
	}
	return fmt.Sprintf("%s: partner %s requested %d, available %d", e.Err, e.PartnerID, e.Requested, e.Available)
}

func (e *BalanceError) Unwrap() error {
	return e.Err
}

// StateError reports a refused transition. Payout settlement also fills in the amounts: what was
// attempted, the approved balance, and what the commissions cover.
type StateError struct {
	Err    error
	Entity string
	ID     string
	From   string
	To     string

	Amount  int64
	Balance int64
	Covered int64
}

func (e *StateError) Error() string {
	msg := fmt.Sprintf("%s: %s %s cannot move from %s to %s", e.Err, e.Entity, e.ID, e.From, e.To)
	if e.Amount == 0 {
		return msg
	}
	msg += fmt.Sprintf(" (amount %d, approved balance %d, commissions cover %d", e.Amount, e.Balance, e.Covered)
	switch diff := e.Amount - e.Covered; {
	case diff > 0:
		msg += fmt.Sprintf(", short by %d", diff)
	case diff < 0:
		msg += fmt.Sprintf(", over by %d", -diff)
	}
	return msg + ")"
}

func (e *StateError) Unwrap() error {
	return e.Err
}
