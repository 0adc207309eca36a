package domain

type CommissionStatus string

const (
	CommissionPending  CommissionStatus = "pending"
	CommissionApproved CommissionStatus = "approved"
	CommissionFlagged  CommissionStatus = "flagged"
	CommissionPaid     CommissionStatus = "paid"
	CommissionVoid     CommissionStatus = "void"
)

var commissionTransitions = map[CommissionStatus][]CommissionStatus{
	CommissionPending:  {CommissionApproved, CommissionVoid},
	CommissionFlagged:  {CommissionApproved, CommissionVoid},
	CommissionApproved: {CommissionPaid},
}

// CheckTransition returns nil when from -> to is legal. Leaving paid is always ErrAlreadyPaid.
func (s CommissionStatus) CheckTransition(id string, to CommissionStatus) error {
	for _, next := range commissionTransitions[s] {
		if next == to {
			return nil
		}
	}
	err := ErrInvalidState
	if s == CommissionPaid {
		err = ErrAlreadyPaid
	}
	return &StateError{Err: err, Entity: "commission", ID: id, From: string(s), To: string(to)}
}

type PayoutStatus string

const (
	PayoutPending  PayoutStatus = "pending"
	PayoutApproved PayoutStatus = "approved"
	PayoutRejected PayoutStatus = "rejected"
	PayoutPaid     PayoutStatus = "paid"
)

var payoutTransitions = map[PayoutStatus][]PayoutStatus{
	PayoutPending:  {PayoutApproved, PayoutRejected},
	PayoutApproved: {PayoutPaid, PayoutRejected},
}

func (s PayoutStatus) CheckTransition(id string, to PayoutStatus) error {
	for _, next := range payoutTransitions[s] {
		if next == to {
			return nil
		}
	}
	err := ErrInvalidState
	if s == PayoutPaid {
		err = ErrAlreadyPaid
	}
	return &StateError{Err: err, Entity: "payout", ID: id, From: string(s), To: string(to)}
}

// BalanceDelta is the change a ledger transition applies to a partner's counters.
type BalanceDelta struct {
	Earnings  int64
	Pending   int64
	Paid      int64
	Referrals int
	Sales     int64
}

func (d BalanceDelta) IsZero() bool {
	return d == BalanceDelta{}
}

// AccrualDelta is what a clean commission contributes to its partner when it starts accruing.
func AccrualDelta(c *Commission) BalanceDelta {
	return BalanceDelta{
		Earnings:  c.CommissionAmount,
		Pending:   c.CommissionAmount,
		Referrals: 1,
		Sales:     c.OrderTotal,
	}
}

// TransitionDelta returns the balance change caused by moving c to the target status.
// approved -> paid is zero: the settling payout applies its own paid delta once.
func TransitionDelta(c *Commission, to CommissionStatus) BalanceDelta {
	switch {
	case c.Status == CommissionPending && to == CommissionApproved:
		return BalanceDelta{Pending: -c.CommissionAmount}
	case c.Status == CommissionFlagged && to == CommissionApproved:
		return BalanceDelta{
			Earnings:  c.CommissionAmount,
			Referrals: 1,
			Sales:     c.OrderTotal,
		}
	case c.Status == CommissionPending && to == CommissionVoid:
		return BalanceDelta{Earnings: -c.CommissionAmount, Pending: -c.CommissionAmount}
	}
	return BalanceDelta{}
}
