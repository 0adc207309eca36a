package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type RateType string

const (
	RatePercent RateType = "percent"
	RateFixed   RateType = "fixed"
)

// Rate is either a percentage of the line total or a fixed minor-unit amount per unit sold.
type Rate struct {
	Type  RateType        `json:"type"`
	Value decimal.Decimal `json:"value"`
}

type PartnerStatus string

const (
	PartnerActive    PartnerStatus = "active"
	PartnerSuspended PartnerStatus = "suspended"
	PartnerPending   PartnerStatus = "pending"
)

type Partner struct {
	ID                   string        `db:"id"`
	OwnerCustomerID      string        `db:"owner_customer_id"`
	ReferralCode         string        `db:"referral_code"`
	Status               PartnerStatus `db:"status"`
	TotalEarnings        int64         `db:"total_earnings"`
	PendingBalance       int64         `db:"pending_balance"`
	PaidBalance          int64         `db:"paid_balance"`
	TotalReferrals       int           `db:"total_referrals"`
	TotalSales           int64         `db:"total_sales"`
	CustomRate           *Rate         `db:"-"`
	FriendsFamilyEnabled bool          `db:"friends_family_enabled"`
	CreatedAt            time.Time     `db:"created_at"`
	UpdatedAt            time.Time     `db:"updated_at"`
}

// ApprovedBalance is earned, confirmed and not yet paid. It is never stored.
func (p Partner) ApprovedBalance() int64 {
	return p.TotalEarnings - p.PendingBalance - p.PaidBalance
}

type AttributionType string

const (
	AttributionDirect AttributionType = "direct"
	AttributionCookie AttributionType = "cookie"
	AttributionCoupon AttributionType = "coupon"
)

type FlagReason string

const (
	FlagSelfReferral      FlagReason = "self_referral"
	FlagCouponAbuse       FlagReason = "coupon_abuse"
	FlagSuspiciousPattern FlagReason = "suspicious_pattern"
)

// Cursor is the keyset position of the last row of a page. The zero value starts at the top.
type Cursor struct {
	CreatedAt time.Time
	ID        string
}

type Commission struct {
	ID               string           `db:"id"`
	PartnerID        string           `db:"partner_id"`
	OrderID          string           `db:"order_id"`
	CustomerID       string           `db:"customer_id"`
	OrderAmount      int64            `db:"order_amount"`
	OrderTotal       int64            `db:"order_total"`
	CommissionRate   int64            `db:"commission_rate"`
	CommissionAmount int64            `db:"commission_amount"`
	Status           CommissionStatus `db:"status"`
	AttributionType  AttributionType  `db:"attribution_type"`
	FlagReason       *FlagReason      `db:"flag_reason"`
	FlagDetails      *string          `db:"flag_details"`
	ReviewedBy       *string          `db:"reviewed_by"`
	ReviewNotes      *string          `db:"review_notes"`
	ReviewedAt       *time.Time       `db:"reviewed_at"`
	VoidReason       *string          `db:"void_reason"`
	CreatedAt        time.Time        `db:"created_at"`
	ApprovedAt       *time.Time       `db:"approved_at"`
	FlaggedAt        *time.Time       `db:"flagged_at"`
	PaidAt           *time.Time       `db:"paid_at"`
	VoidedAt         *time.Time       `db:"voided_at"`
}

type Payout struct {
	ID              string       `db:"id"`
	PartnerID       string       `db:"partner_id"`
	Amount          int64        `db:"amount"`
	Status          PayoutStatus `db:"status"`
	PaymentMethod   string       `db:"payment_method"`
	Notes           *string      `db:"notes"`
	RejectionReason *string      `db:"rejection_reason"`
	ProcessedBy     *string      `db:"processed_by"`
	CreatedAt       time.Time    `db:"created_at"`
	ApprovedAt      *time.Time   `db:"approved_at"`
	RejectedAt      *time.Time   `db:"rejected_at"`
	PaidAt          *time.Time   `db:"paid_at"`
}

type ProcessedEvent struct {
	ID        string            `db:"id"`
	Type      string            `db:"type"`
	Source    string            `db:"source"`
	Metadata  map[string]string `db:"metadata"`
	CreatedAt time.Time         `db:"created_at"`
}

type AuditEntry struct {
	ID         string         `db:"id"`
	ActorID    string         `db:"actor_id"`
	ActorRole  string         `db:"actor_role"`
	Action     string         `db:"action"`
	EntityType string         `db:"entity_type"`
	EntityID   string         `db:"entity_id"`
	Metadata   map[string]any `db:"metadata"`
	CreatedAt  time.Time      `db:"created_at"`
}

// Storefront read model. Owned by the storefront, read-only here.

type Order struct {
	ID              string          `db:"id"`
	CustomerID      string          `db:"customer_id"`
	CustomerEmail   string          `db:"customer_email"`
	SubtotalAmount  *int64          `db:"subtotal_amount"`
	TotalAmount     int64           `db:"total_amount"`
	ReferralCode    *string         `db:"referral_code"`
	AttributionType AttributionType `db:"attribution_type"`
	FriendsFamily   bool            `db:"friends_family"`
	Status          string          `db:"status"`
}

// CommissionBase is the subtotal, or the total when no subtotal was captured.
func (o Order) CommissionBase() int64 {
	if o.SubtotalAmount != nil {
		return *o.SubtotalAmount
	}
	return o.TotalAmount
}

type OrderItem struct {
	ProductID string `db:"product_id"`
	UnitPrice int64  `db:"unit_price"`
	Quantity  int64  `db:"quantity"`
	Product   *Product
}

type Product struct {
	ID               string `db:"id"`
	AffiliateEnabled bool   `db:"affiliate_enabled"`
	UseGlobalRate    bool   `db:"use_global_rate"`
	Rate             *Rate  `db:"-"`
}

type Customer struct {
	ID    string `db:"id"`
	Email string `db:"email"`
}

type CouponRedemption struct {
	CouponID         string `db:"coupon_id"`
	Code             string `db:"code"`
	BlocksCommission bool   `db:"blocks_commission"`
}

type ProgramSettings struct {
	DefaultRate          Rate
	FriendsFamilyEnabled bool
	FriendsFamilyRate    Rate
	MinimumPayout        int64
	ApprovalDays         int
}

const (
	DefaultApprovalDays  = 14
	DefaultMinimumPayout = 5000
)

func DefaultProgramSettings() ProgramSettings {
	return ProgramSettings{
		DefaultRate:   Rate{Type: RatePercent, Value: decimal.NewFromInt(10)},
		MinimumPayout: DefaultMinimumPayout,
		ApprovalDays:  DefaultApprovalDays,
	}
}

type Role string

const (
	RoleAdmin   Role = "admin"
	RolePartner Role = "partner"
	RoleSystem  Role = "system"
)

// Actor is the caller identity attached to every mutation and audit entry.
type Actor struct {
	ID        string
	Role      Role
	PartnerID string
}

var SystemActor = Actor{ID: "system", Role: RoleSystem}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin || a.Role == RoleSystem
}

type Notification struct {
	ID        string            `json:"id"`
	Kind      string            `json:"kind"`
	PartnerID string            `json:"partner_id"`
	Amount    int64             `json:"amount"`
	Data      map[string]string `json:"data,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

// DeletionReport counts rows removed by a partner hard-delete.
type DeletionReport struct {
	Payouts        int64 `json:"payouts"`
	Commissions    int64 `json:"commissions"`
	Clicks         int64 `json:"clicks"`
	Agreements     int64 `json:"agreements"`
	PayoutAccounts int64 `json:"payout_accounts"`
	InviteUsages   int64 `json:"invite_usages"`
}
