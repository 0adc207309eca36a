package fraud

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/affiliate/internal/domain"
	"github.com/GlebRadaev/affiliate/internal/storefront"
)

//go:generate mockgen -source=screener.go -destination=mock_screener.go -package=fraud

type Subject struct {
	Order   *domain.Order
	Partner *domain.Partner
}

type Verdict struct {
	Flagged bool
	Reason  domain.FlagReason
	Details string
}

// Check returns a flagged verdict, or nil when the subject looks clean.
type Check interface {
	Evaluate(ctx context.Context, subject Subject) (*Verdict, error)
}

type VelocityCounter interface {
	CountRecentByCustomer(ctx context.Context, partnerID, customerID string, since time.Time) (int, error)
}

// Screener runs its checks in order and stops at the first flag.
type Screener struct {
	checks []Check
}

func New(checks ...Check) *Screener {
	return &Screener{checks: checks}
}

func (s *Screener) Screen(ctx context.Context, subject Subject) (Verdict, error) {
	for _, check := range s.checks {
		verdict, err := check.Evaluate(ctx, subject)
		if err != nil {
			zap.L().Error("fraud check failed", zap.String("orderID", subject.Order.ID), zap.Error(err))
			return Verdict{}, err
		}
		if verdict != nil && verdict.Flagged {
			zap.L().Info("commission flagged",
				zap.String("orderID", subject.Order.ID),
				zap.String("partnerID", subject.Partner.ID),
				zap.String("reason", string(verdict.Reason)),
			)
			return *verdict, nil
		}
	}
	return Verdict{}, nil
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

type SelfReferralCheck struct {
	customers storefront.CustomerLookup
}

func NewSelfReferralCheck(customers storefront.CustomerLookup) *SelfReferralCheck {
	return &SelfReferralCheck{customers: customers}
}

func (c *SelfReferralCheck) Evaluate(ctx context.Context, subject Subject) (*Verdict, error) {
	order, partner := subject.Order, subject.Partner
	if partner.OwnerCustomerID == "" {
		return nil, nil
	}
	if order.CustomerID != "" && order.CustomerID == partner.OwnerCustomerID {
		return &Verdict{
			Flagged: true,
			Reason:  domain.FlagSelfReferral,
			Details: "order placed by the partner's own customer account",
		}, nil
	}

	buyerEmail := NormalizeEmail(order.CustomerEmail)
	if buyerEmail == "" && order.CustomerID != "" {
		buyer, err := c.customers.GetCustomer(ctx, order.CustomerID)
		if err != nil {
			return nil, err
		}
		if buyer != nil {
			buyerEmail = NormalizeEmail(buyer.Email)
		}
	}
	if buyerEmail == "" {
		return nil, nil
	}
	if order.CustomerID == "" {
		account, err := c.customers.GetCustomerByEmail(ctx, buyerEmail)
		if err != nil {
			return nil, err
		}
		if account != nil && account.ID == partner.OwnerCustomerID {
			return &Verdict{
				Flagged: true,
				Reason:  domain.FlagSelfReferral,
				Details: "guest order email belongs to the partner's own customer account",
			}, nil
		}
	}

	owner, err := c.customers.GetCustomer(ctx, partner.OwnerCustomerID)
	if err != nil {
		return nil, err
	}
	if owner == nil || NormalizeEmail(owner.Email) != buyerEmail {
		return nil, nil
	}
	return &Verdict{
		Flagged: true,
		Reason:  domain.FlagSelfReferral,
		Details: fmt.Sprintf("buyer email %s matches partner owner", buyerEmail),
	}, nil
}

type CouponAbuseCheck struct {
	coupons storefront.CouponLookup
}

func NewCouponAbuseCheck(coupons storefront.CouponLookup) *CouponAbuseCheck {
	return &CouponAbuseCheck{coupons: coupons}
}

func (c *CouponAbuseCheck) Evaluate(ctx context.Context, subject Subject) (*Verdict, error) {
	redemptions, err := c.coupons.ListRedemptions(ctx, subject.Order.ID)
	if err != nil {
		return nil, err
	}
	for _, r := range redemptions {
		if r.BlocksCommission {
			return &Verdict{
				Flagged: true,
				Reason:  domain.FlagCouponAbuse,
				Details: fmt.Sprintf("coupon %s blocks commission", r.Code),
			}, nil
		}
	}
	return nil, nil
}

// VelocityCheck flags a partner collecting too many commissions from one buyer in a window.
// A non-positive max disables it.
type VelocityCheck struct {
	counter VelocityCounter
	window  time.Duration
	max     int
	nowFn   func() time.Time
}

func NewVelocityCheck(counter VelocityCounter, window time.Duration, max int) *VelocityCheck {
	return &VelocityCheck{counter: counter, window: window, max: max, nowFn: time.Now}
}

func (c *VelocityCheck) Evaluate(ctx context.Context, subject Subject) (*Verdict, error) {
	if c.max <= 0 || subject.Order.CustomerID == "" {
		return nil, nil
	}
	since := c.nowFn().Add(-c.window)
	count, err := c.counter.CountRecentByCustomer(ctx, subject.Partner.ID, subject.Order.CustomerID, since)
	if err != nil {
		return nil, err
	}
	if count < c.max {
		return nil, nil
	}
	return &Verdict{
		Flagged: true,
		Reason:  domain.FlagSuspiciousPattern,
		Details: fmt.Sprintf("%d commissions from customer %s within %s", count, subject.Order.CustomerID, c.window),
	}, nil
}
