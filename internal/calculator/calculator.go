// Package calculator computes partner commissions. Everything here is pure: identical inputs
// always give identical results, so amounts can be recomputed for audits without side effects.
package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/affiliate/internal/domain"
)

var hundred = decimal.NewFromInt(100)

type Result struct {
	Amount      int64
	Base        int64
	RatePercent int64
}

// Compute returns the commission for an order. Line items are rated one by one; without items
// the order's commission base is rated once with the same rate priority.
func Compute(order domain.Order, items []domain.OrderItem, partner domain.Partner, settings domain.ProgramSettings, friendsFamily bool) Result {
	base := order.CommissionBase()

	var amount int64
	if len(items) > 0 {
		for _, item := range items {
			if item.Product != nil && !item.Product.AffiliateEnabled {
				continue
			}
			rate := pickRate(item.Product, partner, settings, friendsFamily)
			amount += apply(rate, item.UnitPrice*item.Quantity, item.Quantity)
		}
	} else {
		rate := pickRate(nil, partner, settings, friendsFamily)
		amount = apply(rate, base, 1)
	}

	return Result{
		Amount:      amount,
		Base:        base,
		RatePercent: EffectiveRatePercent(amount, base, settings.DefaultRate),
	}
}

// EffectiveRatePercent is the reporting rate round(amount/base*100), or the default rate when
// the base is zero.
func EffectiveRatePercent(amount, base int64, fallback domain.Rate) int64 {
	if base == 0 {
		return fallback.Value.Round(0).IntPart()
	}
	return decimal.NewFromInt(amount).Mul(hundred).Div(decimal.NewFromInt(base)).Round(0).IntPart()
}

// pickRate order: friends & family, partner override, product rate, program default.
func pickRate(product *domain.Product, partner domain.Partner, settings domain.ProgramSettings, friendsFamily bool) domain.Rate {
	if friendsFamily && settings.FriendsFamilyEnabled {
		return settings.FriendsFamilyRate
	}
	if partner.CustomRate != nil {
		return *partner.CustomRate
	}
	if product != nil && !product.UseGlobalRate && product.Rate != nil {
		return *product.Rate
	}
	return settings.DefaultRate
}

func apply(rate domain.Rate, lineTotal, quantity int64) int64 {
	if lineTotal <= 0 {
		return 0
	}
	var amount int64
	switch rate.Type {
	case domain.RateFixed:
		amount = rate.Value.Mul(decimal.NewFromInt(quantity)).Floor().IntPart()
		if amount > lineTotal {
			amount = lineTotal
		}
	default:
		amount = decimal.NewFromInt(lineTotal).Mul(rate.Value).Div(hundred).Floor().IntPart()
	}
	if amount < 0 {
		return 0
	}
	return amount
}
