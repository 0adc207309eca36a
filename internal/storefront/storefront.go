// Package storefront declares the read-only lookups the commission engine consumes from the
// rest of the shop. Implementations live in internal/repo/storefront-repo.
package storefront

import (
	"context"

	"github.com/GlebRadaev/affiliate/internal/domain"
)

//go:generate mockgen -source=storefront.go -destination=mock_storefront.go -package=storefront

type OrderLookup interface {
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
	GetOrderItems(ctx context.Context, orderID string) ([]domain.OrderItem, error)
}

type ProductLookup interface {
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
}

// CustomerLookup emails are compared in normalized form by callers.
type CustomerLookup interface {
	GetCustomer(ctx context.Context, id string) (*domain.Customer, error)
	GetCustomerByEmail(ctx context.Context, email string) (*domain.Customer, error)
}

type CouponLookup interface {
	ListRedemptions(ctx context.Context, orderID string) ([]domain.CouponRedemption, error)
}

type SettingsLookup interface {
	GetProgramSettings(ctx context.Context) (*domain.ProgramSettings, error)
}
