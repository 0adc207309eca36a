package storefrontrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/affiliate/internal/domain"
	"github.com/GlebRadaev/affiliate/internal/pg"
)

// Repository reads the storefront's tables and the program settings row. It never writes.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func parseRate(rateType, value string) (*domain.Rate, error) {
	if rateType == "" {
		return nil, nil
	}
	v, err := decimal.NewFromString(value)
	if err != nil {
		return nil, fmt.Errorf("parse rate value %q: %w", value, err)
	}
	return &domain.Rate{Type: domain.RateType(rateType), Value: v}, nil
}

func (r *Repository) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	query := `
        SELECT id, COALESCE(customer_id, ''), customer_email, subtotal_amount, total_amount,
               referral_code, attribution_type, friends_family, status
        FROM orders
        WHERE id = $1
    `
	var o domain.Order
	var attribution string
	err := r.db.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.CustomerID, &o.CustomerEmail, &o.SubtotalAmount, &o.TotalAmount,
		&o.ReferralCode, &attribution, &o.FriendsFamily, &o.Status,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get order", zap.String("orderID", id), zap.Error(err))
		return nil, err
	}
	o.AttributionType = domain.AttributionType(attribution)
	return &o, nil
}

func (r *Repository) GetOrderItems(ctx context.Context, orderID string) ([]domain.OrderItem, error) {
	query := `
        SELECT product_id, unit_price, quantity
        FROM order_items
        WHERE order_id = $1
        ORDER BY id
    `
	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		zap.L().Error("can't get order items", zap.String("orderID", orderID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ProductID, &item.UnitPrice, &item.Quantity); err != nil {
			zap.L().Error("can't scan order item", zap.Error(err))
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *Repository) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	query := `
        SELECT id, affiliate_enabled, use_global_rate,
               COALESCE(commission_type, ''), COALESCE(commission_value, 0)::text
        FROM products
        WHERE id = $1
    `
	var p domain.Product
	var rateType, rateValue string
	err := r.db.QueryRow(ctx, query, id).Scan(&p.ID, &p.AffiliateEnabled, &p.UseGlobalRate, &rateType, &rateValue)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get product", zap.String("productID", id), zap.Error(err))
		return nil, err
	}
	if p.Rate, err = parseRate(rateType, rateValue); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) getCustomer(ctx context.Context, query string, arg string) (*domain.Customer, error) {
	var c domain.Customer
	err := r.db.QueryRow(ctx, query, arg).Scan(&c.ID, &c.Email)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get customer", zap.Error(err))
		return nil, err
	}
	return &c, nil
}

func (r *Repository) GetCustomer(ctx context.Context, id string) (*domain.Customer, error) {
	return r.getCustomer(ctx, `SELECT id, email FROM customers WHERE id = $1`, id)
}

func (r *Repository) GetCustomerByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	query := `
        SELECT id, email
        FROM customers
        WHERE LOWER(TRIM(email)) = $1
        ORDER BY id
        LIMIT 1
    `
	return r.getCustomer(ctx, query, strings.ToLower(strings.TrimSpace(email)))
}

func (r *Repository) ListRedemptions(ctx context.Context, orderID string) ([]domain.CouponRedemption, error) {
	query := `
        SELECT c.id, c.code, c.blocks_commission
        FROM coupon_redemptions cr
        JOIN coupons c ON c.id = cr.coupon_id
        WHERE cr.order_id = $1
        ORDER BY cr.id
    `
	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		zap.L().Error("can't list coupon redemptions", zap.String("orderID", orderID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var redemptions []domain.CouponRedemption
	for rows.Next() {
		var cr domain.CouponRedemption
		if err := rows.Scan(&cr.CouponID, &cr.Code, &cr.BlocksCommission); err != nil {
			zap.L().Error("can't scan coupon redemption", zap.Error(err))
			return nil, err
		}
		redemptions = append(redemptions, cr)
	}
	return redemptions, rows.Err()
}

// GetProgramSettings falls back to the built-in defaults when the settings row is missing.
func (r *Repository) GetProgramSettings(ctx context.Context) (*domain.ProgramSettings, error) {
	query := `
        SELECT default_commission_type, default_commission_value::text,
               ff_enabled, ff_commission_type, ff_commission_value::text,
               minimum_payout, approval_days
        FROM affiliate_settings
        WHERE id = 1
    `
	var defType, defValue, ffType, ffValue string
	settings := domain.DefaultProgramSettings()
	err := r.db.QueryRow(ctx, query).Scan(
		&defType, &defValue, &settings.FriendsFamilyEnabled, &ffType, &ffValue,
		&settings.MinimumPayout, &settings.ApprovalDays,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		zap.L().Warn("affiliate settings row missing, using defaults")
		return &settings, nil
	}
	if err != nil {
		zap.L().Error("can't get program settings", zap.Error(err))
		return nil, err
	}

	def, err := parseRate(defType, defValue)
	if err != nil {
		return nil, err
	}
	if def != nil {
		settings.DefaultRate = *def
	}
	ff, err := parseRate(ffType, ffValue)
	if err != nil {
		return nil, err
	}
	if ff != nil {
		settings.FriendsFamilyRate = *ff
	}
	if settings.ApprovalDays <= 0 {
		settings.ApprovalDays = domain.DefaultApprovalDays
	}
	return &settings, nil
}
