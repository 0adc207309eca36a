package commissionservice

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/affiliate/internal/audit"
	"github.com/GlebRadaev/affiliate/internal/calculator"
	"github.com/GlebRadaev/affiliate/internal/domain"
	"github.com/GlebRadaev/affiliate/internal/fraud"
	"github.com/GlebRadaev/affiliate/internal/idempotency"
	"github.com/GlebRadaev/affiliate/internal/ledger"
	"github.com/GlebRadaev/affiliate/internal/notify"
	"github.com/GlebRadaev/affiliate/internal/pg"
	"github.com/GlebRadaev/affiliate/internal/storefront"
)

//go:generate mockgen -source=commissionservice.go -destination=mock_commissionservice.go -package=commissionservice

const (
	DefaultPageSize = 50
	MaxPageSize     = 500
	sweepPageSize   = 200
)

type Ledger interface {
	Record(ctx context.Context, c *domain.Commission) (*domain.Commission, error)
	Transition(ctx context.Context, c *domain.Commission, to domain.CommissionStatus, review ledger.Review) error
}

type Screener interface {
	Screen(ctx context.Context, subject fraud.Subject) (fraud.Verdict, error)
}

type Auditor interface {
	Record(ctx context.Context, actor domain.Actor, action, entityType, entityID string, metadata map[string]any)
}

type Notifier interface {
	Notify(kind, partnerID string, amount int64, data map[string]string)
}

// Attribution overrides what the order itself says about how it was referred.
type Attribution struct {
	Type          domain.AttributionType
	FriendsFamily bool
}

type RecordResult struct {
	CommissionID string                  `json:"commission_id"`
	Amount       int64                   `json:"amount"`
	Status       domain.CommissionStatus `json:"status"`
	Duplicate    bool                    `json:"duplicate"`
}

type Failure struct {
	ID    string `json:"id"`
	Error string `json:"error"`
}

type BatchResult struct {
	Succeeded []string  `json:"succeeded"`
	Failed    []Failure `json:"failed"`
}

type Deps struct {
	Commissions ledger.CommissionRepo
	Partners    ledger.PartnerRepo
	Orders      storefront.OrderLookup
	Products    storefront.ProductLookup
	Settings    storefront.SettingsLookup
	Ledger      Ledger
	Screener    Screener
	TxManager   pg.TXManager
	Audit       Auditor
	Notifier    Notifier
	Cache       *idempotency.Cache[RecordResult]
	Concurrency int
}

type Service struct {
	commissions ledger.CommissionRepo
	partners    ledger.PartnerRepo
	orders      storefront.OrderLookup
	products    storefront.ProductLookup
	settings    storefront.SettingsLookup
	ledger      Ledger
	screener    Screener
	txManager   pg.TXManager
	audit       Auditor
	notifier    Notifier
	cache       *idempotency.Cache[RecordResult]
	concurrency int
	nowFn       func() time.Time
}

func New(d Deps) *Service {
	if d.Cache == nil {
		d.Cache = idempotency.New[RecordResult](idempotency.DefaultSize, idempotency.DefaultTTL)
	}
	if d.Concurrency <= 0 {
		d.Concurrency = 4
	}
	return &Service{
		commissions: d.Commissions,
		partners:    d.Partners,
		orders:      d.Orders,
		products:    d.Products,
		settings:    d.Settings,
		ledger:      d.Ledger,
		screener:    d.Screener,
		txManager:   d.TxManager,
		audit:       d.Audit,
		notifier:    d.Notifier,
		cache:       d.Cache,
		concurrency: d.Concurrency,
		nowFn:       time.Now,
	}
}

// RecordCommission creates the commission for a paid order exactly once. Recording an order
// that already has a commission is a success that returns the existing record.
func (s *Service) RecordCommission(ctx context.Context, actor domain.Actor, orderID string, attr Attribution) (*RecordResult, error) {
	if orderID == "" {
		return nil, fmt.Errorf("%w: order id is required", domain.ErrInvalidInput)
	}
	if cached, ok := s.cache.Get(orderID); ok {
		cached.Duplicate = true
		return &cached, nil
	}
	if existing, err := s.commissions.GetByOrderID(ctx, orderID); err != nil {
		return nil, err
	} else if existing != nil {
		return s.remember(orderID, existing, true), nil
	}

	order, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, fmt.Errorf("%w: order %s", domain.ErrNotFound, orderID)
	}
	if order.ReferralCode == nil || *order.ReferralCode == "" {
		return nil, fmt.Errorf("%w: order %s", domain.ErrNotAttributed, orderID)
	}
	partner, err := s.partners.GetByReferralCode(ctx, *order.ReferralCode)
	if err != nil {
		return nil, err
	}
	if partner == nil {
		return nil, fmt.Errorf("%w: partner with code %s", domain.ErrNotFound, *order.ReferralCode)
	}
	if partner.Status != domain.PartnerActive {
		return nil, fmt.Errorf("%w: partner %s is %s", domain.ErrPartnerInactive, partner.ID, partner.Status)
	}

	settings, err := s.settings.GetProgramSettings(ctx)
	if err != nil {
		return nil, err
	}
	items, err := s.resolveItems(ctx, orderID)
	if err != nil {
		return nil, err
	}

	friendsFamily := (attr.FriendsFamily || order.FriendsFamily) && partner.FriendsFamilyEnabled
	result := calculator.Compute(*order, items, *partner, *settings, friendsFamily)

	verdict, err := s.screener.Screen(ctx, fraud.Subject{Order: order, Partner: partner})
	if err != nil {
		return nil, err
	}

	c := &domain.Commission{
		PartnerID:        partner.ID,
		OrderID:          order.ID,
		CustomerID:       order.CustomerID,
		OrderAmount:      result.Base,
		OrderTotal:       order.TotalAmount,
		CommissionRate:   result.RatePercent,
		CommissionAmount: result.Amount,
		Status:           domain.CommissionPending,
		AttributionType:  attributionType(attr, order),
	}
	if verdict.Flagged {
		reason, details := verdict.Reason, verdict.Details
		c.Status = domain.CommissionFlagged
		c.FlagReason = &reason
		c.FlagDetails = &details
	}

	created, err := s.ledger.Record(ctx, c)
	if errors.Is(err, domain.ErrAlreadyRecorded) {
		existing, getErr := s.commissions.GetByOrderID(ctx, orderID)
		if getErr != nil {
			return nil, getErr
		}
		if existing == nil {
			return nil, err
		}
		return s.remember(orderID, existing, true), nil
	}
	if err != nil {
		zap.L().Error("can't record commission", zap.String("orderID", orderID), zap.Error(err))
		return nil, err
	}

	zap.L().Info("commission recorded",
		zap.String("orderID", orderID),
		zap.String("partnerID", created.PartnerID),
		zap.Int64("amount", created.CommissionAmount),
		zap.String("status", string(created.Status)),
	)
	s.audit.Record(ctx, actor, audit.ActionCommissionRecorded, audit.EntityCommission, created.ID, map[string]any{
		"partner_id": created.PartnerID,
		"order_id":   created.OrderID,
		"amount":     created.CommissionAmount,
		"status":     string(created.Status),
	})
	s.notifier.Notify(notify.KindCommissionRecorded, created.PartnerID, created.CommissionAmount, map[string]string{
		"commission_id": created.ID,
		"order_id":      created.OrderID,
		"status":        string(created.Status),
	})
	return s.remember(orderID, created, false), nil
}

func (s *Service) remember(orderID string, c *domain.Commission, duplicate bool) *RecordResult {
	result := RecordResult{CommissionID: c.ID, Amount: c.CommissionAmount, Status: c.Status}
	s.cache.Put(orderID, result)
	result.Duplicate = duplicate
	return &result
}

func (s *Service) resolveItems(ctx context.Context, orderID string) ([]domain.OrderItem, error) {
	items, err := s.orders.GetOrderItems(ctx, orderID)
	if err != nil {
		return nil, err
	}
	products := make(map[string]*domain.Product, len(items))
	for i := range items {
		id := items[i].ProductID
		p, ok := products[id]
		if !ok {
			if p, err = s.products.GetProduct(ctx, id); err != nil {
				return nil, err
			}
			products[id] = p
		}
		items[i].Product = p
	}
	return items, nil
}

func attributionType(attr Attribution, order *domain.Order) domain.AttributionType {
	switch {
	case attr.Type != "":
		return attr.Type
	case order.AttributionType != "":
		return order.AttributionType
	default:
		return domain.AttributionDirect
	}
}

// Approve accepts a pending or flagged commission.
func (s *Service) Approve(ctx context.Context, actor domain.Actor, id, notes string) (*domain.Commission, error) {
	return s.transition(ctx, actor, id, domain.CommissionApproved, ledger.Review{Reviewer: actor.ID, Notes: notes}, false)
}

// Void cancels a pending or flagged commission, reversing any accrual.
func (s *Service) Void(ctx context.Context, actor domain.Actor, id, reason string) (*domain.Commission, error) {
	return s.transition(ctx, actor, id, domain.CommissionVoid, ledger.Review{Reviewer: actor.ID, Reason: reason}, false)
}

// ReviewApprove clears a flagged commission and applies its deferred accrual.
func (s *Service) ReviewApprove(ctx context.Context, actor domain.Actor, id, notes string) (*domain.Commission, error) {
	return s.transition(ctx, actor, id, domain.CommissionApproved, ledger.Review{Reviewer: actor.ID, Notes: notes}, true)
}

// ReviewVoid rejects a flagged commission.
func (s *Service) ReviewVoid(ctx context.Context, actor domain.Actor, id, reason, notes string) (*domain.Commission, error) {
	return s.transition(ctx, actor, id, domain.CommissionVoid, ledger.Review{Reviewer: actor.ID, Notes: notes, Reason: reason}, true)
}

func (s *Service) transition(ctx context.Context, actor domain.Actor, id string, to domain.CommissionStatus, review ledger.Review, flaggedOnly bool) (*domain.Commission, error) {
	var c *domain.Commission
	var from domain.CommissionStatus
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		c, err = s.commissions.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if c == nil {
			return fmt.Errorf("%w: commission %s", domain.ErrNotFound, id)
		}
		from = c.Status
		if flaggedOnly && c.Status != domain.CommissionFlagged {
			return &domain.StateError{Err: domain.ErrInvalidState, Entity: "commission", ID: id, From: string(c.Status), To: string(to)}
		}
		return s.ledger.Transition(ctx, c, to, review)
	})
	if err != nil {
		return nil, err
	}

	action, kind := audit.ActionCommissionApproved, notify.KindCommissionApproved
	if to == domain.CommissionVoid {
		action, kind = audit.ActionCommissionVoided, notify.KindCommissionVoided
	}
	if flaggedOnly {
		action = audit.ActionCommissionReviewed
	}
	meta := map[string]any{
		"partner_id": c.PartnerID,
		"amount":     c.CommissionAmount,
		"from":       string(from),
		"to":         string(to),
	}
	if review.Reason != "" {
		meta["reason"] = review.Reason
	}
	if review.Notes != "" {
		meta["notes"] = review.Notes
	}
	s.audit.Record(ctx, actor, action, audit.EntityCommission, c.ID, meta)
	s.notifier.Notify(kind, c.PartnerID, c.CommissionAmount, map[string]string{"commission_id": c.ID, "order_id": c.OrderID})
	return c, nil
}

// BulkApprove approves each id on its own; a failure never undoes another approval.
func (s *Service) BulkApprove(ctx context.Context, actor domain.Actor, ids []string) *BatchResult {
	return s.approveEach(ctx, actor, ids, "")
}

func (s *Service) approveEach(ctx context.Context, actor domain.Actor, ids []string, notes string) *BatchResult {
	var mu sync.Mutex
	result := &BatchResult{Succeeded: []string{}, Failed: []Failure{}}

	g := new(errgroup.Group)
	g.SetLimit(s.concurrency)
	for _, id := range ids {
		id := id
		g.Go(func() error {
			_, err := s.Approve(ctx, actor, id, notes)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				result.Failed = append(result.Failed, Failure{ID: id, Error: err.Error()})
				return nil
			}
			result.Succeeded = append(result.Succeeded, id)
			return nil
		})
	}
	_ = g.Wait()

	sort.Strings(result.Succeeded)
	sort.Slice(result.Failed, func(i, j int) bool { return result.Failed[i].ID < result.Failed[j].ID })
	return result
}

// AutoApprove approves every pending commission older than the program's approval window.
// Records that fail are reported and skipped; the sweep carries on.
func (s *Service) AutoApprove(ctx context.Context, actor domain.Actor) (*BatchResult, error) {
	settings, err := s.settings.GetProgramSettings(ctx)
	if err != nil {
		return nil, err
	}
	cutoff := s.nowFn().Add(-time.Duration(settings.ApprovalDays) * 24 * time.Hour)

	total := &BatchResult{Succeeded: []string{}, Failed: []Failure{}}
	var after domain.Cursor
	for {
		if err := ctx.Err(); err != nil {
			return total, err
		}
		page, err := s.commissions.ListPendingBefore(ctx, cutoff, after, sweepPageSize)
		if err != nil {
			return total, err
		}
		if len(page) == 0 {
			break
		}
		ids := make([]string, len(page))
		for i, c := range page {
			ids[i] = c.ID
		}
		last := page[len(page)-1]
		after = domain.Cursor{CreatedAt: last.CreatedAt, ID: last.ID}

		res := s.approveEach(ctx, actor, ids, "auto-approved after approval window")
		total.Succeeded = append(total.Succeeded, res.Succeeded...)
		total.Failed = append(total.Failed, res.Failed...)
		if len(page) < sweepPageSize {
			break
		}
	}

	zap.L().Info("auto-approve sweep finished",
		zap.Time("cutoff", cutoff),
		zap.Int("approved", len(total.Succeeded)),
		zap.Int("failed", len(total.Failed)),
	)
	return total, nil
}

func (s *Service) ListByPartner(ctx context.Context, actor domain.Actor, partnerID string, status domain.CommissionStatus, limit, offset int) ([]domain.Commission, error) {
	if !actor.IsAdmin() && actor.PartnerID != partnerID {
		return nil, domain.ErrForbidden
	}
	limit, offset = page(limit, offset)
	return s.commissions.ListByPartner(ctx, partnerID, status, limit, offset)
}

func (s *Service) ListFlagged(ctx context.Context, limit, offset int) ([]domain.Commission, error) {
	limit, offset = page(limit, offset)
	return s.commissions.ListByStatus(ctx, domain.CommissionFlagged, limit, offset)
}

func (s *Service) Leaderboard(ctx context.Context, limit int) ([]domain.Partner, error) {
	limit, _ = page(limit, 0)
	return s.partners.Leaderboard(ctx, limit)
}

func page(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
