// Package memstore is an in-memory stand-in for the Postgres repositories. Transactions are
// serialised on a single mutex and rolled back from a snapshot, which is enough to exercise
// the services' locking and atomicity end to end.
package memstore

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/GlebRadaev/affiliate/internal/domain"
	"github.com/GlebRadaev/affiliate/internal/pg"
)

type txKey struct{}

type state struct {
	partners    map[string]domain.Partner
	commissions map[string]domain.Commission
	byOrder     map[string]string
	payouts     map[string]domain.Payout
	links       map[string]string
	events      map[string]domain.ProcessedEvent
	seq         map[string]int
	next        int
}

func (s state) clone() state {
	c := state{
		partners:    make(map[string]domain.Partner, len(s.partners)),
		commissions: make(map[string]domain.Commission, len(s.commissions)),
		byOrder:     make(map[string]string, len(s.byOrder)),
		payouts:     make(map[string]domain.Payout, len(s.payouts)),
		links:       make(map[string]string, len(s.links)),
		events:      make(map[string]domain.ProcessedEvent, len(s.events)),
		seq:         make(map[string]int, len(s.seq)),
		next:        s.next,
	}
	for k, v := range s.partners {
		c.partners[k] = v
	}
	for k, v := range s.commissions {
		c.commissions[k] = v
	}
	for k, v := range s.byOrder {
		c.byOrder[k] = v
	}
	for k, v := range s.payouts {
		c.payouts[k] = v
	}
	for k, v := range s.links {
		c.links[k] = v
	}
	for k, v := range s.events {
		c.events[k] = v
	}
	for k, v := range s.seq {
		c.seq[k] = v
	}
	return c
}

type Store struct {
	mu sync.Mutex
	st state

	auditMu sync.Mutex
	audit   []domain.AuditEntry

	orders      map[string]domain.Order
	items       map[string][]domain.OrderItem
	products    map[string]domain.Product
	customers   map[string]domain.Customer
	redemptions map[string][]domain.CouponRedemption
	settings    domain.ProgramSettings
}

func New() *Store {
	return &Store{
		st: state{
			partners:    map[string]domain.Partner{},
			commissions: map[string]domain.Commission{},
			byOrder:     map[string]string{},
			payouts:     map[string]domain.Payout{},
			links:       map[string]string{},
			events:      map[string]domain.ProcessedEvent{},
			seq:         map[string]int{},
		},
		orders:      map[string]domain.Order{},
		items:       map[string][]domain.OrderItem{},
		products:    map[string]domain.Product{},
		customers:   map[string]domain.Customer{},
		redemptions: map[string][]domain.CouponRedemption{},
		settings:    domain.DefaultProgramSettings(),
	}
}

var _ pg.TXManager = (*Store)(nil)

// Begin serialises fn against every other transaction and undoes its writes if it fails.
func (s *Store) Begin(ctx context.Context, fn pg.TransactionalFn) error {
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := s.st.clone()
	if err := fn(context.WithValue(ctx, txKey{}, true)); err != nil {
		s.st = snapshot
		return err
	}
	return nil
}

func (s *Store) lock(ctx context.Context) func() {
	if ctx.Value(txKey{}) != nil {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

// Seeding and inspection. These bypass transactions and are meant for test setup only.

func (s *Store) AddPartner(p domain.Partner) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.Status == "" {
		p.Status = domain.PartnerActive
	}
	s.st.partners[p.ID] = p
}

func (s *Store) AddOrder(o domain.Order, items ...domain.OrderItem) {
	s.orders[o.ID] = o
	s.items[o.ID] = items
}

func (s *Store) AddProduct(p domain.Product)   { s.products[p.ID] = p }
func (s *Store) AddCustomer(c domain.Customer) { s.customers[c.ID] = c }

func (s *Store) AddRedemption(orderID string, r domain.CouponRedemption) {
	s.redemptions[orderID] = append(s.redemptions[orderID], r)
}

func (s *Store) SetSettings(settings domain.ProgramSettings) { s.settings = settings }

func (s *Store) Partner(id string) domain.Partner {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.partners[id]
}

func (s *Store) Commission(id string) domain.Commission {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.commissions[id]
}

func (s *Store) CommissionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.st.commissions)
}

func (s *Store) Payout(id string) domain.Payout {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.payouts[id]
}

func (s *Store) AuditLog() []domain.AuditEntry {
	s.auditMu.Lock()
	defer s.auditMu.Unlock()
	return append([]domain.AuditEntry(nil), s.audit...)
}

// Backdate moves a commission's creation time, for approval-window tests.
func (s *Store) Backdate(id string, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.st.commissions[id]
	c.CreatedAt = at
	s.st.commissions[id] = c
}

func (s *Store) sortedCommissions(filter func(c domain.Commission) bool) []domain.Commission {
	var out []domain.Commission
	for _, c := range s.st.commissions {
		if filter(c) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return s.st.seq[out[i].ID] < s.st.seq[out[j].ID]
	})
	return out
}

func paginate[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return nil
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}

// Commissions.

type Commissions struct{ s *Store }

func (s *Store) Commissions() *Commissions { return &Commissions{s: s} }

func (r *Commissions) Create(ctx context.Context, c *domain.Commission) (*domain.Commission, error) {
	defer r.s.lock(ctx)()
	if _, ok := r.s.st.byOrder[c.OrderID]; ok {
		return nil, domain.ErrAlreadyRecorded
	}
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	created := *c
	r.s.st.commissions[c.ID] = created
	r.s.st.byOrder[c.OrderID] = c.ID
	r.s.st.next++
	r.s.st.seq[c.ID] = r.s.st.next
	return &created, nil
}

func (r *Commissions) get(id string) (*domain.Commission, error) {
	c, ok := r.s.st.commissions[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *Commissions) GetByID(ctx context.Context, id string) (*domain.Commission, error) {
	defer r.s.lock(ctx)()
	return r.get(id)
}

func (r *Commissions) GetByIDForUpdate(ctx context.Context, id string) (*domain.Commission, error) {
	return r.GetByID(ctx, id)
}

func (r *Commissions) GetByOrderID(ctx context.Context, orderID string) (*domain.Commission, error) {
	defer r.s.lock(ctx)()
	id, ok := r.s.st.byOrder[orderID]
	if !ok {
		return nil, nil
	}
	return r.get(id)
}

func (r *Commissions) UpdateStatus(ctx context.Context, c *domain.Commission) error {
	defer r.s.lock(ctx)()
	stored, ok := r.s.st.commissions[c.ID]
	if !ok {
		return domain.ErrNotFound
	}
	stored.Status = c.Status
	stored.ReviewedBy, stored.ReviewNotes, stored.ReviewedAt = c.ReviewedBy, c.ReviewNotes, c.ReviewedAt
	stored.VoidReason = c.VoidReason
	stored.ApprovedAt, stored.PaidAt, stored.VoidedAt = c.ApprovedAt, c.PaidAt, c.VoidedAt
	r.s.st.commissions[c.ID] = stored
	return nil
}

func (r *Commissions) ListByPartner(ctx context.Context, partnerID string, status domain.CommissionStatus, limit, offset int) ([]domain.Commission, error) {
	defer r.s.lock(ctx)()
	out := r.s.sortedCommissions(func(c domain.Commission) bool {
		return c.PartnerID == partnerID && (status == "" || c.Status == status)
	})
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return paginate(out, limit, offset), nil
}

func (r *Commissions) ListByStatus(ctx context.Context, status domain.CommissionStatus, limit, offset int) ([]domain.Commission, error) {
	defer r.s.lock(ctx)()
	out := r.s.sortedCommissions(func(c domain.Commission) bool { return c.Status == status })
	return paginate(out, limit, offset), nil
}

func (r *Commissions) ListPendingBefore(ctx context.Context, cutoff time.Time, after domain.Cursor, limit int) ([]domain.Commission, error) {
	defer r.s.lock(ctx)()
	out := r.s.sortedCommissions(func(c domain.Commission) bool {
		if c.Status != domain.CommissionPending || !c.CreatedAt.Before(cutoff) {
			return false
		}
		return c.CreatedAt.After(after.CreatedAt) || (c.CreatedAt.Equal(after.CreatedAt) && c.ID > after.ID)
	})
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return paginate(out, limit, 0), nil
}

func (r *Commissions) ListApprovedUnpaidForUpdate(ctx context.Context, partnerID string) ([]domain.Commission, error) {
	defer r.s.lock(ctx)()
	return r.s.sortedCommissions(func(c domain.Commission) bool {
		_, linked := r.s.st.links[c.ID]
		return c.PartnerID == partnerID && c.Status == domain.CommissionApproved && !linked
	}), nil
}

func (r *Commissions) ListByIDsForUpdate(ctx context.Context, ids []string) ([]domain.Commission, error) {
	defer r.s.lock(ctx)()
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	return r.s.sortedCommissions(func(c domain.Commission) bool { return want[c.ID] }), nil
}

func (r *Commissions) CountRecentByCustomer(ctx context.Context, partnerID, customerID string, since time.Time) (int, error) {
	defer r.s.lock(ctx)()
	n := 0
	for _, c := range r.s.st.commissions {
		if c.PartnerID == partnerID && c.CustomerID == customerID && !c.CreatedAt.Before(since) {
			n++
		}
	}
	return n, nil
}

// Partners.

type Partners struct{ s *Store }

func (s *Store) Partners() *Partners { return &Partners{s: s} }

func (r *Partners) GetByID(ctx context.Context, id string) (*domain.Partner, error) {
	defer r.s.lock(ctx)()
	p, ok := r.s.st.partners[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *Partners) GetByIDForUpdate(ctx context.Context, id string) (*domain.Partner, error) {
	return r.GetByID(ctx, id)
}

func (r *Partners) GetByReferralCode(ctx context.Context, code string) (*domain.Partner, error) {
	defer r.s.lock(ctx)()
	for _, p := range r.s.st.partners {
		if p.ReferralCode == code {
			return &p, nil
		}
	}
	return nil, nil
}

func (r *Partners) ApplyBalanceDelta(ctx context.Context, partnerID string, d domain.BalanceDelta) (*domain.Partner, error) {
	defer r.s.lock(ctx)()
	p, ok := r.s.st.partners[partnerID]
	if !ok {
		return nil, &domain.BalanceError{Err: domain.ErrInsufficientBalance, PartnerID: partnerID}
	}
	next := p
	next.TotalEarnings += d.Earnings
	next.PendingBalance += d.Pending
	next.PaidBalance += d.Paid
	next.TotalReferrals += d.Referrals
	next.TotalSales += d.Sales
	if next.PendingBalance < 0 || next.PaidBalance < 0 || next.ApprovedBalance() < 0 {
		return nil, &domain.BalanceError{Err: domain.ErrInsufficientBalance, PartnerID: partnerID, Available: p.ApprovedBalance()}
	}
	r.s.st.partners[partnerID] = next
	return &next, nil
}

func (r *Partners) sorted(filter func(p domain.Partner) bool, less func(a, b domain.Partner) bool) []domain.Partner {
	var out []domain.Partner
	for _, p := range r.s.st.partners {
		if filter(p) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

func (r *Partners) ListEligibleForPayout(ctx context.Context, minimum int64) ([]domain.Partner, error) {
	defer r.s.lock(ctx)()
	return r.sorted(
		func(p domain.Partner) bool {
			return p.Status == domain.PartnerActive && p.ApprovedBalance() > 0 && p.ApprovedBalance() >= minimum
		},
		func(a, b domain.Partner) bool { return a.ID < b.ID },
	), nil
}

func (r *Partners) Leaderboard(ctx context.Context, limit int) ([]domain.Partner, error) {
	defer r.s.lock(ctx)()
	out := r.sorted(
		func(p domain.Partner) bool { return p.Status == domain.PartnerActive },
		func(a, b domain.Partner) bool {
			if a.TotalEarnings != b.TotalEarnings {
				return a.TotalEarnings > b.TotalEarnings
			}
			if a.TotalReferrals != b.TotalReferrals {
				return a.TotalReferrals > b.TotalReferrals
			}
			return a.ID < b.ID
		},
	)
	return paginate(out, limit, 0), nil
}

func (r *Partners) DeleteCascade(ctx context.Context, partnerID string) (*domain.DeletionReport, error) {
	var report domain.DeletionReport
	err := r.s.Begin(ctx, func(ctx context.Context) error {
		st := &r.s.st
		if _, ok := st.partners[partnerID]; !ok {
			return domain.ErrNotFound
		}
		for id, p := range st.payouts {
			if p.PartnerID == partnerID {
				delete(st.payouts, id)
				report.Payouts++
			}
		}
		for id, c := range st.commissions {
			if c.PartnerID == partnerID {
				delete(st.commissions, id)
				delete(st.byOrder, c.OrderID)
				delete(st.links, id)
				report.Commissions++
			}
		}
		delete(st.partners, partnerID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// Payouts.

type Payouts struct{ s *Store }

func (s *Store) Payouts() *Payouts { return &Payouts{s: s} }

func (r *Payouts) Create(ctx context.Context, p *domain.Payout) (*domain.Payout, error) {
	defer r.s.lock(ctx)()
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	created := *p
	r.s.st.payouts[p.ID] = created
	return &created, nil
}

func (r *Payouts) GetByID(ctx context.Context, id string) (*domain.Payout, error) {
	defer r.s.lock(ctx)()
	p, ok := r.s.st.payouts[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *Payouts) GetByIDForUpdate(ctx context.Context, id string) (*domain.Payout, error) {
	return r.GetByID(ctx, id)
}

func (r *Payouts) UpdateStatus(ctx context.Context, p *domain.Payout) error {
	defer r.s.lock(ctx)()
	if _, ok := r.s.st.payouts[p.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.st.payouts[p.ID] = *p
	return nil
}

func (r *Payouts) ListByPartner(ctx context.Context, partnerID string, limit, offset int) ([]domain.Payout, error) {
	defer r.s.lock(ctx)()
	var out []domain.Payout
	for _, p := range r.s.st.payouts {
		if p.PartnerID == partnerID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return paginate(out, limit, offset), nil
}

func (r *Payouts) HasOpen(ctx context.Context, partnerID string) (bool, error) {
	defer r.s.lock(ctx)()
	for _, p := range r.s.st.payouts {
		if p.PartnerID == partnerID && (p.Status == domain.PayoutPending || p.Status == domain.PayoutApproved) {
			return true, nil
		}
	}
	return false, nil
}

func (r *Payouts) LinkCommissions(ctx context.Context, payoutID string, ids []string) error {
	defer r.s.lock(ctx)()
	for _, id := range ids {
		if _, taken := r.s.st.links[id]; taken {
			return fmt.Errorf("%w: commission already linked to another payout", domain.ErrInvalidState)
		}
	}
	for _, id := range ids {
		r.s.st.links[id] = payoutID
	}
	return nil
}

func (r *Payouts) UnlinkCommissions(ctx context.Context, payoutID string) error {
	defer r.s.lock(ctx)()
	for c, p := range r.s.st.links {
		if p == payoutID {
			delete(r.s.st.links, c)
		}
	}
	return nil
}

func (r *Payouts) ListCommissionIDs(ctx context.Context, payoutID string) ([]string, error) {
	defer r.s.lock(ctx)()
	var ids []string
	for c, p := range r.s.st.links {
		if p == payoutID {
			ids = append(ids, c)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

// Events and audit.

type Events struct{ s *Store }

func (s *Store) Events() *Events { return &Events{s: s} }

func (r *Events) Insert(ctx context.Context, e *domain.ProcessedEvent) error {
	defer r.s.lock(ctx)()
	if _, ok := r.s.st.events[e.ID]; ok {
		return domain.ErrDuplicateEvent
	}
	r.s.st.events[e.ID] = *e
	return nil
}

// Append keeps entries even when the surrounding transaction rolls back, like a write made on
// a separate connection.
func (s *Store) Append(_ context.Context, e *domain.AuditEntry) error {
	s.auditMu.Lock()
	defer s.auditMu.Unlock()
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	s.audit = append(s.audit, *e)
	return nil
}

// Storefront lookups.

func (s *Store) GetOrder(_ context.Context, id string) (*domain.Order, error) {
	o, ok := s.orders[id]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

func (s *Store) GetOrderItems(_ context.Context, orderID string) ([]domain.OrderItem, error) {
	return append([]domain.OrderItem(nil), s.items[orderID]...), nil
}

func (s *Store) GetProduct(_ context.Context, id string) (*domain.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (s *Store) GetCustomer(_ context.Context, id string) (*domain.Customer, error) {
	c, ok := s.customers[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (s *Store) GetCustomerByEmail(_ context.Context, email string) (*domain.Customer, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	for _, c := range s.customers {
		if strings.ToLower(strings.TrimSpace(c.Email)) == email {
			return &c, nil
		}
	}
	return nil, nil
}

func (s *Store) ListRedemptions(_ context.Context, orderID string) ([]domain.CouponRedemption, error) {
	return s.redemptions[orderID], nil
}

func (s *Store) GetProgramSettings(context.Context) (*domain.ProgramSettings, error) {
	settings := s.settings
	return &settings, nil
}
