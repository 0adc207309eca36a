package payoutservice

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/affiliate/internal/audit"
	"github.com/GlebRadaev/affiliate/internal/domain"
	"github.com/GlebRadaev/affiliate/internal/ledger"
	"github.com/GlebRadaev/affiliate/internal/notify"
	"github.com/GlebRadaev/affiliate/internal/pg"
	"github.com/GlebRadaev/affiliate/internal/storefront"
)

//go:generate mockgen -source=payoutservice.go -destination=mock_payoutservice.go -package=payoutservice

const (
	DefaultPageSize = 50
	MaxPageSize     = 500

	MethodBatch  = "batch"
	MethodManual = "manual"
)

type PayoutRepo interface {
	Create(ctx context.Context, p *domain.Payout) (*domain.Payout, error)
	GetByID(ctx context.Context, id string) (*domain.Payout, error)
	GetByIDForUpdate(ctx context.Context, id string) (*domain.Payout, error)
	UpdateStatus(ctx context.Context, p *domain.Payout) error
	ListByPartner(ctx context.Context, partnerID string, limit, offset int) ([]domain.Payout, error)
	HasOpen(ctx context.Context, partnerID string) (bool, error)
	LinkCommissions(ctx context.Context, payoutID string, commissionIDs []string) error
	UnlinkCommissions(ctx context.Context, payoutID string) error
	ListCommissionIDs(ctx context.Context, payoutID string) ([]string, error)
}

type Ledger interface {
	Transition(ctx context.Context, c *domain.Commission, to domain.CommissionStatus, review ledger.Review) error
}

type Auditor interface {
	Record(ctx context.Context, actor domain.Actor, action, entityType, entityID string, metadata map[string]any)
}

type Notifier interface {
	Notify(kind, partnerID string, amount int64, data map[string]string)
}

type Deps struct {
	Payouts     PayoutRepo
	Commissions ledger.CommissionRepo
	Partners    ledger.PartnerRepo
	Settings    storefront.SettingsLookup
	Ledger      Ledger
	TxManager   pg.TXManager
	Audit       Auditor
	Notifier    Notifier
	Concurrency int
}

type Service struct {
	payouts     PayoutRepo
	commissions ledger.CommissionRepo
	partners    ledger.PartnerRepo
	settings    storefront.SettingsLookup
	ledger      Ledger
	txManager   pg.TXManager
	audit       Auditor
	notifier    Notifier
	concurrency int
	nowFn       func() time.Time
}

func New(d Deps) *Service {
	if d.Concurrency <= 0 {
		d.Concurrency = 4
	}
	return &Service{
		payouts:     d.Payouts,
		commissions: d.Commissions,
		partners:    d.Partners,
		settings:    d.Settings,
		ledger:      d.Ledger,
		txManager:   d.TxManager,
		audit:       d.Audit,
		notifier:    d.Notifier,
		concurrency: d.Concurrency,
		nowFn:       time.Now,
	}
}

type Settlement struct {
	Payout      *domain.Payout `json:"payout"`
	Commissions []string       `json:"commissions"`
}

type BatchItem struct {
	PartnerID   string `json:"partner_id"`
	Amount      int64  `json:"amount"`
	PayoutID    string `json:"payout_id,omitempty"`
	Commissions int    `json:"commissions"`
	Error       string `json:"error,omitempty"`
}

type BatchResult struct {
	DryRun    bool        `json:"dry_run"`
	Payouts   []BatchItem `json:"payouts"`
	Succeeded int         `json:"succeeded"`
	Failed    int         `json:"failed"`
	Total     int64       `json:"total"`
}

func authorize(actor domain.Actor, partnerID string) error {
	if actor.IsAdmin() || actor.PartnerID == partnerID {
		return nil
	}
	return domain.ErrForbidden
}

func (s *Service) lockPartner(ctx context.Context, partnerID string) (*domain.Partner, error) {
	partner, err := s.partners.GetByIDForUpdate(ctx, partnerID)
	if err != nil {
		return nil, err
	}
	if partner == nil {
		return nil, fmt.Errorf("%w: partner %s", domain.ErrNotFound, partnerID)
	}
	return partner, nil
}

// RequestPayout opens a pending payout for the partner's full pending balance, provided it
// reaches the program minimum and no other payout of theirs is still open.
func (s *Service) RequestPayout(ctx context.Context, actor domain.Actor, partnerID, paymentMethod string) (*domain.Payout, error) {
	if err := authorize(actor, partnerID); err != nil {
		return nil, err
	}
	settings, err := s.settings.GetProgramSettings(ctx)
	if err != nil {
		return nil, err
	}

	var created *domain.Payout
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		partner, err := s.lockPartner(ctx, partnerID)
		if err != nil {
			return err
		}
		if partner.Status != domain.PartnerActive {
			return fmt.Errorf("%w: partner %s is %s", domain.ErrPartnerInactive, partnerID, partner.Status)
		}
		open, err := s.payouts.HasOpen(ctx, partnerID)
		if err != nil {
			return err
		}
		if open {
			return fmt.Errorf("%w: partner %s", domain.ErrPayoutInFlight, partnerID)
		}
		if partner.PendingBalance <= 0 || partner.PendingBalance < settings.MinimumPayout {
			return &domain.BalanceError{
				Err:       domain.ErrBelowMinimumPayout,
				PartnerID: partnerID,
				Requested: partner.PendingBalance,
				Available: partner.PendingBalance,
				Minimum:   settings.MinimumPayout,
			}
		}
		created, err = s.payouts.Create(ctx, &domain.Payout{
			PartnerID:     partnerID,
			Amount:        partner.PendingBalance,
			Status:        domain.PayoutPending,
			PaymentMethod: paymentMethod,
			CreatedAt:     s.nowFn(),
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, actor, audit.ActionPayoutRequested, audit.EntityPayout, created.ID, map[string]any{
		"partner_id": partnerID,
		"amount":     created.Amount,
	})
	s.notifier.Notify(notify.KindPayoutRequested, partnerID, created.Amount, map[string]string{"payout_id": created.ID})
	return created, nil
}

func (s *Service) ApprovePayoutRequest(ctx context.Context, actor domain.Actor, id string) (*domain.Payout, error) {
	p, err := s.move(ctx, id, domain.PayoutApproved, func(p *domain.Payout, now time.Time) {
		p.ApprovedAt = &now
	})
	if err != nil {
		return nil, err
	}
	s.audit.Record(ctx, actor, audit.ActionPayoutApproved, audit.EntityPayout, p.ID, map[string]any{
		"partner_id": p.PartnerID,
		"amount":     p.Amount,
	})
	return p, nil
}

// RejectPayoutRequest closes a pending or approved payout and frees any commissions linked to it.
func (s *Service) RejectPayoutRequest(ctx context.Context, actor domain.Actor, id, reason string) (*domain.Payout, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, fmt.Errorf("%w: rejection reason is required", domain.ErrInvalidInput)
	}
	p, err := s.move(ctx, id, domain.PayoutRejected, func(p *domain.Payout, now time.Time) {
		p.RejectedAt = &now
		p.RejectionReason = &reason
	})
	if err != nil {
		return nil, err
	}
	s.audit.Record(ctx, actor, audit.ActionPayoutRejected, audit.EntityPayout, p.ID, map[string]any{
		"partner_id": p.PartnerID,
		"amount":     p.Amount,
		"reason":     reason,
	})
	s.notifier.Notify(notify.KindPayoutRejected, p.PartnerID, p.Amount, map[string]string{"payout_id": p.ID, "reason": reason})
	return p, nil
}

func (s *Service) move(ctx context.Context, id string, to domain.PayoutStatus, apply func(p *domain.Payout, now time.Time)) (*domain.Payout, error) {
	var p *domain.Payout
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		p, err = s.payouts.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if p == nil {
			return fmt.Errorf("%w: payout %s", domain.ErrNotFound, id)
		}
		if err := p.Status.CheckTransition(id, to); err != nil {
			return err
		}
		p.Status = to
		apply(p, s.nowFn())
		if err := s.payouts.UpdateStatus(ctx, p); err != nil {
			return err
		}
		if to == domain.PayoutRejected {
			return s.payouts.UnlinkCommissions(ctx, id)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// ProcessPayout settles an approved payout: the payout, its commissions and the partner's paid
// balance change together or not at all.
func (s *Service) ProcessPayout(ctx context.Context, actor domain.Actor, id string) (*Settlement, error) {
	var settlement *Settlement
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		head, err := s.payouts.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if head == nil {
			return fmt.Errorf("%w: payout %s", domain.ErrNotFound, id)
		}
		partner, err := s.lockPartner(ctx, head.PartnerID)
		if err != nil {
			return err
		}
		settlement, err = s.settle(ctx, actor, partner, id)
		return err
	})
	if err != nil {
		zap.L().Warn("payout not processed", zap.String("payoutID", id), zap.Error(err))
		return nil, err
	}
	s.afterSettle(ctx, actor, settlement)
	return settlement, nil
}

// settle runs with the partner row already locked.
func (s *Service) settle(ctx context.Context, actor domain.Actor, partner *domain.Partner, payoutID string) (*Settlement, error) {
	p, err := s.payouts.GetByIDForUpdate(ctx, payoutID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: payout %s", domain.ErrNotFound, payoutID)
	}
	if err := p.Status.CheckTransition(p.ID, domain.PayoutPaid); err != nil {
		return nil, err
	}
	if available := partner.ApprovedBalance(); available < p.Amount {
		return nil, &domain.BalanceError{
			Err:       domain.ErrInsufficientBalance,
			PartnerID: partner.ID,
			Requested: p.Amount,
			Available: available,
		}
	}

	commissions, err := s.commissionsFor(ctx, p, partner.ApprovedBalance())
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(commissions))
	for i := range commissions {
		if err := s.ledger.Transition(ctx, &commissions[i], domain.CommissionPaid, ledger.Review{}); err != nil {
			return nil, err
		}
		ids = append(ids, commissions[i].ID)
	}

	now := s.nowFn()
	processedBy := actor.ID
	p.Status = domain.PayoutPaid
	p.PaidAt = &now
	p.ProcessedBy = &processedBy
	if err := s.payouts.UpdateStatus(ctx, p); err != nil {
		return nil, err
	}
	if _, err := s.partners.ApplyBalanceDelta(ctx, partner.ID, domain.BalanceDelta{Paid: p.Amount}); err != nil {
		return nil, err
	}
	return &Settlement{Payout: p, Commissions: ids}, nil
}

// commissionsFor returns the commissions a payout settles. Their total must equal the payout
// amount, since every one of them moves to paid while paidBalance grows by the amount alone.
// Payouts created without links get approved commissions totalling the amount, oldest first, and
// that selection is stored with the payout.
func (s *Service) commissionsFor(ctx context.Context, p *domain.Payout, balance int64) ([]domain.Commission, error) {
	ids, err := s.payouts.ListCommissionIDs(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	if len(ids) > 0 {
		linked, err := s.commissions.ListByIDsForUpdate(ctx, ids)
		if err != nil {
			return nil, err
		}
		if len(linked) != len(ids) {
			return nil, fmt.Errorf("%w: payout %s links %d commissions, found %d", domain.ErrInvalidState, p.ID, len(ids), len(linked))
		}
		if sum := total(linked); sum != p.Amount {
			return nil, uncovered(p, balance, sum)
		}
		return linked, nil
	}

	candidates, err := s.commissions.ListApprovedUnpaidForUpdate(ctx, p.PartnerID)
	if err != nil {
		return nil, err
	}
	selected, sum := cover(candidates, p.Amount)
	if sum != p.Amount {
		return nil, uncovered(p, balance, sum)
	}
	if err := s.payouts.LinkCommissions(ctx, p.ID, commissionIDs(selected)); err != nil {
		return nil, err
	}
	return selected, nil
}

func uncovered(p *domain.Payout, balance, covered int64) error {
	return &domain.StateError{
		Err:     domain.ErrInvalidState,
		Entity:  "payout",
		ID:      p.ID,
		From:    string(p.Status),
		To:      string(domain.PayoutPaid),
		Amount:  p.Amount,
		Balance: balance,
		Covered: covered,
	}
}

func (s *Service) afterSettle(ctx context.Context, actor domain.Actor, st *Settlement) {
	p := st.Payout
	zap.L().Info("payout paid",
		zap.String("payoutID", p.ID),
		zap.String("partnerID", p.PartnerID),
		zap.Int64("amount", p.Amount),
		zap.Int("commissions", len(st.Commissions)),
	)
	s.audit.Record(ctx, actor, audit.ActionPayoutProcessed, audit.EntityPayout, p.ID, map[string]any{
		"partner_id":  p.PartnerID,
		"amount":      p.Amount,
		"commissions": len(st.Commissions),
	})
	s.notifier.Notify(notify.KindPayoutPaid, p.PartnerID, p.Amount, map[string]string{"payout_id": p.ID})
}

const maxCoverSums = 1 << 16

// cover picks commissions, preferring the oldest, whose total is exactly amount. Commissions are
// never split: when no exact subset turns up, it returns nil and the best total that stays within
// amount.
func cover(commissions []domain.Commission, amount int64) ([]domain.Commission, int64) {
	fitted, sum := fit(commissions, amount)
	if sum == amount || amount <= 0 {
		return fitted, sum
	}

	type step struct {
		prev int64
		item int
	}
	reach := map[int64]step{0: {item: -1}}
	for i, c := range commissions {
		if c.CommissionAmount <= 0 {
			continue
		}
		sums := make([]int64, 0, len(reach))
		for s := range reach {
			sums = append(sums, s)
		}
		for _, s := range sums {
			next := s + c.CommissionAmount
			if next > amount {
				continue
			}
			if _, ok := reach[next]; !ok {
				reach[next] = step{prev: s, item: i}
			}
		}
		if _, ok := reach[amount]; ok || len(reach) > maxCoverSums {
			break
		}
	}
	if _, ok := reach[amount]; !ok {
		return nil, sum
	}

	var selected []domain.Commission
	for at := amount; at != 0; at = reach[at].prev {
		selected = append(selected, commissions[reach[at].item])
	}
	for i, j := 0, len(selected)-1; i < j; i, j = i+1, j-1 {
		selected[i], selected[j] = selected[j], selected[i]
	}
	return selected, amount
}

func total(commissions []domain.Commission) int64 {
	var sum int64
	for _, c := range commissions {
		sum += c.CommissionAmount
	}
	return sum
}

// fit picks commissions oldest first whose total stays within limit.
func fit(commissions []domain.Commission, limit int64) ([]domain.Commission, int64) {
	var selected []domain.Commission
	var sum int64
	for _, c := range commissions {
		if sum+c.CommissionAmount > limit {
			continue
		}
		sum += c.CommissionAmount
		selected = append(selected, c)
	}
	return selected, sum
}

func commissionIDs(commissions []domain.Commission) []string {
	ids := make([]string, len(commissions))
	for i, c := range commissions {
		ids[i] = c.ID
	}
	return ids
}

// RecordManualPayout books a payout made outside the batch flow. Explicit commission ids must add
// up to the amount; without them, approved commissions totalling the amount are settled.
func (s *Service) RecordManualPayout(ctx context.Context, actor domain.Actor, partnerID string, amount int64, commissionIDs []string, method, notes string) (*Settlement, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", domain.ErrInvalidInput)
	}
	if method == "" {
		method = MethodManual
	}

	var settlement *Settlement
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		partner, err := s.lockPartner(ctx, partnerID)
		if err != nil {
			return err
		}
		var selected []domain.Commission
		if len(commissionIDs) > 0 {
			if selected, err = s.commissions.ListByIDsForUpdate(ctx, commissionIDs); err != nil {
				return err
			}
			if err := checkOwned(selected, commissionIDs, partnerID); err != nil {
				return err
			}
		}
		settlement, err = s.createAndSettle(ctx, actor, partner, amount, selected, method, notes)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.audit.Record(ctx, actor, audit.ActionPayoutRecorded, audit.EntityPayout, settlement.Payout.ID, map[string]any{
		"partner_id": partnerID,
		"amount":     amount,
		"method":     method,
	})
	s.afterSettle(ctx, actor, settlement)
	return settlement, nil
}

func checkOwned(commissions []domain.Commission, ids []string, partnerID string) error {
	if len(commissions) != len(ids) {
		return fmt.Errorf("%w: %d of %d commissions found", domain.ErrNotFound, len(commissions), len(ids))
	}
	for _, c := range commissions {
		if c.PartnerID != partnerID {
			return fmt.Errorf("%w: commission %s belongs to another partner", domain.ErrInvalidInput, c.ID)
		}
		if c.Status != domain.CommissionApproved {
			return &domain.StateError{Err: domain.ErrInvalidState, Entity: "commission", ID: c.ID, From: string(c.Status), To: string(domain.CommissionPaid)}
		}
	}
	return nil
}

// createAndSettle opens an already-approved payout linked to commissions and pays it at once.
func (s *Service) createAndSettle(ctx context.Context, actor domain.Actor, partner *domain.Partner, amount int64, commissions []domain.Commission, method, notes string) (*Settlement, error) {
	now := s.nowFn()
	operator := actor.ID
	p := &domain.Payout{
		PartnerID:     partner.ID,
		Amount:        amount,
		Status:        domain.PayoutApproved,
		PaymentMethod: method,
		ProcessedBy:   &operator,
		CreatedAt:     now,
		ApprovedAt:    &now,
	}
	if notes != "" {
		p.Notes = &notes
	}
	created, err := s.payouts.Create(ctx, p)
	if err != nil {
		return nil, err
	}
	if err := s.payouts.LinkCommissions(ctx, created.ID, commissionIDs(commissions)); err != nil {
		return nil, err
	}
	return s.settle(ctx, actor, partner, created.ID)
}

// RunPayoutBatch pays every partner whose approved balance reaches the minimum. Each partner
// settles in its own transaction, so one failure leaves the others paid. A dry run only reports.
func (s *Service) RunPayoutBatch(ctx context.Context, actor domain.Actor, dryRun bool) (*BatchResult, error) {
	settings, err := s.settings.GetProgramSettings(ctx)
	if err != nil {
		return nil, err
	}
	partners, err := s.partners.ListEligibleForPayout(ctx, settings.MinimumPayout)
	if err != nil {
		return nil, err
	}

	result := &BatchResult{DryRun: dryRun, Payouts: make([]BatchItem, len(partners))}
	var mu sync.Mutex
	g := new(errgroup.Group)
	g.SetLimit(s.concurrency)
	for i, partner := range partners {
		i, partner := i, partner
		g.Go(func() error {
			item := BatchItem{PartnerID: partner.ID}
			var err error
			if dryRun {
				err = s.previewPartner(ctx, partner.ID, settings.MinimumPayout, &item)
			} else {
				err = s.settlePartner(ctx, actor, partner.ID, settings.MinimumPayout, &item)
			}

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				item.Error = err.Error()
				result.Failed++
				zap.L().Warn("batch payout skipped partner", zap.String("partnerID", partner.ID), zap.Error(err))
			} else {
				result.Succeeded++
				result.Total += item.Amount
			}
			result.Payouts[i] = item
			return nil
		})
	}
	_ = g.Wait()

	sort.Slice(result.Payouts, func(i, j int) bool { return result.Payouts[i].PartnerID < result.Payouts[j].PartnerID })
	zap.L().Info("payout batch finished",
		zap.Bool("dryRun", dryRun),
		zap.Int("succeeded", result.Succeeded),
		zap.Int("failed", result.Failed),
		zap.Int64("total", result.Total),
	)
	return result, nil
}

// batchPlan is what a batch run pays one partner.
type batchPlan struct {
	partner  *domain.Partner
	selected []domain.Commission
	sum      int64
}

var (
	errNothingToPay = errors.New("no approved commissions fit the approved balance")
	errDryRun       = errors.New("dry run")
)

// plan applies the batch eligibility rules to one partner. It must run inside a transaction.
func (s *Service) plan(ctx context.Context, partnerID string, minimum int64) (*batchPlan, error) {
	partner, err := s.lockPartner(ctx, partnerID)
	if err != nil {
		return nil, err
	}
	open, err := s.payouts.HasOpen(ctx, partnerID)
	if err != nil {
		return nil, err
	}
	if open {
		return nil, fmt.Errorf("%w: partner %s", domain.ErrPayoutInFlight, partnerID)
	}
	candidates, err := s.commissions.ListApprovedUnpaidForUpdate(ctx, partnerID)
	if err != nil {
		return nil, err
	}
	selected, sum := fit(candidates, partner.ApprovedBalance())
	if sum == 0 {
		return nil, errNothingToPay
	}
	if sum < minimum {
		return nil, &domain.BalanceError{Err: domain.ErrBelowMinimumPayout, PartnerID: partnerID, Requested: sum, Available: sum, Minimum: minimum}
	}
	return &batchPlan{partner: partner, selected: selected, sum: sum}, nil
}

// previewPartner plans inside a transaction that is always rolled back.
func (s *Service) previewPartner(ctx context.Context, partnerID string, minimum int64, item *BatchItem) error {
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		pl, err := s.plan(ctx, partnerID, minimum)
		if err != nil {
			return err
		}
		item.Amount = pl.sum
		item.Commissions = len(pl.selected)
		return errDryRun
	})
	if errors.Is(err, errDryRun) {
		return nil
	}
	return err
}

func (s *Service) settlePartner(ctx context.Context, actor domain.Actor, partnerID string, minimum int64, item *BatchItem) error {
	var settlement *Settlement
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		pl, err := s.plan(ctx, partnerID, minimum)
		if err != nil {
			return err
		}
		settlement, err = s.createAndSettle(ctx, actor, pl.partner, pl.sum, pl.selected, MethodBatch, "")
		return err
	})
	if err != nil {
		return err
	}
	item.Amount = settlement.Payout.Amount
	item.PayoutID = settlement.Payout.ID
	item.Commissions = len(settlement.Commissions)
	s.afterSettle(ctx, actor, settlement)
	return nil
}

func (s *Service) ListByPartner(ctx context.Context, actor domain.Actor, partnerID string, limit, offset int) ([]domain.Payout, error) {
	if err := authorize(actor, partnerID); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return s.payouts.ListByPartner(ctx, partnerID, limit, offset)
}
