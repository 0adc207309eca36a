package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/GlebRadaev/affiliate/internal/audit"
	"github.com/GlebRadaev/affiliate/internal/config"
	"github.com/GlebRadaev/affiliate/internal/fraud"
	"github.com/GlebRadaev/affiliate/internal/handlers/commissions"
	"github.com/GlebRadaev/affiliate/internal/handlers/partners"
	"github.com/GlebRadaev/affiliate/internal/handlers/payouts"
	"github.com/GlebRadaev/affiliate/internal/handlers/webhooks"
	"github.com/GlebRadaev/affiliate/internal/idempotency"
	"github.com/GlebRadaev/affiliate/internal/ledger"
	"github.com/GlebRadaev/affiliate/internal/notify"
	"github.com/GlebRadaev/affiliate/internal/repo"
	"github.com/GlebRadaev/affiliate/internal/service/commissionservice"
	"github.com/GlebRadaev/affiliate/internal/service/eventservice"
	"github.com/GlebRadaev/affiliate/internal/service/partnerservice"
	"github.com/GlebRadaev/affiliate/internal/service/payoutservice"
	"github.com/GlebRadaev/affiliate/pkg/clients"
)

type Services struct {
	CommissionService commissions.Service
	PayoutService     payouts.Service
	PartnerService    partners.Service
	EventService      webhooks.Service

	dispatcher *notify.Dispatcher
}

func New(cfg *config.Config, repo *repo.Repositories) (*Services, error) {
	notifier, err := newNotifier(cfg)
	if err != nil {
		return nil, err
	}
	dispatcher := notify.NewDispatcher(notifier, cfg.NotifyWorkers)
	trail := audit.New(repo.AuditRepo)
	book := ledger.New(repo.CommissionRepo, repo.PartnerRepo, repo.TxManager)

	checks := []fraud.Check{
		fraud.NewSelfReferralCheck(repo.Storefront),
		fraud.NewCouponAbuseCheck(repo.Storefront),
	}
	if cfg.VelocityMaxOrders > 0 {
		checks = append(checks, fraud.NewVelocityCheck(repo.CommissionRepo, cfg.VelocityWindow, cfg.VelocityMaxOrders))
	}

	commissionService := commissionservice.New(commissionservice.Deps{
		Commissions: repo.CommissionRepo,
		Partners:    repo.PartnerRepo,
		Orders:      repo.Storefront,
		Products:    repo.Storefront,
		Settings:    repo.Storefront,
		Ledger:      book,
		Screener:    fraud.New(checks...),
		TxManager:   repo.TxManager,
		Audit:       trail,
		Notifier:    dispatcher,
		Cache:       idempotency.New[commissionservice.RecordResult](cfg.IdempotencyCacheSize, cfg.IdempotencyTTL),
		Concurrency: cfg.BatchConcurrency,
	})
	payoutService := payoutservice.New(payoutservice.Deps{
		Payouts:     repo.PayoutRepo,
		Commissions: repo.CommissionRepo,
		Partners:    repo.PartnerRepo,
		Settings:    repo.Storefront,
		Ledger:      book,
		TxManager:   repo.TxManager,
		Audit:       trail,
		Notifier:    dispatcher,
		Concurrency: cfg.BatchConcurrency,
	})

	return &Services{
		CommissionService: commissionService,
		PayoutService:     payoutService,
		PartnerService:    partnerservice.New(repo.PartnerRepo, repo.Storefront, repo.TxManager, trail),
		EventService:      eventservice.New(repo.EventRepo, commissionService),
		dispatcher:        dispatcher,
	}, nil
}

// Close waits for queued notifications to be delivered.
func (s *Services) Close() {
	if s.dispatcher != nil {
		s.dispatcher.Close()
	}
}

func newNotifier(cfg *config.Config) (notify.Notifier, error) {
	switch cfg.NotifyDriver {
	case config.NotifyHTTP:
		return notify.NewHTTPNotifier(cfg.NotifyURL, clients.NewHTTPClient()), nil
	case config.NotifyRedis:
		client, err := notify.Connect(cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		if err := client.Ping(context.Background()).Err(); err != nil {
			return nil, fmt.Errorf("can't reach redis: %w", err)
		}
		zap.L().Info("notifications go to redis stream", zap.String("stream", cfg.NotifyStream))
		return notify.NewRedisNotifier(client, cfg.NotifyStream), nil
	default:
		return notify.LogNotifier{}, nil
	}
}
