package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/affiliate/internal/config"
	"github.com/GlebRadaev/affiliate/internal/domain"
	"github.com/GlebRadaev/affiliate/internal/repo"
	"github.com/GlebRadaev/affiliate/internal/service/eventservice"
	"github.com/GlebRadaev/affiliate/internal/testutil/memstore"
)

func repositories(store *memstore.Store) *repo.Repositories {
	return &repo.Repositories{
		PartnerRepo:    store.Partners(),
		CommissionRepo: store.Commissions(),
		PayoutRepo:     store.Payouts(),
		EventRepo:      store.Events(),
		AuditRepo:      store,
		Storefront:     store,
		TxManager:      store,
	}
}

func testConfig(driver string) *config.Config {
	return &config.Config{
		IdempotencyTTL:       time.Minute,
		IdempotencyCacheSize: 100,
		BatchConcurrency:     2,
		NotifyDriver:         driver,
		NotifyURL:            "http://localhost:1/hook",
		NotifyStream:         "affiliate:notifications",
		NotifyWorkers:        1,
		VelocityWindow:       time.Hour,
		VelocityMaxOrders:    3,
	}
}

func TestNew(t *testing.T) {
	for _, driver := range []string{config.NotifyLog, config.NotifyHTTP} {
		t.Run(driver, func(t *testing.T) {
			services, err := New(testConfig(driver), repositories(memstore.New()))
			require.NoError(t, err)
			defer services.Close()

			assert.NotNil(t, services.CommissionService)
			assert.NotNil(t, services.PayoutService)
			assert.NotNil(t, services.PartnerService)
			assert.NotNil(t, services.EventService)
		})
	}
}

func TestNew_RedisUnreachable(t *testing.T) {
	cfg := testConfig(config.NotifyRedis)
	cfg.RedisURL = "127.0.0.1:1"

	_, err := New(cfg, repositories(memstore.New()))
	assert.Error(t, err)
}

func TestServices_PaymentToPayout(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := testConfig(config.NotifyRedis)
	cfg.RedisURL = "redis://" + mr.Addr()

	store := memstore.New()
	store.AddPartner(domain.Partner{ID: "aff-1", ReferralCode: "ALICE"})
	code := "ALICE"
	store.AddOrder(domain.Order{ID: "o1", CustomerID: "cust-1", CustomerEmail: "bob@example.com", TotalAmount: 60000, ReferralCode: &code})

	services, err := New(cfg, repositories(store))
	require.NoError(t, err)

	ctx := context.Background()
	admin := domain.Actor{ID: "admin-1", Role: domain.RoleAdmin}

	outcome, err := services.EventService.HandlePaymentEvent(ctx, eventservice.PaymentEvent{
		ID: "evt_1", Type: "payment.succeeded", Source: "stripe", OrderID: "o1",
	})
	require.NoError(t, err)
	require.NotNil(t, outcome.Commission)
	assert.Equal(t, int64(6000), outcome.Commission.Amount)

	again, err := services.EventService.HandlePaymentEvent(ctx, eventservice.PaymentEvent{
		ID: "evt_1", Type: "payment.succeeded", Source: "stripe", OrderID: "o1",
	})
	require.NoError(t, err)
	assert.True(t, again.Duplicate)

	payout, err := services.PayoutService.RequestPayout(ctx, admin, "aff-1", "paypal")
	require.NoError(t, err)
	assert.Equal(t, int64(6000), payout.Amount)

	_, err = services.CommissionService.Approve(ctx, admin, outcome.Commission.CommissionID, "")
	require.NoError(t, err)
	_, err = services.PayoutService.ApprovePayoutRequest(ctx, admin, payout.ID)
	require.NoError(t, err)
	settlement, err := services.PayoutService.ProcessPayout(ctx, admin, payout.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{outcome.Commission.CommissionID}, settlement.Commissions)

	balance, err := services.PartnerService.GetBalance(ctx, admin, "aff-1")
	require.NoError(t, err)
	assert.Equal(t, int64(6000), balance.PaidBalance)
	assert.Equal(t, int64(0), balance.Approved)

	services.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()
	n, err := client.XLen(ctx, cfg.NotifyStream).Result()
	require.NoError(t, err)
	assert.Greater(t, n, int64(0))
}
