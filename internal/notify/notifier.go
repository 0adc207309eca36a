// Package notify delivers best-effort partner notifications. Delivery runs on a worker pool
// after the ledger transaction has committed; a failed delivery is logged and dropped.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/GlebRadaev/affiliate/internal/domain"
	"github.com/GlebRadaev/affiliate/pkg/clients"
)

//go:generate mockgen -source=notifier.go -destination=mock_notifier.go -package=notify

const (
	KindCommissionRecorded = "commission.recorded"
	KindCommissionApproved = "commission.approved"
	KindCommissionVoided   = "commission.voided"
	KindPayoutRequested    = "payout.requested"
	KindPayoutRejected     = "payout.rejected"
	KindPayoutPaid         = "payout.paid"
)

const (
	maxRetries    = 3
	retryInterval = time.Second
)

type Notifier interface {
	Send(ctx context.Context, n domain.Notification) error
}

type HTTPPoster interface {
	Post(ctx context.Context, url string, headers http.Header, body []byte) (*clients.Response, error)
}

// HTTPNotifier posts the notification as JSON to a webhook URL, retrying transport failures,
// 5xx and 429 responses.
type HTTPNotifier struct {
	url       string
	client    HTTPPoster
	backoffFn func(attempt int) time.Duration
}

func NewHTTPNotifier(url string, client HTTPPoster) *HTTPNotifier {
	return &HTTPNotifier{
		url:    url,
		client: client,
		backoffFn: func(attempt int) time.Duration {
			return retryInterval * time.Duration(attempt)
		},
	}
}

func (h *HTTPNotifier) Send(ctx context.Context, n domain.Notification) error {
	body, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}
	headers := http.Header{
		"Content-Type":    {"application/json"},
		"Idempotency-Key": {n.ID},
	}

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		resp, err := h.client.Post(ctx, h.url, headers, body)
		switch {
		case err != nil:
			lastErr = err
		case resp.OK():
			return nil
		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
			lastErr = fmt.Errorf("notification endpoint returned %d", resp.StatusCode)
		default:
			return fmt.Errorf("notification endpoint rejected %s with %d", n.Kind, resp.StatusCode)
		}

		if attempt == maxRetries {
			break
		}
		wait := h.backoffFn(attempt)
		if resp != nil {
			if s, convErr := strconv.Atoi(resp.Header.Get("Retry-After")); convErr == nil {
				wait = time.Duration(s) * time.Second
			}
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
	return fmt.Errorf("send %s after %d attempts: %w", n.Kind, maxRetries, lastErr)
}

// RedisNotifier appends notifications to a Redis stream for downstream consumers.
type RedisNotifier struct {
	client *redis.Client
	stream string
}

func NewRedisNotifier(client *redis.Client, stream string) *RedisNotifier {
	return &RedisNotifier{client: client, stream: stream}
}

func (r *RedisNotifier) Send(ctx context.Context, n domain.Notification) error {
	data, err := json.Marshal(n.Data)
	if err != nil {
		return fmt.Errorf("marshal notification data: %w", err)
	}
	return r.client.XAdd(ctx, &redis.XAddArgs{
		Stream: r.stream,
		Values: map[string]any{
			"id":         n.ID,
			"kind":       n.Kind,
			"partner_id": n.PartnerID,
			"amount":     n.Amount,
			"data":       string(data),
			"created_at": n.CreatedAt.UTC().Format(time.RFC3339Nano),
		},
	}).Err()
}

// Connect accepts either a redis:// URL or a bare host:port.
func Connect(redisURL string) (*redis.Client, error) {
	if strings.HasPrefix(redisURL, "redis://") || strings.HasPrefix(redisURL, "rediss://") {
		opt, err := redis.ParseURL(redisURL)
		if err != nil {
			return nil, fmt.Errorf("parse redis url: %w", err)
		}
		return redis.NewClient(opt), nil
	}
	return redis.NewClient(&redis.Options{Addr: redisURL}), nil
}

type LogNotifier struct{}

func (LogNotifier) Send(_ context.Context, n domain.Notification) error {
	zap.L().Info("notification",
		zap.String("kind", n.Kind),
		zap.String("partnerID", n.PartnerID),
		zap.Int64("amount", n.Amount),
		zap.Any("data", n.Data),
	)
	return nil
}
