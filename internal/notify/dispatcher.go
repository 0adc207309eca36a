package notify

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/affiliate/internal/domain"
)

const sendTimeout = 30 * time.Second

// Dispatcher hands notifications to a Notifier off the request path.
type Dispatcher struct {
	notifier Notifier
	pool     *WorkerPool
	nowFn    func() time.Time
	closed   atomic.Bool
}

func NewDispatcher(notifier Notifier, workers int) *Dispatcher {
	return &Dispatcher{
		notifier: notifier,
		pool:     NewWorkerPool(workers, workers*64),
		nowFn:    time.Now,
	}
}

// Notify never blocks and never fails. A full queue or a closed dispatcher drops the
// notification with a warning.
func (d *Dispatcher) Notify(kind, partnerID string, amount int64, data map[string]string) {
	if d.closed.Load() {
		zap.L().Warn("notification after close, dropping", zap.String("kind", kind), zap.String("partnerID", partnerID))
		return
	}
	n := domain.Notification{
		ID:        uuid.NewString(),
		Kind:      kind,
		PartnerID: partnerID,
		Amount:    amount,
		Data:      data,
		CreatedAt: d.nowFn(),
	}
	queued := d.pool.TryAdd(func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, sendTimeout)
		defer cancel()
		if err := d.notifier.Send(ctx, n); err != nil {
			zap.L().Warn("notification not delivered",
				zap.String("kind", n.Kind),
				zap.String("partnerID", n.PartnerID),
				zap.Error(err),
			)
		}
		return nil
	})
	if !queued {
		zap.L().Warn("notification queue full, dropping", zap.String("kind", kind), zap.String("partnerID", partnerID))
	}
}

// Close drains queued notifications.
func (d *Dispatcher) Close() {
	d.closed.Store(true)
	d.pool.Close()
}
