package eventservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/affiliate/internal/domain"
	"github.com/GlebRadaev/affiliate/internal/service/commissionservice"
)

//go:generate mockgen -source=eventservice.go -destination=mock_eventservice.go -package=eventservice

type EventRepo interface {
	Insert(ctx context.Context, event *domain.ProcessedEvent) error
}

type CommissionRecorder interface {
	RecordCommission(ctx context.Context, actor domain.Actor, orderID string, attr commissionservice.Attribution) (*commissionservice.RecordResult, error)
}

// PaymentEvent is a confirmed-payment notification from the payment provider or the storefront.
type PaymentEvent struct {
	ID              string                 `json:"id"`
	Type            string                 `json:"type"`
	Source          string                 `json:"source"`
	OrderID         string                 `json:"order_id"`
	AttributionType domain.AttributionType `json:"attribution_type,omitempty"`
	FriendsFamily   bool                   `json:"friends_family,omitempty"`
}

type Outcome struct {
	Admitted   bool                            `json:"admitted"`
	Duplicate  bool                            `json:"duplicate,omitempty"`
	Ignored    bool                            `json:"ignored,omitempty"`
	Commission *commissionservice.RecordResult `json:"commission,omitempty"`
	Error      string                          `json:"error,omitempty"`
}

var commissionEvents = map[string]bool{
	"payment.succeeded":          true,
	"checkout.session.completed": true,
	"order.paid":                 true,
}

type Service struct {
	events   EventRepo
	recorder CommissionRecorder
	nowFn    func() time.Time
}

func New(events EventRepo, recorder CommissionRecorder) *Service {
	return &Service{events: events, recorder: recorder, nowFn: time.Now}
}

// Admit records the event id once. Only the first caller for an id, including concurrent
// racers, gets true.
func (s *Service) Admit(ctx context.Context, id, eventType, source string, metadata map[string]string) (bool, error) {
	err := s.events.Insert(ctx, &domain.ProcessedEvent{
		ID:        id,
		Type:      eventType,
		Source:    source,
		Metadata:  metadata,
		CreatedAt: s.nowFn(),
	})
	if errors.Is(err, domain.ErrDuplicateEvent) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// HandlePaymentEvent admits the event and records the order's commission. Once the event is
// admitted the outcome is always returned without error so the sender stops redelivering;
// downstream failures are logged and reported in the outcome.
func (s *Service) HandlePaymentEvent(ctx context.Context, ev PaymentEvent) (*Outcome, error) {
	if ev.ID == "" || ev.Type == "" {
		return nil, fmt.Errorf("%w: event id and type are required", domain.ErrInvalidInput)
	}
	if ev.Source == "" {
		ev.Source = "unknown"
	}

	admitted, err := s.Admit(ctx, ev.ID, ev.Type, ev.Source, map[string]string{"order_id": ev.OrderID})
	if err != nil {
		zap.L().Error("can't admit payment event", zap.String("eventID", ev.ID), zap.Error(err))
		return nil, err
	}
	if !admitted {
		zap.L().Info("duplicate payment event", zap.String("eventID", ev.ID))
		return &Outcome{Duplicate: true}, nil
	}

	outcome := &Outcome{Admitted: true}
	if !commissionEvents[ev.Type] {
		outcome.Ignored = true
		return outcome, nil
	}
	if ev.OrderID == "" {
		outcome.Error = "event carries no order id"
		zap.L().Warn("payment event without order", zap.String("eventID", ev.ID), zap.String("type", ev.Type))
		return outcome, nil
	}

	actor := domain.Actor{ID: "webhook:" + ev.Source, Role: domain.RoleSystem}
	result, err := s.recorder.RecordCommission(ctx, actor, ev.OrderID, commissionservice.Attribution{
		Type:          ev.AttributionType,
		FriendsFamily: ev.FriendsFamily,
	})
	switch {
	case errors.Is(err, domain.ErrNotAttributed):
		outcome.Ignored = true
	case err != nil:
		outcome.Error = err.Error()
		zap.L().Error("payment event admitted but commission not recorded",
			zap.String("eventID", ev.ID),
			zap.String("orderID", ev.OrderID),
			zap.Error(err),
		)
	default:
		outcome.Commission = result
	}
	return outcome, nil
}
