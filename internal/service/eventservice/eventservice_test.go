package eventservice

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/affiliate/internal/domain"
	"github.com/GlebRadaev/affiliate/internal/service/commissionservice"
	"github.com/GlebRadaev/affiliate/internal/testutil/memstore"
)

func NewMock(t *testing.T) (*Service, *MockEventRepo, *MockCommissionRecorder) {
	ctrl := gomock.NewController(t)
	events := NewMockEventRepo(ctrl)
	recorder := NewMockCommissionRecorder(ctrl)
	return New(events, recorder), events, recorder
}

func TestService_HandlePaymentEvent(t *testing.T) {
	s, events, recorder := NewMock(t)
	recorded := &commissionservice.RecordResult{CommissionID: "c1", Amount: 1000, Status: domain.CommissionPending}

	tests := []struct {
		name        string
		event       PaymentEvent
		prepareMock func()
		want        *Outcome
		wantErr     error
	}{
		{
			name:  "payment records commission",
			event: PaymentEvent{ID: "evt-1", Type: "payment.succeeded", Source: "stripe", OrderID: "o1"},
			prepareMock: func() {
				events.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e *domain.ProcessedEvent) error {
					assert.Equal(t, "stripe", e.Source)
					assert.Equal(t, "o1", e.Metadata["order_id"])
					return nil
				})
				recorder.EXPECT().RecordCommission(gomock.Any(), domain.Actor{ID: "webhook:stripe", Role: domain.RoleSystem}, "o1", commissionservice.Attribution{}).
					Return(recorded, nil)
			},
			want: &Outcome{Admitted: true, Commission: recorded},
		},
		{
			name:  "duplicate delivery",
			event: PaymentEvent{ID: "evt-1", Type: "payment.succeeded", OrderID: "o1"},
			prepareMock: func() {
				events.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(domain.ErrDuplicateEvent)
			},
			want: &Outcome{Duplicate: true},
		},
		{
			name:  "unrelated event type",
			event: PaymentEvent{ID: "evt-2", Type: "customer.created"},
			prepareMock: func() {
				events.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
			},
			want: &Outcome{Admitted: true, Ignored: true},
		},
		{
			name:  "unattributed order",
			event: PaymentEvent{ID: "evt-3", Type: "order.paid", OrderID: "o2"},
			prepareMock: func() {
				events.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
				recorder.EXPECT().RecordCommission(gomock.Any(), gomock.Any(), "o2", gomock.Any()).Return(nil, domain.ErrNotAttributed)
			},
			want: &Outcome{Admitted: true, Ignored: true},
		},
		{
			name:  "recording failure still acknowledges",
			event: PaymentEvent{ID: "evt-4", Type: "checkout.session.completed", OrderID: "o3"},
			prepareMock: func() {
				events.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
				recorder.EXPECT().RecordCommission(gomock.Any(), gomock.Any(), "o3", gomock.Any()).Return(nil, domain.ErrPartnerInactive)
			},
			want: &Outcome{Admitted: true, Error: domain.ErrPartnerInactive.Error()},
		},
		{
			name:  "missing order id",
			event: PaymentEvent{ID: "evt-5", Type: "order.paid"},
			prepareMock: func() {
				events.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
			},
			want: &Outcome{Admitted: true, Error: "event carries no order id"},
		},
		{
			name:    "missing event id",
			event:   PaymentEvent{Type: "order.paid"},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:  "store failure before admission",
			event: PaymentEvent{ID: "evt-6", Type: "order.paid", OrderID: "o1"},
			prepareMock: func() {
				events.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))
			},
			wantErr: errors.New("connection reset"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}
			got, err := s.HandlePaymentEvent(context.Background(), tt.event)
			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr.Error())
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_AdmitConcurrently(t *testing.T) {
	store := memstore.New()
	s := New(store.Events(), nil)

	var admitted atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := s.Admit(context.Background(), "evt-1", "payment.succeeded", "stripe", nil)
			assert.NoError(t, err)
			if ok {
				admitted.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), admitted.Load())
}
