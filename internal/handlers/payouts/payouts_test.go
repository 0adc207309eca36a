package payouts

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/affiliate/internal/domain"
	"github.com/GlebRadaev/affiliate/internal/dto"
	"github.com/GlebRadaev/affiliate/internal/service/payoutservice"
	"github.com/GlebRadaev/affiliate/pkg/auth"
)

var (
	admin   = domain.Actor{ID: "admin-1", Role: domain.RoleAdmin}
	partner = domain.Actor{ID: "u1", Role: domain.RolePartner, PartnerID: "aff-1"}
)

func NewMock(t *testing.T) (*PayoutHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	return New(service), service
}

func request(method, target, body string, actor domain.Actor, params map[string]string) *http.Request {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(auth.WithActor(r.Context(), actor), chi.RouteCtxKey, rctx))
}

func TestRequestPayoutHandler(t *testing.T) {
	handler, service := NewMock(t)
	params := map[string]string{"partnerID": "aff-1"}

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
		check        func(t *testing.T, body string)
	}{
		{
			name: "created",
			body: `{"payment_method":"paypal"}`,
			prepareMock: func() {
				service.EXPECT().RequestPayout(gomock.Any(), partner, "aff-1", "paypal").
					Return(&domain.Payout{ID: "p1", PartnerID: "aff-1", Amount: 6000, Status: domain.PayoutPending, PaymentMethod: "paypal"}, nil)
			},
			expectedCode: http.StatusCreated,
			check: func(t *testing.T, body string) {
				var p dto.PayoutResponseDTO
				require.NoError(t, json.Unmarshal([]byte(body), &p))
				assert.Equal(t, int64(6000), p.Amount)
				assert.Equal(t, "pending", p.Status)
			},
		},
		{
			name: "below minimum reports numbers",
			prepareMock: func() {
				service.EXPECT().RequestPayout(gomock.Any(), partner, "aff-1", "").
					Return(nil, &domain.BalanceError{Err: domain.ErrBelowMinimumPayout, PartnerID: "aff-1", Available: 1200, Minimum: 5000})
			},
			expectedCode: http.StatusUnprocessableEntity,
			check: func(t *testing.T, body string) {
				var e dto.BalanceErrorDTO
				require.NoError(t, json.Unmarshal([]byte(body), &e))
				assert.Equal(t, int64(1200), e.Available)
				assert.Equal(t, int64(5000), e.Minimum)
			},
		},
		{
			name: "in flight",
			prepareMock: func() {
				service.EXPECT().RequestPayout(gomock.Any(), partner, "aff-1", "").Return(nil, domain.ErrPayoutInFlight)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:         "bad body",
			body:         `[`,
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}
			w := httptest.NewRecorder()
			handler.RequestPayout(w, request(http.MethodPost, "/", tt.body, partner, params))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.check != nil {
				tt.check(t, w.Body.String())
			}
		})
	}
}

func TestAdminPayoutHandlers(t *testing.T) {
	handler, service := NewMock(t)
	params := map[string]string{"id": "p1"}
	paid := &domain.Payout{ID: "p1", PartnerID: "aff-1", Amount: 5000, Status: domain.PayoutPaid}

	service.EXPECT().ApprovePayoutRequest(gomock.Any(), admin, "p1").Return(&domain.Payout{ID: "p1", Status: domain.PayoutApproved}, nil)
	w := httptest.NewRecorder()
	handler.Approve(w, request(http.MethodPost, "/", "", admin, params))
	assert.Equal(t, http.StatusOK, w.Code)

	service.EXPECT().RejectPayoutRequest(gomock.Any(), admin, "p1", "").Return(nil, domain.ErrInvalidInput)
	w = httptest.NewRecorder()
	handler.Reject(w, request(http.MethodPost, "/", `{}`, admin, params))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	service.EXPECT().ProcessPayout(gomock.Any(), admin, "p1").Return(&payoutservice.Settlement{Payout: paid, Commissions: []string{"c1", "c2"}}, nil)
	w = httptest.NewRecorder()
	handler.Process(w, request(http.MethodPost, "/", "", admin, params))
	assert.Equal(t, http.StatusOK, w.Code)
	var st dto.SettlementResponseDTO
	require.NoError(t, json.NewDecoder(w.Body).Decode(&st))
	assert.Equal(t, []string{"c1", "c2"}, st.Commissions)
	assert.Equal(t, "paid", st.Payout.Status)

	service.EXPECT().ProcessPayout(gomock.Any(), admin, "p1").
		Return(nil, &domain.BalanceError{Err: domain.ErrInsufficientBalance, PartnerID: "aff-1", Requested: 4000, Available: 3000})
	w = httptest.NewRecorder()
	handler.Process(w, request(http.MethodPost, "/", "", admin, params))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), `"available":3000`)
}

func TestRecordManualHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().RecordManualPayout(gomock.Any(), admin, "aff-1", int64(2500), []string{"c2"}, "wire", "ref 42").
		Return(&payoutservice.Settlement{Payout: &domain.Payout{ID: "p9", Amount: 2500, Status: domain.PayoutPaid}, Commissions: []string{"c2"}}, nil)
	w := httptest.NewRecorder()
	handler.RecordManual(w, request(http.MethodPost, "/", `{"partner_id":"aff-1","amount":2500,"commission_ids":["c2"],"payment_method":"wire","notes":"ref 42"}`, admin, nil))
	assert.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	handler.RecordManual(w, request(http.MethodPost, "/", `{"amount":2500}`, admin, nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRunBatchHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().RunPayoutBatch(gomock.Any(), admin, true).Return(&payoutservice.BatchResult{DryRun: true, Payouts: []payoutservice.BatchItem{}}, nil)
	w := httptest.NewRecorder()
	handler.RunBatch(w, request(http.MethodPost, "/?dry_run=true", "", admin, nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"dry_run":true`)

	w = httptest.NewRecorder()
	handler.RunBatch(w, request(http.MethodPost, "/?dry_run=maybe", "", admin, nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListByPartnerHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().ListByPartner(gomock.Any(), partner, "aff-1", 5, 0).Return([]domain.Payout{{ID: "p1"}, {ID: "p2"}}, nil)
	w := httptest.NewRecorder()
	handler.ListByPartner(w, request(http.MethodGet, "/?limit=5", "", partner, map[string]string{"partnerID": "aff-1"}))
	assert.Equal(t, http.StatusOK, w.Code)
	var list []dto.PayoutResponseDTO
	require.NoError(t, json.NewDecoder(w.Body).Decode(&list))
	assert.Len(t, list, 2)
}
