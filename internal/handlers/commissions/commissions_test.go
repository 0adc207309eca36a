package commissions

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/affiliate/internal/domain"
	"github.com/GlebRadaev/affiliate/internal/dto"
	"github.com/GlebRadaev/affiliate/internal/service/commissionservice"
	"github.com/GlebRadaev/affiliate/pkg/auth"
)

var admin = domain.Actor{ID: "admin-1", Role: domain.RoleAdmin}

func NewMock(t *testing.T) (*CommissionHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	return New(service), service
}

func request(method, target, body string, actor domain.Actor, params map[string]string) *http.Request {
	r := httptest.NewRequest(method, target, strings.NewReader(body))
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	}
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	ctx := context.WithValue(auth.WithActor(r.Context(), actor), chi.RouteCtxKey, rctx)
	return r.WithContext(ctx)
}

func TestRecordHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
		expectedBody string
	}{
		{
			name: "records commission",
			body: `{"order_id":"o1","attribution_type":"coupon"}`,
			prepareMock: func() {
				service.EXPECT().RecordCommission(gomock.Any(), admin, "o1", commissionservice.Attribution{Type: domain.AttributionCoupon}).
					Return(&commissionservice.RecordResult{CommissionID: "c1", Amount: 1000, Status: domain.CommissionPending}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"commission_id":"c1","amount":1000,"status":"pending","duplicate":false}`,
		},
		{
			name:         "invalid body",
			body:         `{"order_id":`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "unknown attribution",
			body:         `{"order_id":"o1","attribution_type":"radio"}`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "not attributed",
			body: `{"order_id":"o2"}`,
			prepareMock: func() {
				service.EXPECT().RecordCommission(gomock.Any(), admin, "o2", gomock.Any()).Return(nil, domain.ErrNotAttributed)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}
			w := httptest.NewRecorder()
			handler.Record(w, request(http.MethodPost, "/api/admin/commissions/record", tt.body, admin, nil))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, w.Body.String())
			}
		})
	}
}

func TestTransitionHandlers(t *testing.T) {
	handler, service := NewMock(t)
	approved := &domain.Commission{ID: "c1", Status: domain.CommissionApproved}
	voided := &domain.Commission{ID: "c1", Status: domain.CommissionVoid}

	tests := []struct {
		name         string
		handler      http.HandlerFunc
		body         string
		prepareMock  func()
		expectedCode int
		expectedStat string
	}{
		{
			name:    "approve without body",
			handler: handler.Approve,
			prepareMock: func() {
				service.EXPECT().Approve(gomock.Any(), admin, "c1", "").Return(approved, nil)
			},
			expectedCode: http.StatusOK,
			expectedStat: "approved",
		},
		{
			name:    "void paid commission",
			handler: handler.Void,
			body:    `{"reason":"refund"}`,
			prepareMock: func() {
				service.EXPECT().Void(gomock.Any(), admin, "c1", "refund").
					Return(nil, &domain.StateError{Err: domain.ErrAlreadyPaid, Entity: "commission", ID: "c1", From: "paid", To: "void"})
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:    "review approve with notes",
			handler: handler.ReviewApprove,
			body:    `{"notes":"verified"}`,
			prepareMock: func() {
				service.EXPECT().ReviewApprove(gomock.Any(), admin, "c1", "verified").Return(approved, nil)
			},
			expectedCode: http.StatusOK,
			expectedStat: "approved",
		},
		{
			name:    "review void",
			handler: handler.ReviewVoid,
			body:    `{"reason":"self referral","notes":"same card"}`,
			prepareMock: func() {
				service.EXPECT().ReviewVoid(gomock.Any(), admin, "c1", "self referral", "same card").Return(voided, nil)
			},
			expectedCode: http.StatusOK,
			expectedStat: "void",
		},
		{
			name:         "broken body",
			handler:      handler.Approve,
			body:         `{`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:    "missing commission",
			handler: handler.Approve,
			prepareMock: func() {
				service.EXPECT().Approve(gomock.Any(), admin, "c1", "").Return(nil, domain.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}
			w := httptest.NewRecorder()
			tt.handler(w, request(http.MethodPost, "/api/admin/commissions/c1/x", tt.body, admin, map[string]string{"id": "c1"}))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedStat != "" {
				var body dto.CommissionResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedStat, body.Status)
			}
		})
	}
}

func TestBulkAndAutoApproveHandlers(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().BulkApprove(gomock.Any(), admin, []string{"c1", "c2"}).Return(&commissionservice.BatchResult{
		Succeeded: []string{"c1"},
		Failed:    []commissionservice.Failure{{ID: "c2", Error: "not found"}},
	})
	w := httptest.NewRecorder()
	handler.BulkApprove(w, request(http.MethodPost, "/", `{"ids":["c1","c2"]}`, admin, nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"succeeded":["c1"],"failed":[{"id":"c2","error":"not found"}]}`, w.Body.String())

	w = httptest.NewRecorder()
	handler.BulkApprove(w, request(http.MethodPost, "/", `{"ids":[]}`, admin, nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	service.EXPECT().AutoApprove(gomock.Any(), admin).Return(nil, errors.New("db down"))
	w = httptest.NewRecorder()
	handler.AutoApprove(w, request(http.MethodPost, "/", "", admin, nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestListHandlers(t *testing.T) {
	handler, service := NewMock(t)
	partner := domain.Actor{ID: "u1", Role: domain.RolePartner, PartnerID: "aff-1"}

	service.EXPECT().ListByPartner(gomock.Any(), partner, "aff-1", domain.CommissionPaid, 20, 40).
		Return([]domain.Commission{{ID: "c1", Status: domain.CommissionPaid}}, nil)
	w := httptest.NewRecorder()
	handler.ListByPartner(w, request(http.MethodGet, "/?status=paid&limit=20&offset=40", "", partner, map[string]string{"partnerID": "aff-1"}))
	assert.Equal(t, http.StatusOK, w.Code)
	var list []dto.CommissionResponseDTO
	_ = json.NewDecoder(w.Body).Decode(&list)
	assert.Len(t, list, 1)

	service.EXPECT().ListByPartner(gomock.Any(), partner, "aff-2", domain.CommissionStatus(""), 0, 0).Return(nil, domain.ErrForbidden)
	w = httptest.NewRecorder()
	handler.ListByPartner(w, request(http.MethodGet, "/", "", partner, map[string]string{"partnerID": "aff-2"}))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.NewRecorder()
	handler.ListFlagged(w, request(http.MethodGet, "/?limit=abc", "", admin, nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	service.EXPECT().ListFlagged(gomock.Any(), 0, 0).Return([]domain.Commission{}, nil)
	w = httptest.NewRecorder()
	handler.ListFlagged(w, request(http.MethodGet, "/", "", admin, nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	service.EXPECT().Leaderboard(gomock.Any(), 10).Return([]domain.Partner{{ID: "aff-1", ReferralCode: "ALICE", TotalEarnings: 9000}}, nil)
	w = httptest.NewRecorder()
	handler.Leaderboard(w, request(http.MethodGet, "/", "", partner, nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"referral_code":"ALICE"`)
}
