package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/affiliate/internal/domain"
)

func TestAuthMiddleware(t *testing.T) {
	jwtService := NewJWTService("secret")
	partnerToken, _ := jwtService.GenerateJWT(domain.Actor{ID: "u1", Role: domain.RolePartner, PartnerID: "aff-1"}, time.Now().Add(time.Hour))
	adminToken, _ := jwtService.GenerateJWT(domain.Actor{ID: "ops", Role: domain.RoleAdmin}, time.Now().Add(time.Hour))

	var seen domain.Actor
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = ActorFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name       string
		header     string
		handler    http.Handler
		wantStatus int
		wantActor  string
	}{
		{name: "no header", handler: jwtService.AuthMiddleware(next), wantStatus: http.StatusUnauthorized},
		{name: "bad token", header: "Bearer nope", handler: jwtService.AuthMiddleware(next), wantStatus: http.StatusUnauthorized},
		{name: "partner", header: "Bearer " + partnerToken, handler: jwtService.AuthMiddleware(next), wantStatus: http.StatusOK, wantActor: "u1"},
		{name: "partner on admin route", header: "Bearer " + partnerToken, handler: jwtService.AuthMiddleware(AdminOnly(next)), wantStatus: http.StatusForbidden},
		{name: "admin on admin route", header: "Bearer " + adminToken, handler: jwtService.AuthMiddleware(AdminOnly(next)), wantStatus: http.StatusOK, wantActor: "ops"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen = domain.Actor{}
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			tt.handler.ServeHTTP(w, r)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantActor, seen.ID)
		})
	}
}

func TestVerifySignature(t *testing.T) {
	body := []byte(`{"id":"evt_1"}`)
	sig := Sign("whsec", body)

	assert.True(t, VerifySignature("whsec", body, sig))
	assert.True(t, VerifySignature("whsec", body, "sha256="+sig))
	assert.False(t, VerifySignature("whsec", []byte(`{"id":"evt_2"}`), sig))
	assert.False(t, VerifySignature("other", body, sig))
	assert.False(t, VerifySignature("whsec", body, "zz"))
	assert.False(t, VerifySignature("", body, sig))
}
