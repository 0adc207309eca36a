package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/affiliate/internal/domain"
	"github.com/GlebRadaev/affiliate/internal/dto"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("%w: payout p1", domain.ErrNotFound), http.StatusNotFound},
		{&domain.StateError{Err: domain.ErrInvalidState}, http.StatusConflict},
		{&domain.StateError{Err: domain.ErrAlreadyPaid}, http.StatusConflict},
		{domain.ErrPayoutInFlight, http.StatusConflict},
		{&domain.BalanceError{Err: domain.ErrInsufficientBalance}, http.StatusUnprocessableEntity},
		{&domain.BalanceError{Err: domain.ErrBelowMinimumPayout}, http.StatusUnprocessableEntity},
		{domain.ErrInvalidInput, http.StatusBadRequest},
		{domain.ErrForbidden, http.StatusForbidden},
		{fmt.Errorf("%w: deadlock", domain.ErrTransient), http.StatusServiceUnavailable},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, Status(tt.err))
		})
	}
}

func TestWriteBalanceError(t *testing.T) {
	w := httptest.NewRecorder()
	Write(w, &domain.BalanceError{Err: domain.ErrInsufficientBalance, PartnerID: "aff-1", Requested: 4000, Available: 3000})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var body dto.BalanceErrorDTO
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "insufficient balance", body.Error)
	assert.Equal(t, int64(4000), body.Requested)
	assert.Equal(t, int64(3000), body.Available)
}

func TestWriteHidesInternalErrors(t *testing.T) {
	w := httptest.NewRecorder()
	Write(w, errors.New("pq: relation does not exist"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "relation")
}
