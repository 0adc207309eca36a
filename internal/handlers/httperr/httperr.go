// Package httperr maps service errors onto HTTP responses.
package httperr

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/GlebRadaev/affiliate/internal/domain"
	"github.com/GlebRadaev/affiliate/internal/dto"
	"github.com/GlebRadaev/affiliate/pkg/utils"
)

func Status(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidState),
		errors.Is(err, domain.ErrAlreadyPaid),
		errors.Is(err, domain.ErrPayoutInFlight),
		errors.Is(err, domain.ErrPartnerInactive),
		errors.Is(err, domain.ErrDuplicateEvent):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInsufficientBalance),
		errors.Is(err, domain.ErrBelowMinimumPayout),
		errors.Is(err, domain.ErrNotAttributed):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrTransient):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func Write(w http.ResponseWriter, err error) {
	code := Status(err)

	var balanceErr *domain.BalanceError
	if errors.As(err, &balanceErr) {
		utils.RespondWithJSON(w, code, dto.BalanceErrorDTO{
			Error:     balanceErr.Err.Error(),
			PartnerID: balanceErr.PartnerID,
			Requested: balanceErr.Requested,
			Available: balanceErr.Available,
			Minimum:   balanceErr.Minimum,
		})
		return
	}

	switch code {
	case http.StatusInternalServerError:
		zap.L().Error("request failed", zap.Error(err))
		utils.RespondWithError(w, code, "Internal server error")
	case http.StatusServiceUnavailable:
		zap.L().Warn("transient failure", zap.Error(err))
		utils.RespondWithError(w, code, "Service temporarily unavailable, retry later")
	default:
		utils.RespondWithError(w, code, err.Error())
	}
}
