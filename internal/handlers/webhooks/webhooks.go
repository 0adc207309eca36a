package webhooks

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/GlebRadaev/affiliate/internal/handlers/httperr"
	"github.com/GlebRadaev/affiliate/internal/service/eventservice"
	"github.com/GlebRadaev/affiliate/pkg/auth"
	"github.com/GlebRadaev/affiliate/pkg/utils"
)

//go:generate mockgen -source=webhooks.go -destination=mock_webhooks.go -package=webhooks

const maxBodyBytes = 1 << 20

type Service interface {
	HandlePaymentEvent(ctx context.Context, ev eventservice.PaymentEvent) (*eventservice.Outcome, error)
}

type WebhookHandler struct {
	eventService Service
	secret       string
}

func New(eventService Service, secret string) *WebhookHandler {
	return &WebhookHandler{eventService: eventService, secret: secret}
}

// PaymentEvent godoc
//
//	@Summary		Receive a payment notification
//	@Description	The body must be signed with the shared webhook secret in the X-Webhook-Signature header. Once admitted an event is always acknowledged with 200.
//	@Tags			Webhooks
//	@Accept			json
//	@Produce		json
//	@Param			X-Webhook-Signature	header		string						true	"hex HMAC-SHA256 of the body"
//	@Param			event				body		eventservice.PaymentEvent	true	"Event"
//	@Success		200					{object}	eventservice.Outcome
//	@Failure		400					{object}	utils.Response
//	@Failure		401					{object}	utils.Response
//	@Failure		503					{object}	utils.Response
//	@Router			/api/webhooks/payments [post]
func (h *WebhookHandler) PaymentEvent(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "can't read body")
		return
	}
	if !auth.VerifySignature(h.secret, body, r.Header.Get(auth.SignatureHeader)) {
		zap.L().Warn("webhook signature mismatch", zap.String("remote", r.RemoteAddr))
		utils.RespondWithError(w, http.StatusUnauthorized, "invalid signature")
		return
	}

	var ev eventservice.PaymentEvent
	if err := json.NewDecoder(bytes.NewReader(body)).Decode(&ev); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid event body")
		return
	}
	outcome, err := h.eventService.HandlePaymentEvent(r.Context(), ev)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, outcome)
}
