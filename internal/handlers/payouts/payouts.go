package payouts

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/affiliate/internal/domain"
	"github.com/GlebRadaev/affiliate/internal/dto"
	"github.com/GlebRadaev/affiliate/internal/handlers/httperr"
	"github.com/GlebRadaev/affiliate/internal/service/payoutservice"
	"github.com/GlebRadaev/affiliate/pkg/auth"
	"github.com/GlebRadaev/affiliate/pkg/utils"
)

//go:generate mockgen -source=payouts.go -destination=mock_payouts.go -package=payouts

type Service interface {
	RequestPayout(ctx context.Context, actor domain.Actor, partnerID, paymentMethod string) (*domain.Payout, error)
	ApprovePayoutRequest(ctx context.Context, actor domain.Actor, id string) (*domain.Payout, error)
	RejectPayoutRequest(ctx context.Context, actor domain.Actor, id, reason string) (*domain.Payout, error)
	ProcessPayout(ctx context.Context, actor domain.Actor, id string) (*payoutservice.Settlement, error)
	RecordManualPayout(ctx context.Context, actor domain.Actor, partnerID string, amount int64, commissionIDs []string, method, notes string) (*payoutservice.Settlement, error)
	RunPayoutBatch(ctx context.Context, actor domain.Actor, dryRun bool) (*payoutservice.BatchResult, error)
	ListByPartner(ctx context.Context, actor domain.Actor, partnerID string, limit, offset int) ([]domain.Payout, error)
}

type PayoutHandler struct {
	payoutService Service
}

func New(payoutService Service) *PayoutHandler {
	return &PayoutHandler{payoutService: payoutService}
}

func actor(r *http.Request) domain.Actor {
	a, _ := auth.ActorFromContext(r.Context())
	return a
}

func settlementResponse(st *payoutservice.Settlement) dto.SettlementResponseDTO {
	return dto.SettlementResponseDTO{Payout: dto.NewPayoutResponse(*st.Payout), Commissions: st.Commissions}
}

// RequestPayout godoc
//
//	@Summary		Request a payout of the pending balance
//	@Description	Opens a pending payout for the partner's full pending balance. Refused while another payout is open or below the program minimum.
//	@Tags			Payouts
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			partnerID	path		string				true	"Partner id"
//	@Param			request		body		dto.PayoutRequestDTO	false	"Payment method"
//	@Success		201			{object}	dto.PayoutResponseDTO
//	@Failure		409			{object}	utils.Response			"Payout already in progress"
//	@Failure		422			{object}	dto.BalanceErrorDTO		"Below minimum payout"
//	@Router			/api/partners/{partnerID}/payouts [post]
func (h *PayoutHandler) RequestPayout(w http.ResponseWriter, r *http.Request) {
	var req dto.PayoutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	p, err := h.payoutService.RequestPayout(r.Context(), actor(r), chi.URLParam(r, "partnerID"), req.PaymentMethod)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewPayoutResponse(*p))
}

// ListByPartner godoc
//
//	@Summary	List a partner's payouts, newest first
//	@Tags		Payouts
//	@Security	BearerAuth
//	@Produce	json
//	@Param		partnerID	path		string	true	"Partner id"
//	@Param		limit		query		int		false	"Page size"
//	@Param		offset		query		int		false	"Offset"
//	@Success	200			{array}		dto.PayoutResponseDTO
//	@Failure	403			{object}	utils.Response
//	@Router		/api/partners/{partnerID}/payouts [get]
func (h *PayoutHandler) ListByPartner(w http.ResponseWriter, r *http.Request) {
	limit, err := utils.QueryInt(r, "limit", 0)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid limit")
		return
	}
	offset, err := utils.QueryInt(r, "offset", 0)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid offset")
		return
	}
	ps, err := h.payoutService.ListByPartner(r.Context(), actor(r), chi.URLParam(r, "partnerID"), limit, offset)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	out := make([]dto.PayoutResponseDTO, len(ps))
	for i, p := range ps {
		out[i] = dto.NewPayoutResponse(p)
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

// Approve godoc
//
//	@Summary	Approve a pending payout request
//	@Tags		Payouts
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		string	true	"Payout id"
//	@Success	200	{object}	dto.PayoutResponseDTO
//	@Failure	409	{object}	utils.Response
//	@Router		/api/admin/payouts/{id}/approve [post]
func (h *PayoutHandler) Approve(w http.ResponseWriter, r *http.Request) {
	p, err := h.payoutService.ApprovePayoutRequest(r.Context(), actor(r), chi.URLParam(r, "id"))
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewPayoutResponse(*p))
}

// Reject godoc
//
//	@Summary	Reject a pending or approved payout
//	@Tags		Payouts
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string						true	"Payout id"
//	@Param		request	body		dto.RejectPayoutRequestDTO	true	"Reason"
//	@Success	200		{object}	dto.PayoutResponseDTO
//	@Failure	400		{object}	utils.Response
//	@Failure	409		{object}	utils.Response
//	@Router		/api/admin/payouts/{id}/reject [post]
func (h *PayoutHandler) Reject(w http.ResponseWriter, r *http.Request) {
	var req dto.RejectPayoutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	p, err := h.payoutService.RejectPayoutRequest(r.Context(), actor(r), chi.URLParam(r, "id"), req.Reason)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewPayoutResponse(*p))
}

// Process godoc
//
//	@Summary		Settle an approved payout
//	@Description	Marks the payout and its commissions paid and moves the amount into the partner's paid balance.
//	@Tags			Payouts
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Payout id"
//	@Success		200	{object}	dto.SettlementResponseDTO
//	@Failure		409	{object}	utils.Response		"Payout is not approved"
//	@Failure		422	{object}	dto.BalanceErrorDTO	"Insufficient approved balance"
//	@Router			/api/admin/payouts/{id}/process [post]
func (h *PayoutHandler) Process(w http.ResponseWriter, r *http.Request) {
	st, err := h.payoutService.ProcessPayout(r.Context(), actor(r), chi.URLParam(r, "id"))
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, settlementResponse(st))
}

// RecordManual godoc
//
//	@Summary	Book a payout made outside the batch flow
//	@Tags		Payouts
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.ManualPayoutRequestDTO	true	"Manual payout"
//	@Success	201		{object}	dto.SettlementResponseDTO
//	@Failure	400		{object}	utils.Response
//	@Failure	422		{object}	dto.BalanceErrorDTO
//	@Router		/api/admin/payouts/manual [post]
func (h *PayoutHandler) RecordManual(w http.ResponseWriter, r *http.Request) {
	var req dto.ManualPayoutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.PartnerID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	st, err := h.payoutService.RecordManualPayout(r.Context(), actor(r), req.PartnerID, req.Amount, req.CommissionIDs, req.PaymentMethod, req.Notes)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, settlementResponse(st))
}

// RunBatch godoc
//
//	@Summary		Pay every eligible partner
//	@Description	Each partner settles independently. With dry_run=true nothing is written.
//	@Tags			Payouts
//	@Security		BearerAuth
//	@Produce		json
//	@Param			dry_run	query		bool	false	"Preview only"
//	@Success		200		{object}	payoutservice.BatchResult
//	@Router			/api/admin/payouts/batch [post]
func (h *PayoutHandler) RunBatch(w http.ResponseWriter, r *http.Request) {
	dryRun := false
	if raw := r.URL.Query().Get("dry_run"); raw != "" {
		var err error
		if dryRun, err = strconv.ParseBool(raw); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "invalid dry_run")
			return
		}
	}
	result, err := h.payoutService.RunPayoutBatch(r.Context(), actor(r), dryRun)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, result)
}
