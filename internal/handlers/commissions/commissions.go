package commissions

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/affiliate/internal/domain"
	"github.com/GlebRadaev/affiliate/internal/dto"
	"github.com/GlebRadaev/affiliate/internal/handlers/httperr"
	"github.com/GlebRadaev/affiliate/internal/service/commissionservice"
	"github.com/GlebRadaev/affiliate/pkg/auth"
	"github.com/GlebRadaev/affiliate/pkg/utils"
)

//go:generate mockgen -source=commissions.go -destination=mock_commissions.go -package=commissions

type Service interface {
	RecordCommission(ctx context.Context, actor domain.Actor, orderID string, attr commissionservice.Attribution) (*commissionservice.RecordResult, error)
	Approve(ctx context.Context, actor domain.Actor, id, notes string) (*domain.Commission, error)
	Void(ctx context.Context, actor domain.Actor, id, reason string) (*domain.Commission, error)
	ReviewApprove(ctx context.Context, actor domain.Actor, id, notes string) (*domain.Commission, error)
	ReviewVoid(ctx context.Context, actor domain.Actor, id, reason, notes string) (*domain.Commission, error)
	BulkApprove(ctx context.Context, actor domain.Actor, ids []string) *commissionservice.BatchResult
	AutoApprove(ctx context.Context, actor domain.Actor) (*commissionservice.BatchResult, error)
	ListByPartner(ctx context.Context, actor domain.Actor, partnerID string, status domain.CommissionStatus, limit, offset int) ([]domain.Commission, error)
	ListFlagged(ctx context.Context, limit, offset int) ([]domain.Commission, error)
	Leaderboard(ctx context.Context, limit int) ([]domain.Partner, error)
}

type CommissionHandler struct {
	commissionService Service
}

func New(commissionService Service) *CommissionHandler {
	return &CommissionHandler{commissionService: commissionService}
}

func actor(r *http.Request) domain.Actor {
	a, _ := auth.ActorFromContext(r.Context())
	return a
}

// Record godoc
//
//	@Summary		Record a commission for an order
//	@Description	Replays commission recording for a paid order. Recording an order twice returns the existing commission.
//	@Tags			Commissions
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RecordCommissionRequestDTO	true	"Order to record"
//	@Success		200		{object}	commissionservice.RecordResult
//	@Failure		400		{object}	utils.Response
//	@Failure		404		{object}	utils.Response
//	@Failure		422		{object}	utils.Response	"Order carries no referral code"
//	@Router			/api/admin/commissions/record [post]
func (h *CommissionHandler) Record(w http.ResponseWriter, r *http.Request) {
	var req dto.RecordCommissionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	switch domain.AttributionType(req.AttributionType) {
	case "", domain.AttributionDirect, domain.AttributionCookie, domain.AttributionCoupon:
	default:
		utils.RespondWithError(w, http.StatusBadRequest, "unknown attribution type")
		return
	}

	result, err := h.commissionService.RecordCommission(r.Context(), actor(r), req.OrderID, commissionservice.Attribution{
		Type:          domain.AttributionType(req.AttributionType),
		FriendsFamily: req.FriendsFamily,
	})
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, result)
}

func (h *CommissionHandler) review(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, a domain.Actor, id string, req dto.ReviewRequestDTO) (*domain.Commission, error)) {
	var req dto.ReviewRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	c, err := fn(r.Context(), actor(r), chi.URLParam(r, "id"), req)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewCommissionResponse(*c))
}

// Approve godoc
//
//	@Summary	Approve a pending or flagged commission
//	@Tags		Commissions
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string				true	"Commission id"
//	@Param		request	body		dto.ReviewRequestDTO	false	"Review notes"
//	@Success	200		{object}	dto.CommissionResponseDTO
//	@Failure	404		{object}	utils.Response
//	@Failure	409		{object}	utils.Response	"Illegal transition"
//	@Router		/api/admin/commissions/{id}/approve [post]
func (h *CommissionHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, func(ctx context.Context, a domain.Actor, id string, req dto.ReviewRequestDTO) (*domain.Commission, error) {
		return h.commissionService.Approve(ctx, a, id, req.Notes)
	})
}

// Void godoc
//
//	@Summary	Void a pending or flagged commission
//	@Tags		Commissions
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string				true	"Commission id"
//	@Param		request	body		dto.ReviewRequestDTO	true	"Void reason"
//	@Success	200		{object}	dto.CommissionResponseDTO
//	@Failure	409		{object}	utils.Response	"Already paid or illegal transition"
//	@Router		/api/admin/commissions/{id}/void [post]
func (h *CommissionHandler) Void(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, func(ctx context.Context, a domain.Actor, id string, req dto.ReviewRequestDTO) (*domain.Commission, error) {
		return h.commissionService.Void(ctx, a, id, req.Reason)
	})
}

// ReviewApprove godoc
//
//	@Summary	Clear a flagged commission
//	@Tags		Commissions
//	@Security	BearerAuth
//	@Param		id		path		string				true	"Commission id"
//	@Param		request	body		dto.ReviewRequestDTO	false	"Review notes"
//	@Success	200		{object}	dto.CommissionResponseDTO
//	@Failure	409		{object}	utils.Response	"Commission is not flagged"
//	@Router		/api/admin/commissions/{id}/review/approve [post]
func (h *CommissionHandler) ReviewApprove(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, func(ctx context.Context, a domain.Actor, id string, req dto.ReviewRequestDTO) (*domain.Commission, error) {
		return h.commissionService.ReviewApprove(ctx, a, id, req.Notes)
	})
}

// ReviewVoid godoc
//
//	@Summary	Reject a flagged commission
//	@Tags		Commissions
//	@Security	BearerAuth
//	@Param		id		path		string				true	"Commission id"
//	@Param		request	body		dto.ReviewRequestDTO	true	"Reason and notes"
//	@Success	200		{object}	dto.CommissionResponseDTO
//	@Failure	409		{object}	utils.Response	"Commission is not flagged"
//	@Router		/api/admin/commissions/{id}/review/void [post]
func (h *CommissionHandler) ReviewVoid(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, func(ctx context.Context, a domain.Actor, id string, req dto.ReviewRequestDTO) (*domain.Commission, error) {
		return h.commissionService.ReviewVoid(ctx, a, id, req.Reason, req.Notes)
	})
}

// BulkApprove godoc
//
//	@Summary	Approve several commissions independently
//	@Tags		Commissions
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.BulkApproveRequestDTO	true	"Commission ids"
//	@Success	200		{object}	commissionservice.BatchResult
//	@Failure	400		{object}	utils.Response
//	@Router		/api/admin/commissions/bulk-approve [post]
func (h *CommissionHandler) BulkApprove(w http.ResponseWriter, r *http.Request) {
	var req dto.BulkApproveRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.IDs) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "ids are required")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, h.commissionService.BulkApprove(r.Context(), actor(r), req.IDs))
}

// AutoApprove godoc
//
//	@Summary	Approve pending commissions older than the approval window
//	@Tags		Commissions
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	commissionservice.BatchResult
//	@Failure	500	{object}	utils.Response
//	@Router		/api/admin/commissions/auto-approve [post]
func (h *CommissionHandler) AutoApprove(w http.ResponseWriter, r *http.Request) {
	result, err := h.commissionService.AutoApprove(r.Context(), actor(r))
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, result)
}

func paging(r *http.Request) (int, int, bool) {
	limit, err := utils.QueryInt(r, "limit", 0)
	if err != nil {
		return 0, 0, false
	}
	offset, err := utils.QueryInt(r, "offset", 0)
	if err != nil {
		return 0, 0, false
	}
	return limit, offset, true
}

// ListByPartner godoc
//
//	@Summary	List a partner's commissions, newest first
//	@Tags		Commissions
//	@Security	BearerAuth
//	@Produce	json
//	@Param		partnerID	path		string	true	"Partner id"
//	@Param		status		query		string	false	"Status filter"
//	@Param		limit		query		int		false	"Page size"
//	@Param		offset		query		int		false	"Offset"
//	@Success	200			{array}		dto.CommissionResponseDTO
//	@Failure	403			{object}	utils.Response
//	@Router		/api/partners/{partnerID}/commissions [get]
func (h *CommissionHandler) ListByPartner(w http.ResponseWriter, r *http.Request) {
	limit, offset, ok := paging(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid paging parameters")
		return
	}
	status := domain.CommissionStatus(r.URL.Query().Get("status"))
	cs, err := h.commissionService.ListByPartner(r.Context(), actor(r), chi.URLParam(r, "partnerID"), status, limit, offset)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewCommissionList(cs))
}

// ListFlagged godoc
//
//	@Summary	List commissions waiting for fraud review, oldest first
//	@Tags		Commissions
//	@Security	BearerAuth
//	@Produce	json
//	@Param		limit	query	int	false	"Page size"
//	@Param		offset	query	int	false	"Offset"
//	@Success	200		{array}	dto.CommissionResponseDTO
//	@Router		/api/admin/commissions/flagged [get]
func (h *CommissionHandler) ListFlagged(w http.ResponseWriter, r *http.Request) {
	limit, offset, ok := paging(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid paging parameters")
		return
	}
	cs, err := h.commissionService.ListFlagged(r.Context(), limit, offset)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewCommissionList(cs))
}

// Leaderboard godoc
//
//	@Summary	Top partners by lifetime earnings
//	@Tags		Commissions
//	@Security	BearerAuth
//	@Produce	json
//	@Param		limit	query	int	false	"Number of partners"
//	@Success	200		{array}	dto.LeaderboardEntryDTO
//	@Router		/api/leaderboard [get]
func (h *CommissionHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	limit, err := utils.QueryInt(r, "limit", 10)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid limit")
		return
	}
	ps, err := h.commissionService.Leaderboard(r.Context(), limit)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewLeaderboard(ps))
}
