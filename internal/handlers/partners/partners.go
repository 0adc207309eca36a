package partners

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/affiliate/internal/domain"
	"github.com/GlebRadaev/affiliate/internal/handlers/httperr"
	"github.com/GlebRadaev/affiliate/internal/service/partnerservice"
	"github.com/GlebRadaev/affiliate/pkg/auth"
	"github.com/GlebRadaev/affiliate/pkg/utils"
)

//go:generate mockgen -source=partners.go -destination=mock_partners.go -package=partners

type Service interface {
	GetBalance(ctx context.Context, actor domain.Actor, partnerID string) (*partnerservice.Balance, error)
	DeleteAffiliate(ctx context.Context, actor domain.Actor, partnerID string) (*domain.DeletionReport, error)
}

type PartnerHandler struct {
	partnerService Service
}

func New(partnerService Service) *PartnerHandler {
	return &PartnerHandler{partnerService: partnerService}
}

// GetBalance godoc
//
//	@Summary	Get a partner's balance
//	@Tags		Partners
//	@Security	BearerAuth
//	@Produce	json
//	@Param		partnerID	path		string	true	"Partner id"
//	@Success	200			{object}	partnerservice.Balance
//	@Failure	403			{object}	utils.Response
//	@Failure	404			{object}	utils.Response
//	@Router		/api/partners/{partnerID}/balance [get]
func (h *PartnerHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	actor, _ := auth.ActorFromContext(r.Context())
	balance, err := h.partnerService.GetBalance(r.Context(), actor, chi.URLParam(r, "partnerID"))
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, balance)
}

// DeleteAffiliate godoc
//
//	@Summary		Delete a partner and everything that references it
//	@Description	Returns how many rows of each kind were removed.
//	@Tags			Partners
//	@Security		BearerAuth
//	@Produce		json
//	@Param			partnerID	path		string	true	"Partner id"
//	@Success		200			{object}	domain.DeletionReport
//	@Failure		404			{object}	utils.Response
//	@Router			/api/admin/partners/{partnerID} [delete]
func (h *PartnerHandler) DeleteAffiliate(w http.ResponseWriter, r *http.Request) {
	actor, _ := auth.ActorFromContext(r.Context())
	report, err := h.partnerService.DeleteAffiliate(r.Context(), actor, chi.URLParam(r, "partnerID"))
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, report)
}
