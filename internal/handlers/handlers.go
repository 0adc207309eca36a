package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/affiliate/docs"
	commissionhandlers "github.com/GlebRadaev/affiliate/internal/handlers/commissions"
	partnerhandlers "github.com/GlebRadaev/affiliate/internal/handlers/partners"
	payouthandlers "github.com/GlebRadaev/affiliate/internal/handlers/payouts"
	webhookhandlers "github.com/GlebRadaev/affiliate/internal/handlers/webhooks"
	"github.com/GlebRadaev/affiliate/internal/service"
	"github.com/GlebRadaev/affiliate/pkg/auth"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

type CommissionHandler interface {
	Record(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Void(w http.ResponseWriter, r *http.Request)
	ReviewApprove(w http.ResponseWriter, r *http.Request)
	ReviewVoid(w http.ResponseWriter, r *http.Request)
	BulkApprove(w http.ResponseWriter, r *http.Request)
	AutoApprove(w http.ResponseWriter, r *http.Request)
	ListByPartner(w http.ResponseWriter, r *http.Request)
	ListFlagged(w http.ResponseWriter, r *http.Request)
	Leaderboard(w http.ResponseWriter, r *http.Request)
}

type PayoutHandler interface {
	RequestPayout(w http.ResponseWriter, r *http.Request)
	ListByPartner(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	Process(w http.ResponseWriter, r *http.Request)
	RecordManual(w http.ResponseWriter, r *http.Request)
	RunBatch(w http.ResponseWriter, r *http.Request)
}

type PartnerHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	DeleteAffiliate(w http.ResponseWriter, r *http.Request)
}

type WebhookHandler interface {
	PaymentEvent(w http.ResponseWriter, r *http.Request)
}

type Authenticator interface {
	AuthMiddleware(next http.Handler) http.Handler
}

type Handlers struct {
	CommissionHandler CommissionHandler
	PayoutHandler     PayoutHandler
	PartnerHandler    PartnerHandler
	WebhookHandler    WebhookHandler
	Auth              Authenticator
}

func New(s *service.Services, authenticator Authenticator, webhookSecret string) *Handlers {
	return &Handlers{
		CommissionHandler: commissionhandlers.New(s.CommissionService),
		PayoutHandler:     payouthandlers.New(s.PayoutService),
		PartnerHandler:    partnerhandlers.New(s.PartnerService),
		WebhookHandler:    webhookhandlers.New(s.EventService, webhookSecret),
		Auth:              authenticator,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))

	r.Route("/api", func(r chi.Router) {
		r.Post("/webhooks/payments", h.WebhookHandler.PaymentEvent)

		r.Group(func(r chi.Router) {
			r.Use(h.Auth.AuthMiddleware)

			r.Get("/leaderboard", h.CommissionHandler.Leaderboard)
			r.Route("/partners/{partnerID}", func(r chi.Router) {
				r.Get("/balance", h.PartnerHandler.GetBalance)
				r.Get("/commissions", h.CommissionHandler.ListByPartner)
				r.Get("/payouts", h.PayoutHandler.ListByPartner)
				r.Post("/payouts", h.PayoutHandler.RequestPayout)
			})

			r.Route("/admin", func(r chi.Router) {
				r.Use(auth.AdminOnly)

				r.Route("/commissions", func(r chi.Router) {
					r.Post("/record", h.CommissionHandler.Record)
					r.Post("/bulk-approve", h.CommissionHandler.BulkApprove)
					r.Post("/auto-approve", h.CommissionHandler.AutoApprove)
					r.Get("/flagged", h.CommissionHandler.ListFlagged)
					r.Post("/{id}/approve", h.CommissionHandler.Approve)
					r.Post("/{id}/void", h.CommissionHandler.Void)
					r.Post("/{id}/review/approve", h.CommissionHandler.ReviewApprove)
					r.Post("/{id}/review/void", h.CommissionHandler.ReviewVoid)
				})
				r.Route("/payouts", func(r chi.Router) {
					r.Post("/manual", h.PayoutHandler.RecordManual)
					r.Post("/batch", h.PayoutHandler.RunBatch)
					r.Post("/{id}/approve", h.PayoutHandler.Approve)
					r.Post("/{id}/reject", h.PayoutHandler.Reject)
					r.Post("/{id}/process", h.PayoutHandler.Process)
				})
				r.Delete("/partners/{partnerID}", h.PartnerHandler.DeleteAffiliate)
			})
		})
	})

	return r
}
