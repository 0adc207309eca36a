package dto

import (
	"time"

	"github.com/GlebRadaev/affiliate/internal/domain"
)

type PayoutRequestDTO struct {
	PaymentMethod string `json:"payment_method" example:"paypal"`
}

type RejectPayoutRequestDTO struct {
	Reason string `json:"reason" example:"payout account not verified"`
}

type ManualPayoutRequestDTO struct {
	PartnerID     string   `json:"partner_id" example:"aff_1"`
	Amount        int64    `json:"amount" example:"5000"`
	CommissionIDs []string `json:"commission_ids,omitempty"`
	PaymentMethod string   `json:"payment_method,omitempty" example:"wire"`
	Notes         string   `json:"notes,omitempty" example:"wire ref 8812"`
}

type PayoutResponseDTO struct {
	ID              string     `json:"id"`
	PartnerID       string     `json:"partner_id" example:"aff_1"`
	Amount          int64      `json:"amount" example:"5000"`
	Status          string     `json:"status" example:"pending"`
	PaymentMethod   string     `json:"payment_method" example:"paypal"`
	Notes           string     `json:"notes,omitempty"`
	RejectionReason string     `json:"rejection_reason,omitempty"`
	ProcessedBy     string     `json:"processed_by,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	ApprovedAt      *time.Time `json:"approved_at,omitempty"`
	RejectedAt      *time.Time `json:"rejected_at,omitempty"`
	PaidAt          *time.Time `json:"paid_at,omitempty"`
}

func NewPayoutResponse(p domain.Payout) PayoutResponseDTO {
	return PayoutResponseDTO{
		ID:              p.ID,
		PartnerID:       p.PartnerID,
		Amount:          p.Amount,
		Status:          string(p.Status),
		PaymentMethod:   p.PaymentMethod,
		Notes:           deref(p.Notes),
		RejectionReason: deref(p.RejectionReason),
		ProcessedBy:     deref(p.ProcessedBy),
		CreatedAt:       p.CreatedAt,
		ApprovedAt:      p.ApprovedAt,
		RejectedAt:      p.RejectedAt,
		PaidAt:          p.PaidAt,
	}
}

type SettlementResponseDTO struct {
	Payout      PayoutResponseDTO `json:"payout"`
	Commissions []string          `json:"commissions"`
}
