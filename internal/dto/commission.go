package dto

import (
	"time"

	"github.com/GlebRadaev/affiliate/internal/domain"
)

type RecordCommissionRequestDTO struct {
	OrderID         string `json:"order_id" example:"ord_1042"`
	AttributionType string `json:"attribution_type,omitempty" example:"coupon"`
	FriendsFamily   bool   `json:"friends_family,omitempty"`
}

type ReviewRequestDTO struct {
	Notes  string `json:"notes,omitempty" example:"customer verified by support"`
	Reason string `json:"reason,omitempty" example:"refunded"`
}

type BulkApproveRequestDTO struct {
	IDs []string `json:"ids"`
}

type CommissionResponseDTO struct {
	ID               string     `json:"id" example:"5f0c..."`
	PartnerID        string     `json:"partner_id" example:"aff_1"`
	OrderID          string     `json:"order_id" example:"ord_1042"`
	OrderAmount      int64      `json:"order_amount" example:"10000"`
	CommissionRate   int64      `json:"commission_rate" example:"10"`
	CommissionAmount int64      `json:"commission_amount" example:"1000"`
	Status           string     `json:"status" example:"pending"`
	AttributionType  string     `json:"attribution_type" example:"direct"`
	FlagReason       string     `json:"flag_reason,omitempty" example:"self_referral"`
	FlagDetails      string     `json:"flag_details,omitempty"`
	ReviewedBy       string     `json:"reviewed_by,omitempty"`
	ReviewNotes      string     `json:"review_notes,omitempty"`
	VoidReason       string     `json:"void_reason,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	ApprovedAt       *time.Time `json:"approved_at,omitempty"`
	FlaggedAt        *time.Time `json:"flagged_at,omitempty"`
	PaidAt           *time.Time `json:"paid_at,omitempty"`
}

func deref[T ~string](p *T) string {
	if p == nil {
		return ""
	}
	return string(*p)
}

func NewCommissionResponse(c domain.Commission) CommissionResponseDTO {
	return CommissionResponseDTO{
		ID:               c.ID,
		PartnerID:        c.PartnerID,
		OrderID:          c.OrderID,
		OrderAmount:      c.OrderAmount,
		CommissionRate:   c.CommissionRate,
		CommissionAmount: c.CommissionAmount,
		Status:           string(c.Status),
		AttributionType:  string(c.AttributionType),
		FlagReason:       deref(c.FlagReason),
		FlagDetails:      deref(c.FlagDetails),
		ReviewedBy:       deref(c.ReviewedBy),
		ReviewNotes:      deref(c.ReviewNotes),
		VoidReason:       deref(c.VoidReason),
		CreatedAt:        c.CreatedAt,
		ApprovedAt:       c.ApprovedAt,
		FlaggedAt:        c.FlaggedAt,
		PaidAt:           c.PaidAt,
	}
}

func NewCommissionList(cs []domain.Commission) []CommissionResponseDTO {
	out := make([]CommissionResponseDTO, len(cs))
	for i, c := range cs {
		out[i] = NewCommissionResponse(c)
	}
	return out
}

type LeaderboardEntryDTO struct {
	PartnerID      string `json:"partner_id" example:"aff_1"`
	ReferralCode   string `json:"referral_code" example:"ALICE10"`
	TotalEarnings  int64  `json:"total_earnings" example:"125000"`
	TotalReferrals int    `json:"total_referrals" example:"48"`
	TotalSales     int64  `json:"total_sales" example:"1250000"`
}

func NewLeaderboard(ps []domain.Partner) []LeaderboardEntryDTO {
	out := make([]LeaderboardEntryDTO, len(ps))
	for i, p := range ps {
		out[i] = LeaderboardEntryDTO{
			PartnerID:      p.ID,
			ReferralCode:   p.ReferralCode,
			TotalEarnings:  p.TotalEarnings,
			TotalReferrals: p.TotalReferrals,
			TotalSales:     p.TotalSales,
		}
	}
	return out
}
