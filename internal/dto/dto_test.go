package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/affiliate/internal/domain"
)

func TestNewCommissionResponse(t *testing.T) {
	reason := domain.FlagSelfReferral
	details := "buyer email matches partner owner"
	created := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)

	got := NewCommissionResponse(domain.Commission{
		ID: "c1", PartnerID: "aff-1", OrderID: "o1", CommissionAmount: 1000,
		Status: domain.CommissionFlagged, FlagReason: &reason, FlagDetails: &details, CreatedAt: created,
	})

	assert.Equal(t, "flagged", got.Status)
	assert.Equal(t, "self_referral", got.FlagReason)
	assert.Equal(t, details, got.FlagDetails)
	assert.Empty(t, got.ReviewedBy)
}

func TestNewPayoutResponse(t *testing.T) {
	by := "admin-1"
	got := NewPayoutResponse(domain.Payout{ID: "p1", Amount: 5000, Status: domain.PayoutPaid, ProcessedBy: &by})

	assert.Equal(t, "paid", got.Status)
	assert.Equal(t, "admin-1", got.ProcessedBy)
	assert.Empty(t, got.Notes)
}
