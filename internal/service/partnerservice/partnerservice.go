package partnerservice

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/GlebRadaev/affiliate/internal/audit"
	"github.com/GlebRadaev/affiliate/internal/domain"
	"github.com/GlebRadaev/affiliate/internal/ledger"
	"github.com/GlebRadaev/affiliate/internal/pg"
	"github.com/GlebRadaev/affiliate/internal/storefront"
)

//go:generate mockgen -source=partnerservice.go -destination=mock_partnerservice.go -package=partnerservice

type Auditor interface {
	Record(ctx context.Context, actor domain.Actor, action, entityType, entityID string, metadata map[string]any)
}

type Balance struct {
	PartnerID      string `json:"partner_id"`
	TotalEarnings  int64  `json:"total_earnings"`
	PendingBalance int64  `json:"pending_balance"`
	Approved       int64  `json:"approved_balance"`
	PaidBalance    int64  `json:"paid_balance"`
	TotalReferrals int    `json:"total_referrals"`
	TotalSales     int64  `json:"total_sales"`
	MinimumPayout  int64  `json:"minimum_payout"`
}

type Service struct {
	partners  ledger.PartnerRepo
	settings  storefront.SettingsLookup
	txManager pg.TXManager
	audit     Auditor
}

func New(partners ledger.PartnerRepo, settings storefront.SettingsLookup, txManager pg.TXManager, auditor Auditor) *Service {
	return &Service{
		partners:  partners,
		settings:  settings,
		txManager: txManager,
		audit:     auditor,
	}
}

func (s *Service) GetBalance(ctx context.Context, actor domain.Actor, partnerID string) (*Balance, error) {
	if !actor.IsAdmin() && actor.PartnerID != partnerID {
		return nil, domain.ErrForbidden
	}
	partner, err := s.partners.GetByID(ctx, partnerID)
	if err != nil {
		return nil, err
	}
	if partner == nil {
		return nil, fmt.Errorf("%w: partner %s", domain.ErrNotFound, partnerID)
	}
	settings, err := s.settings.GetProgramSettings(ctx)
	if err != nil {
		return nil, err
	}
	return &Balance{
		PartnerID:      partner.ID,
		TotalEarnings:  partner.TotalEarnings,
		PendingBalance: partner.PendingBalance,
		Approved:       partner.ApprovedBalance(),
		PaidBalance:    partner.PaidBalance,
		TotalReferrals: partner.TotalReferrals,
		TotalSales:     partner.TotalSales,
		MinimumPayout:  settings.MinimumPayout,
	}, nil
}

// DeleteAffiliate permanently removes a partner and everything attached to it. The audit entry
// is written on its own connection before the delete commits.
func (s *Service) DeleteAffiliate(ctx context.Context, actor domain.Actor, partnerID string) (*domain.DeletionReport, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	var report *domain.DeletionReport
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		partner, err := s.partners.GetByIDForUpdate(ctx, partnerID)
		if err != nil {
			return err
		}
		if partner == nil {
			return fmt.Errorf("%w: partner %s", domain.ErrNotFound, partnerID)
		}
		if report, err = s.partners.DeleteCascade(ctx, partnerID); err != nil {
			return err
		}
		s.audit.Record(pg.Detach(ctx), actor, audit.ActionAffiliateDeleted, audit.EntityPartner, partnerID, map[string]any{
			"referral_code":   partner.ReferralCode,
			"total_earnings":  partner.TotalEarnings,
			"paid_balance":    partner.PaidBalance,
			"payouts":         report.Payouts,
			"commissions":     report.Commissions,
			"clicks":          report.Clicks,
			"agreements":      report.Agreements,
			"payout_accounts": report.PayoutAccounts,
			"invite_usages":   report.InviteUsages,
		})
		return nil
	})
	if err != nil {
		zap.L().Error("affiliate delete failed", zap.String("partnerID", partnerID), zap.Error(err))
		return nil, err
	}
	zap.L().Warn("affiliate deleted", zap.String("partnerID", partnerID), zap.String("actorID", actor.ID))
	return report, nil
}
