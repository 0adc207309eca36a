package repo

import (
	"github.com/GlebRadaev/affiliate/internal/audit"
	"github.com/GlebRadaev/affiliate/internal/ledger"
	"github.com/GlebRadaev/affiliate/internal/pg"
	auditrepo "github.com/GlebRadaev/affiliate/internal/repo/audit-repo"
	commissionrepo "github.com/GlebRadaev/affiliate/internal/repo/commission-repo"
	eventrepo "github.com/GlebRadaev/affiliate/internal/repo/event-repo"
	partnerrepo "github.com/GlebRadaev/affiliate/internal/repo/partner-repo"
	payoutrepo "github.com/GlebRadaev/affiliate/internal/repo/payout-repo"
	storefrontrepo "github.com/GlebRadaev/affiliate/internal/repo/storefront-repo"
	"github.com/GlebRadaev/affiliate/internal/service/eventservice"
	"github.com/GlebRadaev/affiliate/internal/service/payoutservice"
	"github.com/GlebRadaev/affiliate/internal/storefront"
)

type Storefront interface {
	storefront.OrderLookup
	storefront.ProductLookup
	storefront.CustomerLookup
	storefront.CouponLookup
	storefront.SettingsLookup
}

type Repositories struct {
	PartnerRepo    ledger.PartnerRepo
	CommissionRepo ledger.CommissionRepo
	PayoutRepo     payoutservice.PayoutRepo
	EventRepo      eventservice.EventRepo
	AuditRepo      audit.Repo
	Storefront     Storefront
	TxManager      pg.TXManager
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		PartnerRepo:    partnerrepo.New(conn, txManager),
		CommissionRepo: commissionrepo.New(conn, txManager),
		PayoutRepo:     payoutrepo.New(conn, txManager),
		EventRepo:      eventrepo.New(conn),
		AuditRepo:      auditrepo.New(conn),
		Storefront:     storefrontrepo.New(conn),
		TxManager:      txManager,
	}
}
