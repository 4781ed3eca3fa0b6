package clearing

import (
	"math"

	"github.com/warehouse-exchange/wex/pkg/config"
)

// centsEpsilon absorbs binary float noise so a rate that lands exactly on a
// cent (5.00 x 1.272 = 6.36) is not pushed up an extra cent by Ceil.
const centsEpsilon = 1e-9

// Pricer derives the buyer-facing rate from a supplier rate. The buyer pays
// the supplier rate plus the exchange margin plus the guarantee fee, rounded
// up to the cent.
type Pricer struct {
	marginPct    float64
	guaranteePct float64
}

// NewPricer builds a Pricer from pricing configuration.
func NewPricer(cfg *config.PricingConfig) *Pricer {
	return &Pricer{
		marginPct:    cfg.MarginPct,
		guaranteePct: cfg.GuaranteePct,
	}
}

// BuyerRate converts a supplier rate per sqft to the buyer rate per sqft:
// supplier x (1+margin) x (1+guarantee), rounded up to the cent.
func (p *Pricer) BuyerRate(supplierRate float64) float64 {
	raw := supplierRate * (1 + p.marginPct) * (1 + p.guaranteePct)
	return math.Ceil(raw*100-centsEpsilon) / 100
}

// MonthlyTotals returns the monthly buyer total and supplier payout for a
// given square footage, each rounded to the cent (buyer up, supplier down —
// fractions of a cent are never owed to either side).
func (p *Pricer) MonthlyTotals(supplierRate float64, sqft int) (buyerTotal, supplierPayout float64) {
	buyerTotal = math.Ceil(p.BuyerRate(supplierRate)*float64(sqft)*100-centsEpsilon) / 100
	supplierPayout = math.Floor(supplierRate*float64(sqft)*100+centsEpsilon) / 100
	return buyerTotal, supplierPayout
}
