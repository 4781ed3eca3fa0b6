package clearing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/warehouse-exchange/wex/pkg/config"
)

func TestPricer_BuyerRate(t *testing.T) {
	p := NewPricer(config.DefaultPricingConfig())

	tests := []struct {
		name         string
		supplierRate float64
		expected     float64
	}{
		{
			name:         "exact cent boundary is not pushed up",
			supplierRate: 5.00,
			expected:     6.36, // 5.00 * 1.20 * 1.06
		},
		{
			name:         "fractional cents round up",
			supplierRate: 1.00,
			expected:     1.28, // 1.272 rounds up
		},
		{
			name:         "typical market rate",
			supplierRate: 0.85,
			expected:     1.09, // 1.0812 rounds up
		},
		{
			name:         "zero rate stays zero",
			supplierRate: 0,
			expected:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.BuyerRate(tt.supplierRate)
			assert.InDelta(t, tt.expected, got, 1e-9)
			// Rounding never favors the buyer.
			assert.GreaterOrEqual(t, got, tt.supplierRate*1.20*1.06-1e-9)
		})
	}
}

func TestPricer_MonthlyTotals(t *testing.T) {
	p := NewPricer(config.DefaultPricingConfig())

	buyer, supplier := p.MonthlyTotals(1.00, 5000)
	assert.InDelta(t, 6400.00, buyer, 1e-9) // 1.28 * 5000
	assert.InDelta(t, 5000.00, supplier, 1e-9)

	// Buyer total always covers the supplier payout plus the spread.
	assert.Greater(t, buyer, supplier)
}

func TestPricer_CustomPercentages(t *testing.T) {
	p := NewPricer(&config.PricingConfig{MarginPct: 0.10, GuaranteePct: 0})
	assert.InDelta(t, 1.10, p.BuyerRate(1.00), 1e-9)
}
