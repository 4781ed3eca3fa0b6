package clearing

import (
	"context"
	"math"

	"github.com/warehouse-exchange/wex/ent"
	"github.com/warehouse-exchange/wex/ent/contextualmemory"
)

// instantBookFactors is the five-factor breakdown persisted alongside every
// match. The factors explain the instant_book_eligible flag to an admin; the
// flag itself comes from the feature pass.
type instantBookFactors struct {
	TruthCoreCompleteness float64
	ContextualMemoryDepth float64
	SupplierTrustLevel    float64
	MatchSpecificity      float64
	FeatureAlignment      float64
	Total                 float64
}

// memoryDepthPerNote: five or more contextual notes max out the depth factor.
const memoryDepthPerNote = 20.0

// maxTrustLevel mirrors the TruthCore trust_level scale.
const maxTrustLevel = 5.0

// instantBookBreakdown computes the five factors for one scored candidate.
// Count queries run on the engine client (reads only); the row itself is
// written by the caller's transaction.
func (e *Engine) instantBookBreakdown(ctx context.Context, need *ent.BuyerNeed, c *candidate) instantBookFactors {
	memoryCount, err := e.client.ContextualMemory.Query().
		Where(contextualmemory.WarehouseIDEQ(c.wh.ID)).
		Count(ctx)
	if err != nil {
		memoryCount = 0
	}

	f := instantBookFactors{
		TruthCoreCompleteness: truthCoreCompleteness(c.core),
		ContextualMemoryDepth: math.Min(float64(memoryCount)*memoryDepthPerNote, 100),
		MatchSpecificity:      needSpecificity(need),
		FeatureAlignment:      c.scores.Feature,
	}
	if c.core != nil {
		f.SupplierTrustLevel = float64(c.core.TrustLevel) / maxTrustLevel * 100
	}
	f.Total = math.Round((f.TruthCoreCompleteness+f.ContextualMemoryDepth+f.SupplierTrustLevel+f.MatchSpecificity+f.FeatureAlignment)/5*10) / 10
	return f
}

// truthCoreCompleteness scores how much of the listing is actually filled in.
func truthCoreCompleteness(core *ent.TruthCore) float64 {
	if core == nil {
		return 0
	}
	filled, total := 0, 7
	if core.MinSqft > 0 && core.MaxSqft > 0 {
		filled++
	}
	if core.SupplierRatePerSqft > 0 {
		filled++
	}
	if core.AvailableFrom != nil {
		filled++
	}
	if core.DockDoors > 0 {
		filled++
	}
	if core.ClearHeightFt > 0 {
		filled++
	}
	if core.PowerService != "" {
		filled++
	}
	if core.HasOfficeSpace || core.HasSprinkler {
		filled++
	}
	return float64(filled) / float64(total) * 100
}

// needSpecificity scores how much the buyer actually told us: each optional
// signal beyond the core triple is worth a quarter of the scale.
func needSpecificity(need *ent.BuyerNeed) float64 {
	score := 0.0
	if need.MaxBudgetPerSqft != nil {
		score += 25
	}
	if need.NeededFrom != nil {
		score += 25
	}
	if need.DurationMonths > 0 {
		score += 25
	}
	if len(need.Requirements) > 0 {
		score += 25
	}
	return score
}
