package clearing

import (
	"math"
	"time"

	"github.com/warehouse-exchange/wex/pkg/config"
)

// neutralScore is used when a dimension has no signal: missing coordinates,
// no stated budget, or a feature pass that has not run (or failed).
const neutralScore = 50.0

// Size scoring constants. The ratio of best-achievable fit to the buyer's
// target is penalized per unit of deviation outside the comfortable band;
// undersizing hurts harder because the buyer physically cannot fit.
const (
	sizeBandLow          = 0.8
	sizeBandHigh         = 1.2
	undersizePenaltyRate = 250.0
	oversizePenaltyRate  = 100.0
)

// Timing: each day late costs half a point, so availability 200 days past
// the need date scores zero.
const (
	timingPenaltyPerDay = 0.5
	timingMaxLateDays   = 200.0
)

// Budget: each percent over budget costs 3.33 points (30% over scores zero).
const budgetPenaltyPerPct = 3.33

// DimensionScores is the six-axis MCDA breakdown for one candidate, each in
// [0,100].
type DimensionScores struct {
	Location float64
	Size     float64
	UseType  float64
	Feature  float64
	Timing   float64
	Budget   float64
}

// Composite returns the weighted sum rounded to one decimal.
func (d DimensionScores) Composite(w config.DimensionWeights) float64 {
	sum := w.Location*d.Location +
		w.Size*d.Size +
		w.UseType*d.UseType +
		w.Feature*d.Feature +
		w.Timing*d.Timing +
		w.Budget*d.Budget
	return math.Round(sum*10) / 10
}

// locationScore converts distance to a score. Inside the buyer's radius the
// score decays linearly from 100 at the door to 0 at the radius edge; on the
// KNN fallback branch the decay runs over the fallback radius instead. A nil
// distance means coordinates were missing on one side, which is neutral.
func locationScore(distanceMiles *float64, radiusMiles float64, knn bool, knnRadiusMiles float64) float64 {
	if distanceMiles == nil {
		return neutralScore
	}
	d := *distanceMiles
	if knn {
		return clampScore(100 * (1 - d/knnRadiusMiles))
	}
	if radiusMiles <= 0 {
		return neutralScore
	}
	return clampScore(100 * (1 - d/radiusMiles))
}

// sizeScore rates how well the warehouse's rentable range can serve the
// buyer's target footage (the midpoint of the requested range).
func sizeScore(buyerMin, buyerMax, whMin, whMax int) float64 {
	target := float64(buyerMin+buyerMax) / 2
	if target <= 0 {
		return neutralScore
	}

	bestFit := math.Max(float64(whMin), math.Min(target, float64(whMax)))
	ratio := bestFit / target

	switch {
	case ratio >= sizeBandLow && ratio <= sizeBandHigh:
		return 100
	case ratio < sizeBandLow:
		return clampScore(100 - (sizeBandLow-ratio)*undersizePenaltyRate)
	default:
		return clampScore(100 - (ratio-sizeBandHigh)*oversizePenaltyRate)
	}
}

// timingScore rates availability against the buyer's move-in date. An
// unstated date on either side imposes no constraint.
func timingScore(availableFrom, neededFrom *time.Time) float64 {
	if availableFrom == nil || neededFrom == nil {
		return 100
	}
	if !availableFrom.After(*neededFrom) {
		return 100
	}
	daysLate := availableFrom.Sub(*neededFrom).Hours() / 24
	if daysLate >= timingMaxLateDays {
		return 0
	}
	return clampScore(100 - daysLate*timingPenaltyPerDay)
}

// budgetScore rates the derived buyer rate against the buyer's ceiling. The
// second return reports whether the candidate fits the budget at all; a
// buyer with no stated budget is neutral and considered within budget.
func budgetScore(buyerRate float64, maxBudget *float64) (float64, bool) {
	if maxBudget == nil || *maxBudget <= 0 {
		return neutralScore, true
	}
	if buyerRate <= *maxBudget {
		return 100, true
	}
	percentOver := (buyerRate/(*maxBudget) - 1) * 100
	return clampScore(100 - percentOver*budgetPenaltyPerPct), false
}

func clampScore(s float64) float64 {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}
