// Package clearing implements the matching core: the deterministic MCDA
// scorer over six weighted dimensions, the LLM feature-alignment pass, Tier-2
// candidate handling, and demand-led activation outreach.
package clearing

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/warehouse-exchange/wex/ent"
	"github.com/warehouse-exchange/wex/ent/truthcore"
	"github.com/warehouse-exchange/wex/ent/warehouse"
	"github.com/warehouse-exchange/wex/pkg/config"
	"github.com/warehouse-exchange/wex/pkg/database"
	"github.com/warehouse-exchange/wex/pkg/geo"
	"github.com/warehouse-exchange/wex/pkg/llm"
)

// Tier2Candidate is an off-network candidate disclosed to the buyer only by
// neighborhood and approximate size. Never persisted as a Match.
type Tier2Candidate struct {
	WarehouseID string  `json:"warehouse_id"`
	City        string  `json:"city"`
	State       string  `json:"state"`
	ApproxSqft  int     `json:"approx_sqft"`
	Score       float64 `json:"score"`
}

// ClearResult is the outcome of one clearing run.
type ClearResult struct {
	Tier1        []*ent.Match
	Tier2        []Tier2Candidate
	DLATriggered bool
}

// Engine runs the four-phase clearing pipeline: load and pre-filter,
// deterministic MCDA scoring, LLM feature alignment, persist and price.
type Engine struct {
	client *ent.Client
	cfg    *config.ClearingConfig
	dlaCfg *config.DLAConfig
	matrix *UseTypeMatrix
	pricer *Pricer
	llm    llm.Client
	now    func() time.Time
}

// NewEngine assembles a clearing engine. llmClient may be nil, in which case
// the feature pass is skipped and the neutral placeholder stands.
func NewEngine(client *ent.Client, cfg *config.Config, llmClient llm.Client) *Engine {
	return &Engine{
		client: client,
		cfg:    cfg.Clearing,
		dlaCfg: cfg.DLA,
		matrix: NewUseTypeMatrix(cfg.UseTypes),
		pricer: NewPricer(cfg.Pricing),
		llm:    llmClient,
		now:    time.Now,
	}
}

// candidate is one warehouse moving through the pipeline.
type candidate struct {
	wh   *ent.Warehouse
	core *ent.TruthCore

	dist *float64
	knn  bool

	scores       DimensionScores
	composite    float64
	callouts     []string
	buyerRate    float64
	withinBudget bool

	reasoning           string
	instantBookEligible bool
}

// Clear runs the pipeline for one buyer need. Database errors abort the whole
// run with nothing persisted; LLM failures degrade to the neutral feature
// score; an empty Tier 1 is a valid success result.
func (e *Engine) Clear(ctx context.Context, buyerNeedID string) (*ClearResult, error) {
	need, err := e.client.BuyerNeed.Get(ctx, buyerNeedID)
	if err != nil {
		return nil, fmt.Errorf("failed to load buyer need: %w", err)
	}

	log := slog.With("buyer_need_id", need.ID, "city", need.City, "state", need.State)

	tier1Pool, tier2Pool, err := e.loadSupply(ctx)
	if err != nil {
		return nil, err
	}

	tier1 := e.prefilter(need, tier1Pool, false)
	if len(tier1) == 0 && need.Lat != nil && need.Lng != nil {
		tier1 = e.knnFallback(need, tier1Pool)
		if len(tier1) > 0 {
			log.Info("Strict pre-filter empty, KNN fallback engaged", "candidates", len(tier1))
		}
	}
	tier2 := e.prefilter(need, tier2Pool, true)

	for _, c := range tier1 {
		e.scoreCandidate(need, c)
	}
	for _, c := range tier2 {
		e.scoreCandidate(need, c)
	}
	sortByComposite(tier1)
	sortByComposite(tier2)

	// LLM feature alignment over the deterministic top slice, then re-rank.
	llmSlice := tier1
	if len(llmSlice) > e.cfg.LLMCandidates {
		llmSlice = llmSlice[:e.cfg.LLMCandidates]
	}
	e.featurePass(ctx, need, llmSlice)
	sortByComposite(llmSlice)

	top := llmSlice
	if len(top) > e.cfg.MaxTier1 {
		top = top[:e.cfg.MaxTier1]
	}

	result := &ClearResult{}
	err = database.WithTx(ctx, e.client, func(tx *ent.Tx) error {
		matches, err := e.persistMatches(ctx, tx, need, top)
		if err != nil {
			return err
		}
		result.Tier1 = matches

		if len(matches) < e.cfg.MaxTier1 {
			triggered, err := e.triggerOutreach(ctx, tx, need, tier2)
			if err != nil {
				return err
			}
			result.DLATriggered = triggered
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, c := range tier2 {
		if len(result.Tier2) >= e.cfg.MaxTier2 {
			break
		}
		result.Tier2 = append(result.Tier2, Tier2Candidate{
			WarehouseID: c.wh.ID,
			City:        c.wh.City,
			State:       c.wh.State,
			ApproxSqft:  approxSqft(c),
			Score:       c.composite,
		})
	}

	log.Info("Clearing complete",
		"tier1", len(result.Tier1),
		"tier2", len(result.Tier2),
		"dla_triggered", result.DLATriggered)

	return result, nil
}

// loadSupply fetches all warehouses relevant to either tier, truth cores
// attached. Tier 1 requires in_network plus an activated TruthCore; Tier 2 is
// the off-network pool eligible for outreach.
func (e *Engine) loadSupply(ctx context.Context) (tier1, tier2 []*candidate, err error) {
	whs, err := e.client.Warehouse.Query().
		Where(warehouse.SupplierStatusIn(
			warehouse.SupplierStatusInNetwork,
			warehouse.SupplierStatusThirdParty,
			warehouse.SupplierStatusEarncheckOnly,
			warehouse.SupplierStatusInterested,
		)).
		WithTruthCore().
		All(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load supply: %w", err)
	}

	for _, wh := range whs {
		core := wh.Edges.TruthCore
		if wh.SupplierStatus == warehouse.SupplierStatusInNetwork {
			if core == nil || core.ActivationStatus != truthcore.ActivationStatusOn {
				continue
			}
			tier1 = append(tier1, &candidate{wh: wh, core: core})
			continue
		}
		tier2 = append(tier2, &candidate{wh: wh, core: core})
	}
	return tier1, tier2, nil
}

// prefilter applies the geo gate and the requirements gate. Tier-2 candidates
// without a TruthCore fall back to building-level size data.
func (e *Engine) prefilter(need *ent.BuyerNeed, pool []*candidate, tier2 bool) []*candidate {
	var out []*candidate
	for _, c := range pool {
		dist, ok := e.geoGate(need, c.wh)
		if !ok {
			continue
		}
		if !e.requirementsGate(need, c, tier2) {
			continue
		}
		c.dist = dist
		out = append(out, c)
	}
	return out
}

// geoGate checks proximity. With coordinates on both sides the candidate must
// be within min(buyer radius, cap); otherwise exact state match; with neither
// signal the candidate is rejected.
func (e *Engine) geoGate(need *ent.BuyerNeed, wh *ent.Warehouse) (*float64, bool) {
	if need.Lat != nil && need.Lng != nil && wh.Lat != nil && wh.Lng != nil {
		d := geo.Miles(*need.Lat, *need.Lng, *wh.Lat, *wh.Lng)
		limit := math.Min(need.RadiusMiles, e.cfg.GeoGateCapMiles)
		return &d, d <= limit
	}
	if need.State != "" && wh.State != "" {
		return nil, strings.EqualFold(need.State, wh.State)
	}
	return nil, false
}

// requirementsGate checks size overlap and use-type compatibility.
func (e *Engine) requirementsGate(need *ent.BuyerNeed, c *candidate, tier2 bool) bool {
	minSqft, maxSqft, tier, hasOffice, ok := listingParams(c, tier2)
	if !ok {
		return false
	}
	if need.MinSqft > maxSqft || need.MaxSqft < minSqft {
		return false
	}
	score, _ := e.matrix.Score(tier, need.UseType, hasOffice)
	return score > 0
}

// listingParams resolves the size range and activity tier for gating. Tier-2
// buildings often have no TruthCore yet; their gross building size and a
// plain-storage assumption stand in until activation fills the real numbers.
func listingParams(c *candidate, tier2 bool) (minSqft, maxSqft int, tier string, hasOffice bool, ok bool) {
	if c.core != nil {
		return c.core.MinSqft, c.core.MaxSqft, string(c.core.ActivityTier), c.core.HasOfficeSpace, true
	}
	if !tier2 || c.wh.BuildingSqft <= 0 {
		return 0, 0, "", false, false
	}
	return 0, c.wh.BuildingSqft, "storage_only", false, true
}

// knnFallback relaxes the radius when the strict filter found nothing: the
// nearest candidates passing the requirements gate within the fallback
// radius, best-first, capped at the configured limit.
func (e *Engine) knnFallback(need *ent.BuyerNeed, pool []*candidate) []*candidate {
	var out []*candidate
	for _, c := range pool {
		if c.wh.Lat == nil || c.wh.Lng == nil {
			continue
		}
		d := geo.Miles(*need.Lat, *need.Lng, *c.wh.Lat, *c.wh.Lng)
		if d > e.cfg.KNNRadiusMiles {
			continue
		}
		if !e.requirementsGate(need, c, false) {
			continue
		}
		cc := c
		cc.dist = &d
		cc.knn = true
		out = append(out, cc)
	}
	sort.Slice(out, func(i, j int) bool { return *out[i].dist < *out[j].dist })
	if len(out) > e.cfg.KNNLimit {
		out = out[:e.cfg.KNNLimit]
	}
	return out
}

// scoreCandidate fills the six deterministic dimensions and the derived
// pricing. The feature dimension stays neutral until the LLM pass overrides
// it.
func (e *Engine) scoreCandidate(need *ent.BuyerNeed, c *candidate) {
	minSqft, maxSqft, tier, hasOffice, _ := listingParams(c, true)

	useType, callouts := e.matrix.Score(tier, need.UseType, hasOffice)

	var availableFrom *time.Time
	if c.core != nil {
		availableFrom = c.core.AvailableFrom
		c.buyerRate = e.pricer.BuyerRate(c.core.SupplierRatePerSqft)
	}

	budget := neutralScore
	c.withinBudget = true
	if c.buyerRate > 0 {
		budget, c.withinBudget = budgetScore(c.buyerRate, need.MaxBudgetPerSqft)
	}

	c.scores = DimensionScores{
		Location: locationScore(c.dist, need.RadiusMiles, c.knn, e.cfg.KNNRadiusMiles),
		Size:     sizeScore(need.MinSqft, need.MaxSqft, minSqft, maxSqft),
		UseType:  useType,
		Feature:  neutralScore,
		Timing:   timingScore(availableFrom, need.NeededFrom),
		Budget:   budget,
	}
	c.callouts = callouts
	c.composite = c.scores.Composite(e.cfg.Weights)
}

// persistMatches writes the ranked Tier-1 matches and their instant-book
// breakdowns in the surrounding transaction.
func (e *Engine) persistMatches(ctx context.Context, tx *ent.Tx, need *ent.BuyerNeed, top []*candidate) ([]*ent.Match, error) {
	matches := make([]*ent.Match, 0, len(top))
	for _, c := range top {
		create := tx.Match.Create().
			SetID(uuid.NewString()).
			SetBuyerNeedID(need.ID).
			SetWarehouseID(c.wh.ID).
			SetCompositeScore(c.composite).
			SetLocationScore(c.scores.Location).
			SetSizeScore(c.scores.Size).
			SetUseTypeScore(c.scores.UseType).
			SetFeatureScore(c.scores.Feature).
			SetTimingScore(c.scores.Timing).
			SetBudgetScore(c.scores.Budget).
			SetReasoning(c.reasoning).
			SetCallouts(c.callouts).
			SetInstantBookEligible(c.instantBookEligible).
			SetWithinBudget(c.withinBudget).
			SetBuyerRate(c.buyerRate)
		if c.dist != nil {
			create.SetDistanceMiles(*c.dist)
		}
		m, err := create.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to persist match: %w", err)
		}

		ib := e.instantBookBreakdown(ctx, need, c)
		_, err = tx.InstantBookScore.Create().
			SetID(uuid.NewString()).
			SetMatchID(m.ID).
			SetTruthCoreCompleteness(ib.TruthCoreCompleteness).
			SetContextualMemoryDepth(ib.ContextualMemoryDepth).
			SetSupplierTrustLevel(ib.SupplierTrustLevel).
			SetMatchSpecificity(ib.MatchSpecificity).
			SetFeatureAlignment(ib.FeatureAlignment).
			SetTotal(ib.Total).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to persist instant book score: %w", err)
		}
		matches = append(matches, m)
	}
	return matches, nil
}

func sortByComposite(cs []*candidate) {
	sort.SliceStable(cs, func(i, j int) bool { return cs[i].composite > cs[j].composite })
}

func approxSqft(c *candidate) int {
	if c.core != nil {
		return c.core.MaxSqft
	}
	return c.wh.BuildingSqft
}
