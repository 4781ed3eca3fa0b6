package clearing

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/warehouse-exchange/wex/ent"
	"github.com/warehouse-exchange/wex/ent/contextualmemory"
	"github.com/warehouse-exchange/wex/pkg/llm"
)

// featureResult is the strict JSON contract of the feature-alignment scorer.
type featureResult struct {
	FeatureScore        int    `json:"feature_score"`
	Reasoning           string `json:"reasoning"`
	InstantBookEligible bool   `json:"instant_book_eligible"`
}

const featureSystemPrompt = `You score how well a warehouse's physical features serve a specific tenant requirement.
Respond with exactly one JSON object:
{"feature_score": <integer 0-100>, "reasoning": "<one or two sentences>", "instant_book_eligible": <true|false>}
feature_score rates feature fit only: docks, clear height, office, sprinkler, power, and anything the notes reveal. Do not re-score location, size, price, or timing.
instant_book_eligible is true only when the listing data is complete and consistent enough to commit without a tour.`

// featurePass runs the LLM feature-alignment step over the candidate slice,
// in parallel with a bounded worker count and one deadline for the whole
// pass. Any per-candidate failure leaves that candidate's neutral placeholder
// and empty reasoning in place; matching always proceeds.
func (e *Engine) featurePass(ctx context.Context, need *ent.BuyerNeed, cands []*candidate) {
	if e.llm == nil || len(cands) == 0 {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, e.cfg.FeaturePassTimeout)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.cfg.FeaturePassConcurrency)

	for _, c := range cands {
		c := c
		g.Go(func() error {
			e.scoreFeatures(gctx, need, c)
			return nil
		})
	}
	_ = g.Wait()

	// Recompute composites with whatever feature scores landed.
	for _, c := range cands {
		c.composite = c.scores.Composite(e.cfg.Weights)
	}
}

// scoreFeatures asks the LLM for one candidate's feature alignment. Failure
// is absorbed: the placeholder stands.
func (e *Engine) scoreFeatures(ctx context.Context, need *ent.BuyerNeed, c *candidate) {
	memories, err := e.client.ContextualMemory.Query().
		Where(contextualmemory.WarehouseIDEQ(c.wh.ID)).
		Order(ent.Desc(contextualmemory.FieldCreatedAt)).
		Limit(10).
		All(ctx)
	if err != nil {
		slog.Warn("Feature pass: failed to load memories, scoring without them",
			"warehouse_id", c.wh.ID, "error", err)
		memories = nil
	}

	raw, err := e.llm.Complete(ctx, llm.Request{
		System: featureSystemPrompt,
		Prompt: featurePrompt(need, c, memories),
	})
	if err != nil {
		slog.Warn("Feature pass degraded to neutral score",
			"warehouse_id", c.wh.ID, "error", err)
		return
	}

	result, err := llm.DecodeJSON[featureResult](raw)
	if err != nil {
		slog.Warn("Feature pass returned unparseable JSON, using neutral score",
			"warehouse_id", c.wh.ID, "error", err)
		return
	}

	c.scores.Feature = clampScore(float64(result.FeatureScore))
	c.reasoning = strings.TrimSpace(result.Reasoning)
	c.instantBookEligible = result.InstantBookEligible
}

// featurePrompt bundles the truth core, contextual notes, and the buyer's
// requirement into the scoring prompt.
func featurePrompt(need *ent.BuyerNeed, c *candidate, memories []*ent.ContextualMemory) string {
	var b strings.Builder

	b.WriteString("WAREHOUSE\n")
	fmt.Fprintf(&b, "City: %s, %s\n", c.wh.City, c.wh.State)
	if c.core != nil {
		fmt.Fprintf(&b, "Rentable: %d-%d sqft\n", c.core.MinSqft, c.core.MaxSqft)
		fmt.Fprintf(&b, "Activity tier: %s\n", c.core.ActivityTier)
		fmt.Fprintf(&b, "Dock doors: %d\n", c.core.DockDoors)
		if c.core.ClearHeightFt > 0 {
			fmt.Fprintf(&b, "Clear height: %.0f ft\n", c.core.ClearHeightFt)
		}
		fmt.Fprintf(&b, "Office space: %t\n", c.core.HasOfficeSpace)
		fmt.Fprintf(&b, "Sprinkler: %t\n", c.core.HasSprinkler)
		if c.core.PowerService != "" {
			fmt.Fprintf(&b, "Power: %s\n", c.core.PowerService)
		}
	}

	if len(memories) > 0 {
		b.WriteString("\nNOTES\n")
		for _, m := range memories {
			fmt.Fprintf(&b, "- [%s] %s\n", m.Category, m.Content)
		}
	}

	b.WriteString("\nTENANT REQUIREMENT\n")
	fmt.Fprintf(&b, "Use type: %s\n", need.UseType)
	fmt.Fprintf(&b, "Size: %d-%d sqft\n", need.MinSqft, need.MaxSqft)
	if len(need.Requirements) > 0 {
		if data, err := json.Marshal(need.Requirements); err == nil {
			fmt.Fprintf(&b, "Stated requirements: %s\n", data)
		}
	}

	return b.String()
}
