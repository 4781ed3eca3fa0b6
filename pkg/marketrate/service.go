// Package marketrate resolves market NNN rate bands per zipcode: a 30-day
// database cache in front of a grounded LLM fetch, backstopped by a static
// per-state table when the fetch fails.
package marketrate

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/warehouse-exchange/wex/ent"
	"github.com/warehouse-exchange/wex/ent/marketrate"
	"github.com/warehouse-exchange/wex/pkg/clearing"
	"github.com/warehouse-exchange/wex/pkg/config"
	"github.com/warehouse-exchange/wex/pkg/llm"
)

const fetchSystemPrompt = `You estimate commercial warehouse NNN lease rates for a US zipcode.
Respond with exactly one JSON object:
{"rate_low": <dollars per sqft per month, number>, "rate_high": <number>, "confidence": "<low|medium|high>"}
Rates must reflect the current market for plain warehouse/industrial space in that zipcode. rate_low < rate_high.`

type fetchResult struct {
	RateLow    float64 `json:"rate_low"`
	RateHigh   float64 `json:"rate_high"`
	Confidence string  `json:"confidence"`
}

// Service implements clearing.MarketRateSource.
type Service struct {
	client *ent.Client
	llm    llm.Client
	ttl    time.Duration
	now    func() time.Time
}

// NewService wires the rate resolver. llmClient may be nil; lookups then fall
// straight through to the static table.
func NewService(client *ent.Client, cfg *config.DLAConfig, llmClient llm.Client) *Service {
	return &Service{
		client: client,
		llm:    llmClient,
		ttl:    cfg.MarketRateTTL,
		now:    time.Now,
	}
}

// Band returns the NNN rate band for a zipcode. Resolution order: fresh
// cached row, LLM fetch (cached on success), static state fallback. A nil
// band with nil error means no source could answer.
func (s *Service) Band(ctx context.Context, zip, state string) (*clearing.RateBand, error) {
	state = strings.ToUpper(strings.TrimSpace(state))

	if zip != "" {
		row, err := s.client.MarketRate.Query().
			Where(marketrate.ZipEQ(zip)).
			Only(ctx)
		if err != nil && !ent.IsNotFound(err) {
			return nil, fmt.Errorf("failed to load market rate: %w", err)
		}
		if row != nil && s.now().Sub(row.FetchedAt) < s.ttl {
			return &clearing.RateBand{Low: row.RateLow, High: row.RateHigh}, nil
		}

		if band := s.fetchAndCache(ctx, zip, state); band != nil {
			return band, nil
		}
		// A stale row still beats the state-level fallback.
		if row != nil {
			return &clearing.RateBand{Low: row.RateLow, High: row.RateHigh}, nil
		}
	}

	if band, ok := stateFallback[state]; ok {
		return &clearing.RateBand{Low: band.Low, High: band.High}, nil
	}
	return nil, nil
}

// fetchAndCache runs the grounded LLM fetch and upserts the cache row. Any
// failure logs and returns nil so the caller can degrade.
func (s *Service) fetchAndCache(ctx context.Context, zip, state string) *clearing.RateBand {
	if s.llm == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	raw, err := s.llm.Complete(ctx, llm.Request{
		System: fetchSystemPrompt,
		Prompt: fmt.Sprintf("Zipcode: %s\nState: %s", zip, state),
	})
	if err != nil {
		slog.Warn("Market rate fetch failed, degrading", "zip", zip, "error", err)
		return nil
	}
	result, err := llm.DecodeJSON[fetchResult](raw)
	if err != nil || result.RateLow <= 0 || result.RateHigh <= result.RateLow {
		slog.Warn("Market rate fetch returned an unusable band", "zip", zip, "error", err)
		return nil
	}

	err = s.client.MarketRate.Create().
		SetID(uuid.NewString()).
		SetZip(zip).
		SetState(state).
		SetRateLow(result.RateLow).
		SetRateHigh(result.RateHigh).
		SetSource(marketrate.SourceLlmSearch).
		SetFetchedAt(s.now()).
		OnConflictColumns(marketrate.FieldZip).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		slog.Warn("Failed to cache market rate", "zip", zip, "error", err)
	}
	return &clearing.RateBand{Low: result.RateLow, High: result.RateHigh}
}
