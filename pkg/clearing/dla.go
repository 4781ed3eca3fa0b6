package clearing

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/warehouse-exchange/wex/ent"
	"github.com/warehouse-exchange/wex/ent/contextualmemory"
	"github.com/warehouse-exchange/wex/ent/dlatoken"
	"github.com/warehouse-exchange/wex/ent/notification"
	"github.com/warehouse-exchange/wex/ent/supplieragreement"
	"github.com/warehouse-exchange/wex/ent/truthcore"
	"github.com/warehouse-exchange/wex/ent/warehouse"
	"github.com/warehouse-exchange/wex/pkg/database"
	"github.com/warehouse-exchange/wex/pkg/token"
)

// triggerOutreach creates DLA tokens for the best Tier-2 candidates when
// Tier 1 came up short. Runs inside the clearing transaction. A candidate is
// skipped without a contact phone, inside the outreach cooldown, or with a
// live token for this need already; total live tokens per need are capped.
func (e *Engine) triggerOutreach(ctx context.Context, tx *ent.Tx, need *ent.BuyerNeed, tier2 []*candidate) (bool, error) {
	now := e.now()

	live, err := tx.DLAToken.Query().
		Where(
			dlatoken.BuyerNeedIDEQ(need.ID),
			dlatoken.StatusIn(dlatoken.StatusPending, dlatoken.StatusInterested),
		).
		Count(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to count live outreach tokens: %w", err)
	}

	budget := e.dlaCfg.MaxOutreachPerNeed - live
	created := 0
	for _, c := range tier2 {
		if created >= budget {
			break
		}
		if c.wh.ContactPhone == "" {
			continue
		}
		if c.wh.LastOutreachAt != nil && now.Sub(*c.wh.LastOutreachAt) < e.dlaCfg.OutreachCooldown {
			continue
		}

		dup, err := tx.DLAToken.Query().
			Where(
				dlatoken.WarehouseIDEQ(c.wh.ID),
				dlatoken.BuyerNeedIDEQ(need.ID),
				dlatoken.StatusIn(dlatoken.StatusPending, dlatoken.StatusInterested),
			).
			Exist(ctx)
		if err != nil {
			return false, fmt.Errorf("failed to check outreach dedupe: %w", err)
		}
		if dup {
			continue
		}

		value, err := token.NewHex()
		if err != nil {
			return false, fmt.Errorf("failed to mint outreach token: %w", err)
		}

		tok, err := tx.DLAToken.Create().
			SetID(uuid.NewString()).
			SetToken(value).
			SetWarehouseID(c.wh.ID).
			SetBuyerNeedID(need.ID).
			SetProposedSqft((need.MinSqft + need.MaxSqft) / 2).
			SetExpiresAt(now.Add(e.dlaCfg.TokenTTL)).
			Save(ctx)
		if err != nil {
			return false, fmt.Errorf("failed to create outreach token: %w", err)
		}

		err = tx.Warehouse.UpdateOneID(c.wh.ID).
			SetSupplierStatus(warehouse.SupplierStatusInterested).
			SetLastOutreachAt(now).
			AddOutreachCount(1).
			Exec(ctx)
		if err != nil {
			return false, fmt.Errorf("failed to mark warehouse outreach: %w", err)
		}

		_, err = tx.Notification.Create().
			SetID(uuid.NewString()).
			SetChannel(notification.ChannelSms).
			SetRecipient(c.wh.ContactPhone).
			SetBody(outreachBody(need, tok)).
			SetRefType("dla_token").
			SetRefID(tok.ID).
			SetDedupeKey("dla_outreach:" + tok.ID).
			Save(ctx)
		if err != nil {
			return false, fmt.Errorf("failed to enqueue outreach notification: %w", err)
		}

		created++
	}

	if created > 0 {
		slog.Info("DLA outreach triggered", "buyer_need_id", need.ID, "tokens", created)
	}
	return created > 0, nil
}

// outreachBody is the supplier-facing first touch. The buyer stays anonymous:
// only the requirement shape is disclosed.
func outreachBody(need *ent.BuyerNeed, tok *ent.DLAToken) string {
	return fmt.Sprintf(
		"A tenant is looking for ~%d sqft (%s) in %s, %s. Your building may fit. Reply or confirm here: /dla/%s",
		tok.ProposedSqft, need.UseType, need.City, need.State, tok.Token)
}

// RateBand is a market NNN rate range for one area.
type RateBand struct {
	Low  float64
	High float64
}

// MarketRateSource supplies the market band used to clamp rate suggestions.
type MarketRateSource interface {
	Band(ctx context.Context, zip, state string) (*RateBand, error)
}

// DLAError is a typed failure of the token flow; Code maps to an HTTP status
// at the boundary.
type DLAError struct {
	Code   string
	Reason string
}

func (e *DLAError) Error() string { return e.Reason }

// Token flow failure codes.
var (
	ErrTokenExpired  = &DLAError{Code: "token_expired", Reason: "this link has expired"}
	ErrTokenConsumed = &DLAError{Code: "token_consumed", Reason: "this link has already been resolved"}
)

// DLAService drives the four-step supplier activation flow. The token value
// is the only credential on every call.
type DLAService struct {
	client *ent.Client
	engine *Engine
	rates  MarketRateSource
	now    func() time.Time
}

// NewDLAService wires the token flow. rates may be nil; suggestions then skip
// the market clamp.
func NewDLAService(client *ent.Client, engine *Engine, rates MarketRateSource) *DLAService {
	return &DLAService{
		client: client,
		engine: engine,
		rates:  rates,
		now:    time.Now,
	}
}

// PropertyConfirm is step one's response: the supplier's own building plus
// the anonymized requirement. No buyer identity ever crosses here.
type PropertyConfirm struct {
	WarehouseID string `json:"warehouse_id"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	NeedSqft    int    `json:"need_sqft"`
	NeedUseType string `json:"need_use_type"`
	NeedCity    string `json:"need_city"`
	NeedState   string `json:"need_state"`
	NeededFrom  string `json:"needed_from,omitempty"`
	ExpiresAt   string `json:"expires_at"`
}

// resolve loads a token by value and enforces expiry. An expired token is
// flipped to expired and its miss recorded before the error returns.
func (s *DLAService) resolve(ctx context.Context, value string) (*ent.DLAToken, error) {
	tok, err := s.client.DLAToken.Query().
		Where(dlatoken.TokenEQ(value)).
		WithWarehouse().
		WithBuyerNeed().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("dla token: %w", err)
		}
		return nil, fmt.Errorf("failed to resolve dla token: %w", err)
	}

	switch tok.Status {
	case dlatoken.StatusDeclined, dlatoken.StatusExpired, dlatoken.StatusConfirmed:
		return nil, ErrTokenConsumed
	}

	if s.now().After(tok.ExpiresAt) {
		if err := s.expire(ctx, tok); err != nil {
			return nil, err
		}
		return nil, ErrTokenExpired
	}
	return tok, nil
}

// Confirm is step one: the supplier verifies the building is theirs and sees
// the anonymized demand.
func (s *DLAService) Confirm(ctx context.Context, value string) (*PropertyConfirm, error) {
	tok, err := s.resolve(ctx, value)
	if err != nil {
		return nil, err
	}

	if tok.Status == dlatoken.StatusPending {
		err = s.client.DLAToken.UpdateOneID(tok.ID).
			SetStatus(dlatoken.StatusInterested).
			SetRespondedAt(s.now()).
			Exec(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to mark token interested: %w", err)
		}
	}

	wh := tok.Edges.Warehouse
	need := tok.Edges.BuyerNeed
	out := &PropertyConfirm{
		WarehouseID: wh.ID,
		Address:     wh.Address,
		City:        wh.City,
		State:       wh.State,
		NeedSqft:    tok.ProposedSqft,
		NeedUseType: need.UseType,
		NeedCity:    need.City,
		NeedState:   need.State,
		ExpiresAt:   tok.ExpiresAt.UTC().Format(time.RFC3339),
	}
	if need.NeededFrom != nil {
		out.NeededFrom = need.NeededFrom.UTC().Format(time.DateOnly)
	}
	return out, nil
}

// RateProposal is step two's response.
type RateProposal struct {
	SuggestedRate float64  `json:"suggested_rate"`
	MarketLow     *float64 `json:"market_low,omitempty"`
	MarketHigh    *float64 `json:"market_high,omitempty"`
}

// SuggestRate computes and stores the blended rate proposal: a weighted blend
// of the buyer's budget ceiling and the in-network average for the state,
// clamped to the market band when one is known.
func (s *DLAService) SuggestRate(ctx context.Context, value string) (*RateProposal, error) {
	tok, err := s.resolve(ctx, value)
	if err != nil {
		return nil, err
	}
	wh := tok.Edges.Warehouse
	need := tok.Edges.BuyerNeed

	networkAvg, err := s.client.TruthCore.Query().
		Where(
			truthcore.ActivationStatusEQ(truthcore.ActivationStatusOn),
			truthcore.HasWarehouseWith(
				warehouse.StateEQ(wh.State),
				warehouse.SupplierStatusEQ(warehouse.SupplierStatusInNetwork),
			),
		).
		Aggregate(ent.Mean(truthcore.FieldSupplierRatePerSqft)).
		Float64(ctx)
	if err != nil {
		networkAvg = 0
	}

	cfg := s.engine.dlaCfg
	var suggested float64
	switch {
	case need.MaxBudgetPerSqft != nil && networkAvg > 0:
		suggested = cfg.BudgetBlendWeight**need.MaxBudgetPerSqft + cfg.NetworkBlendWeight*networkAvg
	case need.MaxBudgetPerSqft != nil:
		suggested = *need.MaxBudgetPerSqft
	case networkAvg > 0:
		suggested = networkAvg
	}

	proposal := &RateProposal{}
	if s.rates != nil {
		if band, err := s.rates.Band(ctx, wh.Zip, wh.State); err == nil && band != nil {
			proposal.MarketLow = &band.Low
			proposal.MarketHigh = &band.High
			if suggested == 0 {
				suggested = (band.Low + band.High) / 2
			}
			suggested = math.Max(band.Low, math.Min(suggested, band.High))
		}
	}
	suggested = math.Round(suggested*100) / 100
	proposal.SuggestedRate = suggested

	err = s.client.DLAToken.UpdateOneID(tok.ID).
		SetSuggestedRate(suggested).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to store suggested rate: %w", err)
	}
	return proposal, nil
}

// DecideRate is step two's submission: the supplier accepts the suggestion
// (counter nil) or counters with their own number.
func (s *DLAService) DecideRate(ctx context.Context, value string, counter *float64) (*ent.DLAToken, error) {
	tok, err := s.resolve(ctx, value)
	if err != nil {
		return nil, err
	}

	final := 0.0
	if counter != nil && *counter > 0 {
		final = math.Round(*counter*100) / 100
	} else if tok.SuggestedRate != nil {
		final = *tok.SuggestedRate
	}
	if final <= 0 {
		return nil, fmt.Errorf("no rate decided: suggestion missing and no counter given")
	}

	tok, err = s.client.DLAToken.UpdateOneID(tok.ID).
		SetStatus(dlatoken.StatusRateDecided).
		SetFinalRate(final).
		SetRespondedAt(s.now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to store decided rate: %w", err)
	}
	return tok, nil
}

// Agree is step three: the supplier signs. One transaction converts the
// building — in_network status, activated TruthCore carrying the decided
// rate, a contextual memory, a seeded Match against the triggering need, a
// network agreement, and the buyer notification.
func (s *DLAService) Agree(ctx context.Context, value string) error {
	tok, err := s.client.DLAToken.Query().
		Where(dlatoken.TokenEQ(value)).
		WithWarehouse().
		WithBuyerNeed().
		Only(ctx)
	if err != nil {
		return fmt.Errorf("failed to resolve dla token: %w", err)
	}
	if tok.Status != dlatoken.StatusRateDecided {
		return &DLAError{Code: "rate_not_decided", Reason: "decide a rate before signing"}
	}
	if s.now().After(tok.ExpiresAt) {
		if err := s.expire(ctx, tok); err != nil {
			return err
		}
		return ErrTokenExpired
	}
	if tok.FinalRate == nil {
		return &DLAError{Code: "rate_not_decided", Reason: "decide a rate before signing"}
	}

	wh := tok.Edges.Warehouse
	need := tok.Edges.BuyerNeed
	now := s.now()
	rate := *tok.FinalRate
	seed := s.engine.dlaCfg.SeedMatchScore

	return s.withTx(ctx, func(tx *ent.Tx) error {
		if err := tx.DLAToken.UpdateOneID(tok.ID).
			SetStatus(dlatoken.StatusConfirmed).
			SetConfirmedAt(now).
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to confirm token: %w", err)
		}

		if err := tx.Warehouse.UpdateOneID(wh.ID).
			SetSupplierStatus(warehouse.SupplierStatusInNetwork).
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to flip supplier status: %w", err)
		}

		core, err := tx.TruthCore.Query().
			Where(truthcore.WarehouseIDEQ(wh.ID)).
			Only(ctx)
		switch {
		case err == nil:
			// Signing overwrites the asking rate; in-flight needs are not
			// re-cleared.
			if err := tx.TruthCore.UpdateOneID(core.ID).
				SetActivationStatus(truthcore.ActivationStatusOn).
				SetSupplierRatePerSqft(rate).
				Exec(ctx); err != nil {
				return fmt.Errorf("failed to activate truth core: %w", err)
			}
		case ent.IsNotFound(err):
			sqft := tok.ProposedSqft
			if wh.BuildingSqft > sqft {
				sqft = wh.BuildingSqft
			}
			if _, err := tx.TruthCore.Create().
				SetID(uuid.NewString()).
				SetWarehouseID(wh.ID).
				SetMinSqft(tok.ProposedSqft).
				SetMaxSqft(sqft).
				SetSupplierRatePerSqft(rate).
				SetActivationStatus(truthcore.ActivationStatusOn).
				Save(ctx); err != nil {
				return fmt.Errorf("failed to create truth core: %w", err)
			}
		default:
			return fmt.Errorf("failed to load truth core: %w", err)
		}

		if _, err := tx.ContextualMemory.Create().
			SetID(uuid.NewString()).
			SetWarehouseID(wh.ID).
			SetCategory(contextualmemory.CategoryPricing).
			SetContent(fmt.Sprintf("Activated via demand-led outreach at $%.2f/sqft", rate)).
			SetSource(contextualmemory.SourceSupplierSms).
			Save(ctx); err != nil {
			return fmt.Errorf("failed to record activation memory: %w", err)
		}

		buyerRate := s.engine.pricer.BuyerRate(rate)
		if _, err := tx.Match.Create().
			SetID(uuid.NewString()).
			SetBuyerNeedID(need.ID).
			SetWarehouseID(wh.ID).
			SetCompositeScore(seed).
			SetLocationScore(seed).
			SetSizeScore(seed).
			SetUseTypeScore(seed).
			SetFeatureScore(seed).
			SetTimingScore(seed).
			SetBudgetScore(seed).
			SetReasoning("Supplier activated through demand-led outreach for this requirement").
			SetBuyerRate(buyerRate).
			Save(ctx); err != nil {
			return fmt.Errorf("failed to seed match: %w", err)
		}

		if _, err := tx.SupplierAgreement.Create().
			SetID(uuid.NewString()).
			SetWarehouseID(wh.ID).
			SetStatus(supplieragreement.StatusSigned).
			SetOrigin(supplieragreement.OriginDla).
			SetSignedAt(now).
			Save(ctx); err != nil {
			return fmt.Errorf("failed to create supplier agreement: %w", err)
		}

		if need.Phone != "" {
			if _, err := tx.Notification.Create().
				SetID(uuid.NewString()).
				SetChannel(notification.ChannelSms).
				SetRecipient(need.Phone).
				SetBody(fmt.Sprintf("Good news: a ~%d sqft space in %s, %s just became available for your search.",
					tok.ProposedSqft, wh.City, wh.State)).
				SetRefType("dla_token").
				SetRefID(tok.ID).
				SetDedupeKey("dla_converted:" + tok.ID).
				Save(ctx); err != nil {
				return fmt.Errorf("failed to enqueue buyer notification: %w", err)
			}
		}
		return nil
	})
}

// Decline is the supplier's non-conversion exit. The reason is persisted as a
// contextual memory so future routing can learn from it.
func (s *DLAService) Decline(ctx context.Context, value, note string) error {
	tok, err := s.resolve(ctx, value)
	if err != nil {
		return err
	}
	return s.withTx(ctx, func(tx *ent.Tx) error {
		upd := tx.DLAToken.UpdateOneID(tok.ID).
			SetStatus(dlatoken.StatusDeclined).
			SetRespondedAt(s.now())
		if note != "" {
			upd.SetOutcomeNote(note)
		}
		if err := upd.Exec(ctx); err != nil {
			return fmt.Errorf("failed to decline token: %w", err)
		}
		return s.recordOutcomeMemory(ctx, tx, tok, "declined", note)
	})
}

// expire flips a token past its TTL and records the miss.
func (s *DLAService) expire(ctx context.Context, tok *ent.DLAToken) error {
	return s.withTx(ctx, func(tx *ent.Tx) error {
		if err := tx.DLAToken.UpdateOneID(tok.ID).
			SetStatus(dlatoken.StatusExpired).
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to expire token: %w", err)
		}
		return s.recordOutcomeMemory(ctx, tx, tok, "expired", "")
	})
}

// recordOutcomeMemory writes the learning note for a non-conversion.
func (s *DLAService) recordOutcomeMemory(ctx context.Context, tx *ent.Tx, tok *ent.DLAToken, outcome, note string) error {
	content := "Demand-led outreach " + outcome
	if note != "" {
		content += ": " + note
	}
	if tok.FinalRate != nil {
		content += fmt.Sprintf(" (rate floor indicated at $%.2f/sqft)", *tok.FinalRate)
	} else if tok.SuggestedRate != nil && outcome == "declined" {
		content += fmt.Sprintf(" (suggested $%.2f/sqft was not accepted)", *tok.SuggestedRate)
	}
	if _, err := tx.ContextualMemory.Create().
		SetID(uuid.NewString()).
		SetWarehouseID(tok.WarehouseID).
		SetCategory(contextualmemory.CategoryPricing).
		SetContent(content).
		SetSource(contextualmemory.SourceSupplierSms).
		Save(ctx); err != nil {
		return fmt.Errorf("failed to record outreach outcome: %w", err)
	}
	return nil
}

func (s *DLAService) withTx(ctx context.Context, fn func(tx *ent.Tx) error) error {
	return database.WithTx(ctx, s.client, fn)
}
