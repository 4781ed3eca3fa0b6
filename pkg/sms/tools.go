package sms

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/warehouse-exchange/wex/ent"
	entengagement "github.com/warehouse-exchange/wex/ent/engagement"
	"github.com/warehouse-exchange/wex/ent/engagementevent"
	"github.com/warehouse-exchange/wex/ent/match"
	"github.com/warehouse-exchange/wex/pkg/clearing"
	"github.com/warehouse-exchange/wex/pkg/config"
	"github.com/warehouse-exchange/wex/pkg/engagement"
	"github.com/warehouse-exchange/wex/pkg/services"
	"github.com/warehouse-exchange/wex/pkg/token"
)

// MatchSummary is the SMS-sized rendering of one presented match. Address and
// supplier identity never appear here; those unlock after the guarantee.
type MatchSummary struct {
	MatchID         string
	WarehouseID     string
	City            string
	State           string
	Sqft            int
	BuyerRate       float64
	MonthlyEstimate float64
	Score           float64
	InstantBook     bool
	Callouts        []string
}

// ToolResult carries whatever the executed tool produced into the responder.
type ToolResult struct {
	Kind string // search, suppressed_search, lookup, commitment, tour, none

	// Search.
	Matches      []MatchSummary
	SessionToken string
	DLATriggered bool
	Missing      []string // unanswered qualifying questions (suppressed search)

	// Lookup.
	Answers        map[string]string
	RoutedQuestion bool

	// Commitment.
	Engagement    *ent.Engagement
	GuaranteeLink string
	NeedsIdentity bool
}

// Tools executes the planner's chosen action against the domain services.
type Tools struct {
	client      *ent.Client
	needs       *services.BuyerNeedService
	engine      *clearing.Engine
	details     *services.DetailFetcher
	questions   *services.QuestionService
	engagements *engagement.Service
	cfg         *config.SMSConfig
	sys         *config.SystemConfig
	now         func() time.Time
}

// NewTools wires the tool executor.
func NewTools(client *ent.Client, needs *services.BuyerNeedService, engine *clearing.Engine,
	details *services.DetailFetcher, questions *services.QuestionService,
	engagements *engagement.Service, cfg *config.SMSConfig, sys *config.SystemConfig) *Tools {
	return &Tools{
		client:      client,
		needs:       needs,
		engine:      engine,
		details:     details,
		questions:   questions,
		engagements: engagements,
		cfg:         cfg,
		sys:         sys,
		now:         time.Now,
	}
}

// Search runs a clearing pass for the conversation's merged criteria. When the
// qualifying questions are still open the search is suppressed and the result
// names what is missing instead.
func (t *Tools) Search(ctx context.Context, conv *ent.Conversation, crit Criteria) (*ToolResult, error) {
	if !crit.QualifyingComplete(t.cfg) {
		return &ToolResult{Kind: "suppressed_search", Missing: crit.MissingQualifying()}, nil
	}

	need, err := t.needs.Create(ctx, services.CreateInput{
		Phone:          conv.Phone,
		City:           crit.City,
		State:          crit.State,
		MinSqft:        crit.SqftMin,
		MaxSqft:        crit.SqftMax,
		UseType:        crit.UseType,
		DurationMonths: crit.DurationMonths,
		MaxBudget:      budgetPtr(crit.MaxBudgetPerSqft),
		Requirements:   requirementsMap(crit.Features),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create buyer need: %w", err)
	}

	cleared, err := t.engine.Clear(ctx, need.ID)
	if err != nil {
		return nil, fmt.Errorf("clearing failed: %w", err)
	}

	summaries, err := t.summarize(ctx, cleared.Tier1, need)
	if err != nil {
		return nil, err
	}

	tok, err := t.openSession(ctx, conv, need.ID, crit, summaries, cleared.DLATriggered)
	if err != nil {
		return nil, err
	}

	result := &ToolResult{
		Kind:         "search",
		Matches:      summaries,
		SessionToken: tok,
		DLATriggered: cleared.DLATriggered,
	}
	slog.Info("SMS search executed",
		"phone", conv.Phone, "buyer_need_id", need.ID,
		"matches", len(summaries), "dla_triggered", cleared.DLATriggered)
	return result, nil
}

// summarize loads the presented matches with their warehouses and renders the
// SMS view. Monthly estimate uses the need's midpoint footprint.
func (t *Tools) summarize(ctx context.Context, matches []*ent.Match, need *ent.BuyerNeed) ([]MatchSummary, error) {
	if len(matches) == 0 {
		return nil, nil
	}
	ids := make([]string, len(matches))
	for i, m := range matches {
		ids[i] = m.ID
	}
	rows, err := t.client.Match.Query().
		Where(match.IDIn(ids...)).
		WithWarehouse().
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load matches for presentation: %w", err)
	}
	byID := make(map[string]*ent.Match, len(rows))
	for _, r := range rows {
		byID[r.ID] = r
	}

	sqft := (need.MinSqft + need.MaxSqft) / 2
	out := make([]MatchSummary, 0, len(matches))
	for _, m := range matches {
		row, ok := byID[m.ID]
		if !ok || row.Edges.Warehouse == nil {
			continue
		}
		wh := row.Edges.Warehouse
		out = append(out, MatchSummary{
			MatchID:         row.ID,
			WarehouseID:     wh.ID,
			City:            wh.City,
			State:           wh.State,
			Sqft:            sqft,
			BuyerRate:       row.BuyerRate,
			MonthlyEstimate: row.BuyerRate * float64(sqft),
			Score:           row.CompositeScore,
			InstantBook:     row.InstantBookEligible,
			Callouts:        row.Callouts,
		})
	}
	return out, nil
}

// openSession mints the web continuation token and records what was shown.
func (t *Tools) openSession(ctx context.Context, conv *ent.Conversation, needID string,
	crit Criteria, summaries []MatchSummary, dlaTriggered bool) (string, error) {
	tok, err := token.NewURLSafe()
	if err != nil {
		return "", fmt.Errorf("failed to mint session token: %w", err)
	}
	ids := make([]string, len(summaries))
	for i, s := range summaries {
		ids[i] = s.MatchID
	}
	_, err = t.client.SearchSession.Create().
		SetID(uuid.NewString()).
		SetToken(tok).
		SetPhone(conv.Phone).
		SetBuyerNeedID(needID).
		SetCriteria(crit.ToMap()).
		SetResultMatches(ids).
		SetResultCount(len(ids)).
		SetDlaTriggered(dlaTriggered).
		SetExpiresAt(t.now().Add(t.cfg.SearchSessionTTL)).
		Save(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to create search session: %w", err)
	}
	return tok, nil
}

// Lookup answers attribute questions about a focused match from stored data
// and escalates the misses to the supplier.
func (t *Tools) Lookup(ctx context.Context, conv *ent.Conversation, matchID string, keys []string) (*ToolResult, error) {
	m, err := t.client.Match.Get(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to load focused match: %w", err)
	}

	answers, misses, err := t.details.Fetch(ctx, m.WarehouseID, keys)
	if err != nil {
		return nil, err
	}

	result := &ToolResult{Kind: "lookup", Answers: answers}
	for _, miss := range misses {
		ask, err := t.questions.Ask(ctx, services.AskInput{
			WarehouseID:  m.WarehouseID,
			EngagementID: conv.EngagementID,
			AskedByPhone: conv.Phone,
			QuestionText: fmt.Sprintf("What is the %s at this property?", humanTopic(miss)),
			Topic:        miss,
		})
		if err != nil {
			return nil, err
		}
		if ask.FromKB {
			result.Answers[miss] = ask.Answer
			continue
		}
		if err := t.questions.Route(ctx, ask.Question.ID); err != nil {
			slog.Warn("Failed to route escalated question",
				"question_id", ask.Question.ID, "error", err)
			continue
		}
		result.RoutedQuestion = true
	}
	return result, nil
}

// CommitmentHandoff creates the engagement at acceptance and mints the
// one-shot guarantee link. Name and email must already be captured.
func (t *Tools) CommitmentHandoff(ctx context.Context, conv *ent.Conversation, matchID string) (*ToolResult, error) {
	if conv.RenterFirstName == "" || conv.BuyerEmail == "" {
		return &ToolResult{Kind: "commitment", NeedsIdentity: true}, nil
	}

	e, err := t.engagements.CreateFromMatch(ctx, engagement.CreateInput{
		MatchID: matchID,
		Status:  entengagement.StatusBuyerAccepted,
		Actor:   engagementevent.ActorRoleBuyer,
	})
	if err != nil {
		return nil, err
	}

	tok, err := token.NewURLSafe()
	if err != nil {
		return nil, fmt.Errorf("failed to mint guarantee token: %w", err)
	}

	return &ToolResult{
		Kind:          "commitment",
		Engagement:    e,
		GuaranteeLink: fmt.Sprintf("%s/guarantee/%s", t.sys.BaseURL, tok),
	}, nil
}

// GuaranteeToken extracts the raw token from a commitment result's link so the
// pipeline can persist it on the conversation.
func GuaranteeToken(link string) string {
	for i := len(link) - 1; i >= 0; i-- {
		if link[i] == '/' {
			return link[i+1:]
		}
	}
	return link
}

// ScheduleTour requests a tour on the conversation's engagement.
func (t *Tools) ScheduleTour(ctx context.Context, conv *ent.Conversation) (*ToolResult, error) {
	if conv.EngagementID == "" {
		return &ToolResult{Kind: "tour"}, nil
	}
	e, err := t.engagements.Transition(ctx, engagement.Command{
		EngagementID: conv.EngagementID,
		Target:       entengagement.StatusTourRequested,
		Actor:        engagementevent.ActorRoleBuyer,
	})
	if err != nil {
		return nil, err
	}
	return &ToolResult{Kind: "tour", Engagement: e}, nil
}

func budgetPtr(v float64) *float64 {
	if v <= 0 {
		return nil
	}
	return &v
}

func requirementsMap(features []string) map[string]interface{} {
	if len(features) == 0 {
		return nil
	}
	m := make(map[string]interface{}, len(features))
	for _, f := range features {
		m[f] = true
	}
	return m
}

// humanTopic renders an attribute key for a supplier-facing question.
func humanTopic(key string) string {
	switch key {
	case "clear_height":
		return "clear height"
	case "dock_doors":
		return "dock door count"
	case "power":
		return "power service"
	case "office":
		return "office space situation"
	case "sprinkler":
		return "sprinkler coverage"
	case "sqft":
		return "available square footage"
	}
	return key
}
