package sms

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/warehouse-exchange/wex/ent"
	"github.com/warehouse-exchange/wex/pkg/config"
	"github.com/warehouse-exchange/wex/pkg/llm"
)

// Planner intents and actions.
const (
	IntentNewSearch    = "new_search"
	IntentRefineSearch = "refine_search"
	IntentFacilityInfo = "facility_info"
	IntentTourRequest  = "tour_request"
	IntentCommitment   = "commitment"
	IntentProvideInfo  = "provide_info"
	IntentGreeting     = "greeting"
	IntentUnknown      = "unknown"

	ActionSearch            = "search"
	ActionLookup            = "lookup"
	ActionScheduleTour      = "schedule_tour"
	ActionCommitmentHandoff = "commitment_handoff"
	ActionCollectInfo       = "collect_info"
)

// PlannerDecision is the typed contract of the criteria planner.
type PlannerDecision struct {
	Intent              string   `json:"intent"`
	Action              string   `json:"action"`
	Criteria            Criteria `json:"criteria"`
	ResolvedPropertyID  string   `json:"resolved_property_id"`
	ExtractedName       string   `json:"extracted_name"`
	AskedFields         []string `json:"asked_fields"`
	ClarificationNeeded bool     `json:"clarification_needed"`
	ResponseHint        string   `json:"response_hint"`
	Confidence          float64  `json:"confidence"`
}

const plannerSystemPrompt = `You plan the next step of an SMS conversation with a prospective warehouse tenant.
Given the deterministic interpretation, the conversation phase, prior criteria, and the matches last presented, respond with exactly one JSON object:
{"intent": "<new_search|refine_search|facility_info|tour_request|commitment|provide_info|greeting|unknown>",
 "action": "<search|lookup|schedule_tour|commitment_handoff|collect_info|null>",
 "criteria": {<merged criteria>},
 "resolved_property_id": "<match id or empty>",
 "extracted_name": "<name or empty>",
 "asked_fields": [<property attribute keys>],
 "clarification_needed": <bool>,
 "response_hint": "<one sentence guidance for the reply, or empty>",
 "confidence": <0.0-1.0>}
Never invent criteria the buyer did not state. Merge, do not replace.`

// Planner wraps the LLM criteria planner with its deterministic overrides.
type Planner struct {
	llm llm.Client
	cfg *config.SMSConfig
}

// NewPlanner creates the planner. A nil LLM client degrades to the
// deterministic fallback plan.
func NewPlanner(llmClient llm.Client, cfg *config.SMSConfig) *Planner {
	return &Planner{llm: llmClient, cfg: cfg}
}

// Plan produces the decision for one turn. LLM failure falls back to a plan
// derived purely from the interpretation; overrides are applied either way.
func (p *Planner) Plan(ctx context.Context, conv *ent.Conversation, mi MessageInterpretation, prior Criteria, presented []MatchSummary, body string) PlannerDecision {
	decision := p.llmPlan(ctx, conv, mi, prior, presented, body)
	if decision == nil {
		fallback := p.deterministicPlan(mi, prior)
		decision = &fallback
	}
	p.applyOverrides(decision, mi, prior)
	return *decision
}

func (p *Planner) llmPlan(ctx context.Context, conv *ent.Conversation, mi MessageInterpretation, prior Criteria, presented []MatchSummary, body string) *PlannerDecision {
	if p.llm == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, p.cfg.PlannerTimeout)
	defer cancel()

	raw, err := p.llm.Complete(ctx, llm.Request{
		System: plannerSystemPrompt,
		Prompt: plannerPrompt(conv, mi, prior, presented, body),
	})
	if err != nil {
		slog.Warn("Planner LLM failed, using deterministic plan", "phone", conv.Phone, "error", err)
		return nil
	}
	decision, err := llm.DecodeJSON[PlannerDecision](raw)
	if err != nil {
		slog.Warn("Planner returned unparseable JSON, using deterministic plan",
			"phone", conv.Phone, "error", err)
		return nil
	}
	return &decision
}

// deterministicPlan is the LLM-free approximation used when the planner is
// down: interpretation in, smallest sensible plan out.
func (p *Planner) deterministicPlan(mi MessageInterpretation, prior Criteria) PlannerDecision {
	d := PlannerDecision{
		Intent:   IntentUnknown,
		Criteria: prior.Merge(mi),
	}
	switch {
	case mi.WantsBooking:
		d.Intent = IntentCommitment
		d.Action = ActionCommitmentHandoff
	case mi.WantsTour:
		d.Intent = IntentTourRequest
		d.Action = ActionScheduleTour
	case len(mi.Topics) > 0:
		d.Intent = IntentFacilityInfo
		d.Action = ActionLookup
		d.AskedFields = mi.Topics
	case mi.HasSearchData():
		d.Intent = IntentNewSearch
		d.Action = ActionSearch
	case mi.FirstName != "" || mi.Email != "":
		d.Intent = IntentProvideInfo
		d.Action = ActionCollectInfo
	case mi.IsGreeting:
		d.Intent = IntentGreeting
	}
	if mi.FirstName != "" {
		d.ExtractedName = strings.TrimSpace(mi.FirstName + " " + mi.LastName)
	}
	return d
}

// applyOverrides keeps the planner honest where determinism must win.
func (p *Planner) applyOverrides(d *PlannerDecision, mi MessageInterpretation, prior Criteria) {
	// Concrete search data beats a greeting verdict.
	if d.Intent == IntentGreeting && mi.HasSearchData() {
		d.Intent = IntentNewSearch
		d.Action = ActionSearch
	}
	// "No" to the deal-breaker question closes the requirement gate.
	if prior.DealBreakerAsked && mi.SaidNo {
		d.Criteria.DealBreakerAnswer = true
	}
	// The planner never loses deterministic extractions.
	d.Criteria = d.Criteria.Merge(mi)
	if d.ExtractedName == "" && mi.FirstName != "" {
		d.ExtractedName = strings.TrimSpace(mi.FirstName + " " + mi.LastName)
	}
	if len(d.AskedFields) == 0 && len(mi.Topics) > 0 {
		d.AskedFields = mi.Topics
	}
}

func plannerPrompt(conv *ent.Conversation, mi MessageInterpretation, prior Criteria, presented []MatchSummary, body string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "PHASE: %s (turn %d)\n", conv.Phase, conv.TurnCount)
	fmt.Fprintf(&b, "MESSAGE: %s\n", body)

	if data, err := json.Marshal(mi); err == nil {
		fmt.Fprintf(&b, "\nINTERPRETATION: %s\n", data)
	}
	if data, err := json.Marshal(prior); err == nil {
		fmt.Fprintf(&b, "PRIOR CRITERIA: %s\n", data)
	}
	if len(presented) > 0 {
		b.WriteString("\nPRESENTED MATCHES:\n")
		for i, m := range presented {
			fmt.Fprintf(&b, "%d. [%s] %s, %s — $%.2f/sqft, ~$%.0f/mo\n",
				i+1, m.MatchID, m.City, m.State, m.BuyerRate, m.MonthlyEstimate)
		}
	}
	if conv.FocusedMatchID != "" {
		fmt.Fprintf(&b, "FOCUSED MATCH: %s\n", conv.FocusedMatchID)
	}
	return b.String()
}
