package sms

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/warehouse-exchange/wex/ent"
	"github.com/warehouse-exchange/wex/ent/conversation"
	"github.com/warehouse-exchange/wex/ent/notification"
	"github.com/warehouse-exchange/wex/pkg/config"
	"github.com/warehouse-exchange/wex/pkg/database"
	"github.com/warehouse-exchange/wex/pkg/notify"
)

// ErrDiscarded marks an inbound message the pipeline refused to process. The
// queue records it as discarded rather than failed.
var ErrDiscarded = errors.New("message discarded")

// Processor runs the full pipeline for one inbound message: gate, interpret,
// plan, execute, respond, gate again, persist. One invocation per message,
// serialized per phone by the queue.
type Processor struct {
	client    *ent.Client
	planner   *Planner
	tools     *Tools
	responder *Responder
	cfg       *config.SMSConfig
	now       func() time.Time
}

// NewProcessor wires the pipeline.
func NewProcessor(client *ent.Client, planner *Planner, tools *Tools,
	responder *Responder, cfg *config.SMSConfig) *Processor {
	return &Processor{
		client:    client,
		planner:   planner,
		tools:     tools,
		responder: responder,
		cfg:       cfg,
		now:       time.Now,
	}
}

// Execute processes one claimed inbound message end to end. A reply is always
// enqueued unless the message itself was discarded.
func (p *Processor) Execute(ctx context.Context, msg *ent.InboundMessage) error {
	if reason := CheckInbound(msg.Body, p.cfg); reason != "" {
		slog.Info("Inbound message discarded", "message_id", msg.ID, "reason", reason)
		return fmt.Errorf("%s: %w", reason, ErrDiscarded)
	}

	conv, err := p.client.Conversation.Get(ctx, msg.ConversationID)
	if err != nil {
		return fmt.Errorf("failed to load conversation: %w", err)
	}
	if conv.Status == conversation.StatusOptedOut {
		return fmt.Errorf("phone opted out: %w", ErrDiscarded)
	}

	mi := Interpret(msg.Body)
	prior := CriteriaFromMap(conv.Criteria)

	// Short replies like "the second one" resolve against what was last shown.
	focused := conv.FocusedMatchID
	if mi.OrdinalRef > 0 && mi.OrdinalRef <= len(conv.PresentedMatches) {
		focused = conv.PresentedMatches[mi.OrdinalRef-1]
	}

	var (
		decision PlannerDecision
		result   *ToolResult
	)
	if mi.WantsOptions && len(conv.PresentedMatches) > 0 {
		// Re-present the last result set without a new clearing run.
		decision = PlannerDecision{Intent: IntentRefineSearch, Action: ActionSearch, Criteria: prior.Merge(mi)}
		result, err = p.representMatches(ctx, conv)
	} else {
		decision = p.planner.Plan(ctx, conv, mi, prior, p.storedSummaries(ctx, conv), msg.Body)
		if decision.ResolvedPropertyID != "" {
			focused = decision.ResolvedPropertyID
		}
		result, err = p.execute(ctx, conv, decision, focused)
	}
	if err != nil {
		return err
	}

	reply := p.responder.Respond(ctx, conv, decision, result, decision.Criteria)
	reply = p.gate(ctx, conv, decision, result, reply)

	return p.persist(ctx, conv, msg, mi, decision, result, focused, reply)
}

// execute dispatches the planner's action.
func (p *Processor) execute(ctx context.Context, conv *ent.Conversation,
	decision PlannerDecision, focused string) (*ToolResult, error) {
	switch decision.Action {
	case ActionSearch:
		return p.tools.Search(ctx, conv, decision.Criteria)
	case ActionLookup:
		if focused == "" {
			return &ToolResult{Kind: "none"}, nil
		}
		return p.tools.Lookup(ctx, conv, focused, decision.AskedFields)
	case ActionScheduleTour:
		return p.tools.ScheduleTour(ctx, conv)
	case ActionCommitmentHandoff:
		if focused == "" {
			return &ToolResult{Kind: "none"}, nil
		}
		return p.tools.CommitmentHandoff(ctx, conv, focused)
	case ActionCollectInfo:
		return &ToolResult{Kind: "none"}, nil
	}
	return &ToolResult{Kind: "none"}, nil
}

// representMatches rebuilds summaries for the stored presentation order.
func (p *Processor) representMatches(ctx context.Context, conv *ent.Conversation) (*ToolResult, error) {
	summaries := p.storedSummaries(ctx, conv)
	return &ToolResult{Kind: "search", Matches: summaries, SessionToken: conv.SearchSessionToken}, nil
}

// storedSummaries loads the last-presented matches for ordinal context.
func (p *Processor) storedSummaries(ctx context.Context, conv *ent.Conversation) []MatchSummary {
	if len(conv.PresentedMatches) == 0 || conv.BuyerNeedID == "" {
		return nil
	}
	need, err := p.client.BuyerNeed.Get(ctx, conv.BuyerNeedID)
	if err != nil {
		return nil
	}
	matches := make([]*ent.Match, 0, len(conv.PresentedMatches))
	for _, id := range conv.PresentedMatches {
		matches = append(matches, &ent.Match{ID: id})
	}
	summaries, err := p.tools.summarize(ctx, matches, need)
	if err != nil {
		slog.Warn("Failed to rebuild presented matches", "phone", conv.Phone, "error", err)
		return nil
	}
	return summaries
}

// gate runs the outbound checks with the polisher loop, falling back to a
// trimmed deterministic template when the draft cannot be repaired.
func (p *Processor) gate(ctx context.Context, conv *ent.Conversation,
	decision PlannerDecision, result *ToolResult, reply string) string {
	octx := outboundContext(conv, result)

	for attempt := 0; ; attempt++ {
		violations := CheckOutbound(reply, octx, p.cfg)
		if len(violations) == 0 {
			return reply
		}
		if attempt >= p.cfg.MaxPolishAttempts {
			break
		}
		fixed, err := p.responder.Polish(ctx, reply, violations)
		if err != nil || strings.TrimSpace(fixed) == "" {
			break
		}
		reply = fixed
	}

	fallback := p.responder.Fallback(conv, decision, result, decision.Criteria)
	limit := p.cfg.MaxReplyChars
	if octx.FirstMessage || octx.Commitment {
		limit = p.cfg.MaxFirstReplyChars
	}
	return TrimToLimit(fallback, limit)
}

func outboundContext(conv *ent.Conversation, result *ToolResult) OutboundContext {
	octx := OutboundContext{FirstMessage: conv.TurnCount == 0}
	if result != nil {
		octx.Commitment = result.Kind == "commitment" && result.GuaranteeLink != ""
		octx.TourScheduling = result.Kind == "tour"
		octx.AwaitingAnswer = result.RoutedQuestion
	}
	return octx
}

// persist commits the conversation update and the outbound reply together.
func (p *Processor) persist(ctx context.Context, conv *ent.Conversation, msg *ent.InboundMessage,
	mi MessageInterpretation, decision PlannerDecision, result *ToolResult,
	focused, reply string) error {
	now := p.now()
	phase := nextPhase(conv.Phase, result)

	return database.WithTx(ctx, p.client, func(tx *ent.Tx) error {
		upd := tx.Conversation.UpdateOneID(conv.ID).
			SetPhase(phase).
			SetCriteria(decision.Criteria.ToMap()).
			AddTurnCount(1).
			SetPersona(conversation.PersonaBuyer).
			SetLastInboundAt(msg.ReceivedAt).
			SetLastOutboundAt(now).
			SetReengagementStage(0)

		if delay, ok := stallDelay(p.cfg, phase, 0); ok {
			upd.SetNextReengagementAt(now.Add(delay))
		} else {
			upd.ClearNextReengagementAt()
		}

		if focused != "" {
			upd.SetFocusedMatchID(focused)
		}
		if name := firstNameOf(mi, decision); name != "" {
			upd.SetRenterFirstName(name).
				SetNameStatus(conversation.NameStatusProvided)
			if mi.LastName != "" {
				upd.SetRenterLastName(mi.LastName)
			}
		}
		if mi.Email != "" {
			upd.SetBuyerEmail(mi.Email)
		}

		if result != nil {
			if result.Kind == "search" && len(result.Matches) > 0 {
				ids := make([]string, len(result.Matches))
				for i, m := range result.Matches {
					ids[i] = m.MatchID
				}
				upd.SetPresentedMatches(ids)
			}
			if result.SessionToken != "" {
				upd.SetSearchSessionToken(result.SessionToken)
			}
			if result.Engagement != nil {
				upd.SetEngagementID(result.Engagement.ID)
				upd.SetBuyerNeedID(result.Engagement.BuyerNeedID)
			}
			if result.GuaranteeLink != "" {
				upd.SetGuaranteeLinkToken(GuaranteeToken(result.GuaranteeLink))
			}
		}

		if err := upd.Exec(ctx); err != nil {
			return fmt.Errorf("failed to update conversation: %w", err)
		}

		return notify.EnqueueTx(ctx, tx, notify.Message{
			Channel:   notification.ChannelSms,
			Recipient: conv.Phone,
			Body:      reply,
			RefType:   "conversation",
			RefID:     conv.ID,
			DedupeKey: "sms_reply:" + msg.ID,
		})
	})
}

// nextPhase derives the phase from what the turn actually did; anything
// unrecognized keeps the current phase, except intake which graduates to
// qualifying on first substantive contact.
func nextPhase(current conversation.Phase, result *ToolResult) conversation.Phase {
	if result != nil {
		switch result.Kind {
		case "search":
			if len(result.Matches) > 0 {
				return conversation.PhasePresenting
			}
			return conversation.PhaseQualifying
		case "suppressed_search":
			return conversation.PhaseQualifying
		case "lookup":
			if result.RoutedQuestion {
				return conversation.PhaseAwaitingAnswer
			}
			return conversation.PhasePropertyFocused
		case "commitment":
			if result.NeedsIdentity {
				return conversation.PhaseCollectingInfo
			}
			if result.GuaranteeLink != "" {
				return conversation.PhaseGuaranteePending
			}
			return conversation.PhaseCommitment
		case "tour":
			return conversation.PhaseTourScheduling
		}
	}
	if current == conversation.PhaseIntake {
		return conversation.PhaseQualifying
	}
	return current
}

// stallDelay looks up the nudge delay for a phase and re-engagement stage.
func stallDelay(cfg *config.SMSConfig, phase conversation.Phase, stage int) (time.Duration, bool) {
	rule, ok := cfg.StallRules[string(phase)]
	if !ok || stage >= len(rule.Delays) {
		return 0, false
	}
	return rule.Delays[stage], true
}

func firstNameOf(mi MessageInterpretation, decision PlannerDecision) string {
	if mi.FirstName != "" {
		return mi.FirstName
	}
	if decision.ExtractedName != "" {
		return strings.Fields(decision.ExtractedName)[0]
	}
	return ""
}
