package sms

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/warehouse-exchange/wex/ent"
	"github.com/warehouse-exchange/wex/pkg/config"
	"github.com/warehouse-exchange/wex/pkg/llm"
)

const responderSystemPrompt = `You write the next SMS reply for a warehouse-space concierge.
Rules:
- One message, plain text, no markdown, no emoji.
- Under 480 characters unless this is the first contact or the reply carries a link (then under 800).
- Warm and direct; no filler, no corporate phrasing.
- Never reveal a property address, the supplier's name, or supplier-side pricing.
- When matches are listed, number them so the buyer can answer "option 2".
- Ask at most one question per message.
Reply with the message text only.`

const polisherSystemPrompt = `You fix an SMS draft that failed delivery checks.
Rewrite the draft so it keeps its meaning and tone while resolving every listed violation.
Reply with the corrected message text only.`

// Responder turns the turn's outcome into the reply text. Every path has a
// deterministic fallback; the buyer always gets an answer.
type Responder struct {
	llm llm.Client
	cfg *config.SMSConfig
}

// NewResponder creates the responder. A nil LLM client uses templates only.
func NewResponder(llmClient llm.Client, cfg *config.SMSConfig) *Responder {
	return &Responder{llm: llmClient, cfg: cfg}
}

// Respond produces the reply for one turn. Greetings skip the LLM entirely.
func (r *Responder) Respond(ctx context.Context, conv *ent.Conversation,
	decision PlannerDecision, result *ToolResult, crit Criteria) string {
	if decision.Intent == IntentGreeting && (result == nil || result.Kind == "" || result.Kind == "none") {
		return r.greetingReply(conv)
	}

	if r.llm != nil {
		ctx, cancel := context.WithTimeout(ctx, r.cfg.ResponderTimeout)
		defer cancel()
		reply, err := r.llm.Complete(ctx, llm.Request{
			System: responderSystemPrompt,
			Prompt: responderPrompt(conv, decision, result, crit),
		})
		if err == nil && strings.TrimSpace(reply) != "" {
			return strings.TrimSpace(reply)
		}
		slog.Warn("Responder LLM failed, using fallback template",
			"phone", conv.Phone, "error", err)
	}
	return r.Fallback(conv, decision, result, crit)
}

// Polish asks the LLM to repair a draft that failed the outbound gate.
func (r *Responder) Polish(ctx context.Context, draft string, violations []string) (string, error) {
	if r.llm == nil {
		return "", fmt.Errorf("no llm client for polishing")
	}
	ctx, cancel := context.WithTimeout(ctx, r.cfg.PolisherTimeout)
	defer cancel()
	fixed, err := r.llm.Complete(ctx, llm.Request{
		System: polisherSystemPrompt,
		Prompt: fmt.Sprintf("VIOLATIONS: %s\n\nDRAFT:\n%s", strings.Join(violations, ", "), draft),
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(fixed), nil
}

func (r *Responder) greetingReply(conv *ent.Conversation) string {
	name := conv.RenterFirstName
	if name != "" {
		return fmt.Sprintf("Hi %s! I help businesses find warehouse space. Where are you looking, and roughly how many square feet do you need?", name)
	}
	return "Hi! I help businesses find warehouse space. Where are you looking, and roughly how many square feet do you need?"
}

// Fallback renders the deterministic template for the turn's outcome.
func (r *Responder) Fallback(conv *ent.Conversation, decision PlannerDecision,
	result *ToolResult, crit Criteria) string {
	if result != nil {
		switch result.Kind {
		case "search":
			return searchReply(result)
		case "suppressed_search":
			return suppressedReply(result.Missing)
		case "lookup":
			return lookupReply(result)
		case "commitment":
			return commitmentReply(result)
		case "tour":
			return "Got it, I've asked the owner to confirm a tour time. I'll text you as soon as they respond."
		}
	}
	if decision.Intent == IntentGreeting {
		return r.greetingReply(conv)
	}
	if decision.ResponseHint != "" {
		return decision.ResponseHint
	}
	return nextQuestionReply(crit)
}

func searchReply(result *ToolResult) string {
	if len(result.Matches) == 0 {
		if result.DLATriggered {
			return "Nothing in our network fits that yet, but I'm reaching out to a few property owners in the area now. I'll text you when one comes back available."
		}
		return "I don't have a space matching that right now. Want me to widen the search area or adjust the size range?"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Found %d options for you:\n", len(result.Matches))
	for i, m := range result.Matches {
		fmt.Fprintf(&b, "%d. %s, %s — ~%d sqft at $%.2f/sqft (about $%.0f/mo)\n",
			i+1, m.City, m.State, m.Sqft, m.BuyerRate, m.MonthlyEstimate)
	}
	b.WriteString("Reply with a number to hear more about one.")
	return b.String()
}

func suppressedReply(missing []string) string {
	if len(missing) == 0 {
		return "Almost there. Give me one more detail and I can pull options for you."
	}
	return fmt.Sprintf("Almost ready to search. I still need to know %s. What can you tell me?",
		joinNatural(missing))
}

func lookupReply(result *ToolResult) string {
	var parts []string
	for _, v := range result.Answers {
		parts = append(parts, v)
	}
	var b strings.Builder
	if len(parts) > 0 {
		b.WriteString("Here's what I have: ")
		b.WriteString(strings.Join(parts, "; "))
		b.WriteString(".")
	}
	if result.RoutedQuestion {
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		b.WriteString("I've asked the property owner about the rest and will text you when they get back to me.")
	}
	if b.Len() == 0 {
		return "Good question. I'm checking with the property owner and will text you as soon as I hear back."
	}
	return b.String()
}

func commitmentReply(result *ToolResult) string {
	if result.NeedsIdentity {
		return "Great, let's lock it in. I just need your full name and email address to set up the paperwork."
	}
	if result.GuaranteeLink != "" {
		return fmt.Sprintf("You're one step away. Sign the rental guarantee here and you'll get the full address and tour access right after: %s", result.GuaranteeLink)
	}
	return "You're one step away. I'm preparing your guarantee link now and will text it over in a moment."
}

// nextQuestionReply asks for the highest-value missing core field.
func nextQuestionReply(crit Criteria) string {
	switch {
	case crit.City == "" && crit.State == "":
		return "Happy to help you find space. What city or area are you looking in?"
	case crit.SqftMin == 0:
		return "Roughly how many square feet do you need?"
	case crit.UseType == "":
		return "What will you use the space for, storage, fulfillment, light assembly, or something else?"
	case crit.Timing == "":
		return "When do you need to move in?"
	case crit.DurationMonths == 0:
		return "How long do you expect to need the space?"
	case !crit.DealBreakerAnswer:
		return "Last one: any must-haves the space absolutely needs, like docks, climate control, or heavy power?"
	}
	return "Got it. Want me to pull the current options for you?"
}

func joinNatural(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	}
	return strings.Join(items[:len(items)-1], ", ") + ", and " + items[len(items)-1]
}

func responderPrompt(conv *ent.Conversation, decision PlannerDecision,
	result *ToolResult, crit Criteria) string {
	var b strings.Builder
	fmt.Fprintf(&b, "PHASE: %s\n", conv.Phase)
	fmt.Fprintf(&b, "INTENT: %s\n", decision.Intent)
	if conv.RenterFirstName != "" {
		fmt.Fprintf(&b, "BUYER NAME: %s\n", conv.RenterFirstName)
	}
	if decision.ResponseHint != "" {
		fmt.Fprintf(&b, "GUIDANCE: %s\n", decision.ResponseHint)
	}
	if conv.TurnCount == 0 {
		b.WriteString("FIRST CONTACT: yes\n")
	}

	if result != nil {
		switch result.Kind {
		case "search":
			b.WriteString("\nSEARCH RESULTS:\n")
			for i, m := range result.Matches {
				fmt.Fprintf(&b, "%d. %s, %s — ~%d sqft, $%.2f/sqft, ~$%.0f/mo, score %.0f\n",
					i+1, m.City, m.State, m.Sqft, m.BuyerRate, m.MonthlyEstimate, m.Score)
				for _, c := range m.Callouts {
					fmt.Fprintf(&b, "   - %s\n", c)
				}
			}
			if len(result.Matches) == 0 && result.DLATriggered {
				b.WriteString("No in-network matches; outreach to nearby owners was started.\n")
			}
		case "suppressed_search":
			fmt.Fprintf(&b, "\nSEARCH BLOCKED, STILL NEEDED: %s\n", strings.Join(result.Missing, "; "))
		case "lookup":
			b.WriteString("\nPROPERTY FACTS:\n")
			for k, v := range result.Answers {
				fmt.Fprintf(&b, "- %s: %s\n", k, v)
			}
			if result.RoutedQuestion {
				b.WriteString("Some questions were forwarded to the owner; say you'll follow up when they answer.\n")
			}
		case "commitment":
			if result.NeedsIdentity {
				b.WriteString("\nNEEDED: buyer full name and email before the handoff.\n")
			} else if result.GuaranteeLink != "" {
				fmt.Fprintf(&b, "\nGUARANTEE LINK (must appear verbatim): %s\n", result.GuaranteeLink)
			}
		case "tour":
			b.WriteString("\nTOUR: request sent to the owner; confirmation pending.\n")
		}
	}
	return b.String()
}
