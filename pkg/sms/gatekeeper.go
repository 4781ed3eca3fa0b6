package sms

import (
	"regexp"
	"strings"

	"github.com/warehouse-exchange/wex/pkg/config"
)

// Inbound rejection reasons.
const (
	RejectEmpty     = "empty"
	RejectTooLong   = "too_long"
	RejectProfanity = "profanity"
)

// CheckInbound gates a raw inbound body. An empty return means the message
// may enter the pipeline.
func CheckInbound(body string, cfg *config.SMSConfig) string {
	trimmed := strings.TrimSpace(body)
	if trimmed == "" {
		return RejectEmpty
	}
	if len(trimmed) > cfg.MaxInboundChars {
		return RejectTooLong
	}
	if containsProfanity(trimmed) {
		return RejectProfanity
	}
	return ""
}

// OutboundContext tells the gatekeeper which context-specific rules apply to
// the candidate reply.
type OutboundContext struct {
	FirstMessage   bool
	Commitment     bool // reply must carry the guarantee link
	TourScheduling bool // reply must talk about scheduling
	AwaitingAnswer bool // reply must acknowledge the routed question
}

var (
	urlRe        = regexp.MustCompile(`https?://\S+`)
	phoneRe      = regexp.MustCompile(`\+?1?[\s.\-]?\(?\d{3}\)?[\s.\-]?\d{3}[\s.\-]?\d{4}`)
	repeatCharRe = regexp.MustCompile(`(.)\1{5,}`)
)

// CheckOutbound returns every rule the candidate reply violates; an empty
// slice means it can be sent as-is.
func CheckOutbound(reply string, octx OutboundContext, cfg *config.SMSConfig) []string {
	var violations []string
	trimmed := strings.TrimSpace(reply)

	if len(trimmed) < cfg.MinReplyChars {
		violations = append(violations, "too_short")
	}
	limit := cfg.MaxReplyChars
	if octx.FirstMessage || urlRe.MatchString(trimmed) {
		limit = cfg.MaxFirstReplyChars
	}
	if len(trimmed) > limit {
		violations = append(violations, "too_long")
	}
	if repeatCharRe.MatchString(trimmed) {
		violations = append(violations, "repeated_characters")
	}
	if letterRatio(trimmed) < 0.5 {
		violations = append(violations, "low_letter_ratio")
	}
	if worst := maxWordRepetition(trimmed); worst > cfg.MaxWordRepetition {
		violations = append(violations, "word_repetition")
	}
	if len(phoneRe.FindAllString(trimmed, -1)) >= 2 {
		violations = append(violations, "multiple_phone_numbers")
	}
	if len(emailRe.FindAllString(trimmed, -1)) >= 2 {
		violations = append(violations, "multiple_emails")
	}
	if containsProfanity(trimmed) {
		violations = append(violations, "profanity")
	}

	lower := strings.ToLower(trimmed)
	if octx.Commitment && !urlRe.MatchString(trimmed) {
		violations = append(violations, "commitment_without_link")
	}
	if octx.TourScheduling && !containsSchedulingLanguage(lower) {
		violations = append(violations, "tour_without_scheduling")
	}
	if octx.AwaitingAnswer && !containsAcknowledgement(lower) {
		violations = append(violations, "missing_acknowledgement")
	}
	return violations
}

func letterRatio(s string) float64 {
	if s == "" {
		return 0
	}
	letters := 0
	total := 0
	for _, r := range s {
		if r == ' ' {
			continue
		}
		total++
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			letters++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(letters) / float64(total)
}

func maxWordRepetition(s string) int {
	counts := map[string]int{}
	worst := 0
	for _, tok := range tokenSplitRe.Split(strings.ToLower(s), -1) {
		if tok == "" || stopWords[tok] || len(tok) < 2 {
			continue
		}
		counts[tok]++
		if counts[tok] > worst {
			worst = counts[tok]
		}
	}
	return worst
}

func containsSchedulingLanguage(lower string) bool {
	for _, kw := range []string{"schedule", "time", "when", "tomorrow", "today",
		"morning", "afternoon", "available", "visit", "tour", "am", "pm"} {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func containsAcknowledgement(lower string) bool {
	for _, kw := range []string{"checking", "asked", "waiting", "follow up",
		"followed up", "find out", "get back", "hear back", "question"} {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// TrimToLimit cuts a fallback message to the limit at the last full sentence,
// or failing that the last word boundary.
func TrimToLimit(s string, limit int) string {
	s = strings.TrimSpace(s)
	if len(s) <= limit {
		return s
	}
	cut := s[:limit]
	if idx := strings.LastIndexAny(cut, ".!?"); idx > 0 {
		return strings.TrimSpace(cut[:idx+1])
	}
	if idx := strings.LastIndex(cut, " "); idx > 0 {
		return strings.TrimSpace(cut[:idx])
	}
	return cut
}
