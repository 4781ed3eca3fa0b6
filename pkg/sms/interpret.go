// Package sms implements the conversational orchestrator: a per-inbound
// pipeline of deterministic interpretation, LLM planning, readiness scoring,
// tool execution, response generation, and outbound gatekeeping, serialized
// per phone number.
package sms

import (
	"regexp"
	"strconv"
	"strings"
)

// MessageInterpretation is the deterministic extraction from one inbound
// body. Everything here comes from regex and keyword matching; the planner
// builds on top of it but never contradicts it.
type MessageInterpretation struct {
	City         string
	State        string
	SqftMin      int
	SqftMax      int
	UseType      string
	Features     []string
	Topics       []string
	OrdinalRef   int // 1-based position into the presented list; 0 = none
	WantsTour    bool
	WantsBooking bool
	WantsOptions bool
	IsGreeting   bool
	SaidYes      bool
	SaidNo       bool
	FirstName    string
	LastName     string
	Email        string
}

// HasSearchData reports whether the message carried any new search signal.
func (mi MessageInterpretation) HasSearchData() bool {
	return mi.City != "" || mi.State != "" || mi.SqftMin > 0 || mi.UseType != "" || len(mi.Features) > 0
}

var (
	sqftWithUnitRe = regexp.MustCompile(`(?i)\b(\d{1,3}(?:,\d{3})+|\d{3,7})\s*(?:sq\.?\s?ft\.?|sqft|sf|square\s+feet)\b`)
	sqftShortRe    = regexp.MustCompile(`(?i)\b(\d+(?:\.\d+)?)\s*k\b`)
	sqftRangeRe    = regexp.MustCompile(`(?i)\b(\d{1,3}(?:,\d{3})+|\d{3,7})\s*(?:-|to)\s*(\d{1,3}(?:,\d{3})+|\d{3,7})\s*(?:sq\.?\s?ft\.?|sqft|sf|square\s+feet)\b`)
	ordinalNumRe   = regexp.MustCompile(`(?i)\b(?:option|number|#)\s*(\d)\b`)
	ordinalWordRe  = regexp.MustCompile(`(?i)\bthe\s+(first|second|third|fourth|fifth)\s+one\b`)
	nameRe         = regexp.MustCompile(`(?i)\b(?:i'?m|i am|my name is|this is)\s+([A-Z][a-z]+)(?:\s+([A-Z][a-z]+))?`)
	emailRe        = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	tokenSplitRe   = regexp.MustCompile(`[^a-zA-Z0-9']+`)
)

// Interpret runs the full deterministic extraction over one message body.
func Interpret(body string) MessageInterpretation {
	mi := MessageInterpretation{}
	trimmed := strings.TrimSpace(body)
	lower := strings.ToLower(trimmed)

	mi.IsGreeting = isGreeting(lower)
	mi.WantsOptions = matchesAny(lower, showOptionsPhrases)

	mi.City, mi.State = extractLocation(lower, trimmed)
	mi.SqftMin, mi.SqftMax = extractSqft(trimmed)
	mi.UseType = extractUseType(lower)
	mi.Features = extractKeys(lower, featureKeywords)
	mi.Topics = extractKeys(lower, topicKeywords)
	mi.OrdinalRef = extractOrdinal(trimmed)

	mi.WantsTour = strings.Contains(lower, "tour") || strings.Contains(lower, "visit") ||
		strings.Contains(lower, "see it in person") || strings.Contains(lower, "walk through")
	mi.WantsBooking = strings.Contains(lower, "book") || strings.Contains(lower, "take it") ||
		strings.Contains(lower, "let's do it") || strings.Contains(lower, "sign me up") ||
		strings.Contains(lower, "move forward") || strings.Contains(lower, "commit")

	mi.SaidYes = isAffirmative(lower)
	mi.SaidNo = isNegative(lower)

	if m := nameRe.FindStringSubmatch(trimmed); m != nil {
		mi.FirstName = m[1]
		mi.LastName = m[2]
	}
	if m := emailRe.FindString(trimmed); m != "" {
		mi.Email = strings.ToLower(m)
	}
	return mi
}

func isGreeting(lower string) bool {
	cleaned := strings.Trim(lower, " .!?,")
	for _, g := range greetingPhrases {
		if cleaned == g {
			return true
		}
	}
	return false
}

func matchesAny(lower string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

func isAffirmative(lower string) bool {
	cleaned := strings.Trim(lower, " .!?,")
	switch cleaned {
	case "yes", "yep", "yeah", "yup", "sure", "ok", "okay", "sounds good", "correct", "right":
		return true
	}
	return false
}

func isNegative(lower string) bool {
	cleaned := strings.Trim(lower, " .!?,")
	switch cleaned {
	case "no", "nope", "nah", "not really", "no thanks", "none":
		return true
	}
	return false
}

// extractLocation finds a catalog city and/or a state mention. A catalog hit
// carries its state; an explicit state mention wins over the implied one.
func extractLocation(lower, original string) (city, state string) {
	for c, st := range cityCatalog {
		if strings.Contains(lower, c) {
			city = titleCase(c)
			state = st
			break
		}
	}
	for name, code := range stateNames {
		// A catalog city containing the state name ("new york") must not
		// double-count it.
		if strings.Contains(lower, name) && !strings.EqualFold(city, titleCase(name)) {
			state = code
			break
		}
	}
	for _, tok := range strings.Fields(original) {
		t := strings.Trim(tok, ".,!?")
		if len(t) == 2 && t == strings.ToUpper(t) && stateAbbrevs[t] {
			state = t
			break
		}
	}
	return city, state
}

// extractSqft handles "10,000 sqft", "10000 sf", "8000-12000 sqft", and the
// short "10k" form. A single figure becomes a +-20% band.
func extractSqft(body string) (min, max int) {
	if m := sqftRangeRe.FindStringSubmatch(body); m != nil {
		lo, hi := parseNumber(m[1]), parseNumber(m[2])
		if lo > 0 && hi >= lo {
			return lo, hi
		}
	}
	if m := sqftWithUnitRe.FindStringSubmatch(body); m != nil {
		if n := parseNumber(m[1]); n > 0 {
			return spread(n)
		}
	}
	if m := sqftShortRe.FindStringSubmatch(body); m != nil {
		f, err := strconv.ParseFloat(m[1], 64)
		if err == nil && f > 0 {
			return spread(int(f * 1000))
		}
	}
	return 0, 0
}

func parseNumber(s string) int {
	n, err := strconv.Atoi(strings.ReplaceAll(s, ",", ""))
	if err != nil {
		return 0
	}
	return n
}

// spread turns a single figure into the band the clearing engine expects.
func spread(target int) (min, max int) {
	return int(float64(target) * 0.8), int(float64(target) * 1.2)
}

func extractUseType(lower string) string {
	// Longer keywords first so "cold storage" beats "storage".
	best, bestLen := "", 0
	for kw, useType := range useTypeKeywords {
		if strings.Contains(lower, kw) && len(kw) > bestLen {
			best, bestLen = useType, len(kw)
		}
	}
	return best
}

func extractKeys(lower string, keywords map[string]string) []string {
	seen := map[string]bool{}
	var out []string
	for kw, key := range keywords {
		if strings.Contains(lower, kw) && !seen[key] {
			seen[key] = true
			out = append(out, key)
		}
	}
	return out
}

func extractOrdinal(body string) int {
	if m := ordinalNumRe.FindStringSubmatch(body); m != nil {
		n, _ := strconv.Atoi(m[1])
		return n
	}
	if m := ordinalWordRe.FindStringSubmatch(body); m != nil {
		return ordinalWords[strings.ToLower(m[1])]
	}
	return 0
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		if len(w) > 0 {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
