package sms

import (
	"encoding/json"

	"github.com/warehouse-exchange/wex/pkg/config"
)

// Criteria is the merged search state of one conversation. It round-trips
// through the Conversation.criteria JSON column.
type Criteria struct {
	City              string   `json:"city,omitempty"`
	State             string   `json:"state,omitempty"`
	SqftMin           int      `json:"sqft_min,omitempty"`
	SqftMax           int      `json:"sqft_max,omitempty"`
	UseType           string   `json:"use_type,omitempty"`
	Features          []string `json:"features,omitempty"`
	GoodsType         string   `json:"goods_type,omitempty"`
	Timing            string   `json:"timing,omitempty"`
	DurationMonths    int      `json:"duration_months,omitempty"`
	MaxBudgetPerSqft  float64  `json:"max_budget_per_sqft,omitempty"`
	DealBreakerAsked  bool     `json:"deal_breaker_asked,omitempty"`
	DealBreakerAnswer bool     `json:"deal_breaker_answered,omitempty"`
}

// CriteriaFromMap decodes the stored criteria column.
func CriteriaFromMap(m map[string]interface{}) Criteria {
	var c Criteria
	if len(m) == 0 {
		return c
	}
	data, err := json.Marshal(m)
	if err != nil {
		return c
	}
	_ = json.Unmarshal(data, &c)
	return c
}

// ToMap encodes criteria for the JSON column.
func (c Criteria) ToMap() map[string]interface{} {
	data, err := json.Marshal(c)
	if err != nil {
		return nil
	}
	var m map[string]interface{}
	_ = json.Unmarshal(data, &m)
	return m
}

// Merge folds newly interpreted data into the criteria; existing values are
// only overwritten by new explicit signal, never cleared.
func (c Criteria) Merge(mi MessageInterpretation) Criteria {
	if mi.City != "" {
		c.City = mi.City
	}
	if mi.State != "" {
		c.State = mi.State
	}
	if mi.SqftMin > 0 {
		c.SqftMin, c.SqftMax = mi.SqftMin, mi.SqftMax
	}
	if mi.UseType != "" {
		c.UseType = mi.UseType
	}
	for _, f := range mi.Features {
		if !contains(c.Features, f) {
			c.Features = append(c.Features, f)
		}
	}
	if c.DealBreakerAsked && (mi.SaidYes || mi.SaidNo) && !c.DealBreakerAnswer {
		c.DealBreakerAnswer = true
	}
	return c
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

// Readiness scores how searchable the criteria are. Core fields carry the
// weight; each extra signal adds a little.
func (c Criteria) Readiness() float64 {
	score := 0.0
	if c.City != "" || c.State != "" {
		score += 0.30
	}
	if c.SqftMin > 0 {
		score += 0.25
	}
	if c.UseType != "" {
		score += 0.25
	}
	for _, extra := range []bool{
		len(c.Features) > 0,
		c.GoodsType != "",
		c.Timing != "",
		c.DurationMonths > 0,
	} {
		if extra {
			score += 0.10
		}
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}

// CoreReady reports whether the search-gating core fields clear the
// threshold.
func (c Criteria) CoreReady(cfg *config.SMSConfig) bool {
	core := 0.0
	if c.City != "" || c.State != "" {
		core += 0.30
	}
	if c.SqftMin > 0 {
		core += 0.25
	}
	if c.UseType != "" {
		core += 0.25
	}
	return core >= cfg.ReadinessCoreThreshold
}

// QualifyingComplete reports whether a search may actually fire: core fields
// plus timing, duration, and an answered deal-breaker question.
func (c Criteria) QualifyingComplete(cfg *config.SMSConfig) bool {
	return c.CoreReady(cfg) && c.Timing != "" && c.DurationMonths > 0 && c.DealBreakerAnswer
}

// MissingQualifying lists the outstanding qualifying questions, for the
// suppressed-search prompt.
func (c Criteria) MissingQualifying() []string {
	var missing []string
	if c.Timing == "" {
		missing = append(missing, "when you need the space")
	}
	if c.DurationMonths == 0 {
		missing = append(missing, "how long you need it for")
	}
	if !c.DealBreakerAnswer {
		missing = append(missing, "any absolute requirements the space must have")
	}
	return missing
}
