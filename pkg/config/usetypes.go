package config

// UseTypeConfig is the use-type compatibility matrix loaded as data: each
// warehouse activity tier maps to a capability set, each buyer use type maps
// to a need set. Scoring compares need sets against capability sets; the
// matrix is asymmetric on purpose (cold storage serves plain storage demand,
// never the reverse).
type UseTypeConfig struct {
	// CapabilitySets keys are TruthCore activity tiers.
	CapabilitySets map[string][]string `yaml:"capability_sets"`

	// NeedSets keys are BuyerNeed use types.
	NeedSets map[string][]string `yaml:"need_sets"`
}

// DefaultUseTypeConfig returns the built-in matrix. YAML entries merge over
// these, so an operator can add a tier or use type without a deploy.
func DefaultUseTypeConfig() *UseTypeConfig {
	return &UseTypeConfig{
		CapabilitySets: map[string][]string{
			"storage_only":           {"storage"},
			"storage_office":         {"storage", "office"},
			"storage_light_assembly": {"storage", "light_assembly", "ecommerce_fulfillment"},
			"cold_storage":           {"storage", "cold_storage", "food_grade"},
		},
		NeedSets: map[string][]string{
			"storage":               {"storage"},
			"office":                {"office"},
			"storage_office":        {"storage", "office"},
			"ecommerce_fulfillment": {"storage", "light_assembly"},
			"cold_storage":          {"cold_storage"},
			"food_grade":            {"cold_storage", "food_grade"},
			"manufacturing_light":   {"light_assembly"},
			"general":               {"storage"},
		},
	}
}

// Capabilities returns the capability set for an activity tier. The second
// return is false when the tier is unknown.
func (u *UseTypeConfig) Capabilities(activityTier string) ([]string, bool) {
	caps, ok := u.CapabilitySets[activityTier]
	return caps, ok
}

// Needs returns the need set for a buyer use type. The second return is
// false when the use type is unknown.
func (u *UseTypeConfig) Needs(useType string) ([]string, bool) {
	needs, ok := u.NeedSets[useType]
	return needs, ok
}
