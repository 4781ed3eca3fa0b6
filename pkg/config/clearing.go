package config

import "time"

// DimensionWeights are the six MCDA dimension weights. They must sum to 1.0
// (validated at startup); the composite score is the weighted sum of the six
// dimension scores.
type DimensionWeights struct {
	Location float64 `yaml:"location"`
	Size     float64 `yaml:"size"`
	UseType  float64 `yaml:"use_type"`
	Feature  float64 `yaml:"feature"`
	Timing   float64 `yaml:"timing"`
	Budget   float64 `yaml:"budget"`
}

// Sum returns the total of all six weights.
func (w DimensionWeights) Sum() float64 {
	return w.Location + w.Size + w.UseType + w.Feature + w.Timing + w.Budget
}

// ClearingConfig tunes the clearing engine pipeline.
type ClearingConfig struct {
	Weights DimensionWeights `yaml:"weights"`

	// MaxTier1 is how many Tier-1 matches are persisted and returned.
	MaxTier1 int `yaml:"max_tier1"`

	// MaxTier2 is how many Tier-2 candidates are disclosed.
	MaxTier2 int `yaml:"max_tier2"`

	// LLMCandidates is how many top MCDA survivors enter the feature pass.
	LLMCandidates int `yaml:"llm_candidates"`

	// GeoGateCapMiles caps the buyer radius in the strict pre-filter.
	GeoGateCapMiles float64 `yaml:"geo_gate_cap_miles"`

	// KNNLimit and KNNRadiusMiles drive the nearest-neighbor fallback when
	// the strict filter yields zero in-network candidates.
	KNNLimit       int     `yaml:"knn_limit"`
	KNNRadiusMiles float64 `yaml:"knn_radius_miles"`

	// FeaturePassTimeout bounds the whole LLM feature-alignment pass.
	FeaturePassTimeout time.Duration `yaml:"feature_pass_timeout"`

	// FeaturePassConcurrency caps parallel LLM scoring calls.
	FeaturePassConcurrency int `yaml:"feature_pass_concurrency"`
}

// DefaultClearingConfig returns the built-in clearing defaults.
func DefaultClearingConfig() *ClearingConfig {
	return &ClearingConfig{
		Weights: DimensionWeights{
			Location: 0.20,
			Size:     0.15,
			UseType:  0.15,
			Feature:  0.20,
			Timing:   0.10,
			Budget:   0.20,
		},
		MaxTier1:               3,
		MaxTier2:               5,
		LLMCandidates:          6,
		GeoGateCapMiles:        50,
		KNNLimit:               5,
		KNNRadiusMiles:         100,
		FeaturePassTimeout:     60 * time.Second,
		FeaturePassConcurrency: 6,
	}
}

// PricingConfig holds the buyer-rate derivation parameters. The buyer rate is
// supplier_rate x (1+margin) x (1+guarantee), always rounded up to the cent.
type PricingConfig struct {
	MarginPct    float64 `yaml:"margin_pct"`
	GuaranteePct float64 `yaml:"guarantee_pct"`
}

// DefaultPricingConfig returns the built-in pricing defaults.
func DefaultPricingConfig() *PricingConfig {
	return &PricingConfig{
		MarginPct:    0.20,
		GuaranteePct: 0.06,
	}
}

// DLAConfig tunes demand-led activation outreach.
type DLAConfig struct {
	// TokenTTL is the lifetime of an outreach token.
	TokenTTL time.Duration `yaml:"token_ttl"`

	// OutreachCooldown is the minimum gap between outreaches to one warehouse.
	OutreachCooldown time.Duration `yaml:"outreach_cooldown"`

	// MaxOutreachPerNeed caps tokens created by one clearing run.
	MaxOutreachPerNeed int `yaml:"max_outreach_per_need"`

	// Rate blend: suggested = budget_weight x buyer_ceiling + network_weight x
	// in-network state average, clamped to the market band.
	BudgetBlendWeight  float64 `yaml:"budget_blend_weight"`
	NetworkBlendWeight float64 `yaml:"network_blend_weight"`

	// SeedMatchScore is the composite assigned to the Match created when a
	// DLA supplier converts.
	SeedMatchScore float64 `yaml:"seed_match_score"`

	// MarketRateTTL is how long a cached zipcode rate band stays fresh.
	MarketRateTTL time.Duration `yaml:"market_rate_ttl"`
}

// DefaultDLAConfig returns the built-in DLA defaults.
func DefaultDLAConfig() *DLAConfig {
	return &DLAConfig{
		TokenTTL:           48 * time.Hour,
		OutreachCooldown:   30 * 24 * time.Hour,
		MaxOutreachPerNeed: 5,
		BudgetBlendWeight:  0.60,
		NetworkBlendWeight: 0.40,
		SeedMatchScore:     85,
		MarketRateTTL:      30 * 24 * time.Hour,
	}
}
