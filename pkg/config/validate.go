package config

import (
	"fmt"
	"math"
	"slices"
	"time"
)

// weightSumTolerance allows for float literals like 0.20 that do not sum to
// exactly 1.0 in binary.
const weightSumTolerance = 1e-6

// validate performs comprehensive validation on the merged configuration.
// Errors carry the section and field so an operator can fix wex.yaml without
// reading source.
func validate(cfg *Config) error {
	if err := validateClearing(cfg.Clearing); err != nil {
		return err
	}
	if err := validatePricing(cfg.Pricing); err != nil {
		return err
	}
	if err := validateDLA(cfg.DLA); err != nil {
		return err
	}
	if err := validateUseTypes(cfg.UseTypes); err != nil {
		return err
	}
	if err := validateSMS(cfg.SMS); err != nil {
		return err
	}
	if err := validateScheduler(cfg.Scheduler); err != nil {
		return err
	}
	if err := validateQueue(cfg.Queue); err != nil {
		return err
	}
	if err := validateGeo(cfg.Geo); err != nil {
		return err
	}
	if cfg.LLM.Model == "" {
		return NewValidationError("llm", "model", ErrMissingRequiredField)
	}
	return nil
}

func validateClearing(c *ClearingConfig) error {
	if math.Abs(c.Weights.Sum()-1.0) > weightSumTolerance {
		return NewValidationError("clearing", "weights",
			fmt.Errorf("%w: dimension weights sum to %.4f, want 1.0", ErrInvalidValue, c.Weights.Sum()))
	}
	if c.MaxTier1 <= 0 {
		return NewValidationError("clearing", "max_tier1", ErrInvalidValue)
	}
	if c.MaxTier2 < 0 {
		return NewValidationError("clearing", "max_tier2", ErrInvalidValue)
	}
	if c.LLMCandidates < c.MaxTier1 {
		return NewValidationError("clearing", "llm_candidates",
			fmt.Errorf("%w: must be >= max_tier1 (%d)", ErrInvalidValue, c.MaxTier1))
	}
	if c.GeoGateCapMiles <= 0 || c.KNNRadiusMiles <= 0 {
		return NewValidationError("clearing", "geo_gate_cap_miles", ErrInvalidValue)
	}
	if c.KNNLimit <= 0 {
		return NewValidationError("clearing", "knn_limit", ErrInvalidValue)
	}
	return nil
}

func validatePricing(p *PricingConfig) error {
	if p.MarginPct < 0 || p.MarginPct >= 1 {
		return NewValidationError("pricing", "margin_pct", ErrInvalidValue)
	}
	if p.GuaranteePct < 0 || p.GuaranteePct >= 1 {
		return NewValidationError("pricing", "guarantee_pct", ErrInvalidValue)
	}
	return nil
}

func validateDLA(d *DLAConfig) error {
	if d.TokenTTL <= 0 {
		return NewValidationError("dla", "token_ttl", ErrInvalidValue)
	}
	if d.MaxOutreachPerNeed <= 0 {
		return NewValidationError("dla", "max_outreach_per_need", ErrInvalidValue)
	}
	if math.Abs(d.BudgetBlendWeight+d.NetworkBlendWeight-1.0) > weightSumTolerance {
		return NewValidationError("dla", "budget_blend_weight",
			fmt.Errorf("%w: blend weights must sum to 1.0", ErrInvalidValue))
	}
	if d.SeedMatchScore < 0 || d.SeedMatchScore > 100 {
		return NewValidationError("dla", "seed_match_score", ErrInvalidValue)
	}
	return nil
}

func validateUseTypes(u *UseTypeConfig) error {
	if len(u.CapabilitySets) == 0 {
		return NewValidationError("use_types", "capability_sets", ErrMissingRequiredField)
	}
	if len(u.NeedSets) == 0 {
		return NewValidationError("use_types", "need_sets", ErrMissingRequiredField)
	}
	for tier, caps := range u.CapabilitySets {
		if len(caps) == 0 {
			return NewValidationError("use_types", tier,
				fmt.Errorf("%w: empty capability set", ErrInvalidValue))
		}
	}
	for useType, needs := range u.NeedSets {
		if len(needs) == 0 {
			return NewValidationError("use_types", useType,
				fmt.Errorf("%w: empty need set", ErrInvalidValue))
		}
	}
	return nil
}

func validateSMS(s *SMSConfig) error {
	if s.MaxInboundChars <= 0 {
		return NewValidationError("sms", "max_inbound_chars", ErrInvalidValue)
	}
	if s.MinReplyChars <= 0 || s.MaxReplyChars <= s.MinReplyChars {
		return NewValidationError("sms", "max_reply_chars", ErrInvalidValue)
	}
	if s.MaxFirstReplyChars < s.MaxReplyChars {
		return NewValidationError("sms", "max_first_reply_chars",
			fmt.Errorf("%w: must be >= max_reply_chars", ErrInvalidValue))
	}
	if s.MaxPolishAttempts <= 0 {
		return NewValidationError("sms", "max_polish_attempts", ErrInvalidValue)
	}
	if s.ReadinessCoreThreshold <= 0 || s.ReadinessCoreThreshold > 1 {
		return NewValidationError("sms", "readiness_core_threshold", ErrInvalidValue)
	}
	for phase := range s.StallRules {
		if !slices.Contains(ConversationPhases, phase) {
			return NewValidationError("sms", "stall_rules",
				fmt.Errorf("%w: unknown phase %q", ErrInvalidValue, phase))
		}
	}
	return nil
}

func validateScheduler(s *SchedulerConfig) error {
	intervals := map[string]time.Duration{
		"deal_ping_check_interval":    s.DealPingCheckInterval,
		"deadline_check_interval":     s.DeadlineCheckInterval,
		"follow_up_interval":          s.FollowUpInterval,
		"qa_deadline_interval":        s.QADeadlineInterval,
		"knowledge_backfill_interval": s.KnowledgeBackfillInterval,
		"reengagement_interval":       s.ReengagementInterval,
	}
	for field, d := range intervals {
		if d <= 0 {
			return NewValidationError("scheduler", field, ErrInvalidValue)
		}
	}
	dailies := map[string]string{
		"tour_reminders_at":     s.TourRemindersAt,
		"payment_generation_at": s.PaymentGenerationAt,
		"payment_reminders_at":  s.PaymentRemindersAt,
		"stale_flag_at":         s.StaleFlagAt,
		"auto_activate_at":      s.AutoActivateAt,
		"renewal_prompts_at":    s.RenewalPromptsAt,
	}
	for field, hhmm := range dailies {
		if _, err := time.Parse("15:04", hhmm); err != nil {
			return NewValidationError("scheduler", field,
				fmt.Errorf("%w: %q is not HH:MM", ErrInvalidValue, hhmm))
		}
	}
	return nil
}

func validateQueue(q *QueueConfig) error {
	if q.WorkerCount <= 0 {
		return NewValidationError("queue", "worker_count", ErrInvalidValue)
	}
	if q.MaxConcurrentMessages < q.WorkerCount {
		return NewValidationError("queue", "max_concurrent_messages",
			fmt.Errorf("%w: must be >= worker_count", ErrInvalidValue))
	}
	if q.MessageTimeout <= 0 || q.PollInterval <= 0 {
		return NewValidationError("queue", "message_timeout", ErrInvalidValue)
	}
	if q.OrphanThreshold <= 0 || q.OrphanDetectionInterval <= 0 {
		return NewValidationError("queue", "orphan_threshold", ErrInvalidValue)
	}
	return nil
}

func validateGeo(g *GeoConfig) error {
	if g.CacheSize <= 0 {
		return NewValidationError("geo", "cache_size", ErrInvalidValue)
	}
	if g.SearchRateLimitPerMinute <= 0 {
		return NewValidationError("geo", "search_rate_limit_per_minute", ErrInvalidValue)
	}
	return nil
}
