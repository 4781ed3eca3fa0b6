package clearing

import (
	"fmt"

	"github.com/warehouse-exchange/wex/pkg/config"
)

// Use-type score levels. The matrix is asymmetric: capability supersets are
// fine (cold storage serves plain storage demand), missing capabilities are
// not.
const (
	useTypeFull    = 100.0
	useTypePartial = 60.0
	useTypeWeak    = 30.0
	useTypeNone    = 0.0
)

// UseTypeMatrix scores buyer use types against warehouse activity tiers. It
// is immutable after construction; build one at startup from config and share
// it.
type UseTypeMatrix struct {
	capabilities map[string]map[string]bool
	needs        map[string]map[string]bool
}

// NewUseTypeMatrix builds the matrix from the configured capability and need
// sets.
func NewUseTypeMatrix(cfg *config.UseTypeConfig) *UseTypeMatrix {
	m := &UseTypeMatrix{
		capabilities: make(map[string]map[string]bool, len(cfg.CapabilitySets)),
		needs:        make(map[string]map[string]bool, len(cfg.NeedSets)),
	}
	for tier, caps := range cfg.CapabilitySets {
		m.capabilities[tier] = toSet(caps)
	}
	for useType, needs := range cfg.NeedSets {
		m.needs[useType] = toSet(needs)
	}
	return m
}

func toSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[item] = true
	}
	return set
}

// Score compares the buyer's need set against the warehouse's capability set
// and returns the compatibility score with human-readable callouts.
//
// Rules: needs ⊆ caps scores 100. A disjoint overlap scores 0. Otherwise the
// score is 60 when at least as many needs are covered as missing, 30 when
// more are missing than covered. hasOffice injects the office capability
// before comparison regardless of tier.
func (m *UseTypeMatrix) Score(activityTier, useType string, hasOffice bool) (float64, []string) {
	caps, tierKnown := m.capabilities[activityTier]
	needs, useKnown := m.needs[useType]

	if !tierKnown {
		return useTypeNone, []string{fmt.Sprintf("Unknown activity tier %q", activityTier)}
	}
	if !useKnown {
		return useTypeNone, []string{fmt.Sprintf("Unknown use type %q", useType)}
	}

	effective := caps
	if hasOffice && !caps["office"] {
		effective = make(map[string]bool, len(caps)+1)
		for c := range caps {
			effective[c] = true
		}
		effective["office"] = true
	}

	var covered, missing []string
	for need := range needs {
		if effective[need] {
			covered = append(covered, need)
		} else {
			missing = append(missing, need)
		}
	}

	var callouts []string
	if hasOffice {
		if needs["office"] {
			callouts = append(callouts, "Bonus: office space")
		}
	} else if needs["office"] {
		callouts = append(callouts, "No office space")
	}

	if len(missing) == 0 {
		return useTypeFull, callouts
	}
	for _, need := range missing {
		callouts = append(callouts, "Incompatible: no "+need)
	}
	if len(covered) == 0 {
		return useTypeNone, callouts
	}
	if len(covered) >= len(missing) {
		return useTypePartial, callouts
	}
	return useTypeWeak, callouts
}
