package services

import (
	"context"
	"fmt"

	"github.com/warehouse-exchange/wex/ent"
	"github.com/warehouse-exchange/wex/ent/propertyknowledge"
	"github.com/warehouse-exchange/wex/ent/truthcore"
)

// DetailFetcher answers property-attribute questions from stored data:
// structured TruthCore fields first, then the learned knowledge base. Keys it
// cannot answer come back as misses so the caller can escalate them to the
// supplier.
type DetailFetcher struct {
	client *ent.Client
}

// NewDetailFetcher creates a new DetailFetcher
func NewDetailFetcher(client *ent.Client) *DetailFetcher {
	return &DetailFetcher{client: client}
}

// Fetch resolves the requested attribute keys for one warehouse.
func (f *DetailFetcher) Fetch(ctx context.Context, warehouseID string, keys []string) (answers map[string]string, misses []string, err error) {
	core, err := f.client.TruthCore.Query().
		Where(truthcore.WarehouseIDEQ(warehouseID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, nil, fmt.Errorf("failed to load truth core: %w", err)
	}

	answers = make(map[string]string, len(keys))
	var unknown []string
	for _, key := range keys {
		if v, ok := coreAttribute(core, key); ok {
			answers[key] = v
			continue
		}
		unknown = append(unknown, key)
	}
	if len(unknown) == 0 {
		return answers, nil, nil
	}

	rows, err := f.client.PropertyKnowledge.Query().
		Where(
			propertyknowledge.WarehouseIDEQ(warehouseID),
			propertyknowledge.TopicIn(unknown...),
		).
		All(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query knowledge base: %w", err)
	}
	known := make(map[string]string, len(rows))
	for _, row := range rows {
		known[row.Topic] = row.Content
	}
	for _, key := range unknown {
		if v, ok := known[key]; ok {
			answers[key] = v
		} else {
			misses = append(misses, key)
		}
	}
	return answers, misses, nil
}

// coreAttribute maps an attribute key to its TruthCore field.
func coreAttribute(core *ent.TruthCore, key string) (string, bool) {
	if core == nil {
		return "", false
	}
	switch key {
	case "clear_height":
		if core.ClearHeightFt > 0 {
			return fmt.Sprintf("%.0f ft clear height", core.ClearHeightFt), true
		}
	case "dock_doors":
		if core.DockDoors > 0 {
			return fmt.Sprintf("%d dock doors", core.DockDoors), true
		}
	case "power":
		if core.PowerService != "" {
			return core.PowerService, true
		}
	case "office":
		if core.HasOfficeSpace {
			return "office space included", true
		}
		return "no office space", true
	case "sprinkler":
		if core.HasSprinkler {
			return "sprinkler system installed", true
		}
		return "no sprinkler system", true
	case "sqft":
		if core.MaxSqft > 0 {
			return fmt.Sprintf("%d-%d sqft available", core.MinSqft, core.MaxSqft), true
		}
	case "activity_tier":
		return string(core.ActivityTier), true
	}
	return "", false
}
