package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/warehouse-exchange/wex/ent"
	"github.com/warehouse-exchange/wex/pkg/geo"
)

// BuyerNeedService creates demand records from web forms and SMS
// conversations, geocoding the stated location up front so clearing can use
// radius math instead of state matching.
type BuyerNeedService struct {
	client   *ent.Client
	geocoder geo.Geocoder
	now      func() time.Time
}

// NewBuyerNeedService creates a new BuyerNeedService
func NewBuyerNeedService(client *ent.Client, geocoder geo.Geocoder) *BuyerNeedService {
	return &BuyerNeedService{client: client, geocoder: geocoder, now: time.Now}
}

// CreateInput is one demand record.
type CreateInput struct {
	BuyerID         string
	Phone           string
	City            string
	State           string
	RadiusMiles     float64
	MinSqft         int
	MaxSqft         int
	UseType         string
	NeededFrom      *time.Time
	DurationMonths  int
	MaxBudget       *float64
	Requirements    map[string]interface{}
}

func (in CreateInput) validate() error {
	if strings.TrimSpace(in.City) == "" && strings.TrimSpace(in.State) == "" {
		return NewValidationError("location", "city or state is required")
	}
	if in.MinSqft <= 0 || in.MaxSqft < in.MinSqft {
		return NewValidationError("sqft", "min must be positive and max >= min")
	}
	if in.UseType == "" {
		return NewValidationError("use_type", "is required")
	}
	return nil
}

// Create validates, geocodes, and persists a buyer need. Geocoding failure
// degrades to state-level matching rather than blocking the search.
func (s *BuyerNeedService) Create(ctx context.Context, in CreateInput) (*ent.BuyerNeed, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	state := strings.ToUpper(strings.TrimSpace(in.State))
	create := s.client.BuyerNeed.Create().
		SetID(uuid.NewString()).
		SetCity(strings.TrimSpace(in.City)).
		SetState(state).
		SetMinSqft(in.MinSqft).
		SetMaxSqft(in.MaxSqft).
		SetUseType(in.UseType).
		SetNillableNeededFrom(in.NeededFrom).
		SetNillableMaxBudgetPerSqft(in.MaxBudget)
	if in.BuyerID != "" {
		create.SetBuyerID(in.BuyerID)
	}
	if in.Phone != "" {
		create.SetPhone(in.Phone)
	}
	if in.RadiusMiles > 0 {
		create.SetRadiusMiles(in.RadiusMiles)
	}
	if in.DurationMonths > 0 {
		create.SetDurationMonths(in.DurationMonths)
	}
	if len(in.Requirements) > 0 {
		create.SetRequirements(in.Requirements)
	}

	if loc := s.resolve(ctx, in.City, state); loc != nil {
		create.SetLat(loc.Lat).SetLng(loc.Lng)
	}

	need, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create buyer need: %w", err)
	}
	slog.Info("Buyer need created",
		"buyer_need_id", need.ID, "city", need.City, "state", need.State,
		"sqft", fmt.Sprintf("%d-%d", need.MinSqft, need.MaxSqft))
	return need, nil
}

// resolve geocodes best-effort. Not-found and non-commercial areas are final
// misses; rate limiting and transient failures degrade silently to
// state-level matching.
func (s *BuyerNeedService) resolve(ctx context.Context, city, state string) *geo.Location {
	if s.geocoder == nil || strings.TrimSpace(city) == "" {
		return nil
	}
	loc, err := s.geocoder.Geocode(ctx, city, state)
	if err != nil {
		level := slog.LevelWarn
		if errors.Is(err, geo.ErrNotFound) || errors.Is(err, geo.ErrNotCommercial) {
			level = slog.LevelInfo
		}
		slog.Log(ctx, level, "Geocoding unavailable, degrading to state matching",
			"city", city, "state", state, "error", err)
		return nil
	}
	return loc
}
