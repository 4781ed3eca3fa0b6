package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/warehouse-exchange/wex/ent"
	"github.com/warehouse-exchange/wex/ent/match"
	"github.com/warehouse-exchange/wex/ent/supplieragreement"
	"github.com/warehouse-exchange/wex/ent/togglehistory"
	"github.com/warehouse-exchange/wex/ent/truthcore"
	"github.com/warehouse-exchange/wex/ent/warehouse"
	"github.com/warehouse-exchange/wex/pkg/database"
)

// toggleGrace is how long presented matches stay honored after a supplier
// switches their listing off.
const toggleGrace = 48 * time.Hour

// WarehouseService handles supplier-side listing lifecycle: activation into
// the network and the availability toggle.
type WarehouseService struct {
	client *ent.Client
	now    func() time.Time
}

// NewWarehouseService creates a new WarehouseService
func NewWarehouseService(client *ent.Client) *WarehouseService {
	return &WarehouseService{client: client, now: time.Now}
}

// ActivateInput is the listing data required to bring a warehouse in-network.
type ActivateInput struct {
	WarehouseID     string
	MinSqft         int
	MaxSqft         int
	ActivityTier    truthcore.ActivityTier
	SupplierRate    float64
	AvailableFrom   *time.Time
	DockDoors       int
	ClearHeightFt   float64
	HasOfficeSpace  bool
	HasSprinkler    bool
	PowerService    string
	ActorID         string
}

func (in ActivateInput) validate() error {
	if in.WarehouseID == "" {
		return NewValidationError("warehouse_id", "is required")
	}
	if in.MinSqft <= 0 || in.MaxSqft < in.MinSqft {
		return NewValidationError("sqft", "min must be positive and max >= min")
	}
	if in.SupplierRate <= 0 {
		return NewValidationError("supplier_rate", "must be positive")
	}
	return nil
}

// Activate creates or updates the TruthCore, switches it on, flips the
// warehouse in-network, and writes the toggle and agreement records — one
// transaction.
func (s *WarehouseService) Activate(ctx context.Context, in ActivateInput) (*ent.TruthCore, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	var result *ent.TruthCore
	err := database.WithTx(ctx, s.client, func(tx *ent.Tx) error {
		wh, err := tx.Warehouse.Get(ctx, in.WarehouseID)
		if err != nil {
			if ent.IsNotFound(err) {
				return fmt.Errorf("warehouse %s: %w", in.WarehouseID, ErrNotFound)
			}
			return fmt.Errorf("failed to load warehouse: %w", err)
		}

		existing, err := tx.TruthCore.Query().
			Where(truthcore.WarehouseIDEQ(wh.ID)).
			Only(ctx)
		switch {
		case err == nil:
			result, err = tx.TruthCore.UpdateOneID(existing.ID).
				SetMinSqft(in.MinSqft).
				SetMaxSqft(in.MaxSqft).
				SetActivityTier(in.ActivityTier).
				SetSupplierRatePerSqft(in.SupplierRate).
				SetNillableAvailableFrom(in.AvailableFrom).
				SetDockDoors(in.DockDoors).
				SetClearHeightFt(in.ClearHeightFt).
				SetHasOfficeSpace(in.HasOfficeSpace).
				SetHasSprinkler(in.HasSprinkler).
				SetPowerService(in.PowerService).
				SetActivationStatus(truthcore.ActivationStatusOn).
				Save(ctx)
			if err != nil {
				return fmt.Errorf("failed to update truth core: %w", err)
			}
		case ent.IsNotFound(err):
			result, err = tx.TruthCore.Create().
				SetID(uuid.NewString()).
				SetWarehouseID(wh.ID).
				SetMinSqft(in.MinSqft).
				SetMaxSqft(in.MaxSqft).
				SetActivityTier(in.ActivityTier).
				SetSupplierRatePerSqft(in.SupplierRate).
				SetNillableAvailableFrom(in.AvailableFrom).
				SetDockDoors(in.DockDoors).
				SetClearHeightFt(in.ClearHeightFt).
				SetHasOfficeSpace(in.HasOfficeSpace).
				SetHasSprinkler(in.HasSprinkler).
				SetPowerService(in.PowerService).
				SetActivationStatus(truthcore.ActivationStatusOn).
				Save(ctx)
			if err != nil {
				return fmt.Errorf("failed to create truth core: %w", err)
			}
		default:
			return fmt.Errorf("failed to load truth core: %w", err)
		}

		if err := tx.Warehouse.UpdateOneID(wh.ID).
			SetSupplierStatus(warehouse.SupplierStatusInNetwork).
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to update supplier status: %w", err)
		}

		if _, err := tx.ToggleHistory.Create().
			SetID(uuid.NewString()).
			SetWarehouseID(wh.ID).
			SetNewState(togglehistory.NewStateOn).
			SetSource(togglehistory.SourceWeb).
			SetToggledBy(in.ActorID).
			SetReason("activation").
			Save(ctx); err != nil {
			return fmt.Errorf("failed to record toggle: %w", err)
		}

		signed, err := tx.SupplierAgreement.Query().
			Where(
				supplieragreement.WarehouseIDEQ(wh.ID),
				supplieragreement.StatusEQ(supplieragreement.StatusSigned),
			).
			Exist(ctx)
		if err != nil {
			return fmt.Errorf("failed to check supplier agreement: %w", err)
		}
		if !signed {
			if _, err := tx.SupplierAgreement.Create().
				SetID(uuid.NewString()).
				SetWarehouseID(wh.ID).
				SetStatus(supplieragreement.StatusSigned).
				SetOrigin(supplieragreement.OriginOnboarding).
				SetSignedAt(s.now()).
				Save(ctx); err != nil {
				return fmt.Errorf("failed to create supplier agreement: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Warehouse activated", "warehouse_id", in.WarehouseID)
	return result, nil
}

// ToggleInput flips a listing's availability.
type ToggleInput struct {
	WarehouseID string
	On          bool
	Source      togglehistory.Source
	ActorID     string
	Reason      string
}

// ToggleResult reports the flip plus what it touches: matches currently in
// front of buyers keep working through the grace window.
type ToggleResult struct {
	NewState        truthcore.ActivationStatus `json:"new_state"`
	EffectiveAt     time.Time                  `json:"effective_at"`
	GraceUntil      *time.Time                 `json:"grace_until,omitempty"`
	InFlightMatches int                        `json:"in_flight_matches"`
}

// Toggle flips activation_status. Switching off removes the listing from new
// clearing runs immediately but honors already-presented matches for the
// grace window; the in-flight count is recorded on the toggle row.
func (s *WarehouseService) Toggle(ctx context.Context, in ToggleInput) (*ToggleResult, error) {
	if in.WarehouseID == "" {
		return nil, NewValidationError("warehouse_id", "is required")
	}

	now := s.now()
	result := &ToggleResult{EffectiveAt: now}
	err := database.WithTx(ctx, s.client, func(tx *ent.Tx) error {
		core, err := tx.TruthCore.Query().
			Where(truthcore.WarehouseIDEQ(in.WarehouseID)).
			ForUpdate().
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return fmt.Errorf("warehouse %s has no listing: %w", in.WarehouseID, ErrNotFound)
			}
			return fmt.Errorf("failed to lock truth core: %w", err)
		}

		target := truthcore.ActivationStatusOff
		state := togglehistory.NewStateOff
		if in.On {
			target = truthcore.ActivationStatusOn
			state = togglehistory.NewStateOn
		}
		if core.ActivationStatus == target {
			result.NewState = target
			return nil
		}

		inFlight, err := tx.Match.Query().
			Where(
				match.WarehouseIDEQ(in.WarehouseID),
				match.StatusIn(match.StatusPending, match.StatusPresented, match.StatusAccepted),
			).
			Count(ctx)
		if err != nil {
			return fmt.Errorf("failed to count in-flight matches: %w", err)
		}
		result.InFlightMatches = inFlight

		upd := tx.TruthCore.UpdateOneID(core.ID).SetActivationStatus(target)
		if !in.On {
			grace := now.Add(toggleGrace)
			upd.SetAvailableUntil(grace)
			result.GraceUntil = &grace
		} else {
			upd.ClearAvailableUntil()
		}
		if err := upd.Exec(ctx); err != nil {
			return fmt.Errorf("failed to flip activation: %w", err)
		}

		reason := in.Reason
		if !in.On && inFlight > 0 {
			reason = fmt.Sprintf("%s (%d matches in flight, honored until grace end)", reason, inFlight)
		}
		if _, err := tx.ToggleHistory.Create().
			SetID(uuid.NewString()).
			SetWarehouseID(in.WarehouseID).
			SetNewState(state).
			SetSource(in.Source).
			SetToggledBy(in.ActorID).
			SetReason(reason).
			Save(ctx); err != nil {
			return fmt.Errorf("failed to record toggle: %w", err)
		}
		result.NewState = target
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Listing toggled",
		"warehouse_id", in.WarehouseID,
		"new_state", result.NewState,
		"in_flight_matches", result.InFlightMatches)
	return result, nil
}
