// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/warehouse-exchange/wex/ent/truthcore"
	"github.com/warehouse-exchange/wex/ent/warehouse"
)

// TruthCore is the model entity for the TruthCore schema.
type TruthCore struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// WarehouseID holds the value of the "warehouse_id" field.
	WarehouseID string `json:"warehouse_id,omitempty"`
	// Smallest rentable carve-out
	MinSqft int `json:"min_sqft,omitempty"`
	// Largest rentable block
	MaxSqft int `json:"max_sqft,omitempty"`
	// ActivityTier holds the value of the "activity_tier" field.
	ActivityTier truthcore.ActivityTier `json:"activity_tier,omitempty"`
	// AvailableFrom holds the value of the "available_from" field.
	AvailableFrom *time.Time `json:"available_from,omitempty"`
	// AvailableUntil holds the value of the "available_until" field.
	AvailableUntil *time.Time `json:"available_until,omitempty"`
	// Monthly asking rate per sqft; buyer rate is derived, never stored here
	SupplierRatePerSqft float64 `json:"supplier_rate_per_sqft,omitempty"`
	// ActivationStatus holds the value of the "activation_status" field.
	ActivationStatus truthcore.ActivationStatus `json:"activation_status,omitempty"`
	// 0-5, earned through verified activity
	TrustLevel int `json:"trust_level,omitempty"`
	// DockDoors holds the value of the "dock_doors" field.
	DockDoors int `json:"dock_doors,omitempty"`
	// ClearHeightFt holds the value of the "clear_height_ft" field.
	ClearHeightFt float64 `json:"clear_height_ft,omitempty"`
	// HasOfficeSpace holds the value of the "has_office_space" field.
	HasOfficeSpace bool `json:"has_office_space,omitempty"`
	// HasSprinkler holds the value of the "has_sprinkler" field.
	HasSprinkler bool `json:"has_sprinkler,omitempty"`
	// e.g. 400A 3-phase
	PowerService string `json:"power_service,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TruthCoreQuery when eager-loading is set.
	Edges        TruthCoreEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TruthCoreEdges holds the relations/edges for other nodes in the graph.
type TruthCoreEdges struct {
	// Warehouse holds the value of the warehouse edge.
	Warehouse *Warehouse `json:"warehouse,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// WarehouseOrErr returns the Warehouse value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TruthCoreEdges) WarehouseOrErr() (*Warehouse, error) {
	if e.Warehouse != nil {
		return e.Warehouse, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: warehouse.Label}
	}
	return nil, &NotLoadedError{edge: "warehouse"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TruthCore) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case truthcore.FieldHasOfficeSpace, truthcore.FieldHasSprinkler:
			values[i] = new(sql.NullBool)
		case truthcore.FieldSupplierRatePerSqft, truthcore.FieldClearHeightFt:
			values[i] = new(sql.NullFloat64)
		case truthcore.FieldMinSqft, truthcore.FieldMaxSqft, truthcore.FieldTrustLevel, truthcore.FieldDockDoors:
			values[i] = new(sql.NullInt64)
		case truthcore.FieldID, truthcore.FieldWarehouseID, truthcore.FieldActivityTier, truthcore.FieldActivationStatus, truthcore.FieldPowerService:
			values[i] = new(sql.NullString)
		case truthcore.FieldAvailableFrom, truthcore.FieldAvailableUntil, truthcore.FieldCreatedAt, truthcore.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TruthCore fields.
func (_m *TruthCore) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case truthcore.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case truthcore.FieldWarehouseID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field warehouse_id", values[i])
			} else if value.Valid {
				_m.WarehouseID = value.String
			}
		case truthcore.FieldMinSqft:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field min_sqft", values[i])
			} else if value.Valid {
				_m.MinSqft = int(value.Int64)
			}
		case truthcore.FieldMaxSqft:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_sqft", values[i])
			} else if value.Valid {
				_m.MaxSqft = int(value.Int64)
			}
		case truthcore.FieldActivityTier:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field activity_tier", values[i])
			} else if value.Valid {
				_m.ActivityTier = truthcore.ActivityTier(value.String)
			}
		case truthcore.FieldAvailableFrom:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field available_from", values[i])
			} else if value.Valid {
				_m.AvailableFrom = new(time.Time)
				*_m.AvailableFrom = value.Time
			}
		case truthcore.FieldAvailableUntil:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field available_until", values[i])
			} else if value.Valid {
				_m.AvailableUntil = new(time.Time)
				*_m.AvailableUntil = value.Time
			}
		case truthcore.FieldSupplierRatePerSqft:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field supplier_rate_per_sqft", values[i])
			} else if value.Valid {
				_m.SupplierRatePerSqft = value.Float64
			}
		case truthcore.FieldActivationStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field activation_status", values[i])
			} else if value.Valid {
				_m.ActivationStatus = truthcore.ActivationStatus(value.String)
			}
		case truthcore.FieldTrustLevel:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field trust_level", values[i])
			} else if value.Valid {
				_m.TrustLevel = int(value.Int64)
			}
		case truthcore.FieldDockDoors:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field dock_doors", values[i])
			} else if value.Valid {
				_m.DockDoors = int(value.Int64)
			}
		case truthcore.FieldClearHeightFt:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field clear_height_ft", values[i])
			} else if value.Valid {
				_m.ClearHeightFt = value.Float64
			}
		case truthcore.FieldHasOfficeSpace:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field has_office_space", values[i])
			} else if value.Valid {
				_m.HasOfficeSpace = value.Bool
			}
		case truthcore.FieldHasSprinkler:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field has_sprinkler", values[i])
			} else if value.Valid {
				_m.HasSprinkler = value.Bool
			}
		case truthcore.FieldPowerService:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field power_service", values[i])
			} else if value.Valid {
				_m.PowerService = value.String
			}
		case truthcore.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case truthcore.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TruthCore.
// This includes values selected through modifiers, order, etc.
func (_m *TruthCore) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryWarehouse queries the "warehouse" edge of the TruthCore entity.
func (_m *TruthCore) QueryWarehouse() *WarehouseQuery {
	return NewTruthCoreClient(_m.config).QueryWarehouse(_m)
}

// Update returns a builder for updating this TruthCore.
// Note that you need to call TruthCore.Unwrap() before calling this method if this TruthCore
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TruthCore) Update() *TruthCoreUpdateOne {
	return NewTruthCoreClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TruthCore entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TruthCore) Unwrap() *TruthCore {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TruthCore is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TruthCore) String() string {
	var builder strings.Builder
	builder.WriteString("TruthCore(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("warehouse_id=")
	builder.WriteString(_m.WarehouseID)
	builder.WriteString(", ")
	builder.WriteString("min_sqft=")
	builder.WriteString(fmt.Sprintf("%v", _m.MinSqft))
	builder.WriteString(", ")
	builder.WriteString("max_sqft=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxSqft))
	builder.WriteString(", ")
	builder.WriteString("activity_tier=")
	builder.WriteString(fmt.Sprintf("%v", _m.ActivityTier))
	builder.WriteString(", ")
	if v := _m.AvailableFrom; v != nil {
		builder.WriteString("available_from=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.AvailableUntil; v != nil {
		builder.WriteString("available_until=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("supplier_rate_per_sqft=")
	builder.WriteString(fmt.Sprintf("%v", _m.SupplierRatePerSqft))
	builder.WriteString(", ")
	builder.WriteString("activation_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.ActivationStatus))
	builder.WriteString(", ")
	builder.WriteString("trust_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.TrustLevel))
	builder.WriteString(", ")
	builder.WriteString("dock_doors=")
	builder.WriteString(fmt.Sprintf("%v", _m.DockDoors))
	builder.WriteString(", ")
	builder.WriteString("clear_height_ft=")
	builder.WriteString(fmt.Sprintf("%v", _m.ClearHeightFt))
	builder.WriteString(", ")
	builder.WriteString("has_office_space=")
	builder.WriteString(fmt.Sprintf("%v", _m.HasOfficeSpace))
	builder.WriteString(", ")
	builder.WriteString("has_sprinkler=")
	builder.WriteString(fmt.Sprintf("%v", _m.HasSprinkler))
	builder.WriteString(", ")
	builder.WriteString("power_service=")
	builder.WriteString(_m.PowerService)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TruthCores is a parsable slice of TruthCore.
type TruthCores []*TruthCore
