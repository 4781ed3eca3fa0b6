// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/warehouse-exchange/wex/ent/togglehistory"
	"github.com/warehouse-exchange/wex/ent/warehouse"
)

// ToggleHistory is the model entity for the ToggleHistory schema.
type ToggleHistory struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// WarehouseID holds the value of the "warehouse_id" field.
	WarehouseID string `json:"warehouse_id,omitempty"`
	// NewState holds the value of the "new_state" field.
	NewState togglehistory.NewState `json:"new_state,omitempty"`
	// Source holds the value of the "source" field.
	Source togglehistory.Source `json:"source,omitempty"`
	// ToggledBy holds the value of the "toggled_by" field.
	ToggledBy string `json:"toggled_by,omitempty"`
	// Reason holds the value of the "reason" field.
	Reason string `json:"reason,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ToggleHistoryQuery when eager-loading is set.
	Edges        ToggleHistoryEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ToggleHistoryEdges holds the relations/edges for other nodes in the graph.
type ToggleHistoryEdges struct {
	// Warehouse holds the value of the warehouse edge.
	Warehouse *Warehouse `json:"warehouse,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// WarehouseOrErr returns the Warehouse value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ToggleHistoryEdges) WarehouseOrErr() (*Warehouse, error) {
	if e.Warehouse != nil {
		return e.Warehouse, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: warehouse.Label}
	}
	return nil, &NotLoadedError{edge: "warehouse"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ToggleHistory) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case togglehistory.FieldID, togglehistory.FieldWarehouseID, togglehistory.FieldNewState, togglehistory.FieldSource, togglehistory.FieldToggledBy, togglehistory.FieldReason:
			values[i] = new(sql.NullString)
		case togglehistory.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ToggleHistory fields.
func (_m *ToggleHistory) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case togglehistory.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case togglehistory.FieldWarehouseID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field warehouse_id", values[i])
			} else if value.Valid {
				_m.WarehouseID = value.String
			}
		case togglehistory.FieldNewState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field new_state", values[i])
			} else if value.Valid {
				_m.NewState = togglehistory.NewState(value.String)
			}
		case togglehistory.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = togglehistory.Source(value.String)
			}
		case togglehistory.FieldToggledBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field toggled_by", values[i])
			} else if value.Valid {
				_m.ToggledBy = value.String
			}
		case togglehistory.FieldReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reason", values[i])
			} else if value.Valid {
				_m.Reason = value.String
			}
		case togglehistory.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ToggleHistory.
// This includes values selected through modifiers, order, etc.
func (_m *ToggleHistory) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryWarehouse queries the "warehouse" edge of the ToggleHistory entity.
func (_m *ToggleHistory) QueryWarehouse() *WarehouseQuery {
	return NewToggleHistoryClient(_m.config).QueryWarehouse(_m)
}

// Update returns a builder for updating this ToggleHistory.
// Note that you need to call ToggleHistory.Unwrap() before calling this method if this ToggleHistory
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ToggleHistory) Update() *ToggleHistoryUpdateOne {
	return NewToggleHistoryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ToggleHistory entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ToggleHistory) Unwrap() *ToggleHistory {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ToggleHistory is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ToggleHistory) String() string {
	var builder strings.Builder
	builder.WriteString("ToggleHistory(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("warehouse_id=")
	builder.WriteString(_m.WarehouseID)
	builder.WriteString(", ")
	builder.WriteString("new_state=")
	builder.WriteString(fmt.Sprintf("%v", _m.NewState))
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(fmt.Sprintf("%v", _m.Source))
	builder.WriteString(", ")
	builder.WriteString("toggled_by=")
	builder.WriteString(_m.ToggledBy)
	builder.WriteString(", ")
	builder.WriteString("reason=")
	builder.WriteString(_m.Reason)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ToggleHistories is a parsable slice of ToggleHistory.
type ToggleHistories []*ToggleHistory
