// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/warehouse-exchange/wex/ent/contextualmemory"
	"github.com/warehouse-exchange/wex/ent/warehouse"
)

// ContextualMemory is the model entity for the ContextualMemory schema.
type ContextualMemory struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// WarehouseID holds the value of the "warehouse_id" field.
	WarehouseID string `json:"warehouse_id,omitempty"`
	// Category holds the value of the "category" field.
	Category contextualmemory.Category `json:"category,omitempty"`
	// Content holds the value of the "content" field.
	Content string `json:"content,omitempty"`
	// Source holds the value of the "source" field.
	Source contextualmemory.Source `json:"source,omitempty"`
	// RecordedBy holds the value of the "recorded_by" field.
	RecordedBy string `json:"recorded_by,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ContextualMemoryQuery when eager-loading is set.
	Edges        ContextualMemoryEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ContextualMemoryEdges holds the relations/edges for other nodes in the graph.
type ContextualMemoryEdges struct {
	// Warehouse holds the value of the warehouse edge.
	Warehouse *Warehouse `json:"warehouse,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// WarehouseOrErr returns the Warehouse value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ContextualMemoryEdges) WarehouseOrErr() (*Warehouse, error) {
	if e.Warehouse != nil {
		return e.Warehouse, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: warehouse.Label}
	}
	return nil, &NotLoadedError{edge: "warehouse"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ContextualMemory) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case contextualmemory.FieldID, contextualmemory.FieldWarehouseID, contextualmemory.FieldCategory, contextualmemory.FieldContent, contextualmemory.FieldSource, contextualmemory.FieldRecordedBy:
			values[i] = new(sql.NullString)
		case contextualmemory.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ContextualMemory fields.
func (_m *ContextualMemory) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case contextualmemory.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case contextualmemory.FieldWarehouseID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field warehouse_id", values[i])
			} else if value.Valid {
				_m.WarehouseID = value.String
			}
		case contextualmemory.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = contextualmemory.Category(value.String)
			}
		case contextualmemory.FieldContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value.Valid {
				_m.Content = value.String
			}
		case contextualmemory.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = contextualmemory.Source(value.String)
			}
		case contextualmemory.FieldRecordedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field recorded_by", values[i])
			} else if value.Valid {
				_m.RecordedBy = value.String
			}
		case contextualmemory.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ContextualMemory.
// This includes values selected through modifiers, order, etc.
func (_m *ContextualMemory) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryWarehouse queries the "warehouse" edge of the ContextualMemory entity.
func (_m *ContextualMemory) QueryWarehouse() *WarehouseQuery {
	return NewContextualMemoryClient(_m.config).QueryWarehouse(_m)
}

// Update returns a builder for updating this ContextualMemory.
// Note that you need to call ContextualMemory.Unwrap() before calling this method if this ContextualMemory
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ContextualMemory) Update() *ContextualMemoryUpdateOne {
	return NewContextualMemoryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ContextualMemory entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ContextualMemory) Unwrap() *ContextualMemory {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ContextualMemory is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ContextualMemory) String() string {
	var builder strings.Builder
	builder.WriteString("ContextualMemory(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("warehouse_id=")
	builder.WriteString(_m.WarehouseID)
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(fmt.Sprintf("%v", _m.Category))
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(_m.Content)
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(fmt.Sprintf("%v", _m.Source))
	builder.WriteString(", ")
	builder.WriteString("recorded_by=")
	builder.WriteString(_m.RecordedBy)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ContextualMemories is a parsable slice of ContextualMemory.
type ContextualMemories []*ContextualMemory
