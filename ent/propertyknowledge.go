// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/warehouse-exchange/wex/ent/propertyknowledge"
	"github.com/warehouse-exchange/wex/ent/warehouse"
)

// PropertyKnowledge is the model entity for the PropertyKnowledge schema.
type PropertyKnowledge struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// WarehouseID holds the value of the "warehouse_id" field.
	WarehouseID string `json:"warehouse_id,omitempty"`
	// Normalized lowercase topic key, e.g. loading_dock_hours
	Topic string `json:"topic,omitempty"`
	// Content holds the value of the "content" field.
	Content string `json:"content,omitempty"`
	// Source holds the value of the "source" field.
	Source propertyknowledge.Source `json:"source,omitempty"`
	// SourceQuestionID holds the value of the "source_question_id" field.
	SourceQuestionID string `json:"source_question_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PropertyKnowledgeQuery when eager-loading is set.
	Edges        PropertyKnowledgeEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PropertyKnowledgeEdges holds the relations/edges for other nodes in the graph.
type PropertyKnowledgeEdges struct {
	// Warehouse holds the value of the warehouse edge.
	Warehouse *Warehouse `json:"warehouse,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// WarehouseOrErr returns the Warehouse value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PropertyKnowledgeEdges) WarehouseOrErr() (*Warehouse, error) {
	if e.Warehouse != nil {
		return e.Warehouse, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: warehouse.Label}
	}
	return nil, &NotLoadedError{edge: "warehouse"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PropertyKnowledge) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case propertyknowledge.FieldID, propertyknowledge.FieldWarehouseID, propertyknowledge.FieldTopic, propertyknowledge.FieldContent, propertyknowledge.FieldSource, propertyknowledge.FieldSourceQuestionID:
			values[i] = new(sql.NullString)
		case propertyknowledge.FieldCreatedAt, propertyknowledge.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PropertyKnowledge fields.
func (_m *PropertyKnowledge) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case propertyknowledge.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case propertyknowledge.FieldWarehouseID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field warehouse_id", values[i])
			} else if value.Valid {
				_m.WarehouseID = value.String
			}
		case propertyknowledge.FieldTopic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic", values[i])
			} else if value.Valid {
				_m.Topic = value.String
			}
		case propertyknowledge.FieldContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value.Valid {
				_m.Content = value.String
			}
		case propertyknowledge.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = propertyknowledge.Source(value.String)
			}
		case propertyknowledge.FieldSourceQuestionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_question_id", values[i])
			} else if value.Valid {
				_m.SourceQuestionID = value.String
			}
		case propertyknowledge.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case propertyknowledge.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the PropertyKnowledge.
// This includes values selected through modifiers, order, etc.
func (_m *PropertyKnowledge) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryWarehouse queries the "warehouse" edge of the PropertyKnowledge entity.
func (_m *PropertyKnowledge) QueryWarehouse() *WarehouseQuery {
	return NewPropertyKnowledgeClient(_m.config).QueryWarehouse(_m)
}

// Update returns a builder for updating this PropertyKnowledge.
// Note that you need to call PropertyKnowledge.Unwrap() before calling this method if this PropertyKnowledge
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PropertyKnowledge) Update() *PropertyKnowledgeUpdateOne {
	return NewPropertyKnowledgeClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PropertyKnowledge entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PropertyKnowledge) Unwrap() *PropertyKnowledge {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PropertyKnowledge is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PropertyKnowledge) String() string {
	var builder strings.Builder
	builder.WriteString("PropertyKnowledge(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("warehouse_id=")
	builder.WriteString(_m.WarehouseID)
	builder.WriteString(", ")
	builder.WriteString("topic=")
	builder.WriteString(_m.Topic)
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(_m.Content)
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(fmt.Sprintf("%v", _m.Source))
	builder.WriteString(", ")
	builder.WriteString("source_question_id=")
	builder.WriteString(_m.SourceQuestionID)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PropertyKnowledges is a parsable slice of PropertyKnowledge.
type PropertyKnowledges []*PropertyKnowledge
