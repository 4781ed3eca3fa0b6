// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/warehouse-exchange/wex/ent/propertyquestion"
	"github.com/warehouse-exchange/wex/ent/warehouse"
)

// PropertyQuestion is the model entity for the PropertyQuestion schema.
type PropertyQuestion struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// WarehouseID holds the value of the "warehouse_id" field.
	WarehouseID string `json:"warehouse_id,omitempty"`
	// Set when the question pauses a post-tour decision timer
	EngagementID string `json:"engagement_id,omitempty"`
	// AskedByPhone holds the value of the "asked_by_phone" field.
	AskedByPhone string `json:"asked_by_phone,omitempty"`
	// AskedByUserID holds the value of the "asked_by_user_id" field.
	AskedByUserID string `json:"asked_by_user_id,omitempty"`
	// QuestionText holds the value of the "question_text" field.
	QuestionText string `json:"question_text,omitempty"`
	// Status holds the value of the "status" field.
	Status propertyquestion.Status `json:"status,omitempty"`
	// AnswerText holds the value of the "answer_text" field.
	AnswerText string `json:"answer_text,omitempty"`
	// AnswerSource holds the value of the "answer_source" field.
	AnswerSource *propertyquestion.AnswerSource `json:"answer_source,omitempty"`
	// RoutedAt holds the value of the "routed_at" field.
	RoutedAt *time.Time `json:"routed_at,omitempty"`
	// AnsweredAt holds the value of the "answered_at" field.
	AnsweredAt *time.Time `json:"answered_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PropertyQuestionQuery when eager-loading is set.
	Edges        PropertyQuestionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PropertyQuestionEdges holds the relations/edges for other nodes in the graph.
type PropertyQuestionEdges struct {
	// Warehouse holds the value of the warehouse edge.
	Warehouse *Warehouse `json:"warehouse,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// WarehouseOrErr returns the Warehouse value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PropertyQuestionEdges) WarehouseOrErr() (*Warehouse, error) {
	if e.Warehouse != nil {
		return e.Warehouse, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: warehouse.Label}
	}
	return nil, &NotLoadedError{edge: "warehouse"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PropertyQuestion) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case propertyquestion.FieldID, propertyquestion.FieldWarehouseID, propertyquestion.FieldEngagementID, propertyquestion.FieldAskedByPhone, propertyquestion.FieldAskedByUserID, propertyquestion.FieldQuestionText, propertyquestion.FieldStatus, propertyquestion.FieldAnswerText, propertyquestion.FieldAnswerSource:
			values[i] = new(sql.NullString)
		case propertyquestion.FieldRoutedAt, propertyquestion.FieldAnsweredAt, propertyquestion.FieldCreatedAt, propertyquestion.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PropertyQuestion fields.
func (_m *PropertyQuestion) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case propertyquestion.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case propertyquestion.FieldWarehouseID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field warehouse_id", values[i])
			} else if value.Valid {
				_m.WarehouseID = value.String
			}
		case propertyquestion.FieldEngagementID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field engagement_id", values[i])
			} else if value.Valid {
				_m.EngagementID = value.String
			}
		case propertyquestion.FieldAskedByPhone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field asked_by_phone", values[i])
			} else if value.Valid {
				_m.AskedByPhone = value.String
			}
		case propertyquestion.FieldAskedByUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field asked_by_user_id", values[i])
			} else if value.Valid {
				_m.AskedByUserID = value.String
			}
		case propertyquestion.FieldQuestionText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_text", values[i])
			} else if value.Valid {
				_m.QuestionText = value.String
			}
		case propertyquestion.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = propertyquestion.Status(value.String)
			}
		case propertyquestion.FieldAnswerText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field answer_text", values[i])
			} else if value.Valid {
				_m.AnswerText = value.String
			}
		case propertyquestion.FieldAnswerSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field answer_source", values[i])
			} else if value.Valid {
				_m.AnswerSource = new(propertyquestion.AnswerSource)
				*_m.AnswerSource = propertyquestion.AnswerSource(value.String)
			}
		case propertyquestion.FieldRoutedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field routed_at", values[i])
			} else if value.Valid {
				_m.RoutedAt = new(time.Time)
				*_m.RoutedAt = value.Time
			}
		case propertyquestion.FieldAnsweredAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field answered_at", values[i])
			} else if value.Valid {
				_m.AnsweredAt = new(time.Time)
				*_m.AnsweredAt = value.Time
			}
		case propertyquestion.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case propertyquestion.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the PropertyQuestion.
// This includes values selected through modifiers, order, etc.
func (_m *PropertyQuestion) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryWarehouse queries the "warehouse" edge of the PropertyQuestion entity.
func (_m *PropertyQuestion) QueryWarehouse() *WarehouseQuery {
	return NewPropertyQuestionClient(_m.config).QueryWarehouse(_m)
}

// Update returns a builder for updating this PropertyQuestion.
// Note that you need to call PropertyQuestion.Unwrap() before calling this method if this PropertyQuestion
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PropertyQuestion) Update() *PropertyQuestionUpdateOne {
	return NewPropertyQuestionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PropertyQuestion entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PropertyQuestion) Unwrap() *PropertyQuestion {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PropertyQuestion is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PropertyQuestion) String() string {
	var builder strings.Builder
	builder.WriteString("PropertyQuestion(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("warehouse_id=")
	builder.WriteString(_m.WarehouseID)
	builder.WriteString(", ")
	builder.WriteString("engagement_id=")
	builder.WriteString(_m.EngagementID)
	builder.WriteString(", ")
	builder.WriteString("asked_by_phone=")
	builder.WriteString(_m.AskedByPhone)
	builder.WriteString(", ")
	builder.WriteString("asked_by_user_id=")
	builder.WriteString(_m.AskedByUserID)
	builder.WriteString(", ")
	builder.WriteString("question_text=")
	builder.WriteString(_m.QuestionText)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("answer_text=")
	builder.WriteString(_m.AnswerText)
	builder.WriteString(", ")
	if v := _m.AnswerSource; v != nil {
		builder.WriteString("answer_source=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.RoutedAt; v != nil {
		builder.WriteString("routed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.AnsweredAt; v != nil {
		builder.WriteString("answered_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PropertyQuestions is a parsable slice of PropertyQuestion.
type PropertyQuestions []*PropertyQuestion
