// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/warehouse-exchange/wex/ent/engagement"
	"github.com/warehouse-exchange/wex/ent/engagementevent"
)

// EngagementEvent is the model entity for the EngagementEvent schema.
type EngagementEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// EngagementID holds the value of the "engagement_id" field.
	EngagementID string `json:"engagement_id,omitempty"`
	// EventType holds the value of the "event_type" field.
	EventType string `json:"event_type,omitempty"`
	// ActorRole holds the value of the "actor_role" field.
	ActorRole engagementevent.ActorRole `json:"actor_role,omitempty"`
	// Empty for system actors
	ActorID string `json:"actor_id,omitempty"`
	// FromStatus holds the value of the "from_status" field.
	FromStatus string `json:"from_status,omitempty"`
	// ToStatus holds the value of the "to_status" field.
	ToStatus string `json:"to_status,omitempty"`
	// Metadata holds the value of the "metadata" field.
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the EngagementEventQuery when eager-loading is set.
	Edges        EngagementEventEdges `json:"edges"`
	selectValues sql.SelectValues
}

// EngagementEventEdges holds the relations/edges for other nodes in the graph.
type EngagementEventEdges struct {
	// Engagement holds the value of the engagement edge.
	Engagement *Engagement `json:"engagement,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// EngagementOrErr returns the Engagement value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e EngagementEventEdges) EngagementOrErr() (*Engagement, error) {
	if e.Engagement != nil {
		return e.Engagement, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: engagement.Label}
	}
	return nil, &NotLoadedError{edge: "engagement"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EngagementEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case engagementevent.FieldMetadata:
			values[i] = new([]byte)
		case engagementevent.FieldID, engagementevent.FieldEngagementID, engagementevent.FieldEventType, engagementevent.FieldActorRole, engagementevent.FieldActorID, engagementevent.FieldFromStatus, engagementevent.FieldToStatus:
			values[i] = new(sql.NullString)
		case engagementevent.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EngagementEvent fields.
func (_m *EngagementEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case engagementevent.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case engagementevent.FieldEngagementID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field engagement_id", values[i])
			} else if value.Valid {
				_m.EngagementID = value.String
			}
		case engagementevent.FieldEventType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_type", values[i])
			} else if value.Valid {
				_m.EventType = value.String
			}
		case engagementevent.FieldActorRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field actor_role", values[i])
			} else if value.Valid {
				_m.ActorRole = engagementevent.ActorRole(value.String)
			}
		case engagementevent.FieldActorID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field actor_id", values[i])
			} else if value.Valid {
				_m.ActorID = value.String
			}
		case engagementevent.FieldFromStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field from_status", values[i])
			} else if value.Valid {
				_m.FromStatus = value.String
			}
		case engagementevent.FieldToStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field to_status", values[i])
			} else if value.Valid {
				_m.ToStatus = value.String
			}
		case engagementevent.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		case engagementevent.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the EngagementEvent.
// This includes values selected through modifiers, order, etc.
func (_m *EngagementEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryEngagement queries the "engagement" edge of the EngagementEvent entity.
func (_m *EngagementEvent) QueryEngagement() *EngagementQuery {
	return NewEngagementEventClient(_m.config).QueryEngagement(_m)
}

// Update returns a builder for updating this EngagementEvent.
// Note that you need to call EngagementEvent.Unwrap() before calling this method if this EngagementEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EngagementEvent) Update() *EngagementEventUpdateOne {
	return NewEngagementEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EngagementEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EngagementEvent) Unwrap() *EngagementEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EngagementEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EngagementEvent) String() string {
	var builder strings.Builder
	builder.WriteString("EngagementEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("engagement_id=")
	builder.WriteString(_m.EngagementID)
	builder.WriteString(", ")
	builder.WriteString("event_type=")
	builder.WriteString(_m.EventType)
	builder.WriteString(", ")
	builder.WriteString("actor_role=")
	builder.WriteString(fmt.Sprintf("%v", _m.ActorRole))
	builder.WriteString(", ")
	builder.WriteString("actor_id=")
	builder.WriteString(_m.ActorID)
	builder.WriteString(", ")
	builder.WriteString("from_status=")
	builder.WriteString(_m.FromStatus)
	builder.WriteString(", ")
	builder.WriteString("to_status=")
	builder.WriteString(_m.ToStatus)
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// EngagementEvents is a parsable slice of EngagementEvent.
type EngagementEvents []*EngagementEvent
