// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/warehouse-exchange/wex/ent/conversation"
)

// Conversation is the model entity for the Conversation schema.
type Conversation struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// E.164 normalized
	Phone string `json:"phone,omitempty"`
	// Persona holds the value of the "persona" field.
	Persona conversation.Persona `json:"persona,omitempty"`
	// Phase holds the value of the "phase" field.
	Phase conversation.Phase `json:"phase,omitempty"`
	// TurnCount holds the value of the "turn_count" field.
	TurnCount int `json:"turn_count,omitempty"`
	// Last-known merged search criteria
	Criteria map[string]interface{} `json:"criteria,omitempty"`
	// Match ids in the order last shown, for ordinal references
	PresentedMatches []string `json:"presented_matches,omitempty"`
	// Fallback target when the buyer says just 'it' or 'that one'
	FocusedMatchID string `json:"focused_match_id,omitempty"`
	// RenterFirstName holds the value of the "renter_first_name" field.
	RenterFirstName string `json:"renter_first_name,omitempty"`
	// RenterLastName holds the value of the "renter_last_name" field.
	RenterLastName string `json:"renter_last_name,omitempty"`
	// BuyerEmail holds the value of the "buyer_email" field.
	BuyerEmail string `json:"buyer_email,omitempty"`
	// NameStatus holds the value of the "name_status" field.
	NameStatus conversation.NameStatus `json:"name_status,omitempty"`
	// NameRequestedAtTurn holds the value of the "name_requested_at_turn" field.
	NameRequestedAtTurn int `json:"name_requested_at_turn,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// The need this thread is currently shopping for
	BuyerNeedID string `json:"buyer_need_id,omitempty"`
	// Supplier threads pin to their warehouse
	WarehouseID string `json:"warehouse_id,omitempty"`
	// EngagementID holds the value of the "engagement_id" field.
	EngagementID string `json:"engagement_id,omitempty"`
	// GuaranteeLinkToken holds the value of the "guarantee_link_token" field.
	GuaranteeLinkToken string `json:"guarantee_link_token,omitempty"`
	// SearchSessionToken holds the value of the "search_session_token" field.
	SearchSessionToken string `json:"search_session_token,omitempty"`
	// Status holds the value of the "status" field.
	Status conversation.Status `json:"status,omitempty"`
	// 0 none, then 1..3 as nudges go out
	ReengagementStage int `json:"reengagement_stage,omitempty"`
	// NextReengagementAt holds the value of the "next_reengagement_at" field.
	NextReengagementAt *time.Time `json:"next_reengagement_at,omitempty"`
	// LastInboundAt holds the value of the "last_inbound_at" field.
	LastInboundAt *time.Time `json:"last_inbound_at,omitempty"`
	// LastOutboundAt holds the value of the "last_outbound_at" field.
	LastOutboundAt *time.Time `json:"last_outbound_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ConversationQuery when eager-loading is set.
	Edges        ConversationEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ConversationEdges holds the relations/edges for other nodes in the graph.
type ConversationEdges struct {
	// Messages holds the value of the messages edge.
	Messages []*InboundMessage `json:"messages,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// MessagesOrErr returns the Messages value or an error if the edge
// was not loaded in eager-loading.
func (e ConversationEdges) MessagesOrErr() ([]*InboundMessage, error) {
	if e.loadedTypes[0] {
		return e.Messages, nil
	}
	return nil, &NotLoadedError{edge: "messages"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Conversation) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case conversation.FieldCriteria, conversation.FieldPresentedMatches:
			values[i] = new([]byte)
		case conversation.FieldTurnCount, conversation.FieldNameRequestedAtTurn, conversation.FieldReengagementStage:
			values[i] = new(sql.NullInt64)
		case conversation.FieldID, conversation.FieldPhone, conversation.FieldPersona, conversation.FieldPhase, conversation.FieldFocusedMatchID, conversation.FieldRenterFirstName, conversation.FieldRenterLastName, conversation.FieldBuyerEmail, conversation.FieldNameStatus, conversation.FieldUserID, conversation.FieldBuyerNeedID, conversation.FieldWarehouseID, conversation.FieldEngagementID, conversation.FieldGuaranteeLinkToken, conversation.FieldSearchSessionToken, conversation.FieldStatus:
			values[i] = new(sql.NullString)
		case conversation.FieldNextReengagementAt, conversation.FieldLastInboundAt, conversation.FieldLastOutboundAt, conversation.FieldCreatedAt, conversation.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Conversation fields.
func (_m *Conversation) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case conversation.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case conversation.FieldPhone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phone", values[i])
			} else if value.Valid {
				_m.Phone = value.String
			}
		case conversation.FieldPersona:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field persona", values[i])
			} else if value.Valid {
				_m.Persona = conversation.Persona(value.String)
			}
		case conversation.FieldPhase:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phase", values[i])
			} else if value.Valid {
				_m.Phase = conversation.Phase(value.String)
			}
		case conversation.FieldTurnCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field turn_count", values[i])
			} else if value.Valid {
				_m.TurnCount = int(value.Int64)
			}
		case conversation.FieldCriteria:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field criteria", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Criteria); err != nil {
					return fmt.Errorf("unmarshal field criteria: %w", err)
				}
			}
		case conversation.FieldPresentedMatches:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field presented_matches", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PresentedMatches); err != nil {
					return fmt.Errorf("unmarshal field presented_matches: %w", err)
				}
			}
		case conversation.FieldFocusedMatchID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field focused_match_id", values[i])
			} else if value.Valid {
				_m.FocusedMatchID = value.String
			}
		case conversation.FieldRenterFirstName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field renter_first_name", values[i])
			} else if value.Valid {
				_m.RenterFirstName = value.String
			}
		case conversation.FieldRenterLastName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field renter_last_name", values[i])
			} else if value.Valid {
				_m.RenterLastName = value.String
			}
		case conversation.FieldBuyerEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field buyer_email", values[i])
			} else if value.Valid {
				_m.BuyerEmail = value.String
			}
		case conversation.FieldNameStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name_status", values[i])
			} else if value.Valid {
				_m.NameStatus = conversation.NameStatus(value.String)
			}
		case conversation.FieldNameRequestedAtTurn:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field name_requested_at_turn", values[i])
			} else if value.Valid {
				_m.NameRequestedAtTurn = int(value.Int64)
			}
		case conversation.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case conversation.FieldBuyerNeedID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field buyer_need_id", values[i])
			} else if value.Valid {
				_m.BuyerNeedID = value.String
			}
		case conversation.FieldWarehouseID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field warehouse_id", values[i])
			} else if value.Valid {
				_m.WarehouseID = value.String
			}
		case conversation.FieldEngagementID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field engagement_id", values[i])
			} else if value.Valid {
				_m.EngagementID = value.String
			}
		case conversation.FieldGuaranteeLinkToken:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field guarantee_link_token", values[i])
			} else if value.Valid {
				_m.GuaranteeLinkToken = value.String
			}
		case conversation.FieldSearchSessionToken:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field search_session_token", values[i])
			} else if value.Valid {
				_m.SearchSessionToken = value.String
			}
		case conversation.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = conversation.Status(value.String)
			}
		case conversation.FieldReengagementStage:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field reengagement_stage", values[i])
			} else if value.Valid {
				_m.ReengagementStage = int(value.Int64)
			}
		case conversation.FieldNextReengagementAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field next_reengagement_at", values[i])
			} else if value.Valid {
				_m.NextReengagementAt = new(time.Time)
				*_m.NextReengagementAt = value.Time
			}
		case conversation.FieldLastInboundAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_inbound_at", values[i])
			} else if value.Valid {
				_m.LastInboundAt = new(time.Time)
				*_m.LastInboundAt = value.Time
			}
		case conversation.FieldLastOutboundAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_outbound_at", values[i])
			} else if value.Valid {
				_m.LastOutboundAt = new(time.Time)
				*_m.LastOutboundAt = value.Time
			}
		case conversation.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case conversation.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Conversation.
// This includes values selected through modifiers, order, etc.
func (_m *Conversation) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryMessages queries the "messages" edge of the Conversation entity.
func (_m *Conversation) QueryMessages() *InboundMessageQuery {
	return NewConversationClient(_m.config).QueryMessages(_m)
}

// Update returns a builder for updating this Conversation.
// Note that you need to call Conversation.Unwrap() before calling this method if this Conversation
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Conversation) Update() *ConversationUpdateOne {
	return NewConversationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Conversation entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Conversation) Unwrap() *Conversation {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Conversation is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Conversation) String() string {
	var builder strings.Builder
	builder.WriteString("Conversation(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("phone=")
	builder.WriteString(_m.Phone)
	builder.WriteString(", ")
	builder.WriteString("persona=")
	builder.WriteString(fmt.Sprintf("%v", _m.Persona))
	builder.WriteString(", ")
	builder.WriteString("phase=")
	builder.WriteString(fmt.Sprintf("%v", _m.Phase))
	builder.WriteString(", ")
	builder.WriteString("turn_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.TurnCount))
	builder.WriteString(", ")
	builder.WriteString("criteria=")
	builder.WriteString(fmt.Sprintf("%v", _m.Criteria))
	builder.WriteString(", ")
	builder.WriteString("presented_matches=")
	builder.WriteString(fmt.Sprintf("%v", _m.PresentedMatches))
	builder.WriteString(", ")
	builder.WriteString("focused_match_id=")
	builder.WriteString(_m.FocusedMatchID)
	builder.WriteString(", ")
	builder.WriteString("renter_first_name=")
	builder.WriteString(_m.RenterFirstName)
	builder.WriteString(", ")
	builder.WriteString("renter_last_name=")
	builder.WriteString(_m.RenterLastName)
	builder.WriteString(", ")
	builder.WriteString("buyer_email=")
	builder.WriteString(_m.BuyerEmail)
	builder.WriteString(", ")
	builder.WriteString("name_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.NameStatus))
	builder.WriteString(", ")
	builder.WriteString("name_requested_at_turn=")
	builder.WriteString(fmt.Sprintf("%v", _m.NameRequestedAtTurn))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("buyer_need_id=")
	builder.WriteString(_m.BuyerNeedID)
	builder.WriteString(", ")
	builder.WriteString("warehouse_id=")
	builder.WriteString(_m.WarehouseID)
	builder.WriteString(", ")
	builder.WriteString("engagement_id=")
	builder.WriteString(_m.EngagementID)
	builder.WriteString(", ")
	builder.WriteString("guarantee_link_token=")
	builder.WriteString(_m.GuaranteeLinkToken)
	builder.WriteString(", ")
	builder.WriteString("search_session_token=")
	builder.WriteString(_m.SearchSessionToken)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("reengagement_stage=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReengagementStage))
	builder.WriteString(", ")
	if v := _m.NextReengagementAt; v != nil {
		builder.WriteString("next_reengagement_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.LastInboundAt; v != nil {
		builder.WriteString("last_inbound_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.LastOutboundAt; v != nil {
		builder.WriteString("last_outbound_at=")
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

// Conversations is a parsable slice of Conversation.
type Conversations []*Conversation
