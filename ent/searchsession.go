// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/warehouse-exchange/wex/ent/searchsession"
)

// SearchSession is the model entity for the SearchSession schema.
type SearchSession struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// URL-safe random value
	Token string `json:"token,omitempty"`
	// Phone holds the value of the "phone" field.
	Phone string `json:"phone,omitempty"`
	// BuyerNeedID holds the value of the "buyer_need_id" field.
	BuyerNeedID string `json:"buyer_need_id,omitempty"`
	// Search parameters as submitted
	Criteria map[string]interface{} `json:"criteria,omitempty"`
	// Match ids returned, best first
	ResultMatches []string `json:"result_matches,omitempty"`
	// ResultCount holds the value of the "result_count" field.
	ResultCount int `json:"result_count,omitempty"`
	// DlaTriggered holds the value of the "dla_triggered" field.
	DlaTriggered bool `json:"dla_triggered,omitempty"`
	// ExpiresAt holds the value of the "expires_at" field.
	ExpiresAt time.Time `json:"expires_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SearchSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case searchsession.FieldCriteria, searchsession.FieldResultMatches:
			values[i] = new([]byte)
		case searchsession.FieldDlaTriggered:
			values[i] = new(sql.NullBool)
		case searchsession.FieldResultCount:
			values[i] = new(sql.NullInt64)
		case searchsession.FieldID, searchsession.FieldToken, searchsession.FieldPhone, searchsession.FieldBuyerNeedID:
			values[i] = new(sql.NullString)
		case searchsession.FieldExpiresAt, searchsession.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SearchSession fields.
func (_m *SearchSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case searchsession.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case searchsession.FieldToken:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field token", values[i])
			} else if value.Valid {
				_m.Token = value.String
			}
		case searchsession.FieldPhone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phone", values[i])
			} else if value.Valid {
				_m.Phone = value.String
			}
		case searchsession.FieldBuyerNeedID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field buyer_need_id", values[i])
			} else if value.Valid {
				_m.BuyerNeedID = value.String
			}
		case searchsession.FieldCriteria:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field criteria", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Criteria); err != nil {
					return fmt.Errorf("unmarshal field criteria: %w", err)
				}
			}
		case searchsession.FieldResultMatches:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field result_matches", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ResultMatches); err != nil {
					return fmt.Errorf("unmarshal field result_matches: %w", err)
				}
			}
		case searchsession.FieldResultCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field result_count", values[i])
			} else if value.Valid {
				_m.ResultCount = int(value.Int64)
			}
		case searchsession.FieldDlaTriggered:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field dla_triggered", values[i])
			} else if value.Valid {
				_m.DlaTriggered = value.Bool
			}
		case searchsession.FieldExpiresAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field expires_at", values[i])
			} else if value.Valid {
				_m.ExpiresAt = value.Time
			}
		case searchsession.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the SearchSession.
// This includes values selected through modifiers, order, etc.
func (_m *SearchSession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SearchSession.
// Note that you need to call SearchSession.Unwrap() before calling this method if this SearchSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SearchSession) Update() *SearchSessionUpdateOne {
	return NewSearchSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SearchSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SearchSession) Unwrap() *SearchSession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SearchSession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SearchSession) String() string {
	var builder strings.Builder
	builder.WriteString("SearchSession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("token=")
	builder.WriteString(_m.Token)
	builder.WriteString(", ")
	builder.WriteString("phone=")
	builder.WriteString(_m.Phone)
	builder.WriteString(", ")
	builder.WriteString("buyer_need_id=")
	builder.WriteString(_m.BuyerNeedID)
	builder.WriteString(", ")
	builder.WriteString("criteria=")
	builder.WriteString(fmt.Sprintf("%v", _m.Criteria))
	builder.WriteString(", ")
	builder.WriteString("result_matches=")
	builder.WriteString(fmt.Sprintf("%v", _m.ResultMatches))
	builder.WriteString(", ")
	builder.WriteString("result_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ResultCount))
	builder.WriteString(", ")
	builder.WriteString("dla_triggered=")
	builder.WriteString(fmt.Sprintf("%v", _m.DlaTriggered))
	builder.WriteString(", ")
	builder.WriteString("expires_at=")
	builder.WriteString(_m.ExpiresAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SearchSessions is a parsable slice of SearchSession.
type SearchSessions []*SearchSession
