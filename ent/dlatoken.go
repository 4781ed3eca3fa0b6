// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/warehouse-exchange/wex/ent/buyerneed"
	"github.com/warehouse-exchange/wex/ent/dlatoken"
	"github.com/warehouse-exchange/wex/ent/warehouse"
)

// DLAToken is the model entity for the DLAToken schema.
type DLAToken struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// 32-char hex capability value
	Token string `json:"token,omitempty"`
	// WarehouseID holds the value of the "warehouse_id" field.
	WarehouseID string `json:"warehouse_id,omitempty"`
	// The demand that triggered the outreach
	BuyerNeedID string `json:"buyer_need_id,omitempty"`
	// Status holds the value of the "status" field.
	Status dlatoken.Status `json:"status,omitempty"`
	// Blended rate proposal computed at the rate step
	SuggestedRate *float64 `json:"suggested_rate,omitempty"`
	// Accepted or countered rate; written to the TruthCore on confirm
	FinalRate *float64 `json:"final_rate,omitempty"`
	// Anonymized buyer requirement shown to the supplier
	ProposedSqft int `json:"proposed_sqft,omitempty"`
	// ExpiresAt holds the value of the "expires_at" field.
	ExpiresAt time.Time `json:"expires_at,omitempty"`
	// ConfirmedAt holds the value of the "confirmed_at" field.
	ConfirmedAt *time.Time `json:"confirmed_at,omitempty"`
	// RespondedAt holds the value of the "responded_at" field.
	RespondedAt *time.Time `json:"responded_at,omitempty"`
	// Non-conversion detail, mirrored into a ContextualMemory
	OutcomeNote string `json:"outcome_note,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DLATokenQuery when eager-loading is set.
	Edges        DLATokenEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DLATokenEdges holds the relations/edges for other nodes in the graph.
type DLATokenEdges struct {
	// Warehouse holds the value of the warehouse edge.
	Warehouse *Warehouse `json:"warehouse,omitempty"`
	// BuyerNeed holds the value of the buyer_need edge.
	BuyerNeed *BuyerNeed `json:"buyer_need,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// WarehouseOrErr returns the Warehouse value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DLATokenEdges) WarehouseOrErr() (*Warehouse, error) {
	if e.Warehouse != nil {
		return e.Warehouse, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: warehouse.Label}
	}
	return nil, &NotLoadedError{edge: "warehouse"}
}

// BuyerNeedOrErr returns the BuyerNeed value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DLATokenEdges) BuyerNeedOrErr() (*BuyerNeed, error) {
	if e.BuyerNeed != nil {
		return e.BuyerNeed, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: buyerneed.Label}
	}
	return nil, &NotLoadedError{edge: "buyer_need"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DLAToken) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case dlatoken.FieldSuggestedRate, dlatoken.FieldFinalRate:
			values[i] = new(sql.NullFloat64)
		case dlatoken.FieldProposedSqft:
			values[i] = new(sql.NullInt64)
		case dlatoken.FieldID, dlatoken.FieldToken, dlatoken.FieldWarehouseID, dlatoken.FieldBuyerNeedID, dlatoken.FieldStatus, dlatoken.FieldOutcomeNote:
			values[i] = new(sql.NullString)
		case dlatoken.FieldExpiresAt, dlatoken.FieldConfirmedAt, dlatoken.FieldRespondedAt, dlatoken.FieldCreatedAt, dlatoken.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DLAToken fields.
func (_m *DLAToken) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case dlatoken.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case dlatoken.FieldToken:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field token", values[i])
			} else if value.Valid {
				_m.Token = value.String
			}
		case dlatoken.FieldWarehouseID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field warehouse_id", values[i])
			} else if value.Valid {
				_m.WarehouseID = value.String
			}
		case dlatoken.FieldBuyerNeedID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field buyer_need_id", values[i])
			} else if value.Valid {
				_m.BuyerNeedID = value.String
			}
		case dlatoken.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = dlatoken.Status(value.String)
			}
		case dlatoken.FieldSuggestedRate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field suggested_rate", values[i])
			} else if value.Valid {
				_m.SuggestedRate = new(float64)
				*_m.SuggestedRate = value.Float64
			}
		case dlatoken.FieldFinalRate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field final_rate", values[i])
			} else if value.Valid {
				_m.FinalRate = new(float64)
				*_m.FinalRate = value.Float64
			}
		case dlatoken.FieldProposedSqft:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field proposed_sqft", values[i])
			} else if value.Valid {
				_m.ProposedSqft = int(value.Int64)
			}
		case dlatoken.FieldExpiresAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field expires_at", values[i])
			} else if value.Valid {
				_m.ExpiresAt = value.Time
			}
		case dlatoken.FieldConfirmedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field confirmed_at", values[i])
			} else if value.Valid {
				_m.ConfirmedAt = new(time.Time)
				*_m.ConfirmedAt = value.Time
			}
		case dlatoken.FieldRespondedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field responded_at", values[i])
			} else if value.Valid {
				_m.RespondedAt = new(time.Time)
				*_m.RespondedAt = value.Time
			}
		case dlatoken.FieldOutcomeNote:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field outcome_note", values[i])
			} else if value.Valid {
				_m.OutcomeNote = value.String
			}
		case dlatoken.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case dlatoken.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the DLAToken.
// This includes values selected through modifiers, order, etc.
func (_m *DLAToken) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryWarehouse queries the "warehouse" edge of the DLAToken entity.
func (_m *DLAToken) QueryWarehouse() *WarehouseQuery {
	return NewDLATokenClient(_m.config).QueryWarehouse(_m)
}

// QueryBuyerNeed queries the "buyer_need" edge of the DLAToken entity.
func (_m *DLAToken) QueryBuyerNeed() *BuyerNeedQuery {
	return NewDLATokenClient(_m.config).QueryBuyerNeed(_m)
}

// Update returns a builder for updating this DLAToken.
// Note that you need to call DLAToken.Unwrap() before calling this method if this DLAToken
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DLAToken) Update() *DLATokenUpdateOne {
	return NewDLATokenClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DLAToken entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DLAToken) Unwrap() *DLAToken {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DLAToken is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DLAToken) String() string {
	var builder strings.Builder
	builder.WriteString("DLAToken(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("token=")
	builder.WriteString(_m.Token)
	builder.WriteString(", ")
	builder.WriteString("warehouse_id=")
	builder.WriteString(_m.WarehouseID)
	builder.WriteString(", ")
	builder.WriteString("buyer_need_id=")
	builder.WriteString(_m.BuyerNeedID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.SuggestedRate; v != nil {
		builder.WriteString("suggested_rate=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.FinalRate; v != nil {
		builder.WriteString("final_rate=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("proposed_sqft=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProposedSqft))
	builder.WriteString(", ")
	builder.WriteString("expires_at=")
	builder.WriteString(_m.ExpiresAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.ConfirmedAt; v != nil {
		builder.WriteString("confirmed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.RespondedAt; v != nil {
		builder.WriteString("responded_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("outcome_note=")
	builder.WriteString(_m.OutcomeNote)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// DLATokens is a parsable slice of DLAToken.
type DLATokens []*DLAToken
