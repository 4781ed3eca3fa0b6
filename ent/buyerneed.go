// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/warehouse-exchange/wex/ent/buyerneed"
	"github.com/warehouse-exchange/wex/ent/user"
)

// BuyerNeed is the model entity for the BuyerNeed schema.
type BuyerNeed struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Empty for anonymous SMS demand until an account exists
	BuyerID string `json:"buyer_id,omitempty"`
	// Set when the need originated from an SMS conversation
	Phone string `json:"phone,omitempty"`
	// City holds the value of the "city" field.
	City string `json:"city,omitempty"`
	// State holds the value of the "state" field.
	State string `json:"state,omitempty"`
	// Lat holds the value of the "lat" field.
	Lat *float64 `json:"lat,omitempty"`
	// Lng holds the value of the "lng" field.
	Lng *float64 `json:"lng,omitempty"`
	// RadiusMiles holds the value of the "radius_miles" field.
	RadiusMiles float64 `json:"radius_miles,omitempty"`
	// MinSqft holds the value of the "min_sqft" field.
	MinSqft int `json:"min_sqft,omitempty"`
	// MaxSqft holds the value of the "max_sqft" field.
	MaxSqft int `json:"max_sqft,omitempty"`
	// Buyer-side need key resolved against the use-type matrix
	UseType string `json:"use_type,omitempty"`
	// NeededFrom holds the value of the "needed_from" field.
	NeededFrom *time.Time `json:"needed_from,omitempty"`
	// DurationMonths holds the value of the "duration_months" field.
	DurationMonths int `json:"duration_months,omitempty"`
	// MaxBudgetPerSqft holds the value of the "max_budget_per_sqft" field.
	MaxBudgetPerSqft *float64 `json:"max_budget_per_sqft,omitempty"`
	// Free-form requirement map fed to the LLM feature pass
	Requirements map[string]interface{} `json:"requirements,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the BuyerNeedQuery when eager-loading is set.
	Edges        BuyerNeedEdges `json:"edges"`
	selectValues sql.SelectValues
}

// BuyerNeedEdges holds the relations/edges for other nodes in the graph.
type BuyerNeedEdges struct {
	// Buyer holds the value of the buyer edge.
	Buyer *User `json:"buyer,omitempty"`
	// Matches holds the value of the matches edge.
	Matches []*Match `json:"matches,omitempty"`
	// DlaTokens holds the value of the dla_tokens edge.
	DlaTokens []*DLAToken `json:"dla_tokens,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// BuyerOrErr returns the Buyer value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e BuyerNeedEdges) BuyerOrErr() (*User, error) {
	if e.Buyer != nil {
		return e.Buyer, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "buyer"}
}

// MatchesOrErr returns the Matches value or an error if the edge
// was not loaded in eager-loading.
func (e BuyerNeedEdges) MatchesOrErr() ([]*Match, error) {
	if e.loadedTypes[1] {
		return e.Matches, nil
	}
	return nil, &NotLoadedError{edge: "matches"}
}

// DlaTokensOrErr returns the DlaTokens value or an error if the edge
// was not loaded in eager-loading.
func (e BuyerNeedEdges) DlaTokensOrErr() ([]*DLAToken, error) {
	if e.loadedTypes[2] {
		return e.DlaTokens, nil
	}
	return nil, &NotLoadedError{edge: "dla_tokens"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BuyerNeed) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case buyerneed.FieldRequirements:
			values[i] = new([]byte)
		case buyerneed.FieldLat, buyerneed.FieldLng, buyerneed.FieldRadiusMiles, buyerneed.FieldMaxBudgetPerSqft:
			values[i] = new(sql.NullFloat64)
		case buyerneed.FieldMinSqft, buyerneed.FieldMaxSqft, buyerneed.FieldDurationMonths:
			values[i] = new(sql.NullInt64)
		case buyerneed.FieldID, buyerneed.FieldBuyerID, buyerneed.FieldPhone, buyerneed.FieldCity, buyerneed.FieldState, buyerneed.FieldUseType:
			values[i] = new(sql.NullString)
		case buyerneed.FieldNeededFrom, buyerneed.FieldCreatedAt, buyerneed.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BuyerNeed fields.
func (_m *BuyerNeed) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case buyerneed.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case buyerneed.FieldBuyerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field buyer_id", values[i])
			} else if value.Valid {
				_m.BuyerID = value.String
			}
		case buyerneed.FieldPhone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phone", values[i])
			} else if value.Valid {
				_m.Phone = value.String
			}
		case buyerneed.FieldCity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field city", values[i])
			} else if value.Valid {
				_m.City = value.String
			}
		case buyerneed.FieldState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value.Valid {
				_m.State = value.String
			}
		case buyerneed.FieldLat:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field lat", values[i])
			} else if value.Valid {
				_m.Lat = new(float64)
				*_m.Lat = value.Float64
			}
		case buyerneed.FieldLng:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field lng", values[i])
			} else if value.Valid {
				_m.Lng = new(float64)
				*_m.Lng = value.Float64
			}
		case buyerneed.FieldRadiusMiles:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field radius_miles", values[i])
			} else if value.Valid {
				_m.RadiusMiles = value.Float64
			}
		case buyerneed.FieldMinSqft:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field min_sqft", values[i])
			} else if value.Valid {
				_m.MinSqft = int(value.Int64)
			}
		case buyerneed.FieldMaxSqft:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_sqft", values[i])
			} else if value.Valid {
				_m.MaxSqft = int(value.Int64)
			}
		case buyerneed.FieldUseType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field use_type", values[i])
			} else if value.Valid {
				_m.UseType = value.String
			}
		case buyerneed.FieldNeededFrom:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field needed_from", values[i])
			} else if value.Valid {
				_m.NeededFrom = new(time.Time)
				*_m.NeededFrom = value.Time
			}
		case buyerneed.FieldDurationMonths:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_months", values[i])
			} else if value.Valid {
				_m.DurationMonths = int(value.Int64)
			}
		case buyerneed.FieldMaxBudgetPerSqft:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field max_budget_per_sqft", values[i])
			} else if value.Valid {
				_m.MaxBudgetPerSqft = new(float64)
				*_m.MaxBudgetPerSqft = value.Float64
			}
		case buyerneed.FieldRequirements:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field requirements", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Requirements); err != nil {
					return fmt.Errorf("unmarshal field requirements: %w", err)
				}
			}
		case buyerneed.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case buyerneed.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the BuyerNeed.
// This includes values selected through modifiers, order, etc.
func (_m *BuyerNeed) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryBuyer queries the "buyer" edge of the BuyerNeed entity.
func (_m *BuyerNeed) QueryBuyer() *UserQuery {
	return NewBuyerNeedClient(_m.config).QueryBuyer(_m)
}

// QueryMatches queries the "matches" edge of the BuyerNeed entity.
func (_m *BuyerNeed) QueryMatches() *MatchQuery {
	return NewBuyerNeedClient(_m.config).QueryMatches(_m)
}

// QueryDlaTokens queries the "dla_tokens" edge of the BuyerNeed entity.
func (_m *BuyerNeed) QueryDlaTokens() *DLATokenQuery {
	return NewBuyerNeedClient(_m.config).QueryDlaTokens(_m)
}

// Update returns a builder for updating this BuyerNeed.
// Note that you need to call BuyerNeed.Unwrap() before calling this method if this BuyerNeed
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BuyerNeed) Update() *BuyerNeedUpdateOne {
	return NewBuyerNeedClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BuyerNeed entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BuyerNeed) Unwrap() *BuyerNeed {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: BuyerNeed is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BuyerNeed) String() string {
	var builder strings.Builder
	builder.WriteString("BuyerNeed(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("buyer_id=")
	builder.WriteString(_m.BuyerID)
	builder.WriteString(", ")
	builder.WriteString("phone=")
	builder.WriteString(_m.Phone)
	builder.WriteString(", ")
	builder.WriteString("city=")
	builder.WriteString(_m.City)
	builder.WriteString(", ")
	builder.WriteString("state=")
	builder.WriteString(_m.State)
	builder.WriteString(", ")
	if v := _m.Lat; v != nil {
		builder.WriteString("lat=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Lng; v != nil {
		builder.WriteString("lng=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("radius_miles=")
	builder.WriteString(fmt.Sprintf("%v", _m.RadiusMiles))
	builder.WriteString(", ")
	builder.WriteString("min_sqft=")
	builder.WriteString(fmt.Sprintf("%v", _m.MinSqft))
	builder.WriteString(", ")
	builder.WriteString("max_sqft=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxSqft))
	builder.WriteString(", ")
	builder.WriteString("use_type=")
	builder.WriteString(_m.UseType)
	builder.WriteString(", ")
	if v := _m.NeededFrom; v != nil {
		builder.WriteString("needed_from=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("duration_months=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationMonths))
	builder.WriteString(", ")
	if v := _m.MaxBudgetPerSqft; v != nil {
		builder.WriteString("max_budget_per_sqft=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("requirements=")
	builder.WriteString(fmt.Sprintf("%v", _m.Requirements))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// BuyerNeeds is a parsable slice of BuyerNeed.
type BuyerNeeds []*BuyerNeed
