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
	"github.com/warehouse-exchange/wex/ent/engagement"
	"github.com/warehouse-exchange/wex/ent/instantbookscore"
	"github.com/warehouse-exchange/wex/ent/match"
	"github.com/warehouse-exchange/wex/ent/warehouse"
)

// Match is the model entity for the Match schema.
type Match struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// BuyerNeedID holds the value of the "buyer_need_id" field.
	BuyerNeedID string `json:"buyer_need_id,omitempty"`
	// WarehouseID holds the value of the "warehouse_id" field.
	WarehouseID string `json:"warehouse_id,omitempty"`
	// CompositeScore holds the value of the "composite_score" field.
	CompositeScore float64 `json:"composite_score,omitempty"`
	// LocationScore holds the value of the "location_score" field.
	LocationScore float64 `json:"location_score,omitempty"`
	// SizeScore holds the value of the "size_score" field.
	SizeScore float64 `json:"size_score,omitempty"`
	// UseTypeScore holds the value of the "use_type_score" field.
	UseTypeScore float64 `json:"use_type_score,omitempty"`
	// FeatureScore holds the value of the "feature_score" field.
	FeatureScore float64 `json:"feature_score,omitempty"`
	// TimingScore holds the value of the "timing_score" field.
	TimingScore float64 `json:"timing_score,omitempty"`
	// BudgetScore holds the value of the "budget_score" field.
	BudgetScore float64 `json:"budget_score,omitempty"`
	// DistanceMiles holds the value of the "distance_miles" field.
	DistanceMiles *float64 `json:"distance_miles,omitempty"`
	// LLM feature-pass reasoning; empty when the pass degraded
	Reasoning string `json:"reasoning,omitempty"`
	// Short human-readable score callouts for display
	Callouts []string `json:"callouts,omitempty"`
	// InstantBookEligible holds the value of the "instant_book_eligible" field.
	InstantBookEligible bool `json:"instant_book_eligible,omitempty"`
	// WithinBudget holds the value of the "within_budget" field.
	WithinBudget bool `json:"within_budget,omitempty"`
	// Snapshot of the derived buyer rate at scoring time
	BuyerRate float64 `json:"buyer_rate,omitempty"`
	// Status holds the value of the "status" field.
	Status match.Status `json:"status,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the MatchQuery when eager-loading is set.
	Edges        MatchEdges `json:"edges"`
	selectValues sql.SelectValues
}

// MatchEdges holds the relations/edges for other nodes in the graph.
type MatchEdges struct {
	// BuyerNeed holds the value of the buyer_need edge.
	BuyerNeed *BuyerNeed `json:"buyer_need,omitempty"`
	// Warehouse holds the value of the warehouse edge.
	Warehouse *Warehouse `json:"warehouse,omitempty"`
	// InstantBookScore holds the value of the instant_book_score edge.
	InstantBookScore *InstantBookScore `json:"instant_book_score,omitempty"`
	// Engagement holds the value of the engagement edge.
	Engagement *Engagement `json:"engagement,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// BuyerNeedOrErr returns the BuyerNeed value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MatchEdges) BuyerNeedOrErr() (*BuyerNeed, error) {
	if e.BuyerNeed != nil {
		return e.BuyerNeed, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: buyerneed.Label}
	}
	return nil, &NotLoadedError{edge: "buyer_need"}
}

// WarehouseOrErr returns the Warehouse value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MatchEdges) WarehouseOrErr() (*Warehouse, error) {
	if e.Warehouse != nil {
		return e.Warehouse, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: warehouse.Label}
	}
	return nil, &NotLoadedError{edge: "warehouse"}
}

// InstantBookScoreOrErr returns the InstantBookScore value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MatchEdges) InstantBookScoreOrErr() (*InstantBookScore, error) {
	if e.InstantBookScore != nil {
		return e.InstantBookScore, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: instantbookscore.Label}
	}
	return nil, &NotLoadedError{edge: "instant_book_score"}
}

// EngagementOrErr returns the Engagement value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MatchEdges) EngagementOrErr() (*Engagement, error) {
	if e.Engagement != nil {
		return e.Engagement, nil
	} else if e.loadedTypes[3] {
		return nil, &NotFoundError{label: engagement.Label}
	}
	return nil, &NotLoadedError{edge: "engagement"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Match) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case match.FieldCallouts:
			values[i] = new([]byte)
		case match.FieldInstantBookEligible, match.FieldWithinBudget:
			values[i] = new(sql.NullBool)
		case match.FieldCompositeScore, match.FieldLocationScore, match.FieldSizeScore, match.FieldUseTypeScore, match.FieldFeatureScore, match.FieldTimingScore, match.FieldBudgetScore, match.FieldDistanceMiles, match.FieldBuyerRate:
			values[i] = new(sql.NullFloat64)
		case match.FieldID, match.FieldBuyerNeedID, match.FieldWarehouseID, match.FieldReasoning, match.FieldStatus:
			values[i] = new(sql.NullString)
		case match.FieldCreatedAt, match.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Match fields.
func (_m *Match) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case match.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case match.FieldBuyerNeedID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field buyer_need_id", values[i])
			} else if value.Valid {
				_m.BuyerNeedID = value.String
			}
		case match.FieldWarehouseID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field warehouse_id", values[i])
			} else if value.Valid {
				_m.WarehouseID = value.String
			}
		case match.FieldCompositeScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field composite_score", values[i])
			} else if value.Valid {
				_m.CompositeScore = value.Float64
			}
		case match.FieldLocationScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field location_score", values[i])
			} else if value.Valid {
				_m.LocationScore = value.Float64
			}
		case match.FieldSizeScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field size_score", values[i])
			} else if value.Valid {
				_m.SizeScore = value.Float64
			}
		case match.FieldUseTypeScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field use_type_score", values[i])
			} else if value.Valid {
				_m.UseTypeScore = value.Float64
			}
		case match.FieldFeatureScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field feature_score", values[i])
			} else if value.Valid {
				_m.FeatureScore = value.Float64
			}
		case match.FieldTimingScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field timing_score", values[i])
			} else if value.Valid {
				_m.TimingScore = value.Float64
			}
		case match.FieldBudgetScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field budget_score", values[i])
			} else if value.Valid {
				_m.BudgetScore = value.Float64
			}
		case match.FieldDistanceMiles:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field distance_miles", values[i])
			} else if value.Valid {
				_m.DistanceMiles = new(float64)
				*_m.DistanceMiles = value.Float64
			}
		case match.FieldReasoning:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reasoning", values[i])
			} else if value.Valid {
				_m.Reasoning = value.String
			}
		case match.FieldCallouts:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field callouts", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Callouts); err != nil {
					return fmt.Errorf("unmarshal field callouts: %w", err)
				}
			}
		case match.FieldInstantBookEligible:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field instant_book_eligible", values[i])
			} else if value.Valid {
				_m.InstantBookEligible = value.Bool
			}
		case match.FieldWithinBudget:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field within_budget", values[i])
			} else if value.Valid {
				_m.WithinBudget = value.Bool
			}
		case match.FieldBuyerRate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field buyer_rate", values[i])
			} else if value.Valid {
				_m.BuyerRate = value.Float64
			}
		case match.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = match.Status(value.String)
			}
		case match.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case match.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Match.
// This includes values selected through modifiers, order, etc.
func (_m *Match) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryBuyerNeed queries the "buyer_need" edge of the Match entity.
func (_m *Match) QueryBuyerNeed() *BuyerNeedQuery {
	return NewMatchClient(_m.config).QueryBuyerNeed(_m)
}

// QueryWarehouse queries the "warehouse" edge of the Match entity.
func (_m *Match) QueryWarehouse() *WarehouseQuery {
	return NewMatchClient(_m.config).QueryWarehouse(_m)
}

// QueryInstantBookScore queries the "instant_book_score" edge of the Match entity.
func (_m *Match) QueryInstantBookScore() *InstantBookScoreQuery {
	return NewMatchClient(_m.config).QueryInstantBookScore(_m)
}

// QueryEngagement queries the "engagement" edge of the Match entity.
func (_m *Match) QueryEngagement() *EngagementQuery {
	return NewMatchClient(_m.config).QueryEngagement(_m)
}

// Update returns a builder for updating this Match.
// Note that you need to call Match.Unwrap() before calling this method if this Match
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Match) Update() *MatchUpdateOne {
	return NewMatchClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Match entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Match) Unwrap() *Match {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Match is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Match) String() string {
	var builder strings.Builder
	builder.WriteString("Match(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("buyer_need_id=")
	builder.WriteString(_m.BuyerNeedID)
	builder.WriteString(", ")
	builder.WriteString("warehouse_id=")
	builder.WriteString(_m.WarehouseID)
	builder.WriteString(", ")
	builder.WriteString("composite_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompositeScore))
	builder.WriteString(", ")
	builder.WriteString("location_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.LocationScore))
	builder.WriteString(", ")
	builder.WriteString("size_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.SizeScore))
	builder.WriteString(", ")
	builder.WriteString("use_type_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.UseTypeScore))
	builder.WriteString(", ")
	builder.WriteString("feature_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.FeatureScore))
	builder.WriteString(", ")
	builder.WriteString("timing_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimingScore))
	builder.WriteString(", ")
	builder.WriteString("budget_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.BudgetScore))
	builder.WriteString(", ")
	if v := _m.DistanceMiles; v != nil {
		builder.WriteString("distance_miles=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("reasoning=")
	builder.WriteString(_m.Reasoning)
	builder.WriteString(", ")
	builder.WriteString("callouts=")
	builder.WriteString(fmt.Sprintf("%v", _m.Callouts))
	builder.WriteString(", ")
	builder.WriteString("instant_book_eligible=")
	builder.WriteString(fmt.Sprintf("%v", _m.InstantBookEligible))
	builder.WriteString(", ")
	builder.WriteString("within_budget=")
	builder.WriteString(fmt.Sprintf("%v", _m.WithinBudget))
	builder.WriteString(", ")
	builder.WriteString("buyer_rate=")
	builder.WriteString(fmt.Sprintf("%v", _m.BuyerRate))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Matches is a parsable slice of Match.
type Matches []*Match
