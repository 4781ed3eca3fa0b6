// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/warehouse-exchange/wex/ent/instantbookscore"
	"github.com/warehouse-exchange/wex/ent/match"
)

// InstantBookScore is the model entity for the InstantBookScore schema.
type InstantBookScore struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// MatchID holds the value of the "match_id" field.
	MatchID string `json:"match_id,omitempty"`
	// TruthCoreCompleteness holds the value of the "truth_core_completeness" field.
	TruthCoreCompleteness float64 `json:"truth_core_completeness,omitempty"`
	// ContextualMemoryDepth holds the value of the "contextual_memory_depth" field.
	ContextualMemoryDepth float64 `json:"contextual_memory_depth,omitempty"`
	// SupplierTrustLevel holds the value of the "supplier_trust_level" field.
	SupplierTrustLevel float64 `json:"supplier_trust_level,omitempty"`
	// MatchSpecificity holds the value of the "match_specificity" field.
	MatchSpecificity float64 `json:"match_specificity,omitempty"`
	// FeatureAlignment holds the value of the "feature_alignment" field.
	FeatureAlignment float64 `json:"feature_alignment,omitempty"`
	// Total holds the value of the "total" field.
	Total float64 `json:"total,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the InstantBookScoreQuery when eager-loading is set.
	Edges        InstantBookScoreEdges `json:"edges"`
	selectValues sql.SelectValues
}

// InstantBookScoreEdges holds the relations/edges for other nodes in the graph.
type InstantBookScoreEdges struct {
	// Match holds the value of the match edge.
	Match *Match `json:"match,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// MatchOrErr returns the Match value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e InstantBookScoreEdges) MatchOrErr() (*Match, error) {
	if e.Match != nil {
		return e.Match, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: match.Label}
	}
	return nil, &NotLoadedError{edge: "match"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*InstantBookScore) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case instantbookscore.FieldTruthCoreCompleteness, instantbookscore.FieldContextualMemoryDepth, instantbookscore.FieldSupplierTrustLevel, instantbookscore.FieldMatchSpecificity, instantbookscore.FieldFeatureAlignment, instantbookscore.FieldTotal:
			values[i] = new(sql.NullFloat64)
		case instantbookscore.FieldID, instantbookscore.FieldMatchID:
			values[i] = new(sql.NullString)
		case instantbookscore.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the InstantBookScore fields.
func (_m *InstantBookScore) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case instantbookscore.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case instantbookscore.FieldMatchID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field match_id", values[i])
			} else if value.Valid {
				_m.MatchID = value.String
			}
		case instantbookscore.FieldTruthCoreCompleteness:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field truth_core_completeness", values[i])
			} else if value.Valid {
				_m.TruthCoreCompleteness = value.Float64
			}
		case instantbookscore.FieldContextualMemoryDepth:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field contextual_memory_depth", values[i])
			} else if value.Valid {
				_m.ContextualMemoryDepth = value.Float64
			}
		case instantbookscore.FieldSupplierTrustLevel:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field supplier_trust_level", values[i])
			} else if value.Valid {
				_m.SupplierTrustLevel = value.Float64
			}
		case instantbookscore.FieldMatchSpecificity:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field match_specificity", values[i])
			} else if value.Valid {
				_m.MatchSpecificity = value.Float64
			}
		case instantbookscore.FieldFeatureAlignment:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field feature_alignment", values[i])
			} else if value.Valid {
				_m.FeatureAlignment = value.Float64
			}
		case instantbookscore.FieldTotal:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total", values[i])
			} else if value.Valid {
				_m.Total = value.Float64
			}
		case instantbookscore.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the InstantBookScore.
// This includes values selected through modifiers, order, etc.
func (_m *InstantBookScore) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryMatch queries the "match" edge of the InstantBookScore entity.
func (_m *InstantBookScore) QueryMatch() *MatchQuery {
	return NewInstantBookScoreClient(_m.config).QueryMatch(_m)
}

// Update returns a builder for updating this InstantBookScore.
// Note that you need to call InstantBookScore.Unwrap() before calling this method if this InstantBookScore
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *InstantBookScore) Update() *InstantBookScoreUpdateOne {
	return NewInstantBookScoreClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the InstantBookScore entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *InstantBookScore) Unwrap() *InstantBookScore {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: InstantBookScore is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *InstantBookScore) String() string {
	var builder strings.Builder
	builder.WriteString("InstantBookScore(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("match_id=")
	builder.WriteString(_m.MatchID)
	builder.WriteString(", ")
	builder.WriteString("truth_core_completeness=")
	builder.WriteString(fmt.Sprintf("%v", _m.TruthCoreCompleteness))
	builder.WriteString(", ")
	builder.WriteString("contextual_memory_depth=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContextualMemoryDepth))
	builder.WriteString(", ")
	builder.WriteString("supplier_trust_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.SupplierTrustLevel))
	builder.WriteString(", ")
	builder.WriteString("match_specificity=")
	builder.WriteString(fmt.Sprintf("%v", _m.MatchSpecificity))
	builder.WriteString(", ")
	builder.WriteString("feature_alignment=")
	builder.WriteString(fmt.Sprintf("%v", _m.FeatureAlignment))
	builder.WriteString(", ")
	builder.WriteString("total=")
	builder.WriteString(fmt.Sprintf("%v", _m.Total))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// InstantBookScores is a parsable slice of InstantBookScore.
type InstantBookScores []*InstantBookScore
