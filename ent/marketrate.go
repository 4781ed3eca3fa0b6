// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/warehouse-exchange/wex/ent/marketrate"
)

// MarketRate is the model entity for the MarketRate schema.
type MarketRate struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Zip holds the value of the "zip" field.
	Zip string `json:"zip,omitempty"`
	// Two-letter state code, uppercase
	State string `json:"state,omitempty"`
	// RateLow holds the value of the "rate_low" field.
	RateLow float64 `json:"rate_low,omitempty"`
	// RateHigh holds the value of the "rate_high" field.
	RateHigh float64 `json:"rate_high,omitempty"`
	// Source holds the value of the "source" field.
	Source marketrate.Source `json:"source,omitempty"`
	// FetchedAt holds the value of the "fetched_at" field.
	FetchedAt time.Time `json:"fetched_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MarketRate) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case marketrate.FieldRateLow, marketrate.FieldRateHigh:
			values[i] = new(sql.NullFloat64)
		case marketrate.FieldID, marketrate.FieldZip, marketrate.FieldState, marketrate.FieldSource:
			values[i] = new(sql.NullString)
		case marketrate.FieldFetchedAt, marketrate.FieldCreatedAt, marketrate.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MarketRate fields.
func (_m *MarketRate) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case marketrate.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case marketrate.FieldZip:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field zip", values[i])
			} else if value.Valid {
				_m.Zip = value.String
			}
		case marketrate.FieldState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value.Valid {
				_m.State = value.String
			}
		case marketrate.FieldRateLow:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field rate_low", values[i])
			} else if value.Valid {
				_m.RateLow = value.Float64
			}
		case marketrate.FieldRateHigh:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field rate_high", values[i])
			} else if value.Valid {
				_m.RateHigh = value.Float64
			}
		case marketrate.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = marketrate.Source(value.String)
			}
		case marketrate.FieldFetchedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field fetched_at", values[i])
			} else if value.Valid {
				_m.FetchedAt = value.Time
			}
		case marketrate.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case marketrate.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the MarketRate.
// This includes values selected through modifiers, order, etc.
func (_m *MarketRate) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this MarketRate.
// Note that you need to call MarketRate.Unwrap() before calling this method if this MarketRate
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MarketRate) Update() *MarketRateUpdateOne {
	return NewMarketRateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MarketRate entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MarketRate) Unwrap() *MarketRate {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MarketRate is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MarketRate) String() string {
	var builder strings.Builder
	builder.WriteString("MarketRate(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("zip=")
	builder.WriteString(_m.Zip)
	builder.WriteString(", ")
	builder.WriteString("state=")
	builder.WriteString(_m.State)
	builder.WriteString(", ")
	builder.WriteString("rate_low=")
	builder.WriteString(fmt.Sprintf("%v", _m.RateLow))
	builder.WriteString(", ")
	builder.WriteString("rate_high=")
	builder.WriteString(fmt.Sprintf("%v", _m.RateHigh))
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(fmt.Sprintf("%v", _m.Source))
	builder.WriteString(", ")
	builder.WriteString("fetched_at=")
	builder.WriteString(_m.FetchedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// MarketRates is a parsable slice of MarketRate.
type MarketRates []*MarketRate
