// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/warehouse-exchange/wex/ent/engagement"
	"github.com/warehouse-exchange/wex/ent/paymentrecord"
)

// PaymentRecord is the model entity for the PaymentRecord schema.
type PaymentRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// EngagementID holds the value of the "engagement_id" field.
	EngagementID string `json:"engagement_id,omitempty"`
	// PeriodStart holds the value of the "period_start" field.
	PeriodStart time.Time `json:"period_start,omitempty"`
	// PeriodEnd holds the value of the "period_end" field.
	PeriodEnd time.Time `json:"period_end,omitempty"`
	// DueDate holds the value of the "due_date" field.
	DueDate time.Time `json:"due_date,omitempty"`
	// BuyerAmount holds the value of the "buyer_amount" field.
	BuyerAmount float64 `json:"buyer_amount,omitempty"`
	// SupplierAmount holds the value of the "supplier_amount" field.
	SupplierAmount float64 `json:"supplier_amount,omitempty"`
	// Spread retained by the exchange; equals buyer_amount - supplier_amount
	WexAmount float64 `json:"wex_amount,omitempty"`
	// BuyerStatus holds the value of the "buyer_status" field.
	BuyerStatus paymentrecord.BuyerStatus `json:"buyer_status,omitempty"`
	// SupplierStatus holds the value of the "supplier_status" field.
	SupplierStatus paymentrecord.SupplierStatus `json:"supplier_status,omitempty"`
	// BuyerPaidAt holds the value of the "buyer_paid_at" field.
	BuyerPaidAt *time.Time `json:"buyer_paid_at,omitempty"`
	// SupplierPaidAt holds the value of the "supplier_paid_at" field.
	SupplierPaidAt *time.Time `json:"supplier_paid_at,omitempty"`
	// Invoice or charge id at the payment provider
	ExternalRef string `json:"external_ref,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PaymentRecordQuery when eager-loading is set.
	Edges        PaymentRecordEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PaymentRecordEdges holds the relations/edges for other nodes in the graph.
type PaymentRecordEdges struct {
	// Engagement holds the value of the engagement edge.
	Engagement *Engagement `json:"engagement,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// EngagementOrErr returns the Engagement value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PaymentRecordEdges) EngagementOrErr() (*Engagement, error) {
	if e.Engagement != nil {
		return e.Engagement, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: engagement.Label}
	}
	return nil, &NotLoadedError{edge: "engagement"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PaymentRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case paymentrecord.FieldBuyerAmount, paymentrecord.FieldSupplierAmount, paymentrecord.FieldWexAmount:
			values[i] = new(sql.NullFloat64)
		case paymentrecord.FieldID, paymentrecord.FieldEngagementID, paymentrecord.FieldBuyerStatus, paymentrecord.FieldSupplierStatus, paymentrecord.FieldExternalRef:
			values[i] = new(sql.NullString)
		case paymentrecord.FieldPeriodStart, paymentrecord.FieldPeriodEnd, paymentrecord.FieldDueDate, paymentrecord.FieldBuyerPaidAt, paymentrecord.FieldSupplierPaidAt, paymentrecord.FieldCreatedAt, paymentrecord.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PaymentRecord fields.
func (_m *PaymentRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case paymentrecord.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case paymentrecord.FieldEngagementID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field engagement_id", values[i])
			} else if value.Valid {
				_m.EngagementID = value.String
			}
		case paymentrecord.FieldPeriodStart:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field period_start", values[i])
			} else if value.Valid {
				_m.PeriodStart = value.Time
			}
		case paymentrecord.FieldPeriodEnd:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field period_end", values[i])
			} else if value.Valid {
				_m.PeriodEnd = value.Time
			}
		case paymentrecord.FieldDueDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field due_date", values[i])
			} else if value.Valid {
				_m.DueDate = value.Time
			}
		case paymentrecord.FieldBuyerAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field buyer_amount", values[i])
			} else if value.Valid {
				_m.BuyerAmount = value.Float64
			}
		case paymentrecord.FieldSupplierAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field supplier_amount", values[i])
			} else if value.Valid {
				_m.SupplierAmount = value.Float64
			}
		case paymentrecord.FieldWexAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field wex_amount", values[i])
			} else if value.Valid {
				_m.WexAmount = value.Float64
			}
		case paymentrecord.FieldBuyerStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field buyer_status", values[i])
			} else if value.Valid {
				_m.BuyerStatus = paymentrecord.BuyerStatus(value.String)
			}
		case paymentrecord.FieldSupplierStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field supplier_status", values[i])
			} else if value.Valid {
				_m.SupplierStatus = paymentrecord.SupplierStatus(value.String)
			}
		case paymentrecord.FieldBuyerPaidAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field buyer_paid_at", values[i])
			} else if value.Valid {
				_m.BuyerPaidAt = new(time.Time)
				*_m.BuyerPaidAt = value.Time
			}
		case paymentrecord.FieldSupplierPaidAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field supplier_paid_at", values[i])
			} else if value.Valid {
				_m.SupplierPaidAt = new(time.Time)
				*_m.SupplierPaidAt = value.Time
			}
		case paymentrecord.FieldExternalRef:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field external_ref", values[i])
			} else if value.Valid {
				_m.ExternalRef = value.String
			}
		case paymentrecord.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case paymentrecord.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the PaymentRecord.
// This includes values selected through modifiers, order, etc.
func (_m *PaymentRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryEngagement queries the "engagement" edge of the PaymentRecord entity.
func (_m *PaymentRecord) QueryEngagement() *EngagementQuery {
	return NewPaymentRecordClient(_m.config).QueryEngagement(_m)
}

// Update returns a builder for updating this PaymentRecord.
// Note that you need to call PaymentRecord.Unwrap() before calling this method if this PaymentRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PaymentRecord) Update() *PaymentRecordUpdateOne {
	return NewPaymentRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PaymentRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PaymentRecord) Unwrap() *PaymentRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PaymentRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PaymentRecord) String() string {
	var builder strings.Builder
	builder.WriteString("PaymentRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("engagement_id=")
	builder.WriteString(_m.EngagementID)
	builder.WriteString(", ")
	builder.WriteString("period_start=")
	builder.WriteString(_m.PeriodStart.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("period_end=")
	builder.WriteString(_m.PeriodEnd.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("due_date=")
	builder.WriteString(_m.DueDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("buyer_amount=")
	builder.WriteString(fmt.Sprintf("%v", _m.BuyerAmount))
	builder.WriteString(", ")
	builder.WriteString("supplier_amount=")
	builder.WriteString(fmt.Sprintf("%v", _m.SupplierAmount))
	builder.WriteString(", ")
	builder.WriteString("wex_amount=")
	builder.WriteString(fmt.Sprintf("%v", _m.WexAmount))
	builder.WriteString(", ")
	builder.WriteString("buyer_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.BuyerStatus))
	builder.WriteString(", ")
	builder.WriteString("supplier_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.SupplierStatus))
	builder.WriteString(", ")
	if v := _m.BuyerPaidAt; v != nil {
		builder.WriteString("buyer_paid_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.SupplierPaidAt; v != nil {
		builder.WriteString("supplier_paid_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("external_ref=")
	builder.WriteString(_m.ExternalRef)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PaymentRecords is a parsable slice of PaymentRecord.
type PaymentRecords []*PaymentRecord
