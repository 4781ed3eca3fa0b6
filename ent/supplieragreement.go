// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/warehouse-exchange/wex/ent/supplieragreement"
	"github.com/warehouse-exchange/wex/ent/warehouse"
)

// SupplierAgreement is the model entity for the SupplierAgreement schema.
type SupplierAgreement struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// WarehouseID holds the value of the "warehouse_id" field.
	WarehouseID string `json:"warehouse_id,omitempty"`
	// Status holds the value of the "status" field.
	Status supplieragreement.Status `json:"status,omitempty"`
	// Origin holds the value of the "origin" field.
	Origin supplieragreement.Origin `json:"origin,omitempty"`
	// ExternalRef holds the value of the "external_ref" field.
	ExternalRef string `json:"external_ref,omitempty"`
	// SignedAt holds the value of the "signed_at" field.
	SignedAt *time.Time `json:"signed_at,omitempty"`
	// TerminatedAt holds the value of the "terminated_at" field.
	TerminatedAt *time.Time `json:"terminated_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SupplierAgreementQuery when eager-loading is set.
	Edges        SupplierAgreementEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SupplierAgreementEdges holds the relations/edges for other nodes in the graph.
type SupplierAgreementEdges struct {
	// Warehouse holds the value of the warehouse edge.
	Warehouse *Warehouse `json:"warehouse,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// WarehouseOrErr returns the Warehouse value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SupplierAgreementEdges) WarehouseOrErr() (*Warehouse, error) {
	if e.Warehouse != nil {
		return e.Warehouse, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: warehouse.Label}
	}
	return nil, &NotLoadedError{edge: "warehouse"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SupplierAgreement) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case supplieragreement.FieldID, supplieragreement.FieldWarehouseID, supplieragreement.FieldStatus, supplieragreement.FieldOrigin, supplieragreement.FieldExternalRef:
			values[i] = new(sql.NullString)
		case supplieragreement.FieldSignedAt, supplieragreement.FieldTerminatedAt, supplieragreement.FieldCreatedAt, supplieragreement.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SupplierAgreement fields.
func (_m *SupplierAgreement) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case supplieragreement.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case supplieragreement.FieldWarehouseID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field warehouse_id", values[i])
			} else if value.Valid {
				_m.WarehouseID = value.String
			}
		case supplieragreement.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = supplieragreement.Status(value.String)
			}
		case supplieragreement.FieldOrigin:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field origin", values[i])
			} else if value.Valid {
				_m.Origin = supplieragreement.Origin(value.String)
			}
		case supplieragreement.FieldExternalRef:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field external_ref", values[i])
			} else if value.Valid {
				_m.ExternalRef = value.String
			}
		case supplieragreement.FieldSignedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field signed_at", values[i])
			} else if value.Valid {
				_m.SignedAt = new(time.Time)
				*_m.SignedAt = value.Time
			}
		case supplieragreement.FieldTerminatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field terminated_at", values[i])
			} else if value.Valid {
				_m.TerminatedAt = new(time.Time)
				*_m.TerminatedAt = value.Time
			}
		case supplieragreement.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case supplieragreement.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the SupplierAgreement.
// This includes values selected through modifiers, order, etc.
func (_m *SupplierAgreement) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryWarehouse queries the "warehouse" edge of the SupplierAgreement entity.
func (_m *SupplierAgreement) QueryWarehouse() *WarehouseQuery {
	return NewSupplierAgreementClient(_m.config).QueryWarehouse(_m)
}

// Update returns a builder for updating this SupplierAgreement.
// Note that you need to call SupplierAgreement.Unwrap() before calling this method if this SupplierAgreement
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SupplierAgreement) Update() *SupplierAgreementUpdateOne {
	return NewSupplierAgreementClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SupplierAgreement entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SupplierAgreement) Unwrap() *SupplierAgreement {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SupplierAgreement is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SupplierAgreement) String() string {
	var builder strings.Builder
	builder.WriteString("SupplierAgreement(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("warehouse_id=")
	builder.WriteString(_m.WarehouseID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("origin=")
	builder.WriteString(fmt.Sprintf("%v", _m.Origin))
	builder.WriteString(", ")
	builder.WriteString("external_ref=")
	builder.WriteString(_m.ExternalRef)
	builder.WriteString(", ")
	if v := _m.SignedAt; v != nil {
		builder.WriteString("signed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.TerminatedAt; v != nil {
		builder.WriteString("terminated_at=")
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

// SupplierAgreements is a parsable slice of SupplierAgreement.
type SupplierAgreements []*SupplierAgreement
