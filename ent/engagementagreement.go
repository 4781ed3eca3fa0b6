// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/warehouse-exchange/wex/ent/engagement"
	"github.com/warehouse-exchange/wex/ent/engagementagreement"
)

// EngagementAgreement is the model entity for the EngagementAgreement schema.
type EngagementAgreement struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// EngagementID holds the value of the "engagement_id" field.
	EngagementID string `json:"engagement_id,omitempty"`
	// AgreementType holds the value of the "agreement_type" field.
	AgreementType engagementagreement.AgreementType `json:"agreement_type,omitempty"`
	// Version holds the value of the "version" field.
	Version int `json:"version,omitempty"`
	// Status holds the value of the "status" field.
	Status engagementagreement.Status `json:"status,omitempty"`
	// BuyerSignedAt holds the value of the "buyer_signed_at" field.
	BuyerSignedAt *time.Time `json:"buyer_signed_at,omitempty"`
	// SupplierSignedAt holds the value of the "supplier_signed_at" field.
	SupplierSignedAt *time.Time `json:"supplier_signed_at,omitempty"`
	// ExpiresAt holds the value of the "expires_at" field.
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	// Sqft holds the value of the "sqft" field.
	Sqft int `json:"sqft,omitempty"`
	// BuyerRate holds the value of the "buyer_rate" field.
	BuyerRate float64 `json:"buyer_rate,omitempty"`
	// SupplierRate holds the value of the "supplier_rate" field.
	SupplierRate float64 `json:"supplier_rate,omitempty"`
	// MonthlyBuyerTotal holds the value of the "monthly_buyer_total" field.
	MonthlyBuyerTotal float64 `json:"monthly_buyer_total,omitempty"`
	// MonthlySupplierPayout holds the value of the "monthly_supplier_payout" field.
	MonthlySupplierPayout float64 `json:"monthly_supplier_payout,omitempty"`
	// Envelope id at the e-sign provider
	ExternalRef string `json:"external_ref,omitempty"`
	// DocumentURL holds the value of the "document_url" field.
	DocumentURL string `json:"document_url,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the EngagementAgreementQuery when eager-loading is set.
	Edges        EngagementAgreementEdges `json:"edges"`
	selectValues sql.SelectValues
}

// EngagementAgreementEdges holds the relations/edges for other nodes in the graph.
type EngagementAgreementEdges struct {
	// Engagement holds the value of the engagement edge.
	Engagement *Engagement `json:"engagement,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// EngagementOrErr returns the Engagement value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e EngagementAgreementEdges) EngagementOrErr() (*Engagement, error) {
	if e.Engagement != nil {
		return e.Engagement, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: engagement.Label}
	}
	return nil, &NotLoadedError{edge: "engagement"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EngagementAgreement) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case engagementagreement.FieldBuyerRate, engagementagreement.FieldSupplierRate, engagementagreement.FieldMonthlyBuyerTotal, engagementagreement.FieldMonthlySupplierPayout:
			values[i] = new(sql.NullFloat64)
		case engagementagreement.FieldVersion, engagementagreement.FieldSqft:
			values[i] = new(sql.NullInt64)
		case engagementagreement.FieldID, engagementagreement.FieldEngagementID, engagementagreement.FieldAgreementType, engagementagreement.FieldStatus, engagementagreement.FieldExternalRef, engagementagreement.FieldDocumentURL:
			values[i] = new(sql.NullString)
		case engagementagreement.FieldBuyerSignedAt, engagementagreement.FieldSupplierSignedAt, engagementagreement.FieldExpiresAt, engagementagreement.FieldCreatedAt, engagementagreement.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EngagementAgreement fields.
func (_m *EngagementAgreement) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case engagementagreement.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case engagementagreement.FieldEngagementID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field engagement_id", values[i])
			} else if value.Valid {
				_m.EngagementID = value.String
			}
		case engagementagreement.FieldAgreementType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agreement_type", values[i])
			} else if value.Valid {
				_m.AgreementType = engagementagreement.AgreementType(value.String)
			}
		case engagementagreement.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = int(value.Int64)
			}
		case engagementagreement.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = engagementagreement.Status(value.String)
			}
		case engagementagreement.FieldBuyerSignedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field buyer_signed_at", values[i])
			} else if value.Valid {
				_m.BuyerSignedAt = new(time.Time)
				*_m.BuyerSignedAt = value.Time
			}
		case engagementagreement.FieldSupplierSignedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field supplier_signed_at", values[i])
			} else if value.Valid {
				_m.SupplierSignedAt = new(time.Time)
				*_m.SupplierSignedAt = value.Time
			}
		case engagementagreement.FieldExpiresAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field expires_at", values[i])
			} else if value.Valid {
				_m.ExpiresAt = new(time.Time)
				*_m.ExpiresAt = value.Time
			}
		case engagementagreement.FieldSqft:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sqft", values[i])
			} else if value.Valid {
				_m.Sqft = int(value.Int64)
			}
		case engagementagreement.FieldBuyerRate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field buyer_rate", values[i])
			} else if value.Valid {
				_m.BuyerRate = value.Float64
			}
		case engagementagreement.FieldSupplierRate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field supplier_rate", values[i])
			} else if value.Valid {
				_m.SupplierRate = value.Float64
			}
		case engagementagreement.FieldMonthlyBuyerTotal:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field monthly_buyer_total", values[i])
			} else if value.Valid {
				_m.MonthlyBuyerTotal = value.Float64
			}
		case engagementagreement.FieldMonthlySupplierPayout:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field monthly_supplier_payout", values[i])
			} else if value.Valid {
				_m.MonthlySupplierPayout = value.Float64
			}
		case engagementagreement.FieldExternalRef:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field external_ref", values[i])
			} else if value.Valid {
				_m.ExternalRef = value.String
			}
		case engagementagreement.FieldDocumentURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field document_url", values[i])
			} else if value.Valid {
				_m.DocumentURL = value.String
			}
		case engagementagreement.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case engagementagreement.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the EngagementAgreement.
// This includes values selected through modifiers, order, etc.
func (_m *EngagementAgreement) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryEngagement queries the "engagement" edge of the EngagementAgreement entity.
func (_m *EngagementAgreement) QueryEngagement() *EngagementQuery {
	return NewEngagementAgreementClient(_m.config).QueryEngagement(_m)
}

// Update returns a builder for updating this EngagementAgreement.
// Note that you need to call EngagementAgreement.Unwrap() before calling this method if this EngagementAgreement
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EngagementAgreement) Update() *EngagementAgreementUpdateOne {
	return NewEngagementAgreementClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EngagementAgreement entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EngagementAgreement) Unwrap() *EngagementAgreement {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EngagementAgreement is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EngagementAgreement) String() string {
	var builder strings.Builder
	builder.WriteString("EngagementAgreement(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("engagement_id=")
	builder.WriteString(_m.EngagementID)
	builder.WriteString(", ")
	builder.WriteString("agreement_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.AgreementType))
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.BuyerSignedAt; v != nil {
		builder.WriteString("buyer_signed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.SupplierSignedAt; v != nil {
		builder.WriteString("supplier_signed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ExpiresAt; v != nil {
		builder.WriteString("expires_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("sqft=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sqft))
	builder.WriteString(", ")
	builder.WriteString("buyer_rate=")
	builder.WriteString(fmt.Sprintf("%v", _m.BuyerRate))
	builder.WriteString(", ")
	builder.WriteString("supplier_rate=")
	builder.WriteString(fmt.Sprintf("%v", _m.SupplierRate))
	builder.WriteString(", ")
	builder.WriteString("monthly_buyer_total=")
	builder.WriteString(fmt.Sprintf("%v", _m.MonthlyBuyerTotal))
	builder.WriteString(", ")
	builder.WriteString("monthly_supplier_payout=")
	builder.WriteString(fmt.Sprintf("%v", _m.MonthlySupplierPayout))
	builder.WriteString(", ")
	builder.WriteString("external_ref=")
	builder.WriteString(_m.ExternalRef)
	builder.WriteString(", ")
	builder.WriteString("document_url=")
	builder.WriteString(_m.DocumentURL)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// EngagementAgreements is a parsable slice of EngagementAgreement.
type EngagementAgreements []*EngagementAgreement
