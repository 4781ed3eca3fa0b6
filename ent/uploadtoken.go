// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/warehouse-exchange/wex/ent/engagement"
	"github.com/warehouse-exchange/wex/ent/uploadtoken"
)

// UploadToken is the model entity for the UploadToken schema.
type UploadToken struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Token holds the value of the "token" field.
	Token string `json:"token,omitempty"`
	// EngagementID holds the value of the "engagement_id" field.
	EngagementID string `json:"engagement_id,omitempty"`
	// Purpose holds the value of the "purpose" field.
	Purpose uploadtoken.Purpose `json:"purpose,omitempty"`
	// Status holds the value of the "status" field.
	Status uploadtoken.Status `json:"status,omitempty"`
	// UploadedFileURL holds the value of the "uploaded_file_url" field.
	UploadedFileURL string `json:"uploaded_file_url,omitempty"`
	// ExpiresAt holds the value of the "expires_at" field.
	ExpiresAt time.Time `json:"expires_at,omitempty"`
	// UsedAt holds the value of the "used_at" field.
	UsedAt *time.Time `json:"used_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the UploadTokenQuery when eager-loading is set.
	Edges        UploadTokenEdges `json:"edges"`
	selectValues sql.SelectValues
}

// UploadTokenEdges holds the relations/edges for other nodes in the graph.
type UploadTokenEdges struct {
	// Engagement holds the value of the engagement edge.
	Engagement *Engagement `json:"engagement,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// EngagementOrErr returns the Engagement value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e UploadTokenEdges) EngagementOrErr() (*Engagement, error) {
	if e.Engagement != nil {
		return e.Engagement, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: engagement.Label}
	}
	return nil, &NotLoadedError{edge: "engagement"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*UploadToken) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case uploadtoken.FieldID, uploadtoken.FieldToken, uploadtoken.FieldEngagementID, uploadtoken.FieldPurpose, uploadtoken.FieldStatus, uploadtoken.FieldUploadedFileURL:
			values[i] = new(sql.NullString)
		case uploadtoken.FieldExpiresAt, uploadtoken.FieldUsedAt, uploadtoken.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the UploadToken fields.
func (_m *UploadToken) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case uploadtoken.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case uploadtoken.FieldToken:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field token", values[i])
			} else if value.Valid {
				_m.Token = value.String
			}
		case uploadtoken.FieldEngagementID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field engagement_id", values[i])
			} else if value.Valid {
				_m.EngagementID = value.String
			}
		case uploadtoken.FieldPurpose:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field purpose", values[i])
			} else if value.Valid {
				_m.Purpose = uploadtoken.Purpose(value.String)
			}
		case uploadtoken.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = uploadtoken.Status(value.String)
			}
		case uploadtoken.FieldUploadedFileURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field uploaded_file_url", values[i])
			} else if value.Valid {
				_m.UploadedFileURL = value.String
			}
		case uploadtoken.FieldExpiresAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field expires_at", values[i])
			} else if value.Valid {
				_m.ExpiresAt = value.Time
			}
		case uploadtoken.FieldUsedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field used_at", values[i])
			} else if value.Valid {
				_m.UsedAt = new(time.Time)
				*_m.UsedAt = value.Time
			}
		case uploadtoken.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the UploadToken.
// This includes values selected through modifiers, order, etc.
func (_m *UploadToken) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryEngagement queries the "engagement" edge of the UploadToken entity.
func (_m *UploadToken) QueryEngagement() *EngagementQuery {
	return NewUploadTokenClient(_m.config).QueryEngagement(_m)
}

// Update returns a builder for updating this UploadToken.
// Note that you need to call UploadToken.Unwrap() before calling this method if this UploadToken
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *UploadToken) Update() *UploadTokenUpdateOne {
	return NewUploadTokenClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the UploadToken entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *UploadToken) Unwrap() *UploadToken {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: UploadToken is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *UploadToken) String() string {
	var builder strings.Builder
	builder.WriteString("UploadToken(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("token=")
	builder.WriteString(_m.Token)
	builder.WriteString(", ")
	builder.WriteString("engagement_id=")
	builder.WriteString(_m.EngagementID)
	builder.WriteString(", ")
	builder.WriteString("purpose=")
	builder.WriteString(fmt.Sprintf("%v", _m.Purpose))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("uploaded_file_url=")
	builder.WriteString(_m.UploadedFileURL)
	builder.WriteString(", ")
	builder.WriteString("expires_at=")
	builder.WriteString(_m.ExpiresAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.UsedAt; v != nil {
		builder.WriteString("used_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// UploadTokens is a parsable slice of UploadToken.
type UploadTokens []*UploadToken
