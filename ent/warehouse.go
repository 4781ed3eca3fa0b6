// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/warehouse-exchange/wex/ent/company"
	"github.com/warehouse-exchange/wex/ent/truthcore"
	"github.com/warehouse-exchange/wex/ent/warehouse"
)

// Warehouse is the model entity for the Warehouse schema.
type Warehouse struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CompanyID holds the value of the "company_id" field.
	CompanyID string `json:"company_id,omitempty"`
	// Address holds the value of the "address" field.
	Address string `json:"address,omitempty"`
	// City holds the value of the "city" field.
	City string `json:"city,omitempty"`
	// Two-letter US state code
	State string `json:"state,omitempty"`
	// Zip holds the value of the "zip" field.
	Zip string `json:"zip,omitempty"`
	// Lat holds the value of the "lat" field.
	Lat *float64 `json:"lat,omitempty"`
	// Lng holds the value of the "lng" field.
	Lng *float64 `json:"lng,omitempty"`
	// Gross building size; rentable range lives on TruthCore
	BuildingSqft int `json:"building_sqft,omitempty"`
	// YearBuilt holds the value of the "year_built" field.
	YearBuilt int `json:"year_built,omitempty"`
	// ConstructionType holds the value of the "construction_type" field.
	ConstructionType string `json:"construction_type,omitempty"`
	// Image URLs
	Gallery []string `json:"gallery,omitempty"`
	// Required for DLA outreach
	ContactPhone string `json:"contact_phone,omitempty"`
	// SupplierStatus holds the value of the "supplier_status" field.
	SupplierStatus warehouse.SupplierStatus `json:"supplier_status,omitempty"`
	// LastOutreachAt holds the value of the "last_outreach_at" field.
	LastOutreachAt *time.Time `json:"last_outreach_at,omitempty"`
	// OutreachCount holds the value of the "outreach_count" field.
	OutreachCount int `json:"outreach_count,omitempty"`
	// Audit only; authorization goes through company_id
	CreatedBy string `json:"created_by,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the WarehouseQuery when eager-loading is set.
	Edges        WarehouseEdges `json:"edges"`
	selectValues sql.SelectValues
}

// WarehouseEdges holds the relations/edges for other nodes in the graph.
type WarehouseEdges struct {
	// Company holds the value of the company edge.
	Company *Company `json:"company,omitempty"`
	// TruthCore holds the value of the truth_core edge.
	TruthCore *TruthCore `json:"truth_core,omitempty"`
	// Matches holds the value of the matches edge.
	Matches []*Match `json:"matches,omitempty"`
	// Memories holds the value of the memories edge.
	Memories []*ContextualMemory `json:"memories,omitempty"`
	// Questions holds the value of the questions edge.
	Questions []*PropertyQuestion `json:"questions,omitempty"`
	// Knowledge holds the value of the knowledge edge.
	Knowledge []*PropertyKnowledge `json:"knowledge,omitempty"`
	// DlaTokens holds the value of the dla_tokens edge.
	DlaTokens []*DLAToken `json:"dla_tokens,omitempty"`
	// ToggleHistory holds the value of the toggle_history edge.
	ToggleHistory []*ToggleHistory `json:"toggle_history,omitempty"`
	// SupplierAgreements holds the value of the supplier_agreements edge.
	SupplierAgreements []*SupplierAgreement `json:"supplier_agreements,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [9]bool
}

// CompanyOrErr returns the Company value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e WarehouseEdges) CompanyOrErr() (*Company, error) {
	if e.Company != nil {
		return e.Company, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: company.Label}
	}
	return nil, &NotLoadedError{edge: "company"}
}

// TruthCoreOrErr returns the TruthCore value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e WarehouseEdges) TruthCoreOrErr() (*TruthCore, error) {
	if e.TruthCore != nil {
		return e.TruthCore, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: truthcore.Label}
	}
	return nil, &NotLoadedError{edge: "truth_core"}
}

// MatchesOrErr returns the Matches value or an error if the edge
// was not loaded in eager-loading.
func (e WarehouseEdges) MatchesOrErr() ([]*Match, error) {
	if e.loadedTypes[2] {
		return e.Matches, nil
	}
	return nil, &NotLoadedError{edge: "matches"}
}

// MemoriesOrErr returns the Memories value or an error if the edge
// was not loaded in eager-loading.
func (e WarehouseEdges) MemoriesOrErr() ([]*ContextualMemory, error) {
	if e.loadedTypes[3] {
		return e.Memories, nil
	}
	return nil, &NotLoadedError{edge: "memories"}
}

// QuestionsOrErr returns the Questions value or an error if the edge
// was not loaded in eager-loading.
func (e WarehouseEdges) QuestionsOrErr() ([]*PropertyQuestion, error) {
	if e.loadedTypes[4] {
		return e.Questions, nil
	}
	return nil, &NotLoadedError{edge: "questions"}
}

// KnowledgeOrErr returns the Knowledge value or an error if the edge
// was not loaded in eager-loading.
func (e WarehouseEdges) KnowledgeOrErr() ([]*PropertyKnowledge, error) {
	if e.loadedTypes[5] {
		return e.Knowledge, nil
	}
	return nil, &NotLoadedError{edge: "knowledge"}
}

// DlaTokensOrErr returns the DlaTokens value or an error if the edge
// was not loaded in eager-loading.
func (e WarehouseEdges) DlaTokensOrErr() ([]*DLAToken, error) {
	if e.loadedTypes[6] {
		return e.DlaTokens, nil
	}
	return nil, &NotLoadedError{edge: "dla_tokens"}
}

// ToggleHistoryOrErr returns the ToggleHistory value or an error if the edge
// was not loaded in eager-loading.
func (e WarehouseEdges) ToggleHistoryOrErr() ([]*ToggleHistory, error) {
	if e.loadedTypes[7] {
		return e.ToggleHistory, nil
	}
	return nil, &NotLoadedError{edge: "toggle_history"}
}

// SupplierAgreementsOrErr returns the SupplierAgreements value or an error if the edge
// was not loaded in eager-loading.
func (e WarehouseEdges) SupplierAgreementsOrErr() ([]*SupplierAgreement, error) {
	if e.loadedTypes[8] {
		return e.SupplierAgreements, nil
	}
	return nil, &NotLoadedError{edge: "supplier_agreements"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Warehouse) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case warehouse.FieldGallery:
			values[i] = new([]byte)
		case warehouse.FieldLat, warehouse.FieldLng:
			values[i] = new(sql.NullFloat64)
		case warehouse.FieldBuildingSqft, warehouse.FieldYearBuilt, warehouse.FieldOutreachCount:
			values[i] = new(sql.NullInt64)
		case warehouse.FieldID, warehouse.FieldCompanyID, warehouse.FieldAddress, warehouse.FieldCity, warehouse.FieldState, warehouse.FieldZip, warehouse.FieldConstructionType, warehouse.FieldContactPhone, warehouse.FieldSupplierStatus, warehouse.FieldCreatedBy:
			values[i] = new(sql.NullString)
		case warehouse.FieldLastOutreachAt, warehouse.FieldCreatedAt, warehouse.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Warehouse fields.
func (_m *Warehouse) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case warehouse.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case warehouse.FieldCompanyID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field company_id", values[i])
			} else if value.Valid {
				_m.CompanyID = value.String
			}
		case warehouse.FieldAddress:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field address", values[i])
			} else if value.Valid {
				_m.Address = value.String
			}
		case warehouse.FieldCity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field city", values[i])
			} else if value.Valid {
				_m.City = value.String
			}
		case warehouse.FieldState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value.Valid {
				_m.State = value.String
			}
		case warehouse.FieldZip:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field zip", values[i])
			} else if value.Valid {
				_m.Zip = value.String
			}
		case warehouse.FieldLat:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field lat", values[i])
			} else if value.Valid {
				_m.Lat = new(float64)
				*_m.Lat = value.Float64
			}
		case warehouse.FieldLng:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field lng", values[i])
			} else if value.Valid {
				_m.Lng = new(float64)
				*_m.Lng = value.Float64
			}
		case warehouse.FieldBuildingSqft:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field building_sqft", values[i])
			} else if value.Valid {
				_m.BuildingSqft = int(value.Int64)
			}
		case warehouse.FieldYearBuilt:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field year_built", values[i])
			} else if value.Valid {
				_m.YearBuilt = int(value.Int64)
			}
		case warehouse.FieldConstructionType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field construction_type", values[i])
			} else if value.Valid {
				_m.ConstructionType = value.String
			}
		case warehouse.FieldGallery:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field gallery", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Gallery); err != nil {
					return fmt.Errorf("unmarshal field gallery: %w", err)
				}
			}
		case warehouse.FieldContactPhone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field contact_phone", values[i])
			} else if value.Valid {
				_m.ContactPhone = value.String
			}
		case warehouse.FieldSupplierStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field supplier_status", values[i])
			} else if value.Valid {
				_m.SupplierStatus = warehouse.SupplierStatus(value.String)
			}
		case warehouse.FieldLastOutreachAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_outreach_at", values[i])
			} else if value.Valid {
				_m.LastOutreachAt = new(time.Time)
				*_m.LastOutreachAt = value.Time
			}
		case warehouse.FieldOutreachCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field outreach_count", values[i])
			} else if value.Valid {
				_m.OutreachCount = int(value.Int64)
			}
		case warehouse.FieldCreatedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field created_by", values[i])
			} else if value.Valid {
				_m.CreatedBy = value.String
			}
		case warehouse.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case warehouse.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Warehouse.
// This includes values selected through modifiers, order, etc.
func (_m *Warehouse) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCompany queries the "company" edge of the Warehouse entity.
func (_m *Warehouse) QueryCompany() *CompanyQuery {
	return NewWarehouseClient(_m.config).QueryCompany(_m)
}

// QueryTruthCore queries the "truth_core" edge of the Warehouse entity.
func (_m *Warehouse) QueryTruthCore() *TruthCoreQuery {
	return NewWarehouseClient(_m.config).QueryTruthCore(_m)
}

// QueryMatches queries the "matches" edge of the Warehouse entity.
func (_m *Warehouse) QueryMatches() *MatchQuery {
	return NewWarehouseClient(_m.config).QueryMatches(_m)
}

// QueryMemories queries the "memories" edge of the Warehouse entity.
func (_m *Warehouse) QueryMemories() *ContextualMemoryQuery {
	return NewWarehouseClient(_m.config).QueryMemories(_m)
}

// QueryQuestions queries the "questions" edge of the Warehouse entity.
func (_m *Warehouse) QueryQuestions() *PropertyQuestionQuery {
	return NewWarehouseClient(_m.config).QueryQuestions(_m)
}

// QueryKnowledge queries the "knowledge" edge of the Warehouse entity.
func (_m *Warehouse) QueryKnowledge() *PropertyKnowledgeQuery {
	return NewWarehouseClient(_m.config).QueryKnowledge(_m)
}

// QueryDlaTokens queries the "dla_tokens" edge of the Warehouse entity.
func (_m *Warehouse) QueryDlaTokens() *DLATokenQuery {
	return NewWarehouseClient(_m.config).QueryDlaTokens(_m)
}

// QueryToggleHistory queries the "toggle_history" edge of the Warehouse entity.
func (_m *Warehouse) QueryToggleHistory() *ToggleHistoryQuery {
	return NewWarehouseClient(_m.config).QueryToggleHistory(_m)
}

// QuerySupplierAgreements queries the "supplier_agreements" edge of the Warehouse entity.
func (_m *Warehouse) QuerySupplierAgreements() *SupplierAgreementQuery {
	return NewWarehouseClient(_m.config).QuerySupplierAgreements(_m)
}

// Update returns a builder for updating this Warehouse.
// Note that you need to call Warehouse.Unwrap() before calling this method if this Warehouse
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Warehouse) Update() *WarehouseUpdateOne {
	return NewWarehouseClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Warehouse entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Warehouse) Unwrap() *Warehouse {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Warehouse is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Warehouse) String() string {
	var builder strings.Builder
	builder.WriteString("Warehouse(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("company_id=")
	builder.WriteString(_m.CompanyID)
	builder.WriteString(", ")
	builder.WriteString("address=")
	builder.WriteString(_m.Address)
	builder.WriteString(", ")
	builder.WriteString("city=")
	builder.WriteString(_m.City)
	builder.WriteString(", ")
	builder.WriteString("state=")
	builder.WriteString(_m.State)
	builder.WriteString(", ")
	builder.WriteString("zip=")
	builder.WriteString(_m.Zip)
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
	builder.WriteString("building_sqft=")
	builder.WriteString(fmt.Sprintf("%v", _m.BuildingSqft))
	builder.WriteString(", ")
	builder.WriteString("year_built=")
	builder.WriteString(fmt.Sprintf("%v", _m.YearBuilt))
	builder.WriteString(", ")
	builder.WriteString("construction_type=")
	builder.WriteString(_m.ConstructionType)
	builder.WriteString(", ")
	builder.WriteString("gallery=")
	builder.WriteString(fmt.Sprintf("%v", _m.Gallery))
	builder.WriteString(", ")
	builder.WriteString("contact_phone=")
	builder.WriteString(_m.ContactPhone)
	builder.WriteString(", ")
	builder.WriteString("supplier_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.SupplierStatus))
	builder.WriteString(", ")
	if v := _m.LastOutreachAt; v != nil {
		builder.WriteString("last_outreach_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("outreach_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.OutreachCount))
	builder.WriteString(", ")
	builder.WriteString("created_by=")
	builder.WriteString(_m.CreatedBy)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Warehouses is a parsable slice of Warehouse.
type Warehouses []*Warehouse
