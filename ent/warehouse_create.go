// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/warehouse-exchange/wex/ent/company"
	"github.com/warehouse-exchange/wex/ent/contextualmemory"
	"github.com/warehouse-exchange/wex/ent/dlatoken"
	"github.com/warehouse-exchange/wex/ent/match"
	"github.com/warehouse-exchange/wex/ent/propertyknowledge"
	"github.com/warehouse-exchange/wex/ent/propertyquestion"
	"github.com/warehouse-exchange/wex/ent/supplieragreement"
	"github.com/warehouse-exchange/wex/ent/togglehistory"
	"github.com/warehouse-exchange/wex/ent/truthcore"
	"github.com/warehouse-exchange/wex/ent/warehouse"
)

// WarehouseCreate is the builder for creating a Warehouse entity.
type WarehouseCreate struct {
	config
	mutation *WarehouseMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCompanyID sets the "company_id" field.
func (_c *WarehouseCreate) SetCompanyID(v string) *WarehouseCreate {
	_c.mutation.SetCompanyID(v)
	return _c
}

// SetAddress sets the "address" field.
func (_c *WarehouseCreate) SetAddress(v string) *WarehouseCreate {
	_c.mutation.SetAddress(v)
	return _c
}

// SetCity sets the "city" field.
func (_c *WarehouseCreate) SetCity(v string) *WarehouseCreate {
	_c.mutation.SetCity(v)
	return _c
}

// SetState sets the "state" field.
func (_c *WarehouseCreate) SetState(v string) *WarehouseCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetZip sets the "zip" field.
func (_c *WarehouseCreate) SetZip(v string) *WarehouseCreate {
	_c.mutation.SetZip(v)
	return _c
}

// SetNillableZip sets the "zip" field if the given value is not nil.
func (_c *WarehouseCreate) SetNillableZip(v *string) *WarehouseCreate {
	if v != nil {
		_c.SetZip(*v)
	}
	return _c
}

// SetLat sets the "lat" field.
func (_c *WarehouseCreate) SetLat(v float64) *WarehouseCreate {
	_c.mutation.SetLat(v)
	return _c
}

// SetNillableLat sets the "lat" field if the given value is not nil.
func (_c *WarehouseCreate) SetNillableLat(v *float64) *WarehouseCreate {
	if v != nil {
		_c.SetLat(*v)
	}
	return _c
}

// SetLng sets the "lng" field.
func (_c *WarehouseCreate) SetLng(v float64) *WarehouseCreate {
	_c.mutation.SetLng(v)
	return _c
}

// SetNillableLng sets the "lng" field if the given value is not nil.
func (_c *WarehouseCreate) SetNillableLng(v *float64) *WarehouseCreate {
	if v != nil {
		_c.SetLng(*v)
	}
	return _c
}

// SetBuildingSqft sets the "building_sqft" field.
func (_c *WarehouseCreate) SetBuildingSqft(v int) *WarehouseCreate {
	_c.mutation.SetBuildingSqft(v)
	return _c
}

// SetNillableBuildingSqft sets the "building_sqft" field if the given value is not nil.
func (_c *WarehouseCreate) SetNillableBuildingSqft(v *int) *WarehouseCreate {
	if v != nil {
		_c.SetBuildingSqft(*v)
	}
	return _c
}

// SetYearBuilt sets the "year_built" field.
func (_c *WarehouseCreate) SetYearBuilt(v int) *WarehouseCreate {
	_c.mutation.SetYearBuilt(v)
	return _c
}

// SetNillableYearBuilt sets the "year_built" field if the given value is not nil.
func (_c *WarehouseCreate) SetNillableYearBuilt(v *int) *WarehouseCreate {
	if v != nil {
		_c.SetYearBuilt(*v)
	}
	return _c
}

// SetConstructionType sets the "construction_type" field.
func (_c *WarehouseCreate) SetConstructionType(v string) *WarehouseCreate {
	_c.mutation.SetConstructionType(v)
	return _c
}

// SetNillableConstructionType sets the "construction_type" field if the given value is not nil.
func (_c *WarehouseCreate) SetNillableConstructionType(v *string) *WarehouseCreate {
	if v != nil {
		_c.SetConstructionType(*v)
	}
	return _c
}

// SetGallery sets the "gallery" field.
func (_c *WarehouseCreate) SetGallery(v []string) *WarehouseCreate {
	_c.mutation.SetGallery(v)
	return _c
}

// SetContactPhone sets the "contact_phone" field.
func (_c *WarehouseCreate) SetContactPhone(v string) *WarehouseCreate {
	_c.mutation.SetContactPhone(v)
	return _c
}

// SetNillableContactPhone sets the "contact_phone" field if the given value is not nil.
func (_c *WarehouseCreate) SetNillableContactPhone(v *string) *WarehouseCreate {
	if v != nil {
		_c.SetContactPhone(*v)
	}
	return _c
}

// SetSupplierStatus sets the "supplier_status" field.
func (_c *WarehouseCreate) SetSupplierStatus(v warehouse.SupplierStatus) *WarehouseCreate {
	_c.mutation.SetSupplierStatus(v)
	return _c
}

// SetNillableSupplierStatus sets the "supplier_status" field if the given value is not nil.
func (_c *WarehouseCreate) SetNillableSupplierStatus(v *warehouse.SupplierStatus) *WarehouseCreate {
	if v != nil {
		_c.SetSupplierStatus(*v)
	}
	return _c
}

// SetLastOutreachAt sets the "last_outreach_at" field.
func (_c *WarehouseCreate) SetLastOutreachAt(v time.Time) *WarehouseCreate {
	_c.mutation.SetLastOutreachAt(v)
	return _c
}

// SetNillableLastOutreachAt sets the "last_outreach_at" field if the given value is not nil.
func (_c *WarehouseCreate) SetNillableLastOutreachAt(v *time.Time) *WarehouseCreate {
	if v != nil {
		_c.SetLastOutreachAt(*v)
	}
	return _c
}

// SetOutreachCount sets the "outreach_count" field.
func (_c *WarehouseCreate) SetOutreachCount(v int) *WarehouseCreate {
	_c.mutation.SetOutreachCount(v)
	return _c
}

// SetNillableOutreachCount sets the "outreach_count" field if the given value is not nil.
func (_c *WarehouseCreate) SetNillableOutreachCount(v *int) *WarehouseCreate {
	if v != nil {
		_c.SetOutreachCount(*v)
	}
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *WarehouseCreate) SetCreatedBy(v string) *WarehouseCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_c *WarehouseCreate) SetNillableCreatedBy(v *string) *WarehouseCreate {
	if v != nil {
		_c.SetCreatedBy(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *WarehouseCreate) SetCreatedAt(v time.Time) *WarehouseCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WarehouseCreate) SetNillableCreatedAt(v *time.Time) *WarehouseCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *WarehouseCreate) SetUpdatedAt(v time.Time) *WarehouseCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *WarehouseCreate) SetNillableUpdatedAt(v *time.Time) *WarehouseCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *WarehouseCreate) SetID(v string) *WarehouseCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetCompany sets the "company" edge to the Company entity.
func (_c *WarehouseCreate) SetCompany(v *Company) *WarehouseCreate {
	return _c.SetCompanyID(v.ID)
}

// SetTruthCoreID sets the "truth_core" edge to the TruthCore entity by ID.
func (_c *WarehouseCreate) SetTruthCoreID(id string) *WarehouseCreate {
	_c.mutation.SetTruthCoreID(id)
	return _c
}

// SetNillableTruthCoreID sets the "truth_core" edge to the TruthCore entity by ID if the given value is not nil.
func (_c *WarehouseCreate) SetNillableTruthCoreID(id *string) *WarehouseCreate {
	if id != nil {
		_c = _c.SetTruthCoreID(*id)
	}
	return _c
}

// SetTruthCore sets the "truth_core" edge to the TruthCore entity.
func (_c *WarehouseCreate) SetTruthCore(v *TruthCore) *WarehouseCreate {
	return _c.SetTruthCoreID(v.ID)
}

// AddMatchIDs adds the "matches" edge to the Match entity by IDs.
func (_c *WarehouseCreate) AddMatchIDs(ids ...string) *WarehouseCreate {
	_c.mutation.AddMatchIDs(ids...)
	return _c
}

// AddMatches adds the "matches" edges to the Match entity.
func (_c *WarehouseCreate) AddMatches(v ...*Match) *WarehouseCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMatchIDs(ids...)
}

// AddMemoryIDs adds the "memories" edge to the ContextualMemory entity by IDs.
func (_c *WarehouseCreate) AddMemoryIDs(ids ...string) *WarehouseCreate {
	_c.mutation.AddMemoryIDs(ids...)
	return _c
}

// AddMemories adds the "memories" edges to the ContextualMemory entity.
func (_c *WarehouseCreate) AddMemories(v ...*ContextualMemory) *WarehouseCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMemoryIDs(ids...)
}

// AddQuestionIDs adds the "questions" edge to the PropertyQuestion entity by IDs.
func (_c *WarehouseCreate) AddQuestionIDs(ids ...string) *WarehouseCreate {
	_c.mutation.AddQuestionIDs(ids...)
	return _c
}

// AddQuestions adds the "questions" edges to the PropertyQuestion entity.
func (_c *WarehouseCreate) AddQuestions(v ...*PropertyQuestion) *WarehouseCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddQuestionIDs(ids...)
}

// AddKnowledgeIDs adds the "knowledge" edge to the PropertyKnowledge entity by IDs.
func (_c *WarehouseCreate) AddKnowledgeIDs(ids ...string) *WarehouseCreate {
	_c.mutation.AddKnowledgeIDs(ids...)
	return _c
}

// AddKnowledge adds the "knowledge" edges to the PropertyKnowledge entity.
func (_c *WarehouseCreate) AddKnowledge(v ...*PropertyKnowledge) *WarehouseCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddKnowledgeIDs(ids...)
}

// AddDlaTokenIDs adds the "dla_tokens" edge to the DLAToken entity by IDs.
func (_c *WarehouseCreate) AddDlaTokenIDs(ids ...string) *WarehouseCreate {
	_c.mutation.AddDlaTokenIDs(ids...)
	return _c
}

// AddDlaTokens adds the "dla_tokens" edges to the DLAToken entity.
func (_c *WarehouseCreate) AddDlaTokens(v ...*DLAToken) *WarehouseCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDlaTokenIDs(ids...)
}

// AddToggleHistoryIDs adds the "toggle_history" edge to the ToggleHistory entity by IDs.
func (_c *WarehouseCreate) AddToggleHistoryIDs(ids ...string) *WarehouseCreate {
	_c.mutation.AddToggleHistoryIDs(ids...)
	return _c
}

// AddToggleHistory adds the "toggle_history" edges to the ToggleHistory entity.
func (_c *WarehouseCreate) AddToggleHistory(v ...*ToggleHistory) *WarehouseCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddToggleHistoryIDs(ids...)
}

// AddSupplierAgreementIDs adds the "supplier_agreements" edge to the SupplierAgreement entity by IDs.
func (_c *WarehouseCreate) AddSupplierAgreementIDs(ids ...string) *WarehouseCreate {
	_c.mutation.AddSupplierAgreementIDs(ids...)
	return _c
}

// AddSupplierAgreements adds the "supplier_agreements" edges to the SupplierAgreement entity.
func (_c *WarehouseCreate) AddSupplierAgreements(v ...*SupplierAgreement) *WarehouseCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSupplierAgreementIDs(ids...)
}

// Mutation returns the WarehouseMutation object of the builder.
func (_c *WarehouseCreate) Mutation() *WarehouseMutation {
	return _c.mutation
}

// Save creates the Warehouse in the database.
func (_c *WarehouseCreate) Save(ctx context.Context) (*Warehouse, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WarehouseCreate) SaveX(ctx context.Context) *Warehouse {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WarehouseCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WarehouseCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WarehouseCreate) defaults() {
	if _, ok := _c.mutation.SupplierStatus(); !ok {
		v := warehouse.DefaultSupplierStatus
		_c.mutation.SetSupplierStatus(v)
	}
	if _, ok := _c.mutation.OutreachCount(); !ok {
		v := warehouse.DefaultOutreachCount
		_c.mutation.SetOutreachCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := warehouse.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := warehouse.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WarehouseCreate) check() error {
	if _, ok := _c.mutation.CompanyID(); !ok {
		return &ValidationError{Name: "company_id", err: errors.New(`ent: missing required field "Warehouse.company_id"`)}
	}
	if _, ok := _c.mutation.Address(); !ok {
		return &ValidationError{Name: "address", err: errors.New(`ent: missing required field "Warehouse.address"`)}
	}
	if v, ok := _c.mutation.Address(); ok {
		if err := warehouse.AddressValidator(v); err != nil {
			return &ValidationError{Name: "address", err: fmt.Errorf(`ent: validator failed for field "Warehouse.address": %w`, err)}
		}
	}
	if _, ok := _c.mutation.City(); !ok {
		return &ValidationError{Name: "city", err: errors.New(`ent: missing required field "Warehouse.city"`)}
	}
	if v, ok := _c.mutation.City(); ok {
		if err := warehouse.CityValidator(v); err != nil {
			return &ValidationError{Name: "city", err: fmt.Errorf(`ent: validator failed for field "Warehouse.city": %w`, err)}
		}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "Warehouse.state"`)}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := warehouse.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Warehouse.state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SupplierStatus(); !ok {
		return &ValidationError{Name: "supplier_status", err: errors.New(`ent: missing required field "Warehouse.supplier_status"`)}
	}
	if v, ok := _c.mutation.SupplierStatus(); ok {
		if err := warehouse.SupplierStatusValidator(v); err != nil {
			return &ValidationError{Name: "supplier_status", err: fmt.Errorf(`ent: validator failed for field "Warehouse.supplier_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OutreachCount(); !ok {
		return &ValidationError{Name: "outreach_count", err: errors.New(`ent: missing required field "Warehouse.outreach_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Warehouse.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Warehouse.updated_at"`)}
	}
	if len(_c.mutation.CompanyIDs()) == 0 {
		return &ValidationError{Name: "company", err: errors.New(`ent: missing required edge "Warehouse.company"`)}
	}
	return nil
}

func (_c *WarehouseCreate) sqlSave(ctx context.Context) (*Warehouse, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Warehouse.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *WarehouseCreate) createSpec() (*Warehouse, *sqlgraph.CreateSpec) {
	var (
		_node = &Warehouse{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(warehouse.Table, sqlgraph.NewFieldSpec(warehouse.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Address(); ok {
		_spec.SetField(warehouse.FieldAddress, field.TypeString, value)
		_node.Address = value
	}
	if value, ok := _c.mutation.City(); ok {
		_spec.SetField(warehouse.FieldCity, field.TypeString, value)
		_node.City = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(warehouse.FieldState, field.TypeString, value)
		_node.State = value
	}
	if value, ok := _c.mutation.Zip(); ok {
		_spec.SetField(warehouse.FieldZip, field.TypeString, value)
		_node.Zip = value
	}
	if value, ok := _c.mutation.Lat(); ok {
		_spec.SetField(warehouse.FieldLat, field.TypeFloat64, value)
		_node.Lat = &value
	}
	if value, ok := _c.mutation.Lng(); ok {
		_spec.SetField(warehouse.FieldLng, field.TypeFloat64, value)
		_node.Lng = &value
	}
	if value, ok := _c.mutation.BuildingSqft(); ok {
		_spec.SetField(warehouse.FieldBuildingSqft, field.TypeInt, value)
		_node.BuildingSqft = value
	}
	if value, ok := _c.mutation.YearBuilt(); ok {
		_spec.SetField(warehouse.FieldYearBuilt, field.TypeInt, value)
		_node.YearBuilt = value
	}
	if value, ok := _c.mutation.ConstructionType(); ok {
		_spec.SetField(warehouse.FieldConstructionType, field.TypeString, value)
		_node.ConstructionType = value
	}
	if value, ok := _c.mutation.Gallery(); ok {
		_spec.SetField(warehouse.FieldGallery, field.TypeJSON, value)
		_node.Gallery = value
	}
	if value, ok := _c.mutation.ContactPhone(); ok {
		_spec.SetField(warehouse.FieldContactPhone, field.TypeString, value)
		_node.ContactPhone = value
	}
	if value, ok := _c.mutation.SupplierStatus(); ok {
		_spec.SetField(warehouse.FieldSupplierStatus, field.TypeEnum, value)
		_node.SupplierStatus = value
	}
	if value, ok := _c.mutation.LastOutreachAt(); ok {
		_spec.SetField(warehouse.FieldLastOutreachAt, field.TypeTime, value)
		_node.LastOutreachAt = &value
	}
	if value, ok := _c.mutation.OutreachCount(); ok {
		_spec.SetField(warehouse.FieldOutreachCount, field.TypeInt, value)
		_node.OutreachCount = value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(warehouse.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(warehouse.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(warehouse.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.CompanyIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   warehouse.CompanyTable,
			Columns: []string{warehouse.CompanyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(company.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.CompanyID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TruthCoreIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   warehouse.TruthCoreTable,
			Columns: []string{warehouse.TruthCoreColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(truthcore.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.MatchesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   warehouse.MatchesTable,
			Columns: []string{warehouse.MatchesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(match.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.MemoriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   warehouse.MemoriesTable,
			Columns: []string{warehouse.MemoriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contextualmemory.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.QuestionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   warehouse.QuestionsTable,
			Columns: []string{warehouse.QuestionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(propertyquestion.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.KnowledgeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   warehouse.KnowledgeTable,
			Columns: []string{warehouse.KnowledgeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(propertyknowledge.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.DlaTokensIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   warehouse.DlaTokensTable,
			Columns: []string{warehouse.DlaTokensColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dlatoken.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ToggleHistoryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   warehouse.ToggleHistoryTable,
			Columns: []string{warehouse.ToggleHistoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(togglehistory.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SupplierAgreementsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   warehouse.SupplierAgreementsTable,
			Columns: []string{warehouse.SupplierAgreementsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(supplieragreement.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Warehouse.Create().
//		SetCompanyID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.WarehouseUpsert) {
//			SetCompanyID(v+v).
//		}).
//		Exec(ctx)
func (_c *WarehouseCreate) OnConflict(opts ...sql.ConflictOption) *WarehouseUpsertOne {
	_c.conflict = opts
	return &WarehouseUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Warehouse.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *WarehouseCreate) OnConflictColumns(columns ...string) *WarehouseUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &WarehouseUpsertOne{
		create: _c,
	}
}

type (
	// WarehouseUpsertOne is the builder for "upsert"-ing
	//  one Warehouse node.
	WarehouseUpsertOne struct {
		create *WarehouseCreate
	}

	// WarehouseUpsert is the "OnConflict" setter.
	WarehouseUpsert struct {
		*sql.UpdateSet
	}
)

// SetCompanyID sets the "company_id" field.
func (u *WarehouseUpsert) SetCompanyID(v string) *WarehouseUpsert {
	u.Set(warehouse.FieldCompanyID, v)
	return u
}

// UpdateCompanyID sets the "company_id" field to the value that was provided on create.
func (u *WarehouseUpsert) UpdateCompanyID() *WarehouseUpsert {
	u.SetExcluded(warehouse.FieldCompanyID)
	return u
}

// SetAddress sets the "address" field.
func (u *WarehouseUpsert) SetAddress(v string) *WarehouseUpsert {
	u.Set(warehouse.FieldAddress, v)
	return u
}

// UpdateAddress sets the "address" field to the value that was provided on create.
func (u *WarehouseUpsert) UpdateAddress() *WarehouseUpsert {
	u.SetExcluded(warehouse.FieldAddress)
	return u
}

// SetCity sets the "city" field.
func (u *WarehouseUpsert) SetCity(v string) *WarehouseUpsert {
	u.Set(warehouse.FieldCity, v)
	return u
}

// UpdateCity sets the "city" field to the value that was provided on create.
func (u *WarehouseUpsert) UpdateCity() *WarehouseUpsert {
	u.SetExcluded(warehouse.FieldCity)
	return u
}

// SetState sets the "state" field.
func (u *WarehouseUpsert) SetState(v string) *WarehouseUpsert {
	u.Set(warehouse.FieldState, v)
	return u
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *WarehouseUpsert) UpdateState() *WarehouseUpsert {
	u.SetExcluded(warehouse.FieldState)
	return u
}

// SetZip sets the "zip" field.
func (u *WarehouseUpsert) SetZip(v string) *WarehouseUpsert {
	u.Set(warehouse.FieldZip, v)
	return u
}

// UpdateZip sets the "zip" field to the value that was provided on create.
func (u *WarehouseUpsert) UpdateZip() *WarehouseUpsert {
	u.SetExcluded(warehouse.FieldZip)
	return u
}

// ClearZip clears the value of the "zip" field.
func (u *WarehouseUpsert) ClearZip() *WarehouseUpsert {
	u.SetNull(warehouse.FieldZip)
	return u
}

// SetLat sets the "lat" field.
func (u *WarehouseUpsert) SetLat(v float64) *WarehouseUpsert {
	u.Set(warehouse.FieldLat, v)
	return u
}

// UpdateLat sets the "lat" field to the value that was provided on create.
func (u *WarehouseUpsert) UpdateLat() *WarehouseUpsert {
	u.SetExcluded(warehouse.FieldLat)
	return u
}

// AddLat adds v to the "lat" field.
func (u *WarehouseUpsert) AddLat(v float64) *WarehouseUpsert {
	u.Add(warehouse.FieldLat, v)
	return u
}

// ClearLat clears the value of the "lat" field.
func (u *WarehouseUpsert) ClearLat() *WarehouseUpsert {
	u.SetNull(warehouse.FieldLat)
	return u
}

// SetLng sets the "lng" field.
func (u *WarehouseUpsert) SetLng(v float64) *WarehouseUpsert {
	u.Set(warehouse.FieldLng, v)
	return u
}

// UpdateLng sets the "lng" field to the value that was provided on create.
func (u *WarehouseUpsert) UpdateLng() *WarehouseUpsert {
	u.SetExcluded(warehouse.FieldLng)
	return u
}

// AddLng adds v to the "lng" field.
func (u *WarehouseUpsert) AddLng(v float64) *WarehouseUpsert {
	u.Add(warehouse.FieldLng, v)
	return u
}

// ClearLng clears the value of the "lng" field.
func (u *WarehouseUpsert) ClearLng() *WarehouseUpsert {
	u.SetNull(warehouse.FieldLng)
	return u
}

// SetBuildingSqft sets the "building_sqft" field.
func (u *WarehouseUpsert) SetBuildingSqft(v int) *WarehouseUpsert {
	u.Set(warehouse.FieldBuildingSqft, v)
	return u
}

// UpdateBuildingSqft sets the "building_sqft" field to the value that was provided on create.
func (u *WarehouseUpsert) UpdateBuildingSqft() *WarehouseUpsert {
	u.SetExcluded(warehouse.FieldBuildingSqft)
	return u
}

// AddBuildingSqft adds v to the "building_sqft" field.
func (u *WarehouseUpsert) AddBuildingSqft(v int) *WarehouseUpsert {
	u.Add(warehouse.FieldBuildingSqft, v)
	return u
}

// ClearBuildingSqft clears the value of the "building_sqft" field.
func (u *WarehouseUpsert) ClearBuildingSqft() *WarehouseUpsert {
	u.SetNull(warehouse.FieldBuildingSqft)
	return u
}

// SetYearBuilt sets the "year_built" field.
func (u *WarehouseUpsert) SetYearBuilt(v int) *WarehouseUpsert {
	u.Set(warehouse.FieldYearBuilt, v)
	return u
}

// UpdateYearBuilt sets the "year_built" field to the value that was provided on create.
func (u *WarehouseUpsert) UpdateYearBuilt() *WarehouseUpsert {
	u.SetExcluded(warehouse.FieldYearBuilt)
	return u
}

// AddYearBuilt adds v to the "year_built" field.
func (u *WarehouseUpsert) AddYearBuilt(v int) *WarehouseUpsert {
	u.Add(warehouse.FieldYearBuilt, v)
	return u
}

// ClearYearBuilt clears the value of the "year_built" field.
func (u *WarehouseUpsert) ClearYearBuilt() *WarehouseUpsert {
	u.SetNull(warehouse.FieldYearBuilt)
	return u
}

// SetConstructionType sets the "construction_type" field.
func (u *WarehouseUpsert) SetConstructionType(v string) *WarehouseUpsert {
	u.Set(warehouse.FieldConstructionType, v)
	return u
}

// UpdateConstructionType sets the "construction_type" field to the value that was provided on create.
func (u *WarehouseUpsert) UpdateConstructionType() *WarehouseUpsert {
	u.SetExcluded(warehouse.FieldConstructionType)
	return u
}

// ClearConstructionType clears the value of the "construction_type" field.
func (u *WarehouseUpsert) ClearConstructionType() *WarehouseUpsert {
	u.SetNull(warehouse.FieldConstructionType)
	return u
}

// SetGallery sets the "gallery" field.
func (u *WarehouseUpsert) SetGallery(v []string) *WarehouseUpsert {
	u.Set(warehouse.FieldGallery, v)
	return u
}

// UpdateGallery sets the "gallery" field to the value that was provided on create.
func (u *WarehouseUpsert) UpdateGallery() *WarehouseUpsert {
	u.SetExcluded(warehouse.FieldGallery)
	return u
}

// ClearGallery clears the value of the "gallery" field.
func (u *WarehouseUpsert) ClearGallery() *WarehouseUpsert {
	u.SetNull(warehouse.FieldGallery)
	return u
}

// SetContactPhone sets the "contact_phone" field.
func (u *WarehouseUpsert) SetContactPhone(v string) *WarehouseUpsert {
	u.Set(warehouse.FieldContactPhone, v)
	return u
}

// UpdateContactPhone sets the "contact_phone" field to the value that was provided on create.
func (u *WarehouseUpsert) UpdateContactPhone() *WarehouseUpsert {
	u.SetExcluded(warehouse.FieldContactPhone)
	return u
}

// ClearContactPhone clears the value of the "contact_phone" field.
func (u *WarehouseUpsert) ClearContactPhone() *WarehouseUpsert {
	u.SetNull(warehouse.FieldContactPhone)
	return u
}

// SetSupplierStatus sets the "supplier_status" field.
func (u *WarehouseUpsert) SetSupplierStatus(v warehouse.SupplierStatus) *WarehouseUpsert {
	u.Set(warehouse.FieldSupplierStatus, v)
	return u
}

// UpdateSupplierStatus sets the "supplier_status" field to the value that was provided on create.
func (u *WarehouseUpsert) UpdateSupplierStatus() *WarehouseUpsert {
	u.SetExcluded(warehouse.FieldSupplierStatus)
	return u
}

// SetLastOutreachAt sets the "last_outreach_at" field.
func (u *WarehouseUpsert) SetLastOutreachAt(v time.Time) *WarehouseUpsert {
	u.Set(warehouse.FieldLastOutreachAt, v)
	return u
}

// UpdateLastOutreachAt sets the "last_outreach_at" field to the value that was provided on create.
func (u *WarehouseUpsert) UpdateLastOutreachAt() *WarehouseUpsert {
	u.SetExcluded(warehouse.FieldLastOutreachAt)
	return u
}

// ClearLastOutreachAt clears the value of the "last_outreach_at" field.
func (u *WarehouseUpsert) ClearLastOutreachAt() *WarehouseUpsert {
	u.SetNull(warehouse.FieldLastOutreachAt)
	return u
}

// SetOutreachCount sets the "outreach_count" field.
func (u *WarehouseUpsert) SetOutreachCount(v int) *WarehouseUpsert {
	u.Set(warehouse.FieldOutreachCount, v)
	return u
}

// UpdateOutreachCount sets the "outreach_count" field to the value that was provided on create.
func (u *WarehouseUpsert) UpdateOutreachCount() *WarehouseUpsert {
	u.SetExcluded(warehouse.FieldOutreachCount)
	return u
}

// AddOutreachCount adds v to the "outreach_count" field.
func (u *WarehouseUpsert) AddOutreachCount(v int) *WarehouseUpsert {
	u.Add(warehouse.FieldOutreachCount, v)
	return u
}

// SetCreatedBy sets the "created_by" field.
func (u *WarehouseUpsert) SetCreatedBy(v string) *WarehouseUpsert {
	u.Set(warehouse.FieldCreatedBy, v)
	return u
}

// UpdateCreatedBy sets the "created_by" field to the value that was provided on create.
func (u *WarehouseUpsert) UpdateCreatedBy() *WarehouseUpsert {
	u.SetExcluded(warehouse.FieldCreatedBy)
	return u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (u *WarehouseUpsert) ClearCreatedBy() *WarehouseUpsert {
	u.SetNull(warehouse.FieldCreatedBy)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *WarehouseUpsert) SetUpdatedAt(v time.Time) *WarehouseUpsert {
	u.Set(warehouse.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *WarehouseUpsert) UpdateUpdatedAt() *WarehouseUpsert {
	u.SetExcluded(warehouse.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Warehouse.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(warehouse.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *WarehouseUpsertOne) UpdateNewValues() *WarehouseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(warehouse.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(warehouse.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Warehouse.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *WarehouseUpsertOne) Ignore() *WarehouseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *WarehouseUpsertOne) DoNothing() *WarehouseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the WarehouseCreate.OnConflict
// documentation for more info.
func (u *WarehouseUpsertOne) Update(set func(*WarehouseUpsert)) *WarehouseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&WarehouseUpsert{UpdateSet: update})
	}))
	return u
}

// SetCompanyID sets the "company_id" field.
func (u *WarehouseUpsertOne) SetCompanyID(v string) *WarehouseUpsertOne {
	return u.Update(func(s *WarehouseUpsert) {
		s.SetCompanyID(v)
	})
}

// UpdateCompanyID sets the "company_id" field to the value that was provided on create.
func (u *WarehouseUpsertOne) UpdateCompanyID() *WarehouseUpsertOne {
	return u.Update(func(s *WarehouseUpsert) {
		s.UpdateCompanyID()
	})
}

// SetAddress sets the "address" field.
func (u *WarehouseUpsertOne) SetAddress(v string) *WarehouseUpsertOne {
	return u.Update(func(s *WarehouseUpsert) {
		s.SetAddress(v)
	})
}

// UpdateAddress sets the "address" field to the value that was provided on create.
func (u *WarehouseUpsertOne) UpdateAddress() *WarehouseUpsertOne {
	return u.Update(func(s *WarehouseUpsert) {
		s.UpdateAddress()
	})
}

// SetCity sets the "city" field.
func (u *WarehouseUpsertOne) SetCity(v string) *WarehouseUpsertOne {
	return u.Update(func(s *WarehouseUpsert) {
		s.SetCity(v)
	})
}

// UpdateCity sets the "city" field to the value that was provided on create.
func (u *WarehouseUpsertOne) UpdateCity() *WarehouseUpsertOne {
	return u.Update(func(s *WarehouseUpsert) {
		s.UpdateCity()
	})
}

// SetState sets the "state" field.
func (u *WarehouseUpsertOne) SetState(v string) *WarehouseUpsertOne {
	return u.Update(func(s *WarehouseUpsert) {
		s.SetState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *WarehouseUpsertOne) UpdateState() *WarehouseUpsertOne {
	return u.Update(func(s *WarehouseUpsert) {
		s.UpdateState()
	})
}

// SetZip sets the "zip" field.
func (u *WarehouseUpsertOne) SetZip(v string) *WarehouseUpsertOne {
	return u.Update(func(s *WarehouseUpsert) {
		s.SetZip(v)
	})
}

// UpdateZip sets the "zip" field to the value that was provided on create.
func (u *WarehouseUpsertOne) UpdateZip() *WarehouseUpsertOne {
	return u.Update(func(s *WarehouseUpsert) {
		s.UpdateZip()
	})
}

// ClearZip clears the value of the "zip" field.
func (u *WarehouseUpsertOne) ClearZip() *WarehouseUpsertOne {
	return u.Update(func(s *WarehouseUpsert) {
		s.ClearZip()
	})
}

// SetLat sets the "lat" field.
func (u *WarehouseUpsertOne) SetLat(v float64) *WarehouseUpsertOne {
	return u.Update(func(s *WarehouseUpsert) {
		s.SetLat(v)
	})
}

// AddLat adds v to the "lat" field.
func (u *WarehouseUpsertOne) AddLat(v float64) *WarehouseUpsertOne {
	return u.Update(func(s *WarehouseUpsert) {
		s.AddLat(v)
	})
}

// UpdateLat sets the "lat" field to the value that was provided on create.
func (u *WarehouseUpsertOne) UpdateLat() *WarehouseUpsertOne {
	return u.Update(func(s *WarehouseUpsert) {
		s.UpdateLat()
	})
}

// ClearLat clears the value of the "lat" field.
func (u *WarehouseUpsertOne) ClearLat() *WarehouseUpsertOne {
	return u.Update(func(s *WarehouseUpsert) {
		s.ClearLat()
	})
}

// SetLng sets the "lng" field.
func (u *WarehouseUpsertOne) SetLng(v float64) *WarehouseUpsertOne {
	return u.Update(func(s *WarehouseUpsert) {
		s.SetLng(v)
	})
}

// AddLng adds v to the "lng" field.
func (u *WarehouseUpsertOne) AddLng(v float64) *WarehouseUpsertOne {
	return u.Update(func(s *WarehouseUpsert) {
		s.AddLng(v)
	})
}

// UpdateLng sets the "lng" field to the value that was provided on create.
func (u *WarehouseUpsertOne) UpdateLng() *WarehouseUpsertOne {
	return u.Update(func(s *WarehouseUpsert) {
		s.UpdateLng()
	})
}

// ClearLng clears the value of the "lng" field.
func (u *WarehouseUpsertOne) ClearLng() *WarehouseUpsertOne {
	return u.Update(func(s *WarehouseUpsert) {
		s.ClearLng()
	})
}

// SetBuildingSqft sets the "building_sqft" field.
func (u *WarehouseUpsertOne) SetBuildingSqft(v int) *WarehouseUpsertOne {
	return u.Update(func(s *WarehouseUpsert) {
		s.SetBuildingSqft(v)
	})
}

// AddBuildingSqft adds v to the "building_sqft" field.
func (u *WarehouseUpsertOne) AddBuildingSqft(v int) *WarehouseUpsertOne {
	return u.Update(func(s *WarehouseUpsert) {
		s.AddBuildingSqft(v)
	})
}

// UpdateBuildingSqft sets the "building_sqft" field to the value that was provided on create.
func (u *WarehouseUpsertOne) UpdateBuildingSqft() *WarehouseUpsertOne {
	return u.Update(func(s *WarehouseUpsert) {
		s.UpdateBuildingSqft()
	})
}

// ClearBuildingSqft clears the value of the "building_sqft" field.
func (u *WarehouseUpsertOne) ClearBuildingSqft() *WarehouseUpsertOne {
	return u.Update(func(s *WarehouseUpsert) {
		s.ClearBuildingSqft()
	})
}

// SetYearBuilt sets the "year_built" field.
func (u *WarehouseUpsertOne) SetYearBuilt(v int) *WarehouseUpsertOne {
	return u.Update(func(s *WarehouseUpsert) {
		s.SetYearBuilt(v)
	})
}

// AddYearBuilt adds v to the "year_built" field.
func (u *WarehouseUpsertOne) AddYearBuilt(v int) *WarehouseUpsertOne {
	return u.Update(func(s *WarehouseUpsert) {
		s.AddYearBuilt(v)
	})
}

// UpdateYearBuilt sets the "year_built" field to the value that was provided on create.
func (u *WarehouseUpsertOne) UpdateYearBuilt() *WarehouseUpsertOne {
	return u.Update(func(s *WarehouseUpsert) {
		s.UpdateYearBuilt()
	})
}

// ClearYearBuilt clears the value of the "year_built" field.
func (u *WarehouseUpsertOne) ClearYearBuilt() *WarehouseUpsertOne {
	return u.Update(func(s *WarehouseUpsert) {
		s.ClearYearBuilt()
	})
}

// SetConstructionType sets the "construction_type" field.
func (u *WarehouseUpsertOne) SetConstructionType(v string) *WarehouseUpsertOne {
	return u.Update(func(s *WarehouseUpsert) {
		s.SetConstructionType(v)
	})
}

// UpdateConstructionType sets the "construction_type" field to the value that was provided on create.
func (u *WarehouseUpsertOne) UpdateConstructionType() *WarehouseUpsertOne {
	return u.Update(func(s *WarehouseUpsert) {
		s.UpdateConstructionType()
	})
}

// ClearConstructionType clears the value of the "construction_type" field.
func (u *WarehouseUpsertOne) ClearConstructionType() *WarehouseUpsertOne {
	return u.Update(func(s *WarehouseUpsert) {
		s.ClearConstructionType()
	})
}

// SetGallery sets the "gallery" field.
func (u *WarehouseUpsertOne) SetGallery(v []string) *WarehouseUpsertOne {
	return u.Update(func(s *WarehouseUpsert) {
		s.SetGallery(v)
	})
}

// UpdateGallery sets the "gallery" field to the value that was provided on create.
func (u *WarehouseUpsertOne) UpdateGallery() *WarehouseUpsertOne {
	return u.Update(func(s *WarehouseUpsert) {
		s.UpdateGallery()
	})
}

// ClearGallery clears the value of the "gallery" field.
func (u *WarehouseUpsertOne) ClearGallery() *WarehouseUpsertOne {
	return u.Update(func(s *WarehouseUpsert) {
		s.ClearGallery()
	})
}

// SetContactPhone sets the "contact_phone" field.
func (u *WarehouseUpsertOne) SetContactPhone(v string) *WarehouseUpsertOne {
	return u.Update(func(s *WarehouseUpsert) {
		s.SetContactPhone(v)
	})
}

// UpdateContactPhone sets the "contact_phone" field to the value that was provided on create.
func (u *WarehouseUpsertOne) UpdateContactPhone() *WarehouseUpsertOne {
	return u.Update(func(s *WarehouseUpsert) {
		s.UpdateContactPhone()
	})
}

// ClearContactPhone clears the value of the "contact_phone" field.
func (u *WarehouseUpsertOne) ClearContactPhone() *WarehouseUpsertOne {
	return u.Update(func(s *WarehouseUpsert) {
		s.ClearContactPhone()
	})
}

// SetSupplierStatus sets the "supplier_status" field.
func (u *WarehouseUpsertOne) SetSupplierStatus(v warehouse.SupplierStatus) *WarehouseUpsertOne {
	return u.Update(func(s *WarehouseUpsert) {
		s.SetSupplierStatus(v)
	})
}

// UpdateSupplierStatus sets the "supplier_status" field to the value that was provided on create.
func (u *WarehouseUpsertOne) UpdateSupplierStatus() *WarehouseUpsertOne {
	return u.Update(func(s *WarehouseUpsert) {
		s.UpdateSupplierStatus()
	})
}

// SetLastOutreachAt sets the "last_outreach_at" field.
func (u *WarehouseUpsertOne) SetLastOutreachAt(v time.Time) *WarehouseUpsertOne {
	return u.Update(func(s *WarehouseUpsert) {
		s.SetLastOutreachAt(v)
	})
}

// UpdateLastOutreachAt sets the "last_outreach_at" field to the value that was provided on create.
func (u *WarehouseUpsertOne) UpdateLastOutreachAt() *WarehouseUpsertOne {
	return u.Update(func(s *WarehouseUpsert) {
		s.UpdateLastOutreachAt()
	})
}

// ClearLastOutreachAt clears the value of the "last_outreach_at" field.
func (u *WarehouseUpsertOne) ClearLastOutreachAt() *WarehouseUpsertOne {
	return u.Update(func(s *WarehouseUpsert) {
		s.ClearLastOutreachAt()
	})
}

// SetOutreachCount sets the "outreach_count" field.
func (u *WarehouseUpsertOne) SetOutreachCount(v int) *WarehouseUpsertOne {
	return u.Update(func(s *WarehouseUpsert) {
		s.SetOutreachCount(v)
	})
}

// AddOutreachCount adds v to the "outreach_count" field.
func (u *WarehouseUpsertOne) AddOutreachCount(v int) *WarehouseUpsertOne {
	return u.Update(func(s *WarehouseUpsert) {
		s.AddOutreachCount(v)
	})
}

// UpdateOutreachCount sets the "outreach_count" field to the value that was provided on create.
func (u *WarehouseUpsertOne) UpdateOutreachCount() *WarehouseUpsertOne {
	return u.Update(func(s *WarehouseUpsert) {
		s.UpdateOutreachCount()
	})
}

// SetCreatedBy sets the "created_by" field.
func (u *WarehouseUpsertOne) SetCreatedBy(v string) *WarehouseUpsertOne {
	return u.Update(func(s *WarehouseUpsert) {
		s.SetCreatedBy(v)
	})
}

// UpdateCreatedBy sets the "created_by" field to the value that was provided on create.
func (u *WarehouseUpsertOne) UpdateCreatedBy() *WarehouseUpsertOne {
	return u.Update(func(s *WarehouseUpsert) {
		s.UpdateCreatedBy()
	})
}

// ClearCreatedBy clears the value of the "created_by" field.
func (u *WarehouseUpsertOne) ClearCreatedBy() *WarehouseUpsertOne {
	return u.Update(func(s *WarehouseUpsert) {
		s.ClearCreatedBy()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *WarehouseUpsertOne) SetUpdatedAt(v time.Time) *WarehouseUpsertOne {
	return u.Update(func(s *WarehouseUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *WarehouseUpsertOne) UpdateUpdatedAt() *WarehouseUpsertOne {
	return u.Update(func(s *WarehouseUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *WarehouseUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for WarehouseCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *WarehouseUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *WarehouseUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: WarehouseUpsertOne.ID is not supported by MySQL driver. Use WarehouseUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *WarehouseUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// WarehouseCreateBulk is the builder for creating many Warehouse entities in bulk.
type WarehouseCreateBulk struct {
	config
	err      error
	builders []*WarehouseCreate
	conflict []sql.ConflictOption
}

// Save creates the Warehouse entities in the database.
func (_c *WarehouseCreateBulk) Save(ctx context.Context) ([]*Warehouse, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Warehouse, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WarehouseMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *WarehouseCreateBulk) SaveX(ctx context.Context) []*Warehouse {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WarehouseCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WarehouseCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Warehouse.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.WarehouseUpsert) {
//			SetCompanyID(v+v).
//		}).
//		Exec(ctx)
func (_c *WarehouseCreateBulk) OnConflict(opts ...sql.ConflictOption) *WarehouseUpsertBulk {
	_c.conflict = opts
	return &WarehouseUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Warehouse.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *WarehouseCreateBulk) OnConflictColumns(columns ...string) *WarehouseUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &WarehouseUpsertBulk{
		create: _c,
	}
}

// WarehouseUpsertBulk is the builder for "upsert"-ing
// a bulk of Warehouse nodes.
type WarehouseUpsertBulk struct {
	create *WarehouseCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Warehouse.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(warehouse.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *WarehouseUpsertBulk) UpdateNewValues() *WarehouseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(warehouse.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(warehouse.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Warehouse.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *WarehouseUpsertBulk) Ignore() *WarehouseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *WarehouseUpsertBulk) DoNothing() *WarehouseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the WarehouseCreateBulk.OnConflict
// documentation for more info.
func (u *WarehouseUpsertBulk) Update(set func(*WarehouseUpsert)) *WarehouseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&WarehouseUpsert{UpdateSet: update})
	}))
	return u
}

// SetCompanyID sets the "company_id" field.
func (u *WarehouseUpsertBulk) SetCompanyID(v string) *WarehouseUpsertBulk {
	return u.Update(func(s *WarehouseUpsert) {
		s.SetCompanyID(v)
	})
}

// UpdateCompanyID sets the "company_id" field to the value that was provided on create.
func (u *WarehouseUpsertBulk) UpdateCompanyID() *WarehouseUpsertBulk {
	return u.Update(func(s *WarehouseUpsert) {
		s.UpdateCompanyID()
	})
}

// SetAddress sets the "address" field.
func (u *WarehouseUpsertBulk) SetAddress(v string) *WarehouseUpsertBulk {
	return u.Update(func(s *WarehouseUpsert) {
		s.SetAddress(v)
	})
}

// UpdateAddress sets the "address" field to the value that was provided on create.
func (u *WarehouseUpsertBulk) UpdateAddress() *WarehouseUpsertBulk {
	return u.Update(func(s *WarehouseUpsert) {
		s.UpdateAddress()
	})
}

// SetCity sets the "city" field.
func (u *WarehouseUpsertBulk) SetCity(v string) *WarehouseUpsertBulk {
	return u.Update(func(s *WarehouseUpsert) {
		s.SetCity(v)
	})
}

// UpdateCity sets the "city" field to the value that was provided on create.
func (u *WarehouseUpsertBulk) UpdateCity() *WarehouseUpsertBulk {
	return u.Update(func(s *WarehouseUpsert) {
		s.UpdateCity()
	})
}

// SetState sets the "state" field.
func (u *WarehouseUpsertBulk) SetState(v string) *WarehouseUpsertBulk {
	return u.Update(func(s *WarehouseUpsert) {
		s.SetState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *WarehouseUpsertBulk) UpdateState() *WarehouseUpsertBulk {
	return u.Update(func(s *WarehouseUpsert) {
		s.UpdateState()
	})
}

// SetZip sets the "zip" field.
func (u *WarehouseUpsertBulk) SetZip(v string) *WarehouseUpsertBulk {
	return u.Update(func(s *WarehouseUpsert) {
		s.SetZip(v)
	})
}

// UpdateZip sets the "zip" field to the value that was provided on create.
func (u *WarehouseUpsertBulk) UpdateZip() *WarehouseUpsertBulk {
	return u.Update(func(s *WarehouseUpsert) {
		s.UpdateZip()
	})
}

// ClearZip clears the value of the "zip" field.
func (u *WarehouseUpsertBulk) ClearZip() *WarehouseUpsertBulk {
	return u.Update(func(s *WarehouseUpsert) {
		s.ClearZip()
	})
}

// SetLat sets the "lat" field.
func (u *WarehouseUpsertBulk) SetLat(v float64) *WarehouseUpsertBulk {
	return u.Update(func(s *WarehouseUpsert) {
		s.SetLat(v)
	})
}

// AddLat adds v to the "lat" field.
func (u *WarehouseUpsertBulk) AddLat(v float64) *WarehouseUpsertBulk {
	return u.Update(func(s *WarehouseUpsert) {
		s.AddLat(v)
	})
}

// UpdateLat sets the "lat" field to the value that was provided on create.
func (u *WarehouseUpsertBulk) UpdateLat() *WarehouseUpsertBulk {
	return u.Update(func(s *WarehouseUpsert) {
		s.UpdateLat()
	})
}

// ClearLat clears the value of the "lat" field.
func (u *WarehouseUpsertBulk) ClearLat() *WarehouseUpsertBulk {
	return u.Update(func(s *WarehouseUpsert) {
		s.ClearLat()
	})
}

// SetLng sets the "lng" field.
func (u *WarehouseUpsertBulk) SetLng(v float64) *WarehouseUpsertBulk {
	return u.Update(func(s *WarehouseUpsert) {
		s.SetLng(v)
	})
}

// AddLng adds v to the "lng" field.
func (u *WarehouseUpsertBulk) AddLng(v float64) *WarehouseUpsertBulk {
	return u.Update(func(s *WarehouseUpsert) {
		s.AddLng(v)
	})
}

// UpdateLng sets the "lng" field to the value that was provided on create.
func (u *WarehouseUpsertBulk) UpdateLng() *WarehouseUpsertBulk {
	return u.Update(func(s *WarehouseUpsert) {
		s.UpdateLng()
	})
}

// ClearLng clears the value of the "lng" field.
func (u *WarehouseUpsertBulk) ClearLng() *WarehouseUpsertBulk {
	return u.Update(func(s *WarehouseUpsert) {
		s.ClearLng()
	})
}

// SetBuildingSqft sets the "building_sqft" field.
func (u *WarehouseUpsertBulk) SetBuildingSqft(v int) *WarehouseUpsertBulk {
	return u.Update(func(s *WarehouseUpsert) {
		s.SetBuildingSqft(v)
	})
}

// AddBuildingSqft adds v to the "building_sqft" field.
func (u *WarehouseUpsertBulk) AddBuildingSqft(v int) *WarehouseUpsertBulk {
	return u.Update(func(s *WarehouseUpsert) {
		s.AddBuildingSqft(v)
	})
}

// UpdateBuildingSqft sets the "building_sqft" field to the value that was provided on create.
func (u *WarehouseUpsertBulk) UpdateBuildingSqft() *WarehouseUpsertBulk {
	return u.Update(func(s *WarehouseUpsert) {
		s.UpdateBuildingSqft()
	})
}

// ClearBuildingSqft clears the value of the "building_sqft" field.
func (u *WarehouseUpsertBulk) ClearBuildingSqft() *WarehouseUpsertBulk {
	return u.Update(func(s *WarehouseUpsert) {
		s.ClearBuildingSqft()
	})
}

// SetYearBuilt sets the "year_built" field.
func (u *WarehouseUpsertBulk) SetYearBuilt(v int) *WarehouseUpsertBulk {
	return u.Update(func(s *WarehouseUpsert) {
		s.SetYearBuilt(v)
	})
}

// AddYearBuilt adds v to the "year_built" field.
func (u *WarehouseUpsertBulk) AddYearBuilt(v int) *WarehouseUpsertBulk {
	return u.Update(func(s *WarehouseUpsert) {
		s.AddYearBuilt(v)
	})
}

// UpdateYearBuilt sets the "year_built" field to the value that was provided on create.
func (u *WarehouseUpsertBulk) UpdateYearBuilt() *WarehouseUpsertBulk {
	return u.Update(func(s *WarehouseUpsert) {
		s.UpdateYearBuilt()
	})
}

// ClearYearBuilt clears the value of the "year_built" field.
func (u *WarehouseUpsertBulk) ClearYearBuilt() *WarehouseUpsertBulk {
	return u.Update(func(s *WarehouseUpsert) {
		s.ClearYearBuilt()
	})
}

// SetConstructionType sets the "construction_type" field.
func (u *WarehouseUpsertBulk) SetConstructionType(v string) *WarehouseUpsertBulk {
	return u.Update(func(s *WarehouseUpsert) {
		s.SetConstructionType(v)
	})
}

// UpdateConstructionType sets the "construction_type" field to the value that was provided on create.
func (u *WarehouseUpsertBulk) UpdateConstructionType() *WarehouseUpsertBulk {
	return u.Update(func(s *WarehouseUpsert) {
		s.UpdateConstructionType()
	})
}

// ClearConstructionType clears the value of the "construction_type" field.
func (u *WarehouseUpsertBulk) ClearConstructionType() *WarehouseUpsertBulk {
	return u.Update(func(s *WarehouseUpsert) {
		s.ClearConstructionType()
	})
}

// SetGallery sets the "gallery" field.
func (u *WarehouseUpsertBulk) SetGallery(v []string) *WarehouseUpsertBulk {
	return u.Update(func(s *WarehouseUpsert) {
		s.SetGallery(v)
	})
}

// UpdateGallery sets the "gallery" field to the value that was provided on create.
func (u *WarehouseUpsertBulk) UpdateGallery() *WarehouseUpsertBulk {
	return u.Update(func(s *WarehouseUpsert) {
		s.UpdateGallery()
	})
}

// ClearGallery clears the value of the "gallery" field.
func (u *WarehouseUpsertBulk) ClearGallery() *WarehouseUpsertBulk {
	return u.Update(func(s *WarehouseUpsert) {
		s.ClearGallery()
	})
}

// SetContactPhone sets the "contact_phone" field.
func (u *WarehouseUpsertBulk) SetContactPhone(v string) *WarehouseUpsertBulk {
	return u.Update(func(s *WarehouseUpsert) {
		s.SetContactPhone(v)
	})
}

// UpdateContactPhone sets the "contact_phone" field to the value that was provided on create.
func (u *WarehouseUpsertBulk) UpdateContactPhone() *WarehouseUpsertBulk {
	return u.Update(func(s *WarehouseUpsert) {
		s.UpdateContactPhone()
	})
}

// ClearContactPhone clears the value of the "contact_phone" field.
func (u *WarehouseUpsertBulk) ClearContactPhone() *WarehouseUpsertBulk {
	return u.Update(func(s *WarehouseUpsert) {
		s.ClearContactPhone()
	})
}

// SetSupplierStatus sets the "supplier_status" field.
func (u *WarehouseUpsertBulk) SetSupplierStatus(v warehouse.SupplierStatus) *WarehouseUpsertBulk {
	return u.Update(func(s *WarehouseUpsert) {
		s.SetSupplierStatus(v)
	})
}

// UpdateSupplierStatus sets the "supplier_status" field to the value that was provided on create.
func (u *WarehouseUpsertBulk) UpdateSupplierStatus() *WarehouseUpsertBulk {
	return u.Update(func(s *WarehouseUpsert) {
		s.UpdateSupplierStatus()
	})
}

// SetLastOutreachAt sets the "last_outreach_at" field.
func (u *WarehouseUpsertBulk) SetLastOutreachAt(v time.Time) *WarehouseUpsertBulk {
	return u.Update(func(s *WarehouseUpsert) {
		s.SetLastOutreachAt(v)
	})
}

// UpdateLastOutreachAt sets the "last_outreach_at" field to the value that was provided on create.
func (u *WarehouseUpsertBulk) UpdateLastOutreachAt() *WarehouseUpsertBulk {
	return u.Update(func(s *WarehouseUpsert) {
		s.UpdateLastOutreachAt()
	})
}

// ClearLastOutreachAt clears the value of the "last_outreach_at" field.
func (u *WarehouseUpsertBulk) ClearLastOutreachAt() *WarehouseUpsertBulk {
	return u.Update(func(s *WarehouseUpsert) {
		s.ClearLastOutreachAt()
	})
}

// SetOutreachCount sets the "outreach_count" field.
func (u *WarehouseUpsertBulk) SetOutreachCount(v int) *WarehouseUpsertBulk {
	return u.Update(func(s *WarehouseUpsert) {
		s.SetOutreachCount(v)
	})
}

// AddOutreachCount adds v to the "outreach_count" field.
func (u *WarehouseUpsertBulk) AddOutreachCount(v int) *WarehouseUpsertBulk {
	return u.Update(func(s *WarehouseUpsert) {
		s.AddOutreachCount(v)
	})
}

// UpdateOutreachCount sets the "outreach_count" field to the value that was provided on create.
func (u *WarehouseUpsertBulk) UpdateOutreachCount() *WarehouseUpsertBulk {
	return u.Update(func(s *WarehouseUpsert) {
		s.UpdateOutreachCount()
	})
}

// SetCreatedBy sets the "created_by" field.
func (u *WarehouseUpsertBulk) SetCreatedBy(v string) *WarehouseUpsertBulk {
	return u.Update(func(s *WarehouseUpsert) {
		s.SetCreatedBy(v)
	})
}

// UpdateCreatedBy sets the "created_by" field to the value that was provided on create.
func (u *WarehouseUpsertBulk) UpdateCreatedBy() *WarehouseUpsertBulk {
	return u.Update(func(s *WarehouseUpsert) {
		s.UpdateCreatedBy()
	})
}

// ClearCreatedBy clears the value of the "created_by" field.
func (u *WarehouseUpsertBulk) ClearCreatedBy() *WarehouseUpsertBulk {
	return u.Update(func(s *WarehouseUpsert) {
		s.ClearCreatedBy()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *WarehouseUpsertBulk) SetUpdatedAt(v time.Time) *WarehouseUpsertBulk {
	return u.Update(func(s *WarehouseUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *WarehouseUpsertBulk) UpdateUpdatedAt() *WarehouseUpsertBulk {
	return u.Update(func(s *WarehouseUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *WarehouseUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the WarehouseCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for WarehouseCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *WarehouseUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
