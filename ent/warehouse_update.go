// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/warehouse-exchange/wex/ent/company"
	"github.com/warehouse-exchange/wex/ent/contextualmemory"
	"github.com/warehouse-exchange/wex/ent/dlatoken"
	"github.com/warehouse-exchange/wex/ent/match"
	"github.com/warehouse-exchange/wex/ent/predicate"
	"github.com/warehouse-exchange/wex/ent/propertyknowledge"
	"github.com/warehouse-exchange/wex/ent/propertyquestion"
	"github.com/warehouse-exchange/wex/ent/supplieragreement"
	"github.com/warehouse-exchange/wex/ent/togglehistory"
	"github.com/warehouse-exchange/wex/ent/truthcore"
	"github.com/warehouse-exchange/wex/ent/warehouse"
)

// WarehouseUpdate is the builder for updating Warehouse entities.
type WarehouseUpdate struct {
	config
	hooks    []Hook
	mutation *WarehouseMutation
}

// Where appends a list predicates to the WarehouseUpdate builder.
func (_u *WarehouseUpdate) Where(ps ...predicate.Warehouse) *WarehouseUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCompanyID sets the "company_id" field.
func (_u *WarehouseUpdate) SetCompanyID(v string) *WarehouseUpdate {
	_u.mutation.SetCompanyID(v)
	return _u
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_u *WarehouseUpdate) SetNillableCompanyID(v *string) *WarehouseUpdate {
	if v != nil {
		_u.SetCompanyID(*v)
	}
	return _u
}

// SetAddress sets the "address" field.
func (_u *WarehouseUpdate) SetAddress(v string) *WarehouseUpdate {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *WarehouseUpdate) SetNillableAddress(v *string) *WarehouseUpdate {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// SetCity sets the "city" field.
func (_u *WarehouseUpdate) SetCity(v string) *WarehouseUpdate {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *WarehouseUpdate) SetNillableCity(v *string) *WarehouseUpdate {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *WarehouseUpdate) SetState(v string) *WarehouseUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *WarehouseUpdate) SetNillableState(v *string) *WarehouseUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetZip sets the "zip" field.
func (_u *WarehouseUpdate) SetZip(v string) *WarehouseUpdate {
	_u.mutation.SetZip(v)
	return _u
}

// SetNillableZip sets the "zip" field if the given value is not nil.
func (_u *WarehouseUpdate) SetNillableZip(v *string) *WarehouseUpdate {
	if v != nil {
		_u.SetZip(*v)
	}
	return _u
}

// ClearZip clears the value of the "zip" field.
func (_u *WarehouseUpdate) ClearZip() *WarehouseUpdate {
	_u.mutation.ClearZip()
	return _u
}

// SetLat sets the "lat" field.
func (_u *WarehouseUpdate) SetLat(v float64) *WarehouseUpdate {
	_u.mutation.ResetLat()
	_u.mutation.SetLat(v)
	return _u
}

// SetNillableLat sets the "lat" field if the given value is not nil.
func (_u *WarehouseUpdate) SetNillableLat(v *float64) *WarehouseUpdate {
	if v != nil {
		_u.SetLat(*v)
	}
	return _u
}

// AddLat adds value to the "lat" field.
func (_u *WarehouseUpdate) AddLat(v float64) *WarehouseUpdate {
	_u.mutation.AddLat(v)
	return _u
}

// ClearLat clears the value of the "lat" field.
func (_u *WarehouseUpdate) ClearLat() *WarehouseUpdate {
	_u.mutation.ClearLat()
	return _u
}

// SetLng sets the "lng" field.
func (_u *WarehouseUpdate) SetLng(v float64) *WarehouseUpdate {
	_u.mutation.ResetLng()
	_u.mutation.SetLng(v)
	return _u
}

// SetNillableLng sets the "lng" field if the given value is not nil.
func (_u *WarehouseUpdate) SetNillableLng(v *float64) *WarehouseUpdate {
	if v != nil {
		_u.SetLng(*v)
	}
	return _u
}

// AddLng adds value to the "lng" field.
func (_u *WarehouseUpdate) AddLng(v float64) *WarehouseUpdate {
	_u.mutation.AddLng(v)
	return _u
}

// ClearLng clears the value of the "lng" field.
func (_u *WarehouseUpdate) ClearLng() *WarehouseUpdate {
	_u.mutation.ClearLng()
	return _u
}

// SetBuildingSqft sets the "building_sqft" field.
func (_u *WarehouseUpdate) SetBuildingSqft(v int) *WarehouseUpdate {
	_u.mutation.ResetBuildingSqft()
	_u.mutation.SetBuildingSqft(v)
	return _u
}

// SetNillableBuildingSqft sets the "building_sqft" field if the given value is not nil.
func (_u *WarehouseUpdate) SetNillableBuildingSqft(v *int) *WarehouseUpdate {
	if v != nil {
		_u.SetBuildingSqft(*v)
	}
	return _u
}

// AddBuildingSqft adds value to the "building_sqft" field.
func (_u *WarehouseUpdate) AddBuildingSqft(v int) *WarehouseUpdate {
	_u.mutation.AddBuildingSqft(v)
	return _u
}

// ClearBuildingSqft clears the value of the "building_sqft" field.
func (_u *WarehouseUpdate) ClearBuildingSqft() *WarehouseUpdate {
	_u.mutation.ClearBuildingSqft()
	return _u
}

// SetYearBuilt sets the "year_built" field.
func (_u *WarehouseUpdate) SetYearBuilt(v int) *WarehouseUpdate {
	_u.mutation.ResetYearBuilt()
	_u.mutation.SetYearBuilt(v)
	return _u
}

// SetNillableYearBuilt sets the "year_built" field if the given value is not nil.
func (_u *WarehouseUpdate) SetNillableYearBuilt(v *int) *WarehouseUpdate {
	if v != nil {
		_u.SetYearBuilt(*v)
	}
	return _u
}

// AddYearBuilt adds value to the "year_built" field.
func (_u *WarehouseUpdate) AddYearBuilt(v int) *WarehouseUpdate {
	_u.mutation.AddYearBuilt(v)
	return _u
}

// ClearYearBuilt clears the value of the "year_built" field.
func (_u *WarehouseUpdate) ClearYearBuilt() *WarehouseUpdate {
	_u.mutation.ClearYearBuilt()
	return _u
}

// SetConstructionType sets the "construction_type" field.
func (_u *WarehouseUpdate) SetConstructionType(v string) *WarehouseUpdate {
	_u.mutation.SetConstructionType(v)
	return _u
}

// SetNillableConstructionType sets the "construction_type" field if the given value is not nil.
func (_u *WarehouseUpdate) SetNillableConstructionType(v *string) *WarehouseUpdate {
	if v != nil {
		_u.SetConstructionType(*v)
	}
	return _u
}

// ClearConstructionType clears the value of the "construction_type" field.
func (_u *WarehouseUpdate) ClearConstructionType() *WarehouseUpdate {
	_u.mutation.ClearConstructionType()
	return _u
}

// SetGallery sets the "gallery" field.
func (_u *WarehouseUpdate) SetGallery(v []string) *WarehouseUpdate {
	_u.mutation.SetGallery(v)
	return _u
}

// AppendGallery appends value to the "gallery" field.
func (_u *WarehouseUpdate) AppendGallery(v []string) *WarehouseUpdate {
	_u.mutation.AppendGallery(v)
	return _u
}

// ClearGallery clears the value of the "gallery" field.
func (_u *WarehouseUpdate) ClearGallery() *WarehouseUpdate {
	_u.mutation.ClearGallery()
	return _u
}

// SetContactPhone sets the "contact_phone" field.
func (_u *WarehouseUpdate) SetContactPhone(v string) *WarehouseUpdate {
	_u.mutation.SetContactPhone(v)
	return _u
}

// SetNillableContactPhone sets the "contact_phone" field if the given value is not nil.
func (_u *WarehouseUpdate) SetNillableContactPhone(v *string) *WarehouseUpdate {
	if v != nil {
		_u.SetContactPhone(*v)
	}
	return _u
}

// ClearContactPhone clears the value of the "contact_phone" field.
func (_u *WarehouseUpdate) ClearContactPhone() *WarehouseUpdate {
	_u.mutation.ClearContactPhone()
	return _u
}

// SetSupplierStatus sets the "supplier_status" field.
func (_u *WarehouseUpdate) SetSupplierStatus(v warehouse.SupplierStatus) *WarehouseUpdate {
	_u.mutation.SetSupplierStatus(v)
	return _u
}

// SetNillableSupplierStatus sets the "supplier_status" field if the given value is not nil.
func (_u *WarehouseUpdate) SetNillableSupplierStatus(v *warehouse.SupplierStatus) *WarehouseUpdate {
	if v != nil {
		_u.SetSupplierStatus(*v)
	}
	return _u
}

// SetLastOutreachAt sets the "last_outreach_at" field.
func (_u *WarehouseUpdate) SetLastOutreachAt(v time.Time) *WarehouseUpdate {
	_u.mutation.SetLastOutreachAt(v)
	return _u
}

// SetNillableLastOutreachAt sets the "last_outreach_at" field if the given value is not nil.
func (_u *WarehouseUpdate) SetNillableLastOutreachAt(v *time.Time) *WarehouseUpdate {
	if v != nil {
		_u.SetLastOutreachAt(*v)
	}
	return _u
}

// ClearLastOutreachAt clears the value of the "last_outreach_at" field.
func (_u *WarehouseUpdate) ClearLastOutreachAt() *WarehouseUpdate {
	_u.mutation.ClearLastOutreachAt()
	return _u
}

// SetOutreachCount sets the "outreach_count" field.
func (_u *WarehouseUpdate) SetOutreachCount(v int) *WarehouseUpdate {
	_u.mutation.ResetOutreachCount()
	_u.mutation.SetOutreachCount(v)
	return _u
}

// SetNillableOutreachCount sets the "outreach_count" field if the given value is not nil.
func (_u *WarehouseUpdate) SetNillableOutreachCount(v *int) *WarehouseUpdate {
	if v != nil {
		_u.SetOutreachCount(*v)
	}
	return _u
}

// AddOutreachCount adds value to the "outreach_count" field.
func (_u *WarehouseUpdate) AddOutreachCount(v int) *WarehouseUpdate {
	_u.mutation.AddOutreachCount(v)
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *WarehouseUpdate) SetCreatedBy(v string) *WarehouseUpdate {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *WarehouseUpdate) SetNillableCreatedBy(v *string) *WarehouseUpdate {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (_u *WarehouseUpdate) ClearCreatedBy() *WarehouseUpdate {
	_u.mutation.ClearCreatedBy()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WarehouseUpdate) SetUpdatedAt(v time.Time) *WarehouseUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCompany sets the "company" edge to the Company entity.
func (_u *WarehouseUpdate) SetCompany(v *Company) *WarehouseUpdate {
	return _u.SetCompanyID(v.ID)
}

// SetTruthCoreID sets the "truth_core" edge to the TruthCore entity by ID.
func (_u *WarehouseUpdate) SetTruthCoreID(id string) *WarehouseUpdate {
	_u.mutation.SetTruthCoreID(id)
	return _u
}

// SetNillableTruthCoreID sets the "truth_core" edge to the TruthCore entity by ID if the given value is not nil.
func (_u *WarehouseUpdate) SetNillableTruthCoreID(id *string) *WarehouseUpdate {
	if id != nil {
		_u = _u.SetTruthCoreID(*id)
	}
	return _u
}

// SetTruthCore sets the "truth_core" edge to the TruthCore entity.
func (_u *WarehouseUpdate) SetTruthCore(v *TruthCore) *WarehouseUpdate {
	return _u.SetTruthCoreID(v.ID)
}

// AddMatchIDs adds the "matches" edge to the Match entity by IDs.
func (_u *WarehouseUpdate) AddMatchIDs(ids ...string) *WarehouseUpdate {
	_u.mutation.AddMatchIDs(ids...)
	return _u
}

// AddMatches adds the "matches" edges to the Match entity.
func (_u *WarehouseUpdate) AddMatches(v ...*Match) *WarehouseUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMatchIDs(ids...)
}

// AddMemoryIDs adds the "memories" edge to the ContextualMemory entity by IDs.
func (_u *WarehouseUpdate) AddMemoryIDs(ids ...string) *WarehouseUpdate {
	_u.mutation.AddMemoryIDs(ids...)
	return _u
}

// AddMemories adds the "memories" edges to the ContextualMemory entity.
func (_u *WarehouseUpdate) AddMemories(v ...*ContextualMemory) *WarehouseUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMemoryIDs(ids...)
}

// AddQuestionIDs adds the "questions" edge to the PropertyQuestion entity by IDs.
func (_u *WarehouseUpdate) AddQuestionIDs(ids ...string) *WarehouseUpdate {
	_u.mutation.AddQuestionIDs(ids...)
	return _u
}

// AddQuestions adds the "questions" edges to the PropertyQuestion entity.
func (_u *WarehouseUpdate) AddQuestions(v ...*PropertyQuestion) *WarehouseUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddQuestionIDs(ids...)
}

// AddKnowledgeIDs adds the "knowledge" edge to the PropertyKnowledge entity by IDs.
func (_u *WarehouseUpdate) AddKnowledgeIDs(ids ...string) *WarehouseUpdate {
	_u.mutation.AddKnowledgeIDs(ids...)
	return _u
}

// AddKnowledge adds the "knowledge" edges to the PropertyKnowledge entity.
func (_u *WarehouseUpdate) AddKnowledge(v ...*PropertyKnowledge) *WarehouseUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddKnowledgeIDs(ids...)
}

// AddDlaTokenIDs adds the "dla_tokens" edge to the DLAToken entity by IDs.
func (_u *WarehouseUpdate) AddDlaTokenIDs(ids ...string) *WarehouseUpdate {
	_u.mutation.AddDlaTokenIDs(ids...)
	return _u
}

// AddDlaTokens adds the "dla_tokens" edges to the DLAToken entity.
func (_u *WarehouseUpdate) AddDlaTokens(v ...*DLAToken) *WarehouseUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDlaTokenIDs(ids...)
}

// AddToggleHistoryIDs adds the "toggle_history" edge to the ToggleHistory entity by IDs.
func (_u *WarehouseUpdate) AddToggleHistoryIDs(ids ...string) *WarehouseUpdate {
	_u.mutation.AddToggleHistoryIDs(ids...)
	return _u
}

// AddToggleHistory adds the "toggle_history" edges to the ToggleHistory entity.
func (_u *WarehouseUpdate) AddToggleHistory(v ...*ToggleHistory) *WarehouseUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddToggleHistoryIDs(ids...)
}

// AddSupplierAgreementIDs adds the "supplier_agreements" edge to the SupplierAgreement entity by IDs.
func (_u *WarehouseUpdate) AddSupplierAgreementIDs(ids ...string) *WarehouseUpdate {
	_u.mutation.AddSupplierAgreementIDs(ids...)
	return _u
}

// AddSupplierAgreements adds the "supplier_agreements" edges to the SupplierAgreement entity.
func (_u *WarehouseUpdate) AddSupplierAgreements(v ...*SupplierAgreement) *WarehouseUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSupplierAgreementIDs(ids...)
}

// Mutation returns the WarehouseMutation object of the builder.
func (_u *WarehouseUpdate) Mutation() *WarehouseMutation {
	return _u.mutation
}

// ClearCompany clears the "company" edge to the Company entity.
func (_u *WarehouseUpdate) ClearCompany() *WarehouseUpdate {
	_u.mutation.ClearCompany()
	return _u
}

// ClearTruthCore clears the "truth_core" edge to the TruthCore entity.
func (_u *WarehouseUpdate) ClearTruthCore() *WarehouseUpdate {
	_u.mutation.ClearTruthCore()
	return _u
}

// ClearMatches clears all "matches" edges to the Match entity.
func (_u *WarehouseUpdate) ClearMatches() *WarehouseUpdate {
	_u.mutation.ClearMatches()
	return _u
}

// RemoveMatchIDs removes the "matches" edge to Match entities by IDs.
func (_u *WarehouseUpdate) RemoveMatchIDs(ids ...string) *WarehouseUpdate {
	_u.mutation.RemoveMatchIDs(ids...)
	return _u
}

// RemoveMatches removes "matches" edges to Match entities.
func (_u *WarehouseUpdate) RemoveMatches(v ...*Match) *WarehouseUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMatchIDs(ids...)
}

// ClearMemories clears all "memories" edges to the ContextualMemory entity.
func (_u *WarehouseUpdate) ClearMemories() *WarehouseUpdate {
	_u.mutation.ClearMemories()
	return _u
}

// RemoveMemoryIDs removes the "memories" edge to ContextualMemory entities by IDs.
func (_u *WarehouseUpdate) RemoveMemoryIDs(ids ...string) *WarehouseUpdate {
	_u.mutation.RemoveMemoryIDs(ids...)
	return _u
}

// RemoveMemories removes "memories" edges to ContextualMemory entities.
func (_u *WarehouseUpdate) RemoveMemories(v ...*ContextualMemory) *WarehouseUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMemoryIDs(ids...)
}

// ClearQuestions clears all "questions" edges to the PropertyQuestion entity.
func (_u *WarehouseUpdate) ClearQuestions() *WarehouseUpdate {
	_u.mutation.ClearQuestions()
	return _u
}

// RemoveQuestionIDs removes the "questions" edge to PropertyQuestion entities by IDs.
func (_u *WarehouseUpdate) RemoveQuestionIDs(ids ...string) *WarehouseUpdate {
	_u.mutation.RemoveQuestionIDs(ids...)
	return _u
}

// RemoveQuestions removes "questions" edges to PropertyQuestion entities.
func (_u *WarehouseUpdate) RemoveQuestions(v ...*PropertyQuestion) *WarehouseUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveQuestionIDs(ids...)
}

// ClearKnowledge clears all "knowledge" edges to the PropertyKnowledge entity.
func (_u *WarehouseUpdate) ClearKnowledge() *WarehouseUpdate {
	_u.mutation.ClearKnowledge()
	return _u
}

// RemoveKnowledgeIDs removes the "knowledge" edge to PropertyKnowledge entities by IDs.
func (_u *WarehouseUpdate) RemoveKnowledgeIDs(ids ...string) *WarehouseUpdate {
	_u.mutation.RemoveKnowledgeIDs(ids...)
	return _u
}

// RemoveKnowledge removes "knowledge" edges to PropertyKnowledge entities.
func (_u *WarehouseUpdate) RemoveKnowledge(v ...*PropertyKnowledge) *WarehouseUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveKnowledgeIDs(ids...)
}

// ClearDlaTokens clears all "dla_tokens" edges to the DLAToken entity.
func (_u *WarehouseUpdate) ClearDlaTokens() *WarehouseUpdate {
	_u.mutation.ClearDlaTokens()
	return _u
}

// RemoveDlaTokenIDs removes the "dla_tokens" edge to DLAToken entities by IDs.
func (_u *WarehouseUpdate) RemoveDlaTokenIDs(ids ...string) *WarehouseUpdate {
	_u.mutation.RemoveDlaTokenIDs(ids...)
	return _u
}

// RemoveDlaTokens removes "dla_tokens" edges to DLAToken entities.
func (_u *WarehouseUpdate) RemoveDlaTokens(v ...*DLAToken) *WarehouseUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDlaTokenIDs(ids...)
}

// ClearToggleHistory clears all "toggle_history" edges to the ToggleHistory entity.
func (_u *WarehouseUpdate) ClearToggleHistory() *WarehouseUpdate {
	_u.mutation.ClearToggleHistory()
	return _u
}

// RemoveToggleHistoryIDs removes the "toggle_history" edge to ToggleHistory entities by IDs.
func (_u *WarehouseUpdate) RemoveToggleHistoryIDs(ids ...string) *WarehouseUpdate {
	_u.mutation.RemoveToggleHistoryIDs(ids...)
	return _u
}

// RemoveToggleHistory removes "toggle_history" edges to ToggleHistory entities.
func (_u *WarehouseUpdate) RemoveToggleHistory(v ...*ToggleHistory) *WarehouseUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveToggleHistoryIDs(ids...)
}

// ClearSupplierAgreements clears all "supplier_agreements" edges to the SupplierAgreement entity.
func (_u *WarehouseUpdate) ClearSupplierAgreements() *WarehouseUpdate {
	_u.mutation.ClearSupplierAgreements()
	return _u
}

// RemoveSupplierAgreementIDs removes the "supplier_agreements" edge to SupplierAgreement entities by IDs.
func (_u *WarehouseUpdate) RemoveSupplierAgreementIDs(ids ...string) *WarehouseUpdate {
	_u.mutation.RemoveSupplierAgreementIDs(ids...)
	return _u
}

// RemoveSupplierAgreements removes "supplier_agreements" edges to SupplierAgreement entities.
func (_u *WarehouseUpdate) RemoveSupplierAgreements(v ...*SupplierAgreement) *WarehouseUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSupplierAgreementIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WarehouseUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WarehouseUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WarehouseUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WarehouseUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WarehouseUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := warehouse.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WarehouseUpdate) check() error {
	if v, ok := _u.mutation.Address(); ok {
		if err := warehouse.AddressValidator(v); err != nil {
			return &ValidationError{Name: "address", err: fmt.Errorf(`ent: validator failed for field "Warehouse.address": %w`, err)}
		}
	}
	if v, ok := _u.mutation.City(); ok {
		if err := warehouse.CityValidator(v); err != nil {
			return &ValidationError{Name: "city", err: fmt.Errorf(`ent: validator failed for field "Warehouse.city": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := warehouse.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Warehouse.state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SupplierStatus(); ok {
		if err := warehouse.SupplierStatusValidator(v); err != nil {
			return &ValidationError{Name: "supplier_status", err: fmt.Errorf(`ent: validator failed for field "Warehouse.supplier_status": %w`, err)}
		}
	}
	if _u.mutation.CompanyCleared() && len(_u.mutation.CompanyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Warehouse.company"`)
	}
	return nil
}

func (_u *WarehouseUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(warehouse.Table, warehouse.Columns, sqlgraph.NewFieldSpec(warehouse.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(warehouse.FieldAddress, field.TypeString, value)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(warehouse.FieldCity, field.TypeString, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(warehouse.FieldState, field.TypeString, value)
	}
	if value, ok := _u.mutation.Zip(); ok {
		_spec.SetField(warehouse.FieldZip, field.TypeString, value)
	}
	if _u.mutation.ZipCleared() {
		_spec.ClearField(warehouse.FieldZip, field.TypeString)
	}
	if value, ok := _u.mutation.Lat(); ok {
		_spec.SetField(warehouse.FieldLat, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLat(); ok {
		_spec.AddField(warehouse.FieldLat, field.TypeFloat64, value)
	}
	if _u.mutation.LatCleared() {
		_spec.ClearField(warehouse.FieldLat, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Lng(); ok {
		_spec.SetField(warehouse.FieldLng, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLng(); ok {
		_spec.AddField(warehouse.FieldLng, field.TypeFloat64, value)
	}
	if _u.mutation.LngCleared() {
		_spec.ClearField(warehouse.FieldLng, field.TypeFloat64)
	}
	if value, ok := _u.mutation.BuildingSqft(); ok {
		_spec.SetField(warehouse.FieldBuildingSqft, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBuildingSqft(); ok {
		_spec.AddField(warehouse.FieldBuildingSqft, field.TypeInt, value)
	}
	if _u.mutation.BuildingSqftCleared() {
		_spec.ClearField(warehouse.FieldBuildingSqft, field.TypeInt)
	}
	if value, ok := _u.mutation.YearBuilt(); ok {
		_spec.SetField(warehouse.FieldYearBuilt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedYearBuilt(); ok {
		_spec.AddField(warehouse.FieldYearBuilt, field.TypeInt, value)
	}
	if _u.mutation.YearBuiltCleared() {
		_spec.ClearField(warehouse.FieldYearBuilt, field.TypeInt)
	}
	if value, ok := _u.mutation.ConstructionType(); ok {
		_spec.SetField(warehouse.FieldConstructionType, field.TypeString, value)
	}
	if _u.mutation.ConstructionTypeCleared() {
		_spec.ClearField(warehouse.FieldConstructionType, field.TypeString)
	}
	if value, ok := _u.mutation.Gallery(); ok {
		_spec.SetField(warehouse.FieldGallery, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedGallery(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, warehouse.FieldGallery, value)
		})
	}
	if _u.mutation.GalleryCleared() {
		_spec.ClearField(warehouse.FieldGallery, field.TypeJSON)
	}
	if value, ok := _u.mutation.ContactPhone(); ok {
		_spec.SetField(warehouse.FieldContactPhone, field.TypeString, value)
	}
	if _u.mutation.ContactPhoneCleared() {
		_spec.ClearField(warehouse.FieldContactPhone, field.TypeString)
	}
	if value, ok := _u.mutation.SupplierStatus(); ok {
		_spec.SetField(warehouse.FieldSupplierStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LastOutreachAt(); ok {
		_spec.SetField(warehouse.FieldLastOutreachAt, field.TypeTime, value)
	}
	if _u.mutation.LastOutreachAtCleared() {
		_spec.ClearField(warehouse.FieldLastOutreachAt, field.TypeTime)
	}
	if value, ok := _u.mutation.OutreachCount(); ok {
		_spec.SetField(warehouse.FieldOutreachCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutreachCount(); ok {
		_spec.AddField(warehouse.FieldOutreachCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(warehouse.FieldCreatedBy, field.TypeString, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(warehouse.FieldCreatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(warehouse.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.CompanyCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CompanyIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TruthCoreCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TruthCoreIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MatchesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMatchesIDs(); len(nodes) > 0 && !_u.mutation.MatchesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MatchesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MemoriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMemoriesIDs(); len(nodes) > 0 && !_u.mutation.MemoriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MemoriesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.QuestionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedQuestionsIDs(); len(nodes) > 0 && !_u.mutation.QuestionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuestionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.KnowledgeCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedKnowledgeIDs(); len(nodes) > 0 && !_u.mutation.KnowledgeCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.KnowledgeIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DlaTokensCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDlaTokensIDs(); len(nodes) > 0 && !_u.mutation.DlaTokensCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DlaTokensIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ToggleHistoryCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedToggleHistoryIDs(); len(nodes) > 0 && !_u.mutation.ToggleHistoryCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ToggleHistoryIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SupplierAgreementsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSupplierAgreementsIDs(); len(nodes) > 0 && !_u.mutation.SupplierAgreementsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SupplierAgreementsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{warehouse.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WarehouseUpdateOne is the builder for updating a single Warehouse entity.
type WarehouseUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WarehouseMutation
}

// SetCompanyID sets the "company_id" field.
func (_u *WarehouseUpdateOne) SetCompanyID(v string) *WarehouseUpdateOne {
	_u.mutation.SetCompanyID(v)
	return _u
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_u *WarehouseUpdateOne) SetNillableCompanyID(v *string) *WarehouseUpdateOne {
	if v != nil {
		_u.SetCompanyID(*v)
	}
	return _u
}

// SetAddress sets the "address" field.
func (_u *WarehouseUpdateOne) SetAddress(v string) *WarehouseUpdateOne {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *WarehouseUpdateOne) SetNillableAddress(v *string) *WarehouseUpdateOne {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// SetCity sets the "city" field.
func (_u *WarehouseUpdateOne) SetCity(v string) *WarehouseUpdateOne {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *WarehouseUpdateOne) SetNillableCity(v *string) *WarehouseUpdateOne {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *WarehouseUpdateOne) SetState(v string) *WarehouseUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *WarehouseUpdateOne) SetNillableState(v *string) *WarehouseUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetZip sets the "zip" field.
func (_u *WarehouseUpdateOne) SetZip(v string) *WarehouseUpdateOne {
	_u.mutation.SetZip(v)
	return _u
}

// SetNillableZip sets the "zip" field if the given value is not nil.
func (_u *WarehouseUpdateOne) SetNillableZip(v *string) *WarehouseUpdateOne {
	if v != nil {
		_u.SetZip(*v)
	}
	return _u
}

// ClearZip clears the value of the "zip" field.
func (_u *WarehouseUpdateOne) ClearZip() *WarehouseUpdateOne {
	_u.mutation.ClearZip()
	return _u
}

// SetLat sets the "lat" field.
func (_u *WarehouseUpdateOne) SetLat(v float64) *WarehouseUpdateOne {
	_u.mutation.ResetLat()
	_u.mutation.SetLat(v)
	return _u
}

// SetNillableLat sets the "lat" field if the given value is not nil.
func (_u *WarehouseUpdateOne) SetNillableLat(v *float64) *WarehouseUpdateOne {
	if v != nil {
		_u.SetLat(*v)
	}
	return _u
}

// AddLat adds value to the "lat" field.
func (_u *WarehouseUpdateOne) AddLat(v float64) *WarehouseUpdateOne {
	_u.mutation.AddLat(v)
	return _u
}

// ClearLat clears the value of the "lat" field.
func (_u *WarehouseUpdateOne) ClearLat() *WarehouseUpdateOne {
	_u.mutation.ClearLat()
	return _u
}

// SetLng sets the "lng" field.
func (_u *WarehouseUpdateOne) SetLng(v float64) *WarehouseUpdateOne {
	_u.mutation.ResetLng()
	_u.mutation.SetLng(v)
	return _u
}

// SetNillableLng sets the "lng" field if the given value is not nil.
func (_u *WarehouseUpdateOne) SetNillableLng(v *float64) *WarehouseUpdateOne {
	if v != nil {
		_u.SetLng(*v)
	}
	return _u
}

// AddLng adds value to the "lng" field.
func (_u *WarehouseUpdateOne) AddLng(v float64) *WarehouseUpdateOne {
	_u.mutation.AddLng(v)
	return _u
}

// ClearLng clears the value of the "lng" field.
func (_u *WarehouseUpdateOne) ClearLng() *WarehouseUpdateOne {
	_u.mutation.ClearLng()
	return _u
}

// SetBuildingSqft sets the "building_sqft" field.
func (_u *WarehouseUpdateOne) SetBuildingSqft(v int) *WarehouseUpdateOne {
	_u.mutation.ResetBuildingSqft()
	_u.mutation.SetBuildingSqft(v)
	return _u
}

// SetNillableBuildingSqft sets the "building_sqft" field if the given value is not nil.
func (_u *WarehouseUpdateOne) SetNillableBuildingSqft(v *int) *WarehouseUpdateOne {
	if v != nil {
		_u.SetBuildingSqft(*v)
	}
	return _u
}

// AddBuildingSqft adds value to the "building_sqft" field.
func (_u *WarehouseUpdateOne) AddBuildingSqft(v int) *WarehouseUpdateOne {
	_u.mutation.AddBuildingSqft(v)
	return _u
}

// ClearBuildingSqft clears the value of the "building_sqft" field.
func (_u *WarehouseUpdateOne) ClearBuildingSqft() *WarehouseUpdateOne {
	_u.mutation.ClearBuildingSqft()
	return _u
}

// SetYearBuilt sets the "year_built" field.
func (_u *WarehouseUpdateOne) SetYearBuilt(v int) *WarehouseUpdateOne {
	_u.mutation.ResetYearBuilt()
	_u.mutation.SetYearBuilt(v)
	return _u
}

// SetNillableYearBuilt sets the "year_built" field if the given value is not nil.
func (_u *WarehouseUpdateOne) SetNillableYearBuilt(v *int) *WarehouseUpdateOne {
	if v != nil {
		_u.SetYearBuilt(*v)
	}
	return _u
}

// AddYearBuilt adds value to the "year_built" field.
func (_u *WarehouseUpdateOne) AddYearBuilt(v int) *WarehouseUpdateOne {
	_u.mutation.AddYearBuilt(v)
	return _u
}

// ClearYearBuilt clears the value of the "year_built" field.
func (_u *WarehouseUpdateOne) ClearYearBuilt() *WarehouseUpdateOne {
	_u.mutation.ClearYearBuilt()
	return _u
}

// SetConstructionType sets the "construction_type" field.
func (_u *WarehouseUpdateOne) SetConstructionType(v string) *WarehouseUpdateOne {
	_u.mutation.SetConstructionType(v)
	return _u
}

// SetNillableConstructionType sets the "construction_type" field if the given value is not nil.
func (_u *WarehouseUpdateOne) SetNillableConstructionType(v *string) *WarehouseUpdateOne {
	if v != nil {
		_u.SetConstructionType(*v)
	}
	return _u
}

// ClearConstructionType clears the value of the "construction_type" field.
func (_u *WarehouseUpdateOne) ClearConstructionType() *WarehouseUpdateOne {
	_u.mutation.ClearConstructionType()
	return _u
}

// SetGallery sets the "gallery" field.
func (_u *WarehouseUpdateOne) SetGallery(v []string) *WarehouseUpdateOne {
	_u.mutation.SetGallery(v)
	return _u
}

// AppendGallery appends value to the "gallery" field.
func (_u *WarehouseUpdateOne) AppendGallery(v []string) *WarehouseUpdateOne {
	_u.mutation.AppendGallery(v)
	return _u
}

// ClearGallery clears the value of the "gallery" field.
func (_u *WarehouseUpdateOne) ClearGallery() *WarehouseUpdateOne {
	_u.mutation.ClearGallery()
	return _u
}

// SetContactPhone sets the "contact_phone" field.
func (_u *WarehouseUpdateOne) SetContactPhone(v string) *WarehouseUpdateOne {
	_u.mutation.SetContactPhone(v)
	return _u
}

// SetNillableContactPhone sets the "contact_phone" field if the given value is not nil.
func (_u *WarehouseUpdateOne) SetNillableContactPhone(v *string) *WarehouseUpdateOne {
	if v != nil {
		_u.SetContactPhone(*v)
	}
	return _u
}

// ClearContactPhone clears the value of the "contact_phone" field.
func (_u *WarehouseUpdateOne) ClearContactPhone() *WarehouseUpdateOne {
	_u.mutation.ClearContactPhone()
	return _u
}

// SetSupplierStatus sets the "supplier_status" field.
func (_u *WarehouseUpdateOne) SetSupplierStatus(v warehouse.SupplierStatus) *WarehouseUpdateOne {
	_u.mutation.SetSupplierStatus(v)
	return _u
}

// SetNillableSupplierStatus sets the "supplier_status" field if the given value is not nil.
func (_u *WarehouseUpdateOne) SetNillableSupplierStatus(v *warehouse.SupplierStatus) *WarehouseUpdateOne {
	if v != nil {
		_u.SetSupplierStatus(*v)
	}
	return _u
}

// SetLastOutreachAt sets the "last_outreach_at" field.
func (_u *WarehouseUpdateOne) SetLastOutreachAt(v time.Time) *WarehouseUpdateOne {
	_u.mutation.SetLastOutreachAt(v)
	return _u
}

// SetNillableLastOutreachAt sets the "last_outreach_at" field if the given value is not nil.
func (_u *WarehouseUpdateOne) SetNillableLastOutreachAt(v *time.Time) *WarehouseUpdateOne {
	if v != nil {
		_u.SetLastOutreachAt(*v)
	}
	return _u
}

// ClearLastOutreachAt clears the value of the "last_outreach_at" field.
func (_u *WarehouseUpdateOne) ClearLastOutreachAt() *WarehouseUpdateOne {
	_u.mutation.ClearLastOutreachAt()
	return _u
}

// SetOutreachCount sets the "outreach_count" field.
func (_u *WarehouseUpdateOne) SetOutreachCount(v int) *WarehouseUpdateOne {
	_u.mutation.ResetOutreachCount()
	_u.mutation.SetOutreachCount(v)
	return _u
}

// SetNillableOutreachCount sets the "outreach_count" field if the given value is not nil.
func (_u *WarehouseUpdateOne) SetNillableOutreachCount(v *int) *WarehouseUpdateOne {
	if v != nil {
		_u.SetOutreachCount(*v)
	}
	return _u
}

// AddOutreachCount adds value to the "outreach_count" field.
func (_u *WarehouseUpdateOne) AddOutreachCount(v int) *WarehouseUpdateOne {
	_u.mutation.AddOutreachCount(v)
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *WarehouseUpdateOne) SetCreatedBy(v string) *WarehouseUpdateOne {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *WarehouseUpdateOne) SetNillableCreatedBy(v *string) *WarehouseUpdateOne {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (_u *WarehouseUpdateOne) ClearCreatedBy() *WarehouseUpdateOne {
	_u.mutation.ClearCreatedBy()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WarehouseUpdateOne) SetUpdatedAt(v time.Time) *WarehouseUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCompany sets the "company" edge to the Company entity.
func (_u *WarehouseUpdateOne) SetCompany(v *Company) *WarehouseUpdateOne {
	return _u.SetCompanyID(v.ID)
}

// SetTruthCoreID sets the "truth_core" edge to the TruthCore entity by ID.
func (_u *WarehouseUpdateOne) SetTruthCoreID(id string) *WarehouseUpdateOne {
	_u.mutation.SetTruthCoreID(id)
	return _u
}

// SetNillableTruthCoreID sets the "truth_core" edge to the TruthCore entity by ID if the given value is not nil.
func (_u *WarehouseUpdateOne) SetNillableTruthCoreID(id *string) *WarehouseUpdateOne {
	if id != nil {
		_u = _u.SetTruthCoreID(*id)
	}
	return _u
}

// SetTruthCore sets the "truth_core" edge to the TruthCore entity.
func (_u *WarehouseUpdateOne) SetTruthCore(v *TruthCore) *WarehouseUpdateOne {
	return _u.SetTruthCoreID(v.ID)
}

// AddMatchIDs adds the "matches" edge to the Match entity by IDs.
func (_u *WarehouseUpdateOne) AddMatchIDs(ids ...string) *WarehouseUpdateOne {
	_u.mutation.AddMatchIDs(ids...)
	return _u
}

// AddMatches adds the "matches" edges to the Match entity.
func (_u *WarehouseUpdateOne) AddMatches(v ...*Match) *WarehouseUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMatchIDs(ids...)
}

// AddMemoryIDs adds the "memories" edge to the ContextualMemory entity by IDs.
func (_u *WarehouseUpdateOne) AddMemoryIDs(ids ...string) *WarehouseUpdateOne {
	_u.mutation.AddMemoryIDs(ids...)
	return _u
}

// AddMemories adds the "memories" edges to the ContextualMemory entity.
func (_u *WarehouseUpdateOne) AddMemories(v ...*ContextualMemory) *WarehouseUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMemoryIDs(ids...)
}

// AddQuestionIDs adds the "questions" edge to the PropertyQuestion entity by IDs.
func (_u *WarehouseUpdateOne) AddQuestionIDs(ids ...string) *WarehouseUpdateOne {
	_u.mutation.AddQuestionIDs(ids...)
	return _u
}

// AddQuestions adds the "questions" edges to the PropertyQuestion entity.
func (_u *WarehouseUpdateOne) AddQuestions(v ...*PropertyQuestion) *WarehouseUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddQuestionIDs(ids...)
}

// AddKnowledgeIDs adds the "knowledge" edge to the PropertyKnowledge entity by IDs.
func (_u *WarehouseUpdateOne) AddKnowledgeIDs(ids ...string) *WarehouseUpdateOne {
	_u.mutation.AddKnowledgeIDs(ids...)
	return _u
}

// AddKnowledge adds the "knowledge" edges to the PropertyKnowledge entity.
func (_u *WarehouseUpdateOne) AddKnowledge(v ...*PropertyKnowledge) *WarehouseUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddKnowledgeIDs(ids...)
}

// AddDlaTokenIDs adds the "dla_tokens" edge to the DLAToken entity by IDs.
func (_u *WarehouseUpdateOne) AddDlaTokenIDs(ids ...string) *WarehouseUpdateOne {
	_u.mutation.AddDlaTokenIDs(ids...)
	return _u
}

// AddDlaTokens adds the "dla_tokens" edges to the DLAToken entity.
func (_u *WarehouseUpdateOne) AddDlaTokens(v ...*DLAToken) *WarehouseUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDlaTokenIDs(ids...)
}

// AddToggleHistoryIDs adds the "toggle_history" edge to the ToggleHistory entity by IDs.
func (_u *WarehouseUpdateOne) AddToggleHistoryIDs(ids ...string) *WarehouseUpdateOne {
	_u.mutation.AddToggleHistoryIDs(ids...)
	return _u
}

// AddToggleHistory adds the "toggle_history" edges to the ToggleHistory entity.
func (_u *WarehouseUpdateOne) AddToggleHistory(v ...*ToggleHistory) *WarehouseUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddToggleHistoryIDs(ids...)
}

// AddSupplierAgreementIDs adds the "supplier_agreements" edge to the SupplierAgreement entity by IDs.
func (_u *WarehouseUpdateOne) AddSupplierAgreementIDs(ids ...string) *WarehouseUpdateOne {
	_u.mutation.AddSupplierAgreementIDs(ids...)
	return _u
}

// AddSupplierAgreements adds the "supplier_agreements" edges to the SupplierAgreement entity.
func (_u *WarehouseUpdateOne) AddSupplierAgreements(v ...*SupplierAgreement) *WarehouseUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSupplierAgreementIDs(ids...)
}

// Mutation returns the WarehouseMutation object of the builder.
func (_u *WarehouseUpdateOne) Mutation() *WarehouseMutation {
	return _u.mutation
}

// ClearCompany clears the "company" edge to the Company entity.
func (_u *WarehouseUpdateOne) ClearCompany() *WarehouseUpdateOne {
	_u.mutation.ClearCompany()
	return _u
}

// ClearTruthCore clears the "truth_core" edge to the TruthCore entity.
func (_u *WarehouseUpdateOne) ClearTruthCore() *WarehouseUpdateOne {
	_u.mutation.ClearTruthCore()
	return _u
}

// ClearMatches clears all "matches" edges to the Match entity.
func (_u *WarehouseUpdateOne) ClearMatches() *WarehouseUpdateOne {
	_u.mutation.ClearMatches()
	return _u
}

// RemoveMatchIDs removes the "matches" edge to Match entities by IDs.
func (_u *WarehouseUpdateOne) RemoveMatchIDs(ids ...string) *WarehouseUpdateOne {
	_u.mutation.RemoveMatchIDs(ids...)
	return _u
}

// RemoveMatches removes "matches" edges to Match entities.
func (_u *WarehouseUpdateOne) RemoveMatches(v ...*Match) *WarehouseUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMatchIDs(ids...)
}

// ClearMemories clears all "memories" edges to the ContextualMemory entity.
func (_u *WarehouseUpdateOne) ClearMemories() *WarehouseUpdateOne {
	_u.mutation.ClearMemories()
	return _u
}

// RemoveMemoryIDs removes the "memories" edge to ContextualMemory entities by IDs.
func (_u *WarehouseUpdateOne) RemoveMemoryIDs(ids ...string) *WarehouseUpdateOne {
	_u.mutation.RemoveMemoryIDs(ids...)
	return _u
}

// RemoveMemories removes "memories" edges to ContextualMemory entities.
func (_u *WarehouseUpdateOne) RemoveMemories(v ...*ContextualMemory) *WarehouseUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMemoryIDs(ids...)
}

// ClearQuestions clears all "questions" edges to the PropertyQuestion entity.
func (_u *WarehouseUpdateOne) ClearQuestions() *WarehouseUpdateOne {
	_u.mutation.ClearQuestions()
	return _u
}

// RemoveQuestionIDs removes the "questions" edge to PropertyQuestion entities by IDs.
func (_u *WarehouseUpdateOne) RemoveQuestionIDs(ids ...string) *WarehouseUpdateOne {
	_u.mutation.RemoveQuestionIDs(ids...)
	return _u
}

// RemoveQuestions removes "questions" edges to PropertyQuestion entities.
func (_u *WarehouseUpdateOne) RemoveQuestions(v ...*PropertyQuestion) *WarehouseUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveQuestionIDs(ids...)
}

// ClearKnowledge clears all "knowledge" edges to the PropertyKnowledge entity.
func (_u *WarehouseUpdateOne) ClearKnowledge() *WarehouseUpdateOne {
	_u.mutation.ClearKnowledge()
	return _u
}

// RemoveKnowledgeIDs removes the "knowledge" edge to PropertyKnowledge entities by IDs.
func (_u *WarehouseUpdateOne) RemoveKnowledgeIDs(ids ...string) *WarehouseUpdateOne {
	_u.mutation.RemoveKnowledgeIDs(ids...)
	return _u
}

// RemoveKnowledge removes "knowledge" edges to PropertyKnowledge entities.
func (_u *WarehouseUpdateOne) RemoveKnowledge(v ...*PropertyKnowledge) *WarehouseUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveKnowledgeIDs(ids...)
}

// ClearDlaTokens clears all "dla_tokens" edges to the DLAToken entity.
func (_u *WarehouseUpdateOne) ClearDlaTokens() *WarehouseUpdateOne {
	_u.mutation.ClearDlaTokens()
	return _u
}

// RemoveDlaTokenIDs removes the "dla_tokens" edge to DLAToken entities by IDs.
func (_u *WarehouseUpdateOne) RemoveDlaTokenIDs(ids ...string) *WarehouseUpdateOne {
	_u.mutation.RemoveDlaTokenIDs(ids...)
	return _u
}

// RemoveDlaTokens removes "dla_tokens" edges to DLAToken entities.
func (_u *WarehouseUpdateOne) RemoveDlaTokens(v ...*DLAToken) *WarehouseUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDlaTokenIDs(ids...)
}

// ClearToggleHistory clears all "toggle_history" edges to the ToggleHistory entity.
func (_u *WarehouseUpdateOne) ClearToggleHistory() *WarehouseUpdateOne {
	_u.mutation.ClearToggleHistory()
	return _u
}

// RemoveToggleHistoryIDs removes the "toggle_history" edge to ToggleHistory entities by IDs.
func (_u *WarehouseUpdateOne) RemoveToggleHistoryIDs(ids ...string) *WarehouseUpdateOne {
	_u.mutation.RemoveToggleHistoryIDs(ids...)
	return _u
}

// RemoveToggleHistory removes "toggle_history" edges to ToggleHistory entities.
func (_u *WarehouseUpdateOne) RemoveToggleHistory(v ...*ToggleHistory) *WarehouseUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveToggleHistoryIDs(ids...)
}

// ClearSupplierAgreements clears all "supplier_agreements" edges to the SupplierAgreement entity.
func (_u *WarehouseUpdateOne) ClearSupplierAgreements() *WarehouseUpdateOne {
	_u.mutation.ClearSupplierAgreements()
	return _u
}

// RemoveSupplierAgreementIDs removes the "supplier_agreements" edge to SupplierAgreement entities by IDs.
func (_u *WarehouseUpdateOne) RemoveSupplierAgreementIDs(ids ...string) *WarehouseUpdateOne {
	_u.mutation.RemoveSupplierAgreementIDs(ids...)
	return _u
}

// RemoveSupplierAgreements removes "supplier_agreements" edges to SupplierAgreement entities.
func (_u *WarehouseUpdateOne) RemoveSupplierAgreements(v ...*SupplierAgreement) *WarehouseUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSupplierAgreementIDs(ids...)
}

// Where appends a list predicates to the WarehouseUpdate builder.
func (_u *WarehouseUpdateOne) Where(ps ...predicate.Warehouse) *WarehouseUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WarehouseUpdateOne) Select(field string, fields ...string) *WarehouseUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Warehouse entity.
func (_u *WarehouseUpdateOne) Save(ctx context.Context) (*Warehouse, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WarehouseUpdateOne) SaveX(ctx context.Context) *Warehouse {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WarehouseUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WarehouseUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WarehouseUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := warehouse.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WarehouseUpdateOne) check() error {
	if v, ok := _u.mutation.Address(); ok {
		if err := warehouse.AddressValidator(v); err != nil {
			return &ValidationError{Name: "address", err: fmt.Errorf(`ent: validator failed for field "Warehouse.address": %w`, err)}
		}
	}
	if v, ok := _u.mutation.City(); ok {
		if err := warehouse.CityValidator(v); err != nil {
			return &ValidationError{Name: "city", err: fmt.Errorf(`ent: validator failed for field "Warehouse.city": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := warehouse.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Warehouse.state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SupplierStatus(); ok {
		if err := warehouse.SupplierStatusValidator(v); err != nil {
			return &ValidationError{Name: "supplier_status", err: fmt.Errorf(`ent: validator failed for field "Warehouse.supplier_status": %w`, err)}
		}
	}
	if _u.mutation.CompanyCleared() && len(_u.mutation.CompanyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Warehouse.company"`)
	}
	return nil
}

func (_u *WarehouseUpdateOne) sqlSave(ctx context.Context) (_node *Warehouse, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(warehouse.Table, warehouse.Columns, sqlgraph.NewFieldSpec(warehouse.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Warehouse.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, warehouse.FieldID)
		for _, f := range fields {
			if !warehouse.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != warehouse.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(warehouse.FieldAddress, field.TypeString, value)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(warehouse.FieldCity, field.TypeString, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(warehouse.FieldState, field.TypeString, value)
	}
	if value, ok := _u.mutation.Zip(); ok {
		_spec.SetField(warehouse.FieldZip, field.TypeString, value)
	}
	if _u.mutation.ZipCleared() {
		_spec.ClearField(warehouse.FieldZip, field.TypeString)
	}
	if value, ok := _u.mutation.Lat(); ok {
		_spec.SetField(warehouse.FieldLat, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLat(); ok {
		_spec.AddField(warehouse.FieldLat, field.TypeFloat64, value)
	}
	if _u.mutation.LatCleared() {
		_spec.ClearField(warehouse.FieldLat, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Lng(); ok {
		_spec.SetField(warehouse.FieldLng, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLng(); ok {
		_spec.AddField(warehouse.FieldLng, field.TypeFloat64, value)
	}
	if _u.mutation.LngCleared() {
		_spec.ClearField(warehouse.FieldLng, field.TypeFloat64)
	}
	if value, ok := _u.mutation.BuildingSqft(); ok {
		_spec.SetField(warehouse.FieldBuildingSqft, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBuildingSqft(); ok {
		_spec.AddField(warehouse.FieldBuildingSqft, field.TypeInt, value)
	}
	if _u.mutation.BuildingSqftCleared() {
		_spec.ClearField(warehouse.FieldBuildingSqft, field.TypeInt)
	}
	if value, ok := _u.mutation.YearBuilt(); ok {
		_spec.SetField(warehouse.FieldYearBuilt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedYearBuilt(); ok {
		_spec.AddField(warehouse.FieldYearBuilt, field.TypeInt, value)
	}
	if _u.mutation.YearBuiltCleared() {
		_spec.ClearField(warehouse.FieldYearBuilt, field.TypeInt)
	}
	if value, ok := _u.mutation.ConstructionType(); ok {
		_spec.SetField(warehouse.FieldConstructionType, field.TypeString, value)
	}
	if _u.mutation.ConstructionTypeCleared() {
		_spec.ClearField(warehouse.FieldConstructionType, field.TypeString)
	}
	if value, ok := _u.mutation.Gallery(); ok {
		_spec.SetField(warehouse.FieldGallery, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedGallery(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, warehouse.FieldGallery, value)
		})
	}
	if _u.mutation.GalleryCleared() {
		_spec.ClearField(warehouse.FieldGallery, field.TypeJSON)
	}
	if value, ok := _u.mutation.ContactPhone(); ok {
		_spec.SetField(warehouse.FieldContactPhone, field.TypeString, value)
	}
	if _u.mutation.ContactPhoneCleared() {
		_spec.ClearField(warehouse.FieldContactPhone, field.TypeString)
	}
	if value, ok := _u.mutation.SupplierStatus(); ok {
		_spec.SetField(warehouse.FieldSupplierStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LastOutreachAt(); ok {
		_spec.SetField(warehouse.FieldLastOutreachAt, field.TypeTime, value)
	}
	if _u.mutation.LastOutreachAtCleared() {
		_spec.ClearField(warehouse.FieldLastOutreachAt, field.TypeTime)
	}
	if value, ok := _u.mutation.OutreachCount(); ok {
		_spec.SetField(warehouse.FieldOutreachCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutreachCount(); ok {
		_spec.AddField(warehouse.FieldOutreachCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(warehouse.FieldCreatedBy, field.TypeString, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(warehouse.FieldCreatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(warehouse.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.CompanyCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CompanyIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TruthCoreCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TruthCoreIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MatchesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMatchesIDs(); len(nodes) > 0 && !_u.mutation.MatchesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MatchesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MemoriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMemoriesIDs(); len(nodes) > 0 && !_u.mutation.MemoriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MemoriesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.QuestionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedQuestionsIDs(); len(nodes) > 0 && !_u.mutation.QuestionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuestionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.KnowledgeCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedKnowledgeIDs(); len(nodes) > 0 && !_u.mutation.KnowledgeCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.KnowledgeIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DlaTokensCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDlaTokensIDs(); len(nodes) > 0 && !_u.mutation.DlaTokensCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DlaTokensIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ToggleHistoryCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedToggleHistoryIDs(); len(nodes) > 0 && !_u.mutation.ToggleHistoryCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ToggleHistoryIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SupplierAgreementsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSupplierAgreementsIDs(); len(nodes) > 0 && !_u.mutation.SupplierAgreementsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SupplierAgreementsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Warehouse{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{warehouse.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
