// Code generated by ent, DO NOT EDIT.

package togglehistory

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/warehouse-exchange/wex/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ToggleHistory {
	return predicate.ToggleHistory(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ToggleHistory {
	return predicate.ToggleHistory(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ToggleHistory {
	return predicate.ToggleHistory(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ToggleHistory {
	return predicate.ToggleHistory(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ToggleHistory {
	return predicate.ToggleHistory(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ToggleHistory {
	return predicate.ToggleHistory(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ToggleHistory {
	return predicate.ToggleHistory(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ToggleHistory {
	return predicate.ToggleHistory(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ToggleHistory {
	return predicate.ToggleHistory(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ToggleHistory {
	return predicate.ToggleHistory(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ToggleHistory {
	return predicate.ToggleHistory(sql.FieldContainsFold(FieldID, id))
}

// WarehouseID applies equality check predicate on the "warehouse_id" field. It's identical to WarehouseIDEQ.
func WarehouseID(v string) predicate.ToggleHistory {
	return predicate.ToggleHistory(sql.FieldEQ(FieldWarehouseID, v))
}

// ToggledBy applies equality check predicate on the "toggled_by" field. It's identical to ToggledByEQ.
func ToggledBy(v string) predicate.ToggleHistory {
	return predicate.ToggleHistory(sql.FieldEQ(FieldToggledBy, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.ToggleHistory {
	return predicate.ToggleHistory(sql.FieldEQ(FieldReason, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ToggleHistory {
	return predicate.ToggleHistory(sql.FieldEQ(FieldCreatedAt, v))
}

// WarehouseIDEQ applies the EQ predicate on the "warehouse_id" field.
func WarehouseIDEQ(v string) predicate.ToggleHistory {
	return predicate.ToggleHistory(sql.FieldEQ(FieldWarehouseID, v))
}

// WarehouseIDNEQ applies the NEQ predicate on the "warehouse_id" field.
func WarehouseIDNEQ(v string) predicate.ToggleHistory {
	return predicate.ToggleHistory(sql.FieldNEQ(FieldWarehouseID, v))
}

// WarehouseIDIn applies the In predicate on the "warehouse_id" field.
func WarehouseIDIn(vs ...string) predicate.ToggleHistory {
	return predicate.ToggleHistory(sql.FieldIn(FieldWarehouseID, vs...))
}

// WarehouseIDNotIn applies the NotIn predicate on the "warehouse_id" field.
func WarehouseIDNotIn(vs ...string) predicate.ToggleHistory {
	return predicate.ToggleHistory(sql.FieldNotIn(FieldWarehouseID, vs...))
}

// WarehouseIDGT applies the GT predicate on the "warehouse_id" field.
func WarehouseIDGT(v string) predicate.ToggleHistory {
	return predicate.ToggleHistory(sql.FieldGT(FieldWarehouseID, v))
}

// WarehouseIDGTE applies the GTE predicate on the "warehouse_id" field.
func WarehouseIDGTE(v string) predicate.ToggleHistory {
	return predicate.ToggleHistory(sql.FieldGTE(FieldWarehouseID, v))
}

// WarehouseIDLT applies the LT predicate on the "warehouse_id" field.
func WarehouseIDLT(v string) predicate.ToggleHistory {
	return predicate.ToggleHistory(sql.FieldLT(FieldWarehouseID, v))
}

// WarehouseIDLTE applies the LTE predicate on the "warehouse_id" field.
func WarehouseIDLTE(v string) predicate.ToggleHistory {
	return predicate.ToggleHistory(sql.FieldLTE(FieldWarehouseID, v))
}

// WarehouseIDContains applies the Contains predicate on the "warehouse_id" field.
func WarehouseIDContains(v string) predicate.ToggleHistory {
	return predicate.ToggleHistory(sql.FieldContains(FieldWarehouseID, v))
}

// WarehouseIDHasPrefix applies the HasPrefix predicate on the "warehouse_id" field.
func WarehouseIDHasPrefix(v string) predicate.ToggleHistory {
	return predicate.ToggleHistory(sql.FieldHasPrefix(FieldWarehouseID, v))
}

// WarehouseIDHasSuffix applies the HasSuffix predicate on the "warehouse_id" field.
func WarehouseIDHasSuffix(v string) predicate.ToggleHistory {
	return predicate.ToggleHistory(sql.FieldHasSuffix(FieldWarehouseID, v))
}

// WarehouseIDEqualFold applies the EqualFold predicate on the "warehouse_id" field.
func WarehouseIDEqualFold(v string) predicate.ToggleHistory {
	return predicate.ToggleHistory(sql.FieldEqualFold(FieldWarehouseID, v))
}

// WarehouseIDContainsFold applies the ContainsFold predicate on the "warehouse_id" field.
func WarehouseIDContainsFold(v string) predicate.ToggleHistory {
	return predicate.ToggleHistory(sql.FieldContainsFold(FieldWarehouseID, v))
}

// NewStateEQ applies the EQ predicate on the "new_state" field.
func NewStateEQ(v NewState) predicate.ToggleHistory {
	return predicate.ToggleHistory(sql.FieldEQ(FieldNewState, v))
}

// NewStateNEQ applies the NEQ predicate on the "new_state" field.
func NewStateNEQ(v NewState) predicate.ToggleHistory {
	return predicate.ToggleHistory(sql.FieldNEQ(FieldNewState, v))
}

// NewStateIn applies the In predicate on the "new_state" field.
func NewStateIn(vs ...NewState) predicate.ToggleHistory {
	return predicate.ToggleHistory(sql.FieldIn(FieldNewState, vs...))
}

// NewStateNotIn applies the NotIn predicate on the "new_state" field.
func NewStateNotIn(vs ...NewState) predicate.ToggleHistory {
	return predicate.ToggleHistory(sql.FieldNotIn(FieldNewState, vs...))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v Source) predicate.ToggleHistory {
	return predicate.ToggleHistory(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v Source) predicate.ToggleHistory {
	return predicate.ToggleHistory(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...Source) predicate.ToggleHistory {
	return predicate.ToggleHistory(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...Source) predicate.ToggleHistory {
	return predicate.ToggleHistory(sql.FieldNotIn(FieldSource, vs...))
}

// ToggledByEQ applies the EQ predicate on the "toggled_by" field.
func ToggledByEQ(v string) predicate.ToggleHistory {
	return predicate.ToggleHistory(sql.FieldEQ(FieldToggledBy, v))
}

// ToggledByNEQ applies the NEQ predicate on the "toggled_by" field.
func ToggledByNEQ(v string) predicate.ToggleHistory {
	return predicate.ToggleHistory(sql.FieldNEQ(FieldToggledBy, v))
}

// ToggledByIn applies the In predicate on the "toggled_by" field.
func ToggledByIn(vs ...string) predicate.ToggleHistory {
	return predicate.ToggleHistory(sql.FieldIn(FieldToggledBy, vs...))
}

// ToggledByNotIn applies the NotIn predicate on the "toggled_by" field.
func ToggledByNotIn(vs ...string) predicate.ToggleHistory {
	return predicate.ToggleHistory(sql.FieldNotIn(FieldToggledBy, vs...))
}

// ToggledByGT applies the GT predicate on the "toggled_by" field.
func ToggledByGT(v string) predicate.ToggleHistory {
	return predicate.ToggleHistory(sql.FieldGT(FieldToggledBy, v))
}

// ToggledByGTE applies the GTE predicate on the "toggled_by" field.
func ToggledByGTE(v string) predicate.ToggleHistory {
	return predicate.ToggleHistory(sql.FieldGTE(FieldToggledBy, v))
}

// ToggledByLT applies the LT predicate on the "toggled_by" field.
func ToggledByLT(v string) predicate.ToggleHistory {
	return predicate.ToggleHistory(sql.FieldLT(FieldToggledBy, v))
}

// ToggledByLTE applies the LTE predicate on the "toggled_by" field.
func ToggledByLTE(v string) predicate.ToggleHistory {
	return predicate.ToggleHistory(sql.FieldLTE(FieldToggledBy, v))
}

// ToggledByContains applies the Contains predicate on the "toggled_by" field.
func ToggledByContains(v string) predicate.ToggleHistory {
	return predicate.ToggleHistory(sql.FieldContains(FieldToggledBy, v))
}

// ToggledByHasPrefix applies the HasPrefix predicate on the "toggled_by" field.
func ToggledByHasPrefix(v string) predicate.ToggleHistory {
	return predicate.ToggleHistory(sql.FieldHasPrefix(FieldToggledBy, v))
}

// ToggledByHasSuffix applies the HasSuffix predicate on the "toggled_by" field.
func ToggledByHasSuffix(v string) predicate.ToggleHistory {
	return predicate.ToggleHistory(sql.FieldHasSuffix(FieldToggledBy, v))
}

// ToggledByIsNil applies the IsNil predicate on the "toggled_by" field.
func ToggledByIsNil() predicate.ToggleHistory {
	return predicate.ToggleHistory(sql.FieldIsNull(FieldToggledBy))
}

// ToggledByNotNil applies the NotNil predicate on the "toggled_by" field.
func ToggledByNotNil() predicate.ToggleHistory {
	return predicate.ToggleHistory(sql.FieldNotNull(FieldToggledBy))
}

// ToggledByEqualFold applies the EqualFold predicate on the "toggled_by" field.
func ToggledByEqualFold(v string) predicate.ToggleHistory {
	return predicate.ToggleHistory(sql.FieldEqualFold(FieldToggledBy, v))
}

// ToggledByContainsFold applies the ContainsFold predicate on the "toggled_by" field.
func ToggledByContainsFold(v string) predicate.ToggleHistory {
	return predicate.ToggleHistory(sql.FieldContainsFold(FieldToggledBy, v))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.ToggleHistory {
	return predicate.ToggleHistory(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.ToggleHistory {
	return predicate.ToggleHistory(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.ToggleHistory {
	return predicate.ToggleHistory(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.ToggleHistory {
	return predicate.ToggleHistory(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.ToggleHistory {
	return predicate.ToggleHistory(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.ToggleHistory {
	return predicate.ToggleHistory(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.ToggleHistory {
	return predicate.ToggleHistory(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.ToggleHistory {
	return predicate.ToggleHistory(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.ToggleHistory {
	return predicate.ToggleHistory(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.ToggleHistory {
	return predicate.ToggleHistory(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.ToggleHistory {
	return predicate.ToggleHistory(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonIsNil applies the IsNil predicate on the "reason" field.
func ReasonIsNil() predicate.ToggleHistory {
	return predicate.ToggleHistory(sql.FieldIsNull(FieldReason))
}

// ReasonNotNil applies the NotNil predicate on the "reason" field.
func ReasonNotNil() predicate.ToggleHistory {
	return predicate.ToggleHistory(sql.FieldNotNull(FieldReason))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.ToggleHistory {
	return predicate.ToggleHistory(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.ToggleHistory {
	return predicate.ToggleHistory(sql.FieldContainsFold(FieldReason, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ToggleHistory {
	return predicate.ToggleHistory(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ToggleHistory {
	return predicate.ToggleHistory(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ToggleHistory {
	return predicate.ToggleHistory(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ToggleHistory {
	return predicate.ToggleHistory(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ToggleHistory {
	return predicate.ToggleHistory(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ToggleHistory {
	return predicate.ToggleHistory(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ToggleHistory {
	return predicate.ToggleHistory(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ToggleHistory {
	return predicate.ToggleHistory(sql.FieldLTE(FieldCreatedAt, v))
}

// HasWarehouse applies the HasEdge predicate on the "warehouse" edge.
func HasWarehouse() predicate.ToggleHistory {
	return predicate.ToggleHistory(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, WarehouseTable, WarehouseColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWarehouseWith applies the HasEdge predicate on the "warehouse" edge with a given conditions (other predicates).
func HasWarehouseWith(preds ...predicate.Warehouse) predicate.ToggleHistory {
	return predicate.ToggleHistory(func(s *sql.Selector) {
		step := newWarehouseStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ToggleHistory) predicate.ToggleHistory {
	return predicate.ToggleHistory(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ToggleHistory) predicate.ToggleHistory {
	return predicate.ToggleHistory(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ToggleHistory) predicate.ToggleHistory {
	return predicate.ToggleHistory(sql.NotPredicates(p))
}
