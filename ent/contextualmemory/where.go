// Code generated by ent, DO NOT EDIT.

package contextualmemory

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/warehouse-exchange/wex/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ContextualMemory {
	return predicate.ContextualMemory(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ContextualMemory {
	return predicate.ContextualMemory(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ContextualMemory {
	return predicate.ContextualMemory(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ContextualMemory {
	return predicate.ContextualMemory(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ContextualMemory {
	return predicate.ContextualMemory(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ContextualMemory {
	return predicate.ContextualMemory(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ContextualMemory {
	return predicate.ContextualMemory(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ContextualMemory {
	return predicate.ContextualMemory(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ContextualMemory {
	return predicate.ContextualMemory(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ContextualMemory {
	return predicate.ContextualMemory(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ContextualMemory {
	return predicate.ContextualMemory(sql.FieldContainsFold(FieldID, id))
}

// WarehouseID applies equality check predicate on the "warehouse_id" field. It's identical to WarehouseIDEQ.
func WarehouseID(v string) predicate.ContextualMemory {
	return predicate.ContextualMemory(sql.FieldEQ(FieldWarehouseID, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.ContextualMemory {
	return predicate.ContextualMemory(sql.FieldEQ(FieldContent, v))
}

// RecordedBy applies equality check predicate on the "recorded_by" field. It's identical to RecordedByEQ.
func RecordedBy(v string) predicate.ContextualMemory {
	return predicate.ContextualMemory(sql.FieldEQ(FieldRecordedBy, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ContextualMemory {
	return predicate.ContextualMemory(sql.FieldEQ(FieldCreatedAt, v))
}

// WarehouseIDEQ applies the EQ predicate on the "warehouse_id" field.
func WarehouseIDEQ(v string) predicate.ContextualMemory {
	return predicate.ContextualMemory(sql.FieldEQ(FieldWarehouseID, v))
}

// WarehouseIDNEQ applies the NEQ predicate on the "warehouse_id" field.
func WarehouseIDNEQ(v string) predicate.ContextualMemory {
	return predicate.ContextualMemory(sql.FieldNEQ(FieldWarehouseID, v))
}

// WarehouseIDIn applies the In predicate on the "warehouse_id" field.
func WarehouseIDIn(vs ...string) predicate.ContextualMemory {
	return predicate.ContextualMemory(sql.FieldIn(FieldWarehouseID, vs...))
}

// WarehouseIDNotIn applies the NotIn predicate on the "warehouse_id" field.
func WarehouseIDNotIn(vs ...string) predicate.ContextualMemory {
	return predicate.ContextualMemory(sql.FieldNotIn(FieldWarehouseID, vs...))
}

// WarehouseIDGT applies the GT predicate on the "warehouse_id" field.
func WarehouseIDGT(v string) predicate.ContextualMemory {
	return predicate.ContextualMemory(sql.FieldGT(FieldWarehouseID, v))
}

// WarehouseIDGTE applies the GTE predicate on the "warehouse_id" field.
func WarehouseIDGTE(v string) predicate.ContextualMemory {
	return predicate.ContextualMemory(sql.FieldGTE(FieldWarehouseID, v))
}

// WarehouseIDLT applies the LT predicate on the "warehouse_id" field.
func WarehouseIDLT(v string) predicate.ContextualMemory {
	return predicate.ContextualMemory(sql.FieldLT(FieldWarehouseID, v))
}

// WarehouseIDLTE applies the LTE predicate on the "warehouse_id" field.
func WarehouseIDLTE(v string) predicate.ContextualMemory {
	return predicate.ContextualMemory(sql.FieldLTE(FieldWarehouseID, v))
}

// WarehouseIDContains applies the Contains predicate on the "warehouse_id" field.
func WarehouseIDContains(v string) predicate.ContextualMemory {
	return predicate.ContextualMemory(sql.FieldContains(FieldWarehouseID, v))
}

// WarehouseIDHasPrefix applies the HasPrefix predicate on the "warehouse_id" field.
func WarehouseIDHasPrefix(v string) predicate.ContextualMemory {
	return predicate.ContextualMemory(sql.FieldHasPrefix(FieldWarehouseID, v))
}

// WarehouseIDHasSuffix applies the HasSuffix predicate on the "warehouse_id" field.
func WarehouseIDHasSuffix(v string) predicate.ContextualMemory {
	return predicate.ContextualMemory(sql.FieldHasSuffix(FieldWarehouseID, v))
}

// WarehouseIDEqualFold applies the EqualFold predicate on the "warehouse_id" field.
func WarehouseIDEqualFold(v string) predicate.ContextualMemory {
	return predicate.ContextualMemory(sql.FieldEqualFold(FieldWarehouseID, v))
}

// WarehouseIDContainsFold applies the ContainsFold predicate on the "warehouse_id" field.
func WarehouseIDContainsFold(v string) predicate.ContextualMemory {
	return predicate.ContextualMemory(sql.FieldContainsFold(FieldWarehouseID, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v Category) predicate.ContextualMemory {
	return predicate.ContextualMemory(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v Category) predicate.ContextualMemory {
	return predicate.ContextualMemory(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...Category) predicate.ContextualMemory {
	return predicate.ContextualMemory(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...Category) predicate.ContextualMemory {
	return predicate.ContextualMemory(sql.FieldNotIn(FieldCategory, vs...))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.ContextualMemory {
	return predicate.ContextualMemory(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.ContextualMemory {
	return predicate.ContextualMemory(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.ContextualMemory {
	return predicate.ContextualMemory(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.ContextualMemory {
	return predicate.ContextualMemory(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.ContextualMemory {
	return predicate.ContextualMemory(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.ContextualMemory {
	return predicate.ContextualMemory(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.ContextualMemory {
	return predicate.ContextualMemory(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.ContextualMemory {
	return predicate.ContextualMemory(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.ContextualMemory {
	return predicate.ContextualMemory(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.ContextualMemory {
	return predicate.ContextualMemory(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.ContextualMemory {
	return predicate.ContextualMemory(sql.FieldHasSuffix(FieldContent, v))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.ContextualMemory {
	return predicate.ContextualMemory(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.ContextualMemory {
	return predicate.ContextualMemory(sql.FieldContainsFold(FieldContent, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v Source) predicate.ContextualMemory {
	return predicate.ContextualMemory(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v Source) predicate.ContextualMemory {
	return predicate.ContextualMemory(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...Source) predicate.ContextualMemory {
	return predicate.ContextualMemory(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...Source) predicate.ContextualMemory {
	return predicate.ContextualMemory(sql.FieldNotIn(FieldSource, vs...))
}

// RecordedByEQ applies the EQ predicate on the "recorded_by" field.
func RecordedByEQ(v string) predicate.ContextualMemory {
	return predicate.ContextualMemory(sql.FieldEQ(FieldRecordedBy, v))
}

// RecordedByNEQ applies the NEQ predicate on the "recorded_by" field.
func RecordedByNEQ(v string) predicate.ContextualMemory {
	return predicate.ContextualMemory(sql.FieldNEQ(FieldRecordedBy, v))
}

// RecordedByIn applies the In predicate on the "recorded_by" field.
func RecordedByIn(vs ...string) predicate.ContextualMemory {
	return predicate.ContextualMemory(sql.FieldIn(FieldRecordedBy, vs...))
}

// RecordedByNotIn applies the NotIn predicate on the "recorded_by" field.
func RecordedByNotIn(vs ...string) predicate.ContextualMemory {
	return predicate.ContextualMemory(sql.FieldNotIn(FieldRecordedBy, vs...))
}

// RecordedByGT applies the GT predicate on the "recorded_by" field.
func RecordedByGT(v string) predicate.ContextualMemory {
	return predicate.ContextualMemory(sql.FieldGT(FieldRecordedBy, v))
}

// RecordedByGTE applies the GTE predicate on the "recorded_by" field.
func RecordedByGTE(v string) predicate.ContextualMemory {
	return predicate.ContextualMemory(sql.FieldGTE(FieldRecordedBy, v))
}

// RecordedByLT applies the LT predicate on the "recorded_by" field.
func RecordedByLT(v string) predicate.ContextualMemory {
	return predicate.ContextualMemory(sql.FieldLT(FieldRecordedBy, v))
}

// RecordedByLTE applies the LTE predicate on the "recorded_by" field.
func RecordedByLTE(v string) predicate.ContextualMemory {
	return predicate.ContextualMemory(sql.FieldLTE(FieldRecordedBy, v))
}

// RecordedByContains applies the Contains predicate on the "recorded_by" field.
func RecordedByContains(v string) predicate.ContextualMemory {
	return predicate.ContextualMemory(sql.FieldContains(FieldRecordedBy, v))
}

// RecordedByHasPrefix applies the HasPrefix predicate on the "recorded_by" field.
func RecordedByHasPrefix(v string) predicate.ContextualMemory {
	return predicate.ContextualMemory(sql.FieldHasPrefix(FieldRecordedBy, v))
}

// RecordedByHasSuffix applies the HasSuffix predicate on the "recorded_by" field.
func RecordedByHasSuffix(v string) predicate.ContextualMemory {
	return predicate.ContextualMemory(sql.FieldHasSuffix(FieldRecordedBy, v))
}

// RecordedByIsNil applies the IsNil predicate on the "recorded_by" field.
func RecordedByIsNil() predicate.ContextualMemory {
	return predicate.ContextualMemory(sql.FieldIsNull(FieldRecordedBy))
}

// RecordedByNotNil applies the NotNil predicate on the "recorded_by" field.
func RecordedByNotNil() predicate.ContextualMemory {
	return predicate.ContextualMemory(sql.FieldNotNull(FieldRecordedBy))
}

// RecordedByEqualFold applies the EqualFold predicate on the "recorded_by" field.
func RecordedByEqualFold(v string) predicate.ContextualMemory {
	return predicate.ContextualMemory(sql.FieldEqualFold(FieldRecordedBy, v))
}

// RecordedByContainsFold applies the ContainsFold predicate on the "recorded_by" field.
func RecordedByContainsFold(v string) predicate.ContextualMemory {
	return predicate.ContextualMemory(sql.FieldContainsFold(FieldRecordedBy, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ContextualMemory {
	return predicate.ContextualMemory(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ContextualMemory {
	return predicate.ContextualMemory(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ContextualMemory {
	return predicate.ContextualMemory(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ContextualMemory {
	return predicate.ContextualMemory(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ContextualMemory {
	return predicate.ContextualMemory(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ContextualMemory {
	return predicate.ContextualMemory(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ContextualMemory {
	return predicate.ContextualMemory(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ContextualMemory {
	return predicate.ContextualMemory(sql.FieldLTE(FieldCreatedAt, v))
}

// HasWarehouse applies the HasEdge predicate on the "warehouse" edge.
func HasWarehouse() predicate.ContextualMemory {
	return predicate.ContextualMemory(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, WarehouseTable, WarehouseColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWarehouseWith applies the HasEdge predicate on the "warehouse" edge with a given conditions (other predicates).
func HasWarehouseWith(preds ...predicate.Warehouse) predicate.ContextualMemory {
	return predicate.ContextualMemory(func(s *sql.Selector) {
		step := newWarehouseStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ContextualMemory) predicate.ContextualMemory {
	return predicate.ContextualMemory(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ContextualMemory) predicate.ContextualMemory {
	return predicate.ContextualMemory(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ContextualMemory) predicate.ContextualMemory {
	return predicate.ContextualMemory(sql.NotPredicates(p))
}
