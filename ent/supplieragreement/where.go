// Code generated by ent, DO NOT EDIT.

package supplieragreement

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/warehouse-exchange/wex/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.SupplierAgreement {
	return predicate.SupplierAgreement(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.SupplierAgreement {
	return predicate.SupplierAgreement(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.SupplierAgreement {
	return predicate.SupplierAgreement(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.SupplierAgreement {
	return predicate.SupplierAgreement(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.SupplierAgreement {
	return predicate.SupplierAgreement(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.SupplierAgreement {
	return predicate.SupplierAgreement(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.SupplierAgreement {
	return predicate.SupplierAgreement(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.SupplierAgreement {
	return predicate.SupplierAgreement(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.SupplierAgreement {
	return predicate.SupplierAgreement(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.SupplierAgreement {
	return predicate.SupplierAgreement(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.SupplierAgreement {
	return predicate.SupplierAgreement(sql.FieldContainsFold(FieldID, id))
}

// WarehouseID applies equality check predicate on the "warehouse_id" field. It's identical to WarehouseIDEQ.
func WarehouseID(v string) predicate.SupplierAgreement {
	return predicate.SupplierAgreement(sql.FieldEQ(FieldWarehouseID, v))
}

// ExternalRef applies equality check predicate on the "external_ref" field. It's identical to ExternalRefEQ.
func ExternalRef(v string) predicate.SupplierAgreement {
	return predicate.SupplierAgreement(sql.FieldEQ(FieldExternalRef, v))
}

// SignedAt applies equality check predicate on the "signed_at" field. It's identical to SignedAtEQ.
func SignedAt(v time.Time) predicate.SupplierAgreement {
	return predicate.SupplierAgreement(sql.FieldEQ(FieldSignedAt, v))
}

// TerminatedAt applies equality check predicate on the "terminated_at" field. It's identical to TerminatedAtEQ.
func TerminatedAt(v time.Time) predicate.SupplierAgreement {
	return predicate.SupplierAgreement(sql.FieldEQ(FieldTerminatedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SupplierAgreement {
	return predicate.SupplierAgreement(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.SupplierAgreement {
	return predicate.SupplierAgreement(sql.FieldEQ(FieldUpdatedAt, v))
}

// WarehouseIDEQ applies the EQ predicate on the "warehouse_id" field.
func WarehouseIDEQ(v string) predicate.SupplierAgreement {
	return predicate.SupplierAgreement(sql.FieldEQ(FieldWarehouseID, v))
}

// WarehouseIDNEQ applies the NEQ predicate on the "warehouse_id" field.
func WarehouseIDNEQ(v string) predicate.SupplierAgreement {
	return predicate.SupplierAgreement(sql.FieldNEQ(FieldWarehouseID, v))
}

// WarehouseIDIn applies the In predicate on the "warehouse_id" field.
func WarehouseIDIn(vs ...string) predicate.SupplierAgreement {
	return predicate.SupplierAgreement(sql.FieldIn(FieldWarehouseID, vs...))
}

// WarehouseIDNotIn applies the NotIn predicate on the "warehouse_id" field.
func WarehouseIDNotIn(vs ...string) predicate.SupplierAgreement {
	return predicate.SupplierAgreement(sql.FieldNotIn(FieldWarehouseID, vs...))
}

// WarehouseIDGT applies the GT predicate on the "warehouse_id" field.
func WarehouseIDGT(v string) predicate.SupplierAgreement {
	return predicate.SupplierAgreement(sql.FieldGT(FieldWarehouseID, v))
}

// WarehouseIDGTE applies the GTE predicate on the "warehouse_id" field.
func WarehouseIDGTE(v string) predicate.SupplierAgreement {
	return predicate.SupplierAgreement(sql.FieldGTE(FieldWarehouseID, v))
}

// WarehouseIDLT applies the LT predicate on the "warehouse_id" field.
func WarehouseIDLT(v string) predicate.SupplierAgreement {
	return predicate.SupplierAgreement(sql.FieldLT(FieldWarehouseID, v))
}

// WarehouseIDLTE applies the LTE predicate on the "warehouse_id" field.
func WarehouseIDLTE(v string) predicate.SupplierAgreement {
	return predicate.SupplierAgreement(sql.FieldLTE(FieldWarehouseID, v))
}

// WarehouseIDContains applies the Contains predicate on the "warehouse_id" field.
func WarehouseIDContains(v string) predicate.SupplierAgreement {
	return predicate.SupplierAgreement(sql.FieldContains(FieldWarehouseID, v))
}

// WarehouseIDHasPrefix applies the HasPrefix predicate on the "warehouse_id" field.
func WarehouseIDHasPrefix(v string) predicate.SupplierAgreement {
	return predicate.SupplierAgreement(sql.FieldHasPrefix(FieldWarehouseID, v))
}

// WarehouseIDHasSuffix applies the HasSuffix predicate on the "warehouse_id" field.
func WarehouseIDHasSuffix(v string) predicate.SupplierAgreement {
	return predicate.SupplierAgreement(sql.FieldHasSuffix(FieldWarehouseID, v))
}

// WarehouseIDEqualFold applies the EqualFold predicate on the "warehouse_id" field.
func WarehouseIDEqualFold(v string) predicate.SupplierAgreement {
	return predicate.SupplierAgreement(sql.FieldEqualFold(FieldWarehouseID, v))
}

// WarehouseIDContainsFold applies the ContainsFold predicate on the "warehouse_id" field.
func WarehouseIDContainsFold(v string) predicate.SupplierAgreement {
	return predicate.SupplierAgreement(sql.FieldContainsFold(FieldWarehouseID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.SupplierAgreement {
	return predicate.SupplierAgreement(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.SupplierAgreement {
	return predicate.SupplierAgreement(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.SupplierAgreement {
	return predicate.SupplierAgreement(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.SupplierAgreement {
	return predicate.SupplierAgreement(sql.FieldNotIn(FieldStatus, vs...))
}

// OriginEQ applies the EQ predicate on the "origin" field.
func OriginEQ(v Origin) predicate.SupplierAgreement {
	return predicate.SupplierAgreement(sql.FieldEQ(FieldOrigin, v))
}

// OriginNEQ applies the NEQ predicate on the "origin" field.
func OriginNEQ(v Origin) predicate.SupplierAgreement {
	return predicate.SupplierAgreement(sql.FieldNEQ(FieldOrigin, v))
}

// OriginIn applies the In predicate on the "origin" field.
func OriginIn(vs ...Origin) predicate.SupplierAgreement {
	return predicate.SupplierAgreement(sql.FieldIn(FieldOrigin, vs...))
}

// OriginNotIn applies the NotIn predicate on the "origin" field.
func OriginNotIn(vs ...Origin) predicate.SupplierAgreement {
	return predicate.SupplierAgreement(sql.FieldNotIn(FieldOrigin, vs...))
}

// ExternalRefEQ applies the EQ predicate on the "external_ref" field.
func ExternalRefEQ(v string) predicate.SupplierAgreement {
	return predicate.SupplierAgreement(sql.FieldEQ(FieldExternalRef, v))
}

// ExternalRefNEQ applies the NEQ predicate on the "external_ref" field.
func ExternalRefNEQ(v string) predicate.SupplierAgreement {
	return predicate.SupplierAgreement(sql.FieldNEQ(FieldExternalRef, v))
}

// ExternalRefIn applies the In predicate on the "external_ref" field.
func ExternalRefIn(vs ...string) predicate.SupplierAgreement {
	return predicate.SupplierAgreement(sql.FieldIn(FieldExternalRef, vs...))
}

// ExternalRefNotIn applies the NotIn predicate on the "external_ref" field.
func ExternalRefNotIn(vs ...string) predicate.SupplierAgreement {
	return predicate.SupplierAgreement(sql.FieldNotIn(FieldExternalRef, vs...))
}

// ExternalRefGT applies the GT predicate on the "external_ref" field.
func ExternalRefGT(v string) predicate.SupplierAgreement {
	return predicate.SupplierAgreement(sql.FieldGT(FieldExternalRef, v))
}

// ExternalRefGTE applies the GTE predicate on the "external_ref" field.
func ExternalRefGTE(v string) predicate.SupplierAgreement {
	return predicate.SupplierAgreement(sql.FieldGTE(FieldExternalRef, v))
}

// ExternalRefLT applies the LT predicate on the "external_ref" field.
func ExternalRefLT(v string) predicate.SupplierAgreement {
	return predicate.SupplierAgreement(sql.FieldLT(FieldExternalRef, v))
}

// ExternalRefLTE applies the LTE predicate on the "external_ref" field.
func ExternalRefLTE(v string) predicate.SupplierAgreement {
	return predicate.SupplierAgreement(sql.FieldLTE(FieldExternalRef, v))
}

// ExternalRefContains applies the Contains predicate on the "external_ref" field.
func ExternalRefContains(v string) predicate.SupplierAgreement {
	return predicate.SupplierAgreement(sql.FieldContains(FieldExternalRef, v))
}

// ExternalRefHasPrefix applies the HasPrefix predicate on the "external_ref" field.
func ExternalRefHasPrefix(v string) predicate.SupplierAgreement {
	return predicate.SupplierAgreement(sql.FieldHasPrefix(FieldExternalRef, v))
}

// ExternalRefHasSuffix applies the HasSuffix predicate on the "external_ref" field.
func ExternalRefHasSuffix(v string) predicate.SupplierAgreement {
	return predicate.SupplierAgreement(sql.FieldHasSuffix(FieldExternalRef, v))
}

// ExternalRefIsNil applies the IsNil predicate on the "external_ref" field.
func ExternalRefIsNil() predicate.SupplierAgreement {
	return predicate.SupplierAgreement(sql.FieldIsNull(FieldExternalRef))
}

// ExternalRefNotNil applies the NotNil predicate on the "external_ref" field.
func ExternalRefNotNil() predicate.SupplierAgreement {
	return predicate.SupplierAgreement(sql.FieldNotNull(FieldExternalRef))
}

// ExternalRefEqualFold applies the EqualFold predicate on the "external_ref" field.
func ExternalRefEqualFold(v string) predicate.SupplierAgreement {
	return predicate.SupplierAgreement(sql.FieldEqualFold(FieldExternalRef, v))
}

// ExternalRefContainsFold applies the ContainsFold predicate on the "external_ref" field.
func ExternalRefContainsFold(v string) predicate.SupplierAgreement {
	return predicate.SupplierAgreement(sql.FieldContainsFold(FieldExternalRef, v))
}

// SignedAtEQ applies the EQ predicate on the "signed_at" field.
func SignedAtEQ(v time.Time) predicate.SupplierAgreement {
	return predicate.SupplierAgreement(sql.FieldEQ(FieldSignedAt, v))
}

// SignedAtNEQ applies the NEQ predicate on the "signed_at" field.
func SignedAtNEQ(v time.Time) predicate.SupplierAgreement {
	return predicate.SupplierAgreement(sql.FieldNEQ(FieldSignedAt, v))
}

// SignedAtIn applies the In predicate on the "signed_at" field.
func SignedAtIn(vs ...time.Time) predicate.SupplierAgreement {
	return predicate.SupplierAgreement(sql.FieldIn(FieldSignedAt, vs...))
}

// SignedAtNotIn applies the NotIn predicate on the "signed_at" field.
func SignedAtNotIn(vs ...time.Time) predicate.SupplierAgreement {
	return predicate.SupplierAgreement(sql.FieldNotIn(FieldSignedAt, vs...))
}

// SignedAtGT applies the GT predicate on the "signed_at" field.
func SignedAtGT(v time.Time) predicate.SupplierAgreement {
	return predicate.SupplierAgreement(sql.FieldGT(FieldSignedAt, v))
}

// SignedAtGTE applies the GTE predicate on the "signed_at" field.
func SignedAtGTE(v time.Time) predicate.SupplierAgreement {
	return predicate.SupplierAgreement(sql.FieldGTE(FieldSignedAt, v))
}

// SignedAtLT applies the LT predicate on the "signed_at" field.
func SignedAtLT(v time.Time) predicate.SupplierAgreement {
	return predicate.SupplierAgreement(sql.FieldLT(FieldSignedAt, v))
}

// SignedAtLTE applies the LTE predicate on the "signed_at" field.
func SignedAtLTE(v time.Time) predicate.SupplierAgreement {
	return predicate.SupplierAgreement(sql.FieldLTE(FieldSignedAt, v))
}

// SignedAtIsNil applies the IsNil predicate on the "signed_at" field.
func SignedAtIsNil() predicate.SupplierAgreement {
	return predicate.SupplierAgreement(sql.FieldIsNull(FieldSignedAt))
}

// SignedAtNotNil applies the NotNil predicate on the "signed_at" field.
func SignedAtNotNil() predicate.SupplierAgreement {
	return predicate.SupplierAgreement(sql.FieldNotNull(FieldSignedAt))
}

// TerminatedAtEQ applies the EQ predicate on the "terminated_at" field.
func TerminatedAtEQ(v time.Time) predicate.SupplierAgreement {
	return predicate.SupplierAgreement(sql.FieldEQ(FieldTerminatedAt, v))
}

// TerminatedAtNEQ applies the NEQ predicate on the "terminated_at" field.
func TerminatedAtNEQ(v time.Time) predicate.SupplierAgreement {
	return predicate.SupplierAgreement(sql.FieldNEQ(FieldTerminatedAt, v))
}

// TerminatedAtIn applies the In predicate on the "terminated_at" field.
func TerminatedAtIn(vs ...time.Time) predicate.SupplierAgreement {
	return predicate.SupplierAgreement(sql.FieldIn(FieldTerminatedAt, vs...))
}

// TerminatedAtNotIn applies the NotIn predicate on the "terminated_at" field.
func TerminatedAtNotIn(vs ...time.Time) predicate.SupplierAgreement {
	return predicate.SupplierAgreement(sql.FieldNotIn(FieldTerminatedAt, vs...))
}

// TerminatedAtGT applies the GT predicate on the "terminated_at" field.
func TerminatedAtGT(v time.Time) predicate.SupplierAgreement {
	return predicate.SupplierAgreement(sql.FieldGT(FieldTerminatedAt, v))
}

// TerminatedAtGTE applies the GTE predicate on the "terminated_at" field.
func TerminatedAtGTE(v time.Time) predicate.SupplierAgreement {
	return predicate.SupplierAgreement(sql.FieldGTE(FieldTerminatedAt, v))
}

// TerminatedAtLT applies the LT predicate on the "terminated_at" field.
func TerminatedAtLT(v time.Time) predicate.SupplierAgreement {
	return predicate.SupplierAgreement(sql.FieldLT(FieldTerminatedAt, v))
}

// TerminatedAtLTE applies the LTE predicate on the "terminated_at" field.
func TerminatedAtLTE(v time.Time) predicate.SupplierAgreement {
	return predicate.SupplierAgreement(sql.FieldLTE(FieldTerminatedAt, v))
}

// TerminatedAtIsNil applies the IsNil predicate on the "terminated_at" field.
func TerminatedAtIsNil() predicate.SupplierAgreement {
	return predicate.SupplierAgreement(sql.FieldIsNull(FieldTerminatedAt))
}

// TerminatedAtNotNil applies the NotNil predicate on the "terminated_at" field.
func TerminatedAtNotNil() predicate.SupplierAgreement {
	return predicate.SupplierAgreement(sql.FieldNotNull(FieldTerminatedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SupplierAgreement {
	return predicate.SupplierAgreement(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SupplierAgreement {
	return predicate.SupplierAgreement(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SupplierAgreement {
	return predicate.SupplierAgreement(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SupplierAgreement {
	return predicate.SupplierAgreement(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SupplierAgreement {
	return predicate.SupplierAgreement(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SupplierAgreement {
	return predicate.SupplierAgreement(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SupplierAgreement {
	return predicate.SupplierAgreement(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SupplierAgreement {
	return predicate.SupplierAgreement(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.SupplierAgreement {
	return predicate.SupplierAgreement(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.SupplierAgreement {
	return predicate.SupplierAgreement(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.SupplierAgreement {
	return predicate.SupplierAgreement(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.SupplierAgreement {
	return predicate.SupplierAgreement(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.SupplierAgreement {
	return predicate.SupplierAgreement(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.SupplierAgreement {
	return predicate.SupplierAgreement(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.SupplierAgreement {
	return predicate.SupplierAgreement(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.SupplierAgreement {
	return predicate.SupplierAgreement(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasWarehouse applies the HasEdge predicate on the "warehouse" edge.
func HasWarehouse() predicate.SupplierAgreement {
	return predicate.SupplierAgreement(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, WarehouseTable, WarehouseColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWarehouseWith applies the HasEdge predicate on the "warehouse" edge with a given conditions (other predicates).
func HasWarehouseWith(preds ...predicate.Warehouse) predicate.SupplierAgreement {
	return predicate.SupplierAgreement(func(s *sql.Selector) {
		step := newWarehouseStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SupplierAgreement) predicate.SupplierAgreement {
	return predicate.SupplierAgreement(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SupplierAgreement) predicate.SupplierAgreement {
	return predicate.SupplierAgreement(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SupplierAgreement) predicate.SupplierAgreement {
	return predicate.SupplierAgreement(sql.NotPredicates(p))
}
