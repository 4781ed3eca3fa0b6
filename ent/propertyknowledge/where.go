// Code generated by ent, DO NOT EDIT.

package propertyknowledge

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/warehouse-exchange/wex/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PropertyKnowledge {
	return predicate.PropertyKnowledge(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PropertyKnowledge {
	return predicate.PropertyKnowledge(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PropertyKnowledge {
	return predicate.PropertyKnowledge(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PropertyKnowledge {
	return predicate.PropertyKnowledge(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PropertyKnowledge {
	return predicate.PropertyKnowledge(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PropertyKnowledge {
	return predicate.PropertyKnowledge(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PropertyKnowledge {
	return predicate.PropertyKnowledge(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PropertyKnowledge {
	return predicate.PropertyKnowledge(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PropertyKnowledge {
	return predicate.PropertyKnowledge(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PropertyKnowledge {
	return predicate.PropertyKnowledge(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PropertyKnowledge {
	return predicate.PropertyKnowledge(sql.FieldContainsFold(FieldID, id))
}

// WarehouseID applies equality check predicate on the "warehouse_id" field. It's identical to WarehouseIDEQ.
func WarehouseID(v string) predicate.PropertyKnowledge {
	return predicate.PropertyKnowledge(sql.FieldEQ(FieldWarehouseID, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.PropertyKnowledge {
	return predicate.PropertyKnowledge(sql.FieldEQ(FieldTopic, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.PropertyKnowledge {
	return predicate.PropertyKnowledge(sql.FieldEQ(FieldContent, v))
}

// SourceQuestionID applies equality check predicate on the "source_question_id" field. It's identical to SourceQuestionIDEQ.
func SourceQuestionID(v string) predicate.PropertyKnowledge {
	return predicate.PropertyKnowledge(sql.FieldEQ(FieldSourceQuestionID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PropertyKnowledge {
	return predicate.PropertyKnowledge(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.PropertyKnowledge {
	return predicate.PropertyKnowledge(sql.FieldEQ(FieldUpdatedAt, v))
}

// WarehouseIDEQ applies the EQ predicate on the "warehouse_id" field.
func WarehouseIDEQ(v string) predicate.PropertyKnowledge {
	return predicate.PropertyKnowledge(sql.FieldEQ(FieldWarehouseID, v))
}

// WarehouseIDNEQ applies the NEQ predicate on the "warehouse_id" field.
func WarehouseIDNEQ(v string) predicate.PropertyKnowledge {
	return predicate.PropertyKnowledge(sql.FieldNEQ(FieldWarehouseID, v))
}

// WarehouseIDIn applies the In predicate on the "warehouse_id" field.
func WarehouseIDIn(vs ...string) predicate.PropertyKnowledge {
	return predicate.PropertyKnowledge(sql.FieldIn(FieldWarehouseID, vs...))
}

// WarehouseIDNotIn applies the NotIn predicate on the "warehouse_id" field.
func WarehouseIDNotIn(vs ...string) predicate.PropertyKnowledge {
	return predicate.PropertyKnowledge(sql.FieldNotIn(FieldWarehouseID, vs...))
}

// WarehouseIDGT applies the GT predicate on the "warehouse_id" field.
func WarehouseIDGT(v string) predicate.PropertyKnowledge {
	return predicate.PropertyKnowledge(sql.FieldGT(FieldWarehouseID, v))
}

// WarehouseIDGTE applies the GTE predicate on the "warehouse_id" field.
func WarehouseIDGTE(v string) predicate.PropertyKnowledge {
	return predicate.PropertyKnowledge(sql.FieldGTE(FieldWarehouseID, v))
}

// WarehouseIDLT applies the LT predicate on the "warehouse_id" field.
func WarehouseIDLT(v string) predicate.PropertyKnowledge {
	return predicate.PropertyKnowledge(sql.FieldLT(FieldWarehouseID, v))
}

// WarehouseIDLTE applies the LTE predicate on the "warehouse_id" field.
func WarehouseIDLTE(v string) predicate.PropertyKnowledge {
	return predicate.PropertyKnowledge(sql.FieldLTE(FieldWarehouseID, v))
}

// WarehouseIDContains applies the Contains predicate on the "warehouse_id" field.
func WarehouseIDContains(v string) predicate.PropertyKnowledge {
	return predicate.PropertyKnowledge(sql.FieldContains(FieldWarehouseID, v))
}

// WarehouseIDHasPrefix applies the HasPrefix predicate on the "warehouse_id" field.
func WarehouseIDHasPrefix(v string) predicate.PropertyKnowledge {
	return predicate.PropertyKnowledge(sql.FieldHasPrefix(FieldWarehouseID, v))
}

// WarehouseIDHasSuffix applies the HasSuffix predicate on the "warehouse_id" field.
func WarehouseIDHasSuffix(v string) predicate.PropertyKnowledge {
	return predicate.PropertyKnowledge(sql.FieldHasSuffix(FieldWarehouseID, v))
}

// WarehouseIDEqualFold applies the EqualFold predicate on the "warehouse_id" field.
func WarehouseIDEqualFold(v string) predicate.PropertyKnowledge {
	return predicate.PropertyKnowledge(sql.FieldEqualFold(FieldWarehouseID, v))
}

// WarehouseIDContainsFold applies the ContainsFold predicate on the "warehouse_id" field.
func WarehouseIDContainsFold(v string) predicate.PropertyKnowledge {
	return predicate.PropertyKnowledge(sql.FieldContainsFold(FieldWarehouseID, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.PropertyKnowledge {
	return predicate.PropertyKnowledge(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.PropertyKnowledge {
	return predicate.PropertyKnowledge(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.PropertyKnowledge {
	return predicate.PropertyKnowledge(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.PropertyKnowledge {
	return predicate.PropertyKnowledge(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.PropertyKnowledge {
	return predicate.PropertyKnowledge(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.PropertyKnowledge {
	return predicate.PropertyKnowledge(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.PropertyKnowledge {
	return predicate.PropertyKnowledge(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.PropertyKnowledge {
	return predicate.PropertyKnowledge(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.PropertyKnowledge {
	return predicate.PropertyKnowledge(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.PropertyKnowledge {
	return predicate.PropertyKnowledge(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.PropertyKnowledge {
	return predicate.PropertyKnowledge(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.PropertyKnowledge {
	return predicate.PropertyKnowledge(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.PropertyKnowledge {
	return predicate.PropertyKnowledge(sql.FieldContainsFold(FieldTopic, v))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.PropertyKnowledge {
	return predicate.PropertyKnowledge(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.PropertyKnowledge {
	return predicate.PropertyKnowledge(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.PropertyKnowledge {
	return predicate.PropertyKnowledge(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.PropertyKnowledge {
	return predicate.PropertyKnowledge(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.PropertyKnowledge {
	return predicate.PropertyKnowledge(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.PropertyKnowledge {
	return predicate.PropertyKnowledge(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.PropertyKnowledge {
	return predicate.PropertyKnowledge(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.PropertyKnowledge {
	return predicate.PropertyKnowledge(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.PropertyKnowledge {
	return predicate.PropertyKnowledge(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.PropertyKnowledge {
	return predicate.PropertyKnowledge(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.PropertyKnowledge {
	return predicate.PropertyKnowledge(sql.FieldHasSuffix(FieldContent, v))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.PropertyKnowledge {
	return predicate.PropertyKnowledge(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.PropertyKnowledge {
	return predicate.PropertyKnowledge(sql.FieldContainsFold(FieldContent, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v Source) predicate.PropertyKnowledge {
	return predicate.PropertyKnowledge(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v Source) predicate.PropertyKnowledge {
	return predicate.PropertyKnowledge(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...Source) predicate.PropertyKnowledge {
	return predicate.PropertyKnowledge(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...Source) predicate.PropertyKnowledge {
	return predicate.PropertyKnowledge(sql.FieldNotIn(FieldSource, vs...))
}

// SourceQuestionIDEQ applies the EQ predicate on the "source_question_id" field.
func SourceQuestionIDEQ(v string) predicate.PropertyKnowledge {
	return predicate.PropertyKnowledge(sql.FieldEQ(FieldSourceQuestionID, v))
}

// SourceQuestionIDNEQ applies the NEQ predicate on the "source_question_id" field.
func SourceQuestionIDNEQ(v string) predicate.PropertyKnowledge {
	return predicate.PropertyKnowledge(sql.FieldNEQ(FieldSourceQuestionID, v))
}

// SourceQuestionIDIn applies the In predicate on the "source_question_id" field.
func SourceQuestionIDIn(vs ...string) predicate.PropertyKnowledge {
	return predicate.PropertyKnowledge(sql.FieldIn(FieldSourceQuestionID, vs...))
}

// SourceQuestionIDNotIn applies the NotIn predicate on the "source_question_id" field.
func SourceQuestionIDNotIn(vs ...string) predicate.PropertyKnowledge {
	return predicate.PropertyKnowledge(sql.FieldNotIn(FieldSourceQuestionID, vs...))
}

// SourceQuestionIDGT applies the GT predicate on the "source_question_id" field.
func SourceQuestionIDGT(v string) predicate.PropertyKnowledge {
	return predicate.PropertyKnowledge(sql.FieldGT(FieldSourceQuestionID, v))
}

// SourceQuestionIDGTE applies the GTE predicate on the "source_question_id" field.
func SourceQuestionIDGTE(v string) predicate.PropertyKnowledge {
	return predicate.PropertyKnowledge(sql.FieldGTE(FieldSourceQuestionID, v))
}

// SourceQuestionIDLT applies the LT predicate on the "source_question_id" field.
func SourceQuestionIDLT(v string) predicate.PropertyKnowledge {
	return predicate.PropertyKnowledge(sql.FieldLT(FieldSourceQuestionID, v))
}

// SourceQuestionIDLTE applies the LTE predicate on the "source_question_id" field.
func SourceQuestionIDLTE(v string) predicate.PropertyKnowledge {
	return predicate.PropertyKnowledge(sql.FieldLTE(FieldSourceQuestionID, v))
}

// SourceQuestionIDContains applies the Contains predicate on the "source_question_id" field.
func SourceQuestionIDContains(v string) predicate.PropertyKnowledge {
	return predicate.PropertyKnowledge(sql.FieldContains(FieldSourceQuestionID, v))
}

// SourceQuestionIDHasPrefix applies the HasPrefix predicate on the "source_question_id" field.
func SourceQuestionIDHasPrefix(v string) predicate.PropertyKnowledge {
	return predicate.PropertyKnowledge(sql.FieldHasPrefix(FieldSourceQuestionID, v))
}

// SourceQuestionIDHasSuffix applies the HasSuffix predicate on the "source_question_id" field.
func SourceQuestionIDHasSuffix(v string) predicate.PropertyKnowledge {
	return predicate.PropertyKnowledge(sql.FieldHasSuffix(FieldSourceQuestionID, v))
}

// SourceQuestionIDIsNil applies the IsNil predicate on the "source_question_id" field.
func SourceQuestionIDIsNil() predicate.PropertyKnowledge {
	return predicate.PropertyKnowledge(sql.FieldIsNull(FieldSourceQuestionID))
}

// SourceQuestionIDNotNil applies the NotNil predicate on the "source_question_id" field.
func SourceQuestionIDNotNil() predicate.PropertyKnowledge {
	return predicate.PropertyKnowledge(sql.FieldNotNull(FieldSourceQuestionID))
}

// SourceQuestionIDEqualFold applies the EqualFold predicate on the "source_question_id" field.
func SourceQuestionIDEqualFold(v string) predicate.PropertyKnowledge {
	return predicate.PropertyKnowledge(sql.FieldEqualFold(FieldSourceQuestionID, v))
}

// SourceQuestionIDContainsFold applies the ContainsFold predicate on the "source_question_id" field.
func SourceQuestionIDContainsFold(v string) predicate.PropertyKnowledge {
	return predicate.PropertyKnowledge(sql.FieldContainsFold(FieldSourceQuestionID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PropertyKnowledge {
	return predicate.PropertyKnowledge(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PropertyKnowledge {
	return predicate.PropertyKnowledge(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PropertyKnowledge {
	return predicate.PropertyKnowledge(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PropertyKnowledge {
	return predicate.PropertyKnowledge(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PropertyKnowledge {
	return predicate.PropertyKnowledge(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PropertyKnowledge {
	return predicate.PropertyKnowledge(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PropertyKnowledge {
	return predicate.PropertyKnowledge(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PropertyKnowledge {
	return predicate.PropertyKnowledge(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.PropertyKnowledge {
	return predicate.PropertyKnowledge(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.PropertyKnowledge {
	return predicate.PropertyKnowledge(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.PropertyKnowledge {
	return predicate.PropertyKnowledge(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.PropertyKnowledge {
	return predicate.PropertyKnowledge(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.PropertyKnowledge {
	return predicate.PropertyKnowledge(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.PropertyKnowledge {
	return predicate.PropertyKnowledge(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.PropertyKnowledge {
	return predicate.PropertyKnowledge(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.PropertyKnowledge {
	return predicate.PropertyKnowledge(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasWarehouse applies the HasEdge predicate on the "warehouse" edge.
func HasWarehouse() predicate.PropertyKnowledge {
	return predicate.PropertyKnowledge(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, WarehouseTable, WarehouseColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWarehouseWith applies the HasEdge predicate on the "warehouse" edge with a given conditions (other predicates).
func HasWarehouseWith(preds ...predicate.Warehouse) predicate.PropertyKnowledge {
	return predicate.PropertyKnowledge(func(s *sql.Selector) {
		step := newWarehouseStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PropertyKnowledge) predicate.PropertyKnowledge {
	return predicate.PropertyKnowledge(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PropertyKnowledge) predicate.PropertyKnowledge {
	return predicate.PropertyKnowledge(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PropertyKnowledge) predicate.PropertyKnowledge {
	return predicate.PropertyKnowledge(sql.NotPredicates(p))
}
