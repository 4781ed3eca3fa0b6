// Code generated by ent, DO NOT EDIT.

package instantbookscore

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/warehouse-exchange/wex/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.InstantBookScore {
	return predicate.InstantBookScore(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.InstantBookScore {
	return predicate.InstantBookScore(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.InstantBookScore {
	return predicate.InstantBookScore(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.InstantBookScore {
	return predicate.InstantBookScore(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.InstantBookScore {
	return predicate.InstantBookScore(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.InstantBookScore {
	return predicate.InstantBookScore(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.InstantBookScore {
	return predicate.InstantBookScore(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.InstantBookScore {
	return predicate.InstantBookScore(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.InstantBookScore {
	return predicate.InstantBookScore(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.InstantBookScore {
	return predicate.InstantBookScore(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.InstantBookScore {
	return predicate.InstantBookScore(sql.FieldContainsFold(FieldID, id))
}

// MatchID applies equality check predicate on the "match_id" field. It's identical to MatchIDEQ.
func MatchID(v string) predicate.InstantBookScore {
	return predicate.InstantBookScore(sql.FieldEQ(FieldMatchID, v))
}

// TruthCoreCompleteness applies equality check predicate on the "truth_core_completeness" field. It's identical to TruthCoreCompletenessEQ.
func TruthCoreCompleteness(v float64) predicate.InstantBookScore {
	return predicate.InstantBookScore(sql.FieldEQ(FieldTruthCoreCompleteness, v))
}

// ContextualMemoryDepth applies equality check predicate on the "contextual_memory_depth" field. It's identical to ContextualMemoryDepthEQ.
func ContextualMemoryDepth(v float64) predicate.InstantBookScore {
	return predicate.InstantBookScore(sql.FieldEQ(FieldContextualMemoryDepth, v))
}

// SupplierTrustLevel applies equality check predicate on the "supplier_trust_level" field. It's identical to SupplierTrustLevelEQ.
func SupplierTrustLevel(v float64) predicate.InstantBookScore {
	return predicate.InstantBookScore(sql.FieldEQ(FieldSupplierTrustLevel, v))
}

// MatchSpecificity applies equality check predicate on the "match_specificity" field. It's identical to MatchSpecificityEQ.
func MatchSpecificity(v float64) predicate.InstantBookScore {
	return predicate.InstantBookScore(sql.FieldEQ(FieldMatchSpecificity, v))
}

// FeatureAlignment applies equality check predicate on the "feature_alignment" field. It's identical to FeatureAlignmentEQ.
func FeatureAlignment(v float64) predicate.InstantBookScore {
	return predicate.InstantBookScore(sql.FieldEQ(FieldFeatureAlignment, v))
}

// Total applies equality check predicate on the "total" field. It's identical to TotalEQ.
func Total(v float64) predicate.InstantBookScore {
	return predicate.InstantBookScore(sql.FieldEQ(FieldTotal, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.InstantBookScore {
	return predicate.InstantBookScore(sql.FieldEQ(FieldCreatedAt, v))
}

// MatchIDEQ applies the EQ predicate on the "match_id" field.
func MatchIDEQ(v string) predicate.InstantBookScore {
	return predicate.InstantBookScore(sql.FieldEQ(FieldMatchID, v))
}

// MatchIDNEQ applies the NEQ predicate on the "match_id" field.
func MatchIDNEQ(v string) predicate.InstantBookScore {
	return predicate.InstantBookScore(sql.FieldNEQ(FieldMatchID, v))
}

// MatchIDIn applies the In predicate on the "match_id" field.
func MatchIDIn(vs ...string) predicate.InstantBookScore {
	return predicate.InstantBookScore(sql.FieldIn(FieldMatchID, vs...))
}

// MatchIDNotIn applies the NotIn predicate on the "match_id" field.
func MatchIDNotIn(vs ...string) predicate.InstantBookScore {
	return predicate.InstantBookScore(sql.FieldNotIn(FieldMatchID, vs...))
}

// MatchIDGT applies the GT predicate on the "match_id" field.
func MatchIDGT(v string) predicate.InstantBookScore {
	return predicate.InstantBookScore(sql.FieldGT(FieldMatchID, v))
}

// MatchIDGTE applies the GTE predicate on the "match_id" field.
func MatchIDGTE(v string) predicate.InstantBookScore {
	return predicate.InstantBookScore(sql.FieldGTE(FieldMatchID, v))
}

// MatchIDLT applies the LT predicate on the "match_id" field.
func MatchIDLT(v string) predicate.InstantBookScore {
	return predicate.InstantBookScore(sql.FieldLT(FieldMatchID, v))
}

// MatchIDLTE applies the LTE predicate on the "match_id" field.
func MatchIDLTE(v string) predicate.InstantBookScore {
	return predicate.InstantBookScore(sql.FieldLTE(FieldMatchID, v))
}

// MatchIDContains applies the Contains predicate on the "match_id" field.
func MatchIDContains(v string) predicate.InstantBookScore {
	return predicate.InstantBookScore(sql.FieldContains(FieldMatchID, v))
}

// MatchIDHasPrefix applies the HasPrefix predicate on the "match_id" field.
func MatchIDHasPrefix(v string) predicate.InstantBookScore {
	return predicate.InstantBookScore(sql.FieldHasPrefix(FieldMatchID, v))
}

// MatchIDHasSuffix applies the HasSuffix predicate on the "match_id" field.
func MatchIDHasSuffix(v string) predicate.InstantBookScore {
	return predicate.InstantBookScore(sql.FieldHasSuffix(FieldMatchID, v))
}

// MatchIDEqualFold applies the EqualFold predicate on the "match_id" field.
func MatchIDEqualFold(v string) predicate.InstantBookScore {
	return predicate.InstantBookScore(sql.FieldEqualFold(FieldMatchID, v))
}

// MatchIDContainsFold applies the ContainsFold predicate on the "match_id" field.
func MatchIDContainsFold(v string) predicate.InstantBookScore {
	return predicate.InstantBookScore(sql.FieldContainsFold(FieldMatchID, v))
}

// TruthCoreCompletenessEQ applies the EQ predicate on the "truth_core_completeness" field.
func TruthCoreCompletenessEQ(v float64) predicate.InstantBookScore {
	return predicate.InstantBookScore(sql.FieldEQ(FieldTruthCoreCompleteness, v))
}

// TruthCoreCompletenessNEQ applies the NEQ predicate on the "truth_core_completeness" field.
func TruthCoreCompletenessNEQ(v float64) predicate.InstantBookScore {
	return predicate.InstantBookScore(sql.FieldNEQ(FieldTruthCoreCompleteness, v))
}

// TruthCoreCompletenessIn applies the In predicate on the "truth_core_completeness" field.
func TruthCoreCompletenessIn(vs ...float64) predicate.InstantBookScore {
	return predicate.InstantBookScore(sql.FieldIn(FieldTruthCoreCompleteness, vs...))
}

// TruthCoreCompletenessNotIn applies the NotIn predicate on the "truth_core_completeness" field.
func TruthCoreCompletenessNotIn(vs ...float64) predicate.InstantBookScore {
	return predicate.InstantBookScore(sql.FieldNotIn(FieldTruthCoreCompleteness, vs...))
}

// TruthCoreCompletenessGT applies the GT predicate on the "truth_core_completeness" field.
func TruthCoreCompletenessGT(v float64) predicate.InstantBookScore {
	return predicate.InstantBookScore(sql.FieldGT(FieldTruthCoreCompleteness, v))
}

// TruthCoreCompletenessGTE applies the GTE predicate on the "truth_core_completeness" field.
func TruthCoreCompletenessGTE(v float64) predicate.InstantBookScore {
	return predicate.InstantBookScore(sql.FieldGTE(FieldTruthCoreCompleteness, v))
}

// TruthCoreCompletenessLT applies the LT predicate on the "truth_core_completeness" field.
func TruthCoreCompletenessLT(v float64) predicate.InstantBookScore {
	return predicate.InstantBookScore(sql.FieldLT(FieldTruthCoreCompleteness, v))
}

// TruthCoreCompletenessLTE applies the LTE predicate on the "truth_core_completeness" field.
func TruthCoreCompletenessLTE(v float64) predicate.InstantBookScore {
	return predicate.InstantBookScore(sql.FieldLTE(FieldTruthCoreCompleteness, v))
}

// ContextualMemoryDepthEQ applies the EQ predicate on the "contextual_memory_depth" field.
func ContextualMemoryDepthEQ(v float64) predicate.InstantBookScore {
	return predicate.InstantBookScore(sql.FieldEQ(FieldContextualMemoryDepth, v))
}

// ContextualMemoryDepthNEQ applies the NEQ predicate on the "contextual_memory_depth" field.
func ContextualMemoryDepthNEQ(v float64) predicate.InstantBookScore {
	return predicate.InstantBookScore(sql.FieldNEQ(FieldContextualMemoryDepth, v))
}

// ContextualMemoryDepthIn applies the In predicate on the "contextual_memory_depth" field.
func ContextualMemoryDepthIn(vs ...float64) predicate.InstantBookScore {
	return predicate.InstantBookScore(sql.FieldIn(FieldContextualMemoryDepth, vs...))
}

// ContextualMemoryDepthNotIn applies the NotIn predicate on the "contextual_memory_depth" field.
func ContextualMemoryDepthNotIn(vs ...float64) predicate.InstantBookScore {
	return predicate.InstantBookScore(sql.FieldNotIn(FieldContextualMemoryDepth, vs...))
}

// ContextualMemoryDepthGT applies the GT predicate on the "contextual_memory_depth" field.
func ContextualMemoryDepthGT(v float64) predicate.InstantBookScore {
	return predicate.InstantBookScore(sql.FieldGT(FieldContextualMemoryDepth, v))
}

// ContextualMemoryDepthGTE applies the GTE predicate on the "contextual_memory_depth" field.
func ContextualMemoryDepthGTE(v float64) predicate.InstantBookScore {
	return predicate.InstantBookScore(sql.FieldGTE(FieldContextualMemoryDepth, v))
}

// ContextualMemoryDepthLT applies the LT predicate on the "contextual_memory_depth" field.
func ContextualMemoryDepthLT(v float64) predicate.InstantBookScore {
	return predicate.InstantBookScore(sql.FieldLT(FieldContextualMemoryDepth, v))
}

// ContextualMemoryDepthLTE applies the LTE predicate on the "contextual_memory_depth" field.
func ContextualMemoryDepthLTE(v float64) predicate.InstantBookScore {
	return predicate.InstantBookScore(sql.FieldLTE(FieldContextualMemoryDepth, v))
}

// SupplierTrustLevelEQ applies the EQ predicate on the "supplier_trust_level" field.
func SupplierTrustLevelEQ(v float64) predicate.InstantBookScore {
	return predicate.InstantBookScore(sql.FieldEQ(FieldSupplierTrustLevel, v))
}

// SupplierTrustLevelNEQ applies the NEQ predicate on the "supplier_trust_level" field.
func SupplierTrustLevelNEQ(v float64) predicate.InstantBookScore {
	return predicate.InstantBookScore(sql.FieldNEQ(FieldSupplierTrustLevel, v))
}

// SupplierTrustLevelIn applies the In predicate on the "supplier_trust_level" field.
func SupplierTrustLevelIn(vs ...float64) predicate.InstantBookScore {
	return predicate.InstantBookScore(sql.FieldIn(FieldSupplierTrustLevel, vs...))
}

// SupplierTrustLevelNotIn applies the NotIn predicate on the "supplier_trust_level" field.
func SupplierTrustLevelNotIn(vs ...float64) predicate.InstantBookScore {
	return predicate.InstantBookScore(sql.FieldNotIn(FieldSupplierTrustLevel, vs...))
}

// SupplierTrustLevelGT applies the GT predicate on the "supplier_trust_level" field.
func SupplierTrustLevelGT(v float64) predicate.InstantBookScore {
	return predicate.InstantBookScore(sql.FieldGT(FieldSupplierTrustLevel, v))
}

// SupplierTrustLevelGTE applies the GTE predicate on the "supplier_trust_level" field.
func SupplierTrustLevelGTE(v float64) predicate.InstantBookScore {
	return predicate.InstantBookScore(sql.FieldGTE(FieldSupplierTrustLevel, v))
}

// SupplierTrustLevelLT applies the LT predicate on the "supplier_trust_level" field.
func SupplierTrustLevelLT(v float64) predicate.InstantBookScore {
	return predicate.InstantBookScore(sql.FieldLT(FieldSupplierTrustLevel, v))
}

// SupplierTrustLevelLTE applies the LTE predicate on the "supplier_trust_level" field.
func SupplierTrustLevelLTE(v float64) predicate.InstantBookScore {
	return predicate.InstantBookScore(sql.FieldLTE(FieldSupplierTrustLevel, v))
}

// MatchSpecificityEQ applies the EQ predicate on the "match_specificity" field.
func MatchSpecificityEQ(v float64) predicate.InstantBookScore {
	return predicate.InstantBookScore(sql.FieldEQ(FieldMatchSpecificity, v))
}

// MatchSpecificityNEQ applies the NEQ predicate on the "match_specificity" field.
func MatchSpecificityNEQ(v float64) predicate.InstantBookScore {
	return predicate.InstantBookScore(sql.FieldNEQ(FieldMatchSpecificity, v))
}

// MatchSpecificityIn applies the In predicate on the "match_specificity" field.
func MatchSpecificityIn(vs ...float64) predicate.InstantBookScore {
	return predicate.InstantBookScore(sql.FieldIn(FieldMatchSpecificity, vs...))
}

// MatchSpecificityNotIn applies the NotIn predicate on the "match_specificity" field.
func MatchSpecificityNotIn(vs ...float64) predicate.InstantBookScore {
	return predicate.InstantBookScore(sql.FieldNotIn(FieldMatchSpecificity, vs...))
}

// MatchSpecificityGT applies the GT predicate on the "match_specificity" field.
func MatchSpecificityGT(v float64) predicate.InstantBookScore {
	return predicate.InstantBookScore(sql.FieldGT(FieldMatchSpecificity, v))
}

// MatchSpecificityGTE applies the GTE predicate on the "match_specificity" field.
func MatchSpecificityGTE(v float64) predicate.InstantBookScore {
	return predicate.InstantBookScore(sql.FieldGTE(FieldMatchSpecificity, v))
}

// MatchSpecificityLT applies the LT predicate on the "match_specificity" field.
func MatchSpecificityLT(v float64) predicate.InstantBookScore {
	return predicate.InstantBookScore(sql.FieldLT(FieldMatchSpecificity, v))
}

// MatchSpecificityLTE applies the LTE predicate on the "match_specificity" field.
func MatchSpecificityLTE(v float64) predicate.InstantBookScore {
	return predicate.InstantBookScore(sql.FieldLTE(FieldMatchSpecificity, v))
}

// FeatureAlignmentEQ applies the EQ predicate on the "feature_alignment" field.
func FeatureAlignmentEQ(v float64) predicate.InstantBookScore {
	return predicate.InstantBookScore(sql.FieldEQ(FieldFeatureAlignment, v))
}

// FeatureAlignmentNEQ applies the NEQ predicate on the "feature_alignment" field.
func FeatureAlignmentNEQ(v float64) predicate.InstantBookScore {
	return predicate.InstantBookScore(sql.FieldNEQ(FieldFeatureAlignment, v))
}

// FeatureAlignmentIn applies the In predicate on the "feature_alignment" field.
func FeatureAlignmentIn(vs ...float64) predicate.InstantBookScore {
	return predicate.InstantBookScore(sql.FieldIn(FieldFeatureAlignment, vs...))
}

// FeatureAlignmentNotIn applies the NotIn predicate on the "feature_alignment" field.
func FeatureAlignmentNotIn(vs ...float64) predicate.InstantBookScore {
	return predicate.InstantBookScore(sql.FieldNotIn(FieldFeatureAlignment, vs...))
}

// FeatureAlignmentGT applies the GT predicate on the "feature_alignment" field.
func FeatureAlignmentGT(v float64) predicate.InstantBookScore {
	return predicate.InstantBookScore(sql.FieldGT(FieldFeatureAlignment, v))
}

// FeatureAlignmentGTE applies the GTE predicate on the "feature_alignment" field.
func FeatureAlignmentGTE(v float64) predicate.InstantBookScore {
	return predicate.InstantBookScore(sql.FieldGTE(FieldFeatureAlignment, v))
}

// FeatureAlignmentLT applies the LT predicate on the "feature_alignment" field.
func FeatureAlignmentLT(v float64) predicate.InstantBookScore {
	return predicate.InstantBookScore(sql.FieldLT(FieldFeatureAlignment, v))
}

// FeatureAlignmentLTE applies the LTE predicate on the "feature_alignment" field.
func FeatureAlignmentLTE(v float64) predicate.InstantBookScore {
	return predicate.InstantBookScore(sql.FieldLTE(FieldFeatureAlignment, v))
}

// TotalEQ applies the EQ predicate on the "total" field.
func TotalEQ(v float64) predicate.InstantBookScore {
	return predicate.InstantBookScore(sql.FieldEQ(FieldTotal, v))
}

// TotalNEQ applies the NEQ predicate on the "total" field.
func TotalNEQ(v float64) predicate.InstantBookScore {
	return predicate.InstantBookScore(sql.FieldNEQ(FieldTotal, v))
}

// TotalIn applies the In predicate on the "total" field.
func TotalIn(vs ...float64) predicate.InstantBookScore {
	return predicate.InstantBookScore(sql.FieldIn(FieldTotal, vs...))
}

// TotalNotIn applies the NotIn predicate on the "total" field.
func TotalNotIn(vs ...float64) predicate.InstantBookScore {
	return predicate.InstantBookScore(sql.FieldNotIn(FieldTotal, vs...))
}

// TotalGT applies the GT predicate on the "total" field.
func TotalGT(v float64) predicate.InstantBookScore {
	return predicate.InstantBookScore(sql.FieldGT(FieldTotal, v))
}

// TotalGTE applies the GTE predicate on the "total" field.
func TotalGTE(v float64) predicate.InstantBookScore {
	return predicate.InstantBookScore(sql.FieldGTE(FieldTotal, v))
}

// TotalLT applies the LT predicate on the "total" field.
func TotalLT(v float64) predicate.InstantBookScore {
	return predicate.InstantBookScore(sql.FieldLT(FieldTotal, v))
}

// TotalLTE applies the LTE predicate on the "total" field.
func TotalLTE(v float64) predicate.InstantBookScore {
	return predicate.InstantBookScore(sql.FieldLTE(FieldTotal, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.InstantBookScore {
	return predicate.InstantBookScore(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.InstantBookScore {
	return predicate.InstantBookScore(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.InstantBookScore {
	return predicate.InstantBookScore(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.InstantBookScore {
	return predicate.InstantBookScore(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.InstantBookScore {
	return predicate.InstantBookScore(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.InstantBookScore {
	return predicate.InstantBookScore(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.InstantBookScore {
	return predicate.InstantBookScore(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.InstantBookScore {
	return predicate.InstantBookScore(sql.FieldLTE(FieldCreatedAt, v))
}

// HasMatch applies the HasEdge predicate on the "match" edge.
func HasMatch() predicate.InstantBookScore {
	return predicate.InstantBookScore(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, MatchTable, MatchColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMatchWith applies the HasEdge predicate on the "match" edge with a given conditions (other predicates).
func HasMatchWith(preds ...predicate.Match) predicate.InstantBookScore {
	return predicate.InstantBookScore(func(s *sql.Selector) {
		step := newMatchStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.InstantBookScore) predicate.InstantBookScore {
	return predicate.InstantBookScore(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.InstantBookScore) predicate.InstantBookScore {
	return predicate.InstantBookScore(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.InstantBookScore) predicate.InstantBookScore {
	return predicate.InstantBookScore(sql.NotPredicates(p))
}
