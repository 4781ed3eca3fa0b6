// Code generated by ent, DO NOT EDIT.

package match

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/warehouse-exchange/wex/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Match {
	return predicate.Match(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Match {
	return predicate.Match(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Match {
	return predicate.Match(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Match {
	return predicate.Match(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Match {
	return predicate.Match(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Match {
	return predicate.Match(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Match {
	return predicate.Match(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Match {
	return predicate.Match(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Match {
	return predicate.Match(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Match {
	return predicate.Match(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Match {
	return predicate.Match(sql.FieldContainsFold(FieldID, id))
}

// BuyerNeedID applies equality check predicate on the "buyer_need_id" field. It's identical to BuyerNeedIDEQ.
func BuyerNeedID(v string) predicate.Match {
	return predicate.Match(sql.FieldEQ(FieldBuyerNeedID, v))
}

// WarehouseID applies equality check predicate on the "warehouse_id" field. It's identical to WarehouseIDEQ.
func WarehouseID(v string) predicate.Match {
	return predicate.Match(sql.FieldEQ(FieldWarehouseID, v))
}

// CompositeScore applies equality check predicate on the "composite_score" field. It's identical to CompositeScoreEQ.
func CompositeScore(v float64) predicate.Match {
	return predicate.Match(sql.FieldEQ(FieldCompositeScore, v))
}

// LocationScore applies equality check predicate on the "location_score" field. It's identical to LocationScoreEQ.
func LocationScore(v float64) predicate.Match {
	return predicate.Match(sql.FieldEQ(FieldLocationScore, v))
}

// SizeScore applies equality check predicate on the "size_score" field. It's identical to SizeScoreEQ.
func SizeScore(v float64) predicate.Match {
	return predicate.Match(sql.FieldEQ(FieldSizeScore, v))
}

// UseTypeScore applies equality check predicate on the "use_type_score" field. It's identical to UseTypeScoreEQ.
func UseTypeScore(v float64) predicate.Match {
	return predicate.Match(sql.FieldEQ(FieldUseTypeScore, v))
}

// FeatureScore applies equality check predicate on the "feature_score" field. It's identical to FeatureScoreEQ.
func FeatureScore(v float64) predicate.Match {
	return predicate.Match(sql.FieldEQ(FieldFeatureScore, v))
}

// TimingScore applies equality check predicate on the "timing_score" field. It's identical to TimingScoreEQ.
func TimingScore(v float64) predicate.Match {
	return predicate.Match(sql.FieldEQ(FieldTimingScore, v))
}

// BudgetScore applies equality check predicate on the "budget_score" field. It's identical to BudgetScoreEQ.
func BudgetScore(v float64) predicate.Match {
	return predicate.Match(sql.FieldEQ(FieldBudgetScore, v))
}

// DistanceMiles applies equality check predicate on the "distance_miles" field. It's identical to DistanceMilesEQ.
func DistanceMiles(v float64) predicate.Match {
	return predicate.Match(sql.FieldEQ(FieldDistanceMiles, v))
}

// Reasoning applies equality check predicate on the "reasoning" field. It's identical to ReasoningEQ.
func Reasoning(v string) predicate.Match {
	return predicate.Match(sql.FieldEQ(FieldReasoning, v))
}

// InstantBookEligible applies equality check predicate on the "instant_book_eligible" field. It's identical to InstantBookEligibleEQ.
func InstantBookEligible(v bool) predicate.Match {
	return predicate.Match(sql.FieldEQ(FieldInstantBookEligible, v))
}

// WithinBudget applies equality check predicate on the "within_budget" field. It's identical to WithinBudgetEQ.
func WithinBudget(v bool) predicate.Match {
	return predicate.Match(sql.FieldEQ(FieldWithinBudget, v))
}

// BuyerRate applies equality check predicate on the "buyer_rate" field. It's identical to BuyerRateEQ.
func BuyerRate(v float64) predicate.Match {
	return predicate.Match(sql.FieldEQ(FieldBuyerRate, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Match {
	return predicate.Match(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Match {
	return predicate.Match(sql.FieldEQ(FieldUpdatedAt, v))
}

// BuyerNeedIDEQ applies the EQ predicate on the "buyer_need_id" field.
func BuyerNeedIDEQ(v string) predicate.Match {
	return predicate.Match(sql.FieldEQ(FieldBuyerNeedID, v))
}

// BuyerNeedIDNEQ applies the NEQ predicate on the "buyer_need_id" field.
func BuyerNeedIDNEQ(v string) predicate.Match {
	return predicate.Match(sql.FieldNEQ(FieldBuyerNeedID, v))
}

// BuyerNeedIDIn applies the In predicate on the "buyer_need_id" field.
func BuyerNeedIDIn(vs ...string) predicate.Match {
	return predicate.Match(sql.FieldIn(FieldBuyerNeedID, vs...))
}

// BuyerNeedIDNotIn applies the NotIn predicate on the "buyer_need_id" field.
func BuyerNeedIDNotIn(vs ...string) predicate.Match {
	return predicate.Match(sql.FieldNotIn(FieldBuyerNeedID, vs...))
}

// BuyerNeedIDGT applies the GT predicate on the "buyer_need_id" field.
func BuyerNeedIDGT(v string) predicate.Match {
	return predicate.Match(sql.FieldGT(FieldBuyerNeedID, v))
}

// BuyerNeedIDGTE applies the GTE predicate on the "buyer_need_id" field.
func BuyerNeedIDGTE(v string) predicate.Match {
	return predicate.Match(sql.FieldGTE(FieldBuyerNeedID, v))
}

// BuyerNeedIDLT applies the LT predicate on the "buyer_need_id" field.
func BuyerNeedIDLT(v string) predicate.Match {
	return predicate.Match(sql.FieldLT(FieldBuyerNeedID, v))
}

// BuyerNeedIDLTE applies the LTE predicate on the "buyer_need_id" field.
func BuyerNeedIDLTE(v string) predicate.Match {
	return predicate.Match(sql.FieldLTE(FieldBuyerNeedID, v))
}

// BuyerNeedIDContains applies the Contains predicate on the "buyer_need_id" field.
func BuyerNeedIDContains(v string) predicate.Match {
	return predicate.Match(sql.FieldContains(FieldBuyerNeedID, v))
}

// BuyerNeedIDHasPrefix applies the HasPrefix predicate on the "buyer_need_id" field.
func BuyerNeedIDHasPrefix(v string) predicate.Match {
	return predicate.Match(sql.FieldHasPrefix(FieldBuyerNeedID, v))
}

// BuyerNeedIDHasSuffix applies the HasSuffix predicate on the "buyer_need_id" field.
func BuyerNeedIDHasSuffix(v string) predicate.Match {
	return predicate.Match(sql.FieldHasSuffix(FieldBuyerNeedID, v))
}

// BuyerNeedIDEqualFold applies the EqualFold predicate on the "buyer_need_id" field.
func BuyerNeedIDEqualFold(v string) predicate.Match {
	return predicate.Match(sql.FieldEqualFold(FieldBuyerNeedID, v))
}

// BuyerNeedIDContainsFold applies the ContainsFold predicate on the "buyer_need_id" field.
func BuyerNeedIDContainsFold(v string) predicate.Match {
	return predicate.Match(sql.FieldContainsFold(FieldBuyerNeedID, v))
}

// WarehouseIDEQ applies the EQ predicate on the "warehouse_id" field.
func WarehouseIDEQ(v string) predicate.Match {
	return predicate.Match(sql.FieldEQ(FieldWarehouseID, v))
}

// WarehouseIDNEQ applies the NEQ predicate on the "warehouse_id" field.
func WarehouseIDNEQ(v string) predicate.Match {
	return predicate.Match(sql.FieldNEQ(FieldWarehouseID, v))
}

// WarehouseIDIn applies the In predicate on the "warehouse_id" field.
func WarehouseIDIn(vs ...string) predicate.Match {
	return predicate.Match(sql.FieldIn(FieldWarehouseID, vs...))
}

// WarehouseIDNotIn applies the NotIn predicate on the "warehouse_id" field.
func WarehouseIDNotIn(vs ...string) predicate.Match {
	return predicate.Match(sql.FieldNotIn(FieldWarehouseID, vs...))
}

// WarehouseIDGT applies the GT predicate on the "warehouse_id" field.
func WarehouseIDGT(v string) predicate.Match {
	return predicate.Match(sql.FieldGT(FieldWarehouseID, v))
}

// WarehouseIDGTE applies the GTE predicate on the "warehouse_id" field.
func WarehouseIDGTE(v string) predicate.Match {
	return predicate.Match(sql.FieldGTE(FieldWarehouseID, v))
}

// WarehouseIDLT applies the LT predicate on the "warehouse_id" field.
func WarehouseIDLT(v string) predicate.Match {
	return predicate.Match(sql.FieldLT(FieldWarehouseID, v))
}

// WarehouseIDLTE applies the LTE predicate on the "warehouse_id" field.
func WarehouseIDLTE(v string) predicate.Match {
	return predicate.Match(sql.FieldLTE(FieldWarehouseID, v))
}

// WarehouseIDContains applies the Contains predicate on the "warehouse_id" field.
func WarehouseIDContains(v string) predicate.Match {
	return predicate.Match(sql.FieldContains(FieldWarehouseID, v))
}

// WarehouseIDHasPrefix applies the HasPrefix predicate on the "warehouse_id" field.
func WarehouseIDHasPrefix(v string) predicate.Match {
	return predicate.Match(sql.FieldHasPrefix(FieldWarehouseID, v))
}

// WarehouseIDHasSuffix applies the HasSuffix predicate on the "warehouse_id" field.
func WarehouseIDHasSuffix(v string) predicate.Match {
	return predicate.Match(sql.FieldHasSuffix(FieldWarehouseID, v))
}

// WarehouseIDEqualFold applies the EqualFold predicate on the "warehouse_id" field.
func WarehouseIDEqualFold(v string) predicate.Match {
	return predicate.Match(sql.FieldEqualFold(FieldWarehouseID, v))
}

// WarehouseIDContainsFold applies the ContainsFold predicate on the "warehouse_id" field.
func WarehouseIDContainsFold(v string) predicate.Match {
	return predicate.Match(sql.FieldContainsFold(FieldWarehouseID, v))
}

// CompositeScoreEQ applies the EQ predicate on the "composite_score" field.
func CompositeScoreEQ(v float64) predicate.Match {
	return predicate.Match(sql.FieldEQ(FieldCompositeScore, v))
}

// CompositeScoreNEQ applies the NEQ predicate on the "composite_score" field.
func CompositeScoreNEQ(v float64) predicate.Match {
	return predicate.Match(sql.FieldNEQ(FieldCompositeScore, v))
}

// CompositeScoreIn applies the In predicate on the "composite_score" field.
func CompositeScoreIn(vs ...float64) predicate.Match {
	return predicate.Match(sql.FieldIn(FieldCompositeScore, vs...))
}

// CompositeScoreNotIn applies the NotIn predicate on the "composite_score" field.
func CompositeScoreNotIn(vs ...float64) predicate.Match {
	return predicate.Match(sql.FieldNotIn(FieldCompositeScore, vs...))
}

// CompositeScoreGT applies the GT predicate on the "composite_score" field.
func CompositeScoreGT(v float64) predicate.Match {
	return predicate.Match(sql.FieldGT(FieldCompositeScore, v))
}

// CompositeScoreGTE applies the GTE predicate on the "composite_score" field.
func CompositeScoreGTE(v float64) predicate.Match {
	return predicate.Match(sql.FieldGTE(FieldCompositeScore, v))
}

// CompositeScoreLT applies the LT predicate on the "composite_score" field.
func CompositeScoreLT(v float64) predicate.Match {
	return predicate.Match(sql.FieldLT(FieldCompositeScore, v))
}

// CompositeScoreLTE applies the LTE predicate on the "composite_score" field.
func CompositeScoreLTE(v float64) predicate.Match {
	return predicate.Match(sql.FieldLTE(FieldCompositeScore, v))
}

// LocationScoreEQ applies the EQ predicate on the "location_score" field.
func LocationScoreEQ(v float64) predicate.Match {
	return predicate.Match(sql.FieldEQ(FieldLocationScore, v))
}

// LocationScoreNEQ applies the NEQ predicate on the "location_score" field.
func LocationScoreNEQ(v float64) predicate.Match {
	return predicate.Match(sql.FieldNEQ(FieldLocationScore, v))
}

// LocationScoreIn applies the In predicate on the "location_score" field.
func LocationScoreIn(vs ...float64) predicate.Match {
	return predicate.Match(sql.FieldIn(FieldLocationScore, vs...))
}

// LocationScoreNotIn applies the NotIn predicate on the "location_score" field.
func LocationScoreNotIn(vs ...float64) predicate.Match {
	return predicate.Match(sql.FieldNotIn(FieldLocationScore, vs...))
}

// LocationScoreGT applies the GT predicate on the "location_score" field.
func LocationScoreGT(v float64) predicate.Match {
	return predicate.Match(sql.FieldGT(FieldLocationScore, v))
}

// LocationScoreGTE applies the GTE predicate on the "location_score" field.
func LocationScoreGTE(v float64) predicate.Match {
	return predicate.Match(sql.FieldGTE(FieldLocationScore, v))
}

// LocationScoreLT applies the LT predicate on the "location_score" field.
func LocationScoreLT(v float64) predicate.Match {
	return predicate.Match(sql.FieldLT(FieldLocationScore, v))
}

// LocationScoreLTE applies the LTE predicate on the "location_score" field.
func LocationScoreLTE(v float64) predicate.Match {
	return predicate.Match(sql.FieldLTE(FieldLocationScore, v))
}

// SizeScoreEQ applies the EQ predicate on the "size_score" field.
func SizeScoreEQ(v float64) predicate.Match {
	return predicate.Match(sql.FieldEQ(FieldSizeScore, v))
}

// SizeScoreNEQ applies the NEQ predicate on the "size_score" field.
func SizeScoreNEQ(v float64) predicate.Match {
	return predicate.Match(sql.FieldNEQ(FieldSizeScore, v))
}

// SizeScoreIn applies the In predicate on the "size_score" field.
func SizeScoreIn(vs ...float64) predicate.Match {
	return predicate.Match(sql.FieldIn(FieldSizeScore, vs...))
}

// SizeScoreNotIn applies the NotIn predicate on the "size_score" field.
func SizeScoreNotIn(vs ...float64) predicate.Match {
	return predicate.Match(sql.FieldNotIn(FieldSizeScore, vs...))
}

// SizeScoreGT applies the GT predicate on the "size_score" field.
func SizeScoreGT(v float64) predicate.Match {
	return predicate.Match(sql.FieldGT(FieldSizeScore, v))
}

// SizeScoreGTE applies the GTE predicate on the "size_score" field.
func SizeScoreGTE(v float64) predicate.Match {
	return predicate.Match(sql.FieldGTE(FieldSizeScore, v))
}

// SizeScoreLT applies the LT predicate on the "size_score" field.
func SizeScoreLT(v float64) predicate.Match {
	return predicate.Match(sql.FieldLT(FieldSizeScore, v))
}

// SizeScoreLTE applies the LTE predicate on the "size_score" field.
func SizeScoreLTE(v float64) predicate.Match {
	return predicate.Match(sql.FieldLTE(FieldSizeScore, v))
}

// UseTypeScoreEQ applies the EQ predicate on the "use_type_score" field.
func UseTypeScoreEQ(v float64) predicate.Match {
	return predicate.Match(sql.FieldEQ(FieldUseTypeScore, v))
}

// UseTypeScoreNEQ applies the NEQ predicate on the "use_type_score" field.
func UseTypeScoreNEQ(v float64) predicate.Match {
	return predicate.Match(sql.FieldNEQ(FieldUseTypeScore, v))
}

// UseTypeScoreIn applies the In predicate on the "use_type_score" field.
func UseTypeScoreIn(vs ...float64) predicate.Match {
	return predicate.Match(sql.FieldIn(FieldUseTypeScore, vs...))
}

// UseTypeScoreNotIn applies the NotIn predicate on the "use_type_score" field.
func UseTypeScoreNotIn(vs ...float64) predicate.Match {
	return predicate.Match(sql.FieldNotIn(FieldUseTypeScore, vs...))
}

// UseTypeScoreGT applies the GT predicate on the "use_type_score" field.
func UseTypeScoreGT(v float64) predicate.Match {
	return predicate.Match(sql.FieldGT(FieldUseTypeScore, v))
}

// UseTypeScoreGTE applies the GTE predicate on the "use_type_score" field.
func UseTypeScoreGTE(v float64) predicate.Match {
	return predicate.Match(sql.FieldGTE(FieldUseTypeScore, v))
}

// UseTypeScoreLT applies the LT predicate on the "use_type_score" field.
func UseTypeScoreLT(v float64) predicate.Match {
	return predicate.Match(sql.FieldLT(FieldUseTypeScore, v))
}

// UseTypeScoreLTE applies the LTE predicate on the "use_type_score" field.
func UseTypeScoreLTE(v float64) predicate.Match {
	return predicate.Match(sql.FieldLTE(FieldUseTypeScore, v))
}

// FeatureScoreEQ applies the EQ predicate on the "feature_score" field.
func FeatureScoreEQ(v float64) predicate.Match {
	return predicate.Match(sql.FieldEQ(FieldFeatureScore, v))
}

// FeatureScoreNEQ applies the NEQ predicate on the "feature_score" field.
func FeatureScoreNEQ(v float64) predicate.Match {
	return predicate.Match(sql.FieldNEQ(FieldFeatureScore, v))
}

// FeatureScoreIn applies the In predicate on the "feature_score" field.
func FeatureScoreIn(vs ...float64) predicate.Match {
	return predicate.Match(sql.FieldIn(FieldFeatureScore, vs...))
}

// FeatureScoreNotIn applies the NotIn predicate on the "feature_score" field.
func FeatureScoreNotIn(vs ...float64) predicate.Match {
	return predicate.Match(sql.FieldNotIn(FieldFeatureScore, vs...))
}

// FeatureScoreGT applies the GT predicate on the "feature_score" field.
func FeatureScoreGT(v float64) predicate.Match {
	return predicate.Match(sql.FieldGT(FieldFeatureScore, v))
}

// FeatureScoreGTE applies the GTE predicate on the "feature_score" field.
func FeatureScoreGTE(v float64) predicate.Match {
	return predicate.Match(sql.FieldGTE(FieldFeatureScore, v))
}

// FeatureScoreLT applies the LT predicate on the "feature_score" field.
func FeatureScoreLT(v float64) predicate.Match {
	return predicate.Match(sql.FieldLT(FieldFeatureScore, v))
}

// FeatureScoreLTE applies the LTE predicate on the "feature_score" field.
func FeatureScoreLTE(v float64) predicate.Match {
	return predicate.Match(sql.FieldLTE(FieldFeatureScore, v))
}

// TimingScoreEQ applies the EQ predicate on the "timing_score" field.
func TimingScoreEQ(v float64) predicate.Match {
	return predicate.Match(sql.FieldEQ(FieldTimingScore, v))
}

// TimingScoreNEQ applies the NEQ predicate on the "timing_score" field.
func TimingScoreNEQ(v float64) predicate.Match {
	return predicate.Match(sql.FieldNEQ(FieldTimingScore, v))
}

// TimingScoreIn applies the In predicate on the "timing_score" field.
func TimingScoreIn(vs ...float64) predicate.Match {
	return predicate.Match(sql.FieldIn(FieldTimingScore, vs...))
}

// TimingScoreNotIn applies the NotIn predicate on the "timing_score" field.
func TimingScoreNotIn(vs ...float64) predicate.Match {
	return predicate.Match(sql.FieldNotIn(FieldTimingScore, vs...))
}

// TimingScoreGT applies the GT predicate on the "timing_score" field.
func TimingScoreGT(v float64) predicate.Match {
	return predicate.Match(sql.FieldGT(FieldTimingScore, v))
}

// TimingScoreGTE applies the GTE predicate on the "timing_score" field.
func TimingScoreGTE(v float64) predicate.Match {
	return predicate.Match(sql.FieldGTE(FieldTimingScore, v))
}

// TimingScoreLT applies the LT predicate on the "timing_score" field.
func TimingScoreLT(v float64) predicate.Match {
	return predicate.Match(sql.FieldLT(FieldTimingScore, v))
}

// TimingScoreLTE applies the LTE predicate on the "timing_score" field.
func TimingScoreLTE(v float64) predicate.Match {
	return predicate.Match(sql.FieldLTE(FieldTimingScore, v))
}

// BudgetScoreEQ applies the EQ predicate on the "budget_score" field.
func BudgetScoreEQ(v float64) predicate.Match {
	return predicate.Match(sql.FieldEQ(FieldBudgetScore, v))
}

// BudgetScoreNEQ applies the NEQ predicate on the "budget_score" field.
func BudgetScoreNEQ(v float64) predicate.Match {
	return predicate.Match(sql.FieldNEQ(FieldBudgetScore, v))
}

// BudgetScoreIn applies the In predicate on the "budget_score" field.
func BudgetScoreIn(vs ...float64) predicate.Match {
	return predicate.Match(sql.FieldIn(FieldBudgetScore, vs...))
}

// BudgetScoreNotIn applies the NotIn predicate on the "budget_score" field.
func BudgetScoreNotIn(vs ...float64) predicate.Match {
	return predicate.Match(sql.FieldNotIn(FieldBudgetScore, vs...))
}

// BudgetScoreGT applies the GT predicate on the "budget_score" field.
func BudgetScoreGT(v float64) predicate.Match {
	return predicate.Match(sql.FieldGT(FieldBudgetScore, v))
}

// BudgetScoreGTE applies the GTE predicate on the "budget_score" field.
func BudgetScoreGTE(v float64) predicate.Match {
	return predicate.Match(sql.FieldGTE(FieldBudgetScore, v))
}

// BudgetScoreLT applies the LT predicate on the "budget_score" field.
func BudgetScoreLT(v float64) predicate.Match {
	return predicate.Match(sql.FieldLT(FieldBudgetScore, v))
}

// BudgetScoreLTE applies the LTE predicate on the "budget_score" field.
func BudgetScoreLTE(v float64) predicate.Match {
	return predicate.Match(sql.FieldLTE(FieldBudgetScore, v))
}

// DistanceMilesEQ applies the EQ predicate on the "distance_miles" field.
func DistanceMilesEQ(v float64) predicate.Match {
	return predicate.Match(sql.FieldEQ(FieldDistanceMiles, v))
}

// DistanceMilesNEQ applies the NEQ predicate on the "distance_miles" field.
func DistanceMilesNEQ(v float64) predicate.Match {
	return predicate.Match(sql.FieldNEQ(FieldDistanceMiles, v))
}

// DistanceMilesIn applies the In predicate on the "distance_miles" field.
func DistanceMilesIn(vs ...float64) predicate.Match {
	return predicate.Match(sql.FieldIn(FieldDistanceMiles, vs...))
}

// DistanceMilesNotIn applies the NotIn predicate on the "distance_miles" field.
func DistanceMilesNotIn(vs ...float64) predicate.Match {
	return predicate.Match(sql.FieldNotIn(FieldDistanceMiles, vs...))
}

// DistanceMilesGT applies the GT predicate on the "distance_miles" field.
func DistanceMilesGT(v float64) predicate.Match {
	return predicate.Match(sql.FieldGT(FieldDistanceMiles, v))
}

// DistanceMilesGTE applies the GTE predicate on the "distance_miles" field.
func DistanceMilesGTE(v float64) predicate.Match {
	return predicate.Match(sql.FieldGTE(FieldDistanceMiles, v))
}

// DistanceMilesLT applies the LT predicate on the "distance_miles" field.
func DistanceMilesLT(v float64) predicate.Match {
	return predicate.Match(sql.FieldLT(FieldDistanceMiles, v))
}

// DistanceMilesLTE applies the LTE predicate on the "distance_miles" field.
func DistanceMilesLTE(v float64) predicate.Match {
	return predicate.Match(sql.FieldLTE(FieldDistanceMiles, v))
}

// DistanceMilesIsNil applies the IsNil predicate on the "distance_miles" field.
func DistanceMilesIsNil() predicate.Match {
	return predicate.Match(sql.FieldIsNull(FieldDistanceMiles))
}

// DistanceMilesNotNil applies the NotNil predicate on the "distance_miles" field.
func DistanceMilesNotNil() predicate.Match {
	return predicate.Match(sql.FieldNotNull(FieldDistanceMiles))
}

// ReasoningEQ applies the EQ predicate on the "reasoning" field.
func ReasoningEQ(v string) predicate.Match {
	return predicate.Match(sql.FieldEQ(FieldReasoning, v))
}

// ReasoningNEQ applies the NEQ predicate on the "reasoning" field.
func ReasoningNEQ(v string) predicate.Match {
	return predicate.Match(sql.FieldNEQ(FieldReasoning, v))
}

// ReasoningIn applies the In predicate on the "reasoning" field.
func ReasoningIn(vs ...string) predicate.Match {
	return predicate.Match(sql.FieldIn(FieldReasoning, vs...))
}

// ReasoningNotIn applies the NotIn predicate on the "reasoning" field.
func ReasoningNotIn(vs ...string) predicate.Match {
	return predicate.Match(sql.FieldNotIn(FieldReasoning, vs...))
}

// ReasoningGT applies the GT predicate on the "reasoning" field.
func ReasoningGT(v string) predicate.Match {
	return predicate.Match(sql.FieldGT(FieldReasoning, v))
}

// ReasoningGTE applies the GTE predicate on the "reasoning" field.
func ReasoningGTE(v string) predicate.Match {
	return predicate.Match(sql.FieldGTE(FieldReasoning, v))
}

// ReasoningLT applies the LT predicate on the "reasoning" field.
func ReasoningLT(v string) predicate.Match {
	return predicate.Match(sql.FieldLT(FieldReasoning, v))
}

// ReasoningLTE applies the LTE predicate on the "reasoning" field.
func ReasoningLTE(v string) predicate.Match {
	return predicate.Match(sql.FieldLTE(FieldReasoning, v))
}

// ReasoningContains applies the Contains predicate on the "reasoning" field.
func ReasoningContains(v string) predicate.Match {
	return predicate.Match(sql.FieldContains(FieldReasoning, v))
}

// ReasoningHasPrefix applies the HasPrefix predicate on the "reasoning" field.
func ReasoningHasPrefix(v string) predicate.Match {
	return predicate.Match(sql.FieldHasPrefix(FieldReasoning, v))
}

// ReasoningHasSuffix applies the HasSuffix predicate on the "reasoning" field.
func ReasoningHasSuffix(v string) predicate.Match {
	return predicate.Match(sql.FieldHasSuffix(FieldReasoning, v))
}

// ReasoningIsNil applies the IsNil predicate on the "reasoning" field.
func ReasoningIsNil() predicate.Match {
	return predicate.Match(sql.FieldIsNull(FieldReasoning))
}

// ReasoningNotNil applies the NotNil predicate on the "reasoning" field.
func ReasoningNotNil() predicate.Match {
	return predicate.Match(sql.FieldNotNull(FieldReasoning))
}

// ReasoningEqualFold applies the EqualFold predicate on the "reasoning" field.
func ReasoningEqualFold(v string) predicate.Match {
	return predicate.Match(sql.FieldEqualFold(FieldReasoning, v))
}

// ReasoningContainsFold applies the ContainsFold predicate on the "reasoning" field.
func ReasoningContainsFold(v string) predicate.Match {
	return predicate.Match(sql.FieldContainsFold(FieldReasoning, v))
}

// CalloutsIsNil applies the IsNil predicate on the "callouts" field.
func CalloutsIsNil() predicate.Match {
	return predicate.Match(sql.FieldIsNull(FieldCallouts))
}

// CalloutsNotNil applies the NotNil predicate on the "callouts" field.
func CalloutsNotNil() predicate.Match {
	return predicate.Match(sql.FieldNotNull(FieldCallouts))
}

// InstantBookEligibleEQ applies the EQ predicate on the "instant_book_eligible" field.
func InstantBookEligibleEQ(v bool) predicate.Match {
	return predicate.Match(sql.FieldEQ(FieldInstantBookEligible, v))
}

// InstantBookEligibleNEQ applies the NEQ predicate on the "instant_book_eligible" field.
func InstantBookEligibleNEQ(v bool) predicate.Match {
	return predicate.Match(sql.FieldNEQ(FieldInstantBookEligible, v))
}

// WithinBudgetEQ applies the EQ predicate on the "within_budget" field.
func WithinBudgetEQ(v bool) predicate.Match {
	return predicate.Match(sql.FieldEQ(FieldWithinBudget, v))
}

// WithinBudgetNEQ applies the NEQ predicate on the "within_budget" field.
func WithinBudgetNEQ(v bool) predicate.Match {
	return predicate.Match(sql.FieldNEQ(FieldWithinBudget, v))
}

// BuyerRateEQ applies the EQ predicate on the "buyer_rate" field.
func BuyerRateEQ(v float64) predicate.Match {
	return predicate.Match(sql.FieldEQ(FieldBuyerRate, v))
}

// BuyerRateNEQ applies the NEQ predicate on the "buyer_rate" field.
func BuyerRateNEQ(v float64) predicate.Match {
	return predicate.Match(sql.FieldNEQ(FieldBuyerRate, v))
}

// BuyerRateIn applies the In predicate on the "buyer_rate" field.
func BuyerRateIn(vs ...float64) predicate.Match {
	return predicate.Match(sql.FieldIn(FieldBuyerRate, vs...))
}

// BuyerRateNotIn applies the NotIn predicate on the "buyer_rate" field.
func BuyerRateNotIn(vs ...float64) predicate.Match {
	return predicate.Match(sql.FieldNotIn(FieldBuyerRate, vs...))
}

// BuyerRateGT applies the GT predicate on the "buyer_rate" field.
func BuyerRateGT(v float64) predicate.Match {
	return predicate.Match(sql.FieldGT(FieldBuyerRate, v))
}

// BuyerRateGTE applies the GTE predicate on the "buyer_rate" field.
func BuyerRateGTE(v float64) predicate.Match {
	return predicate.Match(sql.FieldGTE(FieldBuyerRate, v))
}

// BuyerRateLT applies the LT predicate on the "buyer_rate" field.
func BuyerRateLT(v float64) predicate.Match {
	return predicate.Match(sql.FieldLT(FieldBuyerRate, v))
}

// BuyerRateLTE applies the LTE predicate on the "buyer_rate" field.
func BuyerRateLTE(v float64) predicate.Match {
	return predicate.Match(sql.FieldLTE(FieldBuyerRate, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Match {
	return predicate.Match(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Match {
	return predicate.Match(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Match {
	return predicate.Match(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Match {
	return predicate.Match(sql.FieldNotIn(FieldStatus, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Match {
	return predicate.Match(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Match {
	return predicate.Match(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Match {
	return predicate.Match(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Match {
	return predicate.Match(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Match {
	return predicate.Match(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Match {
	return predicate.Match(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Match {
	return predicate.Match(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Match {
	return predicate.Match(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Match {
	return predicate.Match(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Match {
	return predicate.Match(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Match {
	return predicate.Match(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Match {
	return predicate.Match(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Match {
	return predicate.Match(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Match {
	return predicate.Match(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Match {
	return predicate.Match(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Match {
	return predicate.Match(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasBuyerNeed applies the HasEdge predicate on the "buyer_need" edge.
func HasBuyerNeed() predicate.Match {
	return predicate.Match(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, BuyerNeedTable, BuyerNeedColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBuyerNeedWith applies the HasEdge predicate on the "buyer_need" edge with a given conditions (other predicates).
func HasBuyerNeedWith(preds ...predicate.BuyerNeed) predicate.Match {
	return predicate.Match(func(s *sql.Selector) {
		step := newBuyerNeedStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasWarehouse applies the HasEdge predicate on the "warehouse" edge.
func HasWarehouse() predicate.Match {
	return predicate.Match(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, WarehouseTable, WarehouseColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWarehouseWith applies the HasEdge predicate on the "warehouse" edge with a given conditions (other predicates).
func HasWarehouseWith(preds ...predicate.Warehouse) predicate.Match {
	return predicate.Match(func(s *sql.Selector) {
		step := newWarehouseStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasInstantBookScore applies the HasEdge predicate on the "instant_book_score" edge.
func HasInstantBookScore() predicate.Match {
	return predicate.Match(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, InstantBookScoreTable, InstantBookScoreColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasInstantBookScoreWith applies the HasEdge predicate on the "instant_book_score" edge with a given conditions (other predicates).
func HasInstantBookScoreWith(preds ...predicate.InstantBookScore) predicate.Match {
	return predicate.Match(func(s *sql.Selector) {
		step := newInstantBookScoreStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEngagement applies the HasEdge predicate on the "engagement" edge.
func HasEngagement() predicate.Match {
	return predicate.Match(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, EngagementTable, EngagementColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEngagementWith applies the HasEdge predicate on the "engagement" edge with a given conditions (other predicates).
func HasEngagementWith(preds ...predicate.Engagement) predicate.Match {
	return predicate.Match(func(s *sql.Selector) {
		step := newEngagementStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Match) predicate.Match {
	return predicate.Match(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Match) predicate.Match {
	return predicate.Match(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Match) predicate.Match {
	return predicate.Match(sql.NotPredicates(p))
}
