// Code generated by ent, DO NOT EDIT.

package marketrate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/warehouse-exchange/wex/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.MarketRate {
	return predicate.MarketRate(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.MarketRate {
	return predicate.MarketRate(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.MarketRate {
	return predicate.MarketRate(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.MarketRate {
	return predicate.MarketRate(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.MarketRate {
	return predicate.MarketRate(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.MarketRate {
	return predicate.MarketRate(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.MarketRate {
	return predicate.MarketRate(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.MarketRate {
	return predicate.MarketRate(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.MarketRate {
	return predicate.MarketRate(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.MarketRate {
	return predicate.MarketRate(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.MarketRate {
	return predicate.MarketRate(sql.FieldContainsFold(FieldID, id))
}

// Zip applies equality check predicate on the "zip" field. It's identical to ZipEQ.
func Zip(v string) predicate.MarketRate {
	return predicate.MarketRate(sql.FieldEQ(FieldZip, v))
}

// State applies equality check predicate on the "state" field. It's identical to StateEQ.
func State(v string) predicate.MarketRate {
	return predicate.MarketRate(sql.FieldEQ(FieldState, v))
}

// RateLow applies equality check predicate on the "rate_low" field. It's identical to RateLowEQ.
func RateLow(v float64) predicate.MarketRate {
	return predicate.MarketRate(sql.FieldEQ(FieldRateLow, v))
}

// RateHigh applies equality check predicate on the "rate_high" field. It's identical to RateHighEQ.
func RateHigh(v float64) predicate.MarketRate {
	return predicate.MarketRate(sql.FieldEQ(FieldRateHigh, v))
}

// FetchedAt applies equality check predicate on the "fetched_at" field. It's identical to FetchedAtEQ.
func FetchedAt(v time.Time) predicate.MarketRate {
	return predicate.MarketRate(sql.FieldEQ(FieldFetchedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.MarketRate {
	return predicate.MarketRate(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.MarketRate {
	return predicate.MarketRate(sql.FieldEQ(FieldUpdatedAt, v))
}

// ZipEQ applies the EQ predicate on the "zip" field.
func ZipEQ(v string) predicate.MarketRate {
	return predicate.MarketRate(sql.FieldEQ(FieldZip, v))
}

// ZipNEQ applies the NEQ predicate on the "zip" field.
func ZipNEQ(v string) predicate.MarketRate {
	return predicate.MarketRate(sql.FieldNEQ(FieldZip, v))
}

// ZipIn applies the In predicate on the "zip" field.
func ZipIn(vs ...string) predicate.MarketRate {
	return predicate.MarketRate(sql.FieldIn(FieldZip, vs...))
}

// ZipNotIn applies the NotIn predicate on the "zip" field.
func ZipNotIn(vs ...string) predicate.MarketRate {
	return predicate.MarketRate(sql.FieldNotIn(FieldZip, vs...))
}

// ZipGT applies the GT predicate on the "zip" field.
func ZipGT(v string) predicate.MarketRate {
	return predicate.MarketRate(sql.FieldGT(FieldZip, v))
}

// ZipGTE applies the GTE predicate on the "zip" field.
func ZipGTE(v string) predicate.MarketRate {
	return predicate.MarketRate(sql.FieldGTE(FieldZip, v))
}

// ZipLT applies the LT predicate on the "zip" field.
func ZipLT(v string) predicate.MarketRate {
	return predicate.MarketRate(sql.FieldLT(FieldZip, v))
}

// ZipLTE applies the LTE predicate on the "zip" field.
func ZipLTE(v string) predicate.MarketRate {
	return predicate.MarketRate(sql.FieldLTE(FieldZip, v))
}

// ZipContains applies the Contains predicate on the "zip" field.
func ZipContains(v string) predicate.MarketRate {
	return predicate.MarketRate(sql.FieldContains(FieldZip, v))
}

// ZipHasPrefix applies the HasPrefix predicate on the "zip" field.
func ZipHasPrefix(v string) predicate.MarketRate {
	return predicate.MarketRate(sql.FieldHasPrefix(FieldZip, v))
}

// ZipHasSuffix applies the HasSuffix predicate on the "zip" field.
func ZipHasSuffix(v string) predicate.MarketRate {
	return predicate.MarketRate(sql.FieldHasSuffix(FieldZip, v))
}

// ZipEqualFold applies the EqualFold predicate on the "zip" field.
func ZipEqualFold(v string) predicate.MarketRate {
	return predicate.MarketRate(sql.FieldEqualFold(FieldZip, v))
}

// ZipContainsFold applies the ContainsFold predicate on the "zip" field.
func ZipContainsFold(v string) predicate.MarketRate {
	return predicate.MarketRate(sql.FieldContainsFold(FieldZip, v))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v string) predicate.MarketRate {
	return predicate.MarketRate(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v string) predicate.MarketRate {
	return predicate.MarketRate(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...string) predicate.MarketRate {
	return predicate.MarketRate(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...string) predicate.MarketRate {
	return predicate.MarketRate(sql.FieldNotIn(FieldState, vs...))
}

// StateGT applies the GT predicate on the "state" field.
func StateGT(v string) predicate.MarketRate {
	return predicate.MarketRate(sql.FieldGT(FieldState, v))
}

// StateGTE applies the GTE predicate on the "state" field.
func StateGTE(v string) predicate.MarketRate {
	return predicate.MarketRate(sql.FieldGTE(FieldState, v))
}

// StateLT applies the LT predicate on the "state" field.
func StateLT(v string) predicate.MarketRate {
	return predicate.MarketRate(sql.FieldLT(FieldState, v))
}

// StateLTE applies the LTE predicate on the "state" field.
func StateLTE(v string) predicate.MarketRate {
	return predicate.MarketRate(sql.FieldLTE(FieldState, v))
}

// StateContains applies the Contains predicate on the "state" field.
func StateContains(v string) predicate.MarketRate {
	return predicate.MarketRate(sql.FieldContains(FieldState, v))
}

// StateHasPrefix applies the HasPrefix predicate on the "state" field.
func StateHasPrefix(v string) predicate.MarketRate {
	return predicate.MarketRate(sql.FieldHasPrefix(FieldState, v))
}

// StateHasSuffix applies the HasSuffix predicate on the "state" field.
func StateHasSuffix(v string) predicate.MarketRate {
	return predicate.MarketRate(sql.FieldHasSuffix(FieldState, v))
}

// StateIsNil applies the IsNil predicate on the "state" field.
func StateIsNil() predicate.MarketRate {
	return predicate.MarketRate(sql.FieldIsNull(FieldState))
}

// StateNotNil applies the NotNil predicate on the "state" field.
func StateNotNil() predicate.MarketRate {
	return predicate.MarketRate(sql.FieldNotNull(FieldState))
}

// StateEqualFold applies the EqualFold predicate on the "state" field.
func StateEqualFold(v string) predicate.MarketRate {
	return predicate.MarketRate(sql.FieldEqualFold(FieldState, v))
}

// StateContainsFold applies the ContainsFold predicate on the "state" field.
func StateContainsFold(v string) predicate.MarketRate {
	return predicate.MarketRate(sql.FieldContainsFold(FieldState, v))
}

// RateLowEQ applies the EQ predicate on the "rate_low" field.
func RateLowEQ(v float64) predicate.MarketRate {
	return predicate.MarketRate(sql.FieldEQ(FieldRateLow, v))
}

// RateLowNEQ applies the NEQ predicate on the "rate_low" field.
func RateLowNEQ(v float64) predicate.MarketRate {
	return predicate.MarketRate(sql.FieldNEQ(FieldRateLow, v))
}

// RateLowIn applies the In predicate on the "rate_low" field.
func RateLowIn(vs ...float64) predicate.MarketRate {
	return predicate.MarketRate(sql.FieldIn(FieldRateLow, vs...))
}

// RateLowNotIn applies the NotIn predicate on the "rate_low" field.
func RateLowNotIn(vs ...float64) predicate.MarketRate {
	return predicate.MarketRate(sql.FieldNotIn(FieldRateLow, vs...))
}

// RateLowGT applies the GT predicate on the "rate_low" field.
func RateLowGT(v float64) predicate.MarketRate {
	return predicate.MarketRate(sql.FieldGT(FieldRateLow, v))
}

// RateLowGTE applies the GTE predicate on the "rate_low" field.
func RateLowGTE(v float64) predicate.MarketRate {
	return predicate.MarketRate(sql.FieldGTE(FieldRateLow, v))
}

// RateLowLT applies the LT predicate on the "rate_low" field.
func RateLowLT(v float64) predicate.MarketRate {
	return predicate.MarketRate(sql.FieldLT(FieldRateLow, v))
}

// RateLowLTE applies the LTE predicate on the "rate_low" field.
func RateLowLTE(v float64) predicate.MarketRate {
	return predicate.MarketRate(sql.FieldLTE(FieldRateLow, v))
}

// RateHighEQ applies the EQ predicate on the "rate_high" field.
func RateHighEQ(v float64) predicate.MarketRate {
	return predicate.MarketRate(sql.FieldEQ(FieldRateHigh, v))
}

// RateHighNEQ applies the NEQ predicate on the "rate_high" field.
func RateHighNEQ(v float64) predicate.MarketRate {
	return predicate.MarketRate(sql.FieldNEQ(FieldRateHigh, v))
}

// RateHighIn applies the In predicate on the "rate_high" field.
func RateHighIn(vs ...float64) predicate.MarketRate {
	return predicate.MarketRate(sql.FieldIn(FieldRateHigh, vs...))
}

// RateHighNotIn applies the NotIn predicate on the "rate_high" field.
func RateHighNotIn(vs ...float64) predicate.MarketRate {
	return predicate.MarketRate(sql.FieldNotIn(FieldRateHigh, vs...))
}

// RateHighGT applies the GT predicate on the "rate_high" field.
func RateHighGT(v float64) predicate.MarketRate {
	return predicate.MarketRate(sql.FieldGT(FieldRateHigh, v))
}

// RateHighGTE applies the GTE predicate on the "rate_high" field.
func RateHighGTE(v float64) predicate.MarketRate {
	return predicate.MarketRate(sql.FieldGTE(FieldRateHigh, v))
}

// RateHighLT applies the LT predicate on the "rate_high" field.
func RateHighLT(v float64) predicate.MarketRate {
	return predicate.MarketRate(sql.FieldLT(FieldRateHigh, v))
}

// RateHighLTE applies the LTE predicate on the "rate_high" field.
func RateHighLTE(v float64) predicate.MarketRate {
	return predicate.MarketRate(sql.FieldLTE(FieldRateHigh, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v Source) predicate.MarketRate {
	return predicate.MarketRate(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v Source) predicate.MarketRate {
	return predicate.MarketRate(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...Source) predicate.MarketRate {
	return predicate.MarketRate(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...Source) predicate.MarketRate {
	return predicate.MarketRate(sql.FieldNotIn(FieldSource, vs...))
}

// FetchedAtEQ applies the EQ predicate on the "fetched_at" field.
func FetchedAtEQ(v time.Time) predicate.MarketRate {
	return predicate.MarketRate(sql.FieldEQ(FieldFetchedAt, v))
}

// FetchedAtNEQ applies the NEQ predicate on the "fetched_at" field.
func FetchedAtNEQ(v time.Time) predicate.MarketRate {
	return predicate.MarketRate(sql.FieldNEQ(FieldFetchedAt, v))
}

// FetchedAtIn applies the In predicate on the "fetched_at" field.
func FetchedAtIn(vs ...time.Time) predicate.MarketRate {
	return predicate.MarketRate(sql.FieldIn(FieldFetchedAt, vs...))
}

// FetchedAtNotIn applies the NotIn predicate on the "fetched_at" field.
func FetchedAtNotIn(vs ...time.Time) predicate.MarketRate {
	return predicate.MarketRate(sql.FieldNotIn(FieldFetchedAt, vs...))
}

// FetchedAtGT applies the GT predicate on the "fetched_at" field.
func FetchedAtGT(v time.Time) predicate.MarketRate {
	return predicate.MarketRate(sql.FieldGT(FieldFetchedAt, v))
}

// FetchedAtGTE applies the GTE predicate on the "fetched_at" field.
func FetchedAtGTE(v time.Time) predicate.MarketRate {
	return predicate.MarketRate(sql.FieldGTE(FieldFetchedAt, v))
}

// FetchedAtLT applies the LT predicate on the "fetched_at" field.
func FetchedAtLT(v time.Time) predicate.MarketRate {
	return predicate.MarketRate(sql.FieldLT(FieldFetchedAt, v))
}

// FetchedAtLTE applies the LTE predicate on the "fetched_at" field.
func FetchedAtLTE(v time.Time) predicate.MarketRate {
	return predicate.MarketRate(sql.FieldLTE(FieldFetchedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.MarketRate {
	return predicate.MarketRate(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.MarketRate {
	return predicate.MarketRate(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.MarketRate {
	return predicate.MarketRate(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.MarketRate {
	return predicate.MarketRate(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.MarketRate {
	return predicate.MarketRate(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.MarketRate {
	return predicate.MarketRate(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.MarketRate {
	return predicate.MarketRate(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.MarketRate {
	return predicate.MarketRate(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.MarketRate {
	return predicate.MarketRate(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.MarketRate {
	return predicate.MarketRate(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.MarketRate {
	return predicate.MarketRate(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.MarketRate {
	return predicate.MarketRate(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.MarketRate {
	return predicate.MarketRate(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.MarketRate {
	return predicate.MarketRate(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.MarketRate {
	return predicate.MarketRate(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.MarketRate {
	return predicate.MarketRate(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MarketRate) predicate.MarketRate {
	return predicate.MarketRate(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MarketRate) predicate.MarketRate {
	return predicate.MarketRate(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MarketRate) predicate.MarketRate {
	return predicate.MarketRate(sql.NotPredicates(p))
}
