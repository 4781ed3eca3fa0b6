// Code generated by ent, DO NOT EDIT.

package dlatoken

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/warehouse-exchange/wex/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldContainsFold(FieldID, id))
}

// Token applies equality check predicate on the "token" field. It's identical to TokenEQ.
func Token(v string) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldEQ(FieldToken, v))
}

// WarehouseID applies equality check predicate on the "warehouse_id" field. It's identical to WarehouseIDEQ.
func WarehouseID(v string) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldEQ(FieldWarehouseID, v))
}

// BuyerNeedID applies equality check predicate on the "buyer_need_id" field. It's identical to BuyerNeedIDEQ.
func BuyerNeedID(v string) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldEQ(FieldBuyerNeedID, v))
}

// SuggestedRate applies equality check predicate on the "suggested_rate" field. It's identical to SuggestedRateEQ.
func SuggestedRate(v float64) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldEQ(FieldSuggestedRate, v))
}

// FinalRate applies equality check predicate on the "final_rate" field. It's identical to FinalRateEQ.
func FinalRate(v float64) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldEQ(FieldFinalRate, v))
}

// ProposedSqft applies equality check predicate on the "proposed_sqft" field. It's identical to ProposedSqftEQ.
func ProposedSqft(v int) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldEQ(FieldProposedSqft, v))
}

// ExpiresAt applies equality check predicate on the "expires_at" field. It's identical to ExpiresAtEQ.
func ExpiresAt(v time.Time) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldEQ(FieldExpiresAt, v))
}

// ConfirmedAt applies equality check predicate on the "confirmed_at" field. It's identical to ConfirmedAtEQ.
func ConfirmedAt(v time.Time) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldEQ(FieldConfirmedAt, v))
}

// RespondedAt applies equality check predicate on the "responded_at" field. It's identical to RespondedAtEQ.
func RespondedAt(v time.Time) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldEQ(FieldRespondedAt, v))
}

// OutcomeNote applies equality check predicate on the "outcome_note" field. It's identical to OutcomeNoteEQ.
func OutcomeNote(v string) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldEQ(FieldOutcomeNote, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldEQ(FieldUpdatedAt, v))
}

// TokenEQ applies the EQ predicate on the "token" field.
func TokenEQ(v string) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldEQ(FieldToken, v))
}

// TokenNEQ applies the NEQ predicate on the "token" field.
func TokenNEQ(v string) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldNEQ(FieldToken, v))
}

// TokenIn applies the In predicate on the "token" field.
func TokenIn(vs ...string) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldIn(FieldToken, vs...))
}

// TokenNotIn applies the NotIn predicate on the "token" field.
func TokenNotIn(vs ...string) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldNotIn(FieldToken, vs...))
}

// TokenGT applies the GT predicate on the "token" field.
func TokenGT(v string) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldGT(FieldToken, v))
}

// TokenGTE applies the GTE predicate on the "token" field.
func TokenGTE(v string) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldGTE(FieldToken, v))
}

// TokenLT applies the LT predicate on the "token" field.
func TokenLT(v string) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldLT(FieldToken, v))
}

// TokenLTE applies the LTE predicate on the "token" field.
func TokenLTE(v string) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldLTE(FieldToken, v))
}

// TokenContains applies the Contains predicate on the "token" field.
func TokenContains(v string) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldContains(FieldToken, v))
}

// TokenHasPrefix applies the HasPrefix predicate on the "token" field.
func TokenHasPrefix(v string) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldHasPrefix(FieldToken, v))
}

// TokenHasSuffix applies the HasSuffix predicate on the "token" field.
func TokenHasSuffix(v string) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldHasSuffix(FieldToken, v))
}

// TokenEqualFold applies the EqualFold predicate on the "token" field.
func TokenEqualFold(v string) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldEqualFold(FieldToken, v))
}

// TokenContainsFold applies the ContainsFold predicate on the "token" field.
func TokenContainsFold(v string) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldContainsFold(FieldToken, v))
}

// WarehouseIDEQ applies the EQ predicate on the "warehouse_id" field.
func WarehouseIDEQ(v string) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldEQ(FieldWarehouseID, v))
}

// WarehouseIDNEQ applies the NEQ predicate on the "warehouse_id" field.
func WarehouseIDNEQ(v string) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldNEQ(FieldWarehouseID, v))
}

// WarehouseIDIn applies the In predicate on the "warehouse_id" field.
func WarehouseIDIn(vs ...string) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldIn(FieldWarehouseID, vs...))
}

// WarehouseIDNotIn applies the NotIn predicate on the "warehouse_id" field.
func WarehouseIDNotIn(vs ...string) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldNotIn(FieldWarehouseID, vs...))
}

// WarehouseIDGT applies the GT predicate on the "warehouse_id" field.
func WarehouseIDGT(v string) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldGT(FieldWarehouseID, v))
}

// WarehouseIDGTE applies the GTE predicate on the "warehouse_id" field.
func WarehouseIDGTE(v string) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldGTE(FieldWarehouseID, v))
}

// WarehouseIDLT applies the LT predicate on the "warehouse_id" field.
func WarehouseIDLT(v string) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldLT(FieldWarehouseID, v))
}

// WarehouseIDLTE applies the LTE predicate on the "warehouse_id" field.
func WarehouseIDLTE(v string) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldLTE(FieldWarehouseID, v))
}

// WarehouseIDContains applies the Contains predicate on the "warehouse_id" field.
func WarehouseIDContains(v string) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldContains(FieldWarehouseID, v))
}

// WarehouseIDHasPrefix applies the HasPrefix predicate on the "warehouse_id" field.
func WarehouseIDHasPrefix(v string) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldHasPrefix(FieldWarehouseID, v))
}

// WarehouseIDHasSuffix applies the HasSuffix predicate on the "warehouse_id" field.
func WarehouseIDHasSuffix(v string) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldHasSuffix(FieldWarehouseID, v))
}

// WarehouseIDEqualFold applies the EqualFold predicate on the "warehouse_id" field.
func WarehouseIDEqualFold(v string) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldEqualFold(FieldWarehouseID, v))
}

// WarehouseIDContainsFold applies the ContainsFold predicate on the "warehouse_id" field.
func WarehouseIDContainsFold(v string) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldContainsFold(FieldWarehouseID, v))
}

// BuyerNeedIDEQ applies the EQ predicate on the "buyer_need_id" field.
func BuyerNeedIDEQ(v string) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldEQ(FieldBuyerNeedID, v))
}

// BuyerNeedIDNEQ applies the NEQ predicate on the "buyer_need_id" field.
func BuyerNeedIDNEQ(v string) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldNEQ(FieldBuyerNeedID, v))
}

// BuyerNeedIDIn applies the In predicate on the "buyer_need_id" field.
func BuyerNeedIDIn(vs ...string) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldIn(FieldBuyerNeedID, vs...))
}

// BuyerNeedIDNotIn applies the NotIn predicate on the "buyer_need_id" field.
func BuyerNeedIDNotIn(vs ...string) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldNotIn(FieldBuyerNeedID, vs...))
}

// BuyerNeedIDGT applies the GT predicate on the "buyer_need_id" field.
func BuyerNeedIDGT(v string) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldGT(FieldBuyerNeedID, v))
}

// BuyerNeedIDGTE applies the GTE predicate on the "buyer_need_id" field.
func BuyerNeedIDGTE(v string) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldGTE(FieldBuyerNeedID, v))
}

// BuyerNeedIDLT applies the LT predicate on the "buyer_need_id" field.
func BuyerNeedIDLT(v string) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldLT(FieldBuyerNeedID, v))
}

// BuyerNeedIDLTE applies the LTE predicate on the "buyer_need_id" field.
func BuyerNeedIDLTE(v string) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldLTE(FieldBuyerNeedID, v))
}

// BuyerNeedIDContains applies the Contains predicate on the "buyer_need_id" field.
func BuyerNeedIDContains(v string) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldContains(FieldBuyerNeedID, v))
}

// BuyerNeedIDHasPrefix applies the HasPrefix predicate on the "buyer_need_id" field.
func BuyerNeedIDHasPrefix(v string) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldHasPrefix(FieldBuyerNeedID, v))
}

// BuyerNeedIDHasSuffix applies the HasSuffix predicate on the "buyer_need_id" field.
func BuyerNeedIDHasSuffix(v string) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldHasSuffix(FieldBuyerNeedID, v))
}

// BuyerNeedIDEqualFold applies the EqualFold predicate on the "buyer_need_id" field.
func BuyerNeedIDEqualFold(v string) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldEqualFold(FieldBuyerNeedID, v))
}

// BuyerNeedIDContainsFold applies the ContainsFold predicate on the "buyer_need_id" field.
func BuyerNeedIDContainsFold(v string) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldContainsFold(FieldBuyerNeedID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldNotIn(FieldStatus, vs...))
}

// SuggestedRateEQ applies the EQ predicate on the "suggested_rate" field.
func SuggestedRateEQ(v float64) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldEQ(FieldSuggestedRate, v))
}

// SuggestedRateNEQ applies the NEQ predicate on the "suggested_rate" field.
func SuggestedRateNEQ(v float64) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldNEQ(FieldSuggestedRate, v))
}

// SuggestedRateIn applies the In predicate on the "suggested_rate" field.
func SuggestedRateIn(vs ...float64) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldIn(FieldSuggestedRate, vs...))
}

// SuggestedRateNotIn applies the NotIn predicate on the "suggested_rate" field.
func SuggestedRateNotIn(vs ...float64) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldNotIn(FieldSuggestedRate, vs...))
}

// SuggestedRateGT applies the GT predicate on the "suggested_rate" field.
func SuggestedRateGT(v float64) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldGT(FieldSuggestedRate, v))
}

// SuggestedRateGTE applies the GTE predicate on the "suggested_rate" field.
func SuggestedRateGTE(v float64) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldGTE(FieldSuggestedRate, v))
}

// SuggestedRateLT applies the LT predicate on the "suggested_rate" field.
func SuggestedRateLT(v float64) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldLT(FieldSuggestedRate, v))
}

// SuggestedRateLTE applies the LTE predicate on the "suggested_rate" field.
func SuggestedRateLTE(v float64) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldLTE(FieldSuggestedRate, v))
}

// SuggestedRateIsNil applies the IsNil predicate on the "suggested_rate" field.
func SuggestedRateIsNil() predicate.DLAToken {
	return predicate.DLAToken(sql.FieldIsNull(FieldSuggestedRate))
}

// SuggestedRateNotNil applies the NotNil predicate on the "suggested_rate" field.
func SuggestedRateNotNil() predicate.DLAToken {
	return predicate.DLAToken(sql.FieldNotNull(FieldSuggestedRate))
}

// FinalRateEQ applies the EQ predicate on the "final_rate" field.
func FinalRateEQ(v float64) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldEQ(FieldFinalRate, v))
}

// FinalRateNEQ applies the NEQ predicate on the "final_rate" field.
func FinalRateNEQ(v float64) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldNEQ(FieldFinalRate, v))
}

// FinalRateIn applies the In predicate on the "final_rate" field.
func FinalRateIn(vs ...float64) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldIn(FieldFinalRate, vs...))
}

// FinalRateNotIn applies the NotIn predicate on the "final_rate" field.
func FinalRateNotIn(vs ...float64) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldNotIn(FieldFinalRate, vs...))
}

// FinalRateGT applies the GT predicate on the "final_rate" field.
func FinalRateGT(v float64) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldGT(FieldFinalRate, v))
}

// FinalRateGTE applies the GTE predicate on the "final_rate" field.
func FinalRateGTE(v float64) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldGTE(FieldFinalRate, v))
}

// FinalRateLT applies the LT predicate on the "final_rate" field.
func FinalRateLT(v float64) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldLT(FieldFinalRate, v))
}

// FinalRateLTE applies the LTE predicate on the "final_rate" field.
func FinalRateLTE(v float64) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldLTE(FieldFinalRate, v))
}

// FinalRateIsNil applies the IsNil predicate on the "final_rate" field.
func FinalRateIsNil() predicate.DLAToken {
	return predicate.DLAToken(sql.FieldIsNull(FieldFinalRate))
}

// FinalRateNotNil applies the NotNil predicate on the "final_rate" field.
func FinalRateNotNil() predicate.DLAToken {
	return predicate.DLAToken(sql.FieldNotNull(FieldFinalRate))
}

// ProposedSqftEQ applies the EQ predicate on the "proposed_sqft" field.
func ProposedSqftEQ(v int) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldEQ(FieldProposedSqft, v))
}

// ProposedSqftNEQ applies the NEQ predicate on the "proposed_sqft" field.
func ProposedSqftNEQ(v int) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldNEQ(FieldProposedSqft, v))
}

// ProposedSqftIn applies the In predicate on the "proposed_sqft" field.
func ProposedSqftIn(vs ...int) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldIn(FieldProposedSqft, vs...))
}

// ProposedSqftNotIn applies the NotIn predicate on the "proposed_sqft" field.
func ProposedSqftNotIn(vs ...int) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldNotIn(FieldProposedSqft, vs...))
}

// ProposedSqftGT applies the GT predicate on the "proposed_sqft" field.
func ProposedSqftGT(v int) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldGT(FieldProposedSqft, v))
}

// ProposedSqftGTE applies the GTE predicate on the "proposed_sqft" field.
func ProposedSqftGTE(v int) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldGTE(FieldProposedSqft, v))
}

// ProposedSqftLT applies the LT predicate on the "proposed_sqft" field.
func ProposedSqftLT(v int) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldLT(FieldProposedSqft, v))
}

// ProposedSqftLTE applies the LTE predicate on the "proposed_sqft" field.
func ProposedSqftLTE(v int) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldLTE(FieldProposedSqft, v))
}

// ExpiresAtEQ applies the EQ predicate on the "expires_at" field.
func ExpiresAtEQ(v time.Time) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldEQ(FieldExpiresAt, v))
}

// ExpiresAtNEQ applies the NEQ predicate on the "expires_at" field.
func ExpiresAtNEQ(v time.Time) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldNEQ(FieldExpiresAt, v))
}

// ExpiresAtIn applies the In predicate on the "expires_at" field.
func ExpiresAtIn(vs ...time.Time) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldIn(FieldExpiresAt, vs...))
}

// ExpiresAtNotIn applies the NotIn predicate on the "expires_at" field.
func ExpiresAtNotIn(vs ...time.Time) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldNotIn(FieldExpiresAt, vs...))
}

// ExpiresAtGT applies the GT predicate on the "expires_at" field.
func ExpiresAtGT(v time.Time) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldGT(FieldExpiresAt, v))
}

// ExpiresAtGTE applies the GTE predicate on the "expires_at" field.
func ExpiresAtGTE(v time.Time) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldGTE(FieldExpiresAt, v))
}

// ExpiresAtLT applies the LT predicate on the "expires_at" field.
func ExpiresAtLT(v time.Time) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldLT(FieldExpiresAt, v))
}

// ExpiresAtLTE applies the LTE predicate on the "expires_at" field.
func ExpiresAtLTE(v time.Time) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldLTE(FieldExpiresAt, v))
}

// ConfirmedAtEQ applies the EQ predicate on the "confirmed_at" field.
func ConfirmedAtEQ(v time.Time) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldEQ(FieldConfirmedAt, v))
}

// ConfirmedAtNEQ applies the NEQ predicate on the "confirmed_at" field.
func ConfirmedAtNEQ(v time.Time) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldNEQ(FieldConfirmedAt, v))
}

// ConfirmedAtIn applies the In predicate on the "confirmed_at" field.
func ConfirmedAtIn(vs ...time.Time) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldIn(FieldConfirmedAt, vs...))
}

// ConfirmedAtNotIn applies the NotIn predicate on the "confirmed_at" field.
func ConfirmedAtNotIn(vs ...time.Time) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldNotIn(FieldConfirmedAt, vs...))
}

// ConfirmedAtGT applies the GT predicate on the "confirmed_at" field.
func ConfirmedAtGT(v time.Time) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldGT(FieldConfirmedAt, v))
}

// ConfirmedAtGTE applies the GTE predicate on the "confirmed_at" field.
func ConfirmedAtGTE(v time.Time) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldGTE(FieldConfirmedAt, v))
}

// ConfirmedAtLT applies the LT predicate on the "confirmed_at" field.
func ConfirmedAtLT(v time.Time) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldLT(FieldConfirmedAt, v))
}

// ConfirmedAtLTE applies the LTE predicate on the "confirmed_at" field.
func ConfirmedAtLTE(v time.Time) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldLTE(FieldConfirmedAt, v))
}

// ConfirmedAtIsNil applies the IsNil predicate on the "confirmed_at" field.
func ConfirmedAtIsNil() predicate.DLAToken {
	return predicate.DLAToken(sql.FieldIsNull(FieldConfirmedAt))
}

// ConfirmedAtNotNil applies the NotNil predicate on the "confirmed_at" field.
func ConfirmedAtNotNil() predicate.DLAToken {
	return predicate.DLAToken(sql.FieldNotNull(FieldConfirmedAt))
}

// RespondedAtEQ applies the EQ predicate on the "responded_at" field.
func RespondedAtEQ(v time.Time) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldEQ(FieldRespondedAt, v))
}

// RespondedAtNEQ applies the NEQ predicate on the "responded_at" field.
func RespondedAtNEQ(v time.Time) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldNEQ(FieldRespondedAt, v))
}

// RespondedAtIn applies the In predicate on the "responded_at" field.
func RespondedAtIn(vs ...time.Time) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldIn(FieldRespondedAt, vs...))
}

// RespondedAtNotIn applies the NotIn predicate on the "responded_at" field.
func RespondedAtNotIn(vs ...time.Time) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldNotIn(FieldRespondedAt, vs...))
}

// RespondedAtGT applies the GT predicate on the "responded_at" field.
func RespondedAtGT(v time.Time) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldGT(FieldRespondedAt, v))
}

// RespondedAtGTE applies the GTE predicate on the "responded_at" field.
func RespondedAtGTE(v time.Time) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldGTE(FieldRespondedAt, v))
}

// RespondedAtLT applies the LT predicate on the "responded_at" field.
func RespondedAtLT(v time.Time) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldLT(FieldRespondedAt, v))
}

// RespondedAtLTE applies the LTE predicate on the "responded_at" field.
func RespondedAtLTE(v time.Time) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldLTE(FieldRespondedAt, v))
}

// RespondedAtIsNil applies the IsNil predicate on the "responded_at" field.
func RespondedAtIsNil() predicate.DLAToken {
	return predicate.DLAToken(sql.FieldIsNull(FieldRespondedAt))
}

// RespondedAtNotNil applies the NotNil predicate on the "responded_at" field.
func RespondedAtNotNil() predicate.DLAToken {
	return predicate.DLAToken(sql.FieldNotNull(FieldRespondedAt))
}

// OutcomeNoteEQ applies the EQ predicate on the "outcome_note" field.
func OutcomeNoteEQ(v string) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldEQ(FieldOutcomeNote, v))
}

// OutcomeNoteNEQ applies the NEQ predicate on the "outcome_note" field.
func OutcomeNoteNEQ(v string) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldNEQ(FieldOutcomeNote, v))
}

// OutcomeNoteIn applies the In predicate on the "outcome_note" field.
func OutcomeNoteIn(vs ...string) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldIn(FieldOutcomeNote, vs...))
}

// OutcomeNoteNotIn applies the NotIn predicate on the "outcome_note" field.
func OutcomeNoteNotIn(vs ...string) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldNotIn(FieldOutcomeNote, vs...))
}

// OutcomeNoteGT applies the GT predicate on the "outcome_note" field.
func OutcomeNoteGT(v string) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldGT(FieldOutcomeNote, v))
}

// OutcomeNoteGTE applies the GTE predicate on the "outcome_note" field.
func OutcomeNoteGTE(v string) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldGTE(FieldOutcomeNote, v))
}

// OutcomeNoteLT applies the LT predicate on the "outcome_note" field.
func OutcomeNoteLT(v string) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldLT(FieldOutcomeNote, v))
}

// OutcomeNoteLTE applies the LTE predicate on the "outcome_note" field.
func OutcomeNoteLTE(v string) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldLTE(FieldOutcomeNote, v))
}

// OutcomeNoteContains applies the Contains predicate on the "outcome_note" field.
func OutcomeNoteContains(v string) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldContains(FieldOutcomeNote, v))
}

// OutcomeNoteHasPrefix applies the HasPrefix predicate on the "outcome_note" field.
func OutcomeNoteHasPrefix(v string) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldHasPrefix(FieldOutcomeNote, v))
}

// OutcomeNoteHasSuffix applies the HasSuffix predicate on the "outcome_note" field.
func OutcomeNoteHasSuffix(v string) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldHasSuffix(FieldOutcomeNote, v))
}

// OutcomeNoteIsNil applies the IsNil predicate on the "outcome_note" field.
func OutcomeNoteIsNil() predicate.DLAToken {
	return predicate.DLAToken(sql.FieldIsNull(FieldOutcomeNote))
}

// OutcomeNoteNotNil applies the NotNil predicate on the "outcome_note" field.
func OutcomeNoteNotNil() predicate.DLAToken {
	return predicate.DLAToken(sql.FieldNotNull(FieldOutcomeNote))
}

// OutcomeNoteEqualFold applies the EqualFold predicate on the "outcome_note" field.
func OutcomeNoteEqualFold(v string) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldEqualFold(FieldOutcomeNote, v))
}

// OutcomeNoteContainsFold applies the ContainsFold predicate on the "outcome_note" field.
func OutcomeNoteContainsFold(v string) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldContainsFold(FieldOutcomeNote, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.DLAToken {
	return predicate.DLAToken(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasWarehouse applies the HasEdge predicate on the "warehouse" edge.
func HasWarehouse() predicate.DLAToken {
	return predicate.DLAToken(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, WarehouseTable, WarehouseColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWarehouseWith applies the HasEdge predicate on the "warehouse" edge with a given conditions (other predicates).
func HasWarehouseWith(preds ...predicate.Warehouse) predicate.DLAToken {
	return predicate.DLAToken(func(s *sql.Selector) {
		step := newWarehouseStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasBuyerNeed applies the HasEdge predicate on the "buyer_need" edge.
func HasBuyerNeed() predicate.DLAToken {
	return predicate.DLAToken(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, BuyerNeedTable, BuyerNeedColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBuyerNeedWith applies the HasEdge predicate on the "buyer_need" edge with a given conditions (other predicates).
func HasBuyerNeedWith(preds ...predicate.BuyerNeed) predicate.DLAToken {
	return predicate.DLAToken(func(s *sql.Selector) {
		step := newBuyerNeedStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DLAToken) predicate.DLAToken {
	return predicate.DLAToken(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DLAToken) predicate.DLAToken {
	return predicate.DLAToken(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DLAToken) predicate.DLAToken {
	return predicate.DLAToken(sql.NotPredicates(p))
}
