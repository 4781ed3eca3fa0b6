// Code generated by ent, DO NOT EDIT.

package searchsession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/warehouse-exchange/wex/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldContainsFold(FieldID, id))
}

// Token applies equality check predicate on the "token" field. It's identical to TokenEQ.
func Token(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldEQ(FieldToken, v))
}

// Phone applies equality check predicate on the "phone" field. It's identical to PhoneEQ.
func Phone(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldEQ(FieldPhone, v))
}

// BuyerNeedID applies equality check predicate on the "buyer_need_id" field. It's identical to BuyerNeedIDEQ.
func BuyerNeedID(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldEQ(FieldBuyerNeedID, v))
}

// ResultCount applies equality check predicate on the "result_count" field. It's identical to ResultCountEQ.
func ResultCount(v int) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldEQ(FieldResultCount, v))
}

// DlaTriggered applies equality check predicate on the "dla_triggered" field. It's identical to DlaTriggeredEQ.
func DlaTriggered(v bool) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldEQ(FieldDlaTriggered, v))
}

// ExpiresAt applies equality check predicate on the "expires_at" field. It's identical to ExpiresAtEQ.
func ExpiresAt(v time.Time) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldEQ(FieldExpiresAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldEQ(FieldCreatedAt, v))
}

// TokenEQ applies the EQ predicate on the "token" field.
func TokenEQ(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldEQ(FieldToken, v))
}

// TokenNEQ applies the NEQ predicate on the "token" field.
func TokenNEQ(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldNEQ(FieldToken, v))
}

// TokenIn applies the In predicate on the "token" field.
func TokenIn(vs ...string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldIn(FieldToken, vs...))
}

// TokenNotIn applies the NotIn predicate on the "token" field.
func TokenNotIn(vs ...string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldNotIn(FieldToken, vs...))
}

// TokenGT applies the GT predicate on the "token" field.
func TokenGT(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldGT(FieldToken, v))
}

// TokenGTE applies the GTE predicate on the "token" field.
func TokenGTE(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldGTE(FieldToken, v))
}

// TokenLT applies the LT predicate on the "token" field.
func TokenLT(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldLT(FieldToken, v))
}

// TokenLTE applies the LTE predicate on the "token" field.
func TokenLTE(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldLTE(FieldToken, v))
}

// TokenContains applies the Contains predicate on the "token" field.
func TokenContains(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldContains(FieldToken, v))
}

// TokenHasPrefix applies the HasPrefix predicate on the "token" field.
func TokenHasPrefix(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldHasPrefix(FieldToken, v))
}

// TokenHasSuffix applies the HasSuffix predicate on the "token" field.
func TokenHasSuffix(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldHasSuffix(FieldToken, v))
}

// TokenEqualFold applies the EqualFold predicate on the "token" field.
func TokenEqualFold(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldEqualFold(FieldToken, v))
}

// TokenContainsFold applies the ContainsFold predicate on the "token" field.
func TokenContainsFold(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldContainsFold(FieldToken, v))
}

// PhoneEQ applies the EQ predicate on the "phone" field.
func PhoneEQ(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldEQ(FieldPhone, v))
}

// PhoneNEQ applies the NEQ predicate on the "phone" field.
func PhoneNEQ(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldNEQ(FieldPhone, v))
}

// PhoneIn applies the In predicate on the "phone" field.
func PhoneIn(vs ...string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldIn(FieldPhone, vs...))
}

// PhoneNotIn applies the NotIn predicate on the "phone" field.
func PhoneNotIn(vs ...string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldNotIn(FieldPhone, vs...))
}

// PhoneGT applies the GT predicate on the "phone" field.
func PhoneGT(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldGT(FieldPhone, v))
}

// PhoneGTE applies the GTE predicate on the "phone" field.
func PhoneGTE(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldGTE(FieldPhone, v))
}

// PhoneLT applies the LT predicate on the "phone" field.
func PhoneLT(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldLT(FieldPhone, v))
}

// PhoneLTE applies the LTE predicate on the "phone" field.
func PhoneLTE(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldLTE(FieldPhone, v))
}

// PhoneContains applies the Contains predicate on the "phone" field.
func PhoneContains(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldContains(FieldPhone, v))
}

// PhoneHasPrefix applies the HasPrefix predicate on the "phone" field.
func PhoneHasPrefix(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldHasPrefix(FieldPhone, v))
}

// PhoneHasSuffix applies the HasSuffix predicate on the "phone" field.
func PhoneHasSuffix(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldHasSuffix(FieldPhone, v))
}

// PhoneIsNil applies the IsNil predicate on the "phone" field.
func PhoneIsNil() predicate.SearchSession {
	return predicate.SearchSession(sql.FieldIsNull(FieldPhone))
}

// PhoneNotNil applies the NotNil predicate on the "phone" field.
func PhoneNotNil() predicate.SearchSession {
	return predicate.SearchSession(sql.FieldNotNull(FieldPhone))
}

// PhoneEqualFold applies the EqualFold predicate on the "phone" field.
func PhoneEqualFold(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldEqualFold(FieldPhone, v))
}

// PhoneContainsFold applies the ContainsFold predicate on the "phone" field.
func PhoneContainsFold(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldContainsFold(FieldPhone, v))
}

// BuyerNeedIDEQ applies the EQ predicate on the "buyer_need_id" field.
func BuyerNeedIDEQ(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldEQ(FieldBuyerNeedID, v))
}

// BuyerNeedIDNEQ applies the NEQ predicate on the "buyer_need_id" field.
func BuyerNeedIDNEQ(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldNEQ(FieldBuyerNeedID, v))
}

// BuyerNeedIDIn applies the In predicate on the "buyer_need_id" field.
func BuyerNeedIDIn(vs ...string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldIn(FieldBuyerNeedID, vs...))
}

// BuyerNeedIDNotIn applies the NotIn predicate on the "buyer_need_id" field.
func BuyerNeedIDNotIn(vs ...string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldNotIn(FieldBuyerNeedID, vs...))
}

// BuyerNeedIDGT applies the GT predicate on the "buyer_need_id" field.
func BuyerNeedIDGT(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldGT(FieldBuyerNeedID, v))
}

// BuyerNeedIDGTE applies the GTE predicate on the "buyer_need_id" field.
func BuyerNeedIDGTE(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldGTE(FieldBuyerNeedID, v))
}

// BuyerNeedIDLT applies the LT predicate on the "buyer_need_id" field.
func BuyerNeedIDLT(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldLT(FieldBuyerNeedID, v))
}

// BuyerNeedIDLTE applies the LTE predicate on the "buyer_need_id" field.
func BuyerNeedIDLTE(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldLTE(FieldBuyerNeedID, v))
}

// BuyerNeedIDContains applies the Contains predicate on the "buyer_need_id" field.
func BuyerNeedIDContains(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldContains(FieldBuyerNeedID, v))
}

// BuyerNeedIDHasPrefix applies the HasPrefix predicate on the "buyer_need_id" field.
func BuyerNeedIDHasPrefix(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldHasPrefix(FieldBuyerNeedID, v))
}

// BuyerNeedIDHasSuffix applies the HasSuffix predicate on the "buyer_need_id" field.
func BuyerNeedIDHasSuffix(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldHasSuffix(FieldBuyerNeedID, v))
}

// BuyerNeedIDIsNil applies the IsNil predicate on the "buyer_need_id" field.
func BuyerNeedIDIsNil() predicate.SearchSession {
	return predicate.SearchSession(sql.FieldIsNull(FieldBuyerNeedID))
}

// BuyerNeedIDNotNil applies the NotNil predicate on the "buyer_need_id" field.
func BuyerNeedIDNotNil() predicate.SearchSession {
	return predicate.SearchSession(sql.FieldNotNull(FieldBuyerNeedID))
}

// BuyerNeedIDEqualFold applies the EqualFold predicate on the "buyer_need_id" field.
func BuyerNeedIDEqualFold(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldEqualFold(FieldBuyerNeedID, v))
}

// BuyerNeedIDContainsFold applies the ContainsFold predicate on the "buyer_need_id" field.
func BuyerNeedIDContainsFold(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldContainsFold(FieldBuyerNeedID, v))
}

// ResultMatchesIsNil applies the IsNil predicate on the "result_matches" field.
func ResultMatchesIsNil() predicate.SearchSession {
	return predicate.SearchSession(sql.FieldIsNull(FieldResultMatches))
}

// ResultMatchesNotNil applies the NotNil predicate on the "result_matches" field.
func ResultMatchesNotNil() predicate.SearchSession {
	return predicate.SearchSession(sql.FieldNotNull(FieldResultMatches))
}

// ResultCountEQ applies the EQ predicate on the "result_count" field.
func ResultCountEQ(v int) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldEQ(FieldResultCount, v))
}

// ResultCountNEQ applies the NEQ predicate on the "result_count" field.
func ResultCountNEQ(v int) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldNEQ(FieldResultCount, v))
}

// ResultCountIn applies the In predicate on the "result_count" field.
func ResultCountIn(vs ...int) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldIn(FieldResultCount, vs...))
}

// ResultCountNotIn applies the NotIn predicate on the "result_count" field.
func ResultCountNotIn(vs ...int) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldNotIn(FieldResultCount, vs...))
}

// ResultCountGT applies the GT predicate on the "result_count" field.
func ResultCountGT(v int) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldGT(FieldResultCount, v))
}

// ResultCountGTE applies the GTE predicate on the "result_count" field.
func ResultCountGTE(v int) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldGTE(FieldResultCount, v))
}

// ResultCountLT applies the LT predicate on the "result_count" field.
func ResultCountLT(v int) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldLT(FieldResultCount, v))
}

// ResultCountLTE applies the LTE predicate on the "result_count" field.
func ResultCountLTE(v int) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldLTE(FieldResultCount, v))
}

// DlaTriggeredEQ applies the EQ predicate on the "dla_triggered" field.
func DlaTriggeredEQ(v bool) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldEQ(FieldDlaTriggered, v))
}

// DlaTriggeredNEQ applies the NEQ predicate on the "dla_triggered" field.
func DlaTriggeredNEQ(v bool) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldNEQ(FieldDlaTriggered, v))
}

// ExpiresAtEQ applies the EQ predicate on the "expires_at" field.
func ExpiresAtEQ(v time.Time) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldEQ(FieldExpiresAt, v))
}

// ExpiresAtNEQ applies the NEQ predicate on the "expires_at" field.
func ExpiresAtNEQ(v time.Time) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldNEQ(FieldExpiresAt, v))
}

// ExpiresAtIn applies the In predicate on the "expires_at" field.
func ExpiresAtIn(vs ...time.Time) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldIn(FieldExpiresAt, vs...))
}

// ExpiresAtNotIn applies the NotIn predicate on the "expires_at" field.
func ExpiresAtNotIn(vs ...time.Time) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldNotIn(FieldExpiresAt, vs...))
}

// ExpiresAtGT applies the GT predicate on the "expires_at" field.
func ExpiresAtGT(v time.Time) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldGT(FieldExpiresAt, v))
}

// ExpiresAtGTE applies the GTE predicate on the "expires_at" field.
func ExpiresAtGTE(v time.Time) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldGTE(FieldExpiresAt, v))
}

// ExpiresAtLT applies the LT predicate on the "expires_at" field.
func ExpiresAtLT(v time.Time) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldLT(FieldExpiresAt, v))
}

// ExpiresAtLTE applies the LTE predicate on the "expires_at" field.
func ExpiresAtLTE(v time.Time) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldLTE(FieldExpiresAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SearchSession) predicate.SearchSession {
	return predicate.SearchSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SearchSession) predicate.SearchSession {
	return predicate.SearchSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SearchSession) predicate.SearchSession {
	return predicate.SearchSession(sql.NotPredicates(p))
}
