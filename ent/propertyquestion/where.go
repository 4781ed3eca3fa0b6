// Code generated by ent, DO NOT EDIT.

package propertyquestion

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/warehouse-exchange/wex/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldContainsFold(FieldID, id))
}

// WarehouseID applies equality check predicate on the "warehouse_id" field. It's identical to WarehouseIDEQ.
func WarehouseID(v string) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldEQ(FieldWarehouseID, v))
}

// EngagementID applies equality check predicate on the "engagement_id" field. It's identical to EngagementIDEQ.
func EngagementID(v string) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldEQ(FieldEngagementID, v))
}

// AskedByPhone applies equality check predicate on the "asked_by_phone" field. It's identical to AskedByPhoneEQ.
func AskedByPhone(v string) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldEQ(FieldAskedByPhone, v))
}

// AskedByUserID applies equality check predicate on the "asked_by_user_id" field. It's identical to AskedByUserIDEQ.
func AskedByUserID(v string) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldEQ(FieldAskedByUserID, v))
}

// QuestionText applies equality check predicate on the "question_text" field. It's identical to QuestionTextEQ.
func QuestionText(v string) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldEQ(FieldQuestionText, v))
}

// AnswerText applies equality check predicate on the "answer_text" field. It's identical to AnswerTextEQ.
func AnswerText(v string) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldEQ(FieldAnswerText, v))
}

// RoutedAt applies equality check predicate on the "routed_at" field. It's identical to RoutedAtEQ.
func RoutedAt(v time.Time) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldEQ(FieldRoutedAt, v))
}

// AnsweredAt applies equality check predicate on the "answered_at" field. It's identical to AnsweredAtEQ.
func AnsweredAt(v time.Time) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldEQ(FieldAnsweredAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldEQ(FieldUpdatedAt, v))
}

// WarehouseIDEQ applies the EQ predicate on the "warehouse_id" field.
func WarehouseIDEQ(v string) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldEQ(FieldWarehouseID, v))
}

// WarehouseIDNEQ applies the NEQ predicate on the "warehouse_id" field.
func WarehouseIDNEQ(v string) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldNEQ(FieldWarehouseID, v))
}

// WarehouseIDIn applies the In predicate on the "warehouse_id" field.
func WarehouseIDIn(vs ...string) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldIn(FieldWarehouseID, vs...))
}

// WarehouseIDNotIn applies the NotIn predicate on the "warehouse_id" field.
func WarehouseIDNotIn(vs ...string) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldNotIn(FieldWarehouseID, vs...))
}

// WarehouseIDGT applies the GT predicate on the "warehouse_id" field.
func WarehouseIDGT(v string) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldGT(FieldWarehouseID, v))
}

// WarehouseIDGTE applies the GTE predicate on the "warehouse_id" field.
func WarehouseIDGTE(v string) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldGTE(FieldWarehouseID, v))
}

// WarehouseIDLT applies the LT predicate on the "warehouse_id" field.
func WarehouseIDLT(v string) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldLT(FieldWarehouseID, v))
}

// WarehouseIDLTE applies the LTE predicate on the "warehouse_id" field.
func WarehouseIDLTE(v string) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldLTE(FieldWarehouseID, v))
}

// WarehouseIDContains applies the Contains predicate on the "warehouse_id" field.
func WarehouseIDContains(v string) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldContains(FieldWarehouseID, v))
}

// WarehouseIDHasPrefix applies the HasPrefix predicate on the "warehouse_id" field.
func WarehouseIDHasPrefix(v string) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldHasPrefix(FieldWarehouseID, v))
}

// WarehouseIDHasSuffix applies the HasSuffix predicate on the "warehouse_id" field.
func WarehouseIDHasSuffix(v string) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldHasSuffix(FieldWarehouseID, v))
}

// WarehouseIDEqualFold applies the EqualFold predicate on the "warehouse_id" field.
func WarehouseIDEqualFold(v string) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldEqualFold(FieldWarehouseID, v))
}

// WarehouseIDContainsFold applies the ContainsFold predicate on the "warehouse_id" field.
func WarehouseIDContainsFold(v string) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldContainsFold(FieldWarehouseID, v))
}

// EngagementIDEQ applies the EQ predicate on the "engagement_id" field.
func EngagementIDEQ(v string) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldEQ(FieldEngagementID, v))
}

// EngagementIDNEQ applies the NEQ predicate on the "engagement_id" field.
func EngagementIDNEQ(v string) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldNEQ(FieldEngagementID, v))
}

// EngagementIDIn applies the In predicate on the "engagement_id" field.
func EngagementIDIn(vs ...string) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldIn(FieldEngagementID, vs...))
}

// EngagementIDNotIn applies the NotIn predicate on the "engagement_id" field.
func EngagementIDNotIn(vs ...string) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldNotIn(FieldEngagementID, vs...))
}

// EngagementIDGT applies the GT predicate on the "engagement_id" field.
func EngagementIDGT(v string) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldGT(FieldEngagementID, v))
}

// EngagementIDGTE applies the GTE predicate on the "engagement_id" field.
func EngagementIDGTE(v string) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldGTE(FieldEngagementID, v))
}

// EngagementIDLT applies the LT predicate on the "engagement_id" field.
func EngagementIDLT(v string) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldLT(FieldEngagementID, v))
}

// EngagementIDLTE applies the LTE predicate on the "engagement_id" field.
func EngagementIDLTE(v string) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldLTE(FieldEngagementID, v))
}

// EngagementIDContains applies the Contains predicate on the "engagement_id" field.
func EngagementIDContains(v string) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldContains(FieldEngagementID, v))
}

// EngagementIDHasPrefix applies the HasPrefix predicate on the "engagement_id" field.
func EngagementIDHasPrefix(v string) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldHasPrefix(FieldEngagementID, v))
}

// EngagementIDHasSuffix applies the HasSuffix predicate on the "engagement_id" field.
func EngagementIDHasSuffix(v string) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldHasSuffix(FieldEngagementID, v))
}

// EngagementIDIsNil applies the IsNil predicate on the "engagement_id" field.
func EngagementIDIsNil() predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldIsNull(FieldEngagementID))
}

// EngagementIDNotNil applies the NotNil predicate on the "engagement_id" field.
func EngagementIDNotNil() predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldNotNull(FieldEngagementID))
}

// EngagementIDEqualFold applies the EqualFold predicate on the "engagement_id" field.
func EngagementIDEqualFold(v string) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldEqualFold(FieldEngagementID, v))
}

// EngagementIDContainsFold applies the ContainsFold predicate on the "engagement_id" field.
func EngagementIDContainsFold(v string) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldContainsFold(FieldEngagementID, v))
}

// AskedByPhoneEQ applies the EQ predicate on the "asked_by_phone" field.
func AskedByPhoneEQ(v string) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldEQ(FieldAskedByPhone, v))
}

// AskedByPhoneNEQ applies the NEQ predicate on the "asked_by_phone" field.
func AskedByPhoneNEQ(v string) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldNEQ(FieldAskedByPhone, v))
}

// AskedByPhoneIn applies the In predicate on the "asked_by_phone" field.
func AskedByPhoneIn(vs ...string) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldIn(FieldAskedByPhone, vs...))
}

// AskedByPhoneNotIn applies the NotIn predicate on the "asked_by_phone" field.
func AskedByPhoneNotIn(vs ...string) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldNotIn(FieldAskedByPhone, vs...))
}

// AskedByPhoneGT applies the GT predicate on the "asked_by_phone" field.
func AskedByPhoneGT(v string) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldGT(FieldAskedByPhone, v))
}

// AskedByPhoneGTE applies the GTE predicate on the "asked_by_phone" field.
func AskedByPhoneGTE(v string) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldGTE(FieldAskedByPhone, v))
}

// AskedByPhoneLT applies the LT predicate on the "asked_by_phone" field.
func AskedByPhoneLT(v string) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldLT(FieldAskedByPhone, v))
}

// AskedByPhoneLTE applies the LTE predicate on the "asked_by_phone" field.
func AskedByPhoneLTE(v string) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldLTE(FieldAskedByPhone, v))
}

// AskedByPhoneContains applies the Contains predicate on the "asked_by_phone" field.
func AskedByPhoneContains(v string) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldContains(FieldAskedByPhone, v))
}

// AskedByPhoneHasPrefix applies the HasPrefix predicate on the "asked_by_phone" field.
func AskedByPhoneHasPrefix(v string) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldHasPrefix(FieldAskedByPhone, v))
}

// AskedByPhoneHasSuffix applies the HasSuffix predicate on the "asked_by_phone" field.
func AskedByPhoneHasSuffix(v string) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldHasSuffix(FieldAskedByPhone, v))
}

// AskedByPhoneIsNil applies the IsNil predicate on the "asked_by_phone" field.
func AskedByPhoneIsNil() predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldIsNull(FieldAskedByPhone))
}

// AskedByPhoneNotNil applies the NotNil predicate on the "asked_by_phone" field.
func AskedByPhoneNotNil() predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldNotNull(FieldAskedByPhone))
}

// AskedByPhoneEqualFold applies the EqualFold predicate on the "asked_by_phone" field.
func AskedByPhoneEqualFold(v string) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldEqualFold(FieldAskedByPhone, v))
}

// AskedByPhoneContainsFold applies the ContainsFold predicate on the "asked_by_phone" field.
func AskedByPhoneContainsFold(v string) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldContainsFold(FieldAskedByPhone, v))
}

// AskedByUserIDEQ applies the EQ predicate on the "asked_by_user_id" field.
func AskedByUserIDEQ(v string) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldEQ(FieldAskedByUserID, v))
}

// AskedByUserIDNEQ applies the NEQ predicate on the "asked_by_user_id" field.
func AskedByUserIDNEQ(v string) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldNEQ(FieldAskedByUserID, v))
}

// AskedByUserIDIn applies the In predicate on the "asked_by_user_id" field.
func AskedByUserIDIn(vs ...string) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldIn(FieldAskedByUserID, vs...))
}

// AskedByUserIDNotIn applies the NotIn predicate on the "asked_by_user_id" field.
func AskedByUserIDNotIn(vs ...string) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldNotIn(FieldAskedByUserID, vs...))
}

// AskedByUserIDGT applies the GT predicate on the "asked_by_user_id" field.
func AskedByUserIDGT(v string) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldGT(FieldAskedByUserID, v))
}

// AskedByUserIDGTE applies the GTE predicate on the "asked_by_user_id" field.
func AskedByUserIDGTE(v string) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldGTE(FieldAskedByUserID, v))
}

// AskedByUserIDLT applies the LT predicate on the "asked_by_user_id" field.
func AskedByUserIDLT(v string) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldLT(FieldAskedByUserID, v))
}

// AskedByUserIDLTE applies the LTE predicate on the "asked_by_user_id" field.
func AskedByUserIDLTE(v string) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldLTE(FieldAskedByUserID, v))
}

// AskedByUserIDContains applies the Contains predicate on the "asked_by_user_id" field.
func AskedByUserIDContains(v string) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldContains(FieldAskedByUserID, v))
}

// AskedByUserIDHasPrefix applies the HasPrefix predicate on the "asked_by_user_id" field.
func AskedByUserIDHasPrefix(v string) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldHasPrefix(FieldAskedByUserID, v))
}

// AskedByUserIDHasSuffix applies the HasSuffix predicate on the "asked_by_user_id" field.
func AskedByUserIDHasSuffix(v string) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldHasSuffix(FieldAskedByUserID, v))
}

// AskedByUserIDIsNil applies the IsNil predicate on the "asked_by_user_id" field.
func AskedByUserIDIsNil() predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldIsNull(FieldAskedByUserID))
}

// AskedByUserIDNotNil applies the NotNil predicate on the "asked_by_user_id" field.
func AskedByUserIDNotNil() predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldNotNull(FieldAskedByUserID))
}

// AskedByUserIDEqualFold applies the EqualFold predicate on the "asked_by_user_id" field.
func AskedByUserIDEqualFold(v string) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldEqualFold(FieldAskedByUserID, v))
}

// AskedByUserIDContainsFold applies the ContainsFold predicate on the "asked_by_user_id" field.
func AskedByUserIDContainsFold(v string) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldContainsFold(FieldAskedByUserID, v))
}

// QuestionTextEQ applies the EQ predicate on the "question_text" field.
func QuestionTextEQ(v string) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldEQ(FieldQuestionText, v))
}

// QuestionTextNEQ applies the NEQ predicate on the "question_text" field.
func QuestionTextNEQ(v string) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldNEQ(FieldQuestionText, v))
}

// QuestionTextIn applies the In predicate on the "question_text" field.
func QuestionTextIn(vs ...string) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldIn(FieldQuestionText, vs...))
}

// QuestionTextNotIn applies the NotIn predicate on the "question_text" field.
func QuestionTextNotIn(vs ...string) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldNotIn(FieldQuestionText, vs...))
}

// QuestionTextGT applies the GT predicate on the "question_text" field.
func QuestionTextGT(v string) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldGT(FieldQuestionText, v))
}

// QuestionTextGTE applies the GTE predicate on the "question_text" field.
func QuestionTextGTE(v string) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldGTE(FieldQuestionText, v))
}

// QuestionTextLT applies the LT predicate on the "question_text" field.
func QuestionTextLT(v string) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldLT(FieldQuestionText, v))
}

// QuestionTextLTE applies the LTE predicate on the "question_text" field.
func QuestionTextLTE(v string) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldLTE(FieldQuestionText, v))
}

// QuestionTextContains applies the Contains predicate on the "question_text" field.
func QuestionTextContains(v string) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldContains(FieldQuestionText, v))
}

// QuestionTextHasPrefix applies the HasPrefix predicate on the "question_text" field.
func QuestionTextHasPrefix(v string) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldHasPrefix(FieldQuestionText, v))
}

// QuestionTextHasSuffix applies the HasSuffix predicate on the "question_text" field.
func QuestionTextHasSuffix(v string) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldHasSuffix(FieldQuestionText, v))
}

// QuestionTextEqualFold applies the EqualFold predicate on the "question_text" field.
func QuestionTextEqualFold(v string) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldEqualFold(FieldQuestionText, v))
}

// QuestionTextContainsFold applies the ContainsFold predicate on the "question_text" field.
func QuestionTextContainsFold(v string) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldContainsFold(FieldQuestionText, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldNotIn(FieldStatus, vs...))
}

// AnswerTextEQ applies the EQ predicate on the "answer_text" field.
func AnswerTextEQ(v string) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldEQ(FieldAnswerText, v))
}

// AnswerTextNEQ applies the NEQ predicate on the "answer_text" field.
func AnswerTextNEQ(v string) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldNEQ(FieldAnswerText, v))
}

// AnswerTextIn applies the In predicate on the "answer_text" field.
func AnswerTextIn(vs ...string) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldIn(FieldAnswerText, vs...))
}

// AnswerTextNotIn applies the NotIn predicate on the "answer_text" field.
func AnswerTextNotIn(vs ...string) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldNotIn(FieldAnswerText, vs...))
}

// AnswerTextGT applies the GT predicate on the "answer_text" field.
func AnswerTextGT(v string) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldGT(FieldAnswerText, v))
}

// AnswerTextGTE applies the GTE predicate on the "answer_text" field.
func AnswerTextGTE(v string) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldGTE(FieldAnswerText, v))
}

// AnswerTextLT applies the LT predicate on the "answer_text" field.
func AnswerTextLT(v string) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldLT(FieldAnswerText, v))
}

// AnswerTextLTE applies the LTE predicate on the "answer_text" field.
func AnswerTextLTE(v string) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldLTE(FieldAnswerText, v))
}

// AnswerTextContains applies the Contains predicate on the "answer_text" field.
func AnswerTextContains(v string) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldContains(FieldAnswerText, v))
}

// AnswerTextHasPrefix applies the HasPrefix predicate on the "answer_text" field.
func AnswerTextHasPrefix(v string) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldHasPrefix(FieldAnswerText, v))
}

// AnswerTextHasSuffix applies the HasSuffix predicate on the "answer_text" field.
func AnswerTextHasSuffix(v string) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldHasSuffix(FieldAnswerText, v))
}

// AnswerTextIsNil applies the IsNil predicate on the "answer_text" field.
func AnswerTextIsNil() predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldIsNull(FieldAnswerText))
}

// AnswerTextNotNil applies the NotNil predicate on the "answer_text" field.
func AnswerTextNotNil() predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldNotNull(FieldAnswerText))
}

// AnswerTextEqualFold applies the EqualFold predicate on the "answer_text" field.
func AnswerTextEqualFold(v string) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldEqualFold(FieldAnswerText, v))
}

// AnswerTextContainsFold applies the ContainsFold predicate on the "answer_text" field.
func AnswerTextContainsFold(v string) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldContainsFold(FieldAnswerText, v))
}

// AnswerSourceEQ applies the EQ predicate on the "answer_source" field.
func AnswerSourceEQ(v AnswerSource) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldEQ(FieldAnswerSource, v))
}

// AnswerSourceNEQ applies the NEQ predicate on the "answer_source" field.
func AnswerSourceNEQ(v AnswerSource) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldNEQ(FieldAnswerSource, v))
}

// AnswerSourceIn applies the In predicate on the "answer_source" field.
func AnswerSourceIn(vs ...AnswerSource) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldIn(FieldAnswerSource, vs...))
}

// AnswerSourceNotIn applies the NotIn predicate on the "answer_source" field.
func AnswerSourceNotIn(vs ...AnswerSource) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldNotIn(FieldAnswerSource, vs...))
}

// AnswerSourceIsNil applies the IsNil predicate on the "answer_source" field.
func AnswerSourceIsNil() predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldIsNull(FieldAnswerSource))
}

// AnswerSourceNotNil applies the NotNil predicate on the "answer_source" field.
func AnswerSourceNotNil() predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldNotNull(FieldAnswerSource))
}

// RoutedAtEQ applies the EQ predicate on the "routed_at" field.
func RoutedAtEQ(v time.Time) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldEQ(FieldRoutedAt, v))
}

// RoutedAtNEQ applies the NEQ predicate on the "routed_at" field.
func RoutedAtNEQ(v time.Time) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldNEQ(FieldRoutedAt, v))
}

// RoutedAtIn applies the In predicate on the "routed_at" field.
func RoutedAtIn(vs ...time.Time) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldIn(FieldRoutedAt, vs...))
}

// RoutedAtNotIn applies the NotIn predicate on the "routed_at" field.
func RoutedAtNotIn(vs ...time.Time) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldNotIn(FieldRoutedAt, vs...))
}

// RoutedAtGT applies the GT predicate on the "routed_at" field.
func RoutedAtGT(v time.Time) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldGT(FieldRoutedAt, v))
}

// RoutedAtGTE applies the GTE predicate on the "routed_at" field.
func RoutedAtGTE(v time.Time) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldGTE(FieldRoutedAt, v))
}

// RoutedAtLT applies the LT predicate on the "routed_at" field.
func RoutedAtLT(v time.Time) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldLT(FieldRoutedAt, v))
}

// RoutedAtLTE applies the LTE predicate on the "routed_at" field.
func RoutedAtLTE(v time.Time) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldLTE(FieldRoutedAt, v))
}

// RoutedAtIsNil applies the IsNil predicate on the "routed_at" field.
func RoutedAtIsNil() predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldIsNull(FieldRoutedAt))
}

// RoutedAtNotNil applies the NotNil predicate on the "routed_at" field.
func RoutedAtNotNil() predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldNotNull(FieldRoutedAt))
}

// AnsweredAtEQ applies the EQ predicate on the "answered_at" field.
func AnsweredAtEQ(v time.Time) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldEQ(FieldAnsweredAt, v))
}

// AnsweredAtNEQ applies the NEQ predicate on the "answered_at" field.
func AnsweredAtNEQ(v time.Time) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldNEQ(FieldAnsweredAt, v))
}

// AnsweredAtIn applies the In predicate on the "answered_at" field.
func AnsweredAtIn(vs ...time.Time) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldIn(FieldAnsweredAt, vs...))
}

// AnsweredAtNotIn applies the NotIn predicate on the "answered_at" field.
func AnsweredAtNotIn(vs ...time.Time) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldNotIn(FieldAnsweredAt, vs...))
}

// AnsweredAtGT applies the GT predicate on the "answered_at" field.
func AnsweredAtGT(v time.Time) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldGT(FieldAnsweredAt, v))
}

// AnsweredAtGTE applies the GTE predicate on the "answered_at" field.
func AnsweredAtGTE(v time.Time) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldGTE(FieldAnsweredAt, v))
}

// AnsweredAtLT applies the LT predicate on the "answered_at" field.
func AnsweredAtLT(v time.Time) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldLT(FieldAnsweredAt, v))
}

// AnsweredAtLTE applies the LTE predicate on the "answered_at" field.
func AnsweredAtLTE(v time.Time) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldLTE(FieldAnsweredAt, v))
}

// AnsweredAtIsNil applies the IsNil predicate on the "answered_at" field.
func AnsweredAtIsNil() predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldIsNull(FieldAnsweredAt))
}

// AnsweredAtNotNil applies the NotNil predicate on the "answered_at" field.
func AnsweredAtNotNil() predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldNotNull(FieldAnsweredAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasWarehouse applies the HasEdge predicate on the "warehouse" edge.
func HasWarehouse() predicate.PropertyQuestion {
	return predicate.PropertyQuestion(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, WarehouseTable, WarehouseColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWarehouseWith applies the HasEdge predicate on the "warehouse" edge with a given conditions (other predicates).
func HasWarehouseWith(preds ...predicate.Warehouse) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(func(s *sql.Selector) {
		step := newWarehouseStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PropertyQuestion) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PropertyQuestion) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PropertyQuestion) predicate.PropertyQuestion {
	return predicate.PropertyQuestion(sql.NotPredicates(p))
}
