// Code generated by ent, DO NOT EDIT.

package inboundmessage

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/warehouse-exchange/wex/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldContainsFold(FieldID, id))
}

// ConversationID applies equality check predicate on the "conversation_id" field. It's identical to ConversationIDEQ.
func ConversationID(v string) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldEQ(FieldConversationID, v))
}

// Phone applies equality check predicate on the "phone" field. It's identical to PhoneEQ.
func Phone(v string) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldEQ(FieldPhone, v))
}

// Body applies equality check predicate on the "body" field. It's identical to BodyEQ.
func Body(v string) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldEQ(FieldBody, v))
}

// ProviderRef applies equality check predicate on the "provider_ref" field. It's identical to ProviderRefEQ.
func ProviderRef(v string) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldEQ(FieldProviderRef, v))
}

// Attempts applies equality check predicate on the "attempts" field. It's identical to AttemptsEQ.
func Attempts(v int) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldEQ(FieldAttempts, v))
}

// ClaimedBy applies equality check predicate on the "claimed_by" field. It's identical to ClaimedByEQ.
func ClaimedBy(v string) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldEQ(FieldClaimedBy, v))
}

// ClaimedAt applies equality check predicate on the "claimed_at" field. It's identical to ClaimedAtEQ.
func ClaimedAt(v time.Time) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldEQ(FieldClaimedAt, v))
}

// HeartbeatAt applies equality check predicate on the "heartbeat_at" field. It's identical to HeartbeatAtEQ.
func HeartbeatAt(v time.Time) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldEQ(FieldHeartbeatAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldEQ(FieldCompletedAt, v))
}

// FailureReason applies equality check predicate on the "failure_reason" field. It's identical to FailureReasonEQ.
func FailureReason(v string) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldEQ(FieldFailureReason, v))
}

// ReceivedAt applies equality check predicate on the "received_at" field. It's identical to ReceivedAtEQ.
func ReceivedAt(v time.Time) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldEQ(FieldReceivedAt, v))
}

// ConversationIDEQ applies the EQ predicate on the "conversation_id" field.
func ConversationIDEQ(v string) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldEQ(FieldConversationID, v))
}

// ConversationIDNEQ applies the NEQ predicate on the "conversation_id" field.
func ConversationIDNEQ(v string) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldNEQ(FieldConversationID, v))
}

// ConversationIDIn applies the In predicate on the "conversation_id" field.
func ConversationIDIn(vs ...string) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldIn(FieldConversationID, vs...))
}

// ConversationIDNotIn applies the NotIn predicate on the "conversation_id" field.
func ConversationIDNotIn(vs ...string) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldNotIn(FieldConversationID, vs...))
}

// ConversationIDGT applies the GT predicate on the "conversation_id" field.
func ConversationIDGT(v string) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldGT(FieldConversationID, v))
}

// ConversationIDGTE applies the GTE predicate on the "conversation_id" field.
func ConversationIDGTE(v string) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldGTE(FieldConversationID, v))
}

// ConversationIDLT applies the LT predicate on the "conversation_id" field.
func ConversationIDLT(v string) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldLT(FieldConversationID, v))
}

// ConversationIDLTE applies the LTE predicate on the "conversation_id" field.
func ConversationIDLTE(v string) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldLTE(FieldConversationID, v))
}

// ConversationIDContains applies the Contains predicate on the "conversation_id" field.
func ConversationIDContains(v string) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldContains(FieldConversationID, v))
}

// ConversationIDHasPrefix applies the HasPrefix predicate on the "conversation_id" field.
func ConversationIDHasPrefix(v string) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldHasPrefix(FieldConversationID, v))
}

// ConversationIDHasSuffix applies the HasSuffix predicate on the "conversation_id" field.
func ConversationIDHasSuffix(v string) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldHasSuffix(FieldConversationID, v))
}

// ConversationIDEqualFold applies the EqualFold predicate on the "conversation_id" field.
func ConversationIDEqualFold(v string) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldEqualFold(FieldConversationID, v))
}

// ConversationIDContainsFold applies the ContainsFold predicate on the "conversation_id" field.
func ConversationIDContainsFold(v string) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldContainsFold(FieldConversationID, v))
}

// PhoneEQ applies the EQ predicate on the "phone" field.
func PhoneEQ(v string) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldEQ(FieldPhone, v))
}

// PhoneNEQ applies the NEQ predicate on the "phone" field.
func PhoneNEQ(v string) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldNEQ(FieldPhone, v))
}

// PhoneIn applies the In predicate on the "phone" field.
func PhoneIn(vs ...string) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldIn(FieldPhone, vs...))
}

// PhoneNotIn applies the NotIn predicate on the "phone" field.
func PhoneNotIn(vs ...string) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldNotIn(FieldPhone, vs...))
}

// PhoneGT applies the GT predicate on the "phone" field.
func PhoneGT(v string) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldGT(FieldPhone, v))
}

// PhoneGTE applies the GTE predicate on the "phone" field.
func PhoneGTE(v string) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldGTE(FieldPhone, v))
}

// PhoneLT applies the LT predicate on the "phone" field.
func PhoneLT(v string) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldLT(FieldPhone, v))
}

// PhoneLTE applies the LTE predicate on the "phone" field.
func PhoneLTE(v string) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldLTE(FieldPhone, v))
}

// PhoneContains applies the Contains predicate on the "phone" field.
func PhoneContains(v string) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldContains(FieldPhone, v))
}

// PhoneHasPrefix applies the HasPrefix predicate on the "phone" field.
func PhoneHasPrefix(v string) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldHasPrefix(FieldPhone, v))
}

// PhoneHasSuffix applies the HasSuffix predicate on the "phone" field.
func PhoneHasSuffix(v string) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldHasSuffix(FieldPhone, v))
}

// PhoneEqualFold applies the EqualFold predicate on the "phone" field.
func PhoneEqualFold(v string) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldEqualFold(FieldPhone, v))
}

// PhoneContainsFold applies the ContainsFold predicate on the "phone" field.
func PhoneContainsFold(v string) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldContainsFold(FieldPhone, v))
}

// BodyEQ applies the EQ predicate on the "body" field.
func BodyEQ(v string) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldEQ(FieldBody, v))
}

// BodyNEQ applies the NEQ predicate on the "body" field.
func BodyNEQ(v string) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldNEQ(FieldBody, v))
}

// BodyIn applies the In predicate on the "body" field.
func BodyIn(vs ...string) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldIn(FieldBody, vs...))
}

// BodyNotIn applies the NotIn predicate on the "body" field.
func BodyNotIn(vs ...string) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldNotIn(FieldBody, vs...))
}

// BodyGT applies the GT predicate on the "body" field.
func BodyGT(v string) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldGT(FieldBody, v))
}

// BodyGTE applies the GTE predicate on the "body" field.
func BodyGTE(v string) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldGTE(FieldBody, v))
}

// BodyLT applies the LT predicate on the "body" field.
func BodyLT(v string) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldLT(FieldBody, v))
}

// BodyLTE applies the LTE predicate on the "body" field.
func BodyLTE(v string) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldLTE(FieldBody, v))
}

// BodyContains applies the Contains predicate on the "body" field.
func BodyContains(v string) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldContains(FieldBody, v))
}

// BodyHasPrefix applies the HasPrefix predicate on the "body" field.
func BodyHasPrefix(v string) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldHasPrefix(FieldBody, v))
}

// BodyHasSuffix applies the HasSuffix predicate on the "body" field.
func BodyHasSuffix(v string) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldHasSuffix(FieldBody, v))
}

// BodyEqualFold applies the EqualFold predicate on the "body" field.
func BodyEqualFold(v string) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldEqualFold(FieldBody, v))
}

// BodyContainsFold applies the ContainsFold predicate on the "body" field.
func BodyContainsFold(v string) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldContainsFold(FieldBody, v))
}

// ProviderRefEQ applies the EQ predicate on the "provider_ref" field.
func ProviderRefEQ(v string) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldEQ(FieldProviderRef, v))
}

// ProviderRefNEQ applies the NEQ predicate on the "provider_ref" field.
func ProviderRefNEQ(v string) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldNEQ(FieldProviderRef, v))
}

// ProviderRefIn applies the In predicate on the "provider_ref" field.
func ProviderRefIn(vs ...string) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldIn(FieldProviderRef, vs...))
}

// ProviderRefNotIn applies the NotIn predicate on the "provider_ref" field.
func ProviderRefNotIn(vs ...string) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldNotIn(FieldProviderRef, vs...))
}

// ProviderRefGT applies the GT predicate on the "provider_ref" field.
func ProviderRefGT(v string) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldGT(FieldProviderRef, v))
}

// ProviderRefGTE applies the GTE predicate on the "provider_ref" field.
func ProviderRefGTE(v string) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldGTE(FieldProviderRef, v))
}

// ProviderRefLT applies the LT predicate on the "provider_ref" field.
func ProviderRefLT(v string) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldLT(FieldProviderRef, v))
}

// ProviderRefLTE applies the LTE predicate on the "provider_ref" field.
func ProviderRefLTE(v string) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldLTE(FieldProviderRef, v))
}

// ProviderRefContains applies the Contains predicate on the "provider_ref" field.
func ProviderRefContains(v string) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldContains(FieldProviderRef, v))
}

// ProviderRefHasPrefix applies the HasPrefix predicate on the "provider_ref" field.
func ProviderRefHasPrefix(v string) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldHasPrefix(FieldProviderRef, v))
}

// ProviderRefHasSuffix applies the HasSuffix predicate on the "provider_ref" field.
func ProviderRefHasSuffix(v string) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldHasSuffix(FieldProviderRef, v))
}

// ProviderRefIsNil applies the IsNil predicate on the "provider_ref" field.
func ProviderRefIsNil() predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldIsNull(FieldProviderRef))
}

// ProviderRefNotNil applies the NotNil predicate on the "provider_ref" field.
func ProviderRefNotNil() predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldNotNull(FieldProviderRef))
}

// ProviderRefEqualFold applies the EqualFold predicate on the "provider_ref" field.
func ProviderRefEqualFold(v string) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldEqualFold(FieldProviderRef, v))
}

// ProviderRefContainsFold applies the ContainsFold predicate on the "provider_ref" field.
func ProviderRefContainsFold(v string) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldContainsFold(FieldProviderRef, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldNotIn(FieldStatus, vs...))
}

// AttemptsEQ applies the EQ predicate on the "attempts" field.
func AttemptsEQ(v int) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldEQ(FieldAttempts, v))
}

// AttemptsNEQ applies the NEQ predicate on the "attempts" field.
func AttemptsNEQ(v int) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldNEQ(FieldAttempts, v))
}

// AttemptsIn applies the In predicate on the "attempts" field.
func AttemptsIn(vs ...int) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldIn(FieldAttempts, vs...))
}

// AttemptsNotIn applies the NotIn predicate on the "attempts" field.
func AttemptsNotIn(vs ...int) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldNotIn(FieldAttempts, vs...))
}

// AttemptsGT applies the GT predicate on the "attempts" field.
func AttemptsGT(v int) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldGT(FieldAttempts, v))
}

// AttemptsGTE applies the GTE predicate on the "attempts" field.
func AttemptsGTE(v int) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldGTE(FieldAttempts, v))
}

// AttemptsLT applies the LT predicate on the "attempts" field.
func AttemptsLT(v int) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldLT(FieldAttempts, v))
}

// AttemptsLTE applies the LTE predicate on the "attempts" field.
func AttemptsLTE(v int) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldLTE(FieldAttempts, v))
}

// ClaimedByEQ applies the EQ predicate on the "claimed_by" field.
func ClaimedByEQ(v string) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldEQ(FieldClaimedBy, v))
}

// ClaimedByNEQ applies the NEQ predicate on the "claimed_by" field.
func ClaimedByNEQ(v string) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldNEQ(FieldClaimedBy, v))
}

// ClaimedByIn applies the In predicate on the "claimed_by" field.
func ClaimedByIn(vs ...string) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldIn(FieldClaimedBy, vs...))
}

// ClaimedByNotIn applies the NotIn predicate on the "claimed_by" field.
func ClaimedByNotIn(vs ...string) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldNotIn(FieldClaimedBy, vs...))
}

// ClaimedByGT applies the GT predicate on the "claimed_by" field.
func ClaimedByGT(v string) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldGT(FieldClaimedBy, v))
}

// ClaimedByGTE applies the GTE predicate on the "claimed_by" field.
func ClaimedByGTE(v string) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldGTE(FieldClaimedBy, v))
}

// ClaimedByLT applies the LT predicate on the "claimed_by" field.
func ClaimedByLT(v string) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldLT(FieldClaimedBy, v))
}

// ClaimedByLTE applies the LTE predicate on the "claimed_by" field.
func ClaimedByLTE(v string) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldLTE(FieldClaimedBy, v))
}

// ClaimedByContains applies the Contains predicate on the "claimed_by" field.
func ClaimedByContains(v string) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldContains(FieldClaimedBy, v))
}

// ClaimedByHasPrefix applies the HasPrefix predicate on the "claimed_by" field.
func ClaimedByHasPrefix(v string) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldHasPrefix(FieldClaimedBy, v))
}

// ClaimedByHasSuffix applies the HasSuffix predicate on the "claimed_by" field.
func ClaimedByHasSuffix(v string) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldHasSuffix(FieldClaimedBy, v))
}

// ClaimedByIsNil applies the IsNil predicate on the "claimed_by" field.
func ClaimedByIsNil() predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldIsNull(FieldClaimedBy))
}

// ClaimedByNotNil applies the NotNil predicate on the "claimed_by" field.
func ClaimedByNotNil() predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldNotNull(FieldClaimedBy))
}

// ClaimedByEqualFold applies the EqualFold predicate on the "claimed_by" field.
func ClaimedByEqualFold(v string) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldEqualFold(FieldClaimedBy, v))
}

// ClaimedByContainsFold applies the ContainsFold predicate on the "claimed_by" field.
func ClaimedByContainsFold(v string) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldContainsFold(FieldClaimedBy, v))
}

// ClaimedAtEQ applies the EQ predicate on the "claimed_at" field.
func ClaimedAtEQ(v time.Time) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldEQ(FieldClaimedAt, v))
}

// ClaimedAtNEQ applies the NEQ predicate on the "claimed_at" field.
func ClaimedAtNEQ(v time.Time) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldNEQ(FieldClaimedAt, v))
}

// ClaimedAtIn applies the In predicate on the "claimed_at" field.
func ClaimedAtIn(vs ...time.Time) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldIn(FieldClaimedAt, vs...))
}

// ClaimedAtNotIn applies the NotIn predicate on the "claimed_at" field.
func ClaimedAtNotIn(vs ...time.Time) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldNotIn(FieldClaimedAt, vs...))
}

// ClaimedAtGT applies the GT predicate on the "claimed_at" field.
func ClaimedAtGT(v time.Time) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldGT(FieldClaimedAt, v))
}

// ClaimedAtGTE applies the GTE predicate on the "claimed_at" field.
func ClaimedAtGTE(v time.Time) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldGTE(FieldClaimedAt, v))
}

// ClaimedAtLT applies the LT predicate on the "claimed_at" field.
func ClaimedAtLT(v time.Time) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldLT(FieldClaimedAt, v))
}

// ClaimedAtLTE applies the LTE predicate on the "claimed_at" field.
func ClaimedAtLTE(v time.Time) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldLTE(FieldClaimedAt, v))
}

// ClaimedAtIsNil applies the IsNil predicate on the "claimed_at" field.
func ClaimedAtIsNil() predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldIsNull(FieldClaimedAt))
}

// ClaimedAtNotNil applies the NotNil predicate on the "claimed_at" field.
func ClaimedAtNotNil() predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldNotNull(FieldClaimedAt))
}

// HeartbeatAtEQ applies the EQ predicate on the "heartbeat_at" field.
func HeartbeatAtEQ(v time.Time) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldEQ(FieldHeartbeatAt, v))
}

// HeartbeatAtNEQ applies the NEQ predicate on the "heartbeat_at" field.
func HeartbeatAtNEQ(v time.Time) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldNEQ(FieldHeartbeatAt, v))
}

// HeartbeatAtIn applies the In predicate on the "heartbeat_at" field.
func HeartbeatAtIn(vs ...time.Time) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldIn(FieldHeartbeatAt, vs...))
}

// HeartbeatAtNotIn applies the NotIn predicate on the "heartbeat_at" field.
func HeartbeatAtNotIn(vs ...time.Time) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldNotIn(FieldHeartbeatAt, vs...))
}

// HeartbeatAtGT applies the GT predicate on the "heartbeat_at" field.
func HeartbeatAtGT(v time.Time) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldGT(FieldHeartbeatAt, v))
}

// HeartbeatAtGTE applies the GTE predicate on the "heartbeat_at" field.
func HeartbeatAtGTE(v time.Time) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldGTE(FieldHeartbeatAt, v))
}

// HeartbeatAtLT applies the LT predicate on the "heartbeat_at" field.
func HeartbeatAtLT(v time.Time) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldLT(FieldHeartbeatAt, v))
}

// HeartbeatAtLTE applies the LTE predicate on the "heartbeat_at" field.
func HeartbeatAtLTE(v time.Time) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldLTE(FieldHeartbeatAt, v))
}

// HeartbeatAtIsNil applies the IsNil predicate on the "heartbeat_at" field.
func HeartbeatAtIsNil() predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldIsNull(FieldHeartbeatAt))
}

// HeartbeatAtNotNil applies the NotNil predicate on the "heartbeat_at" field.
func HeartbeatAtNotNil() predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldNotNull(FieldHeartbeatAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldNotNull(FieldCompletedAt))
}

// FailureReasonEQ applies the EQ predicate on the "failure_reason" field.
func FailureReasonEQ(v string) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldEQ(FieldFailureReason, v))
}

// FailureReasonNEQ applies the NEQ predicate on the "failure_reason" field.
func FailureReasonNEQ(v string) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldNEQ(FieldFailureReason, v))
}

// FailureReasonIn applies the In predicate on the "failure_reason" field.
func FailureReasonIn(vs ...string) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldIn(FieldFailureReason, vs...))
}

// FailureReasonNotIn applies the NotIn predicate on the "failure_reason" field.
func FailureReasonNotIn(vs ...string) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldNotIn(FieldFailureReason, vs...))
}

// FailureReasonGT applies the GT predicate on the "failure_reason" field.
func FailureReasonGT(v string) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldGT(FieldFailureReason, v))
}

// FailureReasonGTE applies the GTE predicate on the "failure_reason" field.
func FailureReasonGTE(v string) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldGTE(FieldFailureReason, v))
}

// FailureReasonLT applies the LT predicate on the "failure_reason" field.
func FailureReasonLT(v string) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldLT(FieldFailureReason, v))
}

// FailureReasonLTE applies the LTE predicate on the "failure_reason" field.
func FailureReasonLTE(v string) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldLTE(FieldFailureReason, v))
}

// FailureReasonContains applies the Contains predicate on the "failure_reason" field.
func FailureReasonContains(v string) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldContains(FieldFailureReason, v))
}

// FailureReasonHasPrefix applies the HasPrefix predicate on the "failure_reason" field.
func FailureReasonHasPrefix(v string) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldHasPrefix(FieldFailureReason, v))
}

// FailureReasonHasSuffix applies the HasSuffix predicate on the "failure_reason" field.
func FailureReasonHasSuffix(v string) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldHasSuffix(FieldFailureReason, v))
}

// FailureReasonIsNil applies the IsNil predicate on the "failure_reason" field.
func FailureReasonIsNil() predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldIsNull(FieldFailureReason))
}

// FailureReasonNotNil applies the NotNil predicate on the "failure_reason" field.
func FailureReasonNotNil() predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldNotNull(FieldFailureReason))
}

// FailureReasonEqualFold applies the EqualFold predicate on the "failure_reason" field.
func FailureReasonEqualFold(v string) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldEqualFold(FieldFailureReason, v))
}

// FailureReasonContainsFold applies the ContainsFold predicate on the "failure_reason" field.
func FailureReasonContainsFold(v string) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldContainsFold(FieldFailureReason, v))
}

// ReceivedAtEQ applies the EQ predicate on the "received_at" field.
func ReceivedAtEQ(v time.Time) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldEQ(FieldReceivedAt, v))
}

// ReceivedAtNEQ applies the NEQ predicate on the "received_at" field.
func ReceivedAtNEQ(v time.Time) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldNEQ(FieldReceivedAt, v))
}

// ReceivedAtIn applies the In predicate on the "received_at" field.
func ReceivedAtIn(vs ...time.Time) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldIn(FieldReceivedAt, vs...))
}

// ReceivedAtNotIn applies the NotIn predicate on the "received_at" field.
func ReceivedAtNotIn(vs ...time.Time) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldNotIn(FieldReceivedAt, vs...))
}

// ReceivedAtGT applies the GT predicate on the "received_at" field.
func ReceivedAtGT(v time.Time) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldGT(FieldReceivedAt, v))
}

// ReceivedAtGTE applies the GTE predicate on the "received_at" field.
func ReceivedAtGTE(v time.Time) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldGTE(FieldReceivedAt, v))
}

// ReceivedAtLT applies the LT predicate on the "received_at" field.
func ReceivedAtLT(v time.Time) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldLT(FieldReceivedAt, v))
}

// ReceivedAtLTE applies the LTE predicate on the "received_at" field.
func ReceivedAtLTE(v time.Time) predicate.InboundMessage {
	return predicate.InboundMessage(sql.FieldLTE(FieldReceivedAt, v))
}

// HasConversation applies the HasEdge predicate on the "conversation" edge.
func HasConversation() predicate.InboundMessage {
	return predicate.InboundMessage(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ConversationTable, ConversationColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasConversationWith applies the HasEdge predicate on the "conversation" edge with a given conditions (other predicates).
func HasConversationWith(preds ...predicate.Conversation) predicate.InboundMessage {
	return predicate.InboundMessage(func(s *sql.Selector) {
		step := newConversationStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.InboundMessage) predicate.InboundMessage {
	return predicate.InboundMessage(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.InboundMessage) predicate.InboundMessage {
	return predicate.InboundMessage(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.InboundMessage) predicate.InboundMessage {
	return predicate.InboundMessage(sql.NotPredicates(p))
}
