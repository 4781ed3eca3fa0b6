// Code generated by ent, DO NOT EDIT.

package conversation

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/warehouse-exchange/wex/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContainsFold(FieldID, id))
}

// Phone applies equality check predicate on the "phone" field. It's identical to PhoneEQ.
func Phone(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldPhone, v))
}

// TurnCount applies equality check predicate on the "turn_count" field. It's identical to TurnCountEQ.
func TurnCount(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldTurnCount, v))
}

// FocusedMatchID applies equality check predicate on the "focused_match_id" field. It's identical to FocusedMatchIDEQ.
func FocusedMatchID(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldFocusedMatchID, v))
}

// RenterFirstName applies equality check predicate on the "renter_first_name" field. It's identical to RenterFirstNameEQ.
func RenterFirstName(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldRenterFirstName, v))
}

// RenterLastName applies equality check predicate on the "renter_last_name" field. It's identical to RenterLastNameEQ.
func RenterLastName(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldRenterLastName, v))
}

// BuyerEmail applies equality check predicate on the "buyer_email" field. It's identical to BuyerEmailEQ.
func BuyerEmail(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldBuyerEmail, v))
}

// NameRequestedAtTurn applies equality check predicate on the "name_requested_at_turn" field. It's identical to NameRequestedAtTurnEQ.
func NameRequestedAtTurn(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldNameRequestedAtTurn, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldUserID, v))
}

// BuyerNeedID applies equality check predicate on the "buyer_need_id" field. It's identical to BuyerNeedIDEQ.
func BuyerNeedID(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldBuyerNeedID, v))
}

// WarehouseID applies equality check predicate on the "warehouse_id" field. It's identical to WarehouseIDEQ.
func WarehouseID(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldWarehouseID, v))
}

// EngagementID applies equality check predicate on the "engagement_id" field. It's identical to EngagementIDEQ.
func EngagementID(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldEngagementID, v))
}

// GuaranteeLinkToken applies equality check predicate on the "guarantee_link_token" field. It's identical to GuaranteeLinkTokenEQ.
func GuaranteeLinkToken(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldGuaranteeLinkToken, v))
}

// SearchSessionToken applies equality check predicate on the "search_session_token" field. It's identical to SearchSessionTokenEQ.
func SearchSessionToken(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldSearchSessionToken, v))
}

// ReengagementStage applies equality check predicate on the "reengagement_stage" field. It's identical to ReengagementStageEQ.
func ReengagementStage(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldReengagementStage, v))
}

// NextReengagementAt applies equality check predicate on the "next_reengagement_at" field. It's identical to NextReengagementAtEQ.
func NextReengagementAt(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldNextReengagementAt, v))
}

// LastInboundAt applies equality check predicate on the "last_inbound_at" field. It's identical to LastInboundAtEQ.
func LastInboundAt(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldLastInboundAt, v))
}

// LastOutboundAt applies equality check predicate on the "last_outbound_at" field. It's identical to LastOutboundAtEQ.
func LastOutboundAt(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldLastOutboundAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldUpdatedAt, v))
}

// PhoneEQ applies the EQ predicate on the "phone" field.
func PhoneEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldPhone, v))
}

// PhoneNEQ applies the NEQ predicate on the "phone" field.
func PhoneNEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldPhone, v))
}

// PhoneIn applies the In predicate on the "phone" field.
func PhoneIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldPhone, vs...))
}

// PhoneNotIn applies the NotIn predicate on the "phone" field.
func PhoneNotIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldPhone, vs...))
}

// PhoneGT applies the GT predicate on the "phone" field.
func PhoneGT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldPhone, v))
}

// PhoneGTE applies the GTE predicate on the "phone" field.
func PhoneGTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldPhone, v))
}

// PhoneLT applies the LT predicate on the "phone" field.
func PhoneLT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldPhone, v))
}

// PhoneLTE applies the LTE predicate on the "phone" field.
func PhoneLTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldPhone, v))
}

// PhoneContains applies the Contains predicate on the "phone" field.
func PhoneContains(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContains(FieldPhone, v))
}

// PhoneHasPrefix applies the HasPrefix predicate on the "phone" field.
func PhoneHasPrefix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasPrefix(FieldPhone, v))
}

// PhoneHasSuffix applies the HasSuffix predicate on the "phone" field.
func PhoneHasSuffix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasSuffix(FieldPhone, v))
}

// PhoneEqualFold applies the EqualFold predicate on the "phone" field.
func PhoneEqualFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEqualFold(FieldPhone, v))
}

// PhoneContainsFold applies the ContainsFold predicate on the "phone" field.
func PhoneContainsFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContainsFold(FieldPhone, v))
}

// PersonaEQ applies the EQ predicate on the "persona" field.
func PersonaEQ(v Persona) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldPersona, v))
}

// PersonaNEQ applies the NEQ predicate on the "persona" field.
func PersonaNEQ(v Persona) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldPersona, v))
}

// PersonaIn applies the In predicate on the "persona" field.
func PersonaIn(vs ...Persona) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldPersona, vs...))
}

// PersonaNotIn applies the NotIn predicate on the "persona" field.
func PersonaNotIn(vs ...Persona) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldPersona, vs...))
}

// PhaseEQ applies the EQ predicate on the "phase" field.
func PhaseEQ(v Phase) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldPhase, v))
}

// PhaseNEQ applies the NEQ predicate on the "phase" field.
func PhaseNEQ(v Phase) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldPhase, v))
}

// PhaseIn applies the In predicate on the "phase" field.
func PhaseIn(vs ...Phase) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldPhase, vs...))
}

// PhaseNotIn applies the NotIn predicate on the "phase" field.
func PhaseNotIn(vs ...Phase) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldPhase, vs...))
}

// TurnCountEQ applies the EQ predicate on the "turn_count" field.
func TurnCountEQ(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldTurnCount, v))
}

// TurnCountNEQ applies the NEQ predicate on the "turn_count" field.
func TurnCountNEQ(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldTurnCount, v))
}

// TurnCountIn applies the In predicate on the "turn_count" field.
func TurnCountIn(vs ...int) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldTurnCount, vs...))
}

// TurnCountNotIn applies the NotIn predicate on the "turn_count" field.
func TurnCountNotIn(vs ...int) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldTurnCount, vs...))
}

// TurnCountGT applies the GT predicate on the "turn_count" field.
func TurnCountGT(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldTurnCount, v))
}

// TurnCountGTE applies the GTE predicate on the "turn_count" field.
func TurnCountGTE(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldTurnCount, v))
}

// TurnCountLT applies the LT predicate on the "turn_count" field.
func TurnCountLT(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldTurnCount, v))
}

// TurnCountLTE applies the LTE predicate on the "turn_count" field.
func TurnCountLTE(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldTurnCount, v))
}

// CriteriaIsNil applies the IsNil predicate on the "criteria" field.
func CriteriaIsNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldIsNull(FieldCriteria))
}

// CriteriaNotNil applies the NotNil predicate on the "criteria" field.
func CriteriaNotNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldNotNull(FieldCriteria))
}

// PresentedMatchesIsNil applies the IsNil predicate on the "presented_matches" field.
func PresentedMatchesIsNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldIsNull(FieldPresentedMatches))
}

// PresentedMatchesNotNil applies the NotNil predicate on the "presented_matches" field.
func PresentedMatchesNotNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldNotNull(FieldPresentedMatches))
}

// FocusedMatchIDEQ applies the EQ predicate on the "focused_match_id" field.
func FocusedMatchIDEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldFocusedMatchID, v))
}

// FocusedMatchIDNEQ applies the NEQ predicate on the "focused_match_id" field.
func FocusedMatchIDNEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldFocusedMatchID, v))
}

// FocusedMatchIDIn applies the In predicate on the "focused_match_id" field.
func FocusedMatchIDIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldFocusedMatchID, vs...))
}

// FocusedMatchIDNotIn applies the NotIn predicate on the "focused_match_id" field.
func FocusedMatchIDNotIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldFocusedMatchID, vs...))
}

// FocusedMatchIDGT applies the GT predicate on the "focused_match_id" field.
func FocusedMatchIDGT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldFocusedMatchID, v))
}

// FocusedMatchIDGTE applies the GTE predicate on the "focused_match_id" field.
func FocusedMatchIDGTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldFocusedMatchID, v))
}

// FocusedMatchIDLT applies the LT predicate on the "focused_match_id" field.
func FocusedMatchIDLT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldFocusedMatchID, v))
}

// FocusedMatchIDLTE applies the LTE predicate on the "focused_match_id" field.
func FocusedMatchIDLTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldFocusedMatchID, v))
}

// FocusedMatchIDContains applies the Contains predicate on the "focused_match_id" field.
func FocusedMatchIDContains(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContains(FieldFocusedMatchID, v))
}

// FocusedMatchIDHasPrefix applies the HasPrefix predicate on the "focused_match_id" field.
func FocusedMatchIDHasPrefix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasPrefix(FieldFocusedMatchID, v))
}

// FocusedMatchIDHasSuffix applies the HasSuffix predicate on the "focused_match_id" field.
func FocusedMatchIDHasSuffix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasSuffix(FieldFocusedMatchID, v))
}

// FocusedMatchIDIsNil applies the IsNil predicate on the "focused_match_id" field.
func FocusedMatchIDIsNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldIsNull(FieldFocusedMatchID))
}

// FocusedMatchIDNotNil applies the NotNil predicate on the "focused_match_id" field.
func FocusedMatchIDNotNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldNotNull(FieldFocusedMatchID))
}

// FocusedMatchIDEqualFold applies the EqualFold predicate on the "focused_match_id" field.
func FocusedMatchIDEqualFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEqualFold(FieldFocusedMatchID, v))
}

// FocusedMatchIDContainsFold applies the ContainsFold predicate on the "focused_match_id" field.
func FocusedMatchIDContainsFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContainsFold(FieldFocusedMatchID, v))
}

// RenterFirstNameEQ applies the EQ predicate on the "renter_first_name" field.
func RenterFirstNameEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldRenterFirstName, v))
}

// RenterFirstNameNEQ applies the NEQ predicate on the "renter_first_name" field.
func RenterFirstNameNEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldRenterFirstName, v))
}

// RenterFirstNameIn applies the In predicate on the "renter_first_name" field.
func RenterFirstNameIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldRenterFirstName, vs...))
}

// RenterFirstNameNotIn applies the NotIn predicate on the "renter_first_name" field.
func RenterFirstNameNotIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldRenterFirstName, vs...))
}

// RenterFirstNameGT applies the GT predicate on the "renter_first_name" field.
func RenterFirstNameGT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldRenterFirstName, v))
}

// RenterFirstNameGTE applies the GTE predicate on the "renter_first_name" field.
func RenterFirstNameGTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldRenterFirstName, v))
}

// RenterFirstNameLT applies the LT predicate on the "renter_first_name" field.
func RenterFirstNameLT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldRenterFirstName, v))
}

// RenterFirstNameLTE applies the LTE predicate on the "renter_first_name" field.
func RenterFirstNameLTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldRenterFirstName, v))
}

// RenterFirstNameContains applies the Contains predicate on the "renter_first_name" field.
func RenterFirstNameContains(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContains(FieldRenterFirstName, v))
}

// RenterFirstNameHasPrefix applies the HasPrefix predicate on the "renter_first_name" field.
func RenterFirstNameHasPrefix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasPrefix(FieldRenterFirstName, v))
}

// RenterFirstNameHasSuffix applies the HasSuffix predicate on the "renter_first_name" field.
func RenterFirstNameHasSuffix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasSuffix(FieldRenterFirstName, v))
}

// RenterFirstNameIsNil applies the IsNil predicate on the "renter_first_name" field.
func RenterFirstNameIsNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldIsNull(FieldRenterFirstName))
}

// RenterFirstNameNotNil applies the NotNil predicate on the "renter_first_name" field.
func RenterFirstNameNotNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldNotNull(FieldRenterFirstName))
}

// RenterFirstNameEqualFold applies the EqualFold predicate on the "renter_first_name" field.
func RenterFirstNameEqualFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEqualFold(FieldRenterFirstName, v))
}

// RenterFirstNameContainsFold applies the ContainsFold predicate on the "renter_first_name" field.
func RenterFirstNameContainsFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContainsFold(FieldRenterFirstName, v))
}

// RenterLastNameEQ applies the EQ predicate on the "renter_last_name" field.
func RenterLastNameEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldRenterLastName, v))
}

// RenterLastNameNEQ applies the NEQ predicate on the "renter_last_name" field.
func RenterLastNameNEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldRenterLastName, v))
}

// RenterLastNameIn applies the In predicate on the "renter_last_name" field.
func RenterLastNameIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldRenterLastName, vs...))
}

// RenterLastNameNotIn applies the NotIn predicate on the "renter_last_name" field.
func RenterLastNameNotIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldRenterLastName, vs...))
}

// RenterLastNameGT applies the GT predicate on the "renter_last_name" field.
func RenterLastNameGT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldRenterLastName, v))
}

// RenterLastNameGTE applies the GTE predicate on the "renter_last_name" field.
func RenterLastNameGTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldRenterLastName, v))
}

// RenterLastNameLT applies the LT predicate on the "renter_last_name" field.
func RenterLastNameLT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldRenterLastName, v))
}

// RenterLastNameLTE applies the LTE predicate on the "renter_last_name" field.
func RenterLastNameLTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldRenterLastName, v))
}

// RenterLastNameContains applies the Contains predicate on the "renter_last_name" field.
func RenterLastNameContains(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContains(FieldRenterLastName, v))
}

// RenterLastNameHasPrefix applies the HasPrefix predicate on the "renter_last_name" field.
func RenterLastNameHasPrefix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasPrefix(FieldRenterLastName, v))
}

// RenterLastNameHasSuffix applies the HasSuffix predicate on the "renter_last_name" field.
func RenterLastNameHasSuffix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasSuffix(FieldRenterLastName, v))
}

// RenterLastNameIsNil applies the IsNil predicate on the "renter_last_name" field.
func RenterLastNameIsNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldIsNull(FieldRenterLastName))
}

// RenterLastNameNotNil applies the NotNil predicate on the "renter_last_name" field.
func RenterLastNameNotNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldNotNull(FieldRenterLastName))
}

// RenterLastNameEqualFold applies the EqualFold predicate on the "renter_last_name" field.
func RenterLastNameEqualFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEqualFold(FieldRenterLastName, v))
}

// RenterLastNameContainsFold applies the ContainsFold predicate on the "renter_last_name" field.
func RenterLastNameContainsFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContainsFold(FieldRenterLastName, v))
}

// BuyerEmailEQ applies the EQ predicate on the "buyer_email" field.
func BuyerEmailEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldBuyerEmail, v))
}

// BuyerEmailNEQ applies the NEQ predicate on the "buyer_email" field.
func BuyerEmailNEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldBuyerEmail, v))
}

// BuyerEmailIn applies the In predicate on the "buyer_email" field.
func BuyerEmailIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldBuyerEmail, vs...))
}

// BuyerEmailNotIn applies the NotIn predicate on the "buyer_email" field.
func BuyerEmailNotIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldBuyerEmail, vs...))
}

// BuyerEmailGT applies the GT predicate on the "buyer_email" field.
func BuyerEmailGT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldBuyerEmail, v))
}

// BuyerEmailGTE applies the GTE predicate on the "buyer_email" field.
func BuyerEmailGTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldBuyerEmail, v))
}

// BuyerEmailLT applies the LT predicate on the "buyer_email" field.
func BuyerEmailLT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldBuyerEmail, v))
}

// BuyerEmailLTE applies the LTE predicate on the "buyer_email" field.
func BuyerEmailLTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldBuyerEmail, v))
}

// BuyerEmailContains applies the Contains predicate on the "buyer_email" field.
func BuyerEmailContains(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContains(FieldBuyerEmail, v))
}

// BuyerEmailHasPrefix applies the HasPrefix predicate on the "buyer_email" field.
func BuyerEmailHasPrefix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasPrefix(FieldBuyerEmail, v))
}

// BuyerEmailHasSuffix applies the HasSuffix predicate on the "buyer_email" field.
func BuyerEmailHasSuffix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasSuffix(FieldBuyerEmail, v))
}

// BuyerEmailIsNil applies the IsNil predicate on the "buyer_email" field.
func BuyerEmailIsNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldIsNull(FieldBuyerEmail))
}

// BuyerEmailNotNil applies the NotNil predicate on the "buyer_email" field.
func BuyerEmailNotNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldNotNull(FieldBuyerEmail))
}

// BuyerEmailEqualFold applies the EqualFold predicate on the "buyer_email" field.
func BuyerEmailEqualFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEqualFold(FieldBuyerEmail, v))
}

// BuyerEmailContainsFold applies the ContainsFold predicate on the "buyer_email" field.
func BuyerEmailContainsFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContainsFold(FieldBuyerEmail, v))
}

// NameStatusEQ applies the EQ predicate on the "name_status" field.
func NameStatusEQ(v NameStatus) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldNameStatus, v))
}

// NameStatusNEQ applies the NEQ predicate on the "name_status" field.
func NameStatusNEQ(v NameStatus) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldNameStatus, v))
}

// NameStatusIn applies the In predicate on the "name_status" field.
func NameStatusIn(vs ...NameStatus) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldNameStatus, vs...))
}

// NameStatusNotIn applies the NotIn predicate on the "name_status" field.
func NameStatusNotIn(vs ...NameStatus) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldNameStatus, vs...))
}

// NameRequestedAtTurnEQ applies the EQ predicate on the "name_requested_at_turn" field.
func NameRequestedAtTurnEQ(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldNameRequestedAtTurn, v))
}

// NameRequestedAtTurnNEQ applies the NEQ predicate on the "name_requested_at_turn" field.
func NameRequestedAtTurnNEQ(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldNameRequestedAtTurn, v))
}

// NameRequestedAtTurnIn applies the In predicate on the "name_requested_at_turn" field.
func NameRequestedAtTurnIn(vs ...int) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldNameRequestedAtTurn, vs...))
}

// NameRequestedAtTurnNotIn applies the NotIn predicate on the "name_requested_at_turn" field.
func NameRequestedAtTurnNotIn(vs ...int) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldNameRequestedAtTurn, vs...))
}

// NameRequestedAtTurnGT applies the GT predicate on the "name_requested_at_turn" field.
func NameRequestedAtTurnGT(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldNameRequestedAtTurn, v))
}

// NameRequestedAtTurnGTE applies the GTE predicate on the "name_requested_at_turn" field.
func NameRequestedAtTurnGTE(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldNameRequestedAtTurn, v))
}

// NameRequestedAtTurnLT applies the LT predicate on the "name_requested_at_turn" field.
func NameRequestedAtTurnLT(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldNameRequestedAtTurn, v))
}

// NameRequestedAtTurnLTE applies the LTE predicate on the "name_requested_at_turn" field.
func NameRequestedAtTurnLTE(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldNameRequestedAtTurn, v))
}

// NameRequestedAtTurnIsNil applies the IsNil predicate on the "name_requested_at_turn" field.
func NameRequestedAtTurnIsNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldIsNull(FieldNameRequestedAtTurn))
}

// NameRequestedAtTurnNotNil applies the NotNil predicate on the "name_requested_at_turn" field.
func NameRequestedAtTurnNotNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldNotNull(FieldNameRequestedAtTurn))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDIsNil applies the IsNil predicate on the "user_id" field.
func UserIDIsNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldIsNull(FieldUserID))
}

// UserIDNotNil applies the NotNil predicate on the "user_id" field.
func UserIDNotNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldNotNull(FieldUserID))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContainsFold(FieldUserID, v))
}

// BuyerNeedIDEQ applies the EQ predicate on the "buyer_need_id" field.
func BuyerNeedIDEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldBuyerNeedID, v))
}

// BuyerNeedIDNEQ applies the NEQ predicate on the "buyer_need_id" field.
func BuyerNeedIDNEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldBuyerNeedID, v))
}

// BuyerNeedIDIn applies the In predicate on the "buyer_need_id" field.
func BuyerNeedIDIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldBuyerNeedID, vs...))
}

// BuyerNeedIDNotIn applies the NotIn predicate on the "buyer_need_id" field.
func BuyerNeedIDNotIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldBuyerNeedID, vs...))
}

// BuyerNeedIDGT applies the GT predicate on the "buyer_need_id" field.
func BuyerNeedIDGT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldBuyerNeedID, v))
}

// BuyerNeedIDGTE applies the GTE predicate on the "buyer_need_id" field.
func BuyerNeedIDGTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldBuyerNeedID, v))
}

// BuyerNeedIDLT applies the LT predicate on the "buyer_need_id" field.
func BuyerNeedIDLT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldBuyerNeedID, v))
}

// BuyerNeedIDLTE applies the LTE predicate on the "buyer_need_id" field.
func BuyerNeedIDLTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldBuyerNeedID, v))
}

// BuyerNeedIDContains applies the Contains predicate on the "buyer_need_id" field.
func BuyerNeedIDContains(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContains(FieldBuyerNeedID, v))
}

// BuyerNeedIDHasPrefix applies the HasPrefix predicate on the "buyer_need_id" field.
func BuyerNeedIDHasPrefix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasPrefix(FieldBuyerNeedID, v))
}

// BuyerNeedIDHasSuffix applies the HasSuffix predicate on the "buyer_need_id" field.
func BuyerNeedIDHasSuffix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasSuffix(FieldBuyerNeedID, v))
}

// BuyerNeedIDIsNil applies the IsNil predicate on the "buyer_need_id" field.
func BuyerNeedIDIsNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldIsNull(FieldBuyerNeedID))
}

// BuyerNeedIDNotNil applies the NotNil predicate on the "buyer_need_id" field.
func BuyerNeedIDNotNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldNotNull(FieldBuyerNeedID))
}

// BuyerNeedIDEqualFold applies the EqualFold predicate on the "buyer_need_id" field.
func BuyerNeedIDEqualFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEqualFold(FieldBuyerNeedID, v))
}

// BuyerNeedIDContainsFold applies the ContainsFold predicate on the "buyer_need_id" field.
func BuyerNeedIDContainsFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContainsFold(FieldBuyerNeedID, v))
}

// WarehouseIDEQ applies the EQ predicate on the "warehouse_id" field.
func WarehouseIDEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldWarehouseID, v))
}

// WarehouseIDNEQ applies the NEQ predicate on the "warehouse_id" field.
func WarehouseIDNEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldWarehouseID, v))
}

// WarehouseIDIn applies the In predicate on the "warehouse_id" field.
func WarehouseIDIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldWarehouseID, vs...))
}

// WarehouseIDNotIn applies the NotIn predicate on the "warehouse_id" field.
func WarehouseIDNotIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldWarehouseID, vs...))
}

// WarehouseIDGT applies the GT predicate on the "warehouse_id" field.
func WarehouseIDGT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldWarehouseID, v))
}

// WarehouseIDGTE applies the GTE predicate on the "warehouse_id" field.
func WarehouseIDGTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldWarehouseID, v))
}

// WarehouseIDLT applies the LT predicate on the "warehouse_id" field.
func WarehouseIDLT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldWarehouseID, v))
}

// WarehouseIDLTE applies the LTE predicate on the "warehouse_id" field.
func WarehouseIDLTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldWarehouseID, v))
}

// WarehouseIDContains applies the Contains predicate on the "warehouse_id" field.
func WarehouseIDContains(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContains(FieldWarehouseID, v))
}

// WarehouseIDHasPrefix applies the HasPrefix predicate on the "warehouse_id" field.
func WarehouseIDHasPrefix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasPrefix(FieldWarehouseID, v))
}

// WarehouseIDHasSuffix applies the HasSuffix predicate on the "warehouse_id" field.
func WarehouseIDHasSuffix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasSuffix(FieldWarehouseID, v))
}

// WarehouseIDIsNil applies the IsNil predicate on the "warehouse_id" field.
func WarehouseIDIsNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldIsNull(FieldWarehouseID))
}

// WarehouseIDNotNil applies the NotNil predicate on the "warehouse_id" field.
func WarehouseIDNotNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldNotNull(FieldWarehouseID))
}

// WarehouseIDEqualFold applies the EqualFold predicate on the "warehouse_id" field.
func WarehouseIDEqualFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEqualFold(FieldWarehouseID, v))
}

// WarehouseIDContainsFold applies the ContainsFold predicate on the "warehouse_id" field.
func WarehouseIDContainsFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContainsFold(FieldWarehouseID, v))
}

// EngagementIDEQ applies the EQ predicate on the "engagement_id" field.
func EngagementIDEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldEngagementID, v))
}

// EngagementIDNEQ applies the NEQ predicate on the "engagement_id" field.
func EngagementIDNEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldEngagementID, v))
}

// EngagementIDIn applies the In predicate on the "engagement_id" field.
func EngagementIDIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldEngagementID, vs...))
}

// EngagementIDNotIn applies the NotIn predicate on the "engagement_id" field.
func EngagementIDNotIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldEngagementID, vs...))
}

// EngagementIDGT applies the GT predicate on the "engagement_id" field.
func EngagementIDGT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldEngagementID, v))
}

// EngagementIDGTE applies the GTE predicate on the "engagement_id" field.
func EngagementIDGTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldEngagementID, v))
}

// EngagementIDLT applies the LT predicate on the "engagement_id" field.
func EngagementIDLT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldEngagementID, v))
}

// EngagementIDLTE applies the LTE predicate on the "engagement_id" field.
func EngagementIDLTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldEngagementID, v))
}

// EngagementIDContains applies the Contains predicate on the "engagement_id" field.
func EngagementIDContains(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContains(FieldEngagementID, v))
}

// EngagementIDHasPrefix applies the HasPrefix predicate on the "engagement_id" field.
func EngagementIDHasPrefix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasPrefix(FieldEngagementID, v))
}

// EngagementIDHasSuffix applies the HasSuffix predicate on the "engagement_id" field.
func EngagementIDHasSuffix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasSuffix(FieldEngagementID, v))
}

// EngagementIDIsNil applies the IsNil predicate on the "engagement_id" field.
func EngagementIDIsNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldIsNull(FieldEngagementID))
}

// EngagementIDNotNil applies the NotNil predicate on the "engagement_id" field.
func EngagementIDNotNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldNotNull(FieldEngagementID))
}

// EngagementIDEqualFold applies the EqualFold predicate on the "engagement_id" field.
func EngagementIDEqualFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEqualFold(FieldEngagementID, v))
}

// EngagementIDContainsFold applies the ContainsFold predicate on the "engagement_id" field.
func EngagementIDContainsFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContainsFold(FieldEngagementID, v))
}

// GuaranteeLinkTokenEQ applies the EQ predicate on the "guarantee_link_token" field.
func GuaranteeLinkTokenEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldGuaranteeLinkToken, v))
}

// GuaranteeLinkTokenNEQ applies the NEQ predicate on the "guarantee_link_token" field.
func GuaranteeLinkTokenNEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldGuaranteeLinkToken, v))
}

// GuaranteeLinkTokenIn applies the In predicate on the "guarantee_link_token" field.
func GuaranteeLinkTokenIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldGuaranteeLinkToken, vs...))
}

// GuaranteeLinkTokenNotIn applies the NotIn predicate on the "guarantee_link_token" field.
func GuaranteeLinkTokenNotIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldGuaranteeLinkToken, vs...))
}

// GuaranteeLinkTokenGT applies the GT predicate on the "guarantee_link_token" field.
func GuaranteeLinkTokenGT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldGuaranteeLinkToken, v))
}

// GuaranteeLinkTokenGTE applies the GTE predicate on the "guarantee_link_token" field.
func GuaranteeLinkTokenGTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldGuaranteeLinkToken, v))
}

// GuaranteeLinkTokenLT applies the LT predicate on the "guarantee_link_token" field.
func GuaranteeLinkTokenLT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldGuaranteeLinkToken, v))
}

// GuaranteeLinkTokenLTE applies the LTE predicate on the "guarantee_link_token" field.
func GuaranteeLinkTokenLTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldGuaranteeLinkToken, v))
}

// GuaranteeLinkTokenContains applies the Contains predicate on the "guarantee_link_token" field.
func GuaranteeLinkTokenContains(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContains(FieldGuaranteeLinkToken, v))
}

// GuaranteeLinkTokenHasPrefix applies the HasPrefix predicate on the "guarantee_link_token" field.
func GuaranteeLinkTokenHasPrefix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasPrefix(FieldGuaranteeLinkToken, v))
}

// GuaranteeLinkTokenHasSuffix applies the HasSuffix predicate on the "guarantee_link_token" field.
func GuaranteeLinkTokenHasSuffix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasSuffix(FieldGuaranteeLinkToken, v))
}

// GuaranteeLinkTokenIsNil applies the IsNil predicate on the "guarantee_link_token" field.
func GuaranteeLinkTokenIsNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldIsNull(FieldGuaranteeLinkToken))
}

// GuaranteeLinkTokenNotNil applies the NotNil predicate on the "guarantee_link_token" field.
func GuaranteeLinkTokenNotNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldNotNull(FieldGuaranteeLinkToken))
}

// GuaranteeLinkTokenEqualFold applies the EqualFold predicate on the "guarantee_link_token" field.
func GuaranteeLinkTokenEqualFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEqualFold(FieldGuaranteeLinkToken, v))
}

// GuaranteeLinkTokenContainsFold applies the ContainsFold predicate on the "guarantee_link_token" field.
func GuaranteeLinkTokenContainsFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContainsFold(FieldGuaranteeLinkToken, v))
}

// SearchSessionTokenEQ applies the EQ predicate on the "search_session_token" field.
func SearchSessionTokenEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldSearchSessionToken, v))
}

// SearchSessionTokenNEQ applies the NEQ predicate on the "search_session_token" field.
func SearchSessionTokenNEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldSearchSessionToken, v))
}

// SearchSessionTokenIn applies the In predicate on the "search_session_token" field.
func SearchSessionTokenIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldSearchSessionToken, vs...))
}

// SearchSessionTokenNotIn applies the NotIn predicate on the "search_session_token" field.
func SearchSessionTokenNotIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldSearchSessionToken, vs...))
}

// SearchSessionTokenGT applies the GT predicate on the "search_session_token" field.
func SearchSessionTokenGT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldSearchSessionToken, v))
}

// SearchSessionTokenGTE applies the GTE predicate on the "search_session_token" field.
func SearchSessionTokenGTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldSearchSessionToken, v))
}

// SearchSessionTokenLT applies the LT predicate on the "search_session_token" field.
func SearchSessionTokenLT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldSearchSessionToken, v))
}

// SearchSessionTokenLTE applies the LTE predicate on the "search_session_token" field.
func SearchSessionTokenLTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldSearchSessionToken, v))
}

// SearchSessionTokenContains applies the Contains predicate on the "search_session_token" field.
func SearchSessionTokenContains(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContains(FieldSearchSessionToken, v))
}

// SearchSessionTokenHasPrefix applies the HasPrefix predicate on the "search_session_token" field.
func SearchSessionTokenHasPrefix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasPrefix(FieldSearchSessionToken, v))
}

// SearchSessionTokenHasSuffix applies the HasSuffix predicate on the "search_session_token" field.
func SearchSessionTokenHasSuffix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasSuffix(FieldSearchSessionToken, v))
}

// SearchSessionTokenIsNil applies the IsNil predicate on the "search_session_token" field.
func SearchSessionTokenIsNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldIsNull(FieldSearchSessionToken))
}

// SearchSessionTokenNotNil applies the NotNil predicate on the "search_session_token" field.
func SearchSessionTokenNotNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldNotNull(FieldSearchSessionToken))
}

// SearchSessionTokenEqualFold applies the EqualFold predicate on the "search_session_token" field.
func SearchSessionTokenEqualFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEqualFold(FieldSearchSessionToken, v))
}

// SearchSessionTokenContainsFold applies the ContainsFold predicate on the "search_session_token" field.
func SearchSessionTokenContainsFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContainsFold(FieldSearchSessionToken, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldStatus, vs...))
}

// ReengagementStageEQ applies the EQ predicate on the "reengagement_stage" field.
func ReengagementStageEQ(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldReengagementStage, v))
}

// ReengagementStageNEQ applies the NEQ predicate on the "reengagement_stage" field.
func ReengagementStageNEQ(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldReengagementStage, v))
}

// ReengagementStageIn applies the In predicate on the "reengagement_stage" field.
func ReengagementStageIn(vs ...int) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldReengagementStage, vs...))
}

// ReengagementStageNotIn applies the NotIn predicate on the "reengagement_stage" field.
func ReengagementStageNotIn(vs ...int) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldReengagementStage, vs...))
}

// ReengagementStageGT applies the GT predicate on the "reengagement_stage" field.
func ReengagementStageGT(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldReengagementStage, v))
}

// ReengagementStageGTE applies the GTE predicate on the "reengagement_stage" field.
func ReengagementStageGTE(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldReengagementStage, v))
}

// ReengagementStageLT applies the LT predicate on the "reengagement_stage" field.
func ReengagementStageLT(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldReengagementStage, v))
}

// ReengagementStageLTE applies the LTE predicate on the "reengagement_stage" field.
func ReengagementStageLTE(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldReengagementStage, v))
}

// NextReengagementAtEQ applies the EQ predicate on the "next_reengagement_at" field.
func NextReengagementAtEQ(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldNextReengagementAt, v))
}

// NextReengagementAtNEQ applies the NEQ predicate on the "next_reengagement_at" field.
func NextReengagementAtNEQ(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldNextReengagementAt, v))
}

// NextReengagementAtIn applies the In predicate on the "next_reengagement_at" field.
func NextReengagementAtIn(vs ...time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldNextReengagementAt, vs...))
}

// NextReengagementAtNotIn applies the NotIn predicate on the "next_reengagement_at" field.
func NextReengagementAtNotIn(vs ...time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldNextReengagementAt, vs...))
}

// NextReengagementAtGT applies the GT predicate on the "next_reengagement_at" field.
func NextReengagementAtGT(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldNextReengagementAt, v))
}

// NextReengagementAtGTE applies the GTE predicate on the "next_reengagement_at" field.
func NextReengagementAtGTE(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldNextReengagementAt, v))
}

// NextReengagementAtLT applies the LT predicate on the "next_reengagement_at" field.
func NextReengagementAtLT(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldNextReengagementAt, v))
}

// NextReengagementAtLTE applies the LTE predicate on the "next_reengagement_at" field.
func NextReengagementAtLTE(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldNextReengagementAt, v))
}

// NextReengagementAtIsNil applies the IsNil predicate on the "next_reengagement_at" field.
func NextReengagementAtIsNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldIsNull(FieldNextReengagementAt))
}

// NextReengagementAtNotNil applies the NotNil predicate on the "next_reengagement_at" field.
func NextReengagementAtNotNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldNotNull(FieldNextReengagementAt))
}

// LastInboundAtEQ applies the EQ predicate on the "last_inbound_at" field.
func LastInboundAtEQ(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldLastInboundAt, v))
}

// LastInboundAtNEQ applies the NEQ predicate on the "last_inbound_at" field.
func LastInboundAtNEQ(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldLastInboundAt, v))
}

// LastInboundAtIn applies the In predicate on the "last_inbound_at" field.
func LastInboundAtIn(vs ...time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldLastInboundAt, vs...))
}

// LastInboundAtNotIn applies the NotIn predicate on the "last_inbound_at" field.
func LastInboundAtNotIn(vs ...time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldLastInboundAt, vs...))
}

// LastInboundAtGT applies the GT predicate on the "last_inbound_at" field.
func LastInboundAtGT(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldLastInboundAt, v))
}

// LastInboundAtGTE applies the GTE predicate on the "last_inbound_at" field.
func LastInboundAtGTE(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldLastInboundAt, v))
}

// LastInboundAtLT applies the LT predicate on the "last_inbound_at" field.
func LastInboundAtLT(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldLastInboundAt, v))
}

// LastInboundAtLTE applies the LTE predicate on the "last_inbound_at" field.
func LastInboundAtLTE(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldLastInboundAt, v))
}

// LastInboundAtIsNil applies the IsNil predicate on the "last_inbound_at" field.
func LastInboundAtIsNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldIsNull(FieldLastInboundAt))
}

// LastInboundAtNotNil applies the NotNil predicate on the "last_inbound_at" field.
func LastInboundAtNotNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldNotNull(FieldLastInboundAt))
}

// LastOutboundAtEQ applies the EQ predicate on the "last_outbound_at" field.
func LastOutboundAtEQ(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldLastOutboundAt, v))
}

// LastOutboundAtNEQ applies the NEQ predicate on the "last_outbound_at" field.
func LastOutboundAtNEQ(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldLastOutboundAt, v))
}

// LastOutboundAtIn applies the In predicate on the "last_outbound_at" field.
func LastOutboundAtIn(vs ...time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldLastOutboundAt, vs...))
}

// LastOutboundAtNotIn applies the NotIn predicate on the "last_outbound_at" field.
func LastOutboundAtNotIn(vs ...time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldLastOutboundAt, vs...))
}

// LastOutboundAtGT applies the GT predicate on the "last_outbound_at" field.
func LastOutboundAtGT(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldLastOutboundAt, v))
}

// LastOutboundAtGTE applies the GTE predicate on the "last_outbound_at" field.
func LastOutboundAtGTE(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldLastOutboundAt, v))
}

// LastOutboundAtLT applies the LT predicate on the "last_outbound_at" field.
func LastOutboundAtLT(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldLastOutboundAt, v))
}

// LastOutboundAtLTE applies the LTE predicate on the "last_outbound_at" field.
func LastOutboundAtLTE(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldLastOutboundAt, v))
}

// LastOutboundAtIsNil applies the IsNil predicate on the "last_outbound_at" field.
func LastOutboundAtIsNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldIsNull(FieldLastOutboundAt))
}

// LastOutboundAtNotNil applies the NotNil predicate on the "last_outbound_at" field.
func LastOutboundAtNotNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldNotNull(FieldLastOutboundAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasMessages applies the HasEdge predicate on the "messages" edge.
func HasMessages() predicate.Conversation {
	return predicate.Conversation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MessagesTable, MessagesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMessagesWith applies the HasEdge predicate on the "messages" edge with a given conditions (other predicates).
func HasMessagesWith(preds ...predicate.InboundMessage) predicate.Conversation {
	return predicate.Conversation(func(s *sql.Selector) {
		step := newMessagesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Conversation) predicate.Conversation {
	return predicate.Conversation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Conversation) predicate.Conversation {
	return predicate.Conversation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Conversation) predicate.Conversation {
	return predicate.Conversation(sql.NotPredicates(p))
}
