// Code generated by ent, DO NOT EDIT.

package engagement

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/warehouse-exchange/wex/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Engagement {
	return predicate.Engagement(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Engagement {
	return predicate.Engagement(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Engagement {
	return predicate.Engagement(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Engagement {
	return predicate.Engagement(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Engagement {
	return predicate.Engagement(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Engagement {
	return predicate.Engagement(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Engagement {
	return predicate.Engagement(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Engagement {
	return predicate.Engagement(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Engagement {
	return predicate.Engagement(sql.FieldContainsFold(FieldID, id))
}

// MatchID applies equality check predicate on the "match_id" field. It's identical to MatchIDEQ.
func MatchID(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldMatchID, v))
}

// BuyerNeedID applies equality check predicate on the "buyer_need_id" field. It's identical to BuyerNeedIDEQ.
func BuyerNeedID(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldBuyerNeedID, v))
}

// WarehouseID applies equality check predicate on the "warehouse_id" field. It's identical to WarehouseIDEQ.
func WarehouseID(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldWarehouseID, v))
}

// BuyerID applies equality check predicate on the "buyer_id" field. It's identical to BuyerIDEQ.
func BuyerID(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldBuyerID, v))
}

// CompanyID applies equality check predicate on the "company_id" field. It's identical to CompanyIDEQ.
func CompanyID(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldCompanyID, v))
}

// DealPingSentAt applies equality check predicate on the "deal_ping_sent_at" field. It's identical to DealPingSentAtEQ.
func DealPingSentAt(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldDealPingSentAt, v))
}

// DealPingExpiresAt applies equality check predicate on the "deal_ping_expires_at" field. It's identical to DealPingExpiresAtEQ.
func DealPingExpiresAt(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldDealPingExpiresAt, v))
}

// BuyerAcceptedAt applies equality check predicate on the "buyer_accepted_at" field. It's identical to BuyerAcceptedAtEQ.
func BuyerAcceptedAt(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldBuyerAcceptedAt, v))
}

// ContactCapturedAt applies equality check predicate on the "contact_captured_at" field. It's identical to ContactCapturedAtEQ.
func ContactCapturedAt(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldContactCapturedAt, v))
}

// AccountCreatedAt applies equality check predicate on the "account_created_at" field. It's identical to AccountCreatedAtEQ.
func AccountCreatedAt(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldAccountCreatedAt, v))
}

// GuaranteeSignedAt applies equality check predicate on the "guarantee_signed_at" field. It's identical to GuaranteeSignedAtEQ.
func GuaranteeSignedAt(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldGuaranteeSignedAt, v))
}

// AddressRevealedAt applies equality check predicate on the "address_revealed_at" field. It's identical to AddressRevealedAtEQ.
func AddressRevealedAt(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldAddressRevealedAt, v))
}

// TourRequestedAt applies equality check predicate on the "tour_requested_at" field. It's identical to TourRequestedAtEQ.
func TourRequestedAt(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldTourRequestedAt, v))
}

// TourConfirmedAt applies equality check predicate on the "tour_confirmed_at" field. It's identical to TourConfirmedAtEQ.
func TourConfirmedAt(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldTourConfirmedAt, v))
}

// TourScheduledFor applies equality check predicate on the "tour_scheduled_for" field. It's identical to TourScheduledForEQ.
func TourScheduledFor(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldTourScheduledFor, v))
}

// TourCompletedAt applies equality check predicate on the "tour_completed_at" field. It's identical to TourCompletedAtEQ.
func TourCompletedAt(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldTourCompletedAt, v))
}

// TourRescheduleCount applies equality check predicate on the "tour_reschedule_count" field. It's identical to TourRescheduleCountEQ.
func TourRescheduleCount(v int) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldTourRescheduleCount, v))
}

// InstantBookRequestedAt applies equality check predicate on the "instant_book_requested_at" field. It's identical to InstantBookRequestedAtEQ.
func InstantBookRequestedAt(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldInstantBookRequestedAt, v))
}

// InstantBookConfirmedAt applies equality check predicate on the "instant_book_confirmed_at" field. It's identical to InstantBookConfirmedAtEQ.
func InstantBookConfirmedAt(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldInstantBookConfirmedAt, v))
}

// BuyerConfirmedAt applies equality check predicate on the "buyer_confirmed_at" field. It's identical to BuyerConfirmedAtEQ.
func BuyerConfirmedAt(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldBuyerConfirmedAt, v))
}

// AgreementSentAt applies equality check predicate on the "agreement_sent_at" field. It's identical to AgreementSentAtEQ.
func AgreementSentAt(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldAgreementSentAt, v))
}

// AgreementSignedAt applies equality check predicate on the "agreement_signed_at" field. It's identical to AgreementSignedAtEQ.
func AgreementSignedAt(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldAgreementSignedAt, v))
}

// LeaseStartDate applies equality check predicate on the "lease_start_date" field. It's identical to LeaseStartDateEQ.
func LeaseStartDate(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldLeaseStartDate, v))
}

// LeaseEndDate applies equality check predicate on the "lease_end_date" field. It's identical to LeaseEndDateEQ.
func LeaseEndDate(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldLeaseEndDate, v))
}

// ActivatedAt applies equality check predicate on the "activated_at" field. It's identical to ActivatedAtEQ.
func ActivatedAt(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldActivatedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldCompletedAt, v))
}

// InsuranceUploaded applies equality check predicate on the "insurance_uploaded" field. It's identical to InsuranceUploadedEQ.
func InsuranceUploaded(v bool) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldInsuranceUploaded, v))
}

// CompanyDocsUploaded applies equality check predicate on the "company_docs_uploaded" field. It's identical to CompanyDocsUploadedEQ.
func CompanyDocsUploaded(v bool) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldCompanyDocsUploaded, v))
}

// PaymentMethodAdded applies equality check predicate on the "payment_method_added" field. It's identical to PaymentMethodAddedEQ.
func PaymentMethodAdded(v bool) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldPaymentMethodAdded, v))
}

// Sqft applies equality check predicate on the "sqft" field. It's identical to SqftEQ.
func Sqft(v int) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldSqft, v))
}

// SupplierRate applies equality check predicate on the "supplier_rate" field. It's identical to SupplierRateEQ.
func SupplierRate(v float64) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldSupplierRate, v))
}

// BuyerRate applies equality check predicate on the "buyer_rate" field. It's identical to BuyerRateEQ.
func BuyerRate(v float64) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldBuyerRate, v))
}

// MonthlySupplierPayout applies equality check predicate on the "monthly_supplier_payout" field. It's identical to MonthlySupplierPayoutEQ.
func MonthlySupplierPayout(v float64) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldMonthlySupplierPayout, v))
}

// MonthlyBuyerTotal applies equality check predicate on the "monthly_buyer_total" field. It's identical to MonthlyBuyerTotalEQ.
func MonthlyBuyerTotal(v float64) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldMonthlyBuyerTotal, v))
}

// DeclineReason applies equality check predicate on the "decline_reason" field. It's identical to DeclineReasonEQ.
func DeclineReason(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldDeclineReason, v))
}

// CancelReason applies equality check predicate on the "cancel_reason" field. It's identical to CancelReasonEQ.
func CancelReason(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldCancelReason, v))
}

// DecisionTimerPausedAt applies equality check predicate on the "decision_timer_paused_at" field. It's identical to DecisionTimerPausedAtEQ.
func DecisionTimerPausedAt(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldDecisionTimerPausedAt, v))
}

// AdminFlagged applies equality check predicate on the "admin_flagged" field. It's identical to AdminFlaggedEQ.
func AdminFlagged(v bool) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldAdminFlagged, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldUpdatedAt, v))
}

// MatchIDEQ applies the EQ predicate on the "match_id" field.
func MatchIDEQ(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldMatchID, v))
}

// MatchIDNEQ applies the NEQ predicate on the "match_id" field.
func MatchIDNEQ(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldNEQ(FieldMatchID, v))
}

// MatchIDIn applies the In predicate on the "match_id" field.
func MatchIDIn(vs ...string) predicate.Engagement {
	return predicate.Engagement(sql.FieldIn(FieldMatchID, vs...))
}

// MatchIDNotIn applies the NotIn predicate on the "match_id" field.
func MatchIDNotIn(vs ...string) predicate.Engagement {
	return predicate.Engagement(sql.FieldNotIn(FieldMatchID, vs...))
}

// MatchIDGT applies the GT predicate on the "match_id" field.
func MatchIDGT(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldGT(FieldMatchID, v))
}

// MatchIDGTE applies the GTE predicate on the "match_id" field.
func MatchIDGTE(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldGTE(FieldMatchID, v))
}

// MatchIDLT applies the LT predicate on the "match_id" field.
func MatchIDLT(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldLT(FieldMatchID, v))
}

// MatchIDLTE applies the LTE predicate on the "match_id" field.
func MatchIDLTE(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldLTE(FieldMatchID, v))
}

// MatchIDContains applies the Contains predicate on the "match_id" field.
func MatchIDContains(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldContains(FieldMatchID, v))
}

// MatchIDHasPrefix applies the HasPrefix predicate on the "match_id" field.
func MatchIDHasPrefix(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldHasPrefix(FieldMatchID, v))
}

// MatchIDHasSuffix applies the HasSuffix predicate on the "match_id" field.
func MatchIDHasSuffix(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldHasSuffix(FieldMatchID, v))
}

// MatchIDEqualFold applies the EqualFold predicate on the "match_id" field.
func MatchIDEqualFold(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldEqualFold(FieldMatchID, v))
}

// MatchIDContainsFold applies the ContainsFold predicate on the "match_id" field.
func MatchIDContainsFold(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldContainsFold(FieldMatchID, v))
}

// BuyerNeedIDEQ applies the EQ predicate on the "buyer_need_id" field.
func BuyerNeedIDEQ(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldBuyerNeedID, v))
}

// BuyerNeedIDNEQ applies the NEQ predicate on the "buyer_need_id" field.
func BuyerNeedIDNEQ(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldNEQ(FieldBuyerNeedID, v))
}

// BuyerNeedIDIn applies the In predicate on the "buyer_need_id" field.
func BuyerNeedIDIn(vs ...string) predicate.Engagement {
	return predicate.Engagement(sql.FieldIn(FieldBuyerNeedID, vs...))
}

// BuyerNeedIDNotIn applies the NotIn predicate on the "buyer_need_id" field.
func BuyerNeedIDNotIn(vs ...string) predicate.Engagement {
	return predicate.Engagement(sql.FieldNotIn(FieldBuyerNeedID, vs...))
}

// BuyerNeedIDGT applies the GT predicate on the "buyer_need_id" field.
func BuyerNeedIDGT(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldGT(FieldBuyerNeedID, v))
}

// BuyerNeedIDGTE applies the GTE predicate on the "buyer_need_id" field.
func BuyerNeedIDGTE(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldGTE(FieldBuyerNeedID, v))
}

// BuyerNeedIDLT applies the LT predicate on the "buyer_need_id" field.
func BuyerNeedIDLT(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldLT(FieldBuyerNeedID, v))
}

// BuyerNeedIDLTE applies the LTE predicate on the "buyer_need_id" field.
func BuyerNeedIDLTE(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldLTE(FieldBuyerNeedID, v))
}

// BuyerNeedIDContains applies the Contains predicate on the "buyer_need_id" field.
func BuyerNeedIDContains(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldContains(FieldBuyerNeedID, v))
}

// BuyerNeedIDHasPrefix applies the HasPrefix predicate on the "buyer_need_id" field.
func BuyerNeedIDHasPrefix(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldHasPrefix(FieldBuyerNeedID, v))
}

// BuyerNeedIDHasSuffix applies the HasSuffix predicate on the "buyer_need_id" field.
func BuyerNeedIDHasSuffix(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldHasSuffix(FieldBuyerNeedID, v))
}

// BuyerNeedIDEqualFold applies the EqualFold predicate on the "buyer_need_id" field.
func BuyerNeedIDEqualFold(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldEqualFold(FieldBuyerNeedID, v))
}

// BuyerNeedIDContainsFold applies the ContainsFold predicate on the "buyer_need_id" field.
func BuyerNeedIDContainsFold(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldContainsFold(FieldBuyerNeedID, v))
}

// WarehouseIDEQ applies the EQ predicate on the "warehouse_id" field.
func WarehouseIDEQ(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldWarehouseID, v))
}

// WarehouseIDNEQ applies the NEQ predicate on the "warehouse_id" field.
func WarehouseIDNEQ(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldNEQ(FieldWarehouseID, v))
}

// WarehouseIDIn applies the In predicate on the "warehouse_id" field.
func WarehouseIDIn(vs ...string) predicate.Engagement {
	return predicate.Engagement(sql.FieldIn(FieldWarehouseID, vs...))
}

// WarehouseIDNotIn applies the NotIn predicate on the "warehouse_id" field.
func WarehouseIDNotIn(vs ...string) predicate.Engagement {
	return predicate.Engagement(sql.FieldNotIn(FieldWarehouseID, vs...))
}

// WarehouseIDGT applies the GT predicate on the "warehouse_id" field.
func WarehouseIDGT(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldGT(FieldWarehouseID, v))
}

// WarehouseIDGTE applies the GTE predicate on the "warehouse_id" field.
func WarehouseIDGTE(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldGTE(FieldWarehouseID, v))
}

// WarehouseIDLT applies the LT predicate on the "warehouse_id" field.
func WarehouseIDLT(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldLT(FieldWarehouseID, v))
}

// WarehouseIDLTE applies the LTE predicate on the "warehouse_id" field.
func WarehouseIDLTE(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldLTE(FieldWarehouseID, v))
}

// WarehouseIDContains applies the Contains predicate on the "warehouse_id" field.
func WarehouseIDContains(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldContains(FieldWarehouseID, v))
}

// WarehouseIDHasPrefix applies the HasPrefix predicate on the "warehouse_id" field.
func WarehouseIDHasPrefix(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldHasPrefix(FieldWarehouseID, v))
}

// WarehouseIDHasSuffix applies the HasSuffix predicate on the "warehouse_id" field.
func WarehouseIDHasSuffix(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldHasSuffix(FieldWarehouseID, v))
}

// WarehouseIDEqualFold applies the EqualFold predicate on the "warehouse_id" field.
func WarehouseIDEqualFold(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldEqualFold(FieldWarehouseID, v))
}

// WarehouseIDContainsFold applies the ContainsFold predicate on the "warehouse_id" field.
func WarehouseIDContainsFold(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldContainsFold(FieldWarehouseID, v))
}

// BuyerIDEQ applies the EQ predicate on the "buyer_id" field.
func BuyerIDEQ(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldBuyerID, v))
}

// BuyerIDNEQ applies the NEQ predicate on the "buyer_id" field.
func BuyerIDNEQ(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldNEQ(FieldBuyerID, v))
}

// BuyerIDIn applies the In predicate on the "buyer_id" field.
func BuyerIDIn(vs ...string) predicate.Engagement {
	return predicate.Engagement(sql.FieldIn(FieldBuyerID, vs...))
}

// BuyerIDNotIn applies the NotIn predicate on the "buyer_id" field.
func BuyerIDNotIn(vs ...string) predicate.Engagement {
	return predicate.Engagement(sql.FieldNotIn(FieldBuyerID, vs...))
}

// BuyerIDGT applies the GT predicate on the "buyer_id" field.
func BuyerIDGT(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldGT(FieldBuyerID, v))
}

// BuyerIDGTE applies the GTE predicate on the "buyer_id" field.
func BuyerIDGTE(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldGTE(FieldBuyerID, v))
}

// BuyerIDLT applies the LT predicate on the "buyer_id" field.
func BuyerIDLT(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldLT(FieldBuyerID, v))
}

// BuyerIDLTE applies the LTE predicate on the "buyer_id" field.
func BuyerIDLTE(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldLTE(FieldBuyerID, v))
}

// BuyerIDContains applies the Contains predicate on the "buyer_id" field.
func BuyerIDContains(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldContains(FieldBuyerID, v))
}

// BuyerIDHasPrefix applies the HasPrefix predicate on the "buyer_id" field.
func BuyerIDHasPrefix(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldHasPrefix(FieldBuyerID, v))
}

// BuyerIDHasSuffix applies the HasSuffix predicate on the "buyer_id" field.
func BuyerIDHasSuffix(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldHasSuffix(FieldBuyerID, v))
}

// BuyerIDIsNil applies the IsNil predicate on the "buyer_id" field.
func BuyerIDIsNil() predicate.Engagement {
	return predicate.Engagement(sql.FieldIsNull(FieldBuyerID))
}

// BuyerIDNotNil applies the NotNil predicate on the "buyer_id" field.
func BuyerIDNotNil() predicate.Engagement {
	return predicate.Engagement(sql.FieldNotNull(FieldBuyerID))
}

// BuyerIDEqualFold applies the EqualFold predicate on the "buyer_id" field.
func BuyerIDEqualFold(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldEqualFold(FieldBuyerID, v))
}

// BuyerIDContainsFold applies the ContainsFold predicate on the "buyer_id" field.
func BuyerIDContainsFold(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldContainsFold(FieldBuyerID, v))
}

// CompanyIDEQ applies the EQ predicate on the "company_id" field.
func CompanyIDEQ(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldCompanyID, v))
}

// CompanyIDNEQ applies the NEQ predicate on the "company_id" field.
func CompanyIDNEQ(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldNEQ(FieldCompanyID, v))
}

// CompanyIDIn applies the In predicate on the "company_id" field.
func CompanyIDIn(vs ...string) predicate.Engagement {
	return predicate.Engagement(sql.FieldIn(FieldCompanyID, vs...))
}

// CompanyIDNotIn applies the NotIn predicate on the "company_id" field.
func CompanyIDNotIn(vs ...string) predicate.Engagement {
	return predicate.Engagement(sql.FieldNotIn(FieldCompanyID, vs...))
}

// CompanyIDGT applies the GT predicate on the "company_id" field.
func CompanyIDGT(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldGT(FieldCompanyID, v))
}

// CompanyIDGTE applies the GTE predicate on the "company_id" field.
func CompanyIDGTE(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldGTE(FieldCompanyID, v))
}

// CompanyIDLT applies the LT predicate on the "company_id" field.
func CompanyIDLT(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldLT(FieldCompanyID, v))
}

// CompanyIDLTE applies the LTE predicate on the "company_id" field.
func CompanyIDLTE(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldLTE(FieldCompanyID, v))
}

// CompanyIDContains applies the Contains predicate on the "company_id" field.
func CompanyIDContains(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldContains(FieldCompanyID, v))
}

// CompanyIDHasPrefix applies the HasPrefix predicate on the "company_id" field.
func CompanyIDHasPrefix(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldHasPrefix(FieldCompanyID, v))
}

// CompanyIDHasSuffix applies the HasSuffix predicate on the "company_id" field.
func CompanyIDHasSuffix(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldHasSuffix(FieldCompanyID, v))
}

// CompanyIDEqualFold applies the EqualFold predicate on the "company_id" field.
func CompanyIDEqualFold(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldEqualFold(FieldCompanyID, v))
}

// CompanyIDContainsFold applies the ContainsFold predicate on the "company_id" field.
func CompanyIDContainsFold(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldContainsFold(FieldCompanyID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Engagement {
	return predicate.Engagement(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Engagement {
	return predicate.Engagement(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Engagement {
	return predicate.Engagement(sql.FieldNotIn(FieldStatus, vs...))
}

// TierEQ applies the EQ predicate on the "tier" field.
func TierEQ(v Tier) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldTier, v))
}

// TierNEQ applies the NEQ predicate on the "tier" field.
func TierNEQ(v Tier) predicate.Engagement {
	return predicate.Engagement(sql.FieldNEQ(FieldTier, v))
}

// TierIn applies the In predicate on the "tier" field.
func TierIn(vs ...Tier) predicate.Engagement {
	return predicate.Engagement(sql.FieldIn(FieldTier, vs...))
}

// TierNotIn applies the NotIn predicate on the "tier" field.
func TierNotIn(vs ...Tier) predicate.Engagement {
	return predicate.Engagement(sql.FieldNotIn(FieldTier, vs...))
}

// PathEQ applies the EQ predicate on the "path" field.
func PathEQ(v Path) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldPath, v))
}

// PathNEQ applies the NEQ predicate on the "path" field.
func PathNEQ(v Path) predicate.Engagement {
	return predicate.Engagement(sql.FieldNEQ(FieldPath, v))
}

// PathIn applies the In predicate on the "path" field.
func PathIn(vs ...Path) predicate.Engagement {
	return predicate.Engagement(sql.FieldIn(FieldPath, vs...))
}

// PathNotIn applies the NotIn predicate on the "path" field.
func PathNotIn(vs ...Path) predicate.Engagement {
	return predicate.Engagement(sql.FieldNotIn(FieldPath, vs...))
}

// PathIsNil applies the IsNil predicate on the "path" field.
func PathIsNil() predicate.Engagement {
	return predicate.Engagement(sql.FieldIsNull(FieldPath))
}

// PathNotNil applies the NotNil predicate on the "path" field.
func PathNotNil() predicate.Engagement {
	return predicate.Engagement(sql.FieldNotNull(FieldPath))
}

// DealPingSentAtEQ applies the EQ predicate on the "deal_ping_sent_at" field.
func DealPingSentAtEQ(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldDealPingSentAt, v))
}

// DealPingSentAtNEQ applies the NEQ predicate on the "deal_ping_sent_at" field.
func DealPingSentAtNEQ(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldNEQ(FieldDealPingSentAt, v))
}

// DealPingSentAtIn applies the In predicate on the "deal_ping_sent_at" field.
func DealPingSentAtIn(vs ...time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldIn(FieldDealPingSentAt, vs...))
}

// DealPingSentAtNotIn applies the NotIn predicate on the "deal_ping_sent_at" field.
func DealPingSentAtNotIn(vs ...time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldNotIn(FieldDealPingSentAt, vs...))
}

// DealPingSentAtGT applies the GT predicate on the "deal_ping_sent_at" field.
func DealPingSentAtGT(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldGT(FieldDealPingSentAt, v))
}

// DealPingSentAtGTE applies the GTE predicate on the "deal_ping_sent_at" field.
func DealPingSentAtGTE(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldGTE(FieldDealPingSentAt, v))
}

// DealPingSentAtLT applies the LT predicate on the "deal_ping_sent_at" field.
func DealPingSentAtLT(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldLT(FieldDealPingSentAt, v))
}

// DealPingSentAtLTE applies the LTE predicate on the "deal_ping_sent_at" field.
func DealPingSentAtLTE(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldLTE(FieldDealPingSentAt, v))
}

// DealPingSentAtIsNil applies the IsNil predicate on the "deal_ping_sent_at" field.
func DealPingSentAtIsNil() predicate.Engagement {
	return predicate.Engagement(sql.FieldIsNull(FieldDealPingSentAt))
}

// DealPingSentAtNotNil applies the NotNil predicate on the "deal_ping_sent_at" field.
func DealPingSentAtNotNil() predicate.Engagement {
	return predicate.Engagement(sql.FieldNotNull(FieldDealPingSentAt))
}

// DealPingExpiresAtEQ applies the EQ predicate on the "deal_ping_expires_at" field.
func DealPingExpiresAtEQ(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldDealPingExpiresAt, v))
}

// DealPingExpiresAtNEQ applies the NEQ predicate on the "deal_ping_expires_at" field.
func DealPingExpiresAtNEQ(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldNEQ(FieldDealPingExpiresAt, v))
}

// DealPingExpiresAtIn applies the In predicate on the "deal_ping_expires_at" field.
func DealPingExpiresAtIn(vs ...time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldIn(FieldDealPingExpiresAt, vs...))
}

// DealPingExpiresAtNotIn applies the NotIn predicate on the "deal_ping_expires_at" field.
func DealPingExpiresAtNotIn(vs ...time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldNotIn(FieldDealPingExpiresAt, vs...))
}

// DealPingExpiresAtGT applies the GT predicate on the "deal_ping_expires_at" field.
func DealPingExpiresAtGT(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldGT(FieldDealPingExpiresAt, v))
}

// DealPingExpiresAtGTE applies the GTE predicate on the "deal_ping_expires_at" field.
func DealPingExpiresAtGTE(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldGTE(FieldDealPingExpiresAt, v))
}

// DealPingExpiresAtLT applies the LT predicate on the "deal_ping_expires_at" field.
func DealPingExpiresAtLT(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldLT(FieldDealPingExpiresAt, v))
}

// DealPingExpiresAtLTE applies the LTE predicate on the "deal_ping_expires_at" field.
func DealPingExpiresAtLTE(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldLTE(FieldDealPingExpiresAt, v))
}

// DealPingExpiresAtIsNil applies the IsNil predicate on the "deal_ping_expires_at" field.
func DealPingExpiresAtIsNil() predicate.Engagement {
	return predicate.Engagement(sql.FieldIsNull(FieldDealPingExpiresAt))
}

// DealPingExpiresAtNotNil applies the NotNil predicate on the "deal_ping_expires_at" field.
func DealPingExpiresAtNotNil() predicate.Engagement {
	return predicate.Engagement(sql.FieldNotNull(FieldDealPingExpiresAt))
}

// BuyerAcceptedAtEQ applies the EQ predicate on the "buyer_accepted_at" field.
func BuyerAcceptedAtEQ(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldBuyerAcceptedAt, v))
}

// BuyerAcceptedAtNEQ applies the NEQ predicate on the "buyer_accepted_at" field.
func BuyerAcceptedAtNEQ(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldNEQ(FieldBuyerAcceptedAt, v))
}

// BuyerAcceptedAtIn applies the In predicate on the "buyer_accepted_at" field.
func BuyerAcceptedAtIn(vs ...time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldIn(FieldBuyerAcceptedAt, vs...))
}

// BuyerAcceptedAtNotIn applies the NotIn predicate on the "buyer_accepted_at" field.
func BuyerAcceptedAtNotIn(vs ...time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldNotIn(FieldBuyerAcceptedAt, vs...))
}

// BuyerAcceptedAtGT applies the GT predicate on the "buyer_accepted_at" field.
func BuyerAcceptedAtGT(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldGT(FieldBuyerAcceptedAt, v))
}

// BuyerAcceptedAtGTE applies the GTE predicate on the "buyer_accepted_at" field.
func BuyerAcceptedAtGTE(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldGTE(FieldBuyerAcceptedAt, v))
}

// BuyerAcceptedAtLT applies the LT predicate on the "buyer_accepted_at" field.
func BuyerAcceptedAtLT(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldLT(FieldBuyerAcceptedAt, v))
}

// BuyerAcceptedAtLTE applies the LTE predicate on the "buyer_accepted_at" field.
func BuyerAcceptedAtLTE(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldLTE(FieldBuyerAcceptedAt, v))
}

// BuyerAcceptedAtIsNil applies the IsNil predicate on the "buyer_accepted_at" field.
func BuyerAcceptedAtIsNil() predicate.Engagement {
	return predicate.Engagement(sql.FieldIsNull(FieldBuyerAcceptedAt))
}

// BuyerAcceptedAtNotNil applies the NotNil predicate on the "buyer_accepted_at" field.
func BuyerAcceptedAtNotNil() predicate.Engagement {
	return predicate.Engagement(sql.FieldNotNull(FieldBuyerAcceptedAt))
}

// ContactCapturedAtEQ applies the EQ predicate on the "contact_captured_at" field.
func ContactCapturedAtEQ(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldContactCapturedAt, v))
}

// ContactCapturedAtNEQ applies the NEQ predicate on the "contact_captured_at" field.
func ContactCapturedAtNEQ(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldNEQ(FieldContactCapturedAt, v))
}

// ContactCapturedAtIn applies the In predicate on the "contact_captured_at" field.
func ContactCapturedAtIn(vs ...time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldIn(FieldContactCapturedAt, vs...))
}

// ContactCapturedAtNotIn applies the NotIn predicate on the "contact_captured_at" field.
func ContactCapturedAtNotIn(vs ...time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldNotIn(FieldContactCapturedAt, vs...))
}

// ContactCapturedAtGT applies the GT predicate on the "contact_captured_at" field.
func ContactCapturedAtGT(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldGT(FieldContactCapturedAt, v))
}

// ContactCapturedAtGTE applies the GTE predicate on the "contact_captured_at" field.
func ContactCapturedAtGTE(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldGTE(FieldContactCapturedAt, v))
}

// ContactCapturedAtLT applies the LT predicate on the "contact_captured_at" field.
func ContactCapturedAtLT(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldLT(FieldContactCapturedAt, v))
}

// ContactCapturedAtLTE applies the LTE predicate on the "contact_captured_at" field.
func ContactCapturedAtLTE(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldLTE(FieldContactCapturedAt, v))
}

// ContactCapturedAtIsNil applies the IsNil predicate on the "contact_captured_at" field.
func ContactCapturedAtIsNil() predicate.Engagement {
	return predicate.Engagement(sql.FieldIsNull(FieldContactCapturedAt))
}

// ContactCapturedAtNotNil applies the NotNil predicate on the "contact_captured_at" field.
func ContactCapturedAtNotNil() predicate.Engagement {
	return predicate.Engagement(sql.FieldNotNull(FieldContactCapturedAt))
}

// AccountCreatedAtEQ applies the EQ predicate on the "account_created_at" field.
func AccountCreatedAtEQ(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldAccountCreatedAt, v))
}

// AccountCreatedAtNEQ applies the NEQ predicate on the "account_created_at" field.
func AccountCreatedAtNEQ(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldNEQ(FieldAccountCreatedAt, v))
}

// AccountCreatedAtIn applies the In predicate on the "account_created_at" field.
func AccountCreatedAtIn(vs ...time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldIn(FieldAccountCreatedAt, vs...))
}

// AccountCreatedAtNotIn applies the NotIn predicate on the "account_created_at" field.
func AccountCreatedAtNotIn(vs ...time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldNotIn(FieldAccountCreatedAt, vs...))
}

// AccountCreatedAtGT applies the GT predicate on the "account_created_at" field.
func AccountCreatedAtGT(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldGT(FieldAccountCreatedAt, v))
}

// AccountCreatedAtGTE applies the GTE predicate on the "account_created_at" field.
func AccountCreatedAtGTE(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldGTE(FieldAccountCreatedAt, v))
}

// AccountCreatedAtLT applies the LT predicate on the "account_created_at" field.
func AccountCreatedAtLT(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldLT(FieldAccountCreatedAt, v))
}

// AccountCreatedAtLTE applies the LTE predicate on the "account_created_at" field.
func AccountCreatedAtLTE(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldLTE(FieldAccountCreatedAt, v))
}

// AccountCreatedAtIsNil applies the IsNil predicate on the "account_created_at" field.
func AccountCreatedAtIsNil() predicate.Engagement {
	return predicate.Engagement(sql.FieldIsNull(FieldAccountCreatedAt))
}

// AccountCreatedAtNotNil applies the NotNil predicate on the "account_created_at" field.
func AccountCreatedAtNotNil() predicate.Engagement {
	return predicate.Engagement(sql.FieldNotNull(FieldAccountCreatedAt))
}

// GuaranteeSignedAtEQ applies the EQ predicate on the "guarantee_signed_at" field.
func GuaranteeSignedAtEQ(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldGuaranteeSignedAt, v))
}

// GuaranteeSignedAtNEQ applies the NEQ predicate on the "guarantee_signed_at" field.
func GuaranteeSignedAtNEQ(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldNEQ(FieldGuaranteeSignedAt, v))
}

// GuaranteeSignedAtIn applies the In predicate on the "guarantee_signed_at" field.
func GuaranteeSignedAtIn(vs ...time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldIn(FieldGuaranteeSignedAt, vs...))
}

// GuaranteeSignedAtNotIn applies the NotIn predicate on the "guarantee_signed_at" field.
func GuaranteeSignedAtNotIn(vs ...time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldNotIn(FieldGuaranteeSignedAt, vs...))
}

// GuaranteeSignedAtGT applies the GT predicate on the "guarantee_signed_at" field.
func GuaranteeSignedAtGT(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldGT(FieldGuaranteeSignedAt, v))
}

// GuaranteeSignedAtGTE applies the GTE predicate on the "guarantee_signed_at" field.
func GuaranteeSignedAtGTE(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldGTE(FieldGuaranteeSignedAt, v))
}

// GuaranteeSignedAtLT applies the LT predicate on the "guarantee_signed_at" field.
func GuaranteeSignedAtLT(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldLT(FieldGuaranteeSignedAt, v))
}

// GuaranteeSignedAtLTE applies the LTE predicate on the "guarantee_signed_at" field.
func GuaranteeSignedAtLTE(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldLTE(FieldGuaranteeSignedAt, v))
}

// GuaranteeSignedAtIsNil applies the IsNil predicate on the "guarantee_signed_at" field.
func GuaranteeSignedAtIsNil() predicate.Engagement {
	return predicate.Engagement(sql.FieldIsNull(FieldGuaranteeSignedAt))
}

// GuaranteeSignedAtNotNil applies the NotNil predicate on the "guarantee_signed_at" field.
func GuaranteeSignedAtNotNil() predicate.Engagement {
	return predicate.Engagement(sql.FieldNotNull(FieldGuaranteeSignedAt))
}

// AddressRevealedAtEQ applies the EQ predicate on the "address_revealed_at" field.
func AddressRevealedAtEQ(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldAddressRevealedAt, v))
}

// AddressRevealedAtNEQ applies the NEQ predicate on the "address_revealed_at" field.
func AddressRevealedAtNEQ(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldNEQ(FieldAddressRevealedAt, v))
}

// AddressRevealedAtIn applies the In predicate on the "address_revealed_at" field.
func AddressRevealedAtIn(vs ...time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldIn(FieldAddressRevealedAt, vs...))
}

// AddressRevealedAtNotIn applies the NotIn predicate on the "address_revealed_at" field.
func AddressRevealedAtNotIn(vs ...time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldNotIn(FieldAddressRevealedAt, vs...))
}

// AddressRevealedAtGT applies the GT predicate on the "address_revealed_at" field.
func AddressRevealedAtGT(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldGT(FieldAddressRevealedAt, v))
}

// AddressRevealedAtGTE applies the GTE predicate on the "address_revealed_at" field.
func AddressRevealedAtGTE(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldGTE(FieldAddressRevealedAt, v))
}

// AddressRevealedAtLT applies the LT predicate on the "address_revealed_at" field.
func AddressRevealedAtLT(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldLT(FieldAddressRevealedAt, v))
}

// AddressRevealedAtLTE applies the LTE predicate on the "address_revealed_at" field.
func AddressRevealedAtLTE(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldLTE(FieldAddressRevealedAt, v))
}

// AddressRevealedAtIsNil applies the IsNil predicate on the "address_revealed_at" field.
func AddressRevealedAtIsNil() predicate.Engagement {
	return predicate.Engagement(sql.FieldIsNull(FieldAddressRevealedAt))
}

// AddressRevealedAtNotNil applies the NotNil predicate on the "address_revealed_at" field.
func AddressRevealedAtNotNil() predicate.Engagement {
	return predicate.Engagement(sql.FieldNotNull(FieldAddressRevealedAt))
}

// TourRequestedAtEQ applies the EQ predicate on the "tour_requested_at" field.
func TourRequestedAtEQ(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldTourRequestedAt, v))
}

// TourRequestedAtNEQ applies the NEQ predicate on the "tour_requested_at" field.
func TourRequestedAtNEQ(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldNEQ(FieldTourRequestedAt, v))
}

// TourRequestedAtIn applies the In predicate on the "tour_requested_at" field.
func TourRequestedAtIn(vs ...time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldIn(FieldTourRequestedAt, vs...))
}

// TourRequestedAtNotIn applies the NotIn predicate on the "tour_requested_at" field.
func TourRequestedAtNotIn(vs ...time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldNotIn(FieldTourRequestedAt, vs...))
}

// TourRequestedAtGT applies the GT predicate on the "tour_requested_at" field.
func TourRequestedAtGT(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldGT(FieldTourRequestedAt, v))
}

// TourRequestedAtGTE applies the GTE predicate on the "tour_requested_at" field.
func TourRequestedAtGTE(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldGTE(FieldTourRequestedAt, v))
}

// TourRequestedAtLT applies the LT predicate on the "tour_requested_at" field.
func TourRequestedAtLT(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldLT(FieldTourRequestedAt, v))
}

// TourRequestedAtLTE applies the LTE predicate on the "tour_requested_at" field.
func TourRequestedAtLTE(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldLTE(FieldTourRequestedAt, v))
}

// TourRequestedAtIsNil applies the IsNil predicate on the "tour_requested_at" field.
func TourRequestedAtIsNil() predicate.Engagement {
	return predicate.Engagement(sql.FieldIsNull(FieldTourRequestedAt))
}

// TourRequestedAtNotNil applies the NotNil predicate on the "tour_requested_at" field.
func TourRequestedAtNotNil() predicate.Engagement {
	return predicate.Engagement(sql.FieldNotNull(FieldTourRequestedAt))
}

// TourConfirmedAtEQ applies the EQ predicate on the "tour_confirmed_at" field.
func TourConfirmedAtEQ(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldTourConfirmedAt, v))
}

// TourConfirmedAtNEQ applies the NEQ predicate on the "tour_confirmed_at" field.
func TourConfirmedAtNEQ(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldNEQ(FieldTourConfirmedAt, v))
}

// TourConfirmedAtIn applies the In predicate on the "tour_confirmed_at" field.
func TourConfirmedAtIn(vs ...time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldIn(FieldTourConfirmedAt, vs...))
}

// TourConfirmedAtNotIn applies the NotIn predicate on the "tour_confirmed_at" field.
func TourConfirmedAtNotIn(vs ...time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldNotIn(FieldTourConfirmedAt, vs...))
}

// TourConfirmedAtGT applies the GT predicate on the "tour_confirmed_at" field.
func TourConfirmedAtGT(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldGT(FieldTourConfirmedAt, v))
}

// TourConfirmedAtGTE applies the GTE predicate on the "tour_confirmed_at" field.
func TourConfirmedAtGTE(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldGTE(FieldTourConfirmedAt, v))
}

// TourConfirmedAtLT applies the LT predicate on the "tour_confirmed_at" field.
func TourConfirmedAtLT(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldLT(FieldTourConfirmedAt, v))
}

// TourConfirmedAtLTE applies the LTE predicate on the "tour_confirmed_at" field.
func TourConfirmedAtLTE(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldLTE(FieldTourConfirmedAt, v))
}

// TourConfirmedAtIsNil applies the IsNil predicate on the "tour_confirmed_at" field.
func TourConfirmedAtIsNil() predicate.Engagement {
	return predicate.Engagement(sql.FieldIsNull(FieldTourConfirmedAt))
}

// TourConfirmedAtNotNil applies the NotNil predicate on the "tour_confirmed_at" field.
func TourConfirmedAtNotNil() predicate.Engagement {
	return predicate.Engagement(sql.FieldNotNull(FieldTourConfirmedAt))
}

// TourScheduledForEQ applies the EQ predicate on the "tour_scheduled_for" field.
func TourScheduledForEQ(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldTourScheduledFor, v))
}

// TourScheduledForNEQ applies the NEQ predicate on the "tour_scheduled_for" field.
func TourScheduledForNEQ(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldNEQ(FieldTourScheduledFor, v))
}

// TourScheduledForIn applies the In predicate on the "tour_scheduled_for" field.
func TourScheduledForIn(vs ...time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldIn(FieldTourScheduledFor, vs...))
}

// TourScheduledForNotIn applies the NotIn predicate on the "tour_scheduled_for" field.
func TourScheduledForNotIn(vs ...time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldNotIn(FieldTourScheduledFor, vs...))
}

// TourScheduledForGT applies the GT predicate on the "tour_scheduled_for" field.
func TourScheduledForGT(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldGT(FieldTourScheduledFor, v))
}

// TourScheduledForGTE applies the GTE predicate on the "tour_scheduled_for" field.
func TourScheduledForGTE(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldGTE(FieldTourScheduledFor, v))
}

// TourScheduledForLT applies the LT predicate on the "tour_scheduled_for" field.
func TourScheduledForLT(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldLT(FieldTourScheduledFor, v))
}

// TourScheduledForLTE applies the LTE predicate on the "tour_scheduled_for" field.
func TourScheduledForLTE(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldLTE(FieldTourScheduledFor, v))
}

// TourScheduledForIsNil applies the IsNil predicate on the "tour_scheduled_for" field.
func TourScheduledForIsNil() predicate.Engagement {
	return predicate.Engagement(sql.FieldIsNull(FieldTourScheduledFor))
}

// TourScheduledForNotNil applies the NotNil predicate on the "tour_scheduled_for" field.
func TourScheduledForNotNil() predicate.Engagement {
	return predicate.Engagement(sql.FieldNotNull(FieldTourScheduledFor))
}

// TourCompletedAtEQ applies the EQ predicate on the "tour_completed_at" field.
func TourCompletedAtEQ(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldTourCompletedAt, v))
}

// TourCompletedAtNEQ applies the NEQ predicate on the "tour_completed_at" field.
func TourCompletedAtNEQ(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldNEQ(FieldTourCompletedAt, v))
}

// TourCompletedAtIn applies the In predicate on the "tour_completed_at" field.
func TourCompletedAtIn(vs ...time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldIn(FieldTourCompletedAt, vs...))
}

// TourCompletedAtNotIn applies the NotIn predicate on the "tour_completed_at" field.
func TourCompletedAtNotIn(vs ...time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldNotIn(FieldTourCompletedAt, vs...))
}

// TourCompletedAtGT applies the GT predicate on the "tour_completed_at" field.
func TourCompletedAtGT(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldGT(FieldTourCompletedAt, v))
}

// TourCompletedAtGTE applies the GTE predicate on the "tour_completed_at" field.
func TourCompletedAtGTE(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldGTE(FieldTourCompletedAt, v))
}

// TourCompletedAtLT applies the LT predicate on the "tour_completed_at" field.
func TourCompletedAtLT(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldLT(FieldTourCompletedAt, v))
}

// TourCompletedAtLTE applies the LTE predicate on the "tour_completed_at" field.
func TourCompletedAtLTE(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldLTE(FieldTourCompletedAt, v))
}

// TourCompletedAtIsNil applies the IsNil predicate on the "tour_completed_at" field.
func TourCompletedAtIsNil() predicate.Engagement {
	return predicate.Engagement(sql.FieldIsNull(FieldTourCompletedAt))
}

// TourCompletedAtNotNil applies the NotNil predicate on the "tour_completed_at" field.
func TourCompletedAtNotNil() predicate.Engagement {
	return predicate.Engagement(sql.FieldNotNull(FieldTourCompletedAt))
}

// TourRescheduleCountEQ applies the EQ predicate on the "tour_reschedule_count" field.
func TourRescheduleCountEQ(v int) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldTourRescheduleCount, v))
}

// TourRescheduleCountNEQ applies the NEQ predicate on the "tour_reschedule_count" field.
func TourRescheduleCountNEQ(v int) predicate.Engagement {
	return predicate.Engagement(sql.FieldNEQ(FieldTourRescheduleCount, v))
}

// TourRescheduleCountIn applies the In predicate on the "tour_reschedule_count" field.
func TourRescheduleCountIn(vs ...int) predicate.Engagement {
	return predicate.Engagement(sql.FieldIn(FieldTourRescheduleCount, vs...))
}

// TourRescheduleCountNotIn applies the NotIn predicate on the "tour_reschedule_count" field.
func TourRescheduleCountNotIn(vs ...int) predicate.Engagement {
	return predicate.Engagement(sql.FieldNotIn(FieldTourRescheduleCount, vs...))
}

// TourRescheduleCountGT applies the GT predicate on the "tour_reschedule_count" field.
func TourRescheduleCountGT(v int) predicate.Engagement {
	return predicate.Engagement(sql.FieldGT(FieldTourRescheduleCount, v))
}

// TourRescheduleCountGTE applies the GTE predicate on the "tour_reschedule_count" field.
func TourRescheduleCountGTE(v int) predicate.Engagement {
	return predicate.Engagement(sql.FieldGTE(FieldTourRescheduleCount, v))
}

// TourRescheduleCountLT applies the LT predicate on the "tour_reschedule_count" field.
func TourRescheduleCountLT(v int) predicate.Engagement {
	return predicate.Engagement(sql.FieldLT(FieldTourRescheduleCount, v))
}

// TourRescheduleCountLTE applies the LTE predicate on the "tour_reschedule_count" field.
func TourRescheduleCountLTE(v int) predicate.Engagement {
	return predicate.Engagement(sql.FieldLTE(FieldTourRescheduleCount, v))
}

// InstantBookRequestedAtEQ applies the EQ predicate on the "instant_book_requested_at" field.
func InstantBookRequestedAtEQ(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldInstantBookRequestedAt, v))
}

// InstantBookRequestedAtNEQ applies the NEQ predicate on the "instant_book_requested_at" field.
func InstantBookRequestedAtNEQ(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldNEQ(FieldInstantBookRequestedAt, v))
}

// InstantBookRequestedAtIn applies the In predicate on the "instant_book_requested_at" field.
func InstantBookRequestedAtIn(vs ...time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldIn(FieldInstantBookRequestedAt, vs...))
}

// InstantBookRequestedAtNotIn applies the NotIn predicate on the "instant_book_requested_at" field.
func InstantBookRequestedAtNotIn(vs ...time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldNotIn(FieldInstantBookRequestedAt, vs...))
}

// InstantBookRequestedAtGT applies the GT predicate on the "instant_book_requested_at" field.
func InstantBookRequestedAtGT(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldGT(FieldInstantBookRequestedAt, v))
}

// InstantBookRequestedAtGTE applies the GTE predicate on the "instant_book_requested_at" field.
func InstantBookRequestedAtGTE(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldGTE(FieldInstantBookRequestedAt, v))
}

// InstantBookRequestedAtLT applies the LT predicate on the "instant_book_requested_at" field.
func InstantBookRequestedAtLT(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldLT(FieldInstantBookRequestedAt, v))
}

// InstantBookRequestedAtLTE applies the LTE predicate on the "instant_book_requested_at" field.
func InstantBookRequestedAtLTE(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldLTE(FieldInstantBookRequestedAt, v))
}

// InstantBookRequestedAtIsNil applies the IsNil predicate on the "instant_book_requested_at" field.
func InstantBookRequestedAtIsNil() predicate.Engagement {
	return predicate.Engagement(sql.FieldIsNull(FieldInstantBookRequestedAt))
}

// InstantBookRequestedAtNotNil applies the NotNil predicate on the "instant_book_requested_at" field.
func InstantBookRequestedAtNotNil() predicate.Engagement {
	return predicate.Engagement(sql.FieldNotNull(FieldInstantBookRequestedAt))
}

// InstantBookConfirmedAtEQ applies the EQ predicate on the "instant_book_confirmed_at" field.
func InstantBookConfirmedAtEQ(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldInstantBookConfirmedAt, v))
}

// InstantBookConfirmedAtNEQ applies the NEQ predicate on the "instant_book_confirmed_at" field.
func InstantBookConfirmedAtNEQ(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldNEQ(FieldInstantBookConfirmedAt, v))
}

// InstantBookConfirmedAtIn applies the In predicate on the "instant_book_confirmed_at" field.
func InstantBookConfirmedAtIn(vs ...time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldIn(FieldInstantBookConfirmedAt, vs...))
}

// InstantBookConfirmedAtNotIn applies the NotIn predicate on the "instant_book_confirmed_at" field.
func InstantBookConfirmedAtNotIn(vs ...time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldNotIn(FieldInstantBookConfirmedAt, vs...))
}

// InstantBookConfirmedAtGT applies the GT predicate on the "instant_book_confirmed_at" field.
func InstantBookConfirmedAtGT(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldGT(FieldInstantBookConfirmedAt, v))
}

// InstantBookConfirmedAtGTE applies the GTE predicate on the "instant_book_confirmed_at" field.
func InstantBookConfirmedAtGTE(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldGTE(FieldInstantBookConfirmedAt, v))
}

// InstantBookConfirmedAtLT applies the LT predicate on the "instant_book_confirmed_at" field.
func InstantBookConfirmedAtLT(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldLT(FieldInstantBookConfirmedAt, v))
}

// InstantBookConfirmedAtLTE applies the LTE predicate on the "instant_book_confirmed_at" field.
func InstantBookConfirmedAtLTE(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldLTE(FieldInstantBookConfirmedAt, v))
}

// InstantBookConfirmedAtIsNil applies the IsNil predicate on the "instant_book_confirmed_at" field.
func InstantBookConfirmedAtIsNil() predicate.Engagement {
	return predicate.Engagement(sql.FieldIsNull(FieldInstantBookConfirmedAt))
}

// InstantBookConfirmedAtNotNil applies the NotNil predicate on the "instant_book_confirmed_at" field.
func InstantBookConfirmedAtNotNil() predicate.Engagement {
	return predicate.Engagement(sql.FieldNotNull(FieldInstantBookConfirmedAt))
}

// BuyerConfirmedAtEQ applies the EQ predicate on the "buyer_confirmed_at" field.
func BuyerConfirmedAtEQ(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldBuyerConfirmedAt, v))
}

// BuyerConfirmedAtNEQ applies the NEQ predicate on the "buyer_confirmed_at" field.
func BuyerConfirmedAtNEQ(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldNEQ(FieldBuyerConfirmedAt, v))
}

// BuyerConfirmedAtIn applies the In predicate on the "buyer_confirmed_at" field.
func BuyerConfirmedAtIn(vs ...time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldIn(FieldBuyerConfirmedAt, vs...))
}

// BuyerConfirmedAtNotIn applies the NotIn predicate on the "buyer_confirmed_at" field.
func BuyerConfirmedAtNotIn(vs ...time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldNotIn(FieldBuyerConfirmedAt, vs...))
}

// BuyerConfirmedAtGT applies the GT predicate on the "buyer_confirmed_at" field.
func BuyerConfirmedAtGT(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldGT(FieldBuyerConfirmedAt, v))
}

// BuyerConfirmedAtGTE applies the GTE predicate on the "buyer_confirmed_at" field.
func BuyerConfirmedAtGTE(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldGTE(FieldBuyerConfirmedAt, v))
}

// BuyerConfirmedAtLT applies the LT predicate on the "buyer_confirmed_at" field.
func BuyerConfirmedAtLT(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldLT(FieldBuyerConfirmedAt, v))
}

// BuyerConfirmedAtLTE applies the LTE predicate on the "buyer_confirmed_at" field.
func BuyerConfirmedAtLTE(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldLTE(FieldBuyerConfirmedAt, v))
}

// BuyerConfirmedAtIsNil applies the IsNil predicate on the "buyer_confirmed_at" field.
func BuyerConfirmedAtIsNil() predicate.Engagement {
	return predicate.Engagement(sql.FieldIsNull(FieldBuyerConfirmedAt))
}

// BuyerConfirmedAtNotNil applies the NotNil predicate on the "buyer_confirmed_at" field.
func BuyerConfirmedAtNotNil() predicate.Engagement {
	return predicate.Engagement(sql.FieldNotNull(FieldBuyerConfirmedAt))
}

// AgreementSentAtEQ applies the EQ predicate on the "agreement_sent_at" field.
func AgreementSentAtEQ(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldAgreementSentAt, v))
}

// AgreementSentAtNEQ applies the NEQ predicate on the "agreement_sent_at" field.
func AgreementSentAtNEQ(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldNEQ(FieldAgreementSentAt, v))
}

// AgreementSentAtIn applies the In predicate on the "agreement_sent_at" field.
func AgreementSentAtIn(vs ...time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldIn(FieldAgreementSentAt, vs...))
}

// AgreementSentAtNotIn applies the NotIn predicate on the "agreement_sent_at" field.
func AgreementSentAtNotIn(vs ...time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldNotIn(FieldAgreementSentAt, vs...))
}

// AgreementSentAtGT applies the GT predicate on the "agreement_sent_at" field.
func AgreementSentAtGT(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldGT(FieldAgreementSentAt, v))
}

// AgreementSentAtGTE applies the GTE predicate on the "agreement_sent_at" field.
func AgreementSentAtGTE(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldGTE(FieldAgreementSentAt, v))
}

// AgreementSentAtLT applies the LT predicate on the "agreement_sent_at" field.
func AgreementSentAtLT(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldLT(FieldAgreementSentAt, v))
}

// AgreementSentAtLTE applies the LTE predicate on the "agreement_sent_at" field.
func AgreementSentAtLTE(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldLTE(FieldAgreementSentAt, v))
}

// AgreementSentAtIsNil applies the IsNil predicate on the "agreement_sent_at" field.
func AgreementSentAtIsNil() predicate.Engagement {
	return predicate.Engagement(sql.FieldIsNull(FieldAgreementSentAt))
}

// AgreementSentAtNotNil applies the NotNil predicate on the "agreement_sent_at" field.
func AgreementSentAtNotNil() predicate.Engagement {
	return predicate.Engagement(sql.FieldNotNull(FieldAgreementSentAt))
}

// AgreementSignedAtEQ applies the EQ predicate on the "agreement_signed_at" field.
func AgreementSignedAtEQ(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldAgreementSignedAt, v))
}

// AgreementSignedAtNEQ applies the NEQ predicate on the "agreement_signed_at" field.
func AgreementSignedAtNEQ(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldNEQ(FieldAgreementSignedAt, v))
}

// AgreementSignedAtIn applies the In predicate on the "agreement_signed_at" field.
func AgreementSignedAtIn(vs ...time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldIn(FieldAgreementSignedAt, vs...))
}

// AgreementSignedAtNotIn applies the NotIn predicate on the "agreement_signed_at" field.
func AgreementSignedAtNotIn(vs ...time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldNotIn(FieldAgreementSignedAt, vs...))
}

// AgreementSignedAtGT applies the GT predicate on the "agreement_signed_at" field.
func AgreementSignedAtGT(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldGT(FieldAgreementSignedAt, v))
}

// AgreementSignedAtGTE applies the GTE predicate on the "agreement_signed_at" field.
func AgreementSignedAtGTE(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldGTE(FieldAgreementSignedAt, v))
}

// AgreementSignedAtLT applies the LT predicate on the "agreement_signed_at" field.
func AgreementSignedAtLT(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldLT(FieldAgreementSignedAt, v))
}

// AgreementSignedAtLTE applies the LTE predicate on the "agreement_signed_at" field.
func AgreementSignedAtLTE(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldLTE(FieldAgreementSignedAt, v))
}

// AgreementSignedAtIsNil applies the IsNil predicate on the "agreement_signed_at" field.
func AgreementSignedAtIsNil() predicate.Engagement {
	return predicate.Engagement(sql.FieldIsNull(FieldAgreementSignedAt))
}

// AgreementSignedAtNotNil applies the NotNil predicate on the "agreement_signed_at" field.
func AgreementSignedAtNotNil() predicate.Engagement {
	return predicate.Engagement(sql.FieldNotNull(FieldAgreementSignedAt))
}

// LeaseStartDateEQ applies the EQ predicate on the "lease_start_date" field.
func LeaseStartDateEQ(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldLeaseStartDate, v))
}

// LeaseStartDateNEQ applies the NEQ predicate on the "lease_start_date" field.
func LeaseStartDateNEQ(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldNEQ(FieldLeaseStartDate, v))
}

// LeaseStartDateIn applies the In predicate on the "lease_start_date" field.
func LeaseStartDateIn(vs ...time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldIn(FieldLeaseStartDate, vs...))
}

// LeaseStartDateNotIn applies the NotIn predicate on the "lease_start_date" field.
func LeaseStartDateNotIn(vs ...time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldNotIn(FieldLeaseStartDate, vs...))
}

// LeaseStartDateGT applies the GT predicate on the "lease_start_date" field.
func LeaseStartDateGT(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldGT(FieldLeaseStartDate, v))
}

// LeaseStartDateGTE applies the GTE predicate on the "lease_start_date" field.
func LeaseStartDateGTE(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldGTE(FieldLeaseStartDate, v))
}

// LeaseStartDateLT applies the LT predicate on the "lease_start_date" field.
func LeaseStartDateLT(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldLT(FieldLeaseStartDate, v))
}

// LeaseStartDateLTE applies the LTE predicate on the "lease_start_date" field.
func LeaseStartDateLTE(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldLTE(FieldLeaseStartDate, v))
}

// LeaseStartDateIsNil applies the IsNil predicate on the "lease_start_date" field.
func LeaseStartDateIsNil() predicate.Engagement {
	return predicate.Engagement(sql.FieldIsNull(FieldLeaseStartDate))
}

// LeaseStartDateNotNil applies the NotNil predicate on the "lease_start_date" field.
func LeaseStartDateNotNil() predicate.Engagement {
	return predicate.Engagement(sql.FieldNotNull(FieldLeaseStartDate))
}

// LeaseEndDateEQ applies the EQ predicate on the "lease_end_date" field.
func LeaseEndDateEQ(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldLeaseEndDate, v))
}

// LeaseEndDateNEQ applies the NEQ predicate on the "lease_end_date" field.
func LeaseEndDateNEQ(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldNEQ(FieldLeaseEndDate, v))
}

// LeaseEndDateIn applies the In predicate on the "lease_end_date" field.
func LeaseEndDateIn(vs ...time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldIn(FieldLeaseEndDate, vs...))
}

// LeaseEndDateNotIn applies the NotIn predicate on the "lease_end_date" field.
func LeaseEndDateNotIn(vs ...time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldNotIn(FieldLeaseEndDate, vs...))
}

// LeaseEndDateGT applies the GT predicate on the "lease_end_date" field.
func LeaseEndDateGT(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldGT(FieldLeaseEndDate, v))
}

// LeaseEndDateGTE applies the GTE predicate on the "lease_end_date" field.
func LeaseEndDateGTE(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldGTE(FieldLeaseEndDate, v))
}

// LeaseEndDateLT applies the LT predicate on the "lease_end_date" field.
func LeaseEndDateLT(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldLT(FieldLeaseEndDate, v))
}

// LeaseEndDateLTE applies the LTE predicate on the "lease_end_date" field.
func LeaseEndDateLTE(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldLTE(FieldLeaseEndDate, v))
}

// LeaseEndDateIsNil applies the IsNil predicate on the "lease_end_date" field.
func LeaseEndDateIsNil() predicate.Engagement {
	return predicate.Engagement(sql.FieldIsNull(FieldLeaseEndDate))
}

// LeaseEndDateNotNil applies the NotNil predicate on the "lease_end_date" field.
func LeaseEndDateNotNil() predicate.Engagement {
	return predicate.Engagement(sql.FieldNotNull(FieldLeaseEndDate))
}

// ActivatedAtEQ applies the EQ predicate on the "activated_at" field.
func ActivatedAtEQ(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldActivatedAt, v))
}

// ActivatedAtNEQ applies the NEQ predicate on the "activated_at" field.
func ActivatedAtNEQ(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldNEQ(FieldActivatedAt, v))
}

// ActivatedAtIn applies the In predicate on the "activated_at" field.
func ActivatedAtIn(vs ...time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldIn(FieldActivatedAt, vs...))
}

// ActivatedAtNotIn applies the NotIn predicate on the "activated_at" field.
func ActivatedAtNotIn(vs ...time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldNotIn(FieldActivatedAt, vs...))
}

// ActivatedAtGT applies the GT predicate on the "activated_at" field.
func ActivatedAtGT(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldGT(FieldActivatedAt, v))
}

// ActivatedAtGTE applies the GTE predicate on the "activated_at" field.
func ActivatedAtGTE(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldGTE(FieldActivatedAt, v))
}

// ActivatedAtLT applies the LT predicate on the "activated_at" field.
func ActivatedAtLT(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldLT(FieldActivatedAt, v))
}

// ActivatedAtLTE applies the LTE predicate on the "activated_at" field.
func ActivatedAtLTE(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldLTE(FieldActivatedAt, v))
}

// ActivatedAtIsNil applies the IsNil predicate on the "activated_at" field.
func ActivatedAtIsNil() predicate.Engagement {
	return predicate.Engagement(sql.FieldIsNull(FieldActivatedAt))
}

// ActivatedAtNotNil applies the NotNil predicate on the "activated_at" field.
func ActivatedAtNotNil() predicate.Engagement {
	return predicate.Engagement(sql.FieldNotNull(FieldActivatedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Engagement {
	return predicate.Engagement(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Engagement {
	return predicate.Engagement(sql.FieldNotNull(FieldCompletedAt))
}

// InsuranceUploadedEQ applies the EQ predicate on the "insurance_uploaded" field.
func InsuranceUploadedEQ(v bool) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldInsuranceUploaded, v))
}

// InsuranceUploadedNEQ applies the NEQ predicate on the "insurance_uploaded" field.
func InsuranceUploadedNEQ(v bool) predicate.Engagement {
	return predicate.Engagement(sql.FieldNEQ(FieldInsuranceUploaded, v))
}

// CompanyDocsUploadedEQ applies the EQ predicate on the "company_docs_uploaded" field.
func CompanyDocsUploadedEQ(v bool) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldCompanyDocsUploaded, v))
}

// CompanyDocsUploadedNEQ applies the NEQ predicate on the "company_docs_uploaded" field.
func CompanyDocsUploadedNEQ(v bool) predicate.Engagement {
	return predicate.Engagement(sql.FieldNEQ(FieldCompanyDocsUploaded, v))
}

// PaymentMethodAddedEQ applies the EQ predicate on the "payment_method_added" field.
func PaymentMethodAddedEQ(v bool) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldPaymentMethodAdded, v))
}

// PaymentMethodAddedNEQ applies the NEQ predicate on the "payment_method_added" field.
func PaymentMethodAddedNEQ(v bool) predicate.Engagement {
	return predicate.Engagement(sql.FieldNEQ(FieldPaymentMethodAdded, v))
}

// SqftEQ applies the EQ predicate on the "sqft" field.
func SqftEQ(v int) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldSqft, v))
}

// SqftNEQ applies the NEQ predicate on the "sqft" field.
func SqftNEQ(v int) predicate.Engagement {
	return predicate.Engagement(sql.FieldNEQ(FieldSqft, v))
}

// SqftIn applies the In predicate on the "sqft" field.
func SqftIn(vs ...int) predicate.Engagement {
	return predicate.Engagement(sql.FieldIn(FieldSqft, vs...))
}

// SqftNotIn applies the NotIn predicate on the "sqft" field.
func SqftNotIn(vs ...int) predicate.Engagement {
	return predicate.Engagement(sql.FieldNotIn(FieldSqft, vs...))
}

// SqftGT applies the GT predicate on the "sqft" field.
func SqftGT(v int) predicate.Engagement {
	return predicate.Engagement(sql.FieldGT(FieldSqft, v))
}

// SqftGTE applies the GTE predicate on the "sqft" field.
func SqftGTE(v int) predicate.Engagement {
	return predicate.Engagement(sql.FieldGTE(FieldSqft, v))
}

// SqftLT applies the LT predicate on the "sqft" field.
func SqftLT(v int) predicate.Engagement {
	return predicate.Engagement(sql.FieldLT(FieldSqft, v))
}

// SqftLTE applies the LTE predicate on the "sqft" field.
func SqftLTE(v int) predicate.Engagement {
	return predicate.Engagement(sql.FieldLTE(FieldSqft, v))
}

// SqftIsNil applies the IsNil predicate on the "sqft" field.
func SqftIsNil() predicate.Engagement {
	return predicate.Engagement(sql.FieldIsNull(FieldSqft))
}

// SqftNotNil applies the NotNil predicate on the "sqft" field.
func SqftNotNil() predicate.Engagement {
	return predicate.Engagement(sql.FieldNotNull(FieldSqft))
}

// SupplierRateEQ applies the EQ predicate on the "supplier_rate" field.
func SupplierRateEQ(v float64) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldSupplierRate, v))
}

// SupplierRateNEQ applies the NEQ predicate on the "supplier_rate" field.
func SupplierRateNEQ(v float64) predicate.Engagement {
	return predicate.Engagement(sql.FieldNEQ(FieldSupplierRate, v))
}

// SupplierRateIn applies the In predicate on the "supplier_rate" field.
func SupplierRateIn(vs ...float64) predicate.Engagement {
	return predicate.Engagement(sql.FieldIn(FieldSupplierRate, vs...))
}

// SupplierRateNotIn applies the NotIn predicate on the "supplier_rate" field.
func SupplierRateNotIn(vs ...float64) predicate.Engagement {
	return predicate.Engagement(sql.FieldNotIn(FieldSupplierRate, vs...))
}

// SupplierRateGT applies the GT predicate on the "supplier_rate" field.
func SupplierRateGT(v float64) predicate.Engagement {
	return predicate.Engagement(sql.FieldGT(FieldSupplierRate, v))
}

// SupplierRateGTE applies the GTE predicate on the "supplier_rate" field.
func SupplierRateGTE(v float64) predicate.Engagement {
	return predicate.Engagement(sql.FieldGTE(FieldSupplierRate, v))
}

// SupplierRateLT applies the LT predicate on the "supplier_rate" field.
func SupplierRateLT(v float64) predicate.Engagement {
	return predicate.Engagement(sql.FieldLT(FieldSupplierRate, v))
}

// SupplierRateLTE applies the LTE predicate on the "supplier_rate" field.
func SupplierRateLTE(v float64) predicate.Engagement {
	return predicate.Engagement(sql.FieldLTE(FieldSupplierRate, v))
}

// SupplierRateIsNil applies the IsNil predicate on the "supplier_rate" field.
func SupplierRateIsNil() predicate.Engagement {
	return predicate.Engagement(sql.FieldIsNull(FieldSupplierRate))
}

// SupplierRateNotNil applies the NotNil predicate on the "supplier_rate" field.
func SupplierRateNotNil() predicate.Engagement {
	return predicate.Engagement(sql.FieldNotNull(FieldSupplierRate))
}

// BuyerRateEQ applies the EQ predicate on the "buyer_rate" field.
func BuyerRateEQ(v float64) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldBuyerRate, v))
}

// BuyerRateNEQ applies the NEQ predicate on the "buyer_rate" field.
func BuyerRateNEQ(v float64) predicate.Engagement {
	return predicate.Engagement(sql.FieldNEQ(FieldBuyerRate, v))
}

// BuyerRateIn applies the In predicate on the "buyer_rate" field.
func BuyerRateIn(vs ...float64) predicate.Engagement {
	return predicate.Engagement(sql.FieldIn(FieldBuyerRate, vs...))
}

// BuyerRateNotIn applies the NotIn predicate on the "buyer_rate" field.
func BuyerRateNotIn(vs ...float64) predicate.Engagement {
	return predicate.Engagement(sql.FieldNotIn(FieldBuyerRate, vs...))
}

// BuyerRateGT applies the GT predicate on the "buyer_rate" field.
func BuyerRateGT(v float64) predicate.Engagement {
	return predicate.Engagement(sql.FieldGT(FieldBuyerRate, v))
}

// BuyerRateGTE applies the GTE predicate on the "buyer_rate" field.
func BuyerRateGTE(v float64) predicate.Engagement {
	return predicate.Engagement(sql.FieldGTE(FieldBuyerRate, v))
}

// BuyerRateLT applies the LT predicate on the "buyer_rate" field.
func BuyerRateLT(v float64) predicate.Engagement {
	return predicate.Engagement(sql.FieldLT(FieldBuyerRate, v))
}

// BuyerRateLTE applies the LTE predicate on the "buyer_rate" field.
func BuyerRateLTE(v float64) predicate.Engagement {
	return predicate.Engagement(sql.FieldLTE(FieldBuyerRate, v))
}

// BuyerRateIsNil applies the IsNil predicate on the "buyer_rate" field.
func BuyerRateIsNil() predicate.Engagement {
	return predicate.Engagement(sql.FieldIsNull(FieldBuyerRate))
}

// BuyerRateNotNil applies the NotNil predicate on the "buyer_rate" field.
func BuyerRateNotNil() predicate.Engagement {
	return predicate.Engagement(sql.FieldNotNull(FieldBuyerRate))
}

// MonthlySupplierPayoutEQ applies the EQ predicate on the "monthly_supplier_payout" field.
func MonthlySupplierPayoutEQ(v float64) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldMonthlySupplierPayout, v))
}

// MonthlySupplierPayoutNEQ applies the NEQ predicate on the "monthly_supplier_payout" field.
func MonthlySupplierPayoutNEQ(v float64) predicate.Engagement {
	return predicate.Engagement(sql.FieldNEQ(FieldMonthlySupplierPayout, v))
}

// MonthlySupplierPayoutIn applies the In predicate on the "monthly_supplier_payout" field.
func MonthlySupplierPayoutIn(vs ...float64) predicate.Engagement {
	return predicate.Engagement(sql.FieldIn(FieldMonthlySupplierPayout, vs...))
}

// MonthlySupplierPayoutNotIn applies the NotIn predicate on the "monthly_supplier_payout" field.
func MonthlySupplierPayoutNotIn(vs ...float64) predicate.Engagement {
	return predicate.Engagement(sql.FieldNotIn(FieldMonthlySupplierPayout, vs...))
}

// MonthlySupplierPayoutGT applies the GT predicate on the "monthly_supplier_payout" field.
func MonthlySupplierPayoutGT(v float64) predicate.Engagement {
	return predicate.Engagement(sql.FieldGT(FieldMonthlySupplierPayout, v))
}

// MonthlySupplierPayoutGTE applies the GTE predicate on the "monthly_supplier_payout" field.
func MonthlySupplierPayoutGTE(v float64) predicate.Engagement {
	return predicate.Engagement(sql.FieldGTE(FieldMonthlySupplierPayout, v))
}

// MonthlySupplierPayoutLT applies the LT predicate on the "monthly_supplier_payout" field.
func MonthlySupplierPayoutLT(v float64) predicate.Engagement {
	return predicate.Engagement(sql.FieldLT(FieldMonthlySupplierPayout, v))
}

// MonthlySupplierPayoutLTE applies the LTE predicate on the "monthly_supplier_payout" field.
func MonthlySupplierPayoutLTE(v float64) predicate.Engagement {
	return predicate.Engagement(sql.FieldLTE(FieldMonthlySupplierPayout, v))
}

// MonthlySupplierPayoutIsNil applies the IsNil predicate on the "monthly_supplier_payout" field.
func MonthlySupplierPayoutIsNil() predicate.Engagement {
	return predicate.Engagement(sql.FieldIsNull(FieldMonthlySupplierPayout))
}

// MonthlySupplierPayoutNotNil applies the NotNil predicate on the "monthly_supplier_payout" field.
func MonthlySupplierPayoutNotNil() predicate.Engagement {
	return predicate.Engagement(sql.FieldNotNull(FieldMonthlySupplierPayout))
}

// MonthlyBuyerTotalEQ applies the EQ predicate on the "monthly_buyer_total" field.
func MonthlyBuyerTotalEQ(v float64) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldMonthlyBuyerTotal, v))
}

// MonthlyBuyerTotalNEQ applies the NEQ predicate on the "monthly_buyer_total" field.
func MonthlyBuyerTotalNEQ(v float64) predicate.Engagement {
	return predicate.Engagement(sql.FieldNEQ(FieldMonthlyBuyerTotal, v))
}

// MonthlyBuyerTotalIn applies the In predicate on the "monthly_buyer_total" field.
func MonthlyBuyerTotalIn(vs ...float64) predicate.Engagement {
	return predicate.Engagement(sql.FieldIn(FieldMonthlyBuyerTotal, vs...))
}

// MonthlyBuyerTotalNotIn applies the NotIn predicate on the "monthly_buyer_total" field.
func MonthlyBuyerTotalNotIn(vs ...float64) predicate.Engagement {
	return predicate.Engagement(sql.FieldNotIn(FieldMonthlyBuyerTotal, vs...))
}

// MonthlyBuyerTotalGT applies the GT predicate on the "monthly_buyer_total" field.
func MonthlyBuyerTotalGT(v float64) predicate.Engagement {
	return predicate.Engagement(sql.FieldGT(FieldMonthlyBuyerTotal, v))
}

// MonthlyBuyerTotalGTE applies the GTE predicate on the "monthly_buyer_total" field.
func MonthlyBuyerTotalGTE(v float64) predicate.Engagement {
	return predicate.Engagement(sql.FieldGTE(FieldMonthlyBuyerTotal, v))
}

// MonthlyBuyerTotalLT applies the LT predicate on the "monthly_buyer_total" field.
func MonthlyBuyerTotalLT(v float64) predicate.Engagement {
	return predicate.Engagement(sql.FieldLT(FieldMonthlyBuyerTotal, v))
}

// MonthlyBuyerTotalLTE applies the LTE predicate on the "monthly_buyer_total" field.
func MonthlyBuyerTotalLTE(v float64) predicate.Engagement {
	return predicate.Engagement(sql.FieldLTE(FieldMonthlyBuyerTotal, v))
}

// MonthlyBuyerTotalIsNil applies the IsNil predicate on the "monthly_buyer_total" field.
func MonthlyBuyerTotalIsNil() predicate.Engagement {
	return predicate.Engagement(sql.FieldIsNull(FieldMonthlyBuyerTotal))
}

// MonthlyBuyerTotalNotNil applies the NotNil predicate on the "monthly_buyer_total" field.
func MonthlyBuyerTotalNotNil() predicate.Engagement {
	return predicate.Engagement(sql.FieldNotNull(FieldMonthlyBuyerTotal))
}

// DeclinedByEQ applies the EQ predicate on the "declined_by" field.
func DeclinedByEQ(v DeclinedBy) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldDeclinedBy, v))
}

// DeclinedByNEQ applies the NEQ predicate on the "declined_by" field.
func DeclinedByNEQ(v DeclinedBy) predicate.Engagement {
	return predicate.Engagement(sql.FieldNEQ(FieldDeclinedBy, v))
}

// DeclinedByIn applies the In predicate on the "declined_by" field.
func DeclinedByIn(vs ...DeclinedBy) predicate.Engagement {
	return predicate.Engagement(sql.FieldIn(FieldDeclinedBy, vs...))
}

// DeclinedByNotIn applies the NotIn predicate on the "declined_by" field.
func DeclinedByNotIn(vs ...DeclinedBy) predicate.Engagement {
	return predicate.Engagement(sql.FieldNotIn(FieldDeclinedBy, vs...))
}

// DeclinedByIsNil applies the IsNil predicate on the "declined_by" field.
func DeclinedByIsNil() predicate.Engagement {
	return predicate.Engagement(sql.FieldIsNull(FieldDeclinedBy))
}

// DeclinedByNotNil applies the NotNil predicate on the "declined_by" field.
func DeclinedByNotNil() predicate.Engagement {
	return predicate.Engagement(sql.FieldNotNull(FieldDeclinedBy))
}

// DeclineReasonEQ applies the EQ predicate on the "decline_reason" field.
func DeclineReasonEQ(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldDeclineReason, v))
}

// DeclineReasonNEQ applies the NEQ predicate on the "decline_reason" field.
func DeclineReasonNEQ(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldNEQ(FieldDeclineReason, v))
}

// DeclineReasonIn applies the In predicate on the "decline_reason" field.
func DeclineReasonIn(vs ...string) predicate.Engagement {
	return predicate.Engagement(sql.FieldIn(FieldDeclineReason, vs...))
}

// DeclineReasonNotIn applies the NotIn predicate on the "decline_reason" field.
func DeclineReasonNotIn(vs ...string) predicate.Engagement {
	return predicate.Engagement(sql.FieldNotIn(FieldDeclineReason, vs...))
}

// DeclineReasonGT applies the GT predicate on the "decline_reason" field.
func DeclineReasonGT(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldGT(FieldDeclineReason, v))
}

// DeclineReasonGTE applies the GTE predicate on the "decline_reason" field.
func DeclineReasonGTE(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldGTE(FieldDeclineReason, v))
}

// DeclineReasonLT applies the LT predicate on the "decline_reason" field.
func DeclineReasonLT(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldLT(FieldDeclineReason, v))
}

// DeclineReasonLTE applies the LTE predicate on the "decline_reason" field.
func DeclineReasonLTE(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldLTE(FieldDeclineReason, v))
}

// DeclineReasonContains applies the Contains predicate on the "decline_reason" field.
func DeclineReasonContains(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldContains(FieldDeclineReason, v))
}

// DeclineReasonHasPrefix applies the HasPrefix predicate on the "decline_reason" field.
func DeclineReasonHasPrefix(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldHasPrefix(FieldDeclineReason, v))
}

// DeclineReasonHasSuffix applies the HasSuffix predicate on the "decline_reason" field.
func DeclineReasonHasSuffix(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldHasSuffix(FieldDeclineReason, v))
}

// DeclineReasonIsNil applies the IsNil predicate on the "decline_reason" field.
func DeclineReasonIsNil() predicate.Engagement {
	return predicate.Engagement(sql.FieldIsNull(FieldDeclineReason))
}

// DeclineReasonNotNil applies the NotNil predicate on the "decline_reason" field.
func DeclineReasonNotNil() predicate.Engagement {
	return predicate.Engagement(sql.FieldNotNull(FieldDeclineReason))
}

// DeclineReasonEqualFold applies the EqualFold predicate on the "decline_reason" field.
func DeclineReasonEqualFold(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldEqualFold(FieldDeclineReason, v))
}

// DeclineReasonContainsFold applies the ContainsFold predicate on the "decline_reason" field.
func DeclineReasonContainsFold(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldContainsFold(FieldDeclineReason, v))
}

// CancelReasonEQ applies the EQ predicate on the "cancel_reason" field.
func CancelReasonEQ(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldCancelReason, v))
}

// CancelReasonNEQ applies the NEQ predicate on the "cancel_reason" field.
func CancelReasonNEQ(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldNEQ(FieldCancelReason, v))
}

// CancelReasonIn applies the In predicate on the "cancel_reason" field.
func CancelReasonIn(vs ...string) predicate.Engagement {
	return predicate.Engagement(sql.FieldIn(FieldCancelReason, vs...))
}

// CancelReasonNotIn applies the NotIn predicate on the "cancel_reason" field.
func CancelReasonNotIn(vs ...string) predicate.Engagement {
	return predicate.Engagement(sql.FieldNotIn(FieldCancelReason, vs...))
}

// CancelReasonGT applies the GT predicate on the "cancel_reason" field.
func CancelReasonGT(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldGT(FieldCancelReason, v))
}

// CancelReasonGTE applies the GTE predicate on the "cancel_reason" field.
func CancelReasonGTE(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldGTE(FieldCancelReason, v))
}

// CancelReasonLT applies the LT predicate on the "cancel_reason" field.
func CancelReasonLT(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldLT(FieldCancelReason, v))
}

// CancelReasonLTE applies the LTE predicate on the "cancel_reason" field.
func CancelReasonLTE(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldLTE(FieldCancelReason, v))
}

// CancelReasonContains applies the Contains predicate on the "cancel_reason" field.
func CancelReasonContains(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldContains(FieldCancelReason, v))
}

// CancelReasonHasPrefix applies the HasPrefix predicate on the "cancel_reason" field.
func CancelReasonHasPrefix(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldHasPrefix(FieldCancelReason, v))
}

// CancelReasonHasSuffix applies the HasSuffix predicate on the "cancel_reason" field.
func CancelReasonHasSuffix(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldHasSuffix(FieldCancelReason, v))
}

// CancelReasonIsNil applies the IsNil predicate on the "cancel_reason" field.
func CancelReasonIsNil() predicate.Engagement {
	return predicate.Engagement(sql.FieldIsNull(FieldCancelReason))
}

// CancelReasonNotNil applies the NotNil predicate on the "cancel_reason" field.
func CancelReasonNotNil() predicate.Engagement {
	return predicate.Engagement(sql.FieldNotNull(FieldCancelReason))
}

// CancelReasonEqualFold applies the EqualFold predicate on the "cancel_reason" field.
func CancelReasonEqualFold(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldEqualFold(FieldCancelReason, v))
}

// CancelReasonContainsFold applies the ContainsFold predicate on the "cancel_reason" field.
func CancelReasonContainsFold(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldContainsFold(FieldCancelReason, v))
}

// DecisionTimerPausedAtEQ applies the EQ predicate on the "decision_timer_paused_at" field.
func DecisionTimerPausedAtEQ(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldDecisionTimerPausedAt, v))
}

// DecisionTimerPausedAtNEQ applies the NEQ predicate on the "decision_timer_paused_at" field.
func DecisionTimerPausedAtNEQ(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldNEQ(FieldDecisionTimerPausedAt, v))
}

// DecisionTimerPausedAtIn applies the In predicate on the "decision_timer_paused_at" field.
func DecisionTimerPausedAtIn(vs ...time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldIn(FieldDecisionTimerPausedAt, vs...))
}

// DecisionTimerPausedAtNotIn applies the NotIn predicate on the "decision_timer_paused_at" field.
func DecisionTimerPausedAtNotIn(vs ...time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldNotIn(FieldDecisionTimerPausedAt, vs...))
}

// DecisionTimerPausedAtGT applies the GT predicate on the "decision_timer_paused_at" field.
func DecisionTimerPausedAtGT(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldGT(FieldDecisionTimerPausedAt, v))
}

// DecisionTimerPausedAtGTE applies the GTE predicate on the "decision_timer_paused_at" field.
func DecisionTimerPausedAtGTE(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldGTE(FieldDecisionTimerPausedAt, v))
}

// DecisionTimerPausedAtLT applies the LT predicate on the "decision_timer_paused_at" field.
func DecisionTimerPausedAtLT(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldLT(FieldDecisionTimerPausedAt, v))
}

// DecisionTimerPausedAtLTE applies the LTE predicate on the "decision_timer_paused_at" field.
func DecisionTimerPausedAtLTE(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldLTE(FieldDecisionTimerPausedAt, v))
}

// DecisionTimerPausedAtIsNil applies the IsNil predicate on the "decision_timer_paused_at" field.
func DecisionTimerPausedAtIsNil() predicate.Engagement {
	return predicate.Engagement(sql.FieldIsNull(FieldDecisionTimerPausedAt))
}

// DecisionTimerPausedAtNotNil applies the NotNil predicate on the "decision_timer_paused_at" field.
func DecisionTimerPausedAtNotNil() predicate.Engagement {
	return predicate.Engagement(sql.FieldNotNull(FieldDecisionTimerPausedAt))
}

// AdminFlaggedEQ applies the EQ predicate on the "admin_flagged" field.
func AdminFlaggedEQ(v bool) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldAdminFlagged, v))
}

// AdminFlaggedNEQ applies the NEQ predicate on the "admin_flagged" field.
func AdminFlaggedNEQ(v bool) predicate.Engagement {
	return predicate.Engagement(sql.FieldNEQ(FieldAdminFlagged, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasMatch applies the HasEdge predicate on the "match" edge.
func HasMatch() predicate.Engagement {
	return predicate.Engagement(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, MatchTable, MatchColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMatchWith applies the HasEdge predicate on the "match" edge with a given conditions (other predicates).
func HasMatchWith(preds ...predicate.Match) predicate.Engagement {
	return predicate.Engagement(func(s *sql.Selector) {
		step := newMatchStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEvents applies the HasEdge predicate on the "events" edge.
func HasEvents() predicate.Engagement {
	return predicate.Engagement(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEventsWith applies the HasEdge predicate on the "events" edge with a given conditions (other predicates).
func HasEventsWith(preds ...predicate.EngagementEvent) predicate.Engagement {
	return predicate.Engagement(func(s *sql.Selector) {
		step := newEventsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAgreements applies the HasEdge predicate on the "agreements" edge.
func HasAgreements() predicate.Engagement {
	return predicate.Engagement(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AgreementsTable, AgreementsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAgreementsWith applies the HasEdge predicate on the "agreements" edge with a given conditions (other predicates).
func HasAgreementsWith(preds ...predicate.EngagementAgreement) predicate.Engagement {
	return predicate.Engagement(func(s *sql.Selector) {
		step := newAgreementsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasPayments applies the HasEdge predicate on the "payments" edge.
func HasPayments() predicate.Engagement {
	return predicate.Engagement(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, PaymentsTable, PaymentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPaymentsWith applies the HasEdge predicate on the "payments" edge with a given conditions (other predicates).
func HasPaymentsWith(preds ...predicate.PaymentRecord) predicate.Engagement {
	return predicate.Engagement(func(s *sql.Selector) {
		step := newPaymentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasUploadTokens applies the HasEdge predicate on the "upload_tokens" edge.
func HasUploadTokens() predicate.Engagement {
	return predicate.Engagement(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, UploadTokensTable, UploadTokensColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUploadTokensWith applies the HasEdge predicate on the "upload_tokens" edge with a given conditions (other predicates).
func HasUploadTokensWith(preds ...predicate.UploadToken) predicate.Engagement {
	return predicate.Engagement(func(s *sql.Selector) {
		step := newUploadTokensStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Engagement) predicate.Engagement {
	return predicate.Engagement(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Engagement) predicate.Engagement {
	return predicate.Engagement(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Engagement) predicate.Engagement {
	return predicate.Engagement(sql.NotPredicates(p))
}
