// Code generated by ent, DO NOT EDIT.

package engagementagreement

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/warehouse-exchange/wex/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldContainsFold(FieldID, id))
}

// EngagementID applies equality check predicate on the "engagement_id" field. It's identical to EngagementIDEQ.
func EngagementID(v string) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldEQ(FieldEngagementID, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldEQ(FieldVersion, v))
}

// BuyerSignedAt applies equality check predicate on the "buyer_signed_at" field. It's identical to BuyerSignedAtEQ.
func BuyerSignedAt(v time.Time) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldEQ(FieldBuyerSignedAt, v))
}

// SupplierSignedAt applies equality check predicate on the "supplier_signed_at" field. It's identical to SupplierSignedAtEQ.
func SupplierSignedAt(v time.Time) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldEQ(FieldSupplierSignedAt, v))
}

// ExpiresAt applies equality check predicate on the "expires_at" field. It's identical to ExpiresAtEQ.
func ExpiresAt(v time.Time) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldEQ(FieldExpiresAt, v))
}

// Sqft applies equality check predicate on the "sqft" field. It's identical to SqftEQ.
func Sqft(v int) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldEQ(FieldSqft, v))
}

// BuyerRate applies equality check predicate on the "buyer_rate" field. It's identical to BuyerRateEQ.
func BuyerRate(v float64) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldEQ(FieldBuyerRate, v))
}

// SupplierRate applies equality check predicate on the "supplier_rate" field. It's identical to SupplierRateEQ.
func SupplierRate(v float64) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldEQ(FieldSupplierRate, v))
}

// MonthlyBuyerTotal applies equality check predicate on the "monthly_buyer_total" field. It's identical to MonthlyBuyerTotalEQ.
func MonthlyBuyerTotal(v float64) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldEQ(FieldMonthlyBuyerTotal, v))
}

// MonthlySupplierPayout applies equality check predicate on the "monthly_supplier_payout" field. It's identical to MonthlySupplierPayoutEQ.
func MonthlySupplierPayout(v float64) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldEQ(FieldMonthlySupplierPayout, v))
}

// ExternalRef applies equality check predicate on the "external_ref" field. It's identical to ExternalRefEQ.
func ExternalRef(v string) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldEQ(FieldExternalRef, v))
}

// DocumentURL applies equality check predicate on the "document_url" field. It's identical to DocumentURLEQ.
func DocumentURL(v string) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldEQ(FieldDocumentURL, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldEQ(FieldUpdatedAt, v))
}

// EngagementIDEQ applies the EQ predicate on the "engagement_id" field.
func EngagementIDEQ(v string) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldEQ(FieldEngagementID, v))
}

// EngagementIDNEQ applies the NEQ predicate on the "engagement_id" field.
func EngagementIDNEQ(v string) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldNEQ(FieldEngagementID, v))
}

// EngagementIDIn applies the In predicate on the "engagement_id" field.
func EngagementIDIn(vs ...string) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldIn(FieldEngagementID, vs...))
}

// EngagementIDNotIn applies the NotIn predicate on the "engagement_id" field.
func EngagementIDNotIn(vs ...string) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldNotIn(FieldEngagementID, vs...))
}

// EngagementIDGT applies the GT predicate on the "engagement_id" field.
func EngagementIDGT(v string) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldGT(FieldEngagementID, v))
}

// EngagementIDGTE applies the GTE predicate on the "engagement_id" field.
func EngagementIDGTE(v string) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldGTE(FieldEngagementID, v))
}

// EngagementIDLT applies the LT predicate on the "engagement_id" field.
func EngagementIDLT(v string) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldLT(FieldEngagementID, v))
}

// EngagementIDLTE applies the LTE predicate on the "engagement_id" field.
func EngagementIDLTE(v string) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldLTE(FieldEngagementID, v))
}

// EngagementIDContains applies the Contains predicate on the "engagement_id" field.
func EngagementIDContains(v string) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldContains(FieldEngagementID, v))
}

// EngagementIDHasPrefix applies the HasPrefix predicate on the "engagement_id" field.
func EngagementIDHasPrefix(v string) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldHasPrefix(FieldEngagementID, v))
}

// EngagementIDHasSuffix applies the HasSuffix predicate on the "engagement_id" field.
func EngagementIDHasSuffix(v string) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldHasSuffix(FieldEngagementID, v))
}

// EngagementIDEqualFold applies the EqualFold predicate on the "engagement_id" field.
func EngagementIDEqualFold(v string) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldEqualFold(FieldEngagementID, v))
}

// EngagementIDContainsFold applies the ContainsFold predicate on the "engagement_id" field.
func EngagementIDContainsFold(v string) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldContainsFold(FieldEngagementID, v))
}

// AgreementTypeEQ applies the EQ predicate on the "agreement_type" field.
func AgreementTypeEQ(v AgreementType) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldEQ(FieldAgreementType, v))
}

// AgreementTypeNEQ applies the NEQ predicate on the "agreement_type" field.
func AgreementTypeNEQ(v AgreementType) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldNEQ(FieldAgreementType, v))
}

// AgreementTypeIn applies the In predicate on the "agreement_type" field.
func AgreementTypeIn(vs ...AgreementType) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldIn(FieldAgreementType, vs...))
}

// AgreementTypeNotIn applies the NotIn predicate on the "agreement_type" field.
func AgreementTypeNotIn(vs ...AgreementType) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldNotIn(FieldAgreementType, vs...))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldLTE(FieldVersion, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldNotIn(FieldStatus, vs...))
}

// BuyerSignedAtEQ applies the EQ predicate on the "buyer_signed_at" field.
func BuyerSignedAtEQ(v time.Time) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldEQ(FieldBuyerSignedAt, v))
}

// BuyerSignedAtNEQ applies the NEQ predicate on the "buyer_signed_at" field.
func BuyerSignedAtNEQ(v time.Time) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldNEQ(FieldBuyerSignedAt, v))
}

// BuyerSignedAtIn applies the In predicate on the "buyer_signed_at" field.
func BuyerSignedAtIn(vs ...time.Time) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldIn(FieldBuyerSignedAt, vs...))
}

// BuyerSignedAtNotIn applies the NotIn predicate on the "buyer_signed_at" field.
func BuyerSignedAtNotIn(vs ...time.Time) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldNotIn(FieldBuyerSignedAt, vs...))
}

// BuyerSignedAtGT applies the GT predicate on the "buyer_signed_at" field.
func BuyerSignedAtGT(v time.Time) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldGT(FieldBuyerSignedAt, v))
}

// BuyerSignedAtGTE applies the GTE predicate on the "buyer_signed_at" field.
func BuyerSignedAtGTE(v time.Time) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldGTE(FieldBuyerSignedAt, v))
}

// BuyerSignedAtLT applies the LT predicate on the "buyer_signed_at" field.
func BuyerSignedAtLT(v time.Time) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldLT(FieldBuyerSignedAt, v))
}

// BuyerSignedAtLTE applies the LTE predicate on the "buyer_signed_at" field.
func BuyerSignedAtLTE(v time.Time) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldLTE(FieldBuyerSignedAt, v))
}

// BuyerSignedAtIsNil applies the IsNil predicate on the "buyer_signed_at" field.
func BuyerSignedAtIsNil() predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldIsNull(FieldBuyerSignedAt))
}

// BuyerSignedAtNotNil applies the NotNil predicate on the "buyer_signed_at" field.
func BuyerSignedAtNotNil() predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldNotNull(FieldBuyerSignedAt))
}

// SupplierSignedAtEQ applies the EQ predicate on the "supplier_signed_at" field.
func SupplierSignedAtEQ(v time.Time) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldEQ(FieldSupplierSignedAt, v))
}

// SupplierSignedAtNEQ applies the NEQ predicate on the "supplier_signed_at" field.
func SupplierSignedAtNEQ(v time.Time) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldNEQ(FieldSupplierSignedAt, v))
}

// SupplierSignedAtIn applies the In predicate on the "supplier_signed_at" field.
func SupplierSignedAtIn(vs ...time.Time) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldIn(FieldSupplierSignedAt, vs...))
}

// SupplierSignedAtNotIn applies the NotIn predicate on the "supplier_signed_at" field.
func SupplierSignedAtNotIn(vs ...time.Time) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldNotIn(FieldSupplierSignedAt, vs...))
}

// SupplierSignedAtGT applies the GT predicate on the "supplier_signed_at" field.
func SupplierSignedAtGT(v time.Time) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldGT(FieldSupplierSignedAt, v))
}

// SupplierSignedAtGTE applies the GTE predicate on the "supplier_signed_at" field.
func SupplierSignedAtGTE(v time.Time) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldGTE(FieldSupplierSignedAt, v))
}

// SupplierSignedAtLT applies the LT predicate on the "supplier_signed_at" field.
func SupplierSignedAtLT(v time.Time) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldLT(FieldSupplierSignedAt, v))
}

// SupplierSignedAtLTE applies the LTE predicate on the "supplier_signed_at" field.
func SupplierSignedAtLTE(v time.Time) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldLTE(FieldSupplierSignedAt, v))
}

// SupplierSignedAtIsNil applies the IsNil predicate on the "supplier_signed_at" field.
func SupplierSignedAtIsNil() predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldIsNull(FieldSupplierSignedAt))
}

// SupplierSignedAtNotNil applies the NotNil predicate on the "supplier_signed_at" field.
func SupplierSignedAtNotNil() predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldNotNull(FieldSupplierSignedAt))
}

// ExpiresAtEQ applies the EQ predicate on the "expires_at" field.
func ExpiresAtEQ(v time.Time) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldEQ(FieldExpiresAt, v))
}

// ExpiresAtNEQ applies the NEQ predicate on the "expires_at" field.
func ExpiresAtNEQ(v time.Time) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldNEQ(FieldExpiresAt, v))
}

// ExpiresAtIn applies the In predicate on the "expires_at" field.
func ExpiresAtIn(vs ...time.Time) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldIn(FieldExpiresAt, vs...))
}

// ExpiresAtNotIn applies the NotIn predicate on the "expires_at" field.
func ExpiresAtNotIn(vs ...time.Time) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldNotIn(FieldExpiresAt, vs...))
}

// ExpiresAtGT applies the GT predicate on the "expires_at" field.
func ExpiresAtGT(v time.Time) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldGT(FieldExpiresAt, v))
}

// ExpiresAtGTE applies the GTE predicate on the "expires_at" field.
func ExpiresAtGTE(v time.Time) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldGTE(FieldExpiresAt, v))
}

// ExpiresAtLT applies the LT predicate on the "expires_at" field.
func ExpiresAtLT(v time.Time) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldLT(FieldExpiresAt, v))
}

// ExpiresAtLTE applies the LTE predicate on the "expires_at" field.
func ExpiresAtLTE(v time.Time) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldLTE(FieldExpiresAt, v))
}

// ExpiresAtIsNil applies the IsNil predicate on the "expires_at" field.
func ExpiresAtIsNil() predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldIsNull(FieldExpiresAt))
}

// ExpiresAtNotNil applies the NotNil predicate on the "expires_at" field.
func ExpiresAtNotNil() predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldNotNull(FieldExpiresAt))
}

// SqftEQ applies the EQ predicate on the "sqft" field.
func SqftEQ(v int) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldEQ(FieldSqft, v))
}

// SqftNEQ applies the NEQ predicate on the "sqft" field.
func SqftNEQ(v int) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldNEQ(FieldSqft, v))
}

// SqftIn applies the In predicate on the "sqft" field.
func SqftIn(vs ...int) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldIn(FieldSqft, vs...))
}

// SqftNotIn applies the NotIn predicate on the "sqft" field.
func SqftNotIn(vs ...int) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldNotIn(FieldSqft, vs...))
}

// SqftGT applies the GT predicate on the "sqft" field.
func SqftGT(v int) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldGT(FieldSqft, v))
}

// SqftGTE applies the GTE predicate on the "sqft" field.
func SqftGTE(v int) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldGTE(FieldSqft, v))
}

// SqftLT applies the LT predicate on the "sqft" field.
func SqftLT(v int) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldLT(FieldSqft, v))
}

// SqftLTE applies the LTE predicate on the "sqft" field.
func SqftLTE(v int) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldLTE(FieldSqft, v))
}

// SqftIsNil applies the IsNil predicate on the "sqft" field.
func SqftIsNil() predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldIsNull(FieldSqft))
}

// SqftNotNil applies the NotNil predicate on the "sqft" field.
func SqftNotNil() predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldNotNull(FieldSqft))
}

// BuyerRateEQ applies the EQ predicate on the "buyer_rate" field.
func BuyerRateEQ(v float64) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldEQ(FieldBuyerRate, v))
}

// BuyerRateNEQ applies the NEQ predicate on the "buyer_rate" field.
func BuyerRateNEQ(v float64) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldNEQ(FieldBuyerRate, v))
}

// BuyerRateIn applies the In predicate on the "buyer_rate" field.
func BuyerRateIn(vs ...float64) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldIn(FieldBuyerRate, vs...))
}

// BuyerRateNotIn applies the NotIn predicate on the "buyer_rate" field.
func BuyerRateNotIn(vs ...float64) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldNotIn(FieldBuyerRate, vs...))
}

// BuyerRateGT applies the GT predicate on the "buyer_rate" field.
func BuyerRateGT(v float64) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldGT(FieldBuyerRate, v))
}

// BuyerRateGTE applies the GTE predicate on the "buyer_rate" field.
func BuyerRateGTE(v float64) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldGTE(FieldBuyerRate, v))
}

// BuyerRateLT applies the LT predicate on the "buyer_rate" field.
func BuyerRateLT(v float64) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldLT(FieldBuyerRate, v))
}

// BuyerRateLTE applies the LTE predicate on the "buyer_rate" field.
func BuyerRateLTE(v float64) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldLTE(FieldBuyerRate, v))
}

// BuyerRateIsNil applies the IsNil predicate on the "buyer_rate" field.
func BuyerRateIsNil() predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldIsNull(FieldBuyerRate))
}

// BuyerRateNotNil applies the NotNil predicate on the "buyer_rate" field.
func BuyerRateNotNil() predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldNotNull(FieldBuyerRate))
}

// SupplierRateEQ applies the EQ predicate on the "supplier_rate" field.
func SupplierRateEQ(v float64) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldEQ(FieldSupplierRate, v))
}

// SupplierRateNEQ applies the NEQ predicate on the "supplier_rate" field.
func SupplierRateNEQ(v float64) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldNEQ(FieldSupplierRate, v))
}

// SupplierRateIn applies the In predicate on the "supplier_rate" field.
func SupplierRateIn(vs ...float64) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldIn(FieldSupplierRate, vs...))
}

// SupplierRateNotIn applies the NotIn predicate on the "supplier_rate" field.
func SupplierRateNotIn(vs ...float64) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldNotIn(FieldSupplierRate, vs...))
}

// SupplierRateGT applies the GT predicate on the "supplier_rate" field.
func SupplierRateGT(v float64) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldGT(FieldSupplierRate, v))
}

// SupplierRateGTE applies the GTE predicate on the "supplier_rate" field.
func SupplierRateGTE(v float64) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldGTE(FieldSupplierRate, v))
}

// SupplierRateLT applies the LT predicate on the "supplier_rate" field.
func SupplierRateLT(v float64) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldLT(FieldSupplierRate, v))
}

// SupplierRateLTE applies the LTE predicate on the "supplier_rate" field.
func SupplierRateLTE(v float64) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldLTE(FieldSupplierRate, v))
}

// SupplierRateIsNil applies the IsNil predicate on the "supplier_rate" field.
func SupplierRateIsNil() predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldIsNull(FieldSupplierRate))
}

// SupplierRateNotNil applies the NotNil predicate on the "supplier_rate" field.
func SupplierRateNotNil() predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldNotNull(FieldSupplierRate))
}

// MonthlyBuyerTotalEQ applies the EQ predicate on the "monthly_buyer_total" field.
func MonthlyBuyerTotalEQ(v float64) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldEQ(FieldMonthlyBuyerTotal, v))
}

// MonthlyBuyerTotalNEQ applies the NEQ predicate on the "monthly_buyer_total" field.
func MonthlyBuyerTotalNEQ(v float64) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldNEQ(FieldMonthlyBuyerTotal, v))
}

// MonthlyBuyerTotalIn applies the In predicate on the "monthly_buyer_total" field.
func MonthlyBuyerTotalIn(vs ...float64) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldIn(FieldMonthlyBuyerTotal, vs...))
}

// MonthlyBuyerTotalNotIn applies the NotIn predicate on the "monthly_buyer_total" field.
func MonthlyBuyerTotalNotIn(vs ...float64) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldNotIn(FieldMonthlyBuyerTotal, vs...))
}

// MonthlyBuyerTotalGT applies the GT predicate on the "monthly_buyer_total" field.
func MonthlyBuyerTotalGT(v float64) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldGT(FieldMonthlyBuyerTotal, v))
}

// MonthlyBuyerTotalGTE applies the GTE predicate on the "monthly_buyer_total" field.
func MonthlyBuyerTotalGTE(v float64) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldGTE(FieldMonthlyBuyerTotal, v))
}

// MonthlyBuyerTotalLT applies the LT predicate on the "monthly_buyer_total" field.
func MonthlyBuyerTotalLT(v float64) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldLT(FieldMonthlyBuyerTotal, v))
}

// MonthlyBuyerTotalLTE applies the LTE predicate on the "monthly_buyer_total" field.
func MonthlyBuyerTotalLTE(v float64) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldLTE(FieldMonthlyBuyerTotal, v))
}

// MonthlyBuyerTotalIsNil applies the IsNil predicate on the "monthly_buyer_total" field.
func MonthlyBuyerTotalIsNil() predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldIsNull(FieldMonthlyBuyerTotal))
}

// MonthlyBuyerTotalNotNil applies the NotNil predicate on the "monthly_buyer_total" field.
func MonthlyBuyerTotalNotNil() predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldNotNull(FieldMonthlyBuyerTotal))
}

// MonthlySupplierPayoutEQ applies the EQ predicate on the "monthly_supplier_payout" field.
func MonthlySupplierPayoutEQ(v float64) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldEQ(FieldMonthlySupplierPayout, v))
}

// MonthlySupplierPayoutNEQ applies the NEQ predicate on the "monthly_supplier_payout" field.
func MonthlySupplierPayoutNEQ(v float64) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldNEQ(FieldMonthlySupplierPayout, v))
}

// MonthlySupplierPayoutIn applies the In predicate on the "monthly_supplier_payout" field.
func MonthlySupplierPayoutIn(vs ...float64) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldIn(FieldMonthlySupplierPayout, vs...))
}

// MonthlySupplierPayoutNotIn applies the NotIn predicate on the "monthly_supplier_payout" field.
func MonthlySupplierPayoutNotIn(vs ...float64) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldNotIn(FieldMonthlySupplierPayout, vs...))
}

// MonthlySupplierPayoutGT applies the GT predicate on the "monthly_supplier_payout" field.
func MonthlySupplierPayoutGT(v float64) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldGT(FieldMonthlySupplierPayout, v))
}

// MonthlySupplierPayoutGTE applies the GTE predicate on the "monthly_supplier_payout" field.
func MonthlySupplierPayoutGTE(v float64) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldGTE(FieldMonthlySupplierPayout, v))
}

// MonthlySupplierPayoutLT applies the LT predicate on the "monthly_supplier_payout" field.
func MonthlySupplierPayoutLT(v float64) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldLT(FieldMonthlySupplierPayout, v))
}

// MonthlySupplierPayoutLTE applies the LTE predicate on the "monthly_supplier_payout" field.
func MonthlySupplierPayoutLTE(v float64) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldLTE(FieldMonthlySupplierPayout, v))
}

// MonthlySupplierPayoutIsNil applies the IsNil predicate on the "monthly_supplier_payout" field.
func MonthlySupplierPayoutIsNil() predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldIsNull(FieldMonthlySupplierPayout))
}

// MonthlySupplierPayoutNotNil applies the NotNil predicate on the "monthly_supplier_payout" field.
func MonthlySupplierPayoutNotNil() predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldNotNull(FieldMonthlySupplierPayout))
}

// ExternalRefEQ applies the EQ predicate on the "external_ref" field.
func ExternalRefEQ(v string) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldEQ(FieldExternalRef, v))
}

// ExternalRefNEQ applies the NEQ predicate on the "external_ref" field.
func ExternalRefNEQ(v string) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldNEQ(FieldExternalRef, v))
}

// ExternalRefIn applies the In predicate on the "external_ref" field.
func ExternalRefIn(vs ...string) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldIn(FieldExternalRef, vs...))
}

// ExternalRefNotIn applies the NotIn predicate on the "external_ref" field.
func ExternalRefNotIn(vs ...string) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldNotIn(FieldExternalRef, vs...))
}

// ExternalRefGT applies the GT predicate on the "external_ref" field.
func ExternalRefGT(v string) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldGT(FieldExternalRef, v))
}

// ExternalRefGTE applies the GTE predicate on the "external_ref" field.
func ExternalRefGTE(v string) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldGTE(FieldExternalRef, v))
}

// ExternalRefLT applies the LT predicate on the "external_ref" field.
func ExternalRefLT(v string) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldLT(FieldExternalRef, v))
}

// ExternalRefLTE applies the LTE predicate on the "external_ref" field.
func ExternalRefLTE(v string) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldLTE(FieldExternalRef, v))
}

// ExternalRefContains applies the Contains predicate on the "external_ref" field.
func ExternalRefContains(v string) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldContains(FieldExternalRef, v))
}

// ExternalRefHasPrefix applies the HasPrefix predicate on the "external_ref" field.
func ExternalRefHasPrefix(v string) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldHasPrefix(FieldExternalRef, v))
}

// ExternalRefHasSuffix applies the HasSuffix predicate on the "external_ref" field.
func ExternalRefHasSuffix(v string) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldHasSuffix(FieldExternalRef, v))
}

// ExternalRefIsNil applies the IsNil predicate on the "external_ref" field.
func ExternalRefIsNil() predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldIsNull(FieldExternalRef))
}

// ExternalRefNotNil applies the NotNil predicate on the "external_ref" field.
func ExternalRefNotNil() predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldNotNull(FieldExternalRef))
}

// ExternalRefEqualFold applies the EqualFold predicate on the "external_ref" field.
func ExternalRefEqualFold(v string) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldEqualFold(FieldExternalRef, v))
}

// ExternalRefContainsFold applies the ContainsFold predicate on the "external_ref" field.
func ExternalRefContainsFold(v string) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldContainsFold(FieldExternalRef, v))
}

// DocumentURLEQ applies the EQ predicate on the "document_url" field.
func DocumentURLEQ(v string) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldEQ(FieldDocumentURL, v))
}

// DocumentURLNEQ applies the NEQ predicate on the "document_url" field.
func DocumentURLNEQ(v string) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldNEQ(FieldDocumentURL, v))
}

// DocumentURLIn applies the In predicate on the "document_url" field.
func DocumentURLIn(vs ...string) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldIn(FieldDocumentURL, vs...))
}

// DocumentURLNotIn applies the NotIn predicate on the "document_url" field.
func DocumentURLNotIn(vs ...string) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldNotIn(FieldDocumentURL, vs...))
}

// DocumentURLGT applies the GT predicate on the "document_url" field.
func DocumentURLGT(v string) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldGT(FieldDocumentURL, v))
}

// DocumentURLGTE applies the GTE predicate on the "document_url" field.
func DocumentURLGTE(v string) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldGTE(FieldDocumentURL, v))
}

// DocumentURLLT applies the LT predicate on the "document_url" field.
func DocumentURLLT(v string) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldLT(FieldDocumentURL, v))
}

// DocumentURLLTE applies the LTE predicate on the "document_url" field.
func DocumentURLLTE(v string) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldLTE(FieldDocumentURL, v))
}

// DocumentURLContains applies the Contains predicate on the "document_url" field.
func DocumentURLContains(v string) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldContains(FieldDocumentURL, v))
}

// DocumentURLHasPrefix applies the HasPrefix predicate on the "document_url" field.
func DocumentURLHasPrefix(v string) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldHasPrefix(FieldDocumentURL, v))
}

// DocumentURLHasSuffix applies the HasSuffix predicate on the "document_url" field.
func DocumentURLHasSuffix(v string) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldHasSuffix(FieldDocumentURL, v))
}

// DocumentURLIsNil applies the IsNil predicate on the "document_url" field.
func DocumentURLIsNil() predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldIsNull(FieldDocumentURL))
}

// DocumentURLNotNil applies the NotNil predicate on the "document_url" field.
func DocumentURLNotNil() predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldNotNull(FieldDocumentURL))
}

// DocumentURLEqualFold applies the EqualFold predicate on the "document_url" field.
func DocumentURLEqualFold(v string) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldEqualFold(FieldDocumentURL, v))
}

// DocumentURLContainsFold applies the ContainsFold predicate on the "document_url" field.
func DocumentURLContainsFold(v string) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldContainsFold(FieldDocumentURL, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasEngagement applies the HasEdge predicate on the "engagement" edge.
func HasEngagement() predicate.EngagementAgreement {
	return predicate.EngagementAgreement(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, EngagementTable, EngagementColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEngagementWith applies the HasEdge predicate on the "engagement" edge with a given conditions (other predicates).
func HasEngagementWith(preds ...predicate.Engagement) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(func(s *sql.Selector) {
		step := newEngagementStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EngagementAgreement) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EngagementAgreement) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EngagementAgreement) predicate.EngagementAgreement {
	return predicate.EngagementAgreement(sql.NotPredicates(p))
}
