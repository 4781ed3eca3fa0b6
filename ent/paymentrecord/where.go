// Code generated by ent, DO NOT EDIT.

package paymentrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/warehouse-exchange/wex/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldContainsFold(FieldID, id))
}

// EngagementID applies equality check predicate on the "engagement_id" field. It's identical to EngagementIDEQ.
func EngagementID(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldEQ(FieldEngagementID, v))
}

// PeriodStart applies equality check predicate on the "period_start" field. It's identical to PeriodStartEQ.
func PeriodStart(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldEQ(FieldPeriodStart, v))
}

// PeriodEnd applies equality check predicate on the "period_end" field. It's identical to PeriodEndEQ.
func PeriodEnd(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldEQ(FieldPeriodEnd, v))
}

// DueDate applies equality check predicate on the "due_date" field. It's identical to DueDateEQ.
func DueDate(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldEQ(FieldDueDate, v))
}

// BuyerAmount applies equality check predicate on the "buyer_amount" field. It's identical to BuyerAmountEQ.
func BuyerAmount(v float64) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldEQ(FieldBuyerAmount, v))
}

// SupplierAmount applies equality check predicate on the "supplier_amount" field. It's identical to SupplierAmountEQ.
func SupplierAmount(v float64) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldEQ(FieldSupplierAmount, v))
}

// WexAmount applies equality check predicate on the "wex_amount" field. It's identical to WexAmountEQ.
func WexAmount(v float64) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldEQ(FieldWexAmount, v))
}

// BuyerPaidAt applies equality check predicate on the "buyer_paid_at" field. It's identical to BuyerPaidAtEQ.
func BuyerPaidAt(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldEQ(FieldBuyerPaidAt, v))
}

// SupplierPaidAt applies equality check predicate on the "supplier_paid_at" field. It's identical to SupplierPaidAtEQ.
func SupplierPaidAt(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldEQ(FieldSupplierPaidAt, v))
}

// ExternalRef applies equality check predicate on the "external_ref" field. It's identical to ExternalRefEQ.
func ExternalRef(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldEQ(FieldExternalRef, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// EngagementIDEQ applies the EQ predicate on the "engagement_id" field.
func EngagementIDEQ(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldEQ(FieldEngagementID, v))
}

// EngagementIDNEQ applies the NEQ predicate on the "engagement_id" field.
func EngagementIDNEQ(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNEQ(FieldEngagementID, v))
}

// EngagementIDIn applies the In predicate on the "engagement_id" field.
func EngagementIDIn(vs ...string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldIn(FieldEngagementID, vs...))
}

// EngagementIDNotIn applies the NotIn predicate on the "engagement_id" field.
func EngagementIDNotIn(vs ...string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNotIn(FieldEngagementID, vs...))
}

// EngagementIDGT applies the GT predicate on the "engagement_id" field.
func EngagementIDGT(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldGT(FieldEngagementID, v))
}

// EngagementIDGTE applies the GTE predicate on the "engagement_id" field.
func EngagementIDGTE(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldGTE(FieldEngagementID, v))
}

// EngagementIDLT applies the LT predicate on the "engagement_id" field.
func EngagementIDLT(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldLT(FieldEngagementID, v))
}

// EngagementIDLTE applies the LTE predicate on the "engagement_id" field.
func EngagementIDLTE(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldLTE(FieldEngagementID, v))
}

// EngagementIDContains applies the Contains predicate on the "engagement_id" field.
func EngagementIDContains(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldContains(FieldEngagementID, v))
}

// EngagementIDHasPrefix applies the HasPrefix predicate on the "engagement_id" field.
func EngagementIDHasPrefix(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldHasPrefix(FieldEngagementID, v))
}

// EngagementIDHasSuffix applies the HasSuffix predicate on the "engagement_id" field.
func EngagementIDHasSuffix(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldHasSuffix(FieldEngagementID, v))
}

// EngagementIDEqualFold applies the EqualFold predicate on the "engagement_id" field.
func EngagementIDEqualFold(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldEqualFold(FieldEngagementID, v))
}

// EngagementIDContainsFold applies the ContainsFold predicate on the "engagement_id" field.
func EngagementIDContainsFold(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldContainsFold(FieldEngagementID, v))
}

// PeriodStartEQ applies the EQ predicate on the "period_start" field.
func PeriodStartEQ(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldEQ(FieldPeriodStart, v))
}

// PeriodStartNEQ applies the NEQ predicate on the "period_start" field.
func PeriodStartNEQ(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNEQ(FieldPeriodStart, v))
}

// PeriodStartIn applies the In predicate on the "period_start" field.
func PeriodStartIn(vs ...time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldIn(FieldPeriodStart, vs...))
}

// PeriodStartNotIn applies the NotIn predicate on the "period_start" field.
func PeriodStartNotIn(vs ...time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNotIn(FieldPeriodStart, vs...))
}

// PeriodStartGT applies the GT predicate on the "period_start" field.
func PeriodStartGT(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldGT(FieldPeriodStart, v))
}

// PeriodStartGTE applies the GTE predicate on the "period_start" field.
func PeriodStartGTE(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldGTE(FieldPeriodStart, v))
}

// PeriodStartLT applies the LT predicate on the "period_start" field.
func PeriodStartLT(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldLT(FieldPeriodStart, v))
}

// PeriodStartLTE applies the LTE predicate on the "period_start" field.
func PeriodStartLTE(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldLTE(FieldPeriodStart, v))
}

// PeriodEndEQ applies the EQ predicate on the "period_end" field.
func PeriodEndEQ(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldEQ(FieldPeriodEnd, v))
}

// PeriodEndNEQ applies the NEQ predicate on the "period_end" field.
func PeriodEndNEQ(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNEQ(FieldPeriodEnd, v))
}

// PeriodEndIn applies the In predicate on the "period_end" field.
func PeriodEndIn(vs ...time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldIn(FieldPeriodEnd, vs...))
}

// PeriodEndNotIn applies the NotIn predicate on the "period_end" field.
func PeriodEndNotIn(vs ...time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNotIn(FieldPeriodEnd, vs...))
}

// PeriodEndGT applies the GT predicate on the "period_end" field.
func PeriodEndGT(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldGT(FieldPeriodEnd, v))
}

// PeriodEndGTE applies the GTE predicate on the "period_end" field.
func PeriodEndGTE(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldGTE(FieldPeriodEnd, v))
}

// PeriodEndLT applies the LT predicate on the "period_end" field.
func PeriodEndLT(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldLT(FieldPeriodEnd, v))
}

// PeriodEndLTE applies the LTE predicate on the "period_end" field.
func PeriodEndLTE(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldLTE(FieldPeriodEnd, v))
}

// DueDateEQ applies the EQ predicate on the "due_date" field.
func DueDateEQ(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldEQ(FieldDueDate, v))
}

// DueDateNEQ applies the NEQ predicate on the "due_date" field.
func DueDateNEQ(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNEQ(FieldDueDate, v))
}

// DueDateIn applies the In predicate on the "due_date" field.
func DueDateIn(vs ...time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldIn(FieldDueDate, vs...))
}

// DueDateNotIn applies the NotIn predicate on the "due_date" field.
func DueDateNotIn(vs ...time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNotIn(FieldDueDate, vs...))
}

// DueDateGT applies the GT predicate on the "due_date" field.
func DueDateGT(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldGT(FieldDueDate, v))
}

// DueDateGTE applies the GTE predicate on the "due_date" field.
func DueDateGTE(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldGTE(FieldDueDate, v))
}

// DueDateLT applies the LT predicate on the "due_date" field.
func DueDateLT(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldLT(FieldDueDate, v))
}

// DueDateLTE applies the LTE predicate on the "due_date" field.
func DueDateLTE(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldLTE(FieldDueDate, v))
}

// BuyerAmountEQ applies the EQ predicate on the "buyer_amount" field.
func BuyerAmountEQ(v float64) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldEQ(FieldBuyerAmount, v))
}

// BuyerAmountNEQ applies the NEQ predicate on the "buyer_amount" field.
func BuyerAmountNEQ(v float64) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNEQ(FieldBuyerAmount, v))
}

// BuyerAmountIn applies the In predicate on the "buyer_amount" field.
func BuyerAmountIn(vs ...float64) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldIn(FieldBuyerAmount, vs...))
}

// BuyerAmountNotIn applies the NotIn predicate on the "buyer_amount" field.
func BuyerAmountNotIn(vs ...float64) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNotIn(FieldBuyerAmount, vs...))
}

// BuyerAmountGT applies the GT predicate on the "buyer_amount" field.
func BuyerAmountGT(v float64) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldGT(FieldBuyerAmount, v))
}

// BuyerAmountGTE applies the GTE predicate on the "buyer_amount" field.
func BuyerAmountGTE(v float64) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldGTE(FieldBuyerAmount, v))
}

// BuyerAmountLT applies the LT predicate on the "buyer_amount" field.
func BuyerAmountLT(v float64) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldLT(FieldBuyerAmount, v))
}

// BuyerAmountLTE applies the LTE predicate on the "buyer_amount" field.
func BuyerAmountLTE(v float64) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldLTE(FieldBuyerAmount, v))
}

// SupplierAmountEQ applies the EQ predicate on the "supplier_amount" field.
func SupplierAmountEQ(v float64) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldEQ(FieldSupplierAmount, v))
}

// SupplierAmountNEQ applies the NEQ predicate on the "supplier_amount" field.
func SupplierAmountNEQ(v float64) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNEQ(FieldSupplierAmount, v))
}

// SupplierAmountIn applies the In predicate on the "supplier_amount" field.
func SupplierAmountIn(vs ...float64) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldIn(FieldSupplierAmount, vs...))
}

// SupplierAmountNotIn applies the NotIn predicate on the "supplier_amount" field.
func SupplierAmountNotIn(vs ...float64) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNotIn(FieldSupplierAmount, vs...))
}

// SupplierAmountGT applies the GT predicate on the "supplier_amount" field.
func SupplierAmountGT(v float64) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldGT(FieldSupplierAmount, v))
}

// SupplierAmountGTE applies the GTE predicate on the "supplier_amount" field.
func SupplierAmountGTE(v float64) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldGTE(FieldSupplierAmount, v))
}

// SupplierAmountLT applies the LT predicate on the "supplier_amount" field.
func SupplierAmountLT(v float64) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldLT(FieldSupplierAmount, v))
}

// SupplierAmountLTE applies the LTE predicate on the "supplier_amount" field.
func SupplierAmountLTE(v float64) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldLTE(FieldSupplierAmount, v))
}

// WexAmountEQ applies the EQ predicate on the "wex_amount" field.
func WexAmountEQ(v float64) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldEQ(FieldWexAmount, v))
}

// WexAmountNEQ applies the NEQ predicate on the "wex_amount" field.
func WexAmountNEQ(v float64) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNEQ(FieldWexAmount, v))
}

// WexAmountIn applies the In predicate on the "wex_amount" field.
func WexAmountIn(vs ...float64) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldIn(FieldWexAmount, vs...))
}

// WexAmountNotIn applies the NotIn predicate on the "wex_amount" field.
func WexAmountNotIn(vs ...float64) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNotIn(FieldWexAmount, vs...))
}

// WexAmountGT applies the GT predicate on the "wex_amount" field.
func WexAmountGT(v float64) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldGT(FieldWexAmount, v))
}

// WexAmountGTE applies the GTE predicate on the "wex_amount" field.
func WexAmountGTE(v float64) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldGTE(FieldWexAmount, v))
}

// WexAmountLT applies the LT predicate on the "wex_amount" field.
func WexAmountLT(v float64) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldLT(FieldWexAmount, v))
}

// WexAmountLTE applies the LTE predicate on the "wex_amount" field.
func WexAmountLTE(v float64) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldLTE(FieldWexAmount, v))
}

// BuyerStatusEQ applies the EQ predicate on the "buyer_status" field.
func BuyerStatusEQ(v BuyerStatus) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldEQ(FieldBuyerStatus, v))
}

// BuyerStatusNEQ applies the NEQ predicate on the "buyer_status" field.
func BuyerStatusNEQ(v BuyerStatus) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNEQ(FieldBuyerStatus, v))
}

// BuyerStatusIn applies the In predicate on the "buyer_status" field.
func BuyerStatusIn(vs ...BuyerStatus) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldIn(FieldBuyerStatus, vs...))
}

// BuyerStatusNotIn applies the NotIn predicate on the "buyer_status" field.
func BuyerStatusNotIn(vs ...BuyerStatus) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNotIn(FieldBuyerStatus, vs...))
}

// SupplierStatusEQ applies the EQ predicate on the "supplier_status" field.
func SupplierStatusEQ(v SupplierStatus) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldEQ(FieldSupplierStatus, v))
}

// SupplierStatusNEQ applies the NEQ predicate on the "supplier_status" field.
func SupplierStatusNEQ(v SupplierStatus) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNEQ(FieldSupplierStatus, v))
}

// SupplierStatusIn applies the In predicate on the "supplier_status" field.
func SupplierStatusIn(vs ...SupplierStatus) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldIn(FieldSupplierStatus, vs...))
}

// SupplierStatusNotIn applies the NotIn predicate on the "supplier_status" field.
func SupplierStatusNotIn(vs ...SupplierStatus) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNotIn(FieldSupplierStatus, vs...))
}

// BuyerPaidAtEQ applies the EQ predicate on the "buyer_paid_at" field.
func BuyerPaidAtEQ(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldEQ(FieldBuyerPaidAt, v))
}

// BuyerPaidAtNEQ applies the NEQ predicate on the "buyer_paid_at" field.
func BuyerPaidAtNEQ(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNEQ(FieldBuyerPaidAt, v))
}

// BuyerPaidAtIn applies the In predicate on the "buyer_paid_at" field.
func BuyerPaidAtIn(vs ...time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldIn(FieldBuyerPaidAt, vs...))
}

// BuyerPaidAtNotIn applies the NotIn predicate on the "buyer_paid_at" field.
func BuyerPaidAtNotIn(vs ...time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNotIn(FieldBuyerPaidAt, vs...))
}

// BuyerPaidAtGT applies the GT predicate on the "buyer_paid_at" field.
func BuyerPaidAtGT(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldGT(FieldBuyerPaidAt, v))
}

// BuyerPaidAtGTE applies the GTE predicate on the "buyer_paid_at" field.
func BuyerPaidAtGTE(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldGTE(FieldBuyerPaidAt, v))
}

// BuyerPaidAtLT applies the LT predicate on the "buyer_paid_at" field.
func BuyerPaidAtLT(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldLT(FieldBuyerPaidAt, v))
}

// BuyerPaidAtLTE applies the LTE predicate on the "buyer_paid_at" field.
func BuyerPaidAtLTE(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldLTE(FieldBuyerPaidAt, v))
}

// BuyerPaidAtIsNil applies the IsNil predicate on the "buyer_paid_at" field.
func BuyerPaidAtIsNil() predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldIsNull(FieldBuyerPaidAt))
}

// BuyerPaidAtNotNil applies the NotNil predicate on the "buyer_paid_at" field.
func BuyerPaidAtNotNil() predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNotNull(FieldBuyerPaidAt))
}

// SupplierPaidAtEQ applies the EQ predicate on the "supplier_paid_at" field.
func SupplierPaidAtEQ(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldEQ(FieldSupplierPaidAt, v))
}

// SupplierPaidAtNEQ applies the NEQ predicate on the "supplier_paid_at" field.
func SupplierPaidAtNEQ(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNEQ(FieldSupplierPaidAt, v))
}

// SupplierPaidAtIn applies the In predicate on the "supplier_paid_at" field.
func SupplierPaidAtIn(vs ...time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldIn(FieldSupplierPaidAt, vs...))
}

// SupplierPaidAtNotIn applies the NotIn predicate on the "supplier_paid_at" field.
func SupplierPaidAtNotIn(vs ...time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNotIn(FieldSupplierPaidAt, vs...))
}

// SupplierPaidAtGT applies the GT predicate on the "supplier_paid_at" field.
func SupplierPaidAtGT(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldGT(FieldSupplierPaidAt, v))
}

// SupplierPaidAtGTE applies the GTE predicate on the "supplier_paid_at" field.
func SupplierPaidAtGTE(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldGTE(FieldSupplierPaidAt, v))
}

// SupplierPaidAtLT applies the LT predicate on the "supplier_paid_at" field.
func SupplierPaidAtLT(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldLT(FieldSupplierPaidAt, v))
}

// SupplierPaidAtLTE applies the LTE predicate on the "supplier_paid_at" field.
func SupplierPaidAtLTE(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldLTE(FieldSupplierPaidAt, v))
}

// SupplierPaidAtIsNil applies the IsNil predicate on the "supplier_paid_at" field.
func SupplierPaidAtIsNil() predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldIsNull(FieldSupplierPaidAt))
}

// SupplierPaidAtNotNil applies the NotNil predicate on the "supplier_paid_at" field.
func SupplierPaidAtNotNil() predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNotNull(FieldSupplierPaidAt))
}

// ExternalRefEQ applies the EQ predicate on the "external_ref" field.
func ExternalRefEQ(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldEQ(FieldExternalRef, v))
}

// ExternalRefNEQ applies the NEQ predicate on the "external_ref" field.
func ExternalRefNEQ(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNEQ(FieldExternalRef, v))
}

// ExternalRefIn applies the In predicate on the "external_ref" field.
func ExternalRefIn(vs ...string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldIn(FieldExternalRef, vs...))
}

// ExternalRefNotIn applies the NotIn predicate on the "external_ref" field.
func ExternalRefNotIn(vs ...string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNotIn(FieldExternalRef, vs...))
}

// ExternalRefGT applies the GT predicate on the "external_ref" field.
func ExternalRefGT(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldGT(FieldExternalRef, v))
}

// ExternalRefGTE applies the GTE predicate on the "external_ref" field.
func ExternalRefGTE(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldGTE(FieldExternalRef, v))
}

// ExternalRefLT applies the LT predicate on the "external_ref" field.
func ExternalRefLT(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldLT(FieldExternalRef, v))
}

// ExternalRefLTE applies the LTE predicate on the "external_ref" field.
func ExternalRefLTE(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldLTE(FieldExternalRef, v))
}

// ExternalRefContains applies the Contains predicate on the "external_ref" field.
func ExternalRefContains(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldContains(FieldExternalRef, v))
}

// ExternalRefHasPrefix applies the HasPrefix predicate on the "external_ref" field.
func ExternalRefHasPrefix(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldHasPrefix(FieldExternalRef, v))
}

// ExternalRefHasSuffix applies the HasSuffix predicate on the "external_ref" field.
func ExternalRefHasSuffix(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldHasSuffix(FieldExternalRef, v))
}

// ExternalRefIsNil applies the IsNil predicate on the "external_ref" field.
func ExternalRefIsNil() predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldIsNull(FieldExternalRef))
}

// ExternalRefNotNil applies the NotNil predicate on the "external_ref" field.
func ExternalRefNotNil() predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNotNull(FieldExternalRef))
}

// ExternalRefEqualFold applies the EqualFold predicate on the "external_ref" field.
func ExternalRefEqualFold(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldEqualFold(FieldExternalRef, v))
}

// ExternalRefContainsFold applies the ContainsFold predicate on the "external_ref" field.
func ExternalRefContainsFold(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldContainsFold(FieldExternalRef, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasEngagement applies the HasEdge predicate on the "engagement" edge.
func HasEngagement() predicate.PaymentRecord {
	return predicate.PaymentRecord(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, EngagementTable, EngagementColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEngagementWith applies the HasEdge predicate on the "engagement" edge with a given conditions (other predicates).
func HasEngagementWith(preds ...predicate.Engagement) predicate.PaymentRecord {
	return predicate.PaymentRecord(func(s *sql.Selector) {
		step := newEngagementStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PaymentRecord) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PaymentRecord) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PaymentRecord) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.NotPredicates(p))
}
