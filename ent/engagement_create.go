// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/warehouse-exchange/wex/ent/engagement"
	"github.com/warehouse-exchange/wex/ent/engagementagreement"
	"github.com/warehouse-exchange/wex/ent/engagementevent"
	"github.com/warehouse-exchange/wex/ent/match"
	"github.com/warehouse-exchange/wex/ent/paymentrecord"
	"github.com/warehouse-exchange/wex/ent/uploadtoken"
)

// EngagementCreate is the builder for creating a Engagement entity.
type EngagementCreate struct {
	config
	mutation *EngagementMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetMatchID sets the "match_id" field.
func (_c *EngagementCreate) SetMatchID(v string) *EngagementCreate {
	_c.mutation.SetMatchID(v)
	return _c
}

// SetBuyerNeedID sets the "buyer_need_id" field.
func (_c *EngagementCreate) SetBuyerNeedID(v string) *EngagementCreate {
	_c.mutation.SetBuyerNeedID(v)
	return _c
}

// SetWarehouseID sets the "warehouse_id" field.
func (_c *EngagementCreate) SetWarehouseID(v string) *EngagementCreate {
	_c.mutation.SetWarehouseID(v)
	return _c
}

// SetBuyerID sets the "buyer_id" field.
func (_c *EngagementCreate) SetBuyerID(v string) *EngagementCreate {
	_c.mutation.SetBuyerID(v)
	return _c
}

// SetNillableBuyerID sets the "buyer_id" field if the given value is not nil.
func (_c *EngagementCreate) SetNillableBuyerID(v *string) *EngagementCreate {
	if v != nil {
		_c.SetBuyerID(*v)
	}
	return _c
}

// SetCompanyID sets the "company_id" field.
func (_c *EngagementCreate) SetCompanyID(v string) *EngagementCreate {
	_c.mutation.SetCompanyID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *EngagementCreate) SetStatus(v engagement.Status) *EngagementCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *EngagementCreate) SetNillableStatus(v *engagement.Status) *EngagementCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetTier sets the "tier" field.
func (_c *EngagementCreate) SetTier(v engagement.Tier) *EngagementCreate {
	_c.mutation.SetTier(v)
	return _c
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_c *EngagementCreate) SetNillableTier(v *engagement.Tier) *EngagementCreate {
	if v != nil {
		_c.SetTier(*v)
	}
	return _c
}

// SetPath sets the "path" field.
func (_c *EngagementCreate) SetPath(v engagement.Path) *EngagementCreate {
	_c.mutation.SetPath(v)
	return _c
}

// SetNillablePath sets the "path" field if the given value is not nil.
func (_c *EngagementCreate) SetNillablePath(v *engagement.Path) *EngagementCreate {
	if v != nil {
		_c.SetPath(*v)
	}
	return _c
}

// SetDealPingSentAt sets the "deal_ping_sent_at" field.
func (_c *EngagementCreate) SetDealPingSentAt(v time.Time) *EngagementCreate {
	_c.mutation.SetDealPingSentAt(v)
	return _c
}

// SetNillableDealPingSentAt sets the "deal_ping_sent_at" field if the given value is not nil.
func (_c *EngagementCreate) SetNillableDealPingSentAt(v *time.Time) *EngagementCreate {
	if v != nil {
		_c.SetDealPingSentAt(*v)
	}
	return _c
}

// SetDealPingExpiresAt sets the "deal_ping_expires_at" field.
func (_c *EngagementCreate) SetDealPingExpiresAt(v time.Time) *EngagementCreate {
	_c.mutation.SetDealPingExpiresAt(v)
	return _c
}

// SetNillableDealPingExpiresAt sets the "deal_ping_expires_at" field if the given value is not nil.
func (_c *EngagementCreate) SetNillableDealPingExpiresAt(v *time.Time) *EngagementCreate {
	if v != nil {
		_c.SetDealPingExpiresAt(*v)
	}
	return _c
}

// SetBuyerAcceptedAt sets the "buyer_accepted_at" field.
func (_c *EngagementCreate) SetBuyerAcceptedAt(v time.Time) *EngagementCreate {
	_c.mutation.SetBuyerAcceptedAt(v)
	return _c
}

// SetNillableBuyerAcceptedAt sets the "buyer_accepted_at" field if the given value is not nil.
func (_c *EngagementCreate) SetNillableBuyerAcceptedAt(v *time.Time) *EngagementCreate {
	if v != nil {
		_c.SetBuyerAcceptedAt(*v)
	}
	return _c
}

// SetContactCapturedAt sets the "contact_captured_at" field.
func (_c *EngagementCreate) SetContactCapturedAt(v time.Time) *EngagementCreate {
	_c.mutation.SetContactCapturedAt(v)
	return _c
}

// SetNillableContactCapturedAt sets the "contact_captured_at" field if the given value is not nil.
func (_c *EngagementCreate) SetNillableContactCapturedAt(v *time.Time) *EngagementCreate {
	if v != nil {
		_c.SetContactCapturedAt(*v)
	}
	return _c
}

// SetAccountCreatedAt sets the "account_created_at" field.
func (_c *EngagementCreate) SetAccountCreatedAt(v time.Time) *EngagementCreate {
	_c.mutation.SetAccountCreatedAt(v)
	return _c
}

// SetNillableAccountCreatedAt sets the "account_created_at" field if the given value is not nil.
func (_c *EngagementCreate) SetNillableAccountCreatedAt(v *time.Time) *EngagementCreate {
	if v != nil {
		_c.SetAccountCreatedAt(*v)
	}
	return _c
}

// SetGuaranteeSignedAt sets the "guarantee_signed_at" field.
func (_c *EngagementCreate) SetGuaranteeSignedAt(v time.Time) *EngagementCreate {
	_c.mutation.SetGuaranteeSignedAt(v)
	return _c
}

// SetNillableGuaranteeSignedAt sets the "guarantee_signed_at" field if the given value is not nil.
func (_c *EngagementCreate) SetNillableGuaranteeSignedAt(v *time.Time) *EngagementCreate {
	if v != nil {
		_c.SetGuaranteeSignedAt(*v)
	}
	return _c
}

// SetAddressRevealedAt sets the "address_revealed_at" field.
func (_c *EngagementCreate) SetAddressRevealedAt(v time.Time) *EngagementCreate {
	_c.mutation.SetAddressRevealedAt(v)
	return _c
}

// SetNillableAddressRevealedAt sets the "address_revealed_at" field if the given value is not nil.
func (_c *EngagementCreate) SetNillableAddressRevealedAt(v *time.Time) *EngagementCreate {
	if v != nil {
		_c.SetAddressRevealedAt(*v)
	}
	return _c
}

// SetTourRequestedAt sets the "tour_requested_at" field.
func (_c *EngagementCreate) SetTourRequestedAt(v time.Time) *EngagementCreate {
	_c.mutation.SetTourRequestedAt(v)
	return _c
}

// SetNillableTourRequestedAt sets the "tour_requested_at" field if the given value is not nil.
func (_c *EngagementCreate) SetNillableTourRequestedAt(v *time.Time) *EngagementCreate {
	if v != nil {
		_c.SetTourRequestedAt(*v)
	}
	return _c
}

// SetTourConfirmedAt sets the "tour_confirmed_at" field.
func (_c *EngagementCreate) SetTourConfirmedAt(v time.Time) *EngagementCreate {
	_c.mutation.SetTourConfirmedAt(v)
	return _c
}

// SetNillableTourConfirmedAt sets the "tour_confirmed_at" field if the given value is not nil.
func (_c *EngagementCreate) SetNillableTourConfirmedAt(v *time.Time) *EngagementCreate {
	if v != nil {
		_c.SetTourConfirmedAt(*v)
	}
	return _c
}

// SetTourScheduledFor sets the "tour_scheduled_for" field.
func (_c *EngagementCreate) SetTourScheduledFor(v time.Time) *EngagementCreate {
	_c.mutation.SetTourScheduledFor(v)
	return _c
}

// SetNillableTourScheduledFor sets the "tour_scheduled_for" field if the given value is not nil.
func (_c *EngagementCreate) SetNillableTourScheduledFor(v *time.Time) *EngagementCreate {
	if v != nil {
		_c.SetTourScheduledFor(*v)
	}
	return _c
}

// SetTourCompletedAt sets the "tour_completed_at" field.
func (_c *EngagementCreate) SetTourCompletedAt(v time.Time) *EngagementCreate {
	_c.mutation.SetTourCompletedAt(v)
	return _c
}

// SetNillableTourCompletedAt sets the "tour_completed_at" field if the given value is not nil.
func (_c *EngagementCreate) SetNillableTourCompletedAt(v *time.Time) *EngagementCreate {
	if v != nil {
		_c.SetTourCompletedAt(*v)
	}
	return _c
}

// SetTourRescheduleCount sets the "tour_reschedule_count" field.
func (_c *EngagementCreate) SetTourRescheduleCount(v int) *EngagementCreate {
	_c.mutation.SetTourRescheduleCount(v)
	return _c
}

// SetNillableTourRescheduleCount sets the "tour_reschedule_count" field if the given value is not nil.
func (_c *EngagementCreate) SetNillableTourRescheduleCount(v *int) *EngagementCreate {
	if v != nil {
		_c.SetTourRescheduleCount(*v)
	}
	return _c
}

// SetInstantBookRequestedAt sets the "instant_book_requested_at" field.
func (_c *EngagementCreate) SetInstantBookRequestedAt(v time.Time) *EngagementCreate {
	_c.mutation.SetInstantBookRequestedAt(v)
	return _c
}

// SetNillableInstantBookRequestedAt sets the "instant_book_requested_at" field if the given value is not nil.
func (_c *EngagementCreate) SetNillableInstantBookRequestedAt(v *time.Time) *EngagementCreate {
	if v != nil {
		_c.SetInstantBookRequestedAt(*v)
	}
	return _c
}

// SetInstantBookConfirmedAt sets the "instant_book_confirmed_at" field.
func (_c *EngagementCreate) SetInstantBookConfirmedAt(v time.Time) *EngagementCreate {
	_c.mutation.SetInstantBookConfirmedAt(v)
	return _c
}

// SetNillableInstantBookConfirmedAt sets the "instant_book_confirmed_at" field if the given value is not nil.
func (_c *EngagementCreate) SetNillableInstantBookConfirmedAt(v *time.Time) *EngagementCreate {
	if v != nil {
		_c.SetInstantBookConfirmedAt(*v)
	}
	return _c
}

// SetBuyerConfirmedAt sets the "buyer_confirmed_at" field.
func (_c *EngagementCreate) SetBuyerConfirmedAt(v time.Time) *EngagementCreate {
	_c.mutation.SetBuyerConfirmedAt(v)
	return _c
}

// SetNillableBuyerConfirmedAt sets the "buyer_confirmed_at" field if the given value is not nil.
func (_c *EngagementCreate) SetNillableBuyerConfirmedAt(v *time.Time) *EngagementCreate {
	if v != nil {
		_c.SetBuyerConfirmedAt(*v)
	}
	return _c
}

// SetAgreementSentAt sets the "agreement_sent_at" field.
func (_c *EngagementCreate) SetAgreementSentAt(v time.Time) *EngagementCreate {
	_c.mutation.SetAgreementSentAt(v)
	return _c
}

// SetNillableAgreementSentAt sets the "agreement_sent_at" field if the given value is not nil.
func (_c *EngagementCreate) SetNillableAgreementSentAt(v *time.Time) *EngagementCreate {
	if v != nil {
		_c.SetAgreementSentAt(*v)
	}
	return _c
}

// SetAgreementSignedAt sets the "agreement_signed_at" field.
func (_c *EngagementCreate) SetAgreementSignedAt(v time.Time) *EngagementCreate {
	_c.mutation.SetAgreementSignedAt(v)
	return _c
}

// SetNillableAgreementSignedAt sets the "agreement_signed_at" field if the given value is not nil.
func (_c *EngagementCreate) SetNillableAgreementSignedAt(v *time.Time) *EngagementCreate {
	if v != nil {
		_c.SetAgreementSignedAt(*v)
	}
	return _c
}

// SetLeaseStartDate sets the "lease_start_date" field.
func (_c *EngagementCreate) SetLeaseStartDate(v time.Time) *EngagementCreate {
	_c.mutation.SetLeaseStartDate(v)
	return _c
}

// SetNillableLeaseStartDate sets the "lease_start_date" field if the given value is not nil.
func (_c *EngagementCreate) SetNillableLeaseStartDate(v *time.Time) *EngagementCreate {
	if v != nil {
		_c.SetLeaseStartDate(*v)
	}
	return _c
}

// SetLeaseEndDate sets the "lease_end_date" field.
func (_c *EngagementCreate) SetLeaseEndDate(v time.Time) *EngagementCreate {
	_c.mutation.SetLeaseEndDate(v)
	return _c
}

// SetNillableLeaseEndDate sets the "lease_end_date" field if the given value is not nil.
func (_c *EngagementCreate) SetNillableLeaseEndDate(v *time.Time) *EngagementCreate {
	if v != nil {
		_c.SetLeaseEndDate(*v)
	}
	return _c
}

// SetActivatedAt sets the "activated_at" field.
func (_c *EngagementCreate) SetActivatedAt(v time.Time) *EngagementCreate {
	_c.mutation.SetActivatedAt(v)
	return _c
}

// SetNillableActivatedAt sets the "activated_at" field if the given value is not nil.
func (_c *EngagementCreate) SetNillableActivatedAt(v *time.Time) *EngagementCreate {
	if v != nil {
		_c.SetActivatedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *EngagementCreate) SetCompletedAt(v time.Time) *EngagementCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *EngagementCreate) SetNillableCompletedAt(v *time.Time) *EngagementCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetInsuranceUploaded sets the "insurance_uploaded" field.
func (_c *EngagementCreate) SetInsuranceUploaded(v bool) *EngagementCreate {
	_c.mutation.SetInsuranceUploaded(v)
	return _c
}

// SetNillableInsuranceUploaded sets the "insurance_uploaded" field if the given value is not nil.
func (_c *EngagementCreate) SetNillableInsuranceUploaded(v *bool) *EngagementCreate {
	if v != nil {
		_c.SetInsuranceUploaded(*v)
	}
	return _c
}

// SetCompanyDocsUploaded sets the "company_docs_uploaded" field.
func (_c *EngagementCreate) SetCompanyDocsUploaded(v bool) *EngagementCreate {
	_c.mutation.SetCompanyDocsUploaded(v)
	return _c
}

// SetNillableCompanyDocsUploaded sets the "company_docs_uploaded" field if the given value is not nil.
func (_c *EngagementCreate) SetNillableCompanyDocsUploaded(v *bool) *EngagementCreate {
	if v != nil {
		_c.SetCompanyDocsUploaded(*v)
	}
	return _c
}

// SetPaymentMethodAdded sets the "payment_method_added" field.
func (_c *EngagementCreate) SetPaymentMethodAdded(v bool) *EngagementCreate {
	_c.mutation.SetPaymentMethodAdded(v)
	return _c
}

// SetNillablePaymentMethodAdded sets the "payment_method_added" field if the given value is not nil.
func (_c *EngagementCreate) SetNillablePaymentMethodAdded(v *bool) *EngagementCreate {
	if v != nil {
		_c.SetPaymentMethodAdded(*v)
	}
	return _c
}

// SetSqft sets the "sqft" field.
func (_c *EngagementCreate) SetSqft(v int) *EngagementCreate {
	_c.mutation.SetSqft(v)
	return _c
}

// SetNillableSqft sets the "sqft" field if the given value is not nil.
func (_c *EngagementCreate) SetNillableSqft(v *int) *EngagementCreate {
	if v != nil {
		_c.SetSqft(*v)
	}
	return _c
}

// SetSupplierRate sets the "supplier_rate" field.
func (_c *EngagementCreate) SetSupplierRate(v float64) *EngagementCreate {
	_c.mutation.SetSupplierRate(v)
	return _c
}

// SetNillableSupplierRate sets the "supplier_rate" field if the given value is not nil.
func (_c *EngagementCreate) SetNillableSupplierRate(v *float64) *EngagementCreate {
	if v != nil {
		_c.SetSupplierRate(*v)
	}
	return _c
}

// SetBuyerRate sets the "buyer_rate" field.
func (_c *EngagementCreate) SetBuyerRate(v float64) *EngagementCreate {
	_c.mutation.SetBuyerRate(v)
	return _c
}

// SetNillableBuyerRate sets the "buyer_rate" field if the given value is not nil.
func (_c *EngagementCreate) SetNillableBuyerRate(v *float64) *EngagementCreate {
	if v != nil {
		_c.SetBuyerRate(*v)
	}
	return _c
}

// SetMonthlySupplierPayout sets the "monthly_supplier_payout" field.
func (_c *EngagementCreate) SetMonthlySupplierPayout(v float64) *EngagementCreate {
	_c.mutation.SetMonthlySupplierPayout(v)
	return _c
}

// SetNillableMonthlySupplierPayout sets the "monthly_supplier_payout" field if the given value is not nil.
func (_c *EngagementCreate) SetNillableMonthlySupplierPayout(v *float64) *EngagementCreate {
	if v != nil {
		_c.SetMonthlySupplierPayout(*v)
	}
	return _c
}

// SetMonthlyBuyerTotal sets the "monthly_buyer_total" field.
func (_c *EngagementCreate) SetMonthlyBuyerTotal(v float64) *EngagementCreate {
	_c.mutation.SetMonthlyBuyerTotal(v)
	return _c
}

// SetNillableMonthlyBuyerTotal sets the "monthly_buyer_total" field if the given value is not nil.
func (_c *EngagementCreate) SetNillableMonthlyBuyerTotal(v *float64) *EngagementCreate {
	if v != nil {
		_c.SetMonthlyBuyerTotal(*v)
	}
	return _c
}

// SetDeclinedBy sets the "declined_by" field.
func (_c *EngagementCreate) SetDeclinedBy(v engagement.DeclinedBy) *EngagementCreate {
	_c.mutation.SetDeclinedBy(v)
	return _c
}

// SetNillableDeclinedBy sets the "declined_by" field if the given value is not nil.
func (_c *EngagementCreate) SetNillableDeclinedBy(v *engagement.DeclinedBy) *EngagementCreate {
	if v != nil {
		_c.SetDeclinedBy(*v)
	}
	return _c
}

// SetDeclineReason sets the "decline_reason" field.
func (_c *EngagementCreate) SetDeclineReason(v string) *EngagementCreate {
	_c.mutation.SetDeclineReason(v)
	return _c
}

// SetNillableDeclineReason sets the "decline_reason" field if the given value is not nil.
func (_c *EngagementCreate) SetNillableDeclineReason(v *string) *EngagementCreate {
	if v != nil {
		_c.SetDeclineReason(*v)
	}
	return _c
}

// SetCancelReason sets the "cancel_reason" field.
func (_c *EngagementCreate) SetCancelReason(v string) *EngagementCreate {
	_c.mutation.SetCancelReason(v)
	return _c
}

// SetNillableCancelReason sets the "cancel_reason" field if the given value is not nil.
func (_c *EngagementCreate) SetNillableCancelReason(v *string) *EngagementCreate {
	if v != nil {
		_c.SetCancelReason(*v)
	}
	return _c
}

// SetDecisionTimerPausedAt sets the "decision_timer_paused_at" field.
func (_c *EngagementCreate) SetDecisionTimerPausedAt(v time.Time) *EngagementCreate {
	_c.mutation.SetDecisionTimerPausedAt(v)
	return _c
}

// SetNillableDecisionTimerPausedAt sets the "decision_timer_paused_at" field if the given value is not nil.
func (_c *EngagementCreate) SetNillableDecisionTimerPausedAt(v *time.Time) *EngagementCreate {
	if v != nil {
		_c.SetDecisionTimerPausedAt(*v)
	}
	return _c
}

// SetAdminFlagged sets the "admin_flagged" field.
func (_c *EngagementCreate) SetAdminFlagged(v bool) *EngagementCreate {
	_c.mutation.SetAdminFlagged(v)
	return _c
}

// SetNillableAdminFlagged sets the "admin_flagged" field if the given value is not nil.
func (_c *EngagementCreate) SetNillableAdminFlagged(v *bool) *EngagementCreate {
	if v != nil {
		_c.SetAdminFlagged(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *EngagementCreate) SetCreatedAt(v time.Time) *EngagementCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EngagementCreate) SetNillableCreatedAt(v *time.Time) *EngagementCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *EngagementCreate) SetUpdatedAt(v time.Time) *EngagementCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *EngagementCreate) SetNillableUpdatedAt(v *time.Time) *EngagementCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EngagementCreate) SetID(v string) *EngagementCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetMatch sets the "match" edge to the Match entity.
func (_c *EngagementCreate) SetMatch(v *Match) *EngagementCreate {
	return _c.SetMatchID(v.ID)
}

// AddEventIDs adds the "events" edge to the EngagementEvent entity by IDs.
func (_c *EngagementCreate) AddEventIDs(ids ...string) *EngagementCreate {
	_c.mutation.AddEventIDs(ids...)
	return _c
}

// AddEvents adds the "events" edges to the EngagementEvent entity.
func (_c *EngagementCreate) AddEvents(v ...*EngagementEvent) *EngagementCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEventIDs(ids...)
}

// AddAgreementIDs adds the "agreements" edge to the EngagementAgreement entity by IDs.
func (_c *EngagementCreate) AddAgreementIDs(ids ...string) *EngagementCreate {
	_c.mutation.AddAgreementIDs(ids...)
	return _c
}

// AddAgreements adds the "agreements" edges to the EngagementAgreement entity.
func (_c *EngagementCreate) AddAgreements(v ...*EngagementAgreement) *EngagementCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAgreementIDs(ids...)
}

// AddPaymentIDs adds the "payments" edge to the PaymentRecord entity by IDs.
func (_c *EngagementCreate) AddPaymentIDs(ids ...string) *EngagementCreate {
	_c.mutation.AddPaymentIDs(ids...)
	return _c
}

// AddPayments adds the "payments" edges to the PaymentRecord entity.
func (_c *EngagementCreate) AddPayments(v ...*PaymentRecord) *EngagementCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddPaymentIDs(ids...)
}

// AddUploadTokenIDs adds the "upload_tokens" edge to the UploadToken entity by IDs.
func (_c *EngagementCreate) AddUploadTokenIDs(ids ...string) *EngagementCreate {
	_c.mutation.AddUploadTokenIDs(ids...)
	return _c
}

// AddUploadTokens adds the "upload_tokens" edges to the UploadToken entity.
func (_c *EngagementCreate) AddUploadTokens(v ...*UploadToken) *EngagementCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddUploadTokenIDs(ids...)
}

// Mutation returns the EngagementMutation object of the builder.
func (_c *EngagementCreate) Mutation() *EngagementMutation {
	return _c.mutation
}

// Save creates the Engagement in the database.
func (_c *EngagementCreate) Save(ctx context.Context) (*Engagement, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EngagementCreate) SaveX(ctx context.Context) *Engagement {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EngagementCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EngagementCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EngagementCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := engagement.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Tier(); !ok {
		v := engagement.DefaultTier
		_c.mutation.SetTier(v)
	}
	if _, ok := _c.mutation.TourRescheduleCount(); !ok {
		v := engagement.DefaultTourRescheduleCount
		_c.mutation.SetTourRescheduleCount(v)
	}
	if _, ok := _c.mutation.InsuranceUploaded(); !ok {
		v := engagement.DefaultInsuranceUploaded
		_c.mutation.SetInsuranceUploaded(v)
	}
	if _, ok := _c.mutation.CompanyDocsUploaded(); !ok {
		v := engagement.DefaultCompanyDocsUploaded
		_c.mutation.SetCompanyDocsUploaded(v)
	}
	if _, ok := _c.mutation.PaymentMethodAdded(); !ok {
		v := engagement.DefaultPaymentMethodAdded
		_c.mutation.SetPaymentMethodAdded(v)
	}
	if _, ok := _c.mutation.AdminFlagged(); !ok {
		v := engagement.DefaultAdminFlagged
		_c.mutation.SetAdminFlagged(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := engagement.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := engagement.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EngagementCreate) check() error {
	if _, ok := _c.mutation.MatchID(); !ok {
		return &ValidationError{Name: "match_id", err: errors.New(`ent: missing required field "Engagement.match_id"`)}
	}
	if _, ok := _c.mutation.BuyerNeedID(); !ok {
		return &ValidationError{Name: "buyer_need_id", err: errors.New(`ent: missing required field "Engagement.buyer_need_id"`)}
	}
	if _, ok := _c.mutation.WarehouseID(); !ok {
		return &ValidationError{Name: "warehouse_id", err: errors.New(`ent: missing required field "Engagement.warehouse_id"`)}
	}
	if _, ok := _c.mutation.CompanyID(); !ok {
		return &ValidationError{Name: "company_id", err: errors.New(`ent: missing required field "Engagement.company_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Engagement.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := engagement.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Engagement.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Tier(); !ok {
		return &ValidationError{Name: "tier", err: errors.New(`ent: missing required field "Engagement.tier"`)}
	}
	if v, ok := _c.mutation.Tier(); ok {
		if err := engagement.TierValidator(v); err != nil {
			return &ValidationError{Name: "tier", err: fmt.Errorf(`ent: validator failed for field "Engagement.tier": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Path(); ok {
		if err := engagement.PathValidator(v); err != nil {
			return &ValidationError{Name: "path", err: fmt.Errorf(`ent: validator failed for field "Engagement.path": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TourRescheduleCount(); !ok {
		return &ValidationError{Name: "tour_reschedule_count", err: errors.New(`ent: missing required field "Engagement.tour_reschedule_count"`)}
	}
	if _, ok := _c.mutation.InsuranceUploaded(); !ok {
		return &ValidationError{Name: "insurance_uploaded", err: errors.New(`ent: missing required field "Engagement.insurance_uploaded"`)}
	}
	if _, ok := _c.mutation.CompanyDocsUploaded(); !ok {
		return &ValidationError{Name: "company_docs_uploaded", err: errors.New(`ent: missing required field "Engagement.company_docs_uploaded"`)}
	}
	if _, ok := _c.mutation.PaymentMethodAdded(); !ok {
		return &ValidationError{Name: "payment_method_added", err: errors.New(`ent: missing required field "Engagement.payment_method_added"`)}
	}
	if v, ok := _c.mutation.DeclinedBy(); ok {
		if err := engagement.DeclinedByValidator(v); err != nil {
			return &ValidationError{Name: "declined_by", err: fmt.Errorf(`ent: validator failed for field "Engagement.declined_by": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AdminFlagged(); !ok {
		return &ValidationError{Name: "admin_flagged", err: errors.New(`ent: missing required field "Engagement.admin_flagged"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Engagement.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Engagement.updated_at"`)}
	}
	if len(_c.mutation.MatchIDs()) == 0 {
		return &ValidationError{Name: "match", err: errors.New(`ent: missing required edge "Engagement.match"`)}
	}
	return nil
}

func (_c *EngagementCreate) sqlSave(ctx context.Context) (*Engagement, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Engagement.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EngagementCreate) createSpec() (*Engagement, *sqlgraph.CreateSpec) {
	var (
		_node = &Engagement{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(engagement.Table, sqlgraph.NewFieldSpec(engagement.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.BuyerNeedID(); ok {
		_spec.SetField(engagement.FieldBuyerNeedID, field.TypeString, value)
		_node.BuyerNeedID = value
	}
	if value, ok := _c.mutation.WarehouseID(); ok {
		_spec.SetField(engagement.FieldWarehouseID, field.TypeString, value)
		_node.WarehouseID = value
	}
	if value, ok := _c.mutation.BuyerID(); ok {
		_spec.SetField(engagement.FieldBuyerID, field.TypeString, value)
		_node.BuyerID = value
	}
	if value, ok := _c.mutation.CompanyID(); ok {
		_spec.SetField(engagement.FieldCompanyID, field.TypeString, value)
		_node.CompanyID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(engagement.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Tier(); ok {
		_spec.SetField(engagement.FieldTier, field.TypeEnum, value)
		_node.Tier = value
	}
	if value, ok := _c.mutation.Path(); ok {
		_spec.SetField(engagement.FieldPath, field.TypeEnum, value)
		_node.Path = &value
	}
	if value, ok := _c.mutation.DealPingSentAt(); ok {
		_spec.SetField(engagement.FieldDealPingSentAt, field.TypeTime, value)
		_node.DealPingSentAt = &value
	}
	if value, ok := _c.mutation.DealPingExpiresAt(); ok {
		_spec.SetField(engagement.FieldDealPingExpiresAt, field.TypeTime, value)
		_node.DealPingExpiresAt = &value
	}
	if value, ok := _c.mutation.BuyerAcceptedAt(); ok {
		_spec.SetField(engagement.FieldBuyerAcceptedAt, field.TypeTime, value)
		_node.BuyerAcceptedAt = &value
	}
	if value, ok := _c.mutation.ContactCapturedAt(); ok {
		_spec.SetField(engagement.FieldContactCapturedAt, field.TypeTime, value)
		_node.ContactCapturedAt = &value
	}
	if value, ok := _c.mutation.AccountCreatedAt(); ok {
		_spec.SetField(engagement.FieldAccountCreatedAt, field.TypeTime, value)
		_node.AccountCreatedAt = &value
	}
	if value, ok := _c.mutation.GuaranteeSignedAt(); ok {
		_spec.SetField(engagement.FieldGuaranteeSignedAt, field.TypeTime, value)
		_node.GuaranteeSignedAt = &value
	}
	if value, ok := _c.mutation.AddressRevealedAt(); ok {
		_spec.SetField(engagement.FieldAddressRevealedAt, field.TypeTime, value)
		_node.AddressRevealedAt = &value
	}
	if value, ok := _c.mutation.TourRequestedAt(); ok {
		_spec.SetField(engagement.FieldTourRequestedAt, field.TypeTime, value)
		_node.TourRequestedAt = &value
	}
	if value, ok := _c.mutation.TourConfirmedAt(); ok {
		_spec.SetField(engagement.FieldTourConfirmedAt, field.TypeTime, value)
		_node.TourConfirmedAt = &value
	}
	if value, ok := _c.mutation.TourScheduledFor(); ok {
		_spec.SetField(engagement.FieldTourScheduledFor, field.TypeTime, value)
		_node.TourScheduledFor = &value
	}
	if value, ok := _c.mutation.TourCompletedAt(); ok {
		_spec.SetField(engagement.FieldTourCompletedAt, field.TypeTime, value)
		_node.TourCompletedAt = &value
	}
	if value, ok := _c.mutation.TourRescheduleCount(); ok {
		_spec.SetField(engagement.FieldTourRescheduleCount, field.TypeInt, value)
		_node.TourRescheduleCount = value
	}
	if value, ok := _c.mutation.InstantBookRequestedAt(); ok {
		_spec.SetField(engagement.FieldInstantBookRequestedAt, field.TypeTime, value)
		_node.InstantBookRequestedAt = &value
	}
	if value, ok := _c.mutation.InstantBookConfirmedAt(); ok {
		_spec.SetField(engagement.FieldInstantBookConfirmedAt, field.TypeTime, value)
		_node.InstantBookConfirmedAt = &value
	}
	if value, ok := _c.mutation.BuyerConfirmedAt(); ok {
		_spec.SetField(engagement.FieldBuyerConfirmedAt, field.TypeTime, value)
		_node.BuyerConfirmedAt = &value
	}
	if value, ok := _c.mutation.AgreementSentAt(); ok {
		_spec.SetField(engagement.FieldAgreementSentAt, field.TypeTime, value)
		_node.AgreementSentAt = &value
	}
	if value, ok := _c.mutation.AgreementSignedAt(); ok {
		_spec.SetField(engagement.FieldAgreementSignedAt, field.TypeTime, value)
		_node.AgreementSignedAt = &value
	}
	if value, ok := _c.mutation.LeaseStartDate(); ok {
		_spec.SetField(engagement.FieldLeaseStartDate, field.TypeTime, value)
		_node.LeaseStartDate = &value
	}
	if value, ok := _c.mutation.LeaseEndDate(); ok {
		_spec.SetField(engagement.FieldLeaseEndDate, field.TypeTime, value)
		_node.LeaseEndDate = &value
	}
	if value, ok := _c.mutation.ActivatedAt(); ok {
		_spec.SetField(engagement.FieldActivatedAt, field.TypeTime, value)
		_node.ActivatedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(engagement.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.InsuranceUploaded(); ok {
		_spec.SetField(engagement.FieldInsuranceUploaded, field.TypeBool, value)
		_node.InsuranceUploaded = value
	}
	if value, ok := _c.mutation.CompanyDocsUploaded(); ok {
		_spec.SetField(engagement.FieldCompanyDocsUploaded, field.TypeBool, value)
		_node.CompanyDocsUploaded = value
	}
	if value, ok := _c.mutation.PaymentMethodAdded(); ok {
		_spec.SetField(engagement.FieldPaymentMethodAdded, field.TypeBool, value)
		_node.PaymentMethodAdded = value
	}
	if value, ok := _c.mutation.Sqft(); ok {
		_spec.SetField(engagement.FieldSqft, field.TypeInt, value)
		_node.Sqft = value
	}
	if value, ok := _c.mutation.SupplierRate(); ok {
		_spec.SetField(engagement.FieldSupplierRate, field.TypeFloat64, value)
		_node.SupplierRate = value
	}
	if value, ok := _c.mutation.BuyerRate(); ok {
		_spec.SetField(engagement.FieldBuyerRate, field.TypeFloat64, value)
		_node.BuyerRate = value
	}
	if value, ok := _c.mutation.MonthlySupplierPayout(); ok {
		_spec.SetField(engagement.FieldMonthlySupplierPayout, field.TypeFloat64, value)
		_node.MonthlySupplierPayout = value
	}
	if value, ok := _c.mutation.MonthlyBuyerTotal(); ok {
		_spec.SetField(engagement.FieldMonthlyBuyerTotal, field.TypeFloat64, value)
		_node.MonthlyBuyerTotal = value
	}
	if value, ok := _c.mutation.DeclinedBy(); ok {
		_spec.SetField(engagement.FieldDeclinedBy, field.TypeEnum, value)
		_node.DeclinedBy = &value
	}
	if value, ok := _c.mutation.DeclineReason(); ok {
		_spec.SetField(engagement.FieldDeclineReason, field.TypeString, value)
		_node.DeclineReason = value
	}
	if value, ok := _c.mutation.CancelReason(); ok {
		_spec.SetField(engagement.FieldCancelReason, field.TypeString, value)
		_node.CancelReason = value
	}
	if value, ok := _c.mutation.DecisionTimerPausedAt(); ok {
		_spec.SetField(engagement.FieldDecisionTimerPausedAt, field.TypeTime, value)
		_node.DecisionTimerPausedAt = &value
	}
	if value, ok := _c.mutation.AdminFlagged(); ok {
		_spec.SetField(engagement.FieldAdminFlagged, field.TypeBool, value)
		_node.AdminFlagged = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(engagement.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(engagement.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.MatchIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   engagement.MatchTable,
			Columns: []string{engagement.MatchColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(match.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.MatchID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   engagement.EventsTable,
			Columns: []string{engagement.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(engagementevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AgreementsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   engagement.AgreementsTable,
			Columns: []string{engagement.AgreementsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(engagementagreement.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.PaymentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   engagement.PaymentsTable,
			Columns: []string{engagement.PaymentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(paymentrecord.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.UploadTokensIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   engagement.UploadTokensTable,
			Columns: []string{engagement.UploadTokensColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(uploadtoken.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Engagement.Create().
//		SetMatchID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EngagementUpsert) {
//			SetMatchID(v+v).
//		}).
//		Exec(ctx)
func (_c *EngagementCreate) OnConflict(opts ...sql.ConflictOption) *EngagementUpsertOne {
	_c.conflict = opts
	return &EngagementUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Engagement.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EngagementCreate) OnConflictColumns(columns ...string) *EngagementUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EngagementUpsertOne{
		create: _c,
	}
}

type (
	// EngagementUpsertOne is the builder for "upsert"-ing
	//  one Engagement node.
	EngagementUpsertOne struct {
		create *EngagementCreate
	}

	// EngagementUpsert is the "OnConflict" setter.
	EngagementUpsert struct {
		*sql.UpdateSet
	}
)

// SetMatchID sets the "match_id" field.
func (u *EngagementUpsert) SetMatchID(v string) *EngagementUpsert {
	u.Set(engagement.FieldMatchID, v)
	return u
}

// UpdateMatchID sets the "match_id" field to the value that was provided on create.
func (u *EngagementUpsert) UpdateMatchID() *EngagementUpsert {
	u.SetExcluded(engagement.FieldMatchID)
	return u
}

// SetBuyerNeedID sets the "buyer_need_id" field.
func (u *EngagementUpsert) SetBuyerNeedID(v string) *EngagementUpsert {
	u.Set(engagement.FieldBuyerNeedID, v)
	return u
}

// UpdateBuyerNeedID sets the "buyer_need_id" field to the value that was provided on create.
func (u *EngagementUpsert) UpdateBuyerNeedID() *EngagementUpsert {
	u.SetExcluded(engagement.FieldBuyerNeedID)
	return u
}

// SetWarehouseID sets the "warehouse_id" field.
func (u *EngagementUpsert) SetWarehouseID(v string) *EngagementUpsert {
	u.Set(engagement.FieldWarehouseID, v)
	return u
}

// UpdateWarehouseID sets the "warehouse_id" field to the value that was provided on create.
func (u *EngagementUpsert) UpdateWarehouseID() *EngagementUpsert {
	u.SetExcluded(engagement.FieldWarehouseID)
	return u
}

// SetBuyerID sets the "buyer_id" field.
func (u *EngagementUpsert) SetBuyerID(v string) *EngagementUpsert {
	u.Set(engagement.FieldBuyerID, v)
	return u
}

// UpdateBuyerID sets the "buyer_id" field to the value that was provided on create.
func (u *EngagementUpsert) UpdateBuyerID() *EngagementUpsert {
	u.SetExcluded(engagement.FieldBuyerID)
	return u
}

// ClearBuyerID clears the value of the "buyer_id" field.
func (u *EngagementUpsert) ClearBuyerID() *EngagementUpsert {
	u.SetNull(engagement.FieldBuyerID)
	return u
}

// SetCompanyID sets the "company_id" field.
func (u *EngagementUpsert) SetCompanyID(v string) *EngagementUpsert {
	u.Set(engagement.FieldCompanyID, v)
	return u
}

// UpdateCompanyID sets the "company_id" field to the value that was provided on create.
func (u *EngagementUpsert) UpdateCompanyID() *EngagementUpsert {
	u.SetExcluded(engagement.FieldCompanyID)
	return u
}

// SetStatus sets the "status" field.
func (u *EngagementUpsert) SetStatus(v engagement.Status) *EngagementUpsert {
	u.Set(engagement.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *EngagementUpsert) UpdateStatus() *EngagementUpsert {
	u.SetExcluded(engagement.FieldStatus)
	return u
}

// SetTier sets the "tier" field.
func (u *EngagementUpsert) SetTier(v engagement.Tier) *EngagementUpsert {
	u.Set(engagement.FieldTier, v)
	return u
}

// UpdateTier sets the "tier" field to the value that was provided on create.
func (u *EngagementUpsert) UpdateTier() *EngagementUpsert {
	u.SetExcluded(engagement.FieldTier)
	return u
}

// SetPath sets the "path" field.
func (u *EngagementUpsert) SetPath(v engagement.Path) *EngagementUpsert {
	u.Set(engagement.FieldPath, v)
	return u
}

// UpdatePath sets the "path" field to the value that was provided on create.
func (u *EngagementUpsert) UpdatePath() *EngagementUpsert {
	u.SetExcluded(engagement.FieldPath)
	return u
}

// ClearPath clears the value of the "path" field.
func (u *EngagementUpsert) ClearPath() *EngagementUpsert {
	u.SetNull(engagement.FieldPath)
	return u
}

// SetDealPingSentAt sets the "deal_ping_sent_at" field.
func (u *EngagementUpsert) SetDealPingSentAt(v time.Time) *EngagementUpsert {
	u.Set(engagement.FieldDealPingSentAt, v)
	return u
}

// UpdateDealPingSentAt sets the "deal_ping_sent_at" field to the value that was provided on create.
func (u *EngagementUpsert) UpdateDealPingSentAt() *EngagementUpsert {
	u.SetExcluded(engagement.FieldDealPingSentAt)
	return u
}

// ClearDealPingSentAt clears the value of the "deal_ping_sent_at" field.
func (u *EngagementUpsert) ClearDealPingSentAt() *EngagementUpsert {
	u.SetNull(engagement.FieldDealPingSentAt)
	return u
}

// SetDealPingExpiresAt sets the "deal_ping_expires_at" field.
func (u *EngagementUpsert) SetDealPingExpiresAt(v time.Time) *EngagementUpsert {
	u.Set(engagement.FieldDealPingExpiresAt, v)
	return u
}

// UpdateDealPingExpiresAt sets the "deal_ping_expires_at" field to the value that was provided on create.
func (u *EngagementUpsert) UpdateDealPingExpiresAt() *EngagementUpsert {
	u.SetExcluded(engagement.FieldDealPingExpiresAt)
	return u
}

// ClearDealPingExpiresAt clears the value of the "deal_ping_expires_at" field.
func (u *EngagementUpsert) ClearDealPingExpiresAt() *EngagementUpsert {
	u.SetNull(engagement.FieldDealPingExpiresAt)
	return u
}

// SetBuyerAcceptedAt sets the "buyer_accepted_at" field.
func (u *EngagementUpsert) SetBuyerAcceptedAt(v time.Time) *EngagementUpsert {
	u.Set(engagement.FieldBuyerAcceptedAt, v)
	return u
}

// UpdateBuyerAcceptedAt sets the "buyer_accepted_at" field to the value that was provided on create.
func (u *EngagementUpsert) UpdateBuyerAcceptedAt() *EngagementUpsert {
	u.SetExcluded(engagement.FieldBuyerAcceptedAt)
	return u
}

// ClearBuyerAcceptedAt clears the value of the "buyer_accepted_at" field.
func (u *EngagementUpsert) ClearBuyerAcceptedAt() *EngagementUpsert {
	u.SetNull(engagement.FieldBuyerAcceptedAt)
	return u
}

// SetContactCapturedAt sets the "contact_captured_at" field.
func (u *EngagementUpsert) SetContactCapturedAt(v time.Time) *EngagementUpsert {
	u.Set(engagement.FieldContactCapturedAt, v)
	return u
}

// UpdateContactCapturedAt sets the "contact_captured_at" field to the value that was provided on create.
func (u *EngagementUpsert) UpdateContactCapturedAt() *EngagementUpsert {
	u.SetExcluded(engagement.FieldContactCapturedAt)
	return u
}

// ClearContactCapturedAt clears the value of the "contact_captured_at" field.
func (u *EngagementUpsert) ClearContactCapturedAt() *EngagementUpsert {
	u.SetNull(engagement.FieldContactCapturedAt)
	return u
}

// SetAccountCreatedAt sets the "account_created_at" field.
func (u *EngagementUpsert) SetAccountCreatedAt(v time.Time) *EngagementUpsert {
	u.Set(engagement.FieldAccountCreatedAt, v)
	return u
}

// UpdateAccountCreatedAt sets the "account_created_at" field to the value that was provided on create.
func (u *EngagementUpsert) UpdateAccountCreatedAt() *EngagementUpsert {
	u.SetExcluded(engagement.FieldAccountCreatedAt)
	return u
}

// ClearAccountCreatedAt clears the value of the "account_created_at" field.
func (u *EngagementUpsert) ClearAccountCreatedAt() *EngagementUpsert {
	u.SetNull(engagement.FieldAccountCreatedAt)
	return u
}

// SetGuaranteeSignedAt sets the "guarantee_signed_at" field.
func (u *EngagementUpsert) SetGuaranteeSignedAt(v time.Time) *EngagementUpsert {
	u.Set(engagement.FieldGuaranteeSignedAt, v)
	return u
}

// UpdateGuaranteeSignedAt sets the "guarantee_signed_at" field to the value that was provided on create.
func (u *EngagementUpsert) UpdateGuaranteeSignedAt() *EngagementUpsert {
	u.SetExcluded(engagement.FieldGuaranteeSignedAt)
	return u
}

// ClearGuaranteeSignedAt clears the value of the "guarantee_signed_at" field.
func (u *EngagementUpsert) ClearGuaranteeSignedAt() *EngagementUpsert {
	u.SetNull(engagement.FieldGuaranteeSignedAt)
	return u
}

// SetAddressRevealedAt sets the "address_revealed_at" field.
func (u *EngagementUpsert) SetAddressRevealedAt(v time.Time) *EngagementUpsert {
	u.Set(engagement.FieldAddressRevealedAt, v)
	return u
}

// UpdateAddressRevealedAt sets the "address_revealed_at" field to the value that was provided on create.
func (u *EngagementUpsert) UpdateAddressRevealedAt() *EngagementUpsert {
	u.SetExcluded(engagement.FieldAddressRevealedAt)
	return u
}

// ClearAddressRevealedAt clears the value of the "address_revealed_at" field.
func (u *EngagementUpsert) ClearAddressRevealedAt() *EngagementUpsert {
	u.SetNull(engagement.FieldAddressRevealedAt)
	return u
}

// SetTourRequestedAt sets the "tour_requested_at" field.
func (u *EngagementUpsert) SetTourRequestedAt(v time.Time) *EngagementUpsert {
	u.Set(engagement.FieldTourRequestedAt, v)
	return u
}

// UpdateTourRequestedAt sets the "tour_requested_at" field to the value that was provided on create.
func (u *EngagementUpsert) UpdateTourRequestedAt() *EngagementUpsert {
	u.SetExcluded(engagement.FieldTourRequestedAt)
	return u
}

// ClearTourRequestedAt clears the value of the "tour_requested_at" field.
func (u *EngagementUpsert) ClearTourRequestedAt() *EngagementUpsert {
	u.SetNull(engagement.FieldTourRequestedAt)
	return u
}

// SetTourConfirmedAt sets the "tour_confirmed_at" field.
func (u *EngagementUpsert) SetTourConfirmedAt(v time.Time) *EngagementUpsert {
	u.Set(engagement.FieldTourConfirmedAt, v)
	return u
}

// UpdateTourConfirmedAt sets the "tour_confirmed_at" field to the value that was provided on create.
func (u *EngagementUpsert) UpdateTourConfirmedAt() *EngagementUpsert {
	u.SetExcluded(engagement.FieldTourConfirmedAt)
	return u
}

// ClearTourConfirmedAt clears the value of the "tour_confirmed_at" field.
func (u *EngagementUpsert) ClearTourConfirmedAt() *EngagementUpsert {
	u.SetNull(engagement.FieldTourConfirmedAt)
	return u
}

// SetTourScheduledFor sets the "tour_scheduled_for" field.
func (u *EngagementUpsert) SetTourScheduledFor(v time.Time) *EngagementUpsert {
	u.Set(engagement.FieldTourScheduledFor, v)
	return u
}

// UpdateTourScheduledFor sets the "tour_scheduled_for" field to the value that was provided on create.
func (u *EngagementUpsert) UpdateTourScheduledFor() *EngagementUpsert {
	u.SetExcluded(engagement.FieldTourScheduledFor)
	return u
}

// ClearTourScheduledFor clears the value of the "tour_scheduled_for" field.
func (u *EngagementUpsert) ClearTourScheduledFor() *EngagementUpsert {
	u.SetNull(engagement.FieldTourScheduledFor)
	return u
}

// SetTourCompletedAt sets the "tour_completed_at" field.
func (u *EngagementUpsert) SetTourCompletedAt(v time.Time) *EngagementUpsert {
	u.Set(engagement.FieldTourCompletedAt, v)
	return u
}

// UpdateTourCompletedAt sets the "tour_completed_at" field to the value that was provided on create.
func (u *EngagementUpsert) UpdateTourCompletedAt() *EngagementUpsert {
	u.SetExcluded(engagement.FieldTourCompletedAt)
	return u
}

// ClearTourCompletedAt clears the value of the "tour_completed_at" field.
func (u *EngagementUpsert) ClearTourCompletedAt() *EngagementUpsert {
	u.SetNull(engagement.FieldTourCompletedAt)
	return u
}

// SetTourRescheduleCount sets the "tour_reschedule_count" field.
func (u *EngagementUpsert) SetTourRescheduleCount(v int) *EngagementUpsert {
	u.Set(engagement.FieldTourRescheduleCount, v)
	return u
}

// UpdateTourRescheduleCount sets the "tour_reschedule_count" field to the value that was provided on create.
func (u *EngagementUpsert) UpdateTourRescheduleCount() *EngagementUpsert {
	u.SetExcluded(engagement.FieldTourRescheduleCount)
	return u
}

// AddTourRescheduleCount adds v to the "tour_reschedule_count" field.
func (u *EngagementUpsert) AddTourRescheduleCount(v int) *EngagementUpsert {
	u.Add(engagement.FieldTourRescheduleCount, v)
	return u
}

// SetInstantBookRequestedAt sets the "instant_book_requested_at" field.
func (u *EngagementUpsert) SetInstantBookRequestedAt(v time.Time) *EngagementUpsert {
	u.Set(engagement.FieldInstantBookRequestedAt, v)
	return u
}

// UpdateInstantBookRequestedAt sets the "instant_book_requested_at" field to the value that was provided on create.
func (u *EngagementUpsert) UpdateInstantBookRequestedAt() *EngagementUpsert {
	u.SetExcluded(engagement.FieldInstantBookRequestedAt)
	return u
}

// ClearInstantBookRequestedAt clears the value of the "instant_book_requested_at" field.
func (u *EngagementUpsert) ClearInstantBookRequestedAt() *EngagementUpsert {
	u.SetNull(engagement.FieldInstantBookRequestedAt)
	return u
}

// SetInstantBookConfirmedAt sets the "instant_book_confirmed_at" field.
func (u *EngagementUpsert) SetInstantBookConfirmedAt(v time.Time) *EngagementUpsert {
	u.Set(engagement.FieldInstantBookConfirmedAt, v)
	return u
}

// UpdateInstantBookConfirmedAt sets the "instant_book_confirmed_at" field to the value that was provided on create.
func (u *EngagementUpsert) UpdateInstantBookConfirmedAt() *EngagementUpsert {
	u.SetExcluded(engagement.FieldInstantBookConfirmedAt)
	return u
}

// ClearInstantBookConfirmedAt clears the value of the "instant_book_confirmed_at" field.
func (u *EngagementUpsert) ClearInstantBookConfirmedAt() *EngagementUpsert {
	u.SetNull(engagement.FieldInstantBookConfirmedAt)
	return u
}

// SetBuyerConfirmedAt sets the "buyer_confirmed_at" field.
func (u *EngagementUpsert) SetBuyerConfirmedAt(v time.Time) *EngagementUpsert {
	u.Set(engagement.FieldBuyerConfirmedAt, v)
	return u
}

// UpdateBuyerConfirmedAt sets the "buyer_confirmed_at" field to the value that was provided on create.
func (u *EngagementUpsert) UpdateBuyerConfirmedAt() *EngagementUpsert {
	u.SetExcluded(engagement.FieldBuyerConfirmedAt)
	return u
}

// ClearBuyerConfirmedAt clears the value of the "buyer_confirmed_at" field.
func (u *EngagementUpsert) ClearBuyerConfirmedAt() *EngagementUpsert {
	u.SetNull(engagement.FieldBuyerConfirmedAt)
	return u
}

// SetAgreementSentAt sets the "agreement_sent_at" field.
func (u *EngagementUpsert) SetAgreementSentAt(v time.Time) *EngagementUpsert {
	u.Set(engagement.FieldAgreementSentAt, v)
	return u
}

// UpdateAgreementSentAt sets the "agreement_sent_at" field to the value that was provided on create.
func (u *EngagementUpsert) UpdateAgreementSentAt() *EngagementUpsert {
	u.SetExcluded(engagement.FieldAgreementSentAt)
	return u
}

// ClearAgreementSentAt clears the value of the "agreement_sent_at" field.
func (u *EngagementUpsert) ClearAgreementSentAt() *EngagementUpsert {
	u.SetNull(engagement.FieldAgreementSentAt)
	return u
}

// SetAgreementSignedAt sets the "agreement_signed_at" field.
func (u *EngagementUpsert) SetAgreementSignedAt(v time.Time) *EngagementUpsert {
	u.Set(engagement.FieldAgreementSignedAt, v)
	return u
}

// UpdateAgreementSignedAt sets the "agreement_signed_at" field to the value that was provided on create.
func (u *EngagementUpsert) UpdateAgreementSignedAt() *EngagementUpsert {
	u.SetExcluded(engagement.FieldAgreementSignedAt)
	return u
}

// ClearAgreementSignedAt clears the value of the "agreement_signed_at" field.
func (u *EngagementUpsert) ClearAgreementSignedAt() *EngagementUpsert {
	u.SetNull(engagement.FieldAgreementSignedAt)
	return u
}

// SetLeaseStartDate sets the "lease_start_date" field.
func (u *EngagementUpsert) SetLeaseStartDate(v time.Time) *EngagementUpsert {
	u.Set(engagement.FieldLeaseStartDate, v)
	return u
}

// UpdateLeaseStartDate sets the "lease_start_date" field to the value that was provided on create.
func (u *EngagementUpsert) UpdateLeaseStartDate() *EngagementUpsert {
	u.SetExcluded(engagement.FieldLeaseStartDate)
	return u
}

// ClearLeaseStartDate clears the value of the "lease_start_date" field.
func (u *EngagementUpsert) ClearLeaseStartDate() *EngagementUpsert {
	u.SetNull(engagement.FieldLeaseStartDate)
	return u
}

// SetLeaseEndDate sets the "lease_end_date" field.
func (u *EngagementUpsert) SetLeaseEndDate(v time.Time) *EngagementUpsert {
	u.Set(engagement.FieldLeaseEndDate, v)
	return u
}

// UpdateLeaseEndDate sets the "lease_end_date" field to the value that was provided on create.
func (u *EngagementUpsert) UpdateLeaseEndDate() *EngagementUpsert {
	u.SetExcluded(engagement.FieldLeaseEndDate)
	return u
}

// ClearLeaseEndDate clears the value of the "lease_end_date" field.
func (u *EngagementUpsert) ClearLeaseEndDate() *EngagementUpsert {
	u.SetNull(engagement.FieldLeaseEndDate)
	return u
}

// SetActivatedAt sets the "activated_at" field.
func (u *EngagementUpsert) SetActivatedAt(v time.Time) *EngagementUpsert {
	u.Set(engagement.FieldActivatedAt, v)
	return u
}

// UpdateActivatedAt sets the "activated_at" field to the value that was provided on create.
func (u *EngagementUpsert) UpdateActivatedAt() *EngagementUpsert {
	u.SetExcluded(engagement.FieldActivatedAt)
	return u
}

// ClearActivatedAt clears the value of the "activated_at" field.
func (u *EngagementUpsert) ClearActivatedAt() *EngagementUpsert {
	u.SetNull(engagement.FieldActivatedAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *EngagementUpsert) SetCompletedAt(v time.Time) *EngagementUpsert {
	u.Set(engagement.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *EngagementUpsert) UpdateCompletedAt() *EngagementUpsert {
	u.SetExcluded(engagement.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *EngagementUpsert) ClearCompletedAt() *EngagementUpsert {
	u.SetNull(engagement.FieldCompletedAt)
	return u
}

// SetInsuranceUploaded sets the "insurance_uploaded" field.
func (u *EngagementUpsert) SetInsuranceUploaded(v bool) *EngagementUpsert {
	u.Set(engagement.FieldInsuranceUploaded, v)
	return u
}

// UpdateInsuranceUploaded sets the "insurance_uploaded" field to the value that was provided on create.
func (u *EngagementUpsert) UpdateInsuranceUploaded() *EngagementUpsert {
	u.SetExcluded(engagement.FieldInsuranceUploaded)
	return u
}

// SetCompanyDocsUploaded sets the "company_docs_uploaded" field.
func (u *EngagementUpsert) SetCompanyDocsUploaded(v bool) *EngagementUpsert {
	u.Set(engagement.FieldCompanyDocsUploaded, v)
	return u
}

// UpdateCompanyDocsUploaded sets the "company_docs_uploaded" field to the value that was provided on create.
func (u *EngagementUpsert) UpdateCompanyDocsUploaded() *EngagementUpsert {
	u.SetExcluded(engagement.FieldCompanyDocsUploaded)
	return u
}

// SetPaymentMethodAdded sets the "payment_method_added" field.
func (u *EngagementUpsert) SetPaymentMethodAdded(v bool) *EngagementUpsert {
	u.Set(engagement.FieldPaymentMethodAdded, v)
	return u
}

// UpdatePaymentMethodAdded sets the "payment_method_added" field to the value that was provided on create.
func (u *EngagementUpsert) UpdatePaymentMethodAdded() *EngagementUpsert {
	u.SetExcluded(engagement.FieldPaymentMethodAdded)
	return u
}

// SetSqft sets the "sqft" field.
func (u *EngagementUpsert) SetSqft(v int) *EngagementUpsert {
	u.Set(engagement.FieldSqft, v)
	return u
}

// UpdateSqft sets the "sqft" field to the value that was provided on create.
func (u *EngagementUpsert) UpdateSqft() *EngagementUpsert {
	u.SetExcluded(engagement.FieldSqft)
	return u
}

// AddSqft adds v to the "sqft" field.
func (u *EngagementUpsert) AddSqft(v int) *EngagementUpsert {
	u.Add(engagement.FieldSqft, v)
	return u
}

// ClearSqft clears the value of the "sqft" field.
func (u *EngagementUpsert) ClearSqft() *EngagementUpsert {
	u.SetNull(engagement.FieldSqft)
	return u
}

// SetSupplierRate sets the "supplier_rate" field.
func (u *EngagementUpsert) SetSupplierRate(v float64) *EngagementUpsert {
	u.Set(engagement.FieldSupplierRate, v)
	return u
}

// UpdateSupplierRate sets the "supplier_rate" field to the value that was provided on create.
func (u *EngagementUpsert) UpdateSupplierRate() *EngagementUpsert {
	u.SetExcluded(engagement.FieldSupplierRate)
	return u
}

// AddSupplierRate adds v to the "supplier_rate" field.
func (u *EngagementUpsert) AddSupplierRate(v float64) *EngagementUpsert {
	u.Add(engagement.FieldSupplierRate, v)
	return u
}

// ClearSupplierRate clears the value of the "supplier_rate" field.
func (u *EngagementUpsert) ClearSupplierRate() *EngagementUpsert {
	u.SetNull(engagement.FieldSupplierRate)
	return u
}

// SetBuyerRate sets the "buyer_rate" field.
func (u *EngagementUpsert) SetBuyerRate(v float64) *EngagementUpsert {
	u.Set(engagement.FieldBuyerRate, v)
	return u
}

// UpdateBuyerRate sets the "buyer_rate" field to the value that was provided on create.
func (u *EngagementUpsert) UpdateBuyerRate() *EngagementUpsert {
	u.SetExcluded(engagement.FieldBuyerRate)
	return u
}

// AddBuyerRate adds v to the "buyer_rate" field.
func (u *EngagementUpsert) AddBuyerRate(v float64) *EngagementUpsert {
	u.Add(engagement.FieldBuyerRate, v)
	return u
}

// ClearBuyerRate clears the value of the "buyer_rate" field.
func (u *EngagementUpsert) ClearBuyerRate() *EngagementUpsert {
	u.SetNull(engagement.FieldBuyerRate)
	return u
}

// SetMonthlySupplierPayout sets the "monthly_supplier_payout" field.
func (u *EngagementUpsert) SetMonthlySupplierPayout(v float64) *EngagementUpsert {
	u.Set(engagement.FieldMonthlySupplierPayout, v)
	return u
}

// UpdateMonthlySupplierPayout sets the "monthly_supplier_payout" field to the value that was provided on create.
func (u *EngagementUpsert) UpdateMonthlySupplierPayout() *EngagementUpsert {
	u.SetExcluded(engagement.FieldMonthlySupplierPayout)
	return u
}

// AddMonthlySupplierPayout adds v to the "monthly_supplier_payout" field.
func (u *EngagementUpsert) AddMonthlySupplierPayout(v float64) *EngagementUpsert {
	u.Add(engagement.FieldMonthlySupplierPayout, v)
	return u
}

// ClearMonthlySupplierPayout clears the value of the "monthly_supplier_payout" field.
func (u *EngagementUpsert) ClearMonthlySupplierPayout() *EngagementUpsert {
	u.SetNull(engagement.FieldMonthlySupplierPayout)
	return u
}

// SetMonthlyBuyerTotal sets the "monthly_buyer_total" field.
func (u *EngagementUpsert) SetMonthlyBuyerTotal(v float64) *EngagementUpsert {
	u.Set(engagement.FieldMonthlyBuyerTotal, v)
	return u
}

// UpdateMonthlyBuyerTotal sets the "monthly_buyer_total" field to the value that was provided on create.
func (u *EngagementUpsert) UpdateMonthlyBuyerTotal() *EngagementUpsert {
	u.SetExcluded(engagement.FieldMonthlyBuyerTotal)
	return u
}

// AddMonthlyBuyerTotal adds v to the "monthly_buyer_total" field.
func (u *EngagementUpsert) AddMonthlyBuyerTotal(v float64) *EngagementUpsert {
	u.Add(engagement.FieldMonthlyBuyerTotal, v)
	return u
}

// ClearMonthlyBuyerTotal clears the value of the "monthly_buyer_total" field.
func (u *EngagementUpsert) ClearMonthlyBuyerTotal() *EngagementUpsert {
	u.SetNull(engagement.FieldMonthlyBuyerTotal)
	return u
}

// SetDeclinedBy sets the "declined_by" field.
func (u *EngagementUpsert) SetDeclinedBy(v engagement.DeclinedBy) *EngagementUpsert {
	u.Set(engagement.FieldDeclinedBy, v)
	return u
}

// UpdateDeclinedBy sets the "declined_by" field to the value that was provided on create.
func (u *EngagementUpsert) UpdateDeclinedBy() *EngagementUpsert {
	u.SetExcluded(engagement.FieldDeclinedBy)
	return u
}

// ClearDeclinedBy clears the value of the "declined_by" field.
func (u *EngagementUpsert) ClearDeclinedBy() *EngagementUpsert {
	u.SetNull(engagement.FieldDeclinedBy)
	return u
}

// SetDeclineReason sets the "decline_reason" field.
func (u *EngagementUpsert) SetDeclineReason(v string) *EngagementUpsert {
	u.Set(engagement.FieldDeclineReason, v)
	return u
}

// UpdateDeclineReason sets the "decline_reason" field to the value that was provided on create.
func (u *EngagementUpsert) UpdateDeclineReason() *EngagementUpsert {
	u.SetExcluded(engagement.FieldDeclineReason)
	return u
}

// ClearDeclineReason clears the value of the "decline_reason" field.
func (u *EngagementUpsert) ClearDeclineReason() *EngagementUpsert {
	u.SetNull(engagement.FieldDeclineReason)
	return u
}

// SetCancelReason sets the "cancel_reason" field.
func (u *EngagementUpsert) SetCancelReason(v string) *EngagementUpsert {
	u.Set(engagement.FieldCancelReason, v)
	return u
}

// UpdateCancelReason sets the "cancel_reason" field to the value that was provided on create.
func (u *EngagementUpsert) UpdateCancelReason() *EngagementUpsert {
	u.SetExcluded(engagement.FieldCancelReason)
	return u
}

// ClearCancelReason clears the value of the "cancel_reason" field.
func (u *EngagementUpsert) ClearCancelReason() *EngagementUpsert {
	u.SetNull(engagement.FieldCancelReason)
	return u
}

// SetDecisionTimerPausedAt sets the "decision_timer_paused_at" field.
func (u *EngagementUpsert) SetDecisionTimerPausedAt(v time.Time) *EngagementUpsert {
	u.Set(engagement.FieldDecisionTimerPausedAt, v)
	return u
}

// UpdateDecisionTimerPausedAt sets the "decision_timer_paused_at" field to the value that was provided on create.
func (u *EngagementUpsert) UpdateDecisionTimerPausedAt() *EngagementUpsert {
	u.SetExcluded(engagement.FieldDecisionTimerPausedAt)
	return u
}

// ClearDecisionTimerPausedAt clears the value of the "decision_timer_paused_at" field.
func (u *EngagementUpsert) ClearDecisionTimerPausedAt() *EngagementUpsert {
	u.SetNull(engagement.FieldDecisionTimerPausedAt)
	return u
}

// SetAdminFlagged sets the "admin_flagged" field.
func (u *EngagementUpsert) SetAdminFlagged(v bool) *EngagementUpsert {
	u.Set(engagement.FieldAdminFlagged, v)
	return u
}

// UpdateAdminFlagged sets the "admin_flagged" field to the value that was provided on create.
func (u *EngagementUpsert) UpdateAdminFlagged() *EngagementUpsert {
	u.SetExcluded(engagement.FieldAdminFlagged)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *EngagementUpsert) SetUpdatedAt(v time.Time) *EngagementUpsert {
	u.Set(engagement.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *EngagementUpsert) UpdateUpdatedAt() *EngagementUpsert {
	u.SetExcluded(engagement.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Engagement.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(engagement.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EngagementUpsertOne) UpdateNewValues() *EngagementUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(engagement.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(engagement.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Engagement.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *EngagementUpsertOne) Ignore() *EngagementUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EngagementUpsertOne) DoNothing() *EngagementUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EngagementCreate.OnConflict
// documentation for more info.
func (u *EngagementUpsertOne) Update(set func(*EngagementUpsert)) *EngagementUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EngagementUpsert{UpdateSet: update})
	}))
	return u
}

// SetMatchID sets the "match_id" field.
func (u *EngagementUpsertOne) SetMatchID(v string) *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.SetMatchID(v)
	})
}

// UpdateMatchID sets the "match_id" field to the value that was provided on create.
func (u *EngagementUpsertOne) UpdateMatchID() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateMatchID()
	})
}

// SetBuyerNeedID sets the "buyer_need_id" field.
func (u *EngagementUpsertOne) SetBuyerNeedID(v string) *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.SetBuyerNeedID(v)
	})
}

// UpdateBuyerNeedID sets the "buyer_need_id" field to the value that was provided on create.
func (u *EngagementUpsertOne) UpdateBuyerNeedID() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateBuyerNeedID()
	})
}

// SetWarehouseID sets the "warehouse_id" field.
func (u *EngagementUpsertOne) SetWarehouseID(v string) *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.SetWarehouseID(v)
	})
}

// UpdateWarehouseID sets the "warehouse_id" field to the value that was provided on create.
func (u *EngagementUpsertOne) UpdateWarehouseID() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateWarehouseID()
	})
}

// SetBuyerID sets the "buyer_id" field.
func (u *EngagementUpsertOne) SetBuyerID(v string) *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.SetBuyerID(v)
	})
}

// UpdateBuyerID sets the "buyer_id" field to the value that was provided on create.
func (u *EngagementUpsertOne) UpdateBuyerID() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateBuyerID()
	})
}

// ClearBuyerID clears the value of the "buyer_id" field.
func (u *EngagementUpsertOne) ClearBuyerID() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.ClearBuyerID()
	})
}

// SetCompanyID sets the "company_id" field.
func (u *EngagementUpsertOne) SetCompanyID(v string) *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.SetCompanyID(v)
	})
}

// UpdateCompanyID sets the "company_id" field to the value that was provided on create.
func (u *EngagementUpsertOne) UpdateCompanyID() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateCompanyID()
	})
}

// SetStatus sets the "status" field.
func (u *EngagementUpsertOne) SetStatus(v engagement.Status) *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *EngagementUpsertOne) UpdateStatus() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateStatus()
	})
}

// SetTier sets the "tier" field.
func (u *EngagementUpsertOne) SetTier(v engagement.Tier) *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.SetTier(v)
	})
}

// UpdateTier sets the "tier" field to the value that was provided on create.
func (u *EngagementUpsertOne) UpdateTier() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateTier()
	})
}

// SetPath sets the "path" field.
func (u *EngagementUpsertOne) SetPath(v engagement.Path) *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.SetPath(v)
	})
}

// UpdatePath sets the "path" field to the value that was provided on create.
func (u *EngagementUpsertOne) UpdatePath() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdatePath()
	})
}

// ClearPath clears the value of the "path" field.
func (u *EngagementUpsertOne) ClearPath() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.ClearPath()
	})
}

// SetDealPingSentAt sets the "deal_ping_sent_at" field.
func (u *EngagementUpsertOne) SetDealPingSentAt(v time.Time) *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.SetDealPingSentAt(v)
	})
}

// UpdateDealPingSentAt sets the "deal_ping_sent_at" field to the value that was provided on create.
func (u *EngagementUpsertOne) UpdateDealPingSentAt() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateDealPingSentAt()
	})
}

// ClearDealPingSentAt clears the value of the "deal_ping_sent_at" field.
func (u *EngagementUpsertOne) ClearDealPingSentAt() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.ClearDealPingSentAt()
	})
}

// SetDealPingExpiresAt sets the "deal_ping_expires_at" field.
func (u *EngagementUpsertOne) SetDealPingExpiresAt(v time.Time) *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.SetDealPingExpiresAt(v)
	})
}

// UpdateDealPingExpiresAt sets the "deal_ping_expires_at" field to the value that was provided on create.
func (u *EngagementUpsertOne) UpdateDealPingExpiresAt() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateDealPingExpiresAt()
	})
}

// ClearDealPingExpiresAt clears the value of the "deal_ping_expires_at" field.
func (u *EngagementUpsertOne) ClearDealPingExpiresAt() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.ClearDealPingExpiresAt()
	})
}

// SetBuyerAcceptedAt sets the "buyer_accepted_at" field.
func (u *EngagementUpsertOne) SetBuyerAcceptedAt(v time.Time) *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.SetBuyerAcceptedAt(v)
	})
}

// UpdateBuyerAcceptedAt sets the "buyer_accepted_at" field to the value that was provided on create.
func (u *EngagementUpsertOne) UpdateBuyerAcceptedAt() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateBuyerAcceptedAt()
	})
}

// ClearBuyerAcceptedAt clears the value of the "buyer_accepted_at" field.
func (u *EngagementUpsertOne) ClearBuyerAcceptedAt() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.ClearBuyerAcceptedAt()
	})
}

// SetContactCapturedAt sets the "contact_captured_at" field.
func (u *EngagementUpsertOne) SetContactCapturedAt(v time.Time) *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.SetContactCapturedAt(v)
	})
}

// UpdateContactCapturedAt sets the "contact_captured_at" field to the value that was provided on create.
func (u *EngagementUpsertOne) UpdateContactCapturedAt() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateContactCapturedAt()
	})
}

// ClearContactCapturedAt clears the value of the "contact_captured_at" field.
func (u *EngagementUpsertOne) ClearContactCapturedAt() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.ClearContactCapturedAt()
	})
}

// SetAccountCreatedAt sets the "account_created_at" field.
func (u *EngagementUpsertOne) SetAccountCreatedAt(v time.Time) *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.SetAccountCreatedAt(v)
	})
}

// UpdateAccountCreatedAt sets the "account_created_at" field to the value that was provided on create.
func (u *EngagementUpsertOne) UpdateAccountCreatedAt() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateAccountCreatedAt()
	})
}

// ClearAccountCreatedAt clears the value of the "account_created_at" field.
func (u *EngagementUpsertOne) ClearAccountCreatedAt() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.ClearAccountCreatedAt()
	})
}

// SetGuaranteeSignedAt sets the "guarantee_signed_at" field.
func (u *EngagementUpsertOne) SetGuaranteeSignedAt(v time.Time) *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.SetGuaranteeSignedAt(v)
	})
}

// UpdateGuaranteeSignedAt sets the "guarantee_signed_at" field to the value that was provided on create.
func (u *EngagementUpsertOne) UpdateGuaranteeSignedAt() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateGuaranteeSignedAt()
	})
}

// ClearGuaranteeSignedAt clears the value of the "guarantee_signed_at" field.
func (u *EngagementUpsertOne) ClearGuaranteeSignedAt() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.ClearGuaranteeSignedAt()
	})
}

// SetAddressRevealedAt sets the "address_revealed_at" field.
func (u *EngagementUpsertOne) SetAddressRevealedAt(v time.Time) *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.SetAddressRevealedAt(v)
	})
}

// UpdateAddressRevealedAt sets the "address_revealed_at" field to the value that was provided on create.
func (u *EngagementUpsertOne) UpdateAddressRevealedAt() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateAddressRevealedAt()
	})
}

// ClearAddressRevealedAt clears the value of the "address_revealed_at" field.
func (u *EngagementUpsertOne) ClearAddressRevealedAt() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.ClearAddressRevealedAt()
	})
}

// SetTourRequestedAt sets the "tour_requested_at" field.
func (u *EngagementUpsertOne) SetTourRequestedAt(v time.Time) *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.SetTourRequestedAt(v)
	})
}

// UpdateTourRequestedAt sets the "tour_requested_at" field to the value that was provided on create.
func (u *EngagementUpsertOne) UpdateTourRequestedAt() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateTourRequestedAt()
	})
}

// ClearTourRequestedAt clears the value of the "tour_requested_at" field.
func (u *EngagementUpsertOne) ClearTourRequestedAt() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.ClearTourRequestedAt()
	})
}

// SetTourConfirmedAt sets the "tour_confirmed_at" field.
func (u *EngagementUpsertOne) SetTourConfirmedAt(v time.Time) *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.SetTourConfirmedAt(v)
	})
}

// UpdateTourConfirmedAt sets the "tour_confirmed_at" field to the value that was provided on create.
func (u *EngagementUpsertOne) UpdateTourConfirmedAt() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateTourConfirmedAt()
	})
}

// ClearTourConfirmedAt clears the value of the "tour_confirmed_at" field.
func (u *EngagementUpsertOne) ClearTourConfirmedAt() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.ClearTourConfirmedAt()
	})
}

// SetTourScheduledFor sets the "tour_scheduled_for" field.
func (u *EngagementUpsertOne) SetTourScheduledFor(v time.Time) *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.SetTourScheduledFor(v)
	})
}

// UpdateTourScheduledFor sets the "tour_scheduled_for" field to the value that was provided on create.
func (u *EngagementUpsertOne) UpdateTourScheduledFor() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateTourScheduledFor()
	})
}

// ClearTourScheduledFor clears the value of the "tour_scheduled_for" field.
func (u *EngagementUpsertOne) ClearTourScheduledFor() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.ClearTourScheduledFor()
	})
}

// SetTourCompletedAt sets the "tour_completed_at" field.
func (u *EngagementUpsertOne) SetTourCompletedAt(v time.Time) *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.SetTourCompletedAt(v)
	})
}

// UpdateTourCompletedAt sets the "tour_completed_at" field to the value that was provided on create.
func (u *EngagementUpsertOne) UpdateTourCompletedAt() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateTourCompletedAt()
	})
}

// ClearTourCompletedAt clears the value of the "tour_completed_at" field.
func (u *EngagementUpsertOne) ClearTourCompletedAt() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.ClearTourCompletedAt()
	})
}

// SetTourRescheduleCount sets the "tour_reschedule_count" field.
func (u *EngagementUpsertOne) SetTourRescheduleCount(v int) *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.SetTourRescheduleCount(v)
	})
}

// AddTourRescheduleCount adds v to the "tour_reschedule_count" field.
func (u *EngagementUpsertOne) AddTourRescheduleCount(v int) *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.AddTourRescheduleCount(v)
	})
}

// UpdateTourRescheduleCount sets the "tour_reschedule_count" field to the value that was provided on create.
func (u *EngagementUpsertOne) UpdateTourRescheduleCount() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateTourRescheduleCount()
	})
}

// SetInstantBookRequestedAt sets the "instant_book_requested_at" field.
func (u *EngagementUpsertOne) SetInstantBookRequestedAt(v time.Time) *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.SetInstantBookRequestedAt(v)
	})
}

// UpdateInstantBookRequestedAt sets the "instant_book_requested_at" field to the value that was provided on create.
func (u *EngagementUpsertOne) UpdateInstantBookRequestedAt() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateInstantBookRequestedAt()
	})
}

// ClearInstantBookRequestedAt clears the value of the "instant_book_requested_at" field.
func (u *EngagementUpsertOne) ClearInstantBookRequestedAt() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.ClearInstantBookRequestedAt()
	})
}

// SetInstantBookConfirmedAt sets the "instant_book_confirmed_at" field.
func (u *EngagementUpsertOne) SetInstantBookConfirmedAt(v time.Time) *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.SetInstantBookConfirmedAt(v)
	})
}

// UpdateInstantBookConfirmedAt sets the "instant_book_confirmed_at" field to the value that was provided on create.
func (u *EngagementUpsertOne) UpdateInstantBookConfirmedAt() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateInstantBookConfirmedAt()
	})
}

// ClearInstantBookConfirmedAt clears the value of the "instant_book_confirmed_at" field.
func (u *EngagementUpsertOne) ClearInstantBookConfirmedAt() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.ClearInstantBookConfirmedAt()
	})
}

// SetBuyerConfirmedAt sets the "buyer_confirmed_at" field.
func (u *EngagementUpsertOne) SetBuyerConfirmedAt(v time.Time) *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.SetBuyerConfirmedAt(v)
	})
}

// UpdateBuyerConfirmedAt sets the "buyer_confirmed_at" field to the value that was provided on create.
func (u *EngagementUpsertOne) UpdateBuyerConfirmedAt() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateBuyerConfirmedAt()
	})
}

// ClearBuyerConfirmedAt clears the value of the "buyer_confirmed_at" field.
func (u *EngagementUpsertOne) ClearBuyerConfirmedAt() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.ClearBuyerConfirmedAt()
	})
}

// SetAgreementSentAt sets the "agreement_sent_at" field.
func (u *EngagementUpsertOne) SetAgreementSentAt(v time.Time) *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.SetAgreementSentAt(v)
	})
}

// UpdateAgreementSentAt sets the "agreement_sent_at" field to the value that was provided on create.
func (u *EngagementUpsertOne) UpdateAgreementSentAt() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateAgreementSentAt()
	})
}

// ClearAgreementSentAt clears the value of the "agreement_sent_at" field.
func (u *EngagementUpsertOne) ClearAgreementSentAt() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.ClearAgreementSentAt()
	})
}

// SetAgreementSignedAt sets the "agreement_signed_at" field.
func (u *EngagementUpsertOne) SetAgreementSignedAt(v time.Time) *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.SetAgreementSignedAt(v)
	})
}

// UpdateAgreementSignedAt sets the "agreement_signed_at" field to the value that was provided on create.
func (u *EngagementUpsertOne) UpdateAgreementSignedAt() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateAgreementSignedAt()
	})
}

// ClearAgreementSignedAt clears the value of the "agreement_signed_at" field.
func (u *EngagementUpsertOne) ClearAgreementSignedAt() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.ClearAgreementSignedAt()
	})
}

// SetLeaseStartDate sets the "lease_start_date" field.
func (u *EngagementUpsertOne) SetLeaseStartDate(v time.Time) *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.SetLeaseStartDate(v)
	})
}

// UpdateLeaseStartDate sets the "lease_start_date" field to the value that was provided on create.
func (u *EngagementUpsertOne) UpdateLeaseStartDate() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateLeaseStartDate()
	})
}

// ClearLeaseStartDate clears the value of the "lease_start_date" field.
func (u *EngagementUpsertOne) ClearLeaseStartDate() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.ClearLeaseStartDate()
	})
}

// SetLeaseEndDate sets the "lease_end_date" field.
func (u *EngagementUpsertOne) SetLeaseEndDate(v time.Time) *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.SetLeaseEndDate(v)
	})
}

// UpdateLeaseEndDate sets the "lease_end_date" field to the value that was provided on create.
func (u *EngagementUpsertOne) UpdateLeaseEndDate() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateLeaseEndDate()
	})
}

// ClearLeaseEndDate clears the value of the "lease_end_date" field.
func (u *EngagementUpsertOne) ClearLeaseEndDate() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.ClearLeaseEndDate()
	})
}

// SetActivatedAt sets the "activated_at" field.
func (u *EngagementUpsertOne) SetActivatedAt(v time.Time) *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.SetActivatedAt(v)
	})
}

// UpdateActivatedAt sets the "activated_at" field to the value that was provided on create.
func (u *EngagementUpsertOne) UpdateActivatedAt() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateActivatedAt()
	})
}

// ClearActivatedAt clears the value of the "activated_at" field.
func (u *EngagementUpsertOne) ClearActivatedAt() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.ClearActivatedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *EngagementUpsertOne) SetCompletedAt(v time.Time) *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *EngagementUpsertOne) UpdateCompletedAt() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *EngagementUpsertOne) ClearCompletedAt() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.ClearCompletedAt()
	})
}

// SetInsuranceUploaded sets the "insurance_uploaded" field.
func (u *EngagementUpsertOne) SetInsuranceUploaded(v bool) *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.SetInsuranceUploaded(v)
	})
}

// UpdateInsuranceUploaded sets the "insurance_uploaded" field to the value that was provided on create.
func (u *EngagementUpsertOne) UpdateInsuranceUploaded() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateInsuranceUploaded()
	})
}

// SetCompanyDocsUploaded sets the "company_docs_uploaded" field.
func (u *EngagementUpsertOne) SetCompanyDocsUploaded(v bool) *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.SetCompanyDocsUploaded(v)
	})
}

// UpdateCompanyDocsUploaded sets the "company_docs_uploaded" field to the value that was provided on create.
func (u *EngagementUpsertOne) UpdateCompanyDocsUploaded() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateCompanyDocsUploaded()
	})
}

// SetPaymentMethodAdded sets the "payment_method_added" field.
func (u *EngagementUpsertOne) SetPaymentMethodAdded(v bool) *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.SetPaymentMethodAdded(v)
	})
}

// UpdatePaymentMethodAdded sets the "payment_method_added" field to the value that was provided on create.
func (u *EngagementUpsertOne) UpdatePaymentMethodAdded() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdatePaymentMethodAdded()
	})
}

// SetSqft sets the "sqft" field.
func (u *EngagementUpsertOne) SetSqft(v int) *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.SetSqft(v)
	})
}

// AddSqft adds v to the "sqft" field.
func (u *EngagementUpsertOne) AddSqft(v int) *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.AddSqft(v)
	})
}

// UpdateSqft sets the "sqft" field to the value that was provided on create.
func (u *EngagementUpsertOne) UpdateSqft() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateSqft()
	})
}

// ClearSqft clears the value of the "sqft" field.
func (u *EngagementUpsertOne) ClearSqft() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.ClearSqft()
	})
}

// SetSupplierRate sets the "supplier_rate" field.
func (u *EngagementUpsertOne) SetSupplierRate(v float64) *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.SetSupplierRate(v)
	})
}

// AddSupplierRate adds v to the "supplier_rate" field.
func (u *EngagementUpsertOne) AddSupplierRate(v float64) *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.AddSupplierRate(v)
	})
}

// UpdateSupplierRate sets the "supplier_rate" field to the value that was provided on create.
func (u *EngagementUpsertOne) UpdateSupplierRate() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateSupplierRate()
	})
}

// ClearSupplierRate clears the value of the "supplier_rate" field.
func (u *EngagementUpsertOne) ClearSupplierRate() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.ClearSupplierRate()
	})
}

// SetBuyerRate sets the "buyer_rate" field.
func (u *EngagementUpsertOne) SetBuyerRate(v float64) *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.SetBuyerRate(v)
	})
}

// AddBuyerRate adds v to the "buyer_rate" field.
func (u *EngagementUpsertOne) AddBuyerRate(v float64) *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.AddBuyerRate(v)
	})
}

// UpdateBuyerRate sets the "buyer_rate" field to the value that was provided on create.
func (u *EngagementUpsertOne) UpdateBuyerRate() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateBuyerRate()
	})
}

// ClearBuyerRate clears the value of the "buyer_rate" field.
func (u *EngagementUpsertOne) ClearBuyerRate() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.ClearBuyerRate()
	})
}

// SetMonthlySupplierPayout sets the "monthly_supplier_payout" field.
func (u *EngagementUpsertOne) SetMonthlySupplierPayout(v float64) *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.SetMonthlySupplierPayout(v)
	})
}

// AddMonthlySupplierPayout adds v to the "monthly_supplier_payout" field.
func (u *EngagementUpsertOne) AddMonthlySupplierPayout(v float64) *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.AddMonthlySupplierPayout(v)
	})
}

// UpdateMonthlySupplierPayout sets the "monthly_supplier_payout" field to the value that was provided on create.
func (u *EngagementUpsertOne) UpdateMonthlySupplierPayout() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateMonthlySupplierPayout()
	})
}

// ClearMonthlySupplierPayout clears the value of the "monthly_supplier_payout" field.
func (u *EngagementUpsertOne) ClearMonthlySupplierPayout() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.ClearMonthlySupplierPayout()
	})
}

// SetMonthlyBuyerTotal sets the "monthly_buyer_total" field.
func (u *EngagementUpsertOne) SetMonthlyBuyerTotal(v float64) *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.SetMonthlyBuyerTotal(v)
	})
}

// AddMonthlyBuyerTotal adds v to the "monthly_buyer_total" field.
func (u *EngagementUpsertOne) AddMonthlyBuyerTotal(v float64) *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.AddMonthlyBuyerTotal(v)
	})
}

// UpdateMonthlyBuyerTotal sets the "monthly_buyer_total" field to the value that was provided on create.
func (u *EngagementUpsertOne) UpdateMonthlyBuyerTotal() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateMonthlyBuyerTotal()
	})
}

// ClearMonthlyBuyerTotal clears the value of the "monthly_buyer_total" field.
func (u *EngagementUpsertOne) ClearMonthlyBuyerTotal() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.ClearMonthlyBuyerTotal()
	})
}

// SetDeclinedBy sets the "declined_by" field.
func (u *EngagementUpsertOne) SetDeclinedBy(v engagement.DeclinedBy) *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.SetDeclinedBy(v)
	})
}

// UpdateDeclinedBy sets the "declined_by" field to the value that was provided on create.
func (u *EngagementUpsertOne) UpdateDeclinedBy() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateDeclinedBy()
	})
}

// ClearDeclinedBy clears the value of the "declined_by" field.
func (u *EngagementUpsertOne) ClearDeclinedBy() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.ClearDeclinedBy()
	})
}

// SetDeclineReason sets the "decline_reason" field.
func (u *EngagementUpsertOne) SetDeclineReason(v string) *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.SetDeclineReason(v)
	})
}

// UpdateDeclineReason sets the "decline_reason" field to the value that was provided on create.
func (u *EngagementUpsertOne) UpdateDeclineReason() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateDeclineReason()
	})
}

// ClearDeclineReason clears the value of the "decline_reason" field.
func (u *EngagementUpsertOne) ClearDeclineReason() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.ClearDeclineReason()
	})
}

// SetCancelReason sets the "cancel_reason" field.
func (u *EngagementUpsertOne) SetCancelReason(v string) *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.SetCancelReason(v)
	})
}

// UpdateCancelReason sets the "cancel_reason" field to the value that was provided on create.
func (u *EngagementUpsertOne) UpdateCancelReason() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateCancelReason()
	})
}

// ClearCancelReason clears the value of the "cancel_reason" field.
func (u *EngagementUpsertOne) ClearCancelReason() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.ClearCancelReason()
	})
}

// SetDecisionTimerPausedAt sets the "decision_timer_paused_at" field.
func (u *EngagementUpsertOne) SetDecisionTimerPausedAt(v time.Time) *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.SetDecisionTimerPausedAt(v)
	})
}

// UpdateDecisionTimerPausedAt sets the "decision_timer_paused_at" field to the value that was provided on create.
func (u *EngagementUpsertOne) UpdateDecisionTimerPausedAt() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateDecisionTimerPausedAt()
	})
}

// ClearDecisionTimerPausedAt clears the value of the "decision_timer_paused_at" field.
func (u *EngagementUpsertOne) ClearDecisionTimerPausedAt() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.ClearDecisionTimerPausedAt()
	})
}

// SetAdminFlagged sets the "admin_flagged" field.
func (u *EngagementUpsertOne) SetAdminFlagged(v bool) *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.SetAdminFlagged(v)
	})
}

// UpdateAdminFlagged sets the "admin_flagged" field to the value that was provided on create.
func (u *EngagementUpsertOne) UpdateAdminFlagged() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateAdminFlagged()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *EngagementUpsertOne) SetUpdatedAt(v time.Time) *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *EngagementUpsertOne) UpdateUpdatedAt() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *EngagementUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EngagementCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EngagementUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *EngagementUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: EngagementUpsertOne.ID is not supported by MySQL driver. Use EngagementUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *EngagementUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// EngagementCreateBulk is the builder for creating many Engagement entities in bulk.
type EngagementCreateBulk struct {
	config
	err      error
	builders []*EngagementCreate
	conflict []sql.ConflictOption
}

// Save creates the Engagement entities in the database.
func (_c *EngagementCreateBulk) Save(ctx context.Context) ([]*Engagement, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Engagement, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EngagementMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *EngagementCreateBulk) SaveX(ctx context.Context) []*Engagement {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EngagementCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EngagementCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Engagement.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EngagementUpsert) {
//			SetMatchID(v+v).
//		}).
//		Exec(ctx)
func (_c *EngagementCreateBulk) OnConflict(opts ...sql.ConflictOption) *EngagementUpsertBulk {
	_c.conflict = opts
	return &EngagementUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Engagement.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EngagementCreateBulk) OnConflictColumns(columns ...string) *EngagementUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EngagementUpsertBulk{
		create: _c,
	}
}

// EngagementUpsertBulk is the builder for "upsert"-ing
// a bulk of Engagement nodes.
type EngagementUpsertBulk struct {
	create *EngagementCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Engagement.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(engagement.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EngagementUpsertBulk) UpdateNewValues() *EngagementUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(engagement.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(engagement.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Engagement.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *EngagementUpsertBulk) Ignore() *EngagementUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EngagementUpsertBulk) DoNothing() *EngagementUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EngagementCreateBulk.OnConflict
// documentation for more info.
func (u *EngagementUpsertBulk) Update(set func(*EngagementUpsert)) *EngagementUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EngagementUpsert{UpdateSet: update})
	}))
	return u
}

// SetMatchID sets the "match_id" field.
func (u *EngagementUpsertBulk) SetMatchID(v string) *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.SetMatchID(v)
	})
}

// UpdateMatchID sets the "match_id" field to the value that was provided on create.
func (u *EngagementUpsertBulk) UpdateMatchID() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateMatchID()
	})
}

// SetBuyerNeedID sets the "buyer_need_id" field.
func (u *EngagementUpsertBulk) SetBuyerNeedID(v string) *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.SetBuyerNeedID(v)
	})
}

// UpdateBuyerNeedID sets the "buyer_need_id" field to the value that was provided on create.
func (u *EngagementUpsertBulk) UpdateBuyerNeedID() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateBuyerNeedID()
	})
}

// SetWarehouseID sets the "warehouse_id" field.
func (u *EngagementUpsertBulk) SetWarehouseID(v string) *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.SetWarehouseID(v)
	})
}

// UpdateWarehouseID sets the "warehouse_id" field to the value that was provided on create.
func (u *EngagementUpsertBulk) UpdateWarehouseID() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateWarehouseID()
	})
}

// SetBuyerID sets the "buyer_id" field.
func (u *EngagementUpsertBulk) SetBuyerID(v string) *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.SetBuyerID(v)
	})
}

// UpdateBuyerID sets the "buyer_id" field to the value that was provided on create.
func (u *EngagementUpsertBulk) UpdateBuyerID() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateBuyerID()
	})
}

// ClearBuyerID clears the value of the "buyer_id" field.
func (u *EngagementUpsertBulk) ClearBuyerID() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.ClearBuyerID()
	})
}

// SetCompanyID sets the "company_id" field.
func (u *EngagementUpsertBulk) SetCompanyID(v string) *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.SetCompanyID(v)
	})
}

// UpdateCompanyID sets the "company_id" field to the value that was provided on create.
func (u *EngagementUpsertBulk) UpdateCompanyID() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateCompanyID()
	})
}

// SetStatus sets the "status" field.
func (u *EngagementUpsertBulk) SetStatus(v engagement.Status) *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *EngagementUpsertBulk) UpdateStatus() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateStatus()
	})
}

// SetTier sets the "tier" field.
func (u *EngagementUpsertBulk) SetTier(v engagement.Tier) *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.SetTier(v)
	})
}

// UpdateTier sets the "tier" field to the value that was provided on create.
func (u *EngagementUpsertBulk) UpdateTier() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateTier()
	})
}

// SetPath sets the "path" field.
func (u *EngagementUpsertBulk) SetPath(v engagement.Path) *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.SetPath(v)
	})
}

// UpdatePath sets the "path" field to the value that was provided on create.
func (u *EngagementUpsertBulk) UpdatePath() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdatePath()
	})
}

// ClearPath clears the value of the "path" field.
func (u *EngagementUpsertBulk) ClearPath() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.ClearPath()
	})
}

// SetDealPingSentAt sets the "deal_ping_sent_at" field.
func (u *EngagementUpsertBulk) SetDealPingSentAt(v time.Time) *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.SetDealPingSentAt(v)
	})
}

// UpdateDealPingSentAt sets the "deal_ping_sent_at" field to the value that was provided on create.
func (u *EngagementUpsertBulk) UpdateDealPingSentAt() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateDealPingSentAt()
	})
}

// ClearDealPingSentAt clears the value of the "deal_ping_sent_at" field.
func (u *EngagementUpsertBulk) ClearDealPingSentAt() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.ClearDealPingSentAt()
	})
}

// SetDealPingExpiresAt sets the "deal_ping_expires_at" field.
func (u *EngagementUpsertBulk) SetDealPingExpiresAt(v time.Time) *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.SetDealPingExpiresAt(v)
	})
}

// UpdateDealPingExpiresAt sets the "deal_ping_expires_at" field to the value that was provided on create.
func (u *EngagementUpsertBulk) UpdateDealPingExpiresAt() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateDealPingExpiresAt()
	})
}

// ClearDealPingExpiresAt clears the value of the "deal_ping_expires_at" field.
func (u *EngagementUpsertBulk) ClearDealPingExpiresAt() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.ClearDealPingExpiresAt()
	})
}

// SetBuyerAcceptedAt sets the "buyer_accepted_at" field.
func (u *EngagementUpsertBulk) SetBuyerAcceptedAt(v time.Time) *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.SetBuyerAcceptedAt(v)
	})
}

// UpdateBuyerAcceptedAt sets the "buyer_accepted_at" field to the value that was provided on create.
func (u *EngagementUpsertBulk) UpdateBuyerAcceptedAt() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateBuyerAcceptedAt()
	})
}

// ClearBuyerAcceptedAt clears the value of the "buyer_accepted_at" field.
func (u *EngagementUpsertBulk) ClearBuyerAcceptedAt() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.ClearBuyerAcceptedAt()
	})
}

// SetContactCapturedAt sets the "contact_captured_at" field.
func (u *EngagementUpsertBulk) SetContactCapturedAt(v time.Time) *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.SetContactCapturedAt(v)
	})
}

// UpdateContactCapturedAt sets the "contact_captured_at" field to the value that was provided on create.
func (u *EngagementUpsertBulk) UpdateContactCapturedAt() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateContactCapturedAt()
	})
}

// ClearContactCapturedAt clears the value of the "contact_captured_at" field.
func (u *EngagementUpsertBulk) ClearContactCapturedAt() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.ClearContactCapturedAt()
	})
}

// SetAccountCreatedAt sets the "account_created_at" field.
func (u *EngagementUpsertBulk) SetAccountCreatedAt(v time.Time) *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.SetAccountCreatedAt(v)
	})
}

// UpdateAccountCreatedAt sets the "account_created_at" field to the value that was provided on create.
func (u *EngagementUpsertBulk) UpdateAccountCreatedAt() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateAccountCreatedAt()
	})
}

// ClearAccountCreatedAt clears the value of the "account_created_at" field.
func (u *EngagementUpsertBulk) ClearAccountCreatedAt() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.ClearAccountCreatedAt()
	})
}

// SetGuaranteeSignedAt sets the "guarantee_signed_at" field.
func (u *EngagementUpsertBulk) SetGuaranteeSignedAt(v time.Time) *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.SetGuaranteeSignedAt(v)
	})
}

// UpdateGuaranteeSignedAt sets the "guarantee_signed_at" field to the value that was provided on create.
func (u *EngagementUpsertBulk) UpdateGuaranteeSignedAt() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateGuaranteeSignedAt()
	})
}

// ClearGuaranteeSignedAt clears the value of the "guarantee_signed_at" field.
func (u *EngagementUpsertBulk) ClearGuaranteeSignedAt() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.ClearGuaranteeSignedAt()
	})
}

// SetAddressRevealedAt sets the "address_revealed_at" field.
func (u *EngagementUpsertBulk) SetAddressRevealedAt(v time.Time) *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.SetAddressRevealedAt(v)
	})
}

// UpdateAddressRevealedAt sets the "address_revealed_at" field to the value that was provided on create.
func (u *EngagementUpsertBulk) UpdateAddressRevealedAt() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateAddressRevealedAt()
	})
}

// ClearAddressRevealedAt clears the value of the "address_revealed_at" field.
func (u *EngagementUpsertBulk) ClearAddressRevealedAt() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.ClearAddressRevealedAt()
	})
}

// SetTourRequestedAt sets the "tour_requested_at" field.
func (u *EngagementUpsertBulk) SetTourRequestedAt(v time.Time) *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.SetTourRequestedAt(v)
	})
}

// UpdateTourRequestedAt sets the "tour_requested_at" field to the value that was provided on create.
func (u *EngagementUpsertBulk) UpdateTourRequestedAt() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateTourRequestedAt()
	})
}

// ClearTourRequestedAt clears the value of the "tour_requested_at" field.
func (u *EngagementUpsertBulk) ClearTourRequestedAt() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.ClearTourRequestedAt()
	})
}

// SetTourConfirmedAt sets the "tour_confirmed_at" field.
func (u *EngagementUpsertBulk) SetTourConfirmedAt(v time.Time) *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.SetTourConfirmedAt(v)
	})
}

// UpdateTourConfirmedAt sets the "tour_confirmed_at" field to the value that was provided on create.
func (u *EngagementUpsertBulk) UpdateTourConfirmedAt() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateTourConfirmedAt()
	})
}

// ClearTourConfirmedAt clears the value of the "tour_confirmed_at" field.
func (u *EngagementUpsertBulk) ClearTourConfirmedAt() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.ClearTourConfirmedAt()
	})
}

// SetTourScheduledFor sets the "tour_scheduled_for" field.
func (u *EngagementUpsertBulk) SetTourScheduledFor(v time.Time) *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.SetTourScheduledFor(v)
	})
}

// UpdateTourScheduledFor sets the "tour_scheduled_for" field to the value that was provided on create.
func (u *EngagementUpsertBulk) UpdateTourScheduledFor() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateTourScheduledFor()
	})
}

// ClearTourScheduledFor clears the value of the "tour_scheduled_for" field.
func (u *EngagementUpsertBulk) ClearTourScheduledFor() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.ClearTourScheduledFor()
	})
}

// SetTourCompletedAt sets the "tour_completed_at" field.
func (u *EngagementUpsertBulk) SetTourCompletedAt(v time.Time) *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.SetTourCompletedAt(v)
	})
}

// UpdateTourCompletedAt sets the "tour_completed_at" field to the value that was provided on create.
func (u *EngagementUpsertBulk) UpdateTourCompletedAt() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateTourCompletedAt()
	})
}

// ClearTourCompletedAt clears the value of the "tour_completed_at" field.
func (u *EngagementUpsertBulk) ClearTourCompletedAt() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.ClearTourCompletedAt()
	})
}

// SetTourRescheduleCount sets the "tour_reschedule_count" field.
func (u *EngagementUpsertBulk) SetTourRescheduleCount(v int) *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.SetTourRescheduleCount(v)
	})
}

// AddTourRescheduleCount adds v to the "tour_reschedule_count" field.
func (u *EngagementUpsertBulk) AddTourRescheduleCount(v int) *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.AddTourRescheduleCount(v)
	})
}

// UpdateTourRescheduleCount sets the "tour_reschedule_count" field to the value that was provided on create.
func (u *EngagementUpsertBulk) UpdateTourRescheduleCount() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateTourRescheduleCount()
	})
}

// SetInstantBookRequestedAt sets the "instant_book_requested_at" field.
func (u *EngagementUpsertBulk) SetInstantBookRequestedAt(v time.Time) *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.SetInstantBookRequestedAt(v)
	})
}

// UpdateInstantBookRequestedAt sets the "instant_book_requested_at" field to the value that was provided on create.
func (u *EngagementUpsertBulk) UpdateInstantBookRequestedAt() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateInstantBookRequestedAt()
	})
}

// ClearInstantBookRequestedAt clears the value of the "instant_book_requested_at" field.
func (u *EngagementUpsertBulk) ClearInstantBookRequestedAt() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.ClearInstantBookRequestedAt()
	})
}

// SetInstantBookConfirmedAt sets the "instant_book_confirmed_at" field.
func (u *EngagementUpsertBulk) SetInstantBookConfirmedAt(v time.Time) *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.SetInstantBookConfirmedAt(v)
	})
}

// UpdateInstantBookConfirmedAt sets the "instant_book_confirmed_at" field to the value that was provided on create.
func (u *EngagementUpsertBulk) UpdateInstantBookConfirmedAt() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateInstantBookConfirmedAt()
	})
}

// ClearInstantBookConfirmedAt clears the value of the "instant_book_confirmed_at" field.
func (u *EngagementUpsertBulk) ClearInstantBookConfirmedAt() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.ClearInstantBookConfirmedAt()
	})
}

// SetBuyerConfirmedAt sets the "buyer_confirmed_at" field.
func (u *EngagementUpsertBulk) SetBuyerConfirmedAt(v time.Time) *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.SetBuyerConfirmedAt(v)
	})
}

// UpdateBuyerConfirmedAt sets the "buyer_confirmed_at" field to the value that was provided on create.
func (u *EngagementUpsertBulk) UpdateBuyerConfirmedAt() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateBuyerConfirmedAt()
	})
}

// ClearBuyerConfirmedAt clears the value of the "buyer_confirmed_at" field.
func (u *EngagementUpsertBulk) ClearBuyerConfirmedAt() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.ClearBuyerConfirmedAt()
	})
}

// SetAgreementSentAt sets the "agreement_sent_at" field.
func (u *EngagementUpsertBulk) SetAgreementSentAt(v time.Time) *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.SetAgreementSentAt(v)
	})
}

// UpdateAgreementSentAt sets the "agreement_sent_at" field to the value that was provided on create.
func (u *EngagementUpsertBulk) UpdateAgreementSentAt() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateAgreementSentAt()
	})
}

// ClearAgreementSentAt clears the value of the "agreement_sent_at" field.
func (u *EngagementUpsertBulk) ClearAgreementSentAt() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.ClearAgreementSentAt()
	})
}

// SetAgreementSignedAt sets the "agreement_signed_at" field.
func (u *EngagementUpsertBulk) SetAgreementSignedAt(v time.Time) *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.SetAgreementSignedAt(v)
	})
}

// UpdateAgreementSignedAt sets the "agreement_signed_at" field to the value that was provided on create.
func (u *EngagementUpsertBulk) UpdateAgreementSignedAt() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateAgreementSignedAt()
	})
}

// ClearAgreementSignedAt clears the value of the "agreement_signed_at" field.
func (u *EngagementUpsertBulk) ClearAgreementSignedAt() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.ClearAgreementSignedAt()
	})
}

// SetLeaseStartDate sets the "lease_start_date" field.
func (u *EngagementUpsertBulk) SetLeaseStartDate(v time.Time) *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.SetLeaseStartDate(v)
	})
}

// UpdateLeaseStartDate sets the "lease_start_date" field to the value that was provided on create.
func (u *EngagementUpsertBulk) UpdateLeaseStartDate() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateLeaseStartDate()
	})
}

// ClearLeaseStartDate clears the value of the "lease_start_date" field.
func (u *EngagementUpsertBulk) ClearLeaseStartDate() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.ClearLeaseStartDate()
	})
}

// SetLeaseEndDate sets the "lease_end_date" field.
func (u *EngagementUpsertBulk) SetLeaseEndDate(v time.Time) *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.SetLeaseEndDate(v)
	})
}

// UpdateLeaseEndDate sets the "lease_end_date" field to the value that was provided on create.
func (u *EngagementUpsertBulk) UpdateLeaseEndDate() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateLeaseEndDate()
	})
}

// ClearLeaseEndDate clears the value of the "lease_end_date" field.
func (u *EngagementUpsertBulk) ClearLeaseEndDate() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.ClearLeaseEndDate()
	})
}

// SetActivatedAt sets the "activated_at" field.
func (u *EngagementUpsertBulk) SetActivatedAt(v time.Time) *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.SetActivatedAt(v)
	})
}

// UpdateActivatedAt sets the "activated_at" field to the value that was provided on create.
func (u *EngagementUpsertBulk) UpdateActivatedAt() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateActivatedAt()
	})
}

// ClearActivatedAt clears the value of the "activated_at" field.
func (u *EngagementUpsertBulk) ClearActivatedAt() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.ClearActivatedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *EngagementUpsertBulk) SetCompletedAt(v time.Time) *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *EngagementUpsertBulk) UpdateCompletedAt() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *EngagementUpsertBulk) ClearCompletedAt() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.ClearCompletedAt()
	})
}

// SetInsuranceUploaded sets the "insurance_uploaded" field.
func (u *EngagementUpsertBulk) SetInsuranceUploaded(v bool) *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.SetInsuranceUploaded(v)
	})
}

// UpdateInsuranceUploaded sets the "insurance_uploaded" field to the value that was provided on create.
func (u *EngagementUpsertBulk) UpdateInsuranceUploaded() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateInsuranceUploaded()
	})
}

// SetCompanyDocsUploaded sets the "company_docs_uploaded" field.
func (u *EngagementUpsertBulk) SetCompanyDocsUploaded(v bool) *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.SetCompanyDocsUploaded(v)
	})
}

// UpdateCompanyDocsUploaded sets the "company_docs_uploaded" field to the value that was provided on create.
func (u *EngagementUpsertBulk) UpdateCompanyDocsUploaded() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateCompanyDocsUploaded()
	})
}

// SetPaymentMethodAdded sets the "payment_method_added" field.
func (u *EngagementUpsertBulk) SetPaymentMethodAdded(v bool) *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.SetPaymentMethodAdded(v)
	})
}

// UpdatePaymentMethodAdded sets the "payment_method_added" field to the value that was provided on create.
func (u *EngagementUpsertBulk) UpdatePaymentMethodAdded() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdatePaymentMethodAdded()
	})
}

// SetSqft sets the "sqft" field.
func (u *EngagementUpsertBulk) SetSqft(v int) *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.SetSqft(v)
	})
}

// AddSqft adds v to the "sqft" field.
func (u *EngagementUpsertBulk) AddSqft(v int) *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.AddSqft(v)
	})
}

// UpdateSqft sets the "sqft" field to the value that was provided on create.
func (u *EngagementUpsertBulk) UpdateSqft() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateSqft()
	})
}

// ClearSqft clears the value of the "sqft" field.
func (u *EngagementUpsertBulk) ClearSqft() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.ClearSqft()
	})
}

// SetSupplierRate sets the "supplier_rate" field.
func (u *EngagementUpsertBulk) SetSupplierRate(v float64) *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.SetSupplierRate(v)
	})
}

// AddSupplierRate adds v to the "supplier_rate" field.
func (u *EngagementUpsertBulk) AddSupplierRate(v float64) *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.AddSupplierRate(v)
	})
}

// UpdateSupplierRate sets the "supplier_rate" field to the value that was provided on create.
func (u *EngagementUpsertBulk) UpdateSupplierRate() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateSupplierRate()
	})
}

// ClearSupplierRate clears the value of the "supplier_rate" field.
func (u *EngagementUpsertBulk) ClearSupplierRate() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.ClearSupplierRate()
	})
}

// SetBuyerRate sets the "buyer_rate" field.
func (u *EngagementUpsertBulk) SetBuyerRate(v float64) *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.SetBuyerRate(v)
	})
}

// AddBuyerRate adds v to the "buyer_rate" field.
func (u *EngagementUpsertBulk) AddBuyerRate(v float64) *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.AddBuyerRate(v)
	})
}

// UpdateBuyerRate sets the "buyer_rate" field to the value that was provided on create.
func (u *EngagementUpsertBulk) UpdateBuyerRate() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateBuyerRate()
	})
}

// ClearBuyerRate clears the value of the "buyer_rate" field.
func (u *EngagementUpsertBulk) ClearBuyerRate() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.ClearBuyerRate()
	})
}

// SetMonthlySupplierPayout sets the "monthly_supplier_payout" field.
func (u *EngagementUpsertBulk) SetMonthlySupplierPayout(v float64) *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.SetMonthlySupplierPayout(v)
	})
}

// AddMonthlySupplierPayout adds v to the "monthly_supplier_payout" field.
func (u *EngagementUpsertBulk) AddMonthlySupplierPayout(v float64) *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.AddMonthlySupplierPayout(v)
	})
}

// UpdateMonthlySupplierPayout sets the "monthly_supplier_payout" field to the value that was provided on create.
func (u *EngagementUpsertBulk) UpdateMonthlySupplierPayout() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateMonthlySupplierPayout()
	})
}

// ClearMonthlySupplierPayout clears the value of the "monthly_supplier_payout" field.
func (u *EngagementUpsertBulk) ClearMonthlySupplierPayout() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.ClearMonthlySupplierPayout()
	})
}

// SetMonthlyBuyerTotal sets the "monthly_buyer_total" field.
func (u *EngagementUpsertBulk) SetMonthlyBuyerTotal(v float64) *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.SetMonthlyBuyerTotal(v)
	})
}

// AddMonthlyBuyerTotal adds v to the "monthly_buyer_total" field.
func (u *EngagementUpsertBulk) AddMonthlyBuyerTotal(v float64) *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.AddMonthlyBuyerTotal(v)
	})
}

// UpdateMonthlyBuyerTotal sets the "monthly_buyer_total" field to the value that was provided on create.
func (u *EngagementUpsertBulk) UpdateMonthlyBuyerTotal() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateMonthlyBuyerTotal()
	})
}

// ClearMonthlyBuyerTotal clears the value of the "monthly_buyer_total" field.
func (u *EngagementUpsertBulk) ClearMonthlyBuyerTotal() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.ClearMonthlyBuyerTotal()
	})
}

// SetDeclinedBy sets the "declined_by" field.
func (u *EngagementUpsertBulk) SetDeclinedBy(v engagement.DeclinedBy) *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.SetDeclinedBy(v)
	})
}

// UpdateDeclinedBy sets the "declined_by" field to the value that was provided on create.
func (u *EngagementUpsertBulk) UpdateDeclinedBy() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateDeclinedBy()
	})
}

// ClearDeclinedBy clears the value of the "declined_by" field.
func (u *EngagementUpsertBulk) ClearDeclinedBy() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.ClearDeclinedBy()
	})
}

// SetDeclineReason sets the "decline_reason" field.
func (u *EngagementUpsertBulk) SetDeclineReason(v string) *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.SetDeclineReason(v)
	})
}

// UpdateDeclineReason sets the "decline_reason" field to the value that was provided on create.
func (u *EngagementUpsertBulk) UpdateDeclineReason() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateDeclineReason()
	})
}

// ClearDeclineReason clears the value of the "decline_reason" field.
func (u *EngagementUpsertBulk) ClearDeclineReason() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.ClearDeclineReason()
	})
}

// SetCancelReason sets the "cancel_reason" field.
func (u *EngagementUpsertBulk) SetCancelReason(v string) *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.SetCancelReason(v)
	})
}

// UpdateCancelReason sets the "cancel_reason" field to the value that was provided on create.
func (u *EngagementUpsertBulk) UpdateCancelReason() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateCancelReason()
	})
}

// ClearCancelReason clears the value of the "cancel_reason" field.
func (u *EngagementUpsertBulk) ClearCancelReason() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.ClearCancelReason()
	})
}

// SetDecisionTimerPausedAt sets the "decision_timer_paused_at" field.
func (u *EngagementUpsertBulk) SetDecisionTimerPausedAt(v time.Time) *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.SetDecisionTimerPausedAt(v)
	})
}

// UpdateDecisionTimerPausedAt sets the "decision_timer_paused_at" field to the value that was provided on create.
func (u *EngagementUpsertBulk) UpdateDecisionTimerPausedAt() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateDecisionTimerPausedAt()
	})
}

// ClearDecisionTimerPausedAt clears the value of the "decision_timer_paused_at" field.
func (u *EngagementUpsertBulk) ClearDecisionTimerPausedAt() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.ClearDecisionTimerPausedAt()
	})
}

// SetAdminFlagged sets the "admin_flagged" field.
func (u *EngagementUpsertBulk) SetAdminFlagged(v bool) *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.SetAdminFlagged(v)
	})
}

// UpdateAdminFlagged sets the "admin_flagged" field to the value that was provided on create.
func (u *EngagementUpsertBulk) UpdateAdminFlagged() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateAdminFlagged()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *EngagementUpsertBulk) SetUpdatedAt(v time.Time) *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *EngagementUpsertBulk) UpdateUpdatedAt() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *EngagementUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the EngagementCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EngagementCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EngagementUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
