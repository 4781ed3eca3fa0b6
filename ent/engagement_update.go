// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/warehouse-exchange/wex/ent/engagement"
	"github.com/warehouse-exchange/wex/ent/engagementagreement"
	"github.com/warehouse-exchange/wex/ent/engagementevent"
	"github.com/warehouse-exchange/wex/ent/match"
	"github.com/warehouse-exchange/wex/ent/paymentrecord"
	"github.com/warehouse-exchange/wex/ent/predicate"
	"github.com/warehouse-exchange/wex/ent/uploadtoken"
)

// EngagementUpdate is the builder for updating Engagement entities.
type EngagementUpdate struct {
	config
	hooks    []Hook
	mutation *EngagementMutation
}

// Where appends a list predicates to the EngagementUpdate builder.
func (_u *EngagementUpdate) Where(ps ...predicate.Engagement) *EngagementUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMatchID sets the "match_id" field.
func (_u *EngagementUpdate) SetMatchID(v string) *EngagementUpdate {
	_u.mutation.SetMatchID(v)
	return _u
}

// SetNillableMatchID sets the "match_id" field if the given value is not nil.
func (_u *EngagementUpdate) SetNillableMatchID(v *string) *EngagementUpdate {
	if v != nil {
		_u.SetMatchID(*v)
	}
	return _u
}

// SetBuyerNeedID sets the "buyer_need_id" field.
func (_u *EngagementUpdate) SetBuyerNeedID(v string) *EngagementUpdate {
	_u.mutation.SetBuyerNeedID(v)
	return _u
}

// SetNillableBuyerNeedID sets the "buyer_need_id" field if the given value is not nil.
func (_u *EngagementUpdate) SetNillableBuyerNeedID(v *string) *EngagementUpdate {
	if v != nil {
		_u.SetBuyerNeedID(*v)
	}
	return _u
}

// SetWarehouseID sets the "warehouse_id" field.
func (_u *EngagementUpdate) SetWarehouseID(v string) *EngagementUpdate {
	_u.mutation.SetWarehouseID(v)
	return _u
}

// SetNillableWarehouseID sets the "warehouse_id" field if the given value is not nil.
func (_u *EngagementUpdate) SetNillableWarehouseID(v *string) *EngagementUpdate {
	if v != nil {
		_u.SetWarehouseID(*v)
	}
	return _u
}

// SetBuyerID sets the "buyer_id" field.
func (_u *EngagementUpdate) SetBuyerID(v string) *EngagementUpdate {
	_u.mutation.SetBuyerID(v)
	return _u
}

// SetNillableBuyerID sets the "buyer_id" field if the given value is not nil.
func (_u *EngagementUpdate) SetNillableBuyerID(v *string) *EngagementUpdate {
	if v != nil {
		_u.SetBuyerID(*v)
	}
	return _u
}

// ClearBuyerID clears the value of the "buyer_id" field.
func (_u *EngagementUpdate) ClearBuyerID() *EngagementUpdate {
	_u.mutation.ClearBuyerID()
	return _u
}

// SetCompanyID sets the "company_id" field.
func (_u *EngagementUpdate) SetCompanyID(v string) *EngagementUpdate {
	_u.mutation.SetCompanyID(v)
	return _u
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_u *EngagementUpdate) SetNillableCompanyID(v *string) *EngagementUpdate {
	if v != nil {
		_u.SetCompanyID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *EngagementUpdate) SetStatus(v engagement.Status) *EngagementUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *EngagementUpdate) SetNillableStatus(v *engagement.Status) *EngagementUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTier sets the "tier" field.
func (_u *EngagementUpdate) SetTier(v engagement.Tier) *EngagementUpdate {
	_u.mutation.SetTier(v)
	return _u
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_u *EngagementUpdate) SetNillableTier(v *engagement.Tier) *EngagementUpdate {
	if v != nil {
		_u.SetTier(*v)
	}
	return _u
}

// SetPath sets the "path" field.
func (_u *EngagementUpdate) SetPath(v engagement.Path) *EngagementUpdate {
	_u.mutation.SetPath(v)
	return _u
}

// SetNillablePath sets the "path" field if the given value is not nil.
func (_u *EngagementUpdate) SetNillablePath(v *engagement.Path) *EngagementUpdate {
	if v != nil {
		_u.SetPath(*v)
	}
	return _u
}

// ClearPath clears the value of the "path" field.
func (_u *EngagementUpdate) ClearPath() *EngagementUpdate {
	_u.mutation.ClearPath()
	return _u
}

// SetDealPingSentAt sets the "deal_ping_sent_at" field.
func (_u *EngagementUpdate) SetDealPingSentAt(v time.Time) *EngagementUpdate {
	_u.mutation.SetDealPingSentAt(v)
	return _u
}

// SetNillableDealPingSentAt sets the "deal_ping_sent_at" field if the given value is not nil.
func (_u *EngagementUpdate) SetNillableDealPingSentAt(v *time.Time) *EngagementUpdate {
	if v != nil {
		_u.SetDealPingSentAt(*v)
	}
	return _u
}

// ClearDealPingSentAt clears the value of the "deal_ping_sent_at" field.
func (_u *EngagementUpdate) ClearDealPingSentAt() *EngagementUpdate {
	_u.mutation.ClearDealPingSentAt()
	return _u
}

// SetDealPingExpiresAt sets the "deal_ping_expires_at" field.
func (_u *EngagementUpdate) SetDealPingExpiresAt(v time.Time) *EngagementUpdate {
	_u.mutation.SetDealPingExpiresAt(v)
	return _u
}

// SetNillableDealPingExpiresAt sets the "deal_ping_expires_at" field if the given value is not nil.
func (_u *EngagementUpdate) SetNillableDealPingExpiresAt(v *time.Time) *EngagementUpdate {
	if v != nil {
		_u.SetDealPingExpiresAt(*v)
	}
	return _u
}

// ClearDealPingExpiresAt clears the value of the "deal_ping_expires_at" field.
func (_u *EngagementUpdate) ClearDealPingExpiresAt() *EngagementUpdate {
	_u.mutation.ClearDealPingExpiresAt()
	return _u
}

// SetBuyerAcceptedAt sets the "buyer_accepted_at" field.
func (_u *EngagementUpdate) SetBuyerAcceptedAt(v time.Time) *EngagementUpdate {
	_u.mutation.SetBuyerAcceptedAt(v)
	return _u
}

// SetNillableBuyerAcceptedAt sets the "buyer_accepted_at" field if the given value is not nil.
func (_u *EngagementUpdate) SetNillableBuyerAcceptedAt(v *time.Time) *EngagementUpdate {
	if v != nil {
		_u.SetBuyerAcceptedAt(*v)
	}
	return _u
}

// ClearBuyerAcceptedAt clears the value of the "buyer_accepted_at" field.
func (_u *EngagementUpdate) ClearBuyerAcceptedAt() *EngagementUpdate {
	_u.mutation.ClearBuyerAcceptedAt()
	return _u
}

// SetContactCapturedAt sets the "contact_captured_at" field.
func (_u *EngagementUpdate) SetContactCapturedAt(v time.Time) *EngagementUpdate {
	_u.mutation.SetContactCapturedAt(v)
	return _u
}

// SetNillableContactCapturedAt sets the "contact_captured_at" field if the given value is not nil.
func (_u *EngagementUpdate) SetNillableContactCapturedAt(v *time.Time) *EngagementUpdate {
	if v != nil {
		_u.SetContactCapturedAt(*v)
	}
	return _u
}

// ClearContactCapturedAt clears the value of the "contact_captured_at" field.
func (_u *EngagementUpdate) ClearContactCapturedAt() *EngagementUpdate {
	_u.mutation.ClearContactCapturedAt()
	return _u
}

// SetAccountCreatedAt sets the "account_created_at" field.
func (_u *EngagementUpdate) SetAccountCreatedAt(v time.Time) *EngagementUpdate {
	_u.mutation.SetAccountCreatedAt(v)
	return _u
}

// SetNillableAccountCreatedAt sets the "account_created_at" field if the given value is not nil.
func (_u *EngagementUpdate) SetNillableAccountCreatedAt(v *time.Time) *EngagementUpdate {
	if v != nil {
		_u.SetAccountCreatedAt(*v)
	}
	return _u
}

// ClearAccountCreatedAt clears the value of the "account_created_at" field.
func (_u *EngagementUpdate) ClearAccountCreatedAt() *EngagementUpdate {
	_u.mutation.ClearAccountCreatedAt()
	return _u
}

// SetGuaranteeSignedAt sets the "guarantee_signed_at" field.
func (_u *EngagementUpdate) SetGuaranteeSignedAt(v time.Time) *EngagementUpdate {
	_u.mutation.SetGuaranteeSignedAt(v)
	return _u
}

// SetNillableGuaranteeSignedAt sets the "guarantee_signed_at" field if the given value is not nil.
func (_u *EngagementUpdate) SetNillableGuaranteeSignedAt(v *time.Time) *EngagementUpdate {
	if v != nil {
		_u.SetGuaranteeSignedAt(*v)
	}
	return _u
}

// ClearGuaranteeSignedAt clears the value of the "guarantee_signed_at" field.
func (_u *EngagementUpdate) ClearGuaranteeSignedAt() *EngagementUpdate {
	_u.mutation.ClearGuaranteeSignedAt()
	return _u
}

// SetAddressRevealedAt sets the "address_revealed_at" field.
func (_u *EngagementUpdate) SetAddressRevealedAt(v time.Time) *EngagementUpdate {
	_u.mutation.SetAddressRevealedAt(v)
	return _u
}

// SetNillableAddressRevealedAt sets the "address_revealed_at" field if the given value is not nil.
func (_u *EngagementUpdate) SetNillableAddressRevealedAt(v *time.Time) *EngagementUpdate {
	if v != nil {
		_u.SetAddressRevealedAt(*v)
	}
	return _u
}

// ClearAddressRevealedAt clears the value of the "address_revealed_at" field.
func (_u *EngagementUpdate) ClearAddressRevealedAt() *EngagementUpdate {
	_u.mutation.ClearAddressRevealedAt()
	return _u
}

// SetTourRequestedAt sets the "tour_requested_at" field.
func (_u *EngagementUpdate) SetTourRequestedAt(v time.Time) *EngagementUpdate {
	_u.mutation.SetTourRequestedAt(v)
	return _u
}

// SetNillableTourRequestedAt sets the "tour_requested_at" field if the given value is not nil.
func (_u *EngagementUpdate) SetNillableTourRequestedAt(v *time.Time) *EngagementUpdate {
	if v != nil {
		_u.SetTourRequestedAt(*v)
	}
	return _u
}

// ClearTourRequestedAt clears the value of the "tour_requested_at" field.
func (_u *EngagementUpdate) ClearTourRequestedAt() *EngagementUpdate {
	_u.mutation.ClearTourRequestedAt()
	return _u
}

// SetTourConfirmedAt sets the "tour_confirmed_at" field.
func (_u *EngagementUpdate) SetTourConfirmedAt(v time.Time) *EngagementUpdate {
	_u.mutation.SetTourConfirmedAt(v)
	return _u
}

// SetNillableTourConfirmedAt sets the "tour_confirmed_at" field if the given value is not nil.
func (_u *EngagementUpdate) SetNillableTourConfirmedAt(v *time.Time) *EngagementUpdate {
	if v != nil {
		_u.SetTourConfirmedAt(*v)
	}
	return _u
}

// ClearTourConfirmedAt clears the value of the "tour_confirmed_at" field.
func (_u *EngagementUpdate) ClearTourConfirmedAt() *EngagementUpdate {
	_u.mutation.ClearTourConfirmedAt()
	return _u
}

// SetTourScheduledFor sets the "tour_scheduled_for" field.
func (_u *EngagementUpdate) SetTourScheduledFor(v time.Time) *EngagementUpdate {
	_u.mutation.SetTourScheduledFor(v)
	return _u
}

// SetNillableTourScheduledFor sets the "tour_scheduled_for" field if the given value is not nil.
func (_u *EngagementUpdate) SetNillableTourScheduledFor(v *time.Time) *EngagementUpdate {
	if v != nil {
		_u.SetTourScheduledFor(*v)
	}
	return _u
}

// ClearTourScheduledFor clears the value of the "tour_scheduled_for" field.
func (_u *EngagementUpdate) ClearTourScheduledFor() *EngagementUpdate {
	_u.mutation.ClearTourScheduledFor()
	return _u
}

// SetTourCompletedAt sets the "tour_completed_at" field.
func (_u *EngagementUpdate) SetTourCompletedAt(v time.Time) *EngagementUpdate {
	_u.mutation.SetTourCompletedAt(v)
	return _u
}

// SetNillableTourCompletedAt sets the "tour_completed_at" field if the given value is not nil.
func (_u *EngagementUpdate) SetNillableTourCompletedAt(v *time.Time) *EngagementUpdate {
	if v != nil {
		_u.SetTourCompletedAt(*v)
	}
	return _u
}

// ClearTourCompletedAt clears the value of the "tour_completed_at" field.
func (_u *EngagementUpdate) ClearTourCompletedAt() *EngagementUpdate {
	_u.mutation.ClearTourCompletedAt()
	return _u
}

// SetTourRescheduleCount sets the "tour_reschedule_count" field.
func (_u *EngagementUpdate) SetTourRescheduleCount(v int) *EngagementUpdate {
	_u.mutation.ResetTourRescheduleCount()
	_u.mutation.SetTourRescheduleCount(v)
	return _u
}

// SetNillableTourRescheduleCount sets the "tour_reschedule_count" field if the given value is not nil.
func (_u *EngagementUpdate) SetNillableTourRescheduleCount(v *int) *EngagementUpdate {
	if v != nil {
		_u.SetTourRescheduleCount(*v)
	}
	return _u
}

// AddTourRescheduleCount adds value to the "tour_reschedule_count" field.
func (_u *EngagementUpdate) AddTourRescheduleCount(v int) *EngagementUpdate {
	_u.mutation.AddTourRescheduleCount(v)
	return _u
}

// SetInstantBookRequestedAt sets the "instant_book_requested_at" field.
func (_u *EngagementUpdate) SetInstantBookRequestedAt(v time.Time) *EngagementUpdate {
	_u.mutation.SetInstantBookRequestedAt(v)
	return _u
}

// SetNillableInstantBookRequestedAt sets the "instant_book_requested_at" field if the given value is not nil.
func (_u *EngagementUpdate) SetNillableInstantBookRequestedAt(v *time.Time) *EngagementUpdate {
	if v != nil {
		_u.SetInstantBookRequestedAt(*v)
	}
	return _u
}

// ClearInstantBookRequestedAt clears the value of the "instant_book_requested_at" field.
func (_u *EngagementUpdate) ClearInstantBookRequestedAt() *EngagementUpdate {
	_u.mutation.ClearInstantBookRequestedAt()
	return _u
}

// SetInstantBookConfirmedAt sets the "instant_book_confirmed_at" field.
func (_u *EngagementUpdate) SetInstantBookConfirmedAt(v time.Time) *EngagementUpdate {
	_u.mutation.SetInstantBookConfirmedAt(v)
	return _u
}

// SetNillableInstantBookConfirmedAt sets the "instant_book_confirmed_at" field if the given value is not nil.
func (_u *EngagementUpdate) SetNillableInstantBookConfirmedAt(v *time.Time) *EngagementUpdate {
	if v != nil {
		_u.SetInstantBookConfirmedAt(*v)
	}
	return _u
}

// ClearInstantBookConfirmedAt clears the value of the "instant_book_confirmed_at" field.
func (_u *EngagementUpdate) ClearInstantBookConfirmedAt() *EngagementUpdate {
	_u.mutation.ClearInstantBookConfirmedAt()
	return _u
}

// SetBuyerConfirmedAt sets the "buyer_confirmed_at" field.
func (_u *EngagementUpdate) SetBuyerConfirmedAt(v time.Time) *EngagementUpdate {
	_u.mutation.SetBuyerConfirmedAt(v)
	return _u
}

// SetNillableBuyerConfirmedAt sets the "buyer_confirmed_at" field if the given value is not nil.
func (_u *EngagementUpdate) SetNillableBuyerConfirmedAt(v *time.Time) *EngagementUpdate {
	if v != nil {
		_u.SetBuyerConfirmedAt(*v)
	}
	return _u
}

// ClearBuyerConfirmedAt clears the value of the "buyer_confirmed_at" field.
func (_u *EngagementUpdate) ClearBuyerConfirmedAt() *EngagementUpdate {
	_u.mutation.ClearBuyerConfirmedAt()
	return _u
}

// SetAgreementSentAt sets the "agreement_sent_at" field.
func (_u *EngagementUpdate) SetAgreementSentAt(v time.Time) *EngagementUpdate {
	_u.mutation.SetAgreementSentAt(v)
	return _u
}

// SetNillableAgreementSentAt sets the "agreement_sent_at" field if the given value is not nil.
func (_u *EngagementUpdate) SetNillableAgreementSentAt(v *time.Time) *EngagementUpdate {
	if v != nil {
		_u.SetAgreementSentAt(*v)
	}
	return _u
}

// ClearAgreementSentAt clears the value of the "agreement_sent_at" field.
func (_u *EngagementUpdate) ClearAgreementSentAt() *EngagementUpdate {
	_u.mutation.ClearAgreementSentAt()
	return _u
}

// SetAgreementSignedAt sets the "agreement_signed_at" field.
func (_u *EngagementUpdate) SetAgreementSignedAt(v time.Time) *EngagementUpdate {
	_u.mutation.SetAgreementSignedAt(v)
	return _u
}

// SetNillableAgreementSignedAt sets the "agreement_signed_at" field if the given value is not nil.
func (_u *EngagementUpdate) SetNillableAgreementSignedAt(v *time.Time) *EngagementUpdate {
	if v != nil {
		_u.SetAgreementSignedAt(*v)
	}
	return _u
}

// ClearAgreementSignedAt clears the value of the "agreement_signed_at" field.
func (_u *EngagementUpdate) ClearAgreementSignedAt() *EngagementUpdate {
	_u.mutation.ClearAgreementSignedAt()
	return _u
}

// SetLeaseStartDate sets the "lease_start_date" field.
func (_u *EngagementUpdate) SetLeaseStartDate(v time.Time) *EngagementUpdate {
	_u.mutation.SetLeaseStartDate(v)
	return _u
}

// SetNillableLeaseStartDate sets the "lease_start_date" field if the given value is not nil.
func (_u *EngagementUpdate) SetNillableLeaseStartDate(v *time.Time) *EngagementUpdate {
	if v != nil {
		_u.SetLeaseStartDate(*v)
	}
	return _u
}

// ClearLeaseStartDate clears the value of the "lease_start_date" field.
func (_u *EngagementUpdate) ClearLeaseStartDate() *EngagementUpdate {
	_u.mutation.ClearLeaseStartDate()
	return _u
}

// SetLeaseEndDate sets the "lease_end_date" field.
func (_u *EngagementUpdate) SetLeaseEndDate(v time.Time) *EngagementUpdate {
	_u.mutation.SetLeaseEndDate(v)
	return _u
}

// SetNillableLeaseEndDate sets the "lease_end_date" field if the given value is not nil.
func (_u *EngagementUpdate) SetNillableLeaseEndDate(v *time.Time) *EngagementUpdate {
	if v != nil {
		_u.SetLeaseEndDate(*v)
	}
	return _u
}

// ClearLeaseEndDate clears the value of the "lease_end_date" field.
func (_u *EngagementUpdate) ClearLeaseEndDate() *EngagementUpdate {
	_u.mutation.ClearLeaseEndDate()
	return _u
}

// SetActivatedAt sets the "activated_at" field.
func (_u *EngagementUpdate) SetActivatedAt(v time.Time) *EngagementUpdate {
	_u.mutation.SetActivatedAt(v)
	return _u
}

// SetNillableActivatedAt sets the "activated_at" field if the given value is not nil.
func (_u *EngagementUpdate) SetNillableActivatedAt(v *time.Time) *EngagementUpdate {
	if v != nil {
		_u.SetActivatedAt(*v)
	}
	return _u
}

// ClearActivatedAt clears the value of the "activated_at" field.
func (_u *EngagementUpdate) ClearActivatedAt() *EngagementUpdate {
	_u.mutation.ClearActivatedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *EngagementUpdate) SetCompletedAt(v time.Time) *EngagementUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *EngagementUpdate) SetNillableCompletedAt(v *time.Time) *EngagementUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *EngagementUpdate) ClearCompletedAt() *EngagementUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetInsuranceUploaded sets the "insurance_uploaded" field.
func (_u *EngagementUpdate) SetInsuranceUploaded(v bool) *EngagementUpdate {
	_u.mutation.SetInsuranceUploaded(v)
	return _u
}

// SetNillableInsuranceUploaded sets the "insurance_uploaded" field if the given value is not nil.
func (_u *EngagementUpdate) SetNillableInsuranceUploaded(v *bool) *EngagementUpdate {
	if v != nil {
		_u.SetInsuranceUploaded(*v)
	}
	return _u
}

// SetCompanyDocsUploaded sets the "company_docs_uploaded" field.
func (_u *EngagementUpdate) SetCompanyDocsUploaded(v bool) *EngagementUpdate {
	_u.mutation.SetCompanyDocsUploaded(v)
	return _u
}

// SetNillableCompanyDocsUploaded sets the "company_docs_uploaded" field if the given value is not nil.
func (_u *EngagementUpdate) SetNillableCompanyDocsUploaded(v *bool) *EngagementUpdate {
	if v != nil {
		_u.SetCompanyDocsUploaded(*v)
	}
	return _u
}

// SetPaymentMethodAdded sets the "payment_method_added" field.
func (_u *EngagementUpdate) SetPaymentMethodAdded(v bool) *EngagementUpdate {
	_u.mutation.SetPaymentMethodAdded(v)
	return _u
}

// SetNillablePaymentMethodAdded sets the "payment_method_added" field if the given value is not nil.
func (_u *EngagementUpdate) SetNillablePaymentMethodAdded(v *bool) *EngagementUpdate {
	if v != nil {
		_u.SetPaymentMethodAdded(*v)
	}
	return _u
}

// SetSqft sets the "sqft" field.
func (_u *EngagementUpdate) SetSqft(v int) *EngagementUpdate {
	_u.mutation.ResetSqft()
	_u.mutation.SetSqft(v)
	return _u
}

// SetNillableSqft sets the "sqft" field if the given value is not nil.
func (_u *EngagementUpdate) SetNillableSqft(v *int) *EngagementUpdate {
	if v != nil {
		_u.SetSqft(*v)
	}
	return _u
}

// AddSqft adds value to the "sqft" field.
func (_u *EngagementUpdate) AddSqft(v int) *EngagementUpdate {
	_u.mutation.AddSqft(v)
	return _u
}

// ClearSqft clears the value of the "sqft" field.
func (_u *EngagementUpdate) ClearSqft() *EngagementUpdate {
	_u.mutation.ClearSqft()
	return _u
}

// SetSupplierRate sets the "supplier_rate" field.
func (_u *EngagementUpdate) SetSupplierRate(v float64) *EngagementUpdate {
	_u.mutation.ResetSupplierRate()
	_u.mutation.SetSupplierRate(v)
	return _u
}

// SetNillableSupplierRate sets the "supplier_rate" field if the given value is not nil.
func (_u *EngagementUpdate) SetNillableSupplierRate(v *float64) *EngagementUpdate {
	if v != nil {
		_u.SetSupplierRate(*v)
	}
	return _u
}

// AddSupplierRate adds value to the "supplier_rate" field.
func (_u *EngagementUpdate) AddSupplierRate(v float64) *EngagementUpdate {
	_u.mutation.AddSupplierRate(v)
	return _u
}

// ClearSupplierRate clears the value of the "supplier_rate" field.
func (_u *EngagementUpdate) ClearSupplierRate() *EngagementUpdate {
	_u.mutation.ClearSupplierRate()
	return _u
}

// SetBuyerRate sets the "buyer_rate" field.
func (_u *EngagementUpdate) SetBuyerRate(v float64) *EngagementUpdate {
	_u.mutation.ResetBuyerRate()
	_u.mutation.SetBuyerRate(v)
	return _u
}

// SetNillableBuyerRate sets the "buyer_rate" field if the given value is not nil.
func (_u *EngagementUpdate) SetNillableBuyerRate(v *float64) *EngagementUpdate {
	if v != nil {
		_u.SetBuyerRate(*v)
	}
	return _u
}

// AddBuyerRate adds value to the "buyer_rate" field.
func (_u *EngagementUpdate) AddBuyerRate(v float64) *EngagementUpdate {
	_u.mutation.AddBuyerRate(v)
	return _u
}

// ClearBuyerRate clears the value of the "buyer_rate" field.
func (_u *EngagementUpdate) ClearBuyerRate() *EngagementUpdate {
	_u.mutation.ClearBuyerRate()
	return _u
}

// SetMonthlySupplierPayout sets the "monthly_supplier_payout" field.
func (_u *EngagementUpdate) SetMonthlySupplierPayout(v float64) *EngagementUpdate {
	_u.mutation.ResetMonthlySupplierPayout()
	_u.mutation.SetMonthlySupplierPayout(v)
	return _u
}

// SetNillableMonthlySupplierPayout sets the "monthly_supplier_payout" field if the given value is not nil.
func (_u *EngagementUpdate) SetNillableMonthlySupplierPayout(v *float64) *EngagementUpdate {
	if v != nil {
		_u.SetMonthlySupplierPayout(*v)
	}
	return _u
}

// AddMonthlySupplierPayout adds value to the "monthly_supplier_payout" field.
func (_u *EngagementUpdate) AddMonthlySupplierPayout(v float64) *EngagementUpdate {
	_u.mutation.AddMonthlySupplierPayout(v)
	return _u
}

// ClearMonthlySupplierPayout clears the value of the "monthly_supplier_payout" field.
func (_u *EngagementUpdate) ClearMonthlySupplierPayout() *EngagementUpdate {
	_u.mutation.ClearMonthlySupplierPayout()
	return _u
}

// SetMonthlyBuyerTotal sets the "monthly_buyer_total" field.
func (_u *EngagementUpdate) SetMonthlyBuyerTotal(v float64) *EngagementUpdate {
	_u.mutation.ResetMonthlyBuyerTotal()
	_u.mutation.SetMonthlyBuyerTotal(v)
	return _u
}

// SetNillableMonthlyBuyerTotal sets the "monthly_buyer_total" field if the given value is not nil.
func (_u *EngagementUpdate) SetNillableMonthlyBuyerTotal(v *float64) *EngagementUpdate {
	if v != nil {
		_u.SetMonthlyBuyerTotal(*v)
	}
	return _u
}

// AddMonthlyBuyerTotal adds value to the "monthly_buyer_total" field.
func (_u *EngagementUpdate) AddMonthlyBuyerTotal(v float64) *EngagementUpdate {
	_u.mutation.AddMonthlyBuyerTotal(v)
	return _u
}

// ClearMonthlyBuyerTotal clears the value of the "monthly_buyer_total" field.
func (_u *EngagementUpdate) ClearMonthlyBuyerTotal() *EngagementUpdate {
	_u.mutation.ClearMonthlyBuyerTotal()
	return _u
}

// SetDeclinedBy sets the "declined_by" field.
func (_u *EngagementUpdate) SetDeclinedBy(v engagement.DeclinedBy) *EngagementUpdate {
	_u.mutation.SetDeclinedBy(v)
	return _u
}

// SetNillableDeclinedBy sets the "declined_by" field if the given value is not nil.
func (_u *EngagementUpdate) SetNillableDeclinedBy(v *engagement.DeclinedBy) *EngagementUpdate {
	if v != nil {
		_u.SetDeclinedBy(*v)
	}
	return _u
}

// ClearDeclinedBy clears the value of the "declined_by" field.
func (_u *EngagementUpdate) ClearDeclinedBy() *EngagementUpdate {
	_u.mutation.ClearDeclinedBy()
	return _u
}

// SetDeclineReason sets the "decline_reason" field.
func (_u *EngagementUpdate) SetDeclineReason(v string) *EngagementUpdate {
	_u.mutation.SetDeclineReason(v)
	return _u
}

// SetNillableDeclineReason sets the "decline_reason" field if the given value is not nil.
func (_u *EngagementUpdate) SetNillableDeclineReason(v *string) *EngagementUpdate {
	if v != nil {
		_u.SetDeclineReason(*v)
	}
	return _u
}

// ClearDeclineReason clears the value of the "decline_reason" field.
func (_u *EngagementUpdate) ClearDeclineReason() *EngagementUpdate {
	_u.mutation.ClearDeclineReason()
	return _u
}

// SetCancelReason sets the "cancel_reason" field.
func (_u *EngagementUpdate) SetCancelReason(v string) *EngagementUpdate {
	_u.mutation.SetCancelReason(v)
	return _u
}

// SetNillableCancelReason sets the "cancel_reason" field if the given value is not nil.
func (_u *EngagementUpdate) SetNillableCancelReason(v *string) *EngagementUpdate {
	if v != nil {
		_u.SetCancelReason(*v)
	}
	return _u
}

// ClearCancelReason clears the value of the "cancel_reason" field.
func (_u *EngagementUpdate) ClearCancelReason() *EngagementUpdate {
	_u.mutation.ClearCancelReason()
	return _u
}

// SetDecisionTimerPausedAt sets the "decision_timer_paused_at" field.
func (_u *EngagementUpdate) SetDecisionTimerPausedAt(v time.Time) *EngagementUpdate {
	_u.mutation.SetDecisionTimerPausedAt(v)
	return _u
}

// SetNillableDecisionTimerPausedAt sets the "decision_timer_paused_at" field if the given value is not nil.
func (_u *EngagementUpdate) SetNillableDecisionTimerPausedAt(v *time.Time) *EngagementUpdate {
	if v != nil {
		_u.SetDecisionTimerPausedAt(*v)
	}
	return _u
}

// ClearDecisionTimerPausedAt clears the value of the "decision_timer_paused_at" field.
func (_u *EngagementUpdate) ClearDecisionTimerPausedAt() *EngagementUpdate {
	_u.mutation.ClearDecisionTimerPausedAt()
	return _u
}

// SetAdminFlagged sets the "admin_flagged" field.
func (_u *EngagementUpdate) SetAdminFlagged(v bool) *EngagementUpdate {
	_u.mutation.SetAdminFlagged(v)
	return _u
}

// SetNillableAdminFlagged sets the "admin_flagged" field if the given value is not nil.
func (_u *EngagementUpdate) SetNillableAdminFlagged(v *bool) *EngagementUpdate {
	if v != nil {
		_u.SetAdminFlagged(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EngagementUpdate) SetUpdatedAt(v time.Time) *EngagementUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetMatch sets the "match" edge to the Match entity.
func (_u *EngagementUpdate) SetMatch(v *Match) *EngagementUpdate {
	return _u.SetMatchID(v.ID)
}

// AddEventIDs adds the "events" edge to the EngagementEvent entity by IDs.
func (_u *EngagementUpdate) AddEventIDs(ids ...string) *EngagementUpdate {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the EngagementEvent entity.
func (_u *EngagementUpdate) AddEvents(v ...*EngagementEvent) *EngagementUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// AddAgreementIDs adds the "agreements" edge to the EngagementAgreement entity by IDs.
func (_u *EngagementUpdate) AddAgreementIDs(ids ...string) *EngagementUpdate {
	_u.mutation.AddAgreementIDs(ids...)
	return _u
}

// AddAgreements adds the "agreements" edges to the EngagementAgreement entity.
func (_u *EngagementUpdate) AddAgreements(v ...*EngagementAgreement) *EngagementUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAgreementIDs(ids...)
}

// AddPaymentIDs adds the "payments" edge to the PaymentRecord entity by IDs.
func (_u *EngagementUpdate) AddPaymentIDs(ids ...string) *EngagementUpdate {
	_u.mutation.AddPaymentIDs(ids...)
	return _u
}

// AddPayments adds the "payments" edges to the PaymentRecord entity.
func (_u *EngagementUpdate) AddPayments(v ...*PaymentRecord) *EngagementUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPaymentIDs(ids...)
}

// AddUploadTokenIDs adds the "upload_tokens" edge to the UploadToken entity by IDs.
func (_u *EngagementUpdate) AddUploadTokenIDs(ids ...string) *EngagementUpdate {
	_u.mutation.AddUploadTokenIDs(ids...)
	return _u
}

// AddUploadTokens adds the "upload_tokens" edges to the UploadToken entity.
func (_u *EngagementUpdate) AddUploadTokens(v ...*UploadToken) *EngagementUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddUploadTokenIDs(ids...)
}

// Mutation returns the EngagementMutation object of the builder.
func (_u *EngagementUpdate) Mutation() *EngagementMutation {
	return _u.mutation
}

// ClearMatch clears the "match" edge to the Match entity.
func (_u *EngagementUpdate) ClearMatch() *EngagementUpdate {
	_u.mutation.ClearMatch()
	return _u
}

// ClearEvents clears all "events" edges to the EngagementEvent entity.
func (_u *EngagementUpdate) ClearEvents() *EngagementUpdate {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to EngagementEvent entities by IDs.
func (_u *EngagementUpdate) RemoveEventIDs(ids ...string) *EngagementUpdate {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to EngagementEvent entities.
func (_u *EngagementUpdate) RemoveEvents(v ...*EngagementEvent) *EngagementUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// ClearAgreements clears all "agreements" edges to the EngagementAgreement entity.
func (_u *EngagementUpdate) ClearAgreements() *EngagementUpdate {
	_u.mutation.ClearAgreements()
	return _u
}

// RemoveAgreementIDs removes the "agreements" edge to EngagementAgreement entities by IDs.
func (_u *EngagementUpdate) RemoveAgreementIDs(ids ...string) *EngagementUpdate {
	_u.mutation.RemoveAgreementIDs(ids...)
	return _u
}

// RemoveAgreements removes "agreements" edges to EngagementAgreement entities.
func (_u *EngagementUpdate) RemoveAgreements(v ...*EngagementAgreement) *EngagementUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAgreementIDs(ids...)
}

// ClearPayments clears all "payments" edges to the PaymentRecord entity.
func (_u *EngagementUpdate) ClearPayments() *EngagementUpdate {
	_u.mutation.ClearPayments()
	return _u
}

// RemovePaymentIDs removes the "payments" edge to PaymentRecord entities by IDs.
func (_u *EngagementUpdate) RemovePaymentIDs(ids ...string) *EngagementUpdate {
	_u.mutation.RemovePaymentIDs(ids...)
	return _u
}

// RemovePayments removes "payments" edges to PaymentRecord entities.
func (_u *EngagementUpdate) RemovePayments(v ...*PaymentRecord) *EngagementUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePaymentIDs(ids...)
}

// ClearUploadTokens clears all "upload_tokens" edges to the UploadToken entity.
func (_u *EngagementUpdate) ClearUploadTokens() *EngagementUpdate {
	_u.mutation.ClearUploadTokens()
	return _u
}

// RemoveUploadTokenIDs removes the "upload_tokens" edge to UploadToken entities by IDs.
func (_u *EngagementUpdate) RemoveUploadTokenIDs(ids ...string) *EngagementUpdate {
	_u.mutation.RemoveUploadTokenIDs(ids...)
	return _u
}

// RemoveUploadTokens removes "upload_tokens" edges to UploadToken entities.
func (_u *EngagementUpdate) RemoveUploadTokens(v ...*UploadToken) *EngagementUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveUploadTokenIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EngagementUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EngagementUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EngagementUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EngagementUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EngagementUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := engagement.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EngagementUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := engagement.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Engagement.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Tier(); ok {
		if err := engagement.TierValidator(v); err != nil {
			return &ValidationError{Name: "tier", err: fmt.Errorf(`ent: validator failed for field "Engagement.tier": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Path(); ok {
		if err := engagement.PathValidator(v); err != nil {
			return &ValidationError{Name: "path", err: fmt.Errorf(`ent: validator failed for field "Engagement.path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DeclinedBy(); ok {
		if err := engagement.DeclinedByValidator(v); err != nil {
			return &ValidationError{Name: "declined_by", err: fmt.Errorf(`ent: validator failed for field "Engagement.declined_by": %w`, err)}
		}
	}
	if _u.mutation.MatchCleared() && len(_u.mutation.MatchIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Engagement.match"`)
	}
	return nil
}

func (_u *EngagementUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(engagement.Table, engagement.Columns, sqlgraph.NewFieldSpec(engagement.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.BuyerNeedID(); ok {
		_spec.SetField(engagement.FieldBuyerNeedID, field.TypeString, value)
	}
	if value, ok := _u.mutation.WarehouseID(); ok {
		_spec.SetField(engagement.FieldWarehouseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.BuyerID(); ok {
		_spec.SetField(engagement.FieldBuyerID, field.TypeString, value)
	}
	if _u.mutation.BuyerIDCleared() {
		_spec.ClearField(engagement.FieldBuyerID, field.TypeString)
	}
	if value, ok := _u.mutation.CompanyID(); ok {
		_spec.SetField(engagement.FieldCompanyID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(engagement.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Tier(); ok {
		_spec.SetField(engagement.FieldTier, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Path(); ok {
		_spec.SetField(engagement.FieldPath, field.TypeEnum, value)
	}
	if _u.mutation.PathCleared() {
		_spec.ClearField(engagement.FieldPath, field.TypeEnum)
	}
	if value, ok := _u.mutation.DealPingSentAt(); ok {
		_spec.SetField(engagement.FieldDealPingSentAt, field.TypeTime, value)
	}
	if _u.mutation.DealPingSentAtCleared() {
		_spec.ClearField(engagement.FieldDealPingSentAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DealPingExpiresAt(); ok {
		_spec.SetField(engagement.FieldDealPingExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.DealPingExpiresAtCleared() {
		_spec.ClearField(engagement.FieldDealPingExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.BuyerAcceptedAt(); ok {
		_spec.SetField(engagement.FieldBuyerAcceptedAt, field.TypeTime, value)
	}
	if _u.mutation.BuyerAcceptedAtCleared() {
		_spec.ClearField(engagement.FieldBuyerAcceptedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ContactCapturedAt(); ok {
		_spec.SetField(engagement.FieldContactCapturedAt, field.TypeTime, value)
	}
	if _u.mutation.ContactCapturedAtCleared() {
		_spec.ClearField(engagement.FieldContactCapturedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.AccountCreatedAt(); ok {
		_spec.SetField(engagement.FieldAccountCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.AccountCreatedAtCleared() {
		_spec.ClearField(engagement.FieldAccountCreatedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.GuaranteeSignedAt(); ok {
		_spec.SetField(engagement.FieldGuaranteeSignedAt, field.TypeTime, value)
	}
	if _u.mutation.GuaranteeSignedAtCleared() {
		_spec.ClearField(engagement.FieldGuaranteeSignedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.AddressRevealedAt(); ok {
		_spec.SetField(engagement.FieldAddressRevealedAt, field.TypeTime, value)
	}
	if _u.mutation.AddressRevealedAtCleared() {
		_spec.ClearField(engagement.FieldAddressRevealedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.TourRequestedAt(); ok {
		_spec.SetField(engagement.FieldTourRequestedAt, field.TypeTime, value)
	}
	if _u.mutation.TourRequestedAtCleared() {
		_spec.ClearField(engagement.FieldTourRequestedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.TourConfirmedAt(); ok {
		_spec.SetField(engagement.FieldTourConfirmedAt, field.TypeTime, value)
	}
	if _u.mutation.TourConfirmedAtCleared() {
		_spec.ClearField(engagement.FieldTourConfirmedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.TourScheduledFor(); ok {
		_spec.SetField(engagement.FieldTourScheduledFor, field.TypeTime, value)
	}
	if _u.mutation.TourScheduledForCleared() {
		_spec.ClearField(engagement.FieldTourScheduledFor, field.TypeTime)
	}
	if value, ok := _u.mutation.TourCompletedAt(); ok {
		_spec.SetField(engagement.FieldTourCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.TourCompletedAtCleared() {
		_spec.ClearField(engagement.FieldTourCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.TourRescheduleCount(); ok {
		_spec.SetField(engagement.FieldTourRescheduleCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTourRescheduleCount(); ok {
		_spec.AddField(engagement.FieldTourRescheduleCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.InstantBookRequestedAt(); ok {
		_spec.SetField(engagement.FieldInstantBookRequestedAt, field.TypeTime, value)
	}
	if _u.mutation.InstantBookRequestedAtCleared() {
		_spec.ClearField(engagement.FieldInstantBookRequestedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.InstantBookConfirmedAt(); ok {
		_spec.SetField(engagement.FieldInstantBookConfirmedAt, field.TypeTime, value)
	}
	if _u.mutation.InstantBookConfirmedAtCleared() {
		_spec.ClearField(engagement.FieldInstantBookConfirmedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.BuyerConfirmedAt(); ok {
		_spec.SetField(engagement.FieldBuyerConfirmedAt, field.TypeTime, value)
	}
	if _u.mutation.BuyerConfirmedAtCleared() {
		_spec.ClearField(engagement.FieldBuyerConfirmedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.AgreementSentAt(); ok {
		_spec.SetField(engagement.FieldAgreementSentAt, field.TypeTime, value)
	}
	if _u.mutation.AgreementSentAtCleared() {
		_spec.ClearField(engagement.FieldAgreementSentAt, field.TypeTime)
	}
	if value, ok := _u.mutation.AgreementSignedAt(); ok {
		_spec.SetField(engagement.FieldAgreementSignedAt, field.TypeTime, value)
	}
	if _u.mutation.AgreementSignedAtCleared() {
		_spec.ClearField(engagement.FieldAgreementSignedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LeaseStartDate(); ok {
		_spec.SetField(engagement.FieldLeaseStartDate, field.TypeTime, value)
	}
	if _u.mutation.LeaseStartDateCleared() {
		_spec.ClearField(engagement.FieldLeaseStartDate, field.TypeTime)
	}
	if value, ok := _u.mutation.LeaseEndDate(); ok {
		_spec.SetField(engagement.FieldLeaseEndDate, field.TypeTime, value)
	}
	if _u.mutation.LeaseEndDateCleared() {
		_spec.ClearField(engagement.FieldLeaseEndDate, field.TypeTime)
	}
	if value, ok := _u.mutation.ActivatedAt(); ok {
		_spec.SetField(engagement.FieldActivatedAt, field.TypeTime, value)
	}
	if _u.mutation.ActivatedAtCleared() {
		_spec.ClearField(engagement.FieldActivatedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(engagement.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(engagement.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.InsuranceUploaded(); ok {
		_spec.SetField(engagement.FieldInsuranceUploaded, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CompanyDocsUploaded(); ok {
		_spec.SetField(engagement.FieldCompanyDocsUploaded, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PaymentMethodAdded(); ok {
		_spec.SetField(engagement.FieldPaymentMethodAdded, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Sqft(); ok {
		_spec.SetField(engagement.FieldSqft, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSqft(); ok {
		_spec.AddField(engagement.FieldSqft, field.TypeInt, value)
	}
	if _u.mutation.SqftCleared() {
		_spec.ClearField(engagement.FieldSqft, field.TypeInt)
	}
	if value, ok := _u.mutation.SupplierRate(); ok {
		_spec.SetField(engagement.FieldSupplierRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSupplierRate(); ok {
		_spec.AddField(engagement.FieldSupplierRate, field.TypeFloat64, value)
	}
	if _u.mutation.SupplierRateCleared() {
		_spec.ClearField(engagement.FieldSupplierRate, field.TypeFloat64)
	}
	if value, ok := _u.mutation.BuyerRate(); ok {
		_spec.SetField(engagement.FieldBuyerRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBuyerRate(); ok {
		_spec.AddField(engagement.FieldBuyerRate, field.TypeFloat64, value)
	}
	if _u.mutation.BuyerRateCleared() {
		_spec.ClearField(engagement.FieldBuyerRate, field.TypeFloat64)
	}
	if value, ok := _u.mutation.MonthlySupplierPayout(); ok {
		_spec.SetField(engagement.FieldMonthlySupplierPayout, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMonthlySupplierPayout(); ok {
		_spec.AddField(engagement.FieldMonthlySupplierPayout, field.TypeFloat64, value)
	}
	if _u.mutation.MonthlySupplierPayoutCleared() {
		_spec.ClearField(engagement.FieldMonthlySupplierPayout, field.TypeFloat64)
	}
	if value, ok := _u.mutation.MonthlyBuyerTotal(); ok {
		_spec.SetField(engagement.FieldMonthlyBuyerTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMonthlyBuyerTotal(); ok {
		_spec.AddField(engagement.FieldMonthlyBuyerTotal, field.TypeFloat64, value)
	}
	if _u.mutation.MonthlyBuyerTotalCleared() {
		_spec.ClearField(engagement.FieldMonthlyBuyerTotal, field.TypeFloat64)
	}
	if value, ok := _u.mutation.DeclinedBy(); ok {
		_spec.SetField(engagement.FieldDeclinedBy, field.TypeEnum, value)
	}
	if _u.mutation.DeclinedByCleared() {
		_spec.ClearField(engagement.FieldDeclinedBy, field.TypeEnum)
	}
	if value, ok := _u.mutation.DeclineReason(); ok {
		_spec.SetField(engagement.FieldDeclineReason, field.TypeString, value)
	}
	if _u.mutation.DeclineReasonCleared() {
		_spec.ClearField(engagement.FieldDeclineReason, field.TypeString)
	}
	if value, ok := _u.mutation.CancelReason(); ok {
		_spec.SetField(engagement.FieldCancelReason, field.TypeString, value)
	}
	if _u.mutation.CancelReasonCleared() {
		_spec.ClearField(engagement.FieldCancelReason, field.TypeString)
	}
	if value, ok := _u.mutation.DecisionTimerPausedAt(); ok {
		_spec.SetField(engagement.FieldDecisionTimerPausedAt, field.TypeTime, value)
	}
	if _u.mutation.DecisionTimerPausedAtCleared() {
		_spec.ClearField(engagement.FieldDecisionTimerPausedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.AdminFlagged(); ok {
		_spec.SetField(engagement.FieldAdminFlagged, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(engagement.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.MatchCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MatchIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AgreementsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAgreementsIDs(); len(nodes) > 0 && !_u.mutation.AgreementsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgreementsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PaymentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPaymentsIDs(); len(nodes) > 0 && !_u.mutation.PaymentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PaymentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.UploadTokensCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedUploadTokensIDs(); len(nodes) > 0 && !_u.mutation.UploadTokensCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UploadTokensIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{engagement.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EngagementUpdateOne is the builder for updating a single Engagement entity.
type EngagementUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EngagementMutation
}

// SetMatchID sets the "match_id" field.
func (_u *EngagementUpdateOne) SetMatchID(v string) *EngagementUpdateOne {
	_u.mutation.SetMatchID(v)
	return _u
}

// SetNillableMatchID sets the "match_id" field if the given value is not nil.
func (_u *EngagementUpdateOne) SetNillableMatchID(v *string) *EngagementUpdateOne {
	if v != nil {
		_u.SetMatchID(*v)
	}
	return _u
}

// SetBuyerNeedID sets the "buyer_need_id" field.
func (_u *EngagementUpdateOne) SetBuyerNeedID(v string) *EngagementUpdateOne {
	_u.mutation.SetBuyerNeedID(v)
	return _u
}

// SetNillableBuyerNeedID sets the "buyer_need_id" field if the given value is not nil.
func (_u *EngagementUpdateOne) SetNillableBuyerNeedID(v *string) *EngagementUpdateOne {
	if v != nil {
		_u.SetBuyerNeedID(*v)
	}
	return _u
}

// SetWarehouseID sets the "warehouse_id" field.
func (_u *EngagementUpdateOne) SetWarehouseID(v string) *EngagementUpdateOne {
	_u.mutation.SetWarehouseID(v)
	return _u
}

// SetNillableWarehouseID sets the "warehouse_id" field if the given value is not nil.
func (_u *EngagementUpdateOne) SetNillableWarehouseID(v *string) *EngagementUpdateOne {
	if v != nil {
		_u.SetWarehouseID(*v)
	}
	return _u
}

// SetBuyerID sets the "buyer_id" field.
func (_u *EngagementUpdateOne) SetBuyerID(v string) *EngagementUpdateOne {
	_u.mutation.SetBuyerID(v)
	return _u
}

// SetNillableBuyerID sets the "buyer_id" field if the given value is not nil.
func (_u *EngagementUpdateOne) SetNillableBuyerID(v *string) *EngagementUpdateOne {
	if v != nil {
		_u.SetBuyerID(*v)
	}
	return _u
}

// ClearBuyerID clears the value of the "buyer_id" field.
func (_u *EngagementUpdateOne) ClearBuyerID() *EngagementUpdateOne {
	_u.mutation.ClearBuyerID()
	return _u
}

// SetCompanyID sets the "company_id" field.
func (_u *EngagementUpdateOne) SetCompanyID(v string) *EngagementUpdateOne {
	_u.mutation.SetCompanyID(v)
	return _u
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_u *EngagementUpdateOne) SetNillableCompanyID(v *string) *EngagementUpdateOne {
	if v != nil {
		_u.SetCompanyID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *EngagementUpdateOne) SetStatus(v engagement.Status) *EngagementUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *EngagementUpdateOne) SetNillableStatus(v *engagement.Status) *EngagementUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTier sets the "tier" field.
func (_u *EngagementUpdateOne) SetTier(v engagement.Tier) *EngagementUpdateOne {
	_u.mutation.SetTier(v)
	return _u
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_u *EngagementUpdateOne) SetNillableTier(v *engagement.Tier) *EngagementUpdateOne {
	if v != nil {
		_u.SetTier(*v)
	}
	return _u
}

// SetPath sets the "path" field.
func (_u *EngagementUpdateOne) SetPath(v engagement.Path) *EngagementUpdateOne {
	_u.mutation.SetPath(v)
	return _u
}

// SetNillablePath sets the "path" field if the given value is not nil.
func (_u *EngagementUpdateOne) SetNillablePath(v *engagement.Path) *EngagementUpdateOne {
	if v != nil {
		_u.SetPath(*v)
	}
	return _u
}

// ClearPath clears the value of the "path" field.
func (_u *EngagementUpdateOne) ClearPath() *EngagementUpdateOne {
	_u.mutation.ClearPath()
	return _u
}

// SetDealPingSentAt sets the "deal_ping_sent_at" field.
func (_u *EngagementUpdateOne) SetDealPingSentAt(v time.Time) *EngagementUpdateOne {
	_u.mutation.SetDealPingSentAt(v)
	return _u
}

// SetNillableDealPingSentAt sets the "deal_ping_sent_at" field if the given value is not nil.
func (_u *EngagementUpdateOne) SetNillableDealPingSentAt(v *time.Time) *EngagementUpdateOne {
	if v != nil {
		_u.SetDealPingSentAt(*v)
	}
	return _u
}

// ClearDealPingSentAt clears the value of the "deal_ping_sent_at" field.
func (_u *EngagementUpdateOne) ClearDealPingSentAt() *EngagementUpdateOne {
	_u.mutation.ClearDealPingSentAt()
	return _u
}

// SetDealPingExpiresAt sets the "deal_ping_expires_at" field.
func (_u *EngagementUpdateOne) SetDealPingExpiresAt(v time.Time) *EngagementUpdateOne {
	_u.mutation.SetDealPingExpiresAt(v)
	return _u
}

// SetNillableDealPingExpiresAt sets the "deal_ping_expires_at" field if the given value is not nil.
func (_u *EngagementUpdateOne) SetNillableDealPingExpiresAt(v *time.Time) *EngagementUpdateOne {
	if v != nil {
		_u.SetDealPingExpiresAt(*v)
	}
	return _u
}

// ClearDealPingExpiresAt clears the value of the "deal_ping_expires_at" field.
func (_u *EngagementUpdateOne) ClearDealPingExpiresAt() *EngagementUpdateOne {
	_u.mutation.ClearDealPingExpiresAt()
	return _u
}

// SetBuyerAcceptedAt sets the "buyer_accepted_at" field.
func (_u *EngagementUpdateOne) SetBuyerAcceptedAt(v time.Time) *EngagementUpdateOne {
	_u.mutation.SetBuyerAcceptedAt(v)
	return _u
}

// SetNillableBuyerAcceptedAt sets the "buyer_accepted_at" field if the given value is not nil.
func (_u *EngagementUpdateOne) SetNillableBuyerAcceptedAt(v *time.Time) *EngagementUpdateOne {
	if v != nil {
		_u.SetBuyerAcceptedAt(*v)
	}
	return _u
}

// ClearBuyerAcceptedAt clears the value of the "buyer_accepted_at" field.
func (_u *EngagementUpdateOne) ClearBuyerAcceptedAt() *EngagementUpdateOne {
	_u.mutation.ClearBuyerAcceptedAt()
	return _u
}

// SetContactCapturedAt sets the "contact_captured_at" field.
func (_u *EngagementUpdateOne) SetContactCapturedAt(v time.Time) *EngagementUpdateOne {
	_u.mutation.SetContactCapturedAt(v)
	return _u
}

// SetNillableContactCapturedAt sets the "contact_captured_at" field if the given value is not nil.
func (_u *EngagementUpdateOne) SetNillableContactCapturedAt(v *time.Time) *EngagementUpdateOne {
	if v != nil {
		_u.SetContactCapturedAt(*v)
	}
	return _u
}

// ClearContactCapturedAt clears the value of the "contact_captured_at" field.
func (_u *EngagementUpdateOne) ClearContactCapturedAt() *EngagementUpdateOne {
	_u.mutation.ClearContactCapturedAt()
	return _u
}

// SetAccountCreatedAt sets the "account_created_at" field.
func (_u *EngagementUpdateOne) SetAccountCreatedAt(v time.Time) *EngagementUpdateOne {
	_u.mutation.SetAccountCreatedAt(v)
	return _u
}

// SetNillableAccountCreatedAt sets the "account_created_at" field if the given value is not nil.
func (_u *EngagementUpdateOne) SetNillableAccountCreatedAt(v *time.Time) *EngagementUpdateOne {
	if v != nil {
		_u.SetAccountCreatedAt(*v)
	}
	return _u
}

// ClearAccountCreatedAt clears the value of the "account_created_at" field.
func (_u *EngagementUpdateOne) ClearAccountCreatedAt() *EngagementUpdateOne {
	_u.mutation.ClearAccountCreatedAt()
	return _u
}

// SetGuaranteeSignedAt sets the "guarantee_signed_at" field.
func (_u *EngagementUpdateOne) SetGuaranteeSignedAt(v time.Time) *EngagementUpdateOne {
	_u.mutation.SetGuaranteeSignedAt(v)
	return _u
}

// SetNillableGuaranteeSignedAt sets the "guarantee_signed_at" field if the given value is not nil.
func (_u *EngagementUpdateOne) SetNillableGuaranteeSignedAt(v *time.Time) *EngagementUpdateOne {
	if v != nil {
		_u.SetGuaranteeSignedAt(*v)
	}
	return _u
}

// ClearGuaranteeSignedAt clears the value of the "guarantee_signed_at" field.
func (_u *EngagementUpdateOne) ClearGuaranteeSignedAt() *EngagementUpdateOne {
	_u.mutation.ClearGuaranteeSignedAt()
	return _u
}

// SetAddressRevealedAt sets the "address_revealed_at" field.
func (_u *EngagementUpdateOne) SetAddressRevealedAt(v time.Time) *EngagementUpdateOne {
	_u.mutation.SetAddressRevealedAt(v)
	return _u
}

// SetNillableAddressRevealedAt sets the "address_revealed_at" field if the given value is not nil.
func (_u *EngagementUpdateOne) SetNillableAddressRevealedAt(v *time.Time) *EngagementUpdateOne {
	if v != nil {
		_u.SetAddressRevealedAt(*v)
	}
	return _u
}

// ClearAddressRevealedAt clears the value of the "address_revealed_at" field.
func (_u *EngagementUpdateOne) ClearAddressRevealedAt() *EngagementUpdateOne {
	_u.mutation.ClearAddressRevealedAt()
	return _u
}

// SetTourRequestedAt sets the "tour_requested_at" field.
func (_u *EngagementUpdateOne) SetTourRequestedAt(v time.Time) *EngagementUpdateOne {
	_u.mutation.SetTourRequestedAt(v)
	return _u
}

// SetNillableTourRequestedAt sets the "tour_requested_at" field if the given value is not nil.
func (_u *EngagementUpdateOne) SetNillableTourRequestedAt(v *time.Time) *EngagementUpdateOne {
	if v != nil {
		_u.SetTourRequestedAt(*v)
	}
	return _u
}

// ClearTourRequestedAt clears the value of the "tour_requested_at" field.
func (_u *EngagementUpdateOne) ClearTourRequestedAt() *EngagementUpdateOne {
	_u.mutation.ClearTourRequestedAt()
	return _u
}

// SetTourConfirmedAt sets the "tour_confirmed_at" field.
func (_u *EngagementUpdateOne) SetTourConfirmedAt(v time.Time) *EngagementUpdateOne {
	_u.mutation.SetTourConfirmedAt(v)
	return _u
}

// SetNillableTourConfirmedAt sets the "tour_confirmed_at" field if the given value is not nil.
func (_u *EngagementUpdateOne) SetNillableTourConfirmedAt(v *time.Time) *EngagementUpdateOne {
	if v != nil {
		_u.SetTourConfirmedAt(*v)
	}
	return _u
}

// ClearTourConfirmedAt clears the value of the "tour_confirmed_at" field.
func (_u *EngagementUpdateOne) ClearTourConfirmedAt() *EngagementUpdateOne {
	_u.mutation.ClearTourConfirmedAt()
	return _u
}

// SetTourScheduledFor sets the "tour_scheduled_for" field.
func (_u *EngagementUpdateOne) SetTourScheduledFor(v time.Time) *EngagementUpdateOne {
	_u.mutation.SetTourScheduledFor(v)
	return _u
}

// SetNillableTourScheduledFor sets the "tour_scheduled_for" field if the given value is not nil.
func (_u *EngagementUpdateOne) SetNillableTourScheduledFor(v *time.Time) *EngagementUpdateOne {
	if v != nil {
		_u.SetTourScheduledFor(*v)
	}
	return _u
}

// ClearTourScheduledFor clears the value of the "tour_scheduled_for" field.
func (_u *EngagementUpdateOne) ClearTourScheduledFor() *EngagementUpdateOne {
	_u.mutation.ClearTourScheduledFor()
	return _u
}

// SetTourCompletedAt sets the "tour_completed_at" field.
func (_u *EngagementUpdateOne) SetTourCompletedAt(v time.Time) *EngagementUpdateOne {
	_u.mutation.SetTourCompletedAt(v)
	return _u
}

// SetNillableTourCompletedAt sets the "tour_completed_at" field if the given value is not nil.
func (_u *EngagementUpdateOne) SetNillableTourCompletedAt(v *time.Time) *EngagementUpdateOne {
	if v != nil {
		_u.SetTourCompletedAt(*v)
	}
	return _u
}

// ClearTourCompletedAt clears the value of the "tour_completed_at" field.
func (_u *EngagementUpdateOne) ClearTourCompletedAt() *EngagementUpdateOne {
	_u.mutation.ClearTourCompletedAt()
	return _u
}

// SetTourRescheduleCount sets the "tour_reschedule_count" field.
func (_u *EngagementUpdateOne) SetTourRescheduleCount(v int) *EngagementUpdateOne {
	_u.mutation.ResetTourRescheduleCount()
	_u.mutation.SetTourRescheduleCount(v)
	return _u
}

// SetNillableTourRescheduleCount sets the "tour_reschedule_count" field if the given value is not nil.
func (_u *EngagementUpdateOne) SetNillableTourRescheduleCount(v *int) *EngagementUpdateOne {
	if v != nil {
		_u.SetTourRescheduleCount(*v)
	}
	return _u
}

// AddTourRescheduleCount adds value to the "tour_reschedule_count" field.
func (_u *EngagementUpdateOne) AddTourRescheduleCount(v int) *EngagementUpdateOne {
	_u.mutation.AddTourRescheduleCount(v)
	return _u
}

// SetInstantBookRequestedAt sets the "instant_book_requested_at" field.
func (_u *EngagementUpdateOne) SetInstantBookRequestedAt(v time.Time) *EngagementUpdateOne {
	_u.mutation.SetInstantBookRequestedAt(v)
	return _u
}

// SetNillableInstantBookRequestedAt sets the "instant_book_requested_at" field if the given value is not nil.
func (_u *EngagementUpdateOne) SetNillableInstantBookRequestedAt(v *time.Time) *EngagementUpdateOne {
	if v != nil {
		_u.SetInstantBookRequestedAt(*v)
	}
	return _u
}

// ClearInstantBookRequestedAt clears the value of the "instant_book_requested_at" field.
func (_u *EngagementUpdateOne) ClearInstantBookRequestedAt() *EngagementUpdateOne {
	_u.mutation.ClearInstantBookRequestedAt()
	return _u
}

// SetInstantBookConfirmedAt sets the "instant_book_confirmed_at" field.
func (_u *EngagementUpdateOne) SetInstantBookConfirmedAt(v time.Time) *EngagementUpdateOne {
	_u.mutation.SetInstantBookConfirmedAt(v)
	return _u
}

// SetNillableInstantBookConfirmedAt sets the "instant_book_confirmed_at" field if the given value is not nil.
func (_u *EngagementUpdateOne) SetNillableInstantBookConfirmedAt(v *time.Time) *EngagementUpdateOne {
	if v != nil {
		_u.SetInstantBookConfirmedAt(*v)
	}
	return _u
}

// ClearInstantBookConfirmedAt clears the value of the "instant_book_confirmed_at" field.
func (_u *EngagementUpdateOne) ClearInstantBookConfirmedAt() *EngagementUpdateOne {
	_u.mutation.ClearInstantBookConfirmedAt()
	return _u
}

// SetBuyerConfirmedAt sets the "buyer_confirmed_at" field.
func (_u *EngagementUpdateOne) SetBuyerConfirmedAt(v time.Time) *EngagementUpdateOne {
	_u.mutation.SetBuyerConfirmedAt(v)
	return _u
}

// SetNillableBuyerConfirmedAt sets the "buyer_confirmed_at" field if the given value is not nil.
func (_u *EngagementUpdateOne) SetNillableBuyerConfirmedAt(v *time.Time) *EngagementUpdateOne {
	if v != nil {
		_u.SetBuyerConfirmedAt(*v)
	}
	return _u
}

// ClearBuyerConfirmedAt clears the value of the "buyer_confirmed_at" field.
func (_u *EngagementUpdateOne) ClearBuyerConfirmedAt() *EngagementUpdateOne {
	_u.mutation.ClearBuyerConfirmedAt()
	return _u
}

// SetAgreementSentAt sets the "agreement_sent_at" field.
func (_u *EngagementUpdateOne) SetAgreementSentAt(v time.Time) *EngagementUpdateOne {
	_u.mutation.SetAgreementSentAt(v)
	return _u
}

// SetNillableAgreementSentAt sets the "agreement_sent_at" field if the given value is not nil.
func (_u *EngagementUpdateOne) SetNillableAgreementSentAt(v *time.Time) *EngagementUpdateOne {
	if v != nil {
		_u.SetAgreementSentAt(*v)
	}
	return _u
}

// ClearAgreementSentAt clears the value of the "agreement_sent_at" field.
func (_u *EngagementUpdateOne) ClearAgreementSentAt() *EngagementUpdateOne {
	_u.mutation.ClearAgreementSentAt()
	return _u
}

// SetAgreementSignedAt sets the "agreement_signed_at" field.
func (_u *EngagementUpdateOne) SetAgreementSignedAt(v time.Time) *EngagementUpdateOne {
	_u.mutation.SetAgreementSignedAt(v)
	return _u
}

// SetNillableAgreementSignedAt sets the "agreement_signed_at" field if the given value is not nil.
func (_u *EngagementUpdateOne) SetNillableAgreementSignedAt(v *time.Time) *EngagementUpdateOne {
	if v != nil {
		_u.SetAgreementSignedAt(*v)
	}
	return _u
}

// ClearAgreementSignedAt clears the value of the "agreement_signed_at" field.
func (_u *EngagementUpdateOne) ClearAgreementSignedAt() *EngagementUpdateOne {
	_u.mutation.ClearAgreementSignedAt()
	return _u
}

// SetLeaseStartDate sets the "lease_start_date" field.
func (_u *EngagementUpdateOne) SetLeaseStartDate(v time.Time) *EngagementUpdateOne {
	_u.mutation.SetLeaseStartDate(v)
	return _u
}

// SetNillableLeaseStartDate sets the "lease_start_date" field if the given value is not nil.
func (_u *EngagementUpdateOne) SetNillableLeaseStartDate(v *time.Time) *EngagementUpdateOne {
	if v != nil {
		_u.SetLeaseStartDate(*v)
	}
	return _u
}

// ClearLeaseStartDate clears the value of the "lease_start_date" field.
func (_u *EngagementUpdateOne) ClearLeaseStartDate() *EngagementUpdateOne {
	_u.mutation.ClearLeaseStartDate()
	return _u
}

// SetLeaseEndDate sets the "lease_end_date" field.
func (_u *EngagementUpdateOne) SetLeaseEndDate(v time.Time) *EngagementUpdateOne {
	_u.mutation.SetLeaseEndDate(v)
	return _u
}

// SetNillableLeaseEndDate sets the "lease_end_date" field if the given value is not nil.
func (_u *EngagementUpdateOne) SetNillableLeaseEndDate(v *time.Time) *EngagementUpdateOne {
	if v != nil {
		_u.SetLeaseEndDate(*v)
	}
	return _u
}

// ClearLeaseEndDate clears the value of the "lease_end_date" field.
func (_u *EngagementUpdateOne) ClearLeaseEndDate() *EngagementUpdateOne {
	_u.mutation.ClearLeaseEndDate()
	return _u
}

// SetActivatedAt sets the "activated_at" field.
func (_u *EngagementUpdateOne) SetActivatedAt(v time.Time) *EngagementUpdateOne {
	_u.mutation.SetActivatedAt(v)
	return _u
}

// SetNillableActivatedAt sets the "activated_at" field if the given value is not nil.
func (_u *EngagementUpdateOne) SetNillableActivatedAt(v *time.Time) *EngagementUpdateOne {
	if v != nil {
		_u.SetActivatedAt(*v)
	}
	return _u
}

// ClearActivatedAt clears the value of the "activated_at" field.
func (_u *EngagementUpdateOne) ClearActivatedAt() *EngagementUpdateOne {
	_u.mutation.ClearActivatedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *EngagementUpdateOne) SetCompletedAt(v time.Time) *EngagementUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *EngagementUpdateOne) SetNillableCompletedAt(v *time.Time) *EngagementUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *EngagementUpdateOne) ClearCompletedAt() *EngagementUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetInsuranceUploaded sets the "insurance_uploaded" field.
func (_u *EngagementUpdateOne) SetInsuranceUploaded(v bool) *EngagementUpdateOne {
	_u.mutation.SetInsuranceUploaded(v)
	return _u
}

// SetNillableInsuranceUploaded sets the "insurance_uploaded" field if the given value is not nil.
func (_u *EngagementUpdateOne) SetNillableInsuranceUploaded(v *bool) *EngagementUpdateOne {
	if v != nil {
		_u.SetInsuranceUploaded(*v)
	}
	return _u
}

// SetCompanyDocsUploaded sets the "company_docs_uploaded" field.
func (_u *EngagementUpdateOne) SetCompanyDocsUploaded(v bool) *EngagementUpdateOne {
	_u.mutation.SetCompanyDocsUploaded(v)
	return _u
}

// SetNillableCompanyDocsUploaded sets the "company_docs_uploaded" field if the given value is not nil.
func (_u *EngagementUpdateOne) SetNillableCompanyDocsUploaded(v *bool) *EngagementUpdateOne {
	if v != nil {
		_u.SetCompanyDocsUploaded(*v)
	}
	return _u
}

// SetPaymentMethodAdded sets the "payment_method_added" field.
func (_u *EngagementUpdateOne) SetPaymentMethodAdded(v bool) *EngagementUpdateOne {
	_u.mutation.SetPaymentMethodAdded(v)
	return _u
}

// SetNillablePaymentMethodAdded sets the "payment_method_added" field if the given value is not nil.
func (_u *EngagementUpdateOne) SetNillablePaymentMethodAdded(v *bool) *EngagementUpdateOne {
	if v != nil {
		_u.SetPaymentMethodAdded(*v)
	}
	return _u
}

// SetSqft sets the "sqft" field.
func (_u *EngagementUpdateOne) SetSqft(v int) *EngagementUpdateOne {
	_u.mutation.ResetSqft()
	_u.mutation.SetSqft(v)
	return _u
}

// SetNillableSqft sets the "sqft" field if the given value is not nil.
func (_u *EngagementUpdateOne) SetNillableSqft(v *int) *EngagementUpdateOne {
	if v != nil {
		_u.SetSqft(*v)
	}
	return _u
}

// AddSqft adds value to the "sqft" field.
func (_u *EngagementUpdateOne) AddSqft(v int) *EngagementUpdateOne {
	_u.mutation.AddSqft(v)
	return _u
}

// ClearSqft clears the value of the "sqft" field.
func (_u *EngagementUpdateOne) ClearSqft() *EngagementUpdateOne {
	_u.mutation.ClearSqft()
	return _u
}

// SetSupplierRate sets the "supplier_rate" field.
func (_u *EngagementUpdateOne) SetSupplierRate(v float64) *EngagementUpdateOne {
	_u.mutation.ResetSupplierRate()
	_u.mutation.SetSupplierRate(v)
	return _u
}

// SetNillableSupplierRate sets the "supplier_rate" field if the given value is not nil.
func (_u *EngagementUpdateOne) SetNillableSupplierRate(v *float64) *EngagementUpdateOne {
	if v != nil {
		_u.SetSupplierRate(*v)
	}
	return _u
}

// AddSupplierRate adds value to the "supplier_rate" field.
func (_u *EngagementUpdateOne) AddSupplierRate(v float64) *EngagementUpdateOne {
	_u.mutation.AddSupplierRate(v)
	return _u
}

// ClearSupplierRate clears the value of the "supplier_rate" field.
func (_u *EngagementUpdateOne) ClearSupplierRate() *EngagementUpdateOne {
	_u.mutation.ClearSupplierRate()
	return _u
}

// SetBuyerRate sets the "buyer_rate" field.
func (_u *EngagementUpdateOne) SetBuyerRate(v float64) *EngagementUpdateOne {
	_u.mutation.ResetBuyerRate()
	_u.mutation.SetBuyerRate(v)
	return _u
}

// SetNillableBuyerRate sets the "buyer_rate" field if the given value is not nil.
func (_u *EngagementUpdateOne) SetNillableBuyerRate(v *float64) *EngagementUpdateOne {
	if v != nil {
		_u.SetBuyerRate(*v)
	}
	return _u
}

// AddBuyerRate adds value to the "buyer_rate" field.
func (_u *EngagementUpdateOne) AddBuyerRate(v float64) *EngagementUpdateOne {
	_u.mutation.AddBuyerRate(v)
	return _u
}

// ClearBuyerRate clears the value of the "buyer_rate" field.
func (_u *EngagementUpdateOne) ClearBuyerRate() *EngagementUpdateOne {
	_u.mutation.ClearBuyerRate()
	return _u
}

// SetMonthlySupplierPayout sets the "monthly_supplier_payout" field.
func (_u *EngagementUpdateOne) SetMonthlySupplierPayout(v float64) *EngagementUpdateOne {
	_u.mutation.ResetMonthlySupplierPayout()
	_u.mutation.SetMonthlySupplierPayout(v)
	return _u
}

// SetNillableMonthlySupplierPayout sets the "monthly_supplier_payout" field if the given value is not nil.
func (_u *EngagementUpdateOne) SetNillableMonthlySupplierPayout(v *float64) *EngagementUpdateOne {
	if v != nil {
		_u.SetMonthlySupplierPayout(*v)
	}
	return _u
}

// AddMonthlySupplierPayout adds value to the "monthly_supplier_payout" field.
func (_u *EngagementUpdateOne) AddMonthlySupplierPayout(v float64) *EngagementUpdateOne {
	_u.mutation.AddMonthlySupplierPayout(v)
	return _u
}

// ClearMonthlySupplierPayout clears the value of the "monthly_supplier_payout" field.
func (_u *EngagementUpdateOne) ClearMonthlySupplierPayout() *EngagementUpdateOne {
	_u.mutation.ClearMonthlySupplierPayout()
	return _u
}

// SetMonthlyBuyerTotal sets the "monthly_buyer_total" field.
func (_u *EngagementUpdateOne) SetMonthlyBuyerTotal(v float64) *EngagementUpdateOne {
	_u.mutation.ResetMonthlyBuyerTotal()
	_u.mutation.SetMonthlyBuyerTotal(v)
	return _u
}

// SetNillableMonthlyBuyerTotal sets the "monthly_buyer_total" field if the given value is not nil.
func (_u *EngagementUpdateOne) SetNillableMonthlyBuyerTotal(v *float64) *EngagementUpdateOne {
	if v != nil {
		_u.SetMonthlyBuyerTotal(*v)
	}
	return _u
}

// AddMonthlyBuyerTotal adds value to the "monthly_buyer_total" field.
func (_u *EngagementUpdateOne) AddMonthlyBuyerTotal(v float64) *EngagementUpdateOne {
	_u.mutation.AddMonthlyBuyerTotal(v)
	return _u
}

// ClearMonthlyBuyerTotal clears the value of the "monthly_buyer_total" field.
func (_u *EngagementUpdateOne) ClearMonthlyBuyerTotal() *EngagementUpdateOne {
	_u.mutation.ClearMonthlyBuyerTotal()
	return _u
}

// SetDeclinedBy sets the "declined_by" field.
func (_u *EngagementUpdateOne) SetDeclinedBy(v engagement.DeclinedBy) *EngagementUpdateOne {
	_u.mutation.SetDeclinedBy(v)
	return _u
}

// SetNillableDeclinedBy sets the "declined_by" field if the given value is not nil.
func (_u *EngagementUpdateOne) SetNillableDeclinedBy(v *engagement.DeclinedBy) *EngagementUpdateOne {
	if v != nil {
		_u.SetDeclinedBy(*v)
	}
	return _u
}

// ClearDeclinedBy clears the value of the "declined_by" field.
func (_u *EngagementUpdateOne) ClearDeclinedBy() *EngagementUpdateOne {
	_u.mutation.ClearDeclinedBy()
	return _u
}

// SetDeclineReason sets the "decline_reason" field.
func (_u *EngagementUpdateOne) SetDeclineReason(v string) *EngagementUpdateOne {
	_u.mutation.SetDeclineReason(v)
	return _u
}

// SetNillableDeclineReason sets the "decline_reason" field if the given value is not nil.
func (_u *EngagementUpdateOne) SetNillableDeclineReason(v *string) *EngagementUpdateOne {
	if v != nil {
		_u.SetDeclineReason(*v)
	}
	return _u
}

// ClearDeclineReason clears the value of the "decline_reason" field.
func (_u *EngagementUpdateOne) ClearDeclineReason() *EngagementUpdateOne {
	_u.mutation.ClearDeclineReason()
	return _u
}

// SetCancelReason sets the "cancel_reason" field.
func (_u *EngagementUpdateOne) SetCancelReason(v string) *EngagementUpdateOne {
	_u.mutation.SetCancelReason(v)
	return _u
}

// SetNillableCancelReason sets the "cancel_reason" field if the given value is not nil.
func (_u *EngagementUpdateOne) SetNillableCancelReason(v *string) *EngagementUpdateOne {
	if v != nil {
		_u.SetCancelReason(*v)
	}
	return _u
}

// ClearCancelReason clears the value of the "cancel_reason" field.
func (_u *EngagementUpdateOne) ClearCancelReason() *EngagementUpdateOne {
	_u.mutation.ClearCancelReason()
	return _u
}

// SetDecisionTimerPausedAt sets the "decision_timer_paused_at" field.
func (_u *EngagementUpdateOne) SetDecisionTimerPausedAt(v time.Time) *EngagementUpdateOne {
	_u.mutation.SetDecisionTimerPausedAt(v)
	return _u
}

// SetNillableDecisionTimerPausedAt sets the "decision_timer_paused_at" field if the given value is not nil.
func (_u *EngagementUpdateOne) SetNillableDecisionTimerPausedAt(v *time.Time) *EngagementUpdateOne {
	if v != nil {
		_u.SetDecisionTimerPausedAt(*v)
	}
	return _u
}

// ClearDecisionTimerPausedAt clears the value of the "decision_timer_paused_at" field.
func (_u *EngagementUpdateOne) ClearDecisionTimerPausedAt() *EngagementUpdateOne {
	_u.mutation.ClearDecisionTimerPausedAt()
	return _u
}

// SetAdminFlagged sets the "admin_flagged" field.
func (_u *EngagementUpdateOne) SetAdminFlagged(v bool) *EngagementUpdateOne {
	_u.mutation.SetAdminFlagged(v)
	return _u
}

// SetNillableAdminFlagged sets the "admin_flagged" field if the given value is not nil.
func (_u *EngagementUpdateOne) SetNillableAdminFlagged(v *bool) *EngagementUpdateOne {
	if v != nil {
		_u.SetAdminFlagged(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EngagementUpdateOne) SetUpdatedAt(v time.Time) *EngagementUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetMatch sets the "match" edge to the Match entity.
func (_u *EngagementUpdateOne) SetMatch(v *Match) *EngagementUpdateOne {
	return _u.SetMatchID(v.ID)
}

// AddEventIDs adds the "events" edge to the EngagementEvent entity by IDs.
func (_u *EngagementUpdateOne) AddEventIDs(ids ...string) *EngagementUpdateOne {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the EngagementEvent entity.
func (_u *EngagementUpdateOne) AddEvents(v ...*EngagementEvent) *EngagementUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// AddAgreementIDs adds the "agreements" edge to the EngagementAgreement entity by IDs.
func (_u *EngagementUpdateOne) AddAgreementIDs(ids ...string) *EngagementUpdateOne {
	_u.mutation.AddAgreementIDs(ids...)
	return _u
}

// AddAgreements adds the "agreements" edges to the EngagementAgreement entity.
func (_u *EngagementUpdateOne) AddAgreements(v ...*EngagementAgreement) *EngagementUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAgreementIDs(ids...)
}

// AddPaymentIDs adds the "payments" edge to the PaymentRecord entity by IDs.
func (_u *EngagementUpdateOne) AddPaymentIDs(ids ...string) *EngagementUpdateOne {
	_u.mutation.AddPaymentIDs(ids...)
	return _u
}

// AddPayments adds the "payments" edges to the PaymentRecord entity.
func (_u *EngagementUpdateOne) AddPayments(v ...*PaymentRecord) *EngagementUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPaymentIDs(ids...)
}

// AddUploadTokenIDs adds the "upload_tokens" edge to the UploadToken entity by IDs.
func (_u *EngagementUpdateOne) AddUploadTokenIDs(ids ...string) *EngagementUpdateOne {
	_u.mutation.AddUploadTokenIDs(ids...)
	return _u
}

// AddUploadTokens adds the "upload_tokens" edges to the UploadToken entity.
func (_u *EngagementUpdateOne) AddUploadTokens(v ...*UploadToken) *EngagementUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddUploadTokenIDs(ids...)
}

// Mutation returns the EngagementMutation object of the builder.
func (_u *EngagementUpdateOne) Mutation() *EngagementMutation {
	return _u.mutation
}

// ClearMatch clears the "match" edge to the Match entity.
func (_u *EngagementUpdateOne) ClearMatch() *EngagementUpdateOne {
	_u.mutation.ClearMatch()
	return _u
}

// ClearEvents clears all "events" edges to the EngagementEvent entity.
func (_u *EngagementUpdateOne) ClearEvents() *EngagementUpdateOne {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to EngagementEvent entities by IDs.
func (_u *EngagementUpdateOne) RemoveEventIDs(ids ...string) *EngagementUpdateOne {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to EngagementEvent entities.
func (_u *EngagementUpdateOne) RemoveEvents(v ...*EngagementEvent) *EngagementUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// ClearAgreements clears all "agreements" edges to the EngagementAgreement entity.
func (_u *EngagementUpdateOne) ClearAgreements() *EngagementUpdateOne {
	_u.mutation.ClearAgreements()
	return _u
}

// RemoveAgreementIDs removes the "agreements" edge to EngagementAgreement entities by IDs.
func (_u *EngagementUpdateOne) RemoveAgreementIDs(ids ...string) *EngagementUpdateOne {
	_u.mutation.RemoveAgreementIDs(ids...)
	return _u
}

// RemoveAgreements removes "agreements" edges to EngagementAgreement entities.
func (_u *EngagementUpdateOne) RemoveAgreements(v ...*EngagementAgreement) *EngagementUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAgreementIDs(ids...)
}

// ClearPayments clears all "payments" edges to the PaymentRecord entity.
func (_u *EngagementUpdateOne) ClearPayments() *EngagementUpdateOne {
	_u.mutation.ClearPayments()
	return _u
}

// RemovePaymentIDs removes the "payments" edge to PaymentRecord entities by IDs.
func (_u *EngagementUpdateOne) RemovePaymentIDs(ids ...string) *EngagementUpdateOne {
	_u.mutation.RemovePaymentIDs(ids...)
	return _u
}

// RemovePayments removes "payments" edges to PaymentRecord entities.
func (_u *EngagementUpdateOne) RemovePayments(v ...*PaymentRecord) *EngagementUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePaymentIDs(ids...)
}

// ClearUploadTokens clears all "upload_tokens" edges to the UploadToken entity.
func (_u *EngagementUpdateOne) ClearUploadTokens() *EngagementUpdateOne {
	_u.mutation.ClearUploadTokens()
	return _u
}

// RemoveUploadTokenIDs removes the "upload_tokens" edge to UploadToken entities by IDs.
func (_u *EngagementUpdateOne) RemoveUploadTokenIDs(ids ...string) *EngagementUpdateOne {
	_u.mutation.RemoveUploadTokenIDs(ids...)
	return _u
}

// RemoveUploadTokens removes "upload_tokens" edges to UploadToken entities.
func (_u *EngagementUpdateOne) RemoveUploadTokens(v ...*UploadToken) *EngagementUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveUploadTokenIDs(ids...)
}

// Where appends a list predicates to the EngagementUpdate builder.
func (_u *EngagementUpdateOne) Where(ps ...predicate.Engagement) *EngagementUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EngagementUpdateOne) Select(field string, fields ...string) *EngagementUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Engagement entity.
func (_u *EngagementUpdateOne) Save(ctx context.Context) (*Engagement, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EngagementUpdateOne) SaveX(ctx context.Context) *Engagement {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EngagementUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EngagementUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EngagementUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := engagement.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EngagementUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := engagement.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Engagement.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Tier(); ok {
		if err := engagement.TierValidator(v); err != nil {
			return &ValidationError{Name: "tier", err: fmt.Errorf(`ent: validator failed for field "Engagement.tier": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Path(); ok {
		if err := engagement.PathValidator(v); err != nil {
			return &ValidationError{Name: "path", err: fmt.Errorf(`ent: validator failed for field "Engagement.path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DeclinedBy(); ok {
		if err := engagement.DeclinedByValidator(v); err != nil {
			return &ValidationError{Name: "declined_by", err: fmt.Errorf(`ent: validator failed for field "Engagement.declined_by": %w`, err)}
		}
	}
	if _u.mutation.MatchCleared() && len(_u.mutation.MatchIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Engagement.match"`)
	}
	return nil
}

func (_u *EngagementUpdateOne) sqlSave(ctx context.Context) (_node *Engagement, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(engagement.Table, engagement.Columns, sqlgraph.NewFieldSpec(engagement.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Engagement.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, engagement.FieldID)
		for _, f := range fields {
			if !engagement.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != engagement.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.BuyerNeedID(); ok {
		_spec.SetField(engagement.FieldBuyerNeedID, field.TypeString, value)
	}
	if value, ok := _u.mutation.WarehouseID(); ok {
		_spec.SetField(engagement.FieldWarehouseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.BuyerID(); ok {
		_spec.SetField(engagement.FieldBuyerID, field.TypeString, value)
	}
	if _u.mutation.BuyerIDCleared() {
		_spec.ClearField(engagement.FieldBuyerID, field.TypeString)
	}
	if value, ok := _u.mutation.CompanyID(); ok {
		_spec.SetField(engagement.FieldCompanyID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(engagement.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Tier(); ok {
		_spec.SetField(engagement.FieldTier, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Path(); ok {
		_spec.SetField(engagement.FieldPath, field.TypeEnum, value)
	}
	if _u.mutation.PathCleared() {
		_spec.ClearField(engagement.FieldPath, field.TypeEnum)
	}
	if value, ok := _u.mutation.DealPingSentAt(); ok {
		_spec.SetField(engagement.FieldDealPingSentAt, field.TypeTime, value)
	}
	if _u.mutation.DealPingSentAtCleared() {
		_spec.ClearField(engagement.FieldDealPingSentAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DealPingExpiresAt(); ok {
		_spec.SetField(engagement.FieldDealPingExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.DealPingExpiresAtCleared() {
		_spec.ClearField(engagement.FieldDealPingExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.BuyerAcceptedAt(); ok {
		_spec.SetField(engagement.FieldBuyerAcceptedAt, field.TypeTime, value)
	}
	if _u.mutation.BuyerAcceptedAtCleared() {
		_spec.ClearField(engagement.FieldBuyerAcceptedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ContactCapturedAt(); ok {
		_spec.SetField(engagement.FieldContactCapturedAt, field.TypeTime, value)
	}
	if _u.mutation.ContactCapturedAtCleared() {
		_spec.ClearField(engagement.FieldContactCapturedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.AccountCreatedAt(); ok {
		_spec.SetField(engagement.FieldAccountCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.AccountCreatedAtCleared() {
		_spec.ClearField(engagement.FieldAccountCreatedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.GuaranteeSignedAt(); ok {
		_spec.SetField(engagement.FieldGuaranteeSignedAt, field.TypeTime, value)
	}
	if _u.mutation.GuaranteeSignedAtCleared() {
		_spec.ClearField(engagement.FieldGuaranteeSignedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.AddressRevealedAt(); ok {
		_spec.SetField(engagement.FieldAddressRevealedAt, field.TypeTime, value)
	}
	if _u.mutation.AddressRevealedAtCleared() {
		_spec.ClearField(engagement.FieldAddressRevealedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.TourRequestedAt(); ok {
		_spec.SetField(engagement.FieldTourRequestedAt, field.TypeTime, value)
	}
	if _u.mutation.TourRequestedAtCleared() {
		_spec.ClearField(engagement.FieldTourRequestedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.TourConfirmedAt(); ok {
		_spec.SetField(engagement.FieldTourConfirmedAt, field.TypeTime, value)
	}
	if _u.mutation.TourConfirmedAtCleared() {
		_spec.ClearField(engagement.FieldTourConfirmedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.TourScheduledFor(); ok {
		_spec.SetField(engagement.FieldTourScheduledFor, field.TypeTime, value)
	}
	if _u.mutation.TourScheduledForCleared() {
		_spec.ClearField(engagement.FieldTourScheduledFor, field.TypeTime)
	}
	if value, ok := _u.mutation.TourCompletedAt(); ok {
		_spec.SetField(engagement.FieldTourCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.TourCompletedAtCleared() {
		_spec.ClearField(engagement.FieldTourCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.TourRescheduleCount(); ok {
		_spec.SetField(engagement.FieldTourRescheduleCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTourRescheduleCount(); ok {
		_spec.AddField(engagement.FieldTourRescheduleCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.InstantBookRequestedAt(); ok {
		_spec.SetField(engagement.FieldInstantBookRequestedAt, field.TypeTime, value)
	}
	if _u.mutation.InstantBookRequestedAtCleared() {
		_spec.ClearField(engagement.FieldInstantBookRequestedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.InstantBookConfirmedAt(); ok {
		_spec.SetField(engagement.FieldInstantBookConfirmedAt, field.TypeTime, value)
	}
	if _u.mutation.InstantBookConfirmedAtCleared() {
		_spec.ClearField(engagement.FieldInstantBookConfirmedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.BuyerConfirmedAt(); ok {
		_spec.SetField(engagement.FieldBuyerConfirmedAt, field.TypeTime, value)
	}
	if _u.mutation.BuyerConfirmedAtCleared() {
		_spec.ClearField(engagement.FieldBuyerConfirmedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.AgreementSentAt(); ok {
		_spec.SetField(engagement.FieldAgreementSentAt, field.TypeTime, value)
	}
	if _u.mutation.AgreementSentAtCleared() {
		_spec.ClearField(engagement.FieldAgreementSentAt, field.TypeTime)
	}
	if value, ok := _u.mutation.AgreementSignedAt(); ok {
		_spec.SetField(engagement.FieldAgreementSignedAt, field.TypeTime, value)
	}
	if _u.mutation.AgreementSignedAtCleared() {
		_spec.ClearField(engagement.FieldAgreementSignedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LeaseStartDate(); ok {
		_spec.SetField(engagement.FieldLeaseStartDate, field.TypeTime, value)
	}
	if _u.mutation.LeaseStartDateCleared() {
		_spec.ClearField(engagement.FieldLeaseStartDate, field.TypeTime)
	}
	if value, ok := _u.mutation.LeaseEndDate(); ok {
		_spec.SetField(engagement.FieldLeaseEndDate, field.TypeTime, value)
	}
	if _u.mutation.LeaseEndDateCleared() {
		_spec.ClearField(engagement.FieldLeaseEndDate, field.TypeTime)
	}
	if value, ok := _u.mutation.ActivatedAt(); ok {
		_spec.SetField(engagement.FieldActivatedAt, field.TypeTime, value)
	}
	if _u.mutation.ActivatedAtCleared() {
		_spec.ClearField(engagement.FieldActivatedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(engagement.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(engagement.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.InsuranceUploaded(); ok {
		_spec.SetField(engagement.FieldInsuranceUploaded, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CompanyDocsUploaded(); ok {
		_spec.SetField(engagement.FieldCompanyDocsUploaded, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PaymentMethodAdded(); ok {
		_spec.SetField(engagement.FieldPaymentMethodAdded, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Sqft(); ok {
		_spec.SetField(engagement.FieldSqft, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSqft(); ok {
		_spec.AddField(engagement.FieldSqft, field.TypeInt, value)
	}
	if _u.mutation.SqftCleared() {
		_spec.ClearField(engagement.FieldSqft, field.TypeInt)
	}
	if value, ok := _u.mutation.SupplierRate(); ok {
		_spec.SetField(engagement.FieldSupplierRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSupplierRate(); ok {
		_spec.AddField(engagement.FieldSupplierRate, field.TypeFloat64, value)
	}
	if _u.mutation.SupplierRateCleared() {
		_spec.ClearField(engagement.FieldSupplierRate, field.TypeFloat64)
	}
	if value, ok := _u.mutation.BuyerRate(); ok {
		_spec.SetField(engagement.FieldBuyerRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBuyerRate(); ok {
		_spec.AddField(engagement.FieldBuyerRate, field.TypeFloat64, value)
	}
	if _u.mutation.BuyerRateCleared() {
		_spec.ClearField(engagement.FieldBuyerRate, field.TypeFloat64)
	}
	if value, ok := _u.mutation.MonthlySupplierPayout(); ok {
		_spec.SetField(engagement.FieldMonthlySupplierPayout, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMonthlySupplierPayout(); ok {
		_spec.AddField(engagement.FieldMonthlySupplierPayout, field.TypeFloat64, value)
	}
	if _u.mutation.MonthlySupplierPayoutCleared() {
		_spec.ClearField(engagement.FieldMonthlySupplierPayout, field.TypeFloat64)
	}
	if value, ok := _u.mutation.MonthlyBuyerTotal(); ok {
		_spec.SetField(engagement.FieldMonthlyBuyerTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMonthlyBuyerTotal(); ok {
		_spec.AddField(engagement.FieldMonthlyBuyerTotal, field.TypeFloat64, value)
	}
	if _u.mutation.MonthlyBuyerTotalCleared() {
		_spec.ClearField(engagement.FieldMonthlyBuyerTotal, field.TypeFloat64)
	}
	if value, ok := _u.mutation.DeclinedBy(); ok {
		_spec.SetField(engagement.FieldDeclinedBy, field.TypeEnum, value)
	}
	if _u.mutation.DeclinedByCleared() {
		_spec.ClearField(engagement.FieldDeclinedBy, field.TypeEnum)
	}
	if value, ok := _u.mutation.DeclineReason(); ok {
		_spec.SetField(engagement.FieldDeclineReason, field.TypeString, value)
	}
	if _u.mutation.DeclineReasonCleared() {
		_spec.ClearField(engagement.FieldDeclineReason, field.TypeString)
	}
	if value, ok := _u.mutation.CancelReason(); ok {
		_spec.SetField(engagement.FieldCancelReason, field.TypeString, value)
	}
	if _u.mutation.CancelReasonCleared() {
		_spec.ClearField(engagement.FieldCancelReason, field.TypeString)
	}
	if value, ok := _u.mutation.DecisionTimerPausedAt(); ok {
		_spec.SetField(engagement.FieldDecisionTimerPausedAt, field.TypeTime, value)
	}
	if _u.mutation.DecisionTimerPausedAtCleared() {
		_spec.ClearField(engagement.FieldDecisionTimerPausedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.AdminFlagged(); ok {
		_spec.SetField(engagement.FieldAdminFlagged, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(engagement.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.MatchCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MatchIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AgreementsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAgreementsIDs(); len(nodes) > 0 && !_u.mutation.AgreementsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgreementsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PaymentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPaymentsIDs(); len(nodes) > 0 && !_u.mutation.PaymentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PaymentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.UploadTokensCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedUploadTokensIDs(); len(nodes) > 0 && !_u.mutation.UploadTokensCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UploadTokensIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Engagement{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{engagement.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
