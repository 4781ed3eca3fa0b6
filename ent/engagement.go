// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/warehouse-exchange/wex/ent/engagement"
	"github.com/warehouse-exchange/wex/ent/match"
)

// Engagement is the model entity for the Engagement schema.
type Engagement struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// MatchID holds the value of the "match_id" field.
	MatchID string `json:"match_id,omitempty"`
	// BuyerNeedID holds the value of the "buyer_need_id" field.
	BuyerNeedID string `json:"buyer_need_id,omitempty"`
	// WarehouseID holds the value of the "warehouse_id" field.
	WarehouseID string `json:"warehouse_id,omitempty"`
	// Set at account_created; SMS deals start anonymous
	BuyerID string `json:"buyer_id,omitempty"`
	// Supplier company, denormalized for authorization checks
	CompanyID string `json:"company_id,omitempty"`
	// Status holds the value of the "status" field.
	Status engagement.Status `json:"status,omitempty"`
	// Tier holds the value of the "tier" field.
	Tier engagement.Tier `json:"tier,omitempty"`
	// Chosen by the buyer at accept time
	Path *engagement.Path `json:"path,omitempty"`
	// DealPingSentAt holds the value of the "deal_ping_sent_at" field.
	DealPingSentAt *time.Time `json:"deal_ping_sent_at,omitempty"`
	// DealPingExpiresAt holds the value of the "deal_ping_expires_at" field.
	DealPingExpiresAt *time.Time `json:"deal_ping_expires_at,omitempty"`
	// BuyerAcceptedAt holds the value of the "buyer_accepted_at" field.
	BuyerAcceptedAt *time.Time `json:"buyer_accepted_at,omitempty"`
	// ContactCapturedAt holds the value of the "contact_captured_at" field.
	ContactCapturedAt *time.Time `json:"contact_captured_at,omitempty"`
	// AccountCreatedAt holds the value of the "account_created_at" field.
	AccountCreatedAt *time.Time `json:"account_created_at,omitempty"`
	// GuaranteeSignedAt holds the value of the "guarantee_signed_at" field.
	GuaranteeSignedAt *time.Time `json:"guarantee_signed_at,omitempty"`
	// AddressRevealedAt holds the value of the "address_revealed_at" field.
	AddressRevealedAt *time.Time `json:"address_revealed_at,omitempty"`
	// TourRequestedAt holds the value of the "tour_requested_at" field.
	TourRequestedAt *time.Time `json:"tour_requested_at,omitempty"`
	// TourConfirmedAt holds the value of the "tour_confirmed_at" field.
	TourConfirmedAt *time.Time `json:"tour_confirmed_at,omitempty"`
	// TourScheduledFor holds the value of the "tour_scheduled_for" field.
	TourScheduledFor *time.Time `json:"tour_scheduled_for,omitempty"`
	// TourCompletedAt holds the value of the "tour_completed_at" field.
	TourCompletedAt *time.Time `json:"tour_completed_at,omitempty"`
	// TourRescheduleCount holds the value of the "tour_reschedule_count" field.
	TourRescheduleCount int `json:"tour_reschedule_count,omitempty"`
	// InstantBookRequestedAt holds the value of the "instant_book_requested_at" field.
	InstantBookRequestedAt *time.Time `json:"instant_book_requested_at,omitempty"`
	// InstantBookConfirmedAt holds the value of the "instant_book_confirmed_at" field.
	InstantBookConfirmedAt *time.Time `json:"instant_book_confirmed_at,omitempty"`
	// BuyerConfirmedAt holds the value of the "buyer_confirmed_at" field.
	BuyerConfirmedAt *time.Time `json:"buyer_confirmed_at,omitempty"`
	// AgreementSentAt holds the value of the "agreement_sent_at" field.
	AgreementSentAt *time.Time `json:"agreement_sent_at,omitempty"`
	// AgreementSignedAt holds the value of the "agreement_signed_at" field.
	AgreementSignedAt *time.Time `json:"agreement_signed_at,omitempty"`
	// LeaseStartDate holds the value of the "lease_start_date" field.
	LeaseStartDate *time.Time `json:"lease_start_date,omitempty"`
	// LeaseEndDate holds the value of the "lease_end_date" field.
	LeaseEndDate *time.Time `json:"lease_end_date,omitempty"`
	// ActivatedAt holds the value of the "activated_at" field.
	ActivatedAt *time.Time `json:"activated_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// InsuranceUploaded holds the value of the "insurance_uploaded" field.
	InsuranceUploaded bool `json:"insurance_uploaded,omitempty"`
	// CompanyDocsUploaded holds the value of the "company_docs_uploaded" field.
	CompanyDocsUploaded bool `json:"company_docs_uploaded,omitempty"`
	// PaymentMethodAdded holds the value of the "payment_method_added" field.
	PaymentMethodAdded bool `json:"payment_method_added,omitempty"`
	// Sqft holds the value of the "sqft" field.
	Sqft int `json:"sqft,omitempty"`
	// SupplierRate holds the value of the "supplier_rate" field.
	SupplierRate float64 `json:"supplier_rate,omitempty"`
	// BuyerRate holds the value of the "buyer_rate" field.
	BuyerRate float64 `json:"buyer_rate,omitempty"`
	// MonthlySupplierPayout holds the value of the "monthly_supplier_payout" field.
	MonthlySupplierPayout float64 `json:"monthly_supplier_payout,omitempty"`
	// MonthlyBuyerTotal holds the value of the "monthly_buyer_total" field.
	MonthlyBuyerTotal float64 `json:"monthly_buyer_total,omitempty"`
	// DeclinedBy holds the value of the "declined_by" field.
	DeclinedBy *engagement.DeclinedBy `json:"declined_by,omitempty"`
	// DeclineReason holds the value of the "decline_reason" field.
	DeclineReason string `json:"decline_reason,omitempty"`
	// CancelReason holds the value of the "cancel_reason" field.
	CancelReason string `json:"cancel_reason,omitempty"`
	// Set while a routed supplier question blocks the post-tour decision clock
	DecisionTimerPausedAt *time.Time `json:"decision_timer_paused_at,omitempty"`
	// AdminFlagged holds the value of the "admin_flagged" field.
	AdminFlagged bool `json:"admin_flagged,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the EngagementQuery when eager-loading is set.
	Edges        EngagementEdges `json:"edges"`
	selectValues sql.SelectValues
}

// EngagementEdges holds the relations/edges for other nodes in the graph.
type EngagementEdges struct {
	// Match holds the value of the match edge.
	Match *Match `json:"match,omitempty"`
	// Events holds the value of the events edge.
	Events []*EngagementEvent `json:"events,omitempty"`
	// Agreements holds the value of the agreements edge.
	Agreements []*EngagementAgreement `json:"agreements,omitempty"`
	// Payments holds the value of the payments edge.
	Payments []*PaymentRecord `json:"payments,omitempty"`
	// UploadTokens holds the value of the upload_tokens edge.
	UploadTokens []*UploadToken `json:"upload_tokens,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [5]bool
}

// MatchOrErr returns the Match value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e EngagementEdges) MatchOrErr() (*Match, error) {
	if e.Match != nil {
		return e.Match, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: match.Label}
	}
	return nil, &NotLoadedError{edge: "match"}
}

// EventsOrErr returns the Events value or an error if the edge
// was not loaded in eager-loading.
func (e EngagementEdges) EventsOrErr() ([]*EngagementEvent, error) {
	if e.loadedTypes[1] {
		return e.Events, nil
	}
	return nil, &NotLoadedError{edge: "events"}
}

// AgreementsOrErr returns the Agreements value or an error if the edge
// was not loaded in eager-loading.
func (e EngagementEdges) AgreementsOrErr() ([]*EngagementAgreement, error) {
	if e.loadedTypes[2] {
		return e.Agreements, nil
	}
	return nil, &NotLoadedError{edge: "agreements"}
}

// PaymentsOrErr returns the Payments value or an error if the edge
// was not loaded in eager-loading.
func (e EngagementEdges) PaymentsOrErr() ([]*PaymentRecord, error) {
	if e.loadedTypes[3] {
		return e.Payments, nil
	}
	return nil, &NotLoadedError{edge: "payments"}
}

// UploadTokensOrErr returns the UploadTokens value or an error if the edge
// was not loaded in eager-loading.
func (e EngagementEdges) UploadTokensOrErr() ([]*UploadToken, error) {
	if e.loadedTypes[4] {
		return e.UploadTokens, nil
	}
	return nil, &NotLoadedError{edge: "upload_tokens"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Engagement) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case engagement.FieldInsuranceUploaded, engagement.FieldCompanyDocsUploaded, engagement.FieldPaymentMethodAdded, engagement.FieldAdminFlagged:
			values[i] = new(sql.NullBool)
		case engagement.FieldSupplierRate, engagement.FieldBuyerRate, engagement.FieldMonthlySupplierPayout, engagement.FieldMonthlyBuyerTotal:
			values[i] = new(sql.NullFloat64)
		case engagement.FieldTourRescheduleCount, engagement.FieldSqft:
			values[i] = new(sql.NullInt64)
		case engagement.FieldID, engagement.FieldMatchID, engagement.FieldBuyerNeedID, engagement.FieldWarehouseID, engagement.FieldBuyerID, engagement.FieldCompanyID, engagement.FieldStatus, engagement.FieldTier, engagement.FieldPath, engagement.FieldDeclinedBy, engagement.FieldDeclineReason, engagement.FieldCancelReason:
			values[i] = new(sql.NullString)
		case engagement.FieldDealPingSentAt, engagement.FieldDealPingExpiresAt, engagement.FieldBuyerAcceptedAt, engagement.FieldContactCapturedAt, engagement.FieldAccountCreatedAt, engagement.FieldGuaranteeSignedAt, engagement.FieldAddressRevealedAt, engagement.FieldTourRequestedAt, engagement.FieldTourConfirmedAt, engagement.FieldTourScheduledFor, engagement.FieldTourCompletedAt, engagement.FieldInstantBookRequestedAt, engagement.FieldInstantBookConfirmedAt, engagement.FieldBuyerConfirmedAt, engagement.FieldAgreementSentAt, engagement.FieldAgreementSignedAt, engagement.FieldLeaseStartDate, engagement.FieldLeaseEndDate, engagement.FieldActivatedAt, engagement.FieldCompletedAt, engagement.FieldDecisionTimerPausedAt, engagement.FieldCreatedAt, engagement.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Engagement fields.
func (_m *Engagement) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case engagement.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case engagement.FieldMatchID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field match_id", values[i])
			} else if value.Valid {
				_m.MatchID = value.String
			}
		case engagement.FieldBuyerNeedID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field buyer_need_id", values[i])
			} else if value.Valid {
				_m.BuyerNeedID = value.String
			}
		case engagement.FieldWarehouseID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field warehouse_id", values[i])
			} else if value.Valid {
				_m.WarehouseID = value.String
			}
		case engagement.FieldBuyerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field buyer_id", values[i])
			} else if value.Valid {
				_m.BuyerID = value.String
			}
		case engagement.FieldCompanyID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field company_id", values[i])
			} else if value.Valid {
				_m.CompanyID = value.String
			}
		case engagement.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = engagement.Status(value.String)
			}
		case engagement.FieldTier:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tier", values[i])
			} else if value.Valid {
				_m.Tier = engagement.Tier(value.String)
			}
		case engagement.FieldPath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field path", values[i])
			} else if value.Valid {
				_m.Path = new(engagement.Path)
				*_m.Path = engagement.Path(value.String)
			}
		case engagement.FieldDealPingSentAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deal_ping_sent_at", values[i])
			} else if value.Valid {
				_m.DealPingSentAt = new(time.Time)
				*_m.DealPingSentAt = value.Time
			}
		case engagement.FieldDealPingExpiresAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deal_ping_expires_at", values[i])
			} else if value.Valid {
				_m.DealPingExpiresAt = new(time.Time)
				*_m.DealPingExpiresAt = value.Time
			}
		case engagement.FieldBuyerAcceptedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field buyer_accepted_at", values[i])
			} else if value.Valid {
				_m.BuyerAcceptedAt = new(time.Time)
				*_m.BuyerAcceptedAt = value.Time
			}
		case engagement.FieldContactCapturedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field contact_captured_at", values[i])
			} else if value.Valid {
				_m.ContactCapturedAt = new(time.Time)
				*_m.ContactCapturedAt = value.Time
			}
		case engagement.FieldAccountCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field account_created_at", values[i])
			} else if value.Valid {
				_m.AccountCreatedAt = new(time.Time)
				*_m.AccountCreatedAt = value.Time
			}
		case engagement.FieldGuaranteeSignedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field guarantee_signed_at", values[i])
			} else if value.Valid {
				_m.GuaranteeSignedAt = new(time.Time)
				*_m.GuaranteeSignedAt = value.Time
			}
		case engagement.FieldAddressRevealedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field address_revealed_at", values[i])
			} else if value.Valid {
				_m.AddressRevealedAt = new(time.Time)
				*_m.AddressRevealedAt = value.Time
			}
		case engagement.FieldTourRequestedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field tour_requested_at", values[i])
			} else if value.Valid {
				_m.TourRequestedAt = new(time.Time)
				*_m.TourRequestedAt = value.Time
			}
		case engagement.FieldTourConfirmedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field tour_confirmed_at", values[i])
			} else if value.Valid {
				_m.TourConfirmedAt = new(time.Time)
				*_m.TourConfirmedAt = value.Time
			}
		case engagement.FieldTourScheduledFor:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field tour_scheduled_for", values[i])
			} else if value.Valid {
				_m.TourScheduledFor = new(time.Time)
				*_m.TourScheduledFor = value.Time
			}
		case engagement.FieldTourCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field tour_completed_at", values[i])
			} else if value.Valid {
				_m.TourCompletedAt = new(time.Time)
				*_m.TourCompletedAt = value.Time
			}
		case engagement.FieldTourRescheduleCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tour_reschedule_count", values[i])
			} else if value.Valid {
				_m.TourRescheduleCount = int(value.Int64)
			}
		case engagement.FieldInstantBookRequestedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field instant_book_requested_at", values[i])
			} else if value.Valid {
				_m.InstantBookRequestedAt = new(time.Time)
				*_m.InstantBookRequestedAt = value.Time
			}
		case engagement.FieldInstantBookConfirmedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field instant_book_confirmed_at", values[i])
			} else if value.Valid {
				_m.InstantBookConfirmedAt = new(time.Time)
				*_m.InstantBookConfirmedAt = value.Time
			}
		case engagement.FieldBuyerConfirmedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field buyer_confirmed_at", values[i])
			} else if value.Valid {
				_m.BuyerConfirmedAt = new(time.Time)
				*_m.BuyerConfirmedAt = value.Time
			}
		case engagement.FieldAgreementSentAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field agreement_sent_at", values[i])
			} else if value.Valid {
				_m.AgreementSentAt = new(time.Time)
				*_m.AgreementSentAt = value.Time
			}
		case engagement.FieldAgreementSignedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field agreement_signed_at", values[i])
			} else if value.Valid {
				_m.AgreementSignedAt = new(time.Time)
				*_m.AgreementSignedAt = value.Time
			}
		case engagement.FieldLeaseStartDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field lease_start_date", values[i])
			} else if value.Valid {
				_m.LeaseStartDate = new(time.Time)
				*_m.LeaseStartDate = value.Time
			}
		case engagement.FieldLeaseEndDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field lease_end_date", values[i])
			} else if value.Valid {
				_m.LeaseEndDate = new(time.Time)
				*_m.LeaseEndDate = value.Time
			}
		case engagement.FieldActivatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field activated_at", values[i])
			} else if value.Valid {
				_m.ActivatedAt = new(time.Time)
				*_m.ActivatedAt = value.Time
			}
		case engagement.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case engagement.FieldInsuranceUploaded:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field insurance_uploaded", values[i])
			} else if value.Valid {
				_m.InsuranceUploaded = value.Bool
			}
		case engagement.FieldCompanyDocsUploaded:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field company_docs_uploaded", values[i])
			} else if value.Valid {
				_m.CompanyDocsUploaded = value.Bool
			}
		case engagement.FieldPaymentMethodAdded:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field payment_method_added", values[i])
			} else if value.Valid {
				_m.PaymentMethodAdded = value.Bool
			}
		case engagement.FieldSqft:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sqft", values[i])
			} else if value.Valid {
				_m.Sqft = int(value.Int64)
			}
		case engagement.FieldSupplierRate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field supplier_rate", values[i])
			} else if value.Valid {
				_m.SupplierRate = value.Float64
			}
		case engagement.FieldBuyerRate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field buyer_rate", values[i])
			} else if value.Valid {
				_m.BuyerRate = value.Float64
			}
		case engagement.FieldMonthlySupplierPayout:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field monthly_supplier_payout", values[i])
			} else if value.Valid {
				_m.MonthlySupplierPayout = value.Float64
			}
		case engagement.FieldMonthlyBuyerTotal:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field monthly_buyer_total", values[i])
			} else if value.Valid {
				_m.MonthlyBuyerTotal = value.Float64
			}
		case engagement.FieldDeclinedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field declined_by", values[i])
			} else if value.Valid {
				_m.DeclinedBy = new(engagement.DeclinedBy)
				*_m.DeclinedBy = engagement.DeclinedBy(value.String)
			}
		case engagement.FieldDeclineReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field decline_reason", values[i])
			} else if value.Valid {
				_m.DeclineReason = value.String
			}
		case engagement.FieldCancelReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cancel_reason", values[i])
			} else if value.Valid {
				_m.CancelReason = value.String
			}
		case engagement.FieldDecisionTimerPausedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field decision_timer_paused_at", values[i])
			} else if value.Valid {
				_m.DecisionTimerPausedAt = new(time.Time)
				*_m.DecisionTimerPausedAt = value.Time
			}
		case engagement.FieldAdminFlagged:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field admin_flagged", values[i])
			} else if value.Valid {
				_m.AdminFlagged = value.Bool
			}
		case engagement.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case engagement.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Engagement.
// This includes values selected through modifiers, order, etc.
func (_m *Engagement) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryMatch queries the "match" edge of the Engagement entity.
func (_m *Engagement) QueryMatch() *MatchQuery {
	return NewEngagementClient(_m.config).QueryMatch(_m)
}

// QueryEvents queries the "events" edge of the Engagement entity.
func (_m *Engagement) QueryEvents() *EngagementEventQuery {
	return NewEngagementClient(_m.config).QueryEvents(_m)
}

// QueryAgreements queries the "agreements" edge of the Engagement entity.
func (_m *Engagement) QueryAgreements() *EngagementAgreementQuery {
	return NewEngagementClient(_m.config).QueryAgreements(_m)
}

// QueryPayments queries the "payments" edge of the Engagement entity.
func (_m *Engagement) QueryPayments() *PaymentRecordQuery {
	return NewEngagementClient(_m.config).QueryPayments(_m)
}

// QueryUploadTokens queries the "upload_tokens" edge of the Engagement entity.
func (_m *Engagement) QueryUploadTokens() *UploadTokenQuery {
	return NewEngagementClient(_m.config).QueryUploadTokens(_m)
}

// Update returns a builder for updating this Engagement.
// Note that you need to call Engagement.Unwrap() before calling this method if this Engagement
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Engagement) Update() *EngagementUpdateOne {
	return NewEngagementClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Engagement entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Engagement) Unwrap() *Engagement {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Engagement is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Engagement) String() string {
	var builder strings.Builder
	builder.WriteString("Engagement(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("match_id=")
	builder.WriteString(_m.MatchID)
	builder.WriteString(", ")
	builder.WriteString("buyer_need_id=")
	builder.WriteString(_m.BuyerNeedID)
	builder.WriteString(", ")
	builder.WriteString("warehouse_id=")
	builder.WriteString(_m.WarehouseID)
	builder.WriteString(", ")
	builder.WriteString("buyer_id=")
	builder.WriteString(_m.BuyerID)
	builder.WriteString(", ")
	builder.WriteString("company_id=")
	builder.WriteString(_m.CompanyID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("tier=")
	builder.WriteString(fmt.Sprintf("%v", _m.Tier))
	builder.WriteString(", ")
	if v := _m.Path; v != nil {
		builder.WriteString("path=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.DealPingSentAt; v != nil {
		builder.WriteString("deal_ping_sent_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.DealPingExpiresAt; v != nil {
		builder.WriteString("deal_ping_expires_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.BuyerAcceptedAt; v != nil {
		builder.WriteString("buyer_accepted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ContactCapturedAt; v != nil {
		builder.WriteString("contact_captured_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.AccountCreatedAt; v != nil {
		builder.WriteString("account_created_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.GuaranteeSignedAt; v != nil {
		builder.WriteString("guarantee_signed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.AddressRevealedAt; v != nil {
		builder.WriteString("address_revealed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.TourRequestedAt; v != nil {
		builder.WriteString("tour_requested_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.TourConfirmedAt; v != nil {
		builder.WriteString("tour_confirmed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.TourScheduledFor; v != nil {
		builder.WriteString("tour_scheduled_for=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.TourCompletedAt; v != nil {
		builder.WriteString("tour_completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("tour_reschedule_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.TourRescheduleCount))
	builder.WriteString(", ")
	if v := _m.InstantBookRequestedAt; v != nil {
		builder.WriteString("instant_book_requested_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.InstantBookConfirmedAt; v != nil {
		builder.WriteString("instant_book_confirmed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.BuyerConfirmedAt; v != nil {
		builder.WriteString("buyer_confirmed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.AgreementSentAt; v != nil {
		builder.WriteString("agreement_sent_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.AgreementSignedAt; v != nil {
		builder.WriteString("agreement_signed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.LeaseStartDate; v != nil {
		builder.WriteString("lease_start_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.LeaseEndDate; v != nil {
		builder.WriteString("lease_end_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ActivatedAt; v != nil {
		builder.WriteString("activated_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("insurance_uploaded=")
	builder.WriteString(fmt.Sprintf("%v", _m.InsuranceUploaded))
	builder.WriteString(", ")
	builder.WriteString("company_docs_uploaded=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompanyDocsUploaded))
	builder.WriteString(", ")
	builder.WriteString("payment_method_added=")
	builder.WriteString(fmt.Sprintf("%v", _m.PaymentMethodAdded))
	builder.WriteString(", ")
	builder.WriteString("sqft=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sqft))
	builder.WriteString(", ")
	builder.WriteString("supplier_rate=")
	builder.WriteString(fmt.Sprintf("%v", _m.SupplierRate))
	builder.WriteString(", ")
	builder.WriteString("buyer_rate=")
	builder.WriteString(fmt.Sprintf("%v", _m.BuyerRate))
	builder.WriteString(", ")
	builder.WriteString("monthly_supplier_payout=")
	builder.WriteString(fmt.Sprintf("%v", _m.MonthlySupplierPayout))
	builder.WriteString(", ")
	builder.WriteString("monthly_buyer_total=")
	builder.WriteString(fmt.Sprintf("%v", _m.MonthlyBuyerTotal))
	builder.WriteString(", ")
	if v := _m.DeclinedBy; v != nil {
		builder.WriteString("declined_by=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("decline_reason=")
	builder.WriteString(_m.DeclineReason)
	builder.WriteString(", ")
	builder.WriteString("cancel_reason=")
	builder.WriteString(_m.CancelReason)
	builder.WriteString(", ")
	if v := _m.DecisionTimerPausedAt; v != nil {
		builder.WriteString("decision_timer_paused_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("admin_flagged=")
	builder.WriteString(fmt.Sprintf("%v", _m.AdminFlagged))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Engagements is a parsable slice of Engagement.
type Engagements []*Engagement
