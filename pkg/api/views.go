package api

import (
	"math"
	"time"

	"github.com/warehouse-exchange/wex/ent"
	entengagement "github.com/warehouse-exchange/wex/ent/engagement"
	"github.com/warehouse-exchange/wex/pkg/engagement"
)

// EngagementView is the role-filtered wire shape of an engagement. Economic
// isolation lives here: a buyer never sees supplier economics, a supplier
// never sees buyer economics, and buyer identity stays hidden from suppliers
// until the account exists.
type EngagementView struct {
	ID     string  `json:"id"`
	Status string  `json:"status"`
	Tier   string  `json:"tier"`
	Path   *string `json:"path,omitempty"`

	WarehouseID string `json:"warehouse_id"`
	BuyerNeedID string `json:"buyer_need_id"`
	BuyerID     string `json:"buyer_id,omitempty"`

	Sqft int `json:"sqft,omitempty"`

	// Buyer economics.
	BuyerRate         *float64 `json:"buyer_rate,omitempty"`
	MonthlyBuyerTotal *float64 `json:"monthly_buyer_total,omitempty"`

	// Supplier economics.
	SupplierRate          *float64 `json:"supplier_rate,omitempty"`
	MonthlySupplierPayout *float64 `json:"monthly_supplier_payout,omitempty"`

	// Admin only.
	MonthlyWexAmount *float64 `json:"monthly_wex_amount,omitempty"`
	AdminFlagged     *bool    `json:"admin_flagged,omitempty"`
	DeclineReason    string   `json:"decline_reason,omitempty"`
	CancelReason     string   `json:"cancel_reason,omitempty"`

	TourScheduledFor *time.Time `json:"tour_scheduled_for,omitempty"`
	LeaseStartDate   *time.Time `json:"lease_start_date,omitempty"`
	LeaseEndDate     *time.Time `json:"lease_end_date,omitempty"`

	InsuranceUploaded   bool `json:"insurance_uploaded"`
	CompanyDocsUploaded bool `json:"company_docs_uploaded"`
	PaymentMethodAdded  bool `json:"payment_method_added"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	AllowedActions []string `json:"allowed_actions"`
}

// engagementView serializes one engagement for the caller's role.
func engagementView(e *ent.Engagement, id Identity) EngagementView {
	v := EngagementView{
		ID:                  e.ID,
		Status:              string(e.Status),
		Tier:                string(e.Tier),
		WarehouseID:         e.WarehouseID,
		BuyerNeedID:         e.BuyerNeedID,
		Sqft:                e.Sqft,
		TourScheduledFor:    e.TourScheduledFor,
		LeaseStartDate:      e.LeaseStartDate,
		LeaseEndDate:        e.LeaseEndDate,
		InsuranceUploaded:   e.InsuranceUploaded,
		CompanyDocsUploaded: e.CompanyDocsUploaded,
		PaymentMethodAdded:  e.PaymentMethodAdded,
		CreatedAt:           e.CreatedAt,
		UpdatedAt:           e.UpdatedAt,
		AllowedActions:      allowedActions(e.Status, id),
	}
	if e.Path != nil {
		p := string(*e.Path)
		v.Path = &p
	}

	switch id.Role {
	case RoleBuyer:
		if e.BuyerRate > 0 {
			v.BuyerRate = ptr(roundUpCent(e.BuyerRate))
			v.MonthlyBuyerTotal = ptr(e.MonthlyBuyerTotal)
		}
		v.BuyerID = e.BuyerID
	case RoleSupplier:
		if e.SupplierRate > 0 {
			v.SupplierRate = ptr(e.SupplierRate)
			v.MonthlySupplierPayout = ptr(e.MonthlySupplierPayout)
		}
		if buyerIdentityVisible(e.Status) {
			v.BuyerID = e.BuyerID
		}
	case RoleAdmin:
		if e.BuyerRate > 0 {
			v.BuyerRate = ptr(roundUpCent(e.BuyerRate))
			v.MonthlyBuyerTotal = ptr(e.MonthlyBuyerTotal)
			v.SupplierRate = ptr(e.SupplierRate)
			v.MonthlySupplierPayout = ptr(e.MonthlySupplierPayout)
			v.MonthlyWexAmount = ptr(e.MonthlyBuyerTotal - e.MonthlySupplierPayout)
		}
		v.BuyerID = e.BuyerID
		v.AdminFlagged = ptr(e.AdminFlagged)
		v.DeclineReason = e.DeclineReason
		v.CancelReason = e.CancelReason
	}
	return v
}

// allowedActions lists the targets the caller may drive from the current
// state.
func allowedActions(status entengagement.Status, id Identity) []string {
	targets := engagement.AllowedTargets(status, id.Actor())
	actions := make([]string, 0, len(targets))
	for _, t := range targets {
		actions = append(actions, string(t))
	}
	return actions
}

// buyerIdentityVisible tells whether the supplier may see who the buyer is.
// Before account creation the buyer exists only as an anonymized requirement.
var preAccountStates = map[entengagement.Status]bool{
	entengagement.StatusDealPingSent:     true,
	entengagement.StatusDealPingAccepted: true,
	entengagement.StatusDealPingDeclined: true,
	entengagement.StatusDealPingExpired:  true,
	entengagement.StatusMatched:          true,
	entengagement.StatusBuyerReviewing:   true,
	entengagement.StatusBuyerAccepted:    true,
	entengagement.StatusContactCaptured:  true,
}

func buyerIdentityVisible(status entengagement.Status) bool {
	return !preAccountStates[status]
}

// TimelineEvent is one audit row in the engagement timeline.
type TimelineEvent struct {
	ID         string                 `json:"id"`
	EventType  string                 `json:"event_type"`
	ActorRole  string                 `json:"actor_role"`
	FromStatus string                 `json:"from_status,omitempty"`
	ToStatus   string                 `json:"to_status,omitempty"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt  time.Time              `json:"created_at"`
}

func timelineView(events []*ent.EngagementEvent) []TimelineEvent {
	out := make([]TimelineEvent, 0, len(events))
	for _, ev := range events {
		out = append(out, TimelineEvent{
			ID:         ev.ID,
			EventType:  ev.EventType,
			ActorRole:  string(ev.ActorRole),
			FromStatus: ev.FromStatus,
			ToStatus:   ev.ToStatus,
			Metadata:   ev.Metadata,
			CreatedAt:  ev.CreatedAt,
		})
	}
	return out
}

// roundUpCent rounds a rate up to the next cent. The epsilon keeps values
// already on a cent boundary from being bumped by float representation.
func roundUpCent(v float64) float64 {
	return math.Ceil(v*100-1e-9) / 100
}

func ptr[T any](v T) *T { return &v }
