package engagement

import (
	"context"
	"time"

	"github.com/warehouse-exchange/wex/ent"
	"github.com/warehouse-exchange/wex/ent/engagement"
	"github.com/warehouse-exchange/wex/ent/engagementagreement"
	"github.com/warehouse-exchange/wex/ent/engagementevent"
)

// guardFunc checks a transition precondition against the locked engagement
// row. A non-nil return is always a *GuardError.
type guardFunc func(ctx context.Context, tx *ent.Tx, e *ent.Engagement) error

// rule is one allowed (target, actors, guard) entry for a source state.
type rule struct {
	target Status
	actors []Actor
	guard  guardFunc
}

var (
	buyerOnly      = []Actor{engagementevent.ActorRoleBuyer}
	supplierOnly   = []Actor{engagementevent.ActorRoleSupplier}
	systemOnly     = []Actor{engagementevent.ActorRoleSystem}
	buyerOrSystem  = []Actor{engagementevent.ActorRoleBuyer, engagementevent.ActorRoleSystem}
	systemOrAdmin  = []Actor{engagementevent.ActorRoleSystem, engagementevent.ActorRoleAdmin}
	eitherSide     = []Actor{engagementevent.ActorRoleBuyer, engagementevent.ActorRoleSupplier}
	anyParticipant = []Actor{engagementevent.ActorRoleBuyer, engagementevent.ActorRoleSupplier, engagementevent.ActorRoleSystem}
)

// transitions is the complete machine. A (from, target) pair absent here is
// unreachable for everyone except an admin override, which may move between
// any two non-terminal states.
var transitions = map[Status][]rule{
	engagement.StatusDealPingSent: {
		{target: engagement.StatusDealPingAccepted, actors: supplierOnly},
		{target: engagement.StatusDealPingDeclined, actors: supplierOnly},
		{target: engagement.StatusDealPingExpired, actors: systemOnly},
	},
	engagement.StatusDealPingAccepted: {
		{target: engagement.StatusMatched, actors: systemOrAdmin},
	},
	engagement.StatusMatched: {
		{target: engagement.StatusBuyerReviewing, actors: buyerOrSystem},
		{target: engagement.StatusBuyerAccepted, actors: buyerOnly},
		{target: engagement.StatusExpired, actors: systemOnly},
	},
	engagement.StatusBuyerReviewing: {
		{target: engagement.StatusBuyerAccepted, actors: buyerOnly},
		{target: engagement.StatusDeclinedByBuyer, actors: buyerOnly},
		{target: engagement.StatusExpired, actors: systemOnly},
	},
	engagement.StatusBuyerAccepted: {
		{target: engagement.StatusContactCaptured, actors: buyerOrSystem},
		{target: engagement.StatusDeclinedBySupplier, actors: supplierOnly},
	},
	engagement.StatusContactCaptured: {
		{target: engagement.StatusAccountCreated, actors: buyerOrSystem},
	},
	engagement.StatusAccountCreated: {
		{target: engagement.StatusGuaranteeSigned, actors: buyerOnly},
	},
	engagement.StatusGuaranteeSigned: {
		// Entered and left inside SignGuarantee's transaction.
		{target: engagement.StatusAddressRevealed, actors: systemOnly, guard: guardGuaranteeOnFile},
	},
	engagement.StatusAddressRevealed: {
		{target: engagement.StatusTourRequested, actors: buyerOnly},
		{target: engagement.StatusInstantBookRequested, actors: buyerOnly, guard: guardInstantBookEligible},
		{target: engagement.StatusDeclinedByBuyer, actors: buyerOnly},
		{target: engagement.StatusExpired, actors: systemOnly},
	},
	engagement.StatusTourRequested: {
		{target: engagement.StatusTourConfirmed, actors: supplierOnly},
		{target: engagement.StatusDeclinedBySupplier, actors: supplierOnly},
		{target: engagement.StatusExpired, actors: systemOnly},
	},
	engagement.StatusTourConfirmed: {
		{target: engagement.StatusTourRescheduled, actors: eitherSide},
		{target: engagement.StatusTourCompleted, actors: anyParticipant},
	},
	engagement.StatusTourRescheduled: {
		{target: engagement.StatusTourConfirmed, actors: supplierOnly},
		{target: engagement.StatusDeclinedByBuyer, actors: buyerOnly},
	},
	engagement.StatusTourCompleted: {
		{target: engagement.StatusBuyerConfirmed, actors: buyerOnly},
		{target: engagement.StatusDeclinedByBuyer, actors: buyerOnly},
		{target: engagement.StatusExpired, actors: systemOnly},
	},
	engagement.StatusInstantBookRequested: {
		{target: engagement.StatusInstantBookConfirmed, actors: supplierOnly},
		{target: engagement.StatusDeclinedBySupplier, actors: supplierOnly},
		{target: engagement.StatusExpired, actors: systemOnly},
	},
	engagement.StatusInstantBookConfirmed: {
		{target: engagement.StatusBuyerConfirmed, actors: buyerOrSystem},
	},
	engagement.StatusBuyerConfirmed: {
		{target: engagement.StatusAgreementSent, actors: systemOrAdmin},
	},
	engagement.StatusAgreementSent: {
		{target: engagement.StatusAgreementSigned, actors: systemOnly, guard: guardDualSigned},
		{target: engagement.StatusDeclinedByBuyer, actors: buyerOnly},
		{target: engagement.StatusDeclinedBySupplier, actors: supplierOnly},
	},
	engagement.StatusAgreementSigned: {
		{target: engagement.StatusOnboarding, actors: systemOnly},
	},
	engagement.StatusOnboarding: {
		{target: engagement.StatusActive, actors: systemOrAdmin, guard: guardOnboardingComplete},
	},
	engagement.StatusActive: {
		{target: engagement.StatusCompleted, actors: systemOrAdmin},
	},
}

// guardsByTarget lets the admin override keep precondition checks even though
// it skips the reachability and actor checks.
var guardsByTarget = map[Status]guardFunc{
	engagement.StatusAgreementSigned:      guardDualSigned,
	engagement.StatusActive:               guardOnboardingComplete,
	engagement.StatusAddressRevealed:      guardGuaranteeOnFile,
	engagement.StatusInstantBookRequested: guardInstantBookEligible,
}

// findRule returns the table entry for (from, target), if any.
func findRule(from, target Status) (rule, bool) {
	for _, r := range transitions[from] {
		if r.target == target {
			return r, true
		}
	}
	return rule{}, false
}

func actorAllowed(r rule, actor Actor) bool {
	for _, a := range r.actors {
		if a == actor {
			return true
		}
	}
	return false
}

// AllowedTargets returns the targets this actor may drive from the given
// state. Admins see every non-terminal state plus the table's terminal
// targets from here.
func AllowedTargets(from Status, actor Actor) []Status {
	if IsTerminal(from) {
		return nil
	}
	if actor == engagementevent.ActorRoleAdmin {
		var out []Status
		for _, s := range engagement.StatusValues() {
			target := Status(s)
			if target == from || IsTerminal(target) {
				continue
			}
			out = append(out, target)
		}
		for _, r := range transitions[from] {
			if IsTerminal(r.target) {
				out = append(out, r.target)
			}
		}
		out = append(out, engagement.StatusCancelled)
		return out
	}
	var out []Status
	for _, r := range transitions[from] {
		if actorAllowed(r, actor) {
			out = append(out, r.target)
		}
	}
	return out
}

// revisitExempt are the states the tour reschedule loop may legitimately
// re-enter.
var revisitExempt = map[Status]bool{
	engagement.StatusTourRescheduled: true,
	engagement.StatusTourConfirmed:   true,
}

// visitedAt maps a target state to the timestamp that proves it was entered
// before. States without a timestamp column cannot be revisited structurally.
func visitedAt(e *ent.Engagement, target Status) *time.Time {
	switch target {
	case engagement.StatusBuyerAccepted:
		return e.BuyerAcceptedAt
	case engagement.StatusContactCaptured:
		return e.ContactCapturedAt
	case engagement.StatusAccountCreated:
		return e.AccountCreatedAt
	case engagement.StatusGuaranteeSigned:
		return e.GuaranteeSignedAt
	case engagement.StatusAddressRevealed:
		return e.AddressRevealedAt
	case engagement.StatusTourRequested:
		return e.TourRequestedAt
	case engagement.StatusTourCompleted:
		return e.TourCompletedAt
	case engagement.StatusInstantBookRequested:
		return e.InstantBookRequestedAt
	case engagement.StatusInstantBookConfirmed:
		return e.InstantBookConfirmedAt
	case engagement.StatusBuyerConfirmed:
		return e.BuyerConfirmedAt
	case engagement.StatusAgreementSent:
		return e.AgreementSentAt
	case engagement.StatusAgreementSigned:
		return e.AgreementSignedAt
	case engagement.StatusActive:
		return e.ActivatedAt
	case engagement.StatusCompleted:
		return e.CompletedAt
	}
	return nil
}

// guardDualSigned requires both signatures on the current lease agreement.
func guardDualSigned(ctx context.Context, tx *ent.Tx, e *ent.Engagement) error {
	ag, err := tx.EngagementAgreement.Query().
		Where(
			engagementagreement.EngagementIDEQ(e.ID),
			engagementagreement.AgreementTypeEQ(engagementagreement.AgreementTypeLease),
			engagementagreement.StatusIn(engagementagreement.StatusSent, engagementagreement.StatusSigned),
		).
		Order(ent.Desc(engagementagreement.FieldVersion)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return &GuardError{EngagementID: e.ID, Target: engagement.StatusAgreementSigned,
				Reason: "no lease agreement has been sent"}
		}
		return &GuardError{EngagementID: e.ID, Target: engagement.StatusAgreementSigned,
			Reason: "failed to load lease agreement: " + err.Error()}
	}
	if ag.BuyerSignedAt == nil || ag.SupplierSignedAt == nil {
		return &GuardError{EngagementID: e.ID, Target: engagement.StatusAgreementSigned,
			Reason: "lease agreement requires both signatures"}
	}
	return nil
}

// guardOnboardingComplete requires all three onboarding flags.
func guardOnboardingComplete(_ context.Context, _ *ent.Tx, e *ent.Engagement) error {
	if !e.InsuranceUploaded || !e.CompanyDocsUploaded || !e.PaymentMethodAdded {
		return &GuardError{EngagementID: e.ID, Target: engagement.StatusActive,
			Reason: "onboarding incomplete: insurance, company docs, and a payment method are all required"}
	}
	return nil
}

// guardGuaranteeOnFile keeps the address hidden until the guarantee is signed.
func guardGuaranteeOnFile(_ context.Context, _ *ent.Tx, e *ent.Engagement) error {
	if e.GuaranteeSignedAt == nil {
		return &GuardError{EngagementID: e.ID, Target: engagement.StatusAddressRevealed,
			Reason: "guarantee must be signed before the address is revealed"}
	}
	return nil
}

// guardInstantBookEligible requires the underlying match to carry the flag.
func guardInstantBookEligible(ctx context.Context, tx *ent.Tx, e *ent.Engagement) error {
	m, err := tx.Match.Get(ctx, e.MatchID)
	if err != nil {
		return &GuardError{EngagementID: e.ID, Target: engagement.StatusInstantBookRequested,
			Reason: "failed to load match: " + err.Error()}
	}
	if !m.InstantBookEligible {
		return &GuardError{EngagementID: e.ID, Target: engagement.StatusInstantBookRequested,
			Reason: "this match is not instant-book eligible; request a tour instead"}
	}
	return nil
}
