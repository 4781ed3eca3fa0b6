package engagement

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warehouse-exchange/wex/ent"
	entengagement "github.com/warehouse-exchange/wex/ent/engagement"
	"github.com/warehouse-exchange/wex/ent/engagementagreement"
	"github.com/warehouse-exchange/wex/ent/engagementevent"
	entmatch "github.com/warehouse-exchange/wex/ent/match"
	"github.com/warehouse-exchange/wex/ent/paymentrecord"
	"github.com/warehouse-exchange/wex/ent/truthcore"
	"github.com/warehouse-exchange/wex/ent/warehouse"
	"github.com/warehouse-exchange/wex/pkg/clearing"
	"github.com/warehouse-exchange/wex/pkg/config"
	testdb "github.com/warehouse-exchange/wex/test/database"
)

// seedMatch creates the minimal fixture chain for an engagement: company,
// warehouse with an activated truth core, buyer need, and a scored match.
func seedMatch(t *testing.T, client *ent.Client) *ent.Match {
	t.Helper()
	ctx := context.Background()

	_, err := client.Company.Create().
		SetID("co-1").
		SetName("Lakeside Storage LLC").
		Save(ctx)
	require.NoError(t, err)

	_, err = client.Warehouse.Create().
		SetID("wh-1").
		SetCompanyID("co-1").
		SetAddress("500 Industrial Pkwy").
		SetCity("Fort Worth").
		SetState("TX").
		SetSupplierStatus(warehouse.SupplierStatusInNetwork).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.TruthCore.Create().
		SetID("tc-1").
		SetWarehouseID("wh-1").
		SetMinSqft(2000).
		SetMaxSqft(8000).
		SetSupplierRatePerSqft(5.00).
		SetActivationStatus(truthcore.ActivationStatusOn).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.BuyerNeed.Create().
		SetID("need-1").
		SetCity("Fort Worth").
		SetState("TX").
		SetMinSqft(4000).
		SetMaxSqft(6000).
		SetUseType("general_storage").
		Save(ctx)
	require.NoError(t, err)

	m, err := client.Match.Create().
		SetID("match-1").
		SetBuyerNeedID("need-1").
		SetWarehouseID("wh-1").
		SetCompositeScore(82).
		SetLocationScore(90).
		SetSizeScore(85).
		SetUseTypeScore(100).
		SetFeatureScore(60).
		SetTimingScore(70).
		SetBudgetScore(80).
		SetBuyerRate(6.36).
		Save(ctx)
	require.NoError(t, err)
	return m
}

func TestEngagementLifecycle(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	svc := NewService(client.Client, clearing.NewPricer(config.DefaultPricingConfig()))
	m := seedMatch(t, client.Client)

	e, err := svc.CreateFromMatch(ctx, CreateInput{
		MatchID: m.ID,
		Actor:   engagementevent.ActorRoleAdmin,
		ActorID: "admin-1",
	})
	require.NoError(t, err)
	assert.Equal(t, entengagement.StatusMatched, e.Status)
	assert.Equal(t, "co-1", e.CompanyID)

	step := func(target Status, actor Actor, actorID string) *ent.Engagement {
		t.Helper()
		out, err := svc.Transition(ctx, Command{
			EngagementID: e.ID, Target: target, Actor: actor, ActorID: actorID,
		})
		require.NoError(t, err, "transition to %s", target)
		return out
	}

	step(entengagement.StatusBuyerReviewing, engagementevent.ActorRoleBuyer, "")

	// Acceptance snapshots pricing from the truth core and the need midpoint.
	accepted := step(entengagement.StatusBuyerAccepted, engagementevent.ActorRoleBuyer, "")
	assert.Equal(t, 5000, accepted.Sqft)
	assert.Equal(t, 5.00, accepted.SupplierRate)
	assert.Equal(t, 6.36, accepted.BuyerRate)
	assert.Equal(t, 31800.0, accepted.MonthlyBuyerTotal)
	assert.Equal(t, 25000.0, accepted.MonthlySupplierPayout)

	updatedMatch, err := client.Match.Get(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, entmatch.StatusAccepted, updatedMatch.Status)

	// The supplier cannot drive a buyer-only transition.
	_, err = svc.Transition(ctx, Command{
		EngagementID: e.ID,
		Target:       entengagement.StatusContactCaptured,
		Actor:        engagementevent.ActorRoleSupplier,
	})
	var ite *InvalidTransitionError
	require.ErrorAs(t, err, &ite)

	step(entengagement.StatusContactCaptured, engagementevent.ActorRoleSystem, "")
	created := step(entengagement.StatusAccountCreated, engagementevent.ActorRoleBuyer, "buyer-1")
	assert.Equal(t, "buyer-1", created.BuyerID)

	// Signing the guarantee lands directly on address_revealed with both
	// audit events and the guarantee agreement written atomically.
	revealed, err := svc.SignGuarantee(ctx, e.ID, "buyer-1")
	require.NoError(t, err)
	assert.Equal(t, entengagement.StatusAddressRevealed, revealed.Status)
	require.NotNil(t, revealed.GuaranteeSignedAt)

	events, err := client.EngagementEvent.Query().
		Where(engagementevent.EngagementIDEQ(e.ID)).
		All(ctx)
	require.NoError(t, err)
	types := make([]string, 0, len(events))
	for _, ev := range events {
		types = append(types, ev.EventType)
	}
	assert.Contains(t, types, string(entengagement.StatusGuaranteeSigned))
	assert.Contains(t, types, string(entengagement.StatusAddressRevealed))

	guarantee, err := client.EngagementAgreement.Query().
		Where(
			engagementagreement.EngagementIDEQ(e.ID),
			engagementagreement.AgreementTypeEQ(engagementagreement.AgreementTypeGuarantee),
		).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, engagementagreement.StatusSigned, guarantee.Status)

	requested := step(entengagement.StatusTourRequested, engagementevent.ActorRoleBuyer, "buyer-1")
	require.NotNil(t, requested.Path)
	assert.Equal(t, entengagement.PathTour, *requested.Path)

	// Confirming without a tour date is rejected.
	_, err = svc.Transition(ctx, Command{
		EngagementID: e.ID,
		Target:       entengagement.StatusTourConfirmed,
		Actor:        engagementevent.ActorRoleSupplier,
	})
	var ge *GuardError
	require.ErrorAs(t, err, &ge)

	tourAt := time.Now().Add(48 * time.Hour).Truncate(time.Second)
	confirmed, err := svc.Transition(ctx, Command{
		EngagementID:     e.ID,
		Target:           entengagement.StatusTourConfirmed,
		Actor:            engagementevent.ActorRoleSupplier,
		TourScheduledFor: &tourAt,
	})
	require.NoError(t, err)
	require.NotNil(t, confirmed.TourScheduledFor)

	step(entengagement.StatusTourCompleted, engagementevent.ActorRoleBuyer, "buyer-1")
	step(entengagement.StatusBuyerConfirmed, engagementevent.ActorRoleBuyer, "buyer-1")
	step(entengagement.StatusAgreementSent, engagementevent.ActorRoleSystem, "")

	lease, err := client.EngagementAgreement.Query().
		Where(
			engagementagreement.EngagementIDEQ(e.ID),
			engagementagreement.AgreementTypeEQ(engagementagreement.AgreementTypeLease),
		).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, lease.Version)
	assert.Equal(t, engagementagreement.StatusSent, lease.Status)
	assert.Equal(t, 31800.0, lease.MonthlyBuyerTotal)

	// Countersignatures are required before the signed state.
	_, err = svc.Transition(ctx, Command{
		EngagementID: e.ID,
		Target:       entengagement.StatusAgreementSigned,
		Actor:        engagementevent.ActorRoleSystem,
	})
	require.ErrorAs(t, err, &ge)

	now := time.Now()
	err = client.EngagementAgreement.UpdateOneID(lease.ID).
		SetBuyerSignedAt(now).
		SetSupplierSignedAt(now).
		SetStatus(engagementagreement.StatusSigned).
		Exec(ctx)
	require.NoError(t, err)

	step(entengagement.StatusAgreementSigned, engagementevent.ActorRoleSystem, "")
	step(entengagement.StatusOnboarding, engagementevent.ActorRoleSystem, "")

	// Activation is blocked until all onboarding flags are set.
	_, err = svc.Transition(ctx, Command{
		EngagementID: e.ID,
		Target:       entengagement.StatusActive,
		Actor:        engagementevent.ActorRoleSystem,
	})
	require.ErrorAs(t, err, &ge)

	err = client.Engagement.UpdateOneID(e.ID).
		SetInsuranceUploaded(true).
		SetCompanyDocsUploaded(true).
		SetPaymentMethodAdded(true).
		Exec(ctx)
	require.NoError(t, err)

	active := step(entengagement.StatusActive, engagementevent.ActorRoleSystem, "")
	require.NotNil(t, active.ActivatedAt)
	require.NotNil(t, active.LeaseStartDate)

	// Activation bootstraps the first billing cycle.
	pay, err := client.PaymentRecord.Query().
		Where(paymentrecord.EngagementIDEQ(e.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, 31800.0, pay.BuyerAmount)
	assert.Equal(t, 25000.0, pay.SupplierAmount)
	assert.Equal(t, 6800.0, pay.WexAmount)

	start, _, due := BillingPeriod(time.Now())
	assert.True(t, start.Equal(pay.PeriodStart), "period start %v", pay.PeriodStart)
	assert.True(t, due.Equal(pay.DueDate), "due date %v", pay.DueDate)

	completed := step(entengagement.StatusCompleted, engagementevent.ActorRoleSystem, "")
	assert.Equal(t, entengagement.StatusCompleted, completed.Status)

	// Terminal states admit nothing, admin override included.
	_, err = svc.Transition(ctx, Command{
		EngagementID: e.ID,
		Target:       entengagement.StatusActive,
		Actor:        engagementevent.ActorRoleAdmin,
	})
	require.ErrorAs(t, err, &ite)
}

func TestCreateFromMatch_OnePerMatch(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	svc := NewService(client.Client, clearing.NewPricer(config.DefaultPricingConfig()))
	m := seedMatch(t, client.Client)

	_, err := svc.CreateFromMatch(ctx, CreateInput{
		MatchID: m.ID,
		Actor:   engagementevent.ActorRoleAdmin,
	})
	require.NoError(t, err)

	_, err = svc.CreateFromMatch(ctx, CreateInput{
		MatchID: m.ID,
		Actor:   engagementevent.ActorRoleAdmin,
	})
	require.Error(t, err)
	assert.True(t, ent.IsConstraintError(err))
}

func TestDecisionTimerPauseResume(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	svc := NewService(client.Client, clearing.NewPricer(config.DefaultPricingConfig()))
	m := seedMatch(t, client.Client)

	e, err := svc.CreateFromMatch(ctx, CreateInput{
		MatchID: m.ID,
		Actor:   engagementevent.ActorRoleAdmin,
	})
	require.NoError(t, err)

	completedAt := time.Now().Add(-24 * time.Hour).Truncate(time.Second)
	err = client.Engagement.UpdateOneID(e.ID).
		SetStatus(entengagement.StatusTourCompleted).
		SetTourCompletedAt(completedAt).
		Exec(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.PauseDecisionTimer(ctx, e.ID))
	// Pausing twice is a no-op.
	require.NoError(t, svc.PauseDecisionTimer(ctx, e.ID))

	paused, err := client.Engagement.Get(ctx, e.ID)
	require.NoError(t, err)
	require.NotNil(t, paused.DecisionTimerPausedAt)

	require.NoError(t, svc.ResumeDecisionTimer(ctx, e.ID))

	resumed, err := client.Engagement.Get(ctx, e.ID)
	require.NoError(t, err)
	assert.Nil(t, resumed.DecisionTimerPausedAt)
	// The paused interval is credited back to the decision clock.
	require.NotNil(t, resumed.TourCompletedAt)
	assert.True(t, resumed.TourCompletedAt.After(completedAt))

	pauseEvents, err := client.EngagementEvent.Query().
		Where(
			engagementevent.EngagementIDEQ(e.ID),
			engagementevent.EventTypeEQ(EventTimerPaused),
		).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, pauseEvents)
}
