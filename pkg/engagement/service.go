package engagement

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/warehouse-exchange/wex/ent"
	entengagement "github.com/warehouse-exchange/wex/ent/engagement"
	"github.com/warehouse-exchange/wex/ent/engagementagreement"
	"github.com/warehouse-exchange/wex/ent/engagementevent"
	"github.com/warehouse-exchange/wex/ent/match"
	"github.com/warehouse-exchange/wex/pkg/clearing"
	"github.com/warehouse-exchange/wex/pkg/database"
)

// Command describes one requested transition.
type Command struct {
	EngagementID string
	Target       Status
	Actor        Actor
	ActorID      string

	// Reason feeds decline_reason or cancel_reason on the matching targets.
	Reason string

	// TourScheduledFor is required when confirming or rescheduling a tour.
	TourScheduledFor *time.Time

	// Metadata is copied onto the transition event.
	Metadata map[string]interface{}
}

// Service runs validated, transactional state transitions.
type Service struct {
	client *ent.Client
	pricer *clearing.Pricer
	now    func() time.Time
}

// NewService creates the transition service.
func NewService(client *ent.Client, pricer *clearing.Pricer) *Service {
	return &Service{client: client, pricer: pricer, now: time.Now}
}

// Transition validates and applies one state change. The engagement row is
// locked for the duration; the status change, its timestamps, the audit
// event, and any side effects commit together or not at all. A serialization
// conflict is retried once.
func (s *Service) Transition(ctx context.Context, cmd Command) (*ent.Engagement, error) {
	result, err := s.transitionOnce(ctx, cmd)
	if err != nil && isSerializationConflict(err) {
		slog.Warn("Transition hit a serialization conflict, retrying once",
			"engagement_id", cmd.EngagementID, "target", cmd.Target)
		result, err = s.transitionOnce(ctx, cmd)
	}
	return result, err
}

func (s *Service) transitionOnce(ctx context.Context, cmd Command) (*ent.Engagement, error) {
	var result *ent.Engagement
	err := database.WithTx(ctx, s.client, func(tx *ent.Tx) error {
		e, err := tx.Engagement.Query().
			Where(entengagement.IDEQ(cmd.EngagementID)).
			ForUpdate().
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return fmt.Errorf("engagement %s: %w", cmd.EngagementID, err)
			}
			return fmt.Errorf("failed to lock engagement: %w", err)
		}

		if err := s.validate(ctx, tx, e, cmd); err != nil {
			return err
		}

		updated, err := s.apply(ctx, tx, e, cmd)
		if err != nil {
			return err
		}

		if err := s.appendEvent(ctx, tx, e, cmd, string(cmd.Target)); err != nil {
			return err
		}
		result = updated
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Engagement transitioned",
		"engagement_id", cmd.EngagementID,
		"target", cmd.Target,
		"actor", cmd.Actor)
	return result, nil
}

// validate enforces reachability, actor permission, the visit-once rule, and
// the transition guard. Admin overrides skip the table but never terminal
// entry/exit rules or guards.
func (s *Service) validate(ctx context.Context, tx *ent.Tx, e *ent.Engagement, cmd Command) error {
	if IsTerminal(e.Status) {
		return &InvalidTransitionError{EngagementID: e.ID, From: e.Status, Target: cmd.Target,
			Actor: cmd.Actor, Reason: "terminal states admit no transitions"}
	}
	if cmd.Target == e.Status {
		return &InvalidTransitionError{EngagementID: e.ID, From: e.Status, Target: cmd.Target,
			Actor: cmd.Actor, Reason: "already in the target state"}
	}

	r, reachable := findRule(e.Status, cmd.Target)

	if cmd.Actor == engagementevent.ActorRoleAdmin {
		if !reachable && IsTerminal(cmd.Target) && cmd.Target != entengagement.StatusCancelled {
			return &InvalidTransitionError{EngagementID: e.ID, From: e.Status, Target: cmd.Target,
				Actor: cmd.Actor, Reason: "admin override cannot force this terminal state"}
		}
		if guard := guardsByTarget[cmd.Target]; guard != nil {
			return guard(ctx, tx, e)
		}
		return nil
	}

	if !reachable {
		return &InvalidTransitionError{EngagementID: e.ID, From: e.Status, Target: cmd.Target,
			Actor: cmd.Actor, Reason: "target is not reachable from the current state"}
	}
	if !actorAllowed(r, cmd.Actor) {
		return &InvalidTransitionError{EngagementID: e.ID, From: e.Status, Target: cmd.Target,
			Actor: cmd.Actor, Reason: "actor is not authorized for this transition"}
	}
	if !revisitExempt[cmd.Target] {
		if at := visitedAt(e, cmd.Target); at != nil {
			return &InvalidTransitionError{EngagementID: e.ID, From: e.Status, Target: cmd.Target,
				Actor: cmd.Actor, Reason: "state was already visited"}
		}
	}
	if r.guard != nil {
		return r.guard(ctx, tx, e)
	}
	return nil
}

// apply mutates the locked row: status, the target's timestamp, and the
// target-specific side effects.
func (s *Service) apply(ctx context.Context, tx *ent.Tx, e *ent.Engagement, cmd Command) (*ent.Engagement, error) {
	now := s.now()
	upd := tx.Engagement.UpdateOneID(e.ID).SetStatus(cmd.Target)

	switch cmd.Target {
	case entengagement.StatusBuyerAccepted:
		upd.SetBuyerAcceptedAt(now)
		if err := s.snapshotPricing(ctx, tx, e, upd); err != nil {
			return nil, err
		}
		if err := tx.Match.UpdateOneID(e.MatchID).
			SetStatus(match.StatusAccepted).
			Exec(ctx); err != nil {
			return nil, fmt.Errorf("failed to mark match accepted: %w", err)
		}
	case entengagement.StatusContactCaptured:
		upd.SetContactCapturedAt(now)
	case entengagement.StatusAccountCreated:
		upd.SetAccountCreatedAt(now)
		if cmd.ActorID != "" {
			upd.SetBuyerID(cmd.ActorID)
		}
	case entengagement.StatusAddressRevealed:
		upd.SetAddressRevealedAt(now)
	case entengagement.StatusTourRequested:
		upd.SetTourRequestedAt(now)
		upd.SetPath(entengagement.PathTour)
	case entengagement.StatusTourConfirmed:
		if e.TourConfirmedAt == nil {
			upd.SetTourConfirmedAt(now)
		}
		if cmd.TourScheduledFor == nil {
			return nil, &GuardError{EngagementID: e.ID, Target: cmd.Target,
				Reason: "a tour date is required to confirm"}
		}
		upd.SetTourScheduledFor(*cmd.TourScheduledFor)
	case entengagement.StatusTourRescheduled:
		upd.AddTourRescheduleCount(1)
		if cmd.TourScheduledFor != nil {
			upd.SetTourScheduledFor(*cmd.TourScheduledFor)
		}
	case entengagement.StatusTourCompleted:
		upd.SetTourCompletedAt(now)
	case entengagement.StatusInstantBookRequested:
		upd.SetInstantBookRequestedAt(now)
		upd.SetPath(entengagement.PathInstantBook)
	case entengagement.StatusInstantBookConfirmed:
		upd.SetInstantBookConfirmedAt(now)
	case entengagement.StatusBuyerConfirmed:
		upd.SetBuyerConfirmedAt(now)
	case entengagement.StatusAgreementSent:
		upd.SetAgreementSentAt(now)
		if err := s.sendLeaseAgreement(ctx, tx, e, now); err != nil {
			return nil, err
		}
	case entengagement.StatusAgreementSigned:
		upd.SetAgreementSignedAt(now)
	case entengagement.StatusActive:
		upd.SetActivatedAt(now)
		if e.LeaseStartDate == nil {
			upd.SetLeaseStartDate(now)
		}
		if err := s.bootstrapPayment(ctx, tx, e, now); err != nil {
			return nil, err
		}
	case entengagement.StatusCompleted:
		upd.SetCompletedAt(now)
		if e.LeaseEndDate == nil {
			upd.SetLeaseEndDate(now)
		}
	case entengagement.StatusDeclinedByBuyer:
		upd.SetDeclinedBy(entengagement.DeclinedByBuyer)
		if cmd.Reason != "" {
			upd.SetDeclineReason(cmd.Reason)
		}
	case entengagement.StatusDeclinedBySupplier:
		upd.SetDeclinedBy(entengagement.DeclinedBySupplier)
		if cmd.Reason != "" {
			upd.SetDeclineReason(cmd.Reason)
		}
	case entengagement.StatusCancelled:
		if cmd.Reason != "" {
			upd.SetCancelReason(cmd.Reason)
		}
	}

	updated, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update engagement: %w", err)
	}
	return updated, nil
}

// snapshotPricing freezes the money fields at acceptance time so later
// TruthCore edits cannot move an in-flight deal.
func (s *Service) snapshotPricing(ctx context.Context, tx *ent.Tx, e *ent.Engagement, upd *ent.EngagementUpdateOne) error {
	m, err := tx.Match.Query().
		Where(match.IDEQ(e.MatchID)).
		WithWarehouse(func(q *ent.WarehouseQuery) { q.WithTruthCore() }).
		WithBuyerNeed().
		Only(ctx)
	if err != nil {
		return fmt.Errorf("failed to load match for pricing snapshot: %w", err)
	}

	sqft, supplierRate, buyerTotal, supplierPayout, err := s.priceMatch(m)
	if err != nil {
		return &GuardError{EngagementID: e.ID, Target: entengagement.StatusBuyerAccepted,
			Reason: err.Error()}
	}

	upd.SetSqft(sqft).
		SetSupplierRate(supplierRate).
		SetBuyerRate(m.BuyerRate).
		SetMonthlyBuyerTotal(buyerTotal).
		SetMonthlySupplierPayout(supplierPayout)
	return nil
}

// priceMatch derives the snapshot numbers from a match loaded with its
// warehouse (plus truth core) and buyer need edges.
func (s *Service) priceMatch(m *ent.Match) (sqft int, supplierRate, buyerTotal, supplierPayout float64, err error) {
	core := m.Edges.Warehouse.Edges.TruthCore
	need := m.Edges.BuyerNeed
	if core == nil {
		return 0, 0, 0, 0, errors.New("warehouse has no activated listing to price against")
	}

	sqft = (need.MinSqft + need.MaxSqft) / 2
	if sqft > core.MaxSqft {
		sqft = core.MaxSqft
	}
	buyerTotal, supplierPayout = s.pricer.MonthlyTotals(core.SupplierRatePerSqft, sqft)
	return sqft, core.SupplierRatePerSqft, buyerTotal, supplierPayout, nil
}

// sendLeaseAgreement voids any earlier sent lease version and creates the
// next one, pricing snapshotted from the engagement.
func (s *Service) sendLeaseAgreement(ctx context.Context, tx *ent.Tx, e *ent.Engagement, now time.Time) error {
	last, err := tx.EngagementAgreement.Query().
		Where(
			engagementagreement.EngagementIDEQ(e.ID),
			engagementagreement.AgreementTypeEQ(engagementagreement.AgreementTypeLease),
		).
		Order(ent.Desc(engagementagreement.FieldVersion)).
		First(ctx)
	version := 1
	switch {
	case err == nil:
		version = last.Version + 1
		if last.Status == engagementagreement.StatusSent {
			if err := tx.EngagementAgreement.UpdateOneID(last.ID).
				SetStatus(engagementagreement.StatusVoided).
				Exec(ctx); err != nil {
				return fmt.Errorf("failed to void previous lease version: %w", err)
			}
		}
	case ent.IsNotFound(err):
	default:
		return fmt.Errorf("failed to load lease versions: %w", err)
	}

	_, err = tx.EngagementAgreement.Create().
		SetID(uuid.NewString()).
		SetEngagementID(e.ID).
		SetAgreementType(engagementagreement.AgreementTypeLease).
		SetVersion(version).
		SetStatus(engagementagreement.StatusSent).
		SetSqft(e.Sqft).
		SetBuyerRate(e.BuyerRate).
		SetSupplierRate(e.SupplierRate).
		SetMonthlyBuyerTotal(e.MonthlyBuyerTotal).
		SetMonthlySupplierPayout(e.MonthlySupplierPayout).
		SetExpiresAt(now.AddDate(0, 0, 7)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to create lease agreement: %w", err)
	}
	return nil
}

// bootstrapPayment creates the first billing cycle at activation so the buyer
// is never active without an upcoming invoice. The monthly job takes over from
// the next period.
func (s *Service) bootstrapPayment(ctx context.Context, tx *ent.Tx, e *ent.Engagement, now time.Time) error {
	start, end, due := BillingPeriod(now)
	_, err := tx.PaymentRecord.Create().
		SetID(uuid.NewString()).
		SetEngagementID(e.ID).
		SetPeriodStart(start).
		SetPeriodEnd(end).
		SetDueDate(due).
		SetBuyerAmount(e.MonthlyBuyerTotal).
		SetSupplierAmount(e.MonthlySupplierPayout).
		SetWexAmount(e.MonthlyBuyerTotal - e.MonthlySupplierPayout).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// A record for this period already exists; activation is rerunnable.
			return nil
		}
		return fmt.Errorf("failed to bootstrap payment record: %w", err)
	}
	return nil
}

// BillingPeriod returns the calendar-month billing window containing t:
// period start (the 1st, UTC midnight), period end (exclusive), and the due
// date five days into the period.
func BillingPeriod(t time.Time) (start, end, due time.Time) {
	u := t.UTC()
	start = time.Date(u.Year(), u.Month(), 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 1, 0)
	due = start.AddDate(0, 0, 5)
	return start, end, due
}

// appendEvent writes the audit row for one transition.
func (s *Service) appendEvent(ctx context.Context, tx *ent.Tx, before *ent.Engagement, cmd Command, eventType string) error {
	create := tx.EngagementEvent.Create().
		SetID(uuid.NewString()).
		SetEngagementID(before.ID).
		SetEventType(eventType).
		SetActorRole(cmd.Actor).
		SetFromStatus(string(before.Status)).
		SetToStatus(string(cmd.Target))
	if cmd.ActorID != "" {
		create.SetActorID(cmd.ActorID)
	}
	if len(cmd.Metadata) > 0 {
		create.SetMetadata(cmd.Metadata)
	}
	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("failed to append engagement event: %w", err)
	}
	return nil
}

// CreateInput mints an engagement from a scored match. Status picks the entry
// point: matched for settlement acceptance, buyer_accepted for an SMS
// commitment, deal_ping_sent for Tier-2 outreach.
type CreateInput struct {
	MatchID           string
	Status            Status
	Tier              entengagement.Tier
	Actor             Actor
	ActorID           string
	DealPingExpiresAt *time.Time
}

// CreateFromMatch creates the engagement, prices it when it starts accepted,
// and writes the first audit event, all in one transaction. A match can carry
// at most one engagement; a second create surfaces the constraint error.
func (s *Service) CreateFromMatch(ctx context.Context, in CreateInput) (*ent.Engagement, error) {
	if in.Status == "" {
		in.Status = entengagement.StatusMatched
	}
	if in.Tier == "" {
		in.Tier = entengagement.TierTier1
	}
	now := s.now()

	var result *ent.Engagement
	err := database.WithTx(ctx, s.client, func(tx *ent.Tx) error {
		m, err := tx.Match.Query().
			Where(match.IDEQ(in.MatchID)).
			WithWarehouse(func(q *ent.WarehouseQuery) { q.WithTruthCore() }).
			WithBuyerNeed().
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return fmt.Errorf("match %s: %w", in.MatchID, err)
			}
			return fmt.Errorf("failed to load match: %w", err)
		}

		create := tx.Engagement.Create().
			SetID(uuid.NewString()).
			SetMatchID(m.ID).
			SetBuyerNeedID(m.BuyerNeedID).
			SetWarehouseID(m.WarehouseID).
			SetCompanyID(m.Edges.Warehouse.CompanyID).
			SetStatus(in.Status).
			SetTier(in.Tier)

		switch in.Status {
		case entengagement.StatusBuyerAccepted:
			sqft, supplierRate, buyerTotal, supplierPayout, err := s.priceMatch(m)
			if err != nil {
				return &GuardError{EngagementID: in.MatchID,
					Target: entengagement.StatusBuyerAccepted, Reason: err.Error()}
			}
			create.SetBuyerAcceptedAt(now).
				SetSqft(sqft).
				SetSupplierRate(supplierRate).
				SetBuyerRate(m.BuyerRate).
				SetMonthlyBuyerTotal(buyerTotal).
				SetMonthlySupplierPayout(supplierPayout)
			if err := tx.Match.UpdateOneID(m.ID).
				SetStatus(match.StatusAccepted).
				Exec(ctx); err != nil {
				return fmt.Errorf("failed to mark match accepted: %w", err)
			}
		case entengagement.StatusDealPingSent:
			create.SetDealPingSentAt(now).
				SetNillableDealPingExpiresAt(in.DealPingExpiresAt)
		}

		e, err := create.Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to create engagement: %w", err)
		}

		event := tx.EngagementEvent.Create().
			SetID(uuid.NewString()).
			SetEngagementID(e.ID).
			SetEventType(string(in.Status)).
			SetActorRole(in.Actor).
			SetToStatus(string(in.Status))
		if in.ActorID != "" {
			event.SetActorID(in.ActorID)
		}
		if _, err := event.Save(ctx); err != nil {
			return fmt.Errorf("failed to append engagement event: %w", err)
		}
		result = e
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Engagement created",
		"engagement_id", result.ID, "match_id", in.MatchID, "status", in.Status)
	return result, nil
}

// SignGuarantee is the atomic two-step: the buyer signs the guarantee and the
// address is revealed in the same transaction, producing two audit events.
func (s *Service) SignGuarantee(ctx context.Context, engagementID, actorID string) (*ent.Engagement, error) {
	now := s.now()
	var result *ent.Engagement
	err := database.WithTx(ctx, s.client, func(tx *ent.Tx) error {
		e, err := tx.Engagement.Query().
			Where(entengagement.IDEQ(engagementID)).
			ForUpdate().
			Only(ctx)
		if err != nil {
			return fmt.Errorf("failed to lock engagement: %w", err)
		}
		if e.Status != entengagement.StatusAccountCreated {
			return &InvalidTransitionError{EngagementID: e.ID, From: e.Status,
				Target: entengagement.StatusGuaranteeSigned,
				Actor:  engagementevent.ActorRoleBuyer,
				Reason: "guarantee can only be signed from account_created"}
		}

		_, err = tx.EngagementAgreement.Create().
			SetID(uuid.NewString()).
			SetEngagementID(e.ID).
			SetAgreementType(engagementagreement.AgreementTypeGuarantee).
			SetStatus(engagementagreement.StatusSigned).
			SetBuyerSignedAt(now).
			SetSqft(e.Sqft).
			SetBuyerRate(e.BuyerRate).
			SetMonthlyBuyerTotal(e.MonthlyBuyerTotal).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to create guarantee agreement: %w", err)
		}

		result, err = tx.Engagement.UpdateOneID(e.ID).
			SetStatus(entengagement.StatusAddressRevealed).
			SetGuaranteeSignedAt(now).
			SetAddressRevealedAt(now).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to update engagement: %w", err)
		}

		sign := Command{EngagementID: e.ID, Target: entengagement.StatusGuaranteeSigned,
			Actor: engagementevent.ActorRoleBuyer, ActorID: actorID}
		if err := s.appendEvent(ctx, tx, e, sign, string(entengagement.StatusGuaranteeSigned)); err != nil {
			return err
		}
		signed := *e
		signed.Status = entengagement.StatusGuaranteeSigned
		reveal := Command{EngagementID: e.ID, Target: entengagement.StatusAddressRevealed,
			Actor: engagementevent.ActorRoleSystem}
		return s.appendEvent(ctx, tx, &signed, reveal, string(entengagement.StatusAddressRevealed))
	})
	if err != nil {
		return nil, err
	}
	slog.Info("Guarantee signed and address revealed", "engagement_id", engagementID)
	return result, nil
}

// PauseDecisionTimer stops the post-tour decision clock while a routed
// supplier question is outstanding. Idempotent.
func (s *Service) PauseDecisionTimer(ctx context.Context, engagementID string) error {
	return database.WithTx(ctx, s.client, func(tx *ent.Tx) error {
		e, err := tx.Engagement.Query().
			Where(entengagement.IDEQ(engagementID)).
			ForUpdate().
			Only(ctx)
		if err != nil {
			return fmt.Errorf("failed to lock engagement: %w", err)
		}
		if e.DecisionTimerPausedAt != nil {
			return nil
		}
		if err := tx.Engagement.UpdateOneID(e.ID).
			SetDecisionTimerPausedAt(s.now()).
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to pause decision timer: %w", err)
		}
		cmd := Command{EngagementID: e.ID, Actor: engagementevent.ActorRoleSystem, Target: e.Status}
		return s.appendEvent(ctx, tx, e, cmd, EventTimerPaused)
	})
}

// ResumeDecisionTimer restarts the clock: the paused interval is credited
// back by shifting tour_completed_at forward, so the 72-hour window excludes
// the time spent waiting on the supplier.
func (s *Service) ResumeDecisionTimer(ctx context.Context, engagementID string) error {
	return database.WithTx(ctx, s.client, func(tx *ent.Tx) error {
		e, err := tx.Engagement.Query().
			Where(entengagement.IDEQ(engagementID)).
			ForUpdate().
			Only(ctx)
		if err != nil {
			return fmt.Errorf("failed to lock engagement: %w", err)
		}
		if e.DecisionTimerPausedAt == nil {
			return nil
		}
		paused := s.now().Sub(*e.DecisionTimerPausedAt)
		upd := tx.Engagement.UpdateOneID(e.ID).ClearDecisionTimerPausedAt()
		if e.TourCompletedAt != nil {
			upd.SetTourCompletedAt(e.TourCompletedAt.Add(paused))
		}
		if err := upd.Exec(ctx); err != nil {
			return fmt.Errorf("failed to resume decision timer: %w", err)
		}
		cmd := Command{EngagementID: e.ID, Actor: engagementevent.ActorRoleSystem, Target: e.Status}
		return s.appendEvent(ctx, tx, e, cmd, EventTimerResumed)
	})
}

// isSerializationConflict detects Postgres serialization and deadlock
// failures, the only errors worth an automatic retry.
func isSerializationConflict(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "40001" || pgErr.Code == "40P01"
	}
	return false
}
