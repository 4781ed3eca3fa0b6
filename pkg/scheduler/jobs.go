package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/warehouse-exchange/wex/ent"
	"github.com/warehouse-exchange/wex/ent/conversation"
	entengagement "github.com/warehouse-exchange/wex/ent/engagement"
	"github.com/warehouse-exchange/wex/ent/engagementevent"
	"github.com/warehouse-exchange/wex/ent/notification"
	"github.com/warehouse-exchange/wex/ent/paymentrecord"
	"github.com/warehouse-exchange/wex/ent/propertyknowledge"
	"github.com/warehouse-exchange/wex/ent/propertyquestion"
	"github.com/warehouse-exchange/wex/pkg/config"
	"github.com/warehouse-exchange/wex/pkg/database"
	"github.com/warehouse-exchange/wex/pkg/engagement"
	"github.com/warehouse-exchange/wex/pkg/notify"
	"github.com/warehouse-exchange/wex/pkg/sms"
)

// Jobs holds the dependencies shared by all scheduler jobs.
type Jobs struct {
	client      *ent.Client
	cfg         *config.SchedulerConfig
	smsCfg      *config.SMSConfig
	engagements *engagement.Service
	now         func() time.Time
}

// NewJobs wires the job set.
func NewJobs(client *ent.Client, cfg *config.SchedulerConfig, smsCfg *config.SMSConfig,
	engagements *engagement.Service) *Jobs {
	return &Jobs{
		client:      client,
		cfg:         cfg,
		smsCfg:      smsCfg,
		engagements: engagements,
		now:         time.Now,
	}
}

// Register wires every job into the scheduler at its configured cadence.
func (j *Jobs) Register(s *Scheduler) error {
	s.AddInterval("deal_ping_expiry", j.cfg.DealPingCheckInterval, j.ExpireDealPings)
	s.AddInterval("deadline_check", j.cfg.DeadlineCheckInterval, j.EnforceDeadlines)
	s.AddInterval("post_tour_follow_up", j.cfg.FollowUpInterval, j.SendPostTourFollowUps)
	s.AddInterval("qa_deadline", j.cfg.QADeadlineInterval, j.ExpireRoutedQuestions)
	s.AddInterval("knowledge_backfill", j.cfg.KnowledgeBackfillInterval, j.BackfillKnowledge)
	s.AddInterval("reengagement_nudges", j.cfg.ReengagementInterval, j.SendReengagementNudges)

	dailies := []struct {
		name string
		at   string
		run  JobFunc
	}{
		{"tour_reminders", j.cfg.TourRemindersAt, j.SendTourReminders},
		{"payment_generation", j.cfg.PaymentGenerationAt, j.GeneratePaymentRecords},
		{"payment_reminders", j.cfg.PaymentRemindersAt, j.SendPaymentReminders},
		{"stale_engagement_flag", j.cfg.StaleFlagAt, j.FlagStaleEngagements},
		{"auto_activate_leases", j.cfg.AutoActivateAt, j.AutoActivateLeases},
		{"renewal_prompts", j.cfg.RenewalPromptsAt, j.SendRenewalPrompts},
	}
	for _, d := range dailies {
		if err := s.AddDaily(d.name, d.at, d.run); err != nil {
			return err
		}
	}
	return nil
}

// ExpireDealPings moves deal pings past their response window to expired.
func (j *Jobs) ExpireDealPings(ctx context.Context) (int, error) {
	rows, err := j.client.Engagement.Query().
		Where(
			entengagement.StatusEQ(entengagement.StatusDealPingSent),
			entengagement.DealPingExpiresAtNotNil(),
			entengagement.DealPingExpiresAtLT(j.now()),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query expired deal pings: %w", err)
	}
	return j.transitionAll(ctx, rows, entengagement.StatusDealPingExpired, "deal ping response window elapsed"), nil
}

// EnforceDeadlines expires engagements stuck past their state deadlines:
// unanswered tour requests, overdue post-tour decisions, and idle
// address-revealed deals. A paused decision timer exempts the engagement.
func (j *Jobs) EnforceDeadlines(ctx context.Context) (int, error) {
	now := j.now()
	total := 0

	stale, err := j.client.Engagement.Query().
		Where(
			entengagement.StatusEQ(entengagement.StatusTourRequested),
			entengagement.TourRequestedAtNotNil(),
			entengagement.TourRequestedAtLT(now.Add(-j.cfg.TourRequestTimeout)),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query stale tour requests: %w", err)
	}
	total += j.transitionAll(ctx, stale, entengagement.StatusExpired, "tour request unanswered")

	undecided, err := j.client.Engagement.Query().
		Where(
			entengagement.StatusEQ(entengagement.StatusTourCompleted),
			entengagement.TourCompletedAtNotNil(),
			entengagement.TourCompletedAtLT(now.Add(-j.cfg.PostTourDecisionTimeout)),
			entengagement.DecisionTimerPausedAtIsNil(),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query overdue post-tour decisions: %w", err)
	}
	total += j.transitionAll(ctx, undecided, entengagement.StatusExpired, "post-tour decision window elapsed")

	idle, err := j.client.Engagement.Query().
		Where(
			entengagement.StatusEQ(entengagement.StatusAddressRevealed),
			entengagement.UpdatedAtLT(now.Add(-j.cfg.AddressRevealedIdleTimeout)),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query idle revealed engagements: %w", err)
	}
	total += j.transitionAll(ctx, idle, entengagement.StatusExpired, "no activity after address reveal")

	return total, nil
}

// SendTourReminders reminds both sides of tours scheduled for tomorrow, once
// per day per engagement.
func (j *Jobs) SendTourReminders(ctx context.Context) (int, error) {
	now := j.now()
	dayStart := startOfDay(now).AddDate(0, 0, 1)
	dayEnd := dayStart.AddDate(0, 0, 1)

	rows, err := j.client.Engagement.Query().
		Where(
			entengagement.StatusEQ(entengagement.StatusTourConfirmed),
			entengagement.TourScheduledForNotNil(),
			entengagement.TourScheduledForGTE(dayStart),
			entengagement.TourScheduledForLT(dayEnd),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query tomorrow's tours: %w", err)
	}

	count := 0
	for _, e := range rows {
		sent, err := j.remindOnce(ctx, e, engagement.EventReminderSent,
			fmt.Sprintf("Reminder: your warehouse tour is tomorrow at %s.",
				e.TourScheduledFor.Format("3:04 PM")))
		if err != nil {
			slog.Error("Tour reminder failed", "engagement_id", e.ID, "error", err)
			continue
		}
		if sent {
			count++
		}
	}
	return count, nil
}

// SendPostTourFollowUps nudges buyers who toured at least a day ago and have
// not decided. One follow-up per engagement, ever.
func (j *Jobs) SendPostTourFollowUps(ctx context.Context) (int, error) {
	rows, err := j.client.Engagement.Query().
		Where(
			entengagement.StatusEQ(entengagement.StatusTourCompleted),
			entengagement.TourCompletedAtNotNil(),
			entengagement.TourCompletedAtLT(j.now().Add(-j.cfg.FollowUpAfter)),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query toured engagements: %w", err)
	}

	count := 0
	for _, e := range rows {
		exists, err := j.client.EngagementEvent.Query().
			Where(
				engagementevent.EngagementIDEQ(e.ID),
				engagementevent.EventTypeEQ(engagement.EventFollowUpSent),
			).
			Exist(ctx)
		if err != nil {
			return count, fmt.Errorf("failed to check follow-up history: %w", err)
		}
		if exists {
			continue
		}
		sent, err := j.notifyWithEvent(ctx, e, engagement.EventFollowUpSent,
			"How was the tour? Reply if you want to move forward, or let me know what's holding you back.")
		if err != nil {
			slog.Error("Post-tour follow-up failed", "engagement_id", e.ID, "error", err)
			continue
		}
		if sent {
			count++
		}
	}
	return count, nil
}

// ExpireRoutedQuestions closes supplier questions past the routing deadline
// and restarts the asking buyer's decision clock.
func (j *Jobs) ExpireRoutedQuestions(ctx context.Context) (int, error) {
	rows, err := j.client.PropertyQuestion.Query().
		Where(
			propertyquestion.StatusEQ(propertyquestion.StatusRouted),
			propertyquestion.RoutedAtNotNil(),
			propertyquestion.RoutedAtLT(j.now().Add(-j.cfg.QARouteDeadline)),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query overdue questions: %w", err)
	}

	count := 0
	for _, q := range rows {
		if err := j.client.PropertyQuestion.UpdateOneID(q.ID).
			SetStatus(propertyquestion.StatusExpired).
			Exec(ctx); err != nil {
			slog.Error("Failed to expire question", "question_id", q.ID, "error", err)
			continue
		}
		if q.EngagementID != "" {
			if err := j.engagements.ResumeDecisionTimer(ctx, q.EngagementID); err != nil {
				slog.Warn("Failed to resume decision timer after question expiry",
					"question_id", q.ID, "engagement_id", q.EngagementID, "error", err)
			}
		}
		count++
	}
	return count, nil
}

// BackfillKnowledge folds answered questions that never produced a knowledge
// row into PropertyKnowledge, deriving the topic from the question text.
func (j *Jobs) BackfillKnowledge(ctx context.Context) (int, error) {
	rows, err := j.client.PropertyQuestion.Query().
		Where(
			propertyquestion.StatusEQ(propertyquestion.StatusAnswered),
			propertyquestion.AnswerTextNEQ(""),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query answered questions: %w", err)
	}

	count := 0
	for _, q := range rows {
		covered, err := j.client.PropertyKnowledge.Query().
			Where(propertyknowledge.SourceQuestionIDEQ(q.ID)).
			Exist(ctx)
		if err != nil {
			return count, fmt.Errorf("failed to check knowledge coverage: %w", err)
		}
		if covered {
			continue
		}

		topic := "q_" + q.ID[:8]
		if topics := sms.DetectTopics(q.QuestionText); len(topics) > 0 {
			topic = topics[0]
		}
		err = j.client.PropertyKnowledge.Create().
			SetID(uuid.NewString()).
			SetWarehouseID(q.WarehouseID).
			SetTopic(topic).
			SetContent(q.AnswerText).
			SetSource(propertyknowledge.SourceSupplier).
			SetSourceQuestionID(q.ID).
			OnConflictColumns(propertyknowledge.FieldWarehouseID, propertyknowledge.FieldTopic).
			Ignore().
			Exec(ctx)
		if err != nil {
			slog.Error("Knowledge backfill failed", "question_id", q.ID, "error", err)
			continue
		}
		count++
	}
	return count, nil
}

// GeneratePaymentRecords creates the current month's billing row for every
// active engagement. The (engagement_id, period_start) uniqueness makes a
// rerun a no-op.
func (j *Jobs) GeneratePaymentRecords(ctx context.Context) (int, error) {
	rows, err := j.client.Engagement.Query().
		Where(entengagement.StatusEQ(entengagement.StatusActive)).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query active engagements: %w", err)
	}

	start, end, due := engagement.BillingPeriod(j.now())
	count := 0
	for _, e := range rows {
		err := j.client.PaymentRecord.Create().
			SetID(uuid.NewString()).
			SetEngagementID(e.ID).
			SetPeriodStart(start).
			SetPeriodEnd(end).
			SetDueDate(due).
			SetBuyerAmount(e.MonthlyBuyerTotal).
			SetSupplierAmount(e.MonthlySupplierPayout).
			SetWexAmount(e.MonthlyBuyerTotal - e.MonthlySupplierPayout).
			Exec(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				continue
			}
			slog.Error("Payment generation failed", "engagement_id", e.ID, "error", err)
			continue
		}
		count++
	}
	return count, nil
}

// SendPaymentReminders nudges buyers with an invoiced payment due within the
// reminder window, once per day per engagement.
func (j *Jobs) SendPaymentReminders(ctx context.Context) (int, error) {
	now := j.now()
	rows, err := j.client.PaymentRecord.Query().
		Where(
			paymentrecord.BuyerStatusEQ(paymentrecord.BuyerStatusInvoiced),
			paymentrecord.DueDateLTE(now.Add(j.cfg.PaymentReminderWindow)),
			paymentrecord.DueDateGTE(startOfDay(now)),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query due payments: %w", err)
	}

	count := 0
	for _, p := range rows {
		e, err := j.client.Engagement.Get(ctx, p.EngagementID)
		if err != nil {
			slog.Error("Failed to load engagement for payment reminder",
				"payment_id", p.ID, "error", err)
			continue
		}
		sent, err := j.remindOnce(ctx, e, engagement.EventReminderSent,
			fmt.Sprintf("Your warehouse payment of $%.2f is due %s.",
				p.BuyerAmount, p.DueDate.Format("Jan 2")))
		if err != nil {
			slog.Error("Payment reminder failed", "engagement_id", e.ID, "error", err)
			continue
		}
		if sent {
			count++
		}
	}
	return count, nil
}

// FlagStaleEngagements marks in-flight deals with no movement for the
// attention of an admin.
func (j *Jobs) FlagStaleEngagements(ctx context.Context) (int, error) {
	rows, err := j.client.Engagement.Query().
		Where(
			entengagement.AdminFlagged(false),
			entengagement.StatusNotIn(append(terminalStatuses(), entengagement.StatusActive)...),
			entengagement.UpdatedAtLT(j.now().Add(-j.cfg.StaleEngagementAfter)),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query stale engagements: %w", err)
	}

	count := 0
	for _, e := range rows {
		err := database.WithTx(ctx, j.client, func(tx *ent.Tx) error {
			if err := tx.Engagement.UpdateOneID(e.ID).
				SetAdminFlagged(true).
				Exec(ctx); err != nil {
				return err
			}
			return appendSystemEvent(ctx, tx, e, engagement.EventAdminNote,
				fmt.Sprintf("no activity in %s while %s", j.cfg.StaleEngagementAfter, e.Status))
		})
		if err != nil {
			slog.Error("Failed to flag stale engagement", "engagement_id", e.ID, "error", err)
			continue
		}
		count++
	}
	return count, nil
}

// AutoActivateLeases activates onboarded engagements whose lease has started.
// The onboarding guard re-checks the three upload flags inside the
// transition.
func (j *Jobs) AutoActivateLeases(ctx context.Context) (int, error) {
	rows, err := j.client.Engagement.Query().
		Where(
			entengagement.StatusEQ(entengagement.StatusOnboarding),
			entengagement.InsuranceUploaded(true),
			entengagement.CompanyDocsUploaded(true),
			entengagement.PaymentMethodAdded(true),
			entengagement.LeaseStartDateNotNil(),
			entengagement.LeaseStartDateLTE(endOfDay(j.now())),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query activatable engagements: %w", err)
	}

	count := 0
	for _, e := range rows {
		if _, err := j.engagements.Transition(ctx, engagement.Command{
			EngagementID: e.ID,
			Target:       entengagement.StatusActive,
			Actor:        engagementevent.ActorRoleSystem,
		}); err != nil {
			slog.Error("Auto-activation failed", "engagement_id", e.ID, "error", err)
			continue
		}
		err := database.WithTx(ctx, j.client, func(tx *ent.Tx) error {
			return appendSystemEvent(ctx, tx, e, engagement.EventLeaseActivated, "lease start date reached")
		})
		if err != nil {
			slog.Warn("Failed to record lease activation event",
				"engagement_id", e.ID, "error", err)
		}
		count++
	}
	return count, nil
}

// SendRenewalPrompts nudges active leases approaching their end date, once
// per day per engagement.
func (j *Jobs) SendRenewalPrompts(ctx context.Context) (int, error) {
	now := j.now()
	rows, err := j.client.Engagement.Query().
		Where(
			entengagement.StatusEQ(entengagement.StatusActive),
			entengagement.LeaseEndDateNotNil(),
			entengagement.LeaseEndDateLTE(now.Add(j.cfg.RenewalWindow)),
			entengagement.LeaseEndDateGTE(now),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query expiring leases: %w", err)
	}

	count := 0
	for _, e := range rows {
		sent, err := j.remindOnce(ctx, e, engagement.EventRenewalPrompt,
			fmt.Sprintf("Your warehouse lease ends %s. Want to renew or extend?",
				e.LeaseEndDate.Format("Jan 2")))
		if err != nil {
			slog.Error("Renewal prompt failed", "engagement_id", e.ID, "error", err)
			continue
		}
		if sent {
			count++
		}
	}
	return count, nil
}

// SendReengagementNudges pushes stalled SMS conversations forward on the
// phase-keyed nudge ladder, stalling the thread when the ladder runs out.
func (j *Jobs) SendReengagementNudges(ctx context.Context) (int, error) {
	now := j.now()
	rows, err := j.client.Conversation.Query().
		Where(
			conversation.StatusEQ(conversation.StatusActive),
			conversation.NextReengagementAtNotNil(),
			conversation.NextReengagementAtLTE(now),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query stalled conversations: %w", err)
	}

	count := 0
	for _, conv := range rows {
		err := database.WithTx(ctx, j.client, func(tx *ent.Tx) error {
			stage := conv.ReengagementStage + 1
			if err := notify.EnqueueTx(ctx, tx, notify.Message{
				Channel:   notification.ChannelSms,
				Recipient: conv.Phone,
				Body:      nudgeBody(conv),
				RefType:   "conversation",
				RefID:     conv.ID,
				DedupeKey: fmt.Sprintf("nudge:%s:%d", conv.ID, stage),
			}); err != nil {
				return err
			}

			upd := tx.Conversation.UpdateOneID(conv.ID).
				SetReengagementStage(stage).
				SetLastOutboundAt(now)
			rule, ok := j.smsCfg.StallRules[string(conv.Phase)]
			if ok && stage < len(rule.Delays) {
				upd.SetNextReengagementAt(now.Add(rule.Delays[stage]))
			} else {
				upd.ClearNextReengagementAt().
					SetStatus(conversation.StatusStalled)
			}
			return upd.Exec(ctx)
		})
		if err != nil {
			slog.Error("Re-engagement nudge failed", "conversation_id", conv.ID, "error", err)
			continue
		}
		count++
	}
	return count, nil
}

// transitionAll applies one system transition to a batch, counting successes.
func (j *Jobs) transitionAll(ctx context.Context, rows []*ent.Engagement,
	target entengagement.Status, reason string) int {
	count := 0
	for _, e := range rows {
		if _, err := j.engagements.Transition(ctx, engagement.Command{
			EngagementID: e.ID,
			Target:       target,
			Actor:        engagementevent.ActorRoleSystem,
			Reason:       reason,
		}); err != nil {
			slog.Error("Deadline transition failed",
				"engagement_id", e.ID, "target", target, "error", err)
			continue
		}
		count++
	}
	return count
}

// remindOnce sends one reminder of the given type per engagement per day.
func (j *Jobs) remindOnce(ctx context.Context, e *ent.Engagement, eventType, body string) (bool, error) {
	day := startOfDay(j.now())
	exists, err := j.client.EngagementEvent.Query().
		Where(
			engagementevent.EngagementIDEQ(e.ID),
			engagementevent.EventTypeEQ(eventType),
			engagementevent.CreatedAtGTE(day),
			engagementevent.CreatedAtLT(day.AddDate(0, 0, 1)),
		).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check reminder history: %w", err)
	}
	if exists {
		return false, nil
	}
	return j.notifyWithEvent(ctx, e, eventType, body)
}

// notifyWithEvent writes the audit event and the buyer notification in one
// transaction. Engagements without a reachable buyer phone still get the
// event so the attempt is visible.
func (j *Jobs) notifyWithEvent(ctx context.Context, e *ent.Engagement, eventType, body string) (bool, error) {
	phone := j.buyerPhone(ctx, e)
	err := database.WithTx(ctx, j.client, func(tx *ent.Tx) error {
		if err := appendSystemEvent(ctx, tx, e, eventType, body); err != nil {
			return err
		}
		if phone == "" {
			return nil
		}
		return notify.EnqueueTx(ctx, tx, notify.Message{
			Channel:   notification.ChannelSms,
			Recipient: phone,
			Body:      body,
			RefType:   "engagement",
			RefID:     e.ID,
			DedupeKey: fmt.Sprintf("%s:%s:%s", eventType, e.ID, startOfDay(j.now()).Format("2006-01-02")),
		})
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// buyerPhone resolves the buyer-side phone through the originating need.
func (j *Jobs) buyerPhone(ctx context.Context, e *ent.Engagement) string {
	need, err := j.client.BuyerNeed.Get(ctx, e.BuyerNeedID)
	if err != nil {
		slog.Warn("Failed to load buyer need for notification",
			"engagement_id", e.ID, "error", err)
		return ""
	}
	return need.Phone
}

// appendSystemEvent writes one system-actor audit row.
func appendSystemEvent(ctx context.Context, tx *ent.Tx, e *ent.Engagement, eventType, note string) error {
	create := tx.EngagementEvent.Create().
		SetID(uuid.NewString()).
		SetEngagementID(e.ID).
		SetEventType(eventType).
		SetActorRole(engagementevent.ActorRoleSystem).
		SetFromStatus(string(e.Status)).
		SetToStatus(string(e.Status))
	if note != "" {
		create.SetMetadata(map[string]interface{}{"note": note})
	}
	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("failed to append engagement event: %w", err)
	}
	return nil
}

// terminalStatuses lists the states the stale flag never applies to.
func terminalStatuses() []entengagement.Status {
	return []entengagement.Status{
		entengagement.StatusDealPingDeclined,
		entengagement.StatusDealPingExpired,
		entengagement.StatusCompleted,
		entengagement.StatusDeclinedByBuyer,
		entengagement.StatusDeclinedBySupplier,
		entengagement.StatusExpired,
		entengagement.StatusCancelled,
	}
}

// nudgeBody picks the nudge line for a conversation's phase.
func nudgeBody(conv *ent.Conversation) string {
	name := ""
	if conv.RenterFirstName != "" {
		name = conv.RenterFirstName + ", "
	}
	switch conv.Phase {
	case conversation.PhasePresenting:
		return fmt.Sprintf("%sstill thinking about those spaces? Reply with a number and I can set up a visit or answer questions.", name)
	case conversation.PhaseQualifying:
		return fmt.Sprintf("%sjust checking in. Tell me a bit more about what you need and I'll pull the current options.", name)
	case conversation.PhasePropertyFocused:
		return fmt.Sprintf("%sany more questions about that space, or want to see it in person?", name)
	case conversation.PhaseCollectingInfo:
		return fmt.Sprintf("%sI just need your name and email to keep things moving.", name)
	case conversation.PhaseCommitment, conversation.PhaseGuaranteePending:
		return fmt.Sprintf("%syour space is still available. Sign the guarantee when you're ready and the address unlocks right away.", name)
	case conversation.PhaseTourScheduling:
		return fmt.Sprintf("%sstill want to tour? Let me know what times work and I'll get it confirmed.", name)
	}
	return fmt.Sprintf("%sstill looking for warehouse space? I'm here whenever you're ready.", name)
}

// startOfDay truncates to local midnight.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// endOfDay is the last instant before the next local midnight.
func endOfDay(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}
