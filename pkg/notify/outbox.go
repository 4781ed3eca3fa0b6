// Package notify implements the transactional delivery outbox. Domain code
// writes Notification rows inside its own transactions; the drain loop here
// hands pending rows to channel senders and records the result, so a crash
// between commit and send never loses a message and a resend never duplicates
// a dedupe-keyed one.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/warehouse-exchange/wex/ent"
	"github.com/warehouse-exchange/wex/ent/notification"
	"github.com/warehouse-exchange/wex/pkg/config"
)

// Sender delivers one notification over its channel.
type Sender interface {
	Send(ctx context.Context, n *ent.Notification) error
}

// LogSender writes the message to the log instead of a provider. Used for
// disabled channels and local environments.
type LogSender struct {
	Channel string
}

// Send logs the notification.
func (s *LogSender) Send(_ context.Context, n *ent.Notification) error {
	slog.Info("Notification (log sender)",
		"channel", s.Channel,
		"recipient", n.Recipient,
		"subject", n.Subject,
		"body", n.Body)
	return nil
}

// Message is one outbound notification to enqueue.
type Message struct {
	Channel   notification.Channel
	Recipient string
	Subject   string
	Body      string
	RefType   string
	RefID     string

	// DedupeKey, when set, makes the enqueue idempotent: a second enqueue
	// with the same key is silently dropped.
	DedupeKey string

	// ScheduledFor delays delivery; zero means next drain.
	ScheduledFor *time.Time
}

// Outbox drains pending notifications to the registered senders.
type Outbox struct {
	client  *ent.Client
	cfg     *config.NotificationsConfig
	senders map[notification.Channel]Sender
	now     func() time.Time

	stopCh chan struct{}
	doneCh chan struct{}
	mu     sync.Mutex
	active bool
}

// NewOutbox builds the outbox. Channels without an enabled provider fall back
// to the log sender.
func NewOutbox(client *ent.Client, cfg *config.NotificationsConfig, sms, email Sender) *Outbox {
	if sms == nil || !cfg.SMSEnabled {
		sms = &LogSender{Channel: "sms"}
	}
	if email == nil || !cfg.EmailEnabled {
		email = &LogSender{Channel: "email"}
	}
	return &Outbox{
		client: client,
		cfg:    cfg,
		senders: map[notification.Channel]Sender{
			notification.ChannelSms:   sms,
			notification.ChannelEmail: email,
		},
		now: time.Now,
	}
}

// EnqueueTx writes one notification row in the caller's transaction. A
// dedupe-key collision is absorbed.
func EnqueueTx(ctx context.Context, tx *ent.Tx, msg Message) error {
	create := tx.Notification.Create().
		SetID(uuid.NewString()).
		SetChannel(msg.Channel).
		SetRecipient(msg.Recipient).
		SetBody(msg.Body)
	if msg.Subject != "" {
		create.SetSubject(msg.Subject)
	}
	if msg.RefType != "" {
		create.SetRefType(msg.RefType).SetRefID(msg.RefID)
	}
	if msg.ScheduledFor != nil {
		create.SetScheduledFor(*msg.ScheduledFor)
	}
	if msg.DedupeKey != "" {
		create.SetDedupeKey(msg.DedupeKey)
		err := create.
			OnConflictColumns(notification.FieldDedupeKey).
			Ignore().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to enqueue notification: %w", err)
		}
		return nil
	}
	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("failed to enqueue notification: %w", err)
	}
	return nil
}

// Start runs the drain loop until Stop.
func (o *Outbox) Start(ctx context.Context) {
	o.mu.Lock()
	if o.active {
		o.mu.Unlock()
		return
	}
	o.active = true
	o.stopCh = make(chan struct{})
	o.doneCh = make(chan struct{})
	o.mu.Unlock()

	slog.Info("Notification outbox started", "interval", o.cfg.DrainInterval)
	go o.loop(ctx)
}

func (o *Outbox) loop(ctx context.Context) {
	defer close(o.doneCh)
	ticker := time.NewTicker(o.cfg.DrainInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-o.stopCh:
			return
		case <-ticker.C:
			if _, err := o.DrainOnce(ctx); err != nil {
				slog.Error("Outbox drain failed", "error", err)
			}
		}
	}
}

// Stop halts the drain loop and waits for the in-flight pass.
func (o *Outbox) Stop() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if !o.active {
		return
	}
	close(o.stopCh)
	<-o.doneCh
	o.active = false
	slog.Info("Notification outbox stopped")
}

// DrainOnce hands one batch of due pending rows to their senders and returns
// how many were delivered.
func (o *Outbox) DrainOnce(ctx context.Context) (int, error) {
	now := o.now()
	rows, err := o.client.Notification.Query().
		Where(
			notification.StatusEQ(notification.StatusPending),
			notification.Or(
				notification.ScheduledForIsNil(),
				notification.ScheduledForLTE(now),
			),
		).
		Order(ent.Asc(notification.FieldCreatedAt)).
		Limit(o.cfg.DrainBatchSize).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load pending notifications: %w", err)
	}

	sent := 0
	for _, n := range rows {
		sender := o.senders[n.Channel]
		if err := sender.Send(ctx, n); err != nil {
			o.recordFailure(ctx, n, err)
			continue
		}
		err := o.client.Notification.UpdateOneID(n.ID).
			SetStatus(notification.StatusSent).
			SetSentAt(o.now()).
			AddAttempts(1).
			Exec(ctx)
		if err != nil {
			slog.Error("Failed to mark notification sent", "notification_id", n.ID, "error", err)
			continue
		}
		sent++
	}
	return sent, nil
}

func (o *Outbox) recordFailure(ctx context.Context, n *ent.Notification, sendErr error) {
	upd := o.client.Notification.UpdateOneID(n.ID).
		AddAttempts(1).
		SetLastError(sendErr.Error())
	if n.Attempts+1 >= o.cfg.MaxAttempts {
		upd.SetStatus(notification.StatusFailed)
		slog.Error("Notification permanently failed",
			"notification_id", n.ID, "attempts", n.Attempts+1, "error", sendErr)
	} else {
		slog.Warn("Notification send failed, will retry",
			"notification_id", n.ID, "attempts", n.Attempts+1, "error", sendErr)
	}
	if err := upd.Exec(ctx); err != nil {
		slog.Error("Failed to record notification failure", "notification_id", n.ID, "error", err)
	}
}
