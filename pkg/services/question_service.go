package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/warehouse-exchange/wex/ent"
	"github.com/warehouse-exchange/wex/ent/notification"
	"github.com/warehouse-exchange/wex/ent/propertyknowledge"
	"github.com/warehouse-exchange/wex/ent/propertyquestion"
	"github.com/warehouse-exchange/wex/pkg/database"
	"github.com/warehouse-exchange/wex/pkg/engagement"
	"github.com/warehouse-exchange/wex/pkg/notify"
)

// QuestionService runs the buyer-to-supplier Q&A escalation: questions the
// knowledge base cannot answer are routed to the supplier over SMS, answers
// are folded back into PropertyKnowledge, and a routed question pauses the
// asking buyer's post-tour decision clock.
type QuestionService struct {
	client      *ent.Client
	engagements *engagement.Service
	now         func() time.Time
}

// NewQuestionService creates a new QuestionService
func NewQuestionService(client *ent.Client, engagements *engagement.Service) *QuestionService {
	return &QuestionService{client: client, engagements: engagements, now: time.Now}
}

// AskInput is one buyer question about a warehouse.
type AskInput struct {
	WarehouseID  string
	EngagementID string
	AskedByPhone string
	AskedByUser  string
	QuestionText string
	Topic        string
}

// AskResult reports whether the knowledge base answered instantly or the
// question was queued for the supplier.
type AskResult struct {
	Question *ent.PropertyQuestion
	Answer   string
	FromKB   bool
}

// Ask checks the knowledge base first; on a hit the question is recorded as
// answered immediately, on a miss it is created pending for routing.
func (s *QuestionService) Ask(ctx context.Context, in AskInput) (*AskResult, error) {
	if in.WarehouseID == "" || strings.TrimSpace(in.QuestionText) == "" {
		return nil, NewValidationError("question", "warehouse_id and question_text are required")
	}

	var known *ent.PropertyKnowledge
	if in.Topic != "" {
		row, err := s.client.PropertyKnowledge.Query().
			Where(
				propertyknowledge.WarehouseIDEQ(in.WarehouseID),
				propertyknowledge.TopicEQ(normalizeTopic(in.Topic)),
			).
			Only(ctx)
		if err != nil && !ent.IsNotFound(err) {
			return nil, fmt.Errorf("failed to query knowledge base: %w", err)
		}
		known = row
	}

	create := s.client.PropertyQuestion.Create().
		SetID(uuid.NewString()).
		SetWarehouseID(in.WarehouseID).
		SetQuestionText(in.QuestionText)
	if in.EngagementID != "" {
		create.SetEngagementID(in.EngagementID)
	}
	if in.AskedByPhone != "" {
		create.SetAskedByPhone(in.AskedByPhone)
	}
	if in.AskedByUser != "" {
		create.SetAskedByUserID(in.AskedByUser)
	}

	if known != nil {
		q, err := create.
			SetStatus(propertyquestion.StatusAnswered).
			SetAnswerText(known.Content).
			SetAnswerSource(propertyquestion.AnswerSourceKnowledge).
			SetAnsweredAt(s.now()).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to record answered question: %w", err)
		}
		return &AskResult{Question: q, Answer: known.Content, FromKB: true}, nil
	}

	q, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create question: %w", err)
	}
	return &AskResult{Question: q}, nil
}

// Route sends a pending question to the supplier and pauses the buyer's
// post-tour decision timer when the question is tied to an engagement.
func (s *QuestionService) Route(ctx context.Context, questionID string) error {
	q, err := s.client.PropertyQuestion.Query().
		Where(propertyquestion.IDEQ(questionID)).
		WithWarehouse().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("question %s: %w", questionID, ErrNotFound)
		}
		return fmt.Errorf("failed to load question: %w", err)
	}
	if q.Status != propertyquestion.StatusPending {
		return NewValidationError("status", "only pending questions can be routed")
	}
	wh := q.Edges.Warehouse
	if wh.ContactPhone == "" {
		return NewValidationError("contact_phone", "supplier has no phone on file")
	}

	err = database.WithTx(ctx, s.client, func(tx *ent.Tx) error {
		if err := tx.PropertyQuestion.UpdateOneID(q.ID).
			SetStatus(propertyquestion.StatusRouted).
			SetRoutedAt(s.now()).
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to mark question routed: %w", err)
		}
		return notify.EnqueueTx(ctx, tx, notify.Message{
			Channel:   notification.ChannelSms,
			Recipient: wh.ContactPhone,
			Body: fmt.Sprintf("A prospective tenant asked about %s: %q. Reply to answer.",
				wh.Address, q.QuestionText),
			RefType:   "property_question",
			RefID:     q.ID,
			DedupeKey: "question_routed:" + q.ID,
		})
	})
	if err != nil {
		return err
	}

	if q.EngagementID != "" {
		if err := s.engagements.PauseDecisionTimer(ctx, q.EngagementID); err != nil {
			slog.Warn("Failed to pause decision timer for routed question",
				"question_id", q.ID, "engagement_id", q.EngagementID, "error", err)
		}
	}
	slog.Info("Question routed to supplier", "question_id", q.ID, "warehouse_id", q.WarehouseID)
	return nil
}

// AnswerInput records the supplier's (or an admin's) answer.
type AnswerInput struct {
	QuestionID string
	AnswerText string
	Source     propertyquestion.AnswerSource
	Topic      string
}

// Answer closes a routed question, upserts the learned fact into the
// knowledge base, notifies the asking buyer, and resumes any paused decision
// timer.
func (s *QuestionService) Answer(ctx context.Context, in AnswerInput) error {
	if strings.TrimSpace(in.AnswerText) == "" {
		return NewValidationError("answer_text", "is required")
	}
	q, err := s.client.PropertyQuestion.Get(ctx, in.QuestionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("question %s: %w", in.QuestionID, ErrNotFound)
		}
		return fmt.Errorf("failed to load question: %w", err)
	}
	if q.Status != propertyquestion.StatusRouted && q.Status != propertyquestion.StatusPending {
		return NewValidationError("status", "question is already resolved")
	}

	source := in.Source
	if source == "" {
		source = propertyquestion.AnswerSourceSupplier
	}

	err = database.WithTx(ctx, s.client, func(tx *ent.Tx) error {
		if err := tx.PropertyQuestion.UpdateOneID(q.ID).
			SetStatus(propertyquestion.StatusAnswered).
			SetAnswerText(in.AnswerText).
			SetAnswerSource(source).
			SetAnsweredAt(s.now()).
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to record answer: %w", err)
		}

		if in.Topic != "" {
			if err := upsertKnowledge(ctx, tx, q.WarehouseID, in.Topic, in.AnswerText, q.ID); err != nil {
				return err
			}
		}

		if q.AskedByPhone != "" {
			return notify.EnqueueTx(ctx, tx, notify.Message{
				Channel:   notification.ChannelSms,
				Recipient: q.AskedByPhone,
				Body:      fmt.Sprintf("Answer on your question %q: %s", q.QuestionText, in.AnswerText),
				RefType:   "property_question",
				RefID:     q.ID,
				DedupeKey: "question_answered:" + q.ID,
			})
		}
		return nil
	})
	if err != nil {
		return err
	}

	if q.EngagementID != "" {
		if err := s.engagements.ResumeDecisionTimer(ctx, q.EngagementID); err != nil {
			slog.Warn("Failed to resume decision timer after answer",
				"question_id", q.ID, "engagement_id", q.EngagementID, "error", err)
		}
	}
	return nil
}

// upsertKnowledge keeps one row per (warehouse, topic) holding the latest
// answer.
func upsertKnowledge(ctx context.Context, tx *ent.Tx, warehouseID, topic, content, questionID string) error {
	err := tx.PropertyKnowledge.Create().
		SetID(uuid.NewString()).
		SetWarehouseID(warehouseID).
		SetTopic(normalizeTopic(topic)).
		SetContent(content).
		SetSource(propertyknowledge.SourceSupplier).
		SetSourceQuestionID(questionID).
		OnConflictColumns(propertyknowledge.FieldWarehouseID, propertyknowledge.FieldTopic).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert property knowledge: %w", err)
	}
	return nil
}

// normalizeTopic lowercases and snake_cases a topic key.
func normalizeTopic(topic string) string {
	t := strings.ToLower(strings.TrimSpace(topic))
	return strings.ReplaceAll(t, " ", "_")
}
