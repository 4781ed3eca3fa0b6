package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/warehouse-exchange/wex/ent"
	"github.com/warehouse-exchange/wex/ent/conversation"
	"github.com/warehouse-exchange/wex/ent/inboundmessage"
)

// smsInbound handles POST /webhooks/sms. It records the message durably and
// returns; the worker pool picks it up in arrival order. Provider retries
// dedupe on provider_ref.
func (s *Server) smsInbound(c *gin.Context) {
	var req struct {
		Phone       string     `json:"phone" binding:"required"`
		Body        string     `json:"body" binding:"required"`
		ProviderRef string     `json:"provider_ref"`
		ReceivedAt  *time.Time `json:"received_at"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	ctx := c.Request.Context()
	conv, err := s.loadOrCreateConversation(ctx, req.Phone)
	if err != nil {
		respondError(c, err)
		return
	}

	receivedAt := s.now()
	if req.ReceivedAt != nil {
		receivedAt = *req.ReceivedAt
	}

	create := s.client.InboundMessage.Create().
		SetID(uuid.NewString()).
		SetConversationID(conv.ID).
		SetPhone(req.Phone).
		SetBody(req.Body).
		SetReceivedAt(receivedAt)
	if req.ProviderRef != "" {
		create.SetProviderRef(req.ProviderRef)
	}
	msg, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Provider retry; the original message is already queued.
			c.JSON(http.StatusOK, gin.H{"status": "duplicate"})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "queued", "message_id": msg.ID})
}

// loadOrCreateConversation resolves the per-phone thread, creating it on
// first contact. The unique phone constraint absorbs the create race.
func (s *Server) loadOrCreateConversation(ctx context.Context, phone string) (*ent.Conversation, error) {
	conv, err := s.client.Conversation.Query().
		Where(conversation.PhoneEQ(phone)).
		Only(ctx)
	if err == nil {
		return conv, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to load conversation: %w", err)
	}

	conv, err = s.client.Conversation.Create().
		SetID(uuid.NewString()).
		SetPhone(phone).
		Save(ctx)
	if err == nil {
		return conv, nil
	}
	if ent.IsConstraintError(err) {
		return s.client.Conversation.Query().
			Where(conversation.PhoneEQ(phone)).
			Only(ctx)
	}
	return nil, fmt.Errorf("failed to create conversation: %w", err)
}

// peekConversation handles GET /api/admin/conversations/:phone — the admin
// read-only view of one SMS thread's state and recent queue entries.
func (s *Server) peekConversation(c *gin.Context) {
	ctx := c.Request.Context()
	conv, err := s.client.Conversation.Query().
		Where(conversation.PhoneEQ(c.Param("phone"))).
		Only(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	recent, err := s.client.InboundMessage.Query().
		Where(inboundmessage.ConversationIDEQ(conv.ID)).
		Order(ent.Desc(inboundmessage.FieldReceivedAt)).
		Limit(20).
		All(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	msgs := make([]gin.H, 0, len(recent))
	for _, m := range recent {
		msgs = append(msgs, gin.H{
			"id":          m.ID,
			"body":        m.Body,
			"status":      m.Status,
			"attempts":    m.Attempts,
			"received_at": m.ReceivedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{
		"conversation_id":    conv.ID,
		"phone":              conv.Phone,
		"phase":              conv.Phase,
		"status":             conv.Status,
		"persona":            conv.Persona,
		"turn_count":         conv.TurnCount,
		"engagement_id":      conv.EngagementID,
		"reengagement_stage": conv.ReengagementStage,
		"criteria":           conv.Criteria,
		"recent_messages":    msgs,
	})
}
