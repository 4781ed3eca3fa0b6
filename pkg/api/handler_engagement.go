package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/warehouse-exchange/wex/ent"
	entengagement "github.com/warehouse-exchange/wex/ent/engagement"
	"github.com/warehouse-exchange/wex/ent/engagementevent"
	"github.com/warehouse-exchange/wex/ent/user"
	"github.com/warehouse-exchange/wex/pkg/engagement"
	"github.com/warehouse-exchange/wex/pkg/services"
)

// loadAuthorized fetches the engagement and enforces resource-level access:
// buyers see their own engagements, suppliers see their company's, admins see
// everything.
func (s *Server) loadAuthorized(c *gin.Context) (*ent.Engagement, Identity, error) {
	id := callerIdentity(c)
	e, err := s.client.Engagement.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		return nil, id, err
	}

	switch id.Role {
	case RoleAdmin:
	case RoleBuyer:
		if e.BuyerID == "" || e.BuyerID != id.UserID {
			return nil, id, services.ErrForbidden
		}
	case RoleSupplier:
		u, err := s.client.User.Query().
			Where(user.IDEQ(id.UserID)).
			Only(c.Request.Context())
		if err != nil || u.CompanyID != e.CompanyID {
			return nil, id, services.ErrForbidden
		}
	}
	return e, id, nil
}

// transition runs one state-machine command for the caller and renders the
// updated role view.
func (s *Server) transition(c *gin.Context, target entengagement.Status, mutate func(*engagement.Command)) {
	e, id, err := s.loadAuthorized(c)
	if err != nil {
		respondError(c, err)
		return
	}

	cmd := engagement.Command{
		EngagementID: e.ID,
		Target:       target,
		Actor:        id.Actor(),
		ActorID:      id.UserID,
	}
	if mutate != nil {
		mutate(&cmd)
	}

	updated, err := s.engagements.Transition(c.Request.Context(), cmd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, engagementView(updated, id))
}

// getEngagement handles GET /api/engagements/:id.
func (s *Server) getEngagement(c *gin.Context) {
	e, id, err := s.loadAuthorized(c)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, engagementView(e, id))
}

// getTimeline handles GET /api/engagements/:id/timeline with optional
// event_type filtering and limit/offset paging.
func (s *Server) getTimeline(c *gin.Context) {
	e, _, err := s.loadAuthorized(c)
	if err != nil {
		respondError(c, err)
		return
	}

	page, err := bindPage(c)
	if err != nil {
		respondError(c, err)
		return
	}

	q := s.client.EngagementEvent.Query().
		Where(engagementevent.EngagementIDEQ(e.ID))
	if eventType := c.Query("event_type"); eventType != "" {
		q = q.Where(engagementevent.EventTypeEQ(eventType))
	}

	total, err := q.Clone().Count(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	events, err := q.
		Order(ent.Asc(engagementevent.FieldCreatedAt)).
		Limit(page.limit).
		Offset(page.offset).
		All(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"engagement_id": e.ID,
		"events":        timelineView(events),
		"total":         total,
	})
}

// engagementSortFields whitelists the sortable columns for the admin list.
var engagementSortFields = map[string]string{
	"created_at": entengagement.FieldCreatedAt,
	"updated_at": entengagement.FieldUpdatedAt,
	"status":     entengagement.FieldStatus,
}

// listEngagements handles GET /api/admin/engagements with status/tier
// filters, a sort whitelist, and limit/offset paging.
func (s *Server) listEngagements(c *gin.Context) {
	id := callerIdentity(c)

	page, err := bindPage(c)
	if err != nil {
		respondError(c, err)
		return
	}

	q := s.client.Engagement.Query()
	if status := c.Query("status"); status != "" {
		st := entengagement.Status(status)
		if err := entengagement.StatusValidator(st); err != nil {
			respondError(c, services.NewValidationError("status", "unknown status"))
			return
		}
		q = q.Where(entengagement.StatusEQ(st))
	}
	if tier := c.Query("tier"); tier != "" {
		tr := entengagement.Tier(tier)
		if err := entengagement.TierValidator(tr); err != nil {
			respondError(c, services.NewValidationError("tier", "unknown tier"))
			return
		}
		q = q.Where(entengagement.TierEQ(tr))
	}
	if c.Query("flagged") == "true" {
		q = q.Where(entengagement.AdminFlagged(true))
	}

	sortField := entengagement.FieldCreatedAt
	if sort := c.Query("sort"); sort != "" {
		field, ok := engagementSortFields[sort]
		if !ok {
			respondError(c, services.NewValidationError("sort",
				"must be one of created_at, updated_at, status"))
			return
		}
		sortField = field
	}
	order := ent.Desc(sortField)
	if c.Query("order") == "asc" {
		order = ent.Asc(sortField)
	}

	total, err := q.Clone().Count(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	rows, err := q.
		Order(order).
		Limit(page.limit).
		Offset(page.offset).
		All(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	views := make([]EngagementView, 0, len(rows))
	for _, e := range rows {
		views = append(views, engagementView(e, id))
	}
	c.JSON(http.StatusOK, gin.H{
		"engagements": views,
		"total":       total,
		"limit":       page.limit,
		"offset":      page.offset,
	})
}

// dealPingAccept handles POST /api/engagements/:id/deal-ping/accept.
func (s *Server) dealPingAccept(c *gin.Context) {
	s.transition(c, entengagement.StatusDealPingAccepted, nil)
}

// dealPingDecline handles POST /api/engagements/:id/deal-ping/decline.
func (s *Server) dealPingDecline(c *gin.Context) {
	var req struct {
		Reason string `json:"reason"`
	}
	_ = c.ShouldBindJSON(&req)
	s.transition(c, entengagement.StatusDealPingDeclined, func(cmd *engagement.Command) {
		cmd.Reason = req.Reason
	})
}

// buyerAccept handles POST /api/engagements/:id/accept {path}. The buyer
// chooses the tour path or, when the match qualifies, instant book.
func (s *Server) buyerAccept(c *gin.Context) {
	var req struct {
		Path string `json:"path" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	var target entengagement.Status
	switch req.Path {
	case "tour":
		target = entengagement.StatusTourRequested
	case "instant_book":
		target = entengagement.StatusInstantBookRequested
	default:
		respondError(c, services.NewValidationError("path", "must be tour or instant_book"))
		return
	}
	s.transition(c, target, nil)
}

// signGuarantee handles POST /api/engagements/:id/guarantee/sign. One
// transaction moves through guarantee_signed into address_revealed and
// writes both events.
func (s *Server) signGuarantee(c *gin.Context) {
	e, id, err := s.loadAuthorized(c)
	if err != nil {
		respondError(c, err)
		return
	}

	updated, err := s.engagements.SignGuarantee(c.Request.Context(), e.ID, id.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, engagementView(updated, id))
}

// tourRequest handles POST /api/engagements/:id/tour/request.
func (s *Server) tourRequest(c *gin.Context) {
	s.transition(c, entengagement.StatusTourRequested, nil)
}

// tourConfirm handles POST /api/engagements/:id/tour/confirm.
func (s *Server) tourConfirm(c *gin.Context) {
	at, err := bindTourTime(c)
	if err != nil {
		respondBindError(c, err)
		return
	}
	s.transition(c, entengagement.StatusTourConfirmed, func(cmd *engagement.Command) {
		cmd.TourScheduledFor = at
	})
}

// tourReschedule handles POST /api/engagements/:id/tour/reschedule.
func (s *Server) tourReschedule(c *gin.Context) {
	at, err := bindTourTime(c)
	if err != nil {
		respondBindError(c, err)
		return
	}
	s.transition(c, entengagement.StatusTourRescheduled, func(cmd *engagement.Command) {
		cmd.TourScheduledFor = at
	})
}

// tourComplete handles POST /api/engagements/:id/tour/complete.
func (s *Server) tourComplete(c *gin.Context) {
	s.transition(c, entengagement.StatusTourCompleted, nil)
}

// cancelEngagement handles POST /api/engagements/:id/cancel. Admin only.
func (s *Server) cancelEngagement(c *gin.Context) {
	var req struct {
		Reason string `json:"reason" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	s.transition(c, entengagement.StatusCancelled, func(cmd *engagement.Command) {
		cmd.Reason = req.Reason
	})
}

// settlementAccept handles POST /api/admin/settlement/accept. It bridges a
// cleared match into the engagement machine.
func (s *Server) settlementAccept(c *gin.Context) {
	var req struct {
		MatchID  string `json:"match_id" binding:"required"`
		DealType string `json:"deal_type"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	id := callerIdentity(c)
	e, err := s.engagements.CreateFromMatch(c.Request.Context(), engagement.CreateInput{
		MatchID: req.MatchID,
		Status:  entengagement.StatusMatched,
		Actor:   engagementevent.ActorRoleAdmin,
		ActorID: id.UserID,
	})
	if err != nil {
		if ent.IsConstraintError(err) {
			respondError(c, fmt.Errorf("match already settled: %w", services.ErrAlreadyExists))
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, engagementView(e, id))
}

// bindTourTime parses the scheduled tour time from the request body.
func bindTourTime(c *gin.Context) (*time.Time, error) {
	var req struct {
		ScheduledFor time.Time `json:"scheduled_for" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, err
	}
	return &req.ScheduledFor, nil
}
