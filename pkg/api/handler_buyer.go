package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/warehouse-exchange/wex/ent"
	"github.com/warehouse-exchange/wex/pkg/services"
)

// matchView is the buyer-facing shape of one cleared match. Supplier
// economics never appear here.
type matchView struct {
	ID               string   `json:"id"`
	WarehouseID      string   `json:"warehouse_id"`
	CompositeScore   float64  `json:"composite_score"`
	BuyerRate        float64  `json:"buyer_rate"`
	WithinBudget     bool     `json:"within_budget"`
	InstantBook      bool     `json:"instant_book_eligible"`
	Callouts         []string `json:"callouts,omitempty"`
	Reasoning        string   `json:"reasoning,omitempty"`
	DistanceMiles    *float64 `json:"distance_miles,omitempty"`
}

// createBuyerNeed handles POST /api/buyer-needs.
func (s *Server) createBuyerNeed(c *gin.Context) {
	var req struct {
		Phone          string                 `json:"phone"`
		City           string                 `json:"city"`
		State          string                 `json:"state"`
		RadiusMiles    float64                `json:"radius_miles"`
		MinSqft        int                    `json:"min_sqft" binding:"required"`
		MaxSqft        int                    `json:"max_sqft" binding:"required"`
		UseType        string                 `json:"use_type" binding:"required"`
		NeededFrom     *time.Time             `json:"needed_from"`
		DurationMonths int                    `json:"duration_months"`
		MaxBudget      *float64               `json:"max_budget_per_sqft"`
		Requirements   map[string]interface{} `json:"requirements"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	id := callerIdentity(c)
	need, err := s.needs.Create(c.Request.Context(), services.CreateInput{
		BuyerID:        id.UserID,
		Phone:          req.Phone,
		City:           req.City,
		State:          req.State,
		RadiusMiles:    req.RadiusMiles,
		MinSqft:        req.MinSqft,
		MaxSqft:        req.MaxSqft,
		UseType:        req.UseType,
		NeededFrom:     req.NeededFrom,
		DurationMonths: req.DurationMonths,
		MaxBudget:      req.MaxBudget,
		Requirements:   req.Requirements,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": need.ID})
}

// clearBuyerNeed handles POST /api/buyer-needs/:id/clear — runs the clearing
// pipeline and returns the buyer-facing matches.
func (s *Server) clearBuyerNeed(c *gin.Context) {
	result, err := s.engine.Clear(c.Request.Context(), c.Param("id"))
	if err != nil {
		if ent.IsNotFound(err) {
			respondError(c, services.ErrNotFound)
			return
		}
		respondError(c, err)
		return
	}

	matches := make([]matchView, 0, len(result.Tier1))
	for _, m := range result.Tier1 {
		matches = append(matches, matchView{
			ID:             m.ID,
			WarehouseID:    m.WarehouseID,
			CompositeScore: m.CompositeScore,
			BuyerRate:      roundUpCent(m.BuyerRate),
			WithinBudget:   m.WithinBudget,
			InstantBook:    m.InstantBookEligible,
			Callouts:       m.Callouts,
			Reasoning:      m.Reasoning,
			DistanceMiles:  m.DistanceMiles,
		})
	}
	c.JSON(http.StatusOK, gin.H{
		"matches":       matches,
		"dla_triggered": result.DLATriggered,
	})
}
