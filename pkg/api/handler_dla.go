package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/warehouse-exchange/wex/pkg/services"
)

// dlaConfirm handles POST /api/dla/:token/confirm — step one, the supplier
// confirms the building is theirs and sees the anonymized requirement.
func (s *Server) dlaConfirm(c *gin.Context) {
	confirm, err := s.dla.Confirm(c.Request.Context(), c.Param("token"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, confirm)
}

// dlaRate handles POST /api/dla/:token/rate — step two. With no body the
// blended suggestion is computed and returned; with {accept} or
// {counter_rate} the rate is locked in.
func (s *Server) dlaRate(c *gin.Context) {
	var req struct {
		Accept      bool     `json:"accept"`
		CounterRate *float64 `json:"counter_rate"`
	}
	_ = c.ShouldBindJSON(&req)

	if !req.Accept && req.CounterRate == nil {
		proposal, err := s.dla.SuggestRate(c.Request.Context(), c.Param("token"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, proposal)
		return
	}

	tok, err := s.dla.DecideRate(c.Request.Context(), c.Param("token"), req.CounterRate)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": tok.Status, "final_rate": tok.FinalRate})
}

// dlaAgree handles POST /api/dla/:token/agree — step three, the signature
// that converts the building into the network.
func (s *Server) dlaAgree(c *gin.Context) {
	if err := s.dla.Agree(c.Request.Context(), c.Param("token")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "confirmed"})
}

// dlaOutcome handles POST /api/dla/:token/outcome — the non-conversion exit,
// with an optional note kept for future routing.
func (s *Server) dlaOutcome(c *gin.Context) {
	var req struct {
		Outcome string `json:"outcome" binding:"required"`
		Note    string `json:"note"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	if req.Outcome != "declined" {
		respondError(c, services.NewValidationError("outcome", "must be declined"))
		return
	}

	if err := s.dla.Decline(c.Request.Context(), c.Param("token"), req.Note); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "declined"})
}
