package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/warehouse-exchange/wex/ent/togglehistory"
	"github.com/warehouse-exchange/wex/ent/truthcore"
	"github.com/warehouse-exchange/wex/pkg/services"
)

// supplierEstimate handles POST /api/supplier/estimate. Synchronous market
// band lookup: cache, then LLM-grounded fetch, then the regional fallback
// table.
func (s *Server) supplierEstimate(c *gin.Context) {
	var req struct {
		Sqft  int    `json:"sqft" binding:"required"`
		State string `json:"state" binding:"required"`
		Zip   string `json:"zip"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	band, err := s.rates.Band(c.Request.Context(), req.Zip, req.State)
	if err != nil {
		respondError(c, err)
		return
	}
	mid := (band.Low + band.High) / 2
	c.JSON(http.StatusOK, gin.H{
		"rate_low":         band.Low,
		"rate_high":        band.High,
		"monthly_estimate": mid * float64(req.Sqft),
	})
}

// activateWarehouse handles POST /api/supplier/warehouse/:id/activate.
func (s *Server) activateWarehouse(c *gin.Context) {
	var req struct {
		MinSqft        int        `json:"min_sqft" binding:"required"`
		MaxSqft        int        `json:"max_sqft" binding:"required"`
		ActivityTier   string     `json:"activity_tier" binding:"required"`
		SupplierRate   float64    `json:"supplier_rate" binding:"required"`
		AvailableFrom  *time.Time `json:"available_from"`
		DockDoors      int        `json:"dock_doors"`
		ClearHeightFt  float64    `json:"clear_height_ft"`
		HasOfficeSpace bool       `json:"has_office_space"`
		HasSprinkler   bool       `json:"has_sprinkler"`
		PowerService   string     `json:"power_service"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	tier := truthcore.ActivityTier(req.ActivityTier)
	if err := truthcore.ActivityTierValidator(tier); err != nil {
		respondError(c, services.NewValidationError("activity_tier", err.Error()))
		return
	}

	core, err := s.warehouses.Activate(c.Request.Context(), services.ActivateInput{
		WarehouseID:    c.Param("id"),
		MinSqft:        req.MinSqft,
		MaxSqft:        req.MaxSqft,
		ActivityTier:   tier,
		SupplierRate:   req.SupplierRate,
		AvailableFrom:  req.AvailableFrom,
		DockDoors:      req.DockDoors,
		ClearHeightFt:  req.ClearHeightFt,
		HasOfficeSpace: req.HasOfficeSpace,
		HasSprinkler:   req.HasSprinkler,
		PowerService:   req.PowerService,
		ActorID:        callerIdentity(c).UserID,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"truth_core_id":     core.ID,
		"activation_status": core.ActivationStatus,
	})
}

// toggleWarehouse handles PATCH /api/supplier/warehouse/:id/toggle.
func (s *Server) toggleWarehouse(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
		Reason string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	if req.Status != "on" && req.Status != "off" {
		respondError(c, services.NewValidationError("status", "must be on or off"))
		return
	}

	result, err := s.warehouses.Toggle(c.Request.Context(), services.ToggleInput{
		WarehouseID: c.Param("id"),
		On:          req.Status == "on",
		Source:      togglehistory.SourceWeb,
		ActorID:     callerIdentity(c).UserID,
		Reason:      req.Reason,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
