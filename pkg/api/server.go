// Package api is the HTTP boundary: thin gin adapters over the core
// services, with role-filtered response views enforcing economic isolation.
package api

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/warehouse-exchange/wex/ent"
	"github.com/warehouse-exchange/wex/pkg/clearing"
	"github.com/warehouse-exchange/wex/pkg/config"
	"github.com/warehouse-exchange/wex/pkg/database"
	"github.com/warehouse-exchange/wex/pkg/engagement"
	"github.com/warehouse-exchange/wex/pkg/marketrate"
	"github.com/warehouse-exchange/wex/pkg/queue"
	"github.com/warehouse-exchange/wex/pkg/services"
)

// Server carries the handler dependencies.
type Server struct {
	client      *ent.Client
	db          *database.Client
	cfg         *config.Config
	engagements *engagement.Service
	dla         *clearing.DLAService
	engine      *clearing.Engine
	needs       *services.BuyerNeedService
	warehouses  *services.WarehouseService
	rates       *marketrate.Service
	pool        *queue.WorkerPool
	now         func() time.Time
}

// Deps bundles the server's collaborators.
type Deps struct {
	Client      *ent.Client
	DB          *database.Client
	Config      *config.Config
	Engagements *engagement.Service
	DLA         *clearing.DLAService
	Engine      *clearing.Engine
	Needs       *services.BuyerNeedService
	Warehouses  *services.WarehouseService
	Rates       *marketrate.Service
	Pool        *queue.WorkerPool
}

// NewServer creates the API server.
func NewServer(d Deps) *Server {
	return &Server{
		client:      d.Client,
		db:          d.DB,
		cfg:         d.Config,
		engagements: d.Engagements,
		dla:         d.DLA,
		engine:      d.Engine,
		needs:       d.Needs,
		warehouses:  d.Warehouses,
		rates:       d.Rates,
		pool:        d.Pool,
		now:         time.Now,
	}
}

// Router builds the route table.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), securityHeaders())

	r.GET("/health", s.healthHandler)
	r.GET("/version", s.versionHandler)

	// DLA endpoints authenticate by token alone; no identity middleware.
	dla := r.Group("/api/dla/:token")
	{
		dla.POST("/confirm", s.dlaConfirm)
		dla.POST("/rate", s.dlaRate)
		dla.POST("/agree", s.dlaAgree)
		dla.POST("/outcome", s.dlaOutcome)
	}

	// Provider webhook; authenticated upstream by the transport layer.
	r.POST("/webhooks/sms", s.smsInbound)

	authed := r.Group("/api", identity())
	{
		authed.POST("/buyer-needs", s.createBuyerNeed)
		authed.POST("/buyer-needs/:id/clear", s.clearBuyerNeed)

		eng := authed.Group("/engagements/:id")
		{
			eng.GET("", s.getEngagement)
			eng.GET("/timeline", s.getTimeline)
			eng.POST("/deal-ping/accept", s.dealPingAccept)
			eng.POST("/deal-ping/decline", s.dealPingDecline)
			eng.POST("/accept", s.buyerAccept)
			eng.POST("/guarantee/sign", s.signGuarantee)
			eng.POST("/tour/request", s.tourRequest)
			eng.POST("/tour/confirm", s.tourConfirm)
			eng.POST("/tour/reschedule", s.tourReschedule)
			eng.POST("/tour/complete", s.tourComplete)
			eng.POST("/cancel", requireRole(RoleAdmin), s.cancelEngagement)
		}

		supplier := authed.Group("/supplier")
		{
			supplier.POST("/estimate", s.supplierEstimate)
			supplier.POST("/warehouse/:id/activate", s.activateWarehouse)
			supplier.PATCH("/warehouse/:id/toggle", s.toggleWarehouse)
		}

		admin := authed.Group("/admin", requireRole(RoleAdmin))
		{
			admin.GET("/engagements", s.listEngagements)
			admin.POST("/settlement/accept", s.settlementAccept)
			admin.GET("/conversations/:phone", s.peekConversation)
		}
	}
	return r
}

// securityHeaders sets the standard security response headers.
func securityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Next()
	}
}
