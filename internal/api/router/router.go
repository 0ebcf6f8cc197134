package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hubdispatch/backend/config"
	"hubdispatch/backend/internal/api/handler"
	"hubdispatch/backend/internal/api/middleware"
	"hubdispatch/backend/internal/token"
	"hubdispatch/backend/pkg/redis"
)

// loginRateLimit and syncRateLimit bound the two endpoints spec §9 singles
// out for rate limiting: brute-force PIN guessing and accidental
// hammering of the manual sync trigger.
const (
	loginRateLimit  = 10
	loginRateWindow = time.Minute
	syncRateLimit   = 6
	syncRateWindow  = time.Minute
)

// Setup builds the Gin engine and wires every route in spec §6.
func Setup(cfg *config.Config, h *handler.Handler, tokenMgr *token.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.MaxAgeSeconds))
	r.Use(middleware.BodyLimit(1 << 20))

	r.GET("/health", h.Health.Health)
	r.GET("/", h.Health.Health)

	auth := r.Group("/auth")
	{
		auth.POST("/login", middleware.RateLimit(rdb, loginRateLimit, loginRateWindow), h.Auth.Login)
		auth.GET("/validate", middleware.Auth(tokenMgr), h.Auth.Validate)
	}

	dispatch := r.Group("/dispatch")
	dispatch.Use(middleware.Auth(tokenMgr), middleware.RequireApp(token.AppDispatch))
	{
		dispatch.GET("/rows", h.Dispatch.Rows)
		dispatch.PATCH("/update", h.Dispatch.Update)
		dispatch.POST("/ack", h.Dispatch.Ack)
	}

	lead := r.Group("/lead")
	lead.Use(middleware.Auth(tokenMgr), middleware.RequireApp(token.AppLead))
	{
		lead.GET("/init", h.Lead.Init)
		lead.GET("/rows", h.Lead.Rows)
		lead.PATCH("/update", h.Lead.Update)
		lead.POST("/ack", h.Lead.Ack)
	}

	archive := r.Group("/archive")
	archive.Use(middleware.Auth(tokenMgr), middleware.RequireApp(token.AppMgmt))
	{
		archive.GET("/dates", h.Archive.Dates)
		archive.GET("/rows", h.Archive.Rows)
	}

	admin := r.Group("/admin")
	admin.Use(middleware.Auth(tokenMgr), middleware.RequireApp(token.AppDispatch))
	{
		admin.POST("/sync", middleware.RateLimit(rdb, syncRateLimit, syncRateWindow), h.Admin.Sync)
	}

	return r
}
