package server

import (
	"github.com/gin-gonic/gin"

	"resume-editor/internal/enhance"
	"resume-editor/internal/health"
	"resume-editor/internal/resumes"
	"resume-editor/internal/shared/config"
	"resume-editor/internal/shared/metrics"
	"resume-editor/internal/shared/server/middleware"
)

// RouterDeps holds handlers and shared resources for the router.
type RouterDeps struct {
	Config         config.Config
	EnhanceHandler *enhance.Handler
	ResumeHandler  *resumes.Handler
	HealthHandler  *health.Handler
	EnhanceLimiter *middleware.RateLimiter
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	if deps.HealthHandler != nil {
		deps.HealthHandler.RegisterRoutes(r)
	}
	if deps.EnhanceHandler != nil {
		rule := middleware.RateLimitRule{Rate: deps.Config.EnhanceRate, Burst: deps.Config.EnhanceBurst}
		deps.EnhanceHandler.RegisterRoutes(r, middleware.RateLimit(rule, deps.EnhanceLimiter))
	}
	if deps.ResumeHandler != nil {
		deps.ResumeHandler.RegisterRoutes(r)
	}
	r.GET("/metrics", metrics.Handler())

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8000"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
