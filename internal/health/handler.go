package health

import (
	"github.com/gin-gonic/gin"

	"resume-editor/internal/shared/server/respond"
)

// Handler serves the banner and health routes.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches GET / and GET /health.
func (h *Handler) RegisterRoutes(rg gin.IRoutes) {
	rg.GET("/", h.banner)
	rg.GET("/health", h.health)
}

func (h *Handler) banner(c *gin.Context) {
	respond.OK(c, gin.H{"message": Banner, "version": Version})
}

func (h *Handler) health(c *gin.Context) {
	respond.OK(c, h.Svc.Status())
}
