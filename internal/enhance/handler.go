package enhance

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-editor/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches the enhancement route; extra middleware runs before the handler.
func (h *Handler) RegisterRoutes(rg gin.IRoutes, mw ...gin.HandlerFunc) {
	rg.POST("/ai-enhance", append(mw, h.enhance)...)
}

// Pointers let an explicit empty string through binding while still rejecting absent fields.
type enhanceRequest struct {
	Section *string `json:"section" binding:"required"`
	Content *string `json:"content" binding:"required"`
}

type enhanceResponse struct {
	EnhancedContent string `json:"enhanced_content"`
}

func (h *Handler) enhance(c *gin.Context) {
	var req enhanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, respond.CodeValidation, "invalid request body", err.Error())
		return
	}
	c.Set("section", *req.Section)

	out, err := h.Svc.Enhance(c.Request.Context(), *req.Section, *req.Content)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, respond.CodeValidation, "Content cannot be empty", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, respond.CodeInternal, "Enhancement failed: "+FailureReason(err), nil)
		}
		return
	}

	respond.OK(c, enhanceResponse{EnhancedContent: out})
}
