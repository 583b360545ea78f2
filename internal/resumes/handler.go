package resumes

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-editor/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the store.
type Handler struct {
	Store *Store
}

// NewHandler constructs a Handler.
func NewHandler(store *Store) *Handler {
	return &Handler{Store: store}
}

// RegisterRoutes attaches resume routes to the router group.
func (h *Handler) RegisterRoutes(rg gin.IRoutes) {
	rg.POST("/save-resume", h.save)
	rg.GET("/resumes", h.list)
	rg.GET("/resume/:id", h.get)
	rg.DELETE("/resume/:id", h.delete)
}

type saveResponse struct {
	Message  string `json:"message"`
	ResumeID string `json:"resume_id"`
	SavedAt  string `json:"saved_at"`
}

type listResponse struct {
	Resumes []Summary `json:"resumes"`
}

func (h *Handler) save(c *gin.Context) {
	var req saveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, respond.CodeValidation, "invalid resume body", err.Error())
		return
	}

	rec, err := h.Store.Save(c.Request.Context(), req.toDocument())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, respond.CodeInternal, "Save failed: "+reason(err), nil)
		return
	}
	c.Set("resumeId", rec.ID)

	savedAt, _ := rec.SavedAt.MarshalText()
	respond.OK(c, saveResponse{
		Message:  "Resume saved successfully",
		ResumeID: rec.ID,
		SavedAt:  string(savedAt),
	})
}

func (h *Handler) list(c *gin.Context) {
	summaries, err := h.Store.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, respond.CodeInternal, "Failed to list resumes: "+reason(err), nil)
		return
	}
	respond.OK(c, listResponse{Resumes: summaries})
}

func (h *Handler) get(c *gin.Context) {
	id := c.Param("id")
	c.Set("resumeId", id)

	rec, err := h.Store.Get(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, respond.CodeNotFound, "Resume not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, respond.CodeInternal, "Failed to retrieve resume: "+reason(err), nil)
		}
		return
	}
	respond.OK(c, rec)
}

func (h *Handler) delete(c *gin.Context) {
	id := c.Param("id")
	c.Set("resumeId", id)

	if err := h.Store.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, respond.CodeNotFound, "Resume not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, respond.CodeInternal, "Failed to delete resume: "+reason(err), nil)
		}
		return
	}
	respond.Message(c, "Resume deleted successfully", gin.H{"resume_id": id})
}

func reason(err error) string {
	return strings.TrimPrefix(err.Error(), ErrStoreFailure.Error()+": ")
}
