package cvs

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"cv-builder/internal/shared/server/middleware"
	"cv-builder/internal/shared/server/respond"
	"cv-builder/internal/shared/telemetry"
)

// Handler wires CV intake HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches intake routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/cv/preview", h.preview)
	rg.POST("/cv/store", middleware.RequireUser(), h.store)
	rg.DELETE("/cv", middleware.RequireUser(), h.delete)
}

func (h *Handler) preview(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid form body", nil)
		return
	}

	sessionID := middleware.SessionIDFromContext(c)
	_, malformed, err := h.Svc.Preview(c.Request.Context(), sessionID, c.Request.PostForm)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "missing session", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to store draft", nil)
		}
		return
	}

	for _, group := range malformed {
		telemetry.Warn("preview.group_malformed", map[string]any{
			"request_id": middleware.RequestIDFromContext(c),
			"session_id": sessionID,
			"group":      group,
		})
	}

	c.Redirect(http.StatusSeeOther, "/cv/templates")
}

func (h *Handler) store(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid form body", nil)
		return
	}

	userID := middleware.UserIDFromContext(c)
	cv, fieldErrs, err := h.Svc.Store(c.Request.Context(), userID, c.Request.PostForm)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to save CV", nil)
		}
		return
	}
	if fieldErrs != nil {
		respond.Error(c, http.StatusUnprocessableEntity, "validation_error", "CV could not be saved", fieldErrs)
		return
	}

	telemetry.Info("cv.stored", map[string]any{
		"request_id": middleware.RequestIDFromContext(c),
		"user_id":    userID,
		"cv_id":      cv.ID,
	})

	c.Redirect(http.StatusSeeOther, "/cv/templates?saved=1")
}

func (h *Handler) delete(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	deleted, err := h.Svc.Delete(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to delete CV", nil)
		return
	}
	respond.OK(c, gin.H{"deleted": deleted})
}
