package render

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"cv-builder/internal/cvs"
	"cv-builder/internal/shared/server/middleware"
	"cv-builder/internal/shared/server/respond"
)

// Handler serves the template catalog and the download endpoint.
type Handler struct {
	Svc      *cvs.Service
	Renderer *Renderer
}

// NewHandler constructs a Handler.
func NewHandler(svc *cvs.Service, renderer *Renderer) *Handler {
	return &Handler{Svc: svc, Renderer: renderer}
}

// RegisterRoutes attaches template routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/cv/templates", h.templates)
	rg.GET("/cv/download/:template", h.download)
}

func (h *Handler) templates(c *gin.Context) {
	respond.OK(c, gin.H{"templates": Catalog()})
}

func (h *Handler) download(c *gin.Context) {
	templateID := c.Param("template")
	c.Set("template", templateID)

	doc, err := h.Svc.Resolve(
		c.Request.Context(),
		middleware.UserIDFromContext(c),
		middleware.SessionIDFromContext(c),
	)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load CV data", nil)
		return
	}

	artifact, err := h.Renderer.Render(c.Request.Context(), templateID, doc)
	if err != nil {
		switch {
		case errors.Is(err, ErrTemplateNotFound):
			respond.Error(c, http.StatusNotFound, "template_not_found", "unknown template: "+templateID, nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "render_failed", "failed to render CV", nil)
		}
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.Filename))
	c.Data(http.StatusOK, artifact.ContentType, artifact.Data)
}
