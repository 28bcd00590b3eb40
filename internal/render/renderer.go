package render

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"time"

	"cv-builder/internal/cvs"
	"cv-builder/internal/shared/metrics"
)

//go:embed templates/*.html
var templateFS embed.FS

// ErrTemplateNotFound indicates the requested template is not in the catalog.
var ErrTemplateNotFound = errors.New("template not found")

// Artifact is a rendered document ready for download.
type Artifact struct {
	Data        []byte
	Filename    string
	ContentType string
}

// Renderer turns a (template ID, CVDocument) pair into a downloadable
// artifact. HTML assembly is deterministic; the engine does the final
// document conversion.
type Renderer struct {
	templates *template.Template
	engine    Engine
}

// NewRenderer parses the embedded template catalog.
func NewRenderer(engine Engine) (*Renderer, error) {
	tpl, err := template.New("cv").Funcs(FuncMap()).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{templates: tpl, engine: engine}, nil
}

// BuildHTML executes the named template against the document. Unknown IDs are
// a hard error; there is no fallback template.
func (r *Renderer) BuildHTML(id string, doc cvs.CVDocument) ([]byte, error) {
	if !IsKnown(id) {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, id)
	}
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, id+".html", doc); err != nil {
		return nil, fmt.Errorf("execute %s: %w", id, err)
	}
	return buf.Bytes(), nil
}

// Render produces the downloadable artifact for a template and document.
func (r *Renderer) Render(ctx context.Context, id string, doc cvs.CVDocument) (Artifact, error) {
	html, err := r.BuildHTML(id, doc)
	if err != nil {
		return Artifact{}, err
	}

	metrics.IncRenderStarted()
	start := time.Now()
	data, err := r.engine.Render(ctx, html)
	metrics.ObserveRenderDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
	if err != nil {
		metrics.IncRenderFailed()
		return Artifact{}, fmt.Errorf("render engine: %w", err)
	}
	metrics.IncRenderCompleted()

	return Artifact{
		Data:        data,
		Filename:    "cv." + r.engine.Ext(),
		ContentType: r.engine.ContentType(),
	}, nil
}
