package render

import "context"

// Engine converts a rendered HTML page into the downloadable artifact bytes.
// Implementations must be deterministic for identical input.
type Engine interface {
	Render(ctx context.Context, html []byte) ([]byte, error)
	ContentType() string
	Ext() string
}

// HTMLEngine passes the HTML through unchanged. It serves dev setups and tests
// where headless Chrome is unavailable.
type HTMLEngine struct{}

// Render returns the HTML bytes as-is.
func (HTMLEngine) Render(ctx context.Context, html []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return html, nil
}

// ContentType returns the artifact media type.
func (HTMLEngine) ContentType() string { return "text/html; charset=utf-8" }

// Ext returns the artifact file extension.
func (HTMLEngine) Ext() string { return "html" }

var _ Engine = HTMLEngine{}
