package render

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

const chromeRenderTimeout = 60 * time.Second

// ChromeEngine prints HTML to PDF through headless Chrome.
type ChromeEngine struct {
	// ExecPath overrides the Chrome binary location when set.
	ExecPath string
}

// NewChromeEngine constructs a ChromeEngine; execPath may be empty.
func NewChromeEngine(execPath string) *ChromeEngine {
	return &ChromeEngine{ExecPath: execPath}
}

// Render prints the HTML document to an A4 PDF.
func (e *ChromeEngine) Render(ctx context.Context, html []byte) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if e.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(e.ExecPath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	chromeCtx, cancelChrome := chromedp.NewContext(allocCtx)
	defer cancelChrome()

	runCtx, cancelRun := context.WithTimeout(chromeCtx, chromeRenderTimeout)
	defer cancelRun()

	// Chrome needs a navigable URL; serve the page from a temp file.
	tmpDir, err := os.MkdirTemp("", "cv-render-")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "cv.html")
	if err := os.WriteFile(htmlPath, html, 0o644); err != nil {
		return nil, err
	}

	var pdf []byte
	err = chromedp.Run(runCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			// A4: 210mm x 297mm -> inches: 8.27 x 11.69
			pdf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdf, nil
}

// ContentType returns the artifact media type.
func (e *ChromeEngine) ContentType() string { return "application/pdf" }

// Ext returns the artifact file extension.
func (e *ChromeEngine) Ext() string { return "pdf" }

var _ Engine = (*ChromeEngine)(nil)
