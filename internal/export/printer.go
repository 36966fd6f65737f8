package export

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/jonathan/resume-nest/internal/rendering"
)

const mmPerInch = 25.4

// A4 paper size in inches as expected by the print driver.
const (
	PageWidthIn  = rendering.PageWidthMM / mmPerInch
	PageHeightIn = rendering.PageHeightMM / mmPerInch
)

// DefaultPrintTimeout bounds one print when the printer has no timeout configured.
const DefaultPrintTimeout = 60 * time.Second

// ErrPrinterUnavailable is returned when no print driver can be started.
var ErrPrinterUnavailable = errors.New("printer unavailable")

// Printer turns a complete HTML page into a single-page PDF.
type Printer interface {
	Print(ctx context.Context, html []byte) ([]byte, error)
}

// chromeCandidates are looked up on PATH when no executable is configured.
var chromeCandidates = []string{
	"google-chrome",
	"google-chrome-stable",
	"chromium",
	"chromium-browser",
	"headless-shell",
}

// ChromePrinter prints with a headless Chrome driven over the DevTools protocol.
type ChromePrinter struct {
	ExecPath string
	Timeout  time.Duration

	lookPath func(string) (string, error)
}

// NewChromePrinter creates a ChromePrinter. An empty execPath falls back to CHROME_PATH and then PATH lookup.
func NewChromePrinter(execPath string, timeout time.Duration) *ChromePrinter {
	if execPath == "" {
		execPath = os.Getenv("CHROME_PATH")
	}
	if timeout <= 0 {
		timeout = DefaultPrintTimeout
	}
	return &ChromePrinter{ExecPath: execPath, Timeout: timeout, lookPath: exec.LookPath}
}

// resolve returns the browser executable, or ErrPrinterUnavailable.
func (p *ChromePrinter) resolve() (string, error) {
	if p.ExecPath != "" {
		if _, err := os.Stat(p.ExecPath); err != nil {
			return "", fmt.Errorf("%w: %s: %v", ErrPrinterUnavailable, p.ExecPath, err)
		}
		return p.ExecPath, nil
	}
	lookPath := p.lookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	for _, name := range chromeCandidates {
		if path, err := lookPath(name); err == nil {
			return path, nil
		}
	}
	return "", ErrPrinterUnavailable
}

// Available reports whether a browser executable can be found.
func (p *ChromePrinter) Available() bool {
	_, err := p.resolve()
	return err == nil
}

// Print loads html into a blank tab and prints the first page on A4 with no margins.
func (p *ChromePrinter) Print(ctx context.Context, html []byte) ([]byte, error) {
	execPath, err := p.resolve()
	if err != nil {
		return nil, err
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.ExecPath(execPath),
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, p.Timeout)
	defer cancel()

	var pdf []byte
	err = chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, string(html)).Do(ctx)
		}),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(PageWidthIn).
				WithPaperHeight(PageHeightIn).
				WithMarginTop(0).
				WithMarginBottom(0).
				WithMarginLeft(0).
				WithMarginRight(0).
				WithPreferCSSPageSize(true).
				WithPageRanges("1").
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("browser printing failed: %w", err)
	}
	return pdf, nil
}
