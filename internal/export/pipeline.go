package export

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/jonathan/resume-nest/internal/rendering"
	"github.com/jonathan/resume-nest/internal/types"
)

// Result is the outcome of one export.
// Printed is false when no print driver ran; HTML still holds the mounted surface when one exists.
type Result struct {
	HTML    []byte
	PDF     []byte
	Printed bool
}

// PrintError wraps a failure of an available printer.
type PrintError struct {
	Template types.TemplateType
	Cause    error
}

func (e *PrintError) Error() string {
	return fmt.Sprintf("failed to print %s resume: %v", e.Template.Slug(), e.Cause)
}

func (e *PrintError) Unwrap() error {
	return e.Cause
}

// Pipeline mounts rendered documents into a Surface and prints it.
type Pipeline struct {
	mu      sync.Mutex
	surface *Surface
	printer Printer
	logger  *slog.Logger
}

// NewPipeline creates a Pipeline. surface and printer may be nil, in which case
// Export degrades to a no-op for the missing stage.
func NewPipeline(surface *Surface, printer Printer, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{surface: surface, printer: printer, logger: logger}
}

// Surface returns the pipeline's print surface.
func (p *Pipeline) Surface() *Surface {
	return p.surface
}

// CanPrint reports whether Export would attempt to print.
func (p *Pipeline) CanPrint() bool {
	if p.printer == nil || !p.surface.Available() {
		return false
	}
	if a, ok := p.printer.(interface{ Available() bool }); ok {
		return a.Available()
	}
	return true
}

// Export mounts doc into the surface and triggers the printer.
// A missing surface or printer makes the call a logged no-op with Printed false and no error.
// The surface keeps the mounted document afterwards.
func (p *Pipeline) Export(ctx context.Context, doc *rendering.Document) (Result, error) {
	if doc == nil {
		return Result{}, &rendering.RenderError{Op: "export", Cause: rendering.ErrEmptyDocument}
	}

	p.mu.Lock()
	html, err := p.mount(doc)
	p.mu.Unlock()
	if err != nil {
		if errors.Is(err, ErrSurfaceUnavailable) {
			p.logger.Warn("export skipped, print surface unavailable",
				slog.String("template", doc.Template.Slug()))
			return Result{}, nil
		}
		return Result{}, err
	}

	if p.printer == nil {
		p.logger.Warn("export skipped, no printer configured",
			slog.String("template", doc.Template.Slug()))
		return Result{HTML: html}, nil
	}

	pdf, err := p.printer.Print(ctx, html)
	if err != nil {
		if errors.Is(err, ErrPrinterUnavailable) {
			p.logger.Warn("export skipped, printer unavailable",
				slog.String("template", doc.Template.Slug()),
				slog.String("error", err.Error()))
			return Result{HTML: html}, nil
		}
		return Result{HTML: html}, &PrintError{Template: doc.Template, Cause: err}
	}

	p.logger.Info("resume exported",
		slog.String("template", doc.Template.Slug()),
		slog.Int("bytes", len(pdf)))
	return Result{HTML: html, PDF: pdf, Printed: true}, nil
}

// ExportData renders data with t and exports it.
func (p *Pipeline) ExportData(ctx context.Context, data types.ResumeData, t types.TemplateType) (Result, error) {
	return p.Export(ctx, rendering.Render(data, t))
}

func (p *Pipeline) mount(doc *rendering.Document) ([]byte, error) {
	if p.surface == nil {
		return nil, ErrSurfaceUnavailable
	}
	if err := p.surface.Mount(doc); err != nil {
		return nil, err
	}
	return p.surface.HTML()
}
