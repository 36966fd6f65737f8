package export

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-nest/internal/rendering"
	"github.com/jonathan/resume-nest/internal/types"
)

type fakePrinter struct {
	calls int
	last  []byte
	err   error
}

func (f *fakePrinter) Print(_ context.Context, html []byte) ([]byte, error) {
	f.calls++
	f.last = html
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-1.7 fake"), nil
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sample(name string) types.ResumeData {
	d := types.Empty()
	d.PersonalInfo.FullName = name
	d.Skills = []string{"Go"}
	return d
}

func parse(t *testing.T, page []byte) *goquery.Document {
	t.Helper()
	q, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	require.NoError(t, err)
	return q
}

func TestSurface_MountReplacesContent(t *testing.T) {
	s := NewSurface()
	require.True(t, s.Available())

	require.NoError(t, s.Mount(rendering.Render(sample("Ada"), types.TemplateMinimal)))
	require.NoError(t, s.Mount(rendering.Render(sample("Grace"), types.TemplateModern)))
	require.NoError(t, s.Mount(rendering.Render(sample("Grace"), types.TemplateModern)))

	assert.Equal(t, 1, s.Mounted())

	page, err := s.HTML()
	require.NoError(t, err)
	q := parse(t, page)
	assert.Equal(t, 1, q.Find("#"+PrintAreaID).Length())
	assert.Equal(t, 1, q.Find("style#print-style").Length())
	assert.Contains(t, q.Find(`[data-field="fullName"]`).Text(), "Grace")
	assert.NotContains(t, q.Find("#"+PrintAreaID).Text(), "ADA")
	assert.Contains(t, q.Find("style#print-style").Text(), ".modern")
	assert.NotContains(t, q.Find("style#print-style").Text(), ".minimal ")
}

func TestSurface_StylesheetIsNotEscaped(t *testing.T) {
	s := NewSurface()
	require.NoError(t, s.Mount(rendering.Render(sample("Ada"), types.TemplateProfessional)))

	page, err := s.HTML()
	require.NoError(t, err)
	assert.Contains(t, string(page), `content: "\2022"`)
	assert.Contains(t, string(page), "@page { size: 210mm 297mm; margin: 0; }")
}

func TestSurface_PrintAreaIsFixedA4Box(t *testing.T) {
	s := NewSurface()
	require.NoError(t, s.Mount(rendering.Render(sample("Ada"), types.TemplateMinimal)))

	page, err := s.HTML()
	require.NoError(t, err)
	q := parse(t, page)

	area := q.Find("main#" + PrintAreaID + ".page")
	require.Equal(t, 1, area.Length())
	assert.Equal(t, 1, area.Children().Filter(".resume").Length())
	assert.Contains(t, q.Find("style#print-style").Text(), ".page { width: 210mm; height: 297mm; overflow: hidden; }")
}

func TestSurface_WithoutPrintArea(t *testing.T) {
	s, err := NewSurfaceFromHTML(`<html><body><div id="editor"></div></body></html>`)
	require.NoError(t, err)

	assert.False(t, s.Available())
	err = s.Mount(rendering.Render(sample("Ada"), types.TemplateMinimal))
	assert.ErrorIs(t, err, ErrSurfaceUnavailable)
}

func TestPipeline_ExportPrints(t *testing.T) {
	printer := &fakePrinter{}
	p := NewPipeline(NewSurface(), printer, quietLogger())

	res, err := p.ExportData(context.Background(), sample("Ada"), types.TemplateProfessional)
	require.NoError(t, err)

	assert.True(t, res.Printed)
	assert.Equal(t, []byte("%PDF-1.7 fake"), res.PDF)
	assert.Equal(t, 1, printer.calls)
	assert.Equal(t, res.HTML, printer.last)
	assert.Contains(t, string(res.HTML), "ADA")
	assert.True(t, p.CanPrint())
}

func TestPipeline_SurfaceStaysMountedAndIdempotent(t *testing.T) {
	printer := &fakePrinter{}
	p := NewPipeline(NewSurface(), printer, quietLogger())
	doc := rendering.Render(sample("Ada"), types.TemplateCreative)

	first, err := p.Export(context.Background(), doc)
	require.NoError(t, err)
	second, err := p.Export(context.Background(), doc)
	require.NoError(t, err)

	assert.Equal(t, first.HTML, second.HTML)
	assert.Equal(t, 1, p.Surface().Mounted())
	assert.Equal(t, 2, printer.calls)
}

func TestPipeline_NoOpWhenUnavailable(t *testing.T) {
	noArea, err := NewSurfaceFromHTML(`<html><body></body></html>`)
	require.NoError(t, err)

	tests := []struct {
		name     string
		pipeline *Pipeline
		wantHTML bool
		canPrint bool
	}{
		{name: "nil surface", pipeline: NewPipeline(nil, &fakePrinter{}, quietLogger())},
		{name: "surface without print area", pipeline: NewPipeline(noArea, &fakePrinter{}, quietLogger())},
		{name: "nil printer", pipeline: NewPipeline(NewSurface(), nil, quietLogger()), wantHTML: true},
		{name: "printer unavailable", pipeline: NewPipeline(NewSurface(), &fakePrinter{err: ErrPrinterUnavailable}, quietLogger()), wantHTML: true, canPrint: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := tt.pipeline.ExportData(context.Background(), sample("Ada"), types.TemplateMinimal)
			require.NoError(t, err)
			assert.False(t, res.Printed)
			assert.Empty(t, res.PDF)
			assert.Equal(t, tt.wantHTML, len(res.HTML) > 0)
			assert.Equal(t, tt.canPrint, tt.pipeline.CanPrint())
		})
	}
}

func TestPipeline_PrintFailure(t *testing.T) {
	boom := errors.New("browser crashed")
	p := NewPipeline(NewSurface(), &fakePrinter{err: boom}, quietLogger())

	res, err := p.ExportData(context.Background(), sample("Ada"), types.TemplateModern)

	var printErr *PrintError
	require.ErrorAs(t, err, &printErr)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, types.TemplateModern, printErr.Template)
	assert.False(t, res.Printed)
	assert.Equal(t, 1, p.Surface().Mounted())
}

func TestPipeline_NilDocument(t *testing.T) {
	p := NewPipeline(NewSurface(), &fakePrinter{}, quietLogger())
	_, err := p.Export(context.Background(), nil)
	var renderErr *rendering.RenderError
	assert.ErrorAs(t, err, &renderErr)
}

func TestChromePrinter_Unavailable(t *testing.T) {
	p := &ChromePrinter{
		Timeout:  DefaultPrintTimeout,
		lookPath: func(string) (string, error) { return "", errors.New("not found") },
	}
	assert.False(t, p.Available())

	_, err := p.Print(context.Background(), []byte("<html></html>"))
	assert.ErrorIs(t, err, ErrPrinterUnavailable)

	missing := NewChromePrinter("/nonexistent/chrome", 0)
	assert.Equal(t, DefaultPrintTimeout, missing.Timeout)
	assert.False(t, missing.Available())
	_, err = missing.Print(context.Background(), nil)
	assert.ErrorIs(t, err, ErrPrinterUnavailable)
}

func TestPaperSizeIsA4(t *testing.T) {
	assert.InDelta(t, 8.27, PageWidthIn, 0.01)
	assert.InDelta(t, 11.69, PageHeightIn, 0.01)
}
