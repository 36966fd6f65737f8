// Package export materializes a rendered resume into an isolated A4 print surface
// and hands it to a print driver.
package export

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/jonathan/resume-nest/internal/rendering"
)

// PrintAreaID is the id of the single element a Surface renders into.
const PrintAreaID = "print-area"

// ErrSurfaceUnavailable is returned when the surface has no print area to render into.
var ErrSurfaceUnavailable = errors.New("print surface unavailable")

const shellHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Resume</title>
<style id="print-style"></style>
</head>
<body>
<main id="` + PrintAreaID + `" class="page"></main>
</body>
</html>`

// Surface is an isolated print page holding exactly one print area.
// It carries no editing chrome; everything inside the print area is replaced on each Mount.
type Surface struct {
	mu  sync.Mutex
	doc *goquery.Document
}

// NewSurface returns a surface built on the default print shell.
func NewSurface() *Surface {
	s, err := NewSurfaceFromHTML(shellHTML)
	if err != nil {
		panic(fmt.Sprintf("export: invalid print shell: %v", err))
	}
	return s
}

// NewSurfaceFromHTML builds a surface from a custom shell page.
// A shell without a #print-area element yields a surface whose Mount reports ErrSurfaceUnavailable.
func NewSurfaceFromHTML(shell string) (*Surface, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(shell))
	if err != nil {
		return nil, fmt.Errorf("failed to parse print shell: %w", err)
	}
	return &Surface{doc: doc}, nil
}

// Available reports whether the surface has a print area.
func (s *Surface) Available() bool {
	if s == nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.area().Length() > 0
}

func (s *Surface) area() *goquery.Selection {
	return s.doc.Find("#" + PrintAreaID)
}

// Mount replaces the print area's content with doc and installs the template's stylesheet.
// Mounting again replaces the previous render; content never accumulates.
func (s *Surface) Mount(doc *rendering.Document) error {
	if s == nil || s.doc == nil {
		return ErrSurfaceUnavailable
	}

	var fragment bytes.Buffer
	if err := rendering.WriteHTML(&fragment, doc); err != nil {
		return fmt.Errorf("failed to serialize document: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	area := s.area()
	if area.Length() == 0 {
		return ErrSurfaceUnavailable
	}
	area.First().SetHtml(fragment.String())

	style := s.doc.Find("style#print-style")
	if style.Length() == 0 {
		s.doc.Find("head").AppendHtml(`<style id="print-style"></style>`)
		style = s.doc.Find("style#print-style")
	}
	setRawText(style, rendering.Stylesheet(doc.Template))
	return nil
}

// setRawText replaces the children of each selected node with one unescaped text node.
func setRawText(sel *goquery.Selection, text string) {
	for _, n := range sel.Nodes {
		for c := n.FirstChild; c != nil; c = n.FirstChild {
			n.RemoveChild(c)
		}
		n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	}
}

// HTML returns the whole surface page.
func (s *Surface) HTML() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out, err := s.doc.Html()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize print surface: %w", err)
	}
	return []byte(out), nil
}

// Mounted returns the number of rendered resumes currently in the print area.
func (s *Surface) Mounted() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.area().Find(".resume").Length()
}
