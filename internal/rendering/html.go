package rendering

import (
	"bytes"
	"fmt"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/jonathan/resume-nest/internal/types"
)

// PageWidthMM and PageHeightMM fix the printable page to A4.
const (
	PageWidthMM  = 210
	PageHeightMM = 297
)

// toHTML converts a Node tree into an x/net/html tree.
func toHTML(n *Node) *html.Node {
	if n.IsText() {
		return &html.Node{Type: html.TextNode, Data: n.Text}
	}
	out := &html.Node{
		Type:     html.ElementNode,
		Data:     n.Tag,
		DataAtom: atom.Lookup([]byte(n.Tag)),
	}
	for _, a := range n.Attrs {
		out.Attr = append(out.Attr, html.Attribute{Key: a.Key, Val: a.Val})
	}
	for _, c := range n.Children {
		out.AppendChild(toHTML(c))
	}
	return out
}

// WriteHTML serializes the document tree as an HTML fragment.
func WriteHTML(w io.Writer, doc *Document) error {
	if doc == nil || doc.Root == nil {
		return emptyDocument("write")
	}
	if err := html.Render(w, toHTML(doc.Root)); err != nil {
		return &RenderError{Template: doc.Template, Op: "write", Cause: err}
	}
	return nil
}

// Fragment returns the document tree as an HTML fragment.
func Fragment(doc *Document) string {
	var buf bytes.Buffer
	if err := WriteHTML(&buf, doc); err != nil {
		return ""
	}
	return buf.String()
}

// Page wraps the document in a standalone A4 HTML page carrying the template's stylesheet.
func Page(doc *Document) ([]byte, error) {
	if doc == nil || doc.Root == nil {
		return nil, emptyDocument("wrap")
	}

	title := "Resume"
	if name := doc.Section(SectionHeader); name != nil {
		if field := findField(name, "fullName"); field != nil {
			title = field.TextContent()
		}
	}

	root := El("html", "",
		El("head", "",
			(&Node{Tag: "meta"}).Set("charset", "utf-8"),
			El("title", "", Text(title)),
			El("style", "", Text(Stylesheet(doc.Template))),
		),
		El("body", "", El("main", "page", doc.Root)),
	).Set("lang", "en")

	var buf bytes.Buffer
	buf.WriteString("<!DOCTYPE html>")
	if err := html.Render(&buf, toHTML(root)); err != nil {
		return nil, &RenderError{Template: doc.Template, Op: "wrap", Cause: err}
	}
	return buf.Bytes(), nil
}

// RenderPage is Render followed by Page.
func RenderPage(data types.ResumeData, t types.TemplateType) ([]byte, error) {
	page, err := Page(Render(data, t))
	if err != nil {
		return nil, fmt.Errorf("failed to render %s page: %w", t.Slug(), err)
	}
	return page, nil
}

func findField(n *Node, field string) *Node {
	var found *Node
	n.walk(func(c *Node) bool {
		if found != nil {
			return false
		}
		if v, ok := c.Get(AttrField); ok && v == field {
			found = c
			return false
		}
		return true
	})
	return found
}
