// Package rendering maps resume data onto the fixed set of print layouts.
// Rendering is pure: the same data and template always yield an identical Document.
package rendering

import (
	"strings"

	"github.com/jonathan/resume-nest/internal/types"
)

// Stable attribute hooks shared by every template.
const (
	AttrSection = "data-section"
	AttrItem    = "data-item"
	AttrField   = "data-field"
	AttrBullet  = "data-bullet"
)

// Section names used as AttrSection values.
const (
	SectionHeader       = "header"
	SectionContact      = "contact"
	SectionSummary      = "summary"
	SectionSkills       = "skills"
	SectionExperience   = "experience"
	SectionEducation    = "education"
	SectionProjects     = "projects"
	SectionAchievements = "achievements"
	SectionCertificates = "certificates"
	SectionPortfolio    = "portfolio"
)

// Document is the rendered output of one template over one ResumeData value.
type Document struct {
	Template types.TemplateType
	Root     *Node
}

// Attr is a single element attribute.
type Attr struct {
	Key string
	Val string
}

// Node is an element or, when Tag is empty, a text node.
type Node struct {
	Tag      string
	Attrs    []Attr
	Text     string
	Children []*Node
}

// El builds an element with an optional class. Nil children are skipped so
// optional sections can be passed inline.
func El(tag, class string, children ...*Node) *Node {
	n := &Node{Tag: tag}
	if class != "" {
		n.Attrs = append(n.Attrs, Attr{Key: "class", Val: class})
	}
	return n.Append(children...)
}

// Text builds a text node.
func Text(s string) *Node {
	return &Node{Text: s}
}

// Append adds the non-nil children to n and returns n.
func (n *Node) Append(children ...*Node) *Node {
	for _, c := range children {
		if c != nil {
			n.Children = append(n.Children, c)
		}
	}
	return n
}

// Set adds or replaces an attribute and returns n.
func (n *Node) Set(key, val string) *Node {
	for i := range n.Attrs {
		if n.Attrs[i].Key == key {
			n.Attrs[i].Val = val
			return n
		}
	}
	n.Attrs = append(n.Attrs, Attr{Key: key, Val: val})
	return n
}

// Get returns the value of an attribute.
func (n *Node) Get(key string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// IsText reports whether n is a text node.
func (n *Node) IsText() bool {
	return n.Tag == ""
}

// TextContent concatenates the text of n and its descendants.
func (n *Node) TextContent() string {
	var b strings.Builder
	n.walk(func(c *Node) bool {
		if c.IsText() {
			b.WriteString(c.Text)
		}
		return true
	})
	return b.String()
}

// walk visits n and its descendants depth-first in document order.
// Returning false from fn skips the node's children.
func (n *Node) walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.walk(fn)
	}
}

// Sections returns the AttrSection values of the document in document order.
func (d *Document) Sections() []string {
	var out []string
	if d == nil || d.Root == nil {
		return out
	}
	d.Root.walk(func(n *Node) bool {
		if v, ok := n.Get(AttrSection); ok {
			out = append(out, v)
		}
		return true
	})
	return out
}

// Section returns the first node tagged with the given section name, or nil.
func (d *Document) Section(name string) *Node {
	var found *Node
	if d == nil || d.Root == nil {
		return nil
	}
	d.Root.walk(func(n *Node) bool {
		if found != nil {
			return false
		}
		if v, ok := n.Get(AttrSection); ok && v == name {
			found = n
			return false
		}
		return true
	})
	return found
}

// HasSection reports whether the document renders the named section.
func (d *Document) HasSection(name string) bool {
	return d.Section(name) != nil
}
