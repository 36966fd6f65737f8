package rendering

import (
	"strconv"
	"strings"

	"github.com/jonathan/resume-nest/internal/parsing"
	"github.com/jonathan/resume-nest/internal/types"
)

// FallbackTemplate is used for template values outside the supported set.
const FallbackTemplate = types.TemplateModern

type templateFunc func(types.ResumeData) *Node

var templates = map[types.TemplateType]templateFunc{
	types.TemplateMinimal:      renderMinimal,
	types.TemplateModern:       renderModern,
	types.TemplateCreative:     renderCreative,
	types.TemplateProfessional: renderProfessional,
}

// Render maps data onto the layout for t. It is total over any ResumeData,
// never mutates data, and falls back to FallbackTemplate for unknown templates.
func Render(data types.ResumeData, t types.TemplateType) *Document {
	fn, ok := templates[t]
	if !ok {
		t = FallbackTemplate
		fn = templates[t]
	}
	root := fn(data)
	root.Set("data-template", t.Slug())
	return &Document{Template: t, Root: root}
}

// RenderAll renders data with every supported template, in AllTemplates order.
func RenderAll(data types.ResumeData) []*Document {
	all := types.AllTemplates()
	out := make([]*Document, 0, len(all))
	for _, t := range all {
		out = append(out, Render(data, t))
	}
	return out
}

func section(name, class string, children ...*Node) *Node {
	return El("section", class, children...).Set(AttrSection, name)
}

func heading(tag, class, text string) *Node {
	return El(tag, class, Text(text))
}

func textEl(tag, class, text string) *Node {
	if parsing.IsBlank(text) {
		return nil
	}
	return El(tag, class, Text(strings.TrimSpace(text)))
}

func orPlaceholder(value, placeholder string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return placeholder
}

func nameEl(tag, class, name string) *Node {
	return El(tag, class, Text(name)).Set(AttrField, "fullName")
}

func item(n *Node, index int) *Node {
	return n.Set(AttrItem, strconv.Itoa(index))
}

// entries yields the non-blank entries of a stored list together with their stored index.
// normalize additionally strips one leading bullet glyph per entry.
func entries(items []string, normalize bool, fn func(index int, text string)) {
	for i, raw := range items {
		s := strings.TrimSpace(raw)
		if s == "" {
			continue
		}
		if normalize {
			s = parsing.StripBullet(s)
		}
		fn(i, s)
	}
}

// listEntries renders a stored string list as <li> items.
func listEntries(class string, items []string, normalize bool) *Node {
	ul := El("ul", class)
	entries(items, normalize, func(i int, s string) {
		ul.Append(item(El("li", "", Text(s)), i))
	})
	return ul
}

// chips renders a stored string list as inline tags in raw order.
func chips(class string, items []string) *Node {
	box := El("div", "chips")
	entries(items, false, func(i int, s string) {
		box.Append(item(El("span", class, Text(s)), i))
	})
	return box
}

// bullets renders a multi-line description as a bullet list, or nil when it has no lines.
func bullets(class, description string) *Node {
	lines := parsing.Bullets(description)
	if len(lines) == 0 {
		return nil
	}
	ul := El("ul", class)
	for i, line := range lines {
		ul.Append(El("li", "", Text(line)).Set(AttrBullet, strconv.Itoa(i)))
	}
	return ul
}

func dateRange(start, end, sep string) string {
	start, end = strings.TrimSpace(start), strings.TrimSpace(end)
	switch {
	case start != "" && end != "":
		return start + sep + end
	case start != "":
		return start
	default:
		return end
	}
}

// joinNonBlank joins the non-blank values with sep.
func joinNonBlank(sep string, values ...string) string {
	return strings.Join(parsing.NonBlank(values), sep)
}

func hasExperience(data types.ResumeData) bool {
	for _, e := range data.Experience {
		if experienceHasContent(e) {
			return true
		}
	}
	return false
}

func experienceHasContent(e types.Experience) bool {
	return !allBlank(e.Role, e.Company, e.StartDate, e.EndDate, e.Description)
}

func hasEducation(data types.ResumeData) bool {
	for _, e := range data.Education {
		if educationHasContent(e) {
			return true
		}
	}
	return false
}

func educationHasContent(e types.Education) bool {
	return !allBlank(e.Degree, e.School, e.Year)
}

func hasProjects(data types.ResumeData) bool {
	for _, p := range data.Projects {
		if projectHasContent(p) {
			return true
		}
	}
	return false
}

func projectHasContent(p types.Project) bool {
	return !allBlank(p.Title, p.Technologies, p.Description, p.Link)
}

func allBlank(values ...string) bool {
	for _, v := range values {
		if !parsing.IsBlank(v) {
			return false
		}
	}
	return true
}
