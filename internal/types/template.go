package types

import (
	"fmt"
	"strings"
)

// TemplateType identifies one of the fixed resume layouts.
type TemplateType string

// Template constants define the supported layouts.
const (
	TemplateModern       TemplateType = "MODERN"
	TemplateMinimal      TemplateType = "MINIMAL"
	TemplateCreative     TemplateType = "CREATIVE"
	TemplateProfessional TemplateType = "PROFESSIONAL"
)

// DefaultTemplate is the layout selected when a session starts.
const DefaultTemplate = TemplateProfessional

// AllTemplates returns every supported template in a stable order.
func AllTemplates() []TemplateType {
	return []TemplateType{TemplateModern, TemplateMinimal, TemplateCreative, TemplateProfessional}
}

// UnknownTemplateError indicates a template identifier outside the supported set.
type UnknownTemplateError struct {
	Value string
}

func (e *UnknownTemplateError) Error() string {
	return fmt.Sprintf("unknown template: %q", e.Value)
}

// ParseTemplateType parses a template identifier case-insensitively.
func ParseTemplateType(s string) (TemplateType, error) {
	t := TemplateType(strings.ToUpper(strings.TrimSpace(s)))
	if t.Valid() {
		return t, nil
	}
	return "", &UnknownTemplateError{Value: s}
}

// Valid reports whether t is one of the supported templates.
func (t TemplateType) Valid() bool {
	switch t {
	case TemplateModern, TemplateMinimal, TemplateCreative, TemplateProfessional:
		return true
	}
	return false
}

// Slug returns the lowercase form used in file names and stylesheets.
func (t TemplateType) Slug() string {
	return strings.ToLower(string(t))
}
