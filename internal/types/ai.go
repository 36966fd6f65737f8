package types

import (
	"fmt"
	"strings"
)

// AIAction is the kind of text transform requested from the AI assistant.
type AIAction string

// AIAction constants define the supported transforms.
const (
	ActionFixSpelling     AIAction = "FIX_SPELLING"
	ActionEnhanceTone     AIAction = "ENHANCE_TONE"
	ActionGenerateSummary AIAction = "GENERATE_SUMMARY"
)

// RequiresText reports whether the action operates on existing text.
// GENERATE_SUMMARY may run on empty text using only the context.
func (a AIAction) RequiresText() bool {
	return a != ActionGenerateSummary
}

// Valid reports whether a is a supported action.
func (a AIAction) Valid() bool {
	switch a {
	case ActionFixSpelling, ActionEnhanceTone, ActionGenerateSummary:
		return true
	}
	return false
}

// ParseAIAction parses an action name case-insensitively.
func ParseAIAction(s string) (AIAction, error) {
	a := AIAction(strings.ToUpper(strings.TrimSpace(s)))
	if !a.Valid() {
		return "", fmt.Errorf("unknown AI action: %q", s)
	}
	return a, nil
}

// TransformRequest is the body of POST /ai/transform.
type TransformRequest struct {
	Text    string `json:"text"`
	Action  string `json:"action" validate:"required"`
	Context string `json:"context,omitempty"`
}

// TransformResponse carries the transformed (or original) text.
type TransformResponse struct {
	Text string `json:"text"`
}
