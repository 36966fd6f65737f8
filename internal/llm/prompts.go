package llm

import (
	"strings"

	"github.com/jonathan/resume-nest/internal/prompts"
	"github.com/jonathan/resume-nest/internal/types"
)

var promptKeys = map[types.AIAction]string{
	types.ActionFixSpelling:     "fix-spelling",
	types.ActionEnhanceTone:     "enhance-tone",
	types.ActionGenerateSummary: "generate-summary",
}

// BuildPrompt returns the provider prompt for an action, or "" for an unknown one.
// GENERATE_SUMMARY uses background and falls back to text when background is blank.
func BuildPrompt(action types.AIAction, text, background string) string {
	key, ok := promptKeys[action]
	if !ok {
		return ""
	}

	background = strings.TrimSpace(background)
	if background == "" {
		background = strings.TrimSpace(text)
	}
	return prompts.Format(prompts.MustGet(prompts.TextActions, key), map[string]string{
		"Text":       text,
		"Background": background,
	})
}

// tierFor maps an action to the model tier it runs on.
func tierFor(action types.AIAction) ModelTier {
	if action == types.ActionFixSpelling {
		return TierLite
	}
	return TierStandard
}
