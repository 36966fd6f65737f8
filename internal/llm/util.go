// Package llm - util.go provides shared utilities for LLM response processing.
package llm

import "strings"

// CleanReply strips the wrappers models add around plain-text answers:
// markdown code fences and one pair of surrounding quotes.
func CleanReply(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		// Skip a language identifier on the first line
		if idx := strings.Index(text, "\n"); idx >= 0 {
			firstLine := text[:idx]
			if len(firstLine) < 20 && !strings.Contains(firstLine, " ") {
				text = text[idx+1:]
			}
		}
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		text = strings.TrimSpace(text)
	}

	for _, q := range []string{`"`, "'", "“"} {
		closing := q
		if q == "“" {
			closing = "”"
		}
		if len(text) >= len(q)+len(closing) && strings.HasPrefix(text, q) && strings.HasSuffix(text, closing) {
			inner := text[len(q) : len(text)-len(closing)]
			if !strings.Contains(inner, q) {
				text = strings.TrimSpace(inner)
			}
			break
		}
	}

	return text
}
