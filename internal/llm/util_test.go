package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanReply(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain text",
			input:    "  Led a team of five engineers.  ",
			expected: "Led a team of five engineers.",
		},
		{
			name:     "double quoted",
			input:    `"Led a team of five engineers."`,
			expected: "Led a team of five engineers.",
		},
		{
			name:     "single quoted",
			input:    "'Shipped v2'",
			expected: "Shipped v2",
		},
		{
			name:     "curly quoted",
			input:    "“Shipped v2”",
			expected: "Shipped v2",
		},
		{
			name:     "code fence with language",
			input:    "```text\nShipped v2\n```",
			expected: "Shipped v2",
		},
		{
			name:     "code fence wrapping quotes",
			input:    "```\n\"Shipped v2\"\n```",
			expected: "Shipped v2",
		},
		{
			name:     "inner quotes kept",
			input:    `"Built the "fast" path"`,
			expected: `"Built the "fast" path"`,
		},
		{
			name:     "multi line kept",
			input:    "Line one\nLine two",
			expected: "Line one\nLine two",
		},
		{
			name:     "lone quote",
			input:    `"`,
			expected: `"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanReply(tt.input))
		})
	}
}
