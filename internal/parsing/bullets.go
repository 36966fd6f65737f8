// Package parsing provides the text-list rules shared by every resume template:
// turning free-form multi-line fields into bullet lists and filtering list fields for display.
package parsing

import (
	"strings"
	"unicode"
)

// BulletGlyph is the leading marker users paste from other documents.
const BulletGlyph = "•"

// Bullets splits a multi-line field into display bullets.
// Lines that are empty after trimming are dropped; a single leading BulletGlyph
// and the whitespace after it are stripped so pasted lists don't render double bullets.
// The order of surviving lines is preserved.
func Bullets(text string) []string {
	if IsBlank(text) {
		return nil
	}

	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, StripBullet(line))
	}
	return out
}

// StripBullet removes exactly one leading BulletGlyph and any whitespace following it.
// Text without a leading glyph is returned unchanged.
func StripBullet(line string) string {
	rest, ok := strings.CutPrefix(line, BulletGlyph)
	if !ok {
		return line
	}
	return strings.TrimLeftFunc(rest, unicode.IsSpace)
}

// NonBlank returns the entries of items that have content after trimming, trimmed.
// It never modifies items; stored sequences keep their blank entries.
func NonBlank(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s := strings.TrimSpace(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// NormalizedList applies NonBlank and then StripBullet to every entry.
func NormalizedList(items []string) []string {
	out := NonBlank(items)
	for i := range out {
		out[i] = StripBullet(out[i])
	}
	return out
}

// IsBlank reports whether text is empty after trimming.
func IsBlank(text string) bool {
	return strings.TrimSpace(text) == ""
}

// HasContent reports whether at least one entry of items is non-blank.
func HasContent(items []string) bool {
	for _, item := range items {
		if !IsBlank(item) {
			return true
		}
	}
	return false
}

// SplitLines splits editor input for list fields on line breaks without filtering.
// Blank entries are kept; filtering happens at display time.
func SplitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.Split(text, "\n")
}

// SplitCategory recognises the "Category: skill, skill" convention.
// ok is false when the entry has no category prefix.
func SplitCategory(entry string) (category, value string, ok bool) {
	before, after, found := strings.Cut(entry, ":")
	if !found {
		return "", entry, false
	}
	category = strings.TrimSpace(before)
	value = strings.TrimSpace(after)
	if category == "" || value == "" || strings.Contains(category, "//") {
		return "", entry, false
	}
	return category, value, true
}
