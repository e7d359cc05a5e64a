package utils

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	bulletGlyphPattern = regexp.MustCompile(`[•·▪●○■□◆◇]`)
	dashPattern        = regexp.MustCompile(`[–—]`)
	cyrillicPattern    = regexp.MustCompile(`[\x{0400}-\x{04FF}]`)
	spaceRunPattern    = regexp.MustCompile(`[^\S\n]+`)
	newlineRunPattern  = regexp.MustCompile(`\n+`)
	bulletSplitPattern = regexp.MustCompile(`\s*-\s+`)
)

// NormalizeAdviceText cleans freeform model advice into a canonical plain
// form: bullet glyphs and dashes become "-", carriage returns become
// newlines, replacement characters and Cyrillic artifacts are stripped, and
// runs of non-newline whitespace collapse to a single space.
func NormalizeAdviceText(text string) string {
	text = strings.ReplaceAll(text, "\r", "\n")
	text = bulletGlyphPattern.ReplaceAllString(text, "-")
	text = dashPattern.ReplaceAllString(text, "-")
	text = strings.ReplaceAll(text, "�", "")
	text = cyrillicPattern.ReplaceAllString(text, "")
	text = spaceRunPattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// SplitAdvice segments normalized advice text into discrete bullet items.
// Lines are split on newlines and " - " separators; when that yields at most
// one item the text is split on sentence boundaries instead.
func SplitAdvice(text string) []string {
	cleaned := NormalizeAdviceText(text)
	if cleaned == "" {
		return nil
	}
	var lines []string
	for _, line := range newlineRunPattern.Split(cleaned, -1) {
		for _, part := range bulletSplitPattern.Split(line, -1) {
			part = strings.TrimSpace(part)
			if part != "" {
				lines = append(lines, part)
			}
		}
	}
	if len(lines) > 1 {
		return lines
	}
	return splitSentences(cleaned)
}

// splitSentences splits after ". ", "! ", "? " and the CJK full stop.
func splitSentences(text string) []string {
	var parts []string
	var current strings.Builder
	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		current.WriteRune(r)
		if (r == '.' || r == '!' || r == '?' || r == '。') &&
			i+1 < len(runes) && unicode.IsSpace(runes[i+1]) {
			for i+1 < len(runes) && unicode.IsSpace(runes[i+1]) {
				i++
			}
			part := strings.TrimSpace(current.String())
			if part != "" {
				parts = append(parts, part)
			}
			current.Reset()
		}
	}
	tail := strings.TrimSpace(current.String())
	if tail != "" {
		parts = append(parts, tail)
	}
	return parts
}
