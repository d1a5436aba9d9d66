package extract

import (
	"regexp"
	"unicode/utf8"
)

var (
	// A product-reference word on its own word boundary.
	reProductWord = regexp.MustCompile(`(?i)\b(producto|artículo|item|referencia)\b`)

	// Lines that are only digits, separators and whitespace.
	reNumbersOnlyLine = regexp.MustCompile(`^\d+[.,\s\d]+$`)
)

// buildDescription derives a human-readable description. A product-reference
// line wins; otherwise the longest mid-length non-numeric line; otherwise a
// vendor-derived template. Never empty.
func (e *Extractor) buildDescription(lines []string, vendor string) string {
	for _, line := range lines {
		if utf8.RuneCountInString(line) > 10 && reProductWord.MatchString(line) {
			return line
		}
	}

	// Longest line strictly between 15 and 80 runes; ties keep the first
	// occurrence.
	best := ""
	bestLen := 0
	for _, line := range lines {
		n := utf8.RuneCountInString(line)
		if n <= 15 || n >= 80 || reNumbersOnlyLine.MatchString(line) {
			continue
		}
		if n > bestLen {
			best = line
			bestLen = n
		}
	}
	if best != "" {
		return best
	}

	return "Compra en " + vendor
}
