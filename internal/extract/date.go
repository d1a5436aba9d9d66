package extract

import (
	"regexp"
	"strings"
)

var (
	// dd/mm/yyyy, dd-mm-yy and friends.
	reDateNumeric = regexp.MustCompile(`\d{1,2}[-/]\d{1,2}[-/]\d{2,4}`)

	// Spelled-month dates, Spanish or English, "29 de noviembre de 2024"
	// or "29 noviembre 2024".
	reDateSpelled = regexp.MustCompile(`(?i)\d{1,2}\s+de?\s+` + monthAlternation + `\s+de\s+\d{2,4}|\d{1,2}\s+` + monthAlternation + `\s+\d{2,4}`)
)

const monthAlternation = `(?:enero|febrero|marzo|abril|mayo|junio|julio|agosto|septiembre|octubre|noviembre|diciembre|january|february|march|april|may|june|july|august|september|october|november|december)`

// extractDate finds a transaction date with three criteria, first success
// wins. The matched substring is returned verbatim; it is never normalized
// or defaulted to the current date. Empty means not found.
func (e *Extractor) extractDate(lines []string, text string) string {
	if m := reDateNumeric.FindString(text); m != "" {
		return m
	}

	if m := reDateSpelled.FindString(text); m != "" {
		return m
	}

	// Keyword adjacency: a date keyword names the date either on its own
	// line or on the one immediately after.
	for idx, line := range lines {
		lower := strings.ToLower(line)
		for _, kw := range e.cfg.Keywords.Date {
			if !strings.Contains(lower, kw) {
				continue
			}
			if m := reDateNumeric.FindString(line); m != "" {
				return m
			}
			if idx+1 < len(lines) {
				if m := reDateNumeric.FindString(lines[idx+1]); m != "" {
					return m
				}
			}
		}
	}

	return ""
}
