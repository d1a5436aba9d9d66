package extract

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// A numeric token: digits with an optional two-decimal tail. The
	// alternation order matters: the decimal form must be tried first so
	// "80.00" is one token rather than "80" and "00".
	reNumberToken = regexp.MustCompile(`\d+[.,]\d{2}|\d+`)

	// A strictly two-decimal number.
	reTwoDecimal = regexp.MustCompile(`\d+[.,]\d{2}`)

	// A currency symbol followed by a two-decimal number at end of line.
	reCurrencySuffix = regexp.MustCompile(`(S/\.|€|\$)\s*\d+[.,]\d{2}\s*$`)
)

// lastNumber parses the last numeric token in a line, normalizing a comma
// decimal separator to a point. ok is false when the line holds no token or
// the token does not parse.
func lastNumber(line string) (float64, bool) {
	tokens := reNumberToken.FindAllString(line, -1)
	if len(tokens) == 0 {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(tokens[len(tokens)-1], ",", "."), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// amountCriterion is one self-contained heuristic in the amount cascade.
type amountCriterion struct {
	name string
	fn   func(lines []string, text string) (float64, bool)
}

// amountCriteria is the cascade in strict priority order. The first
// criterion to yield a positive amount ends the search.
func (e *Extractor) amountCriteria() []amountCriterion {
	return []amountCriterion{
		{"keyword", e.amountByKeyword},
		{"currency-suffix", amountByCurrencySuffix},
		{"last-decimal", amountByLastDecimal},
		{"multi-number-line", amountByMultiNumberLine},
	}
}

func (e *Extractor) extractAmount(lines []string, text string) *float64 {
	for _, c := range e.amountCriteria() {
		if v, ok := c.fn(lines, text); ok {
			e.logger.Debug("amount extracted", "criterion", c.name, "amount", v)
			return &v
		}
	}
	e.logger.Warn("no total amount found")
	return nil
}

// amountByKeyword scans top-to-bottom for the first line containing a total
// keyword and takes the last numeric token on that line. The first matching
// line wins even if a later keyword line carries a larger amount; a keyword
// line without a parsable positive number does not stop the scan.
func (e *Extractor) amountByKeyword(lines []string, _ string) (float64, bool) {
	for _, line := range lines {
		lower := strings.ToLower(line)
		for _, kw := range e.cfg.Keywords.Total {
			if strings.Contains(lower, kw) {
				if v, ok := lastNumber(line); ok && v > 0 {
					return v, true
				}
				break
			}
		}
	}
	return 0, false
}

// amountByCurrencySuffix takes the trailing number of the first line ending
// in "<symbol> <n.nn>".
func amountByCurrencySuffix(lines []string, _ string) (float64, bool) {
	for _, line := range lines {
		if reCurrencySuffix.MatchString(line) {
			if v, ok := lastNumber(line); ok && v > 0 {
				return v, true
			}
		}
	}
	return 0, false
}

// amountByLastDecimal takes the last two-decimal number in document order
// over the entire text, not the numerically largest one.
func amountByLastDecimal(_ []string, text string) (float64, bool) {
	nums := reTwoDecimal.FindAllString(text, -1)
	if len(nums) == 0 {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(nums[len(nums)-1], ",", "."), 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}

// amountByMultiNumberLine scans lines in reverse document order and takes
// the last number of the first line holding two or more two-decimal numbers.
func amountByMultiNumberLine(lines []string, _ string) (float64, bool) {
	for i := len(lines) - 1; i >= 0; i-- {
		if len(reTwoDecimal.FindAllString(lines[i], -1)) >= 2 {
			if v, ok := lastNumber(lines[i]); ok && v > 0 {
				return v, true
			}
		}
	}
	return 0, false
}
