package extract

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	// Merchant identity sits near the top of a receipt.
	vendorHeadWindow = 10
	vendorCapsWindow = 15
)

var (
	// Lines made only of digits, whitespace, dashes and slashes.
	reNumericPunctLine = regexp.MustCompile(`^[\d\s\-/]+$`)

	// Letterhead-style lines: uppercase letters and spaces only. Criterion 1
	// skips these while criterion 3 prefers uppercase-heavy lines; the
	// tension is intentional and both behaviors are kept as-is.
	reAllCapsLine = regexp.MustCompile(`^[A-Z\s]+$`)

	// A run of three or more consecutive uppercase letters.
	reUpperRun = regexp.MustCompile(`[A-Z]{3,}`)
)

// extractVendor finds the merchant name with three criteria, first success
// wins. Criterion 1 additionally skips lines carrying date or amount tokens:
// those are data lines (FECHA:, item prices), not merchant identity, and
// would otherwise shadow an all-caps store name on line one.
func (e *Extractor) extractVendor(lines []string) string {
	head := lines
	if len(head) > vendorHeadWindow {
		head = head[:vendorHeadWindow]
	}
	for _, line := range head {
		if line == "" || utf8.RuneCountInString(line) <= 3 {
			continue
		}
		if reNumericPunctLine.MatchString(line) || reAllCapsLine.MatchString(line) {
			continue
		}
		if reDateNumeric.MatchString(line) || reTwoDecimal.MatchString(line) {
			continue
		}
		return line
	}

	for _, line := range lines {
		lower := strings.ToLower(line)
		for _, kw := range e.cfg.Keywords.Vendor {
			if strings.Contains(lower, kw) {
				return line
			}
		}
	}

	caps := lines
	if len(caps) > vendorCapsWindow {
		caps = caps[:vendorCapsWindow]
	}
	for _, line := range caps {
		if line != "" && reUpperRun.MatchString(line) && utf8.RuneCountInString(line) > 5 {
			return line
		}
	}

	return DefaultVendor
}
