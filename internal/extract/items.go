package extract

import "regexp"

// A currency symbol followed by a two-decimal number, anywhere in the line.
var reItemPrice = regexp.MustCompile(`(S/\.|\$)\s*\d+[.,]\d{2}`)

// collectLineItems filters lines that look like priced items, preserving
// source order and duplicates. The TOTAL line itself matches the price
// pattern and is included; downstream consumers see it as one more item.
func collectLineItems(lines []string) []string {
	items := make([]string, 0)
	for _, line := range lines {
		if reItemPrice.MatchString(line) {
			items = append(items, line)
		}
	}
	return items
}
