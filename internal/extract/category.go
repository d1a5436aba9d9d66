package extract

import (
	"strings"

	"github.com/gastosbot/gastos-tracker/constants"
)

// classifyCategory matches the lowercased description plus full text against
// the ordered category keyword table. The first category in declaration
// order with any matching keyword wins; no match resolves to Otros, never to
// an absent category.
func (e *Extractor) classifyCategory(description, text string) string {
	target := strings.ToLower(description + " " + text)

	for _, entry := range e.cfg.Categories {
		for _, kw := range entry.Keywords {
			if kw != "" && strings.Contains(target, kw) {
				return string(entry.Category)
			}
		}
	}

	return string(constants.Otros)
}
