package extract

import "strings"

// Lines splits raw OCR text into trimmed lines, preserving empty lines and
// their index positions. Several heuristics reference "line N" or "the next
// line", so index order must survive normalization. An empty input yields an
// empty sequence.
func Lines(text string) []string {
	if text == "" {
		return []string{}
	}
	raw := strings.Split(text, "\n")
	lines := make([]string, len(raw))
	for i, l := range raw {
		lines[i] = strings.TrimSpace(l)
	}
	return lines
}

// NonEmptyLines is the derived view used where index adjacency does not
// matter.
func NonEmptyLines(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if l != "" {
			out = append(out, l)
		}
	}
	return out
}
