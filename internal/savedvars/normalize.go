// Package savedvars recovers per-character inventory data from the addon's
// SavedVariables table dump. The dump is a loosely formatted nested table
// literal, not a machine-readable format: structure is reconstructed by
// brace counting and the interesting fields are pulled out line by line
// with regex heuristics. Lines that match nothing are skipped.
package savedvars

import "strings"

// indentUnit is the number of spaces per nesting level after normalization.
const indentUnit = 4

// Normalize reformats a raw dump into a consistent, indentation-normalized
// line sequence. Each line is trimmed and re-indented by the brace-nesting
// depth: a line ending in "{" increases depth after emission, a line ending
// in "}," (or equal to "}") decreases it before emission, floored at zero.
// It never fails; unbalanced braces just leave the depth where it is.
func Normalize(raw string) []string {
	lines := strings.Split(raw, "\n")
	out := make([]string, 0, len(lines))

	depth := 0
	for _, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		line = strings.TrimSpace(line)

		if strings.HasSuffix(line, "},") || line == "}" {
			if depth > 0 {
				depth--
			}
		}

		out = append(out, strings.Repeat(" ", depth*indentUnit)+line)

		if strings.HasSuffix(line, "{") {
			depth++
		}
	}

	return out
}
