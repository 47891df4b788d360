package plan

import "strings"

// indent prefixes every non-empty line of s with the given number of
// spaces, used by each node's String() to render its children.
func indent(s string, spaces int) string {
	prefix := strings.Repeat(" ", spaces)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}
