package semtest

import (
	"fmt"
	"sort"
	"strings"
)

// FormatTypes renders a TypeIndex as a deterministic multi-line report:
// one block per line in ascending numeric order, one entry per expression
// in ascending lexicographic order. Debugging convenience only; nothing
// parses this output.
func FormatTypes(ix TypeIndex) string {
	lines := make([]int, 0, len(ix))
	for line := range ix {
		lines = append(lines, line)
	}
	sort.Ints(lines)

	var b strings.Builder
	for _, line := range lines {
		fmt.Fprintf(&b, "line %d:\n", line)

		texts := make([]string, 0, len(ix[line]))
		for text := range ix[line] {
			texts = append(texts, text)
		}
		sort.Strings(texts)

		for _, text := range texts {
			fmt.Fprintf(&b, "  %s : %s\n", text, ix[line][text])
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}
