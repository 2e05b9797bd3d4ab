package pipeline

import (
	"fmt"
	"strings"
)

// explanationHeader labels the section printed after the raw output.
const explanationHeader = "=== AI Explanation ==="

// present writes the captured output verbatim, then a blank line, the
// section header, and the explanation text. Non-empty output missing a
// trailing newline gets one; the captured bytes themselves are never
// reformatted.
func (p *Pipeline) present(output, explanation string) {
	var out strings.Builder

	out.WriteString(output)
	if output != "" && !strings.HasSuffix(output, "\n") {
		out.WriteString("\n")
	}

	out.WriteString("\n")
	out.WriteString(explanationHeader)
	out.WriteString("\n")
	out.WriteString(explanation)
	out.WriteString("\n")

	fmt.Fprint(p.stdout, out.String())
}
