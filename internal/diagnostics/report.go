// Package diagnostics renders human-readable, source-pointing reports for
// parse failures. Purely presentational: it never alters a parse outcome and
// is invoked once per failed top-level parse.
package diagnostics

import (
	"fmt"
	"io"
	"strings"

	"bennypowers.dev/tss/internal/parser"
)

// Render writes a report for perr to w: a header locating the failure in
// name, the offending source line, and a caret marker under the failing
// span. source must be the same normalized text the parser saw, so that the
// error's character offsets line up.
func Render(w io.Writer, name, source string, perr *parser.Error) {
	runes := []rune(parser.Normalize(source))
	line, col, text := locate(runes, perr.Span.Start)

	fmt.Fprintf(w, "%s:%d:%d: parse error: %s\n", name, line, col, perr.Message())
	fmt.Fprintf(w, "  %s\n", strings.TrimRight(text, " \t"))

	// Marker: caret at the span start, tildes for the rest of the span,
	// clamped to the line and never narrower than one caret.
	width := perr.Span.Len()
	if remaining := len([]rune(text)) - (col - 1); width > remaining {
		width = remaining
	}
	if width < 1 {
		width = 1
	}
	marker := strings.Repeat(" ", col-1) + "^" + strings.Repeat("~", width-1)
	fmt.Fprintf(w, "  %s\n", marker)
}

// locate maps a character offset to a 1-based (line, column) pair and the
// text of that line. Offsets at or past the end of input point just after
// the last character, which is where end-of-file failures anchor.
func locate(runes []rune, offset int) (line, col int, text string) {
	if offset > len(runes) {
		offset = len(runes)
	}
	lineStart := 0
	line = 1
	for i := 0; i < offset; i++ {
		if runes[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}
	lineEnd := lineStart
	for lineEnd < len(runes) && runes[lineEnd] != '\n' {
		lineEnd++
	}
	return line, offset - lineStart + 1, string(runes[lineStart:lineEnd])
}
