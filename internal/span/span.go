// Package span provides source-range tracking for parse results.
//
// A Span is a half-open [Start, End) range of character offsets into one
// source text. Spanned pairs a value with the Span it was parsed from, so
// diagnostics can point back into the source long after parsing.
package span

import "fmt"

// Span is a half-open character-offset range [Start, End) into a source
// text. Start ≤ End always holds for spans produced by the cursor. A
// 1-width span whose Start equals the input length is a legal placeholder
// used to report "expected more input" at end of file.
type Span struct {
	Start int
	End   int
}

// New creates a Span covering [start, end).
func New(start, end int) Span {
	return Span{Start: start, End: end}
}

// Point creates a 1-width Span at the given offset.
func Point(offset int) Span {
	return Span{Start: offset, End: offset + 1}
}

// Len returns the number of characters the span covers.
func (s Span) Len() int {
	return s.End - s.Start
}

// Merge returns the smallest Span covering both s and other, regardless of
// argument order or overlap.
func (s Span) Merge(other Span) Span {
	return Span{
		Start: min(s.Start, other.Start),
		End:   max(s.End, other.End),
	}
}

// String returns the span in "start..end" form.
func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}

// Spanned pairs a parsed value with the Span of source text it came from.
type Spanned[T any] struct {
	Node T
	Span Span
}

// Of creates a Spanned value.
func Of[T any](node T, s Span) Spanned[T] {
	return Spanned[T]{Node: node, Span: s}
}

// Map applies f to the node, preserving the span.
func Map[T, U any](s Spanned[T], f func(T) U) Spanned[U] {
	return Spanned[U]{Node: f(s.Node), Span: s.Span}
}

// WithSpan returns the same node tagged with a different span.
func (s Spanned[T]) WithSpan(sp Span) Spanned[T] {
	return Spanned[T]{Node: s.Node, Span: sp}
}

// MergeSpan widens the value's span to also cover other.
func (s Spanned[T]) MergeSpan(other Span) Spanned[T] {
	return Spanned[T]{Node: s.Node, Span: s.Span.Merge(other)}
}
