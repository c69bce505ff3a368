// Package cursor provides a generic position-tracked view over an input
// sequence with single-element lookahead, predicate-driven consumption, and
// transactional backtracking for recursive-descent parsers.
package cursor

import "bennypowers.dev/tss/internal/span"

// Cursor scans an input sequence. The position lies in [0, len(input)] and
// only advances through consumption; SetPosition restores an exact saved
// position, which is how the backtracking combinators roll back.
type Cursor[T any] struct {
	input []T
	pos   int
}

// New creates a Cursor at the start of input.
func New[T any](input []T) *Cursor[T] {
	return &Cursor[T]{input: input}
}

// Peek returns the element at the current position without consuming it.
// The second return is false at end of input.
func (c *Cursor[T]) Peek() (span.Spanned[T], bool) {
	if c.pos >= len(c.input) {
		var zero span.Spanned[T]
		return zero, false
	}
	return span.Of(c.input[c.pos], span.Point(c.pos)), true
}

// Next consumes and returns the element at the current position. The second
// return is false at end of input, in which case nothing is consumed.
func (c *Cursor[T]) Next() (span.Spanned[T], bool) {
	e, ok := c.Peek()
	if ok {
		c.pos++
	}
	return e, ok
}

// Take consumes exactly n elements. If fewer than n remain it consumes
// nothing and returns false.
func (c *Cursor[T]) Take(n int) (span.Spanned[[]T], bool) {
	start := c.pos
	end := start + n
	if end > len(c.input) {
		var zero span.Spanned[[]T]
		return zero, false
	}
	c.pos = end
	return span.Of(c.input[start:end], span.New(start, end)), true
}

// PeekWhile returns the maximal run from the current position whose elements
// satisfy f, without consuming it. f receives the candidate element and the
// slice already matched in this run, so predicates may be stateful with
// respect to the run. Never reads past the end of input.
func (c *Cursor[T]) PeekWhile(f func(e T, matched []T) bool) span.Spanned[[]T] {
	start := c.pos
	end := c.pos
	for end < len(c.input) && f(c.input[end], c.input[start:end]) {
		end++
	}
	return span.Of(c.input[start:end], span.New(start, end))
}

// TakeWhile consumes the run PeekWhile would return.
func (c *Cursor[T]) TakeWhile(f func(e T, matched []T) bool) span.Spanned[[]T] {
	run := c.PeekWhile(f)
	c.pos = run.Span.End
	return run
}

// PeekUntil returns the maximal run from the current position whose elements
// do not satisfy f, without consuming it.
func (c *Cursor[T]) PeekUntil(f func(e T, matched []T) bool) span.Spanned[[]T] {
	return c.PeekWhile(func(e T, matched []T) bool { return !f(e, matched) })
}

// TakeUntil consumes the run PeekUntil would return.
func (c *Cursor[T]) TakeUntil(f func(e T, matched []T) bool) span.Spanned[[]T] {
	run := c.PeekUntil(f)
	c.pos = run.Span.End
	return run
}

// Advance moves the position forward by n without bounds checking beyond
// the input length.
func (c *Cursor[T]) Advance(n int) {
	c.pos = min(c.pos+n, len(c.input))
}

// IsEOF reports whether the cursor has consumed all input.
func (c *Cursor[T]) IsEOF() bool {
	return c.pos >= len(c.input)
}

// Position returns the current position.
func (c *Cursor[T]) Position() int {
	return c.pos
}

// SetPosition restores a previously saved position.
func (c *Cursor[T]) SetPosition(pos int) {
	c.pos = pos
}

// Len returns the total input length.
func (c *Cursor[T]) Len() int {
	return len(c.input)
}

// Span returns a 1-width span at the current position, used to anchor
// "expected more input" failures (legal even at end of input).
func (c *Cursor[T]) Span() span.Span {
	return span.Point(c.pos)
}

// TryParse runs f and rolls the cursor back to its starting position when f
// reports no match, making partial progress invisible. Go methods cannot
// introduce type parameters, so the combinators are package-level functions.
func TryParse[T, R any](c *Cursor[T], f func(*Cursor[T]) (R, bool)) (R, bool) {
	start := c.pos
	v, ok := f(c)
	if !ok {
		c.pos = start
	}
	return v, ok
}

// CatchParse runs f and rolls the cursor back to its starting position when
// f fails, keeping the new position on success. This is the sole
// backtracking primitive the grammar needs for alternation.
func CatchParse[T, R any](c *Cursor[T], f func(*Cursor[T]) (R, error)) (R, error) {
	start := c.pos
	v, err := f(c)
	if err != nil {
		c.pos = start
	}
	return v, err
}
