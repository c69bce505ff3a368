package parser

import (
	"fmt"
	"strings"

	"bennypowers.dev/tss/internal/span"
)

// Kind identifies the failure taxonomy: syntactic expectation failures,
// vocabulary-validation failures, the end-of-file class, and the union of
// exhausted alternatives.
type Kind int

const (
	// ExpectedHash means '#' did not start a hex color.
	ExpectedHash Kind = iota
	// ExpectedClassDot means '.' did not start a class.
	ExpectedClassDot
	// ExpectedColon means ':' did not follow a property name.
	ExpectedColon
	// ExpectedSemicolon means neither ';' nor '}' followed a declaration.
	ExpectedSemicolon
	// ExpectedBraceOpen means '{' did not start a rule body.
	ExpectedBraceOpen
	// ExpectedBraceClose means input ended inside a rule body.
	ExpectedBraceClose
	// ExpectedClassName means the literal after a class dot was empty.
	ExpectedClassName
	// ExpectedProperty means a declaration's property literal was empty.
	ExpectedProperty
	// ExpectedHexDigits means the literal after '#' was empty.
	ExpectedHexDigits
	// ExpectedColorName means a color-name literal was empty.
	ExpectedColorName
	// ExpectedModifier means a modifier literal was empty.
	ExpectedModifier
	// InvalidColorHex means a hex literal had a digit count other than 3 or 6.
	InvalidColorHex
	// InvalidHexDigit means a 3- or 6-character hex literal held non-hex characters.
	InvalidHexDigit
	// InvalidColorName means a color name outside the palette vocabulary.
	InvalidColorName
	// InvalidModifier means a modifier name outside the modifier vocabulary.
	InvalidModifier
	// InvalidProperty means a property name outside {bg, fg, add-modifier, remove-modifier}.
	InvalidProperty
	// UnterminatedComment means a block comment ran past end of input.
	UnterminatedComment
	// Union reports that every branch of an alternation failed; the
	// sub-errors are carried in Alts and the span covers all attempts.
	Union
)

// Error is a parse failure. Every Error carries the Span at which it was
// detected; Text holds the offending literal for vocabulary failures, Got
// the offending character for expectation failures (zero at end of input),
// and Alts the sub-errors of a Union.
type Error struct {
	Kind Kind
	Span span.Span
	Text string
	Got  rune
	Alts []*Error
}

func expected(what string, got rune) string {
	if got == 0 {
		return fmt.Sprintf("expected %s, got end of input", what)
	}
	return fmt.Sprintf("expected %s, got %q", what, got)
}

// Message returns the failure description without position information.
func (e *Error) Message() string {
	switch e.Kind {
	case ExpectedHash:
		return expected("'#'", e.Got)
	case ExpectedClassDot:
		return expected("'.'", e.Got)
	case ExpectedColon:
		return expected("':'", e.Got)
	case ExpectedSemicolon:
		return expected("';'", e.Got)
	case ExpectedBraceOpen:
		return expected("'{'", e.Got)
	case ExpectedBraceClose:
		return "expected '}', got end of input"
	case ExpectedClassName:
		return "expected a class name"
	case ExpectedProperty:
		return "expected a property name"
	case ExpectedHexDigits:
		return "expected hex digits after '#'"
	case ExpectedColorName:
		return "expected a color name"
	case ExpectedModifier:
		return "expected a modifier name"
	case InvalidColorHex:
		return fmt.Sprintf("invalid hex color %q: need 3 or 6 hex digits", e.Text)
	case InvalidHexDigit:
		return fmt.Sprintf("invalid hex color %q: not a hex number", e.Text)
	case InvalidColorName:
		return fmt.Sprintf("invalid color name %q", e.Text)
	case InvalidModifier:
		return fmt.Sprintf("invalid modifier %q", e.Text)
	case InvalidProperty:
		return fmt.Sprintf("invalid property %q", e.Text)
	case UnterminatedComment:
		return "unterminated block comment: expected '*/' before end of input"
	case Union:
		parts := make([]string, len(e.Alts))
		for i, alt := range e.Alts {
			parts[i] = alt.Message()
		}
		return "no alternative matched: " + strings.Join(parts, "; ")
	default:
		return "parse error"
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s at %s", e.Message(), e.Span)
}

// union combines the failures of exhausted alternative branches into one
// Error whose span covers both attempts.
func union(a, b *Error) *Error {
	return &Error{
		Kind: Union,
		Span: a.Span.Merge(b.Span),
		Alts: []*Error{a, b},
	}
}
