// Package parser implements the stylesheet grammar: recursive-descent
// parsing functions over a backtracking rune cursor, a span-carrying error
// taxonomy, and the parsed Stylesheet/Rule/Selector types the cascade
// resolves against.
//
// The grammar, informally:
//
//	stylesheet  = { selector body } EOF
//	selector    = [ literal ] { "." literal }
//	body        = "{" { literal ":" value [ ";" ] } "}"
//	value       = color | modifier
//	color       = "#" hex | name
//
// with "//" and "/* */" comments permitted anywhere whitespace is.
package parser

import (
	"strings"
	"unicode"

	"github.com/mazznoer/csscolorparser"

	"bennypowers.dev/tss/internal/cursor"
	"bennypowers.dev/tss/internal/span"
	"bennypowers.dev/tss/style"
)

// Cursor is the rune cursor every grammar function scans.
type Cursor = cursor.Cursor[rune]

// Normalize strips carriage returns from stylesheet source. Parse applies it
// itself; callers that render diagnostics must normalize the same way so
// error spans line up with the text they point into.
func Normalize(source string) string {
	return strings.ReplaceAll(source, "\r", "")
}

// Parse parses one complete stylesheet source. Any failure anywhere aborts
// the whole parse: the result is either a fully valid Stylesheet or nil with
// a span-carrying *Error, never a partial stylesheet.
func Parse(source string) (*Stylesheet, *Error) {
	cur := cursor.New([]rune(Normalize(source)))
	return parseStylesheet(cur)
}

func parseStylesheet(c *Cursor) (*Stylesheet, *Error) {
	var rules []Rule
	for {
		if err := consumeWhitespace(c); err != nil {
			return nil, err
		}
		if c.IsEOF() {
			break
		}
		selector, err := parseSelector(c)
		if err != nil {
			return nil, err
		}
		if err := consumeWhitespace(c); err != nil {
			return nil, err
		}
		st, err := parseBody(c)
		if err != nil {
			return nil, err
		}
		rules = append(rules, Rule{Selector: selector.Node, Style: st.Node})
	}
	return &Stylesheet{rules: rules}, nil
}

// parseSelector parses an optional element literal followed by zero or more
// dot-prefixed classes. A selector with no element and no classes is legal
// and matches everything; the following '{' (or any other character)
// terminates it.
func parseSelector(c *Cursor) (span.Spanned[Selector], *Error) {
	var zero span.Spanned[Selector]
	if err := consumeWhitespace(c); err != nil {
		return zero, err
	}
	start := c.Position()
	var element *span.Spanned[string]
	if lit, ok := literal(c); ok {
		element = &lit
	}
	var classes []span.Spanned[string]
	for {
		if err := consumeWhitespace(c); err != nil {
			return zero, err
		}
		if e, ok := c.Peek(); !ok || e.Node != '.' {
			break
		}
		cls, err := class(c)
		if err != nil {
			return zero, err
		}
		classes = append(classes, cls)
	}
	sel := Selector{Element: element, Classes: classes}
	return span.Of(sel, span.New(start, c.Position())), nil
}

// class parses one ".name" class, with whitespace and comments permitted
// around the dot.
func class(c *Cursor) (span.Spanned[string], *Error) {
	var zero span.Spanned[string]
	if err := consumeWhitespace(c); err != nil {
		return zero, err
	}
	if err := expect(c, '.', ExpectedClassDot); err != nil {
		return zero, err
	}
	if err := consumeWhitespace(c); err != nil {
		return zero, err
	}
	lit, ok := literal(c)
	if !ok {
		return zero, &Error{Kind: ExpectedClassName, Span: lit.Span}
	}
	return lit, nil
}

// parseBody parses "{ property: value; ... }". The trailing semicolon may be
// omitted immediately before '}'.
func parseBody(c *Cursor) (span.Spanned[style.Style], *Error) {
	var zero span.Spanned[style.Style]
	if err := consumeWhitespace(c); err != nil {
		return zero, err
	}
	start := c.Position()
	if err := expect(c, '{', ExpectedBraceOpen); err != nil {
		return zero, err
	}
	var st style.Style
	for {
		if err := consumeWhitespace(c); err != nil {
			return zero, err
		}
		if e, ok := c.Peek(); ok && e.Node == '}' {
			c.Advance(1)
			break
		}
		if c.IsEOF() {
			return zero, &Error{Kind: ExpectedBraceClose, Span: c.Span()}
		}
		prop, ok := literal(c)
		if !ok {
			return zero, &Error{Kind: ExpectedProperty, Span: prop.Span}
		}
		if err := consumeWhitespace(c); err != nil {
			return zero, err
		}
		if err := expect(c, ':', ExpectedColon); err != nil {
			return zero, err
		}
		if err := consumeWhitespace(c); err != nil {
			return zero, err
		}
		switch prop.Node {
		case "fg":
			col, err := color(c)
			if err != nil {
				return zero, err
			}
			st = st.Foreground(col.Node)
		case "bg":
			col, err := color(c)
			if err != nil {
				return zero, err
			}
			st = st.Background(col.Node)
		case "add-modifier":
			mod, err := modifier(c)
			if err != nil {
				return zero, err
			}
			st = st.AddModifier(mod.Node)
		case "remove-modifier":
			mod, err := modifier(c)
			if err != nil {
				return zero, err
			}
			st = st.RemoveModifier(mod.Node)
		default:
			return zero, &Error{Kind: InvalidProperty, Text: prop.Node, Span: prop.Span}
		}
		if err := consumeWhitespace(c); err != nil {
			return zero, err
		}
		if e, ok := c.Peek(); ok && e.Node == ';' {
			c.Advance(1)
		} else if ok && e.Node == '}' {
			c.Advance(1)
			break
		} else if !ok {
			return zero, &Error{Kind: ExpectedBraceClose, Span: c.Span()}
		} else {
			return zero, &Error{Kind: ExpectedSemicolon, Got: e.Node, Span: c.Span()}
		}
	}
	return span.Of(st, span.New(start, c.Position())), nil
}

// color parses a color value: the hex branch first, and on its failure
// (position rolled back by CatchParse) the palette branch. When both fail
// the result is a Union error covering both attempts. A nil color is the
// `none` keyword: the property asserts nothing.
func color(c *Cursor) (span.Spanned[*style.Color], *Error) {
	var zero span.Spanned[*style.Color]
	hex, hexErr := cursor.CatchParse(c, func(c *Cursor) (span.Spanned[style.Color], error) {
		v, err := colorHex(c)
		if err != nil {
			return v, err
		}
		return v, nil
	})
	if hexErr == nil {
		col := hex.Node
		return span.Of(&col, hex.Span), nil
	}
	named, nameErr := colorName(c)
	if nameErr != nil {
		return zero, union(hexErr.(*Error), nameErr)
	}
	return named, nil
}

// colorHex parses "#RGB" or "#RRGGBB". The 3-digit form doubles each digit
// (f0a parses as ff00aa). Any other digit count is invalid, as is any
// non-hex character; decoding the validated text is delegated to
// csscolorparser, which applies the same digit doubling.
func colorHex(c *Cursor) (span.Spanned[style.Color], *Error) {
	var zero span.Spanned[style.Color]
	if err := consumeWhitespace(c); err != nil {
		return zero, err
	}
	if err := expect(c, '#', ExpectedHash); err != nil {
		return zero, err
	}
	if err := consumeWhitespace(c); err != nil {
		return zero, err
	}
	lit, ok := literal(c)
	if !ok {
		return zero, &Error{Kind: ExpectedHexDigits, Span: lit.Span}
	}
	if len(lit.Node) != 3 && len(lit.Node) != 6 {
		return zero, &Error{Kind: InvalidColorHex, Text: lit.Node, Span: lit.Span}
	}
	parsed, err := csscolorparser.Parse("#" + lit.Node)
	if err != nil {
		return zero, &Error{Kind: InvalidHexDigit, Text: lit.Node, Span: lit.Span}
	}
	r, g, b, _ := parsed.RGBA255()
	return span.Of(style.RGB(r, g, b), lit.Span), nil
}

// colorPalette is the fixed color-name vocabulary. none and reset are not
// palette entries; colorName handles them separately.
var colorPalette = map[string]style.NamedColor{
	"black":         style.Black,
	"gray":          style.Gray,
	"red":           style.Red,
	"green":         style.Green,
	"blue":          style.Blue,
	"yellow":        style.Yellow,
	"magenta":       style.Magenta,
	"cyan":          style.Cyan,
	"white":         style.White,
	"light_red":     style.LightRed,
	"lightred":      style.LightRed,
	"light_green":   style.LightGreen,
	"lightgreen":    style.LightGreen,
	"light_blue":    style.LightBlue,
	"lightblue":     style.LightBlue,
	"light_yellow":  style.LightYellow,
	"lightyellow":   style.LightYellow,
	"light_magenta": style.LightMagenta,
	"lightmagenta":  style.LightMagenta,
	"light_cyan":    style.LightCyan,
	"lightcyan":     style.LightCyan,
	"dark_gray":     style.DarkGray,
	"darkgray":      style.DarkGray,
}

// colorName parses a named color. `none` yields a nil color (the property
// explicitly asserts nothing), `reset`/`transparent` yield the terminal
// default, and anything outside the palette is invalid.
func colorName(c *Cursor) (span.Spanned[*style.Color], *Error) {
	var zero span.Spanned[*style.Color]
	if err := consumeWhitespace(c); err != nil {
		return zero, err
	}
	lit, ok := literal(c)
	if !ok {
		return zero, &Error{Kind: ExpectedColorName, Span: lit.Span}
	}
	switch lit.Node {
	case "none":
		return span.Of[*style.Color](nil, lit.Span), nil
	case "reset", "transparent":
		col := style.Reset()
		return span.Of(&col, lit.Span), nil
	}
	named, ok := colorPalette[lit.Node]
	if !ok {
		return zero, &Error{Kind: InvalidColorName, Text: lit.Node, Span: lit.Span}
	}
	col := style.Named(named)
	return span.Of(&col, lit.Span), nil
}

// modifierVocabulary is the fixed modifier-name vocabulary.
var modifierVocabulary = map[string]style.Modifier{
	"bold":        style.Bold,
	"dim":         style.Dim,
	"italic":      style.Italic,
	"underlined":  style.Underlined,
	"slow_blink":  style.SlowBlink,
	"rapid_blink": style.RapidBlink,
	"reversed":    style.Reversed,
	"hidden":      style.Hidden,
	"crossed_out": style.CrossedOut,
}

func modifier(c *Cursor) (span.Spanned[style.Modifier], *Error) {
	var zero span.Spanned[style.Modifier]
	if err := consumeWhitespace(c); err != nil {
		return zero, err
	}
	lit, ok := literal(c)
	if !ok {
		return zero, &Error{Kind: ExpectedModifier, Span: lit.Span}
	}
	mod, ok := modifierVocabulary[lit.Node]
	if !ok {
		return zero, &Error{Kind: InvalidModifier, Text: lit.Node, Span: lit.Span}
	}
	return span.Of(mod, lit.Span), nil
}

func isLiteralRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-'
}

// literal scans the maximal run of literal characters. An empty run reports
// false; the caller maps it to its own expectation error, keeping the empty
// run's span.
func literal(c *Cursor) (span.Spanned[string], bool) {
	run := c.TakeWhile(func(r rune, _ []rune) bool { return isLiteralRune(r) })
	lit := span.Map(run, func(rs []rune) string { return string(rs) })
	return lit, lit.Node != ""
}

// expect consumes one character and fails with kind if it is not want, or if
// the input is exhausted (Got stays zero, span points past the end).
func expect(c *Cursor, want rune, kind Kind) *Error {
	e, ok := c.Next()
	if !ok {
		return &Error{Kind: kind, Span: c.Span()}
	}
	if e.Node != want {
		return &Error{Kind: kind, Got: e.Node, Span: e.Span}
	}
	return nil
}

// consumeWhitespace skips whitespace runs interleaved with comments. A
// malformed comment (unterminated block) is a hard error; a lone '/' that
// starts no comment is left in place for the grammar to trip over.
func consumeWhitespace(c *Cursor) *Error {
	for {
		c.TakeWhile(func(r rune, _ []rune) bool { return unicode.IsSpace(r) })
		ok, err := skipComment(c)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
}

// skipComment consumes one "//" or "/* */" comment if the cursor sits on
// one. It reports whether a comment was consumed; an unterminated block
// comment is an end-of-file-class error anchored at the current position.
func skipComment(c *Cursor) (bool, *Error) {
	if e, ok := c.Peek(); !ok || e.Node != '/' {
		return false, nil
	}
	start := c.Position()
	c.Advance(1)
	opener, ok := c.Next()
	if !ok {
		c.SetPosition(start)
		return false, nil
	}
	switch opener.Node {
	case '/':
		c.TakeWhile(func(r rune, _ []rune) bool { return r != '\n' })
		return true, nil
	case '*':
		for {
			e, ok := c.Next()
			if !ok {
				return false, &Error{Kind: UnterminatedComment, Span: c.Span()}
			}
			if e.Node == '*' {
				if p, ok := c.Peek(); ok && p.Node == '/' {
					c.Advance(1)
					return true, nil
				}
			}
		}
	default:
		c.SetPosition(start)
		return false, nil
	}
}
