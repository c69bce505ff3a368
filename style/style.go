// Package style defines the terminal style values resolved by the cascade:
// colors (named palette, 24-bit RGB, or terminal default), modifier flag
// sets, and the Style accumulator with its Patch merge operation.
package style

import (
	"fmt"
	"strings"
)

// NamedColor is one of the sixteen base terminal palette entries.
type NamedColor uint8

// The named palette, in ANSI order.
const (
	Black NamedColor = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	Gray
	DarkGray
	LightRed
	LightGreen
	LightYellow
	LightBlue
	LightMagenta
	LightCyan
	White
)

var namedColorNames = [...]string{
	Black:        "black",
	Red:          "red",
	Green:        "green",
	Yellow:       "yellow",
	Blue:         "blue",
	Magenta:      "magenta",
	Cyan:         "cyan",
	Gray:         "gray",
	DarkGray:     "dark_gray",
	LightRed:     "light_red",
	LightGreen:   "light_green",
	LightYellow:  "light_yellow",
	LightBlue:    "light_blue",
	LightMagenta: "light_magenta",
	LightCyan:    "light_cyan",
	White:        "white",
}

// String returns the canonical stylesheet name for the palette entry.
func (n NamedColor) String() string {
	if int(n) < len(namedColorNames) {
		return namedColorNames[n]
	}
	return fmt.Sprintf("named(%d)", uint8(n))
}

// ColorKind discriminates the three Color representations.
type ColorKind uint8

const (
	// KindNamed is a base-palette entry.
	KindNamed ColorKind = iota
	// KindRGB is an explicit 24-bit color.
	KindRGB
	// KindReset is the terminal's own default color.
	KindReset
)

// Color is a terminal color: a named palette entry, an explicit RGB triplet,
// or the terminal default (reset). The zero value is Black.
type Color struct {
	Kind    ColorKind
	Name    NamedColor // valid when Kind == KindNamed
	R, G, B uint8      // valid when Kind == KindRGB
}

// Named creates a palette Color.
func Named(n NamedColor) Color {
	return Color{Kind: KindNamed, Name: n}
}

// RGB creates an explicit 24-bit Color.
func RGB(r, g, b uint8) Color {
	return Color{Kind: KindRGB, R: r, G: g, B: b}
}

// Reset creates the terminal-default Color.
func Reset() Color {
	return Color{Kind: KindReset}
}

// String returns the color in stylesheet notation: the palette name, a
// #rrggbb hex triplet, or "reset".
func (c Color) String() string {
	switch c.Kind {
	case KindRGB:
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	case KindReset:
		return "reset"
	default:
		return c.Name.String()
	}
}

// Modifier is a bit-flag set over the fixed modifier vocabulary.
type Modifier uint16

// The modifier vocabulary.
const (
	Bold Modifier = 1 << iota
	Dim
	Italic
	Underlined
	SlowBlink
	RapidBlink
	Reversed
	Hidden
	CrossedOut
)

var modifierNames = []struct {
	flag Modifier
	name string
}{
	{Bold, "bold"},
	{Dim, "dim"},
	{Italic, "italic"},
	{Underlined, "underlined"},
	{SlowBlink, "slow_blink"},
	{RapidBlink, "rapid_blink"},
	{Reversed, "reversed"},
	{Hidden, "hidden"},
	{CrossedOut, "crossed_out"},
}

// Contains reports whether every flag in m is also set in the receiver.
func (m Modifier) Contains(flags Modifier) bool {
	return m&flags == flags
}

// String returns the set flags as a "|"-joined list of stylesheet names,
// or "none" for the empty set.
func (m Modifier) String() string {
	if m == 0 {
		return "none"
	}
	var names []string
	for _, e := range modifierNames {
		if m&e.flag != 0 {
			names = append(names, e.name)
		}
	}
	return strings.Join(names, "|")
}

// Style is the net visual styling of an element: optional foreground and
// background colors plus modifier flags to add and to remove. A nil color
// pointer means the style does not assert that property. The zero value is
// the all-unset default every cascade starts from.
type Style struct {
	Fg           *Color
	Bg           *Color
	AddModifiers Modifier
	SubModifiers Modifier
}

// Foreground returns a copy with the foreground color set.
func (s Style) Foreground(c *Color) Style {
	s.Fg = c
	return s
}

// Background returns a copy with the background color set.
func (s Style) Background(c *Color) Style {
	s.Bg = c
	return s
}

// AddModifier returns a copy that asserts m. Asserting a modifier removes it
// from the style's own removal set.
func (s Style) AddModifier(m Modifier) Style {
	s.AddModifiers |= m
	s.SubModifiers &^= m
	return s
}

// RemoveModifier returns a copy that removes m. Removing a modifier clears
// it from the style's own addition set.
func (s Style) RemoveModifier(m Modifier) Style {
	s.SubModifiers |= m
	s.AddModifiers &^= m
	return s
}

// Patch merges a later style into the receiver: colors the later style
// explicitly sets win, colors it leaves nil do not disturb the receiver, and
// the modifier sets are unioned with mutual exclusion between add and
// remove. Patch is the cascade's fold operation.
func (s Style) Patch(other Style) Style {
	if other.Fg != nil {
		s.Fg = other.Fg
	}
	if other.Bg != nil {
		s.Bg = other.Bg
	}
	s.AddModifiers = (s.AddModifiers | other.AddModifiers) &^ other.SubModifiers
	s.SubModifiers = (s.SubModifiers | other.SubModifiers) &^ other.AddModifiers
	return s
}

// String renders the style for diagnostics and test failure output.
func (s Style) String() string {
	part := func(c *Color) string {
		if c == nil {
			return "-"
		}
		return c.String()
	}
	return fmt.Sprintf("fg=%s bg=%s add=%s sub=%s",
		part(s.Fg), part(s.Bg), s.AddModifiers, s.SubModifiers)
}
