package style

import "github.com/gdamore/tcell/v2"

// Tcell converts the color for tcell-based renderers. Named palette entries
// map to the corresponding ANSI palette index, RGB to a 24-bit color, and
// Reset to tcell's reset sentinel.
func (c Color) Tcell() tcell.Color {
	switch c.Kind {
	case KindRGB:
		return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	case KindReset:
		return tcell.ColorReset
	default:
		return tcell.PaletteColor(int(c.Name))
	}
}

var tcellAttrs = []struct {
	flag Modifier
	attr tcell.AttrMask
}{
	{Bold, tcell.AttrBold},
	{Dim, tcell.AttrDim},
	{Italic, tcell.AttrItalic},
	{Underlined, tcell.AttrUnderline},
	{SlowBlink, tcell.AttrBlink},
	{RapidBlink, tcell.AttrBlink},
	{Reversed, tcell.AttrReverse},
	{CrossedOut, tcell.AttrStrikeThrough},
	// Hidden has no tcell attribute and is dropped by the adapter.
}

// Tcell converts the resolved style for tcell-based renderers. Unset colors
// stay at tcell's default; both blink speeds map onto tcell's single blink
// attribute.
func (s Style) Tcell() tcell.Style {
	st := tcell.StyleDefault
	if s.Fg != nil {
		st = st.Foreground(s.Fg.Tcell())
	}
	if s.Bg != nil {
		st = st.Background(s.Bg.Tcell())
	}
	var attrs tcell.AttrMask
	for _, e := range tcellAttrs {
		if s.AddModifiers&e.flag != 0 {
			attrs |= e.attr
		}
	}
	return st.Attributes(attrs)
}
