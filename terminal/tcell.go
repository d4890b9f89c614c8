package terminal

import (
	"github.com/gdamore/tcell/v2"
)

// TcellColor maps c to the matching entry of the 16-color palette
func TcellColor(c Color) tcell.Color {
	if !c.Valid() {
		return tcell.ColorDefault
	}
	return tcell.PaletteColor(int(c) - 1)
}

// TcellStyle converts s into a tcell style
// Hidden renders the foreground in the background color; rapid blink degrades to blink
func TcellStyle(s Settings) tcell.Style {
	if s.IsZero() {
		return tcell.StyleDefault
	}
	fg := TcellColor(s.Foreground)
	if s.Attributes.Has(AttrHidden) {
		fg = TcellColor(s.Background)
	}
	st := tcell.StyleDefault.Foreground(fg).Background(TcellColor(s.Background))

	attrs := s.Attributes
	if attrs.Has(AttrBright) {
		st = st.Bold(true)
	}
	if attrs.Has(AttrFaint) {
		st = st.Dim(true)
	}
	if attrs.Has(AttrItalic) {
		st = st.Italic(true)
	}
	if attrs.Has(AttrUnderscore) {
		st = st.Underline(true)
	}
	if attrs.Has(AttrBlink) || attrs.Has(AttrRapidBlink) {
		st = st.Blink(true)
	}
	if attrs.Has(AttrReverse) {
		st = st.Reverse(true)
	}
	if attrs.Has(AttrStrikethrough) {
		st = st.StrikeThrough(true)
	}
	return st
}
