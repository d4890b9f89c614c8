package terminal

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/lixenwraith/sista/core"
)

// Color is one of the eight standard ANSI colors
// The zero value ColorNone is not a color; Settings holding it are absent
type Color uint8

const (
	ColorNone Color = iota
	Black
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

var colorNames = [...]string{"none", "black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}

// Valid reports whether c is one of the eight colors
func (c Color) Valid() bool {
	return c >= Black && c <= White
}

// ForegroundCode returns the SGR code selecting c as foreground (30-37)
func (c Color) ForegroundCode() int {
	return 30 + int(c) - 1
}

// BackgroundCode returns the SGR code selecting c as background (40-47)
func (c Color) BackgroundCode() int {
	return 40 + int(c) - 1
}

func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "invalid"
}

// ParseColor maps a case-insensitive color name to a Color
func ParseColor(name string) (Color, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i := Black; i <= White; i++ {
		if colorNames[i] == n {
			return i, nil
		}
	}
	return ColorNone, errors.Wrapf(core.ErrInvalidArgument, "unknown color %q", name)
}

// Attribute is one of the ten SGR text attributes
// Values equal their SGR codes
type Attribute uint8

const (
	AttrReset Attribute = iota
	AttrBright
	AttrFaint
	AttrItalic
	AttrUnderscore
	AttrBlink
	AttrRapidBlink
	AttrReverse
	AttrHidden
	AttrStrikethrough

	attributeCount
)

var attributeNames = [...]string{
	"reset", "bright", "faint", "italic", "underscore",
	"blink", "rapid_blink", "reverse", "hidden", "strikethrough",
}

// Valid reports whether a is one of the ten attributes
func (a Attribute) Valid() bool {
	return a < attributeCount
}

// Code returns the SGR code enabling a
func (a Attribute) Code() int {
	return int(a)
}

// ResetCode returns the SGR code disabling a
// Bright is cleared by 22 (normal intensity), 21 would mean double underline
func (a Attribute) ResetCode() int {
	if a == AttrBright {
		return 22
	}
	return int(a) + 20
}

func (a Attribute) String() string {
	if a.Valid() {
		return attributeNames[a]
	}
	return "invalid"
}

// ParseAttribute maps a case-insensitive attribute name to an Attribute
// "bold" and "underline" are accepted as aliases
func ParseAttribute(name string) (Attribute, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	switch n {
	case "bold":
		return AttrBright, nil
	case "underline":
		return AttrUnderscore, nil
	case "rapid-blink", "blink_fast":
		return AttrRapidBlink, nil
	}
	for i := AttrReset; i < attributeCount; i++ {
		if attributeNames[i] == n {
			return i, nil
		}
	}
	return AttrReset, errors.Wrapf(core.ErrInvalidArgument, "unknown attribute %q", name)
}

// AttrSet is a set of attributes (bitmask indexed by Attribute)
type AttrSet uint16

// Attrs builds a set from attributes, ignoring invalid ones
func Attrs(attrs ...Attribute) AttrSet {
	var s AttrSet
	for _, a := range attrs {
		s = s.With(a)
	}
	return s
}

// With returns s plus a
func (s AttrSet) With(a Attribute) AttrSet {
	if !a.Valid() {
		return s
	}
	return s | 1<<a
}

// Without returns s minus a
func (s AttrSet) Without(a Attribute) AttrSet {
	if !a.Valid() {
		return s
	}
	return s &^ (1 << a)
}

// Has reports membership
func (s AttrSet) Has(a Attribute) bool {
	return a.Valid() && s&(1<<a) != 0
}

// List returns members in ascending code order
func (s AttrSet) List() []Attribute {
	var out []Attribute
	for a := AttrReset; a < attributeCount; a++ {
		if s.Has(a) {
			out = append(out, a)
		}
	}
	return out
}

// Settings is an immutable style: foreground, background and attributes
// The zero value is the absent style
type Settings struct {
	Foreground Color
	Background Color
	Attributes AttrSet
}

// NewSettings builds a style
func NewSettings(fg, bg Color, attrs ...Attribute) Settings {
	return Settings{Foreground: fg, Background: bg, Attributes: Attrs(attrs...)}
}

// DefaultSettings is white on black with no attributes
var DefaultSettings = Settings{Foreground: White, Background: Black}

// IsZero reports whether s is the absent style
func (s Settings) IsZero() bool {
	return s == Settings{}
}

// Valid reports whether both colors are set and every attribute bit is known
func (s Settings) Valid() bool {
	return s.Foreground.Valid() && s.Background.Valid() && s.Attributes < 1<<attributeCount
}

// WithAttribute returns a copy of s with a added
func (s Settings) WithAttribute(a Attribute) Settings {
	s.Attributes = s.Attributes.With(a)
	return s
}
