package api

import (
	"github.com/pkg/errors"

	"github.com/lixenwraith/sista/core"
	"github.com/lixenwraith/sista/terminal"
)

// Version is the boundary contract version
const Version = "3.0.0"

// ForegroundFromCode maps an SGR foreground code (30-37) to a color
func ForegroundFromCode(code int) (terminal.Color, error) {
	if code < 30 || code > 37 {
		return terminal.ColorNone, errors.Wrapf(core.ErrInvalidArgument, "foreground code %d", code)
	}
	return terminal.Color(code - 29), nil
}

// BackgroundFromCode maps an SGR background code (40-47) to a color
func BackgroundFromCode(code int) (terminal.Color, error) {
	if code < 40 || code > 47 {
		return terminal.ColorNone, errors.Wrapf(core.ErrInvalidArgument, "background code %d", code)
	}
	return terminal.Color(code - 39), nil
}

// AttributeFromCode maps an SGR attribute code (0-9) to an attribute
func AttributeFromCode(code int) (terminal.Attribute, error) {
	if code < 0 || code > int(terminal.AttrStrikethrough) {
		return 0, errors.Wrapf(core.ErrInvalidArgument, "attribute code %d", code)
	}
	return terminal.Attribute(code), nil
}

// SettingsFromCodes builds a style from numeric codes
func SettingsFromCodes(fg, bg int, attrs ...int) (terminal.Settings, error) {
	fgColor, err := ForegroundFromCode(fg)
	if err != nil {
		return terminal.Settings{}, err
	}
	bgColor, err := BackgroundFromCode(bg)
	if err != nil {
		return terminal.Settings{}, err
	}
	s := terminal.NewSettings(fgColor, bgColor)
	for _, code := range attrs {
		a, err := AttributeFromCode(code)
		if err != nil {
			return terminal.Settings{}, err
		}
		s = s.WithAttribute(a)
	}
	return s, nil
}
