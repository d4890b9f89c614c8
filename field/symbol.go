package field

import (
	"github.com/mattn/go-runewidth"
	"github.com/pkg/errors"
	"github.com/rivo/uniseg"

	"github.com/lixenwraith/sista/core"
	"github.com/lixenwraith/sista/terminal"
)

// ValidSymbol accepts exactly one grapheme cluster occupying one column
func ValidSymbol(s string) bool {
	if s == "" {
		return false
	}
	return uniseg.GraphemeClusterCount(s) == 1 && runewidth.StringWidth(s) == 1
}

func validateGlyph(symbol string, style terminal.Settings) error {
	if !ValidSymbol(symbol) {
		return errors.Wrapf(core.ErrInvalidArgument, "symbol %q is not a single-column character", symbol)
	}
	if !style.Valid() {
		return errors.Wrapf(core.ErrInvalidArgument, "style %+v has absent or unknown values", style)
	}
	return nil
}
