package api

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/sista/core"
	"github.com/lixenwraith/sista/terminal"
)

// Numeric identity must round-trip through the closed enums
func TestColorCodesRoundTrip(t *testing.T) {
	for code := 30; code <= 37; code++ {
		c, err := ForegroundFromCode(code)
		require.NoError(t, err)
		assert.Equal(t, code, c.ForegroundCode())
	}
	for code := 40; code <= 47; code++ {
		c, err := BackgroundFromCode(code)
		require.NoError(t, err)
		assert.Equal(t, code, c.BackgroundCode())
	}
	for code := 0; code <= 9; code++ {
		a, err := AttributeFromCode(code)
		require.NoError(t, err)
		assert.Equal(t, code, a.Code())
	}
}

func TestCodeBoundaries(t *testing.T) {
	c, err := ForegroundFromCode(30)
	require.NoError(t, err)
	assert.Equal(t, terminal.Black, c)
	c, err = BackgroundFromCode(47)
	require.NoError(t, err)
	assert.Equal(t, terminal.White, c)

	for _, code := range []int{29, 38, 40} {
		_, err := ForegroundFromCode(code)
		assert.True(t, errors.Is(err, core.ErrInvalidArgument), "fg %d", code)
	}
	for _, code := range []int{39, 48, 30} {
		_, err := BackgroundFromCode(code)
		assert.True(t, errors.Is(err, core.ErrInvalidArgument), "bg %d", code)
	}
	for _, code := range []int{-1, 10, 256, 257, 265} {
		_, err := AttributeFromCode(code)
		assert.True(t, errors.Is(err, core.ErrInvalidArgument), "attr %d", code)
	}
}

func TestSettingsFromCodes(t *testing.T) {
	s, err := SettingsFromCodes(31, 40, 1, 4)
	require.NoError(t, err)
	assert.Equal(t, terminal.NewSettings(terminal.Red, terminal.Black, terminal.AttrBright, terminal.AttrUnderscore), s)

	_, err = SettingsFromCodes(31, 40, 12)
	assert.True(t, errors.Is(err, core.ErrInvalidArgument))
	_, err = SettingsFromCodes(41, 40)
	assert.True(t, errors.Is(err, core.ErrInvalidArgument))
}
