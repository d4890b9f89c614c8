package terminal

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetColors(t *testing.T) {
	var b strings.Builder
	SetForegroundColor(&b, Red)
	SetBackgroundColor(&b, Blue)
	assert.Equal(t, "\x1b[31m\x1b[44m", b.String())

	// Absent colors emit nothing
	b.Reset()
	SetForegroundColor(&b, ColorNone)
	SetBackgroundColor(&b, Color(42))
	assert.Empty(t, b.String())
}

func TestSetAndResetAttribute(t *testing.T) {
	var b strings.Builder
	SetAttribute(&b, AttrUnderscore)
	ResetAttribute(&b, AttrUnderscore)
	ResetAttribute(&b, AttrBright)
	ResetAttribute(&b, AttrReset)
	assert.Equal(t, "\x1b[4m\x1b[24m\x1b[22m\x1b[0m", b.String())
}

func TestReset(t *testing.T) {
	var b strings.Builder
	Reset(&b)
	assert.Equal(t, "\x1b[0m", b.String())
}

func TestExtendedPalettes(t *testing.T) {
	var b strings.Builder
	SetForeground256(&b, 208)
	SetBackground256(&b, 7)
	SetForegroundRGB(&b, 255, 128, 0)
	SetBackgroundRGB(&b, 0, 0, 232)
	assert.Equal(t, "\x1b[38;5;208m\x1b[48;5;7m\x1b[38;2;255;128;0m\x1b[48;2;0;0;232m", b.String())
}

func TestSettingsApplyCoalesced(t *testing.T) {
	var b strings.Builder
	NewSettings(Red, Black, AttrBright, AttrUnderscore).Apply(&b)
	assert.Equal(t, "\x1b[0;1;4;31;40m", b.String())
}

func TestSettingsApplyIdempotent(t *testing.T) {
	s := NewSettings(Cyan, Blue, AttrBlink)

	var once, twice strings.Builder
	s.Apply(&once)
	s.Apply(&twice)
	s.Apply(&twice)

	// Re-applying emits identical bytes and nothing more
	assert.Equal(t, once.String()+once.String(), twice.String())
}

func TestSettingsApplyResetAttributeOnly(t *testing.T) {
	var b strings.Builder
	NewSettings(White, Black, AttrReset).Apply(&b)
	assert.Equal(t, "\x1b[0;37;40m", b.String())
}

func TestScreenMode(t *testing.T) {
	var b strings.Builder
	SetScreenMode(&b, ModeLineWrapping)
	UnsetScreenMode(&b, ModeColor256Graphics320)
	assert.Equal(t, "\x1b[=7h\x1b[=19l", b.String())
}

func TestWriteIntLarge(t *testing.T) {
	var b strings.Builder
	writeInt(&b, 123456)
	writeInt(&b, -5)
	assert.Equal(t, "1234560", b.String())
}
