package terminal

import (
	"io"
	"os"
)

// ScreenMode is a legacy video mode for CSI = n h / l
type ScreenMode int

const (
	ModeMonochromeText40x25       ScreenMode = 0
	ModeColorText40x25            ScreenMode = 1
	ModeMonochromeText80x25       ScreenMode = 2
	ModeColorText80x25            ScreenMode = 3
	ModeFourColorGraphics320      ScreenMode = 4
	ModeMonochromeGraphics320     ScreenMode = 5
	ModeMonochromeGraphics640     ScreenMode = 6
	ModeLineWrapping              ScreenMode = 7
	ModeColorGraphics320          ScreenMode = 13
	ModeColor16Graphics640x200    ScreenMode = 14
	ModeMonochromeGraphics640x350 ScreenMode = 15
	ModeColor16Graphics640x350    ScreenMode = 16
	ModeMonochromeGraphics640x480 ScreenMode = 17
	ModeColor16Graphics640x480    ScreenMode = 18
	ModeColor256Graphics320       ScreenMode = 19
)

// SetScreenMode emits CSI = mode h
func SetScreenMode(w Writer, mode ScreenMode) {
	w.WriteString(csi + "=")
	writeInt(w, int(mode))
	w.WriteByte('h')
}

// UnsetScreenMode emits CSI = mode l
func UnsetScreenMode(w Writer, mode ScreenMode) {
	w.WriteString(csi + "=")
	writeInt(w, int(mode))
	w.WriteByte('l')
}

// EnterFullscreen switches to the alternate screen, hides the cursor and clears
func EnterFullscreen(w Writer) {
	w.WriteString(csiAltScreenEnter)
	w.WriteString(csiCursorHide)
	w.WriteString(csiSGR0)
	w.WriteString(csiCLS)
	w.WriteString(csiHome)
}

// ExitFullscreen restores the cursor and leaves the alternate screen
func ExitFullscreen(w Writer) {
	w.WriteString(csiSGR0)
	w.WriteString(csiCursorShow)
	w.WriteString(csiAltScreenExit)
}

// EmergencyReset attempts to restore terminal to sane state
// Call this from panic recovery if ExitFullscreen cannot be called normally
func EmergencyReset(w io.Writer) {
	io.WriteString(w, csiCursorShow)
	io.WriteString(w, csiAltScreenExit)
	io.WriteString(w, csiSGR0)
	io.WriteString(w, csiRIS)

	// Flush if it's a file
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}
}
