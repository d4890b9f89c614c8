// @focus: #terminal { ansi }
package terminal

import (
	"io"
)

// Writer is the sink escape sequences are written to
// *bufio.Writer, *bytes.Buffer and *strings.Builder all satisfy it
// Write errors are sticky on buffered writers and surface on Flush
type Writer interface {
	io.Writer
	io.ByteWriter
	io.StringWriter
}

// Pre-allocated ANSI sequence fragments (avoid allocations during render)
const (
	esc = "\x1b"
	csi = "\x1b["

	csiSGR0 = "\x1b[0m"
	csiHome = "\x1b[H"
	csiCLS  = "\x1b[2J" // Clear screen
	csiSSB  = "\x1b[3J" // Clear scrollback buffer
	csiRIS  = "\x1bc"   // Reset to Initial State (emergency)

	// Cursor control
	csiCursorHide = "\x1b[?25l"
	csiCursorShow = "\x1b[?25h"

	// Screen modes
	csiAltScreenEnter = "\x1b[?1049h"
	csiAltScreenExit  = "\x1b[?1049l"

	// Color prefixes
	csiFg256 = "\x1b[38;5;" // followed by N;m
	csiBg256 = "\x1b[48;5;" // followed by N;m
	csiFgRGB = "\x1b[38;2;" // followed by R;G;B;m
	csiBgRGB = "\x1b[48;2;" // followed by R;G;B;m
)

// writeInt writes a non-negative integer without allocation
// Optimized for terminal values (0-255 common, 0-999 typical max)
func writeInt(w Writer, n int) {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		w.WriteByte(byte(n) + '0')
		return
	}
	if n < 100 {
		w.WriteByte(byte(n/10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	if n < 1000 {
		w.WriteByte(byte(n/100) + '0')
		w.WriteByte(byte(n/10%10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	// Fallback for >999 (rare)
	var buf [20]byte
	i := len(buf) - 1
	for n > 0 {
		buf[i] = byte(n%10) + '0'
		n /= 10
		i--
	}
	w.Write(buf[i+1:])
}

// writeSGR writes a single-parameter Select Graphic Rendition sequence
func writeSGR(w Writer, code int) {
	w.WriteString(csi)
	writeInt(w, code)
	w.WriteByte('m')
}

// writeCursorPos writes cursor positioning sequence (0-indexed input)
func writeCursorPos(w Writer, row, col int) {
	w.WriteString(csi)
	writeInt(w, row+1)
	w.WriteByte(';')
	writeInt(w, col+1)
	w.WriteByte('H')
}
