// @lixen: #focus{sys[term,io,output]}
package terminal

// SetForegroundColor emits the SGR selecting c as foreground; invalid colors emit nothing
func SetForegroundColor(w Writer, c Color) {
	if c.Valid() {
		writeSGR(w, c.ForegroundCode())
	}
}

// SetBackgroundColor emits the SGR selecting c as background; invalid colors emit nothing
func SetBackgroundColor(w Writer, c Color) {
	if c.Valid() {
		writeSGR(w, c.BackgroundCode())
	}
}

// SetAttribute emits the SGR enabling a
func SetAttribute(w Writer, a Attribute) {
	if a.Valid() {
		writeSGR(w, a.Code())
	}
}

// ResetAttribute emits the SGR disabling a
func ResetAttribute(w Writer, a Attribute) {
	if a == AttrReset {
		w.WriteString(csiSGR0)
		return
	}
	if a.Valid() {
		writeSGR(w, a.ResetCode())
	}
}

// Reset emits the clear-all-styling sequence
func Reset(w Writer) {
	w.WriteString(csiSGR0)
}

// SetForeground256 emits a 256-color palette foreground
func SetForeground256(w Writer, index uint8) {
	w.WriteString(csiFg256)
	writeInt(w, int(index))
	w.WriteByte('m')
}

// SetBackground256 emits a 256-color palette background
func SetBackground256(w Writer, index uint8) {
	w.WriteString(csiBg256)
	writeInt(w, int(index))
	w.WriteByte('m')
}

// SetForegroundRGB emits a 24-bit foreground
func SetForegroundRGB(w Writer, r, g, b uint8) {
	w.WriteString(csiFgRGB)
	writeRGB(w, r, g, b)
}

// SetBackgroundRGB emits a 24-bit background
func SetBackgroundRGB(w Writer, r, g, b uint8) {
	w.WriteString(csiBgRGB)
	writeRGB(w, r, g, b)
}

func writeRGB(w Writer, r, g, b uint8) {
	writeInt(w, int(r))
	w.WriteByte(';')
	writeInt(w, int(g))
	w.WriteByte(';')
	writeInt(w, int(b))
	w.WriteByte('m')
}

// Apply emits s as one combined SGR sequence: reset, attributes, foreground, background
// The sequence always starts from a reset, so emitting the same settings twice
// leaves the terminal in the same state
func (s Settings) Apply(w Writer) {
	w.WriteString(csi)
	w.WriteByte('0')
	for a := AttrBright; a < attributeCount; a++ {
		if s.Attributes.Has(a) {
			w.WriteByte(';')
			writeInt(w, a.Code())
		}
	}
	if s.Foreground.Valid() {
		w.WriteByte(';')
		writeInt(w, s.Foreground.ForegroundCode())
	}
	if s.Background.Valid() {
		w.WriteByte(';')
		writeInt(w, s.Background.BackgroundCode())
	}
	w.WriteByte('m')
}
