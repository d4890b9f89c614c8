// @focus: #sys { term }
// Package terminal emits ANSI escape sequences for styling and cursor control.
//
// Features:
//   - Closed 8-color palettes and a 10-kind attribute set (Settings)
//   - Coalesced SGR emission, idempotent for identical settings
//   - 256-color and 24-bit escapes for callers outside the closed palette
//   - Explicit Cursor value caching the logical terminal position
//   - Mapping of Settings onto tcell styles
//
// This package bypasses terminfo/termcap entirely, emitting direct ANSI sequences.
// Target environments: Linux, macOS, BSDs with xterm-compatible terminals.
package terminal
