// Package terminal provides direct ANSI terminal control for the retained-mode renderer.
//
// Features:
//   - Cell and style model over tcell colors (palette, RGB, default)
//   - Diff-friendly output writer that tracks the last emitted cursor, colors and attributes
//   - Lossy UTF-8 decoding of the raw stdin stream
//   - Canonical/echo line discipline control, SIGWINCH size refresh with an 80x24 fallback
//   - Clean terminal restoration on exit, signal and panic
//
// This package bypasses terminfo/termcap entirely, emitting direct ANSI sequences.
// Target environments: Linux, macOS, BSDs with xterm-compatible terminals.
package terminal
