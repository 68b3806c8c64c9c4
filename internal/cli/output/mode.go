// Package output provides terminal styling for lsa's report.
//
// A Renderer decides once, from the color mode and the output stream,
// whether ANSI escapes are emitted, and hands out lipgloss styles bound to
// that decision.
package output

import (
	"fmt"
	"strings"
)

// Mode controls when color escapes are written.
type Mode string

const (
	// ModeAuto colors output only when stdout is a terminal and NO_COLOR is unset.
	ModeAuto Mode = "auto"
	// ModeAlways forces 256-color ANSI escapes.
	ModeAlways Mode = "always"
	// ModeNever writes plain text.
	ModeNever Mode = "never"
)

// Modes lists the valid color modes.
var Modes = []Mode{ModeAuto, ModeAlways, ModeNever}

// ParseMode validates a color mode name. Empty means ModeAuto.
func ParseMode(s string) (Mode, error) {
	if s == "" {
		return ModeAuto, nil
	}
	m := Mode(strings.ToLower(s))
	for _, valid := range Modes {
		if m == valid {
			return m, nil
		}
	}
	return "", fmt.Errorf("invalid color mode %q (valid: auto, always, never)", s)
}
