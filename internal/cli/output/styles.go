package output

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/leapstack-labs/lsa/pkg/format"
)

// Palette entries, as ANSI color numbers.
const (
	colorCyan   = lipgloss.Color("6")
	colorBlue   = lipgloss.Color("4")
	colorGreen  = lipgloss.Color("2")
	colorRule   = lipgloss.Color("240")
	colorAltRow = lipgloss.Color("234")
)

// Styles holds the report's lipgloss styles.
type Styles struct {
	Symlink lipgloss.Style
	Dir     lipgloss.Style
	Exec    lipgloss.Style
	Plain   lipgloss.Style

	// Rule draws the horizontal separators.
	Rule lipgloss.Style
	// AltRow tints every other body row.
	AltRow lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) *Styles {
	return &Styles{
		Symlink: r.NewStyle().Foreground(colorCyan),
		Dir:     r.NewStyle().Foreground(colorBlue),
		Exec:    r.NewStyle().Foreground(colorGreen),
		Plain:   r.NewStyle(),
		Rule:    r.NewStyle().Foreground(colorRule),
		AltRow:  r.NewStyle().Background(colorAltRow),
	}
}

// Name returns the style for a name of color c, tinted when alt is set.
func (s *Styles) Name(c format.Color, alt bool) lipgloss.Style {
	var st lipgloss.Style
	switch c {
	case format.ColorSymlink:
		st = s.Symlink
	case format.ColorDir:
		st = s.Dir
	case format.ColorExec:
		st = s.Exec
	default:
		st = s.Plain
	}
	if alt {
		st = st.Inherit(s.AltRow)
	}
	return st
}

// Row returns the style for the non-name cells of a body row.
func (s *Styles) Row(alt bool) lipgloss.Style {
	if alt {
		return s.AltRow
	}
	return s.Plain
}
