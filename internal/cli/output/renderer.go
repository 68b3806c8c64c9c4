package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Renderer writes styled output to a pair of streams.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	mode   Mode
	isTTY  bool
	styles *Styles
}

// NewRenderer creates a Renderer, detecting whether out is a terminal.
func NewRenderer(out, errOut io.Writer, mode Mode) *Renderer {
	return NewRendererWithTTY(out, errOut, isTerminal(out), mode)
}

// NewRendererWithTTY creates a Renderer with an explicit terminal state.
func NewRendererWithTTY(out, errOut io.Writer, isTTY bool, mode Mode) *Renderer {
	if mode == "" {
		mode = ModeAuto
	}
	r := &Renderer{
		out:    out,
		errOut: errOut,
		mode:   mode,
		isTTY:  isTTY,
	}

	lg := lipgloss.NewRenderer(out)
	lg.SetColorProfile(r.profile())
	lg.SetHasDarkBackground(true)
	r.styles = newStyles(lg)
	return r
}

// Out returns the primary output stream.
func (r *Renderer) Out() io.Writer { return r.out }

// ErrOut returns the diagnostic stream.
func (r *Renderer) ErrOut() io.Writer { return r.errOut }

// Mode returns the configured color mode.
func (r *Renderer) Mode() Mode { return r.mode }

// ColorEnabled reports whether styles emit ANSI escapes.
func (r *Renderer) ColorEnabled() bool {
	switch r.mode {
	case ModeAlways:
		return true
	case ModeNever:
		return false
	default:
		return r.isTTY && os.Getenv("NO_COLOR") == ""
	}
}

// Styles returns the styles bound to this renderer's color profile.
func (r *Renderer) Styles() *Styles { return r.styles }

// Errorf writes a formatted message to the diagnostic stream.
func (r *Renderer) Errorf(format string, a ...any) {
	_, _ = fmt.Fprintf(r.errOut, format, a...)
}

func (r *Renderer) profile() termenv.Profile {
	if r.ColorEnabled() {
		return termenv.ANSI256
	}
	return termenv.Ascii
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
