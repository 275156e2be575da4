package components

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"gitlab.com/tinyland/lab/minifetch/pkg/config"
	"gitlab.com/tinyland/lab/minifetch/pkg/theme"
)

// Styles are the lipgloss styles for each part of the output.
type Styles struct {
	Header    lipgloss.Style
	Value     lipgloss.Style
	Title     lipgloss.Style
	Separator lipgloss.Style
}

// NewStyles builds styles for t on r. Headers and the title are bold.
func NewStyles(r *lipgloss.Renderer, t theme.Theme) Styles {
	return Styles{
		Header:    r.NewStyle().Bold(true).Foreground(lipgloss.Color(t.Header)),
		Value:     r.NewStyle().Foreground(lipgloss.Color(t.Value)),
		Title:     r.NewStyle().Bold(true).Foreground(lipgloss.Color(t.Title)),
		Separator: r.NewStyle().Foreground(lipgloss.Color(t.Separator)),
	}
}

// ResolveProfile picks the color profile for mode. detected is what the
// terminal reports; tty and noColor describe stdout and $NO_COLOR.
func ResolveProfile(mode config.ColorMode, tty, noColor bool, detected termenv.Profile) termenv.Profile {
	switch mode {
	case config.ColorNever:
		return termenv.Ascii
	case config.ColorAlways:
		if detected == termenv.Ascii {
			return termenv.ANSI256
		}
		return detected
	default:
		if !tty || noColor {
			return termenv.Ascii
		}
		return detected
	}
}

// NewRenderer returns a lipgloss renderer for f whose color profile follows
// mode.
func NewRenderer(f *os.File, mode config.ColorMode) *lipgloss.Renderer {
	fd := f.Fd()
	tty := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	noColor := os.Getenv("NO_COLOR") != ""

	// Unsafe skips the tty check so "always" still sees the terminal type.
	detected := termenv.NewOutput(f, termenv.WithUnsafe()).ColorProfile()
	return NewRendererProfile(f, ResolveProfile(mode, tty, noColor, detected))
}

// NewRendererProfile returns a lipgloss renderer for w with a fixed profile.
func NewRendererProfile(w io.Writer, p termenv.Profile) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(p)
	return r
}
