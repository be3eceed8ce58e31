package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/pyrafetch/pyrafetch/internal/config"
	"github.com/pyrafetch/pyrafetch/internal/paint"
)

// Styler renders glyphs through a lipgloss renderer bound to one output
type Styler struct {
	r *lipgloss.Renderer
}

// NewStyler binds a renderer to w. profile is one of the config.Profile*
// names; "auto" detects the profile from w and the environment.
func NewStyler(w io.Writer, profile string) (*Styler, error) {
	r := lipgloss.NewRenderer(w)
	if profile != config.ProfileAuto && profile != "" {
		p, err := ParseProfile(profile)
		if err != nil {
			return nil, err
		}
		r.SetColorProfile(p)
	}
	return &Styler{r: r}, nil
}

// ParseProfile maps a profile name onto termenv
func ParseProfile(name string) (termenv.Profile, error) {
	switch name {
	case config.ProfileTrueColor:
		return termenv.TrueColor, nil
	case config.ProfileANSI256:
		return termenv.ANSI256, nil
	case config.ProfileANSI:
		return termenv.ANSI, nil
	case config.ProfileASCII:
		return termenv.Ascii, nil
	}
	return termenv.Ascii, fmt.Errorf("unknown color profile %q", name)
}

// Renderer exposes the underlying renderer for building text styles
func (s *Styler) Renderer() *lipgloss.Renderer {
	return s.r
}

func (s *Styler) Style(glyph string, fg paint.RGB, bg *paint.RGB, underline bool) string {
	st := s.r.NewStyle().Foreground(lipgloss.Color(fg.Hex()))
	if bg != nil {
		st = st.Background(lipgloss.Color(bg.Hex()))
	}
	if underline {
		st = st.Underline(true)
	}
	return st.Render(glyph)
}
