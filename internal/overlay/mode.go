// Package overlay decides which color a glyph gets from a bar's two ramps.
package overlay

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	ErrInvalidFadeWidth = errors.New("overlay: fade width must be a finite number >= 0")
	ErrUnknownMode      = errors.New("overlay: unknown mode")
)

// Kind enumerates the blend strategies
type Kind int

const (
	// AlwaysLeft samples the left ramp everywhere
	AlwaysLeft Kind = iota
	// AlwaysRight samples the right ramp everywhere
	AlwaysRight
	// ChooseFromPos samples left below progress and right at or above it
	ChooseFromPos
	// ChooseFromPosFade is ChooseFromPos with a linear cross-fade band
	ChooseFromPosFade
	// Stretch squeezes the left ramp into [0, progress] and the right ramp
	// into (progress, 1]
	Stretch
	// Fade blends left into right using the position itself as the factor
	Fade
)

var kindNames = map[Kind]string{
	AlwaysLeft:        "left",
	AlwaysRight:       "right",
	ChooseFromPos:     "choose",
	ChooseFromPosFade: "choose-fade",
	Stretch:           "stretch",
	Fade:              "fade",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Mode is a Kind plus its parameter. Width is the total width of the
// cross-fade band and is only read by ChooseFromPosFade.
type Mode struct {
	Kind  Kind
	Width float64
}

func NewAlwaysLeft() Mode    { return Mode{Kind: AlwaysLeft} }
func NewAlwaysRight() Mode   { return Mode{Kind: AlwaysRight} }
func NewChooseFromPos() Mode { return Mode{Kind: ChooseFromPos} }
func NewStretch() Mode       { return Mode{Kind: Stretch} }
func NewFade() Mode          { return Mode{Kind: Fade} }

// NewChooseFromPosFade returns a split with a cross-fade band of width d
func NewChooseFromPosFade(d float64) Mode {
	return Mode{Kind: ChooseFromPosFade, Width: d}
}

// Validate checks the kind and, for ChooseFromPosFade, the band width
func (m Mode) Validate() error {
	if _, ok := kindNames[m.Kind]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownMode, m.Kind)
	}
	if m.Kind == ChooseFromPosFade {
		if math.IsNaN(m.Width) || math.IsInf(m.Width, 0) || m.Width < 0 {
			return fmt.Errorf("%w: got %v", ErrInvalidFadeWidth, m.Width)
		}
	}
	return nil
}

// UsesLeft reports whether the mode can ever sample the left ramp
func (m Mode) UsesLeft() bool {
	return m.Kind != AlwaysRight
}

// UsesRight reports whether the mode can ever sample the right ramp
func (m Mode) UsesRight() bool {
	return m.Kind != AlwaysLeft
}

// Fades reports whether the mode can blend a left and a right sample
func (m Mode) Fades() bool {
	return m.Kind == Fade || (m.Kind == ChooseFromPosFade && m.Width > 0)
}

func (m Mode) String() string {
	if m.Kind == ChooseFromPosFade {
		return m.Kind.String() + ":" + strconv.FormatFloat(m.Width, 'g', -1, 64)
	}
	return m.Kind.String()
}

// ParseMode reads the String form, e.g. "stretch" or "choose-fade:0.1"
func ParseMode(s string) (Mode, error) {
	name, arg, hasArg := strings.Cut(strings.TrimSpace(strings.ToLower(s)), ":")
	for k, n := range kindNames {
		if n != name {
			continue
		}
		m := Mode{Kind: k}
		if k == ChooseFromPosFade {
			if !hasArg {
				return Mode{}, fmt.Errorf("%w: %q needs a width, e.g. %s:0.1", ErrInvalidFadeWidth, s, n)
			}
			w, err := strconv.ParseFloat(arg, 64)
			if err != nil {
				return Mode{}, fmt.Errorf("%w: %q", ErrInvalidFadeWidth, s)
			}
			m.Width = w
		} else if hasArg {
			return Mode{}, fmt.Errorf("%w: %q takes no parameter", ErrUnknownMode, s)
		}
		return m, m.Validate()
	}
	return Mode{}, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}
