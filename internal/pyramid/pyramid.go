// Package pyramid stacks bars into a pyramid: each row is two glyphs wider
// than the one above it and framed by slanted borders.
package pyramid

import (
	"fmt"
	"io"
	"strings"

	"github.com/pyrafetch/pyrafetch/internal/bar"
	"github.com/pyrafetch/pyrafetch/internal/paint"
)

const (
	DefaultLeftBorder  = "╱"
	DefaultRightBorder = "╲"
	DefaultBase        = "⎺⎺"
)

// Frame is the full list of rows, including the filler rows at the top and
// bottom. The bottom row is never drawn; it only widens the pyramid by one
// step so the base sits under the last metric.
type Frame struct {
	Lines       []bar.Line
	LeftBorder  string
	RightBorder string
	Base        string
}

// New wraps the metric lines between two filler rows
func New(lines ...bar.Line) Frame {
	all := make([]bar.Line, 0, len(lines)+2)
	all = append(all, bar.Empty())
	all = append(all, lines...)
	all = append(all, bar.Empty())
	return Frame{
		Lines:       all,
		LeftBorder:  DefaultLeftBorder,
		RightBorder: DefaultRightBorder,
		Base:        DefaultBase,
	}
}

// Width returns the bar width of row i
func Width(row int) int {
	return 2 * row
}

// Render writes the frame top to bottom. Any row that fails aborts the
// whole frame; rows already written stay written.
func (f Frame) Render(w io.Writer, s paint.Styler) error {
	h := len(f.Lines)
	if h == 0 {
		return nil
	}

	for i, line := range f.Lines[:h-1] {
		width := Width(i)
		glyphs, err := line.Render(width, s)
		if err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}

		var b strings.Builder
		b.WriteString(strings.Repeat(" ", h-1-i))
		b.WriteString(f.LeftBorder)
		b.WriteString(glyphs)
		b.WriteString(f.RightBorder)
		if line.Trailer != "" {
			b.WriteString(" " + line.Trailer)
		}
		b.WriteByte('\n')

		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, " "+strings.Repeat(f.Base, h-1)+"\n")
	return err
}
