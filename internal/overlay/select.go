package overlay

import (
	"fmt"

	"github.com/pyrafetch/pyrafetch/internal/paint"
)

// Select returns the color of the glyph at fraction x of a bar whose fill
// boundary sits at progress.
func Select(left, right paint.Ramp, mode Mode, progress, x float64) (paint.Color, error) {
	switch mode.Kind {
	case AlwaysLeft:
		return left.Sample(x)

	case AlwaysRight:
		return right.Sample(x)

	case ChooseFromPos:
		return split(left, right, progress, x)

	case ChooseFromPosFade:
		d := mode.Width
		if d == 0 {
			return split(left, right, progress, x)
		}
		if err := mode.Validate(); err != nil {
			return paint.Color{}, err
		}
		// Band center is progress mapped from [0,1] onto [-d/2, 1+d/2].
		h := d / 2
		mid := progress*(1+d) - h
		diff := (x - mid + h) / d
		switch {
		case diff <= 0:
			return left.Sample(x)
		case diff >= 1:
			return right.Sample(x)
		}
		return fade(left, right, x, diff)

	case Stretch:
		switch {
		case progress <= 0:
			return right.Sample(x)
		case progress >= 1:
			return left.Sample(x)
		case x <= progress:
			return left.Sample(x / progress)
		}
		return right.Sample((x - progress) / (1 - progress))

	case Fade:
		return fade(left, right, x, x)
	}
	return paint.Color{}, fmt.Errorf("%w: %s", ErrUnknownMode, mode.Kind)
}

func split(left, right paint.Ramp, progress, x float64) (paint.Color, error) {
	if x < progress {
		return left.Sample(x)
	}
	return right.Sample(x)
}

// fade samples both ramps at x and blends them by f
func fade(left, right paint.Ramp, x, f float64) (paint.Color, error) {
	l, err := left.Sample(x)
	if err != nil {
		return paint.Color{}, fmt.Errorf("left: %w", err)
	}
	r, err := right.Sample(x)
	if err != nil {
		return paint.Color{}, fmt.Errorf("right: %w", err)
	}
	return paint.Fade(l, r, f)
}
