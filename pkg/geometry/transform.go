// Package geometry converts crop selections made on a scaled-down preview
// into native pixel coordinates.
//
// A selection is drawn on a preview that is never wider than the display
// cap. The preview keeps the source aspect ratio, so one ratio,
// width / cap, maps both axes back to native space:
//
//	+---------------------------+
//	|                           |
//	|     (x1,y1)-------+       |
//	|        |          |       |
//	|        +-------(x2,y2)    |
//	|                           |
//	+---------------------------+
package geometry

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/menta2k/image-derivative/pkg/types"
)

// ErrInvalidSelection is returned for crop rectangles with no area or
// outside the image.
var ErrInvalidSelection = errors.New("geometry: invalid selection")

// Selection is a crop rectangle in display space. Any selection with a
// negative X1 means the user did not select anything.
type Selection struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// NoSelection is the sentinel for a missing user selection
var NoSelection = Selection{X1: -1}

// None reports whether s is the no-selection sentinel
func (s Selection) None() bool {
	return s.X1 < 0
}

// Validate checks that a real selection spans a positive area
func (s Selection) Validate() error {
	if s.None() {
		return nil
	}
	if s.X2 < s.X1 || s.Y2 < s.Y1 {
		return fmt.Errorf("%w: corners (%d,%d)-(%d,%d) are reversed", ErrInvalidSelection, s.X1, s.Y1, s.X2, s.Y2)
	}
	if s.X2 == s.X1 || s.Y2 == s.Y1 {
		return fmt.Errorf("%w: selection (%d,%d)-(%d,%d) has no area", ErrInvalidSelection, s.X1, s.Y1, s.X2, s.Y2)
	}
	return nil
}

// Rect is a rectangle in native pixel space
type Rect struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// Dx returns the width of r
func (r Rect) Dx() int { return r.X2 - r.X1 }

// Dy returns the height of r
func (r Rect) Dy() int { return r.Y2 - r.Y1 }

// Image returns r as an image.Rectangle
func (r Rect) Image() image.Rectangle {
	return image.Rect(r.X1, r.Y1, r.X2, r.Y2)
}

// Within reports whether r lies inside a width x height image
func (r Rect) Within(width, height int) bool {
	return r.X1 >= 0 && r.Y1 >= 0 && r.X2 <= width && r.Y2 <= height
}

func (r Rect) clamp(width, height int) Rect {
	return Rect{
		X1: clampInt(r.X1, 0, width),
		Y1: clampInt(r.Y1, 0, height),
		X2: clampInt(r.X2, 0, width),
		Y2: clampInt(r.Y2, 0, height),
	}
}

// ThumbnailTarget picks the thumbnail size from the orientation of the raw
// selection. Wider than tall is landscape, everything else portrait.
func ThumbnailTarget(sel Selection, thumbWidth, thumbHeight int) types.TargetSize {
	if sel.X2-sel.X1 > sel.Y2-sel.Y1 {
		return types.TargetSize{Width: thumbWidth, Height: thumbHeight}
	}
	return types.TargetSize{Width: thumbHeight, Height: thumbWidth}
}

// Transformer maps display space selections to native space
type Transformer struct {
	// DisplayCap is the widest preview ever shown for selection
	DisplayCap int
}

// NewTransformer creates a Transformer for the given display cap
func NewTransformer(displayCap int) Transformer {
	return Transformer{DisplayCap: displayCap}
}

// Ratio returns the display to native scale factor for an image width
func (t Transformer) Ratio(width int) float64 {
	if t.DisplayCap <= 0 || width <= t.DisplayCap {
		return 1
	}
	return float64(width) / float64(t.DisplayCap)
}

// DefaultRect is the crop used when there is no selection: the full width
// starting at the origin, as tall as the target aspect allows. The native
// height is not consulted, so the result may extend below the image.
func DefaultRect(width int, target types.TargetSize) Rect {
	h := float64(width) * (float64(target.Height) / float64(target.Width))
	return Rect{X1: 0, Y1: 0, X2: width, Y2: round(h)}
}

// ToNative converts sel into a rectangle inside a width x height image.
// target is only used for the default crop.
func (t Transformer) ToNative(sel Selection, width, height int, target types.TargetSize) (Rect, error) {
	if width <= 0 || height <= 0 {
		return Rect{}, fmt.Errorf("%w: image is %dx%d", ErrInvalidSelection, width, height)
	}

	var r Rect
	if sel.None() {
		if target.Width <= 0 || target.Height <= 0 {
			return Rect{}, fmt.Errorf("%w: target %s", ErrInvalidSelection, target)
		}
		r = DefaultRect(width, target)
	} else {
		if err := sel.Validate(); err != nil {
			return Rect{}, err
		}
		ratio := t.Ratio(width)
		r = Rect{
			X1: scale(sel.X1, ratio, width),
			Y1: scale(sel.Y1, ratio, height),
			X2: scale(sel.X2, ratio, width),
			Y2: scale(sel.Y2, ratio, height),
		}
	}

	r = r.clamp(width, height)
	if r.Dx() <= 0 || r.Dy() <= 0 {
		return Rect{}, fmt.Errorf("%w: (%d,%d)-(%d,%d) is empty inside %dx%d", ErrInvalidSelection, r.X1, r.Y1, r.X2, r.Y2, width, height)
	}
	return r, nil
}

// Overflows reports whether sel reaches outside a width x height image
// once mapped to native space. ToNative clamps such selections.
func (t Transformer) Overflows(sel Selection, width, height int) bool {
	if sel.None() {
		return false
	}
	ratio := t.Ratio(width)
	outside := func(v, limit int) bool {
		f := math.Round(float64(v) * ratio)
		return f < 0 || f > float64(limit)
	}
	return outside(sel.X1, width) || outside(sel.X2, width) || outside(sel.Y1, height) || outside(sel.Y2, height)
}

// scale maps a display coordinate to native space, clamped to [0, limit].
// Clamping happens before the int conversion so huge values cannot wrap.
func scale(v int, ratio float64, limit int) int {
	f := math.Round(float64(v) * ratio)
	if f < 0 {
		return 0
	}
	if f > float64(limit) {
		return limit
	}
	return int(f)
}

func round(v float64) int {
	return int(math.Round(v))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
