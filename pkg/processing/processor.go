package processing

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// ErrInvalidSize is returned for non-positive target dimensions
var ErrInvalidSize = errors.New("processing: invalid target size")

// Scaler resamples images to exact dimensions
type Scaler struct {
	filter imaging.ResampleFilter
}

// NewScaler creates a Scaler using bilinear resampling
func NewScaler() *Scaler {
	return &Scaler{filter: imaging.Linear}
}

// NewScalerWithFilter creates a Scaler with a custom resampling filter
func NewScalerWithFilter(filter imaging.ResampleFilter) *Scaler {
	return &Scaler{filter: filter}
}

// Scale resamples img to exactly targetWidth x targetHeight. The image is
// stretched when the aspect ratios differ; crop first to keep proportions.
func (s *Scaler) Scale(img image.Image, targetWidth, targetHeight int) (image.Image, error) {
	if targetWidth <= 0 || targetHeight <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, targetWidth, targetHeight)
	}

	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, fmt.Errorf("%w: source image is empty", ErrInvalidSize)
	}

	// imaging.Resize clones when the size already matches
	return imaging.Resize(img, targetWidth, targetHeight, s.filter), nil
}

// ProportionalHeight returns the height matching width for a source of
// srcWidth x srcHeight, never less than one pixel.
func ProportionalHeight(width, srcWidth, srcHeight int) int {
	if srcWidth <= 0 {
		return 0
	}
	h := int(math.Round(float64(width) / float64(srcWidth) * float64(srcHeight)))
	if h < 1 {
		h = 1
	}
	return h
}
