package cropper

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/menta2k/image-derivative/pkg/geometry"
)

// Cropper extracts rectangular regions from decoded images
type Cropper struct{}

// New creates a new Cropper
func New() *Cropper {
	return &Cropper{}
}

// CropResult contains the result of a cropping operation
type CropResult struct {
	Image  image.Image
	Region geometry.Rect
}

// FullRect returns the rectangle covering the whole image
func FullRect(img image.Image) geometry.Rect {
	bounds := img.Bounds()
	return geometry.Rect{X1: 0, Y1: 0, X2: bounds.Dx(), Y2: bounds.Dy()}
}

// Crop copies region out of img. region is relative to the top left corner
// of img and must lie inside it; the result measures exactly
// region.Dx() x region.Dy().
func (c *Cropper) Crop(img image.Image, region geometry.Rect) (CropResult, error) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	if region.Dx() <= 0 || region.Dy() <= 0 {
		return CropResult{}, fmt.Errorf("%w: crop region %dx%d is empty", geometry.ErrInvalidSelection, region.Dx(), region.Dy())
	}
	if !region.Within(width, height) {
		return CropResult{}, fmt.Errorf("%w: crop region (%d,%d)-(%d,%d) is outside %dx%d",
			geometry.ErrInvalidSelection, region.X1, region.Y1, region.X2, region.Y2, width, height)
	}

	cropped := imaging.Crop(img, region.Image().Add(bounds.Min))

	return CropResult{
		Image:  cropped,
		Region: region,
	}, nil
}
