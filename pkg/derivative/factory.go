// Package derivative produces thumbnails and width-scaled copies of image
// assets and hands them to a Saver.
//
// Basic usage:
//
//	f, err := derivative.New(derivative.DefaultConfig(), saver)
//	if err != nil {
//		log.Fatal(err)
//	}
//	thumb, err := f.GenerateThumbnail(asset, geometry.Selection{X1: 10, Y1: 10, X2: 200, Y2: 150})
//	wide, err := f.GenerateNamedWidth(asset, "max")
//
// A Factory holds no mutable state and may be shared between goroutines.
package derivative

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/menta2k/image-derivative/pkg/codec"
	"github.com/menta2k/image-derivative/pkg/cropper"
	"github.com/menta2k/image-derivative/pkg/geometry"
	"github.com/menta2k/image-derivative/pkg/processing"
	"github.com/menta2k/image-derivative/pkg/sizes"
	"github.com/menta2k/image-derivative/pkg/types"
)

// Factory generates derivatives from source assets
type Factory struct {
	catalog     *sizes.Catalog
	transformer geometry.Transformer
	codecs      *codec.Registry
	cropper     *cropper.Cropper
	scaler      *processing.Scaler
	thumbWidth  int
	thumbHeight int
	saver       Saver
	logger      *slog.Logger
}

// Option configures a Factory
type Option func(*Factory)

// WithLogger sets the logger. Factories log nothing by default.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Factory) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// WithScaler replaces the default bilinear scaler
func WithScaler(scaler *processing.Scaler) Option {
	return func(f *Factory) {
		if scaler != nil {
			f.scaler = scaler
		}
	}
}

// New creates a Factory that persists derivatives through saver
func New(cfg Config, saver Saver, opts ...Option) (*Factory, error) {
	if saver == nil {
		return nil, fmt.Errorf("derivative: saver is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("derivative: invalid config: %w", err)
	}

	catalog, err := sizes.New(cfg.Sizes)
	if err != nil {
		return nil, fmt.Errorf("derivative: invalid size catalog: %w", err)
	}

	f := &Factory{
		catalog:     catalog,
		transformer: geometry.NewTransformer(cfg.DisplayCap),
		codecs:      codec.NewRegistry(cfg.Codec),
		cropper:     cropper.New(),
		scaler:      processing.NewScaler(),
		thumbWidth:  cfg.ThumbWidth,
		thumbHeight: cfg.ThumbHeight,
		saver:       saver,
		logger:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// Catalog returns the size catalog
func (f *Factory) Catalog() *sizes.Catalog {
	return f.catalog
}

// Supports reports whether assets of type tag can be processed
func (f *Factory) Supports(tag string) bool {
	return f.codecs.Supports(tag)
}

// GenerateThumbnail crops src to sel, drawn in display space, and scales
// the crop to the thumbnail size matching the selection's orientation.
// Pass geometry.NoSelection to crop from the top left corner.
func (f *Factory) GenerateThumbnail(src types.ImageAsset, sel geometry.Selection) (*types.Derivative, error) {
	target := geometry.ThumbnailTarget(sel, f.thumbWidth, f.thumbHeight)

	c, err := f.codecs.Lookup(src.Type)
	if err != nil {
		return nil, err
	}
	if err := sel.Validate(); err != nil {
		return nil, err
	}

	img, err := c.Decode(src.Data)
	if err != nil {
		return nil, err
	}
	width, height := img.Bounds().Dx(), img.Bounds().Dy()

	if sel.None() {
		if raw := geometry.DefaultRect(width, target); !raw.Within(width, height) {
			f.logger.Warn("default crop extends below image, clamping",
				"name", src.Name, "width", width, "height", height, "crop_height", raw.Dy())
		}
	} else if f.transformer.Overflows(sel, width, height) {
		f.logger.Debug("selection extends beyond image, clamping",
			"name", src.Name, "width", width, "height", height,
			"x1", sel.X1, "y1", sel.Y1, "x2", sel.X2, "y2", sel.Y2)
	}

	region, err := f.transformer.ToNative(sel, width, height, target)
	if err != nil {
		return nil, err
	}

	data, err := f.render(c, img, region, target)
	if err != nil {
		return nil, err
	}
	return f.finish(src, data, target, types.UseForThumbnail)
}

// GenerateNamedWidth scales src to the width registered under name
func (f *Factory) GenerateNamedWidth(src types.ImageAsset, name string) (*types.Derivative, error) {
	width, err := f.catalog.Resolve(name)
	if err != nil {
		return nil, err
	}
	return f.GenerateVariableWidth(src, width)
}

// GenerateVariableWidth scales the whole of src to width, keeping its
// aspect ratio.
func (f *Factory) GenerateVariableWidth(src types.ImageAsset, width int) (*types.Derivative, error) {
	if width <= 0 {
		return nil, fmt.Errorf("%w: width %d", ErrInvalidSize, width)
	}

	c, err := f.codecs.Lookup(src.Type)
	if err != nil {
		return nil, err
	}

	img, err := c.Decode(src.Data)
	if err != nil {
		return nil, err
	}

	region := cropper.FullRect(img)
	target := types.TargetSize{
		Width:  width,
		Height: processing.ProportionalHeight(width, region.Dx(), region.Dy()),
	}

	data, err := f.render(c, img, region, target)
	if err != nil {
		return nil, err
	}
	return f.finish(src, data, target, types.WideUseFor(width))
}

func (f *Factory) render(c codec.Codec, img image.Image, region geometry.Rect, target types.TargetSize) ([]byte, error) {
	cropped, err := f.cropper.Crop(img, region)
	if err != nil {
		return nil, err
	}

	scaled, err := f.scaler.Scale(cropped.Image, target.Width, target.Height)
	if err != nil {
		return nil, err
	}

	return c.Encode(scaled)
}

func (f *Factory) finish(src types.ImageAsset, data []byte, size types.TargetSize, useFor string) (*types.Derivative, error) {
	d := types.NewDerivative(src, data, size, useFor)
	if err := f.saver.Save(d); err != nil {
		return nil, fmt.Errorf("%w: %s of %q: %w", ErrSave, useFor, src.Name, err)
	}

	f.logger.Debug("derivative saved",
		"name", d.Name, "use_for", d.UseFor, "type", d.Type, "size", size.String(), "bytes", d.Size)
	return d, nil
}
