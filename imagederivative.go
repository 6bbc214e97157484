// Package imagederivative produces fixed-size image derivatives for
// publishing: thumbnails cropped from a selection made on a preview, and
// copies scaled to named or arbitrary widths.
//
// Basic usage:
//
//	package main
//
//	import (
//		"log"
//
//		imagederivative "github.com/menta2k/image-derivative"
//		"github.com/menta2k/image-derivative/pkg/store"
//	)
//
//	func main() {
//		saver, err := store.NewDir("./output", "", false)
//		if err != nil {
//			log.Fatal(err)
//		}
//
//		deriver, err := imagederivative.New(saver)
//		if err != nil {
//			log.Fatal(err)
//		}
//
//		asset, err := imagederivative.LoadAsset("photo.jpg", "")
//		if err != nil {
//			log.Fatal(err)
//		}
//
//		// Selection drawn on the 410px wide preview
//		if _, err := deriver.GenerateThumbnail(asset, 20, 300, 10, 200); err != nil {
//			log.Fatal(err)
//		}
//
//		if _, err := deriver.GenerateNamedWidth(asset, "max"); err != nil {
//			log.Fatal(err)
//		}
//	}
//
// The package consists of these components:
//
//  1. Sizes (pkg/sizes): the catalog of named widths
//  2. Geometry (pkg/geometry): display to native coordinate mapping
//  3. Cropper (pkg/cropper) and Scaler (pkg/processing): pixel work
//  4. Codec (pkg/codec): per-format decoding and encoding
//  5. Derivative (pkg/derivative): the factory tying them together
//  6. Store (pkg/store): directory and in-memory savers
package imagederivative

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/menta2k/image-derivative/pkg/codec"
	"github.com/menta2k/image-derivative/pkg/derivative"
	"github.com/menta2k/image-derivative/pkg/geometry"
	"github.com/menta2k/image-derivative/pkg/types"
)

// Version of the image derivative library
const Version = "1.0.0"

// Deriver provides a high-level interface to the derivative factory
type Deriver struct {
	factory *derivative.Factory
}

// New creates a new Deriver with default configuration
func New(saver derivative.Saver) (*Deriver, error) {
	return NewWithConfig(derivative.DefaultConfig(), saver)
}

// NewWithConfig creates a new Deriver with custom configuration
func NewWithConfig(cfg derivative.Config, saver derivative.Saver, opts ...derivative.Option) (*Deriver, error) {
	factory, err := derivative.New(cfg, saver, opts...)
	if err != nil {
		return nil, err
	}
	return &Deriver{factory: factory}, nil
}

// Factory returns the underlying derivative factory
func (d *Deriver) Factory() *derivative.Factory {
	return d.factory
}

// GenerateThumbnail saves a thumbnail cropped to the selection drawn on the
// preview. A negative x1 means no selection was made.
func (d *Deriver) GenerateThumbnail(src types.ImageAsset, x1, x2, y1, y2 int) (*types.Derivative, error) {
	sel := geometry.Selection{X1: x1, Y1: y1, X2: x2, Y2: y2}
	return d.factory.GenerateThumbnail(src, sel)
}

// GenerateNamedWidth saves a copy scaled to a catalog width such as "max"
func (d *Deriver) GenerateNamedWidth(src types.ImageAsset, name string) (*types.Derivative, error) {
	return d.factory.GenerateNamedWidth(src, name)
}

// GenerateVariableWidth saves a copy scaled to width pixels
func (d *Deriver) GenerateVariableWidth(src types.ImageAsset, width int) (*types.Derivative, error) {
	return d.factory.GenerateVariableWidth(src, width)
}

// GenerateBatch saves several derivatives of src concurrently
func (d *Deriver) GenerateBatch(src types.ImageAsset, batch derivative.Batch) ([]*types.Derivative, error) {
	return d.factory.GenerateBatch(src, batch)
}

// LoadAsset reads an image file into an asset. An empty typ is derived
// from the file extension, then from the content.
func LoadAsset(path, typ string) (types.ImageAsset, error) {
	file, err := os.Open(path)
	if err != nil {
		return types.ImageAsset{}, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	if typ == "" {
		typ = codec.TypeForFile(path)
	}
	return LoadAssetFromReader(file, filepath.Base(path), typ)
}

// LoadAssetFromReader reads an asset from reader. An empty typ is sniffed
// from the content.
func LoadAssetFromReader(reader io.Reader, name, typ string) (types.ImageAsset, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return types.ImageAsset{}, fmt.Errorf("failed to read image data: %w", err)
	}

	if typ == "" {
		typ = codec.Sniff(data)
	}
	if typ == "" {
		return types.ImageAsset{}, fmt.Errorf("%w: cannot detect type of %s", derivative.ErrUnsupportedFormat, name)
	}

	return types.ImageAsset{
		Data: data,
		Type: typ,
		Name: name,
	}, nil
}

// GetVersion returns the library version
func GetVersion() string {
	return Version
}
