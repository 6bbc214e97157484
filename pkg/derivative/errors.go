package derivative

import (
	"errors"

	"github.com/menta2k/image-derivative/pkg/codec"
	"github.com/menta2k/image-derivative/pkg/geometry"
	"github.com/menta2k/image-derivative/pkg/processing"
	"github.com/menta2k/image-derivative/pkg/sizes"
)

// Errors returned by the factory. Test with errors.Is.
var (
	ErrUnknownSize       = sizes.ErrUnknownSize
	ErrUnsupportedFormat = codec.ErrUnsupportedFormat
	ErrDecode            = codec.ErrDecode
	ErrInvalidSelection  = geometry.ErrInvalidSelection
	ErrInvalidSize       = processing.ErrInvalidSize

	// ErrSave wraps failures reported by the Saver
	ErrSave = errors.New("derivative: save failed")
)
