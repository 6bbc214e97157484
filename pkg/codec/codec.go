// Package codec decodes and re-encodes image bytes for the formats a
// derivative can be produced in.
//
// Each codec family (jpeg, png, gif, webp) has one implementation. The
// Registry maps MIME-like type tags to a family and is the only place tags
// are interpreted.
package codec

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"mime"
	"sort"
	"strings"
)

var (
	// ErrUnsupportedFormat is returned for type tags without a codec
	ErrUnsupportedFormat = errors.New("codec: unsupported format")

	// ErrDecode is returned when bytes cannot be decoded by the codec of their tag
	ErrDecode = errors.New("codec: decode failed")

	// ErrEncode is returned when an image cannot be encoded
	ErrEncode = errors.New("codec: encode failed")

	errNoFrames = errors.New("no frames")
)

// Codec decodes and encodes one image format family
type Codec interface {
	Family() string
	Decode(data []byte) (image.Image, error)
	Encode(img image.Image) ([]byte, error)
}

// Options tunes the encoders
type Options struct {
	JPEGQuality    int
	PNGCompression png.CompressionLevel
	GIFColors      int
	EnableWebP     bool
	WebPQuality    float32
	WebPLossless   bool
}

// DefaultOptions returns the encoder defaults
func DefaultOptions() Options {
	return Options{
		JPEGQuality:    90,
		PNGCompression: png.DefaultCompression,
		GIFColors:      256,
		EnableWebP:     false,
		WebPQuality:    90,
		WebPLossless:   false,
	}
}

// Registry resolves type tags to codecs
type Registry struct {
	codecs map[string]Codec
}

// NewRegistry creates a registry for the baseline formats, plus WebP when
// enabled in opts.
func NewRegistry(opts Options) *Registry {
	jpegCodec := newJPEG(opts.JPEGQuality)
	pngCodec := newPNG(opts.PNGCompression)
	gifCodec := newGIF(opts.GIFColors)

	r := &Registry{
		codecs: map[string]Codec{
			"image/jpeg":  jpegCodec,
			"image/pjpeg": jpegCodec,
			"image/png":   pngCodec,
			"image/x-png": pngCodec,
			"image/gif":   gifCodec,
		},
	}
	if opts.EnableWebP {
		r.codecs["image/webp"] = newWebP(opts.WebPQuality, opts.WebPLossless)
	}
	return r
}

// Lookup returns the codec for tag. Matching ignores case and MIME
// parameters.
func (r *Registry) Lookup(tag string) (Codec, error) {
	c, ok := r.codecs[NormalizeTag(tag)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, tag)
	}
	return c, nil
}

// Supports reports whether tag has a codec
func (r *Registry) Supports(tag string) bool {
	_, ok := r.codecs[NormalizeTag(tag)]
	return ok
}

// Tags returns the supported type tags, sorted
func (r *Registry) Tags() []string {
	tags := make([]string, 0, len(r.codecs))
	for tag := range r.codecs {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// NormalizeTag lowercases tag and strips MIME parameters
func NormalizeTag(tag string) string {
	tag = strings.TrimSpace(tag)
	if mediaType, _, err := mime.ParseMediaType(tag); err == nil {
		return mediaType
	}
	return strings.ToLower(tag)
}

func decodeError(family string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrDecode, family, err)
}

func encodeError(family string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrEncode, family, err)
}
