package codec

import (
	"bytes"
	"image"
	"image/png"

	"github.com/disintegration/imaging"
)

type pngCodec struct {
	compression png.CompressionLevel
}

func newPNG(compression png.CompressionLevel) *pngCodec {
	return &pngCodec{compression: compression}
}

func (c *pngCodec) Family() string { return "png" }

func (c *pngCodec) Decode(data []byte) (image.Image, error) {
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, decodeError(c.Family(), err)
	}
	return img, nil
}

func (c *pngCodec) Encode(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG, imaging.PNGCompressionLevel(c.compression)); err != nil {
		return nil, encodeError(c.Family(), err)
	}
	return buf.Bytes(), nil
}
