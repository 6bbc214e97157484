package codec

import (
	"bytes"
	"image"

	"github.com/chai2010/webp"
	xwebp "golang.org/x/image/webp"
)

// webpCodec decodes with x/image and encodes with libwebp
type webpCodec struct {
	quality  float32
	lossless bool
}

func newWebP(quality float32, lossless bool) *webpCodec {
	if quality <= 0 || quality > 100 {
		quality = 90
	}
	return &webpCodec{quality: quality, lossless: lossless}
}

func (c *webpCodec) Family() string { return "webp" }

func (c *webpCodec) Decode(data []byte) (image.Image, error) {
	img, err := xwebp.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, decodeError(c.Family(), err)
	}
	return img, nil
}

func (c *webpCodec) Encode(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	opts := &webp.Options{Lossless: c.lossless, Quality: c.quality}
	if err := webp.Encode(&buf, img, opts); err != nil {
		return nil, encodeError(c.Family(), err)
	}
	return buf.Bytes(), nil
}
