package codec

import (
	"bytes"
	"image"
	"image/jpeg"

	"github.com/disintegration/imaging"
)

type jpegCodec struct {
	quality int
}

func newJPEG(quality int) *jpegCodec {
	if quality < 1 || quality > 100 {
		quality = jpeg.DefaultQuality
	}
	return &jpegCodec{quality: quality}
}

func (c *jpegCodec) Family() string { return "jpeg" }

func (c *jpegCodec) Decode(data []byte) (image.Image, error) {
	img, err := jpeg.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, decodeError(c.Family(), err)
	}
	return img, nil
}

func (c *jpegCodec) Encode(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(c.quality)); err != nil {
		return nil, encodeError(c.Family(), err)
	}
	return buf.Bytes(), nil
}
