package codec

import (
	"bytes"
	"image"
	"image/gif"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
)

// gifCodec decodes the first frame of a GIF onto the logical screen, so
// the image always measures the canvas size from the header.
type gifCodec struct {
	colors int
}

func newGIF(colors int) *gifCodec {
	if colors < 1 || colors > 256 {
		colors = 256
	}
	return &gifCodec{colors: colors}
}

func (c *gifCodec) Family() string { return "gif" }

func (c *gifCodec) Decode(data []byte) (image.Image, error) {
	g, err := gif.DecodeAll(bytes.NewReader(data))
	if err != nil {
		return nil, decodeError(c.Family(), err)
	}
	if len(g.Image) == 0 {
		return nil, decodeError(c.Family(), errNoFrames)
	}

	frame := g.Image[0]
	canvas := image.Rect(0, 0, g.Config.Width, g.Config.Height)
	if canvas.Empty() {
		canvas = image.Rect(0, 0, frame.Bounds().Max.X, frame.Bounds().Max.Y)
	}
	if frame.Bounds() == canvas {
		return frame, nil
	}

	// Pixels outside the first frame stay transparent.
	img := image.NewNRGBA(canvas)
	draw.Draw(img, frame.Bounds(), frame, frame.Bounds().Min, draw.Src)
	return img, nil
}

func (c *gifCodec) Encode(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.GIF, imaging.GIFNumColors(c.colors)); err != nil {
		return nil, encodeError(c.Family(), err)
	}
	return buf.Bytes(), nil
}
