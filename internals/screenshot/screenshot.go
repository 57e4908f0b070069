// Package screenshot downloads a mod preview image and stores it as a clean PNG.
//
// The downloaded bytes are always decoded and re-encoded, so the result is a
// standards compliant PNG in RGB or RGBA no matter what the source format was.
package screenshot

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"io"
	"net/http"
	"os"

	// registered decoders
	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"golang.org/x/image/draw"

	"github.com/nexusfetch/nexusfetch/internals/downloadmgr"
	"github.com/nexusfetch/nexusfetch/internals/merrors"
)

// FileName is the default name of the stored image
const FileName = "screenshot.png"

var encoder = png.Encoder{CompressionLevel: png.BestCompression}

// Normalize decodes an image and converts it to an RGB or RGBA color model
func Normalize(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, &merrors.DecodeError{Err: err}
	}

	switch img.(type) {
	case *image.RGBA, *image.NRGBA, *image.YCbCr:
		return img, nil
	}

	bounds := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(dst, dst.Bounds(), img, bounds.Min, draw.Src)
	return dst, nil
}

// Encode writes img as a compressed PNG
func Encode(w io.Writer, img image.Image) error {
	return encoder.Encode(w, img)
}

// Retriever downloads preview images
type Retriever struct {
	Client *http.Client
}

// Retrieve downloads url and stores it as PNG at target. target is only
// touched once the image decoded.
func (r *Retriever) Retrieve(ctx context.Context, url string, target string) error {
	data, err := downloadmgr.NewHTTPItem(r.Client, url).Fetch(ctx)
	if err != nil {
		return err
	}

	img, err := Normalize(bytes.NewReader(data))
	if err != nil {
		if decErr, ok := err.(*merrors.DecodeError); ok {
			decErr.URL = url
		}
		return err
	}

	var buf bytes.Buffer
	if err := Encode(&buf, img); err != nil {
		return err
	}

	if err := os.WriteFile(target, buf.Bytes(), 0644); err != nil {
		return &merrors.IOError{Op: "write", Path: target, Err: err}
	}
	return nil
}
