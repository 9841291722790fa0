// Package imaging decodes source artwork and produces the resized and
// solid-color rasters that splash screens are built from.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"

	// Registered decoders for source artwork.
	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/hashicorp/go-hclog"
	"github.com/nfnt/resize"
	"github.com/spf13/afero"

	"github.com/provide-io/splashgen/internal/layout"
	splasherrors "github.com/provide-io/splashgen/pkg/splash/errors"
)

// Decode opens and decodes the image at path.
func Decode(fsys afero.Fs, path string) (image.Image, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open %s: %w", splasherrors.ErrImage, path, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode %s: %w", splasherrors.ErrImage, path, err)
	}
	if b := img.Bounds(); b.Dx() == 0 || b.Dy() == 0 {
		return nil, fmt.Errorf("%w: %s (%s) is empty", splasherrors.ErrImage, path, format)
	}
	return img, nil
}

// ResizeToWidth scales img to the given width, keeping its aspect ratio.
func ResizeToWidth(img image.Image, width int) image.Image {
	return resize.Resize(uint(width), 0, img, resize.Lanczos3)
}

// Resize scales img to exactly width x height.
func Resize(img image.Image, width, height int) image.Image {
	return resize.Resize(uint(width), uint(height), img, resize.Lanczos3)
}

// ScaledWidth returns base multiplied by scale, rounded to whole pixels.
func ScaledWidth(base int, scale float64) int {
	return int(math.Round(float64(base) * scale))
}

// SolidFill returns a width x height raster filled with c.
func SolidFill(c color.Color, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: c}, image.Point{}, draw.Src)
	return img
}

// EncodePNG encodes img as PNG. Identical images encode to identical bytes.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: png.DefaultCompression}
	if err := enc.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("%w: failed to encode png: %w", splasherrors.ErrImage, err)
	}
	return buf.Bytes(), nil
}

// WritePNG encodes img and writes it to path. It reports whether the file
// content changed.
func WritePNG(fsys afero.Fs, path string, img image.Image, logger hclog.Logger) (bool, error) {
	data, err := EncodePNG(img)
	if err != nil {
		return false, err
	}
	if layout.SameContent(fsys, path, data) {
		logger.Trace("png unchanged", "path", path)
		return false, nil
	}
	if err := layout.WriteFile(fsys, path, data, logger); err != nil {
		return false, fmt.Errorf("%w: %w", splasherrors.ErrImage, err)
	}
	b := img.Bounds()
	logger.Debug("png written", "path", path, "width", b.Dx(), "height", b.Dy())
	return true, nil
}
