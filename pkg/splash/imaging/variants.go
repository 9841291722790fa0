package imaging

import (
	"image"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"
)

// Variant is one scaled rendition of a source image.
type Variant struct {
	Dir      string // relative to the output root; may be empty
	Filename string
	Width    int
	Scale    string // scale tag, e.g. "2x" or "xhdpi"
}

// Path returns the variant's location below root.
func (v Variant) Path(root string) string {
	return filepath.Join(root, v.Dir, v.Filename)
}

// WriteVariants resizes src to each variant's width and writes the PNGs
// below root. It returns the pixel size written for each variant, in order.
func WriteVariants(fsys afero.Fs, root string, src image.Image, variants []Variant, logger hclog.Logger) ([]image.Point, error) {
	sizes := make([]image.Point, 0, len(variants))
	for _, v := range variants {
		img := ResizeToWidth(src, v.Width)
		if _, err := WritePNG(fsys, v.Path(root), img, logger); err != nil {
			return nil, err
		}
		sizes = append(sizes, img.Bounds().Size())
	}
	return sizes, nil
}
