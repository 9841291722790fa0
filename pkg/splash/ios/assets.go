package ios

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/provide-io/splashgen/internal/layout"
	"github.com/provide-io/splashgen/pkg/splash/descriptor"
	splasherrors "github.com/provide-io/splashgen/pkg/splash/errors"
	"github.com/provide-io/splashgen/pkg/splash/imaging"
)

// writeScaledSet writes the 1x/2x/3x renditions of the image at source and
// their descriptor. It returns the 1x size.
func (i *IOS) writeScaledSet(source, name, filename string, role descriptor.Role, baseWidth int) (image.Point, error) {
	src, err := imaging.Decode(i.ctx.Fs, i.ctx.Resolve(source))
	if err != nil {
		return image.Point{}, err
	}

	set := descriptor.Set{Name: name, Kind: descriptor.KindImageSet, Role: role}
	setDir := filepath.Join(i.catalogDir(), set.Dir())
	variants := scaledVariants(filename, baseWidth)

	sizes, err := imaging.WriteVariants(i.ctx.Fs, setDir, src, variants, i.logger)
	if err != nil {
		return image.Point{}, err
	}
	for _, v := range variants {
		set.Assets = append(set.Assets, descriptor.Asset{Filename: v.Filename, Scale: v.Scale})
	}
	if _, err := descriptor.Write(i.ctx.Fs, i.catalogDir(), set, i.logger); err != nil {
		return image.Point{}, err
	}
	return sizes[0], nil
}

func (i *IOS) writeImageSet() (string, error) {
	size, err := i.writeScaledSet(i.ctx.Config.Image, SetImage, "splash_image", descriptor.RolePrimary, ImageBaseWidth)
	if err != nil {
		return "", err
	}
	i.imageSize = size
	return fmt.Sprintf("%s.imageset (%dx%d @1x)", SetImage, size.X, size.Y), nil
}

func (i *IOS) writeBrandingSet() (string, error) {
	setDir := filepath.Join(i.catalogDir(), SetBranding+".imageset")
	i.brandingSize = image.Point{}

	if !i.ctx.Config.HasBranding() {
		removed, err := layout.Remove(i.ctx.Fs, setDir)
		if err != nil {
			return "", err
		}
		if removed {
			return "not configured, removed stale " + SetBranding + ".imageset", nil
		}
		return "not configured", nil
	}

	size, err := i.writeScaledSet(i.ctx.Config.BrandingImage, SetBranding, "splash_branding", descriptor.RoleBranding, BrandingBaseWidth)
	if err != nil {
		_, _ = layout.Remove(i.ctx.Fs, setDir)
		return "", fmt.Errorf("%w: branding image: %w", splasherrors.ErrAssetSkipped, err)
	}
	i.brandingSize = size
	return fmt.Sprintf("%s.imageset (%dx%d @1x)", SetBranding, size.X, size.Y), nil
}

// writeBackgroundSet fills 1x1 rasters with the light and, when it
// differs, the dark background color.
func (i *IOS) writeBackgroundSet() (string, error) {
	cfg := i.ctx.Config
	light, err := imaging.ParseHexColor(cfg.Color)
	if err != nil {
		return "", err
	}
	dark, err := imaging.ParseHexColor(cfg.ColorDark)
	if err != nil {
		return "", err
	}

	set := descriptor.Set{Name: SetBackground, Kind: descriptor.KindImageSet, Role: descriptor.RoleBackground}
	setDir := filepath.Join(i.catalogDir(), set.Dir())

	if _, err := imaging.WritePNG(i.ctx.Fs, filepath.Join(setDir, "background.png"), imaging.SolidFill(light, 1, 1), i.logger); err != nil {
		return "", err
	}
	set.Assets = append(set.Assets, descriptor.Asset{Filename: "background.png"})

	darkPath := filepath.Join(setDir, "background_dark.png")
	if dark != light {
		if _, err := imaging.WritePNG(i.ctx.Fs, darkPath, imaging.SolidFill(dark, 1, 1), i.logger); err != nil {
			return "", err
		}
		set.Assets = append(set.Assets, descriptor.Asset{Filename: "background_dark.png", Dark: true})
	} else if _, err := layout.Remove(i.ctx.Fs, darkPath); err != nil {
		return "", err
	}

	if _, err := descriptor.Write(i.ctx.Fs, i.catalogDir(), set, i.logger); err != nil {
		return "", err
	}
	if len(set.Assets) > 1 {
		return fmt.Sprintf("%s.imageset (%s, dark %s)", SetBackground, imaging.FormatHexColor(light), imaging.FormatHexColor(dark)), nil
	}
	return fmt.Sprintf("%s.imageset (%s)", SetBackground, imaging.FormatHexColor(light)), nil
}

// writeAnimationSet copies the animation file into a data set. Files left
// behind by a previously configured animation are removed.
func (i *IOS) writeAnimationSet() (string, error) {
	set := descriptor.Set{Name: SetAnimation, Kind: descriptor.KindDataSet, Role: descriptor.RoleAnimation}
	setDir := filepath.Join(i.catalogDir(), set.Dir())

	source := i.ctx.Config.Animation.IOS
	if source == "" {
		removed, err := layout.Remove(i.ctx.Fs, setDir)
		if err != nil {
			return "", err
		}
		if removed {
			return "not configured, removed stale " + set.Dir(), nil
		}
		return "not configured", nil
	}

	data, err := afero.ReadFile(i.ctx.Fs, i.ctx.Resolve(source))
	if err != nil {
		if _, rmErr := layout.Remove(i.ctx.Fs, setDir); rmErr != nil {
			return "", rmErr
		}
		return "", fmt.Errorf("%w: ios animation: %w", splasherrors.ErrAssetSkipped, err)
	}

	filename := filepath.Base(source)
	if err := i.pruneDataSet(setDir, filename); err != nil {
		return "", err
	}

	target := filepath.Join(setDir, filename)
	if !layout.SameContent(i.ctx.Fs, target, data) {
		if err := layout.WriteFile(i.ctx.Fs, target, data, i.logger); err != nil {
			return "", err
		}
	}

	set.Assets = []descriptor.Asset{{Filename: filename}}
	if _, err := descriptor.Write(i.ctx.Fs, i.catalogDir(), set, i.logger); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s (%s)", set.Dir(), filename), nil
}

func (i *IOS) pruneDataSet(setDir, keep string) error {
	entries, err := afero.ReadDir(i.ctx.Fs, setDir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to list %s: %w", setDir, err)
	}
	for _, e := range entries {
		if e.Name() == keep || e.Name() == "Contents.json" {
			continue
		}
		if _, err := layout.Remove(i.ctx.Fs, filepath.Join(setDir, e.Name())); err != nil {
			return err
		}
		i.logger.Debug("removed stale animation file", "file", e.Name())
	}
	return nil
}
