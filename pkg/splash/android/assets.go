package android

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/provide-io/splashgen/internal/layout"
	splasherrors "github.com/provide-io/splashgen/pkg/splash/errors"
	"github.com/provide-io/splashgen/pkg/splash/imaging"
	"github.com/provide-io/splashgen/pkg/splash/xmlpatch"
)

func densityVariants(name string, baseWidth int) []imaging.Variant {
	variants := make([]imaging.Variant, 0, len(Densities))
	for _, d := range Densities {
		variants = append(variants, imaging.Variant{
			Dir:      "drawable-" + d.Name,
			Filename: name + ".png",
			Width:    imaging.ScaledWidth(baseWidth, d.Scale),
			Scale:    d.Name,
		})
	}
	return variants
}

func (a *Android) writeImage() (string, error) {
	src, err := imaging.Decode(a.ctx.Fs, a.ctx.Resolve(a.ctx.Config.Image))
	if err != nil {
		return "", err
	}
	if _, err := imaging.WriteVariants(a.ctx.Fs, a.resDir(), src, densityVariants(DrawableImage, ImageBaseWidth), a.logger); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s.png in %d densities", DrawableImage, len(Densities)), nil
}

func (a *Android) writeBranding() (string, error) {
	cfg := a.ctx.Config
	if !cfg.HasBranding() {
		return a.removeDrawables(DrawableBranding)
	}

	src, err := imaging.Decode(a.ctx.Fs, a.ctx.Resolve(cfg.BrandingImage))
	if err != nil {
		_, _ = a.removeDrawables(DrawableBranding)
		return "", fmt.Errorf("%w: branding image: %w", splasherrors.ErrAssetSkipped, err)
	}
	if _, err := imaging.WriteVariants(a.ctx.Fs, a.resDir(), src, densityVariants(DrawableBranding, BrandingBaseWidth), a.logger); err != nil {
		return "", err
	}
	a.brandingReady = true
	return fmt.Sprintf("%s.png in %d densities", DrawableBranding, len(Densities)), nil
}

func (a *Android) removeDrawables(name string) (string, error) {
	removed := 0
	for _, v := range densityVariants(name, 1) {
		ok, err := layout.Remove(a.ctx.Fs, v.Path(a.resDir()))
		if err != nil {
			return "", err
		}
		if ok {
			removed++
		}
	}
	if removed > 0 {
		return fmt.Sprintf("not configured, removed %d stale drawables", removed), nil
	}
	return "not configured", nil
}

func (a *Android) animationPath() string {
	return filepath.Join(a.resDir(), "drawable", DrawableAnimation+".xml")
}

// writeAnimation copies an animated vector drawable into res/drawable.
func (a *Android) writeAnimation() (string, error) {
	source := a.ctx.Config.Animation.Android
	if source == "" {
		if ok, err := layout.Remove(a.ctx.Fs, a.animationPath()); err != nil || !ok {
			return "not configured", err
		}
		return "not configured, removed stale animation", nil
	}

	if !strings.EqualFold(filepath.Ext(source), ".xml") {
		return a.skipAnimation(fmt.Errorf("%s must be an animated vector drawable (.xml)", source))
	}

	data, err := afero.ReadFile(a.ctx.Fs, a.ctx.Resolve(source))
	if err != nil {
		return a.skipAnimation(err)
	}
	if _, err := xmlpatch.Parse(data); err != nil {
		return a.skipAnimation(fmt.Errorf("%s: %w", source, err))
	}

	if !layout.SameContent(a.ctx.Fs, a.animationPath(), data) {
		if err := layout.WriteFile(a.ctx.Fs, a.animationPath(), data, a.logger); err != nil {
			return "", err
		}
	}
	a.animationReady = true
	return "drawable/" + DrawableAnimation + ".xml", nil
}

// skipAnimation drops the drawable left by an earlier run so the theme and
// the files on disk agree.
func (a *Android) skipAnimation(cause error) (string, error) {
	if _, err := layout.Remove(a.ctx.Fs, a.animationPath()); err != nil {
		return "", err
	}
	return "", fmt.Errorf("%w: android animation: %w", splasherrors.ErrAssetSkipped, cause)
}
