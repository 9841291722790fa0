package android

import (
	"fmt"
	"path/filepath"

	"github.com/provide-io/splashgen/pkg/splash/imaging"
	"github.com/provide-io/splashgen/pkg/splash/xmlpatch"
)

func (a *Android) patchColors() (string, error) {
	cfg := a.ctx.Config
	return a.writeColors("values", cfg.Color, cfg.IconBackground)
}

func (a *Android) patchNightColors() (string, error) {
	cfg := a.ctx.Config
	return a.writeColors("values-night", cfg.ColorDark, cfg.IconBackgroundDark)
}

func (a *Android) writeColors(dir, background, iconBackground string) (string, error) {
	colors := [][2]string{
		{ColorSplash, background},
		{ColorIconBackground, iconBackground},
	}

	transforms := make([]xmlpatch.Transform, 0, len(colors))
	for _, c := range colors {
		value, err := imaging.NormalizeHexColor(c[1])
		if err != nil {
			return "", err
		}
		name := c[0]
		transforms = append(transforms, func(src []byte) ([]byte, error) {
			return xmlpatch.UpsertValue(src, "resources", "color", name, value)
		})
	}

	rel := filepath.Join(dir, "colors.xml")
	outcome, err := xmlpatch.ApplyFile(a.ctx.Fs, filepath.Join(a.resDir(), rel), xmlpatch.ResourcesSkeleton, a.logger, transforms...)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s %s", filepath.ToSlash(rel), outcome), nil
}

// splashTheme renders the theme block. Its items follow the order the
// androidx.core:core-splashscreen attributes are documented in.
func (a *Android) splashTheme() xmlpatch.Node {
	icon := "@drawable/" + DrawableImage
	if a.animationReady {
		icon = "@drawable/" + DrawableAnimation
	}

	items := []xmlpatch.Node{
		styleItem("windowSplashScreenBackground", "@color/"+ColorSplash),
		styleItem("windowSplashScreenAnimatedIcon", icon),
		styleItem("windowSplashScreenIconBackgroundColor", "@color/"+ColorIconBackground),
	}
	if a.brandingReady {
		items = append(items, styleItem("windowSplashScreenBrandingImage", "@drawable/"+DrawableBranding))
	}
	items = append(items, styleItem("postSplashScreenTheme", "@style/"+a.ctx.Config.Android.PostSplashTheme))

	return xmlpatch.NewNode("style", "name", ThemeName, "parent", ThemeParent).WithChildren(items...)
}

func styleItem(name, value string) xmlpatch.Node {
	return xmlpatch.NewNode("item", "name", name).WithText(value)
}

func (a *Android) patchStyles() (string, error) {
	theme := a.splashTheme()
	path := filepath.Join(a.resDir(), "values", "styles.xml")
	outcome, err := xmlpatch.ApplyFile(a.ctx.Fs, path, xmlpatch.ResourcesSkeleton, a.logger,
		func(src []byte) ([]byte, error) {
			return xmlpatch.UpsertElement(src, "resources", "name", theme)
		})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("values/styles.xml %s (%s)", outcome, ThemeName), nil
}

// metaData returns the manifest entries to keep and the keys of the ones
// to remove.
func (a *Android) metaData() (keep []xmlpatch.Node, drop []xmlpatch.Match) {
	entry := func(name, resource string) xmlpatch.Node {
		return xmlpatch.NewNode("meta-data", "android:name", MetaPrefix+name, "android:resource", resource)
	}
	key := func(name string) xmlpatch.Match {
		return xmlpatch.Match{Tag: "meta-data", Attr: "android:name", Value: MetaPrefix + name}
	}

	keep = []xmlpatch.Node{
		entry("background", "@color/"+ColorSplash),
		entry("image", "@drawable/"+DrawableImage),
	}
	if a.animationReady {
		keep = append(keep, entry("animation", "@drawable/"+DrawableAnimation))
	} else {
		drop = append(drop, key("animation"))
	}
	if a.brandingReady {
		keep = append(keep, entry("branding", "@drawable/"+DrawableBranding))
	} else {
		drop = append(drop, key("branding"))
	}
	return keep, drop
}

func (a *Android) patchManifest() (string, error) {
	activity := xmlpatch.Match{Tag: "activity", Attr: "android:name", Value: a.ctx.Config.Android.MainActivity}
	keep, drop := a.metaData()

	outcome, err := xmlpatch.ApplyFile(a.ctx.Fs, a.manifestPath(), "", a.logger,
		func(src []byte) ([]byte, error) {
			return xmlpatch.UpsertChildren(src, activity, "android:name", keep...)
		},
		func(src []byte) ([]byte, error) {
			return xmlpatch.RemoveChildren(src, activity, drop...)
		})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("AndroidManifest.xml %s (%d meta-data on %s)", outcome, len(keep), activity.Value), nil
}
