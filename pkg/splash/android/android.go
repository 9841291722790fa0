// Package android generates the Android 12+ splash screen resources:
// density-bucketed drawables, light and night color tables, the splash
// theme and the main activity's metadata.
package android

import (
	"path/filepath"

	"github.com/hashicorp/go-hclog"

	"github.com/provide-io/splashgen/internal/layout"
	"github.com/provide-io/splashgen/pkg/splash/platform"
)

// Resource names shared by the generated files.
const (
	ColorSplash         = "splash_color"
	ColorIconBackground = "splash_icon_background"

	DrawableImage     = "splash_image"
	DrawableBranding  = "splash_branding"
	DrawableAnimation = "splash_animation"

	ThemeName   = "SplashTheme"
	ThemeParent = "Theme.SplashScreen"

	MetaPrefix = "splashgen."
)

// Base widths in dp; each density bucket scales them.
const (
	ImageBaseWidth    = 128
	BrandingBaseWidth = 200
)

// Density is an Android drawable density bucket.
type Density struct {
	Name  string
	Scale float64
}

// Densities lists the drawable buckets that receive image variants.
var Densities = []Density{
	{Name: "mdpi", Scale: 1},
	{Name: "hdpi", Scale: 1.5},
	{Name: "xhdpi", Scale: 2},
	{Name: "xxhdpi", Scale: 3},
	{Name: "xxxhdpi", Scale: 4},
}

// Android implements platform.Platform.
type Android struct {
	ctx    platform.Context
	logger hclog.Logger

	mainDir string // e.g. <project>/android/app/src/main

	brandingReady  bool
	animationReady bool
}

// New creates the Android platform for ctx.
func New(ctx platform.Context) *Android {
	return &Android{
		ctx:     ctx,
		logger:  ctx.Logger.Named("android"),
		mainDir: ctx.Resolve(ctx.Config.Android.ProjectDir),
	}
}

func (a *Android) Name() string { return "android" }

func (a *Android) resDir() string { return filepath.Join(a.mainDir, "res") }

func (a *Android) manifestPath() string { return filepath.Join(a.mainDir, "AndroidManifest.xml") }

// CheckLayout requires the main source set with its res directory and
// manifest.
func (a *Android) CheckLayout() error {
	return layout.Verify(a.ctx.Fs, a.mainDir, layout.Dir("res"), layout.File("AndroidManifest.xml"))
}

// Steps runs drawables first: colors, the theme and the manifest refer to
// resources that must already exist.
func (a *Android) Steps() []platform.Step {
	return []platform.Step{
		{Name: "drawables", Run: a.writeImage},
		{Name: "branding", Run: a.writeBranding},
		{Name: "animation", Run: a.writeAnimation},
		{Name: "colors", Run: a.patchColors},
		{Name: "night colors", Run: a.patchNightColors},
		{Name: "styles", Run: a.patchStyles},
		{Name: "manifest", Run: a.patchManifest},
	}
}
