// Package ios generates the iOS launch screen: asset-catalog image and
// data sets, a launch storyboard and the Info.plist entry selecting it.
package ios

import (
	"image"
	"path/filepath"

	"github.com/hashicorp/go-hclog"

	"github.com/provide-io/splashgen/internal/layout"
	"github.com/provide-io/splashgen/pkg/splash/imaging"
	"github.com/provide-io/splashgen/pkg/splash/platform"
)

// Asset-catalog set names referenced by the storyboard.
const (
	SetImage      = "SplashImage"
	SetBackground = "SplashBackground"
	SetBranding   = "SplashBranding"
	SetAnimation  = "SplashAnimation"
)

// CatalogDir is the asset catalog below the iOS project directory.
const CatalogDir = "Assets.xcassets"

// LaunchStoryboardKey is the Info.plist key naming the launch storyboard.
const LaunchStoryboardKey = "UILaunchStoryboardName"

// Base widths in points for the 1x rendition.
const (
	ImageBaseWidth    = 128
	BrandingBaseWidth = 200
)

var scales = []struct {
	Suffix string
	Scale  string
	Factor float64
}{
	{"", "1x", 1},
	{"@2x", "2x", 2},
	{"@3x", "3x", 3},
}

// IOS implements platform.Platform.
type IOS struct {
	ctx    platform.Context
	logger hclog.Logger

	runnerDir string

	imageSize    image.Point
	brandingSize image.Point // zero unless branding was generated
}

// New creates the iOS platform for ctx.
func New(ctx platform.Context) *IOS {
	return &IOS{
		ctx:       ctx,
		logger:    ctx.Logger.Named("ios"),
		runnerDir: ctx.Resolve(ctx.Config.IOS.ProjectDir),
	}
}

func (i *IOS) Name() string { return "ios" }

func (i *IOS) catalogDir() string { return filepath.Join(i.runnerDir, CatalogDir) }

func (i *IOS) storyboardPath() string {
	return filepath.Join(i.runnerDir, i.ctx.Config.IOS.Storyboard+".storyboard")
}

func (i *IOS) infoPlistPath() string {
	return filepath.Join(i.runnerDir, i.ctx.Config.IOS.InfoPlist)
}

// CheckLayout requires the project directory and its asset catalog.
func (i *IOS) CheckLayout() error {
	return layout.Verify(i.ctx.Fs, i.runnerDir, layout.Dir(CatalogDir))
}

// Steps returns the asset sets before the storyboard that refers to them.
func (i *IOS) Steps() []platform.Step {
	return []platform.Step{
		{Name: "image set", Run: i.writeImageSet},
		{Name: "background set", Run: i.writeBackgroundSet},
		{Name: "branding set", Run: i.writeBrandingSet},
		{Name: "animation set", Run: i.writeAnimationSet},
		{Name: "storyboard", Run: i.writeStoryboard},
		{Name: "Info.plist", Run: i.patchInfoPlist},
	}
}

func scaledVariants(name string, baseWidth int) []imaging.Variant {
	variants := make([]imaging.Variant, 0, len(scales))
	for _, s := range scales {
		variants = append(variants, imaging.Variant{
			Filename: name + s.Suffix + ".png",
			Width:    imaging.ScaledWidth(baseWidth, s.Factor),
			Scale:    s.Scale,
		})
	}
	return variants
}
