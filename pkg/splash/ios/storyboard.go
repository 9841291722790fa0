package ios

import (
	"bytes"
	_ "embed"
	"fmt"
	"image"
	"text/template"

	"github.com/provide-io/splashgen/internal/layout"
	"github.com/provide-io/splashgen/pkg/splash/xmlpatch"
)

//go:embed storyboard.xml.tmpl
var storyboardSource string

var storyboardTemplate = template.Must(template.New("storyboard").Parse(storyboardSource))

// brandingMargin is the gap in points between the branding image and the
// bottom safe area.
const brandingMargin = 20

type sizedImage struct {
	Name   string
	Width  int
	Height int
}

type storyboardData struct {
	Background     sizedImage
	Image          sizedImage
	Branding       *sizedImage
	BrandingMargin int
}

// RenderStoryboard produces the launch storyboard. Its output depends only
// on its arguments; a zero branding size leaves the branding view out.
func RenderStoryboard(imageSize, brandingSize image.Point) ([]byte, error) {
	data := storyboardData{
		Background:     sizedImage{Name: SetBackground, Width: 1, Height: 1},
		Image:          sizedImage{Name: SetImage, Width: imageSize.X, Height: imageSize.Y},
		BrandingMargin: brandingMargin,
	}
	if brandingSize != (image.Point{}) {
		data.Branding = &sizedImage{Name: SetBranding, Width: brandingSize.X, Height: brandingSize.Y}
	}

	var buf bytes.Buffer
	if err := storyboardTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render storyboard: %w", err)
	}
	return buf.Bytes(), nil
}

func (i *IOS) writeStoryboard() (string, error) {
	data, err := RenderStoryboard(i.imageSize, i.brandingSize)
	if err != nil {
		return "", err
	}

	path := i.storyboardPath()
	name := i.ctx.Config.IOS.Storyboard + ".storyboard"
	if layout.SameContent(i.ctx.Fs, path, data) {
		return name + " " + xmlpatch.Unchanged.String(), nil
	}
	if err := layout.WriteFile(i.ctx.Fs, path, data, i.logger); err != nil {
		return "", err
	}
	return name + " written", nil
}

func (i *IOS) patchInfoPlist() (string, error) {
	storyboard := i.ctx.Config.IOS.Storyboard
	outcome, err := xmlpatch.ApplyFile(i.ctx.Fs, i.infoPlistPath(), xmlpatch.PlistSkeleton, i.logger,
		func(src []byte) ([]byte, error) {
			return xmlpatch.SetPlistString(src, LaunchStoryboardKey, storyboard)
		})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s %s (%s=%s)", i.ctx.Config.IOS.InfoPlist, outcome, LaunchStoryboardKey, storyboard), nil
}
