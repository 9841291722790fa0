// Package platform defines what the orchestrator needs from each target
// platform: a layout check and an ordered list of generation steps.
package platform

import (
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"

	"github.com/provide-io/splashgen/pkg/splash/config"
)

// Platform generates splash resources for one target.
type Platform interface {
	// Name is the short identifier used in status lines, e.g. "android".
	Name() string

	// CheckLayout verifies the project contains the platform's expected
	// directories. It returns an error wrapping ErrProjectLayout otherwise.
	CheckLayout() error

	// Steps returns the generation steps in the order they must run.
	Steps() []Step
}

// Step is one unit of generation work. Run returns a short detail for the
// status line. Errors classified by errors.IsWarning let the platform
// continue; any other error stops it.
type Step struct {
	Name string
	Run  func() (string, error)
}

// Context carries what every platform needs.
type Context struct {
	Fs         afero.Fs
	ProjectDir string
	Config     config.Config
	Logger     hclog.Logger
}

// Resolve turns a project-relative path from the configuration into a path
// on Fs. Absolute paths are returned unchanged.
func (c Context) Resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.ProjectDir, path)
}
