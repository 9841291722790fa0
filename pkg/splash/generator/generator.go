// Package generator runs the platform generators in order and reports one
// status line per step.
package generator

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"

	"github.com/provide-io/splashgen/pkg/splash/android"
	"github.com/provide-io/splashgen/pkg/splash/config"
	splasherrors "github.com/provide-io/splashgen/pkg/splash/errors"
	"github.com/provide-io/splashgen/pkg/splash/ios"
	"github.com/provide-io/splashgen/pkg/splash/platform"
)

// Platform names in run order.
const (
	PlatformAndroid = "android"
	PlatformIOS     = "ios"
)

// Platforms lists every supported platform in run order.
var Platforms = []string{PlatformAndroid, PlatformIOS}

// Options configures a Generator.
type Options struct {
	Fs         afero.Fs
	ProjectDir string
	Config     config.Config
	Logger     hclog.Logger

	// Platforms restricts the run; empty runs every platform.
	Platforms []string

	// Output receives the status lines; nil prints nothing.
	Output  io.Writer
	NoColor bool
}

// Generator produces splash resources for the selected platforms.
type Generator struct {
	opts    Options
	logger  hclog.Logger
	printer *Printer
}

// ValidatePlatforms rejects names that are not in Platforms.
func ValidatePlatforms(names []string) error {
	for _, name := range names {
		if !slices.Contains(Platforms, name) {
			return fmt.Errorf("%w: unknown platform %q (want one of %s)",
				splasherrors.ErrConfig, name, strings.Join(Platforms, ", "))
		}
	}
	return nil
}

// New validates the platform selection and creates a Generator.
func New(opts Options) (*Generator, error) {
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if opts.ProjectDir == "" {
		opts.ProjectDir = "."
	}
	if opts.Logger == nil {
		opts.Logger = hclog.NewNullLogger()
	}
	if err := ValidatePlatforms(opts.Platforms); err != nil {
		return nil, err
	}

	return &Generator{
		opts:    opts,
		logger:  opts.Logger,
		printer: NewPrinter(opts.Output, opts.NoColor),
	}, nil
}

func (g *Generator) selected(name string) bool {
	if len(g.opts.Platforms) > 0 && !slices.Contains(g.opts.Platforms, name) {
		return false
	}
	switch name {
	case PlatformAndroid:
		return g.opts.Config.AndroidEnabled()
	case PlatformIOS:
		return g.opts.Config.IOSEnabled()
	}
	return false
}

func (g *Generator) platforms() []platform.Platform {
	ctx := platform.Context{
		Fs:         g.opts.Fs,
		ProjectDir: g.opts.ProjectDir,
		Config:     g.opts.Config,
		Logger:     g.logger,
	}

	var out []platform.Platform
	for _, name := range Platforms {
		if !g.selected(name) {
			g.logger.Debug("platform not selected", "platform", name)
			continue
		}
		switch name {
		case PlatformAndroid:
			out = append(out, android.New(ctx))
		case PlatformIOS:
			out = append(out, ios.New(ctx))
		}
	}
	return out
}

// Run generates every selected platform. A failing platform does not stop
// the others; the report says what happened to each step.
func (g *Generator) Run() Report {
	var report Report

	if err := g.opts.Config.RequireImage(); err != nil {
		g.record(&report, StepResult{Platform: "config", Step: "image", Status: StatusFailed, Err: err})
		g.printer.Summary(report)
		return report
	}

	for _, p := range g.platforms() {
		g.runPlatform(p, &report)
	}

	g.printer.Summary(report)
	g.logger.Info("generation finished",
		"ok", report.Count(StatusOK),
		"warnings", report.Count(StatusWarning),
		"failed", report.Count(StatusFailed))
	return report
}

// Check verifies the configuration and each selected platform's project
// layout without writing anything.
func (g *Generator) Check() Report {
	var report Report

	if err := g.opts.Config.RequireImage(); err != nil {
		g.record(&report, StepResult{Platform: "config", Step: "image", Status: StatusFailed, Err: err})
	} else {
		g.record(&report, StepResult{Platform: "config", Step: "image", Status: StatusOK, Detail: g.opts.Config.Image})
	}

	for _, p := range g.platforms() {
		result := StepResult{Platform: p.Name(), Step: "layout", Status: StatusOK, Detail: "project layout valid"}
		if err := p.CheckLayout(); err != nil {
			result.Status, result.Detail, result.Err = StatusFailed, "", err
		}
		g.record(&report, result)
	}

	g.printer.Summary(report)
	return report
}

func (g *Generator) runPlatform(p platform.Platform, report *Report) {
	name := p.Name()
	logger := g.logger.With("platform", name)
	logger.Info("🎨 generating splash resources")

	if err := p.CheckLayout(); err != nil {
		logger.Error("❌ project layout check failed", "error", err)
		g.record(report, StepResult{Platform: name, Step: "layout", Status: StatusFailed, Err: err})
		return
	}

	for _, step := range p.Steps() {
		detail, err := step.Run()
		result := StepResult{Platform: name, Step: step.Name, Detail: detail, Err: err}

		switch {
		case err == nil:
			result.Status = StatusOK
			logger.Debug("step finished", "step", step.Name, "detail", detail)
		case splasherrors.IsWarning(err):
			result.Status = StatusWarning
			logger.Warn("⚠️ step skipped", "step", step.Name, "error", err)
		default:
			result.Status = StatusFailed
			logger.Error("❌ step failed", "step", step.Name, "error", err)
		}
		g.record(report, result)

		if result.Status == StatusFailed {
			return
		}
	}
}

func (g *Generator) record(report *Report, result StepResult) {
	report.Steps = append(report.Steps, result)
	g.printer.Print(result)
}
