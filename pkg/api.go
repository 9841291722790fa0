package pkg

import (
	"io"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"

	"github.com/provide-io/splashgen/pkg/logging"
	"github.com/provide-io/splashgen/pkg/splash/config"
	"github.com/provide-io/splashgen/pkg/splash/generator"
)

// Options selects the configuration, project and platforms of a run.
type Options struct {
	ConfigPath string
	ProjectDir string   // defaults to "."
	Platforms  []string // empty selects every platform
	LogLevel   string

	Output  io.Writer // status lines; nil prints nothing
	NoColor bool

	Fs afero.Fs // defaults to the OS filesystem
}

func (o Options) fs() afero.Fs {
	if o.Fs == nil {
		return afero.NewOsFs()
	}
	return o.Fs
}

func newGenerator(opts Options, logger hclog.Logger) (*generator.Generator, error) {
	fsys := opts.fs()
	cfg, err := config.Load(fsys, opts.ConfigPath)
	if err != nil {
		logger.Error("❌ failed to load configuration", "path", opts.ConfigPath, "error", err)
		return nil, err
	}
	logger.Debug("configuration loaded", "path", opts.ConfigPath, "image", cfg.Image)

	return generator.New(generator.Options{
		Fs:         fsys,
		ProjectDir: opts.ProjectDir,
		Config:     cfg,
		Logger:     logger,
		Platforms:  opts.Platforms,
		Output:     opts.Output,
		NoColor:    opts.NoColor,
	})
}

// Generate loads the configuration and generates splash resources.
func Generate(opts Options) (generator.Report, error) {
	logger := logging.NewLogger(logging.Options{Name: "splashgen", Level: opts.LogLevel})
	return GenerateWithLogger(opts, logger)
}

// GenerateWithLogger is Generate with a caller-provided logger.
func GenerateWithLogger(opts Options, logger hclog.Logger) (generator.Report, error) {
	g, err := newGenerator(opts, logger)
	if err != nil {
		return generator.Report{}, err
	}
	return g.Run(), nil
}
