package pkg

import (
	"github.com/hashicorp/go-hclog"

	"github.com/provide-io/splashgen/pkg/logging"
	"github.com/provide-io/splashgen/pkg/splash/generator"
)

// VerifyProjectWithLogger checks the configuration and the project layout
// of every selected platform without generating anything.
func VerifyProjectWithLogger(opts Options, logger hclog.Logger) (generator.Report, error) {
	g, err := newGenerator(opts, logger)
	if err != nil {
		return generator.Report{}, err
	}

	logger.Info("verifying project layout", "project", opts.ProjectDir)
	report := g.Check()

	if report.Failed() {
		logger.Error("✗ project verification failed", "error_count", report.Count(generator.StatusFailed))
		for _, s := range report.Steps {
			if s.Err != nil {
				logger.Error("  verification error", "platform", s.Platform, "details", s.Err)
			}
		}
	} else {
		logger.Info("✓ project verification passed")
	}
	return report, nil
}

// VerifyProject verifies a project using default logger settings.
func VerifyProject(opts Options) (generator.Report, error) {
	logger := logging.NewLogger(logging.Options{Name: "splashgen-verify", Level: opts.LogLevel})
	return VerifyProjectWithLogger(opts, logger)
}
