package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"time"

	"github.com/spf13/cobra"

	"github.com/provide-io/splashgen/pkg"
	"github.com/provide-io/splashgen/pkg/splash/generator"
)

const version = "0.3.0"

// Process exit codes.
const (
	ExitFailure = 1
	ExitPanic   = 2
)

var errStrict = errors.New("❌ generation failed")

type cliOptions struct {
	configPath  string
	projectDir  string
	platforms   []string
	logLevel    string
	strict      bool
	check       bool
	noColor     bool
	versionFlag bool
}

func buildTimestamp() string {
	// Try to get vcs.time from build info
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.time" {
				if t, err := time.Parse(time.RFC3339, setting.Value); err == nil {
					return t.UTC().Format(time.RFC3339)
				}
			}
		}
	}
	// Fallback to binary modification time
	if exePath, err := os.Executable(); err == nil {
		if stat, err := os.Stat(exePath); err == nil {
			return stat.ModTime().UTC().Format(time.RFC3339)
		}
	}
	return time.Now().UTC().Format(time.RFC3339)
}

func printVersion(w io.Writer) {
	_, _ = fmt.Fprintf(w, "splashgen %s\n", version)
	_, _ = fmt.Fprintf(w, "Built: %s\n", buildTimestamp())
}

func newRootCmd() *cobra.Command {
	opts := &cliOptions{}

	cmd := &cobra.Command{
		Use:   "splashgen",
		Short: "Generate Android and iOS splash screens",
		Long: `Generate Android and iOS splash screen resources from a declarative
configuration: resized images, asset-catalog descriptors, a launch
storyboard and patched resource files.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "Path to the splash configuration (YAML, JSON or TOML)")
	flags.StringVarP(&opts.projectDir, "project", "p", ".", "Root directory of the mobile app project")
	flags.StringSliceVar(&opts.platforms, "platform", nil, "Platform to generate (android, ios); repeatable, defaults to all")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level (trace, debug, info, warn, error, json[:level])")
	flags.BoolVar(&opts.strict, "strict", false, "Exit with a non-zero status when a platform fails")
	flags.BoolVar(&opts.check, "check", false, "Only verify the configuration and project layout")
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable colored status output")
	flags.BoolVarP(&opts.versionFlag, "version", "V", false, "Show version information")

	return cmd
}

func run(cmd *cobra.Command, opts *cliOptions) error {
	out := cmd.OutOrStdout()
	if opts.versionFlag {
		printVersion(out)
		return nil
	}
	if opts.configPath == "" {
		return cmd.Usage()
	}

	printer := generator.NewPrinter(out, opts.noColor)
	if err := generator.ValidatePlatforms(opts.platforms); err != nil {
		return fail(printer, "cli", "platform", err, opts.strict)
	}

	apiOpts := pkg.Options{
		ConfigPath: opts.configPath,
		ProjectDir: opts.projectDir,
		Platforms:  opts.platforms,
		LogLevel:   opts.logLevel,
		Output:     out,
		NoColor:    opts.noColor,
	}

	var (
		report generator.Report
		err    error
	)
	if opts.check {
		report, err = pkg.VerifyProject(apiOpts)
	} else {
		report, err = pkg.Generate(apiOpts)
	}
	if err != nil {
		return fail(printer, "config", "load", err, opts.strict)
	}

	if opts.strict && report.Failed() {
		return fmt.Errorf("%w: %d step(s) failed", errStrict, report.Count(generator.StatusFailed))
	}
	return nil
}

// fail prints err as a failed status line. The error is returned only in
// strict mode.
func fail(printer *generator.Printer, source, step string, err error, strict bool) error {
	printer.Print(generator.StepResult{Platform: source, Step: step, Status: generator.StatusFailed, Err: err})
	if strict {
		return err
	}
	return nil
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "PANIC: %v\n", r)
			debug.PrintStack()
			os.Exit(ExitPanic)
		}
	}()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	}
}
