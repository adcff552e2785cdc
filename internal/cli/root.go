/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package cli implements the resultcode command line.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"dirpx.dev/resultcode"
	"dirpx.dev/resultcode/internal/config"
	clierrors "dirpx.dev/resultcode/internal/errors"
	"dirpx.dev/resultcode/internal/output"
)

// app carries flag values and the per-invocation state built in
// PersistentPreRunE. Each root command owns its own app.
type app struct {
	configPath string
	outputFmt  string
	lookup     string
	jobs       int
	verbose    bool
	noColor    bool

	// loadOptions is the base for config loading; ConfigPath comes from --config.
	loadOptions config.LoadOptions

	cfg        *config.Config
	logger     *zap.Logger
	translator *resultcode.Translator
	printer    *output.Printer
}

// NewRootCommand builds the resultcode command tree.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&app{})
}

func newRootCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resultcode",
		Short: "Translate Windows Task Scheduler result codes",
		Long: `resultcode interprets the numeric results reported by Windows Task Scheduler.

Each code is resolved against the SCHED_* status taxonomy, the Win32 error
table (directly and via FACILITY_WIN32 HRESULTs) and, for zero, a synthesized
ERROR_SUCCESS. Every interpretation found is reported, primary first.`,
		Example: `  resultcode translate 0x8004131F 267009 -2147024894
  echo '[0, "0x80070005", null]' | resultcode translate --json
  resultcode explain 2147942402
  resultcode list --prefix SCHED_E
  resultcode serve --listen :8087`,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "config file (default .resultcode.yml, then the user config)")
	pf.StringVarP(&a.outputFmt, "output", "o", "", "output format: text, json, yaml or msgpack")
	pf.StringVar(&a.lookup, "lookup", "", "OS error lookup: system, bundled or none")
	pf.IntVarP(&a.jobs, "jobs", "j", 0, "batch parallelism (0 = GOMAXPROCS)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	pf.BoolVar(&a.noColor, "no-color", false, "disable colored output")

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return clierrors.NewArgumentErrorWithUsage(err.Error(), c.UseLine())
	})

	cmd.AddCommand(
		newTranslateCmd(a),
		newExplainCmd(a),
		newListCmd(a),
		newFacilitiesCmd(a),
		newNameCmd(a),
		newServeCmd(a),
	)
	return cmd
}

// setup loads configuration, applies flag overrides and builds the logger,
// translator and printer.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	opts := a.loadOptions
	opts.ConfigPath = a.configPath
	cfg, err := config.LoadWithOptions(opts)
	if err != nil {
		return clierrors.WrapWithMessage(err, clierrors.Configuration, "loading configuration",
			"check the config file and RESULTCODE_* environment variables")
	}

	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.Output = a.outputFmt
	}
	if flags.Changed("lookup") {
		cfg.Lookup = a.lookup
	}
	if flags.Changed("jobs") {
		cfg.Jobs = a.jobs
	}
	if a.verbose {
		cfg.LogLevel = "debug"
	}
	if a.noColor {
		cfg.Color = false
	}
	if err := config.Validate(cfg); err != nil {
		return clierrors.NewArgumentErrorWithUsage(err.Error(), cmd.UseLine())
	}
	a.cfg = cfg

	if a.logger, err = buildLogger(cfg.LogLevel); err != nil {
		return clierrors.WrapWithMessage(err, clierrors.Runtime, "failed to initialize logger")
	}

	a.translator, err = resultcode.New(
		resultcode.WithLogger(a.logger),
		resultcode.WithJobs(cfg.Jobs),
		resultcode.WithLookup(cfg.OSLookup()),
	)
	if err != nil {
		return clierrors.Wrap(err, clierrors.Runtime)
	}

	a.printer, err = output.New(cmd.OutOrStdout(), cfg.Output, cfg.Color && !color.NoColor)
	if err != nil {
		return clierrors.Wrap(err, clierrors.Argument)
	}

	a.logger.Debug("configuration loaded",
		zap.String("output", cfg.Output),
		zap.String("lookup", cfg.Lookup),
		zap.Int("jobs", cfg.Jobs),
	)
	return nil
}

func buildLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	return zc.Build()
}

// exactArgs is cobra.ExactArgs reporting an argument error with usage.
func exactArgs(n int, what string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return clierrors.NewArgumentErrorWithUsage(
				fmt.Sprintf("expected %d %s, got %d", n, what, len(args)),
				cmd.UseLine(),
			)
		}
		return nil
	}
}

// Execute runs the CLI with os.Args and returns the process exit code.
func Execute() int {
	return run(NewRootCommand(), os.Args[1:], os.Stderr)
}

func run(cmd *cobra.Command, args []string, stderr io.Writer) int {
	cmd.SetArgs(args)
	err := cmd.Execute()
	if err == nil {
		return ExitSuccess
	}

	var cli *clierrors.CLIError
	if errors.As(err, &cli) {
		clierrors.FprintError(stderr, cli)
	} else {
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	return exitCode(err)
}
