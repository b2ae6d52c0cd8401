// Command tvruntime ranks television shows by how long they were on air.
//
// It reads a CSV of shows with name, premiere date and end date columns,
// computes each show's runtime in days (counting still-airing shows up to
// a fallback date), keeps the longest runtime per show name, and writes
// Name,RunDays sorted longest first.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/backmassage/tvruntime/internal/check"
	"github.com/backmassage/tvruntime/internal/config"
	"github.com/backmassage/tvruntime/internal/logging"
	"github.com/backmassage/tvruntime/internal/pipeline"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	code := 0
	cmd := newRootCmd(&code)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		return 1
	}
	return code
}

func newRootCmd(code *int) *cobra.Command {
	var flags config.Flags
	cmd := &cobra.Command{
		Use:   "tvruntime [input.csv [output.csv]]",
		Short: "Rank TV shows by on-air runtime in days",
		Long: `tvruntime reads a CSV of television shows, computes each show's runtime
in days from its premiere and end dates, and writes Name,RunDays sorted
longest first. Shows without an end date count up to the fallback date.

Columns are found by header: the first header containing "name",
"premiere" and "end" (case-insensitive) is used for each.`,
		Version:       fmt.Sprintf("%s (%s)", version, commit),
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			*code = execute(cmd, &flags, args)
			return nil
		},
	}
	flags.Register(cmd.Flags())
	return cmd
}

func execute(cmd *cobra.Command, flags *config.Flags, args []string) int {
	// Phase 1: Bootstrap. The logger doesn't exist yet, so errors go
	// directly to stderr.
	fs := cmd.Flags()
	cfg, err := config.Load(flags.ConfigPath, flags.ConfigMustExist(fs))
	if err != nil {
		fmt.Fprintf(os.Stderr, "tvruntime: %v\n", err)
		return 1
	}
	if err := flags.Apply(&cfg, fs, args); err != nil {
		fmt.Fprintf(os.Stderr, "tvruntime: %v\n", err)
		return 1
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "tvruntime: %v\n", err)
		return 1
	}

	base, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tvruntime: %v\n", err)
		return 1
	}
	defer base.Close()
	log := base.With("run", uuid.NewString()[:8])

	// Phase 2: Logger available.
	if cfg.CheckOnly {
		if !check.RunCheck(&cfg, log) {
			return 1
		}
		return 0
	}

	if err := validatePaths(&cfg); err != nil {
		log.Error("%v", err)
		return 1
	}

	log.Info("=== tvruntime v%s (%s) ===", version, commit)
	log.Info("In:  %s", cfg.InputPath)
	log.Info("Out: %s", cfg.OutputPath)
	log.Debug("Fallback end date: %s", cfg.FallbackDate)

	// Phase 3: Cancel on SIGINT/SIGTERM; the pipeline checks before it
	// creates the output file.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Phase 4: read → parse → aggregate → sort → write.
	if _, err := pipeline.Run(ctx, &cfg, log); err != nil {
		log.Error("%v", err)
		return 1
	}
	return 0
}

// validatePaths rejects an output path that resolves to the input file,
// following symlinks on both.
func validatePaths(cfg *config.Config) error {
	inputAbs, err := absPath(cfg.InputPath)
	if err != nil {
		return err
	}
	outputAbs, err := absPath(cfg.OutputPath)
	if err != nil {
		return err
	}
	return cfg.ValidatePaths(inputAbs, outputAbs)
}

// absPath returns the absolute, symlink-resolved path. A path that does not
// exist yet is resolved through its directory; if that fails too, the
// plain absolute path is returned and the open reports the problem.
func absPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved, nil
	}
	if dir, err := filepath.EvalSymlinks(filepath.Dir(abs)); err == nil {
		return filepath.Join(dir, filepath.Base(abs)), nil
	}
	return abs, nil
}
