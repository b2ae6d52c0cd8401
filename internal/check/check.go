// Package check provides input diagnostics (--check mode) and the output
// target validation used by it. Nothing is written in check mode.
package check

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/backmassage/tvruntime/internal/config"
	"github.com/backmassage/tvruntime/internal/display"
	"github.com/backmassage/tvruntime/internal/pipeline"
	"github.com/backmassage/tvruntime/internal/shows"
)

// Sentinel errors returned by CheckOutput.
var (
	ErrOutputDirMissing = errors.New("output directory does not exist")
	ErrOutputIsDir      = errors.New("output path is a directory")
)

// topN is how many of the longest-running shows the report lists.
const topN = 5

// RunCheck reads and evaluates the input, then reports the located columns,
// row outcomes, the longest-running shows, and whether the output target is
// usable. It returns false if a real run would fail.
func RunCheck(cfg *config.Config, log pipeline.Logger) bool {
	log.Info("=== Input Check ===")

	fallback, err := cfg.Fallback()
	if err != nil {
		log.Error("%v", err)
		return false
	}
	log.Info("Fallback end date: %s", fallback)

	res, err := pipeline.Analyze(cfg.InputPath, fallback)
	if err != nil {
		log.Error("%v", err)
		return false
	}
	log.Success("Input: %s", cfg.InputPath)
	log.Info("Columns: name=%d premiere=%d end=%d", res.Columns.Name, res.Columns.Premiere, res.Columns.End)

	reportRows(log, &res.Stats)
	reportTop(log, res.Ordered)

	if cfg.OutputPath == "" {
		return true
	}
	if err := CheckOutput(cfg.OutputPath); err != nil {
		log.Error("%v", err)
		return false
	}
	log.Success("Output: %s", cfg.OutputPath)
	return true
}

// reportRows logs accepted and skipped counts, skip reasons in a stable order.
func reportRows(log pipeline.Logger, s *pipeline.RunStats) {
	log.Info("Rows: %s, %s accepted, %s still airing",
		display.FormatCount(s.Lines, "line"),
		display.FormatCount(s.Accepted, "row"),
		display.FormatCount(s.Fallbacks, "show"))

	reasons := make([]shows.SkipReason, 0, len(s.Skipped))
	for r := range s.Skipped {
		reasons = append(reasons, r)
	}
	slices.Sort(reasons)
	for _, r := range reasons {
		log.Warn("  skipped %s: %s", display.FormatCount(s.Skipped[r], "row"), r)
	}
	log.Info("Unique shows: %d", s.Unique)
}

func reportTop(log pipeline.Logger, ordered []shows.Runtime) {
	if len(ordered) == 0 {
		log.Warn("No shows with a usable premiere date")
		return
	}
	n := min(topN, len(ordered))
	log.Info("Longest running:")
	for i, rt := range ordered[:n] {
		log.Info("  %d. %s: %d days (%s)", i+1, rt.Name, rt.Days, display.FormatDays(rt.Days))
	}
}

// CheckOutput verifies the output file could be created: its directory must
// exist and the path itself must not be a directory.
func CheckOutput(path string) error {
	dir := filepath.Dir(path)
	fi, err := os.Stat(dir)
	if err != nil || !fi.IsDir() {
		return fmt.Errorf("%w: %s", ErrOutputDirMissing, dir)
	}
	if fi, err := os.Stat(path); err == nil && fi.IsDir() {
		return fmt.Errorf("%w: %s", ErrOutputIsDir, path)
	}
	return nil
}
