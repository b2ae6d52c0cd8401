package pipeline

import (
	"context"
	"fmt"
	"os"

	"github.com/backmassage/tvruntime/internal/config"
	"github.com/backmassage/tvruntime/internal/display"
	"github.com/backmassage/tvruntime/internal/shows"
)

// Run converts cfg.InputPath into cfg.OutputPath. The output file is only
// created after the whole input has been read and ranked, so every fatal
// input condition leaves no output behind.
func Run(ctx context.Context, cfg *config.Config, log Logger) (RunStats, error) {
	fallback, err := cfg.Fallback()
	if err != nil {
		return RunStats{}, err
	}

	res, err := Analyze(cfg.InputPath, fallback)
	if err != nil {
		return res.Stats, err
	}
	logRows(log, &res)

	if err := ctx.Err(); err != nil {
		return res.Stats, err
	}

	if err := writeOutput(cfg.OutputPath, &res); err != nil {
		return res.Stats, err
	}

	logSummary(log, cfg, &res)
	return res.Stats, nil
}

func writeOutput(path string, res *Result) (err error) {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrOpenOutput, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %v", ErrWriteOutput, cerr)
		}
	}()

	if err := WriteRuntimes(out, res.Ordered); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

// logRows reports each skipped row and each fallback substitution at debug
// level.
func logRows(log Logger, res *Result) {
	for _, r := range res.Rows {
		switch {
		case !r.Accepted():
			if r.Skip != shows.SkipBlank {
				log.Debug("line %d skipped: %s", r.Line, r.Skip)
			}
		case r.UsedFallback:
			log.Debug("line %d: %q has no end date, counting to fallback", r.Line, r.Name)
		}
	}
}

func logSummary(log Logger, cfg *config.Config, res *Result) {
	s := &res.Stats
	log.Info("Rows: %d accepted, %d skipped, %d still airing", s.Accepted, s.SkippedTotal(), s.Fallbacks)
	if len(res.Ordered) > 0 {
		top := res.Ordered[0]
		log.Info("Longest run: %s (%s)", top.Name, display.FormatDays(top.Days))
	}
	log.Success("Wrote %s with %d unique shows.", cfg.OutputPath, s.Unique)
}
