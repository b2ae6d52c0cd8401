package pipeline

import "errors"

// Sentinel errors returned by Run. Callers match them with errors.Is; the
// returned error wraps the underlying cause.
var (
	ErrOpenInput     = errors.New("cannot open input file")
	ErrEmptyInput    = errors.New("input CSV is empty")
	ErrMissingHeader = errors.New("header missing name, premiere date, or end date column")
	ErrOpenOutput    = errors.New("cannot open output file")
	ErrWriteOutput   = errors.New("cannot write output file")
)
