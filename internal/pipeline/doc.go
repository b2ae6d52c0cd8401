// Package pipeline runs the conversion end to end: read the input CSV,
// evaluate every row, aggregate runtimes per show, sort them, and write
// the ranked CSV.
//
// Failures fall in two classes. Fatal conditions ([ErrOpenInput],
// [ErrEmptyInput], [ErrMissingHeader], [ErrOpenOutput], [ErrWriteOutput])
// abort the run before any output is written, except for write errors,
// which can only happen once writing has begun. Row-level problems never
// fail the run; they are recorded as a [shows.SkipReason] on the row and
// counted in [RunStats].
package pipeline
