// Package shows turns tokenized CSV rows into per-show runtimes.
//
// It locates the name, premiere and end columns from a header row,
// evaluates each data row into a [RowResult] (either a runtime or a
// [SkipReason]), and folds accepted rows into an [Aggregator] that keeps
// the longest runtime seen for every show name.
package shows
