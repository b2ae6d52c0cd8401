package shows

import (
	"strings"

	"github.com/backmassage/tvruntime/internal/calendar"
	"github.com/backmassage/tvruntime/internal/csvline"
)

// SkipReason says why a data row contributed nothing to the output.
type SkipReason string

const (
	SkipNone        SkipReason = ""
	SkipBlank       SkipReason = "blank line"
	SkipShortRow    SkipReason = "row has no name field"
	SkipBadPremiere SkipReason = "premiere date missing or unparseable"
)

// RowResult is the outcome of evaluating one data line.
type RowResult struct {
	Line         int // 1-based line number in the input, header is line 1
	Name         string
	Premiere     calendar.Date
	End          calendar.Date
	Days         int
	UsedFallback bool // end date was absent or unparseable
	Skip         SkipReason
}

// Accepted reports whether the row produced a runtime.
func (r RowResult) Accepted() bool { return r.Skip == SkipNone }

// EvaluateRow tokenizes line and computes its runtime. fallback replaces an
// end date that is blank, missing from a short row, or unparseable.
func EvaluateRow(lineNo int, line string, cols Columns, fallback calendar.Date) RowResult {
	res := RowResult{Line: lineNo}
	if strings.TrimSpace(line) == "" {
		res.Skip = SkipBlank
		return res
	}

	fields := csvline.Split(line)
	if cols.Name >= len(fields) {
		res.Skip = SkipShortRow
		return res
	}

	res.Name = strings.TrimSpace(fields[cols.Name])
	premiere, ok := calendar.ParseDate(field(fields, cols.Premiere))
	if !ok {
		res.Skip = SkipBadPremiere
		return res
	}

	end, ok := calendar.ParseDate(field(fields, cols.End))
	if !ok {
		end = fallback
		res.UsedFallback = true
	}

	res.Premiere = premiere
	res.End = end
	res.Days = calendar.DaysBetween(premiere, end)
	return res
}

// field returns the trimmed value at idx, or "" when the row is too short.
func field(fields []string, idx int) string {
	if idx < len(fields) {
		return strings.TrimSpace(fields[idx])
	}
	return ""
}
