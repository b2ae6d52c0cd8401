package pipeline

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/backmassage/tvruntime/internal/calendar"
	"github.com/backmassage/tvruntime/internal/csvline"
	"github.com/backmassage/tvruntime/internal/shows"
)

// Logger is the minimal logging interface the pipeline needs.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(string, ...interface{})
}

// OutputHeader is the first line of every output file.
const OutputHeader = "Name,RunDays"

// Result is everything learned from one input: the located columns, the
// outcome of every data row, and the ranked runtimes.
type Result struct {
	Columns shows.Columns
	Rows    []shows.RowResult
	Ordered []shows.Runtime
	Stats   RunStats
}

// ReadLines returns every line of r with its terminator kept. Lines end at
// "\n" only; a bare "\r" stays inside the line. A final line without a
// newline is included.
func ReadLines(r io.Reader) ([]string, error) {
	br := bufio.NewReader(r)
	var lines []string
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			lines = append(lines, line)
		}
		if errors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// Process evaluates lines (header first) and ranks the shows found.
func Process(lines []string, fallback calendar.Date) (Result, error) {
	var res Result
	if len(lines) == 0 {
		return res, ErrEmptyInput
	}

	cols, err := shows.LocateColumns(csvline.Split(lines[0]))
	if err != nil {
		return res, fmt.Errorf("%w: %w", ErrMissingHeader, err)
	}
	res.Columns = cols

	var agg shows.Aggregator
	res.Rows = make([]shows.RowResult, 0, len(lines)-1)
	for i, line := range lines[1:] {
		row := shows.EvaluateRow(i+2, line, cols, fallback)
		res.Rows = append(res.Rows, row)
		res.Stats.record(row)
		agg.AddRow(row)
	}

	res.Ordered = agg.Ordered()
	res.Stats.Unique = agg.Len()
	return res, nil
}

// WriteRuntimes writes the header and one "name,days" line per runtime,
// quoting names that contain a comma or double quote.
func WriteRuntimes(w io.Writer, ordered []shows.Runtime) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(OutputHeader + "\n"); err != nil {
		return err
	}
	for _, rt := range ordered {
		if _, err := fmt.Fprintf(bw, "%s,%d\n", csvline.Quote(rt.Name), rt.Days); err != nil {
			return err
		}
	}
	return bw.Flush()
}
