package pipeline

import (
	"fmt"
	"os"

	"github.com/backmassage/tvruntime/internal/calendar"
)

// Analyze reads and processes the input file without writing anything.
func Analyze(path string, fallback calendar.Date) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrOpenInput, err)
	}
	defer f.Close()

	lines, err := ReadLines(f)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrOpenInput, err)
	}
	return Process(lines, fallback)
}
