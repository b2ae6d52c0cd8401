package pipeline

import "github.com/backmassage/tvruntime/internal/shows"

// RunStats tracks row counters across a run.
type RunStats struct {
	Lines     int // data lines after the header, blank ones included
	Accepted  int
	Skipped   map[shows.SkipReason]int
	Fallbacks int // accepted rows that used the fallback end date
	Unique    int // distinct show names written
}

// SkippedTotal returns the number of rows skipped for any reason.
func (s *RunStats) SkippedTotal() int {
	n := 0
	for _, c := range s.Skipped {
		n += c
	}
	return n
}

func (s *RunStats) record(r shows.RowResult) {
	s.Lines++
	if !r.Accepted() {
		if s.Skipped == nil {
			s.Skipped = make(map[shows.SkipReason]int)
		}
		s.Skipped[r.Skip]++
		return
	}
	s.Accepted++
	if r.UsedFallback {
		s.Fallbacks++
	}
}
