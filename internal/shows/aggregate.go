package shows

import (
	"cmp"
	"slices"
)

// Runtime is one output pair.
type Runtime struct {
	Name string
	Days int
}

// Aggregator keeps the maximum runtime per show name and remembers the
// order in which names were first seen. The zero value is ready to use.
type Aggregator struct {
	index   map[string]int // name → position in entries
	entries []Runtime
}

// Add records days for name, keeping the larger value when name repeats.
func (a *Aggregator) Add(name string, days int) {
	if a.index == nil {
		a.index = make(map[string]int)
	}
	if i, ok := a.index[name]; ok {
		if days > a.entries[i].Days {
			a.entries[i].Days = days
		}
		return
	}
	a.index[name] = len(a.entries)
	a.entries = append(a.entries, Runtime{Name: name, Days: days})
}

// AddRow folds an accepted row into the aggregate and reports whether it
// was used.
func (a *Aggregator) AddRow(r RowResult) bool {
	if !r.Accepted() {
		return false
	}
	a.Add(r.Name, r.Days)
	return true
}

// Len returns the number of unique show names.
func (a *Aggregator) Len() int { return len(a.entries) }

// Get returns the current runtime for name.
func (a *Aggregator) Get(name string) (int, bool) {
	i, ok := a.index[name]
	if !ok {
		return 0, false
	}
	return a.entries[i].Days, true
}

// Ordered returns a copy of the runtimes sorted longest first. Equal
// runtimes keep the order in which their names were first added.
func (a *Aggregator) Ordered() []Runtime {
	out := slices.Clone(a.entries)
	slices.SortStableFunc(out, func(x, y Runtime) int {
		return cmp.Compare(y.Days, x.Days)
	})
	return out
}
