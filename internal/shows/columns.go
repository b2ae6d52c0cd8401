package shows

import (
	"fmt"
	"strings"
)

// Header keywords matched case-insensitively as substrings of column names.
const (
	KeywordName     = "name"
	KeywordPremiere = "premiere"
	KeywordEnd      = "end"
)

// Columns holds the field indices of the columns a row is read from.
type Columns struct {
	Name     int
	Premiere int
	End      int
}

// MissingColumnsError lists the header keywords that matched no column.
type MissingColumnsError struct {
	Keywords []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("header has no column matching %s", strings.Join(e.Keywords, ", "))
}

// LocateColumns finds, for each keyword, the first header whose trimmed,
// lowercased text contains it. Scanning is left to right, so with several
// matching headers the leftmost wins.
func LocateColumns(header []string) (Columns, error) {
	norm := make([]string, len(header))
	for i, h := range header {
		norm[i] = strings.ToLower(strings.TrimSpace(h))
	}

	find := func(keyword string) int {
		for i, h := range norm {
			if strings.Contains(h, keyword) {
				return i
			}
		}
		return -1
	}

	cols := Columns{
		Name:     find(KeywordName),
		Premiere: find(KeywordPremiere),
		End:      find(KeywordEnd),
	}

	var missing []string
	if cols.Name < 0 {
		missing = append(missing, KeywordName)
	}
	if cols.Premiere < 0 {
		missing = append(missing, KeywordPremiere)
	}
	if cols.End < 0 {
		missing = append(missing, KeywordEnd)
	}
	if len(missing) > 0 {
		return Columns{}, &MissingColumnsError{Keywords: missing}
	}
	return cols, nil
}
