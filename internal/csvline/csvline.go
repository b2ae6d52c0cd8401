// Package csvline tokenizes single CSV lines and escapes output fields.
//
// The splitter is deliberately lenient: it never fails. A bare quote in
// the middle of a field toggles quoting and an unterminated quote absorbs
// the remainder of the line into the current field.
package csvline

import "strings"

// Split breaks one line into fields. Commas inside double quotes are
// literal, and a doubled quote inside a quoted field yields one literal
// quote. Trailing "\n" and then "\r" characters are removed from the last
// field; no other trimming happens.
func Split(line string) []string {
	var (
		fields   []string
		field    strings.Builder
		inQuotes bool
	)

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '"':
			if inQuotes && i+1 < len(line) && line[i+1] == '"' {
				field.WriteByte('"')
				i++
				continue
			}
			inQuotes = !inQuotes
		case c == ',' && !inQuotes:
			fields = append(fields, field.String())
			field.Reset()
		default:
			field.WriteByte(c)
		}
	}

	last := strings.TrimRight(field.String(), "\n")
	last = strings.TrimRight(last, "\r")
	return append(fields, last)
}

// Quote prepares a field for output. Fields containing a double quote are
// wrapped in quotes with every internal quote doubled; fields containing a
// comma are wrapped in quotes; anything else is returned unchanged.
func Quote(field string) string {
	switch {
	case strings.Contains(field, `"`):
		return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
	case strings.Contains(field, ","):
		return `"` + field + `"`
	default:
		return field
	}
}
