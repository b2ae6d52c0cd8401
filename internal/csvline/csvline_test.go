package csvline

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{"simple", "a,b,c", []string{"a", "b", "c"}},
		{"quoted comma", `a,"b,c",d`, []string{"a", "b,c", "d"}},
		{"escaped quotes", `"he said ""hi"""`, []string{`he said "hi"`}},
		{"trailing newline", "a,b\n", []string{"a", "b"}},
		{"trailing crlf", "a,b\r\n", []string{"a", "b"}},
		{"only last field stripped", "a\r,b\r\n", []string{"a\r", "b"}},
		{"spaces kept", " a , b ", []string{" a ", " b "}},
		{"empty line", "", []string{""}},
		{"empty fields", ",,", []string{"", "", ""}},
		{"trailing comma", "a,", []string{"a", ""}},
		{"empty quoted field", `"",x`, []string{"", "x"}},
		{"unterminated quote", `a,"b,c`, []string{"a", "b,c"}},
		{"bare quote mid field", `ab"c,d"e`, []string{"abc,de"}},
		{"doubled quote outside quotes toggles twice", `a""b`, []string{"ab"}},
		{"utf8 passthrough", "Café,Señor", []string{"Café", "Señor"}},
		{
			"show row",
			`"Law & Order: Special Victims Unit",9/20/1999,,"Drama, Crime"` + "\n",
			[]string{"Law & Order: Special Victims Unit", "9/20/1999", "", "Drama, Crime"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.line)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Split(%q) mismatch (-want +got):\n%s", tt.line, diff)
			}
		})
	}
}

func TestQuote(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Lost", "Lost"},
		{"", ""},
		{"Law & Order", "Law & Order"},
		{"Crime, Inc.", `"Crime, Inc."`},
		{`The "Office"`, `"The ""Office"""`},
		{`Say "Hi", Bob`, `"Say ""Hi"", Bob"`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Quote(tt.in), "Quote(%q)", tt.in)
	}
}

func TestQuoteThenSplit(t *testing.T) {
	for _, name := range []string{"Plain", "Comma, Show", `Quote "Show"`, `Both "A", B`} {
		line := Quote(name) + ",42\n"
		assert.Equal(t, []string{name, "42"}, Split(line))
	}
}
