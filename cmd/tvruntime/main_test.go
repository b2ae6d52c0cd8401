package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const input = "Show Name,Premiere Date,End Date\n" +
	"Lost,9/22/2004,5/23/2010\n" +
	"Lost,9/22/2004,5/23/2009\n" +
	"Pilot,N/A,\n"

func TestRun_Convert(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.csv")
	out := filepath.Join(dir, "out.csv")
	require.NoError(t, os.WriteFile(in, []byte(input), 0o644))

	code := run([]string{"--no-color", "--config", filepath.Join(dir, "none.yaml"), in, out})
	require.Equal(t, 1, code, "explicit missing config must fail")

	code = run([]string{"--no-color", in, out})
	require.Equal(t, 0, code)

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "Name,RunDays\nLost,2069\n", string(got))
}

func TestRun_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "shows.csv")
	out := filepath.Join(dir, "ranked.csv")
	require.NoError(t, os.WriteFile(in, []byte("Name,Premiere,End\nNow,1/1/2020,\n"), 0o644))

	cfgPath := filepath.Join(dir, "tvruntime.yaml")
	yml := "input: " + in + "\noutput: " + out + "\nfallback_date: \"2020-02-01\"\ncolor: never\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(yml), 0o644))

	require.Equal(t, 0, run([]string{"--config", cfgPath}))

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "Name,RunDays\nNow,31\n", string(got))
}

func TestRun_Failures(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.csv")
	require.NoError(t, os.WriteFile(in, []byte(input), 0o644))

	tests := []struct {
		name string
		args []string
	}{
		{"missing input", []string{"--no-color", filepath.Join(dir, "absent.csv"), filepath.Join(dir, "o1.csv")}},
		{"output equals input", []string{"--no-color", in, in}},
		{"bad fallback", []string{"--no-color", "--fallback-date", "soon", in, filepath.Join(dir, "o2.csv")}},
		{"too many args", []string{"a", "b", "c"}},
		{"unknown flag", []string{"--bogus"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, 1, run(tt.args))
		})
	}
	assert.NoFileExists(t, filepath.Join(dir, "o1.csv"))
	assert.NoFileExists(t, filepath.Join(dir, "o2.csv"))
}

func TestRun_CheckWritesNothing(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.csv")
	out := filepath.Join(dir, "out.csv")
	require.NoError(t, os.WriteFile(in, []byte(input), 0o644))

	assert.Equal(t, 0, run([]string{"--no-color", "--check", in, out}))
	assert.NoFileExists(t, out)
}

func TestRun_FatalDiagnosticsOnStdout(t *testing.T) {
	dir := t.TempDir()
	empty := filepath.Join(dir, "empty.csv")
	require.NoError(t, os.WriteFile(empty, nil, 0o644))
	headerless := filepath.Join(dir, "headerless.csv")
	require.NoError(t, os.WriteFile(headerless, []byte("Title,Aired\nx,1/1/2020\n"), 0o644))
	good := filepath.Join(dir, "good.csv")
	require.NoError(t, os.WriteFile(good, []byte(input), 0o644))

	tests := []struct {
		name string
		in   string
		out  string
		want string
	}{
		{"cannot open input", filepath.Join(dir, "absent.csv"), filepath.Join(dir, "o1.csv"), "cannot open input file"},
		{"empty input", empty, filepath.Join(dir, "o2.csv"), "input CSV is empty"},
		{"missing header", headerless, filepath.Join(dir, "o3.csv"), "header missing name, premiere date, or end date column"},
		{"cannot open output", good, filepath.Join(dir, "no-such-dir", "o4.csv"), "cannot open output file"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var code int
			stdout := captureStdout(t, func() {
				code = run([]string{"--no-color", tt.in, tt.out})
			})
			assert.Equal(t, 1, code)
			assert.Contains(t, stdout, "ERROR")
			assert.Contains(t, stdout, tt.want)
			assert.NoFileExists(t, tt.out)
		})
	}
}

func TestRun_SuccessSummaryOnStdout(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.csv")
	out := filepath.Join(dir, "out.csv")
	require.NoError(t, os.WriteFile(in, []byte(input), 0o644))

	stdout := captureStdout(t, func() {
		require.Equal(t, 0, run([]string{"--no-color", in, out}))
	})
	assert.Contains(t, stdout, "Wrote "+out+" with 1 unique shows.")
}

func TestRun_OutputSymlinkedToInput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.csv")
	link := filepath.Join(dir, "out.csv")
	require.NoError(t, os.WriteFile(in, []byte(input), 0o644))
	if err := os.Symlink(in, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	assert.Equal(t, 1, run([]string{"--no-color", in, link}))

	got, err := os.ReadFile(in)
	require.NoError(t, err)
	assert.Equal(t, input, string(got))
}

func TestAbsPath_ResolvesThroughDirectory(t *testing.T) {
	target := t.TempDir()
	linkDir := filepath.Join(t.TempDir(), "linked")
	if err := os.Symlink(target, linkDir); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	got, err := absPath(filepath.Join(linkDir, "not-yet.csv"))
	require.NoError(t, err)
	want, err := filepath.EvalSymlinks(target)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(want, "not-yet.csv"), got)
}

// captureStdout runs fn with os.Stdout redirected and returns what it wrote.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)

	orig := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	done := make(chan string)
	go func() {
		b, _ := io.ReadAll(r)
		done <- string(b)
	}()

	fn()
	require.NoError(t, w.Close())
	out := <-done
	require.NoError(t, r.Close())
	return strings.TrimSpace(out)
}
