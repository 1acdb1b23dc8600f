package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"strings"
	"testing"
)

// captureStdout replaces os.Stdout with a pipe, calls f, then returns the
// captured output and restores os.Stdout. It is NOT safe for parallel use
// because os.Stdout is a package-level variable.
func captureStdout(t *testing.T, f func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	orig := os.Stdout
	os.Stdout = w

	done := make(chan struct{})
	var buf bytes.Buffer
	go func() {
		io.Copy(&buf, r)
		close(done)
	}()

	f()

	w.Close()
	<-done
	os.Stdout = orig
	r.Close()
	return buf.String()
}

func TestFormatJSON(t *testing.T) {
	type sample struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	v := sample{ID: "0001", Name: "Maria Soto"}

	got := captureStdout(t, func() { formatJSON(v) })

	var out sample
	if err := json.Unmarshal([]byte(got), &out); err != nil {
		t.Fatalf("output is not valid JSON: %v\noutput: %s", err, got)
	}
	if out.ID != "0001" || out.Name != "Maria Soto" {
		t.Errorf("got %+v", out)
	}
	if !strings.Contains(got, "\n") {
		t.Errorf("expected indented JSON but got: %s", got)
	}
}

func TestFormatTable(t *testing.T) {
	headers := []string{"ID", "NAME", "AREA"}
	rows := [][]string{
		{"0001", "Maria Soto", "Porteria"},
		{"2", "Juan", "Bodega Central"},
	}

	got := captureStdout(t, func() { formatTable(headers, rows) })
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")

	// Header, separator, two rows.
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d:\n%s", len(lines), got)
	}
	for _, h := range headers {
		if !strings.Contains(lines[0], h) {
			t.Errorf("header line missing %q: %s", h, lines[0])
		}
	}
	sep := strings.TrimSpace(lines[1])
	for _, ch := range sep {
		if ch != '-' && ch != ' ' {
			t.Errorf("separator contains unexpected char %q: %s", ch, lines[1])
		}
	}
	if !strings.Contains(lines[3], "Bodega Central") {
		t.Errorf("row 1 missing area: %s", lines[3])
	}
}

func TestFormatTableEmpty(t *testing.T) {
	got := captureStdout(t, func() { formatTable([]string{"ID", "NAME"}, nil) })
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header and separator only, got %d lines:\n%s", len(lines), got)
	}
}

func TestFormatTableWidthPadding(t *testing.T) {
	rows := [][]string{
		{"short"},
		{"a-much-longer-value"},
	}
	got := captureStdout(t, func() { formatTable([]string{"ID"}, rows) })
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) < 4 {
		t.Fatalf("expected at least 4 lines, got %d", len(lines))
	}
	if len(lines[2]) != len(lines[3]) {
		t.Errorf("row widths differ: %d vs %d\n%s\n%s", len(lines[2]), len(lines[3]), lines[2], lines[3])
	}
}

func TestOutputQuiet(t *testing.T) {
	flagFmt = "quiet"
	got := captureStdout(t, func() { output(map[string]string{"k": "v"}, "0042") })
	if strings.TrimRight(got, "\n") != "0042" {
		t.Errorf("got %q, want 0042", got)
	}
}

func TestOutputJSON(t *testing.T) {
	flagFmt = "json"
	got := captureStdout(t, func() { output(map[string]string{"key": "val"}, "ignored") })

	var out map[string]string
	if err := json.Unmarshal([]byte(got), &out); err != nil {
		t.Fatalf("expected JSON output: %v\noutput: %s", err, got)
	}
	if out["key"] != "val" {
		t.Errorf("got %q", out["key"])
	}
}

func TestVersionString(t *testing.T) {
	origCommit, origDate := commit, buildDate
	commit, buildDate = "", ""
	defer func() { commit, buildDate = origCommit, origDate }()

	s := versionString()
	if !strings.HasSuffix(s, "-dev") {
		t.Errorf("expected -dev suffix for dev build, got %q", s)
	}
}

func TestVersionStringRelease(t *testing.T) {
	origCommit, origDate := commit, buildDate
	commit, buildDate = "abc1234", "2026-01-01"
	defer func() { commit, buildDate = origCommit, origDate }()

	s := versionString()
	if !strings.Contains(s, "abc1234") || !strings.Contains(s, "2026-01-01") {
		t.Errorf("version string missing build info: %q", s)
	}
}
