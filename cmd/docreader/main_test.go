package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ukaji3/docreader-go/internal/fixtures"
)

// execute runs a freshly built root command and returns stdout. Building
// the command resets every flag variable to its default.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("DOCREADER_LOG_LEVEL", "error")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestPDFCommand(t *testing.T) {
	path, err := fixtures.WritePDF(t.TempDir(), "sample.pdf", fixtures.SamplePages...)
	if err != nil {
		t.Fatalf("Failed to write PDF: %v", err)
	}

	out, err := execute(t, "pdf", path, "--pages")
	if err != nil {
		t.Fatalf("pdf --pages failed: %v", err)
	}
	var pages []map[string]interface{}
	if err := json.Unmarshal([]byte(out), &pages); err != nil {
		t.Fatalf("Invalid JSON output: %v\n%s", err, out)
	}
	if len(pages) != 2 {
		t.Errorf("Expected 2 pages, got %d", len(pages))
	}

	out, err = execute(t, "pdf", path, "--format", "text")
	if err != nil {
		t.Fatalf("pdf --format text failed: %v", err)
	}
	if !strings.Contains(out, "Claude Code Features Showcase") {
		t.Errorf("Unexpected text output: %q", out)
	}
}

func TestXLSXCommand(t *testing.T) {
	dir := t.TempDir()
	path, err := fixtures.WriteSampleWorkbook(dir, "sample.xlsx")
	if err != nil {
		t.Fatalf("Failed to write workbook: %v", err)
	}

	out, err := execute(t, "xlsx", path, "--sheets", "--format", "text")
	if err != nil {
		t.Fatalf("xlsx --sheets failed: %v", err)
	}
	for _, want := range []string{
		"=== Employees (5 rows, 5 cols) ===",
		"=== Projects (4 rows, 4 cols) ===",
		"=== Summary (4 rows, 2 cols) ===",
		`[1, "Alice Smith", "Engineering", 95000, 2020-01-15T00:00:00Z]`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in output:\n%s", want, out)
		}
	}

	outFile := filepath.Join(dir, "out.yaml")
	if _, err := execute(t, "xlsx", path, "--format", "yaml", "-o", outFile); err != nil {
		t.Fatalf("xlsx --format yaml failed: %v", err)
	}
	data, err := os.ReadFile(outFile)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	if !strings.HasPrefix(string(data), "Employees:") {
		t.Errorf("Expected Employees first, got:\n%s", data)
	}
}

func TestCommandErrors(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nonexistent.pdf")
	if _, err := execute(t, "pdf", missing); err == nil || !strings.Contains(err.Error(), "PDF file not found") {
		t.Errorf("Expected not found error, got %v", err)
	}

	if _, err := execute(t, "xlsx", missing, "--format", "xml"); err == nil {
		t.Error("Expected error for missing file")
	}

	path, err := fixtures.WritePDF(t.TempDir(), "sample.pdf", "x")
	if err != nil {
		t.Fatalf("Failed to write PDF: %v", err)
	}
	if _, err := execute(t, "pdf", path, "--format", "xml"); err == nil || !strings.Contains(err.Error(), "invalid format") {
		t.Errorf("Expected invalid format error, got %v", err)
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if strings.TrimSpace(out) != "docreader 0.1.0" {
		t.Errorf("Unexpected version output %q", out)
	}
}
