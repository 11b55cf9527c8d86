package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ginjaninja78/sales-data-cleaner/internal/types"
)

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")

	if err := EnsureDir(dir); err != nil {
		t.Fatalf("EnsureDir failed: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Fatalf("directory not created: %v", err)
	}

	// Second call on an existing directory is a no-op.
	if err := EnsureDir(dir); err != nil {
		t.Errorf("EnsureDir on existing dir failed: %v", err)
	}
}

func TestArchiveInput(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "sales.csv")
	if err := os.WriteFile(inputPath, []byte("P1,Widget,10.00,US\n"), 0644); err != nil {
		t.Fatalf("writing input: %v", err)
	}
	archiveDir := filepath.Join(dir, "archive")

	archived, err := ArchiveInput(inputPath, archiveDir)
	if err != nil {
		t.Fatalf("ArchiveInput failed: %v", err)
	}

	if _, err := os.Stat(inputPath); !os.IsNotExist(err) {
		t.Error("input file still present after archiving")
	}
	base := filepath.Base(archived)
	if !strings.HasPrefix(base, "sales_") || !strings.HasSuffix(base, ".csv") {
		t.Errorf("archived name = %q, want sales_<timestamp>_<uuid>.csv", base)
	}
	data, err := os.ReadFile(archived)
	if err != nil {
		t.Fatalf("reading archived file: %v", err)
	}
	if string(data) != "P1,Widget,10.00,US\n" {
		t.Errorf("archived content = %q, changed during move", data)
	}
}

func TestArchiveInputMissingFile(t *testing.T) {
	dir := t.TempDir()
	if _, err := ArchiveInput(filepath.Join(dir, "missing.csv"), filepath.Join(dir, "archive")); err == nil {
		t.Fatal("ArchiveInput of missing file succeeded, want error")
	}
}

func TestWriteWarningLog(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "warnings")

	skipped := []types.SkippedRow{
		{Line: 3, Value: "abc", Reason: "could not convert price to number"},
		{Line: 7, Reason: "expected 4 fields, got 2"},
	}

	logPath, err := WriteWarningLog(dir, "sales.csv", skipped)
	if err != nil {
		t.Fatalf("WriteWarningLog failed: %v", err)
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	text := string(data)

	if !strings.Contains(text, "skipped rows: 2") {
		t.Errorf("log missing count line:\n%s", text)
	}
	if !strings.Contains(text, `row 3: could not convert price to number ("abc")`) {
		t.Errorf("log missing value row:\n%s", text)
	}
	if !strings.Contains(text, "row 7: expected 4 fields, got 2") {
		t.Errorf("log missing structural row:\n%s", text)
	}
}
