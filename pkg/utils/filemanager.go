// =============================================================================
// Sales Data Cleaner - File Manager Utility
// =============================================================================
//
// This module provides file management utilities for the cleaner:
//   - Directory management
//   - Input archival (moving processed files out of the way)
//   - Warning log generation
//
// ARCHIVAL STRATEGY:
//   - Input files are moved to the archive directory after successful
//     processing, renamed with a timestamp and a UUID so repeated runs on
//     same-named exports never collide.
//   - Failed runs leave the input file where it was.
//
// =============================================================================

package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ginjaninja78/sales-data-cleaner/internal/types"
)

// EnsureDir creates a directory (and any parents) if it does not exist.
func EnsureDir(dir string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// ArchiveInput moves a processed input file into the archive directory and
// returns its new path.
//
// The archived name is "<base>_<timestamp>_<uuid><ext>", following the
// converter's naming scheme for generated files.
func ArchiveInput(inputPath, archiveDir string) (string, error) {
	if err := EnsureDir(archiveDir); err != nil {
		return "", err
	}

	base := filepath.Base(inputPath)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	archived := fmt.Sprintf("%s_%s_%s%s",
		stem,
		time.Now().Format("20060102_150405"),
		uuid.New().String(),
		ext,
	)

	archivePath := filepath.Join(archiveDir, archived)
	if err := os.Rename(inputPath, archivePath); err != nil {
		return "", fmt.Errorf("failed to archive input file: %w", err)
	}

	return archivePath, nil
}

// WriteWarningLog writes the skipped rows of a run to a log file in the
// given directory and returns the file's path. Called only when at least
// one row was skipped.
func WriteWarningLog(dir string, inputPath string, skipped []types.SkippedRow) (string, error) {
	if err := EnsureDir(dir); err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "input: %s\n", inputPath)
	fmt.Fprintf(&b, "time: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(&b, "skipped rows: %d\n\n", len(skipped))
	for _, s := range skipped {
		if s.Value != "" {
			fmt.Fprintf(&b, "row %d: %s (%q)\n", s.Line, s.Reason, s.Value)
		} else {
			fmt.Fprintf(&b, "row %d: %s\n", s.Line, s.Reason)
		}
	}

	name := fmt.Sprintf("warnings_%s_%s.log",
		time.Now().Format("20060102_150405"),
		uuid.New().String(),
	)

	logPath := filepath.Join(dir, name)
	if err := os.WriteFile(logPath, []byte(b.String()), 0644); err != nil {
		return "", fmt.Errorf("failed to write warning log: %w", err)
	}

	return logPath, nil
}
