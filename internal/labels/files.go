package labels

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	securejoin "github.com/cyphar/filepath-securejoin"

	"github.com/firefly-engineering/rackline/internal/allocate"
)

// PDFName returns the label file name for an input file, scoped to one
// station when station splitting is active.
func PDFName(inputPath, station string) string {
	stem := inputStem(inputPath)
	if station != "" {
		return fmt.Sprintf("%s-%s-labels.pdf", stem, fileNameSafe(station))
	}
	return stem + "-labels.pdf"
}

// CSVName returns the located-table file name for an input file.
func CSVName(inputPath string) string {
	return inputStem(inputPath) + "-locations.csv"
}

func inputStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// fileNameSafe flattens untrusted spreadsheet values into file name
// characters. Path separators never survive.
func fileNameSafe(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-' || r == '_' || r == '.':
			return r
		default:
			return '-'
		}
	}, s)
}

// WritePDF renders pages into dir, creating it if needed.
func WritePDF(dir, name string, pages []Page, format Format) error {
	path, err := outputPath(dir, name)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	if err := Render(f, pages, format); err != nil {
		f.Close()
		return fmt.Errorf("failed to render %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}

	return nil
}

// WriteCSV writes the located table into dir, creating it if needed.
func WriteCSV(dir, name string, result *allocate.Result, includeUnplaced bool) error {
	path, err := outputPath(dir, name)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	if err := ExportCSV(f, result, includeUnplaced); err != nil {
		f.Close()
		return fmt.Errorf("failed to export %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}

	return nil
}

// outputPath joins an output file name under the output directory.
// Station-derived names originate in spreadsheet cells, so the join is
// the secure variant.
func outputPath(dir, name string) (string, error) {
	path, err := securejoin.SecureJoin(dir, name)
	if err != nil {
		return "", fmt.Errorf("invalid output name %q: %w", name, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	return path, nil
}
