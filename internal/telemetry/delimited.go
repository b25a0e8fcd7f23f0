package telemetry

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/napolitain/autoresolve/internal/models"
)

// DefaultFile is the telemetry file for batches mixing battle types
const DefaultFile = "random_battles.csv"

// Path returns the telemetry file for a battle type under dir; nil means mixed types
func Path(dir string, kind *models.ScenarioKind) string {
	if kind == nil {
		return filepath.Join(dir, DefaultFile)
	}
	return filepath.Join(dir, kind.DataPath())
}

// DelimitedWriter appends rows to a comma separated file.
// The header is written only when the file is created.
type DelimitedWriter struct {
	file *os.File
	w    *csv.Writer
	rows int
}

// NewDelimitedWriter opens path for appending, creating it and its directory if needed
func NewDelimitedWriter(path string) (*DelimitedWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", filepath.Dir(path), err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	d := &DelimitedWriter{file: f, w: csv.NewWriter(f)}
	if info.Size() == 0 {
		if err := d.w.Write(Columns); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}
	return d, nil
}

// Write appends one row per result
func (d *DelimitedWriter) Write(results []*models.BattleResult) error {
	for _, r := range results {
		if err := d.w.Write(Row(r)); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
		d.rows++
	}
	d.w.Flush()
	return d.w.Error()
}

// Rows returns the number of rows written through this writer
func (d *DelimitedWriter) Rows() int {
	return d.rows
}

// Close flushes and closes the file
func (d *DelimitedWriter) Close() error {
	d.w.Flush()
	if err := d.w.Error(); err != nil {
		d.file.Close()
		return err
	}
	return d.file.Close()
}
