package template

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Write writes the header block followed by each record's raw cells.
// Cells are written verbatim, joined by tabs.
func Write(w io.Writer, header HeaderBlock, records []*ClassRecord) error {
	bw := bufio.NewWriter(w)

	for _, row := range header.Rows() {
		if err := writeLine(bw, row); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}
	for _, rec := range records {
		if err := writeLine(bw, rec.Cells); err != nil {
			return fmt.Errorf("failed to write record %s: %w", rec.ID, err)
		}
	}

	return bw.Flush()
}

func writeLine(bw *bufio.Writer, cells []string) error {
	if _, err := bw.WriteString(strings.Join(cells, "\t")); err != nil {
		return err
	}
	return bw.WriteByte('\n')
}

// WriteFile writes a template to path, creating parent directories.
// The content is written to a temporary file in the same directory and
// renamed into place, so readers never observe a partial file.
func WriteFile(path string, header HeaderBlock, records []*ClassRecord) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = Write(tmp, header, records); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", tmp.Name(), err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to move template into place: %w", err)
	}
	return nil
}
