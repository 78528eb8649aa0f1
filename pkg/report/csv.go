package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"

	"github.com/hinananoha/booth-order-list/internal/fsutil"
)

// EncodeCSV writes table to w as Shift-JIS CSV with CRLF line endings. A rune
// that has no Shift-JIS form fails the write.
func EncodeCSV(w io.Writer, table *Table) error {
	enc := transform.NewWriter(w, japanese.ShiftJIS.NewEncoder())

	cw := csv.NewWriter(enc)
	cw.UseCRLF = true

	if err := cw.Write(table.Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, rec := range table.Rows {
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write row %s: %w", rec[0], err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode shift_jis: %w", err)
	}
	return nil
}

// WriteCSV writes table to path. The data goes to a temporary file in the same
// directory that replaces path only once it is complete, so path never holds a
// partial table.
func WriteCSV(path string, table *Table) (err error) {
	mode, err := fsutil.FileMode(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}

	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(tmp)
		}
	}()

	if err = EncodeCSV(f, table); err != nil {
		return err
	}
	if err = f.Sync(); err != nil {
		return fmt.Errorf("sync csv: %w", err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("close csv: %w", err)
	}
	if err = os.Chmod(tmp, mode); err != nil {
		return fmt.Errorf("chmod csv: %w", err)
	}
	if err = os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
