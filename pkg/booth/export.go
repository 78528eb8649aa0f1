package booth

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ExportColumns is the column count of a BOOTH address-printing export.
const ExportColumns = 15

// Column positions used from an export row.
const (
	ColOrderID = 0
	ColStatus  = 3
	ColPlaced  = 4
	ColDetail  = 14
)

// Export is a fully loaded BOOTH order export.
type Export struct {
	Header []string
	Rows   [][]string
}

// ReadExport loads the export at path. The file is decoded as UTF-8 with an
// optional leading byte-order mark.
func ReadExport(path string) (*Export, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrInvalidInput, path, err)
	}
	defer f.Close()

	return DecodeExport(f)
}

// DecodeExport reads an export from r. It fails with ErrInvalidInput when the
// data is empty or the header does not have ExportColumns columns. Data rows
// may have any width; Filter.Keep decides which of them must be complete.
// A bare quote inside an unquoted field is kept as a literal character.
func DecodeExport(r io.Reader) (*Export, error) {
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	cr := csv.NewReader(transform.NewReader(r, dec))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: CSV file is empty or not csv file", ErrInvalidInput)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read header: %v", ErrInvalidInput, err)
	}
	if len(header) != ExportColumns {
		return nil, fmt.Errorf("%w: this csv file is not booth order file: %d columns, want %d",
			ErrInvalidInput, len(header), ExportColumns)
	}

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: read rows: %v", ErrInvalidInput, err)
	}

	return &Export{Header: header, Rows: rows}, nil
}
