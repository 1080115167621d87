package export

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"ops-dashboard/internal/db"
	"ops-dashboard/internal/inventory"

	"github.com/xuri/excelize/v2"
)

var (
	ErrUnknownFormat = errors.New("unknown export format")
	ErrWriteFailed   = errors.New("export write failed")
	ErrReadFailed    = errors.New("workbook read failed")
)

type Format string

const (
	CSV  Format = "csv"
	XLSX Format = "xlsx"
)

const sheetName = "Export"

func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", CSV:
		return CSV, nil
	case XLSX:
		return XLSX, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

func (f Format) ContentType() string {
	if f == XLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv; charset=utf-8"
}

// Filename is the download name for an export of source, e.g. devices-export.csv.
func (f Format) Filename(source string) string {
	return source + "-export." + string(f)
}

func DeviceRows(recs []db.DeviceRecord) [][]string {
	rows := make([][]string, 0, len(recs))
	for _, rec := range recs {
		rows = append(rows, inventory.DeviceRow(rec))
	}
	return rows
}

func TopUpRows(recs []db.PhoneTopUp) [][]string {
	rows := make([][]string, 0, len(recs))
	for _, rec := range recs {
		rows = append(rows, inventory.TopUpRow(rec))
	}
	return rows
}

// Write renders header and rows in the given format.
func Write(w io.Writer, format Format, header []string, rows [][]string) error {
	switch format {
	case CSV:
		return WriteCSV(w, header, rows)
	case XLSX:
		return WriteXLSX(w, header, rows)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
}

// WriteCSV quotes every value so spreadsheet tools never reinterpret
// numbers, dates or leading zeros.
func WriteCSV(w io.Writer, header []string, rows [][]string) error {
	const fn = "export:WriteCSV"
	bw := bufio.NewWriter(w)
	writeRecord(bw, header)
	for _, row := range rows {
		writeRecord(bw, row)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrWriteFailed, err)
	}
	return nil
}

func writeRecord(bw *bufio.Writer, fields []string) {
	for i, f := range fields {
		if i > 0 {
			bw.WriteByte(',')
		}
		bw.WriteByte('"')
		bw.WriteString(strings.ReplaceAll(f, `"`, `""`))
		bw.WriteByte('"')
	}
	bw.WriteByte('\n')
}

func WriteXLSX(w io.Writer, header []string, rows [][]string) error {
	const fn = "export:WriteXLSX"
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrWriteFailed, err)
	}
	for i, row := range append([][]string{header}, rows...) {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("%s:%w:%w", fn, ErrWriteFailed, err)
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return fmt.Errorf("%s:%w:%w", fn, ErrWriteFailed, err)
		}
	}
	if err := f.Write(w); err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrWriteFailed, err)
	}
	return nil
}

// XLSXToCSV renders the first worksheet of a workbook as CSV text so an
// uploaded workbook can go through the same import path as a CSV file.
func XLSXToCSV(r io.Reader) (string, error) {
	const fn = "export:XLSXToCSV"
	f, err := excelize.OpenReader(r)
	if err != nil {
		return "", fmt.Errorf("%s:%w:%w", fn, ErrReadFailed, err)
	}
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return "", fmt.Errorf("%s:%w:%w", fn, ErrReadFailed, err)
	}
	width := 0
	for _, row := range rows {
		width = max(width, len(row))
	}

	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	for _, row := range rows {
		// GetRows trims trailing empty cells.
		padded := make([]string, width)
		copy(padded, row)
		if err := cw.Write(padded); err != nil {
			return "", fmt.Errorf("%s:%w:%w", fn, ErrReadFailed, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return "", fmt.Errorf("%s:%w:%w", fn, ErrReadFailed, err)
	}
	return buf.String(), nil
}
