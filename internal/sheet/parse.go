package sheet

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"
)

// Row is one parsed spreadsheet row. Line is the 1-based line the row starts on.
type Row struct {
	Line   int
	Fields []string
}

// Table describes the layout of an exported sheet.
type Table struct {
	HeaderRows int
	MinColumns int
}

// Parsed holds the data rows of a sheet. Skipped counts rows dropped for
// being malformed or too short; header rows are not counted.
type Parsed struct {
	Rows    []Row
	Skipped int
}

func newReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true
	return cr
}

// ParseLine splits a single CSV line into trimmed fields. Quoted fields may
// contain commas and "" escapes.
func ParseLine(line string) ([]string, error) {
	record, err := newReader(strings.NewReader(line)).Read()
	if errors.Is(err, io.EOF) {
		return []string{""}, nil
	}
	if err != nil {
		return nil, err
	}
	return trimFields(record), nil
}

// Parse reads the whole export. The first HeaderRows physical lines are
// dropped whether blank or not, later blank lines are ignored. A quoted cell
// may span lines only when its closing quote is found; a row whose quote
// never closes is counted in Skipped and parsing resumes on the next line.
func (t Table) Parse(text string) Parsed {
	var out Parsed
	lines := splitLines(strings.TrimPrefix(text, "\ufeff"))
	for i := max(t.HeaderRows, 0); i < len(lines); {
		if strings.TrimSpace(lines[i]) == "" {
			i++
			continue
		}
		last, ok := recordEnd(lines, i)
		if !ok {
			out.Skipped++
			i++
			continue
		}
		record, err := newReader(strings.NewReader(strings.Join(lines[i:last+1], "\n"))).Read()
		if err != nil || len(record) < t.MinColumns {
			out.Skipped++
		} else {
			out.Rows = append(out.Rows, Row{Line: i + 1, Fields: trimFields(record)})
		}
		i = last + 1
	}
	return out
}

func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// recordEnd returns the index of the line on which the record starting at
// lines[start] ends.
func recordEnd(lines []string, start int) (int, bool) {
	quoted := false
	for i := start; i < len(lines); i++ {
		var ok bool
		if quoted, ok = scanQuotes(lines[i], quoted); !ok {
			return 0, false
		}
		if !quoted {
			return i, true
		}
	}
	return 0, false
}

// scanQuotes walks one line and reports whether it ends inside a quoted cell.
// A closing quote must be followed by a separator or the end of the line.
func scanQuotes(line string, quoted bool) (bool, bool) {
	fieldStart := !quoted
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case quoted:
			if c != '"' {
				continue
			}
			if i+1 < len(line) && line[i+1] == '"' {
				i++
				continue
			}
			if i+1 < len(line) && line[i+1] != ',' {
				return false, false
			}
			quoted = false
		case c == ',':
			fieldStart = true
		case fieldStart && (c == ' ' || c == '\t'):
		case fieldStart && c == '"':
			quoted, fieldStart = true, false
		default:
			fieldStart = false
		}
	}
	return quoted, true
}

func trimFields(record []string) []string {
	fields := make([]string, len(record))
	for i, f := range record {
		fields[i] = strings.TrimSpace(f)
	}
	return fields
}

// Field returns fields[i], or "" when the row is shorter.
func Field(fields []string, i int) string {
	if i < 0 || i >= len(fields) {
		return ""
	}
	return fields[i]
}
