package dataset

import (
	"encoding/csv"
	"os"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Frame is a loaded tabular dataset. Cells hold their raw string value, with
// "" standing for a null.
type Frame struct {
	Columns []string
	Rows    []Row
}

// Row maps column name to cell value.
type Row map[string]string

// Value returns the cell for the named column and whether it is non-null.
func (r Row) Value(column string) (string, bool) {
	v, ok := r[column]
	if !ok || strings.TrimSpace(v) == "" {
		return "", false
	}
	return v, true
}

// HasColumn reports whether the frame carries the named column.
func (f *Frame) HasColumn(column string) bool {
	for _, c := range f.Columns {
		if c == column {
			return true
		}
	}
	return false
}

// UniqueValues returns the sorted distinct non-null values of a column.
func (f *Frame) UniqueValues(column string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, row := range f.Rows {
		v, ok := row.Value(column)
		if !ok || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// NullCount returns the number of null cells in a column.
func (f *Frame) NullCount(column string) int {
	count := 0
	for _, row := range f.Rows {
		if _, ok := row.Value(column); !ok {
			count++
		}
	}
	return count
}

// Load reads a CSV file into a Frame. When the default comma delimiter fails
// to parse, or yields a single column whose header embeds semicolons, the
// file is re-read with ';'.
func Load(path string) (*Frame, error) {
	frame, err := load(path, ',')
	if err == nil && !(len(frame.Columns) == 1 && strings.Contains(frame.Columns[0], ";")) {
		return frame, nil
	}
	frame, altErr := load(path, ';')
	if altErr != nil {
		if err != nil {
			return nil, errors.Wrapf(err, "cannot load %s with either delimiter", path)
		}
		return nil, errors.Wrapf(altErr, "cannot load %s with either delimiter", path)
	}
	return frame, nil
}

func load(path string, delimiter rune) (*Frame, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot open data file %s", path)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = delimiter
	// Tolerate ragged rows; missing cells read as null.
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "cannot parse data file %s", path)
	}
	if len(records) == 0 {
		return nil, errors.Errorf("data file %s is empty", path)
	}

	frame := &Frame{Columns: records[0]}
	for _, record := range records[1:] {
		row := make(Row, len(frame.Columns))
		for i, column := range frame.Columns {
			if i < len(record) {
				row[column] = record[i]
			}
		}
		frame.Rows = append(frame.Rows, row)
	}
	return frame, nil
}
