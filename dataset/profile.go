package dataset

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// ColumnStats holds the profiling numbers for one column.
type ColumnStats struct {
	Column      string
	UniqueCount int
	NullCount   int
}

// Profile writes the per-column artifacts: one <column>_values.txt file with
// the sorted unique non-null values of each column, plus column_statistics.csv
// summarising unique and null counts. Returns the stats in column order.
func Profile(frame *Frame, artifactsDir string) ([]ColumnStats, error) {
	if err := os.MkdirAll(artifactsDir, 0755); err != nil {
		return nil, errors.Wrapf(err, "cannot create artifacts directory %s", artifactsDir)
	}

	stats := make([]ColumnStats, 0, len(frame.Columns))
	for _, column := range frame.Columns {
		values := frame.UniqueValues(column)
		stats = append(stats, ColumnStats{
			Column:      column,
			UniqueCount: len(values),
			NullCount:   frame.NullCount(column),
		})

		path := filepath.Join(artifactsDir, artifactFilename(column))
		if err := writeValues(values, path); err != nil {
			return nil, err
		}
	}

	statsPath := filepath.Join(artifactsDir, "column_statistics.csv")
	if err := writeStats(stats, statsPath); err != nil {
		return nil, err
	}
	return stats, nil
}

// artifactFilename derives the values-file name from a column label: lower
// case, spaces and slashes replaced by underscores.
func artifactFilename(column string) string {
	name := strings.ToLower(column)
	name = strings.Replace(name, " ", "_", -1)
	name = strings.Replace(name, "/", "_", -1)
	return name + "_values.txt"
}

func writeValues(values []string, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "cannot create values file %s", path)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	for _, value := range values {
		fmt.Fprintln(w, value)
	}
	if err := w.Flush(); err != nil {
		return errors.Wrapf(err, "cannot write values file %s", path)
	}
	return nil
}

func writeStats(stats []ColumnStats, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "cannot create statistics file %s", path)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	fmt.Fprintln(w, "Column,Unique Values,Null Count")
	for _, s := range stats {
		fmt.Fprintf(w, "%s,%d,%d\n", s.Column, s.UniqueCount, s.NullCount)
	}
	if err := w.Flush(); err != nil {
		return errors.Wrapf(err, "cannot write statistics file %s", path)
	}
	return nil
}
