// Package csvfile loads temperature log CSV files into domain datasets.
package csvfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/couchcryptid/temperature-analyzer/internal/domain"
)

// Load reads the CSV file at path and returns a dataset sorted ascending by
// timestamp, stable on ties. A missing required column or an unparseable
// timestamp fails the whole load; bad temperature cells become missing
// readings instead.
func Load(path string, logger *slog.Logger) (domain.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open temperature log: %w", err)
	}
	defer f.Close()

	ds, err := load(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	logger.Info("loaded temperature records", "path", path, "count", len(ds))
	return ds, nil
}

func load(r io.Reader) (domain.Dataset, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	// Rows may carry extra columns beyond the required three.
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.New("empty file, header row required")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols, err := domain.ResolveColumns(header)
	if err != nil {
		return nil, err
	}

	var ds domain.Dataset
	for row := 2; ; row++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", row, err)
		}

		reading, err := domain.ParseRecord(record, cols)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		ds = append(ds, reading)
	}

	ds.SortByTimestamp()
	return ds, nil
}
