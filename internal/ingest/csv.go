// Package ingest loads usage series from CSV exports. Rows whose
// timestamp or kWh value fail to parse are dropped here, before the
// engine ever sees them.
package ingest

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"powertariff/core/coerce"
	"powertariff/core/types"

	"powertariff/internal/errors"
	"powertariff/internal/logging"
)

// ReadCSV reads a usage CSV file. It returns the parsed series and the
// number of dropped rows. The file needs a timestamp column and a kWh
// column, located by header name (case-insensitive) or, without a
// recognizable header, taken as the first two columns.
func ReadCSV(path string) (types.UsageSeries, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, errors.Config("opening usage file", err)
	}
	defer f.Close()

	series, dropped, err := Read(f)
	if err != nil {
		return nil, 0, err
	}

	logging.Info("loaded usage data",
		zap.String("path", path),
		zap.Int("records", len(series)),
		zap.Int("dropped", dropped))
	return series, dropped, nil
}

// Read parses usage CSV from a reader. See ReadCSV.
func Read(r io.Reader) (types.UsageSeries, int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, 0, errors.Parsing("reading usage CSV", err)
	}
	if len(rows) == 0 {
		return types.UsageSeries{}, 0, nil
	}

	tsCol, kwhCol, haveHeader := locateColumns(rows[0])
	if haveHeader {
		rows = rows[1:]
	}

	series := make(types.UsageSeries, 0, len(rows))
	dropped := 0
	for _, row := range rows {
		if tsCol >= len(row) || kwhCol >= len(row) {
			dropped++
			continue
		}
		ts, ok := coerce.Date(row[tsCol])
		if !ok {
			dropped++
			continue
		}
		kwh := coerce.OptionalFloat(row[kwhCol])
		if kwh == nil {
			dropped++
			continue
		}
		series = append(series, types.UsageRecord{Timestamp: ts, KWh: *kwh})
	}
	return series, dropped, nil
}

// locateColumns finds the timestamp and kWh columns from a header row.
// When the first row does not look like a header it is treated as data
// in the default timestamp,kWh column order.
func locateColumns(header []string) (tsCol, kwhCol int, haveHeader bool) {
	tsCol, kwhCol = 0, 1
	for i, cell := range header {
		switch strings.ToLower(strings.TrimSpace(cell)) {
		case "timestamp", "time", "date", "datetime":
			tsCol = i
			haveHeader = true
		case "kwh", "usage", "energy":
			kwhCol = i
			haveHeader = true
		}
	}
	return tsCol, kwhCol, haveHeader
}
