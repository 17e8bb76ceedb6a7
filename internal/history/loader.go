package history

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/parthdave/couriersim/internal/models"
)

// Column headers of the historical delivery log.
const (
	colName    = "Name"
	colDay     = "Day of Delivery Attempt"
	colTime    = "Time"
	colSize    = "Package Size"
	colOutcome = "Delivery Status"
)

// LoadRecords reads the historical delivery log from a CSV file.
func LoadRecords(filePath string) ([]models.DeliveryRecord, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open history file: %w", err)
	}
	defer file.Close()

	return ReadRecords(file)
}

// ReadRecords parses delivery log rows from CSV data. Columns are resolved
// by header name so extra columns are ignored.
func ReadRecords(r io.Reader) ([]models.DeliveryRecord, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read history header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[h] = i
	}
	for _, required := range []string{colName, colDay, colTime, colOutcome} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("history log missing column %q", required)
		}
	}

	var records []models.DeliveryRecord
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read history row: %w", err)
		}

		rec := models.DeliveryRecord{
			CustomerName: fields[cols[colName]],
			DayOfWeek:    fields[cols[colDay]],
			TimeSlot:     fields[cols[colTime]],
			Outcome:      fields[cols[colOutcome]],
		}
		if i, ok := cols[colSize]; ok {
			rec.PackageSize = fields[i]
		}
		records = append(records, rec)
	}

	return records, nil
}
