package history

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/parthdave/couriersim/internal/models"
)

// SaveRecords writes the delivery log to a CSV file with the canonical
// header, overwriting any existing file.
func SaveRecords(filePath string, records []models.DeliveryRecord) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("create history file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write([]string{colName, colDay, colTime, colSize, colOutcome}); err != nil {
		return fmt.Errorf("write history header: %w", err)
	}
	for _, rec := range records {
		row := []string{rec.CustomerName, rec.DayOfWeek, rec.TimeSlot, rec.PackageSize, rec.Outcome}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write history row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
