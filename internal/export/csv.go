package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ris-pipeline/app/models"
)

// Column orders mirror the downstream spreadsheet consumers.
var cleanedHeader = []string{
	"city", "district", "full_address",
	"village", "neighborhood",
	"road", "section", "lane", "alley", "number", "floor", "floor_dash",
	"assignment_date", "assignment_date_roc", "assignment_type",
}

var quarantineHeader = []string{
	"error_type", "validation_error",
	"full_address", "register_date", "register_type",
}

// utf8BOM makes Excel open the CJK columns with the right encoding.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// WriteCleanedCSV writes processed records to
// {outputDir}/cleaned_addresses_{timestamp}.csv and returns the file path.
func WriteCleanedCSV(records []*models.ProcessedRecord, timestamp, outputDir string) (string, error) {
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, []string{
			rec.City,
			rec.District,
			rec.FullAddress,
			rec.AddressParts.Village,
			rec.AddressParts.Neighborhood,
			rec.AddressParts.Road,
			rec.AddressParts.Section,
			rec.AddressParts.Lane,
			rec.AddressParts.Alley,
			rec.AddressParts.Number,
			rec.AddressParts.Floor,
			rec.AddressParts.FloorDash,
			rec.AssignmentDate.Format("2006-01-02"),
			rec.AssignmentDateROC,
			rec.AssignmentType,
		})
	}
	name := fmt.Sprintf("cleaned_addresses_%s.csv", timestamp)
	return writeCSV(outputDir, name, cleanedHeader, rows)
}

// WriteQuarantineCSV writes quarantined records to
// {outputDir}/quarantine_{timestamp}.csv and returns the file path. The raw
// input fields go out verbatim so failed records can be re-processed.
func WriteQuarantineCSV(records []*models.QuarantineRecord, timestamp, outputDir string) (string, error) {
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, []string{
			string(rec.ErrorType),
			rec.ValidationError,
			rec.RawData["full_address"],
			rec.RawData["register_date"],
			rec.RawData["register_type"],
		})
	}
	name := fmt.Sprintf("quarantine_%s.csv", timestamp)
	return writeCSV(outputDir, name, quarantineHeader, rows)
}

func writeCSV(outputDir, name string, header []string, rows [][]string) (string, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(outputDir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := f.Write(utf8BOM); err != nil {
		return "", err
	}

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return "", err
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return path, f.Close()
}
