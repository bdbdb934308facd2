package export

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ris-pipeline/app/models"
)

func TestWriteCleanedCSV(t *testing.T) {
	dir := t.TempDir()

	records := []*models.ProcessedRecord{
		{
			City:        "臺北市",
			District:    "大安區",
			FullAddress: "臺北市大安區信義路四段100巷5弄10號3樓之1",
			AddressParts: models.AddressParts{
				City: "臺北市", District: "大安區",
				Road: "信義路", Section: "四段",
				Lane: "100", Alley: "5", Number: "10",
				Floor: "3", FloorDash: "1",
				RawAddress: "臺北市大安區信義路四段100巷5弄10號3樓之1",
			},
			AssignmentDate:    time.Date(2025, time.December, 30, 0, 0, 0, 0, time.UTC),
			AssignmentDateROC: "114-12-30",
			AssignmentType:    "門牌初編",
		},
	}

	path, err := WriteCleanedCSV(records, "20251230_120000", dir)
	if err != nil {
		t.Fatalf("WriteCleanedCSV: %v", err)
	}
	if filepath.Base(path) != "cleaned_addresses_20251230_120000.csv" {
		t.Errorf("unexpected file name %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}) {
		t.Error("file should start with a UTF-8 BOM")
	}

	rows, err := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF}))).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected header + 1 row, got %d rows", len(rows))
	}
	if got := strings.Join(rows[0], ","); got != strings.Join(cleanedHeader, ",") {
		t.Errorf("header mismatch: %s", got)
	}
	if rows[1][0] != "臺北市" || rows[1][12] != "2025-12-30" || rows[1][13] != "114-12-30" {
		t.Errorf("row mismatch: %v", rows[1])
	}
}

func TestWriteQuarantineCSV(t *testing.T) {
	dir := t.TempDir()

	records := []*models.QuarantineRecord{
		{
			RawData: models.RawRecord{
				"full_address":  "信義路四段100巷",
				"register_date": "114-01-01",
				"register_type": "門牌初編",
			},
			ErrorType:       models.ErrorInvalidAddress,
			ValidationError: "Cannot parse address: 信義路四段100巷",
		},
	}

	path, err := WriteQuarantineCSV(records, "20251230_120000", dir)
	if err != nil {
		t.Fatalf("WriteQuarantineCSV: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	rows, err := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF}))).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected header + 1 row, got %d rows", len(rows))
	}
	// The raw input fields go out verbatim for re-processing.
	if rows[1][0] != "INVALID_ADDRESS" || rows[1][2] != "信義路四段100巷" {
		t.Errorf("row mismatch: %v", rows[1])
	}
}
