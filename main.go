package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"os"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/ris-pipeline/app/config"
	"github.com/ris-pipeline/app/models"
	"github.com/ris-pipeline/app/services"
	"github.com/ris-pipeline/internal/export"
)

func main() {
	pflag.String("input", "-", "raw records JSON file, - for stdin")
	pflag.String("config", "", "pipeline config YAML file")
	pflag.Int("workers", 0, "override batch worker count")
	pflag.Bool("csv", false, "write cleaned/quarantine CSV files instead of JSON on stdout")
	pflag.String("out", "", "override CSV output directory")
	pflag.Parse()

	// 1. Load configuration
	loadConfig()

	// 2. Init logger
	logger := initLogger()
	defer logger.Sync()

	if path := viper.GetString("config"); path != "" {
		if err := config.Load(path); err != nil {
			logger.Fatal("Cannot read pipeline config", zap.String("path", path), zap.Error(err))
		}
	}
	if w := viper.GetInt("workers"); w > 0 {
		config.C.Batch.Workers = w
	}
	if dir := viper.GetString("out"); dir != "" {
		config.C.Export.OutputDir = dir
	}

	// 3. Read raw records
	records, err := readRecords(viper.GetString("input"))
	if err != nil {
		logger.Fatal("Cannot read input records", zap.Error(err))
	}
	logger.Info("Starting RIS record pipeline",
		zap.Int("records", len(records)),
		zap.Int("workers", config.C.Batch.Workers))

	// 4. Init services
	recordService, err := services.NewRecordService(config.C.Cache.ParseCacheSize, logger)
	if err != nil {
		logger.Fatal("Failed to initialize record service", zap.Error(err))
	}
	batchService := services.NewBatchService(recordService, config.C.Batch.Workers, logger)

	// 5. Process the batch
	var processed []*models.ProcessedRecord
	var quarantined []*models.QuarantineRecord
	if config.C.Batch.Workers > 1 {
		processed, quarantined = batchService.ProcessAllParallel(context.Background(), records)
	} else {
		processed, quarantined = batchService.ProcessAll(records)
	}

	for errType, n := range services.QuarantineTally(quarantined) {
		logger.Info("quarantine tally",
			zap.String("error_type", string(errType)),
			zap.Int("count", n))
	}

	// 6. Emit results
	if viper.GetBool("csv") || config.C.Export.WriteCSV {
		writeCSVs(logger, processed, quarantined)
		return
	}
	if err := writeJSON(os.Stdout, processed, quarantined); err != nil {
		logger.Fatal("Cannot write results", zap.Error(err))
	}
}

// loadConfig loads app-level settings from file and env vars.
func loadConfig() {
	viper.SetConfigName("app")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")

	viper.SetDefault("app.env", "development")

	viper.AutomaticEnv()
	_ = viper.BindPFlags(pflag.CommandLine)

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: Cannot read config file: %v", err)
	}
}

// initLogger builds a structured logger for the selected environment.
func initLogger() *zap.Logger {
	if viper.GetString("app.env") == "production" {
		logger, _ := zap.NewProduction()
		return logger
	}
	logger, _ := zap.NewDevelopment()
	return logger
}

// readRecords accepts either a JSON array of records or JSON lines.
func readRecords(path string) ([]models.RawRecord, error) {
	var r io.Reader = os.Stdin
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var records []models.RawRecord
	if err := json.Unmarshal(data, &records); err == nil {
		return records, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	for {
		var rec models.RawRecord
		if err := dec.Decode(&rec); err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func writeCSVs(logger *zap.Logger, processed []*models.ProcessedRecord, quarantined []*models.QuarantineRecord) {
	timestamp := time.Now().Format("20060102_150405")
	outputDir := config.C.Export.OutputDir

	if len(processed) > 0 {
		name, err := export.WriteCleanedCSV(processed, timestamp, outputDir)
		if err != nil {
			logger.Fatal("Failed to write cleaned CSV", zap.Error(err))
		}
		logger.Info("Cleaned CSV saved", zap.String("file", name))
	}
	if len(quarantined) > 0 {
		name, err := export.WriteQuarantineCSV(quarantined, timestamp, outputDir)
		if err != nil {
			logger.Fatal("Failed to write quarantine CSV", zap.Error(err))
		}
		logger.Info("Quarantine CSV saved", zap.String("file", name))
	}
}

func writeJSON(w io.Writer, processed []*models.ProcessedRecord, quarantined []*models.QuarantineRecord) error {
	out := struct {
		Processed   []*models.ProcessedRecord  `json:"processed"`
		Quarantined []*models.QuarantineRecord `json:"quarantined"`
	}{Processed: processed, Quarantined: quarantined}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
