package services

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ris-pipeline/app/models"
)

// BatchService partitions a scrape run into processed and quarantined
// records. Records are independent of each other, so the parallel path only
// has to collect outcomes back into their input slots before partitioning.
type BatchService struct {
	records *RecordService
	workers int
	logger  *zap.Logger
}

// NewBatchService builds a BatchService. Worker counts below one are
// clamped to one.
func NewBatchService(records *RecordService, workers int, logger *zap.Logger) *BatchService {
	if workers < 1 {
		workers = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BatchService{records: records, workers: workers, logger: logger}
}

// ProcessAll runs the pipeline over every record in input order. Individual
// failures land in the quarantine list; the batch never stops early, and
// the two output lists together account for every input.
func (bs *BatchService) ProcessAll(records []models.RawRecord) ([]*models.ProcessedRecord, []*models.QuarantineRecord) {
	outcomes := make([]models.Outcome, len(records))
	for i, raw := range records {
		outcomes[i] = bs.records.Process(raw)
	}
	return bs.partition(outcomes)
}

// ProcessAllParallel fans the batch out across a bounded worker group and
// yields the same observable results as ProcessAll, including relative
// order within each output list.
func (bs *BatchService) ProcessAllParallel(ctx context.Context, records []models.RawRecord) ([]*models.ProcessedRecord, []*models.QuarantineRecord) {
	outcomes := make([]models.Outcome, len(records))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(bs.workers)
	for i, raw := range records {
		i, raw := i, raw
		g.Go(func() error {
			outcomes[i] = bs.records.Process(raw)
			return nil
		})
	}
	// Workers never return errors; every failure is an outcome.
	_ = g.Wait()

	return bs.partition(outcomes)
}

func (bs *BatchService) partition(outcomes []models.Outcome) ([]*models.ProcessedRecord, []*models.QuarantineRecord) {
	processed := make([]*models.ProcessedRecord, 0, len(outcomes))
	quarantined := make([]*models.QuarantineRecord, 0)

	for _, o := range outcomes {
		if rec, ok := o.Record(); ok {
			processed = append(processed, rec)
			continue
		}
		if q, ok := o.Quarantine(); ok {
			quarantined = append(quarantined, q)
		}
	}

	bs.logger.Info("batch processed",
		zap.Int("total", len(outcomes)),
		zap.Int("processed", len(processed)),
		zap.Int("quarantined", len(quarantined)))

	return processed, quarantined
}

// QuarantineTally counts quarantine records per error type, for run
// summaries.
func QuarantineTally(records []*models.QuarantineRecord) map[models.ErrorType]int {
	tally := make(map[models.ErrorType]int)
	for _, rec := range records {
		tally[rec.ErrorType]++
	}
	return tally
}
