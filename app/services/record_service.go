package services

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/ris-pipeline/app/models"
	"github.com/ris-pipeline/internal/normalizer"
	"github.com/ris-pipeline/internal/parser"
	"github.com/ris-pipeline/internal/rocdate"
)

// RecordService runs the validation pipeline over single raw records. The
// same address tends to reappear across consecutive scrape runs, so parsed
// address components are memoized in an LRU keyed by the cleaned address.
type RecordService struct {
	parseCache *lru.Cache[string, models.AddressParts]
	logger     *zap.Logger
}

// NewRecordService builds a RecordService with a parse cache of the given
// size.
func NewRecordService(cacheSize int, logger *zap.Logger) (*RecordService, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	cache, err := lru.New[string, models.AddressParts](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("parse cache: %w", err)
	}
	return &RecordService{parseCache: cache, logger: logger}, nil
}

// Process applies every validation gate to one raw record and returns
// exactly one of a processed record or a quarantine record. Failures never
// escape as errors or panics; each becomes a quarantine record carrying the
// verbatim raw input. Gates run in priority order and short-circuit.
func (rs *RecordService) Process(raw models.RawRecord) models.Outcome {
	fullAddress := normalizer.Clean(raw["full_address"])
	registerDate := normalizer.Clean(raw["register_date"])
	registerType := normalizer.Clean(raw["register_type"])

	if fullAddress == "" {
		return rs.quarantine(raw, models.ErrorMissingField, "Missing full_address")
	}
	if registerType == "" {
		return rs.quarantine(raw, models.ErrorMissingField, "Missing register_type")
	}

	parts, ok := rs.parseAddress(fullAddress)
	if !ok {
		return rs.quarantine(raw, models.ErrorInvalidAddress, "Cannot parse address: "+fullAddress)
	}

	// Prefer the city/district parsed out of the address; the
	// caller-supplied fields are only a fallback.
	city := parts.City
	if city == "" {
		city = raw["city"]
	}
	district := parts.District
	if district == "" {
		district = raw["district"]
	}
	if city == "" || district == "" {
		return rs.quarantine(raw, models.ErrorMissingField, "Missing city or district")
	}

	assignmentDate, ok := rocdate.Parse(registerDate)
	if !ok {
		return rs.quarantine(raw, models.ErrorDateFormat, "Cannot parse date: "+registerDate)
	}

	return models.Processed(&models.ProcessedRecord{
		City:              city,
		District:          district,
		FullAddress:       fullAddress,
		AddressParts:      parts,
		AssignmentDate:    assignmentDate,
		AssignmentDateROC: rocdate.FormatROC(assignmentDate),
		AssignmentType:    registerType,
		RawData:           raw,
	})
}

// parseAddress resolves structured components for an address, consulting
// the LRU first. Cached values are stored by value so each processed record
// owns its own copy.
func (rs *RecordService) parseAddress(fullAddress string) (models.AddressParts, bool) {
	if parts, ok := rs.parseCache.Get(fullAddress); ok {
		return parts, true
	}
	parts := parser.Parse(fullAddress)
	if parts == nil {
		return models.AddressParts{}, false
	}
	rs.parseCache.Add(fullAddress, *parts)
	return *parts, true
}

func (rs *RecordService) quarantine(raw models.RawRecord, errType models.ErrorType, msg string) models.Outcome {
	rs.logger.Debug("record quarantined",
		zap.String("error_type", string(errType)),
		zap.String("reason", msg))
	return models.Quarantined(&models.QuarantineRecord{
		RawData:         raw,
		ErrorType:       errType,
		ValidationError: msg,
	})
}
