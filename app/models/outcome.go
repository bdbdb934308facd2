package models

// Outcome is the result of processing one raw record: exactly one of a
// processed record or a quarantine record. The fields are unexported and
// only the two constructors below set them, so a both-set or neither-set
// outcome cannot be built outside this package.
type Outcome struct {
	processed  *ProcessedRecord
	quarantine *QuarantineRecord
}

// Processed wraps a successfully validated record.
func Processed(rec *ProcessedRecord) Outcome {
	return Outcome{processed: rec}
}

// Quarantined wraps a failed record.
func Quarantined(rec *QuarantineRecord) Outcome {
	return Outcome{quarantine: rec}
}

// Ok reports whether the record passed every validation gate.
func (o Outcome) Ok() bool {
	return o.processed != nil
}

// Record returns the processed record when the outcome succeeded.
func (o Outcome) Record() (*ProcessedRecord, bool) {
	return o.processed, o.processed != nil
}

// Quarantine returns the quarantine record when the outcome failed.
func (o Outcome) Quarantine() (*QuarantineRecord, bool) {
	return o.quarantine, o.quarantine != nil
}
