package models

import "time"

// ErrorType classifies why a record landed in quarantine.
type ErrorType string

const (
	ErrorDateFormat     ErrorType = "DATE_FORMAT"
	ErrorMissingField   ErrorType = "MISSING_FIELD"
	ErrorInvalidAddress ErrorType = "INVALID_ADDRESS"
	// ErrorSchemaMismatch is reserved for caller-side schema checks; the
	// pipeline itself never emits it.
	ErrorSchemaMismatch ErrorType = "SCHEMA_MISMATCH"
)

// IsValid reports whether et is one of the closed error taxonomy values.
func (et ErrorType) IsValid() bool {
	switch et {
	case ErrorDateFormat, ErrorMissingField, ErrorInvalidAddress, ErrorSchemaMismatch:
		return true
	}
	return false
}

// RawRecord is one scraped row exactly as handed to the pipeline. Field
// names the pipeline reads: full_address, register_date, register_type, and
// the optional city/district fallbacks.
type RawRecord map[string]string

// AddressParts holds the structured components of a Taiwan street address.
// Lane, alley, number, floor and floor_dash never carry their originating
// suffix glyph (巷/弄/號/樓/之); they are the captured numeral only.
type AddressParts struct {
	City         string `json:"city"`                   // 臺北市
	District     string `json:"district"`               // 大安區
	Village      string `json:"village,omitempty"`      // 富台里 or 富台村
	Neighborhood string `json:"neighborhood,omitempty"` // 19 (from 019鄰, zeros stripped)
	Road         string `json:"road,omitempty"`         // 信義路
	Section      string `json:"section,omitempty"`      // 四段, kept as the original token
	Lane         string `json:"lane,omitempty"`         // 100 (not 100巷)
	Alley        string `json:"alley,omitempty"`        // 5 (not 5弄)
	Number       string `json:"number,omitempty"`       // 10 (not 10號)
	Floor        string `json:"floor,omitempty"`        // 3 (numeral-converted)
	FloorDash    string `json:"floor_dash,omitempty"`   // 1 (from 之1, numeral-converted)
	RawAddress   string `json:"raw_address"`
}

// ProcessedRecord is a fully validated registration record. Constructed
// once by the pipeline and never mutated afterward.
type ProcessedRecord struct {
	City              string       `json:"city"`
	District          string       `json:"district"`
	FullAddress       string       `json:"full_address"`
	AddressParts      AddressParts `json:"address_parts"`
	AssignmentDate    time.Time    `json:"assignment_date"`
	AssignmentDateROC string       `json:"assignment_date_roc"` // 114-11-07
	AssignmentType    string       `json:"assignment_type"`
	RawData           RawRecord    `json:"raw_data"`
}

// QuarantineRecord is the terminal state for a record that failed a
// validation gate. The verbatim raw input rides along so the record stays
// inspectable and re-processable.
type QuarantineRecord struct {
	RawData         RawRecord `json:"raw_data"`
	ErrorType       ErrorType `json:"error_type"`
	ValidationError string    `json:"validation_error"`
	SourceURL       string    `json:"source_url,omitempty"`
}
