package worksheet

// Kind classifies an ErrorRecord.
type Kind string

const (
	KindExactMismatch       Kind = "exact-mismatch"
	KindDuplicateValue      Kind = "duplicate-value"
	KindRangeViolation      Kind = "range-violation"
	KindOffsetViolation     Kind = "offset-violation"
	KindOrderingViolation   Kind = "ordering-violation"
	KindIntervalOverlap     Kind = "interval-overlap"
	KindBandwidthTooLow     Kind = "bandwidth-too-low"
	KindRateNotFound        Kind = "rate-not-found"
	KindRowCountMismatch    Kind = "row-count-mismatch"
	KindColumnCountMismatch Kind = "column-count-mismatch"
	KindMalformedTable      Kind = "malformed-table"
	KindNonNumericValue     Kind = "non-numeric-value"
	KindLogicCheckFailed    Kind = "logic-check-failed"
	KindConfigMissing       Kind = "config-missing"
	KindUnsupportedSection  Kind = "unsupported-section"
)

// Field identifiers carried by records so that downstream consumers can
// tell which worksheet value a record is about without parsing messages.
const (
	FieldDownlinkStart  = "downlink-start"
	FieldDownlinkEnd    = "downlink-end"
	FieldUplinkStart    = "uplink-start"
	FieldUplinkEnd      = "uplink-end"
	FieldRate           = "rate"
	FieldBandwidth      = "bandwidth"
	FieldUplinkCenter   = "uplink-center"
	FieldDownlinkCenter = "downlink-center"
	FieldCCAddress      = "cc-address"
	FieldChannelType    = "channel-type"
	FieldSubnetRate     = "subnet-rate"
)

//
// ErrorRecord is a single finding produced by a section validator.
// Row and Col are 1-based, zero when the record is not about a cell.
// Records are never modified once a validator has returned them.
//
type ErrorRecord struct {
	Section   string `json:"section"`
	Kind      Kind   `json:"kind"`
	Row       int    `json:"row,omitempty"`
	Col       int    `json:"col,omitempty"`
	ColHeader string `json:"colHeader,omitempty"`
	Field     string `json:"field,omitempty"`
	UserValue string `json:"userValue,omitempty"`
	Expected  string `json:"expected,omitempty"`
	Message   string `json:"message"`
}

//
// SectionResult is the outcome of validating one worksheet section.
// Items is the number of independently checkable points the validator
// evaluated; the scorer uses it as the section's maximum error count.
//
type SectionResult struct {
	Title   string        `json:"title"`
	Records []ErrorRecord `json:"records"`
	Items   int           `json:"items"`
}

// Count is the section's error count.
func (r SectionResult) Count() int {
	return len(r.Records)
}
