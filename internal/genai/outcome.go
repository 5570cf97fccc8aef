package genai

import "strings"

// Reason classifies why a model call failed.
type Reason string

const (
	// ReasonTransport covers network faults and non-2xx service responses.
	ReasonTransport Reason = "transport"
	// ReasonDecode covers malformed or empty response payloads.
	ReasonDecode Reason = "decode"
)

// ExtractionStatus distinguishes how much of a citizen record an
// extraction produced.
type ExtractionStatus string

const (
	// ExtractionComplete means all mandatory fields (name, NIK) are populated.
	ExtractionComplete ExtractionStatus = "complete"
	// ExtractionPartial means some fields decoded but a mandatory one is blank.
	ExtractionPartial ExtractionStatus = "partial"
	// ExtractionEmpty means nothing usable was extracted.
	ExtractionEmpty ExtractionStatus = "empty"
)

// ExtractionResult is the non-throwing outcome of a citizen extraction.
// Reason is populated only for Empty results caused by a failed call;
// an Empty result with no reason means the model returned no fields.
type ExtractionResult struct {
	Status ExtractionStatus `json:"status"`
	Record *CitizenRecord   `json:"record,omitempty"`
	Reason Reason           `json:"reason,omitempty"`
}

// Complete reports whether the result carries all mandatory fields.
func (r ExtractionResult) Complete() bool {
	return r.Status == ExtractionComplete
}

func emptyResult(reason Reason) ExtractionResult {
	return ExtractionResult{Status: ExtractionEmpty, Reason: reason}
}

func recordResult(rec CitizenRecord) ExtractionResult {
	if rec == (CitizenRecord{}) {
		return ExtractionResult{Status: ExtractionEmpty}
	}
	if strings.TrimSpace(rec.Name) == "" || strings.TrimSpace(rec.NIK) == "" {
		return ExtractionResult{Status: ExtractionPartial, Record: &rec}
	}
	return ExtractionResult{Status: ExtractionComplete, Record: &rec}
}
