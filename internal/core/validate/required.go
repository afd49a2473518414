// Package validate holds the per-field validators for broker records:
// required-field presence, phone cleaning/standardization, and email
// normalization. Validators never fail on bad data; a malformed value is a
// result with IsValid=false, not an error.
package validate

import (
	"fmt"

	"github.com/brokerbase/validata/internal/core/field"
	"github.com/brokerbase/validata/internal/core/model"
)

// RequiredFields is the fixed set of mandatory record fields.
var RequiredFields = []string{"name", "phone", "email"}

// RequiredResult is the required-field verdict for one record.
type RequiredResult struct {
	RecordID      string   `json:"record_id"`
	IsValid       bool     `json:"is_valid"`
	Severity      string   `json:"severity"`
	MissingFields []string `json:"missing_fields,omitempty"`
}

// RequiredBatch aggregates required-field verdicts over a batch, counting
// per-field how many records are missing each mandatory field.
type RequiredBatch struct {
	model.RequiredBatchSummary
	Results []RequiredResult `json:"results"`
}

// CheckRequired verifies that every mandatory field is filled. Presence only:
// a present-but-malformed phone passes here and fails in the phone validator.
func CheckRequired(rec model.Record) RequiredResult {
	res := RequiredResult{
		RecordID: rec.ID(),
		IsValid:  true,
		Severity: model.SeverityInfo,
	}

	for _, name := range RequiredFields {
		if !field.FilledIn(rec, name) {
			res.MissingFields = append(res.MissingFields, name)
		}
	}

	if len(res.MissingFields) > 0 {
		res.IsValid = false
		res.Severity = model.SeverityCritical
	}
	return res
}

// CheckRequiredBatch runs CheckRequired over every record.
func CheckRequiredBatch(records []model.Record) RequiredBatch {
	batch := RequiredBatch{
		RequiredBatchSummary: model.RequiredBatchSummary{
			MissingByField: make(map[string]int),
		},
	}
	for _, name := range RequiredFields {
		batch.MissingByField[name] = 0
	}

	for _, rec := range records {
		res := CheckRequired(rec)
		batch.Count(res.IsValid, res.Severity)
		for _, name := range res.MissingFields {
			batch.MissingByField[name]++
		}
		batch.Results = append(batch.Results, res)
	}
	return batch
}

// MissingFieldIssues renders one human-readable line per missing field.
func MissingFieldIssues(res RequiredResult) []string {
	issues := make([]string, 0, len(res.MissingFields))
	for _, name := range res.MissingFields {
		issues = append(issues, fmt.Sprintf("required field %q is missing or empty", name))
	}
	return issues
}
