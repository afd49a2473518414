package model

import "time"

// Severity levels shared by every validator.
const (
	SeverityInfo     = "info"
	SeverityWarning  = "warning"
	SeverityCritical = "critical"
)

// Issue ranks used by the report orchestrator when sorting flagged records.
// Coarser than validator severity and only used for cross-validator ordering.
const (
	RankCritical = "CRITICAL"
	RankHigh     = "HIGH"
	RankMedium   = "MEDIUM"
	RankLow      = "LOW"
)

// ValidationResult is one validator's verdict on one record.
// Issues may be non-empty on a valid result (e.g. "phone was standardized").
type ValidationResult struct {
	RecordID string   `json:"record_id"`
	IsValid  bool     `json:"is_valid"`
	Severity string   `json:"severity"`
	Issues   []string `json:"issues,omitempty"`
}

// BatchResult aggregates one validator's verdicts over a whole batch.
// Invariant: ValidCount + InvalidCount == TotalRecords.
type BatchResult struct {
	TotalRecords  int            `json:"total_records"`
	ValidCount    int            `json:"valid_count"`
	InvalidCount  int            `json:"invalid_count"`
	SeverityCount map[string]int `json:"severity_count"`
}

// Count folds one per-record result into the aggregate.
func (b *BatchResult) Count(valid bool, severity string) {
	b.TotalRecords++
	if valid {
		b.ValidCount++
	} else {
		b.InvalidCount++
	}
	if b.SeverityCount == nil {
		b.SeverityCount = make(map[string]int)
	}
	b.SeverityCount[severity]++
}

// Duplicate match and review classifications.
const (
	MatchPhoneExact = "phone_exact"
	MatchEmailExact = "email_exact"
	MatchNameExact  = "name_exact"

	ReviewAuto   = "auto"
	ReviewManual = "manual"
)

// GroupMember is the identifying slice of a record carried inside a
// DuplicateGroup, enough for a human to eyeball the match.
type GroupMember struct {
	RecordID string `json:"record_id"`
	Name     string `json:"name,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Email    string `json:"email,omitempty"`
}

// DuplicateGroup is a set of records sharing one normalized key.
// Every group has at least two members, and a record belongs to at most one
// group per detection pass.
type DuplicateGroup struct {
	MatchType  string        `json:"match_type"`
	MatchValue string        `json:"match_value"`
	ReviewType string        `json:"review_type"`
	Records    []GroupMember `json:"records"`
}

// MergeSuggestion names the group member to keep and the ones to fold in.
type MergeSuggestion struct {
	KeepRecordID    string   `json:"keep_record_id"`
	RemoveRecordIDs []string `json:"remove_record_ids"`
	KeepScore       float64  `json:"keep_score"`
}

// CompletenessResult scores how much of one record's scoreable field set is
// filled. Percentage is rounded to one decimal and always within [0, 100].
type CompletenessResult struct {
	RecordID      string   `json:"record_id"`
	TotalFields   int      `json:"total_fields"`
	FilledFields  int      `json:"filled_fields"`
	Percentage    float64  `json:"percentage"`
	MissingFields []string `json:"missing_fields,omitempty"`
}

// FlaggedRecord is one attention-worthy record in the final report, with its
// worst cross-validator rank and every specific issue found.
type FlaggedRecord struct {
	RecordID string   `json:"record_id"`
	Name     string   `json:"name,omitempty"`
	Rank     string   `json:"rank"`
	Issues   []string `json:"issues"`
}

// Report is the merged outcome of running every validator over a batch.
// Pure data: persistence and rendering belong to the caller.
type Report struct {
	ReportID    string    `json:"report_id"`
	GeneratedAt time.Time `json:"generated_at"`

	TotalRecords   int `json:"total_records"`
	CleanRecords   int `json:"clean_records"`
	NeedsAttention int `json:"needs_attention"`

	IssueCount map[string]int  `json:"issue_count"`
	Flagged    []FlaggedRecord `json:"flagged"`

	RequiredFields *RequiredBatchSummary `json:"required_fields"`
	Phones         *BatchResult          `json:"phones"`
	Emails         *BatchResult          `json:"emails"`
	Completeness   *CompletenessSummary  `json:"completeness"`
	Duplicates     *DuplicateSummary     `json:"duplicates"`
}

// RequiredBatchSummary counts how many records are missing each mandatory
// field. A record missing two fields increments both counters.
type RequiredBatchSummary struct {
	BatchResult
	MissingByField map[string]int `json:"missing_by_field"`
}

// CompletenessSummary is the batch view of completeness scoring.
type CompletenessSummary struct {
	AverageCompleteness float64              `json:"average_completeness"`
	Distribution        map[string]int       `json:"distribution"`
	FieldFillRate       map[string]float64   `json:"field_fill_rate"`
	PerRecord           []CompletenessResult `json:"per_record"`
}

// DuplicateSummary is the outcome of one duplicate-detection pass.
type DuplicateSummary struct {
	Groups          []DuplicateGroup  `json:"groups"`
	Suggestions     []MergeSuggestion `json:"suggestions"`
	GroupCount      int               `json:"group_count"`
	RecordsInvolved int               `json:"records_involved"`
	AutoCount       int               `json:"auto_count"`
	ManualCount     int               `json:"manual_count"`
}
