package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/brokerbase/validata/internal/core/model"
)

// EmailResult is the email verdict for one record. NeedsManualReview marks
// both structurally broken addresses and well-formed ones that look fake.
type EmailResult struct {
	RecordID          string   `json:"record_id,omitempty"`
	IsValid           bool     `json:"is_valid"`
	NormalizedEmail   string   `json:"normalized_email,omitempty"`
	Issues            []string `json:"issues,omitempty"`
	Severity          string   `json:"severity"`
	NeedsManualReview bool     `json:"needs_manual_review"`
}

// EmailBatch aggregates email verdicts over a batch.
type EmailBatch struct {
	model.BatchResult
	ManualReviewCount int           `json:"manual_review_count"`
	Results           []EmailResult `json:"results"`
}

var emailPattern = regexp.MustCompile(`^[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,}$`)

// Placeholder addresses scrapers fabricate when a listing has no real email.
// They parse fine, so they are warnings for a human, not rejections.
var suspiciousEmailPatterns = []string{
	"test@test.com",
	"example@example.com",
	"noemail@",
	"fake@",
	"@test.",
	"@example.",
}

// ValidateEmail normalizes, format-checks, and flags a raw email value.
func ValidateEmail(raw any) EmailResult {
	res := EmailResult{Severity: model.SeverityInfo}

	s, ok := raw.(string)
	if !ok || strings.TrimSpace(s) == "" {
		res.Severity = model.SeverityCritical
		res.Issues = append(res.Issues, "email is missing or not text")
		return res
	}

	norm := strings.ToLower(strings.TrimSpace(s))
	res.NormalizedEmail = norm

	if issue := structuralEmailIssue(norm); issue != "" {
		res.Severity = model.SeverityCritical
		res.NeedsManualReview = true
		res.Issues = append(res.Issues, issue)
		return res
	}

	if !emailPattern.MatchString(norm) {
		res.Severity = model.SeverityCritical
		res.NeedsManualReview = true
		res.Issues = append(res.Issues, "email does not match expected format")
		return res
	}

	res.IsValid = true

	for _, pat := range suspiciousEmailPatterns {
		if strings.Contains(norm, pat) {
			res.Severity = model.SeverityWarning
			res.NeedsManualReview = true
			res.Issues = append(res.Issues, fmt.Sprintf("email matches placeholder pattern %q", pat))
			break
		}
	}

	local, domain, _ := strings.Cut(norm, "@")
	if len(local) < 2 {
		res.Severity = model.SeverityWarning
		res.Issues = append(res.Issues, "email local part is unusually short")
	}
	if len(domain) < 4 {
		res.Severity = model.SeverityWarning
		res.Issues = append(res.Issues, "email domain is unusually short")
	}
	if len(norm) > 320 {
		res.Severity = model.SeverityWarning
		res.Issues = append(res.Issues, "email exceeds 320 characters")
	}

	if norm != s {
		res.Issues = append(res.Issues, "email was normalized")
	}
	return res
}

// ValidateEmailBatch validates the "email" field of every record.
func ValidateEmailBatch(records []model.Record) EmailBatch {
	var batch EmailBatch
	for _, rec := range records {
		res := ValidateEmail(rec["email"])
		res.RecordID = rec.ID()
		batch.Count(res.IsValid, res.Severity)
		if res.NeedsManualReview {
			batch.ManualReviewCount++
		}
		batch.Results = append(batch.Results, res)
	}
	return batch
}

// structuralEmailIssue catches defects the format pattern alone would let
// through or report too vaguely: doubled dots, dotted local-part edges, and
// TLD-less domains.
func structuralEmailIssue(norm string) string {
	if strings.Contains(norm, "..") {
		return "email contains consecutive dots"
	}
	local, domain, found := strings.Cut(norm, "@")
	if found {
		if strings.HasPrefix(local, ".") || strings.HasSuffix(local, ".") {
			return "email local part starts or ends with a dot"
		}
		if !strings.Contains(domain, ".") {
			return "email domain has no top-level domain"
		}
	}
	return ""
}
