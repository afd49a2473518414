package validate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/brokerbase/validata/internal/core/model"
)

// PhoneResult is the phone verdict for one record: the input with junk
// characters stripped, and, when the number parses, the canonical national
// form "(AA) NNNNN-NNNN".
type PhoneResult struct {
	RecordID          string   `json:"record_id,omitempty"`
	IsValid           bool     `json:"is_valid"`
	CleanedPhone      string   `json:"cleaned_phone,omitempty"`
	StandardizedPhone string   `json:"standardized_phone,omitempty"`
	Issues            []string `json:"issues,omitempty"`
	Severity          string   `json:"severity"`
}

// PhoneBatch aggregates phone verdicts over a batch.
type PhoneBatch struct {
	model.BatchResult
	CleanedCount int           `json:"cleaned_count"`
	Results      []PhoneResult `json:"results"`
}

// Subscriber numbers that are blatantly sequential. Exact matches only, so a
// legitimate number containing an ascending run is not rejected.
var sequentialSubscribers = map[string]bool{
	"01234567": true,
	"12345678": true,
	"98765432": true,
	"87654321": true,
}

// ValidatePhone cleans, sanity-checks, and standardizes a raw phone value.
// Accepts 10-13 digits: area code + 8-digit landline or 9-digit mobile,
// optionally prefixed with country code 55.
func ValidatePhone(raw any) PhoneResult {
	res := PhoneResult{Severity: model.SeverityInfo}

	s, ok := raw.(string)
	if !ok || strings.TrimSpace(s) == "" {
		res.Severity = model.SeverityCritical
		res.Issues = append(res.Issues, "phone is missing or not text")
		return res
	}

	res.CleanedPhone = cleanPhone(s)
	digits := digitsOnly(res.CleanedPhone)

	if len(digits) < 10 || len(digits) > 13 {
		res.Severity = model.SeverityCritical
		res.Issues = append(res.Issues, fmt.Sprintf("phone has %d digits, expected 10 to 13", len(digits)))
		return res
	}

	if issue := bogusSubscriberIssue(digits); issue != "" {
		res.Severity = model.SeverityCritical
		res.Issues = append(res.Issues, issue)
		return res
	}

	standardized, err := standardizePhone(digits)
	if err != nil {
		// Present and plausible, just not normalizable. Not a rejection.
		res.IsValid = true
		res.Severity = model.SeverityWarning
		res.Issues = append(res.Issues, fmt.Sprintf("phone could not be standardized: %v", err))
		return res
	}

	res.IsValid = true
	res.StandardizedPhone = standardized
	if standardized != s {
		res.Issues = append(res.Issues, "phone was cleaned and standardized")
	}
	return res
}

// ValidatePhoneBatch validates the "phone" field of every record.
func ValidatePhoneBatch(records []model.Record) PhoneBatch {
	var batch PhoneBatch
	for _, rec := range records {
		res := ValidatePhone(rec["phone"])
		res.RecordID = rec.ID()
		batch.Count(res.IsValid, res.Severity)
		if res.StandardizedPhone != "" && res.StandardizedPhone != rec.StringField("phone") {
			batch.CleanedCount++
		}
		batch.Results = append(batch.Results, res)
	}
	return batch
}

// cleanPhone drops every character that is not a digit, parenthesis, hyphen,
// or space.
func cleanPhone(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r == '(', r == ')', r == '-', r == ' ':
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteByte(byte(r))
		}
	}
	return b.String()
}

// bogusSubscriberIssue checks the subscriber portion (after the optional
// country code 55 and the 2-digit area code) for obviously fake numbers.
func bogusSubscriberIssue(digits string) string {
	sub := digits
	if len(sub) >= 12 && strings.HasPrefix(sub, "55") {
		sub = sub[2:]
	}
	if len(sub) >= 2 {
		sub = sub[2:] // area code
	}

	if sub == strings.Repeat("0", len(sub)) && len(sub) > 0 {
		return "phone subscriber number is all zeros"
	}
	if len(sub) >= 8 && allSameDigit(sub) {
		return "phone subscriber number repeats a single digit"
	}
	if sequentialSubscribers[sub] {
		return "phone subscriber number is sequential"
	}
	return ""
}

func allSameDigit(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}

// standardizePhone formats a 10-13 digit string as "(AA) NNNNN-NNNN" or
// "(AA) NNNN-NNNN". 12 and 13 digit numbers must carry country code 55.
func standardizePhone(digits string) (string, error) {
	switch len(digits) {
	case 12, 13:
		if !strings.HasPrefix(digits, "55") {
			return "", fmt.Errorf("%d digits without country code 55", len(digits))
		}
		digits = digits[2:]
	case 10, 11:
	default:
		return "", fmt.Errorf("unsupported digit count %d", len(digits))
	}

	area := digits[:2]
	sub := digits[2:]

	code, err := strconv.Atoi(area)
	if err != nil || code < 11 || code > 99 {
		return "", fmt.Errorf("area code %q out of range", area)
	}

	switch len(sub) {
	case 8:
		return fmt.Sprintf("(%s) %s-%s", area, sub[:4], sub[4:]), nil
	case 9:
		return fmt.Sprintf("(%s) %s-%s", area, sub[:5], sub[5:]), nil
	default:
		return "", fmt.Errorf("subscriber number has %d digits", len(sub))
	}
}
