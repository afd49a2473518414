package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/brokerbase/validata/internal/core/model"
)

func TestValidateEmail_Normalizes(t *testing.T) {
	res := ValidateEmail("  MARIA@HOTMAIL.COM  ")
	assert.True(t, res.IsValid)
	assert.Equal(t, "maria@hotmail.com", res.NormalizedEmail)
	assert.Equal(t, model.SeverityInfo, res.Severity)
	assert.Contains(t, res.Issues, "email was normalized")
	assert.False(t, res.NeedsManualReview)
}

func TestValidateEmail_Idempotent(t *testing.T) {
	once := ValidateEmail("  MARIA@HOTMAIL.COM  ")
	twice := ValidateEmail(once.NormalizedEmail)
	assert.Equal(t, once.NormalizedEmail, twice.NormalizedEmail)
	assert.Empty(t, twice.Issues)
}

func TestValidateEmail_Missing(t *testing.T) {
	for _, raw := range []any{nil, "", "   ", 42} {
		res := ValidateEmail(raw)
		assert.False(t, res.IsValid, "input %v", raw)
		assert.Equal(t, model.SeverityCritical, res.Severity)
	}
}

func TestValidateEmail_Structural(t *testing.T) {
	cases := map[string]string{
		"maria..lima@gmail.com": "consecutive dots",
		".maria@gmail.com":      "starts or ends with a dot",
		"maria.@gmail.com":      "starts or ends with a dot",
		"maria@localhost":       "no top-level domain",
	}
	for input, want := range cases {
		res := ValidateEmail(input)
		assert.False(t, res.IsValid, "input %s", input)
		assert.Equal(t, model.SeverityCritical, res.Severity)
		assert.True(t, res.NeedsManualReview)
		assert.Contains(t, strings.Join(res.Issues, "; "), want)
	}
}

func TestValidateEmail_BadFormat(t *testing.T) {
	for _, input := range []string{"maria gmail.com", "maria@@gmail.com", "maria@gmail.c", "@gmail.com"} {
		res := ValidateEmail(input)
		assert.False(t, res.IsValid, "input %s", input)
		assert.True(t, res.NeedsManualReview)
	}
}

func TestValidateEmail_Suspicious(t *testing.T) {
	// Placeholder addresses parse fine: still valid, but flagged for review.
	res := ValidateEmail("test@test.com")
	assert.True(t, res.IsValid)
	assert.True(t, res.NeedsManualReview)
	assert.Equal(t, model.SeverityWarning, res.Severity)

	res = ValidateEmail("noemail@imobiliaria.com.br")
	assert.True(t, res.IsValid)
	assert.True(t, res.NeedsManualReview)
}

func TestValidateEmail_SecondaryWarnings(t *testing.T) {
	res := ValidateEmail("a@bc.io")
	assert.True(t, res.IsValid)
	assert.Equal(t, model.SeverityWarning, res.Severity)
	assert.False(t, res.NeedsManualReview)

	long := strings.Repeat("a", 315) + "@longo.com.br"
	res = ValidateEmail(long)
	assert.True(t, res.IsValid)
	assert.Equal(t, model.SeverityWarning, res.Severity)
}

func TestValidateEmailBatch(t *testing.T) {
	records := []model.Record{
		{"id": "a", "email": "maria@hotmail.com"},
		{"id": "b", "email": "test@test.com"},
		{"id": "c", "email": "quebrado@"},
	}

	batch := ValidateEmailBatch(records)
	assert.Equal(t, 3, batch.TotalRecords)
	assert.Equal(t, 2, batch.ValidCount)
	assert.Equal(t, 1, batch.InvalidCount)
	assert.Equal(t, 2, batch.ManualReviewCount)
	assert.Equal(t, 1, batch.SeverityCount[model.SeverityWarning])
}
