package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/brokerbase/validata/internal/core/model"
)

func TestValidatePhone_Standardizes(t *testing.T) {
	res := ValidatePhone("85 97100-5622")
	assert.True(t, res.IsValid)
	assert.Equal(t, "(85) 97100-5622", res.StandardizedPhone)
	assert.Equal(t, model.SeverityInfo, res.Severity)
	assert.Contains(t, res.Issues, "phone was cleaned and standardized")
}

func TestValidatePhone_AlreadyCanonical(t *testing.T) {
	res := ValidatePhone("(85) 97100-5622")
	assert.True(t, res.IsValid)
	assert.Equal(t, "(85) 97100-5622", res.StandardizedPhone)
	assert.Empty(t, res.Issues)
}

func TestValidatePhone_Idempotent(t *testing.T) {
	once := ValidatePhone("+55 85 97100-5622")
	assert.True(t, once.IsValid)
	twice := ValidatePhone(once.StandardizedPhone)
	assert.Equal(t, once.StandardizedPhone, twice.StandardizedPhone)
}

func TestValidatePhone_CountryCode(t *testing.T) {
	res := ValidatePhone("5585971005622") // 13 digits with 55 prefix
	assert.True(t, res.IsValid)
	assert.Equal(t, "(85) 97100-5622", res.StandardizedPhone)

	res = ValidatePhone("558532245100") // 12 digits, landline
	assert.True(t, res.IsValid)
	assert.Equal(t, "(85) 3224-5100", res.StandardizedPhone)
}

func TestValidatePhone_Landline(t *testing.T) {
	res := ValidatePhone("8532245100")
	assert.True(t, res.IsValid)
	assert.Equal(t, "(85) 3224-5100", res.StandardizedPhone)
}

func TestValidatePhone_MissingOrWrongType(t *testing.T) {
	for _, raw := range []any{nil, "", "   ", 85971005622, []any{"85"}} {
		res := ValidatePhone(raw)
		assert.False(t, res.IsValid, "input %v", raw)
		assert.Equal(t, model.SeverityCritical, res.Severity)
	}
}

func TestValidatePhone_DigitCount(t *testing.T) {
	res := ValidatePhone("971005622") // 9 digits
	assert.False(t, res.IsValid)
	assert.Equal(t, model.SeverityCritical, res.Severity)

	res = ValidatePhone("55855971005622123") // too many
	assert.False(t, res.IsValid)
}

func TestValidatePhone_BogusSubscribers(t *testing.T) {
	// All-zero subscriber.
	res := ValidatePhone("(85) 00000-0000")
	assert.False(t, res.IsValid)
	assert.Equal(t, model.SeverityCritical, res.Severity)

	// Single repeated digit.
	res = ValidatePhone("(85) 99999-9999")
	assert.False(t, res.IsValid)

	// Sequential, exact match only.
	res = ValidatePhone("(85) 1234-5678")
	assert.False(t, res.IsValid)

	// Contains an ascending run but is not an exact sequential match.
	res = ValidatePhone("(85) 91234-5670")
	assert.True(t, res.IsValid)
}

func TestValidatePhone_BadAreaCode(t *testing.T) {
	// Area code 05 is outside [11, 99]: plausible digits, not normalizable.
	res := ValidatePhone("0597100562")
	assert.True(t, res.IsValid)
	assert.Equal(t, model.SeverityWarning, res.Severity)
	assert.Empty(t, res.StandardizedPhone)
}

func TestValidatePhone_CleanedKeepsAllowedChars(t *testing.T) {
	res := ValidatePhone("+55 (85) 97100-5622 ramal 2")
	assert.Equal(t, "55 (85) 97100-5622  2", res.CleanedPhone)
}

func TestValidatePhoneBatch(t *testing.T) {
	records := []model.Record{
		{"id": "a", "phone": "85 97100-5622"},
		{"id": "b", "phone": "(85) 00000-0000"},
		{"id": "c"}, // missing phone
	}

	batch := ValidatePhoneBatch(records)
	assert.Equal(t, 3, batch.TotalRecords)
	assert.Equal(t, 1, batch.ValidCount)
	assert.Equal(t, 2, batch.InvalidCount)
	assert.Equal(t, batch.TotalRecords, batch.ValidCount+batch.InvalidCount)
	assert.Equal(t, 1, batch.CleanedCount)
	assert.Equal(t, 2, batch.SeverityCount[model.SeverityCritical])
	assert.Equal(t, "a", batch.Results[0].RecordID)
}
