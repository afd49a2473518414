package dedupe

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/brokerbase/validata/internal/core/model"
)

func TestFindDuplicates_PhoneTakesPrecedence(t *testing.T) {
	// Same person scraped twice: formats differ, number and email match.
	// Phone wins; no second email group is emitted for the same pair.
	records := []model.Record{
		{"id": "a", "name": "Ana Lima", "phone": "(85) 97100-5622", "email": "a@x.com"},
		{"id": "b", "name": "Ana L.", "phone": "85971005622", "email": "a@x.com"},
	}

	sum := FindDuplicates(records)
	assert.Len(t, sum.Groups, 1)
	group := sum.Groups[0]
	assert.Equal(t, model.MatchPhoneExact, group.MatchType)
	assert.Equal(t, model.ReviewAuto, group.ReviewType)
	assert.Len(t, group.Records, 2)
	assert.Equal(t, 1, sum.AutoCount)
	assert.Equal(t, 0, sum.ManualCount)
}

func TestFindDuplicates_CountryCodeCollapses(t *testing.T) {
	records := []model.Record{
		{"id": "a", "phone": "+55 (85) 97100-5622"},
		{"id": "b", "phone": "85 97100 5622"},
	}
	sum := FindDuplicates(records)
	assert.Len(t, sum.Groups, 1)
	assert.Equal(t, "85971005622", sum.Groups[0].MatchValue)
}

func TestFindDuplicates_EmailAmongUnclaimed(t *testing.T) {
	records := []model.Record{
		{"id": "a", "phone": "8597100 5622", "email": "x@y.com"},
		{"id": "b", "phone": "85971005622", "email": "other@y.com"},
		{"id": "c", "phone": "8532245100", "email": "X@Y.com "},
	}

	// a+b pair on phone and claim those records; c's email matches a's, but a
	// is already claimed, so no email group survives.
	sum := FindDuplicates(records)
	assert.Len(t, sum.Groups, 1)
	assert.Equal(t, model.MatchPhoneExact, sum.Groups[0].MatchType)
}

func TestFindDuplicates_NameAlwaysManual(t *testing.T) {
	records := []model.Record{
		{"id": "a", "name": "João  da Silva", "phone": "8597100 5622"},
		{"id": "b", "name": " joão da silva", "phone": "8532245100"},
	}
	sum := FindDuplicates(records)
	assert.Len(t, sum.Groups, 1)
	assert.Equal(t, model.MatchNameExact, sum.Groups[0].MatchType)
	assert.Equal(t, model.ReviewManual, sum.Groups[0].ReviewType)
	assert.Equal(t, "joão da silva", sum.Groups[0].MatchValue)
}

func TestFindDuplicates_Exclusivity(t *testing.T) {
	// Three records entangled across all three keys: every record must appear
	// in exactly one group.
	records := []model.Record{
		{"id": "a", "name": "Ana", "phone": "85971005622", "email": "a@x.com"},
		{"id": "b", "name": "Ana", "phone": "85971005622", "email": "b@x.com"},
		{"id": "c", "name": "Ana", "phone": "8532245100", "email": "a@x.com"},
	}

	sum := FindDuplicates(records)
	seen := map[string]int{}
	for _, g := range sum.Groups {
		for _, m := range g.Records {
			seen[m.RecordID]++
		}
	}
	for id, n := range seen {
		assert.Equal(t, 1, n, "record %s in %d groups", id, n)
	}
}

func TestFindDuplicates_NoDuplicates(t *testing.T) {
	records := []model.Record{
		{"id": "a", "name": "Ana", "phone": "85971005622"},
		{"id": "b", "name": "Bia", "phone": "8532245100"},
	}
	sum := FindDuplicates(records)
	assert.Empty(t, sum.Groups)
	assert.Equal(t, 0, sum.RecordsInvolved)
}

func TestFindDuplicates_UnusableKeysSkipped(t *testing.T) {
	// Bad phones and emails are simply absent from the key maps.
	records := []model.Record{
		{"id": "a", "phone": "123", "email": "semارroba"},
		{"id": "b", "phone": "123", "email": "no-at-sign"},
	}
	sum := FindDuplicates(records)
	assert.Empty(t, sum.Groups)
}

func TestSuggestMerge_KeepsMostComplete(t *testing.T) {
	records := []model.Record{
		{"id": "thin", "name": "Ana", "phone": "85971005622"},
		{"id": "rich", "name": "Ana Lima", "phone": "85971005622", "email": "a@x.com",
			"address": "Av. Beira Mar 100", "website": "https://analima.com.br", "rating": 4.9},
	}

	sum := FindDuplicates(records)
	assert.Len(t, sum.Suggestions, 1)
	s := sum.Suggestions[0]
	assert.Equal(t, "rich", s.KeepRecordID)
	assert.Equal(t, []string{"thin"}, s.RemoveRecordIDs)
	assert.Greater(t, s.KeepScore, 50.0)
}

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "85971005622", NormalizePhone("+55 (85) 97100-5622"))
	assert.Equal(t, "8532245100", NormalizePhone("(85) 3224-5100"))
	assert.Equal(t, "", NormalizePhone("12345"))
	assert.Equal(t, "", NormalizePhone("559712345678901")) // too long even without 55
}

func TestNormalizeName_CollapsesWhitespace(t *testing.T) {
	assert.Equal(t, "ana maria lima", NormalizeName("  Ana   Maria\tLima "))
	assert.Equal(t, "", NormalizeName("   "))
}
