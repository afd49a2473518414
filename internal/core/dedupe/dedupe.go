// Package dedupe groups records that share a normalized phone, email, or
// name. Matching is exact on normalized keys only; fuzzy or model-based
// matching is out of scope. Phone and email collisions are strong evidence of
// true duplication and may be auto-merged; a shared name alone is weak
// evidence (two different brokers can share a name) and always goes to
// manual review.
package dedupe

import (
	"sort"

	"github.com/brokerbase/validata/internal/core/field"
	"github.com/brokerbase/validata/internal/core/model"
)

// FindDuplicates runs one detection pass over the batch. Keys are resolved by
// precedence: phone first, then email among records not already grouped, then
// name among the remainder. Each record lands in at most one group.
func FindDuplicates(records []model.Record) *model.DuplicateSummary {
	summary := &model.DuplicateSummary{}

	byPhone := make(map[string][]int)
	byEmail := make(map[string][]int)
	byName := make(map[string][]int)

	for i, rec := range records {
		if key := NormalizePhone(rec.StringField("phone")); key != "" {
			byPhone[key] = append(byPhone[key], i)
		}
		if key := NormalizeEmail(rec.StringField("email")); key != "" {
			byEmail[key] = append(byEmail[key], i)
		}
		if key := NormalizeName(rec.StringField("name")); key != "" {
			byName[key] = append(byName[key], i)
		}
	}

	claimed := make(map[int]bool)
	emit := func(byKey map[string][]int, matchType, reviewType string) {
		for _, key := range sortedKeys(byKey) {
			var members []int
			for _, i := range byKey[key] {
				if !claimed[i] {
					members = append(members, i)
				}
			}
			if len(members) < 2 {
				continue
			}
			group := model.DuplicateGroup{
				MatchType:  matchType,
				MatchValue: key,
				ReviewType: reviewType,
			}
			for _, i := range members {
				claimed[i] = true
				group.Records = append(group.Records, member(records[i]))
			}
			summary.Groups = append(summary.Groups, group)
		}
	}

	emit(byPhone, model.MatchPhoneExact, model.ReviewAuto)
	emit(byEmail, model.MatchEmailExact, model.ReviewAuto)
	emit(byName, model.MatchNameExact, model.ReviewManual)

	byID := make(map[string]model.Record, len(records))
	for _, rec := range records {
		if id := rec.ID(); id != "" {
			byID[id] = rec
		}
	}

	for _, group := range summary.Groups {
		summary.GroupCount++
		summary.RecordsInvolved += len(group.Records)
		switch group.ReviewType {
		case model.ReviewAuto:
			summary.AutoCount++
		case model.ReviewManual:
			summary.ManualCount++
		}
		summary.Suggestions = append(summary.Suggestions, SuggestMerge(group, byID))
	}
	return summary
}

// SuggestMerge picks the group member with the most core fields filled as the
// record to keep; the rest become removal candidates.
func SuggestMerge(group model.DuplicateGroup, byID map[string]model.Record) model.MergeSuggestion {
	var suggestion model.MergeSuggestion
	best := -1.0

	for _, m := range group.Records {
		score := coreScore(byID[m.RecordID])
		if score > best {
			if suggestion.KeepRecordID != "" {
				suggestion.RemoveRecordIDs = append(suggestion.RemoveRecordIDs, suggestion.KeepRecordID)
			}
			best = score
			suggestion.KeepRecordID = m.RecordID
		} else {
			suggestion.RemoveRecordIDs = append(suggestion.RemoveRecordIDs, m.RecordID)
		}
	}
	suggestion.KeepScore = best
	return suggestion
}

// coreFields are the handful of fields that decide which duplicate survives.
var coreFields = []string{"name", "phone", "email", "address", "neighborhood", "website", "rating"}

func coreScore(rec model.Record) float64 {
	filled := 0
	for _, name := range coreFields {
		if field.FilledIn(rec, name) {
			filled++
		}
	}
	return float64(filled) / float64(len(coreFields)) * 100
}

func member(rec model.Record) model.GroupMember {
	return model.GroupMember{
		RecordID: rec.ID(),
		Name:     rec.StringField("name"),
		Phone:    rec.StringField("phone"),
		Email:    rec.StringField("email"),
	}
}

func sortedKeys(m map[string][]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
