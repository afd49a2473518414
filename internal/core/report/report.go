// Package report runs every validator over a batch and merges their
// independent outcomes into one Report. Validators never see each other's
// results; the orchestrator only collects and ranks.
package report

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/brokerbase/validata/internal/core/completeness"
	"github.com/brokerbase/validata/internal/core/dedupe"
	"github.com/brokerbase/validata/internal/core/model"
	"github.com/brokerbase/validata/internal/core/validate"
)

// Records below this completeness are flagged as a medium issue, matching the
// batch distribution's "low" bucket.
const lowCompletenessThreshold = 50.0

// Issue-type keys in Report.IssueCount.
const (
	IssueMissingRequired = "missing_required_field"
	IssueInvalidPhone    = "invalid_phone"
	IssueInvalidEmail    = "invalid_email"
	IssueSuspiciousEmail = "suspicious_email"
	IssueLowCompleteness = "low_completeness"
	IssueDuplicate       = "possible_duplicate"
)

var rankOrder = map[string]int{
	model.RankCritical: 0,
	model.RankHigh:     1,
	model.RankMedium:   2,
	model.RankLow:      3,
}

// Generate runs required-field, phone, email, completeness, and duplicate
// checks over the batch and produces the merged report. Pure computation; the
// caller owns persistence and rendering.
func Generate(records []model.Record) *model.Report {
	rep := &model.Report{
		ReportID:     uuid.New().String(),
		GeneratedAt:  time.Now().UTC(),
		TotalRecords: len(records),
		IssueCount:   make(map[string]int),
	}

	required := validate.CheckRequiredBatch(records)
	phones := validate.ValidatePhoneBatch(records)
	emails := validate.ValidateEmailBatch(records)
	comp := completeness.ScoreBatch(records)
	dupes := dedupe.FindDuplicates(records)

	rep.RequiredFields = &required.RequiredBatchSummary
	rep.Phones = &phones.BatchResult
	rep.Emails = &emails.BatchResult
	rep.Completeness = comp
	rep.Duplicates = dupes

	duplicated := make(map[string]bool)
	for _, g := range dupes.Groups {
		for _, m := range g.Records {
			duplicated[m.RecordID] = true
		}
	}

	for i, rec := range records {
		flag := model.FlaggedRecord{
			RecordID: rec.ID(),
			Name:     rec.StringField("name"),
		}

		if !required.Results[i].IsValid {
			flag.Issues = append(flag.Issues, validate.MissingFieldIssues(required.Results[i])...)
			worsen(&flag, model.RankCritical)
			rep.IssueCount[IssueMissingRequired] += len(required.Results[i].MissingFields)
		}
		if !phones.Results[i].IsValid {
			flag.Issues = append(flag.Issues, phones.Results[i].Issues...)
			worsen(&flag, model.RankHigh)
			rep.IssueCount[IssueInvalidPhone]++
		}
		if !emails.Results[i].IsValid {
			flag.Issues = append(flag.Issues, emails.Results[i].Issues...)
			worsen(&flag, model.RankHigh)
			rep.IssueCount[IssueInvalidEmail]++
		} else if emails.Results[i].NeedsManualReview {
			flag.Issues = append(flag.Issues, emails.Results[i].Issues...)
			worsen(&flag, model.RankMedium)
			rep.IssueCount[IssueSuspiciousEmail]++
		}
		if comp.PerRecord[i].Percentage < lowCompletenessThreshold {
			flag.Issues = append(flag.Issues, "record is less than half complete")
			worsen(&flag, model.RankMedium)
			rep.IssueCount[IssueLowCompleteness]++
		}
		if rec.ID() != "" && duplicated[rec.ID()] {
			flag.Issues = append(flag.Issues, "record shares a phone, email, or name with another record")
			worsen(&flag, model.RankMedium)
			rep.IssueCount[IssueDuplicate]++
		}

		if len(flag.Issues) > 0 {
			rep.Flagged = append(rep.Flagged, flag)
		}
	}

	rep.NeedsAttention = len(rep.Flagged)
	rep.CleanRecords = rep.TotalRecords - rep.NeedsAttention

	// Most severe first; ties keep batch order.
	sort.SliceStable(rep.Flagged, func(i, j int) bool {
		return rankOrder[rep.Flagged[i].Rank] < rankOrder[rep.Flagged[j].Rank]
	})
	return rep
}

func worsen(flag *model.FlaggedRecord, rank string) {
	if flag.Rank == "" || rankOrder[rank] < rankOrder[flag.Rank] {
		flag.Rank = rank
	}
}
