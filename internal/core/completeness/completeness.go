// Package completeness scores how much of each record's descriptive field
// set is actually filled, per record and across a whole batch. Identifiers
// and timestamps are deliberately not scoreable.
package completeness

import (
	"math"

	"github.com/brokerbase/validata/internal/core/field"
	"github.com/brokerbase/validata/internal/core/model"
)

// ScoreableFields is the fixed ordered field set a record is scored against.
var ScoreableFields = []string{
	"name",
	"phone",
	"email",
	"address",
	"neighborhood",
	"city",
	"website",
	"instagram",
	"creci",
	"company",
	"specialties",
	"services",
	"description",
	"languages",
	"rating",
	"review_count",
	"experience_years",
	"hours",
}

// Distribution bucket names.
const (
	BucketHigh   = "high"   // >= 80%
	BucketMedium = "medium" // 50-79.9%
	BucketLow    = "low"    // < 50%
)

// Score computes one record's completeness over ScoreableFields.
func Score(rec model.Record) model.CompletenessResult {
	res := model.CompletenessResult{
		RecordID:    rec.ID(),
		TotalFields: len(ScoreableFields),
	}

	for _, name := range ScoreableFields {
		if field.FilledIn(rec, name) {
			res.FilledFields++
		} else {
			res.MissingFields = append(res.MissingFields, name)
		}
	}

	res.Percentage = roundPct(float64(res.FilledFields) / float64(res.TotalFields) * 100)
	return res
}

// ScoreBatch computes per-record scores plus the aggregate view: average,
// high/medium/low distribution, and per-field fill rate. The fill rate is a
// data-collection signal, telling which fields the scraper misses across the
// whole dataset.
func ScoreBatch(records []model.Record) *model.CompletenessSummary {
	summary := &model.CompletenessSummary{
		Distribution: map[string]int{
			BucketHigh:   0,
			BucketMedium: 0,
			BucketLow:    0,
		},
		FieldFillRate: make(map[string]float64, len(ScoreableFields)),
	}
	if len(records) == 0 {
		return summary
	}

	filledBy := make(map[string]int, len(ScoreableFields))
	var sum float64

	for _, rec := range records {
		res := Score(rec)
		summary.PerRecord = append(summary.PerRecord, res)
		sum += res.Percentage
		summary.Distribution[bucket(res.Percentage)]++

		for _, name := range ScoreableFields {
			if field.FilledIn(rec, name) {
				filledBy[name]++
			}
		}
	}

	summary.AverageCompleteness = roundPct(sum / float64(len(records)))
	for _, name := range ScoreableFields {
		summary.FieldFillRate[name] = roundPct(float64(filledBy[name]) / float64(len(records)) * 100)
	}
	return summary
}

func bucket(pct float64) string {
	switch {
	case pct >= 80:
		return BucketHigh
	case pct >= 50:
		return BucketMedium
	default:
		return BucketLow
	}
}

// roundPct rounds to one decimal place.
func roundPct(v float64) float64 {
	return math.Round(v*10) / 10
}
