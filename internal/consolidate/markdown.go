package consolidate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/brokerbase/validata/internal/core/completeness"
	"github.com/brokerbase/validata/internal/core/model"
)

// RenderMarkdown renders the report for humans: counts, fill rates, duplicate
// groups with merge suggestions, and the flagged-record list.
func RenderMarkdown(rep *model.Report) string {
	if rep == nil {
		return ""
	}
	var sb strings.Builder

	sb.WriteString("# Validation Report\n\n")
	fmt.Fprintf(&sb, "Generated: %s\n\n", rep.GeneratedAt.Format("2006-01-02 15:04 MST"))
	fmt.Fprintf(&sb, "- **Total records:** %d\n", rep.TotalRecords)
	fmt.Fprintf(&sb, "- **Clean:** %d\n", rep.CleanRecords)
	fmt.Fprintf(&sb, "- **Need attention:** %d\n\n", rep.NeedsAttention)

	if rep.Completeness != nil {
		fmt.Fprintf(&sb, "## Completeness\n\nAverage: **%.1f%%** — high %d, medium %d, low %d\n\n",
			rep.Completeness.AverageCompleteness,
			rep.Completeness.Distribution[completeness.BucketHigh],
			rep.Completeness.Distribution[completeness.BucketMedium],
			rep.Completeness.Distribution[completeness.BucketLow])

		sb.WriteString("| Field | Fill rate |\n|---|---|\n")
		for _, name := range completeness.ScoreableFields {
			fmt.Fprintf(&sb, "| %s | %.1f%% |\n", name, rep.Completeness.FieldFillRate[name])
		}
		sb.WriteString("\n")
	}

	if rep.Duplicates != nil && len(rep.Duplicates.Groups) > 0 {
		fmt.Fprintf(&sb, "## Duplicates\n\n%d groups (%d auto-merge, %d manual review)\n\n",
			rep.Duplicates.GroupCount, rep.Duplicates.AutoCount, rep.Duplicates.ManualCount)
		for i, g := range rep.Duplicates.Groups {
			fmt.Fprintf(&sb, "### Group %d — %s (%s)\n\n", i+1, g.MatchType, g.ReviewType)
			fmt.Fprintf(&sb, "Matched on `%s`\n\n", g.MatchValue)
			for _, m := range g.Records {
				fmt.Fprintf(&sb, "- `%s` %s\n", m.RecordID, m.Name)
			}
			if i < len(rep.Duplicates.Suggestions) {
				s := rep.Duplicates.Suggestions[i]
				fmt.Fprintf(&sb, "\nSuggested keep: `%s` (%.1f%% of core fields)\n\n", s.KeepRecordID, s.KeepScore)
			}
		}
	}

	if len(rep.IssueCount) > 0 {
		sb.WriteString("## Issues by type\n\n| Issue | Count |\n|---|---|\n")
		keys := make([]string, 0, len(rep.IssueCount))
		for k := range rep.IssueCount {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&sb, "| %s | %d |\n", k, rep.IssueCount[k])
		}
		sb.WriteString("\n")
	}

	if len(rep.Flagged) > 0 {
		sb.WriteString("## Flagged records\n\n")
		for _, f := range rep.Flagged {
			fmt.Fprintf(&sb, "- **[%s]** `%s` %s\n", f.Rank, f.RecordID, f.Name)
			for _, issue := range f.Issues {
				fmt.Fprintf(&sb, "  - %s\n", issue)
			}
		}
	}

	return sb.String()
}
