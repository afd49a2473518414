package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/brokerbase/validata/internal/core/completeness"
	"github.com/brokerbase/validata/internal/core/model"
)

// RenderText produces the plain-text summary of a report, suitable for
// terminal output or a log line block.
func RenderText(rep *model.Report) string {
	if rep == nil {
		return ""
	}
	var sb strings.Builder

	sb.WriteString("VALIDATION REPORT\n")
	sb.WriteString("=================\n")
	fmt.Fprintf(&sb, "Generated: %s\n", rep.GeneratedAt.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(&sb, "Records:   %d total, %d clean, %d need attention\n\n",
		rep.TotalRecords, rep.CleanRecords, rep.NeedsAttention)

	if rep.RequiredFields != nil {
		fmt.Fprintf(&sb, "Required fields: %d/%d records complete\n",
			rep.RequiredFields.ValidCount, rep.RequiredFields.TotalRecords)
		for _, name := range sortedCountKeys(rep.RequiredFields.MissingByField) {
			if n := rep.RequiredFields.MissingByField[name]; n > 0 {
				fmt.Fprintf(&sb, "  missing %-8s %d\n", name+":", n)
			}
		}
	}
	if rep.Phones != nil {
		fmt.Fprintf(&sb, "Phones:  %d valid, %d invalid\n", rep.Phones.ValidCount, rep.Phones.InvalidCount)
	}
	if rep.Emails != nil {
		fmt.Fprintf(&sb, "Emails:  %d valid, %d invalid\n", rep.Emails.ValidCount, rep.Emails.InvalidCount)
	}

	if rep.Completeness != nil {
		fmt.Fprintf(&sb, "Completeness: %.1f%% average (high %d / medium %d / low %d)\n",
			rep.Completeness.AverageCompleteness,
			rep.Completeness.Distribution[completeness.BucketHigh],
			rep.Completeness.Distribution[completeness.BucketMedium],
			rep.Completeness.Distribution[completeness.BucketLow])
	}

	if rep.Duplicates != nil {
		fmt.Fprintf(&sb, "Duplicates: %d groups (%d auto-merge, %d manual review), %d records involved\n",
			rep.Duplicates.GroupCount, rep.Duplicates.AutoCount,
			rep.Duplicates.ManualCount, rep.Duplicates.RecordsInvolved)
	}

	if len(rep.IssueCount) > 0 {
		sb.WriteString("\nIssues by type:\n")
		for _, key := range sortedCountKeys(rep.IssueCount) {
			fmt.Fprintf(&sb, "  %-24s %d\n", key, rep.IssueCount[key])
		}
	}

	if len(rep.Flagged) > 0 {
		sb.WriteString("\nFlagged records (most severe first):\n")
		for _, f := range rep.Flagged {
			label := f.RecordID
			if label == "" {
				label = "(no id)"
			}
			if f.Name != "" {
				label += " " + f.Name
			}
			fmt.Fprintf(&sb, "  [%s] %s\n", f.Rank, label)
			for _, issue := range f.Issues {
				fmt.Fprintf(&sb, "    - %s\n", issue)
			}
		}
	}

	return sb.String()
}

func sortedCountKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
