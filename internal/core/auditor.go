// Package core binds the validation pipeline to record storage. The pure
// validators live in the subpackages; this is the service-side entry point
// that fetches a group, runs the pipeline, and persists what it found.
package core

import (
	"context"
	"fmt"
	"log"

	"github.com/brokerbase/validata/internal/core/model"
	"github.com/brokerbase/validata/internal/core/report"
	"github.com/brokerbase/validata/internal/store"
)

type Auditor struct {
	Store store.RecordStore
}

func NewAuditor(s store.RecordStore) *Auditor {
	return &Auditor{Store: s}
}

// IngestRecords saves a batch of records under a group.
func (a *Auditor) IngestRecords(ctx context.Context, groupID string, records []model.Record) error {
	for _, rec := range records {
		if err := a.Store.SaveRecord(ctx, groupID, rec); err != nil {
			return fmt.Errorf("failed to save record %q: %w", rec.ID(), err)
		}
	}
	return nil
}

// AuditGroup loads a group's records, generates the validation report, and
// persists the report and every duplicate group before returning it.
func (a *Auditor) AuditGroup(ctx context.Context, groupID string) (*model.Report, error) {
	records, err := a.Store.GetGroupRecords(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to load group %q: %w", groupID, err)
	}

	rep := report.Generate(records)

	for _, group := range rep.Duplicates.Groups {
		if err := a.Store.SaveDuplicateGroup(ctx, groupID, group); err != nil {
			// Persistence of one group failing should not lose the report.
			log.Printf("Failed to persist duplicate group %s/%s: %v", group.MatchType, group.MatchValue, err)
		}
	}

	if err := a.Store.SaveReport(ctx, groupID, rep); err != nil {
		return nil, fmt.Errorf("failed to persist report: %w", err)
	}
	return rep, nil
}
