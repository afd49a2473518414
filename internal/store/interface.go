package store

import (
	"context"

	"github.com/brokerbase/validata/internal/core/model"
)

// RecordStore persists broker records and validation outcomes for a group.
// The validation core never touches it; only the server and CLI do.
type RecordStore interface {
	SaveRecord(ctx context.Context, groupID string, rec model.Record) error
	GetGroupRecords(ctx context.Context, groupID string) ([]model.Record, error)
	SaveDuplicateGroup(ctx context.Context, groupID string, group model.DuplicateGroup) error
	SaveReport(ctx context.Context, groupID string, rep *model.Report) error
	BuildIndices(ctx context.Context) error
	Close(ctx context.Context) error
}
