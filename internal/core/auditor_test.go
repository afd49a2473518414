package core

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brokerbase/validata/internal/core/model"
)

type fakeStore struct {
	records    map[string][]model.Record
	savedDupes []model.DuplicateGroup
	savedReps  []*model.Report
	failReport bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{records: make(map[string][]model.Record)}
}

func (f *fakeStore) SaveRecord(_ context.Context, groupID string, rec model.Record) error {
	f.records[groupID] = append(f.records[groupID], rec)
	return nil
}

func (f *fakeStore) GetGroupRecords(_ context.Context, groupID string) ([]model.Record, error) {
	return f.records[groupID], nil
}

func (f *fakeStore) SaveDuplicateGroup(_ context.Context, _ string, g model.DuplicateGroup) error {
	f.savedDupes = append(f.savedDupes, g)
	return nil
}

func (f *fakeStore) SaveReport(_ context.Context, _ string, rep *model.Report) error {
	if f.failReport {
		return errors.New("bolt connection lost")
	}
	f.savedReps = append(f.savedReps, rep)
	return nil
}

func (f *fakeStore) BuildIndices(context.Context) error { return nil }
func (f *fakeStore) Close(context.Context) error        { return nil }

func TestAuditGroup(t *testing.T) {
	fs := newFakeStore()
	a := NewAuditor(fs)
	ctx := context.Background()

	err := a.IngestRecords(ctx, "fortaleza", []model.Record{
		{"id": "a", "name": "Ana", "phone": "(85) 97100-5622", "email": "ana@imob.com.br"},
		{"id": "b", "name": "Ana L.", "phone": "85971005622", "email": "ana2@imob.com.br"},
	})
	require.NoError(t, err)

	rep, err := a.AuditGroup(ctx, "fortaleza")
	require.NoError(t, err)

	assert.Equal(t, 2, rep.TotalRecords)
	assert.Len(t, fs.savedDupes, 1)
	assert.Equal(t, model.MatchPhoneExact, fs.savedDupes[0].MatchType)
	require.Len(t, fs.savedReps, 1)
	assert.Equal(t, rep.ReportID, fs.savedReps[0].ReportID)
}

func TestAuditGroup_EmptyGroup(t *testing.T) {
	a := NewAuditor(newFakeStore())
	rep, err := a.AuditGroup(context.Background(), "nowhere")
	require.NoError(t, err)
	assert.Equal(t, 0, rep.TotalRecords)
}

func TestAuditGroup_ReportPersistFailure(t *testing.T) {
	fs := newFakeStore()
	fs.failReport = true
	a := NewAuditor(fs)

	_, err := a.AuditGroup(context.Background(), "fortaleza")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "persist report")
}
