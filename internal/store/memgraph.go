package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/brokerbase/validata/internal/core/model"
)

// MemgraphStore persists records and validation outcomes in Memgraph over
// the Bolt protocol. Records are Broker nodes carrying their full JSON
// payload plus the key fields used for lookups.
type MemgraphStore struct {
	Driver neo4j.DriverWithContext
}

func NewMemgraphStore(uri, username, password string) (*MemgraphStore, error) {
	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(username, password, ""))
	if err != nil {
		return nil, err
	}

	if err := driver.VerifyConnectivity(context.Background()); err != nil {
		return nil, err
	}

	log.Println("Connected to Memgraph")
	return &MemgraphStore{Driver: driver}, nil
}

func (s *MemgraphStore) Close(ctx context.Context) error {
	return s.Driver.Close(ctx)
}

func (s *MemgraphStore) execute(ctx context.Context, query string, params map[string]any) (neo4j.EagerResult, error) {
	result, err := neo4j.ExecuteQuery(ctx, s.Driver, query, params, neo4j.EagerResultTransformer)
	if err != nil {
		return neo4j.EagerResult{}, fmt.Errorf("failed to execute query: %w", err)
	}
	return *result, nil
}

func (s *MemgraphStore) SaveRecord(ctx context.Context, groupID string, rec model.Record) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to encode record %q: %w", rec.ID(), err)
	}

	_, err = s.execute(ctx, saveBrokerQuery, map[string]any{
		"record_id":  rec.ID(),
		"group_id":   groupID,
		"name":       rec.StringField("name"),
		"phone":      rec.StringField("phone"),
		"email":      rec.StringField("email"),
		"payload":    string(payload),
		"updated_at": time.Now().UTC().Format(time.RFC3339),
	})
	return err
}

func (s *MemgraphStore) GetGroupRecords(ctx context.Context, groupID string) ([]model.Record, error) {
	result, err := s.execute(ctx, getGroupBrokersQuery, map[string]any{"group_id": groupID})
	if err != nil {
		return nil, err
	}

	var records []model.Record
	for _, r := range result.Records {
		payload, _ := r.Get("payload")
		text, ok := payload.(string)
		if !ok {
			continue
		}
		var rec model.Record
		if err := json.Unmarshal([]byte(text), &rec); err != nil {
			log.Printf("Skipping undecodable broker payload in group %s: %v", groupID, err)
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

func (s *MemgraphStore) SaveDuplicateGroup(ctx context.Context, groupID string, group model.DuplicateGroup) error {
	groupUUID := dupGroupKey(groupID, group)
	now := time.Now().UTC().Format(time.RFC3339)

	_, err := s.execute(ctx, saveDupGroupQuery, map[string]any{
		"uuid":        groupUUID,
		"group_id":    groupID,
		"match_type":  group.MatchType,
		"match_value": group.MatchValue,
		"review_type": group.ReviewType,
		"created_at":  now,
	})
	if err != nil {
		return err
	}

	for _, m := range group.Records {
		_, err := s.execute(ctx, saveDupMemberQuery, map[string]any{
			"group_uuid": groupUUID,
			"record_id":  m.RecordID,
			"group_id":   groupID,
			"created_at": now,
		})
		if err != nil {
			return fmt.Errorf("failed to link member %q: %w", m.RecordID, err)
		}
	}
	return nil
}

func (s *MemgraphStore) SaveReport(ctx context.Context, groupID string, rep *model.Report) error {
	payload, err := json.Marshal(rep)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	_, err = s.execute(ctx, saveReportQuery, map[string]any{
		"uuid":            rep.ReportID,
		"group_id":        groupID,
		"generated_at":    rep.GeneratedAt.Format(time.RFC3339),
		"total_records":   rep.TotalRecords,
		"clean_records":   rep.CleanRecords,
		"needs_attention": rep.NeedsAttention,
		"payload":         string(payload),
	})
	return err
}

func (s *MemgraphStore) BuildIndices(ctx context.Context) error {
	queries := []string{
		"CREATE INDEX ON :Broker(record_id);",
		"CREATE INDEX ON :Broker(group_id);",
		"CREATE INDEX ON :Broker(phone);",
		"CREATE INDEX ON :Broker(email);",
		"CREATE INDEX ON :DupGroup(uuid);",
		"CREATE INDEX ON :DupGroup(group_id);",
		"CREATE INDEX ON :Report(uuid);",
		"CREATE INDEX ON :Report(group_id);",
	}

	for _, q := range queries {
		if _, err := s.execute(ctx, q, nil); err != nil {
			// Index may already exist.
			log.Printf("Warning: failed to create index '%s': %v", q, err)
		}
	}
	return nil
}

// dupGroupKey is stable across runs so re-detected groups merge instead of
// accumulating.
func dupGroupKey(groupID string, group model.DuplicateGroup) string {
	return fmt.Sprintf("%s/%s/%s", groupID, group.MatchType, group.MatchValue)
}
