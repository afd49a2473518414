// Package consolidate is the batch caller of the validation core: it loads
// scraped record files, runs the full pipeline, applies the standardized
// values, and writes the cleaned dataset plus reports. All file I/O lives
// here; the core stays pure.
package consolidate

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/brokerbase/validata/internal/core/model"
	"github.com/brokerbase/validata/internal/core/report"
	"github.com/brokerbase/validata/internal/core/validate"
)

// Result is the outcome of one consolidation run.
type Result struct {
	Report  *model.Report
	Cleaned []model.Record
	Loaded  int
}

// LoadRecords reads every *.json file in dir. A file may hold one record
// object or an array of records; files that fail to decode are reported, not
// fatal.
func LoadRecords(dir string) ([]model.Record, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read input directory '%s': %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".json" {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	var records []model.Record
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("failed to read '%s': %w", name, err)
		}

		var batch []model.Record
		if err := json.Unmarshal(data, &batch); err == nil {
			records = append(records, batch...)
			continue
		}
		var single model.Record
		if err := json.Unmarshal(data, &single); err != nil {
			return nil, fmt.Errorf("'%s' is neither a record nor a record array: %w", name, err)
		}
		records = append(records, single)
	}
	return records, nil
}

// CleanRecords applies the validators' standardized values as an immutable
// transform: every returned record is a copy, inputs are never mutated.
func CleanRecords(records []model.Record) []model.Record {
	cleaned := make([]model.Record, 0, len(records))
	for _, rec := range records {
		out := rec.Clone()

		if res := validate.ValidatePhone(rec["phone"]); res.StandardizedPhone != "" {
			out["phone"] = res.StandardizedPhone
		}
		if res := validate.ValidateEmail(rec["email"]); res.IsValid {
			out["email"] = res.NormalizedEmail
		}

		cleaned = append(cleaned, out)
	}
	return cleaned
}

// Run loads, validates, cleans, and writes everything into outputDir:
// records_clean.json, validation_report.json, and validation_report.md.
func Run(inputDir, outputDir string) (*Result, error) {
	records, err := LoadRecords(inputDir)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Report:  report.Generate(records),
		Cleaned: CleanRecords(records),
		Loaded:  len(records),
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := writeJSON(filepath.Join(outputDir, "records_clean.json"), res.Cleaned); err != nil {
		return nil, err
	}
	if err := writeJSON(filepath.Join(outputDir, "validation_report.json"), res.Report); err != nil {
		return nil, err
	}
	md := RenderMarkdown(res.Report)
	if err := os.WriteFile(filepath.Join(outputDir, "validation_report.md"), []byte(md), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write markdown report: %w", err)
	}

	return res, nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode '%s': %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write '%s': %w", filepath.Base(path), err)
	}
	return nil
}
