package model

import "sort"

// Record is one scraped brokerage/agent entity, keyed by field name.
// Values arrive loosely typed from scraped JSON: strings, numbers, bools,
// lists, nested maps, or nil. Validators must tolerate all of them.
type Record map[string]any

// ID returns the record's identifier field, or "" when absent.
func (r Record) ID() string {
	return r.StringField("id")
}

// StringField returns the named field as a string, or "" when the field is
// missing or not a string.
func (r Record) StringField(name string) string {
	if r == nil {
		return ""
	}
	if s, ok := r[name].(string); ok {
		return s
	}
	return ""
}

// Clone returns a shallow copy of the record. Validators that propose
// replacement field values work on a clone, never the caller's map.
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// FieldNames returns the record's keys in sorted order, for stable output.
func (r Record) FieldNames() []string {
	names := make([]string, 0, len(r))
	for k := range r {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
