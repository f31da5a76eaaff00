package models

import (
	"encoding/json"
	"time"
)

// Record is the envelope shared by every entity in the store. Domain fields
// (customer name, order items, measurement values, ...) live in Fields and are
// carried through storage and sync without interpretation.
//
// On the wire and in the fields column the record is a single flat JSON
// object: the envelope keys below plus the domain fields at the same level.
type Record struct {
	ID        string
	CreatedAt time.Time
	UpdatedAt time.Time
	Synced    bool
	Fields    map[string]any
}

// Envelope keys in the flat JSON form. The backend and the original web
// client both use Mongo-style "_id".
const (
	keyID        = "_id"
	keyCreatedAt = "createdAt"
	keyUpdatedAt = "updatedAt"
	keySynced    = "synced"
)

// MarshalJSON flattens the envelope and the domain fields into one object.
func (r Record) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(r.Fields)+4)
	for k, v := range r.Fields {
		m[k] = v
	}
	m[keyID] = r.ID
	m[keySynced] = r.Synced
	if !r.CreatedAt.IsZero() {
		m[keyCreatedAt] = r.CreatedAt.UTC().Format(time.RFC3339Nano)
	}
	if !r.UpdatedAt.IsZero() {
		m[keyUpdatedAt] = r.UpdatedAt.UTC().Format(time.RFC3339Nano)
	}
	return json.Marshal(m)
}

// UnmarshalJSON extracts the envelope keys and keeps everything else in
// Fields. A missing or malformed synced flag decodes as false, so records of
// unknown provenance stay push-eligible.
func (r *Record) UnmarshalJSON(data []byte) error {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}

	r.ID, _ = m[keyID].(string)
	r.Synced, _ = m[keySynced].(bool)
	r.CreatedAt = parseTime(m[keyCreatedAt])
	r.UpdatedAt = parseTime(m[keyUpdatedAt])

	delete(m, keyID)
	delete(m, keySynced)
	delete(m, keyCreatedAt)
	delete(m, keyUpdatedAt)
	r.Fields = m

	return nil
}

func parseTime(v any) time.Time {
	s, ok := v.(string)
	if !ok {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// Clone returns a deep-enough copy for sync bookkeeping: the envelope is
// copied by value and the Fields map is re-allocated. Values inside Fields
// are shared.
func (r Record) Clone() Record {
	out := r
	out.Fields = make(map[string]any, len(r.Fields))
	for k, v := range r.Fields {
		out.Fields[k] = v
	}
	return out
}

// Field returns the named domain field, or nil when absent.
func (r Record) Field(name string) any {
	if r.Fields == nil {
		return nil
	}
	return r.Fields[name]
}
