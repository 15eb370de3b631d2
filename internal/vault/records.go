package vault

import (
	"encoding/json"
	"fmt"
	"sort"

	perrors "github.com/PolarWolf314/passmgr/internal/errors"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Record is a single credential entry.
//
// Records are values: updating an entry means storing a new Record under the
// same name. Notes is nil when the entry has no notes, which serialises as
// JSON null rather than an empty string.
type Record struct {
	Login  string  `json:"login"`
	Secret string  `json:"password"`
	Notes  *string `json:"notes"`
}

// NewRecord builds a record. The notes string is copied so later changes to
// the caller's variable do not leak into the record.
func NewRecord(login, secret string, notes *string) Record {
	r := Record{Login: login, Secret: secret}
	if notes != nil {
		n := *notes
		r.Notes = &n
	}
	return r
}

// HasNotes reports whether the record carries notes.
func (r Record) HasNotes() bool {
	return r.Notes != nil
}

// NotesText returns the notes, or "" when there are none.
func (r Record) NotesText() string {
	if r.Notes == nil {
		return ""
	}
	return *r.Notes
}

// Equal reports whether two records hold the same values, treating absent
// notes and empty notes as different.
func (r Record) Equal(other Record) bool {
	if r.Login != other.Login || r.Secret != other.Secret {
		return false
	}
	if r.Notes == nil || other.Notes == nil {
		return r.Notes == nil && other.Notes == nil
	}
	return *r.Notes == *other.Notes
}

// Records is the decrypted contents of a vault: a set of records keyed by a
// unique name. It serialises with names in sorted order so the plaintext is
// stable across runs.
type Records struct {
	entries map[string]Record
}

// recordsDocument is the JSON layout of the plaintext.
type recordsDocument struct {
	Entries map[string]Record `json:"entries"`
}

// NewRecords returns an empty collection.
func NewRecords() *Records {
	return &Records{entries: make(map[string]Record)}
}

// Len returns the number of records.
func (r *Records) Len() int {
	return len(r.entries)
}

// Get returns the record stored under name.
func (r *Records) Get(name string) (Record, bool) {
	rec, ok := r.entries[name]
	return rec, ok
}

// Put stores rec under name, replacing any existing record. It reports
// whether a record was replaced.
func (r *Records) Put(name string, rec Record) bool {
	if r.entries == nil {
		r.entries = make(map[string]Record)
	}
	_, replaced := r.entries[name]
	r.entries[name] = NewRecord(rec.Login, rec.Secret, rec.Notes)
	return replaced
}

// Remove deletes the record stored under name and reports whether it existed.
func (r *Records) Remove(name string) bool {
	if _, ok := r.entries[name]; !ok {
		return false
	}
	delete(r.entries, name)
	return true
}

// Names returns every record name in sorted order.
func (r *Records) Names() []string {
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Filter returns the sorted names matching a glob pattern such as
// "*.example.com" or "work/**". An empty pattern matches everything.
func (r *Records) Filter(pattern string) ([]string, error) {
	if pattern == "" {
		return r.Names(), nil
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("%w: %q", perrors.ErrInvalidPattern, pattern)
	}

	var matched []string
	for _, name := range r.Names() {
		ok, err := doublestar.Match(pattern, name)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", perrors.ErrInvalidPattern, err)
		}
		if ok {
			matched = append(matched, name)
		}
	}
	return matched, nil
}

// Suggest returns up to limit names that fuzzily resemble name, closest
// first. It is used for "did you mean" hints when a lookup misses.
func (r *Records) Suggest(name string, limit int) []string {
	if name == "" || limit <= 0 {
		return nil
	}

	ranks := fuzzy.RankFindFold(name, r.Names())
	sort.Sort(ranks)

	var suggestions []string
	for _, rank := range ranks {
		if len(suggestions) == limit {
			break
		}
		suggestions = append(suggestions, rank.Target)
	}
	return suggestions
}

// Equal reports whether both collections hold the same names and records.
func (r *Records) Equal(other *Records) bool {
	if r.Len() != other.Len() {
		return false
	}
	for name, rec := range r.entries {
		o, ok := other.entries[name]
		if !ok || !rec.Equal(o) {
			return false
		}
	}
	return true
}

// MarshalJSON encodes the collection as {"entries": {...}}. encoding/json
// writes map keys in sorted order.
func (r *Records) MarshalJSON() ([]byte, error) {
	doc := recordsDocument{Entries: r.entries}
	if doc.Entries == nil {
		doc.Entries = map[string]Record{}
	}
	return json.Marshal(doc)
}

// UnmarshalJSON decodes {"entries": {...}}. A null or missing entries field
// yields an empty collection.
func (r *Records) UnmarshalJSON(data []byte) error {
	var doc recordsDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	if doc.Entries == nil {
		doc.Entries = make(map[string]Record)
	}
	r.entries = doc.Entries
	return nil
}
