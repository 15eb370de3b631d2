package vault

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	perrors "github.com/PolarWolf314/passmgr/internal/errors"
)

func TestRecordsPutGetRemove(t *testing.T) {
	records := NewRecords()

	if replaced := records.Put("github.com", NewRecord("octocat", "one", nil)); replaced {
		t.Error("Expected first Put to not replace anything")
	}
	if replaced := records.Put("github.com", NewRecord("octocat", "two", nil)); !replaced {
		t.Error("Expected second Put to replace the record")
	}

	rec, ok := records.Get("github.com")
	if !ok {
		t.Fatal("Expected github.com to exist")
	}
	if rec.Secret != "two" {
		t.Errorf("Expected replaced secret 'two', got %q", rec.Secret)
	}

	if !records.Remove("github.com") {
		t.Error("Expected Remove to report the record existed")
	}
	if records.Remove("github.com") {
		t.Error("Expected second Remove to report nothing was removed")
	}
	if records.Len() != 0 {
		t.Errorf("Expected empty collection, got %d", records.Len())
	}
}

func TestNewRecordCopiesNotes(t *testing.T) {
	notes := "original"
	rec := NewRecord("login", "secret", &notes)
	notes = "changed"

	if rec.NotesText() != "original" {
		t.Errorf("Expected record notes to be independent of caller, got %q", rec.NotesText())
	}
}

func TestRecordsNamesSorted(t *testing.T) {
	records := NewRecords()
	for _, name := range []string{"zeta", "alpha", "Mid", "beta"} {
		records.Put(name, NewRecord("l", "s", nil))
	}

	want := []string{"Mid", "alpha", "beta", "zeta"}
	if got := records.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestRecordsSerialisationIsStable(t *testing.T) {
	a := NewRecords()
	b := NewRecords()
	names := []string{"c.example", "a.example", "b.example"}
	for _, name := range names {
		a.Put(name, NewRecord("u", "p", nil))
	}
	for i := len(names) - 1; i >= 0; i-- {
		b.Put(names[i], NewRecord("u", "p", nil))
	}

	ja, err := json.Marshal(a)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	jb, err := json.Marshal(b)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(ja) != string(jb) {
		t.Errorf("Expected identical serialisation regardless of insertion order:\n%s\n%s", ja, jb)
	}

	want := `{"entries":{"a.example":{"login":"u","password":"p","notes":null},"b.example":{"login":"u","password":"p","notes":null},"c.example":{"login":"u","password":"p","notes":null}}}`
	if string(ja) != want {
		t.Errorf("Expected %s, got %s", want, ja)
	}
}

func TestRecordsNotesAbsentVersusEmpty(t *testing.T) {
	records := NewRecords()
	records.Put("none", NewRecord("u", "p", nil))
	records.Put("empty", NewRecord("u", "p", strPtr("")))

	data, err := json.Marshal(records)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	decoded := NewRecords()
	if err := json.Unmarshal(data, decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	none, _ := decoded.Get("none")
	if none.HasNotes() {
		t.Error("Expected absent notes to stay absent")
	}
	empty, _ := decoded.Get("empty")
	if !empty.HasNotes() || empty.NotesText() != "" {
		t.Error("Expected empty notes to stay present and empty")
	}
}

func TestRecordsUnmarshalNullEntries(t *testing.T) {
	for _, input := range []string{`{}`, `{"entries":null}`, `null`} {
		records := NewRecords()
		if err := json.Unmarshal([]byte(input), records); err != nil {
			t.Fatalf("Input %s: unexpected error %v", input, err)
		}
		if records.Len() != 0 {
			t.Errorf("Input %s: expected empty collection", input)
		}
		// Must be writable afterwards.
		records.Put("x", NewRecord("u", "p", nil))
	}
}

func TestRecordsFilter(t *testing.T) {
	records := NewRecords()
	for _, name := range []string{"github.com", "gitlab.com", "mail.google.com", "work/vpn", "work/jira/admin"} {
		records.Put(name, NewRecord("u", "p", nil))
	}

	tests := []struct {
		pattern string
		want    []string
	}{
		{"", []string{"github.com", "gitlab.com", "mail.google.com", "work/jira/admin", "work/vpn"}},
		{"git*", []string{"github.com", "gitlab.com"}},
		{"*.google.com", []string{"mail.google.com"}},
		{"work/*", []string{"work/vpn"}},
		{"work/**", []string{"work/jira/admin", "work/vpn"}},
		{"nothing*", nil},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			got, err := records.Filter(tt.pattern)
			if err != nil {
				t.Fatalf("Filter failed: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestRecordsFilterInvalidPattern(t *testing.T) {
	records := NewRecords()
	records.Put("a", NewRecord("u", "p", nil))

	_, err := records.Filter("[unclosed")
	if !errors.Is(err, perrors.ErrInvalidPattern) {
		t.Errorf("Expected ErrInvalidPattern, got %v", err)
	}
}

func TestRecordsSuggest(t *testing.T) {
	records := NewRecords()
	for _, name := range []string{"github.com", "gitlab.com", "bank"} {
		records.Put(name, NewRecord("u", "p", nil))
	}

	got := records.Suggest("ghub", 3)
	if len(got) != 1 || got[0] != "github.com" {
		t.Errorf("Expected [github.com], got %v", got)
	}

	got = records.Suggest("GIT", 1)
	if len(got) != 1 {
		t.Errorf("Expected limit of 1 suggestion, got %v", got)
	}

	if got := records.Suggest("zzz", 3); len(got) != 0 {
		t.Errorf("Expected no suggestions, got %v", got)
	}
	if got := records.Suggest("", 3); got != nil {
		t.Errorf("Expected no suggestions for empty input, got %v", got)
	}
}

func TestRecordEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Record
		want bool
	}{
		{"same without notes", NewRecord("u", "p", nil), NewRecord("u", "p", nil), true},
		{"same with notes", NewRecord("u", "p", strPtr("n")), NewRecord("u", "p", strPtr("n")), true},
		{"absent vs empty notes", NewRecord("u", "p", nil), NewRecord("u", "p", strPtr("")), false},
		{"different login", NewRecord("u", "p", nil), NewRecord("v", "p", nil), false},
		{"different secret", NewRecord("u", "p", nil), NewRecord("u", "q", nil), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Expected %t, got %t", tt.want, got)
			}
		})
	}
}
