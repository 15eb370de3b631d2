package audit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/PolarWolf314/passmgr/internal/configs"

	"github.com/google/uuid"
)

// useTempDataDir points the audit log at a fresh directory for one test.
func useTempDataDir(t *testing.T) string {
	t.Helper()
	dataDir := filepath.Join(t.TempDir(), "data")

	original := configs.UserPassmgrSettings
	configs.UserPassmgrSettings = &configs.UserSettings{
		ConfigPath: filepath.Join(t.TempDir(), "config"),
		DataPath:   dataDir,
		Username:   "tester",
	}
	t.Cleanup(func() {
		configs.UserPassmgrSettings = original
	})
	return dataDir
}

func TestLog_CreatesFile(t *testing.T) {
	dataDir := useTempDataDir(t)

	Log(Entry{User: "tester", Operation: "init"})

	logPath := filepath.Join(dataDir, "audit.jsonl")
	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Audit log file was not created: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("Expected permissions 0600, got %o", info.Mode().Perm())
	}
}

func TestLog_AppendsEntries(t *testing.T) {
	useTempDataDir(t)

	Log(Entry{User: "alice", Operation: "init"})
	Log(Entry{User: "alice", Operation: "add", EntriesCount: 1})
	Log(Entry{User: "alice", Operation: "remove"})

	entries, err := ReadEntries()
	if err != nil {
		t.Fatalf("ReadEntries failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(entries))
	}

	expectedOps := []string{"init", "add", "remove"}
	for i, op := range expectedOps {
		if entries[i].Operation != op {
			t.Errorf("Entry %d: expected op %q, got %q", i, op, entries[i].Operation)
		}
	}
	if entries[1].EntriesCount != 1 {
		t.Errorf("Expected entries_count 1, got %d", entries[1].EntriesCount)
	}
}

func TestLog_FillsTimestampAndRun(t *testing.T) {
	useTempDataDir(t)

	Log(Entry{Operation: "list"})

	entries, err := ReadEntries()
	if err != nil || len(entries) != 1 {
		t.Fatalf("Expected one entry, got %d (err %v)", len(entries), err)
	}

	entry := entries[0]
	if _, err := time.Parse("2006-01-02T15:04:05.000000Z", entry.Timestamp); err != nil {
		t.Errorf("Timestamp %q is not in the expected format: %v", entry.Timestamp, err)
	}
	if entry.Run != RunID() {
		t.Errorf("Expected run %q, got %q", RunID(), entry.Run)
	}
	if _, err := uuid.Parse(entry.Run); err != nil {
		t.Errorf("Run id %q is not a UUID: %v", entry.Run, err)
	}
}

func TestLog_PreservesTimestamp(t *testing.T) {
	useTempDataDir(t)

	Log(Entry{Timestamp: "2024-01-15T10:30:00.000000Z", Operation: "get"})

	entries, _ := ReadEntries()
	if len(entries) != 1 || entries[0].Timestamp != "2024-01-15T10:30:00.000000Z" {
		t.Errorf("Expected preserved timestamp, got %+v", entries)
	}
}

func TestLog_AbsoluteVaultPath(t *testing.T) {
	useTempDataDir(t)

	Log(Entry{Operation: "add", Vault: "vault.json"})

	entries, _ := ReadEntries()
	if len(entries) != 1 {
		t.Fatalf("Expected one entry, got %d", len(entries))
	}
	if !filepath.IsAbs(entries[0].Vault) {
		t.Errorf("Expected absolute vault path, got %q", entries[0].Vault)
	}
}

func TestLog_NoDataPath(t *testing.T) {
	original := configs.UserPassmgrSettings
	configs.UserPassmgrSettings = &configs.UserSettings{}
	defer func() {
		configs.UserPassmgrSettings = original
	}()

	// Must not panic.
	Log(Entry{Operation: "init"})

	if LogPath() != "" {
		t.Errorf("Expected empty log path, got %q", LogPath())
	}
	entries, err := ReadEntries()
	if err != nil || entries != nil {
		t.Errorf("Expected no entries and no error, got %v, %v", entries, err)
	}
}

func TestLog_UnwritableDirectory(t *testing.T) {
	base := t.TempDir()
	blocker := filepath.Join(base, "file")
	if err := os.WriteFile(blocker, []byte("x"), 0600); err != nil {
		t.Fatal(err)
	}

	original := configs.UserPassmgrSettings
	configs.UserPassmgrSettings = &configs.UserSettings{DataPath: filepath.Join(blocker, "data")}
	defer func() {
		configs.UserPassmgrSettings = original
	}()

	// Must not panic or fail.
	Log(Entry{Operation: "init"})
}

func TestLogWithUser(t *testing.T) {
	useTempDataDir(t)

	entry := LogWithUser("passwd")
	if entry.Operation != "passwd" {
		t.Errorf("Expected op passwd, got %q", entry.Operation)
	}
	if entry.User != "tester" {
		t.Errorf("Expected user tester, got %q", entry.User)
	}
	if entry.Run != RunID() {
		t.Errorf("Expected run id to be set")
	}
}

func TestEntry_OmitsEmptyFields(t *testing.T) {
	data, err := json.Marshal(Entry{Timestamp: "t", User: "u", Run: "r", Operation: "list"})
	if err != nil {
		t.Fatal(err)
	}
	s := string(data)
	if strings.Contains(s, "vault") || strings.Contains(s, "entries_count") {
		t.Errorf("Expected optional fields to be omitted, got %s", s)
	}
}

func TestParseEntries(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		expected int
	}{
		{"empty", "", 0},
		{"single", `{"ts":"t","op":"init"}`, 1},
		{"trailing newline", "{\"op\":\"init\"}\n{\"op\":\"add\"}\n", 2},
		{"blank lines", "{\"op\":\"init\"}\n\n\n{\"op\":\"add\"}", 2},
		{"malformed skipped", "{\"op\":\"init\"}\nnot json\n{\"op\":\"add\"", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := ParseEntries([]byte(tt.data))
			if err != nil {
				t.Fatalf("ParseEntries failed: %v", err)
			}
			if len(entries) != tt.expected {
				t.Errorf("Expected %d entries, got %d", tt.expected, len(entries))
			}
		})
	}
}
