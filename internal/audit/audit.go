package audit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/PolarWolf314/passmgr/internal/configs"

	"github.com/google/uuid"
)

// Entry represents a single audit log entry.
type Entry struct {
	Timestamp string `json:"ts"`   // RFC3339 with microseconds.
	User      string `json:"user"` // Local username.
	Run       string `json:"run"`  // Identifies every entry written by one process.
	Operation string `json:"op"`   // Operation name.

	Vault        string `json:"vault,omitempty"`         // Absolute vault path.
	EntriesCount int    `json:"entries_count,omitempty"` // Records in the vault afterwards.
}

// runID ties together the entries of a single invocation.
var runID = uuid.NewString()

// RunID returns the identifier stamped on entries from this process.
func RunID() string {
	return runID
}

// Log appends an entry to the audit log.
// If logging fails, the error is dropped; operations never fail because of it.
func Log(entry Entry) {
	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format("2006-01-02T15:04:05.000000Z")
	}
	if entry.Run == "" {
		entry.Run = runID
	}
	if entry.Vault != "" {
		if abs, err := filepath.Abs(entry.Vault); err == nil {
			entry.Vault = abs
		}
	}

	logPath := LogPath()
	if logPath == "" {
		return
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0700); err != nil {
		return
	}

	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}

	_, _ = f.Write(append(data, '\n'))
}

// LogWithUser returns an entry for op with the user fields populated.
func LogWithUser(op string) Entry {
	entry := Entry{Operation: op, Run: runID}
	if configs.UserPassmgrSettings != nil {
		entry.User = configs.UserPassmgrSettings.Username
	}
	return entry
}

// LogPath returns the path to the audit log file.
// Returns empty string if no data directory is configured.
func LogPath() string {
	if configs.UserPassmgrSettings == nil || configs.UserPassmgrSettings.DataPath == "" {
		return ""
	}
	return filepath.Join(configs.UserPassmgrSettings.DataPath, "audit.jsonl")
}

// ReadEntries reads all entries from the audit log.
// Returns an empty slice if the log doesn't exist.
func ReadEntries() ([]Entry, error) {
	logPath := LogPath()
	if logPath == "" {
		return nil, nil
	}

	data, err := os.ReadFile(logPath)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return ParseEntries(data)
}

// ParseEntries parses JSON Lines data into audit entries.
// Malformed lines are silently skipped.
func ParseEntries(data []byte) ([]Entry, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var entries []Entry
	start := 0

	for i := 0; i <= len(data); i++ {
		if i == len(data) || data[i] == '\n' {
			line := data[start:i]
			start = i + 1

			if len(line) == 0 {
				continue
			}

			var entry Entry
			if err := json.Unmarshal(line, &entry); err != nil {
				continue
			}
			entries = append(entries, entry)
		}
	}

	return entries, nil
}
