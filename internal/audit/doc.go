// Package audit records a trail of passmgr operations.
//
// Every operation that touches a vault (init, add, remove, passwd, and the
// read-only get and list) appends one entry to a per-user log. The log
// answers "when was this vault last changed, and from which run" without
// revealing anything about its contents.
//
// # Log Format
//
// The audit log is stored as JSON Lines (one JSON object per line) at:
//
//	<data dir>/passmgr/audit.jsonl
//
// Each entry contains:
//   - Timestamp (RFC3339 with microseconds, UTC)
//   - Local username and a per-process run id
//   - Operation name
//   - Absolute vault path and the number of records after the operation
//
// Record names, logins and secrets are never written.
//
// # Usage
//
//	entry := audit.LogWithUser("add")
//	entry.Vault = path
//	entry.EntriesCount = records.Len()
//	audit.Log(entry)
//
// # Failure Handling
//
// Audit logging is best-effort. If the log cannot be written, the operation
// continues without error.
//
// # Reading Logs
//
// Use ReadEntries() to parse the audit log for display. Malformed lines are
// skipped to tolerate partial writes.
package audit
