// Package utils provides shared helpers for passmgr's command layer.
//
// # Terminal Utilities
//
//   - ReadPassphrase / ReadNewPassphrase: masked prompts via golang.org/x/term
//   - IsTerminal: reports whether stdin is interactive
//
// # I/O Utilities
//
//   - ReadStdin: reads a piped value such as an entry password
//   - ReadLine: reads a single visible line, used for optional notes
//
// # Filesystem Utilities
//
//   - ExpandHome: expands "~" in configured vault paths
//   - CheckPrivatePermissions: detects vault files readable by others
//
// # String Utilities
//
//   - FormatNames: renders entry names as a bullet list
//   - ValidateEntryName: rejects empty or unprintable entry names
//
// None of these run inside the vault package; the cryptographic core only
// ever sees values that were already read.
package utils
