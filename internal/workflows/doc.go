// Package workflows provides high-level orchestration for passmgr commands.
//
// Workflows coordinate the vault core, the vault file, configuration and the
// audit log to implement complete user-facing features. Each workflow
// handles a single command's business logic, independent of CLI concerns
// like flag parsing, prompts, spinners and output formatting.
//
// # Design Philosophy
//
// The cmd/ package should be a thin layer that:
//   - Parses command-line flags and arguments
//   - Prompts for the master password
//   - Calls the appropriate workflow function
//   - Formats the result for display
//
// Workflows handle everything else:
//   - Validating input
//   - Loading and decrypting the vault
//   - Performing the operation on the decrypted records
//   - Re-encrypting and atomically saving when something changed
//   - Recording audit trail entries
//
// # The Vault Pipeline
//
// Commands that modify the vault go through withVault, which loads the
// container, opens it with the master password, hands the records to a
// mutation and saves only if the mutation reports a change. A failed
// decrypt never reaches the save step, so a wrong password cannot damage
// the file. Read-only commands use readVault and never write.
//
// # Available Workflows
//
//   - Init: Creates a new, empty vault file
//   - Add: Stores or replaces a record, optionally with a generated password
//   - Get: Returns one record, with "did you mean" suggestions on a miss
//   - List: Lists record names, optionally filtered by a glob
//   - Remove: Deletes a record
//   - ChangePassword: Re-encrypts the vault under a new master password
//   - Log: Reads and filters the audit trail
//   - CheckUpdate: Compares this build against the latest release
//   - ConfigShow, ConfigSet: Read and change config.toml
//
// # Error Handling
//
// Workflows return typed errors from the internal/errors package, allowing
// the CLI layer to provide appropriate user-facing messages without string
// matching. Use errors.Is() to check for specific error conditions:
//
//	result, err := workflows.Get(ctx, opts)
//	if errors.Is(err, perrors.ErrAuthenticationFailure) {
//	    // Wrong master password, or the file was modified.
//	}
//
// # Context Usage
//
// All workflow functions accept a context.Context as their first parameter.
// It is checked before each expensive step; key derivation itself is not
// interruptible.
package workflows
