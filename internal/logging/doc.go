// Package logger provides leveled logging for passmgr commands.
//
// Output is prefixed with a colored tag ([info], [debug], [warn], [error]).
// Secrets, master passwords and record names are never passed to the
// logger; only vault paths, counts and error kinds are.
//
// # Verbosity Levels
//
//   - --verbose: shows info and warning messages
//   - --debug: shows everything, including errors that are also reported to
//     the user in friendlier form
//
// Without flags only WarnfAlways output is shown.
//
// # Usage
//
//	log := Logger{Verbose: verbose, Debug: debug}
//	log.Infof("Opened vault with %d entries", n)
//	return log.ErrorfAndReturn("failed to save vault: %v", err)
//
// The root command builds the logger in PersistentPreRun.
package logger
