// Package ui provides semantic text formatting for passmgr output.
//
// Formatters render with color when the terminal supports it. When NO_COLOR
// is set or color is unavailable, text decorations (backticks, quotes) make
// the same distinctions.
//
// # Semantic Formatters
//
//	ui.Code.Sprint("passmgr init")        // Commands
//	ui.Path.Sprint("vault.json")          // File paths
//	ui.Name.Sprint("example.com")         // Entry names
//	ui.Secret.Sprint(record.Secret)       // Revealed passwords
//	ui.Success.Sprint("✓")                // Success indicators
//	ui.Error.Sprint("✗")                  // Error indicators
//	ui.Warning.Sprint("⚠")                // Warnings
//	ui.Info.Sprint("→")                   // Hints
//	ui.Muted.Sprint("no notes")           // De-emphasized text
//
// Mask hides a secret for display when it should not be revealed.
package ui
