package utils

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/PolarWolf314/passmgr/internal/ui"
)

// FormatNames formats entry names as an indented bullet list.
func FormatNames(names []string) string {
	var b strings.Builder
	for _, name := range names {
		b.WriteString("  • ")
		b.WriteString(ui.Name.Sprint(name))
		b.WriteString("\n")
	}
	return b.String()
}

// ValidateEntryName rejects names that would be awkward to type or print:
// empty names, surrounding whitespace and control characters.
func ValidateEntryName(name string) error {
	if name == "" {
		return fmt.Errorf("entry name cannot be empty")
	}
	if strings.TrimSpace(name) != name {
		return fmt.Errorf("entry name %q has leading or trailing whitespace", name)
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return fmt.Errorf("entry name %q contains control characters", name)
		}
	}
	return nil
}
