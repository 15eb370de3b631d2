package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, strings.TrimPrefix(path, "~")), nil
}

// CheckPrivatePermissions reports whether a file is readable by anyone other
// than its owner. Missing files are not an error.
func CheckPrivatePermissions(path string) (os.FileMode, bool, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return 0, true, nil
	}
	if err != nil {
		return 0, false, err
	}
	perm := info.Mode().Perm()
	return perm, perm&0077 == 0, nil
}
