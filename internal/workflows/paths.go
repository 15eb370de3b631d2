package workflows

import (
	"path/filepath"

	"github.com/PolarWolf314/passmgr/internal/utils"
)

// absPath expands "~" and makes path absolute, matching how audit entries
// record vault paths.
func absPath(path string) (string, error) {
	expanded, err := utils.ExpandHome(path)
	if err != nil {
		return "", err
	}
	return filepath.Abs(expanded)
}
