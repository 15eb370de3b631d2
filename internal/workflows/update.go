package workflows

import (
	"context"

	"github.com/PolarWolf314/passmgr/internal/update"
)

// UpdateOptions configures the update-check workflow.
type UpdateOptions struct {
	// CurrentVersion is the running build's version.
	CurrentVersion string

	// Owner and Repo name the GitHub repository publishing releases.
	Owner string
	Repo  string

	// BaseURL overrides the GitHub API root. Empty means the public API.
	BaseURL string
}

// CheckUpdate asks the release feed whether a newer version exists. It is
// only ever run on request.
//
// Returns ErrUpdateCheckFailed if the feed cannot be reached or parsed.
func CheckUpdate(ctx context.Context, opts UpdateOptions) (*update.Result, error) {
	checker := update.NewChecker(opts.Owner, opts.Repo)
	if opts.BaseURL != "" {
		checker.BaseURL = opts.BaseURL
	}
	return checker.Check(ctx, opts.CurrentVersion)
}
