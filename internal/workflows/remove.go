package workflows

import (
	"context"

	"github.com/PolarWolf314/passmgr/internal/vault"
)

// RemoveOptions configures the remove workflow.
type RemoveOptions struct {
	Path     string
	Password string
	Name     string
}

// RemoveResult contains the outcome of a remove operation.
type RemoveResult struct {
	VaultStatus

	Name string
}

// Remove deletes the record stored under opts.Name.
//
// Returns a *NotFoundError, which matches ErrEntryNotFound, when the name
// does not exist. The vault is not rewritten in that case.
func Remove(ctx context.Context, opts RemoveOptions) (*RemoveResult, error) {
	if err := validateName(opts.Name); err != nil {
		return nil, err
	}

	s, err := withVault(ctx, opts.Path, opts.Password, "remove", func(records *vault.Records) (bool, error) {
		if !records.Remove(opts.Name) {
			return false, notFound(records, opts.Name)
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}

	return &RemoveResult{VaultStatus: s.status(), Name: opts.Name}, nil
}
