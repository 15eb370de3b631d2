package workflows

import (
	"context"
	"fmt"

	perrors "github.com/PolarWolf314/passmgr/internal/errors"
	"github.com/PolarWolf314/passmgr/internal/store"
	"github.com/PolarWolf314/passmgr/internal/vault"
)

// ChangePasswordOptions configures the passwd workflow.
type ChangePasswordOptions struct {
	Path        string
	OldPassword string
	NewPassword string
}

// ChangePasswordResult contains the outcome of a passwd operation.
type ChangePasswordResult struct {
	VaultStatus
}

// ChangePassword re-encrypts the vault under a new master password and a
// new salt.
//
// Returns ErrAuthenticationFailure if the old password does not open the
// vault. Returns ErrInvalidInput if the new password is empty.
func ChangePassword(ctx context.Context, opts ChangePasswordOptions) (*ChangePasswordResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if opts.NewPassword == "" {
		return nil, fmt.Errorf("%w: new master password cannot be empty", perrors.ErrInvalidInput)
	}

	c, err := store.Load(opts.Path)
	if err != nil {
		return nil, err
	}

	updated, records, err := vault.ChangePassword(c, opts.OldPassword, opts.NewPassword)
	if err != nil {
		return nil, fmt.Errorf("changing master password for %s: %w", opts.Path, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := store.Save(opts.Path, updated); err != nil {
		return nil, err
	}

	recordAudit("passwd", opts.Path, records.Len())

	s := &session{path: opts.Path, container: updated, records: records}
	return &ChangePasswordResult{VaultStatus: s.status()}, nil
}
