package workflows

import (
	"context"
	"fmt"

	perrors "github.com/PolarWolf314/passmgr/internal/errors"
	"github.com/PolarWolf314/passmgr/internal/store"
	"github.com/PolarWolf314/passmgr/internal/vault"
)

// InitOptions configures the init workflow.
type InitOptions struct {
	// Path is the vault file to create.
	Path string

	// Password is the new master password.
	Password string
}

// InitResult contains the outcome of an init operation.
type InitResult struct {
	// Path is the created vault file.
	Path string
}

// Init creates a new, empty vault.
//
// Returns ErrVaultExists if a file is already present at the path.
// Returns ErrInvalidInput if the password is empty.
func Init(ctx context.Context, opts InitOptions) (*InitResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if opts.Path == "" {
		return nil, fmt.Errorf("%w: no vault path given", perrors.ErrInvalidInput)
	}

	// Checked before derivation so the user is not kept waiting.
	if store.Exists(opts.Path) {
		return nil, fmt.Errorf("%w: %s", perrors.ErrVaultExists, opts.Path)
	}

	c, err := vault.Create(opts.Password)
	if err != nil {
		return nil, fmt.Errorf("creating vault: %w", err)
	}

	if err := store.Create(opts.Path, c); err != nil {
		return nil, err
	}

	recordAudit("init", opts.Path, 0)

	return &InitResult{Path: opts.Path}, nil
}
