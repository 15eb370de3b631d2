package workflows

import (
	"context"

	"github.com/PolarWolf314/passmgr/internal/vault"
)

// GetOptions configures the get workflow.
type GetOptions struct {
	Path     string
	Password string
	Name     string
}

// GetResult contains the outcome of a get operation.
type GetResult struct {
	VaultStatus

	Name   string
	Record vault.Record
}

// Get returns the record stored under opts.Name.
//
// Returns a *NotFoundError, which matches ErrEntryNotFound, when the name
// does not exist.
func Get(ctx context.Context, opts GetOptions) (*GetResult, error) {
	if err := validateName(opts.Name); err != nil {
		return nil, err
	}

	s, err := readVault(ctx, opts.Path, opts.Password, "get")
	if err != nil {
		return nil, err
	}

	record, ok := s.records.Get(opts.Name)
	if !ok {
		return nil, notFound(s.records, opts.Name)
	}

	return &GetResult{
		VaultStatus: s.status(),
		Name:        opts.Name,
		Record:      record,
	}, nil
}
