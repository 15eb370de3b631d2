package workflows

import (
	"context"
)

// ListOptions configures the list workflow.
type ListOptions struct {
	Path     string
	Password string

	// Pattern is an optional glob, e.g. "work/*" or "*.example.com".
	Pattern string
}

// ListResult contains the outcome of a list operation.
type ListResult struct {
	VaultStatus

	// Names are the matching record names in sorted order.
	Names []string
}

// List returns the names of the records in the vault.
//
// Returns ErrInvalidPattern if the pattern is not a valid glob.
func List(ctx context.Context, opts ListOptions) (*ListResult, error) {
	s, err := readVault(ctx, opts.Path, opts.Password, "list")
	if err != nil {
		return nil, err
	}

	names, err := s.records.Filter(opts.Pattern)
	if err != nil {
		return nil, err
	}

	return &ListResult{VaultStatus: s.status(), Names: names}, nil
}
