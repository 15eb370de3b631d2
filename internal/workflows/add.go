package workflows

import (
	"context"
	"fmt"

	perrors "github.com/PolarWolf314/passmgr/internal/errors"
	"github.com/PolarWolf314/passmgr/internal/passgen"
	"github.com/PolarWolf314/passmgr/internal/vault"
)

// AddOptions configures the add workflow.
type AddOptions struct {
	// Path is the vault file.
	Path string

	// Password is the master password.
	Password string

	// Name identifies the record.
	Name string

	// Login is the account name stored in the record.
	Login string

	// Secret is the stored password. Ignored when Generate is set.
	Secret string

	// Notes is optional free text. Nil means no notes.
	Notes *string

	// Generate replaces Secret with a random password shaped by Generator.
	Generate bool

	// Generator controls the generated password.
	Generator passgen.Options
}

// AddResult contains the outcome of an add operation.
type AddResult struct {
	VaultStatus

	// Name is the stored record's name.
	Name string

	// Replaced is true when a record with the same name was overwritten.
	Replaced bool

	// Unchanged is true when an identical record already existed and the
	// vault was not rewritten.
	Unchanged bool

	// GeneratedSecret is the generated password, if Generate was set.
	GeneratedSecret string
}

// Add stores a record, replacing any record with the same name.
//
// Returns ErrInvalidInput for an unusable name or an empty login.
// Returns ErrPasswordImpossible if the generator options cannot be met.
func Add(ctx context.Context, opts AddOptions) (*AddResult, error) {
	if err := validateName(opts.Name); err != nil {
		return nil, err
	}
	if opts.Login == "" {
		return nil, fmt.Errorf("%w: login cannot be empty", perrors.ErrInvalidInput)
	}

	result := &AddResult{Name: opts.Name}

	secret := opts.Secret
	if opts.Generate {
		generated, err := passgen.Generate(opts.Generator)
		if err != nil {
			return nil, err
		}
		secret = generated
		result.GeneratedSecret = generated
	}

	record := vault.NewRecord(opts.Login, secret, opts.Notes)

	s, err := withVault(ctx, opts.Path, opts.Password, "add", func(records *vault.Records) (bool, error) {
		if existing, ok := records.Get(opts.Name); ok && existing.Equal(record) {
			result.Unchanged = true
			return false, nil
		}
		result.Replaced = records.Put(opts.Name, record)
		return true, nil
	})
	if err != nil {
		return nil, err
	}

	result.VaultStatus = s.status()
	return result, nil
}
