package workflows

import (
	"context"
	"fmt"
	"os"

	"github.com/PolarWolf314/passmgr/internal/audit"
	perrors "github.com/PolarWolf314/passmgr/internal/errors"
	"github.com/PolarWolf314/passmgr/internal/store"
	"github.com/PolarWolf314/passmgr/internal/utils"
	"github.com/PolarWolf314/passmgr/internal/vault"
)

// VaultStatus describes the vault file a workflow ran against.
type VaultStatus struct {
	// Path is the vault file.
	Path string

	// EntriesCount is the number of records after the operation.
	EntriesCount int

	// LoosePermissions is the file mode when the vault is readable by
	// group or others, and zero otherwise.
	LoosePermissions os.FileMode
}

// mutation changes records in place and reports whether the vault must be
// rewritten.
type mutation func(records *vault.Records) (bool, error)

// session is an opened vault.
type session struct {
	path      string
	container vault.Container
	records   *vault.Records
}

func (s *session) status() VaultStatus {
	st := VaultStatus{Path: s.path, EntriesCount: s.records.Len()}
	if perm, private, err := utils.CheckPrivatePermissions(s.path); err == nil && !private {
		st.LoosePermissions = perm
	}
	return st
}

func openVault(ctx context.Context, path, password string) (*session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if path == "" {
		return nil, fmt.Errorf("%w: no vault path given", perrors.ErrInvalidInput)
	}

	c, err := store.Load(path)
	if err != nil {
		return nil, err
	}

	records, err := vault.Open(c, password)
	if err != nil {
		return nil, fmt.Errorf("opening vault %s: %w", path, err)
	}

	return &session{path: path, container: c, records: records}, nil
}

// readVault opens the vault without any possibility of writing it.
func readVault(ctx context.Context, path, password, op string) (*session, error) {
	s, err := openVault(ctx, path, password)
	if err != nil {
		return nil, err
	}
	recordAudit(op, path, s.records.Len())
	return s, nil
}

// withVault opens the vault, applies mutate and saves the result under the
// same salt if mutate reports a change.
func withVault(ctx context.Context, path, password, op string, mutate mutation) (*session, error) {
	s, err := openVault(ctx, path, password)
	if err != nil {
		return nil, err
	}

	changed, err := mutate(s.records)
	if err != nil {
		return nil, err
	}
	if !changed {
		return s, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	salt, _, err := vault.Decode(s.container)
	if err != nil {
		return nil, err
	}

	updated, err := vault.Save(s.records, password, salt, s.container.Version)
	if err != nil {
		return nil, fmt.Errorf("encrypting vault: %w", err)
	}

	if err := store.Save(path, updated); err != nil {
		return nil, err
	}

	s.container = updated
	recordAudit(op, path, s.records.Len())
	return s, nil
}

func recordAudit(op, path string, count int) {
	entry := audit.LogWithUser(op)
	entry.Vault = path
	entry.EntriesCount = count
	audit.Log(entry)
}

// NotFoundError is returned when a record name does not exist. It carries
// the closest existing names.
type NotFoundError struct {
	Name        string
	Suggestions []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %q", perrors.ErrEntryNotFound, e.Name)
}

func (e *NotFoundError) Unwrap() error {
	return perrors.ErrEntryNotFound
}

// maxSuggestions bounds "did you mean" hints.
const maxSuggestions = 3

func notFound(records *vault.Records, name string) error {
	return &NotFoundError{Name: name, Suggestions: records.Suggest(name, maxSuggestions)}
}

func validateName(name string) error {
	if err := utils.ValidateEntryName(name); err != nil {
		return fmt.Errorf("%w: %v", perrors.ErrInvalidInput, err)
	}
	return nil
}
