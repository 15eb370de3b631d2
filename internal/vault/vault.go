package vault

import (
	"fmt"

	perrors "github.com/PolarWolf314/passmgr/internal/errors"
)

// Create initialises a new, empty vault protected by password. A new salt is
// drawn here and must be kept for the lifetime of the vault.
func Create(password string) (Container, error) {
	salt, err := NewSalt()
	if err != nil {
		return Container{}, err
	}
	return Save(NewRecords(), password, salt, CurrentVersion)
}

// Open decodes a container and decrypts its records.
//
// It may fail with ErrUnsupportedVersion, ErrInvalidEncoding,
// ErrMalformedBlob, ErrAuthenticationFailure or ErrCorruptPlaintext.
func Open(c Container, password string) (*Records, error) {
	salt, envelope, err := Decode(c)
	if err != nil {
		return nil, err
	}
	return Decrypt(envelope, password, salt)
}

// Save re-encrypts records under the vault's existing salt.
//
// The salt must be the one the container was created with: a different salt
// yields a different key, and nothing else in the file would be readable.
func Save(records *Records, password string, salt Salt, version int) (Container, error) {
	if version != CurrentVersion {
		return Container{}, fmt.Errorf("%w: %d", perrors.ErrUnsupportedVersion, version)
	}

	envelope, err := Encrypt(records, password, salt)
	if err != nil {
		return Container{}, err
	}
	return Encode(version, salt, envelope), nil
}

// ChangePassword opens the vault with oldPassword and re-encrypts it with
// newPassword under a newly drawn salt. The returned container replaces the
// old one entirely.
func ChangePassword(c Container, oldPassword, newPassword string) (Container, *Records, error) {
	records, err := Open(c, oldPassword)
	if err != nil {
		return Container{}, nil, err
	}

	salt, err := NewSalt()
	if err != nil {
		return Container{}, nil, err
	}

	updated, err := Save(records, newPassword, salt, CurrentVersion)
	if err != nil {
		return Container{}, nil, err
	}
	return updated, records, nil
}
