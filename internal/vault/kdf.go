package vault

import (
	"crypto/rand"
	"fmt"
	"io"

	perrors "github.com/PolarWolf314/passmgr/internal/errors"

	"github.com/awnumar/memguard"
	"golang.org/x/crypto/argon2"
)

const (
	// SaltSize is the length of the per-vault salt in bytes.
	SaltSize = 16

	// KeySize is the length of the derived AES-256 key in bytes.
	KeySize = 32
)

// Argon2id cost parameters. They are not persisted, so they must never change
// for version 1 vaults.
const (
	ArgonTime    uint32 = 2
	ArgonMemory  uint32 = 15000 // KiB
	ArgonThreads uint8  = 1
)

// Salt randomises key derivation for a single vault.
type Salt [SaltSize]byte

// NewSalt returns a salt drawn from the operating system's CSPRNG.
func NewSalt() (Salt, error) {
	var salt Salt
	if _, err := io.ReadFull(rand.Reader, salt[:]); err != nil {
		return Salt{}, fmt.Errorf("failed to get randomness for salt: %w", err)
	}
	return salt, nil
}

type kdfParams struct {
	time    uint32
	memory  uint32
	threads uint8
}

var defaultKDF = kdfParams{time: ArgonTime, memory: ArgonMemory, threads: ArgonThreads}

// validate rejects values argon2.IDKey would panic on.
func (p kdfParams) validate() error {
	if p.time < 1 {
		return fmt.Errorf("%w: time cost must be at least 1", perrors.ErrDerivationFailure)
	}
	if p.threads < 1 {
		return fmt.Errorf("%w: parallelism must be at least 1", perrors.ErrDerivationFailure)
	}
	if p.memory < 8*uint32(p.threads) {
		return fmt.Errorf("%w: memory cost %d KiB is below %d KiB", perrors.ErrDerivationFailure, p.memory, 8*uint32(p.threads))
	}
	return nil
}

// DeriveKey derives the vault key from a master password and salt with
// Argon2id. Equal inputs always produce equal keys.
//
// Callers own the returned key and should release it with WipeKey.
func DeriveKey(password string, salt Salt) (*[KeySize]byte, error) {
	return deriveKey(defaultKDF, password, salt)
}

func deriveKey(p kdfParams, password string, salt Salt) (*[KeySize]byte, error) {
	if password == "" {
		return nil, fmt.Errorf("%w: password cannot be empty", perrors.ErrInvalidInput)
	}
	if err := p.validate(); err != nil {
		return nil, err
	}

	pw := []byte(password)
	defer memguard.WipeBytes(pw)

	derived := argon2.IDKey(pw, salt[:], p.time, p.memory, p.threads, KeySize)
	defer memguard.WipeBytes(derived)

	key := new([KeySize]byte)
	copy(key[:], derived)
	return key, nil
}

// WipeKey zeroes key material. It is safe to call with nil.
func WipeKey(key *[KeySize]byte) {
	if key == nil {
		return
	}
	memguard.WipeBytes(key[:])
}
