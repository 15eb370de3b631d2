package vault

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"io"

	perrors "github.com/PolarWolf314/passmgr/internal/errors"

	"github.com/awnumar/memguard"
)

// NonceSize is the AES-GCM nonce length prepended to every envelope.
const NonceSize = 12

// TagSize is the length of the GCM authentication tag appended by Seal.
const TagSize = 16

// sealer holds the nonce source so tests can observe nonce handling.
type sealer struct {
	rand io.Reader
}

var defaultSealer = sealer{rand: rand.Reader}

// Encrypt serialises records and seals them under a key derived from
// password and salt. Every call draws a fresh nonce, so encrypting the same
// collection twice yields different envelopes.
//
// The result is nonce || ciphertext || tag.
func Encrypt(records *Records, password string, salt Salt) ([]byte, error) {
	return defaultSealer.encrypt(records, password, salt)
}

func (s sealer) encrypt(records *Records, password string, salt Salt) ([]byte, error) {
	if records == nil {
		records = NewRecords()
	}

	key, err := DeriveKey(password, salt)
	if err != nil {
		return nil, err
	}
	defer WipeKey(key)

	plaintext, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("serialising records: %w", err)
	}
	defer memguard.WipeBytes(plaintext)

	return s.seal(key, plaintext)
}

// Decrypt opens an envelope produced by Encrypt and parses the records.
//
// Returns ErrMalformedBlob if the envelope is shorter than a nonce.
// Returns ErrAuthenticationFailure if the password is wrong or the envelope
// was modified; the two cases are indistinguishable.
// Returns ErrCorruptPlaintext if the authenticated plaintext does not parse.
func Decrypt(envelope []byte, password string, salt Salt) (*Records, error) {
	if len(envelope) < NonceSize {
		return nil, fmt.Errorf("%w: %d bytes, need at least %d", perrors.ErrMalformedBlob, len(envelope), NonceSize)
	}

	key, err := DeriveKey(password, salt)
	if err != nil {
		return nil, err
	}
	defer WipeKey(key)

	plaintext, err := open(key, envelope)
	if err != nil {
		return nil, err
	}
	defer memguard.WipeBytes(plaintext)

	records := NewRecords()
	if err := json.Unmarshal(plaintext, records); err != nil {
		return nil, fmt.Errorf("%w: %v", perrors.ErrCorruptPlaintext, err)
	}
	return records, nil
}

func newAEAD(key *[KeySize]byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, fmt.Errorf("creating cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("creating GCM: %w", err)
	}
	return aead, nil
}

// seal encrypts plaintext with a fresh nonce and returns nonce || ciphertext.
func (s sealer) seal(key *[KeySize]byte, plaintext []byte) ([]byte, error) {
	aead, err := newAEAD(key)
	if err != nil {
		return nil, err
	}

	out := make([]byte, NonceSize, NonceSize+len(plaintext)+aead.Overhead())
	if _, err := io.ReadFull(s.rand, out[:NonceSize]); err != nil {
		return nil, fmt.Errorf("generating nonce: %w", err)
	}

	return aead.Seal(out, out[:NonceSize], plaintext, nil), nil
}

// open splits the nonce off an envelope and authenticates the rest.
func open(key *[KeySize]byte, envelope []byte) ([]byte, error) {
	if len(envelope) < NonceSize {
		return nil, fmt.Errorf("%w: %d bytes, need at least %d", perrors.ErrMalformedBlob, len(envelope), NonceSize)
	}

	aead, err := newAEAD(key)
	if err != nil {
		return nil, err
	}

	plaintext, err := aead.Open(nil, envelope[:NonceSize], envelope[NonceSize:], nil)
	if err != nil {
		return nil, perrors.ErrAuthenticationFailure
	}
	return plaintext, nil
}
