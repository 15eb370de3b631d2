// Package passgen generates random passwords for new vault records.
package passgen

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	perrors "github.com/PolarWolf314/passmgr/internal/errors"
)

const (
	alphabetLowercase = "abcdefghijklmnopqrstuvwxyz"
	alphabetUppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	alphabetNumbers   = "0123456789"
	alphabetSymbols   = "!@#$%^&*()-_=+[]{}<>?/|~"
)

// MaxLength bounds generated passwords.
const MaxLength = 1024

// Options controls the shape of a generated password.
type Options struct {
	Length  int
	Symbols bool
}

// Generate returns a password of opts.Length characters drawn uniformly from
// letters, digits and (if enabled) symbols. Every enabled class appears at
// least once.
//
// Returns ErrPasswordImpossible if the length cannot fit one character of
// each class or exceeds MaxLength.
func Generate(opts Options) (string, error) {
	return generate(rand.Reader, opts)
}

func classes(symbols bool) []string {
	c := []string{alphabetLowercase, alphabetUppercase, alphabetNumbers}
	if symbols {
		c = append(c, alphabetSymbols)
	}
	return c
}

func generate(r io.Reader, opts Options) (string, error) {
	sets := classes(opts.Symbols)
	if opts.Length < len(sets) {
		return "", fmt.Errorf("%w: length %d is shorter than the %d required character classes",
			perrors.ErrPasswordImpossible, opts.Length, len(sets))
	}
	if opts.Length > MaxLength {
		return "", fmt.Errorf("%w: length %d exceeds %d", perrors.ErrPasswordImpossible, opts.Length, MaxLength)
	}

	var all string
	for _, s := range sets {
		all += s
	}

	password := make([]byte, opts.Length)
	for i, set := range sets {
		c, err := pick(r, set)
		if err != nil {
			return "", err
		}
		password[i] = c
	}
	for i := len(sets); i < opts.Length; i++ {
		c, err := pick(r, all)
		if err != nil {
			return "", err
		}
		password[i] = c
	}

	// Fisher-Yates, so the guaranteed characters are not always at the front.
	for i := len(password) - 1; i > 0; i-- {
		j, err := randIndex(r, i+1)
		if err != nil {
			return "", err
		}
		password[i], password[j] = password[j], password[i]
	}

	return string(password), nil
}

func pick(r io.Reader, alphabet string) (byte, error) {
	idx, err := randIndex(r, len(alphabet))
	if err != nil {
		return 0, err
	}
	return alphabet[idx], nil
}

func randIndex(r io.Reader, n int) (int, error) {
	idx, err := rand.Int(r, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("failed to read randomness: %w", err)
	}
	return int(idx.Int64()), nil
}
