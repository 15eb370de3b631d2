// Package errors provides typed error values for passmgr.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching. The CLI
// layer maps each of them to a user-facing message.
//
// # Error Categories
//
// Errors are grouped by category:
//
//   - Crypto errors: key derivation and envelope failures (ErrInvalidInput,
//     ErrDerivationFailure, ErrMalformedBlob, ErrAuthenticationFailure,
//     ErrCorruptPlaintext)
//   - Container errors: on-disk format problems (ErrInvalidEncoding,
//     ErrUnsupportedVersion)
//   - Vault file errors: ErrVaultNotFound, ErrVaultExists
//   - Entry errors: ErrEntryNotFound, ErrInvalidPattern
//   - Input and config errors: ErrPasswordMismatch, ErrUnknownConfigKey
//   - Update errors: ErrUpdateCheckFailed
//
// ErrAuthenticationFailure deliberately covers both a wrong master password
// and a tampered or corrupted vault. Do not split it.
//
// # Usage
//
// Return errors from internal packages:
//
//	if len(envelope) < nonceSize {
//	    return nil, errors.ErrMalformedBlob
//	}
//
// Handle errors in the CLI layer:
//
//	result, err := workflows.Get(ctx, opts)
//	if errors.Is(err, perrors.ErrAuthenticationFailure) {
//	    // Show "wrong master password or damaged vault"
//	}
//
// Wrap errors with additional context:
//
//	return fmt.Errorf("decoding salt: %w", errors.ErrInvalidEncoding)
package errors
