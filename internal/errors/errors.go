package errors

import "errors"

// Cryptographic errors raised by key derivation and the envelope.
var (
	// ErrInvalidInput indicates empty or malformed input handed to key derivation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDerivationFailure indicates the key derivation primitive rejected its parameters.
	ErrDerivationFailure = errors.New("key derivation failed")

	// ErrMalformedBlob indicates the envelope is shorter than its nonce.
	ErrMalformedBlob = errors.New("malformed vault blob")

	// ErrAuthenticationFailure indicates the authentication tag did not verify.
	// It is returned for a wrong master password and for a damaged vault alike.
	ErrAuthenticationFailure = errors.New("wrong master password or corrupted vault")

	// ErrCorruptPlaintext indicates the decrypted data is not a valid record collection.
	ErrCorruptPlaintext = errors.New("decrypted vault contents are not valid")
)

// Container errors indicate problems with the persisted vault document.
var (
	// ErrInvalidEncoding indicates a container field is not valid base64 or JSON.
	ErrInvalidEncoding = errors.New("invalid vault encoding")

	// ErrUnsupportedVersion indicates the container carries an unknown format version.
	ErrUnsupportedVersion = errors.New("unsupported vault version")
)

// Vault file errors indicate issues locating or creating the vault file.
var (
	// ErrVaultNotFound indicates the vault file does not exist.
	ErrVaultNotFound = errors.New("vault file not found")

	// ErrVaultExists indicates a vault file already exists at the target path.
	ErrVaultExists = errors.New("vault file already exists")
)

// Entry errors indicate issues with individual records.
var (
	// ErrEntryNotFound indicates no record is stored under the requested name.
	ErrEntryNotFound = errors.New("entry not found")

	// ErrInvalidPattern indicates a list filter is not a valid glob.
	ErrInvalidPattern = errors.New("invalid filter pattern")
)

// Input and configuration errors.
var (
	// ErrPasswordMismatch indicates the password confirmation did not match.
	ErrPasswordMismatch = errors.New("passwords do not match")

	// ErrUnknownConfigKey indicates `config set` was given a key it does not know.
	ErrUnknownConfigKey = errors.New("unknown configuration key")

	// ErrPasswordImpossible indicates the generator cannot satisfy the requested policy.
	ErrPasswordImpossible = errors.New("password cannot be generated with these settings")

	// ErrInvalidDateFormat indicates a date filter is not in YYYY-MM-DD form.
	ErrInvalidDateFormat = errors.New("invalid date format")
)

// Update errors.
var (
	// ErrUpdateCheckFailed indicates the release feed could not be queried or parsed.
	ErrUpdateCheckFailed = errors.New("update check failed")
)
