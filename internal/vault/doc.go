// Package vault implements the cryptographic core of passmgr.
//
// A vault is a single JSON document protecting a collection of named
// records with a master password. This package turns passwords into keys,
// seals and opens the record collection, and converts between raw bytes and
// the persisted container. It never touches the filesystem, the terminal,
// or the network; callers hand it plain values and write the results
// themselves.
//
// # Encryption Architecture
//
//  1. A 16-byte random salt is generated once when the vault is created and
//     reused for every later save of that vault.
//  2. Argon2id turns (master password, salt) into a 32-byte key using
//     compiled-in cost parameters.
//  3. The record collection is serialised to JSON and sealed with
//     AES-256-GCM under a fresh random 12-byte nonce.
//  4. The envelope nonce || ciphertext || tag is base64 encoded next to the
//     base64 salt and a format version.
//
// # On-disk Format
//
//	{
//	  "version": 1,
//	  "salt": "<base64 16 bytes>",
//	  "blob": "<base64 nonce(12) || ciphertext || tag(16)>"
//	}
//
// The Argon2id parameters are not stored in the file. Changing them breaks
// every vault written with the old values; the version field exists so a
// future format can record them.
//
// # Security Considerations
//
// A failed tag check is reported as ErrAuthenticationFailure whether the
// password was wrong or the file was modified. Derived keys and decrypted
// plaintext are wiped as soon as an operation returns.
package vault
