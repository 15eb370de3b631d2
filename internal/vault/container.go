package vault

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	perrors "github.com/PolarWolf314/passmgr/internal/errors"
)

// CurrentVersion is the only container version this build reads or writes.
const CurrentVersion = 1

// Container is the persisted form of a vault.
type Container struct {
	Version int    `json:"version"`
	Salt    string `json:"salt"`
	Blob    string `json:"blob"`
}

// Encode wraps a salt and envelope into a container.
func Encode(version int, salt Salt, envelope []byte) Container {
	return Container{
		Version: version,
		Salt:    base64.StdEncoding.EncodeToString(salt[:]),
		Blob:    base64.StdEncoding.EncodeToString(envelope),
	}
}

// Decode reverses Encode. It checks the version and the salt length but
// leaves the envelope's structure to Decrypt.
func Decode(c Container) (Salt, []byte, error) {
	if c.Version != CurrentVersion {
		return Salt{}, nil, fmt.Errorf("%w: %d", perrors.ErrUnsupportedVersion, c.Version)
	}

	rawSalt, err := base64.StdEncoding.DecodeString(c.Salt)
	if err != nil {
		return Salt{}, nil, fmt.Errorf("%w: salt: %v", perrors.ErrInvalidEncoding, err)
	}
	if len(rawSalt) != SaltSize {
		return Salt{}, nil, fmt.Errorf("%w: salt is %d bytes, want %d", perrors.ErrInvalidEncoding, len(rawSalt), SaltSize)
	}

	envelope, err := base64.StdEncoding.DecodeString(c.Blob)
	if err != nil {
		return Salt{}, nil, fmt.Errorf("%w: blob: %v", perrors.ErrInvalidEncoding, err)
	}

	var salt Salt
	copy(salt[:], rawSalt)
	return salt, envelope, nil
}

// ParseContainer parses the JSON document read from a vault file.
func ParseContainer(data []byte) (Container, error) {
	var c Container
	if err := json.Unmarshal(data, &c); err != nil {
		return Container{}, fmt.Errorf("%w: %v", perrors.ErrInvalidEncoding, err)
	}
	return c, nil
}

// Marshal renders the container as indented JSON with a trailing newline.
func (c Container) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
