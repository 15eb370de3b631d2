package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	perrors "github.com/PolarWolf314/passmgr/internal/errors"
	"github.com/PolarWolf314/passmgr/internal/vault"
)

// filePerm is applied to every vault file written.
const filePerm = 0600

// Exists reports whether a vault file is present at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Load reads and parses the vault container at path.
//
// Returns ErrVaultNotFound if the file does not exist and ErrInvalidEncoding
// if it is not a container document.
func Load(path string) (vault.Container, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return vault.Container{}, fmt.Errorf("%w: %s", perrors.ErrVaultNotFound, path)
	}
	if err != nil {
		return vault.Container{}, fmt.Errorf("failed to read vault %s: %w", path, err)
	}

	c, err := vault.ParseContainer(data)
	if err != nil {
		return vault.Container{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Create writes a new vault, refusing to replace an existing file.
func Create(path string, c vault.Container) error {
	if Exists(path) {
		return fmt.Errorf("%w: %s", perrors.ErrVaultExists, path)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return Save(path, c)
}

// Save atomically replaces the vault at path with c.
func Save(path string, c vault.Container) error {
	data, err := c.Marshal()
	if err != nil {
		return fmt.Errorf("failed to encode vault: %w", err)
	}
	return writeAtomic(path, data)
}

func writeAtomic(path string, data []byte) (err error) {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temporary file in %s: %w", dir, err)
	}
	tmpPath := tmp.Name()

	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	if err = tmp.Chmod(filePerm); err != nil {
		return fmt.Errorf("failed to set permissions on %s: %w", tmpPath, err)
	}
	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmpPath, err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", tmpPath, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", tmpPath, err)
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}

	syncDir(dir)
	return nil
}

// syncDir flushes the directory entry after a rename. Not every platform
// supports it, so failures are ignored.
func syncDir(dir string) {
	d, err := os.Open(dir)
	if err != nil {
		return
	}
	defer d.Close()
	_ = d.Sync()
}
