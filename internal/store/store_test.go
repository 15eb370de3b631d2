package store

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	perrors "github.com/PolarWolf314/passmgr/internal/errors"
	"github.com/PolarWolf314/passmgr/internal/vault"
)

func testContainer() vault.Container {
	return vault.Encode(vault.CurrentVersion, vault.Salt{1, 2, 3}, []byte("0123456789ab-ciphertext"))
}

func TestCreateAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vault.json")
	c := testContainer()

	if err := Create(path, c); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded != c {
		t.Errorf("Expected %+v, got %+v", c, loaded)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if info.Mode().Perm() != filePerm {
		t.Errorf("Expected permissions %o, got %o", filePerm, info.Mode().Perm())
	}
}

func TestCreateCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "vault.json")
	if err := Create(path, testContainer()); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if !Exists(path) {
		t.Error("Expected vault to exist")
	}
}

func TestCreateRefusesToOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vault.json")
	if err := os.WriteFile(path, []byte("precious"), 0600); err != nil {
		t.Fatal(err)
	}

	err := Create(path, testContainer())
	if !errors.Is(err, perrors.ErrVaultExists) {
		t.Errorf("Expected ErrVaultExists, got %v", err)
	}

	data, _ := os.ReadFile(path)
	if string(data) != "precious" {
		t.Error("Existing file was modified")
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if !errors.Is(err, perrors.ErrVaultNotFound) {
		t.Errorf("Expected ErrVaultNotFound, got %v", err)
	}
}

func TestLoadGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vault.json")
	if err := os.WriteFile(path, []byte("this is not json"), 0600); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if !errors.Is(err, perrors.ErrInvalidEncoding) {
		t.Errorf("Expected ErrInvalidEncoding, got %v", err)
	}
}

func TestLoadReadsForeignWhitespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vault.json")
	c := testContainer()
	doc := `{"version": 1, "salt": "` + c.Salt + `", "blob": "` + c.Blob + `"}`
	if err := os.WriteFile(path, []byte(doc), 0600); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded != c {
		t.Errorf("Expected %+v, got %+v", c, loaded)
	}
}

func TestSaveReplacesAtomically(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vault.json")

	if err := Create(path, testContainer()); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	updated := vault.Encode(vault.CurrentVersion, vault.Salt{1, 2, 3}, []byte("0123456789ab-newer-ciphertext"))
	if err := Save(path, updated); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded != updated {
		t.Errorf("Expected updated container, got %+v", loaded)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.Contains(e.Name(), ".tmp-") {
			t.Errorf("Temporary file %s left behind", e.Name())
		}
	}
	if len(entries) != 1 {
		t.Errorf("Expected exactly one file in %s, got %d", dir, len(entries))
	}
}

func TestSaveIntoMissingDirectoryFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist", "vault.json")
	if err := Save(path, testContainer()); err == nil {
		t.Fatal("Expected Save to fail when the directory is missing")
	}
}
