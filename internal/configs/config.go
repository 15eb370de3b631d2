package configs

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	perrors "github.com/PolarWolf314/passmgr/internal/errors"
)

const (
	// DefaultVaultPath is used when neither --file nor the config names a vault.
	DefaultVaultPath = "vault.json"

	DefaultUpdateOwner = "PolarWolf314"
	DefaultUpdateRepo  = "passmgr"

	DefaultGeneratorLength = 20
)

type UserConfig struct {
	Vault     VaultConfig     `toml:"vault"`
	Update    UpdateConfig    `toml:"update"`
	Generator GeneratorConfig `toml:"generator"`
}

type VaultConfig struct {
	Path string `toml:"path"`
}

// UpdateConfig names the GitHub repository whose releases `passmgr update`
// compares against.
type UpdateConfig struct {
	Owner string `toml:"owner"`
	Repo  string `toml:"repo"`
}

type GeneratorConfig struct {
	Length  int  `toml:"length"`
	Symbols bool `toml:"symbols"`
}

// DefaultUserConfig returns the configuration used when no config file exists.
func DefaultUserConfig() *UserConfig {
	return &UserConfig{
		Vault:     VaultConfig{Path: DefaultVaultPath},
		Update:    UpdateConfig{Owner: DefaultUpdateOwner, Repo: DefaultUpdateRepo},
		Generator: GeneratorConfig{Length: DefaultGeneratorLength, Symbols: true},
	}
}

// ConfigFilePath returns the location of config.toml.
func ConfigFilePath() string {
	return filepath.Join(UserPassmgrSettings.ConfigPath, "config.toml")
}

// LoadUserConfig loads the user configuration, falling back to defaults for
// a missing file or missing keys.
func LoadUserConfig() (*UserConfig, error) {
	configPath := ConfigFilePath()
	config := DefaultUserConfig()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return config, nil
	}

	if err := LoadTOML(configPath, config); err != nil {
		return nil, fmt.Errorf("failed to load user config: %w", err)
	}

	return config, nil
}

// SaveUserConfig saves the user configuration to the config file.
func SaveUserConfig(config *UserConfig) error {
	if err := SaveTOML(ConfigFilePath(), config); err != nil {
		return fmt.Errorf("failed to save user config: %w", err)
	}
	return nil
}

// ResolveVaultPath picks the vault file: an explicit flag wins over the
// configured path, which wins over DefaultVaultPath.
func (c *UserConfig) ResolveVaultPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if c.Vault.Path != "" {
		return c.Vault.Path
	}
	return DefaultVaultPath
}

// ConfigKeys lists the keys accepted by Get and Set.
func ConfigKeys() []string {
	keys := []string{"vault.path", "update.owner", "update.repo", "generator.length", "generator.symbols"}
	sort.Strings(keys)
	return keys
}

// Get returns a configuration value by dotted key.
func (c *UserConfig) Get(key string) (string, error) {
	switch strings.ToLower(key) {
	case "vault.path":
		return c.Vault.Path, nil
	case "update.owner":
		return c.Update.Owner, nil
	case "update.repo":
		return c.Update.Repo, nil
	case "generator.length":
		return strconv.Itoa(c.Generator.Length), nil
	case "generator.symbols":
		return strconv.FormatBool(c.Generator.Symbols), nil
	}
	return "", fmt.Errorf("%w: %s", perrors.ErrUnknownConfigKey, key)
}

// Set updates a configuration value by dotted key.
func (c *UserConfig) Set(key, value string) error {
	switch strings.ToLower(key) {
	case "vault.path":
		c.Vault.Path = value
	case "update.owner":
		c.Update.Owner = value
	case "update.repo":
		c.Update.Repo = value
	case "generator.length":
		n, err := strconv.Atoi(value)
		if err != nil || n < 4 || n > 1024 {
			return fmt.Errorf("generator.length must be a number between 4 and 1024, got %q", value)
		}
		c.Generator.Length = n
	case "generator.symbols":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("generator.symbols must be true or false, got %q", value)
		}
		c.Generator.Symbols = b
	default:
		return fmt.Errorf("%w: %s", perrors.ErrUnknownConfigKey, key)
	}
	return nil
}
