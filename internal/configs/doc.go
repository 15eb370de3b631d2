// Package configs manages passmgr's user configuration.
//
// Configuration is stored in TOML at <user config dir>/passmgr/config.toml:
//
//	[vault]
//	path = "/home/me/secrets/vault.json"
//
//	[update]
//	owner = "PolarWolf314"
//	repo = "passmgr"
//
//	[generator]
//	length = 20
//	symbols = true
//
// A missing file or missing keys fall back to DefaultUserConfig. The vault
// file itself is never described here; it is a plain JSON container handled
// by the store package.
//
// # Settings
//
// UserPassmgrSettings is initialised at startup with the config directory,
// the data directory (XDG_DATA_HOME or ~/.local/share) holding the audit log,
// and the current OS username.
package configs
