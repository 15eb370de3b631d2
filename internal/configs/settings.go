package configs

import (
	"log"
	"os"
	"path/filepath"

	"github.com/PolarWolf314/passmgr/internal/utils"
)

type UserSettings struct {
	ConfigPath string
	DataPath   string
	Username   string
}

var UserPassmgrSettings *UserSettings

func init() {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Fatalf("error getting home directory: %s", err)
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		log.Fatalf("error getting config directory: %s", err)
	}

	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		dataDir = filepath.Join(homeDir, ".local", "share")
	}

	username, err := utils.GetUsername()
	if err != nil {
		// Only used to label audit entries.
		username = "unknown"
	}

	UserPassmgrSettings = &UserSettings{
		ConfigPath: filepath.Join(configDir, "passmgr"),
		DataPath:   filepath.Join(dataDir, "passmgr"),
		Username:   username,
	}
}
