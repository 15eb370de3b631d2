package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/PolarWolf314/passmgr/internal/configs"
	perrors "github.com/PolarWolf314/passmgr/internal/errors"
	"github.com/PolarWolf314/passmgr/internal/ui"
	"github.com/PolarWolf314/passmgr/internal/utils"
	"github.com/PolarWolf314/passmgr/internal/workflows"

	"github.com/atotto/clipboard"
	"github.com/briandowns/spinner"
)

// Input sources. Tests replace these to avoid needing a terminal.
var (
	readMasterPassword = func(prompt string) (string, error) {
		if passwordStdin {
			return utils.ReadStdin()
		}
		return utils.ReadPassphrase(prompt)
	}

	readNewMasterPassword = func() (string, error) {
		if passwordStdin {
			return utils.ReadStdin()
		}
		return utils.ReadNewPassphrase("New master password: ", "Confirm master password: ")
	}

	readEntrySecret = utils.ReadPassphrase

	readEntryNotes = func() (*string, error) {
		if !utils.IsTerminal() {
			return nil, nil
		}
		note, err := utils.ReadLine(os.Stdin, "Add a note? (press Enter to skip): ")
		if err != nil || strings.TrimSpace(note) == "" {
			return nil, err
		}
		note = strings.TrimSpace(note)
		return &note, nil
	}

	writeClipboard = clipboard.WriteAll
)

// startSpinner creates and starts a spinner with the given message when not in verbose or debug mode.
// Returns the spinner and a function that should be deferred to clean up.
//
// spinner.FinalMSG values do not need trailing newlines; the cleanup function
// adds one before printing.
func startSpinner(message string, verbose bool) (*spinner.Spinner, func()) {
	Logger.Debugf("Starting spinner with message: %s", message)
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	if err := s.Color("cyan"); err != nil {
		Logger.Warnf("Failed to set spinner color: %v", err)
	}

	if !verbose && !debug {
		s.Start()
		log.SetOutput(io.Discard)
	} else {
		Logger.Infof("Running in verbose or debug mode: %s", message)
	}

	cleanup := func() {
		if !verbose && !debug {
			log.SetOutput(os.Stderr)
		}

		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			// Cleared so s.Stop() doesn't print it.
			s.FinalMSG = ""
		}

		if !verbose && !debug {
			s.Stop()
		}

		// Printed to stdout so tests capture it.
		if finalMsg != "" {
			fmt.Print(finalMsg)
		}
	}

	return s, cleanup
}

// loadUserConfig loads config.toml, falling back to defaults with a warning
// if it cannot be parsed.
func loadUserConfig() *configs.UserConfig {
	config, err := configs.LoadUserConfig()
	if err != nil {
		Logger.WarnfAlways("Ignoring %s: %v", configs.ConfigFilePath(), err)
		return configs.DefaultUserConfig()
	}
	return config
}

// resolveVaultPath returns the vault file selected by --file, the config
// file or the default, with "~" expanded.
func resolveVaultPath() (string, error) {
	path := loadUserConfig().ResolveVaultPath(vaultFile)
	expanded, err := utils.ExpandHome(path)
	if err != nil {
		return "", err
	}
	Logger.Debugf("Using vault file %s", expanded)
	return expanded, nil
}

// warnLoosePermissions tells the user when the vault is readable by others.
func warnLoosePermissions(s *spinner.Spinner, status workflows.VaultStatus) {
	if status.LoosePermissions == 0 {
		return
	}
	s.Stop()
	Logger.WarnfAlways("Vault file has overly permissive permissions (%o), consider running 'chmod 600 %s'",
		status.LoosePermissions, status.Path)
	if !verbose && !debug {
		s.Start()
	}
}

// formatVaultError formats a vault workflow error for display to the user.
func formatVaultError(err error, path string) string {
	var notFound *workflows.NotFoundError

	switch {
	case errors.As(err, &notFound):
		msg := ui.Error.Sprint("✗") + " Entry " + ui.Name.Sprint(notFound.Name) + " not found"
		if len(notFound.Suggestions) > 0 {
			msg += "\n" + ui.Info.Sprint("→") + " Did you mean:\n" +
				strings.TrimSuffix(utils.FormatNames(notFound.Suggestions), "\n")
		}
		return msg

	case errors.Is(err, perrors.ErrVaultNotFound):
		return ui.Error.Sprint("✗") + " Vault " + ui.Path.Sprint(path) + " not found\n" +
			ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("passmgr init") + " first"

	case errors.Is(err, perrors.ErrVaultExists):
		return ui.Error.Sprint("✗") + " Vault " + ui.Path.Sprint(path) + " already exists\n" +
			ui.Info.Sprint("→") + " Use " + ui.Flag.Sprint("--file") + " to create a vault somewhere else"

	case errors.Is(err, perrors.ErrAuthenticationFailure):
		return ui.Error.Sprint("✗") + " Wrong master password, or the vault file has been modified"

	case errors.Is(err, perrors.ErrMalformedBlob),
		errors.Is(err, perrors.ErrInvalidEncoding),
		errors.Is(err, perrors.ErrCorruptPlaintext):
		return ui.Error.Sprint("✗") + " Vault " + ui.Path.Sprint(path) + " is damaged: " + err.Error()

	case errors.Is(err, perrors.ErrUnsupportedVersion):
		return ui.Error.Sprint("✗") + " Vault " + ui.Path.Sprint(path) + " was written by a newer passmgr: " + err.Error()

	case errors.Is(err, perrors.ErrPasswordMismatch):
		return ui.Error.Sprint("✗") + " Passwords do not match"

	default:
		return ui.Error.Sprint("✗") + " " + err.Error()
	}
}

// isUnexpectedError returns true for errors that point at a bug or an
// environment problem rather than at user input.
func isUnexpectedError(err error) bool {
	switch {
	case errors.Is(err, perrors.ErrEntryNotFound),
		errors.Is(err, perrors.ErrVaultNotFound),
		errors.Is(err, perrors.ErrVaultExists),
		errors.Is(err, perrors.ErrAuthenticationFailure),
		errors.Is(err, perrors.ErrMalformedBlob),
		errors.Is(err, perrors.ErrInvalidEncoding),
		errors.Is(err, perrors.ErrCorruptPlaintext),
		errors.Is(err, perrors.ErrUnsupportedVersion),
		errors.Is(err, perrors.ErrPasswordMismatch),
		errors.Is(err, perrors.ErrInvalidInput),
		errors.Is(err, perrors.ErrInvalidPattern),
		errors.Is(err, perrors.ErrPasswordImpossible):
		return false
	default:
		return true
	}
}

// failVault shows err through the spinner and returns the command's error.
func failVault(s *spinner.Spinner, err error, path string) error {
	s.FinalMSG = formatVaultError(err, path)
	if isUnexpectedError(err) {
		Logger.Errorf("Unexpected error: %v", err)
	}
	return reported(err)
}
