package cmd

import (
	"context"

	"github.com/PolarWolf314/passmgr/internal/passgen"
	"github.com/PolarWolf314/passmgr/internal/ui"
	"github.com/PolarWolf314/passmgr/internal/workflows"

	"github.com/spf13/cobra"
)

var (
	addPassword  string
	addNotes     string
	addGenerate  bool
	addLength    int
	addNoSymbols bool
	addCopy      bool
)

func init() {
	addCmd.Flags().StringVarP(&addPassword, "password", "p", "", "password to store (prompted if omitted)")
	addCmd.Flags().StringVarP(&addNotes, "notes", "n", "", "notes to store with the entry")
	addCmd.Flags().BoolVarP(&addGenerate, "generate", "g", false, "generate a random password")
	addCmd.Flags().IntVar(&addLength, "length", 0, "generated password length (default from config)")
	addCmd.Flags().BoolVar(&addNoSymbols, "no-symbols", false, "generate without symbols")
	addCmd.Flags().BoolVarP(&addCopy, "copy", "c", false, "copy the generated password to the clipboard")
}

// resetAddCommandState resets the add command's global state for testing.
func resetAddCommandState() {
	addPassword = ""
	addNotes = ""
	addGenerate = false
	addLength = 0
	addNoSymbols = false
	addCopy = false
}

var addCmd = &cobra.Command{
	Use:   "add NAME LOGIN",
	Short: "Add or replace an entry",
	Long: `Stores a login and password under NAME, replacing any entry with the
same name.

The password is prompted for unless given with --password or generated with
--generate. Notes are optional.

Examples:
  passmgr add github alice                          # Prompt for the password
  passmgr add github alice --notes "2fa on phone"   # With notes
  passmgr add bank alice --generate --length 32     # Generate a password
  passmgr add bank alice -g --no-symbols --copy     # Generate and copy it`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting add command")
		name, login := args[0], args[1]

		path, err := resolveVaultPath()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to resolve vault path: %v", err)
		}

		opts := workflows.AddOptions{
			Path:  path,
			Name:  name,
			Login: login,
		}

		if addGenerate {
			config := loadUserConfig()
			opts.Generate = true
			opts.Generator = passgen.Options{
				Length:  config.Generator.Length,
				Symbols: config.Generator.Symbols && !addNoSymbols,
			}
			if addLength > 0 {
				opts.Generator.Length = addLength
			}
			Logger.Debugf("Generating password with length=%d symbols=%t", opts.Generator.Length, opts.Generator.Symbols)
		}

		opts.Password, err = readMasterPassword("Master password: ")
		if err == nil && !addGenerate {
			opts.Secret = addPassword
			if !cmd.Flags().Changed("password") {
				opts.Secret, err = readEntrySecret("Password for " + name + ": ")
			}
		}
		if err == nil {
			if cmd.Flags().Changed("notes") {
				notes := addNotes
				opts.Notes = &notes
			} else {
				opts.Notes, err = readEntryNotes()
			}
		}
		if err != nil {
			spinner, cleanup := startSpinner("Adding entry...", verbose)
			defer cleanup()
			return failVault(spinner, err, path)
		}

		spinner, cleanup := startSpinner("Adding entry...", verbose)
		defer cleanup()

		result, err := workflows.Add(context.Background(), opts)
		if err != nil {
			return failVault(spinner, err, path)
		}
		warnLoosePermissions(spinner, result.VaultStatus)

		var finalMessage string
		switch {
		case result.Unchanged:
			finalMessage = ui.Success.Sprint("✓") + " Entry " + ui.Name.Sprint(name) + " is already up to date"
		case result.Replaced:
			finalMessage = ui.Success.Sprint("✓") + " Entry " + ui.Name.Sprint(name) + " replaced"
		default:
			finalMessage = ui.Success.Sprint("✓") + " Entry " + ui.Name.Sprint(name) + " added"
		}

		if result.GeneratedSecret != "" {
			if addCopy {
				if err := writeClipboard(result.GeneratedSecret); err != nil {
					Logger.Warnf("Failed to copy to clipboard: %v", err)
					finalMessage += "\n" + ui.Warning.Sprint("⚠") + " Could not copy to the clipboard: " + err.Error() +
						"\nGenerated password: " + ui.Secret.Sprint(result.GeneratedSecret)
				} else {
					finalMessage += "\n" + ui.Info.Sprint("→") + " Generated password copied to the clipboard"
				}
			} else {
				finalMessage += "\nGenerated password: " + ui.Secret.Sprint(result.GeneratedSecret)
			}
		}

		Logger.Infof("Add command completed successfully")
		spinner.FinalMSG = finalMessage
		return nil
	},
}
