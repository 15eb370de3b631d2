package cmd

import (
	"context"

	"github.com/PolarWolf314/passmgr/internal/ui"
	"github.com/PolarWolf314/passmgr/internal/workflows"

	"github.com/spf13/cobra"
)

var (
	getCopy bool
	getMask bool
)

func init() {
	getCmd.Flags().BoolVarP(&getCopy, "copy", "c", false, "copy the password to the clipboard instead of printing it")
	getCmd.Flags().BoolVarP(&getMask, "mask", "m", false, "print the password masked")
}

// resetGetCommandState resets the get command's global state for testing.
func resetGetCommandState() {
	getCopy = false
	getMask = false
}

var getCmd = &cobra.Command{
	Use:   "get NAME",
	Short: "Show an entry",
	Long: `Decrypts the vault and shows the entry stored under NAME.

Examples:
  passmgr get github          # Print login, password and notes
  passmgr get github --copy   # Copy the password, print the rest
  passmgr get github --mask   # Hide the password`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting get command")
		name := args[0]

		path, err := resolveVaultPath()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to resolve vault path: %v", err)
		}

		password, err := readMasterPassword("Master password: ")
		if err != nil {
			spinner, cleanup := startSpinner("Decrypting vault...", verbose)
			defer cleanup()
			return failVault(spinner, err, path)
		}

		spinner, cleanup := startSpinner("Decrypting vault...", verbose)
		defer cleanup()

		result, err := workflows.Get(context.Background(), workflows.GetOptions{
			Path:     path,
			Password: password,
			Name:     name,
		})
		if err != nil {
			return failVault(spinner, err, path)
		}
		warnLoosePermissions(spinner, result.VaultStatus)

		record := result.Record
		secretLine := "Password: " + ui.Secret.Sprint(record.Secret)
		switch {
		case getCopy:
			if err := writeClipboard(record.Secret); err != nil {
				Logger.Warnf("Failed to copy to clipboard: %v", err)
				secretLine = ui.Warning.Sprint("⚠") + " Could not copy the password to the clipboard: " + err.Error()
			} else {
				secretLine = "Password: " + ui.Muted.Sprint("copied to clipboard")
			}
		case getMask:
			secretLine = "Password: " + ui.Mask(record.Secret)
		}

		finalMessage := ui.Info.Sprint("🔑") + " Entry: " + ui.Name.Sprint(result.Name) + "\n" +
			"Login: " + record.Login + "\n" +
			secretLine
		if record.HasNotes() {
			finalMessage += "\nNotes: " + record.NotesText()
		}

		Logger.Infof("Get command completed successfully")
		spinner.FinalMSG = finalMessage
		return nil
	},
}
