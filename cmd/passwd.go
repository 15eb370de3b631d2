package cmd

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/passmgr/internal/ui"
	"github.com/PolarWolf314/passmgr/internal/workflows"

	"github.com/spf13/cobra"
)

var passwdCmd = &cobra.Command{
	Use:   "passwd",
	Short: "Change the master password",
	Long: `Re-encrypts the vault under a new master password.

A new salt is drawn, so every byte of the vault file changes. The old
password stops working as soon as the command succeeds.

Examples:
  passmgr passwd`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting passwd command")

		path, err := resolveVaultPath()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to resolve vault path: %v", err)
		}

		var oldPassword, newPassword string
		if passwordStdin {
			err = fmt.Errorf("passwd reads two passwords and cannot be used with --password-stdin")
		} else {
			oldPassword, err = readMasterPassword("Current master password: ")
			if err == nil {
				newPassword, err = readNewMasterPassword()
			}
		}
		if err != nil {
			spinner, cleanup := startSpinner("Changing master password...", verbose)
			defer cleanup()
			return failVault(spinner, err, path)
		}

		spinner, cleanup := startSpinner("Changing master password...", verbose)
		defer cleanup()

		result, err := workflows.ChangePassword(context.Background(), workflows.ChangePasswordOptions{
			Path:        path,
			OldPassword: oldPassword,
			NewPassword: newPassword,
		})
		if err != nil {
			return failVault(spinner, err, path)
		}
		warnLoosePermissions(spinner, result.VaultStatus)

		Logger.Infof("Passwd command completed successfully")
		spinner.FinalMSG = ui.Success.Sprint("✓") + " Master password changed for " + ui.Path.Sprint(result.Path) + "\n" +
			ui.Info.Sprint("→") + " Backups of the old file still open with the old password"
		return nil
	},
}
