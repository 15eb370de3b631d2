package cmd

import (
	"context"

	"github.com/PolarWolf314/passmgr/internal/ui"
	"github.com/PolarWolf314/passmgr/internal/workflows"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:     "remove NAME",
	Aliases: []string{"rm"},
	Short:   "Delete an entry",
	Long: `Deletes the entry stored under NAME. The vault is left untouched if no
such entry exists.

Examples:
  passmgr remove github`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting remove command")
		name := args[0]

		path, err := resolveVaultPath()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to resolve vault path: %v", err)
		}

		password, err := readMasterPassword("Master password: ")
		if err != nil {
			spinner, cleanup := startSpinner("Removing entry...", verbose)
			defer cleanup()
			return failVault(spinner, err, path)
		}

		spinner, cleanup := startSpinner("Removing entry...", verbose)
		defer cleanup()

		result, err := workflows.Remove(context.Background(), workflows.RemoveOptions{
			Path:     path,
			Password: password,
			Name:     name,
		})
		if err != nil {
			return failVault(spinner, err, path)
		}
		warnLoosePermissions(spinner, result.VaultStatus)

		Logger.Infof("Remove command completed successfully")
		spinner.FinalMSG = ui.Success.Sprint("✓") + " Entry " + ui.Name.Sprint(result.Name) + " removed"
		return nil
	},
}
