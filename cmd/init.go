package cmd

import (
	"context"

	"github.com/PolarWolf314/passmgr/internal/ui"
	"github.com/PolarWolf314/passmgr/internal/workflows"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a new, empty vault",
	Long: `Creates a new vault file protected by a master password.

The master password is asked for twice. It cannot be recovered: if you
forget it, the records in the vault are lost.

Examples:
  passmgr init                      # Create vault.json (or the configured vault)
  passmgr init --file ~/work.json   # Create a vault somewhere else`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting init command")

		path, err := resolveVaultPath()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to resolve vault path: %v", err)
		}

		password, err := readNewMasterPassword()
		if err != nil {
			spinner, cleanup := startSpinner("Creating vault...", verbose)
			defer cleanup()
			return failVault(spinner, err, path)
		}

		spinner, cleanup := startSpinner("Creating vault...", verbose)
		defer cleanup()

		result, err := workflows.Init(context.Background(), workflows.InitOptions{
			Path:     path,
			Password: password,
		})
		if err != nil {
			return failVault(spinner, err, path)
		}

		Logger.Infof("Init command completed successfully")
		spinner.FinalMSG = ui.Success.Sprint("✓") + " Vault created at " + ui.Path.Sprint(result.Path) + "\n" +
			ui.Info.Sprint("→") + " Add your first entry with " + ui.Code.Sprint("passmgr add NAME LOGIN") + "\n" +
			ui.Warning.Sprint("Warning:") + " The master password cannot be recovered. Keep it somewhere safe."
		return nil
	},
}
