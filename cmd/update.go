package cmd

import (
	"context"

	"github.com/PolarWolf314/passmgr/internal/ui"
	"github.com/PolarWolf314/passmgr/internal/workflows"

	"github.com/spf13/cobra"
)

// updateBaseURL overrides the release API root in tests.
var updateBaseURL string

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Check whether a newer passmgr is available",
	Long: `Asks the project's GitHub releases page for the latest version and
compares it with this build. Nothing is downloaded or installed.

This is the only passmgr command that uses the network.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting update command")

		config := loadUserConfig()
		spinner, cleanup := startSpinner("Checking for updates...", verbose)
		defer cleanup()

		result, err := workflows.CheckUpdate(context.Background(), workflows.UpdateOptions{
			CurrentVersion: Version,
			Owner:          config.Update.Owner,
			Repo:           config.Update.Repo,
			BaseURL:        updateBaseURL,
		})
		if err != nil {
			spinner.FinalMSG = ui.Error.Sprint("✗") + " " + err.Error()
			return reported(err)
		}

		if !result.UpdateAvailable {
			spinner.FinalMSG = ui.Success.Sprint("✓") + " passmgr " + result.Current + " is up to date"
			return nil
		}

		msg := ui.Warning.Sprint("⚠") + " passmgr " + result.Latest + " is available (you have " + result.Current + ")"
		if result.PublishedAt != "" {
			msg += ", released " + result.PublishedAt
		}
		if result.URL != "" {
			msg += "\n" + ui.Info.Sprint("→") + " " + ui.Path.Sprint(result.URL)
		}
		spinner.FinalMSG = msg
		return nil
	},
}
