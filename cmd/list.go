package cmd

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/passmgr/internal/ui"
	"github.com/PolarWolf314/passmgr/internal/utils"
	"github.com/PolarWolf314/passmgr/internal/workflows"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list [PATTERN]",
	Short: "List entry names",
	Long: `Lists the names of all entries, in sorted order.

An optional glob narrows the list. "*" matches within one path segment and
"**" across segments.

Examples:
  passmgr list              # Every entry
  passmgr list 'work/*'     # Entries under work/
  passmgr list '*.com'      # Names ending in .com`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting list command")

		pattern := ""
		if len(args) == 1 {
			pattern = args[0]
		}

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

		result, err := workflows.List(context.Background(), workflows.ListOptions{
			Path:     path,
			Password: password,
			Pattern:  pattern,
		})
		if err != nil {
			return failVault(spinner, err, path)
		}
		warnLoosePermissions(spinner, result.VaultStatus)

		Logger.Debugf("Listed %d of %d entries", len(result.Names), result.EntriesCount)

		switch {
		case result.EntriesCount == 0:
			spinner.FinalMSG = ui.Info.Sprint("ℹ") + " The vault is empty\n" +
				ui.Info.Sprint("→") + " Add an entry with " + ui.Code.Sprint("passmgr add NAME LOGIN")
		case len(result.Names) == 0:
			spinner.FinalMSG = ui.Info.Sprint("ℹ") + " No entries match " + ui.Code.Sprint(pattern)
		default:
			spinner.FinalMSG = fmt.Sprintf("%s %d of %d entries:\n", ui.Success.Sprint("✓"), len(result.Names), result.EntriesCount) +
				utils.FormatNames(result.Names)
		}
		return nil
	},
}
