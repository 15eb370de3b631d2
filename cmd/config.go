package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/PolarWolf314/passmgr/internal/configs"
	perrors "github.com/PolarWolf314/passmgr/internal/errors"
	"github.com/PolarWolf314/passmgr/internal/ui"
	"github.com/PolarWolf314/passmgr/internal/workflows"

	"github.com/spf13/cobra"
)

var configShowJSON bool

// ConfigCmd is the top-level config command.
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage passmgr configuration",
	Long: `Shows and changes settings stored in config.toml.

Keys:
  vault.path          vault file used when --file is not given
  generator.length    default length for add --generate
  generator.symbols   whether generated passwords include symbols
  update.owner        GitHub owner checked by passmgr update
  update.repo         GitHub repository checked by passmgr update

Examples:
  passmgr config show
  passmgr config set vault.path ~/secrets/vault.json
  passmgr config set generator.length 32`,
}

func init() {
	configShowCmd.Flags().BoolVar(&configShowJSON, "json", false, "output in JSON format")
	ConfigCmd.AddCommand(configShowCmd)
	ConfigCmd.AddCommand(configSetCmd)
}

// resetConfigShowState resets the config show command's global state for testing.
func resetConfigShowState() {
	configShowJSON = false
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display current configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting config show command")

		result, err := workflows.ConfigShow(context.Background())
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to load user config: %v", err)
		}

		if configShowJSON {
			values := make(map[string]string, len(result.Values))
			for _, v := range result.Values {
				values[v.Key] = v.Value
			}
			output, err := json.MarshalIndent(values, "", "  ")
			if err != nil {
				return Logger.ErrorfAndReturn("Failed to marshal config to JSON: %v", err)
			}
			fmt.Println(string(output))
			return nil
		}

		fmt.Println(ui.Info.Sprint("User Configuration") + " (" + ui.Path.Sprint(result.Path) + "):")
		fmt.Println()
		for _, v := range result.Values {
			fmt.Printf("  %-18s %s\n", v.Key, ui.Success.Sprint(v.Value))
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Change a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting config set command")

		result, err := workflows.ConfigSet(context.Background(), workflows.ConfigSetOptions{
			Key:   args[0],
			Value: args[1],
		})
		if err != nil {
			if errors.Is(err, perrors.ErrUnknownConfigKey) {
				fmt.Println(ui.Error.Sprint("✗") + " Unknown key " + ui.Code.Sprint(args[0]) + "\n" +
					ui.Info.Sprint("→") + " Valid keys: " + strings.Join(configs.ConfigKeys(), ", "))
				return reported(err)
			}
			fmt.Println(ui.Error.Sprint("✗") + " " + err.Error())
			return reported(err)
		}

		Logger.Infof("Set %s from %q to %q", result.Key, result.Previous, result.Value)
		fmt.Println(ui.Success.Sprint("✓") + " " + ui.Code.Sprint(result.Key) + " set to " + ui.Success.Sprint(result.Value))
		return nil
	},
}
