package cmd

import (
	"errors"
	"fmt"
	"os"

	logger "github.com/PolarWolf314/passmgr/internal/logging"
	"github.com/PolarWolf314/passmgr/internal/ui"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Version is the running build's version, set from main.
var Version = "dev"

var (
	verbose       bool
	debug         bool
	vaultFile     string
	passwordStdin bool
	Logger        logger.Logger

	RootCmd = &cobra.Command{
		Use:   "passmgr",
		Short: "passmgr - a single-file encrypted password manager",
		Long: `passmgr keeps named login/password/notes records in one encrypted file.

The file is protected by a master password: a key is derived from it with
Argon2id and the records are sealed with AES-256-GCM. Nothing is ever
written in the clear, and nothing leaves your machine.

Usage:
  passmgr <command> [flags]

Run 'passmgr help <command>' for more details on a specific command.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing %s with verbose=%t, debug=%t", cmd.CommandPath(), verbose, debug)
		},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println()
			banner := figure.NewColorFigure("passmgr", "standard", "green", true)
			banner.Print()
			fmt.Println()
			fmt.Println("Run " + ui.Code.Sprint("passmgr --help") + " to see available commands.")
		},
	}
)

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")
	RootCmd.PersistentFlags().StringVarP(&vaultFile, "file", "f", "", "vault file (default from config, else vault.json)")
	RootCmd.PersistentFlags().BoolVar(&passwordStdin, "password-stdin", false, "read the master password from stdin")

	RootCmd.AddCommand(initCmd)
	RootCmd.AddCommand(addCmd)
	RootCmd.AddCommand(getCmd)
	RootCmd.AddCommand(listCmd)
	RootCmd.AddCommand(removeCmd)
	RootCmd.AddCommand(passwdCmd)
	RootCmd.AddCommand(logCmd)
	RootCmd.AddCommand(ConfigCmd)
	RootCmd.AddCommand(updateCmd)
}

// reportedError wraps an error whose message has already been shown.
type reportedError struct {
	err error
}

func (e reportedError) Error() string { return e.err.Error() }
func (e reportedError) Unwrap() error { return e.err }

// reported marks err as already shown to the user.
func reported(err error) error {
	return reportedError{err: err}
}

// Execute runs the root command and prints any error not already shown.
func Execute() error {
	RootCmd.Version = Version
	err := RootCmd.Execute()
	var shown reportedError
	if err != nil && !errors.As(err, &shown) {
		fmt.Fprintln(os.Stderr, ui.Error.Sprint("✗")+" "+err.Error())
	}
	return err
}

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	vaultFile = ""
	passwordStdin = false
	resetAddCommandState()
	resetGetCommandState()
	resetLogCommandState()
	resetConfigShowState()
	resetFlags(RootCmd)
}

// resetFlags restores every flag of c and its subcommands to its default
// and clears the Changed marker left by a previous parse.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// SetLogger sets the logger for testing.
func SetLogger(l logger.Logger) {
	Logger = l
}
