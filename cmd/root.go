package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/PolarWolf314/kauri/internal/clipboard"
	"github.com/PolarWolf314/kauri/internal/configs"
	logger "github.com/PolarWolf314/kauri/internal/logging"
	"github.com/PolarWolf314/kauri/internal/pgp"
	"github.com/PolarWolf314/kauri/internal/ui"
	"github.com/PolarWolf314/kauri/internal/workflows"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger

	// deps is built once per invocation in PersistentPreRunE.
	deps workflows.Deps

	// environment supplies the values settings are resolved from.
	environment = configs.EnvironmentFromOS

	// depsOverride lets tests swap collaborators after deps is built.
	depsOverride func(*workflows.Deps)

	RootCmd = &cobra.Command{
		Use:   "kauri",
		Short: "Kauri - a small password store built on GnuPG",
		Long: `Kauri keeps each secret in its own GnuPG-encrypted file inside a store
directory. Encryption and decryption are done by your installed gpg, so your
existing keys, agent and pinentry all keep working.

Getting started:
  kauri init alice@example.com       # create a store for your key
  kauri new mail                     # add a secret (prompts twice)
  kauri read mail                    # print it
  kauri read mail --copy             # copy it to the clipboard

Environment:
  XDG_CONFIG_HOME   config location (default ~/.config/kauri/config.toml)
  XDG_DATA_HOME     default store location (default ~/.local/share/kauri/store)
  KAURI_GPG         gpg executable to use (default gpg)`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing %s with verbose=%t, debug=%t", cmd.Name(), verbose, debug)

			env, err := environment()
			if err != nil {
				return Logger.ErrorfAndReturn("failed to read environment: %v", err)
			}
			settings, err := configs.ResolveSettings(env)
			if err != nil {
				return Logger.ErrorfAndReturn("failed to resolve settings: %v", err)
			}
			Logger.Debugf("Config path: %s", settings.ConfigPath)

			gpg := pgp.NewGPG(env.GPGBinary)
			Logger.Debugf("Using gpg binary: %s", gpg.Binary)

			deps = workflows.Deps{
				Settings:  settings,
				Crypter:   gpg,
				Resolver:  gpg,
				Clipboard: clipboard.System{},
				Logger:    Logger,
			}
			if depsOverride != nil {
				depsOverride(&deps)
			}
			return nil
		},
	}
)

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")
}

// Execute runs the root command. Errors that a command has not already
// shown to the user are printed here.
func Execute() error {
	err := RootCmd.Execute()
	if err != nil {
		var shown *reportedError
		if !errors.As(err, &shown) {
			fmt.Fprintln(os.Stderr, ui.Failed(err.Error()))
		}
	}
	return err
}

// Helper functions for testing

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	Logger = logger.Logger{}
	deps = workflows.Deps{}
	resetInitCommandState()
	resetNewCommandState()
	resetReadCommandState()
	resetLogCommandState()
	resetConfigShowState()
	resetCobraFlagState(RootCmd)
}

// resetCobraFlagState clears the Changed marker on every flag to prevent test pollution.
func resetCobraFlagState(c *cobra.Command) {
	c.Flags().VisitAll(func(flag *pflag.Flag) {
		flag.Changed = false
	})
	c.PersistentFlags().VisitAll(func(flag *pflag.Flag) {
		flag.Changed = false
	})
	for _, sub := range c.Commands() {
		resetCobraFlagState(sub)
	}
}
