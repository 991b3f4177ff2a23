// Package cli provides command-line interface functionality for the greet tool.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/liuzl/greet/internal/invocation"
	"github.com/liuzl/greet/pkg/logging"
)

var (
	name    string
	verbose bool
	Version string
	Commit  string
	Date    string
)

var logFactory = &logging.Factory{}

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "greet",
		Short: "Print a JSON greeting for the invoked arguments",
		Long: `Greet resolves a name from its flags, builds a greeting document,
and prints it to stdout as indented JSON. Unrecognized flags and
positional arguments are accepted and ignored.`,
		Args: cobra.ArbitraryArgs,
		FParseErrWhitelist: cobra.FParseErrWhitelist{
			UnknownFlags: true,
		},
		RunE: runGreet,
	}

	cmd.Flags().StringVar(&name, "name", "World", "name to greet")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "enable verbose output")

	// Add subcommands
	cmd.AddCommand(newVersionCommand())

	return cmd
}

func Execute(version, commit, date string) error {
	Version = version
	Commit = commit
	Date = date
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initLogging)
}

// initLogging runs after flag parsing; verbose lowers the level to debug.
// Logs go to stderr so stdout carries only the JSON document.
func initLogging() {
	logConfig := logging.Config{
		Level:  "warn",
		Format: "text",
	}
	if verbose {
		logConfig.Level = "debug"
	}

	logFactory = logging.NewFactory(logConfig)
}

// runGreet executes the root command
func runGreet(cmd *cobra.Command, args []string) error {
	log := logFactory.CreateComponentLogger("cli")

	log.Debug(cmd.Context(), "resolved flags",
		logging.Field{Key: "name", Value: name},
		logging.Field{Key: "verbose", Value: verbose},
		logging.Field{Key: "ignored_args", Value: args})

	result := invocation.New(name, verbose, os.Args)

	out, err := result.Render()
	if err != nil {
		return fmt.Errorf("failed to render result: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
