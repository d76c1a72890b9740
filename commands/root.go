// Package commands implements the pdftoolbox command line.
package commands

import (
	"io"

	"pdftoolbox/config"
	"pdftoolbox/logging"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// app carries state shared by all subcommands
type app struct {
	config   *config.Config
	logger   zerolog.Logger
	logLevel string
	noColor  bool
	out      io.Writer
}

// NewRootCmd builds the pdftoolbox command tree
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "pdftoolbox",
		Short: "Merge, split and compress PDF documents",
		Long: `pdftoolbox merges, splits and compresses PDF documents from the command
line, or serves the same operations over HTTP with a small web page.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.config = config.Load()
			if cmd.Flags().Changed("log-level") {
				a.config.LogLevel = a.logLevel
			}
			a.out = cmd.OutOrStdout()
			a.logger = logging.New(a.config.LogLevel, a.config.LogFormat, cmd.ErrOrStderr())
			if a.noColor {
				color.NoColor = true
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(
		newServeCmd(a),
		newMergeCmd(a),
		newSplitCmd(a),
		newCompressCmd(a),
		newPagesCmd(a),
	)

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
