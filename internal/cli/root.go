// Package cli provides the command-line interface for Swatch.
package cli

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatch/internal/version"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "swatch",
	Short: "Dominant colour extraction for images",
	Long: `Swatch extracts the dominant colours of an image by clustering its
pixels in colour space and reporting the largest clusters, ranked by
how much of the image they cover.`,
	Version:      version.Short(),
	SilenceUsage: true,
}

// NewRootCmd returns the fully wired root command.
// This is called by main.main(). It only needs to happen once.
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress non-error output")

	// Set version template
	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(analyzeCmd)
}

// newLogger builds the logger used by all commands, with the level
// driven by the global verbosity flags.
func newLogger(cmd *cobra.Command) hclog.Logger {
	level := hclog.Info
	if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
		level = hclog.Error
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = hclog.Debug
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "swatch",
		Output: os.Stderr,
		Level:  level,
	})
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
	},
}
