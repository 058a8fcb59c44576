package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dbmrq/spoons/internal/output"
	"github.com/dbmrq/spoons/internal/platform"
	"github.com/dbmrq/spoons/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "spoons",
	Short: "Keyboard-driven window management and clipboard history for macOS",
	Long: `A collection of desktop-automation modules for macOS: grid-based window
tiling and cascading, a hotkey-hint overlay, a clipboard history menu,
emacs-style text-editing shortcuts, and a hold-to-quit guard.

Run the daemon with "spoons run", or use the subcommands for one-shot
operations from scripts.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("format", "yaml", "Output format: yaml, json")
	rootCmd.PersistentFlags().Bool("pretty", false, "Pretty-print JSON output")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if platform.RequestPermissionsFunc != nil {
			platform.RequestPermissionsFunc()
		}

		format, _ := rootCmd.PersistentFlags().GetString("format")
		switch format {
		case "yaml":
			output.OutputFormat = output.FormatYAML
		case "json":
			output.OutputFormat = output.FormatJSON
		default:
			return fmt.Errorf("unsupported format: %s (use yaml or json)", format)
		}

		pretty, _ := rootCmd.PersistentFlags().GetBool("pretty")
		output.PrettyOutput = pretty
		return nil
	}
}
