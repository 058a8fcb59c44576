package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/dbmrq/spoons/internal/config"
	"github.com/dbmrq/spoons/internal/modules/clipboard"
	"github.com/dbmrq/spoons/internal/output"
	"github.com/dbmrq/spoons/internal/platform"
	"github.com/dbmrq/spoons/internal/settings"
)

var clipboardCmd = &cobra.Command{
	Use:   "clipboard",
	Short: "Inspect and manage the clipboard history",
}

var clipboardHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Print the clipboard history, most recent first",
	RunE:  runClipboardHistory,
}

var clipboardClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the persisted clipboard history",
	RunE:  runClipboardClear,
}

var clipboardWriteCmd = &cobra.Command{
	Use:   "write <text>",
	Short: "Write text to the pasteboard",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runClipboardWrite,
}

func init() {
	rootCmd.AddCommand(clipboardCmd)
	clipboardCmd.AddCommand(clipboardHistoryCmd)
	clipboardCmd.AddCommand(clipboardClearCmd)
	clipboardCmd.AddCommand(clipboardWriteCmd)
}

func openSettings() (*settings.Store, error) {
	dir, err := config.Dir()
	if err != nil {
		return nil, err
	}
	return settings.Open(dir)
}

func runClipboardHistory(cmd *cobra.Command, args []string) error {
	store, err := openSettings()
	if err != nil {
		return err
	}
	defer store.Close()

	history, err := clipboard.PersistedHistory(store)
	if err != nil {
		return err
	}
	if history == nil {
		history = []string{}
	}
	return output.Print(history)
}

func runClipboardClear(cmd *cobra.Command, args []string) error {
	store, err := openSettings()
	if err != nil {
		return err
	}
	defer store.Close()
	return clipboard.ClearPersisted(store)
}

func runClipboardWrite(cmd *cobra.Command, args []string) error {
	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}
	return provider.Pasteboard.SetText(strings.Join(args, " "))
}
