package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dbmrq/spoons/internal/output"
	"github.com/dbmrq/spoons/internal/platform"
)

var windowsCmd = &cobra.Command{
	Use:   "windows",
	Short: "List open windows",
	Long:  "List open windows with their app name, title, PID, and frame.",
	RunE:  runWindows,
}

var screensCmd = &cobra.Command{
	Use:   "screens",
	Short: "List displays",
	Long:  "List displays with their IDs, names, and usable frames.",
	RunE:  runScreens,
}

func init() {
	rootCmd.AddCommand(windowsCmd)
	windowsCmd.Flags().String("app", "", "Filter by application name")
	windowsCmd.Flags().Int("pid", 0, "Filter by process ID")
	windowsCmd.Flags().Int("screen", 0, "Filter by screen ID")

	rootCmd.AddCommand(screensCmd)
}

func runWindows(cmd *cobra.Command, args []string) error {
	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}

	app, _ := cmd.Flags().GetString("app")
	pid, _ := cmd.Flags().GetInt("pid")
	screen, _ := cmd.Flags().GetInt("screen")

	windows, err := provider.WindowManager.ListWindows(platform.ListOptions{
		App:      app,
		PID:      pid,
		ScreenID: screen,
	})
	if err != nil {
		return err
	}
	return output.Print(windows)
}

func runScreens(cmd *cobra.Command, args []string) error {
	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}
	screens, err := provider.Screens.ListScreens()
	if err != nil {
		return err
	}
	return output.Print(screens)
}
