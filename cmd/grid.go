package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/dbmrq/spoons/internal/config"
	"github.com/dbmrq/spoons/internal/modules/windowgrid"
	"github.com/dbmrq/spoons/internal/platform"
	"github.com/dbmrq/spoons/internal/sched"
)

var gridCmd = &cobra.Command{
	Use:   "grid <action>",
	Short: "Run a window-grid action on the focused window",
	Long: `Run one grid action and exit. Actions: move-left, move-right, move-up,
move-down, resize-left, resize-right, resize-up, resize-down, snap,
maximize, center, cascade, undo, redo, screen-next, screen-prev, screen-N.

Useful from scripts or other launchers; the daemon binds the same actions
to hotkeys.`,
	Args: cobra.ExactArgs(1),
	RunE: runGrid,
}

func init() {
	rootCmd.AddCommand(gridCmd)
}

func runGrid(cmd *cobra.Command, args []string) error {
	action, err := windowgrid.ParseAction(args[0])
	screenIdx, isScreenIdx := windowgrid.ParseScreenIndex(args[0])
	if err != nil && !isScreenIdx {
		return err
	}

	cfgPath, err := config.Path()
	if err != nil {
		return err
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}

	mod, err := windowgrid.New(cfg.Grid, windowgrid.Deps{
		Windows: provider.WindowManager,
		Screens: provider.Screens,
		Sched:   sched.New(),
	})
	if err != nil {
		return err
	}

	if isScreenIdx {
		mod.MoveToScreen(screenIdx)
	} else {
		mod.Handle(action)
	}

	// A slow-resizing app gets a deferred cascade pass; hold the process
	// open long enough for it to run.
	if len(cfg.Grid.SlowResizeApps) > 0 {
		time.Sleep(time.Duration(cfg.Grid.CascadeRecheckMs)*time.Millisecond + 100*time.Millisecond)
	}
	return nil
}
