package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/getlantern/systray"
	"github.com/spf13/cobra"

	"github.com/dbmrq/spoons/internal/config"
	"github.com/dbmrq/spoons/internal/hotkeys"
	"github.com/dbmrq/spoons/internal/modules"
	"github.com/dbmrq/spoons/internal/modules/clipboard"
	"github.com/dbmrq/spoons/internal/modules/hints"
	"github.com/dbmrq/spoons/internal/modules/quitguard"
	"github.com/dbmrq/spoons/internal/modules/textkeys"
	"github.com/dbmrq/spoons/internal/modules/windowgrid"
	"github.com/dbmrq/spoons/internal/platform"
	"github.com/dbmrq/spoons/internal/sched"
	"github.com/dbmrq/spoons/internal/settings"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the spoons daemon",
	Long: `Start every enabled module and keep running until interrupted. The
clipboard module publishes its menu into the menu bar; hotkeys stay
registered for the lifetime of the process.`,
	RunE: runDaemon,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().String("config", "", "Config file path (default: ~/.config/spoons/config.yaml)")
}

func runDaemon(cmd *cobra.Command, args []string) error {
	cfgPath, _ := cmd.Flags().GetString("config")
	if cfgPath == "" {
		var err error
		cfgPath, err = config.Path()
		if err != nil {
			return err
		}
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}

	dir, err := config.Dir()
	if err != nil {
		return err
	}
	store, err := settings.Open(dir)
	if err != nil {
		return err
	}
	defer store.Close()

	// Every module gets its own registry so stopping one never tears down
	// another's hotkeys. The hints overlay enumerates them all.
	var registries []*hotkeys.Registry
	newRegistry := func() *hotkeys.Registry {
		r := hotkeys.NewRegistry()
		registries = append(registries, r)
		return r
	}

	mgr := modules.NewManager()

	var hintsMod *hints.Module
	if cfg.Hints.Enabled {
		hintsMod, err = hints.New(cfg.Hints, hints.Deps{
			Registry: combinedRegistries{&registries},
			Overlay:  provider.Overlay,
			Tap:      provider.ModifierTap,
			Focus:    provider.FocusInfo,
			Screens:  provider.Screens,
			Sched:    sched.New(),
		})
		if err != nil {
			return err
		}
		mgr.Add(hintsMod)
	}

	if cfg.Grid.Enabled {
		deps := windowgrid.Deps{
			Windows: provider.WindowManager,
			Screens: provider.Screens,
			Hotkeys: newRegistry(),
			Sched:   sched.New(),
		}
		if hintsMod != nil {
			deps.OnModeLabel = hintsMod.ShowModeLabel
		}
		gridMod, err := windowgrid.New(cfg.Grid, deps)
		if err != nil {
			return err
		}
		mgr.Add(gridMod)
	}

	tray := clipboard.NewTray(cfg.Clipboard.CopyCapacity + cfg.Clipboard.CutCapacity + len(cfg.Clipboard.StaticItems) + 1)
	if cfg.Clipboard.Enabled {
		clipMod, err := clipboard.New(cfg.Clipboard, clipboard.Deps{
			Pasteboard: provider.Pasteboard,
			Keyboard:   provider.Keyboard,
			Hotkeys:    newRegistry(),
			Settings:   store,
			Menu:       tray,
			Sched:      sched.New(),
		})
		if err != nil {
			return err
		}
		mgr.Add(clipMod)
	}

	if cfg.TextKeys.Enabled {
		textMod, err := textkeys.New(cfg.TextKeys, textkeys.Deps{
			Keyboard: provider.Keyboard,
			Focus:    provider.FocusInfo,
			Hotkeys:  newRegistry(),
		})
		if err != nil {
			return err
		}
		mgr.Add(textMod)
	}

	if cfg.QuitGuard.Enabled {
		deps := quitguard.Deps{
			Apps:    provider.AppControl,
			Hotkeys: newRegistry(),
			Sched:   sched.New(),
		}
		if hintsMod != nil {
			deps.OnCountdown = func(remaining int) {
				if remaining > 0 {
					hintsMod.ShowModeLabel(fmt.Sprintf("Quitting in %d…", remaining))
				}
			}
		}
		guardMod, err := quitguard.New(cfg.QuitGuard, deps)
		if err != nil {
			return err
		}
		mgr.Add(guardMod)
	}

	if len(mgr.Modules()) == 0 {
		return fmt.Errorf("no modules enabled in %s", cfgPath)
	}

	// systray.Run owns the main thread's event loop, which the hotkey and
	// overlay backends also need. Modules start once the tray is ready.
	startErr := make(chan error, 1)
	systray.Run(func() {
		tray.OnReady()
		if err := mgr.StartAll(); err != nil {
			startErr <- err
			systray.Quit()
			return
		}

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sig
			systray.Quit()
		}()
	}, func() {
		mgr.StopAll()
		tray.Stop()
	})

	select {
	case err := <-startErr:
		return err
	default:
		return nil
	}
}

// combinedRegistries lets the hint overlay enumerate the bindings of every
// module's registry as one.
type combinedRegistries struct {
	registries *[]*hotkeys.Registry
}

func (c combinedRegistries) MatchingModifiers(mods []string) []hotkeys.Binding {
	var out []hotkeys.Binding
	for _, r := range *c.registries {
		out = append(out, r.MatchingModifiers(mods)...)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out
}
