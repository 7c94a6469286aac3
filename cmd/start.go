package cmd

import (
	"fmt"
	"time"

	"github.com/beanboi7/chyp8/emu/cpu"
	"github.com/beanboi7/chyp8/emu/overlay"
	"github.com/beanboi7/chyp8/emu/screen"
	"github.com/faiface/pixel/pixelgl"
	"github.com/retroenv/retrogolib/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var startCmd = &cobra.Command{
	Use:   "start `path/ROM`",
	Short: "load and start the Emulator",
	Long: `Load a ROM and run it in a window, one instruction per frame.

Keys 1-4, Q-R, A-F and Z-V form the hex keypad. Escape quits, Space
pauses and resumes, N steps one instruction while paused and Tab toggles
the register overlay.`,
	Args: cobra.ExactArgs(1),
	RunE: Start,
}

// chyp8 start 'path/to/ROM' -r 69
func Start(cmd *cobra.Command, args []string) error {
	vm, cfg, err := newEMU(args[0])
	if err != nil {
		return fmt.Errorf("error starting the emulator: %w", err)
	}

	if cfg.Statsview {
		launchStatsview()
	}

	// glfw has to own the main thread
	pixelgl.Run(func() {
		err = runWindow(vm, cfg)
	})
	return err
}

func runWindow(vm *cpu.EMU, cfg Config) error {
	win, err := screen.NewWindow(screen.Config{
		Title:   "Chyp8",
		Scale:   cfg.Scale,
		Debug:   cfg.Debug,
		Display: vm.Resolution(),
		Panel:   vm.DebugResolution(),
	})
	if err != nil {
		return err
	}
	defer win.Destroy()

	frame := time.NewTicker(time.Second / time.Duration(cfg.Refresh))
	defer frame.Stop()

	vm.Start()
	last := time.Now()

	for !win.Closed() {
		now := <-frame.C
		vm.AdvanceTimers(now.Sub(last))
		last = now

		win.PollKeys(vm)
		switch {
		case win.JustPressed(pixelgl.KeyEscape):
			win.SetClosed(true)
		case win.JustPressed(pixelgl.KeySpace):
			if vm.Running() {
				vm.Pause()
			} else {
				vm.Resume()
			}
		case win.JustPressed(pixelgl.KeyTab):
			win.Debug = !win.Debug
		case win.JustPressed(pixelgl.KeyN) && !vm.Running():
			if err := vm.Step(); err != nil {
				console.Error("Step failed", log.Err(err))
			}
		}

		if err := vm.Tick(); err != nil {
			console.Error("Tick failed, pausing", log.Err(err))
			vm.Pause()
		}

		lines := append([]string{overlay.Status(vm.Running(), vm.Waiting()), ""}, overlay.Lines(vm)...)
		if err := win.Draw(vm, vm.ScreenChanged(), lines); err != nil {
			return err
		}
		win.Update()
	}

	return nil
}

func init() {
	rootCmd.AddCommand(startCmd)

	flags := startCmd.Flags()
	flags.IntP("refresh", "r", 60, "sets the refresh rate of the display")
	flags.IntP("scale", "s", 10, "window pixels per display pixel")
	flags.BoolP("debug", "d", false, "show the register overlay")
	flags.Bool("statsview", false, "serve runtime statistics while running")

	for _, key := range []string{"refresh", "scale", "debug", "statsview"} {
		cobra.CheckErr(viper.BindPFlag(key, flags.Lookup(key)))
	}
}
