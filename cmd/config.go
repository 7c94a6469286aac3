package cmd

import (
	"fmt"

	"github.com/beanboi7/chyp8/emu/cpu"
	"github.com/spf13/viper"
)

const (
	timersTick     = "tick"
	timersRealtime = "realtime"

	bcdLegacy   = "legacy"
	bcdStandard = "standard"

	collisionAny   = "any"
	collisionErase = "erase"
)

// Config is everything the commands read from flags, environment and the
// config file.
type Config struct {
	Refresh   int
	Scale     int
	Debug     bool
	Statsview bool

	TimerMode cpu.TimerMode
	Quirks    cpu.Quirks
}

func loadConfig(v *viper.Viper) (Config, error) {
	cfg := Config{
		Refresh:   v.GetInt("refresh"),
		Scale:     v.GetInt("scale"),
		Debug:     v.GetBool("debug"),
		Statsview: v.GetBool("statsview"),
	}

	switch t := v.GetString("timers"); t {
	case timersTick, "":
		cfg.TimerMode = cpu.TimerTick
	case timersRealtime:
		cfg.TimerMode = cpu.TimerRealtime
	default:
		return cfg, fmt.Errorf("unknown timers mode %q", t)
	}

	switch q := v.GetString("quirks.bcd"); q {
	case bcdLegacy, "":
	case bcdStandard:
		cfg.Quirks.BCDStandard = true
	default:
		return cfg, fmt.Errorf("unknown bcd quirk %q", q)
	}

	switch q := v.GetString("quirks.collision"); q {
	case collisionAny, "":
	case collisionErase:
		cfg.Quirks.CollisionErase = true
	default:
		return cfg, fmt.Errorf("unknown collision quirk %q", q)
	}

	if cfg.Refresh < 1 {
		return cfg, fmt.Errorf("refresh rate must be positive, got %d", cfg.Refresh)
	}

	return cfg, nil
}

func (cfg Config) options() []cpu.Option {
	return []cpu.Option{
		cpu.WithTimerMode(cfg.TimerMode),
		cpu.WithQuirks(cfg.Quirks),
	}
}

// newEMU builds the machine described by the configuration and loads the
// ROM into it.
func newEMU(romPath string) (*cpu.EMU, Config, error) {
	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return nil, cfg, err
	}

	vm := cpu.NewEMU(cfg.options()...)
	if err := vm.LoadROM(romPath); err != nil {
		return nil, cfg, err
	}
	return vm, cfg, nil
}

func init() {
	viper.SetDefault("refresh", 60)
	viper.SetDefault("scale", 10)
}
