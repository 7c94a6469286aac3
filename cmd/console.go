package cmd

import (
	"github.com/retroenv/retrogolib/log"
)

// console is the structured log the commands report through. It is replaced
// in PersistentPreRun once the verbose flag is known.
var console = newConsole(false)

func newConsole(verbose bool) *log.Logger {
	cfg := log.DefaultConfig()
	if verbose {
		cfg.Level = log.DebugLevel
	}
	return log.NewWithConfig(cfg)
}
