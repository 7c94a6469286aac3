package cmd

import (
	"github.com/beanboi7/chyp8/logger"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/retroenv/retrogolib/log"
)

const statsviewAddress = "localhost:12600"

// launchStatsview serves graphs of the runtime statistics, and the standard
// pprof handlers, for as long as the program runs.
func launchStatsview() {
	go func() {
		viewer.SetConfiguration(viewer.WithAddr(statsviewAddress))
		mgr := statsview.New()
		if err := mgr.Start(); err != nil {
			logger.Logf("statsview", "server stopped: %v", err)
		}
	}()

	console.Info("Stats server available", log.String("address", "http://"+statsviewAddress+"/debug/statsview"))
}
