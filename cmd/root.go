package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/beanboi7/chyp8/logger"
	"github.com/retroenv/retrogolib/log"
	"github.com/spf13/cobra"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "chyp8 [command]",
	Short: "Chip-8 emulator using Go",
	Long:  "A Chip-8 emulator written from scratch that mimics the functionalities of a Chip-8, an interpretted language originally written for the COSMIC-VIP/ Telmac 8 bit systems.",
	Run:   Root,
	// errors are reported through the console by Execute
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		verbose := viper.GetBool("verbose")
		console = newConsole(verbose)
		if verbose {
			logger.SetEcho(console)
		}
	},
}

func Root(cmd *cobra.Command, args []string) {
	fmt.Fprintln(cmd.OutOrStdout(), "Enter command as `chyp8 start /path/ROM`")
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.chyp8.yaml)")
	flags.BoolP("verbose", "v", false, "echo the diagnostics log to stderr")
	flags.String("timers", timersTick, "what drives the delay and sound timers: tick or realtime")
	flags.String("quirks.bcd", bcdLegacy, "Fx33 behaviour: legacy or standard")
	flags.String("quirks.collision", collisionAny, "Dxyn VF behaviour: any or erase")

	for _, key := range []string{"verbose", "timers", "quirks.bcd", "quirks.collision"} {
		cobra.CheckErr(viper.BindPFlag(key, flags.Lookup(key)))
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		console.Error("Command failed", log.Err(err))
		os.Exit(1)
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".chyp8" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".chyp8")
	}

	viper.SetEnvPrefix("chyp8")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		console.Info("Using config file", log.String("file", viper.ConfigFileUsed()))
	}
}
