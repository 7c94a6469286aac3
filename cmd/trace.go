package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/beanboi7/chyp8/emu/overlay"
	"github.com/bradleyjkemp/memviz"
	"github.com/retroenv/retrogolib/log"
	"github.com/spf13/cobra"
)

var (
	traceTicks  int
	traceKeys   []int
	traceMemviz string
)

var traceCmd = &cobra.Command{
	Use:   "trace `path/ROM`",
	Short: "run a ROM without a window and print every instruction",
	Args:  cobra.ExactArgs(1),
	RunE:  Trace,
}

// chyp8 trace 'path/to/ROM' -n 500 -k 5 --memviz state.dot
func Trace(cmd *cobra.Command, args []string) error {
	vm, _, err := newEMU(args[0])
	if err != nil {
		return err
	}
	for _, k := range traceKeys {
		vm.PressKey(k)
	}

	out := cmd.OutOrStdout()
	for i := 0; i < traceTicks; i++ {
		pc := vm.PC()
		if err := vm.Tick(); err != nil {
			return fmt.Errorf("tick %d: %w", i, err)
		}

		text := vm.CurrentInstruction()
		if vm.Waiting() {
			text += " (waiting)"
		}
		fmt.Fprintf(out, "%6d  0x%04x  %s\n", i, pc, text)
	}

	fmt.Fprintln(out, strings.Join(overlay.Lines(vm), "\n"))

	if traceMemviz != "" {
		return writeMemviz(traceMemviz, vm.Registers())
	}

	return nil
}

// writeMemviz writes a graphviz dot graph of data to filename.
func writeMemviz(filename string, data interface{}) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	memviz.Map(f, data)
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", filename, err)
	}

	console.Info("Register graph written", log.String("file", filename))
	return nil
}

func init() {
	rootCmd.AddCommand(traceCmd)

	flags := traceCmd.Flags()
	flags.IntVarP(&traceTicks, "ticks", "n", 60, "number of ticks to run")
	flags.IntSliceVarP(&traceKeys, "keys", "k", nil, "keys held down for the whole run")
	flags.StringVar(&traceMemviz, "memviz", "", "write a graphviz dot file of the final registers")
}
