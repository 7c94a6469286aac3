package cmd

import (
	"fmt"
	"os"

	"github.com/beanboi7/chyp8/emu/cpu"
	"github.com/spf13/cobra"
)

var disasmCmd = &cobra.Command{
	Use:   "disasm `path/ROM`",
	Short: "print a listing of the ROM",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rom, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		if len(rom) > cpu.MaxROMSize {
			return fmt.Errorf("%w: %d bytes", cpu.ErrROMTooLarge, len(rom))
		}

		out := cmd.OutOrStdout()
		for _, l := range cpu.DisassembleROM(rom) {
			fmt.Fprintln(out, l)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(disasmCmd)
}
