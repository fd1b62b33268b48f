package cli

import (
	"fmt"
	"strings"

	"github.com/Halffd/srtmerger/internal/color"
	"github.com/spf13/cobra"
)

var colorsCmd = &cobra.Command{
	Use:   "colors",
	Short: "List recognized color names",
	Long: `List the color names the --color option understands, with their hex
values. Hex codes (with or without #) and "(r,g,b)" triples are also
accepted; anything unrecognized falls back to white.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range color.Names() {
			fmt.Printf("%-8s %s\n", strings.ToLower(name), color.Hex(name))
		}
	},
}

func init() {
	rootCmd.AddCommand(colorsCmd)
}
