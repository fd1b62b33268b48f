package cli

import (
	"fmt"

	"github.com/Halffd/srtmerger/internal/encoding"
	"github.com/spf13/cobra"
)

var encodingsCmd = &cobra.Command{
	Use:   "encodings",
	Short: "List supported text encodings",
	Long: `List the Unicode encodings that receive a byte-order mark on output.

Any IANA-registered encoding name is also accepted for input and
output, e.g. windows-1256, cp1256, latin-1 or shift_jis; those are
written without a byte-order mark.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range encoding.UTFFamily() {
			fmt.Println(name)
		}
	},
}

func init() {
	rootCmd.AddCommand(encodingsCmd)
}
