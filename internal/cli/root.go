package cli

import (
	"github.com/Halffd/srtmerger/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	logger  *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "srtmerger",
	Short: "Merge subtitle files onto a single timeline",
	Long: `Srtmerger combines two or more subtitle files into one file that
displays captions from every input at their original timecodes.

Each input can carry its own character encoding, color, font size and
screen position, so multilingual or multi-track subtitles end up in a
single deliverable.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.NewLogger(verbose)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}
