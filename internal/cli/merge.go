package cli

import (
	"fmt"

	"github.com/Halffd/srtmerger/internal/config"
	"github.com/Halffd/srtmerger/internal/merger"
	"github.com/spf13/cobra"
)

var mergeCmd = &cobra.Command{
	Use:   "merge [subtitle_files...]",
	Short: "Merge subtitle files into a single output file",
	Long: `Merge two or more subtitle files into one file on a shared timeline.

Per-file options (--encoding, --color, --size, --top) are matched to the
input files by position: the first value applies to the first file, and
files without a value keep the defaults (utf-8, no styling).

Examples:
  srtmerger merge en.srt fr.srt -o out -n merged.srt
  srtmerger merge en.srt fa.srt -e utf-8 -e cp1256 -c "" -c yellow --top=false --top=true
  srtmerger merge --job episode01.toml`,
	Args: cobra.ArbitraryArgs,
	RunE: runMerge,
}

func init() {
	rootCmd.AddCommand(mergeCmd)

	mergeCmd.Flags().StringP("output", "o", ".", "Output directory")
	mergeCmd.Flags().StringP("name", "n", "merged.srt", "Output file name")
	mergeCmd.Flags().
		String("out-encoding", "utf-8", "Output encoding (utf-8, utf-16le, windows-1256, ...)")
	mergeCmd.Flags().
		StringArrayP("encoding", "e", nil, "Input encoding for each file, in order")
	mergeCmd.Flags().
		StringArrayP("color", "c", nil, "Color for each file, in order (name, hex, or \"(r,g,b)\")")
	mergeCmd.Flags().
		StringArrayP("size", "s", nil, "Font size for each file, in order")
	mergeCmd.Flags().
		BoolSlice("top", nil, "Place each file's captions at the top of the screen, in order")
	mergeCmd.Flags().
		StringP("job", "j", "", "TOML job file describing the merge (replaces positional arguments)")
}

// inputSource pairs a file path with its per-source options.
type inputSource struct {
	path string
	opts merger.SourceOptions
}

func runMerge(cmd *cobra.Command, args []string) error {
	outputDir, _ := cmd.Flags().GetString("output")
	outputName, _ := cmd.Flags().GetString("name")
	outputEncoding, _ := cmd.Flags().GetString("out-encoding")
	jobPath, _ := cmd.Flags().GetString("job")

	var inputs []inputSource
	if jobPath != "" {
		job, err := config.Load(jobPath)
		if err != nil {
			return err
		}
		outputDir = job.OutputDir
		outputName = job.OutputName
		outputEncoding = job.OutputEncoding
		for _, src := range job.Sources {
			inputs = append(inputs, inputSource{
				path: src.Path,
				opts: merger.SourceOptions{
					Encoding: src.Encoding,
					Color:    src.Color,
					Size:     src.Size,
					Top:      src.Top,
				},
			})
		}
	} else {
		encodings, _ := cmd.Flags().GetStringArray("encoding")
		colors, _ := cmd.Flags().GetStringArray("color")
		sizes, _ := cmd.Flags().GetStringArray("size")
		tops, _ := cmd.Flags().GetBoolSlice("top")
		for i, path := range args {
			inputs = append(inputs, inputSource{
				path: path,
				opts: merger.SourceOptions{
					Encoding: optionAt(encodings, i),
					Color:    optionAt(colors, i),
					Size:     optionAt(sizes, i),
					Top:      flagAt(tops, i),
				},
			})
		}
	}
	if len(inputs) == 0 {
		return fmt.Errorf("no input files: pass subtitle files or --job")
	}

	session, err := merger.NewSession(outputDir, outputName, outputEncoding)
	if err != nil {
		return err
	}

	logger.Infow("Starting merge",
		"inputs", len(inputs),
		"output", session.OutputPath(),
		"encoding", outputEncoding,
	)

	for _, in := range inputs {
		logger.Debugw("Adding source",
			"path", in.path,
			"encoding", in.opts.Encoding,
			"color", in.opts.Color,
			"size", in.opts.Size,
			"top", in.opts.Top,
		)
		if err := session.Add(in.path, in.opts); err != nil {
			return fmt.Errorf("adding %s: %w", in.path, err)
		}
		sources := session.Sources()
		if last := sources[len(sources)-1]; last.Skipped > 0 {
			logger.Warnw("Skipped malformed cue blocks",
				"path", in.path,
				"skipped", last.Skipped,
			)
		}
	}

	res, err := session.Merge()
	if err != nil {
		return fmt.Errorf("merge failed: %w", err)
	}
	if res.EncodeFailures > 0 {
		logger.Warnw("Some blocks could not be encoded",
			"encoding", outputEncoding,
			"blocks", res.EncodeFailures,
		)
	}

	logger.Infow("Merge complete",
		"cues", res.Cues,
		"skipped", res.Skipped,
	)
	fmt.Printf("'%s' created successfully\n", res.Path)

	return nil
}

// optionAt returns the i-th per-file option, or the zero default when
// fewer values than files were given.
func optionAt(values []string, i int) string {
	if i < len(values) {
		return values[i]
	}
	return ""
}

func flagAt(values []bool, i int) bool {
	if i < len(values) {
		return values[i]
	}
	return false
}
