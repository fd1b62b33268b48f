// Package merger merges timed-caption files onto a single timeline.
//
// A Session accumulates sources one Add call at a time, indexing each
// file's cues by start time, then Merge unions all start times, joins
// the contributions at each shared instant in add order, renumbers the
// result and writes it out in the configured output encoding.
package merger

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/Halffd/srtmerger/internal/color"
	"github.com/Halffd/srtmerger/internal/encoding"
	"github.com/Halffd/srtmerger/internal/subtitle"
)

// emitted in place of a block the output encoding cannot represent
const placeholderText = "This block could not be encoded with the configured output encoding"

// SourceOptions configures one input file added to a session.
// Zero values mean: utf-8 input, no color, no size, bottom position.
type SourceOptions struct {
	Encoding string
	Color    string
	Size     string
	Top      bool
}

// Source is one caption file indexed into a session. Skipped counts
// the malformed blocks discarded while parsing the file.
type Source struct {
	Path    string
	Options SourceOptions
	Skipped int
	entries map[int64]entry
}

// entry is one source's contribution at a single start time: the
// original timecode line plus the already-styled text.
type entry struct {
	timecode string
	text     string
}

// Session is one merge job. It is not safe for concurrent use; run
// independent jobs on separate sessions.
type Session struct {
	outputPath     string
	outputName     string
	outputEncoding string

	sources []*Source
	times   map[int64]struct{}
}

// Result reports what a merge wrote.
type Result struct {
	Path           string // final output file path
	Cues           int    // merged blocks written
	Skipped        int    // malformed input blocks discarded, all sources
	EncodeFailures int    // blocks replaced by the encoding placeholder
}

// NewSession creates a merge session. Empty arguments default to the
// current directory, "merged.srt" and utf-8. The output encoding is
// resolved up front so a bad name fails here, not at Merge time.
func NewSession(outputPath, outputName, outputEncoding string) (*Session, error) {
	if outputPath == "" {
		outputPath = "."
	}
	if outputName == "" {
		outputName = "merged.srt"
	}
	if outputEncoding == "" {
		outputEncoding = "utf-8"
	}
	if _, err := encoding.Lookup(outputEncoding); err != nil {
		return nil, err
	}
	return &Session{
		outputPath:     outputPath,
		outputName:     outputName,
		outputEncoding: outputEncoding,
		times:          make(map[int64]struct{}),
	}, nil
}

// OutputPath returns the path Merge will write to.
func (s *Session) OutputPath() string {
	return filepath.Join(s.outputPath, s.outputName)
}

// Sources returns the sources added so far, in add order.
func (s *Session) Sources() []*Source {
	return s.sources
}

// Reset clears the timeline and sources so the session can run a new
// merge with the same output settings.
func (s *Session) Reset() {
	s.sources = nil
	s.times = make(map[int64]struct{})
}

// Add reads, decodes, parses and styles one caption file into the
// session. Malformed cue blocks are skipped and counted on the
// returned source, never an error; unreadable files and bytes invalid
// under the declared encoding fail the call.
func (s *Session) Add(path string, opts SourceOptions) error {
	if opts.Encoding == "" {
		opts.Encoding = "utf-8"
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	text, err := encoding.Decode(data, opts.Encoding)
	if err != nil {
		return &DecodeError{Path: path, Encoding: opts.Encoding, Err: err}
	}

	cues, skipped := subtitle.Parse(text)
	style := subtitle.Style{
		Color: color.Normalize(opts.Color),
		Size:  opts.Size,
		Top:   opts.Top,
	}

	src := &Source{
		Path:    path,
		Options: opts,
		Skipped: skipped,
		entries: make(map[int64]entry, len(cues)),
	}
	for _, cue := range cues {
		styled := subtitle.ApplyStyle(cue.Text, style)
		if e, ok := src.entries[cue.Start]; ok {
			// two cues at one instant within a single file join up
			e.text += "\n" + styled
			src.entries[cue.Start] = e
		} else {
			src.entries[cue.Start] = entry{timecode: cue.Timecode, text: styled}
		}
		s.times[cue.Start] = struct{}{}
	}
	s.sources = append(s.sources, src)
	return nil
}

// Merge sorts the timeline, renumbers the merged blocks, encodes them
// and writes the output file, returning the path written. A session
// with no indexed cues fails with ErrEmptySession and writes nothing.
func (s *Session) Merge() (Result, error) {
	if len(s.times) == 0 {
		return Result{}, ErrEmptySession
	}

	keys := make([]int64, 0, len(s.times))
	for t := range s.times {
		keys = append(keys, t)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	nl, err := encoding.Newline(s.outputEncoding)
	if err != nil {
		return Result{}, err
	}

	res := Result{Path: s.OutputPath(), Cues: len(keys)}
	for _, src := range s.sources {
		res.Skipped += src.Skipped
	}

	var buf bytes.Buffer
	buf.Write(encoding.BOM(s.outputEncoding))

	for i, t := range keys {
		timecode, text := s.blockAt(t)
		data, err := encoding.Encode(serialize(i, timecode, text), s.outputEncoding)
		if err != nil {
			res.EncodeFailures++
			data = s.placeholder(i, timecode)
		}
		buf.Write(data)
	}

	// drop the final line break so the file does not end in a blank
	// cue; for multi-byte encodings this removes the whole unit,
	// null padding included
	out := bytes.TrimSuffix(buf.Bytes(), nl)

	if err := os.MkdirAll(s.outputPath, 0755); err != nil {
		return Result{}, fmt.Errorf("creating output directory: %w", err)
	}
	if err := os.WriteFile(res.Path, out, 0644); err != nil {
		return Result{}, fmt.Errorf("writing %s: %w", res.Path, err)
	}
	return res, nil
}

// blockAt joins every source's contribution at one start time, in add
// order, under the first contributor's timecode line.
func (s *Session) blockAt(t int64) (timecode, text string) {
	var parts []string
	for _, src := range s.sources {
		if e, ok := src.entries[t]; ok {
			if timecode == "" {
				timecode = e.timecode
			}
			parts = append(parts, e.text)
		}
	}
	return timecode, strings.Join(parts, "\n")
}

// serialize renders merged block i (zero-based) as text: sequence
// number, timecode line, body, trailing line break. Blocks after the
// first carry the blank-line separator as a leading line break.
func serialize(i int, timecode, text string) string {
	block := strconv.Itoa(i+1) + "\n" + timecode + "\n" + text + "\n"
	if i > 0 {
		block = "\n" + block
	}
	return block
}

// placeholder stands in for a block the output encoding rejected. The
// sequence number and timecode line are ASCII and survive any
// supported encoding; if the encoding rejects even those, the raw
// bytes go out so the stream stays aligned.
func (s *Session) placeholder(i int, timecode string) []byte {
	block := serialize(i, timecode, placeholderText)
	data, err := encoding.Encode(block, s.outputEncoding)
	if err != nil {
		return []byte(block)
	}
	return data
}
