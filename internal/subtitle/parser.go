package subtitle

import (
	"regexp"
	"strconv"
	"strings"
)

// Cue is one timed caption entry parsed from a source file.
type Cue struct {
	Timecode string // original "start --> end" line, unmodified
	Start    int64  // start time in microseconds since 00:00:00
	Text     string
}

var (
	// cue blocks are separated by a blank line, in either line
	// terminator convention, with a stray bare \r tolerated
	blockSep = regexp.MustCompile(`\r\n\r\n?|\n\n`)

	timecodeRe = regexp.MustCompile(
		`^(\d{1,2}):(\d{1,2}):(\d{1,2}),(\d{1,5})\s*-->\s*\d{1,2}:\d{1,2}:\d{1,2},\d{1,5}\s*$`,
	)
)

// Parse splits decoded caption text into cues. Malformed blocks are
// skipped rather than failing the file; the second return value is
// the number of non-blank blocks discarded.
func Parse(text string) ([]Cue, int) {
	var cues []Cue
	skipped := 0
	for _, block := range blockSep.Split(text, -1) {
		cue, ok := parseBlock(block)
		if ok {
			cues = append(cues, cue)
		} else if strings.TrimSpace(block) != "" {
			skipped++
		}
	}
	return cues, skipped
}

// parseBlock extracts one cue from a block of the form: sequence
// number line, timecode line, one or more text lines. The sequence
// number is ignored; numbering is reassigned on output.
func parseBlock(block string) (Cue, bool) {
	if strings.HasPrefix(block, "\r\n") {
		block = block[2:]
	} else if strings.HasPrefix(block, "\n") {
		block = block[1:]
	}
	if strings.TrimSpace(block) == "" {
		return Cue{}, false
	}

	lines := strings.Split(block, "\n")
	for i := range lines {
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}
	if len(lines) < 2 {
		return Cue{}, false
	}

	timecode := lines[1]
	start, ok := parseStart(timecode)
	if !ok {
		return Cue{}, false
	}

	text := strings.TrimRight(strings.Join(lines[2:], "\n"), " \t\r\n")
	if text == "" {
		return Cue{}, false
	}

	return Cue{Timecode: timecode, Start: start, Text: text}, true
}

// parseStart converts the start half of a timecode line to an integer
// microsecond key. Integer keys collide exactly when two sources put a
// cue at the same displayed instant.
func parseStart(line string) (int64, bool) {
	m := timecodeRe.FindStringSubmatch(line)
	if m == nil {
		return 0, false
	}
	h, _ := strconv.Atoi(m[1])
	min, _ := strconv.Atoi(m[2])
	sec, _ := strconv.Atoi(m[3])
	if h > 23 || min > 59 || sec > 59 {
		return 0, false
	}
	// the fractional field is left-justified: ",5" means half a second
	frac, _ := strconv.Atoi(m[4])
	micros := int64(frac)
	for i := len(m[4]); i < 6; i++ {
		micros *= 10
	}
	return (int64(h)*3600+int64(min)*60+int64(sec))*1e6 + micros, true
}
