package subtitle

import "regexp"

// Style holds the rendering options applied to one source's cues.
type Style struct {
	Color string // normalized #RRGGBB, empty for none
	Size  string // font size token, taken verbatim, empty for none
	Top   bool   // position at the top of the screen
}

var (
	fontTagRe = regexp.MustCompile(`(?s)<font[^>]*>(.*?)</font>`)
	alignRe   = regexp.MustCompile(`\{\\an\d\}`)
)

const topTag = `{\an8}`

// ApplyStyle wraps cue text with the source's styling markup. Existing
// font tags are stripped first so already-styled input is not wrapped
// twice. The wrap order is fixed: size, then color, then position;
// each later step operates on the cumulative text.
func ApplyStyle(text string, style Style) string {
	for {
		stripped := fontTagRe.ReplaceAllString(text, "$1")
		if stripped == text {
			break
		}
		text = stripped
	}
	if style.Size != "" {
		text = `<font face="Gandhi Sans" size="` + style.Size + `">` + text + `</font>`
	}
	if style.Color != "" {
		text = `<font color="` + style.Color + `">` + text + `</font>`
	}
	if style.Top {
		text = topTag + alignRe.ReplaceAllString(text, "")
	}
	return text
}
