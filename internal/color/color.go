package color

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Default is the fallback for unrecognized color tokens.
const Default = "#FFFFFF"

// named colors recognized by Normalize
var named = map[string]string{
	"RED":     "#FF003B",
	"BLUE":    "#00ADFF",
	"GREEN":   "#B4FF00",
	"WHITE":   "#FFFFFF",
	"YELLOW":  "#FFEB00",
	"CYAN":    "#00FFFF",
	"MAGENTA": "#FF00FF",
	"ORANGE":  "#FFA500",
	"PURPLE":  "#800080",
	"PINK":    "#FFC0CB",
}

var (
	prefixedHexRe = regexp.MustCompile(`^#[0-9A-F]{6}$`)
	bareHexRe     = regexp.MustCompile(`^[0-9A-F]{6}$`)
	rgbRe         = regexp.MustCompile(`^\((\d+),\s*(\d+),\s*(\d+)\)$`)
)

// Normalize maps a color token to a canonical #RRGGBB hex string.
// Accepted tokens: a named color, hex with or without the # prefix,
// or an RGB triple written as "(r,g,b)". Anything else falls back to
// Default rather than failing. An empty token stays empty, meaning no
// color styling at all.
func Normalize(token string) string {
	token = strings.ToUpper(strings.TrimSpace(token))
	if token == "" {
		return ""
	}
	if hex, ok := named[token]; ok {
		return hex
	}
	if prefixedHexRe.MatchString(token) {
		return token
	}
	if bareHexRe.MatchString(token) {
		return "#" + token
	}
	if m := rgbRe.FindStringSubmatch(token); m != nil {
		r, _ := strconv.Atoi(m[1])
		g, _ := strconv.Atoi(m[2])
		b, _ := strconv.Atoi(m[3])
		if r <= 255 && g <= 255 && b <= 255 {
			return fmt.Sprintf("#%02X%02X%02X", r, g, b)
		}
	}
	return Default
}

// Names returns the recognized color names in sorted order.
func Names() []string {
	names := make([]string, 0, len(named))
	for name := range named {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Hex returns the hex value of a named color, or "" if the name is
// unknown.
func Hex(name string) string {
	return named[strings.ToUpper(strings.TrimSpace(name))]
}
