package encoding

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
)

var nameCleaner = strings.NewReplacer("-", "", "_", "", " ", "")

// Normalize collapses an encoding name for comparison: separators
// removed, uppercased. "utf-8", "UTF_8" and "utf 8" all become "UTF8".
func Normalize(name string) string {
	return strings.ToUpper(nameCleaner.Replace(name))
}

// byte-order marks per encoding family; the generic utf-16/utf-32
// forms are treated as little-endian
var boms = map[string][]byte{
	"UTF8":    {0xEF, 0xBB, 0xBF},
	"UTF16":   {0xFF, 0xFE},
	"UTF16LE": {0xFF, 0xFE},
	"UTF16BE": {0xFE, 0xFF},
	"UTF32":   {0xFF, 0xFE, 0x00, 0x00},
	"UTF32LE": {0xFF, 0xFE, 0x00, 0x00},
	"UTF32BE": {0x00, 0x00, 0xFE, 0xFF},
}

// BOM returns the byte-order mark for a BOM-bearing encoding family,
// or nil for encodings that take none.
func BOM(name string) []byte {
	return boms[Normalize(name)]
}

// UTFFamily lists the encodings that receive a byte-order mark on
// output. Any IANA-registered name is also accepted by Lookup.
func UTFFamily() []string {
	return []string{
		"utf-8", "utf-16", "utf-16le", "utf-16be",
		"utf-32", "utf-32le", "utf-32be",
	}
}

// Lookup resolves an encoding name. The UTF family is built without a
// BOM policy so BOM placement stays under the caller's control; other
// names go through the WHATWG label set and then the IANA registry, so
// legacy code pages like cp1256 or latin1 resolve too.
func Lookup(name string) (encoding.Encoding, error) {
	switch Normalize(name) {
	case "UTF8":
		return unicode.UTF8, nil
	case "UTF16", "UTF16LE":
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM), nil
	case "UTF16BE":
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM), nil
	case "UTF32", "UTF32LE":
		return utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM), nil
	case "UTF32BE":
		return utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM), nil
	}
	if enc, err := htmlindex.Get(name); err == nil && enc != nil {
		return enc, nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("unsupported encoding %q", name)
	}
	return enc, nil
}

// Decode converts raw file bytes to a string under the declared
// encoding. A leading byte-order mark of the same family is dropped.
// Bytes that are not valid under the encoding are an error, not a
// silent substitution.
func Decode(data []byte, name string) (string, error) {
	enc, err := Lookup(name)
	if err != nil {
		return "", err
	}
	if bom := BOM(name); bom != nil {
		data = bytes.TrimPrefix(data, bom)
	}
	if Normalize(name) == "UTF8" {
		if !utf8.Valid(data) {
			return "", fmt.Errorf("byte sequence is not valid UTF-8")
		}
		return string(data), nil
	}
	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", err
	}
	text := strings.TrimPrefix(string(out), "\uFEFF")
	// x/text decoders substitute U+FFFD for undecodable input; a
	// genuine U+FFFD in the input re-encodes to the original bytes,
	// a substituted one does not
	if strings.ContainsRune(text, utf8.RuneError) && !roundTrips(enc, out, data) {
		return "", fmt.Errorf("byte sequence is not valid %s", name)
	}
	return text, nil
}

func roundTrips(enc encoding.Encoding, decoded, original []byte) bool {
	reencoded, err := enc.NewEncoder().Bytes(decoded)
	return err == nil && bytes.Equal(reencoded, original)
}

// Encode converts text to bytes under the given encoding. Runes the
// target cannot represent are reported as an error.
func Encode(text, name string) ([]byte, error) {
	enc, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return enc.NewEncoder().Bytes([]byte(text))
}

// Newline returns the encoded representation of "\n"; multi-byte
// encodings pad the line break with null bytes that the final output
// trim has to account for.
func Newline(name string) ([]byte, error) {
	return Encode("\n", name)
}
