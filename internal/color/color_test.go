package color

import (
	"fmt"
	"strconv"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		token string
		want  string
	}{
		// named colors, any case, surrounding whitespace
		{"red", "#FF003B"},
		{"RED", "#FF003B"},
		{"Yellow", "#FFEB00"},
		{" cyan ", "#00FFFF"},
		{"pink", "#FFC0CB"},

		// hex with prefix
		{"#FF003B", "#FF003B"},
		{"#ff003b", "#FF003B"},

		// hex without prefix
		{"B4FF00", "#B4FF00"},
		{"b4ff00", "#B4FF00"},

		// RGB triples
		{"(255,0,59)", "#FF003B"},
		{"(0, 173, 255)", "#00ADFF"},
		{"(0,0,0)", "#000000"},
		{"(255,255,255)", "#FFFFFF"},

		// unrecognized tokens fall back to white
		{"(256,0,0)", Default},
		{"(0,0,999)", Default},
		{"#FFF", Default},
		{"FFF", Default},
		{"notacolor", Default},
		{"(1,2)", Default},
		{"rgb(1,2,3)", Default},

		// empty means no styling
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got := Normalize(tt.token)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.token, got, tt.want)
			}
		})
	}
}

func TestNormalizeRGBRoundTrip(t *testing.T) {
	values := []int{0, 1, 59, 127, 128, 173, 254, 255}
	for _, r := range values {
		for _, g := range values {
			for _, b := range values {
				token := fmt.Sprintf("(%d,%d,%d)", r, g, b)
				hex := Normalize(token)
				if len(hex) != 7 || hex[0] != '#' {
					t.Fatalf("Normalize(%q) = %q, not #RRGGBB", token, hex)
				}
				pr, _ := strconv.ParseUint(hex[1:3], 16, 8)
				pg, _ := strconv.ParseUint(hex[3:5], 16, 8)
				pb, _ := strconv.ParseUint(hex[5:7], 16, 8)
				if int(pr) != r || int(pg) != g || int(pb) != b {
					t.Errorf(
						"Normalize(%q) = %q, parses back to (%d,%d,%d)",
						token, hex, pr, pg, pb,
					)
				}
			}
		}
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if len(names) != 10 {
		t.Fatalf("expected 10 named colors, got %d", len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("names not sorted: %q before %q", names[i-1], names[i])
		}
	}
	for _, name := range names {
		if Hex(name) == "" {
			t.Errorf("Hex(%q) returned empty", name)
		}
	}
	if Hex("nosuchcolor") != "" {
		t.Errorf("Hex of unknown name should be empty")
	}
}
