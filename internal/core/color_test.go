package core

import "testing"

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
		ok   bool
	}{
		{"#5c94fc", ColorSky, true},
		{"#9494ff", ColorLavender, true},
		{"#000000", ColorBlack, true},
		{"ffffff", ColorBrightWhite, true},
		{"#fff", ColorDefault, false},
		{"#zzzzzz", ColorDefault, false},
	}

	for _, tc := range tests {
		got, ok := ParseHexColor(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ParseHexColor(%q) = %v, %v; expected %v, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestColorRGB(t *testing.T) {
	r, g, b := ColorBlack.RGB()
	if r != 0 || g != 0 || b != 0 {
		t.Errorf("ColorBlack.RGB() = %d,%d,%d", r, g, b)
	}
	r, g, b = Color(200).RGB()
	dr, dg, db := ColorDefault.RGB()
	if r != dr || g != dg || b != db {
		t.Error("unknown colors should fall back to the default")
	}
}

func TestParseHexRGB(t *testing.T) {
	r, g, b, ok := ParseHexRGB("#5c94fc")
	if !ok || r != 0x5c || g != 0x94 || b != 0xfc {
		t.Errorf("ParseHexRGB = %x,%x,%x,%v", r, g, b, ok)
	}
	if _, _, _, ok := ParseHexRGB("5c94f"); ok {
		t.Error("short input should fail")
	}
}
