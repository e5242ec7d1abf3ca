package utils

import (
	"image/color"
	"testing"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{"#FF5D15", color.NRGBA{R: 0xFF, G: 0x5D, B: 0x15, A: 0xFF}, false},
		{"0000ff", color.NRGBA{B: 0xFF, A: 0xFF}, false},
		{"#80808080", color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0x80}, false},
		{" #FFFFFF ", color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}, false},
		{"#FFF", color.NRGBA{}, true},
		{"#GGGGGG", color.NRGBA{}, true},
	}

	for _, tt := range tests {
		got, err := ParseHexColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseHexColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHexColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFormatHexColor(t *testing.T) {
	c := color.NRGBA{R: 0x12, G: 0xAB, B: 0x00, A: 0xFF}
	if got := FormatHexColor(c); got != "#12AB00FF" {
		t.Errorf("FormatHexColor = %q, want #12AB00FF", got)
	}
	back, err := ParseHexColor(FormatHexColor(c))
	if err != nil || back != c {
		t.Errorf("round trip = %v, %v", back, err)
	}
}
