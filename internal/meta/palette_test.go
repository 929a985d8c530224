package meta

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestParsePalette(t *testing.T) {
	pal := `# exported sub-palette
0=255,0,0,255
1=0,0,255,255
2=10,20,30,40

3=0,255,0,255
4=255,255,0,255
`

	colors, err := ParsePalette([]byte(pal))
	if err != nil {
		t.Fatalf("failed to parse palette: %v", err)
	}
	if len(colors) != 5 {
		t.Fatalf("expected 5 colors, got %d", len(colors))
	}

	// Entry 2 is the literal row 2=10,20,30,40 as channel fractions
	want := PlayerColor{10.0 / 255.0, 20.0 / 255.0, 30.0 / 255.0, 40.0 / 255.0}
	if colors[2] != want {
		t.Errorf("expected color %v at index 2, got %v", want, colors[2])
	}

	if colors[0].R != 1 || colors[0].G != 0 {
		t.Errorf("unexpected color at index 0: %v", colors[0])
	}
}

func TestParsePaletteUnordered(t *testing.T) {
	pal := "1=0,0,255,255\n0=255,0,0,255\n"

	colors, err := ParsePalette([]byte(pal))
	if err != nil {
		t.Fatalf("failed to parse palette: %v", err)
	}
	if len(colors) != 2 {
		t.Fatalf("expected 2 colors, got %d", len(colors))
	}
	if colors[0].R != 1 {
		t.Errorf("expected red at index 0, got %v", colors[0])
	}
	if colors[1].B != 1 {
		t.Errorf("expected blue at index 1, got %v", colors[1])
	}
}

func TestParsePaletteMalformed(t *testing.T) {
	tests := []struct {
		name string
		pal  string
	}{
		{name: "empty", pal: ""},
		{name: "missing equals", pal: "0:255,0,0,255\n"},
		{name: "too few channels", pal: "0=255,0,0\n"},
		{name: "too many channels", pal: "0=255,0,0,255,0\n"},
		{name: "channel out of range", pal: "0=256,0,0,255\n"},
		{name: "negative channel", pal: "0=-1,0,0,255\n"},
		{name: "non-numeric index", pal: "x=255,0,0,255\n"},
		{name: "duplicate index", pal: "0=1,2,3,4\n0=5,6,7,8\n"},
		{name: "hole in indices", pal: "0=1,2,3,4\n2=5,6,7,8\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePalette([]byte(tt.pal))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, ErrMalformedPalette) {
				t.Errorf("expected ErrMalformedPalette, got %v", err)
			}
		})
	}
}

func TestParsePaletteTooManyEntries(t *testing.T) {
	var b strings.Builder
	for i := 0; i <= MaxPlayerColors; i++ {
		fmt.Fprintf(&b, "%d=1,2,3,4\n", i)
	}

	_, err := ParsePalette([]byte(b.String()))
	if err == nil {
		t.Fatal("expected error for palette exceeding player slots, got nil")
	}
	if !errors.Is(err, ErrMalformedPalette) {
		t.Errorf("expected ErrMalformedPalette, got %v", err)
	}
}

func TestParsePaletteAtCapacity(t *testing.T) {
	var b strings.Builder
	for i := 0; i < MaxPlayerColors; i++ {
		fmt.Fprintf(&b, "%d=1,2,3,4\n", i)
	}

	colors, err := ParsePalette([]byte(b.String()))
	if err != nil {
		t.Fatalf("failed to parse full palette: %v", err)
	}
	if len(colors) != MaxPlayerColors {
		t.Errorf("expected %d colors, got %d", MaxPlayerColors, len(colors))
	}
}
