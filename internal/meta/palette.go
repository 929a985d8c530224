package meta

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// MaxPlayerColors is the size of the player color uniform array baked
// into the team color shader.
const MaxPlayerColors = 64

// ErrMalformedPalette reports an unparseable player color line.
var ErrMalformedPalette = errors.New("malformed player color palette")

// PlayerColor is one team color, with channels normalized to [0, 1].
type PlayerColor struct {
	R, G, B, A float32
}

// ParsePalette parses the player color sub-palette. Each line has the
// form "idx=r,g,b,a" with integer channels in 0..255. Indices must be
// dense starting at 0; the row count must not exceed MaxPlayerColors.
func ParsePalette(data []byte) ([]PlayerColor, error) {
	type rawColor struct {
		set        bool
		r, g, b, a int
	}
	var raw [MaxPlayerColors]rawColor

	count := 0
	lineNo := 0
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		idx, channels, err := parsePaletteLine(line)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedPalette, lineNo, err)
		}
		if idx >= MaxPlayerColors {
			return nil, fmt.Errorf("%w: line %d: index %d exceeds %d player slots",
				ErrMalformedPalette, lineNo, idx, MaxPlayerColors)
		}
		if raw[idx].set {
			return nil, fmt.Errorf("%w: line %d: duplicate index %d", ErrMalformedPalette, lineNo, idx)
		}
		raw[idx] = rawColor{true, channels[0], channels[1], channels[2], channels[3]}
		count++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPalette, err)
	}
	if count == 0 {
		return nil, fmt.Errorf("%w: no entries", ErrMalformedPalette)
	}

	colors := make([]PlayerColor, count)
	for i := 0; i < count; i++ {
		if !raw[i].set {
			return nil, fmt.Errorf("%w: missing index %d", ErrMalformedPalette, i)
		}
		colors[i] = PlayerColor{
			R: float32(raw[i].r) / 255.0,
			G: float32(raw[i].g) / 255.0,
			B: float32(raw[i].b) / 255.0,
			A: float32(raw[i].a) / 255.0,
		}
	}

	return colors, nil
}

// parsePaletteLine splits one "idx=r,g,b,a" line.
func parsePaletteLine(line string) (int, [4]int, error) {
	var channels [4]int

	eq := strings.IndexByte(line, '=')
	if eq < 0 {
		return 0, channels, fmt.Errorf("missing '='")
	}

	idx, err := strconv.Atoi(strings.TrimSpace(line[:eq]))
	if err != nil || idx < 0 {
		return 0, channels, fmt.Errorf("bad index %q", line[:eq])
	}

	parts := strings.Split(line[eq+1:], ",")
	if len(parts) != 4 {
		return 0, channels, fmt.Errorf("expected 4 channels, got %d", len(parts))
	}
	for i, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || v < 0 || v > 255 {
			return 0, channels, fmt.Errorf("bad channel value %q", part)
		}
		channels[i] = v
	}

	return idx, channels, nil
}
