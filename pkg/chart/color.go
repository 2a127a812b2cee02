package chart

import (
	"fmt"
	"strconv"
	"strings"
)

// RGBA is an 8-bit-per-channel color.
type RGBA struct {
	R, G, B, A uint8
}

// greyFallback is returned when a gradient has fewer than two stops.
var greyFallback = RGBA{128, 128, 128, 255}

// Hex returns the #rrggbb form, ignoring alpha.
func (c RGBA) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Opacity returns the alpha channel as a 0..1 fraction.
func (c RGBA) Opacity() float64 {
	return float64(c.A) / 255
}

// Gradient maps a value in [min,max] onto a multi-stop linear color
// gradient. Alpha interpolates along with the channels. Values outside the
// range clamp to the end stops; an equal min and max lands mid-gradient.
func Gradient(value, min, max float64, stops []RGBA) RGBA {
	if len(stops) < 2 {
		return greyFallback
	}

	var t float64
	if max == min {
		t = 0.5
	} else {
		t = (value - min) / (max - min)
	}
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}

	segments := len(stops) - 1
	pos := t * float64(segments)
	idx := int(pos)
	local := pos - float64(idx)
	if idx >= segments {
		idx = segments - 1
		local = 1
	}

	a := stops[idx]
	b := stops[idx+1]
	return RGBA{
		R: lerpChannel(a.R, b.R, local),
		G: lerpChannel(a.G, b.G, local),
		B: lerpChannel(a.B, b.B, local),
		A: lerpChannel(a.A, b.A, local),
	}
}

func lerpChannel(a, b uint8, t float64) uint8 {
	return uint8(int(float64(a) + (float64(b)-float64(a))*t))
}

// ParseRGBA parses a "r,g,b" or "r,g,b,a" tuple with channels in 0..255.
// A three-channel tuple gets full opacity.
func ParseRGBA(s string) (RGBA, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return RGBA{}, fmt.Errorf("color %q: want 3 or 4 channels, got %d", s, len(parts))
	}

	channels := make([]uint8, 4)
	channels[3] = 255
	for i, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return RGBA{}, fmt.Errorf("color %q: channel %d: %w", s, i, err)
		}
		if v < 0 || v > 255 {
			return RGBA{}, fmt.Errorf("color %q: channel %d out of range 0..255", s, i)
		}
		channels[i] = uint8(v)
	}

	return RGBA{R: channels[0], G: channels[1], B: channels[2], A: channels[3]}, nil
}

// ParseStops parses a list of color tuples into gradient stops.
func ParseStops(tuples []string) ([]RGBA, error) {
	stops := make([]RGBA, 0, len(tuples))
	for _, s := range tuples {
		c, err := ParseRGBA(s)
		if err != nil {
			return nil, err
		}
		stops = append(stops, c)
	}
	return stops, nil
}
