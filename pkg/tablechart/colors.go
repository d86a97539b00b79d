package tablechart

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Default ramp endpoints for generated series colors.
const (
	RampStart = "#1492FB"
	RampEnd   = "#27662A"
)

// ColorRamp returns n hex colors interpolated linearly in HSL from start to end.
// The first entry is start and the last is end, both lower-cased.
func ColorRamp(start, end string, n int) ([]string, error) {
	if n <= 0 {
		return nil, nil
	}
	from, err := colorful.Hex(start)
	if err != nil {
		return nil, fmt.Errorf("ramp start %q: %w", start, err)
	}
	to, err := colorful.Hex(end)
	if err != nil {
		return nil, fmt.Errorf("ramp end %q: %w", end, err)
	}

	colors := make([]string, n)
	colors[0] = strings.ToLower(start)
	if n == 1 {
		return colors, nil
	}
	colors[n-1] = strings.ToLower(end)

	h1, s1, l1 := from.Hsl()
	h2, s2, l2 := to.Hsl()
	for i := 1; i < n-1; i++ {
		t := float64(i) / float64(n-1)
		c := colorful.Hsl(lerp(h1, h2, t), lerp(s1, s2, t), lerp(l1, l2, t))
		colors[i] = c.Clamped().Hex()
	}
	return colors, nil
}

// DefaultColors returns n colors on the default ramp.
func DefaultColors(n int) []string {
	colors, _ := ColorRamp(RampStart, RampEnd, n)
	return colors
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
