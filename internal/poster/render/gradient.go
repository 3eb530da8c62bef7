package render

import (
	"image"
	"image/color"
	"math"

	"github.com/example/schedule-studio/internal/poster"
)

// paintGradient rasterises a procedural gradient pixel by pixel, matching
// the CSS formulas the style deriver emits: linear angles are measured
// clockwise from north, radial ramps run circle-at-center to the farthest
// corner, conic sweeps start at the from angle.
func paintGradient(gradient poster.Gradient, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	switch g := gradient.(type) {
	case poster.LinearGradient:
		paintLinear(img, g, width, height)
	case poster.RadialGradient:
		paintRadial(img, g, width, height)
	case poster.ConicGradient:
		paintConic(img, g, width, height)
	}

	return img
}

func paintLinear(img *image.RGBA, g poster.LinearGradient, width, height int) {
	c1, ok1 := parseHexRGBA(g.Color1)
	c2, ok2 := parseHexRGBA(g.Color2)
	if !ok1 || !ok2 {
		return
	}

	theta := float64(g.Angle) * math.Pi / 180
	dx, dy := math.Sin(theta), -math.Cos(theta)

	// Length of the gradient line across the box for this angle.
	lineLen := math.Abs(float64(width)*dx) + math.Abs(float64(height)*dy)
	if lineLen == 0 {
		lineLen = 1
	}
	cx, cy := float64(width)/2, float64(height)/2

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			proj := (float64(x)-cx)*dx + (float64(y)-cy)*dy
			t := proj/lineLen + 0.5
			img.SetRGBA(x, y, lerpColor(c1, c2, applyStops(t, g.Stop1, g.Stop2)))
		}
	}
}

func paintRadial(img *image.RGBA, g poster.RadialGradient, width, height int) {
	c1, ok1 := parseHexRGBA(g.Color1)
	c2, ok2 := parseHexRGBA(g.Color2)
	if !ok1 || !ok2 {
		return
	}

	cx, cy := float64(width)/2, float64(height)/2
	radius := math.Hypot(cx, cy)
	if radius == 0 {
		radius = 1
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			t := math.Hypot(float64(x)-cx, float64(y)-cy) / radius
			img.SetRGBA(x, y, lerpColor(c1, c2, applyStops(t, g.Stop1, g.Stop2)))
		}
	}
}

func paintConic(img *image.RGBA, g poster.ConicGradient, width, height int) {
	c1, ok1 := parseHexRGBA(g.Color1)
	c2, ok2 := parseHexRGBA(g.Color2)
	if !ok1 || !ok2 {
		return
	}

	cx, cy := float64(width)/2, float64(height)/2
	from := float64(g.Angle) * math.Pi / 180

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			// Angle measured clockwise from north, as in CSS.
			phi := math.Atan2(float64(x)-cx, cy-float64(y))
			t := phi - from
			for t < 0 {
				t += 2 * math.Pi
			}
			img.SetRGBA(x, y, lerpColor(c1, c2, t/(2*math.Pi)))
		}
	}
}

// applyStops remaps a raw 0..1 position onto the two stop positions given
// as percentages.
func applyStops(t float64, stop1, stop2 int) float64 {
	s1, s2 := float64(stop1)/100, float64(stop2)/100
	if s2 <= s1 {
		if t < s1 {
			return 0
		}
		return 1
	}
	return clamp01((t - s1) / (s2 - s1))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func lerpColor(c1, c2 color.RGBA, t float64) color.RGBA {
	t = clamp01(t)
	return color.RGBA{
		R: uint8(math.Round(float64(c1.R) + (float64(c2.R)-float64(c1.R))*t)),
		G: uint8(math.Round(float64(c1.G) + (float64(c2.G)-float64(c1.G))*t)),
		B: uint8(math.Round(float64(c1.B) + (float64(c2.B)-float64(c1.B))*t)),
		A: 255,
	}
}

// parseHexRGBA reads #rrggbb or #rgb into an opaque RGBA color.
func parseHexRGBA(value string) (color.RGBA, bool) {
	r, g, b, ok := parseHexColor(value)
	if !ok {
		return color.RGBA{}, false
	}
	return color.RGBA{R: uint8(r * 255), G: uint8(g * 255), B: uint8(b * 255), A: 255}, true
}

// parseHexColor reads #rrggbb or #rgb into normalised 0..1 channels.
func parseHexColor(value string) (r, g, b float64, ok bool) {
	if len(value) == 0 || value[0] != '#' {
		return 0, 0, 0, false
	}
	hex := value[1:]

	parse := func(s string) (int, bool) {
		n := 0
		for _, c := range s {
			n *= 16
			switch {
			case c >= '0' && c <= '9':
				n += int(c - '0')
			case c >= 'a' && c <= 'f':
				n += int(c-'a') + 10
			case c >= 'A' && c <= 'F':
				n += int(c-'A') + 10
			default:
				return 0, false
			}
		}
		return n, true
	}

	switch len(hex) {
	case 6:
		rv, ok1 := parse(hex[0:2])
		gv, ok2 := parse(hex[2:4])
		bv, ok3 := parse(hex[4:6])
		if !ok1 || !ok2 || !ok3 {
			return 0, 0, 0, false
		}
		return float64(rv) / 255, float64(gv) / 255, float64(bv) / 255, true
	case 3:
		rv, ok1 := parse(hex[0:1])
		gv, ok2 := parse(hex[1:2])
		bv, ok3 := parse(hex[2:3])
		if !ok1 || !ok2 || !ok3 {
			return 0, 0, 0, false
		}
		return float64(rv*17) / 255, float64(gv*17) / 255, float64(bv*17) / 255, true
	default:
		return 0, 0, 0, false
	}
}
