// Package render composes a schedule poster into a raster image. It is the
// server-side counterpart of the editor's composition surface: background
// paint, overlay tint, and content sections are layered bottom to top onto
// an alpha-preserving canvas, then encoded as PNG.
package render

import (
	"errors"
	"fmt"
	"image"
	"math"
	"time"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/example/schedule-studio/internal/poster"
)

// Supersample is the fixed resolution multiplier over the preview's CSS
// pixel size. Export resolution therefore never depends on the on-screen
// zoom level, which is a pure display transform.
const Supersample = 3

// baseWidth is the preview surface width in CSS pixels; the height follows
// from the selected aspect ratio.
const baseWidth = 360

// DefaultMaxImageBytes caps user supplied background images.
const DefaultMaxImageBytes = 10 << 20

var (
	// ErrImageTooLarge is returned when a background image exceeds the cap.
	ErrImageTooLarge = errors.New("render: background image exceeds size limit")
	// ErrImageDecode is returned when a background image cannot be read back
	// as pixels.
	ErrImageDecode = errors.New("render: background image could not be decoded")
)

// Lineup is one visible assignee row on the poster.
type Lineup struct {
	Role   string
	Member string
}

// Content carries the schedule facts rendered onto the poster. Which
// sections actually appear is decided by the text settings visibility
// flags, not by the caller.
type Content struct {
	Title       string
	Date        time.Time
	Description string
	Location    string
	Lineup      []Lineup
}

// Renderer rasterises poster settings plus schedule content into images.
type Renderer struct {
	regular       *truetype.Font
	bold          *truetype.Font
	maxImageBytes int64
}

// NewRenderer parses the embedded fonts and returns a ready renderer.
func NewRenderer() (*Renderer, error) {
	regular, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("render: parse regular font: %w", err)
	}
	bold, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("render: parse bold font: %w", err)
	}
	return &Renderer{regular: regular, bold: bold, maxImageBytes: DefaultMaxImageBytes}, nil
}

// SetMaxImageBytes overrides the background image size cap.
func (r *Renderer) SetMaxImageBytes(limit int64) {
	if r == nil || limit <= 0 {
		return
	}
	r.maxImageBytes = limit
}

// MaxImageBytes reports the active background image size cap.
func (r *Renderer) MaxImageBytes() int64 {
	if r == nil || r.maxImageBytes <= 0 {
		return DefaultMaxImageBytes
	}
	return r.maxImageBytes
}

// Render composes the poster at the supersampled target size. When the
// settings produce no background paint the pixels outside drawn content
// stay fully transparent.
func (r *Renderer) Render(content Content, data poster.Data) (image.Image, error) {
	if r == nil {
		return nil, fmt.Errorf("render: Renderer is nil")
	}

	spec, err := data.AspectRatio.Spec()
	if err != nil {
		return nil, err
	}

	width := baseWidth * Supersample
	height := int(math.Round(float64(width) * float64(spec.Height) / float64(spec.Width)))

	dc := gg.NewContext(width, height)

	if err := r.paintBackground(dc, data.Background, width, height); err != nil {
		return nil, err
	}
	paintOverlay(dc, data.Background.Overlay, width, height)
	if err := r.paintContent(dc, content, data.Text, width, height); err != nil {
		return nil, err
	}

	return dc.Image(), nil
}

func (r *Renderer) paintBackground(dc *gg.Context, background poster.Background, width, height int) error {
	var base image.Image
	switch {
	case background.Image != "":
		decoded, err := DecodeDataURL(background.Image, r.MaxImageBytes())
		if err != nil {
			return err
		}
		base = coverResize(decoded, width, height)
	case background.Gradient != nil:
		base = paintGradient(background.Gradient, width, height)
	default:
		// No paint: the canvas stays transparent.
		return nil
	}

	dc.DrawImage(applyFilters(base, background.Filters), 0, 0)
	return nil
}

func paintOverlay(dc *gg.Context, overlay poster.Overlay, width, height int) {
	opacity := float64(overlay.EffectiveOpacity()) / 100
	if opacity <= 0 {
		return
	}
	red, green, blue, ok := parseHexColor(overlay.Color)
	if !ok {
		return
	}
	dc.SetRGBA(red, green, blue, opacity)
	dc.DrawRectangle(0, 0, float64(width), float64(height))
	dc.Fill()
}

func (r *Renderer) face(weight int, sizePx float64) font.Face {
	ttf := r.regular
	if weight >= 600 {
		ttf = r.bold
	}
	return truetype.NewFace(ttf, &truetype.Options{Size: sizePx, DPI: 72})
}
