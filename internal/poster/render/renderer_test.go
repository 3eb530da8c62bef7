package render

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
	"time"

	"github.com/example/schedule-studio/internal/poster"
)

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer failed: %v", err)
	}
	return r
}

func testContent() Content {
	return Content{
		Title:       "Team Standup",
		Date:        time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC),
		Description: "Weekly sync for the platform group",
		Location:    "Room 4",
		Lineup: []Lineup{
			{Role: "Host", Member: "Alice Tanaka"},
			{Role: "Notes", Member: "Ben Ortiz"},
		},
	}
}

func TestRenderDimensionsFollowAspectRatio(t *testing.T) {
	r := newTestRenderer(t)

	tests := []struct {
		ratio  poster.Ratio
		width  int
		height int
	}{
		{poster.RatioPortrait, 1080, 1440},
		{poster.RatioSquare, 1080, 1080},
		{poster.RatioWide, 1080, 540},
	}

	for _, tc := range tests {
		data := poster.DefaultData()
		data.AspectRatio = tc.ratio

		img, err := r.Render(testContent(), data)
		if err != nil {
			t.Fatalf("Render(%s) failed: %v", tc.ratio, err)
		}
		bounds := img.Bounds()
		if bounds.Dx() != tc.width || bounds.Dy() != tc.height {
			t.Fatalf("ratio %s: got %dx%d want %dx%d", tc.ratio, bounds.Dx(), bounds.Dy(), tc.width, tc.height)
		}
	}
}

func TestRenderPreservesTransparency(t *testing.T) {
	r := newTestRenderer(t)

	data := poster.DefaultData()
	data.Background.Image = ""
	data.Background.Gradient = nil
	data.Background.Overlay.Show = false

	export, err := r.ExportPNG(Content{Title: "Bare"}, data)
	if err != nil {
		t.Fatalf("ExportPNG failed: %v", err)
	}

	decoded, err := png.Decode(bytes.NewReader(export.Data))
	if err != nil {
		t.Fatalf("exported file is not a valid PNG: %v", err)
	}

	// Corner pixels sit outside any drawn content and must stay fully
	// transparent rather than defaulting to an opaque fill.
	bounds := decoded.Bounds()
	corners := []image.Point{
		{bounds.Min.X, bounds.Min.Y},
		{bounds.Max.X - 1, bounds.Min.Y},
		{bounds.Min.X, bounds.Max.Y - 1},
		{bounds.Max.X - 1, bounds.Max.Y - 1},
	}
	for _, pt := range corners {
		_, _, _, a := decoded.At(pt.X, pt.Y).RGBA()
		if a != 0 {
			t.Fatalf("corner %v is not transparent (alpha %d)", pt, a)
		}
	}
}

func TestRenderGradientFillsCanvas(t *testing.T) {
	r := newTestRenderer(t)

	data := poster.DefaultData()
	data.Background.Gradient = poster.LinearGradient{Angle: 90, Color1: "#ff0000", Color2: "#0000ff", Stop1: 0, Stop2: 100}
	data.Background.Overlay.Show = false

	img, err := r.Render(Content{}, data)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	bounds := img.Bounds()
	left := color.RGBAModel.Convert(img.At(bounds.Min.X, bounds.Dy()/2)).(color.RGBA)
	right := color.RGBAModel.Convert(img.At(bounds.Max.X-1, bounds.Dy()/2)).(color.RGBA)

	// 90deg runs left to right: red fades out, blue fades in.
	if left.R < 200 || left.B > 55 {
		t.Fatalf("left edge should be mostly red, got %+v", left)
	}
	if right.B < 200 || right.R > 55 {
		t.Fatalf("right edge should be mostly blue, got %+v", right)
	}
	if left.A != 255 || right.A != 255 {
		t.Fatal("gradient paint must be opaque")
	}
}

func TestRenderDeterministic(t *testing.T) {
	r := newTestRenderer(t)
	data := poster.DefaultData()

	first, err := r.ExportPNG(testContent(), data)
	if err != nil {
		t.Fatalf("first export failed: %v", err)
	}
	second, err := r.ExportPNG(testContent(), data)
	if err != nil {
		t.Fatalf("second export failed: %v", err)
	}
	if !bytes.Equal(first.Data, second.Data) {
		t.Fatal("identical settings must export byte-identical files")
	}
}

func TestRenderRejectsUnknownRatio(t *testing.T) {
	r := newTestRenderer(t)
	data := poster.DefaultData()
	data.AspectRatio = poster.Ratio("banner")

	if _, err := r.Render(Content{}, data); err == nil {
		t.Fatal("expected error for unknown aspect ratio")
	}
}

func pngDataURL(t *testing.T, width, height int, fill color.RGBA) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, fill)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode test image: %v", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestRenderBackgroundImageWins(t *testing.T) {
	r := newTestRenderer(t)

	data := poster.DefaultData()
	data.Background.Image = pngDataURL(t, 8, 8, color.RGBA{R: 0, G: 255, B: 0, A: 255})
	data.Background.Gradient = poster.LinearGradient{Angle: 0, Color1: "#ff0000", Color2: "#ff0000", Stop1: 0, Stop2: 100}
	data.Background.Overlay.Show = false

	img, err := r.Render(Content{}, data)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	bounds := img.Bounds()
	sample := color.RGBAModel.Convert(img.At(bounds.Min.X+2, bounds.Min.Y+2)).(color.RGBA)
	if sample.G < 200 || sample.R > 55 {
		t.Fatalf("expected image paint (green), got %+v", sample)
	}
}

func TestDecodeDataURLErrors(t *testing.T) {
	t.Run("not a data url", func(t *testing.T) {
		if _, err := DecodeDataURL("https://example.com/pic.png", DefaultMaxImageBytes); !errors.Is(err, ErrImageDecode) {
			t.Fatalf("expected ErrImageDecode, got %v", err)
		}
	})

	t.Run("unsupported media type", func(t *testing.T) {
		if _, err := DecodeDataURL("data:image/gif;base64,AAAA", DefaultMaxImageBytes); !errors.Is(err, ErrImageDecode) {
			t.Fatalf("expected ErrImageDecode, got %v", err)
		}
	})

	t.Run("oversized payload", func(t *testing.T) {
		payload := base64.StdEncoding.EncodeToString(bytes.Repeat([]byte{0xff}, 64))
		if _, err := DecodeDataURL("data:image/png;base64,"+payload, 16); !errors.Is(err, ErrImageTooLarge) {
			t.Fatalf("expected ErrImageTooLarge, got %v", err)
		}
	})

	t.Run("corrupt pixels", func(t *testing.T) {
		payload := base64.StdEncoding.EncodeToString([]byte("not an image"))
		if _, err := DecodeDataURL("data:image/png;base64,"+payload, DefaultMaxImageBytes); !errors.Is(err, ErrImageDecode) {
			t.Fatalf("expected ErrImageDecode, got %v", err)
		}
	})

	t.Run("valid png", func(t *testing.T) {
		url := pngDataURL(t, 4, 4, color.RGBA{R: 1, G: 2, B: 3, A: 255})
		img, err := DecodeDataURL(url, DefaultMaxImageBytes)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if img.Bounds().Dx() != 4 {
			t.Fatalf("unexpected decoded size %v", img.Bounds())
		}
	})
}

func TestFilename(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Team Standup", "Team-Standup-Schedule.png"},
		{"  spaced   out  ", "spaced-out-Schedule.png"},
		{"", "Poster-Schedule.png"},
		{"   ", "Poster-Schedule.png"},
		{"one", "one-Schedule.png"},
	}
	for _, tc := range tests {
		if got := Filename(tc.title); got != tc.want {
			t.Fatalf("Filename(%q) = %q, want %q", tc.title, got, tc.want)
		}
	}
}

func TestExportSuffix(t *testing.T) {
	if !strings.HasSuffix(Filename("x"), "-Schedule.png") {
		t.Fatal("export filenames must carry the schedule suffix")
	}
}
