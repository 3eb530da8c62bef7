package poster

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestGradientWireRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		gradient Gradient
		wantType string
	}{
		{name: "linear", gradient: LinearGradient{Angle: 135, Color1: "#0f172a", Color2: "#1e293b", Stop1: 0, Stop2: 100}, wantType: "linear-gradient"},
		{name: "radial", gradient: RadialGradient{Color1: "#ff0000", Color2: "#0000ff", Stop1: 10, Stop2: 90}, wantType: "radial-gradient"},
		{name: "conic", gradient: ConicGradient{Angle: 270, Color1: "#ffffff", Color2: "#000000"}, wantType: "conic-gradient"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			data, err := MarshalGradient(tc.gradient)
			if err != nil {
				t.Fatalf("marshal failed: %v", err)
			}
			if !strings.Contains(string(data), `"type":"`+tc.wantType+`"`) {
				t.Fatalf("wire form %s missing type tag %q", data, tc.wantType)
			}

			restored, err := UnmarshalGradient(data)
			if err != nil {
				t.Fatalf("unmarshal failed: %v", err)
			}
			if restored != tc.gradient {
				t.Fatalf("round trip mismatch: got %#v want %#v", restored, tc.gradient)
			}
		})
	}
}

func TestUnmarshalGradientRejectsUnknownType(t *testing.T) {
	if _, err := UnmarshalGradient([]byte(`{"type":"repeating-linear-gradient"}`)); err == nil {
		t.Fatal("expected error for unknown gradient type")
	}
}

func TestUnmarshalGradientNil(t *testing.T) {
	restored, err := UnmarshalGradient([]byte("null"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if restored != nil {
		t.Fatalf("expected nil gradient, got %#v", restored)
	}
}

func TestDataJSONRoundTrip(t *testing.T) {
	data := DefaultData()
	data.Background.Gradient = ConicGradient{Angle: 90, Color1: "#111111", Color2: "#eeeeee"}
	data.AspectRatio = RatioStory

	encoded, err := json.Marshal(data)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var restored Data
	if err := json.Unmarshal(encoded, &restored); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if restored.AspectRatio != RatioStory {
		t.Fatalf("aspect ratio lost: got %q", restored.AspectRatio)
	}
	if restored.Background.Gradient != data.Background.Gradient {
		t.Fatalf("gradient lost: got %#v", restored.Background.Gradient)
	}
	if restored.Text != data.Text {
		t.Fatalf("text settings lost: got %#v", restored.Text)
	}
}

func TestRatioSpecs(t *testing.T) {
	tests := []struct {
		ratio  Ratio
		width  int
		height int
	}{
		{RatioPortrait, 900, 1200},
		{RatioStory, 1080, 1920},
		{RatioSquare, 1080, 1080},
		{RatioLandscape, 1920, 1080},
		{RatioWide, 1200, 600},
		{RatioPinterest, 1000, 1500},
	}

	for _, tc := range tests {
		spec, err := tc.ratio.Spec()
		if err != nil {
			t.Fatalf("Spec(%s) returned error: %v", tc.ratio, err)
		}
		if spec.Width != tc.width || spec.Height != tc.height {
			t.Fatalf("ratio %s: got %dx%d want %dx%d", tc.ratio, spec.Width, spec.Height, tc.width, tc.height)
		}
	}

	if _, err := Ratio("banner").Spec(); err == nil {
		t.Fatal("expected error for unknown ratio")
	}

	if got := len(Ratios()); got != 6 {
		t.Fatalf("expected 6 ratio presets, got %d", got)
	}
}

func TestClampZoom(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{25, 25},
		{10, 25},
		{100, 100},
		{113, 125},
		{112, 100},
		{200, 200},
		{500, 200},
	}
	for _, tc := range tests {
		if got := ClampZoom(tc.in); got != tc.want {
			t.Fatalf("ClampZoom(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestGradientPresetsByCategory(t *testing.T) {
	all := GradientPresetsByCategory(CategoryAll)
	if len(all) != len(GradientPresets) {
		t.Fatalf("all category should return every preset, got %d of %d", len(all), len(GradientPresets))
	}

	dark := GradientPresetsByCategory(CategoryDark)
	if len(dark) == 0 {
		t.Fatal("expected dark presets")
	}
	for _, preset := range dark {
		if preset.Category != CategoryDark {
			t.Fatalf("preset %q leaked into dark category", preset.Name)
		}
	}
}

func TestLayoutPresetApply(t *testing.T) {
	settings := DefaultSettings()
	var preset LayoutPreset
	for _, p := range LayoutPresets {
		if p.ID == "headline" {
			preset = p
		}
	}
	if preset.ID == "" {
		t.Fatal("headline preset missing")
	}

	text, overlay := preset.Apply(settings.Text, settings.Background.Overlay)
	if text.Title.FontSize != 64 || text.Title.FontWeight != 900 {
		t.Fatalf("title preset not applied: %+v", text.Title)
	}
	if text.LayoutStyle != LayoutBold {
		t.Fatalf("layout style not applied: %q", text.LayoutStyle)
	}
	if overlay.Opacity != 45 {
		t.Fatalf("overlay preset not applied: %+v", overlay)
	}
	if !text.ShowDate || !text.ShowAssignees || !text.ShowDescription {
		t.Fatal("visibility flags must survive layout preset application")
	}
}
