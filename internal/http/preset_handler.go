package http

import (
	"log/slog"
	"net/http"

	"github.com/example/schedule-studio/internal/poster"
)

// PresetHandler serves the editor's built-in configuration tables so clients
// can render pickers without hard-coding the values.
type PresetHandler struct {
	responder responder
}

func NewPresetHandler(logger *slog.Logger) *PresetHandler {
	return &PresetHandler{responder: newResponder(logger)}
}

// Catalog returns every preset table in one payload.
func (h *PresetHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	if h == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusOK, buildPresetCatalog())
}

type presetCatalogDTO struct {
	AspectRatios       []ratioDTO          `json:"aspect_ratios"`
	GradientCategories []string            `json:"gradient_categories"`
	Gradients          []gradientPresetDTO `json:"gradients"`
	Layouts            []layoutPresetDTO   `json:"layouts"`
	Filters            []filterPresetDTO   `json:"filters"`
	FilterRanges       []filterRangeDTO    `json:"filter_ranges"`
	Overlays           []overlayPresetDTO  `json:"overlays"`
	Styles             []stylePresetDTO    `json:"styles"`
	FontWeights        []fontWeightDTO     `json:"font_weights"`
	FontSizes          map[string]int      `json:"font_sizes"`
	LetterSpacings     []letterSpacingDTO  `json:"letter_spacings"`
	Shadows            shadowPresetDTO     `json:"shadows"`
	Zoom               zoomDTO             `json:"zoom"`
}

type ratioDTO struct {
	Name     string `json:"name"`
	Label    string `json:"label"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Platform string `json:"platform"`
}

type gradientPresetDTO struct {
	Name     string `json:"name"`
	Color1   string `json:"color1"`
	Color2   string `json:"color2"`
	Angle    int    `json:"angle"`
	Category string `json:"category"`
}

type layoutPresetDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type filterPresetDTO struct {
	Name       string `json:"name"`
	Brightness int    `json:"brightness"`
	Contrast   int    `json:"contrast"`
	Saturation int    `json:"saturation"`
	Blur       int    `json:"blur"`
}

type filterRangeDTO struct {
	Key     string `json:"key"`
	Label   string `json:"label"`
	Min     int    `json:"min"`
	Max     int    `json:"max"`
	Default int    `json:"default"`
	Unit    string `json:"unit"`
}

type overlayPresetDTO struct {
	Name    string `json:"name"`
	Color   string `json:"color"`
	Opacity int    `json:"opacity"`
}

type stylePresetDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type fontWeightDTO struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

type letterSpacingDTO struct {
	Value float64 `json:"value"`
	Label string  `json:"label"`
}

// shadowPresetDTO carries the two fixed drop shadow values clients mirror in
// their live preview. Shadow is on/off, never a continuous control.
type shadowPresetDTO struct {
	Title  string `json:"title"`
	Subtle string `json:"subtle"`
}

type zoomDTO struct {
	Min   int `json:"min"`
	Max   int `json:"max"`
	Step  int `json:"step"`
	Reset int `json:"reset"`
}

func buildPresetCatalog() presetCatalogDTO {
	catalog := presetCatalogDTO{
		FontSizes: poster.FontSizes,
		Shadows:   shadowPresets(),
		Zoom:      zoomDTO{Min: poster.ZoomMin, Max: poster.ZoomMax, Step: poster.ZoomStep, Reset: poster.ZoomReset},
	}

	for _, spec := range poster.Ratios() {
		catalog.AspectRatios = append(catalog.AspectRatios, ratioDTO{
			Name:     spec.Name,
			Label:    spec.Label,
			Width:    spec.Width,
			Height:   spec.Height,
			Platform: spec.Platform,
		})
	}
	for _, category := range poster.GradientCategories {
		catalog.GradientCategories = append(catalog.GradientCategories, string(category))
	}
	for _, preset := range poster.GradientPresets {
		catalog.Gradients = append(catalog.Gradients, gradientPresetDTO{
			Name:     preset.Name,
			Color1:   preset.Color1,
			Color2:   preset.Color2,
			Angle:    preset.Angle,
			Category: string(preset.Category),
		})
	}
	for _, preset := range poster.LayoutPresets {
		catalog.Layouts = append(catalog.Layouts, layoutPresetDTO{ID: preset.ID, Name: preset.Name, Description: preset.Description})
	}
	for _, preset := range poster.FilterPresets {
		catalog.Filters = append(catalog.Filters, filterPresetDTO{
			Name:       preset.Name,
			Brightness: preset.Filters.Brightness,
			Contrast:   preset.Filters.Contrast,
			Saturation: preset.Filters.Saturation,
			Blur:       preset.Filters.Blur,
		})
	}
	for _, bound := range poster.FilterRanges {
		catalog.FilterRanges = append(catalog.FilterRanges, filterRangeDTO{
			Key:     bound.Key,
			Label:   bound.Label,
			Min:     bound.Min,
			Max:     bound.Max,
			Default: bound.Default,
			Unit:    bound.Unit,
		})
	}
	for _, preset := range poster.OverlayPresets {
		catalog.Overlays = append(catalog.Overlays, overlayPresetDTO{Name: preset.Name, Color: preset.Color, Opacity: preset.Opacity})
	}
	for _, preset := range poster.StylePresets {
		catalog.Styles = append(catalog.Styles, stylePresetDTO{ID: preset.ID, Name: preset.Name, Description: preset.Description})
	}
	for _, weight := range poster.FontWeights {
		catalog.FontWeights = append(catalog.FontWeights, fontWeightDTO{Value: weight.Value, Label: weight.Label})
	}
	for _, spacing := range poster.LetterSpacings {
		catalog.LetterSpacings = append(catalog.LetterSpacings, letterSpacingDTO{Value: spacing.Value, Label: spacing.Label})
	}

	return catalog
}

func shadowPresets() shadowPresetDTO {
	enabled := poster.TitleText{Shadow: true}
	style := poster.DeriveStyle(poster.Settings{Text: poster.Text{Title: enabled}})
	return shadowPresetDTO{
		Title:  style.Title.TextShadow,
		Subtle: poster.SubtleShadow(enabled),
	}
}
