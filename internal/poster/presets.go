package poster

// The preset tables below are the editor's entire configuration surface:
// enumerated lookups compiled into the binary, not runtime configuration.

// GradientCategory groups gradient presets by mood.
type GradientCategory string

const (
	CategoryAll     GradientCategory = "all"
	CategoryDark    GradientCategory = "dark"
	CategoryVibrant GradientCategory = "vibrant"
	CategorySoft    GradientCategory = "soft"
	CategoryNature  GradientCategory = "nature"
	CategoryLuxury  GradientCategory = "luxury"
	CategoryModern  GradientCategory = "modern"
)

// GradientCategories enumerates the selectable preset categories.
var GradientCategories = []GradientCategory{
	CategoryAll, CategoryDark, CategoryVibrant, CategorySoft,
	CategoryNature, CategoryLuxury, CategoryModern,
}

// GradientPreset is a named two color linear ramp.
type GradientPreset struct {
	Name     string
	Color1   string
	Color2   string
	Angle    int
	Category GradientCategory
}

// Gradient materialises the preset as a linear gradient with full stops.
func (p GradientPreset) Gradient() LinearGradient {
	return LinearGradient{Angle: p.Angle, Color1: p.Color1, Color2: p.Color2, Stop1: 0, Stop2: 100}
}

// GradientPresets lists the built-in gradient swatches.
var GradientPresets = []GradientPreset{
	{Name: "Midnight", Color1: "#0f172a", Color2: "#1e293b", Angle: 135, Category: CategoryDark},
	{Name: "Obsidian", Color1: "#0a0a0a", Color2: "#262626", Angle: 180, Category: CategoryDark},
	{Name: "Deep Space", Color1: "#000428", Color2: "#004e92", Angle: 135, Category: CategoryDark},
	{Name: "Royal Night", Color1: "#141e30", Color2: "#243b55", Angle: 135, Category: CategoryDark},
	{Name: "Charcoal", Color1: "#232526", Color2: "#414345", Angle: 180, Category: CategoryDark},
	{Name: "Electric", Color1: "#ff00cc", Color2: "#3333ff", Angle: 135, Category: CategoryVibrant},
	{Name: "Neon Burst", Color1: "#f72585", Color2: "#7209b7", Angle: 45, Category: CategoryVibrant},
	{Name: "Cyber Punk", Color1: "#ff006e", Color2: "#8338ec", Angle: 120, Category: CategoryVibrant},
	{Name: "Solar Flare", Color1: "#f83600", Color2: "#f9d423", Angle: 180, Category: CategoryVibrant},
	{Name: "Tropical", Color1: "#ff6b6b", Color2: "#feca57", Angle: 135, Category: CategoryVibrant},
	{Name: "Rose Quartz", Color1: "#f5e6e8", Color2: "#d5c6e0", Angle: 135, Category: CategorySoft},
	{Name: "Blush", Color1: "#ffecd2", Color2: "#fcb69f", Angle: 135, Category: CategorySoft},
	{Name: "Lavender Mist", Color1: "#e0c3fc", Color2: "#8ec5fc", Angle: 120, Category: CategorySoft},
	{Name: "Cotton Candy", Color1: "#ff9a9e", Color2: "#fecfef", Angle: 135, Category: CategorySoft},
	{Name: "Peach Cream", Color1: "#fff1eb", Color2: "#ace0f9", Angle: 135, Category: CategorySoft},
	{Name: "Forest", Color1: "#134e5e", Color2: "#71b280", Angle: 135, Category: CategoryNature},
	{Name: "Ocean Breeze", Color1: "#2193b0", Color2: "#6dd5ed", Angle: 135, Category: CategoryNature},
	{Name: "Aurora", Color1: "#00c9ff", Color2: "#92fe9d", Angle: 45, Category: CategoryNature},
	{Name: "Sunset Beach", Color1: "#fa709a", Color2: "#fee140", Angle: 45, Category: CategoryNature},
	{Name: "Northern Lights", Color1: "#43cea2", Color2: "#185a9d", Angle: 135, Category: CategoryNature},
	{Name: "Gold Rush", Color1: "#f7971e", Color2: "#ffd200", Angle: 135, Category: CategoryLuxury},
	{Name: "Rose Gold", Color1: "#b76e79", Color2: "#f8cecc", Angle: 45, Category: CategoryLuxury},
	{Name: "Champagne", Color1: "#d4a574", Color2: "#e8d5b7", Angle: 135, Category: CategoryLuxury},
	{Name: "Platinum", Color1: "#c9d6df", Color2: "#f0f5f9", Angle: 180, Category: CategoryLuxury},
	{Name: "Black Gold", Color1: "#1a1a2e", Color2: "#c9a227", Angle: 135, Category: CategoryLuxury},
	{Name: "Mesh Purple", Color1: "#667eea", Color2: "#764ba2", Angle: 135, Category: CategoryModern},
	{Name: "Glass Blue", Color1: "#4facfe", Color2: "#00f2fe", Angle: 135, Category: CategoryModern},
	{Name: "Holographic", Color1: "#a8edea", Color2: "#fed6e3", Angle: 45, Category: CategoryModern},
	{Name: "Gradient X", Color1: "#6366f1", Color2: "#a855f7", Angle: 135, Category: CategoryModern},
	{Name: "Neo Tokyo", Color1: "#f953c6", Color2: "#b91d73", Angle: 180, Category: CategoryModern},
}

// FindGradientPreset looks a swatch up by name.
func FindGradientPreset(name string) (GradientPreset, bool) {
	for _, preset := range GradientPresets {
		if preset.Name == name {
			return preset, true
		}
	}
	return GradientPreset{}, false
}

// GradientPresetsByCategory filters the swatch table; CategoryAll returns
// every preset.
func GradientPresetsByCategory(category GradientCategory) []GradientPreset {
	if category == CategoryAll || category == "" {
		out := make([]GradientPreset, len(GradientPresets))
		copy(out, GradientPresets)
		return out
	}
	var out []GradientPreset
	for _, preset := range GradientPresets {
		if preset.Category == category {
			out = append(out, preset)
		}
	}
	return out
}

// LayoutPreset is a one-click arrangement applied to the text settings and
// overlay together.
type LayoutPreset struct {
	ID             string
	Name           string
	Description    string
	TitleAlign     Align
	TitleFontSize  int
	TitleWeight    int
	TitleSpacing   float64
	ContentAlign   Align
	ContentOpacity float64
	LayoutStyle    LayoutStyle
	Overlay        Overlay
}

// Apply merges the preset into the given text and overlay settings.
func (p LayoutPreset) Apply(text Text, overlay Overlay) (Text, Overlay) {
	text.Title.Align = p.TitleAlign
	text.Title.FontSize = p.TitleFontSize
	text.Title.FontWeight = p.TitleWeight
	text.Title.LetterSpacing = p.TitleSpacing
	text.Content.Align = p.ContentAlign
	text.Content.Opacity = p.ContentOpacity
	text.LayoutStyle = p.LayoutStyle
	overlay.Color = p.Overlay.Color
	overlay.Opacity = p.Overlay.Opacity
	return text, overlay
}

// LayoutPresets lists the built-in layout arrangements.
var LayoutPresets = []LayoutPreset{
	{ID: "classic", Name: "Classic", Description: "Traditional centered layout", TitleAlign: AlignCenter, TitleFontSize: 42, TitleWeight: 700, TitleSpacing: -0.02, ContentAlign: AlignCenter, ContentOpacity: 0.85, LayoutStyle: LayoutClassic, Overlay: Overlay{Color: "#000000", Opacity: 30, Show: true}},
	{ID: "modern", Name: "Modern", Description: "Clean left-aligned layout", TitleAlign: AlignLeft, TitleFontSize: 48, TitleWeight: 800, TitleSpacing: -0.03, ContentAlign: AlignLeft, ContentOpacity: 0.8, LayoutStyle: LayoutModern, Overlay: Overlay{Color: "#000000", Opacity: 25, Show: true}},
	{ID: "minimal", Name: "Minimal", Description: "Simple and understated", TitleAlign: AlignLeft, TitleFontSize: 36, TitleWeight: 500, TitleSpacing: 0, ContentAlign: AlignLeft, ContentOpacity: 0.7, LayoutStyle: LayoutMinimal, Overlay: Overlay{Color: "#000000", Opacity: 15, Show: true}},
	{ID: "bold", Name: "Bold", Description: "High impact statement", TitleAlign: AlignCenter, TitleFontSize: 56, TitleWeight: 900, TitleSpacing: -0.04, ContentAlign: AlignCenter, ContentOpacity: 0.9, LayoutStyle: LayoutBold, Overlay: Overlay{Color: "#000000", Opacity: 40, Show: true}},
	{ID: "elegant", Name: "Elegant", Description: "Sophisticated and refined", TitleAlign: AlignCenter, TitleFontSize: 38, TitleWeight: 400, TitleSpacing: 0.1, ContentAlign: AlignCenter, ContentOpacity: 0.75, LayoutStyle: LayoutClassic, Overlay: Overlay{Color: "#000000", Opacity: 20, Show: true}},
	{ID: "magazine", Name: "Magazine", Description: "Editorial publication style", TitleAlign: AlignLeft, TitleFontSize: 52, TitleWeight: 700, TitleSpacing: -0.01, ContentAlign: AlignLeft, ContentOpacity: 0.8, LayoutStyle: LayoutModern, Overlay: Overlay{Color: "#000000", Opacity: 35, Show: true}},
	{ID: "split", Name: "Split", Description: "Text on one side", TitleAlign: AlignRight, TitleFontSize: 44, TitleWeight: 700, TitleSpacing: -0.02, ContentAlign: AlignRight, ContentOpacity: 0.85, LayoutStyle: LayoutModern, Overlay: Overlay{Color: "#000000", Opacity: 30, Show: true}},
	{ID: "headline", Name: "Headline", Description: "News-style big title", TitleAlign: AlignCenter, TitleFontSize: 64, TitleWeight: 900, TitleSpacing: -0.05, ContentAlign: AlignCenter, ContentOpacity: 0.9, LayoutStyle: LayoutBold, Overlay: Overlay{Color: "#000000", Opacity: 45, Show: true}},
}

// FindLayoutPreset looks an arrangement up by id or display name.
func FindLayoutPreset(name string) (LayoutPreset, bool) {
	for _, preset := range LayoutPresets {
		if preset.ID == name || preset.Name == name {
			return preset, true
		}
	}
	return LayoutPreset{}, false
}

// FilterPreset is a named adjustment combination.
type FilterPreset struct {
	Name    string
	Filters Filters
}

// FilterPresets lists the built-in adjustment combinations.
var FilterPresets = []FilterPreset{
	{Name: "None", Filters: Filters{Brightness: 100, Contrast: 100, Saturation: 100, Blur: 0}},
	{Name: "Vivid", Filters: Filters{Brightness: 110, Contrast: 120, Saturation: 130, Blur: 0}},
	{Name: "Muted", Filters: Filters{Brightness: 100, Contrast: 90, Saturation: 70, Blur: 0}},
	{Name: "Vintage", Filters: Filters{Brightness: 95, Contrast: 85, Saturation: 80, Blur: 0}},
	{Name: "Dramatic", Filters: Filters{Brightness: 90, Contrast: 140, Saturation: 110, Blur: 0}},
	{Name: "Soft", Filters: Filters{Brightness: 105, Contrast: 95, Saturation: 95, Blur: 2}},
	{Name: "B&W", Filters: Filters{Brightness: 100, Contrast: 110, Saturation: 0, Blur: 0}},
	{Name: "Dreamy", Filters: Filters{Brightness: 115, Contrast: 85, Saturation: 90, Blur: 4}},
	{Name: "Cool", Filters: Filters{Brightness: 100, Contrast: 105, Saturation: 85, Blur: 0}},
	{Name: "Warm", Filters: Filters{Brightness: 105, Contrast: 100, Saturation: 120, Blur: 0}},
}

// FindFilterPreset looks an adjustment combination up by name.
func FindFilterPreset(name string) (FilterPreset, bool) {
	for _, preset := range FilterPresets {
		if preset.Name == name {
			return preset, true
		}
	}
	return FilterPreset{}, false
}

// FilterRange bounds a single adjustment slider.
type FilterRange struct {
	Key     string
	Label   string
	Min     int
	Max     int
	Default int
	Unit    string
}

// FilterRanges bounds the adjustment sliders.
var FilterRanges = []FilterRange{
	{Key: "brightness", Label: "Brightness", Min: 0, Max: 200, Default: 100, Unit: "%"},
	{Key: "contrast", Label: "Contrast", Min: 0, Max: 200, Default: 100, Unit: "%"},
	{Key: "saturation", Label: "Saturation", Min: 0, Max: 200, Default: 100, Unit: "%"},
	{Key: "blur", Label: "Blur", Min: 0, Max: 20, Default: 0, Unit: "px"},
}

// OverlayPreset is a named tint.
type OverlayPreset struct {
	Name    string
	Color   string
	Opacity int
}

// OverlayPresets lists the built-in tints.
var OverlayPresets = []OverlayPreset{
	{Name: "None", Color: "#000000", Opacity: 0},
	{Name: "Light", Color: "#000000", Opacity: 15},
	{Name: "Medium", Color: "#000000", Opacity: 30},
	{Name: "Dark", Color: "#000000", Opacity: 50},
	{Name: "Heavy", Color: "#000000", Opacity: 70},
	{Name: "White Fade", Color: "#ffffff", Opacity: 20},
	{Name: "Blue Tint", Color: "#1e3a5f", Opacity: 40},
	{Name: "Warm Tint", Color: "#7c2d12", Opacity: 30},
	{Name: "Purple Haze", Color: "#4c1d95", Opacity: 35},
	{Name: "Green Tint", Color: "#14532d", Opacity: 30},
}

// FindOverlayPreset looks a tint up by name.
func FindOverlayPreset(name string) (OverlayPreset, bool) {
	for _, preset := range OverlayPresets {
		if preset.Name == name {
			return preset, true
		}
	}
	return OverlayPreset{}, false
}

// StylePreset is a complete one-click theme: background and text together.
type StylePreset struct {
	ID          string
	Name        string
	Description string
	Background  Background
	Text        Text
}

// StylePresets lists the built-in complete themes.
var StylePresets = []StylePreset{
	{
		ID: "professional-dark", Name: "Professional Dark", Description: "Sleek corporate look",
		Background: Background{
			Gradient: LinearGradient{Angle: 135, Color1: "#0f172a", Color2: "#1e293b", Stop1: 0, Stop2: 100},
			Overlay:  Overlay{Color: "#000000", Opacity: 20, Show: true},
			Filters:  Filters{Brightness: 100, Contrast: 100, Blur: 0, Saturation: 100},
		},
		Text: Text{
			Title:           TitleText{Color: "#ffffff", FontSize: 44, Align: AlignLeft, FontFamily: "font-sans", FontWeight: 700, Shadow: true, LetterSpacing: -0.02},
			Content:         ContentText{Color: "#94a3b8", Opacity: 0.9, Align: AlignLeft},
			LayoutStyle:     LayoutModern,
			ShowDate:        true,
			ShowAssignees:   true,
			ShowDescription: true,
		},
	},
	{
		ID: "vibrant-gradient", Name: "Vibrant Gradient", Description: "Eye-catching colorful design",
		Background: Background{
			Gradient: LinearGradient{Angle: 135, Color1: "#667eea", Color2: "#764ba2", Stop1: 0, Stop2: 100},
			Overlay:  Overlay{Color: "#000000", Opacity: 15, Show: true},
			Filters:  Filters{Brightness: 100, Contrast: 105, Blur: 0, Saturation: 110},
		},
		Text: Text{
			Title:           TitleText{Color: "#ffffff", FontSize: 48, Align: AlignCenter, FontFamily: "font-sans", FontWeight: 800, Shadow: true, LetterSpacing: -0.03},
			Content:         ContentText{Color: "#ffffff", Opacity: 0.9, Align: AlignCenter},
			LayoutStyle:     LayoutBold,
			ShowDate:        true,
			ShowAssignees:   true,
			ShowDescription: true,
		},
	},
	{
		ID: "elegant-minimal", Name: "Elegant Minimal", Description: "Sophisticated and clean",
		Background: Background{
			Gradient: LinearGradient{Angle: 180, Color1: "#fafafa", Color2: "#e5e5e5", Stop1: 0, Stop2: 100},
			Overlay:  Overlay{Color: "#000000", Opacity: 0, Show: true},
			Filters:  Filters{Brightness: 100, Contrast: 100, Blur: 0, Saturation: 100},
		},
		Text: Text{
			Title:           TitleText{Color: "#171717", FontSize: 40, Align: AlignCenter, FontFamily: "font-serif", FontWeight: 400, Shadow: false, LetterSpacing: 0.1},
			Content:         ContentText{Color: "#525252", Opacity: 0.85, Align: AlignCenter},
			LayoutStyle:     LayoutClassic,
			ShowDate:        true,
			ShowAssignees:   true,
			ShowDescription: true,
		},
	},
	{
		ID: "bold-statement", Name: "Bold Statement", Description: "Maximum visual impact",
		Background: Background{
			Gradient: LinearGradient{Angle: 135, Color1: "#000000", Color2: "#1a1a1a", Stop1: 0, Stop2: 100},
			Overlay:  Overlay{Color: "#000000", Opacity: 0, Show: true},
			Filters:  Filters{Brightness: 100, Contrast: 110, Blur: 0, Saturation: 100},
		},
		Text: Text{
			Title:           TitleText{Color: "#ffffff", FontSize: 56, Align: AlignCenter, FontFamily: "font-sans", FontWeight: 900, Shadow: true, LetterSpacing: -0.04},
			Content:         ContentText{Color: "#ffffff", Opacity: 0.85, Align: AlignCenter},
			LayoutStyle:     LayoutBold,
			ShowDate:        true,
			ShowAssignees:   true,
			ShowDescription: true,
		},
	},
	{
		ID: "soft-pastel", Name: "Soft Pastel", Description: "Gentle and inviting",
		Background: Background{
			Gradient: LinearGradient{Angle: 135, Color1: "#fce7f3", Color2: "#ddd6fe", Stop1: 0, Stop2: 100},
			Overlay:  Overlay{Color: "#000000", Opacity: 5, Show: true},
			Filters:  Filters{Brightness: 102, Contrast: 98, Blur: 0, Saturation: 95},
		},
		Text: Text{
			Title:           TitleText{Color: "#4c1d95", FontSize: 42, Align: AlignCenter, FontFamily: "font-sans", FontWeight: 600, Shadow: false, LetterSpacing: 0},
			Content:         ContentText{Color: "#6b21a8", Opacity: 0.8, Align: AlignCenter},
			LayoutStyle:     LayoutClassic,
			ShowDate:        true,
			ShowAssignees:   true,
			ShowDescription: true,
		},
	},
	{
		ID: "neon-nights", Name: "Neon Nights", Description: "Cyberpunk aesthetic",
		Background: Background{
			Gradient: LinearGradient{Angle: 135, Color1: "#0a0a0a", Color2: "#1a0a2e", Stop1: 0, Stop2: 100},
			Overlay:  Overlay{Color: "#000000", Opacity: 10, Show: true},
			Filters:  Filters{Brightness: 100, Contrast: 115, Blur: 0, Saturation: 120},
		},
		Text: Text{
			Title:           TitleText{Color: "#f0abfc", FontSize: 48, Align: AlignCenter, FontFamily: "font-sans", FontWeight: 800, Shadow: true, LetterSpacing: -0.02},
			Content:         ContentText{Color: "#c4b5fd", Opacity: 0.9, Align: AlignCenter},
			LayoutStyle:     LayoutBold,
			ShowDate:        true,
			ShowAssignees:   true,
			ShowDescription: true,
		},
	},
	{
		ID: "nature-fresh", Name: "Nature Fresh", Description: "Organic and natural feel",
		Background: Background{
			Gradient: LinearGradient{Angle: 180, Color1: "#ecfdf5", Color2: "#d1fae5", Stop1: 0, Stop2: 100},
			Overlay:  Overlay{Color: "#000000", Opacity: 0, Show: true},
			Filters:  Filters{Brightness: 100, Contrast: 100, Blur: 0, Saturation: 100},
		},
		Text: Text{
			Title:           TitleText{Color: "#065f46", FontSize: 44, Align: AlignLeft, FontFamily: "font-serif", FontWeight: 600, Shadow: false, LetterSpacing: 0},
			Content:         ContentText{Color: "#047857", Opacity: 0.85, Align: AlignLeft},
			LayoutStyle:     LayoutModern,
			ShowDate:        true,
			ShowAssignees:   true,
			ShowDescription: true,
		},
	},
	{
		ID: "luxury-gold", Name: "Luxury Gold", Description: "Premium and exclusive",
		Background: Background{
			Gradient: LinearGradient{Angle: 135, Color1: "#1a1a1a", Color2: "#2d2d2d", Stop1: 0, Stop2: 100},
			Overlay:  Overlay{Color: "#000000", Opacity: 10, Show: true},
			Filters:  Filters{Brightness: 100, Contrast: 105, Blur: 0, Saturation: 100},
		},
		Text: Text{
			Title:           TitleText{Color: "#d4af37", FontSize: 46, Align: AlignCenter, FontFamily: "font-serif", FontWeight: 400, Shadow: true, LetterSpacing: 0.15},
			Content:         ContentText{Color: "#f5deb3", Opacity: 0.85, Align: AlignCenter},
			LayoutStyle:     LayoutClassic,
			ShowDate:        true,
			ShowAssignees:   true,
			ShowDescription: true,
		},
	},
	{
		ID: "ocean-vibes", Name: "Ocean Vibes", Description: "Calm and refreshing",
		Background: Background{
			Gradient: LinearGradient{Angle: 180, Color1: "#0ea5e9", Color2: "#0284c7", Stop1: 0, Stop2: 100},
			Overlay:  Overlay{Color: "#000000", Opacity: 20, Show: true},
			Filters:  Filters{Brightness: 100, Contrast: 100, Blur: 0, Saturation: 105},
		},
		Text: Text{
			Title:           TitleText{Color: "#ffffff", FontSize: 44, Align: AlignCenter, FontFamily: "font-sans", FontWeight: 700, Shadow: true, LetterSpacing: -0.01},
			Content:         ContentText{Color: "#e0f2fe", Opacity: 0.9, Align: AlignCenter},
			LayoutStyle:     LayoutClassic,
			ShowDate:        true,
			ShowAssignees:   true,
			ShowDescription: true,
		},
	},
	{
		ID: "sunset-warm", Name: "Sunset Warm", Description: "Warm and inviting atmosphere",
		Background: Background{
			Gradient: LinearGradient{Angle: 135, Color1: "#f97316", Color2: "#ea580c", Stop1: 0, Stop2: 100},
			Overlay:  Overlay{Color: "#000000", Opacity: 25, Show: true},
			Filters:  Filters{Brightness: 100, Contrast: 105, Blur: 0, Saturation: 110},
		},
		Text: Text{
			Title:           TitleText{Color: "#ffffff", FontSize: 46, Align: AlignLeft, FontFamily: "font-sans", FontWeight: 700, Shadow: true, LetterSpacing: -0.02},
			Content:         ContentText{Color: "#fef3c7", Opacity: 0.9, Align: AlignLeft},
			LayoutStyle:     LayoutModern,
			ShowDate:        true,
			ShowAssignees:   true,
			ShowDescription: true,
		},
	},
}

// FindStylePreset looks a theme up by id or display name.
func FindStylePreset(name string) (StylePreset, bool) {
	for _, preset := range StylePresets {
		if preset.ID == name || preset.Name == name {
			return preset, true
		}
	}
	return StylePreset{}, false
}

// FontWeightOption labels a selectable title weight.
type FontWeightOption struct {
	Value int
	Label string
}

// FontWeights lists the selectable title weights.
var FontWeights = []FontWeightOption{
	{Value: 100, Label: "Thin"},
	{Value: 200, Label: "Extra Light"},
	{Value: 300, Label: "Light"},
	{Value: 400, Label: "Regular"},
	{Value: 500, Label: "Medium"},
	{Value: 600, Label: "Semi Bold"},
	{Value: 700, Label: "Bold"},
	{Value: 800, Label: "Extra Bold"},
	{Value: 900, Label: "Black"},
}

// LetterSpacingOption labels a selectable tracking value.
type LetterSpacingOption struct {
	Value float64
	Label string
}

// LetterSpacings lists the selectable tracking values.
var LetterSpacings = []LetterSpacingOption{
	{Value: -0.05, Label: "Tight"},
	{Value: -0.02, Label: "Slightly Tight"},
	{Value: 0, Label: "Normal"},
	{Value: 0.05, Label: "Slightly Wide"},
	{Value: 0.1, Label: "Wide"},
	{Value: 0.2, Label: "Extra Wide"},
}

// FontSizes maps the typographic scale names to pixel sizes.
var FontSizes = map[string]int{
	"xs": 24, "sm": 32, "md": 42, "lg": 52, "xl": 64, "2xl": 80,
}
