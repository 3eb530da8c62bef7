package poster

import (
	"fmt"
	"strconv"
	"strings"
)

// Style is the set of concrete paint instructions derived from Settings.
// The composition surface consumes it verbatim; nothing here refers back
// to the settings that produced it.
type Style struct {
	BackgroundImage    string
	BackgroundSize     string
	BackgroundPosition string
	Filter             string
	Overlay            OverlayPaint
	Title              TitlePaint
	Content            ContentPaint
}

// OverlayPaint describes the tint rectangle above the background.
type OverlayPaint struct {
	Color   string
	Opacity float64
}

// TitlePaint describes the headline text paint.
type TitlePaint struct {
	Color         string
	FontSize      int
	Align         Align
	FontFamily    string
	FontWeight    int
	LetterSpacing float64
	TextShadow    string
}

// ContentPaint describes the secondary text paint.
type ContentPaint struct {
	Color   string
	Opacity float64
	Align   Align
}

// Drop shadows are fixed presets rather than a continuous control: a soft
// dual layer shadow when enabled, nothing otherwise.
const (
	titleShadow  = "0 2px 4px rgba(0,0,0,0.3), 0 4px 12px rgba(0,0,0,0.2)"
	subtleShadow = "0 1px 3px rgba(0,0,0,0.2)"
)

// DeriveStyle maps poster settings to concrete paint instructions. A
// non-empty background image always wins over the gradient.
func DeriveStyle(settings Settings) Style {
	style := Style{
		Filter:  FilterCSS(settings.Background.Filters),
		Overlay: deriveOverlay(settings.Background.Overlay),
		Title:   deriveTitle(settings.Text.Title),
		Content: deriveContent(settings.Text.Content),
	}

	switch {
	case settings.Background.Image != "":
		style.BackgroundImage = fmt.Sprintf("url(%s)", settings.Background.Image)
		style.BackgroundSize = "cover"
		style.BackgroundPosition = "center"
	case settings.Background.Gradient != nil:
		style.BackgroundImage = settings.Background.Gradient.CSS()
	}

	return style
}

// SubtleShadow returns the lighter companion shadow used on secondary
// poster chrome when the title shadow is enabled.
func SubtleShadow(title TitleText) string {
	if title.Shadow {
		return subtleShadow
	}
	return "none"
}

func deriveOverlay(overlay Overlay) OverlayPaint {
	return OverlayPaint{
		Color:   overlay.Color,
		Opacity: float64(overlay.EffectiveOpacity()) / 100,
	}
}

func deriveTitle(title TitleText) TitlePaint {
	shadow := "none"
	if title.Shadow {
		shadow = titleShadow
	}
	return TitlePaint{
		Color:         title.Color,
		FontSize:      title.FontSize,
		Align:         title.Align,
		FontFamily:    title.FontFamily,
		FontWeight:    title.FontWeight,
		LetterSpacing: title.LetterSpacing,
		TextShadow:    shadow,
	}
}

func deriveContent(content ContentText) ContentPaint {
	return ContentPaint{
		Color:   content.Color,
		Opacity: content.Opacity,
		Align:   content.Align,
	}
}

// FilterCSS renders the adjustment values as a CSS filter string.
func FilterCSS(filters Filters) string {
	return fmt.Sprintf("brightness(%d%%) contrast(%d%%) blur(%dpx) saturate(%d%%)",
		filters.Brightness, filters.Contrast, filters.Blur, filters.Saturation)
}

// ParseFilter reads the numeric adjustment values back out of a filter
// string produced by FilterCSS.
func ParseFilter(filter string) (Filters, error) {
	var filters Filters
	seen := make(map[string]bool, 4)

	for _, part := range strings.Fields(filter) {
		open := strings.IndexByte(part, '(')
		if open < 0 || !strings.HasSuffix(part, ")") {
			return Filters{}, fmt.Errorf("poster: malformed filter component %q", part)
		}
		name := part[:open]
		raw := part[open+1 : len(part)-1]

		var unit string
		switch name {
		case "brightness", "contrast", "saturate":
			unit = "%"
		case "blur":
			unit = "px"
		default:
			return Filters{}, fmt.Errorf("poster: unknown filter function %q", name)
		}
		if !strings.HasSuffix(raw, unit) {
			return Filters{}, fmt.Errorf("poster: filter %s value %q missing %s unit", name, raw, unit)
		}

		value, err := strconv.Atoi(strings.TrimSuffix(raw, unit))
		if err != nil {
			return Filters{}, fmt.Errorf("poster: filter %s value %q is not numeric", name, raw)
		}

		switch name {
		case "brightness":
			filters.Brightness = value
		case "contrast":
			filters.Contrast = value
		case "blur":
			filters.Blur = value
		case "saturate":
			filters.Saturation = value
		}
		seen[name] = true
	}

	for _, name := range []string{"brightness", "contrast", "blur", "saturate"} {
		if !seen[name] {
			return Filters{}, fmt.Errorf("poster: filter string missing %s component", name)
		}
	}

	return filters, nil
}
