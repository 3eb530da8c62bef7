package poster

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Align identifies the horizontal alignment of a text block.
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// LayoutStyle identifies the overall poster content arrangement.
type LayoutStyle string

const (
	LayoutClassic LayoutStyle = "classic"
	LayoutModern  LayoutStyle = "modern"
	LayoutMinimal LayoutStyle = "minimal"
	LayoutBold    LayoutStyle = "bold"
)

// Gradient is a closed set of procedural background paints. The concrete
// types carry only the fields that are meaningful for their kind, so an
// angle on a radial gradient is unrepresentable rather than ignored.
type Gradient interface {
	// CSS returns the background-image descriptor for the gradient.
	CSS() string
	kind() string
}

// LinearGradient paints a two stop linear ramp at a given angle.
type LinearGradient struct {
	Angle  int
	Color1 string
	Color2 string
	Stop1  int
	Stop2  int
}

// RadialGradient paints a two stop circular ramp centred on the canvas.
type RadialGradient struct {
	Color1 string
	Color2 string
	Stop1  int
	Stop2  int
}

// ConicGradient sweeps between two colors around the canvas centre.
type ConicGradient struct {
	Angle  int
	Color1 string
	Color2 string
}

// CSS renders the gradient using the linear-gradient formula.
func (g LinearGradient) CSS() string {
	return fmt.Sprintf("linear-gradient(%ddeg, %s %d%%, %s %d%%)", g.Angle, g.Color1, g.Stop1, g.Color2, g.Stop2)
}

func (g LinearGradient) kind() string { return "linear-gradient" }

// CSS renders the gradient using the radial-gradient formula.
func (g RadialGradient) CSS() string {
	return fmt.Sprintf("radial-gradient(circle at center, %s %d%%, %s %d%%)", g.Color1, g.Stop1, g.Color2, g.Stop2)
}

func (g RadialGradient) kind() string { return "radial-gradient" }

// CSS renders the gradient using the conic-gradient formula. Stops are not
// part of the conic form.
func (g ConicGradient) CSS() string {
	return fmt.Sprintf("conic-gradient(from %ddeg at center, %s, %s)", g.Angle, g.Color1, g.Color2)
}

func (g ConicGradient) kind() string { return "conic-gradient" }

// gradientWire is the flat serialized form shared by all gradient kinds.
type gradientWire struct {
	Type   string `json:"type"`
	Angle  int    `json:"angle,omitempty"`
	Color1 string `json:"color1"`
	Color2 string `json:"color2"`
	Stop1  int    `json:"stop1"`
	Stop2  int    `json:"stop2"`
}

// MarshalGradient flattens a gradient into its wire representation.
func MarshalGradient(g Gradient) ([]byte, error) {
	if g == nil {
		return []byte("null"), nil
	}
	wire := gradientWire{Type: g.kind()}
	switch v := g.(type) {
	case LinearGradient:
		wire.Angle = v.Angle
		wire.Color1, wire.Color2 = v.Color1, v.Color2
		wire.Stop1, wire.Stop2 = v.Stop1, v.Stop2
	case RadialGradient:
		wire.Color1, wire.Color2 = v.Color1, v.Color2
		wire.Stop1, wire.Stop2 = v.Stop1, v.Stop2
	case ConicGradient:
		wire.Angle = v.Angle
		wire.Color1, wire.Color2 = v.Color1, v.Color2
	default:
		return nil, fmt.Errorf("poster: unsupported gradient type %T", g)
	}
	return json.Marshal(wire)
}

// UnmarshalGradient restores a gradient from its wire representation. A null
// or empty payload yields a nil gradient.
func UnmarshalGradient(data []byte) (Gradient, error) {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		return nil, nil
	}
	var wire gradientWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, err
	}
	switch wire.Type {
	case "linear-gradient":
		return LinearGradient{Angle: wire.Angle, Color1: wire.Color1, Color2: wire.Color2, Stop1: wire.Stop1, Stop2: wire.Stop2}, nil
	case "radial-gradient":
		return RadialGradient{Color1: wire.Color1, Color2: wire.Color2, Stop1: wire.Stop1, Stop2: wire.Stop2}, nil
	case "conic-gradient":
		return ConicGradient{Angle: wire.Angle, Color1: wire.Color1, Color2: wire.Color2}, nil
	default:
		return nil, fmt.Errorf("poster: unknown gradient type %q", wire.Type)
	}
}

// Overlay is a translucent tint layered above the background paint. Show
// mutes the overlay without discarding the stored opacity.
type Overlay struct {
	Color   string `json:"color"`
	Opacity int    `json:"opacity"`
	Show    bool   `json:"show"`
}

// EffectiveOpacity returns the opacity honouring the mute flag.
func (o Overlay) EffectiveOpacity() int {
	if !o.Show {
		return 0
	}
	return o.Opacity
}

// Filters carries the image adjustment values applied to the background.
// Brightness, contrast, and saturation are percentages where 100 is
// identity; blur is in CSS pixels.
type Filters struct {
	Brightness int `json:"brightness"`
	Contrast   int `json:"contrast"`
	Blur       int `json:"blur"`
	Saturation int `json:"saturation"`
}

// Background describes the lower paint layers of a poster. A non-empty
// Image takes precedence over the gradient.
type Background struct {
	Image    string   `json:"image"`
	Gradient Gradient `json:"-"`
	Overlay  Overlay  `json:"overlay"`
	Filters  Filters  `json:"filters"`
}

type backgroundWire struct {
	Image    string          `json:"image"`
	Gradient json.RawMessage `json:"gradient,omitempty"`
	Overlay  Overlay         `json:"overlay"`
	Filters  Filters         `json:"filters"`
}

// MarshalJSON serializes the background including the flattened gradient.
func (b Background) MarshalJSON() ([]byte, error) {
	gradient, err := MarshalGradient(b.Gradient)
	if err != nil {
		return nil, err
	}
	return json.Marshal(backgroundWire{
		Image:    b.Image,
		Gradient: gradient,
		Overlay:  b.Overlay,
		Filters:  b.Filters,
	})
}

// UnmarshalJSON restores the background, reconstructing the typed gradient.
func (b *Background) UnmarshalJSON(data []byte) error {
	var wire backgroundWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	gradient, err := UnmarshalGradient(wire.Gradient)
	if err != nil {
		return err
	}
	b.Image = wire.Image
	b.Gradient = gradient
	b.Overlay = wire.Overlay
	b.Filters = wire.Filters
	return nil
}

// TitleText styles the poster headline.
type TitleText struct {
	Color         string  `json:"color"`
	FontSize      int     `json:"fontSize"`
	Align         Align   `json:"align"`
	FontFamily    string  `json:"fontFamily"`
	FontWeight    int     `json:"fontWeight"`
	Shadow        bool    `json:"shadow"`
	LetterSpacing float64 `json:"letterSpacing"`
}

// ContentText styles the secondary poster copy.
type ContentText struct {
	Color   string  `json:"color"`
	Opacity float64 `json:"opacity"`
	Align   Align   `json:"align"`
}

// Text controls both the paint of the title/content blocks and which
// optional poster sections render at all.
type Text struct {
	Title           TitleText   `json:"title"`
	Content         ContentText `json:"content"`
	LayoutStyle     LayoutStyle `json:"layoutStyle"`
	ShowDate        bool        `json:"showDate"`
	ShowAssignees   bool        `json:"showAssignees"`
	ShowDescription bool        `json:"showDescription"`
}

// Settings bundles the serializable poster styling.
type Settings struct {
	Background Background `json:"backgroundSettings"`
	Text       Text       `json:"textSettings"`
}

// Data is the unit persisted back onto a schedule when the editor applies.
type Data struct {
	Settings
	AspectRatio Ratio `json:"aspectRatio"`
}

// DefaultSettings returns the editor seed used when a schedule has no saved
// poster configuration.
func DefaultSettings() Settings {
	return Settings{
		Background: Background{
			Image:    "",
			Gradient: LinearGradient{Angle: 135, Color1: "#6366f1", Color2: "#a855f7", Stop1: 0, Stop2: 100},
			Overlay:  Overlay{Color: "#000000", Opacity: 25, Show: true},
			Filters:  Filters{Brightness: 100, Contrast: 100, Blur: 0, Saturation: 100},
		},
		Text: Text{
			Title: TitleText{
				Color:         "#ffffff",
				FontSize:      42,
				Align:         AlignCenter,
				FontFamily:    "font-sans",
				FontWeight:    700,
				Shadow:        true,
				LetterSpacing: -0.02,
			},
			Content:         ContentText{Color: "#ffffff", Opacity: 0.85, Align: AlignCenter},
			LayoutStyle:     LayoutClassic,
			ShowDate:        true,
			ShowAssignees:   true,
			ShowDescription: true,
		},
	}
}

// DefaultData returns default settings with the default aspect ratio.
func DefaultData() Data {
	return Data{Settings: DefaultSettings(), AspectRatio: RatioPortrait}
}
