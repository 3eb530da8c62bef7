package poster

import "fmt"

// Ratio identifies one of the fixed poster aspect ratio presets.
type Ratio string

const (
	RatioPortrait  Ratio = "portrait"
	RatioStory     Ratio = "story"
	RatioSquare    Ratio = "square"
	RatioLandscape Ratio = "landscape"
	RatioWide      Ratio = "wide"
	RatioPinterest Ratio = "pinterest"
)

// RatioSpec describes a selectable aspect ratio and its export dimensions.
type RatioSpec struct {
	Name     string
	Label    string
	Class    string
	Width    int
	Height   int
	Platform string
}

var aspectRatios = map[Ratio]RatioSpec{
	RatioPortrait:  {Name: "Portrait", Label: "3:4", Class: "aspect-[3/4]", Width: 900, Height: 1200, Platform: "Instagram Post"},
	RatioStory:     {Name: "Story", Label: "9:16", Class: "aspect-[9/16]", Width: 1080, Height: 1920, Platform: "Instagram/TikTok Story"},
	RatioSquare:    {Name: "Square", Label: "1:1", Class: "aspect-square", Width: 1080, Height: 1080, Platform: "Instagram/Facebook"},
	RatioLandscape: {Name: "Landscape", Label: "16:9", Class: "aspect-[16/9]", Width: 1920, Height: 1080, Platform: "YouTube/Twitter"},
	RatioWide:      {Name: "Wide", Label: "2:1", Class: "aspect-[2/1]", Width: 1200, Height: 600, Platform: "Twitter Header"},
	RatioPinterest: {Name: "Pinterest", Label: "2:3", Class: "aspect-[2/3]", Width: 1000, Height: 1500, Platform: "Pinterest"},
}

// ratioOrder fixes the presentation order of the aspect ratio presets.
var ratioOrder = []Ratio{RatioPortrait, RatioStory, RatioSquare, RatioLandscape, RatioWide, RatioPinterest}

// Spec returns the dimensions and labels for the ratio.
func (r Ratio) Spec() (RatioSpec, error) {
	spec, ok := aspectRatios[r]
	if !ok {
		return RatioSpec{}, fmt.Errorf("poster: unknown aspect ratio %q", string(r))
	}
	return spec, nil
}

// Valid reports whether the ratio is one of the fixed presets.
func (r Ratio) Valid() bool {
	_, ok := aspectRatios[r]
	return ok
}

// Ratios enumerates the aspect ratio presets in presentation order.
func Ratios() []RatioSpec {
	out := make([]RatioSpec, 0, len(ratioOrder))
	for _, r := range ratioOrder {
		out = append(out, aspectRatios[r])
	}
	return out
}

// Zoom bounds for the on-screen preview. Zoom is a display affordance only
// and never reaches the renderer.
const (
	ZoomMin   = 25
	ZoomMax   = 200
	ZoomStep  = 25
	ZoomReset = 100
)

// ClampZoom snaps a requested zoom level onto the supported range and step.
func ClampZoom(zoom int) int {
	if zoom < ZoomMin {
		return ZoomMin
	}
	if zoom > ZoomMax {
		return ZoomMax
	}
	remainder := zoom % ZoomStep
	if remainder == 0 {
		return zoom
	}
	if 2*remainder >= ZoomStep {
		return zoom + ZoomStep - remainder
	}
	return zoom - remainder
}
