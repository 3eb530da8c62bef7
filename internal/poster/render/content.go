package render

import (
	"fmt"
	"strings"

	"github.com/fogleman/gg"

	"github.com/example/schedule-studio/internal/poster"
)

// CSS pixel sizes of the fixed content sections; the title size comes from
// the text settings.
const (
	labelFontPx   = 9
	dateFontPx    = 12
	contentFontPx = 14
	lineupFontPx  = 12
	paddingRatio  = 0.08
)

// paintContent lays out the poster sections top to bottom: date badge,
// pre-title label, title, description, location, assignee lineup. Sections
// are skipped according to the visibility flags or when their data is
// absent.
func (r *Renderer) paintContent(dc *gg.Context, content Content, text poster.Text, width, height int) error {
	pad := float64(width) * paddingRatio
	maxWidth := float64(width) - 2*pad

	titleColor, ok := parseHexRGBA(text.Title.Color)
	if !ok {
		return fmt.Errorf("render: invalid title color %q", text.Title.Color)
	}
	contentColor, ok := parseHexRGBA(text.Content.Color)
	if !ok {
		return fmt.Errorf("render: invalid content color %q", text.Content.Color)
	}

	anchorX, alignX := alignment(text.Title.Align, pad, float64(width))
	contentAnchorX, contentAlignX := alignment(text.Content.Align, pad, float64(width))

	cursor := pad

	if text.ShowDate && !content.Date.IsZero() {
		dateFace := r.face(700, dateFontPx*Supersample)
		dc.SetFontFace(dateFace)
		dc.SetRGBA(float64(titleColor.R)/255, float64(titleColor.G)/255, float64(titleColor.B)/255, 1)
		weekday := content.Date.Format("Monday")
		dc.DrawStringAnchored(weekday, alignX, cursor+dateFontPx*Supersample/2, anchorX, 0.5)
		cursor += dateFontPx * Supersample * 1.4

		dc.SetRGBA(float64(titleColor.R)/255, float64(titleColor.G)/255, float64(titleColor.B)/255, 0.7)
		stamp := content.Date.Format("January 2, 2006") + " · " + content.Date.Format("3:04 PM")
		dc.DrawStringAnchored(stamp, alignX, cursor+dateFontPx*Supersample/2, anchorX, 0.5)
		cursor += dateFontPx * Supersample * 2
	}

	// Lineup block height is measured first so the middle block can centre
	// itself in the remaining space.
	lineup := content.Lineup
	if !text.ShowAssignees {
		lineup = nil
	}
	lineupHeight := float64(len(lineup)) * lineupFontPx * Supersample * 1.6

	middleBottom := float64(height) - pad - lineupHeight
	if middleBottom < cursor {
		middleBottom = cursor
	}

	titleSize := float64(text.Title.FontSize) * Supersample
	titleFace := r.face(text.Title.FontWeight, titleSize)
	dc.SetFontFace(titleFace)
	titleLines := dc.WordWrap(content.Title, maxWidth)

	var descriptionLines, locationLine []string
	contentFace := r.face(400, contentFontPx*Supersample)
	if text.ShowDescription && content.Description != "" {
		dc.SetFontFace(contentFace)
		descriptionLines = dc.WordWrap(content.Description, maxWidth)
	}
	if content.Location != "" {
		locationLine = []string{content.Location}
	}

	labelHeight := labelFontPx * Supersample * 2.0
	titleHeight := float64(len(titleLines)) * titleSize * 1.15
	descHeight := float64(len(descriptionLines)) * contentFontPx * Supersample * 1.5
	locHeight := float64(len(locationLine)) * contentFontPx * Supersample * 1.5
	middleHeight := labelHeight + titleHeight + descHeight + locHeight

	middleTop := cursor + (middleBottom-cursor-middleHeight)/2
	if middleTop < cursor {
		middleTop = cursor
	}
	y := middleTop

	labelFace := r.face(700, labelFontPx*Supersample)
	dc.SetFontFace(labelFace)
	dc.SetRGBA(float64(titleColor.R)/255, float64(titleColor.G)/255, float64(titleColor.B)/255, 0.6)
	dc.DrawStringAnchored("S C H E D U L E", alignX, y+labelFontPx*Supersample/2, anchorX, 0.5)
	y += labelHeight

	dc.SetFontFace(titleFace)
	spacing := text.Title.LetterSpacing * titleSize
	for _, line := range titleLines {
		baseline := y + titleSize
		if text.Title.Shadow {
			dc.SetRGBA(0, 0, 0, 0.3)
			drawSpacedString(dc, line, alignX, baseline+2*Supersample, anchorX, spacing)
			dc.SetRGBA(0, 0, 0, 0.2)
			drawSpacedString(dc, line, alignX, baseline+4*Supersample, anchorX, spacing)
		}
		dc.SetRGBA(float64(titleColor.R)/255, float64(titleColor.G)/255, float64(titleColor.B)/255, 1)
		drawSpacedString(dc, line, alignX, baseline, anchorX, spacing)
		y += titleSize * 1.15
	}

	dc.SetFontFace(contentFace)
	dc.SetRGBA(float64(contentColor.R)/255, float64(contentColor.G)/255, float64(contentColor.B)/255, text.Content.Opacity)
	for _, line := range descriptionLines {
		y += contentFontPx * Supersample * 1.5
		dc.DrawStringAnchored(line, contentAlignX, y, contentAnchorX, 0.5)
	}
	for _, line := range locationLine {
		y += contentFontPx * Supersample * 1.5
		dc.DrawStringAnchored("• "+line, contentAlignX, y, contentAnchorX, 0.5)
	}

	if len(lineup) > 0 {
		lineupFace := r.face(600, lineupFontPx*Supersample)
		dc.SetFontFace(lineupFace)
		rowY := float64(height) - pad - lineupHeight
		for _, entry := range lineup {
			rowY += lineupFontPx * Supersample * 1.6
			dc.SetRGBA(float64(titleColor.R)/255, float64(titleColor.G)/255, float64(titleColor.B)/255, 0.9)
			row := strings.ToUpper(entry.Role) + " · " + entry.Member
			dc.DrawStringAnchored(row, alignX, rowY-lineupFontPx*Supersample/2, anchorX, 0.5)
		}
	}

	return nil
}

// alignment maps a text alignment onto a gg anchor and x coordinate.
func alignment(align poster.Align, pad, width float64) (anchorX, x float64) {
	switch align {
	case poster.AlignLeft:
		return 0, pad
	case poster.AlignRight:
		return 1, width - pad
	default:
		return 0.5, width / 2
	}
}

// drawSpacedString renders a single line with per-rune letter spacing. A
// zero spacing falls back to the plain anchored draw.
func drawSpacedString(dc *gg.Context, line string, x, baseline, anchorX, spacing float64) {
	if spacing == 0 {
		dc.DrawStringAnchored(line, x, baseline, anchorX, 0)
		return
	}

	runes := []rune(line)
	total := 0.0
	for _, r := range runes {
		w, _ := dc.MeasureString(string(r))
		total += w
	}
	if len(runes) > 1 {
		total += spacing * float64(len(runes)-1)
	}

	cursor := x - anchorX*total
	for _, r := range runes {
		s := string(r)
		dc.DrawString(s, cursor, baseline)
		w, _ := dc.MeasureString(s)
		cursor += w + spacing
	}
}
