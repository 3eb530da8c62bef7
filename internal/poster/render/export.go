package render

import (
	"bytes"
	"fmt"
	"image/png"
	"strings"

	"github.com/example/schedule-studio/internal/poster"
)

// Export is a finished download: a PNG payload and its suggested filename.
type Export struct {
	Filename string
	Data     []byte
}

// ExportPNG renders the poster and encodes it losslessly. PNG keeps the
// alpha channel, so a paint-free background stays transparent in the file.
func (r *Renderer) ExportPNG(content Content, data poster.Data) (Export, error) {
	img, err := r.Render(content, data)
	if err != nil {
		return Export{}, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return Export{}, fmt.Errorf("render: encode png: %w", err)
	}

	return Export{Filename: Filename(content.Title), Data: buf.Bytes()}, nil
}

// Filename derives the download name from the schedule title, replacing
// whitespace runs with dashes. An empty title falls back to a generic name.
func Filename(title string) string {
	cleaned := strings.Join(strings.Fields(title), "-")
	if cleaned == "" {
		return "Poster-Schedule.png"
	}
	return cleaned + "-Schedule.png"
}
