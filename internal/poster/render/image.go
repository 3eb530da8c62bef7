package render

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/example/schedule-studio/internal/poster"
)

// DecodeDataURL reads a user supplied data URL (PNG or JPEG) into pixels,
// enforcing the byte cap before any decoding happens.
func DecodeDataURL(dataURL string, maxBytes int64) (image.Image, error) {
	payload, err := dataURLPayload(dataURL)
	if err != nil {
		return nil, err
	}

	// The cap applies to the encoded upload, mirroring the client side check.
	if maxBytes > 0 && int64(base64.StdEncoding.DecodedLen(len(payload))) > maxBytes {
		return nil, ErrImageTooLarge
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImageDecode, err)
	}
	if maxBytes > 0 && int64(len(raw)) > maxBytes {
		return nil, ErrImageTooLarge
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImageDecode, err)
	}
	return img, nil
}

func dataURLPayload(dataURL string) (string, error) {
	if !strings.HasPrefix(dataURL, "data:") {
		return "", fmt.Errorf("%w: not a data URL", ErrImageDecode)
	}
	comma := strings.IndexByte(dataURL, ',')
	if comma < 0 {
		return "", fmt.Errorf("%w: missing data URL payload", ErrImageDecode)
	}
	meta := dataURL[len("data:"):comma]
	if !strings.Contains(meta, ";base64") {
		return "", fmt.Errorf("%w: data URL is not base64 encoded", ErrImageDecode)
	}
	mediaType := meta[:strings.IndexByte(meta+";", ';')]
	switch mediaType {
	case "image/png", "image/jpeg":
	default:
		return "", fmt.Errorf("%w: unsupported media type %q", ErrImageDecode, mediaType)
	}
	return dataURL[comma+1:], nil
}

// coverResize scales and crops the image to fill the target box, keeping
// the centre visible. Equivalent to background-size cover with center
// positioning.
func coverResize(img image.Image, width, height int) image.Image {
	return imaging.Fill(img, width, height, imaging.Center, imaging.Lanczos)
}

// applyFilters runs the background adjustments over the paint layer. The
// values use the CSS convention where 100 is identity.
func applyFilters(img image.Image, filters poster.Filters) image.Image {
	out := img

	if filters.Brightness != 100 {
		out = imaging.AdjustBrightness(out, float64(filters.Brightness-100))
	}
	if filters.Contrast != 100 {
		out = imaging.AdjustContrast(out, float64(filters.Contrast-100))
	}
	if filters.Saturation != 100 {
		out = imaging.AdjustSaturation(out, float64(filters.Saturation-100))
	}
	if filters.Blur > 0 {
		// Blur is specified in CSS pixels; scale it with the supersample so
		// the exported softness matches the preview.
		out = imaging.Blur(out, float64(filters.Blur*Supersample)/2)
	}

	return out
}
