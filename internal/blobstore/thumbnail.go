// Thumbnail derivation for image payloads.

package blobstore

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"math"
	"strings"

	_ "image/gif"
	_ "image/png"

	"golang.org/x/image/draw"
)

// thumbnailQuality is the fixed JPEG quality for derived thumbnails.
const thumbnailQuality = 70

// DeriveThumbnail decodes an image payload, scales it to fit within
// maxWidth x maxHeight preserving aspect ratio, and re-encodes it as JPEG.
//
// The larger dimension is capped at its max and the other scales
// proportionally with rounding; images already within bounds keep their
// size but are still re-encoded. Non-image MIME types return (nil, nil)
// without touching the payload.
func DeriveThumbnail(data []byte, mimeType string, maxWidth, maxHeight int) ([]byte, error) {
	if !strings.HasPrefix(mimeType, "image/") {
		return nil, nil
	}
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := src.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width > height {
		if width > maxWidth {
			// Extreme aspect ratios round to 0; keep at least one pixel.
			height = max(1, int(math.Round(float64(height)*float64(maxWidth)/float64(width))))
			width = maxWidth
		}
	} else {
		if height > maxHeight {
			width = max(1, int(math.Round(float64(width)*float64(maxHeight)/float64(height))))
			height = maxHeight
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Src, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: thumbnailQuality}); err != nil {
		return nil, fmt.Errorf("failed to encode thumbnail: %w", err)
	}
	return buf.Bytes(), nil
}
