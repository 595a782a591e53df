package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/imgio"
)

// DefaultJPEGQuality is used when a caller does not supply a quality, or
// supplies one outside [1,100].
const DefaultJPEGQuality = 90

// Save writes img to path, picking the encoder from the file extension.
// ".png" writes PNG (jpegQuality ignored); ".jpg"/".jpeg" writes JPEG at
// the given quality. Any other extension is an error: a redacted photo
// silently saved in an unexpected format is worse than a failed save.
func Save(img image.Image, path string, jpegQuality int) error {
	if jpegQuality < 1 || jpegQuality > 100 {
		jpegQuality = DefaultJPEGQuality
	}

	var enc imgio.Encoder
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		enc = imgio.PNGEncoder()
	case ".jpg", ".jpeg":
		enc = imgio.JPEGEncoder(jpegQuality)
	default:
		return fmt.Errorf("unsupported output format %q (use .png, .jpg or .jpeg)", filepath.Ext(path))
	}

	if err := imgio.Save(path, img, enc); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}

// EncodePNGBase64 encodes img as a base64 PNG string for inline tool
// results.
func EncodePNGBase64(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("failed to encode image: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
