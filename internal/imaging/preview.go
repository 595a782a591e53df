package imaging

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"
)

// DefaultOutlineColor is the outline color used when a preview request
// does not specify one.
const DefaultOutlineColor = "#ff3b30"

// outlineThickness is the border width of a preview outline in pixels.
const outlineThickness = 2

// OverlayResult contains an image with region outlines drawn on it,
// encoded as base64 PNG.
type OverlayResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Regions     int    `json:"regions"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// RegionOverlay draws the outline of each rect onto a copy of img, so a
// client can inspect where redaction will land before applying it. The
// source image is never modified. Rects are clamped to the image; fully
// off-image rects are skipped but still counted in the result.
//
// colorHex is a "#RRGGBB" outline color; empty selects DefaultOutlineColor.
func RegionOverlay(img image.Image, rects []image.Rectangle, colorHex string) (*OverlayResult, error) {
	if colorHex == "" {
		colorHex = DefaultOutlineColor
	}
	c, err := colorful.Hex(colorHex)
	if err != nil {
		return nil, fmt.Errorf("invalid outline color %q: %w", colorHex, err)
	}
	r8, g8, b8 := c.RGB255()
	outline := color.NRGBA{R: r8, G: g8, B: b8, A: 255}

	out := imaging.Clone(img)
	bounds := out.Bounds()
	for _, r := range rects {
		rc := r.Intersect(bounds)
		if rc.Empty() {
			continue
		}
		drawOutline(out, rc, outline)
	}

	encoded, err := EncodePNGBase64(out)
	if err != nil {
		return nil, err
	}

	return &OverlayResult{
		Width:       bounds.Dx(),
		Height:      bounds.Dy(),
		Regions:     len(rects),
		ImageBase64: encoded,
		MimeType:    "image/png",
	}, nil
}

// drawOutline draws a border just inside r. Borders collapse inward when
// the rect is thinner than twice the outline thickness.
func drawOutline(img *image.NRGBA, r image.Rectangle, c color.NRGBA) {
	t := outlineThickness
	for y := r.Min.Y; y < r.Max.Y; y++ {
		nearEdgeY := y < r.Min.Y+t || y >= r.Max.Y-t
		for x := r.Min.X; x < r.Max.X; x++ {
			if nearEdgeY || x < r.Min.X+t || x >= r.Max.X-t {
				img.SetNRGBA(x, y, c)
			}
		}
	}
}
