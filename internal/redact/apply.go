package redact

import (
	"image"

	"github.com/disintegration/imaging"
)

// ApplyEffect returns a full-size copy of img with e applied to the pixels
// inside rect. Pixels outside rect are untouched and img itself is never
// modified, so a caller can apply several independent effects to the same
// source image.
//
// The rect is clamped to the image bounds first. If the intersection is
// empty (degenerate rect, or a box entirely outside the image) the result
// is a plain copy: invalid geometry is a no-op, not an error.
func ApplyEffect(img image.Image, rect image.Rectangle, e Effect) (*image.NRGBA, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return applyEffect(imaging.Clone(img), rect, e), nil
}

// applyEffect applies a validated effect to an owned working image. It may
// modify img in place or return a replacement; callers must hand over
// ownership and use only the returned image.
func applyEffect(img *image.NRGBA, rect image.Rectangle, e Effect) *image.NRGBA {
	r := rect.Intersect(img.Bounds())
	if r.Empty() {
		return img
	}

	switch e.Kind {
	case EffectGaussian:
		sub := imaging.Crop(img, r)
		return imaging.Paste(img, StackBlur(sub, e.Radius), r.Min)
	case EffectPixelate:
		return pixelate(img, r, e.BlockSize)
	case EffectBlackBox:
		return fillBlack(img, r)
	}
	return img
}

// pixelate partitions r into blockSize x blockSize cells aligned to the
// rect origin (edge cells are clipped) and floods each cell with the color
// of its top-left source pixel. Single-sample on purpose: averaging the
// cell would change the visual output this tool is expected to produce.
func pixelate(img *image.NRGBA, r image.Rectangle, blockSize int) *image.NRGBA {
	for by := r.Min.Y; by < r.Max.Y; by += blockSize {
		for bx := r.Min.X; bx < r.Max.X; bx += blockSize {
			si := img.PixOffset(bx, by)
			cr := img.Pix[si]
			cg := img.Pix[si+1]
			cb := img.Pix[si+2]
			ca := img.Pix[si+3]

			maxX := bx + blockSize
			if maxX > r.Max.X {
				maxX = r.Max.X
			}
			maxY := by + blockSize
			if maxY > r.Max.Y {
				maxY = r.Max.Y
			}

			for y := by; y < maxY; y++ {
				i := img.PixOffset(bx, y)
				for x := bx; x < maxX; x++ {
					img.Pix[i] = cr
					img.Pix[i+1] = cg
					img.Pix[i+2] = cb
					img.Pix[i+3] = ca
					i += 4
				}
			}
		}
	}
	return img
}

// fillBlack sets RGB to zero inside r, leaving alpha as it was.
func fillBlack(img *image.NRGBA, r image.Rectangle) *image.NRGBA {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		i := img.PixOffset(r.Min.X, y)
		for x := r.Min.X; x < r.Max.X; x++ {
			img.Pix[i] = 0
			img.Pix[i+1] = 0
			img.Pix[i+2] = 0
			i += 4
		}
	}
	return img
}
