package redact

import "image"

// StackBlur approximates a Gaussian blur of img using the stack blur
// algorithm: a separable, two-pass moving-sum box blur with triangular
// weighting. Cost is O(W*H) regardless of radius, which is what makes it
// usable on large photos where a true Gaussian convolution is not.
//
// Parameters:
//   - img: Source image. Never modified.
//   - radius: Blur radius in pixels. The effective window is 2*radius+1 wide.
//
// Returns a new image with the same dimensions as img. A radius below 1
// returns img unchanged (identity, not an error). A zero-area image is
// returned as an empty image of the same bounds.
//
// # Algorithm
//
// Each pass slides a (2*radius+1) window along one axis keeping a running
// weighted sum per channel, where the center pixel contributes radius+1 and
// the contribution falls off linearly to 1 at the window edges. The sum is
// maintained incrementally from "incoming" and "outgoing" partial sums, so
// each pixel costs O(1). Averaging uses a lookup table of size 256*(radius+1)^2
// instead of a division per pixel.
//
// Reads past the image edge clamp to the nearest edge pixel (replicate
// boundary). The alpha channel is copied through untouched: blurring affects
// RGB only, so region transparency survives redaction.
func StackBlur(img *image.NRGBA, radius int) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w < 1 || h < 1 {
		return image.NewNRGBA(image.Rect(0, 0, w, h))
	}
	if radius < 1 {
		return img
	}

	div := 2*radius + 1
	divSum := (radius + 1) * (radius + 1) // triangular weights sum to (radius+1)^2
	dv := make([]uint8, 256*divSum)
	for i := range dv {
		dv[i] = uint8(i / divSum)
	}

	tmp := image.NewNRGBA(image.Rect(0, 0, w, h))
	out := image.NewNRGBA(image.Rect(0, 0, w, h))

	stackR := make([]int, div)
	stackG := make([]int, div)
	stackB := make([]int, div)

	// Horizontal pass: img -> tmp.
	for y := 0; y < h; y++ {
		row := img.Pix[img.PixOffset(b.Min.X, b.Min.Y+y):]
		dst := tmp.Pix[y*tmp.Stride:]

		var sumR, sumG, sumB int
		var inR, inG, inB int
		var outR, outG, outB int

		for i := -radius; i <= radius; i++ {
			x := clampInt(i, 0, w-1)
			r := int(row[x*4])
			g := int(row[x*4+1])
			bb := int(row[x*4+2])
			sp := i + radius
			stackR[sp], stackG[sp], stackB[sp] = r, g, bb
			weight := radius + 1 - abs(i)
			sumR += r * weight
			sumG += g * weight
			sumB += bb * weight
			if i > 0 {
				inR += r
				inG += g
				inB += bb
			} else {
				outR += r
				outG += g
				outB += bb
			}
		}

		sp := radius
		for x := 0; x < w; x++ {
			dst[x*4] = dv[sumR]
			dst[x*4+1] = dv[sumG]
			dst[x*4+2] = dv[sumB]
			dst[x*4+3] = row[x*4+3]

			sumR -= outR
			sumG -= outG
			sumB -= outB

			tail := (sp - radius + div) % div
			outR -= stackR[tail]
			outG -= stackG[tail]
			outB -= stackB[tail]

			nx := clampInt(x+radius+1, 0, w-1)
			stackR[tail] = int(row[nx*4])
			stackG[tail] = int(row[nx*4+1])
			stackB[tail] = int(row[nx*4+2])
			inR += stackR[tail]
			inG += stackG[tail]
			inB += stackB[tail]

			sumR += inR
			sumG += inG
			sumB += inB

			sp = (sp + 1) % div
			outR += stackR[sp]
			outG += stackG[sp]
			outB += stackB[sp]
			inR -= stackR[sp]
			inG -= stackG[sp]
			inB -= stackB[sp]
		}
	}

	// Vertical pass: tmp -> out.
	for x := 0; x < w; x++ {
		var sumR, sumG, sumB int
		var inR, inG, inB int
		var outR, outG, outB int

		for i := -radius; i <= radius; i++ {
			y := clampInt(i, 0, h-1)
			p := tmp.Pix[y*tmp.Stride+x*4:]
			r, g, bb := int(p[0]), int(p[1]), int(p[2])
			sp := i + radius
			stackR[sp], stackG[sp], stackB[sp] = r, g, bb
			weight := radius + 1 - abs(i)
			sumR += r * weight
			sumG += g * weight
			sumB += bb * weight
			if i > 0 {
				inR += r
				inG += g
				inB += bb
			} else {
				outR += r
				outG += g
				outB += bb
			}
		}

		sp := radius
		for y := 0; y < h; y++ {
			di := y*out.Stride + x*4
			out.Pix[di] = dv[sumR]
			out.Pix[di+1] = dv[sumG]
			out.Pix[di+2] = dv[sumB]
			out.Pix[di+3] = tmp.Pix[y*tmp.Stride+x*4+3]

			sumR -= outR
			sumG -= outG
			sumB -= outB

			tail := (sp - radius + div) % div
			outR -= stackR[tail]
			outG -= stackG[tail]
			outB -= stackB[tail]

			ny := clampInt(y+radius+1, 0, h-1)
			p := tmp.Pix[ny*tmp.Stride+x*4:]
			stackR[tail] = int(p[0])
			stackG[tail] = int(p[1])
			stackB[tail] = int(p[2])
			inR += stackR[tail]
			inG += stackG[tail]
			inB += stackB[tail]

			sumR += inR
			sumG += inG
			sumB += inB

			sp = (sp + 1) % div
			outR += stackR[sp]
			outG += stackG[sp]
			outB += stackB[sp]
			inR -= stackR[sp]
			inG -= stackG[sp]
			inB -= stackB[sp]
		}
	}

	return out
}

// clampInt constrains an integer value to the range [min, max].
// Used for replicate-edge boundary handling in the blur passes.
func clampInt(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
