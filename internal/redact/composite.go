package redact

import (
	"context"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Composite applies regions to img strictly in the order given, each region
// operating on the output of the previous one. Overlapping regions therefore
// layer: the last one applied wins in the overlap. The engine never sorts or
// deduplicates the list.
//
// The input image and region slice are never modified. An empty region list
// returns a plain copy. Regions whose boxes clamp to nothing are skipped and
// composition continues; only a malformed effect fails the call, and it does
// so before any pixels are touched.
//
// Large images make this CPU-bound for tens to hundreds of milliseconds, so
// interactive callers should run it off their event loop. ctx is checked
// between regions; a canceled context returns ctx.Err() and no image.
func Composite(ctx context.Context, img image.Image, regions []Region) (*image.NRGBA, error) {
	for _, reg := range regions {
		if err := reg.Effect.Validate(); err != nil {
			return nil, fmt.Errorf("region %s: %w", reg.ID, err)
		}
	}

	out := imaging.Clone(img)
	for _, reg := range regions {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		out = applyEffect(out, reg.Bounds, reg.Effect)
	}
	return out, nil
}
