package redact

import "fmt"

// Default effect parameters, used when a caller does not supply its own.
const (
	DefaultBlurRadius = 25
	DefaultBlockSize  = 20
)

// EffectKind identifies one of the supported redaction effects.
// The set is closed; anything else is rejected by Effect.Validate.
type EffectKind string

const (
	// EffectGaussian blurs the region with a stack blur approximation
	// of a Gaussian blur.
	EffectGaussian EffectKind = "gaussian"

	// EffectPixelate replaces the region with a grid of uniform blocks,
	// each filled with the color of its top-left source pixel.
	EffectPixelate EffectKind = "pixelate"

	// EffectBlackBox fills the region with solid black.
	EffectBlackBox EffectKind = "blackbox"
)

// Effect is a redaction effect with its per-kind parameters.
// Only the field matching Kind is meaningful; the others are ignored.
type Effect struct {
	Kind      EffectKind `json:"kind"`
	Radius    int        `json:"radius,omitempty"`
	BlockSize int        `json:"block_size,omitempty"`
}

// Gaussian returns a blur effect with the given radius.
// A radius below 1 is valid and acts as the identity.
func Gaussian(radius int) Effect {
	return Effect{Kind: EffectGaussian, Radius: radius}
}

// Pixelate returns a pixelation effect with the given block size.
func Pixelate(blockSize int) Effect {
	return Effect{Kind: EffectPixelate, BlockSize: blockSize}
}

// BlackBox returns a solid black fill effect.
func BlackBox() Effect {
	return Effect{Kind: EffectBlackBox}
}

// Validate reports whether the effect is well formed. It is called before
// any pixel work so that a malformed effect fails the whole operation up
// front rather than deep inside a blur pass.
func (e Effect) Validate() error {
	switch e.Kind {
	case EffectGaussian:
		if e.Radius < 0 {
			return fmt.Errorf("gaussian radius must be >= 0, got %d", e.Radius)
		}
	case EffectPixelate:
		if e.BlockSize < 1 {
			return fmt.Errorf("pixelate block size must be >= 1, got %d", e.BlockSize)
		}
	case EffectBlackBox:
		// No parameters.
	default:
		return fmt.Errorf("unknown effect kind: %q", e.Kind)
	}
	return nil
}
