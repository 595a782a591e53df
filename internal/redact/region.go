package redact

import (
	"image"

	"github.com/google/uuid"
)

// Source records where a region came from. The redaction engine itself
// treats it as informational; it exists so consumers can distinguish
// detector output from manual placements.
type Source string

const (
	SourceAutoFace  Source = "auto-face"
	SourceAutoID    Source = "auto-id"
	SourceAutoPlate Source = "auto-plate"
	SourceManual    Source = "manual"
)

// Region is the unit of redaction: a bounding box in source-image pixel
// coordinates, the effect to apply inside it, and its provenance.
//
// Regions are plain values. A []Region passed to Composite is never
// mutated by this package.
type Region struct {
	ID     uuid.UUID
	Bounds image.Rectangle
	Effect Effect
	Source Source
}

// NewRegion creates a region with a fresh unique id.
func NewRegion(bounds image.Rectangle, effect Effect, source Source) Region {
	return Region{
		ID:     uuid.New(),
		Bounds: bounds,
		Effect: effect,
		Source: source,
	}
}
