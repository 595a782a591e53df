// Package redact implements the region-compositing redaction engine: it
// takes a decoded image plus an ordered list of rectangular regions, each
// tagged with an effect, and produces a new image with every region
// visually obscured.
//
// # Effects
//
// Three effects are supported, as a closed set:
//   - Gaussian: stack blur approximation of a Gaussian blur (see StackBlur)
//   - Pixelate: top-left-sampled uniform blocks aligned to the region origin
//   - BlackBox: solid black fill, alpha preserved
//
// # Coordinate System
//
// Region bounds use image.Rectangle semantics: Min inclusive, Max exclusive,
// origin at the top-left, in source-image pixel coordinates. Boxes are
// clamped to the image before use; a box that clamps to nothing is a no-op
// for that region only.
//
// # Ownership
//
// Every entry point returns a newly allocated image and never mutates its
// inputs. There is no state shared between calls, so the engine is safe to
// invoke from any goroutine; callers with a responsive event loop should
// still offload calls, since compositing a large photo is CPU-bound work.
//
// History is the exception: it is a stateful per-session value and must not
// be mutated concurrently.
package redact
