// Package imaging holds the I/O collaborators around the redaction core:
// loading and caching decoded photos, saving composited output, and
// rendering region-outline previews.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with the origin at the top-left corner,
// X increasing rightward and Y increasing downward. Regions follow
// image.Rectangle semantics: Min inclusive, Max exclusive.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. The remaining functions are
// stateless; they never mutate their input images and can run concurrently
// on different images.
//
// # Error Handling
//
// Functions return errors for file I/O failures, undecodable images,
// unsupported output extensions and malformed color strings. They do not
// validate region geometry; the redaction core clamps boxes itself.
package imaging
