package chromix

// Blob is a colored, positioned, radius-bearing influence source on the
// mixing canvas. Blobs are plain values; a blob's identity is its index in
// the palette's blob list.
type Blob struct {
	// Position is the blob center on the canvas.
	Position Point

	// Color is the blob's paint color in sRGB.
	Color RGB

	// Radius is the blob's visible radius. The influence field extends
	// beyond it, up to the falloff cutoff.
	Radius float64
}

// Contains reports whether p falls within the blob's visible radius.
// This is the hit test used for drag, recolor and delete interactions.
func (b Blob) Contains(p Point) bool {
	return b.Position.Distance(p) <= b.Radius
}

// cloneBlobs returns a fresh copy of a blob list. History snapshots and
// store reads must never share backing storage with the live list.
func cloneBlobs(blobs []Blob) []Blob {
	if blobs == nil {
		return nil
	}
	out := make([]Blob, len(blobs))
	copy(out, blobs)
	return out
}
