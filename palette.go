package chromix

import "github.com/google/uuid"

// Palette is a named, ordered collection of blobs representing one saved
// color-mixing state (a "mixing dish"). Palettes may be linked into a forest
// through parent/child references used by color-change propagation; the
// links are back-references only — ownership stays with the PaletteStore.
type Palette struct {
	id       uuid.UUID
	name     string
	blobs    []Blob
	parent   *Palette
	children []*Palette
}

// NewPalette creates a palette with a fresh identity and a deep copy of the
// given blob list.
func NewPalette(name string, blobs []Blob) *Palette {
	return &Palette{
		id:    uuid.New(),
		name:  name,
		blobs: cloneBlobs(blobs),
	}
}

// ID returns the palette's stable identity.
func (p *Palette) ID() uuid.UUID { return p.id }

// Name returns the palette name.
func (p *Palette) Name() string { return p.name }

// SetName renames the palette.
func (p *Palette) SetName(name string) { p.name = name }

// Blobs returns a deep copy of the palette's blob list.
func (p *Palette) Blobs() []Blob { return cloneBlobs(p.blobs) }

// SetBlobs replaces the palette's blob list with a deep copy of blobs.
func (p *Palette) SetBlobs(blobs []Blob) { p.blobs = cloneBlobs(blobs) }

// Len returns the number of blobs.
func (p *Palette) Len() int { return len(p.blobs) }

// Parent returns the parent palette, or nil for a root.
func (p *Palette) Parent() *Palette { return p.parent }

// Children returns the palette's direct children.
func (p *Palette) Children() []*Palette {
	out := make([]*Palette, len(p.children))
	copy(out, p.children)
	return out
}

// adopt links child under p. The child holds a back-reference only; it does
// not own the parent.
func (p *Palette) adopt(child *Palette) {
	child.parent = p
	p.children = append(p.children, child)
}

// Clone returns a palette with the same identity, name and a deep copy of
// the blobs. Parent/child links are not cloned; the copy stands alone.
func (p *Palette) Clone() *Palette {
	return &Palette{
		id:    p.id,
		name:  p.name,
		blobs: cloneBlobs(p.blobs),
	}
}

// AverageColor returns the plain average of all blob colors, or black for an
// empty palette. Used for palette swatch previews.
func (p *Palette) AverageColor() RGB {
	if len(p.blobs) == 0 {
		return RGB{}
	}
	var sum RGB
	for i := range p.blobs {
		sum.R += p.blobs[i].Color.R
		sum.G += p.blobs[i].Color.G
		sum.B += p.blobs[i].Color.B
	}
	n := float64(len(p.blobs))
	return RGB{R: sum.R / n, G: sum.G / n, B: sum.B / n}
}
