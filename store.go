package chromix

import "errors"

// ErrPaletteIndex is returned for an out-of-range palette index.
var ErrPaletteIndex = errors.New("chromix: palette index out of range")

// PaletteStore is the central owner of saved palettes. One palette may be
// active (loaded for editing) and one is the last-saved target for updates;
// both indices are -1 when unset. Deleting a palette renumbers the indices
// and clears them if they pointed at the removed entry.
type PaletteStore struct {
	palettes       []*Palette
	activeIndex    int
	lastSavedIndex int
}

// NewPaletteStore creates an empty store with no active palette.
func NewPaletteStore() *PaletteStore {
	return &PaletteStore{activeIndex: -1, lastSavedIndex: -1}
}

// Len returns the number of stored palettes.
func (s *PaletteStore) Len() int { return len(s.palettes) }

// ActiveIndex returns the active palette index, or -1 when none.
func (s *PaletteStore) ActiveIndex() int { return s.activeIndex }

// LastSavedIndex returns the last-saved palette index, or -1 when none.
func (s *PaletteStore) LastSavedIndex() int { return s.lastSavedIndex }

// Palette returns the palette at index i.
func (s *PaletteStore) Palette(i int) (*Palette, error) {
	if i < 0 || i >= len(s.palettes) {
		return nil, ErrPaletteIndex
	}
	return s.palettes[i], nil
}

// AddPalette appends a new palette built from a deep copy of blobs. When
// markActive is set, the new entry becomes both the active and the
// last-saved palette.
func (s *PaletteStore) AddPalette(name string, blobs []Blob, markActive bool) *Palette {
	p := NewPalette(name, blobs)
	s.palettes = append(s.palettes, p)
	if markActive {
		s.activeIndex = len(s.palettes) - 1
		s.lastSavedIndex = s.activeIndex
	}
	return p
}

// AddChildPalette appends a new palette linked as a child of the palette at
// parentIndex, for color-change propagation.
func (s *PaletteStore) AddChildPalette(parentIndex int, name string, blobs []Blob, markActive bool) (*Palette, error) {
	parent, err := s.Palette(parentIndex)
	if err != nil {
		return nil, err
	}
	p := s.AddPalette(name, blobs, markActive)
	parent.adopt(p)
	return p, nil
}

// UpdateActivePalette overwrites the blob list of the last-saved palette
// with a deep copy of blobs, then propagates any color changes to its
// descendants. Reports false, with a warning, when no palette has been
// saved yet — a no-op, not a fault.
func (s *PaletteStore) UpdateActivePalette(blobs []Blob) bool {
	if s.lastSavedIndex < 0 || s.lastSavedIndex >= len(s.palettes) {
		Logger().Warn("palette update skipped: no saved palette to update")
		return false
	}
	p := s.palettes[s.lastSavedIndex]
	original := p.blobs
	p.blobs = cloneBlobs(blobs)
	s.PropagateColorChanges(p, original)
	return true
}

// SelectPalette marks the palette at index i active and returns a deep copy
// of its blob list for the editing session to load.
func (s *PaletteStore) SelectPalette(i int) ([]Blob, error) {
	if i < 0 || i >= len(s.palettes) {
		return nil, ErrPaletteIndex
	}
	s.activeIndex = i
	s.lastSavedIndex = i
	return cloneBlobs(s.palettes[i].blobs), nil
}

// DeletePalette removes the entry at index i. When the removed palette was
// active, a replacement is chosen — the entry now occupying the same index,
// else the last remaining entry — marked active, and returned so the caller
// can load it. A nil replacement with a nil error means either the store is
// now empty or the deleted palette was not the active one; check Len to
// distinguish.
func (s *PaletteStore) DeletePalette(i int) (*Palette, error) {
	if i < 0 || i >= len(s.palettes) {
		return nil, ErrPaletteIndex
	}

	deleted := s.palettes[i]
	s.palettes = append(s.palettes[:i], s.palettes[i+1:]...)
	s.detach(deleted)

	wasActive := s.activeIndex == i
	s.activeIndex = shiftIndex(s.activeIndex, i)
	s.lastSavedIndex = shiftIndex(s.lastSavedIndex, i)

	if !wasActive {
		return nil, nil
	}
	if len(s.palettes) == 0 {
		s.activeIndex = -1
		s.lastSavedIndex = -1
		return nil, nil
	}

	next := i
	if next >= len(s.palettes) {
		next = len(s.palettes) - 1
	}
	s.activeIndex = next
	s.lastSavedIndex = next
	return s.palettes[next], nil
}

// detach unlinks a removed palette from the propagation forest. Its children
// become roots; they are not reparented.
func (s *PaletteStore) detach(p *Palette) {
	if p.parent != nil {
		siblings := p.parent.children
		for j, c := range siblings {
			if c == p {
				p.parent.children = append(siblings[:j], siblings[j+1:]...)
				break
			}
		}
		p.parent = nil
	}
	for _, c := range p.children {
		c.parent = nil
	}
	p.children = nil
}

// shiftIndex renumbers a stored index after removing entry at removed.
// The index is cleared (-1) when it pointed at the removed entry.
func shiftIndex(idx, removed int) int {
	switch {
	case idx == removed:
		return -1
	case idx > removed:
		return idx - 1
	default:
		return idx
	}
}

// PropagateColorChanges walks the palette's descendants and overwrites, for
// every blob index whose color differs between original and the palette's
// current blob list, that same index's color in each descendant. Position
// and radius are left untouched.
//
// Propagation is index-aligned, not by blob identity: a child whose blob
// list has been reordered or resized independently of the parent will
// receive colors at the original indices, which may land on different
// blobs. This mirrors the source tool's behavior and is a documented
// limitation.
func (s *PaletteStore) PropagateColorChanges(p *Palette, original []Blob) {
	if p == nil || len(p.children) == 0 {
		return
	}

	n := len(original)
	if len(p.blobs) < n {
		n = len(p.blobs)
	}
	type change struct {
		index int
		color RGB
	}
	var changes []change
	for i := 0; i < n; i++ {
		if original[i].Color != p.blobs[i].Color {
			changes = append(changes, change{index: i, color: p.blobs[i].Color})
		}
	}
	if len(changes) == 0 {
		return
	}

	var apply func(node *Palette)
	apply = func(node *Palette) {
		for _, c := range node.children {
			for _, ch := range changes {
				if ch.index < len(c.blobs) {
					c.blobs[ch.index].Color = ch.color
				}
			}
			apply(c)
		}
	}
	apply(p)
}

// Snapshot returns standalone deep copies of every stored palette, in order.
// Intended for the auto-save collaborator: the caller gets a consistent view
// that cannot race with later mutations.
func (s *PaletteStore) Snapshot() []*Palette {
	out := make([]*Palette, len(s.palettes))
	for i, p := range s.palettes {
		out[i] = p.Clone()
	}
	return out
}
