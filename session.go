package chromix

import (
	"math"
	"sync"
)

// Interaction defaults.
const (
	// DefaultBrushRadius is the radius given to newly placed blobs.
	DefaultBrushRadius = 30

	// DefaultRingRadius is the placement ring for AddBlobAuto.
	DefaultRingRadius = 0.3

	// placementSlots spaces automatically placed blobs around the ring:
	// each new blob advances by 2π/placementSlots.
	placementSlots = 5
)

// SampleHandler receives the blended color on every successful sample. The
// host wires it to whatever consumes sampled colors, typically a brush-color
// setter.
type SampleHandler func(RGB)

// Session is one active color-mixing editing session: the live blob list,
// its undo/redo history, the palette store, and the field compositor and
// renderer, all as explicit owned state. The host UI translates pointer
// events into the mutation methods below.
//
// All mutations are synchronous. A Session serializes its operations with a
// mutex so that a time-triggered export (Documents) observes a consistent
// state and never races an in-progress mutation; there is no background
// computation inside the session itself.
type Session struct {
	mu sync.Mutex

	store      *PaletteStore
	history    *HistoryStack
	compositor *Compositor
	renderer   *Renderer

	blobs []Blob

	brushColor   RGB
	brushRadius  float64
	colorHistory []RGB

	placementCenter Point
	ringRadius      float64
	historyLimit    int

	onSample SampleHandler
}

// NewSession creates an empty editing session.
func NewSession(opts ...Option) *Session {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	s := &Session{
		store:           NewPaletteStore(),
		history:         NewHistoryStack(o.historyLimit),
		compositor:      NewCompositor(opts...),
		renderer:        NewRenderer(opts...),
		brushColor:      Red,
		brushRadius:     o.brushRadius,
		placementCenter: o.placementCenter,
		ringRadius:      o.ringRadius,
		historyLimit:    o.historyLimit,
		onSample:        o.onSample,
	}
	s.history.Save(s.blobs)
	return s
}

// Store returns the session's palette store.
func (s *Session) Store() *PaletteStore { return s.store }

// Compositor returns the session's compositor.
func (s *Session) Compositor() *Compositor { return s.compositor }

// SetBrushColor sets the color for newly placed blobs.
func (s *Session) SetBrushColor(c RGB) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.brushColor = c
}

// BrushColor returns the color for newly placed blobs.
func (s *Session) BrushColor() RGB {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.brushColor
}

// SetBrushRadius sets the radius for newly placed blobs.
func (s *Session) SetBrushRadius(r float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r > 0 {
		s.brushRadius = r
	}
}

// Blobs returns a copy of the live blob list.
func (s *Session) Blobs() []Blob {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneBlobs(s.blobs)
}

// AddBlob places a blob at p with the given color and radius and records a
// history snapshot. A non-positive radius falls back to the brush radius.
func (s *Session) AddBlob(p Point, c RGB, radius float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if radius <= 0 {
		radius = s.brushRadius
	}
	s.blobs = append(s.blobs, Blob{Position: p, Color: c, Radius: radius})
	s.history.Save(s.blobs)
}

// AddBlobAuto places a blob of the given color automatically on the
// placement ring: with k blobs already present, the new blob lands at angle
// k·2π/5 around the ring center. Returns the chosen position.
func (s *Session) AddBlobAuto(c RGB) Point {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := float64(len(s.blobs))
	angle := math.Mod(k*2*math.Pi/placementSlots, 2*math.Pi)
	p := s.placementCenter.Add(Pt(
		s.ringRadius*math.Cos(angle),
		s.ringRadius*math.Sin(angle),
	))
	s.blobs = append(s.blobs, Blob{Position: p, Color: c, Radius: s.brushRadius})
	s.history.Save(s.blobs)
	return p
}

// BlobAt hit-tests the live blob list at p, newest first, and returns the
// index of the first blob whose visible radius contains the point.
func (s *Session) BlobAt(p Point) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := len(s.blobs) - 1; i >= 0; i-- {
		if s.blobs[i].Contains(p) {
			return i, true
		}
	}
	return 0, false
}

// MoveBlob repositions the blob at index i (a drag) and records a snapshot.
// Reports false for an out-of-range index.
func (s *Session) MoveBlob(i int, p Point) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.blobs) {
		return false
	}
	s.blobs[i].Position = p
	s.history.Save(s.blobs)
	return true
}

// RecolorBlob changes the color of the blob at index i and records a
// snapshot. Reports false for an out-of-range index.
func (s *Session) RecolorBlob(i int, c RGB) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.blobs) {
		return false
	}
	s.blobs[i].Color = c
	s.history.Save(s.blobs)
	return true
}

// DeleteBlob removes the blob at index i and records a snapshot.
// Reports false for an out-of-range index.
func (s *Session) DeleteBlob(i int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.blobs) {
		return false
	}
	s.blobs = append(s.blobs[:i], s.blobs[i+1:]...)
	s.history.Save(s.blobs)
	return true
}

// ClearDish removes every blob and records a snapshot.
func (s *Session) ClearDish() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs = nil
	s.history.Save(s.blobs)
}

// Undo restores the previous history snapshot into the live blob list.
// Reports false when there is nothing to undo.
func (s *Session) Undo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	blobs, ok := s.history.Undo()
	if ok {
		s.blobs = blobs
	}
	return ok
}

// Redo restores the next history snapshot into the live blob list.
// Reports false when there is nothing to redo.
func (s *Session) Redo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	blobs, ok := s.history.Redo()
	if ok {
		s.blobs = blobs
	}
	return ok
}

// Sample evaluates the mixed color under p. On success it appends the color
// to the session's color history and fires the sampledColor handler; a point
// with no coverage reports ok=false and nothing else happens.
func (s *Session) Sample(p Point) (RGB, bool) {
	s.mu.Lock()
	c, ok := s.compositor.MixedColorAt(s.blobs, p)
	if ok {
		s.colorHistory = append(s.colorHistory, c)
	}
	handler := s.onSample
	s.mu.Unlock()

	if ok && handler != nil {
		handler(c)
	}
	return c, ok
}

// ColorHistory returns a copy of the sampled-color history.
func (s *Session) ColorHistory() []RGB {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]RGB, len(s.colorHistory))
	copy(out, s.colorHistory)
	return out
}

// SavePalette saves the live blob list into the store as a new palette.
// When markActive is set, the new palette becomes the update target for
// UpdatePalette.
func (s *Session) SavePalette(name string, markActive bool) *Palette {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.AddPalette(name, s.blobs, markActive)
}

// SaveChildPalette saves the live blob list as a child of the currently
// active palette, so later color edits to the parent propagate into it.
// Falls back to a plain save when no palette is active.
func (s *Session) SaveChildPalette(name string, markActive bool) *Palette {
	s.mu.Lock()
	defer s.mu.Unlock()
	parent := s.store.ActiveIndex()
	if parent < 0 {
		return s.store.AddPalette(name, s.blobs, markActive)
	}
	p, err := s.store.AddChildPalette(parent, name, s.blobs, markActive)
	if err != nil {
		return s.store.AddPalette(name, s.blobs, markActive)
	}
	return p
}

// UpdatePalette writes the live blob list back into the last-saved palette
// and propagates color changes to its descendants. Reports false, after a
// warning, when nothing has been saved yet.
func (s *Session) UpdatePalette() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.UpdateActivePalette(s.blobs)
}

// SwitchPalette loads the palette at index i into the live editing state.
// History does not survive the switch: a fresh stack is installed, seeded
// with the loaded blob list as its baseline.
func (s *Session) SwitchPalette(i int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	blobs, err := s.store.SelectPalette(i)
	if err != nil {
		return err
	}
	s.loadBlobs(blobs)
	return nil
}

// DeletePalette removes the palette at index i from the store. If the
// deleted palette was the active one, its replacement (if any) is loaded
// into the live editing state; with no palettes left the dish is cleared.
func (s *Session) DeletePalette(i int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	wasActive := s.store.ActiveIndex() == i
	next, err := s.store.DeletePalette(i)
	if err != nil {
		return err
	}
	switch {
	case next != nil:
		s.loadBlobs(next.Blobs())
	case wasActive:
		// Active palette deleted and nothing left to load.
		s.loadBlobs(nil)
	}
	return nil
}

// loadBlobs replaces the live blob list and resets history around it.
// Callers must hold s.mu.
func (s *Session) loadBlobs(blobs []Blob) {
	s.blobs = blobs
	s.history = NewHistoryStack(s.historyLimit)
	s.history.Save(s.blobs)
}

// Render rasterizes the live blob list into a width×height pixmap.
func (s *Session) Render(width, height int) *Pixmap {
	s.mu.Lock()
	blobs := cloneBlobs(s.blobs)
	s.mu.Unlock()
	return s.renderer.Render(blobs, width, height)
}

// Documents exports every stored palette as a persistence document in one
// atomic step relative to session mutations. The color history rides on the
// first document, matching the flat history list of the document format.
func (s *Session) Documents() []PaletteDocument {
	s.mu.Lock()
	defer s.mu.Unlock()

	palettes := s.store.Snapshot()
	docs := make([]PaletteDocument, len(palettes))
	for i, p := range palettes {
		docs[i] = p.Document()
	}
	if len(docs) > 0 && len(s.colorHistory) > 0 {
		hist := make([]string, len(s.colorHistory))
		for i, c := range s.colorHistory {
			hist[i] = c.Hex()
		}
		docs[0].ColorHistory = hist
	}
	return docs
}
