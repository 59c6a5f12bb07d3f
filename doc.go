// Package chromix provides a metaball color-mixing engine for interactive
// palette tools.
//
// # Overview
//
// chromix models a "mixing dish": weighted color blobs placed on a 2D canvas
// fuse through a scalar influence field into a continuous painted region. The
// blended color under any point can be sampled and pushed to a host painting
// tool (a brush-color setter), and whole dish states can be saved as named
// palettes with linear undo/redo history.
//
// # Quick Start
//
//	import "github.com/gogpu/chromix"
//
//	s := chromix.NewSession()
//	s.AddBlob(chromix.Pt(100, 100), chromix.RGB{R: 1}, 30)
//	s.AddBlob(chromix.Pt(130, 100), chromix.RGB{B: 1}, 30)
//
//	// Sample the mixed color between the two blobs.
//	if c, ok := s.Sample(chromix.Pt(115, 100)); ok {
//	    fmt.Println(c.Hex()) // a purple
//	}
//
//	// Render the dish to a pixmap and save it.
//	pm := s.Render(400, 400)
//	pm.SavePNG("dish.png")
//
// # Architecture
//
// The library is organized into:
//   - Field math: Falloff (influence functions), Compositor (weighted
//     linear-space color blending with gamma correction)
//   - Data model: Blob, Palette, PaletteStore (with optional parent/child
//     color propagation), HistoryStack (linear undo/redo)
//   - Rendering: Renderer (software raster into a Pixmap), gpu/ (draw-call
//     parameterization and WGSL shader for GPU-side compositing)
//   - Session: the interaction surface a host UI drives with discrete
//     pointer actions
//
// # Coordinate System
//
// chromix is unit-agnostic: positions and radii are plain float64 values in
// whatever space the host uses (canvas pixels or normalized device
// coordinates). The software renderer interprets positions as pixel
// coordinates with the origin at the top-left, X increasing right and Y
// increasing down.
//
// # Determinism
//
// All field evaluation and color blending is a pure function of the blob
// list and the queried point. Identical inputs produce bit-for-bit identical
// results; there is no hidden global state.
package chromix

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
