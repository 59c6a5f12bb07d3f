// Package gpu provides GPU-side compositing for chromix mixing dishes.
//
// Instead of shipping a raster, the package parameterizes the color field as
// a single draw call: blob positions, radii and colors packed into a uniform
// block (capped at MaxBlobs), plus the coverage threshold and blend gamma.
// A fullscreen-triangle WGSL shader evaluates the same quintic influence
// field and linear-space blend as the CPU compositor.
//
// The GPU device is received from the host application through a
// gpucontext.DeviceProvider — the package never creates a device behind the
// host's back, though Backend offers standalone acquisition via gogpu/wgpu
// for headless use. When no device is available, rendering falls back to
// the CPU renderer.
package gpu
