package gpu

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/chromix"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/core"
)

// Backend errors.
var (
	// ErrNoGPU is returned when no suitable GPU adapter is available.
	ErrNoGPU = errors.New("gpu: no suitable GPU adapter found")

	// ErrNotInitialized is returned when the backend is used before Init.
	ErrNotInitialized = errors.New("gpu: backend not initialized")
)

// Backend owns standalone GPU resources for headless compositing: instance,
// adapter, device and queue acquired through gogpu/wgpu. Hosts that already
// have a device should hand a gpucontext.DeviceProvider to NewRenderer
// instead of using a Backend.
type Backend struct {
	mu sync.RWMutex

	instance *core.Instance
	adapter  core.AdapterID
	device   core.DeviceID
	queue    core.QueueID

	initialized bool
}

// NewBackend creates an uninitialized backend. Call Init before use.
func NewBackend() *Backend {
	return &Backend{}
}

// Init creates the GPU instance, requests a high-performance adapter,
// creates a device and retrieves its queue.
func (b *Backend) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.initialized {
		return nil
	}

	desc := &gputypes.InstanceDescriptor{
		Backends: gputypes.BackendsPrimary,
		Flags:    0,
	}
	b.instance = core.NewInstance(desc)

	adapterID, err := b.instance.RequestAdapter(&gputypes.RequestAdapterOptions{
		PowerPreference: gputypes.PowerPreferenceHighPerformance,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNoGPU, err)
	}
	b.adapter = adapterID
	logAdapterInfo(adapterID)

	deviceID, err := core.RequestDevice(adapterID, &gputypes.DeviceDescriptor{
		Label:            "chromix-device",
		RequiredFeatures: nil,
		RequiredLimits:   gputypes.DefaultLimits(),
	})
	if err != nil {
		return fmt.Errorf("gpu: device creation failed: %w", err)
	}
	b.device = deviceID

	queueID, err := core.GetDeviceQueue(deviceID)
	if err != nil {
		_ = core.DeviceDrop(deviceID)
		return fmt.Errorf("gpu: queue retrieval failed: %w", err)
	}
	b.queue = queueID

	b.initialized = true
	chromix.Logger().Info("gpu backend initialized")
	return nil
}

// Close releases all backend resources in reverse order of creation.
// The backend must not be used afterwards.
func (b *Backend) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return
	}

	if !b.device.IsZero() {
		if err := core.DeviceDrop(b.device); err != nil {
			chromix.Logger().Warn("error releasing device", "err", err)
		}
		b.device = core.DeviceID{}
	}
	if !b.adapter.IsZero() {
		if err := core.AdapterDrop(b.adapter); err != nil {
			chromix.Logger().Warn("error releasing adapter", "err", err)
		}
		b.adapter = core.AdapterID{}
	}

	b.instance = nil
	b.queue = core.QueueID{}
	b.initialized = false
}

// IsInitialized reports whether Init has completed.
func (b *Backend) IsInitialized() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.initialized
}

// Device returns the GPU device ID, or a zero ID before Init.
func (b *Backend) Device() core.DeviceID {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.device
}

// Queue returns the GPU queue ID, or a zero ID before Init.
func (b *Backend) Queue() core.QueueID {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.queue
}

// logAdapterInfo logs the selected GPU through the chromix logger.
func logAdapterInfo(adapterID core.AdapterID) {
	info, err := core.GetAdapterInfo(adapterID)
	if err != nil {
		chromix.Logger().Warn("failed to get GPU info", "err", err)
		return
	}
	chromix.Logger().Info("GPU adapter selected",
		"name", info.Name, "backend", info.Backend, "type", info.DeviceType)
}
