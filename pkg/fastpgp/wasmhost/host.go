package wasmhost

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"

	"github.com/fastpgp/fastpgp-go/pkg/fastpgp/boundary"
	"github.com/fastpgp/fastpgp-go/pkg/fastpgp/logging"
)

const (
	exportMalloc = "malloc"
	exportFree   = "free"
	exportCall   = "openpgp_bridge_call"
	moduleName   = "openpgp-bridge"
	regionHeader = 8
)

var (
	// ErrMissingExport reports a guest module lacking a required export.
	ErrMissingExport = errors.New("wasmhost: module missing required export")
	// ErrBadRegion reports a result region whose header disagrees with its size.
	ErrBadRegion = errors.New("wasmhost: malformed result region")
	// ErrClosed is returned by calls on a closed host.
	ErrClosed = errors.New("wasmhost: host closed")
)

// Host owns one wazero runtime and one instance of the guest engine. Calls are
// serialized: a guest instance has a single linear memory and allocator.
type Host struct {
	mu      sync.Mutex
	runtime wazero.Runtime
	module  api.Module
	malloc  api.Function
	free    api.Function
	call    api.Function
	logger  logging.Logger
	closed  bool
}

// Option configures a Host.
type Option func(*Host)

// WithLogger sets the host logger.
func WithLogger(l logging.Logger) Option {
	return func(h *Host) {
		if l != nil {
			h.logger = l
		}
	}
}

// Load reads a guest module from path and instantiates it.
func Load(ctx context.Context, path string, opts ...Option) (*Host, error) {
	wasmBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("wasmhost: read module: %w", err)
	}
	return New(ctx, wasmBytes, opts...)
}

// New compiles and instantiates the guest module.
func New(ctx context.Context, wasmBytes []byte, opts ...Option) (*Host, error) {
	r := wazero.NewRuntime(ctx)
	if _, err := wasi_snapshot_preview1.Instantiate(ctx, r); err != nil {
		r.Close(ctx)
		return nil, fmt.Errorf("wasmhost: instantiate wasi: %w", err)
	}

	compiled, err := r.CompileModule(ctx, wasmBytes)
	if err != nil {
		r.Close(ctx)
		return nil, fmt.Errorf("wasmhost: compile module: %w", err)
	}

	config := wazero.NewModuleConfig().
		WithName(moduleName).
		WithStdout(os.Stderr).
		WithStderr(os.Stderr)
	mod, err := r.InstantiateModule(ctx, compiled, config)
	if err != nil {
		r.Close(ctx)
		return nil, fmt.Errorf("wasmhost: instantiate module: %w", err)
	}

	h := &Host{
		runtime: r,
		module:  mod,
		malloc:  mod.ExportedFunction(exportMalloc),
		free:    mod.ExportedFunction(exportFree),
		call:    mod.ExportedFunction(exportCall),
		logger:  logging.New(nil),
	}
	for _, opt := range opts {
		opt(h)
	}

	for name, fn := range map[string]api.Function{exportMalloc: h.malloc, exportFree: h.free, exportCall: h.call} {
		if fn == nil {
			r.Close(ctx)
			return nil, fmt.Errorf("%w: %s", ErrMissingExport, name)
		}
	}
	if mod.Memory() == nil {
		r.Close(ctx)
		return nil, fmt.Errorf("%w: memory", ErrMissingExport)
	}
	return h, nil
}

// Close releases the runtime. It is safe to call more than once.
func (h *Host) Close(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil
	}
	h.closed = true
	return h.runtime.Close(ctx)
}

// Call implements boundary.Native.
func (h *Host) Call(name string, payload []byte) ([]byte, string, error) {
	return h.CallContext(context.Background(), name, payload)
}

// CallContext runs one boundary operation in the guest.
func (h *Host) CallContext(ctx context.Context, name string, payload []byte) ([]byte, string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil, "", ErrClosed
	}

	namePtr, err := h.write(ctx, []byte(name))
	if err != nil {
		return nil, "", err
	}
	defer h.deallocate(ctx, namePtr)
	payloadPtr, err := h.write(ctx, payload)
	if err != nil {
		return nil, "", err
	}
	defer h.deallocate(ctx, payloadPtr)

	results, err := h.call.Call(ctx,
		uint64(namePtr), uint64(len(name)),
		uint64(payloadPtr), uint64(len(payload)))
	if err != nil {
		return nil, "", fmt.Errorf("wasmhost: %s: %w", name, err)
	}
	ptr, size := uint32(results[0]>>32), uint32(results[0])
	if ptr == 0 {
		return nil, "", nil
	}
	defer h.deallocate(ctx, ptr)

	region, ok := h.module.Memory().Read(ptr, size)
	if !ok {
		return nil, "", fmt.Errorf("%w: region %d+%d outside memory", ErrBadRegion, ptr, size)
	}
	return splitRegion(region)
}

func (h *Host) allocate(ctx context.Context, size uint32) (uint32, error) {
	if size == 0 {
		size = 1
	}
	results, err := h.malloc.Call(ctx, uint64(size))
	if err != nil {
		return 0, fmt.Errorf("wasmhost: malloc: %w", err)
	}
	ptr := uint32(results[0])
	if ptr == 0 {
		return 0, errors.New("wasmhost: malloc returned null")
	}
	return ptr, nil
}

func (h *Host) deallocate(ctx context.Context, ptr uint32) {
	if ptr == 0 {
		return
	}
	if _, err := h.free.Call(ctx, uint64(ptr)); err != nil {
		h.logger.Warn(ctx, "guest free failed", "ptr", ptr, "error", err)
	}
}

func (h *Host) write(ctx context.Context, data []byte) (uint32, error) {
	ptr, err := h.allocate(ctx, uint32(len(data)))
	if err != nil {
		return 0, err
	}
	if !h.module.Memory().Write(ptr, data) {
		h.deallocate(ctx, ptr)
		return 0, fmt.Errorf("wasmhost: write %d bytes at %d", len(data), ptr)
	}
	return ptr, nil
}

// splitRegion copies the message and error out of a result region. The
// returned slices do not alias guest memory.
func splitRegion(region []byte) ([]byte, string, error) {
	if len(region) < regionHeader {
		return nil, "", fmt.Errorf("%w: %d byte region", ErrBadRegion, len(region))
	}
	msgLen := binary.LittleEndian.Uint32(region[0:4])
	errLen := binary.LittleEndian.Uint32(region[4:8])
	body := region[regionHeader:]
	if uint64(msgLen)+uint64(errLen) != uint64(len(body)) {
		return nil, "", fmt.Errorf("%w: header %d+%d, body %d", ErrBadRegion, msgLen, errLen, len(body))
	}
	if errLen > 0 {
		return nil, string(body[msgLen:]), nil
	}
	return append([]byte{}, body[:msgLen]...), "", nil
}

var _ boundary.Native = (*Host)(nil)
