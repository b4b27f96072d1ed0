package bindings

import "errors"

// Config captures the parameters handed to the native engine library.
type Config struct {
	// HomeDir is exported to the library as its scratch directory.
	HomeDir string
}

// Handle is an opaque identifier returned by Open. The zero Handle is never
// valid.
type Handle uintptr

var (
	// ErrNotBuilt reports that the native bindings were not linked into the
	// current binary. Build with -tags fastpgp_native to link them.
	ErrNotBuilt = errors.New("fastpgp/internal/bindings: native bindings not built")

	// ErrCGONotEnabled signals that the package was compiled without cgo and
	// therefore cannot talk to the native library.
	ErrCGONotEnabled = errors.New("fastpgp/internal/bindings: cgo not enabled")

	// ErrEmptyReturn reports that the library returned a null result struct.
	ErrEmptyReturn = errors.New("fastpgp/internal/bindings: null result")

	// ErrInvalidHandle reports a call through a closed or zero Handle.
	ErrInvalidHandle = errors.New("fastpgp/internal/bindings: invalid handle")
)
