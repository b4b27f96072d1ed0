package fastpgp

import (
	"github.com/fastpgp/fastpgp-go/internal/bindings"
	"github.com/fastpgp/fastpgp-go/pkg/fastpgp/boundary"
)

// nativeLibrary exposes an opened bindings handle as a boundary.Native.
type nativeLibrary struct {
	handle bindings.Handle
}

func (n *nativeLibrary) Call(name string, payload []byte) ([]byte, string, error) {
	return bindings.Call(n.handle, name, payload)
}

var _ boundary.Native = (*nativeLibrary)(nil)

// NativeLinked reports whether the native engine library was linked into the
// current binary.
func NativeLinked() bool {
	return bindings.Linked()
}
