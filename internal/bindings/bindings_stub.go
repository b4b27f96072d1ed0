//go:build !cgo || windows

package bindings

// Stub implementations for non-cgo builds or Windows. They allow the package
// to compile but fail when called.

func Open(Config) (Handle, error) {
	return 0, ErrCGONotEnabled
}

func Close(Handle) error {
	return ErrCGONotEnabled
}

func Linked() bool { return false }

func Call(Handle, string, []byte) ([]byte, string, error) {
	return nil, "", ErrCGONotEnabled
}
