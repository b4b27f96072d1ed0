//go:build cgo && !windows && !fastpgp_native

package bindings

// Open compiles in cgo-enabled builds that were not tagged fastpgp_native and
// reports that the library is not linked.
func Open(Config) (Handle, error) {
	return 0, ErrNotBuilt
}

// Close mirrors Open for symmetry.
func Close(Handle) error {
	return ErrNotBuilt
}

// Linked reports whether the native library is part of this binary.
func Linked() bool { return false }

// Call always fails with ErrNotBuilt.
func Call(Handle, string, []byte) ([]byte, string, error) {
	return nil, "", ErrNotBuilt
}
