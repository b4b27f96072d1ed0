// Package bindings holds the only cgo code in the module: a thin wrapper over
// the engine's C entry point OpenPGPBridgeCall.
//
// The real implementation is compiled only with cgo and the fastpgp_native
// build tag, and links -lopenpgp_bridge. Every other build gets stubs that
// return ErrNotBuilt or ErrCGONotEnabled so the rest of the module compiles
// and tests without the library.
package bindings
