// Package wasmhost runs an OpenPGP engine compiled to WebAssembly inside the
// wazero runtime and exposes it as a boundary.Native.
//
// The guest module must export:
//
//	memory
//	malloc(size i32) i32
//	free(ptr i32)
//	openpgp_bridge_call(name_ptr, name_len, payload_ptr, payload_len i32) i64
//
// openpgp_bridge_call returns ptr<<32 | len of a guest region laid out as
// [u32 LE message length][u32 LE error length][message][error]. The host
// copies the region out and releases it with free. A zero pointer is an
// absent result.
package wasmhost
