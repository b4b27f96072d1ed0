// Package engine is a reference OpenPGP engine written in Go. It speaks the
// same boundary contract as the native library: one named operation, one
// FlatBuffers request in, one FlatBuffers response out.
//
// Engine implements boundary.Native, so it can sit directly behind the
// direct strategy, behind loopback for the array strategy, or behind a NATS
// responder in a separate process.
//
// Operation failures are reported in the response record's error field.
// The synchronous error signal is reserved for calls the engine cannot
// attribute to a response record: unknown operation names and unreadable
// requests.
//
// A generate request carrying a passphrase yields an encrypted private key;
// operations given a private key unlock it with the request's passphrase.
package engine
