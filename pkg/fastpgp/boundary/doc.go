// Package boundary describes the narrow surface between the fastpgp bridge and
// the OpenPGP engine: operation names, the synchronous in-process call shape
// (Native), and the serialized-array call shape (ArrayEndpoint).
//
// Both sides of the boundary import this package. It deliberately carries no
// knowledge of the wire schema; payloads are opaque bytes here.
package boundary
