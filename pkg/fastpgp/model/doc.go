// Package model holds the FlatBuffers wire schema exchanged with the OpenPGP
// engine. Every request and response crossing the boundary is one of the
// tables in bridge.fbs; the Go accessors and builders in this package are
// generated from it.
//
// Fields are resolved through each table's vtable, so readers look a field up
// by slot rather than by position and tolerate additive schema changes. Nested
// tables are stored by offset and may be absent from a buffer entirely.
package model

//go:generate flatc --go --go-namespace model -o .. bridge.fbs
