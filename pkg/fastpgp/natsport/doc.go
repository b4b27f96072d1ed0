// Package natsport carries the serialized-array strategy over NATS
// request/reply.
//
// A Client is a boundary.ArrayEndpoint: each Send publishes a JSON envelope
// {"name": op, "payload": [ints]} on the bridge subject and waits for one
// reply. A Responder subscribes to the same subject (in a queue group, so
// several engine processes can share the load) and answers with the engine's
// response buffer, either as a length-bearing integer array or as raw binary.
// The reply shape is announced in the Fastpgp-Encoding header.
package natsport
