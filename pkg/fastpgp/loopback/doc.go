// Package loopback provides an in-memory boundary.ArrayEndpoint for tests and
// examples.
//
// An Endpoint serves every Send from a worker goroutine that calls a
// boundary.Native engine and delivers the answer on a per-call reply slot.
// Requests arrive as integer sequences, exactly as they would over an
// asynchronous host boundary, and replies are shaped according to the
// configured Encoding.
//
// # Usage
//
//	eng := engine.New()
//	ep := loopback.New(eng, loopback.WithEncoding(loopback.EncodingArray))
//	defer ep.Close()
//
//	bridge, _ := fastpgp.New(fastpgp.NewArrayTransport(ep))
//	pair, _ := bridge.Generate(ctx, fastpgp.Options{Name: "alice"})
//
// # Limitations
//
// Loopback is for testing and examples only. Replies are never lost unless
// EncodingDrop is selected, and there is no latency simulation.
package loopback
