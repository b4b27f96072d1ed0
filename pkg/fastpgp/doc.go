// Package fastpgp exposes OpenPGP operations (encrypt, decrypt, sign, verify,
// their file and symmetric variants, and key generation) computed by an
// external engine reachable only through a narrow byte boundary.
//
// Each call is encoded as a FlatBuffers request (see package model), handed
// to a Transport, and the returned buffer is decoded as the response record
// for that operation. Two transport strategies exist:
//
//   - StrategyDirect: a synchronous in-process call into the engine (the cgo
//     library, a wasm build hosted with wazero, or the Go reference engine).
//   - StrategyArray: the payload travels as an integer array to an
//     asynchronous endpoint (NATS, or the in-process loopback) and the reply
//     comes back as an integer array or a raw binary region.
//
// The strategy is fixed per Bridge:
//
//	bridge, err := fastpgp.Open(ctx, *fastpgp.NewDefaultConfig())
//	if err != nil {
//		return err
//	}
//	defer bridge.Close(ctx)
//
//	pair, err := bridge.Generate(ctx, fastpgp.Options{Name: "alice"})
//
// Engine failures surface as *EngineError, which matches ErrEngine with
// errors.Is.
package fastpgp
