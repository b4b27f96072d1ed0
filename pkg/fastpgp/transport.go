package fastpgp

import (
	"context"
	"errors"
	"fmt"

	"github.com/fastpgp/fastpgp-go/pkg/fastpgp/boundary"
)

// Transport delivers one operation name and its encoded payload to the engine
// and returns the raw response buffer. Whatever the strategy, the returned
// buffer is a single contiguous byte slice; a transport never returns a nil
// buffer with a nil error.
//
// Implementations MUST be safe for concurrent use.
type Transport interface {
	Invoke(ctx context.Context, name string, payload []byte) ([]byte, error)
	Strategy() Strategy
}

// DirectTransport is the synchronous in-process strategy. The payload is
// handed across as one contiguous region and the engine answers before the
// call returns.
type DirectTransport struct {
	native boundary.Native
}

// NewDirectTransport wraps a synchronous engine.
func NewDirectTransport(native boundary.Native) *DirectTransport {
	return &DirectTransport{native: native}
}

// Strategy implements Transport.
func (t *DirectTransport) Strategy() Strategy { return StrategyDirect }

// Invoke implements Transport. ctx is checked before the call; a synchronous
// engine cannot be interrupted once it started.
func (t *DirectTransport) Invoke(ctx context.Context, name string, payload []byte) ([]byte, error) {
	if t == nil || t.native == nil {
		return nil, ErrNilTransport
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	message, signal, err := t.native.Call(name, payload)
	if err != nil {
		return nil, RemapError(err)
	}
	if signal != "" {
		return nil, &EngineError{Op: name, Response: "signal", Message: signal}
	}
	if message == nil {
		return nil, fmt.Errorf("%w: %s", ErrEmptyResult, name)
	}
	return message, nil
}

// ArrayTransport is the serialized-array strategy. The payload travels as a
// sequence of integers and the reply arrives asynchronously, either as a
// length-bearing integer sequence or as a raw binary region.
type ArrayTransport struct {
	endpoint boundary.ArrayEndpoint
}

// NewArrayTransport wraps an asynchronous serialized-array endpoint.
func NewArrayTransport(endpoint boundary.ArrayEndpoint) *ArrayTransport {
	return &ArrayTransport{endpoint: endpoint}
}

// Strategy implements Transport.
func (t *ArrayTransport) Strategy() Strategy { return StrategyArray }

// Invoke implements Transport.
func (t *ArrayTransport) Invoke(ctx context.Context, name string, payload []byte) ([]byte, error) {
	if t == nil || t.endpoint == nil {
		return nil, ErrNilTransport
	}
	replies := t.endpoint.Send(ctx, name, boundary.BytesToInts(payload))

	var (
		reply boundary.ArrayReply
		ok    bool
	)
	select {
	case reply, ok = <-replies:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrEmptyResult, name)
	}
	if reply.Err != nil {
		var sig *boundary.SignalError
		if errors.As(reply.Err, &sig) {
			return nil, &EngineError{Op: name, Response: "signal", Message: sig.Signal}
		}
		return nil, reply.Err
	}
	return normalizeArrayReply(name, reply)
}

func normalizeArrayReply(name string, reply boundary.ArrayReply) ([]byte, error) {
	if reply.Absent() {
		return nil, fmt.Errorf("%w: %s", ErrEmptyResult, name)
	}
	if reply.Bytes != nil {
		return reply.Bytes, nil
	}
	buf, err := boundary.IntsToBytes(reply.Ints)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedResponse, name, err)
	}
	return buf, nil
}
