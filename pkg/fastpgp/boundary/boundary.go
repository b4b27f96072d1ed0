package boundary

import (
	"context"
	"errors"
	"fmt"
)

// Native is an engine reachable through a synchronous, in-process call. The
// payload is handed over as one contiguous region and the call returns before
// Call does.
//
// A successful call yields message and an empty signal. A non-empty signal
// means the engine answered with an error string instead of a buffer; message
// is then meaningless. err reports a failure to perform the call at all.
type Native interface {
	Call(name string, payload []byte) (message []byte, signal string, err error)
}

// NativeFunc adapts a plain function to Native.
type NativeFunc func(name string, payload []byte) ([]byte, string, error)

// Call implements Native.
func (f NativeFunc) Call(name string, payload []byte) ([]byte, string, error) {
	return f(name, payload)
}

// ArrayReply is the answer of an ArrayEndpoint. Depending on which
// sub-transport answered, the result is either a sequence of integers (one per
// byte) or a raw binary region. A reply with neither set is an absent result.
type ArrayReply struct {
	Ints  []int
	Bytes []byte
	Err   error
}

// Absent reports whether the reply carries no result at all.
func (r ArrayReply) Absent() bool {
	return r.Ints == nil && r.Bytes == nil
}

// ArrayEndpoint is an engine reachable only through a boundary that cannot
// carry raw binary. Send dispatches asynchronously; the returned channel
// yields at most one reply and is then closed. A channel closed without a
// reply is an absent result.
//
// Implementations MUST be safe for concurrent use.
type ArrayEndpoint interface {
	Send(ctx context.Context, name string, payload []int) <-chan ArrayReply
}

// ErrByteRange reports an integer outside 0..255 in a serialized array.
var ErrByteRange = errors.New("boundary: array element out of byte range")

// BytesToInts converts a byte payload to its serialized-array form. A nil
// input yields a nil slice so an absent result stays absent.
func BytesToInts(b []byte) []int {
	if b == nil {
		return nil
	}
	out := make([]int, len(b))
	for i, v := range b {
		out[i] = int(v)
	}
	return out
}

// IntsToBytes converts a serialized array back to bytes. A nil input yields a
// nil slice so absence survives the conversion.
func IntsToBytes(v []int) ([]byte, error) {
	if v == nil {
		return nil, nil
	}
	out := make([]byte, len(v))
	for i, n := range v {
		if n < 0 || n > 255 {
			return nil, fmt.Errorf("%w: index %d value %d", ErrByteRange, i, n)
		}
		out[i] = byte(n)
	}
	return out, nil
}

// SignalError carries an engine error signal across an ArrayEndpoint, which
// has no separate channel for it.
type SignalError struct {
	Op     string
	Signal string
}

func (e *SignalError) Error() string {
	return fmt.Sprintf("boundary: %s: %s", e.Op, e.Signal)
}
