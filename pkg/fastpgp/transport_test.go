package fastpgp

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fastpgp/fastpgp-go/internal/bindings"
	"github.com/fastpgp/fastpgp-go/pkg/fastpgp/boundary"
	"github.com/fastpgp/fastpgp-go/pkg/fastpgp/loopback"
)

// recordingNative captures what crossed the boundary and answers with a
// fixed result.
type recordingNative struct {
	mu       sync.Mutex
	names    []string
	payloads [][]byte

	message []byte
	signal  string
	err     error
}

func (n *recordingNative) Call(name string, payload []byte) ([]byte, string, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.names = append(n.names, name)
	n.payloads = append(n.payloads, append([]byte(nil), payload...))
	return n.message, n.signal, n.err
}

// scriptedEndpoint answers every Send with one scripted reply, or closes the
// channel without a value when drop is set.
type scriptedEndpoint struct {
	mu       sync.Mutex
	payloads [][]int
	reply    boundary.ArrayReply
	drop     bool
	block    bool
}

func (e *scriptedEndpoint) Send(ctx context.Context, name string, payload []int) <-chan boundary.ArrayReply {
	e.mu.Lock()
	e.payloads = append(e.payloads, append([]int(nil), payload...))
	e.mu.Unlock()

	ch := make(chan boundary.ArrayReply, 1)
	switch {
	case e.block:
		return ch
	case e.drop:
	default:
		ch <- e.reply
	}
	close(ch)
	return ch
}

func TestDirectTransportSuccess(t *testing.T) {
	native := &recordingNative{message: []byte{1, 2, 3}}
	tr := NewDirectTransport(native)
	require.Equal(t, StrategyDirect, tr.Strategy())

	buf, err := tr.Invoke(context.Background(), "sign", []byte{9})
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3}, buf)
	require.Equal(t, []string{"sign"}, native.names)
	require.Equal(t, [][]byte{{9}}, native.payloads)
}

func TestDirectTransportSignal(t *testing.T) {
	tr := NewDirectTransport(&recordingNative{signal: "unknown operation"})
	_, err := tr.Invoke(context.Background(), "nope", nil)
	require.ErrorIs(t, err, ErrEngine)

	var ee *EngineError
	require.True(t, errors.As(err, &ee))
	require.Equal(t, "signal", ee.Response)
	require.Equal(t, "unknown operation", ee.Message)
}

func TestDirectTransportNilMessage(t *testing.T) {
	_, err := NewDirectTransport(&recordingNative{}).Invoke(context.Background(), "decrypt", nil)
	require.ErrorIs(t, err, ErrEmptyResult)
}

func TestDirectTransportRemapsBindingErrors(t *testing.T) {
	_, err := NewDirectTransport(&recordingNative{err: bindings.ErrNotBuilt}).Invoke(context.Background(), "decrypt", nil)
	require.ErrorIs(t, err, ErrNotBuilt)

	_, err = NewDirectTransport(&recordingNative{err: bindings.ErrEmptyReturn}).Invoke(context.Background(), "decrypt", nil)
	require.ErrorIs(t, err, ErrEmptyResult)
}

func TestDirectTransportCanceledContext(t *testing.T) {
	native := &recordingNative{message: []byte{1}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewDirectTransport(native).Invoke(ctx, "decrypt", nil)
	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, native.names)
}

func TestNilTransports(t *testing.T) {
	_, err := NewDirectTransport(nil).Invoke(context.Background(), "decrypt", nil)
	require.ErrorIs(t, err, ErrNilTransport)
	_, err = NewArrayTransport(nil).Invoke(context.Background(), "decrypt", nil)
	require.ErrorIs(t, err, ErrNilTransport)
}

func TestArrayTransportIntsReply(t *testing.T) {
	ep := &scriptedEndpoint{reply: boundary.ArrayReply{Ints: []int{0, 127, 255}}}
	tr := NewArrayTransport(ep)
	require.Equal(t, StrategyArray, tr.Strategy())

	buf, err := tr.Invoke(context.Background(), "verify", []byte{4, 200})
	require.NoError(t, err)
	require.Equal(t, []byte{0, 127, 255}, buf)
	require.Equal(t, [][]int{{4, 200}}, ep.payloads)
}

func TestArrayTransportBinaryReply(t *testing.T) {
	ep := &scriptedEndpoint{reply: boundary.ArrayReply{Bytes: []byte("raw")}}
	buf, err := NewArrayTransport(ep).Invoke(context.Background(), "encrypt", nil)
	require.NoError(t, err)
	require.Equal(t, []byte("raw"), buf)
}

func TestArrayTransportEmptyIntsArePresent(t *testing.T) {
	ep := &scriptedEndpoint{reply: boundary.ArrayReply{Ints: []int{}}}
	buf, err := NewArrayTransport(ep).Invoke(context.Background(), "encrypt", nil)
	require.NoError(t, err)
	require.NotNil(t, buf)
	require.Empty(t, buf)
}

func TestArrayTransportAbsentResult(t *testing.T) {
	_, err := NewArrayTransport(&scriptedEndpoint{drop: true}).Invoke(context.Background(), "decrypt", nil)
	require.ErrorIs(t, err, ErrEmptyResult)

	_, err = NewArrayTransport(&scriptedEndpoint{}).Invoke(context.Background(), "decrypt", nil)
	require.ErrorIs(t, err, ErrEmptyResult)
}

func TestArrayTransportOutOfRangeReply(t *testing.T) {
	ep := &scriptedEndpoint{reply: boundary.ArrayReply{Ints: []int{1, 256}}}
	_, err := NewArrayTransport(ep).Invoke(context.Background(), "decrypt", nil)
	require.ErrorIs(t, err, ErrMalformedResponse)
}

func TestArrayTransportErrors(t *testing.T) {
	boom := errors.New("connection reset")
	_, err := NewArrayTransport(&scriptedEndpoint{reply: boundary.ArrayReply{Err: boom}}).Invoke(context.Background(), "decrypt", nil)
	require.ErrorIs(t, err, boom)

	sig := &boundary.SignalError{Op: "decrypt", Signal: "bad data"}
	_, err = NewArrayTransport(&scriptedEndpoint{reply: boundary.ArrayReply{Err: sig}}).Invoke(context.Background(), "decrypt", nil)
	var ee *EngineError
	require.True(t, errors.As(err, &ee))
	require.Equal(t, "signal", ee.Response)
	require.Equal(t, "bad data", ee.Message)
}

func TestArrayTransportContextCanceledWhileWaiting(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewArrayTransport(&scriptedEndpoint{block: true}).Invoke(ctx, "decrypt", nil)
	require.ErrorIs(t, err, context.Canceled)
}

// Both strategies must hand the engine byte-identical requests.
func TestStrategiesCarryIdenticalRequests(t *testing.T) {
	native := &recordingNative{message: buildString(response{output: "ok"})}
	ep := &scriptedEndpoint{reply: boundary.ArrayReply{Ints: boundary.BytesToInts(native.message)}}

	direct, err := New(NewDirectTransport(native))
	require.NoError(t, err)
	array, err := New(NewArrayTransport(ep))
	require.NoError(t, err)

	opts := &KeyOptions{Hash: Ptr(HashSHA384), RSABits: Ptr(3072)}
	hints := &FileHints{FileName: "f"}
	ctx := context.Background()
	for _, b := range []*Bridge{direct, array} {
		out, err := b.EncryptSymmetric(ctx, "message", "pw", hints, opts)
		require.NoError(t, err)
		require.Equal(t, "ok", out)
	}

	require.Len(t, native.payloads, 1)
	require.Len(t, ep.payloads, 1)
	viaArray, err := boundary.IntsToBytes(ep.payloads[0])
	require.NoError(t, err)
	require.Equal(t, native.payloads[0], viaArray)
}

// An engine that answers with neither a message nor a signal fails the same
// way whichever strategy carried the call.
func TestAbsentEngineMessageIsEmptyResultOnEveryStrategy(t *testing.T) {
	absent := boundary.NativeFunc(func(string, []byte) ([]byte, string, error) {
		return nil, "", nil
	})
	transports := map[string]Transport{
		"direct": NewDirectTransport(absent),
		"array":  NewArrayTransport(loopback.New(absent)),
		"binary": NewArrayTransport(loopback.New(absent, loopback.WithEncoding(loopback.EncodingBinary))),
	}
	for name, tr := range transports {
		t.Run(name, func(t *testing.T) {
			_, err := tr.Invoke(context.Background(), "verify", []byte{1, 2})
			require.ErrorIs(t, err, ErrEmptyResult)
			require.NotErrorIs(t, err, ErrMalformedResponse)
		})
	}
}
