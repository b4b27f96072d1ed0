package loopback

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/fastpgp/fastpgp-go/pkg/fastpgp/boundary"
)

// ErrClosed is delivered as the reply error for sends on a closed endpoint.
var ErrClosed = errors.New("loopback: endpoint closed")

// Encoding selects how an Endpoint shapes its replies.
type Encoding int

const (
	// EncodingArray replies with an integer sequence.
	EncodingArray Encoding = iota
	// EncodingBinary replies with a raw binary region.
	EncodingBinary
	// EncodingDrop closes the reply channel without a value.
	EncodingDrop
)

func (e Encoding) String() string {
	switch e {
	case EncodingArray:
		return "array"
	case EncodingBinary:
		return "binary"
	case EncodingDrop:
		return "drop"
	default:
		return fmt.Sprintf("Encoding(%d)", int(e))
	}
}

const defaultWorkers = 4

// Endpoint implements boundary.ArrayEndpoint over an in-process engine.
type Endpoint struct {
	native   boundary.Native
	encoding Encoding
	sem      chan struct{}

	mu     sync.Mutex
	slots  map[uint64]chan boundary.ArrayReply
	seq    uint64
	wg     sync.WaitGroup
	closed bool
}

// Option configures an Endpoint.
type Option func(*Endpoint)

// WithEncoding sets the reply encoding. The default is EncodingArray.
func WithEncoding(enc Encoding) Option {
	return func(e *Endpoint) { e.encoding = enc }
}

// WithWorkers bounds the number of engine calls in flight.
func WithWorkers(n int) Option {
	return func(e *Endpoint) {
		if n > 0 {
			e.sem = make(chan struct{}, n)
		}
	}
}

// New returns an endpoint serving calls with native.
func New(native boundary.Native, opts ...Option) *Endpoint {
	e := &Endpoint{
		native:   native,
		encoding: EncodingArray,
		sem:      make(chan struct{}, defaultWorkers),
		slots:    make(map[uint64]chan boundary.ArrayReply),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// slot reserves a reply slot and registers the call as in flight. ok is false
// once the endpoint is closed.
func (e *Endpoint) slot() (seq uint64, ch chan boundary.ArrayReply, ok bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	ch = make(chan boundary.ArrayReply, 1)
	if e.closed {
		return 0, ch, false
	}
	seq = e.seq
	e.seq++
	e.slots[seq] = ch
	e.wg.Add(1)
	return seq, ch, true
}

func (e *Endpoint) release(seq uint64) {
	e.mu.Lock()
	delete(e.slots, seq)
	e.mu.Unlock()
}

// Pending reports how many calls have not been answered yet.
func (e *Endpoint) Pending() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.slots)
}

// Send implements boundary.ArrayEndpoint.
func (e *Endpoint) Send(ctx context.Context, name string, payload []int) <-chan boundary.ArrayReply {
	seq, ch, ok := e.slot()
	if !ok {
		ch <- boundary.ArrayReply{Err: ErrClosed}
		close(ch)
		return ch
	}
	msg := append([]int(nil), payload...)

	go func() {
		defer e.wg.Done()
		defer e.release(seq)
		defer close(ch)

		select {
		case e.sem <- struct{}{}:
		case <-ctx.Done():
			ch <- boundary.ArrayReply{Err: ctx.Err()}
			return
		}
		defer func() { <-e.sem }()

		if reply, ok := e.serve(name, msg); ok {
			ch <- reply
		}
	}()
	return ch
}

func (e *Endpoint) serve(name string, payload []int) (boundary.ArrayReply, bool) {
	buf, err := boundary.IntsToBytes(payload)
	if err != nil {
		return boundary.ArrayReply{Err: err}, true
	}
	message, signal, err := e.native.Call(name, buf)
	switch {
	case err != nil:
		return boundary.ArrayReply{Err: err}, true
	case signal != "":
		return boundary.ArrayReply{Err: &boundary.SignalError{Op: name, Signal: signal}}, true
	}

	switch e.encoding {
	case EncodingBinary:
		return boundary.ArrayReply{Bytes: message}, true
	case EncodingDrop:
		return boundary.ArrayReply{}, false
	default:
		return boundary.ArrayReply{Ints: boundary.BytesToInts(message)}, true
	}
}

// Close stops accepting calls and waits for in-flight calls to be answered.
func (e *Endpoint) Close() error {
	e.mu.Lock()
	e.closed = true
	e.mu.Unlock()
	e.wg.Wait()
	return nil
}

var _ boundary.ArrayEndpoint = (*Endpoint)(nil)
