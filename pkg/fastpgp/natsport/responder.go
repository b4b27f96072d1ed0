package natsport

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/nats-io/nats.go"

	"github.com/fastpgp/fastpgp-go/pkg/fastpgp/boundary"
)

// Responder answers bridge requests with a boundary.Native engine.
type Responder struct {
	nc     *nats.Conn
	native boundary.Native
	opts   options

	mu  sync.Mutex
	sub *nats.Subscription
}

// NewResponder returns a responder; call Start to begin serving.
func NewResponder(nc *nats.Conn, native boundary.Native, opts ...Option) *Responder {
	r := &Responder{nc: nc, native: native, opts: defaultOptions()}
	for _, opt := range opts {
		opt(&r.opts)
	}
	return r
}

// Start subscribes to the request subject.
func (r *Responder) Start() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.sub != nil {
		return errors.New("natsport: responder already started")
	}
	var (
		sub *nats.Subscription
		err error
	)
	if r.opts.queue != "" {
		sub, err = r.nc.QueueSubscribe(r.opts.subject, r.opts.queue, r.handle)
	} else {
		sub, err = r.nc.Subscribe(r.opts.subject, r.handle)
	}
	if err != nil {
		return fmt.Errorf("natsport: subscribe %s: %w", r.opts.subject, err)
	}
	if err := r.nc.Flush(); err != nil {
		_ = sub.Unsubscribe()
		return fmt.Errorf("natsport: flush: %w", err)
	}
	r.sub = sub
	return nil
}

// Stop drains the subscription so in-flight requests are still answered.
func (r *Responder) Stop() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.sub == nil {
		return nil
	}
	err := r.sub.Drain()
	r.sub = nil
	return err
}

func (r *Responder) handle(m *nats.Msg) {
	ctx := context.Background()
	req, err := decodeRequest(m.Data)
	if err != nil {
		r.opts.logger.Warn(ctx, "invalid bridge request", "error", err)
		r.respond(m, EncodingError, []byte(err.Error()))
		return
	}
	payload, err := boundary.IntsToBytes(req.Payload)
	if err != nil {
		r.respond(m, EncodingError, []byte(err.Error()))
		return
	}

	message, signal, err := r.native.Call(req.Name, payload)
	switch {
	case err != nil:
		r.opts.logger.Error(ctx, "engine call failed", "op", req.Name, "error", err)
		r.respond(m, EncodingError, []byte(err.Error()))
		return
	case signal != "":
		r.respond(m, EncodingSignal, []byte(signal))
		return
	}

	if message == nil {
		r.respond(m, "", nil)
		return
	}
	if r.opts.encoding == EncodingBinary {
		r.respond(m, EncodingBinary, message)
		return
	}
	body, err := encodeArrayReply(boundary.BytesToInts(message))
	if err != nil {
		r.respond(m, EncodingError, []byte(err.Error()))
		return
	}
	r.respond(m, EncodingArray, body)
}

// respond answers m. An empty enc sends an unlabelled reply, which the client
// reads as an absent result when body is empty.
func (r *Responder) respond(m *nats.Msg, enc Encoding, body []byte) {
	reply := nats.NewMsg(m.Reply)
	if enc != "" {
		reply.Header.Set(HeaderEncoding, string(enc))
	}
	reply.Data = body
	if err := m.RespondMsg(reply); err != nil {
		r.opts.logger.Error(context.Background(), "failed to respond to bridge request", "error", err)
	}
}
