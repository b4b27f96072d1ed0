package natsport

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/fastpgp/fastpgp-go/pkg/fastpgp/boundary"
	"github.com/fastpgp/fastpgp-go/pkg/fastpgp/logging"
)

const (
	// DefaultSubject is the subject requests are published on.
	DefaultSubject = "fastpgp.bridge"
	// DefaultQueue is the queue group responders join.
	DefaultQueue = "fastpgp-engines"
	// DefaultTimeout bounds a request whose context has no deadline.
	DefaultTimeout = 30 * time.Second
)

type options struct {
	subject  string
	queue    string
	timeout  time.Duration
	encoding Encoding
	logger   logging.Logger
}

func defaultOptions() options {
	return options{
		subject:  DefaultSubject,
		queue:    DefaultQueue,
		timeout:  DefaultTimeout,
		encoding: EncodingArray,
		logger:   logging.New(nil),
	}
}

// Option configures a Client or a Responder.
type Option func(*options)

// WithSubject sets the request subject.
func WithSubject(subject string) Option {
	return func(o *options) {
		if subject != "" {
			o.subject = subject
		}
	}
}

// WithQueue sets the responder queue group.
func WithQueue(queue string) Option {
	return func(o *options) { o.queue = queue }
}

// WithTimeout sets the client request timeout used when the caller's context
// carries no deadline.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.timeout = d
		}
	}
}

// WithEncoding sets the responder reply encoding.
func WithEncoding(enc Encoding) Option {
	return func(o *options) { o.encoding = enc }
}

// WithLogger sets the logger.
func WithLogger(l logging.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Client implements boundary.ArrayEndpoint over NATS request/reply.
type Client struct {
	nc    *nats.Conn
	owned bool
	opts  options
}

// NewClient wraps an existing connection. The caller keeps ownership of nc.
func NewClient(nc *nats.Conn, opts ...Option) *Client {
	c := &Client{nc: nc, opts: defaultOptions()}
	for _, opt := range opts {
		opt(&c.opts)
	}
	return c
}

// Dial connects to url and returns a client owning the connection.
func Dial(url string, opts ...Option) (*Client, error) {
	nc, err := nats.Connect(url, nats.Name("fastpgp-bridge"))
	if err != nil {
		return nil, fmt.Errorf("natsport: connect %s: %w", url, err)
	}
	c := NewClient(nc, opts...)
	c.owned = true
	return c, nil
}

// Subject returns the request subject.
func (c *Client) Subject() string { return c.opts.subject }

// Send implements boundary.ArrayEndpoint.
func (c *Client) Send(ctx context.Context, name string, payload []int) <-chan boundary.ArrayReply {
	ch := make(chan boundary.ArrayReply, 1)
	go func() {
		defer close(ch)
		reply, ok := c.request(ctx, name, payload)
		if ok {
			ch <- reply
		}
	}()
	return ch
}

func (c *Client) request(ctx context.Context, name string, payload []int) (boundary.ArrayReply, bool) {
	data, err := encodeRequest(name, payload)
	if err != nil {
		return boundary.ArrayReply{Err: err}, true
	}
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.opts.timeout)
		defer cancel()
	}

	msg := nats.NewMsg(c.opts.subject)
	msg.Data = data
	resp, err := c.nc.RequestMsgWithContext(ctx, msg)
	if err != nil {
		if errors.Is(err, nats.ErrNoResponders) {
			c.opts.logger.Warn(ctx, "no engine listening", "subject", c.opts.subject, "op", name)
		}
		return boundary.ArrayReply{Err: fmt.Errorf("natsport: %s: %w", name, err)}, true
	}
	return decodeReply(name, resp)
}

func decodeReply(name string, resp *nats.Msg) (boundary.ArrayReply, bool) {
	switch Encoding(resp.Header.Get(HeaderEncoding)) {
	case EncodingBinary:
		if resp.Data == nil {
			return boundary.ArrayReply{Bytes: []byte{}}, true
		}
		return boundary.ArrayReply{Bytes: resp.Data}, true
	case EncodingArray:
		ints, err := decodeArrayReply(resp.Data)
		if err != nil {
			return boundary.ArrayReply{Err: err}, true
		}
		return boundary.ArrayReply{Ints: ints}, true
	case EncodingSignal:
		return boundary.ArrayReply{Err: &boundary.SignalError{Op: name, Signal: string(resp.Data)}}, true
	case EncodingError:
		return boundary.ArrayReply{Err: fmt.Errorf("natsport: responder: %s", resp.Data)}, true
	default:
		// An unlabelled empty reply is an absent result.
		if len(resp.Data) == 0 {
			return boundary.ArrayReply{}, false
		}
		return boundary.ArrayReply{Err: fmt.Errorf("natsport: %s: unlabelled reply", name)}, true
	}
}

// Close closes the connection if the client owns it.
func (c *Client) Close() error {
	if c.owned && c.nc != nil {
		c.nc.Close()
	}
	return nil
}

var _ boundary.ArrayEndpoint = (*Client)(nil)
