package fastpgp

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/fastpgp/fastpgp-go/internal/bindings"
	"github.com/fastpgp/fastpgp-go/pkg/fastpgp/engine"
	"github.com/fastpgp/fastpgp-go/pkg/fastpgp/logging"
	"github.com/fastpgp/fastpgp-go/pkg/fastpgp/loopback"
	"github.com/fastpgp/fastpgp-go/pkg/fastpgp/natsport"
	"github.com/fastpgp/fastpgp-go/pkg/fastpgp/wasmhost"
)

// Bridge exposes the OpenPGP operations of an engine reached through one
// Transport. The strategy is chosen when the Bridge is built and never
// changes. A Bridge is safe for concurrent use.
type Bridge struct {
	transport Transport
	logger    logging.Logger
	closers   []func(context.Context) error
	closed    atomic.Bool
}

// Option configures a Bridge.
type Option func(*Bridge)

// WithLogger sets the bridge logger. Open hands the same logger to the
// backend it builds. Values under logging.SecretKeys are always redacted.
func WithLogger(l logging.Logger) Option {
	return func(b *Bridge) {
		if l != nil {
			b.logger = logging.Redacting(l)
		}
	}
}

func newBridge(opts []Option) *Bridge {
	b := &Bridge{logger: logging.Redacting(logging.New(nil))}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// New returns a Bridge over an existing transport.
func New(t Transport, opts ...Option) (*Bridge, error) {
	if t == nil {
		return nil, ErrNilTransport
	}
	b := newBridge(opts)
	b.transport = t
	return b, nil
}

// Open builds the transport described by cfg and returns a Bridge owning it.
func Open(ctx context.Context, cfg Config, opts ...Option) (*Bridge, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	b := newBridge(opts)
	log := b.logger.With("backend", string(cfg.Backend))

	switch cfg.Backend {
	case BackendNative:
		h, err := bindings.Open(cfg.toBindings())
		if err != nil {
			return nil, RemapError(err)
		}
		b.transport = NewDirectTransport(&nativeLibrary{handle: h})
		b.closers = append(b.closers, func(context.Context) error {
			return RemapError(bindings.Close(h))
		})
	case BackendWasm:
		host, err := wasmhost.Load(ctx, cfg.WasmPath, wasmhost.WithLogger(log))
		if err != nil {
			return nil, err
		}
		b.transport = NewDirectTransport(host)
		b.closers = append(b.closers, host.Close)
	case BackendEmbedded:
		b.transport = NewDirectTransport(engine.New(engine.WithLogger(log)))
	case BackendNATS:
		client, err := natsport.Dial(cfg.NATS.URL,
			natsport.WithSubject(cfg.NATS.Subject),
			natsport.WithTimeout(cfg.NATS.Timeout),
			natsport.WithLogger(log),
		)
		if err != nil {
			return nil, err
		}
		b.transport = NewArrayTransport(client)
		b.closers = append(b.closers, func(context.Context) error { return client.Close() })
	case BackendLoopback:
		ep := loopback.New(engine.New(engine.WithLogger(log)))
		b.transport = NewArrayTransport(ep)
		b.closers = append(b.closers, func(context.Context) error { return ep.Close() })
	default:
		return nil, fmt.Errorf("%w: backend %q", ErrInvalidArgument, cfg.Backend)
	}

	log.Info(ctx, "bridge opened", "strategy", string(b.transport.Strategy()))
	return b, nil
}

// Strategy reports the strategy fixed for this Bridge.
func (b *Bridge) Strategy() Strategy {
	return b.transport.Strategy()
}

// Close releases the resources the Bridge owns. The first call returns the
// joined release errors; later calls return ErrBridgeClosed.
func (b *Bridge) Close(ctx context.Context) error {
	if b == nil {
		return nil
	}
	if b.closed.Swap(true) {
		return ErrBridgeClosed
	}
	var errs []error
	for i := len(b.closers) - 1; i >= 0; i-- {
		if err := b.closers[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// invoke hands one encoded request to the transport.
func (b *Bridge) invoke(ctx context.Context, op string, payload []byte) ([]byte, error) {
	if b.closed.Load() {
		return nil, ErrBridgeClosed
	}
	start := time.Now()
	buf, err := b.transport.Invoke(ctx, op, payload)
	if err != nil {
		b.logger.Warn(ctx, "bridge call failed",
			"op", op,
			"strategy", string(b.transport.Strategy()),
			"error", err,
		)
		return nil, err
	}
	b.logger.Debug(ctx, "bridge call",
		"op", op,
		"strategy", string(b.transport.Strategy()),
		"request_bytes", len(payload),
		"response_bytes", len(buf),
		"elapsed", time.Since(start),
		logging.Redacted("payload"),
	)
	return buf, nil
}
