package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/fastpgp/fastpgp-go/pkg/fastpgp/boundary"
	"github.com/fastpgp/fastpgp-go/pkg/fastpgp/logging"
)

type handler func(e *Engine, payload []byte) []byte

var handlers = map[string]handler{
	boundary.OpDecrypt:              (*Engine).handleDecrypt,
	boundary.OpDecryptFile:          (*Engine).handleDecryptFile,
	boundary.OpEncrypt:              (*Engine).handleEncrypt,
	boundary.OpEncryptFile:          (*Engine).handleEncryptFile,
	boundary.OpSign:                 (*Engine).handleSign,
	boundary.OpSignFile:             (*Engine).handleSignFile,
	boundary.OpVerify:               (*Engine).handleVerify,
	boundary.OpVerifyFile:           (*Engine).handleVerifyFile,
	boundary.OpDecryptSymmetric:     (*Engine).handleDecryptSymmetric,
	boundary.OpDecryptSymmetricFile: (*Engine).handleDecryptSymmetricFile,
	boundary.OpEncryptSymmetric:     (*Engine).handleEncryptSymmetric,
	boundary.OpEncryptSymmetricFile: (*Engine).handleEncryptSymmetricFile,
	boundary.OpGenerate:             (*Engine).handleGenerate,
}

// Engine executes boundary operations in-process. It holds no per-call state
// and is safe for concurrent use.
type Engine struct {
	logger logging.Logger
	now    func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine logger.
func WithLogger(l logging.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithClock overrides the time source used for key creation and signatures.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// New returns a reference engine.
func New(opts ...Option) *Engine {
	e := &Engine{
		logger: logging.New(nil),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Call implements boundary.Native.
func (e *Engine) Call(name string, payload []byte) (message []byte, signal string, err error) {
	h, ok := handlers[name]
	if !ok {
		return nil, fmt.Sprintf("unknown operation %q", name), nil
	}
	defer func() {
		if r := recover(); r != nil {
			message = nil
			signal = fmt.Sprintf("%s: unreadable request: %v", name, r)
		}
	}()
	start := e.now()
	message = h(e, payload)
	e.logger.Debug(context.Background(), "engine call",
		"op", name,
		"request_bytes", len(payload),
		"response_bytes", len(message),
		"elapsed", e.now().Sub(start),
	)
	return message, "", nil
}
