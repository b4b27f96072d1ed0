package fastpgp

import (
	"errors"
	"fmt"

	"github.com/fastpgp/fastpgp-go/internal/bindings"
)

var (
	// ErrEmptyResult reports that the transport produced no result at all.
	ErrEmptyResult = errors.New("fastpgp: empty result")

	// ErrEmptyOutput reports a response with no error whose required output is
	// structurally absent.
	ErrEmptyOutput = errors.New("fastpgp: empty output")

	// ErrMalformedResponse reports a buffer that cannot be read as the expected
	// response record.
	ErrMalformedResponse = errors.New("fastpgp: malformed response")

	// ErrInvalidArgument reports a call argument the encoder refuses to put on
	// the wire.
	ErrInvalidArgument = errors.New("fastpgp: invalid argument")

	// ErrEngine matches every *EngineError via errors.Is.
	ErrEngine = errors.New("fastpgp: engine error")

	// ErrNilTransport is returned when a bridge is built without a transport.
	ErrNilTransport = errors.New("fastpgp: transport must not be nil")

	// ErrBridgeClosed is returned by operations on a closed bridge.
	ErrBridgeClosed = errors.New("fastpgp: bridge has been closed")

	// ErrNotBuilt reports that the native library was not linked into the
	// current binary.
	ErrNotBuilt = bindings.ErrNotBuilt

	// ErrCGONotEnabled signals that the package was compiled without cgo.
	ErrCGONotEnabled = bindings.ErrCGONotEnabled
)

// EngineError carries an error string reported by the engine, either in the
// error field of a response record or as the synchronous call signal.
type EngineError struct {
	// Op is the boundary operation name.
	Op string
	// Response names the record that carried the failure, for example
	// "StringResponse", or "signal" for the synchronous error signal.
	Response string
	// Message is the engine's error string, unmodified.
	Message string
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("fastpgp: %s (%s): %s", e.Op, e.Response, e.Message)
}

// Is makes every EngineError match ErrEngine.
func (e *EngineError) Is(target error) bool {
	return target == ErrEngine
}

// RemapError converts binding-layer errors to public API errors.
func RemapError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, bindings.ErrNotBuilt):
		return ErrNotBuilt
	case errors.Is(err, bindings.ErrCGONotEnabled):
		return ErrCGONotEnabled
	case errors.Is(err, bindings.ErrEmptyReturn):
		return ErrEmptyResult
	}
	return err
}
