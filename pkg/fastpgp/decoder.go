package fastpgp

import (
	"fmt"

	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/fastpgp/fastpgp-go/pkg/fastpgp/model"
)

// Response record names, used to tag failures.
const (
	respString  = "StringResponse"
	respInt     = "IntResponse"
	respBool    = "BoolResponse"
	respKeyPair = "KeyPairResponse"
)

// Output slot of StringResponse; error lives in slot 1.
const outputSlot = 0

// decoded is a successfully decoded response value. present is false when the
// engine sent neither an error nor an output and the value is the type's
// fallback.
type decoded[T any] struct {
	value   T
	present bool
}

// guard converts a panic raised by the FlatBuffers accessors on a malformed
// buffer into ErrMalformedResponse.
func guard(op, response string, err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("%w: %s %s: %v", ErrMalformedResponse, op, response, r)
	}
}

func checkBuffer(op, response string, buf []byte) error {
	if len(buf) < flatbuffers.SizeUOffsetT {
		return fmt.Errorf("%w: %s %s: %d byte buffer", ErrMalformedResponse, op, response, len(buf))
	}
	return nil
}

func engineFailure(op, response string, msg []byte) error {
	if len(msg) == 0 {
		return nil
	}
	return &EngineError{Op: op, Response: response, Message: string(msg)}
}

func decodeString(op string, buf []byte) (res decoded[string], err error) {
	defer guard(op, respString, &err)
	if err = checkBuffer(op, respString, buf); err != nil {
		return res, err
	}
	r := model.GetRootAsStringResponse(buf, 0)
	if err = engineFailure(op, respString, r.Error()); err != nil {
		return res, err
	}
	res.present = model.HasField(r.Table(), outputSlot)
	res.value = string(r.Output())
	return res, nil
}

func decodeInt(op string, buf []byte) (res decoded[int64], err error) {
	defer guard(op, respInt, &err)
	if err = checkBuffer(op, respInt, buf); err != nil {
		return res, err
	}
	r := model.GetRootAsIntResponse(buf, 0)
	if err = engineFailure(op, respInt, r.Error()); err != nil {
		return res, err
	}
	if out := r.Output(); out != nil {
		res.value, res.present = *out, true
	}
	return res, nil
}

func decodeBool(op string, buf []byte) (res decoded[bool], err error) {
	defer guard(op, respBool, &err)
	if err = checkBuffer(op, respBool, buf); err != nil {
		return res, err
	}
	r := model.GetRootAsBoolResponse(buf, 0)
	if err = engineFailure(op, respBool, r.Error()); err != nil {
		return res, err
	}
	if out := r.Output(); out != nil {
		res.value, res.present = *out, true
	}
	return res, nil
}

func decodeKeyPair(op string, buf []byte) (res decoded[KeyPair], err error) {
	defer guard(op, respKeyPair, &err)
	if err = checkBuffer(op, respKeyPair, buf); err != nil {
		return res, err
	}
	r := model.GetRootAsKeyPairResponse(buf, 0)
	if err = engineFailure(op, respKeyPair, r.Error()); err != nil {
		return res, err
	}
	out := r.Output(nil)
	if out == nil {
		return res, fmt.Errorf("%w: %s %s", ErrEmptyOutput, op, respKeyPair)
	}
	res.present = true
	res.value = KeyPair{
		PublicKey:  string(out.PublicKey()),
		PrivateKey: string(out.PrivateKey()),
	}
	return res, nil
}
