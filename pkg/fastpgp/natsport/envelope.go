package natsport

import (
	"encoding/json"
	"errors"
	"fmt"
)

// HeaderEncoding names the reply header announcing the reply shape.
const HeaderEncoding = "Fastpgp-Encoding"

// Encoding is the shape of a reply body.
type Encoding string

const (
	// EncodingArray is a JSON arrayReply.
	EncodingArray Encoding = "array"
	// EncodingBinary is the raw response buffer.
	EncodingBinary Encoding = "binary"
	// EncodingSignal is the engine's error signal as UTF-8 text.
	EncodingSignal Encoding = "signal"
	// EncodingError is a responder-side failure as UTF-8 text.
	EncodingError Encoding = "error"
)

// ErrLengthMismatch reports an array reply whose length field disagrees with
// its data.
var ErrLengthMismatch = errors.New("natsport: array reply length mismatch")

type request struct {
	Name    string `json:"name"`
	Payload []int  `json:"payload"`
}

type arrayReply struct {
	Length int   `json:"length"`
	Data   []int `json:"data"`
}

func encodeRequest(name string, payload []int) ([]byte, error) {
	if payload == nil {
		payload = []int{}
	}
	return json.Marshal(request{Name: name, Payload: payload})
}

func decodeRequest(data []byte) (request, error) {
	var req request
	if err := json.Unmarshal(data, &req); err != nil {
		return req, fmt.Errorf("natsport: decode request: %w", err)
	}
	if req.Name == "" {
		return req, errors.New("natsport: request without operation name")
	}
	return req, nil
}

func encodeArrayReply(data []int) ([]byte, error) {
	return json.Marshal(arrayReply{Length: len(data), Data: data})
}

func decodeArrayReply(body []byte) ([]int, error) {
	var r arrayReply
	if err := json.Unmarshal(body, &r); err != nil {
		return nil, fmt.Errorf("natsport: decode reply: %w", err)
	}
	if r.Length != len(r.Data) {
		return nil, fmt.Errorf("%w: length %d, %d elements", ErrLengthMismatch, r.Length, len(r.Data))
	}
	if r.Data == nil {
		r.Data = []int{}
	}
	return r.Data, nil
}
