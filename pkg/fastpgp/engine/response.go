package engine

import (
	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/fastpgp/fastpgp-go/pkg/fastpgp/model"
)

func errorString(b *flatbuffers.Builder, err error) flatbuffers.UOffsetT {
	return b.CreateString(err.Error())
}

func stringResponse(out string, err error) []byte {
	b := flatbuffers.NewBuilder(len(out) + 64)
	if err != nil {
		msg := errorString(b, err)
		model.StringResponseStart(b)
		model.StringResponseAddError(b, msg)
		model.FinishStringResponseBuffer(b, model.StringResponseEnd(b))
		return b.FinishedBytes()
	}
	o := b.CreateString(out)
	model.StringResponseStart(b)
	model.StringResponseAddOutput(b, o)
	model.FinishStringResponseBuffer(b, model.StringResponseEnd(b))
	return b.FinishedBytes()
}

func intResponse(out int64, err error) []byte {
	b := flatbuffers.NewBuilder(64)
	var msg flatbuffers.UOffsetT
	if err != nil {
		msg = errorString(b, err)
	}
	model.IntResponseStart(b)
	if err != nil {
		model.IntResponseAddError(b, msg)
	} else {
		model.IntResponseAddOutput(b, out)
	}
	model.FinishIntResponseBuffer(b, model.IntResponseEnd(b))
	return b.FinishedBytes()
}

func boolResponse(out bool, err error) []byte {
	b := flatbuffers.NewBuilder(64)
	var msg flatbuffers.UOffsetT
	if err != nil {
		msg = errorString(b, err)
	}
	model.BoolResponseStart(b)
	if err != nil {
		model.BoolResponseAddError(b, msg)
	} else {
		model.BoolResponseAddOutput(b, out)
	}
	model.FinishBoolResponseBuffer(b, model.BoolResponseEnd(b))
	return b.FinishedBytes()
}

func keyPairResponse(publicKey, privateKey string, err error) []byte {
	b := flatbuffers.NewBuilder(len(publicKey) + len(privateKey) + 128)
	if err != nil {
		msg := errorString(b, err)
		model.KeyPairResponseStart(b)
		model.KeyPairResponseAddError(b, msg)
		model.FinishKeyPairResponseBuffer(b, model.KeyPairResponseEnd(b))
		return b.FinishedBytes()
	}
	pub := b.CreateString(publicKey)
	priv := b.CreateString(privateKey)
	model.KeyPairStart(b)
	model.KeyPairAddPublicKey(b, pub)
	model.KeyPairAddPrivateKey(b, priv)
	pair := model.KeyPairEnd(b)
	model.KeyPairResponseStart(b)
	model.KeyPairResponseAddOutput(b, pair)
	model.FinishKeyPairResponseBuffer(b, model.KeyPairResponseEnd(b))
	return b.FinishedBytes()
}
