package fastpgp

import (
	"fmt"
	"math"
	"time"

	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/fastpgp/fastpgp-go/pkg/fastpgp/model"
)

const initialBufferSize = 256

// nested is a nested record that is either present at off or absent from the
// request entirely.
type nested struct {
	off     flatbuffers.UOffsetT
	present bool
}

var absent = nested{}

func presentAt(off flatbuffers.UOffsetT) nested {
	return nested{off: off, present: true}
}

func (n nested) attach(b *flatbuffers.Builder, add func(*flatbuffers.Builder, flatbuffers.UOffsetT)) {
	if n.present {
		add(b, n.off)
	}
}

func newBuilder() *flatbuffers.Builder {
	return flatbuffers.NewBuilder(initialBufferSize)
}

func finish(b *flatbuffers.Builder, root flatbuffers.UOffsetT) []byte {
	b.Finish(root)
	return b.FinishedBytes()
}

func toInt32(field string, v int) (int32, error) {
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %s %d does not fit the wire type", ErrInvalidArgument, field, v)
	}
	return int32(v), nil
}

func encodeKeyOptions(b *flatbuffers.Builder, o *KeyOptions) (nested, error) {
	if o == nil {
		return absent, nil
	}

	var (
		hash        model.Hash
		cipher      model.Cipher
		compression model.Compression
		level       int32
		bits        int32
		ok          bool
		err         error
	)
	if o.Hash != nil {
		if hash, ok = o.Hash.wire(); !ok {
			return absent, fmt.Errorf("%w: unknown hash %s", ErrInvalidArgument, *o.Hash)
		}
	}
	if o.Cipher != nil {
		if cipher, ok = o.Cipher.wire(); !ok {
			return absent, fmt.Errorf("%w: unknown cipher %s", ErrInvalidArgument, *o.Cipher)
		}
	}
	if o.Compression != nil {
		if compression, ok = o.Compression.wire(); !ok {
			return absent, fmt.Errorf("%w: unknown compression %s", ErrInvalidArgument, *o.Compression)
		}
	}
	if o.CompressionLevel != nil {
		if *o.CompressionLevel < -1 || *o.CompressionLevel > 9 {
			return absent, fmt.Errorf("%w: compression level %d outside [-1, 9]", ErrInvalidArgument, *o.CompressionLevel)
		}
		level = int32(*o.CompressionLevel)
	}
	if o.RSABits != nil {
		if bits, err = toInt32("rsa bits", *o.RSABits); err != nil {
			return absent, err
		}
	}

	model.KeyOptionsStart(b)
	if o.Hash != nil {
		model.KeyOptionsAddHash(b, hash)
	}
	if o.Cipher != nil {
		model.KeyOptionsAddCipher(b, cipher)
	}
	if o.Compression != nil {
		model.KeyOptionsAddCompression(b, compression)
	}
	if o.CompressionLevel != nil {
		model.KeyOptionsAddCompressionLevel(b, level)
	}
	if o.RSABits != nil {
		model.KeyOptionsAddRsaBits(b, bits)
	}
	return presentAt(model.KeyOptionsEnd(b)), nil
}

func encodeFileHints(b *flatbuffers.Builder, h *FileHints) nested {
	if h == nil {
		return absent
	}
	var modTime string
	if !h.ModTime.IsZero() {
		modTime = h.ModTime.Format(time.RFC3339)
	}
	fileName := b.CreateString(h.FileName)
	mod := b.CreateString(modTime)

	model.FileHintsStart(b)
	model.FileHintsAddIsBinary(b, h.IsBinary)
	model.FileHintsAddFileName(b, fileName)
	model.FileHintsAddModTime(b, mod)
	return presentAt(model.FileHintsEnd(b))
}

func encodeEntity(b *flatbuffers.Builder, e *Entity) nested {
	if e == nil {
		return absent
	}
	publicKey := b.CreateString(e.PublicKey)
	privateKey := b.CreateString(e.PrivateKey)
	passphrase := b.CreateString(e.Passphrase)

	model.EntityStart(b)
	model.EntityAddPublicKey(b, publicKey)
	model.EntityAddPrivateKey(b, privateKey)
	model.EntityAddPassphrase(b, passphrase)
	return presentAt(model.EntityEnd(b))
}

func encodeOptions(b *flatbuffers.Builder, o Options) (flatbuffers.UOffsetT, error) {
	keyOptions, err := encodeKeyOptions(b, o.KeyOptions)
	if err != nil {
		return 0, err
	}
	name := b.CreateString(o.Name)
	comment := b.CreateString(o.Comment)
	email := b.CreateString(o.Email)
	passphrase := b.CreateString(o.Passphrase)

	model.OptionsStart(b)
	model.OptionsAddName(b, name)
	model.OptionsAddComment(b, comment)
	model.OptionsAddEmail(b, email)
	model.OptionsAddPassphrase(b, passphrase)
	keyOptions.attach(b, model.OptionsAddKeyOptions)
	return model.OptionsEnd(b), nil
}

func encodeDecrypt(message, privateKey, passphrase string, options *KeyOptions) ([]byte, error) {
	b := newBuilder()
	opts, err := encodeKeyOptions(b, options)
	if err != nil {
		return nil, err
	}
	msg := b.CreateString(message)
	priv := b.CreateString(privateKey)
	pass := b.CreateString(passphrase)

	model.DecryptRequestStart(b)
	model.DecryptRequestAddMessage(b, msg)
	model.DecryptRequestAddPrivateKey(b, priv)
	model.DecryptRequestAddPassphrase(b, pass)
	opts.attach(b, model.DecryptRequestAddOptions)
	return finish(b, model.DecryptRequestEnd(b)), nil
}

func encodeDecryptFile(inputFile, outputFile, privateKey, passphrase string, options *KeyOptions) ([]byte, error) {
	b := newBuilder()
	opts, err := encodeKeyOptions(b, options)
	if err != nil {
		return nil, err
	}
	in := b.CreateString(inputFile)
	out := b.CreateString(outputFile)
	priv := b.CreateString(privateKey)
	pass := b.CreateString(passphrase)

	model.DecryptFileRequestStart(b)
	model.DecryptFileRequestAddInput(b, in)
	model.DecryptFileRequestAddOutput(b, out)
	model.DecryptFileRequestAddPrivateKey(b, priv)
	model.DecryptFileRequestAddPassphrase(b, pass)
	opts.attach(b, model.DecryptFileRequestAddOptions)
	return finish(b, model.DecryptFileRequestEnd(b)), nil
}

func encodeEncrypt(message, publicKey string, signed *Entity, hints *FileHints, options *KeyOptions) ([]byte, error) {
	b := newBuilder()
	opts, err := encodeKeyOptions(b, options)
	if err != nil {
		return nil, err
	}
	fh := encodeFileHints(b, hints)
	ent := encodeEntity(b, signed)
	msg := b.CreateString(message)
	pub := b.CreateString(publicKey)

	model.EncryptRequestStart(b)
	model.EncryptRequestAddMessage(b, msg)
	model.EncryptRequestAddPublicKey(b, pub)
	ent.attach(b, model.EncryptRequestAddSigned)
	fh.attach(b, model.EncryptRequestAddFileHints)
	opts.attach(b, model.EncryptRequestAddOptions)
	return finish(b, model.EncryptRequestEnd(b)), nil
}

func encodeEncryptFile(inputFile, outputFile, publicKey string, signed *Entity, hints *FileHints, options *KeyOptions) ([]byte, error) {
	b := newBuilder()
	opts, err := encodeKeyOptions(b, options)
	if err != nil {
		return nil, err
	}
	fh := encodeFileHints(b, hints)
	ent := encodeEntity(b, signed)
	in := b.CreateString(inputFile)
	out := b.CreateString(outputFile)
	pub := b.CreateString(publicKey)

	model.EncryptFileRequestStart(b)
	model.EncryptFileRequestAddInput(b, in)
	model.EncryptFileRequestAddOutput(b, out)
	model.EncryptFileRequestAddPublicKey(b, pub)
	ent.attach(b, model.EncryptFileRequestAddSigned)
	fh.attach(b, model.EncryptFileRequestAddFileHints)
	opts.attach(b, model.EncryptFileRequestAddOptions)
	return finish(b, model.EncryptFileRequestEnd(b)), nil
}

func encodeSign(message, publicKey, privateKey, passphrase string, options *KeyOptions) ([]byte, error) {
	b := newBuilder()
	opts, err := encodeKeyOptions(b, options)
	if err != nil {
		return nil, err
	}
	msg := b.CreateString(message)
	pub := b.CreateString(publicKey)
	priv := b.CreateString(privateKey)
	pass := b.CreateString(passphrase)

	model.SignRequestStart(b)
	model.SignRequestAddMessage(b, msg)
	model.SignRequestAddPublicKey(b, pub)
	model.SignRequestAddPrivateKey(b, priv)
	model.SignRequestAddPassphrase(b, pass)
	opts.attach(b, model.SignRequestAddOptions)
	return finish(b, model.SignRequestEnd(b)), nil
}

func encodeSignFile(inputFile, publicKey, privateKey, passphrase string, options *KeyOptions) ([]byte, error) {
	b := newBuilder()
	opts, err := encodeKeyOptions(b, options)
	if err != nil {
		return nil, err
	}
	in := b.CreateString(inputFile)
	pub := b.CreateString(publicKey)
	priv := b.CreateString(privateKey)
	pass := b.CreateString(passphrase)

	model.SignFileRequestStart(b)
	model.SignFileRequestAddInput(b, in)
	model.SignFileRequestAddPublicKey(b, pub)
	model.SignFileRequestAddPrivateKey(b, priv)
	model.SignFileRequestAddPassphrase(b, pass)
	opts.attach(b, model.SignFileRequestAddOptions)
	return finish(b, model.SignFileRequestEnd(b)), nil
}

func encodeVerify(signature, message, publicKey string) []byte {
	b := newBuilder()
	sig := b.CreateString(signature)
	msg := b.CreateString(message)
	pub := b.CreateString(publicKey)

	model.VerifyRequestStart(b)
	model.VerifyRequestAddSignature(b, sig)
	model.VerifyRequestAddMessage(b, msg)
	model.VerifyRequestAddPublicKey(b, pub)
	return finish(b, model.VerifyRequestEnd(b))
}

func encodeVerifyFile(signature, inputFile, publicKey string) []byte {
	b := newBuilder()
	sig := b.CreateString(signature)
	in := b.CreateString(inputFile)
	pub := b.CreateString(publicKey)

	model.VerifyFileRequestStart(b)
	model.VerifyFileRequestAddSignature(b, sig)
	model.VerifyFileRequestAddInput(b, in)
	model.VerifyFileRequestAddPublicKey(b, pub)
	return finish(b, model.VerifyFileRequestEnd(b))
}

func encodeDecryptSymmetric(message, passphrase string, options *KeyOptions) ([]byte, error) {
	b := newBuilder()
	opts, err := encodeKeyOptions(b, options)
	if err != nil {
		return nil, err
	}
	msg := b.CreateString(message)
	pass := b.CreateString(passphrase)

	model.DecryptSymmetricRequestStart(b)
	model.DecryptSymmetricRequestAddMessage(b, msg)
	model.DecryptSymmetricRequestAddPassphrase(b, pass)
	opts.attach(b, model.DecryptSymmetricRequestAddOptions)
	return finish(b, model.DecryptSymmetricRequestEnd(b)), nil
}

func encodeDecryptSymmetricFile(inputFile, outputFile, passphrase string, options *KeyOptions) ([]byte, error) {
	b := newBuilder()
	opts, err := encodeKeyOptions(b, options)
	if err != nil {
		return nil, err
	}
	in := b.CreateString(inputFile)
	out := b.CreateString(outputFile)
	pass := b.CreateString(passphrase)

	model.DecryptSymmetricFileRequestStart(b)
	model.DecryptSymmetricFileRequestAddInput(b, in)
	model.DecryptSymmetricFileRequestAddOutput(b, out)
	model.DecryptSymmetricFileRequestAddPassphrase(b, pass)
	opts.attach(b, model.DecryptSymmetricFileRequestAddOptions)
	return finish(b, model.DecryptSymmetricFileRequestEnd(b)), nil
}

func encodeEncryptSymmetric(message, passphrase string, hints *FileHints, options *KeyOptions) ([]byte, error) {
	b := newBuilder()
	opts, err := encodeKeyOptions(b, options)
	if err != nil {
		return nil, err
	}
	fh := encodeFileHints(b, hints)
	msg := b.CreateString(message)
	pass := b.CreateString(passphrase)

	model.EncryptSymmetricRequestStart(b)
	model.EncryptSymmetricRequestAddMessage(b, msg)
	model.EncryptSymmetricRequestAddPassphrase(b, pass)
	fh.attach(b, model.EncryptSymmetricRequestAddFileHints)
	opts.attach(b, model.EncryptSymmetricRequestAddOptions)
	return finish(b, model.EncryptSymmetricRequestEnd(b)), nil
}

func encodeEncryptSymmetricFile(inputFile, outputFile, passphrase string, hints *FileHints, options *KeyOptions) ([]byte, error) {
	b := newBuilder()
	opts, err := encodeKeyOptions(b, options)
	if err != nil {
		return nil, err
	}
	fh := encodeFileHints(b, hints)
	in := b.CreateString(inputFile)
	out := b.CreateString(outputFile)
	pass := b.CreateString(passphrase)

	model.EncryptSymmetricFileRequestStart(b)
	model.EncryptSymmetricFileRequestAddInput(b, in)
	model.EncryptSymmetricFileRequestAddOutput(b, out)
	model.EncryptSymmetricFileRequestAddPassphrase(b, pass)
	fh.attach(b, model.EncryptSymmetricFileRequestAddFileHints)
	opts.attach(b, model.EncryptSymmetricFileRequestAddOptions)
	return finish(b, model.EncryptSymmetricFileRequestEnd(b)), nil
}

func encodeGenerate(options Options) ([]byte, error) {
	b := newBuilder()
	opts, err := encodeOptions(b, options)
	if err != nil {
		return nil, err
	}

	model.GenerateRequestStart(b)
	model.GenerateRequestAddOptions(b, opts)
	return finish(b, model.GenerateRequestEnd(b)), nil
}
