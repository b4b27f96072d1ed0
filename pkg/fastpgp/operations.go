package fastpgp

import (
	"context"

	"github.com/fastpgp/fastpgp-go/pkg/fastpgp/boundary"
)

// roundTrip sends one encoded request and decodes the typed response. An
// absent output with no error is returned as the fallback value and logged,
// since it usually means the engine dropped a field.
func roundTrip[T any](ctx context.Context, b *Bridge, op string, payload []byte, decode func(string, []byte) (decoded[T], error)) (T, error) {
	var zero T
	buf, err := b.invoke(ctx, op, payload)
	if err != nil {
		return zero, err
	}
	res, err := decode(op, buf)
	if err != nil {
		b.logger.Warn(ctx, "bridge response rejected", "op", op, "error", err)
		return zero, err
	}
	if !res.present {
		b.logger.Warn(ctx, "engine response carries no output", "op", op)
	}
	return res.value, nil
}

// Decrypt decrypts an armored message with privateKey.
func (b *Bridge) Decrypt(ctx context.Context, message, privateKey, passphrase string, options *KeyOptions) (string, error) {
	payload, err := encodeDecrypt(message, privateKey, passphrase, options)
	if err != nil {
		return "", err
	}
	return roundTrip(ctx, b, boundary.OpDecrypt, payload, decodeString)
}

// DecryptFile decrypts inputFile into outputFile and returns the number of
// bytes written.
func (b *Bridge) DecryptFile(ctx context.Context, inputFile, outputFile, privateKey, passphrase string, options *KeyOptions) (int64, error) {
	payload, err := encodeDecryptFile(inputFile, outputFile, privateKey, passphrase, options)
	if err != nil {
		return 0, err
	}
	return roundTrip(ctx, b, boundary.OpDecryptFile, payload, decodeInt)
}

// Encrypt encrypts message to publicKey. When signed is non-nil the message
// is also signed by that entity.
func (b *Bridge) Encrypt(ctx context.Context, message, publicKey string, signed *Entity, hints *FileHints, options *KeyOptions) (string, error) {
	payload, err := encodeEncrypt(message, publicKey, signed, hints, options)
	if err != nil {
		return "", err
	}
	return roundTrip(ctx, b, boundary.OpEncrypt, payload, decodeString)
}

// EncryptFile encrypts inputFile into outputFile and returns the number of
// bytes written.
func (b *Bridge) EncryptFile(ctx context.Context, inputFile, outputFile, publicKey string, signed *Entity, hints *FileHints, options *KeyOptions) (int64, error) {
	payload, err := encodeEncryptFile(inputFile, outputFile, publicKey, signed, hints, options)
	if err != nil {
		return 0, err
	}
	return roundTrip(ctx, b, boundary.OpEncryptFile, payload, decodeInt)
}

// Sign returns an armored detached signature of message.
func (b *Bridge) Sign(ctx context.Context, message, publicKey, privateKey, passphrase string, options *KeyOptions) (string, error) {
	payload, err := encodeSign(message, publicKey, privateKey, passphrase, options)
	if err != nil {
		return "", err
	}
	return roundTrip(ctx, b, boundary.OpSign, payload, decodeString)
}

// SignFile returns an armored detached signature of the contents of
// inputFile.
func (b *Bridge) SignFile(ctx context.Context, inputFile, publicKey, privateKey, passphrase string, options *KeyOptions) (string, error) {
	payload, err := encodeSignFile(inputFile, publicKey, privateKey, passphrase, options)
	if err != nil {
		return "", err
	}
	return roundTrip(ctx, b, boundary.OpSignFile, payload, decodeString)
}

// Verify reports whether signature is a valid signature of message under
// publicKey. An invalid signature is reported as false, not as an error.
func (b *Bridge) Verify(ctx context.Context, signature, message, publicKey string) (bool, error) {
	return roundTrip(ctx, b, boundary.OpVerify, encodeVerify(signature, message, publicKey), decodeBool)
}

// VerifyFile is Verify over the contents of inputFile.
func (b *Bridge) VerifyFile(ctx context.Context, signature, inputFile, publicKey string) (bool, error) {
	return roundTrip(ctx, b, boundary.OpVerifyFile, encodeVerifyFile(signature, inputFile, publicKey), decodeBool)
}

// DecryptSymmetric decrypts a passphrase-encrypted message.
func (b *Bridge) DecryptSymmetric(ctx context.Context, message, passphrase string, options *KeyOptions) (string, error) {
	payload, err := encodeDecryptSymmetric(message, passphrase, options)
	if err != nil {
		return "", err
	}
	return roundTrip(ctx, b, boundary.OpDecryptSymmetric, payload, decodeString)
}

// DecryptSymmetricFile decrypts inputFile into outputFile with a passphrase
// and returns the number of bytes written.
func (b *Bridge) DecryptSymmetricFile(ctx context.Context, inputFile, outputFile, passphrase string, options *KeyOptions) (int64, error) {
	payload, err := encodeDecryptSymmetricFile(inputFile, outputFile, passphrase, options)
	if err != nil {
		return 0, err
	}
	return roundTrip(ctx, b, boundary.OpDecryptSymmetricFile, payload, decodeInt)
}

// EncryptSymmetric encrypts message with a passphrase.
func (b *Bridge) EncryptSymmetric(ctx context.Context, message, passphrase string, hints *FileHints, options *KeyOptions) (string, error) {
	payload, err := encodeEncryptSymmetric(message, passphrase, hints, options)
	if err != nil {
		return "", err
	}
	return roundTrip(ctx, b, boundary.OpEncryptSymmetric, payload, decodeString)
}

// EncryptSymmetricFile encrypts inputFile into outputFile with a passphrase
// and returns the number of bytes written.
func (b *Bridge) EncryptSymmetricFile(ctx context.Context, inputFile, outputFile, passphrase string, hints *FileHints, options *KeyOptions) (int64, error) {
	payload, err := encodeEncryptSymmetricFile(inputFile, outputFile, passphrase, hints, options)
	if err != nil {
		return 0, err
	}
	return roundTrip(ctx, b, boundary.OpEncryptSymmetricFile, payload, decodeInt)
}

// Generate creates a new key pair.
func (b *Bridge) Generate(ctx context.Context, options Options) (KeyPair, error) {
	payload, err := encodeGenerate(options)
	if err != nil {
		return KeyPair{}, err
	}
	return roundTrip(ctx, b, boundary.OpGenerate, payload, decodeKeyPair)
}
