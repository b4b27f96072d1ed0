package fastpgp

import (
	"fmt"
	"time"

	"github.com/fastpgp/fastpgp-go/pkg/fastpgp/model"
)

// Cipher selects the symmetric cipher used by the engine.
type Cipher int

const (
	CipherAES128 Cipher = iota
	CipherAES192
	CipherAES256
)

func (c Cipher) String() string {
	switch c {
	case CipherAES128:
		return "aes128"
	case CipherAES192:
		return "aes192"
	case CipherAES256:
		return "aes256"
	default:
		return fmt.Sprintf("Cipher(%d)", int(c))
	}
}

func (c Cipher) wire() (model.Cipher, bool) {
	switch c {
	case CipherAES128:
		return model.CipherAES128, true
	case CipherAES192:
		return model.CipherAES192, true
	case CipherAES256:
		return model.CipherAES256, true
	}
	return 0, false
}

// Compression selects the compression algorithm applied before encryption.
type Compression int

const (
	CompressionNone Compression = iota
	CompressionZLIB
	CompressionZIP
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionZLIB:
		return "zlib"
	case CompressionZIP:
		return "zip"
	default:
		return fmt.Sprintf("Compression(%d)", int(c))
	}
}

func (c Compression) wire() (model.Compression, bool) {
	switch c {
	case CompressionNone:
		return model.CompressionNONE, true
	case CompressionZLIB:
		return model.CompressionZLIB, true
	case CompressionZIP:
		return model.CompressionZIP, true
	}
	return 0, false
}

// Hash selects the digest algorithm used for signatures.
type Hash int

const (
	HashSHA256 Hash = iota
	HashSHA224
	HashSHA384
	HashSHA512
)

func (h Hash) String() string {
	switch h {
	case HashSHA256:
		return "sha256"
	case HashSHA224:
		return "sha224"
	case HashSHA384:
		return "sha384"
	case HashSHA512:
		return "sha512"
	default:
		return fmt.Sprintf("Hash(%d)", int(h))
	}
}

func (h Hash) wire() (model.Hash, bool) {
	switch h {
	case HashSHA256:
		return model.HashSHA256, true
	case HashSHA224:
		return model.HashSHA224, true
	case HashSHA384:
		return model.HashSHA384, true
	case HashSHA512:
		return model.HashSHA512, true
	}
	return 0, false
}

// KeyOptions tunes the algorithms the engine uses. Every field is optional; a
// nil field leaves the choice to the engine. The engine's documented defaults
// are RSA 2048, AES128, no compression, SHA256 and compression level 0.
type KeyOptions struct {
	RSABits          *int
	Cipher           *Cipher
	Compression      *Compression
	Hash             *Hash
	CompressionLevel *int
}

// Options describes the identity and parameters of a generated key pair.
type Options struct {
	Name       string
	Comment    string
	Email      string
	Passphrase string
	KeyOptions *KeyOptions
}

// Entity is a signer identity attached to an encrypt call.
type Entity struct {
	PublicKey  string
	PrivateKey string
	Passphrase string
}

// FileHints describe how the engine should label encrypted content. A zero
// ModTime is sent as an empty string.
type FileHints struct {
	IsBinary bool
	FileName string
	ModTime  time.Time
}

// KeyPair is an armored OpenPGP key pair.
type KeyPair struct {
	PublicKey  string
	PrivateKey string
}

// Ptr returns a pointer to v. It is a convenience for filling KeyOptions.
func Ptr[T any](v T) *T {
	return &v
}
