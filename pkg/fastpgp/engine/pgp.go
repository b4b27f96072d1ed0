package engine

import (
	"bufio"
	"bytes"
	"crypto"
	_ "crypto/sha256" // registers SHA-224 and SHA-256
	_ "crypto/sha512" // registers SHA-384 and SHA-512
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/ProtonMail/go-crypto/openpgp"
	"github.com/ProtonMail/go-crypto/openpgp/armor"
	"github.com/ProtonMail/go-crypto/openpgp/packet"

	"github.com/fastpgp/fastpgp-go/pkg/fastpgp/model"
)

const (
	defaultRSABits = 2048
	messageType    = "PGP MESSAGE"
	armorPrefix    = "-----BEGIN"
)

var (
	errNoKey           = errors.New("no key found")
	errWrongPassphrase = errors.New("incorrect passphrase")
)

// packetConfig maps the wire key options onto the OpenPGP configuration.
// Unset fields keep the engine defaults: RSA 2048, AES-128, no compression,
// SHA-256, level 0.
func (e *Engine) packetConfig(o *model.KeyOptions) *packet.Config {
	cfg := &packet.Config{
		RSABits:                defaultRSABits,
		DefaultHash:            crypto.SHA256,
		DefaultCipher:          packet.CipherAES128,
		DefaultCompressionAlgo: packet.CompressionNone,
		Time:                   e.now,
	}
	if o == nil {
		return cfg
	}
	if h := o.Hash(); h != nil {
		switch *h {
		case model.HashSHA224:
			cfg.DefaultHash = crypto.SHA224
		case model.HashSHA384:
			cfg.DefaultHash = crypto.SHA384
		case model.HashSHA512:
			cfg.DefaultHash = crypto.SHA512
		}
	}
	if c := o.Cipher(); c != nil {
		switch *c {
		case model.CipherAES192:
			cfg.DefaultCipher = packet.CipherAES192
		case model.CipherAES256:
			cfg.DefaultCipher = packet.CipherAES256
		}
	}
	if c := o.Compression(); c != nil {
		switch *c {
		case model.CompressionZLIB:
			cfg.DefaultCompressionAlgo = packet.CompressionZLIB
		case model.CompressionZIP:
			cfg.DefaultCompressionAlgo = packet.CompressionZIP
		}
	}
	if l := o.CompressionLevel(); l != nil {
		cfg.CompressionConfig = &packet.CompressionConfig{Level: int(*l)}
	}
	if b := o.RsaBits(); b != nil && *b > 0 {
		cfg.RSABits = int(*b)
	}
	return cfg
}

func fileHints(h *model.FileHints) (*openpgp.FileHints, error) {
	if h == nil {
		return nil, nil
	}
	hints := &openpgp.FileHints{
		IsBinary: h.IsBinary(),
		FileName: string(h.FileName()),
	}
	if mod := string(h.ModTime()); mod != "" {
		t, err := time.Parse(time.RFC3339, mod)
		if err != nil {
			return nil, fmt.Errorf("file hints: mod time: %w", err)
		}
		hints.ModTime = t
	}
	return hints, nil
}

func readKeyRing(armored string) (openpgp.EntityList, error) {
	ring, err := openpgp.ReadArmoredKeyRing(strings.NewReader(armored))
	if err != nil {
		return nil, fmt.Errorf("read key: %w", err)
	}
	if len(ring) == 0 {
		return nil, errNoKey
	}
	return ring, nil
}

// unlock decrypts every encrypted private key in ring.
func unlock(ring openpgp.EntityList, passphrase string) error {
	pass := []byte(passphrase)
	for _, entity := range ring {
		if err := entity.DecryptPrivateKeys(pass); err != nil {
			return errWrongPassphrase
		}
	}
	return nil
}

func privateRing(armored, passphrase string) (openpgp.EntityList, error) {
	ring, err := readKeyRing(armored)
	if err != nil {
		return nil, err
	}
	if err := unlock(ring, passphrase); err != nil {
		return nil, err
	}
	return ring, nil
}

func signer(signed *model.Entity) (*openpgp.Entity, error) {
	if signed == nil {
		return nil, nil
	}
	ring, err := privateRing(string(signed.PrivateKey()), string(signed.Passphrase()))
	if err != nil {
		return nil, fmt.Errorf("signer: %w", err)
	}
	if ring[0].PrivateKey == nil {
		return nil, fmt.Errorf("signer: %w", errNoKey)
	}
	return ring[0], nil
}

// symmetricPrompt answers the first passphrase prompt and fails the next one,
// which the OpenPGP reader issues only after the passphrase was rejected.
func symmetricPrompt(passphrase string) openpgp.PromptFunction {
	asked := false
	return func([]openpgp.Key, bool) ([]byte, error) {
		if asked {
			return nil, errWrongPassphrase
		}
		asked = true
		return []byte(passphrase), nil
	}
}

// maybeArmored accepts both armored and binary OpenPGP data.
func maybeArmored(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)
	head, _ := br.Peek(len(armorPrefix))
	if string(head) != armorPrefix {
		return br, nil
	}
	block, err := armor.Decode(br)
	if err != nil {
		return nil, fmt.Errorf("armor: %w", err)
	}
	return block.Body, nil
}

func armored(blockType string, write func(io.Writer) error) (string, error) {
	var buf bytes.Buffer
	w, err := armor.Encode(&buf, blockType, nil)
	if err != nil {
		return "", err
	}
	if err := write(w); err != nil {
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

// withFiles opens input for reading and creates output, hands both to fn and
// returns the number of bytes written to output.
func withFiles(input, output string, fn func(in io.Reader, out io.Writer) error) (int64, error) {
	in, err := os.Open(input)
	if err != nil {
		return 0, err
	}
	defer in.Close()
	out, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return 0, err
	}
	cw := &countingWriter{w: out}
	if err := fn(in, cw); err != nil {
		out.Close()
		return cw.n, err
	}
	if err := out.Close(); err != nil {
		return cw.n, err
	}
	return cw.n, nil
}

func readBody(r io.Reader, keyring openpgp.KeyRing, prompt openpgp.PromptFunction, cfg *packet.Config) (io.Reader, error) {
	md, err := openpgp.ReadMessage(r, keyring, prompt, cfg)
	if err != nil {
		return nil, fmt.Errorf("read message: %w", err)
	}
	return md.UnverifiedBody, nil
}

func encryptTo(w io.Writer, plaintext io.Reader, to openpgp.EntityList, from *openpgp.Entity, hints *openpgp.FileHints, cfg *packet.Config) error {
	pw, err := openpgp.Encrypt(w, to, from, hints, cfg)
	if err != nil {
		return fmt.Errorf("encrypt: %w", err)
	}
	if _, err := io.Copy(pw, plaintext); err != nil {
		return err
	}
	return pw.Close()
}

func encryptSymmetricTo(w io.Writer, plaintext io.Reader, passphrase string, hints *openpgp.FileHints, cfg *packet.Config) error {
	pw, err := openpgp.SymmetricallyEncrypt(w, []byte(passphrase), hints, cfg)
	if err != nil {
		return fmt.Errorf("encrypt: %w", err)
	}
	if _, err := io.Copy(pw, plaintext); err != nil {
		return err
	}
	return pw.Close()
}

func signWith(privateKey, passphrase string) (*openpgp.Entity, error) {
	ring, err := privateRing(privateKey, passphrase)
	if err != nil {
		return nil, err
	}
	if ring[0].PrivateKey == nil {
		return nil, errNoKey
	}
	return ring[0], nil
}

func checkSignature(publicKey string, signed, signature io.Reader, cfg *packet.Config) (bool, error) {
	ring, err := readKeyRing(publicKey)
	if err != nil {
		return false, err
	}
	if _, err := openpgp.CheckArmoredDetachedSignature(ring, signed, signature, cfg); err != nil {
		return false, nil
	}
	return true, nil
}

// generate creates an RSA key pair. A non-empty passphrase encrypts the
// exported private keys.
func generate(name, comment, email, passphrase string, cfg *packet.Config) (string, string, error) {
	entity, err := openpgp.NewEntity(name, comment, email, cfg)
	if err != nil {
		return "", "", fmt.Errorf("generate: %w", err)
	}
	// Re-sign identities and subkeys while the key is still in the clear; the
	// public export carries those self-signatures.
	if err := entity.SerializePrivate(io.Discard, cfg); err != nil {
		return "", "", fmt.Errorf("generate: %w", err)
	}
	pub, err := armored(openpgp.PublicKeyType, entity.Serialize)
	if err != nil {
		return "", "", err
	}
	if passphrase != "" {
		if err := entity.EncryptPrivateKeys([]byte(passphrase), cfg); err != nil {
			return "", "", fmt.Errorf("generate: protect key: %w", err)
		}
	}
	priv, err := armored(openpgp.PrivateKeyType, func(w io.Writer) error {
		return entity.SerializePrivateWithoutSigning(w, cfg)
	})
	if err != nil {
		return "", "", err
	}
	return pub, priv, nil
}

func detachSign(key *openpgp.Entity, message io.Reader, cfg *packet.Config) (string, error) {
	var buf bytes.Buffer
	if err := openpgp.ArmoredDetachSign(&buf, key, message, cfg); err != nil {
		return "", fmt.Errorf("sign: %w", err)
	}
	return buf.String(), nil
}
