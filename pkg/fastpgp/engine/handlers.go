package engine

import (
	"io"
	"os"
	"strings"

	"github.com/ProtonMail/go-crypto/openpgp"

	"github.com/fastpgp/fastpgp-go/pkg/fastpgp/model"
)

func (e *Engine) handleDecrypt(payload []byte) []byte {
	req := model.GetRootAsDecryptRequest(payload, 0)
	cfg := e.packetConfig(req.Options(nil))
	out, err := func() (string, error) {
		ring, err := privateRing(string(req.PrivateKey()), string(req.Passphrase()))
		if err != nil {
			return "", err
		}
		in, err := maybeArmored(strings.NewReader(string(req.Message())))
		if err != nil {
			return "", err
		}
		body, err := readBody(in, ring, nil, cfg)
		if err != nil {
			return "", err
		}
		plain, err := io.ReadAll(body)
		return string(plain), err
	}()
	return stringResponse(out, err)
}

func (e *Engine) handleDecryptFile(payload []byte) []byte {
	req := model.GetRootAsDecryptFileRequest(payload, 0)
	cfg := e.packetConfig(req.Options(nil))
	ring, err := privateRing(string(req.PrivateKey()), string(req.Passphrase()))
	if err != nil {
		return intResponse(0, err)
	}
	n, err := withFiles(string(req.Input()), string(req.Output()), func(in io.Reader, out io.Writer) error {
		r, err := maybeArmored(in)
		if err != nil {
			return err
		}
		body, err := readBody(r, ring, nil, cfg)
		if err != nil {
			return err
		}
		_, err = io.Copy(out, body)
		return err
	})
	return intResponse(n, err)
}

func (e *Engine) handleEncrypt(payload []byte) []byte {
	req := model.GetRootAsEncryptRequest(payload, 0)
	cfg := e.packetConfig(req.Options(nil))
	out, err := func() (string, error) {
		to, err := readKeyRing(string(req.PublicKey()))
		if err != nil {
			return "", err
		}
		from, err := signer(req.Signed(nil))
		if err != nil {
			return "", err
		}
		hints, err := fileHints(req.FileHints(nil))
		if err != nil {
			return "", err
		}
		return armored(messageType, func(w io.Writer) error {
			return encryptTo(w, strings.NewReader(string(req.Message())), to, from, hints, cfg)
		})
	}()
	return stringResponse(out, err)
}

func (e *Engine) handleEncryptFile(payload []byte) []byte {
	req := model.GetRootAsEncryptFileRequest(payload, 0)
	cfg := e.packetConfig(req.Options(nil))
	to, err := readKeyRing(string(req.PublicKey()))
	if err != nil {
		return intResponse(0, err)
	}
	from, err := signer(req.Signed(nil))
	if err != nil {
		return intResponse(0, err)
	}
	hints, err := fileHints(req.FileHints(nil))
	if err != nil {
		return intResponse(0, err)
	}
	n, err := withFiles(string(req.Input()), string(req.Output()), func(in io.Reader, out io.Writer) error {
		return encryptTo(out, in, to, from, hints, cfg)
	})
	return intResponse(n, err)
}

func (e *Engine) handleSign(payload []byte) []byte {
	req := model.GetRootAsSignRequest(payload, 0)
	cfg := e.packetConfig(req.Options(nil))
	out, err := func() (string, error) {
		key, err := signWith(string(req.PrivateKey()), string(req.Passphrase()))
		if err != nil {
			return "", err
		}
		return detachSign(key, strings.NewReader(string(req.Message())), cfg)
	}()
	return stringResponse(out, err)
}

func (e *Engine) handleSignFile(payload []byte) []byte {
	req := model.GetRootAsSignFileRequest(payload, 0)
	cfg := e.packetConfig(req.Options(nil))
	out, err := func() (string, error) {
		key, err := signWith(string(req.PrivateKey()), string(req.Passphrase()))
		if err != nil {
			return "", err
		}
		f, err := os.Open(string(req.Input()))
		if err != nil {
			return "", err
		}
		defer f.Close()
		return detachSign(key, f, cfg)
	}()
	return stringResponse(out, err)
}

func (e *Engine) handleVerify(payload []byte) []byte {
	req := model.GetRootAsVerifyRequest(payload, 0)
	ok, err := checkSignature(
		string(req.PublicKey()),
		strings.NewReader(string(req.Message())),
		strings.NewReader(string(req.Signature())),
		e.packetConfig(nil),
	)
	return boolResponse(ok, err)
}

func (e *Engine) handleVerifyFile(payload []byte) []byte {
	req := model.GetRootAsVerifyFileRequest(payload, 0)
	ok, err := func() (bool, error) {
		f, err := os.Open(string(req.Input()))
		if err != nil {
			return false, err
		}
		defer f.Close()
		return checkSignature(string(req.PublicKey()), f, strings.NewReader(string(req.Signature())), e.packetConfig(nil))
	}()
	return boolResponse(ok, err)
}

func (e *Engine) handleDecryptSymmetric(payload []byte) []byte {
	req := model.GetRootAsDecryptSymmetricRequest(payload, 0)
	cfg := e.packetConfig(req.Options(nil))
	out, err := func() (string, error) {
		in, err := maybeArmored(strings.NewReader(string(req.Message())))
		if err != nil {
			return "", err
		}
		body, err := readBody(in, openpgp.EntityList{}, symmetricPrompt(string(req.Passphrase())), cfg)
		if err != nil {
			return "", err
		}
		plain, err := io.ReadAll(body)
		return string(plain), err
	}()
	return stringResponse(out, err)
}

func (e *Engine) handleDecryptSymmetricFile(payload []byte) []byte {
	req := model.GetRootAsDecryptSymmetricFileRequest(payload, 0)
	cfg := e.packetConfig(req.Options(nil))
	prompt := symmetricPrompt(string(req.Passphrase()))
	n, err := withFiles(string(req.Input()), string(req.Output()), func(in io.Reader, out io.Writer) error {
		r, err := maybeArmored(in)
		if err != nil {
			return err
		}
		body, err := readBody(r, openpgp.EntityList{}, prompt, cfg)
		if err != nil {
			return err
		}
		_, err = io.Copy(out, body)
		return err
	})
	return intResponse(n, err)
}

func (e *Engine) handleEncryptSymmetric(payload []byte) []byte {
	req := model.GetRootAsEncryptSymmetricRequest(payload, 0)
	cfg := e.packetConfig(req.Options(nil))
	out, err := func() (string, error) {
		hints, err := fileHints(req.FileHints(nil))
		if err != nil {
			return "", err
		}
		return armored(messageType, func(w io.Writer) error {
			return encryptSymmetricTo(w, strings.NewReader(string(req.Message())), string(req.Passphrase()), hints, cfg)
		})
	}()
	return stringResponse(out, err)
}

func (e *Engine) handleEncryptSymmetricFile(payload []byte) []byte {
	req := model.GetRootAsEncryptSymmetricFileRequest(payload, 0)
	cfg := e.packetConfig(req.Options(nil))
	hints, err := fileHints(req.FileHints(nil))
	if err != nil {
		return intResponse(0, err)
	}
	passphrase := string(req.Passphrase())
	n, err := withFiles(string(req.Input()), string(req.Output()), func(in io.Reader, out io.Writer) error {
		return encryptSymmetricTo(out, in, passphrase, hints, cfg)
	})
	return intResponse(n, err)
}

func (e *Engine) handleGenerate(payload []byte) []byte {
	req := model.GetRootAsGenerateRequest(payload, 0)
	opts := req.Options(nil)
	if opts == nil {
		pub, priv, err := generate("", "", "", "", e.packetConfig(nil))
		return keyPairResponse(pub, priv, err)
	}
	pub, priv, err := generate(
		string(opts.Name()),
		string(opts.Comment()),
		string(opts.Email()),
		string(opts.Passphrase()),
		e.packetConfig(opts.KeyOptions(nil)),
	)
	return keyPairResponse(pub, priv, err)
}
