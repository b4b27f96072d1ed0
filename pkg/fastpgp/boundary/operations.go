package boundary

// Operation names understood by the engine.
const (
	OpDecrypt              = "decrypt"
	OpDecryptFile          = "decryptFile"
	OpEncrypt              = "encrypt"
	OpEncryptFile          = "encryptFile"
	OpSign                 = "sign"
	OpSignFile             = "signFile"
	OpVerify               = "verify"
	OpVerifyFile           = "verifyFile"
	OpDecryptSymmetric     = "decryptSymmetric"
	OpDecryptSymmetricFile = "decryptSymmetricFile"
	OpEncryptSymmetric     = "encryptSymmetric"
	OpEncryptSymmetricFile = "encryptSymmetricFile"
	OpGenerate             = "generate"
)

// Operations lists every operation name in a stable order.
var Operations = []string{
	OpDecrypt,
	OpDecryptFile,
	OpEncrypt,
	OpEncryptFile,
	OpSign,
	OpSignFile,
	OpVerify,
	OpVerifyFile,
	OpDecryptSymmetric,
	OpDecryptSymmetricFile,
	OpEncryptSymmetric,
	OpEncryptSymmetricFile,
	OpGenerate,
}

// KnownOperation reports whether name is one of Operations.
func KnownOperation(name string) bool {
	for _, op := range Operations {
		if op == name {
			return true
		}
	}
	return false
}
