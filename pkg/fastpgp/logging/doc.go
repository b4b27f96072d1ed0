// Package logging provides the small logging facade used by the fastpgp
// bridge and its transports.
//
// The Logger interface is context-aware and deliberately narrow so callers can
// plug in their own implementation. Two backends ship with the package:
//
//	logger := logging.New(nil)            // slog.Default()
//	logger := logging.NewZap(zapLogger)   // *zap.Logger
//
// # Redaction
//
// Passphrases, private keys and plaintext never reach a log line. Mark the
// attribute instead:
//
//	logger.Debug(ctx, "generate", logging.Redacted("passphrase"))
//	// passphrase=[redacted]
//
// Redacting wraps any Logger and scrubs values logged under SecretKeys; the
// bridge installs it around every logger it is given.
package logging
