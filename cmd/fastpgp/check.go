package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/fastpgp/fastpgp-go/pkg/fastpgp"
	"github.com/fastpgp/fastpgp-go/pkg/fastpgp/logging"
)

var (
	roundTrip    bool
	checkTimeout time.Duration
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Open the configured bridge and optionally run a key round trip",
	Args:  cobra.NoArgs,
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().BoolVar(&roundTrip, "roundtrip", false, "generate a key and encrypt/decrypt a message through the bridge")
	checkCmd.Flags().DurationVar(&checkTimeout, "timeout", 2*time.Minute, "overall deadline for the check")
}

func runCheck(cmd *cobra.Command, _ []string) error {
	cfg, err := fastpgp.NewConfig(configFile)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), checkTimeout)
	defer cancel()

	out := cmd.OutOrStdout()
	b, err := fastpgp.Open(ctx, *cfg, fastpgp.WithLogger(stderrLogger(cfg.LogLevel)))
	if err != nil {
		if errors.Is(err, fastpgp.ErrCGONotEnabled) || errors.Is(err, fastpgp.ErrNotBuilt) {
			fmt.Fprintf(out, "native engine unavailable: %v\n", err)
			return nil
		}
		return fmt.Errorf("open bridge: %w", err)
	}
	defer func() {
		if cerr := b.Close(context.Background()); cerr != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "close error: %v\n", cerr)
		}
	}()

	fmt.Fprintf(out, "bridge opened: strategy=%s backend=%s\n", b.Strategy(), cfg.Backend)
	if !roundTrip {
		return nil
	}
	return runRoundTrip(ctx, out, b)
}

func runRoundTrip(ctx context.Context, out io.Writer, b *fastpgp.Bridge) error {
	start := time.Now()
	keys, err := b.Generate(ctx, fastpgp.Options{
		Name:       "fastpgp check",
		Email:      "check@fastpgp.invalid",
		KeyOptions: &fastpgp.KeyOptions{RSABits: fastpgp.Ptr(2048)},
	})
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	fmt.Fprintf(out, "generate: ok (%s)\n", time.Since(start).Round(time.Millisecond))

	const sample = "fastpgp round trip"
	cipherText, err := b.Encrypt(ctx, sample, keys.PublicKey, nil, nil, nil)
	if err != nil {
		return fmt.Errorf("encrypt: %w", err)
	}
	plain, err := b.Decrypt(ctx, cipherText, keys.PrivateKey, "", nil)
	if err != nil {
		return fmt.Errorf("decrypt: %w", err)
	}
	if plain != sample {
		return errors.New("decrypt: plaintext mismatch")
	}

	signature, err := b.Sign(ctx, sample, keys.PublicKey, keys.PrivateKey, "", nil)
	if err != nil {
		return fmt.Errorf("sign: %w", err)
	}
	ok, err := b.Verify(ctx, signature, sample, keys.PublicKey)
	if err != nil {
		return fmt.Errorf("verify: %w", err)
	}
	if !ok {
		return errors.New("verify: signature rejected")
	}

	fmt.Fprintf(out, "round trip: ok (%s)\n", time.Since(start).Round(time.Millisecond))
	return nil
}

func stderrLogger(level string) logging.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return logging.New(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
}
