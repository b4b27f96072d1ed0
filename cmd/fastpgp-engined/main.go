// Command fastpgp-engined serves the Go reference engine to array-strategy
// bridges over NATS.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nats-io/nats.go"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/fastpgp/fastpgp-go/pkg/fastpgp"
	"github.com/fastpgp/fastpgp-go/pkg/fastpgp/engine"
	"github.com/fastpgp/fastpgp-go/pkg/fastpgp/logging"
	"github.com/fastpgp/fastpgp-go/pkg/fastpgp/natsport"
)

var (
	configFile string
	queue      string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fastpgp-engined",
	Short: "Answer fastpgp bridge requests arriving over NATS",
	Long: `fastpgp-engined subscribes to the bridge subject and answers each request
with the Go reference engine. Several instances may share the queue group.

Settings come from the YAML file given with --config and from FASTPGP_*
environment variables (FASTPGP_NATS_URL, FASTPGP_NATS_SUBJECT,
FASTPGP_LOG_LEVEL).`,
	Version:      fastpgp.WrapperVersion(),
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&configFile, "config", "", "config file (YAML)")
	rootCmd.Flags().StringVar(&queue, "queue", natsport.DefaultQueue, "NATS queue group shared by engine instances")
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := fastpgp.NewConfig(configFile)
	if err != nil {
		return err
	}

	zl, err := newZap(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = zl.Sync() }()
	log := logging.Redacting(logging.NewZap(zl))

	nc, err := nats.Connect(cfg.NATS.URL, nats.Name("fastpgp-engined"))
	if err != nil {
		return fmt.Errorf("connect %s: %w", cfg.NATS.URL, err)
	}
	defer nc.Close()

	responder := natsport.NewResponder(nc, engine.New(engine.WithLogger(log)),
		natsport.WithSubject(cfg.NATS.Subject),
		natsport.WithQueue(queue),
		natsport.WithLogger(log),
	)
	if err := responder.Start(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info(ctx, "engine serving", "url", cfg.NATS.URL, "subject", cfg.NATS.Subject, "queue", queue)
	<-ctx.Done()
	log.Info(context.Background(), "shutting down")

	return responder.Stop()
}

func newZap(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	return zc.Build()
}
