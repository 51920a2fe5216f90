package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/gofiber/fiber/v3"
	"github.com/spf13/pflag"

	"github.com/Urban-Blazer/srm-front-end-sub001/internal/config"
	"github.com/Urban-Blazer/srm-front-end-sub001/internal/eth"
	"github.com/Urban-Blazer/srm-front-end-sub001/internal/handler"
	"github.com/Urban-Blazer/srm-front-end-sub001/internal/logging"
	"github.com/Urban-Blazer/srm-front-end-sub001/internal/pools"
	"github.com/Urban-Blazer/srm-front-end-sub001/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	flags := pflag.NewFlagSet("api", pflag.ContinueOnError)
	cfgFile := flags.String("config", "", "path to a config file")
	flags.String("addr", ":1337", "listen address")
	flags.String("rpc-url", "", "EVM node RPC endpoint")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("log-format", "text", "log format (text, json)")
	if err := flags.Parse(os.Args[1:]); err != nil {
		return err
	}

	cfg, err := config.Load(*cfgFile, flags)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := logging.NewLogger(cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	source, ethereumClient, err := buildSource(ctx, logger, cfg)
	if err != nil {
		return err
	}
	if ethereumClient != nil {
		defer ethereumClient.Close()
	}

	quoteService := service.NewQuoteService(logger, source, cfg.SlippageBp)
	estimateHandler := handler.NewEstimateHandler(logger, quoteService)
	quoteHandler := handler.NewQuoteHandler(logger, quoteService)

	app := fiber.New()
	app.Get("/estimate", estimateHandler.Handle())
	quoteHandler.Register(app.Group("/quote"))

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(cfg.Addr)
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			_ = app.Shutdown()
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	}

	logger.Info("shutting down")
	if err := app.ShutdownWithTimeout(3 * time.Second); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// buildSource serves static pools first and falls back to reading pairs
// from the node when an RPC endpoint is configured.
func buildSource(ctx context.Context, logger *slog.Logger, cfg *config.Config) (pools.Source, *ethclient.Client, error) {
	snapshots, err := cfg.StaticSnapshots()
	if err != nil {
		return nil, nil, err
	}
	static, err := pools.NewStatic(snapshots...)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("static pools loaded", "count", static.Len())

	if cfg.RPCEndpoint == "" {
		return static, nil, nil
	}

	client, err := eth.Dial(ctx, cfg.RPCEndpoint)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to Ethereum node: %w", err)
	}
	defaults, err := cfg.DefaultFees.Schedule()
	if err != nil {
		client.Close()
		return nil, nil, err
	}
	fees, err := cfg.ChainFees()
	if err != nil {
		client.Close()
		return nil, nil, err
	}
	reader := eth.NewPairReader(logger, client, defaults, fees)
	return pools.Chained(static, reader), client, nil
}
