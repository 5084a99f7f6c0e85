package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gabapcia/fantoken/internal/activity"
	"github.com/gabapcia/fantoken/internal/chainread"
	"github.com/gabapcia/fantoken/internal/config"
	"github.com/gabapcia/fantoken/internal/feed"
	"github.com/gabapcia/fantoken/internal/handlers/cli"
	"github.com/gabapcia/fantoken/internal/infra/blockchain/ethereum"
	"github.com/gabapcia/fantoken/internal/infra/storage/redis"
	"github.com/gabapcia/fantoken/internal/infra/wallet/bridge"
	"github.com/gabapcia/fantoken/internal/pkg/logger"
	"github.com/gabapcia/fantoken/internal/pkg/telemetry"
	httptransport "github.com/gabapcia/fantoken/internal/pkg/transport/http"
	"github.com/gabapcia/fantoken/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/fantoken/internal/wallet"
)

const (
	version         = "0.1.0"
	shutdownTimeout = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Telemetry goes first so the logger can bridge into its logger provider.
	shutdown := telemetry.ShutdownFunc(telemetry.Noop)
	if cfg.TelemetryEnabled {
		if shutdown, err = telemetry.Init(ctx, cfg.ServiceName, version); err != nil {
			return fmt.Errorf("init telemetry: %w", err)
		}
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()

		if err := shutdown(shutdownCtx); err != nil {
			fmt.Fprintln(os.Stderr, "telemetry shutdown failed:", err)
		}
	}()

	if err := logger.Init(cfg.LogLevel); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	ctx = logger.Derive(ctx, "service.name", cfg.ServiceName, "service.version", version)

	network, err := ethereum.Dial(ctx, cfg.NetworkURL, httptransport.NewStandardClient(
		httptransport.WithTimeout(cfg.HTTPTimeout),
	))
	if err != nil {
		return fmt.Errorf("dial network: %w", err)
	}
	defer network.Close()

	if cfg.ExpectedChainID != 0 {
		chainID, err := network.ChainID(ctx)
		if err != nil {
			return fmt.Errorf("read network chain id: %w", err)
		}
		if chainID != cfg.ExpectedChainID {
			logger.Warn(ctx, "network endpoint serves an unexpected chain",
				"chain.expected", cfg.ExpectedChainID,
				"chain.actual", chainID,
			)
		}
	}

	var provider wallet.Provider
	if cfg.WalletEnabled() {
		conn := jsonrpc.NewClient(httptransport.NewClient(httptransport.WithTimeout(cfg.HTTPTimeout)), cfg.WalletURL)
		provider = bridge.NewProvider(conn)
	}

	walletService := wallet.New(provider,
		wallet.WithConnectTimeout(cfg.ConnectTimeout),
		wallet.WithCallTimeout(cfg.CallTimeout),
	)
	defer walletService.Close()

	var sessionWallet chainread.Wallet
	if cfg.WalletEnabled() {
		sessionWallet = walletService
	}
	chainReaders := newReaders(network, sessionWallet, cfg.CallTimeout)

	store := feed.New(
		feed.WithCapacity(cfg.FeedCapacity),
		feed.WithMaxAge(cfg.FeedMaxAge),
	)

	monitor := wallet.NewMonitor(walletService,
		wallet.WithInterval(cfg.MonitorInterval),
		wallet.WithFailureThreshold(cfg.MonitorFailures),
	)

	activityOpts := []activity.Option{
		activity.WithMonitor(monitor),
		activity.WithExpectedChainID(cfg.ExpectedChainID),
		activity.WithReadOnlyReader(chainReaders.readOnly),
	}
	if cfg.CacheEnabled() {
		cache, err := redis.NewClient(ctx, cfg.RedisAddr,
			redis.WithCredentials(cfg.RedisUsername, cfg.RedisPassword),
			redis.WithDB(cfg.RedisDB),
			redis.WithKeyPrefix(cfg.RedisKeyPrefix),
		)
		if err != nil {
			return fmt.Errorf("connect query cache: %w", err)
		}
		defer cache.Close()

		activityOpts = append(activityOpts, activity.WithQueryCache(cache, cfg.CacheTTL))
	}

	svc := activity.New(walletService, chainReaders.session, store, activityOpts...)

	if !walletService.Initialize(ctx) {
		logger.Info(ctx, "no wallet provider detected; chain reads stay available")
	}

	if err := cli.Run(ctx, svc); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
