package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/gabapcia/fantoken/internal/activity"
	"github.com/gabapcia/fantoken/internal/feed"
	"github.com/gabapcia/fantoken/internal/pkg/chainerr"
	"github.com/gabapcia/fantoken/internal/pkg/logger"
	"github.com/gabapcia/fantoken/internal/pkg/resilience/retry"

	"github.com/urfave/cli/v3"
)

type retryFactory func(attempts uint) retry.Retry

type config struct {
	out      io.Writer
	newRetry retryFactory
}

type Option func(*config)

// Run initializes and executes the fantoken CLI application.
//
// It registers all available commands:
//
//   - `connect`: Connects the wallet.
//   - `price`: Reads a contract price.
//   - `balance`: Reads a native balance.
//   - `block-number`: Reads the latest block number.
//   - `watch`: Keeps the session open and streams notifications.
//
// Every command prints the notification feed once it is done.
func Run(ctx context.Context, svc activity.Service, opts ...Option) error {
	cfg := config{
		out:      os.Stdout,
		newRetry: defaultRetry,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	app := &cli.Command{
		EnableShellCompletion: true,
		Name:                  "fantoken",
		Description:           "Command-line client for the fantoken wallet session, chain reads and notification feed.",
		Usage:                 "fantoken [command] [flags]",
		Writer:                cfg.out,
		Commands: []*cli.Command{
			connectCommand(svc, cfg),
			priceCommand(svc, cfg),
			balanceCommand(svc, cfg),
			blockNumberCommand(svc, cfg),
			watchCommand(svc, cfg),
		},
	}

	return app.Run(ctx, os.Args)
}

// WithWriter sets where command output goes. Default: stdout.
func WithWriter(w io.Writer) Option {
	return func(c *config) {
		c.out = w
	}
}

// WithRetryFactory overrides how connect retries are built.
func WithRetryFactory(f func(attempts uint) retry.Retry) Option {
	return func(c *config) {
		c.newRetry = f
	}
}

// defaultRetry retries recoverable connect failures only.
func defaultRetry(attempts uint) retry.Retry {
	return retry.New(
		retry.WithAttempts(attempts),
		retry.WithRetryIf(chainerr.Retryable),
		retry.WithOnRetry(func(attempt uint, err error) {
			logger.Warn(context.Background(), "wallet connect failed, retrying",
				"retry.attempt", attempt+1,
				"error", err,
			)
		}),
	)
}

// printNotification renders a single feed entry.
func printNotification(w io.Writer, n feed.Notification) {
	fmt.Fprintf(w, "%s [%s] %s: %s\n", n.Timestamp.Format("15:04:05"), n.Type, n.Title, n.Message)
}

// printFeed renders the whole feed followed by the unread counter.
func printFeed(w io.Writer, store feed.Store) {
	for _, n := range store.List() {
		printNotification(w, n)
	}
	fmt.Fprintf(w, "%d unread\n", store.UnreadCount())
}
