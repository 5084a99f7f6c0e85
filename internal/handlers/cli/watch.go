package cli

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gabapcia/fantoken/internal/activity"
	"github.com/gabapcia/fantoken/internal/feed"
	"github.com/gabapcia/fantoken/internal/pkg/logger"

	"github.com/urfave/cli/v3"
)

var errInvalidInterval = errors.New("--interval must be positive")

// printer writes notifications it has not written before.
type printer struct {
	out  io.Writer
	seen map[string]struct{}
}

func (p *printer) flush(store feed.Store) {
	for _, n := range store.List() {
		if _, ok := p.seen[n.ID]; ok {
			continue
		}
		p.seen[n.ID] = struct{}{}
		printNotification(p.out, n)
	}
}

// watchCommand returns a CLI command that keeps the wallet session open,
// refreshes the block number periodically and streams notifications.
//
// Usage example:
//
//	fantoken watch --interval 12s
//
// The process runs until it receives an interrupt (SIGINT or SIGTERM) or the
// context is done.
func watchCommand(svc activity.Service, cfg config) *cli.Command {
	return &cli.Command{
		Name:        "watch",
		Description: "Connect the wallet and stream session and block notifications.",
		Usage:       "Runs until Ctrl+C or termination signals.",
		Flags: []cli.Flag{
			&cli.DurationFlag{
				Name:  "interval",
				Usage: "Block number refresh period",
				Value: 12 * time.Second,
			},
			retriesFlag,
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			interval := c.Duration("interval")
			if interval <= 0 {
				return errInvalidInterval
			}

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(quit)

			p := &printer{out: cfg.out, seen: make(map[string]struct{})}
			defer p.flush(svc.Feed())

			if err := connect(ctx, svc, cfg, uint(c.Uint("retries"))); err != nil {
				logger.Warn(ctx, "watching without a wallet session", "error", err)
			}

			if err := svc.Start(ctx); err != nil {
				return err
			}
			defer svc.Close()

			ticker := time.NewTicker(interval)
			defer ticker.Stop()

			for {
				p.flush(svc.Feed())

				select {
				case <-quit:
					return nil
				case <-ctx.Done():
					return nil
				case <-ticker.C:
					svc.RefreshBlockNumber(ctx)
				}
			}
		},
	}
}
