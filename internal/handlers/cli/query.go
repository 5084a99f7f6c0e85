package cli

import (
	"context"
	"errors"

	"github.com/gabapcia/fantoken/internal/activity"
	"github.com/gabapcia/fantoken/internal/chainread"

	"github.com/urfave/cli/v3"
)

var errReadOnlyWithoutAddress = errors.New("--read-only requires --address")

// priceCommand returns a CLI command that reads a contract price.
//
// Usage example:
//
//	fantoken price --contract 0x6B17... --method getPrice
func priceCommand(svc activity.Service, cfg config) *cli.Command {
	return &cli.Command{
		Name:        "price",
		Description: "Read the price exposed by a token contract.",
		Usage:       "Connects the wallet, then calls the contract price getter at the current block.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "contract",
				Usage:    "Contract address",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "method",
				Usage: "Price getter: price, getPrice or latestAnswer",
				Value: chainread.DefaultPriceMethod,
			},
			retriesFlag,
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			defer printFeed(cfg.out, svc.Feed())

			if err := connect(ctx, svc, cfg, uint(c.Uint("retries"))); err != nil {
				return err
			}

			ref := chainread.ContractRef{
				Address: c.String("contract"),
				Method:  c.String("method"),
			}
			return svc.RefreshPrice(ctx, ref).Err
		},
	}
}

// balanceCommand returns a CLI command that reads a native balance.
//
// Usage examples:
//
//	fantoken balance
//	fantoken balance --address 0x5aAe... --read-only
func balanceCommand(svc activity.Service, cfg config) *cli.Command {
	return &cli.Command{
		Name:        "balance",
		Description: "Read the native balance of the session account or of any address.",
		Usage:       "Without --address the connected account is used. --read-only skips the wallet.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "address",
				Usage: "Account address (defaults to the connected account)",
			},
			&cli.BoolFlag{
				Name:  "read-only",
				Usage: "Do not connect the wallet; requires --address",
			},
			retriesFlag,
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			address := c.String("address")
			if c.Bool("read-only") && address == "" {
				return errReadOnlyWithoutAddress
			}

			defer printFeed(cfg.out, svc.Feed())

			if c.Bool("read-only") {
				return svc.RefreshReadOnlyBalance(ctx, address).Err
			}

			if err := connect(ctx, svc, cfg, uint(c.Uint("retries"))); err != nil {
				return err
			}

			return svc.RefreshBalance(ctx, address).Err
		},
	}
}

// blockNumberCommand returns a CLI command that reads the latest block number.
//
// Usage example:
//
//	fantoken block-number
func blockNumberCommand(svc activity.Service, cfg config) *cli.Command {
	return &cli.Command{
		Name:        "block-number",
		Description: "Read the latest block number from the network endpoint.",
		Usage:       "Needs no wallet; useful as a liveness check.",
		Action: func(ctx context.Context, c *cli.Command) error {
			defer printFeed(cfg.out, svc.Feed())

			return svc.RefreshBlockNumber(ctx).Err
		},
	}
}
