package cli

import (
	"context"

	"github.com/gabapcia/fantoken/internal/activity"

	"github.com/urfave/cli/v3"
)

// retriesFlag lets the user try a failed connection again.
var retriesFlag = &cli.UintFlag{
	Name:  "retries",
	Usage: "Additional connection attempts after a recoverable failure (rejection, timeout, network)",
	Value: 0,
}

// connect runs the wallet connection with the retries the user asked for.
func connect(ctx context.Context, svc activity.Service, cfg config, retries uint) error {
	if retries == 0 {
		_, err := svc.Connect(ctx)
		return err
	}

	return cfg.newRetry(retries+1).Execute(ctx, func() error {
		_, err := svc.Connect(ctx)
		return err
	})
}

// connectCommand returns a CLI command that connects the wallet.
//
// Usage example:
//
//	fantoken connect --retries 2
func connectCommand(svc activity.Service, cfg config) *cli.Command {
	return &cli.Command{
		Name:        "connect",
		Description: "Connect the wallet and report the session.",
		Usage:       "Asks the wallet for authorization and prints the resulting notifications.",
		Flags:       []cli.Flag{retriesFlag},
		Action: func(ctx context.Context, c *cli.Command) error {
			err := connect(ctx, svc, cfg, uint(c.Uint("retries")))
			printFeed(cfg.out, svc.Feed())
			return err
		},
	}
}
