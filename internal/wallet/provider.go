package wallet

import (
	"context"
	"math/big"

	"github.com/gabapcia/fantoken/internal/pkg/chainerr"
)

// Provider is the wallet or embedded auth integration the service drives.
type Provider interface {
	// Detect checks whether the integration is usable and reports what it
	// supports. It returns an error wrapping chainerr.ErrNoProviderDetected
	// when nothing compatible is present.
	Detect(ctx context.Context) (Capabilities, error)

	// Connect asks the user to authorize the application and returns a
	// handle bound to the authorized session.
	Connect(ctx context.Context) (Handle, error)
}

// Handle is the capability reference to an authorized wallet session. It is
// owned by the service and never handed out.
type Handle interface {
	// Accounts returns the authorized accounts, the active one first.
	Accounts(ctx context.Context) ([]string, error)

	// ChainID returns the chain the wallet is currently on.
	ChainID(ctx context.Context) (int64, error)

	// Balance returns the native balance of account, in wei.
	Balance(ctx context.Context, account string) (*big.Int, error)

	// Close revokes the session on the wallet side and releases resources.
	Close(ctx context.Context) error
}

// nopProvider is the provider installed when no wallet is configured or the
// wallet integration is switched off. It never detects anything.
type nopProvider struct{}

var _ Provider = nopProvider{}

func (nopProvider) Detect(context.Context) (Capabilities, error) {
	return Capabilities{}, chainerr.ErrNoProviderDetected
}

func (nopProvider) Connect(context.Context) (Handle, error) {
	return nil, chainerr.ErrNoProviderDetected
}
