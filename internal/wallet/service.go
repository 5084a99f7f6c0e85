// Package wallet manages the connect/disconnect lifecycle of a wallet or
// embedded auth provider as an explicit state machine over the session status:
//
//	Disconnected --Connect--> Connecting --success--> Connected
//	                          Connecting --failure--> Error
//	Connected --Disconnect / provider lost--> Disconnected
//	Error --Connect--> Connecting
//
// Only one connection attempt is ever in flight: concurrent Connect calls
// observe the outcome of the attempt already running. Every provider call is
// bounded by a timeout and every failure is returned as a chainerr category.
package wallet

import (
	"context"
	"math/big"
	"sync"
	"time"
)

const (
	defaultConnectTimeout = 30 * time.Second
	defaultCallTimeout    = 5 * time.Second
)

// Service is the wallet session owner.
type Service interface {
	// Initialize prepares the provider integration and reports whether it is
	// usable. It does not connect. After the first success it is a no-op.
	Initialize(ctx context.Context) bool

	// Connect drives Disconnected/Error -> Connecting -> Connected/Error and
	// returns the resulting session. The returned error equals Session.Reason
	// for failed attempts.
	Connect(ctx context.Context) (Session, error)

	// Disconnect releases the session. It always succeeds and is a no-op when
	// already disconnected.
	Disconnect(ctx context.Context)

	// CurrentSession returns the current session without blocking on I/O.
	CurrentSession() Session

	// GetChainID returns the chain ID reported by the connected wallet.
	GetChainID(ctx context.Context) (int64, error)

	// GetBalance returns the native balance of the connected account, in wei.
	GetBalance(ctx context.Context) (*big.Int, error)

	// GetAccounts returns the accounts authorized for the session.
	GetAccounts(ctx context.Context) ([]string, error)

	// ProviderLost signals that the provider disappeared; a connected session
	// moves to Disconnected with chainerr.ErrProviderLost as reason.
	ProviderLost(ctx context.Context)

	// ChainChanged signals that the wallet switched to chainID.
	ChainChanged(ctx context.Context, chainID int64)

	// Close tears the session down at process shutdown.
	Close()
}

// attempt is the single in-flight connection attempt shared by concurrent callers.
type attempt struct {
	done    chan struct{}
	session Session
	err     error
}

type service struct {
	mu           sync.Mutex
	initialized  bool
	capabilities Capabilities
	session      Session
	handle       Handle
	inflight     *attempt
	generation   uint64

	provider       Provider
	connectTimeout time.Duration
	callTimeout    time.Duration
	now            func() time.Time
}

var _ Service = (*service)(nil)

func (s *service) CurrentSession() Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.session
}

type config struct {
	connectTimeout time.Duration
	callTimeout    time.Duration
	now            func() time.Time
}

// Option configures the service.
type Option func(*config)

// New creates a disconnected service driving provider. A nil provider yields
// a service that never detects a wallet.
func New(provider Provider, opts ...Option) *service {
	cfg := config{
		connectTimeout: defaultConnectTimeout,
		callTimeout:    defaultCallTimeout,
		now:            func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if provider == nil {
		provider = nopProvider{}
	}

	return &service{
		provider:       provider,
		connectTimeout: cfg.connectTimeout,
		callTimeout:    cfg.callTimeout,
		now:            cfg.now,
		session:        Session{Status: StatusDisconnected},
	}
}

// WithConnectTimeout bounds a whole connection attempt, detection and the
// authorization prompt included. Default: 30 seconds.
func WithConnectTimeout(d time.Duration) Option {
	return func(c *config) {
		c.connectTimeout = d
	}
}

// WithCallTimeout bounds each session call (chain ID, balance, accounts,
// revocation). Default: 5 seconds.
func WithCallTimeout(d time.Duration) Option {
	return func(c *config) {
		c.callTimeout = d
	}
}

// WithClock overrides the time source used for ConnectedAt.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		c.now = now
	}
}
