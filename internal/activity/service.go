// Package activity runs the user-triggered wallet and chain operations and
// turns their outcomes into feed notifications. It is the layer a UI or CLI
// calls; the wallet service and the reader below it never publish anything.
package activity

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.opentelemetry.io/otel/metric"

	"github.com/gabapcia/fantoken/internal/chainread"
	"github.com/gabapcia/fantoken/internal/feed"
	"github.com/gabapcia/fantoken/internal/pkg/telemetry"
	"github.com/gabapcia/fantoken/internal/wallet"
)

var ErrServiceAlreadyStarted = errors.New("service already started")

const defaultCacheTTL = 15 * time.Second

type Service interface {
	// Connect connects the wallet and reports the outcome on the feed.
	Connect(ctx context.Context) (wallet.Session, error)

	// Disconnect ends the wallet session and reports it on the feed.
	Disconnect(ctx context.Context)

	// RefreshPrice reads the contract price and reports the outcome on the feed.
	RefreshPrice(ctx context.Context, ref chainread.ContractRef) chainread.Result

	// RefreshBalance reads a native balance and reports the outcome on the
	// feed. An empty address means the session account.
	RefreshBalance(ctx context.Context, address string) chainread.Result

	// RefreshReadOnlyBalance reads the balance of address on the read-only
	// reader, which needs no wallet session, and reports it on the feed.
	RefreshReadOnlyBalance(ctx context.Context, address string) chainread.Result

	// RefreshBlockNumber reads the latest block and reports it on the feed.
	RefreshBlockNumber(ctx context.Context) chainread.Result

	// Start consumes wallet monitor events until Close. Without a monitor it
	// only marks the service as started.
	Start(ctx context.Context) error
	Close()

	// Feed returns the store notifications are published to.
	Feed() feed.Store
}

type closeFunc func()

type service struct {
	mu        sync.Mutex
	isStarted bool
	closeFunc closeFunc

	wallet   wallet.Service
	reader   chainread.Reader
	readOnly chainread.Reader
	feed     feed.Store
	monitor  wallet.Monitor

	cache           QueryCache
	cacheTTL        time.Duration
	expectedChainID int64
	metrics         metrics
}

var _ Service = (*service)(nil)

func (s *service) Feed() feed.Store {
	return s.feed
}

func (s *service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isStarted {
		return ErrServiceAlreadyStarted
	}

	if s.monitor == nil {
		s.closeFunc = func() {}
		s.isStarted = true
		return nil
	}

	sessionCh, err := s.monitor.Start(ctx)
	if err != nil {
		return err
	}

	done := make(chan struct{})
	last := s.wallet.CurrentSession()
	go func() {
		defer close(done)
		s.consumeSessionChanges(ctx, last, sessionCh)
	}()

	s.closeFunc = func() {
		s.monitor.Close()
		<-done
	}

	s.isStarted = true
	return nil
}

func (s *service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closeFunc != nil {
		s.closeFunc()
	}
	s.isStarted = false
	s.closeFunc = nil
}

type config struct {
	monitor         wallet.Monitor
	readOnly        chainread.Reader
	cache           QueryCache
	cacheTTL        time.Duration
	expectedChainID int64
	meter           metric.Meter
}

type Option func(*config)

// New creates the coordinator. Notifications go to store.
func New(walletService wallet.Service, reader chainread.Reader, store feed.Store, opts ...Option) *service {
	cfg := config{
		cache:    nopCache{},
		cacheTTL: defaultCacheTTL,
		meter:    telemetry.Meter(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	readOnly := cfg.readOnly
	if readOnly == nil {
		readOnly = reader
	}

	return &service{
		wallet:          walletService,
		reader:          reader,
		readOnly:        readOnly,
		feed:            store,
		monitor:         cfg.monitor,
		cache:           cfg.cache,
		cacheTTL:        cfg.cacheTTL,
		expectedChainID: cfg.expectedChainID,
		metrics:         newMetrics(cfg.meter),
	}
}

// WithMonitor sets the wallet monitor whose events Start consumes.
func WithMonitor(m wallet.Monitor) Option {
	return func(c *config) {
		c.monitor = m
	}
}

// WithReadOnlyReader sets the reader used by RefreshReadOnlyBalance. It
// should carry no wallet. Default: the main reader.
func WithReadOnlyReader(r chainread.Reader) Option {
	return func(c *config) {
		c.readOnly = r
	}
}

// WithQueryCache serves price and balance refreshes from cache for ttl.
func WithQueryCache(cache QueryCache, ttl time.Duration) Option {
	return func(c *config) {
		c.cache = cache
		c.cacheTTL = ttl
	}
}

// WithExpectedChainID warns when the wallet connects to any other chain.
func WithExpectedChainID(chainID int64) Option {
	return func(c *config) {
		c.expectedChainID = chainID
	}
}

// WithMeter overrides the meter counters are created from.
func WithMeter(meter metric.Meter) Option {
	return func(c *config) {
		c.meter = meter
	}
}
