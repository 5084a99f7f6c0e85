package wallet

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/gabapcia/fantoken/internal/pkg/chainerr"
	"github.com/gabapcia/fantoken/internal/pkg/logger"
	"github.com/gabapcia/fantoken/internal/pkg/x/chflow"
)

var ErrMonitorAlreadyStarted = errors.New("monitor already started")

const (
	defaultMonitorInterval   = 4 * time.Second
	defaultFailureThreshold  = 3
	sessionChannelBufferSize = 5
)

// Monitor watches a connected session for provider loss and chain switches.
type Monitor interface {
	// Start launches the polling loop. Every status or chain ID change of the
	// session is emitted on the returned channel, which is closed by Close.
	Start(ctx context.Context) (<-chan Session, error)
	Close()
}

type closeFunc func()

type monitor struct {
	mu        sync.Mutex
	isStarted bool
	closeFunc closeFunc

	service          Service
	interval         time.Duration
	failureThreshold int
}

var _ Monitor = (*monitor)(nil)

func (m *monitor) Start(ctx context.Context) (<-chan Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.isStarted {
		return nil, ErrMonitorAlreadyStarted
	}

	ctx, cancel := context.WithCancel(ctx)

	var (
		sessionCh = make(chan Session, sessionChannelBufferSize)
		done      = make(chan struct{})
	)

	m.closeFunc = func() {
		cancel()
		<-done
	}

	last := m.service.CurrentSession()
	go func() {
		defer close(done)
		defer close(sessionCh)

		m.run(ctx, last, sessionCh)
	}()

	m.isStarted = true
	return sessionCh, nil
}

func (m *monitor) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closeFunc != nil {
		m.closeFunc()
	}
	m.isStarted = false
	m.closeFunc = nil
}

func (m *monitor) run(ctx context.Context, last Session, sessionCh chan<- Session) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	var failures int

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		failures = m.poll(ctx, failures)

		current := m.service.CurrentSession()
		if current.Status == last.Status && current.ChainID == last.ChainID {
			continue
		}
		last = current

		if !chflow.Send(ctx, sessionCh, current) {
			return
		}
	}
}

// poll checks the provider once and returns the updated consecutive failure count.
func (m *monitor) poll(ctx context.Context, failures int) int {
	session := m.service.CurrentSession()
	if !session.Connected() {
		return 0
	}

	chainID, err := m.service.GetChainID(ctx)
	switch {
	case err == nil:
		if chainID != session.ChainID {
			m.service.ChainChanged(ctx, chainID)
		}
		return 0
	case errors.Is(err, chainerr.ErrNotConnected), ctx.Err() != nil:
		return 0
	}

	failures++
	logger.Debug(ctx, "wallet provider check failed",
		"wallet.check.failures", failures,
		"error", err,
	)

	if failures < m.failureThreshold {
		return failures
	}

	m.service.ProviderLost(ctx)
	return 0
}

type monitorConfig struct {
	interval         time.Duration
	failureThreshold int
}

// MonitorOption configures the monitor.
type MonitorOption func(*monitorConfig)

// NewMonitor creates a monitor polling svc. It does nothing until started.
func NewMonitor(svc Service, opts ...MonitorOption) *monitor {
	cfg := monitorConfig{
		interval:         defaultMonitorInterval,
		failureThreshold: defaultFailureThreshold,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &monitor{
		service:          svc,
		interval:         cfg.interval,
		failureThreshold: max(cfg.failureThreshold, 1),
	}
}

// WithInterval sets the polling period. Default: 4 seconds.
func WithInterval(d time.Duration) MonitorOption {
	return func(c *monitorConfig) {
		c.interval = d
	}
}

// WithFailureThreshold sets how many consecutive failed checks mark the
// provider as lost. Default: 3.
func WithFailureThreshold(n int) MonitorOption {
	return func(c *monitorConfig) {
		c.failureThreshold = n
	}
}
