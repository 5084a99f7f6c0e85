package wallet

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/fantoken/internal/pkg/chainerr"
	"github.com/gabapcia/fantoken/internal/pkg/logger"
)

// errNoAccounts is reported when the wallet authorizes the request but exposes no account.
var errNoAccounts = errors.New("wallet returned no accounts")

// detect runs provider detection once. Failures are not cached, so a later
// call can pick up a wallet installed in the meantime.
func (s *service) detect(ctx context.Context) error {
	s.mu.Lock()
	if s.initialized {
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()

	caps, err := s.provider.Detect(ctx)
	if err != nil {
		err = chainerr.Classify(err)
		if !errors.Is(err, chainerr.ErrTimeout) && !errors.Is(err, chainerr.ErrNoProviderDetected) {
			err = fmt.Errorf("%w: %w", chainerr.ErrNoProviderDetected, err)
		}
		return err
	}

	s.mu.Lock()
	s.initialized = true
	s.capabilities = caps
	s.session.Capabilities = caps
	s.mu.Unlock()

	return nil
}

func (s *service) Initialize(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, s.callTimeout)
	defer cancel()

	if err := s.detect(ctx); err != nil {
		logger.Warn(ctx, "wallet provider not available", "error", err)
		return false
	}

	return true
}

func (s *service) Connect(ctx context.Context) (Session, error) {
	s.mu.Lock()
	switch s.session.Status {
	case StatusConnected:
		session := s.session
		s.mu.Unlock()
		return session, nil
	case StatusConnecting:
		a := s.inflight
		s.mu.Unlock()
		return s.await(ctx, a)
	}

	a := &attempt{done: make(chan struct{})}
	s.inflight = a
	s.generation++
	generation := s.generation
	s.session = Session{Status: StatusConnecting, Capabilities: s.capabilities}
	s.mu.Unlock()

	a.session, a.err = s.runAttempt(ctx, generation)
	close(a.done)

	return a.session, a.err
}

// await blocks until the in-flight attempt resolves or ctx is done.
func (s *service) await(ctx context.Context, a *attempt) (Session, error) {
	select {
	case <-a.done:
		return a.session, a.err
	case <-ctx.Done():
		return s.CurrentSession(), chainerr.Classify(ctx.Err())
	}
}

// runAttempt performs detection, authorization and the initial session reads
// under the connect timeout.
func (s *service) runAttempt(ctx context.Context, generation uint64) (Session, error) {
	ctx, cancel := context.WithTimeout(ctx, s.connectTimeout)
	defer cancel()

	if err := s.detect(ctx); err != nil {
		return s.fail(ctx, generation, err)
	}

	handle, err := s.provider.Connect(ctx)
	if err != nil {
		return s.fail(ctx, generation, err)
	}

	accounts, err := handle.Accounts(ctx)
	if err == nil && len(accounts) == 0 {
		err = fmt.Errorf("%w: %w", chainerr.ErrRejected, errNoAccounts)
	}
	if err != nil {
		s.closeHandle(ctx, handle)
		return s.fail(ctx, generation, err)
	}

	chainID, err := handle.ChainID(ctx)
	if err != nil {
		s.closeHandle(ctx, handle)
		return s.fail(ctx, generation, err)
	}

	return s.succeed(ctx, generation, handle, accounts[0], chainID)
}

// fail resolves the attempt to StatusError, unless a Disconnect superseded it.
func (s *service) fail(ctx context.Context, generation uint64, err error) (Session, error) {
	err = chainerr.Classify(err)

	s.mu.Lock()
	defer s.mu.Unlock()

	if generation == s.generation {
		s.session = Session{Status: StatusError, Capabilities: s.capabilities, Reason: err}
		s.inflight = nil
	}

	logger.Warn(ctx, "wallet connection failed",
		"wallet.outcome", chainerr.Outcome(err),
		"error", err,
	)

	return s.session, err
}

// succeed resolves the attempt to StatusConnected. When a Disconnect happened
// while the attempt was running, the fresh handle is released instead.
func (s *service) succeed(ctx context.Context, generation uint64, handle Handle, account string, chainID int64) (Session, error) {
	s.mu.Lock()
	if generation != s.generation {
		session := s.session
		s.mu.Unlock()

		s.closeHandle(ctx, handle)
		return session, fmt.Errorf("%w: connect aborted by disconnect", chainerr.ErrNotConnected)
	}

	s.handle = handle
	s.inflight = nil
	s.session = Session{
		Status:       StatusConnected,
		Account:      account,
		ChainID:      chainID,
		Capabilities: s.capabilities,
		ConnectedAt:  s.now(),
	}
	session := s.session
	s.mu.Unlock()

	logger.Info(ctx, "wallet connected",
		"wallet.account", account,
		"wallet.chain_id", chainID,
	)

	return session, nil
}

// reset moves the session to Disconnected with reason and returns the
// released handle. Callers must hold the lock.
func (s *service) reset(reason error) Handle {
	handle := s.handle

	s.generation++
	s.handle = nil
	s.inflight = nil
	s.session = Session{Status: StatusDisconnected, Capabilities: s.capabilities, Reason: reason}

	return handle
}

func (s *service) Disconnect(ctx context.Context) {
	s.mu.Lock()
	if s.session.Status == StatusDisconnected {
		s.mu.Unlock()
		return
	}
	handle := s.reset(nil)
	s.mu.Unlock()

	if handle != nil {
		s.closeHandle(ctx, handle)
	}

	logger.Info(ctx, "wallet disconnected")
}

func (s *service) ProviderLost(ctx context.Context) {
	s.mu.Lock()
	if s.session.Status != StatusConnected {
		s.mu.Unlock()
		return
	}
	handle := s.reset(chainerr.ErrProviderLost)
	s.mu.Unlock()

	s.closeHandle(ctx, handle)

	logger.Warn(ctx, "wallet provider lost")
}

func (s *service) ChainChanged(ctx context.Context, chainID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session.Status != StatusConnected || s.session.ChainID == chainID {
		return
	}

	logger.Info(ctx, "wallet chain changed",
		"wallet.chain_id.previous", s.session.ChainID,
		"wallet.chain_id", chainID,
	)
	s.session.ChainID = chainID
}

func (s *service) Close() {
	s.Disconnect(context.Background())
}

// closeHandle revokes a handle on a bounded, uncancelled context. Errors are
// only logged: releasing the session locally always succeeds.
func (s *service) closeHandle(ctx context.Context, handle Handle) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.callTimeout)
	defer cancel()

	if err := handle.Close(ctx); err != nil {
		logger.Warn(ctx, "failed to release wallet handle", "error", err)
	}
}
