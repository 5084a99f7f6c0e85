package wallet

import (
	"context"
	"math/big"
	"slices"

	"github.com/gabapcia/fantoken/internal/pkg/chainerr"
)

// connectedHandle returns the handle and session of a Connected session.
// The handle is borrowed: calls on it run outside the lock.
func (s *service) connectedHandle() (Handle, Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session.Status != StatusConnected || s.handle == nil {
		return nil, s.session, chainerr.ErrNotConnected
	}

	return s.handle, s.session, nil
}

func (s *service) GetChainID(ctx context.Context) (int64, error) {
	handle, _, err := s.connectedHandle()
	if err != nil {
		return 0, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.callTimeout)
	defer cancel()

	chainID, err := handle.ChainID(ctx)
	if err != nil {
		return 0, chainerr.Classify(err)
	}

	return chainID, nil
}

func (s *service) GetBalance(ctx context.Context) (*big.Int, error) {
	handle, session, err := s.connectedHandle()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.callTimeout)
	defer cancel()

	balance, err := handle.Balance(ctx, session.Account)
	if err != nil {
		return nil, chainerr.Classify(err)
	}

	return balance, nil
}

func (s *service) GetAccounts(ctx context.Context) ([]string, error) {
	handle, _, err := s.connectedHandle()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.callTimeout)
	defer cancel()

	accounts, err := handle.Accounts(ctx)
	if err != nil {
		return nil, chainerr.Classify(err)
	}

	return slices.Clone(accounts), nil
}
