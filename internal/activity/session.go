package activity

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/fantoken/internal/feed"
	"github.com/gabapcia/fantoken/internal/pkg/chainerr"
	"github.com/gabapcia/fantoken/internal/pkg/logger"
	"github.com/gabapcia/fantoken/internal/pkg/x/chflow"
	"github.com/gabapcia/fantoken/internal/wallet"
)

func (s *service) Connect(ctx context.Context) (wallet.Session, error) {
	session, err := s.wallet.Connect(ctx)
	s.metrics.recordConnect(ctx, err)

	switch {
	case err == nil:
		s.feed.Add(feed.Input{
			Type:    feed.TypeSuccess,
			Title:   "Wallet connected",
			Message: fmt.Sprintf("Connected %s on chain %d", session.Account, session.ChainID),
			Data:    session,
		})
		s.checkChain(session)
	case errors.Is(err, chainerr.ErrNoProviderDetected):
		s.feed.Add(feed.Input{
			Type:    feed.TypeWarning,
			Title:   "No wallet detected",
			Message: "Install or enable a compatible wallet to continue",
		})
	case errors.Is(err, chainerr.ErrNotConnected):
		// The attempt was cancelled by a disconnect, which reports itself.
		logger.Info(ctx, "wallet connect superseded", "error", err)
	default:
		s.feed.Add(feed.Input{
			Type:    feed.TypeError,
			Title:   "Wallet connection failed",
			Message: err.Error(),
			Data:    session,
		})
	}

	return session, err
}

func (s *service) Disconnect(ctx context.Context) {
	if s.wallet.CurrentSession().Status == wallet.StatusDisconnected {
		return
	}

	s.wallet.Disconnect(ctx)

	s.feed.Add(feed.Input{
		Type:    feed.TypeInfo,
		Title:   "Wallet disconnected",
		Message: "The wallet session was closed",
	})
}

// checkChain warns when session is on a chain other than the expected one.
func (s *service) checkChain(session wallet.Session) {
	if s.expectedChainID == 0 || session.ChainID == s.expectedChainID {
		return
	}

	s.feed.Add(feed.Input{
		Type:    feed.TypeWarning,
		Title:   "Unexpected network",
		Message: fmt.Sprintf("Wallet is on chain %d, expected chain %d", session.ChainID, s.expectedChainID),
		Data:    session,
	})
}

// consumeSessionChanges turns monitor events into notifications until the
// channel closes.
func (s *service) consumeSessionChanges(ctx context.Context, last wallet.Session, sessionCh <-chan wallet.Session) {
	chflow.Each(ctx, sessionCh, func(session wallet.Session) {
		switch {
		case session.Status == wallet.StatusDisconnected && errors.Is(session.Reason, chainerr.ErrProviderLost):
			logger.Warn(ctx, "wallet provider lost")
			s.feed.Add(feed.Input{
				Type:    feed.TypeWarning,
				Title:   "Wallet disconnected",
				Message: "The wallet stopped responding and the session was closed",
			})
		case last.Connected() && session.Connected() && last.ChainID != session.ChainID:
			s.feed.Add(feed.Input{
				Type:    feed.TypeInfo,
				Title:   "Network changed",
				Message: fmt.Sprintf("Wallet switched from chain %d to chain %d", last.ChainID, session.ChainID),
				Data:    session,
			})
			s.checkChain(session)
		}

		last = session
	})
}
