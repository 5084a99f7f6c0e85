package activity

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gabapcia/fantoken/internal/chainread"
	"github.com/gabapcia/fantoken/internal/feed"
	"github.com/gabapcia/fantoken/internal/pkg/chainerr"
	"github.com/gabapcia/fantoken/internal/pkg/logger"
)

func (s *service) RefreshPrice(ctx context.Context, ref chainread.ContractRef) chainread.Result {
	method := ref.Method
	if method == "" {
		method = chainread.DefaultPriceMethod
	}

	// Price reads are bound to the session, so a cached price is only served
	// while connected.
	session := s.wallet.CurrentSession()
	key := QueryKey{Kind: chainread.KindPrice, Target: ref.Address, Method: method, ChainID: session.ChainID}

	return s.refresh(ctx, key, session.Connected(), func(ctx context.Context) chainread.Result {
		return s.reader.ReadPrice(ctx, ref)
	})
}

func (s *service) RefreshBalance(ctx context.Context, address string) chainread.Result {
	session := s.wallet.CurrentSession()

	key := QueryKey{Kind: chainread.KindBalance, Target: address, ChainID: session.ChainID}
	if key.Target == "" {
		key.Target = session.Account
	}

	return s.refresh(ctx, key, session.Connected(), func(ctx context.Context) chainread.Result {
		return s.reader.ReadBalance(ctx, address)
	})
}

func (s *service) RefreshReadOnlyBalance(ctx context.Context, address string) chainread.Result {
	key := QueryKey{Kind: chainread.KindBalance, Target: address}

	return s.refresh(ctx, key, true, func(ctx context.Context) chainread.Result {
		return s.readOnly.ReadBalance(ctx, address)
	})
}

func (s *service) RefreshBlockNumber(ctx context.Context) chainread.Result {
	result := s.reader.ReadBlockNumber(ctx)
	s.metrics.recordQuery(ctx, result, false)
	s.publish(result)

	return result
}

// refresh serves key from the cache when lookup is set, otherwise runs read
// and caches a success. A key without target is never cached.
func (s *service) refresh(ctx context.Context, key QueryKey, lookup bool, read func(context.Context) chainread.Result) chainread.Result {
	if lookup && key.Target != "" {
		if result, ok := s.cached(ctx, key); ok {
			s.metrics.recordQuery(ctx, result, true)
			s.feed.Add(feed.Input{
				Type:    feed.TypeInfo,
				Title:   key.Kind.Label() + " (cached)",
				Message: describe(result),
				Data:    result,
			})
			return result
		}
	}

	result := read(ctx)
	s.metrics.recordQuery(ctx, result, false)
	s.publish(result)

	if result.OK() && key.Target != "" {
		if err := s.cache.Save(ctx, key, result, s.cacheTTL); err != nil {
			logger.Warn(ctx, "failed to cache chain query",
				"chain.query.kind", key.Kind.String(),
				"chain.query.target", key.Target,
				"error", err,
			)
		}
	}

	return result
}

func (s *service) cached(ctx context.Context, key QueryKey) (chainread.Result, bool) {
	result, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		logger.Warn(ctx, "failed to read chain query cache",
			"chain.query.kind", key.Kind.String(),
			"chain.query.target", key.Target,
			"error", err,
		)
		return chainread.Result{}, false
	}

	return result, ok
}

// publish appends the notification matching result.
func (s *service) publish(result chainread.Result) {
	switch {
	case result.OK():
		s.feed.Add(feed.Input{
			Type:    feed.TypeSuccess,
			Title:   result.Kind.Label() + " updated",
			Message: describe(result),
			Data:    result,
		})
	case errors.Is(result.Err, chainerr.ErrNotConnected):
		s.feed.Add(feed.Input{
			Type:    feed.TypeWarning,
			Title:   "Wallet not connected",
			Message: fmt.Sprintf("Connect a wallet to read the %s", strings.ToLower(result.Kind.Label())),
			Data:    result,
		})
	default:
		s.feed.Add(feed.Input{
			Type:    feed.TypeError,
			Title:   result.Kind.Label() + " update failed",
			Message: result.Err.Error(),
			Data:    result,
		})
	}
}

func describe(result chainread.Result) string {
	msg := fmt.Sprintf("%s: %s", result.Kind.Label(), result.Value)
	if result.Target != "" {
		msg += " for " + result.Target
	}
	if result.AsOfBlock != nil {
		msg += fmt.Sprintf(" at block %d", *result.AsOfBlock)
	}

	return msg
}
