package activity

import (
	"context"
	"time"

	"github.com/gabapcia/fantoken/internal/chainread"
)

// QueryKey identifies a cached read.
type QueryKey struct {
	Kind   chainread.Kind
	Target string

	// Method is the price getter. Empty for balances.
	Method string

	// ChainID is the session chain for session-bound reads and 0 for reads
	// made against the network endpoint without a session.
	ChainID int64
}

// QueryCache keeps recent successful reads so repeated refreshes can skip
// the network.
type QueryCache interface {
	// Get returns the cached result for key. The boolean is false on a miss.
	Get(ctx context.Context, key QueryKey) (chainread.Result, bool, error)

	// Save stores a successful result under key for ttl.
	Save(ctx context.Context, key QueryKey, result chainread.Result, ttl time.Duration) error
}

type nopCache struct{}

var _ QueryCache = nopCache{}

func (nopCache) Get(context.Context, QueryKey) (chainread.Result, bool, error) {
	return chainread.Result{}, false, nil
}

func (nopCache) Save(context.Context, QueryKey, chainread.Result, time.Duration) error {
	return nil
}
