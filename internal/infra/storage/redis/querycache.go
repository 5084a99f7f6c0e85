package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gabapcia/fantoken/internal/activity"
	"github.com/gabapcia/fantoken/internal/chainread"
)

var (
	// ErrUncacheableResult is returned when saving a failed read.
	ErrUncacheableResult = errors.New("only successful results can be cached")

	// ErrCorruptedEntry is returned when a cached entry does not decode.
	ErrCorruptedEntry = errors.New("corrupted cache entry")
)

// cachedResult is the stored form of a successful chainread.Result.
type cachedResult struct {
	Kind      chainread.Kind `json:"kind"`
	Value     string         `json:"value"`
	AsOfBlock *uint64        `json:"as_of_block,omitempty"`
	Target    string         `json:"target"`
}

// queryKey lays a QueryKey out as <prefix>:query:<chain>:<kind>:<target>[:<method>].
// Addresses are case-insensitive, method names are not.
func (c *client) queryKey(key activity.QueryKey) string {
	k := fmt.Sprintf("%s:query:%d:%s:%s", c.keyPrefix, key.ChainID, key.Kind, strings.ToLower(key.Target))
	if key.Method != "" {
		k += ":" + key.Method
	}

	return k
}

func encodeResult(result chainread.Result) ([]byte, error) {
	if !result.OK() || result.Value == nil {
		return nil, ErrUncacheableResult
	}

	return json.Marshal(cachedResult{
		Kind:      result.Kind,
		Value:     result.Value.String(),
		AsOfBlock: result.AsOfBlock,
		Target:    result.Target,
	})
}

func decodeResult(data []byte) (chainread.Result, error) {
	var entry cachedResult
	if err := json.Unmarshal(data, &entry); err != nil {
		return chainread.Result{}, fmt.Errorf("%w: %w", ErrCorruptedEntry, err)
	}

	value, ok := new(big.Int).SetString(entry.Value, 10)
	if !ok {
		return chainread.Result{}, fmt.Errorf("%w: value %q is not an integer", ErrCorruptedEntry, entry.Value)
	}

	return chainread.Result{
		Kind:      entry.Kind,
		Value:     value,
		AsOfBlock: entry.AsOfBlock,
		Target:    entry.Target,
	}, nil
}

// Get returns the result cached under key, if present.
func (c *client) Get(ctx context.Context, key activity.QueryKey) (chainread.Result, bool, error) {
	data, err := c.conn.Get(ctx, c.queryKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return chainread.Result{}, false, nil
	}
	if err != nil {
		return chainread.Result{}, false, err
	}

	result, err := decodeResult(data)
	if err != nil {
		return chainread.Result{}, false, err
	}

	return result, true, nil
}

// Save stores a successful result under key for ttl.
func (c *client) Save(ctx context.Context, key activity.QueryKey, result chainread.Result, ttl time.Duration) error {
	data, err := encodeResult(result)
	if err != nil {
		return err
	}

	return c.conn.Set(ctx, c.queryKey(key), data, ttl).Err()
}

// Ensure the client satisfies the QueryCache interface at compile time.
var _ activity.QueryCache = new(client)
