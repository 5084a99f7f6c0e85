// Package ethereum provides the read-only network endpoint used by the chain
// reader, backed by the go-ethereum RPC client.
package ethereum

import (
	"context"
	"fmt"
	"math/big"
	"net/http"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"

	"github.com/gabapcia/fantoken/internal/chainread"
)

// client implements chainread.Network for Ethereum-compatible nodes.
type client struct {
	rpcClient *rpc.Client
	ethClient *ethclient.Client
}

var _ chainread.Network = (*client)(nil)

// BlockNumber returns the latest block number.
func (c *client) BlockNumber(ctx context.Context) (uint64, error) {
	return c.ethClient.BlockNumber(ctx)
}

// BalanceAt returns the wei balance of account at blockNumber. A nil block
// means the latest one.
func (c *client) BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error) {
	return c.ethClient.BalanceAt(ctx, account, blockNumber)
}

// CallContract performs an eth_call at blockNumber.
func (c *client) CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	return c.ethClient.CallContract(ctx, msg, blockNumber)
}

// ChainID returns the chain ID of the endpoint.
func (c *client) ChainID(ctx context.Context) (int64, error) {
	id, err := c.ethClient.ChainID(ctx)
	if err != nil {
		return 0, err
	}
	if !id.IsInt64() {
		return 0, fmt.Errorf("chain id %s out of range", id)
	}

	return id.Int64(), nil
}

// Close closes the underlying RPC client.
func (c *client) Close() {
	c.rpcClient.Close()
}

// Dial connects to the JSON-RPC endpoint at rawURL. HTTP endpoints are
// reached through httpClient; a nil httpClient uses the go-ethereum default.
func Dial(ctx context.Context, rawURL string, httpClient *http.Client) (*client, error) {
	var opts []rpc.ClientOption
	if httpClient != nil {
		opts = append(opts, rpc.WithHTTPClient(httpClient))
	}

	rpcClient, err := rpc.DialOptions(ctx, rawURL, opts...)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", rawURL, err)
	}

	return &client{
		rpcClient: rpcClient,
		ethClient: ethclient.NewClient(rpcClient),
	}, nil
}
