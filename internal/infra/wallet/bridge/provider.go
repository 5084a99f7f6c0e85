// Package bridge implements wallet.Provider for an EIP-1193 wallet reached
// through a JSON-RPC HTTP bridge (a browser extension relay, a desktop wallet
// RPC port or an embedded auth provider gateway).
package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/gabapcia/fantoken/internal/pkg/chainerr"
	"github.com/gabapcia/fantoken/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/fantoken/internal/wallet"
)

// codeMethodNotFound is the JSON-RPC error for unsupported methods.
const codeMethodNotFound = -32601

// provider talks to the bridge through a JSON-RPC connection.
type provider struct {
	conn jsonrpc.Client
}

var _ wallet.Provider = (*provider)(nil)

// Detect checks the bridge with web3_clientVersion.
func (p *provider) Detect(ctx context.Context) (wallet.Capabilities, error) {
	data, err := p.conn.Fetch(ctx, "web3_clientVersion")
	if err != nil {
		return wallet.Capabilities{}, fmt.Errorf("%w: %w", chainerr.ErrNoProviderDetected, err)
	}

	var version string
	if err := json.Unmarshal(data, &version); err != nil || version == "" {
		return wallet.Capabilities{}, fmt.Errorf("%w: bridge did not report a client version", chainerr.ErrNoProviderDetected)
	}

	return wallet.Capabilities{
		Accounts: true,
		ChainID:  true,
		Balance:  true,
	}, nil
}

// Connect prompts the user through eth_requestAccounts.
func (p *provider) Connect(ctx context.Context) (wallet.Handle, error) {
	if _, err := fetchAccounts(ctx, p.conn, "eth_requestAccounts"); err != nil {
		return nil, err
	}

	return &handle{conn: p.conn}, nil
}

// NewProvider creates a provider over conn.
func NewProvider(conn jsonrpc.Client) *provider {
	return &provider{
		conn: conn,
	}
}

// handle is an authorized bridge session.
type handle struct {
	conn jsonrpc.Client
}

var _ wallet.Handle = (*handle)(nil)

func (h *handle) Accounts(ctx context.Context) ([]string, error) {
	return fetchAccounts(ctx, h.conn, "eth_accounts")
}

func (h *handle) ChainID(ctx context.Context) (int64, error) {
	data, err := h.conn.Fetch(ctx, "eth_chainId")
	if err != nil {
		return 0, err
	}

	var chainID hexutil.Big
	if err := json.Unmarshal(data, &chainID); err != nil {
		return 0, fmt.Errorf("decode eth_chainId: %w", err)
	}

	id := chainID.ToInt()
	if !id.IsInt64() || id.Sign() <= 0 {
		return 0, fmt.Errorf("invalid chain id %s", id)
	}

	return id.Int64(), nil
}

func (h *handle) Balance(ctx context.Context, account string) (*big.Int, error) {
	data, err := h.conn.Fetch(ctx, "eth_getBalance", account, "latest")
	if err != nil {
		return nil, err
	}

	var balance hexutil.Big
	if err := json.Unmarshal(data, &balance); err != nil {
		return nil, fmt.Errorf("decode eth_getBalance: %w", err)
	}

	return balance.ToInt(), nil
}

// Close revokes the eth_accounts permission. Bridges without
// wallet_revokePermissions are treated as revoked.
func (h *handle) Close(ctx context.Context) error {
	_, err := h.conn.Fetch(ctx, "wallet_revokePermissions", map[string]any{"eth_accounts": struct{}{}})

	var providerErr *jsonrpc.ProviderError
	if errors.As(err, &providerErr) && providerErr.Code == codeMethodNotFound {
		return nil
	}

	return err
}

func fetchAccounts(ctx context.Context, conn jsonrpc.Client, method string) ([]string, error) {
	data, err := conn.Fetch(ctx, method)
	if err != nil {
		return nil, err
	}

	var accounts []string
	if err := json.Unmarshal(data, &accounts); err != nil {
		return nil, fmt.Errorf("decode %s: %w", method, err)
	}

	return accounts, nil
}
