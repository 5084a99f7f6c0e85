// Package chainread performs read-only chain queries (contract price, account
// balance, block number) and reports each outcome as a Result carrying either
// a value or a chainerr-classified error. Readers hold no state of their own
// and never publish notifications.
package chainread

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	"github.com/gabapcia/fantoken/internal/pkg/chainerr"
	"github.com/gabapcia/fantoken/internal/pkg/validator"
	"github.com/gabapcia/fantoken/internal/wallet"
)

const defaultCallTimeout = 5 * time.Second

// Network is the read-only chain endpoint.
type Network interface {
	BlockNumber(ctx context.Context) (uint64, error)
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
}

// Wallet is the subset of the wallet service the reader composes with.
type Wallet interface {
	CurrentSession() wallet.Session
	GetBalance(ctx context.Context) (*big.Int, error)
}

// ContractRef points at a contract method returning a single integer.
type ContractRef struct {
	Address string `validate:"required,eth_addr"`

	// Method defaults to DefaultPriceMethod.
	Method string

	// ABI defaults to PriceABI.
	ABI *abi.ABI `validate:"-"`
}

// resolve returns the ABI and method name to call, applying defaults.
func (c ContractRef) resolve() (abi.ABI, string, error) {
	method := c.Method
	if method == "" {
		method = DefaultPriceMethod
	}

	contractABI, err := PriceABI()
	if c.ABI != nil {
		contractABI, err = *c.ABI, nil
	}
	if err != nil {
		return abi.ABI{}, "", err
	}

	if _, ok := contractABI.Methods[method]; !ok {
		return abi.ABI{}, "", fmt.Errorf("%w: method %q is not part of the contract ABI", validator.ErrValidationFailed, method)
	}

	return contractABI, method, nil
}

// Reader is the on-chain read surface.
type Reader interface {
	// ReadPrice calls the price getter of ref pinned to the current block.
	// It requires a connected wallet session.
	ReadPrice(ctx context.Context, ref ContractRef) Result

	// ReadBalance returns the native balance of address. An empty address
	// means the session account. Explicit addresses need a connected session
	// too, unless the reader has no wallet attached.
	ReadBalance(ctx context.Context, address string) Result

	// ReadBlockNumber returns the latest block number. It needs no session.
	ReadBlockNumber(ctx context.Context) Result
}

type reader struct {
	network     Network
	wallet      Wallet
	callTimeout time.Duration
}

var _ Reader = (*reader)(nil)

func (r *reader) ReadPrice(ctx context.Context, ref ContractRef) Result {
	ctx, span := startSpan(ctx, KindPrice, ref.Address)
	defer span.End()

	return observe(ctx, span, r.readPrice(ctx, ref))
}

func (r *reader) readPrice(ctx context.Context, ref ContractRef) Result {
	if r.wallet == nil || !r.wallet.CurrentSession().Connected() {
		return failure(KindPrice, ref.Address, chainerr.ErrNotConnected)
	}

	if err := validator.Validate(ref); err != nil {
		return failure(KindPrice, ref.Address, err)
	}

	contractABI, method, err := ref.resolve()
	if err != nil {
		return failure(KindPrice, ref.Address, err)
	}

	data, err := contractABI.Pack(method)
	if err != nil {
		return failure(KindPrice, ref.Address, fmt.Errorf("%w: pack %s: %w", validator.ErrValidationFailed, method, err))
	}

	ctx, cancel := context.WithTimeout(ctx, r.callTimeout)
	defer cancel()

	block, err := r.network.BlockNumber(ctx)
	if err != nil {
		return failure(KindPrice, ref.Address, chainerr.Classify(err))
	}

	to := common.HexToAddress(ref.Address)
	out, err := r.network.CallContract(ctx, ethereum.CallMsg{To: &to, Data: data}, new(big.Int).SetUint64(block))
	if err != nil {
		return failure(KindPrice, ref.Address, chainerr.Classify(err))
	}

	value, err := decodeInteger(contractABI, method, out)
	if err != nil {
		return failure(KindPrice, ref.Address, fmt.Errorf("%w: %w", chainerr.ErrNetwork, err))
	}

	return success(KindPrice, ref.Address, value, &block)
}

func (r *reader) ReadBalance(ctx context.Context, address string) Result {
	ctx, span := startSpan(ctx, KindBalance, address)
	defer span.End()

	if address == "" {
		return observe(ctx, span, r.readSessionBalance(ctx))
	}

	return observe(ctx, span, r.readAddressBalance(ctx, address))
}

func (r *reader) readSessionBalance(ctx context.Context) Result {
	if r.wallet == nil {
		return failure(KindBalance, "", chainerr.ErrNotConnected)
	}

	session := r.wallet.CurrentSession()
	if !session.Connected() {
		return failure(KindBalance, "", chainerr.ErrNotConnected)
	}

	ctx, cancel := context.WithTimeout(ctx, r.callTimeout)
	defer cancel()

	balance, err := r.wallet.GetBalance(ctx)
	if err != nil {
		return failure(KindBalance, session.Account, chainerr.Classify(err))
	}

	return success(KindBalance, session.Account, balance, nil)
}

func (r *reader) readAddressBalance(ctx context.Context, address string) Result {
	if r.wallet != nil && !r.wallet.CurrentSession().Connected() {
		return failure(KindBalance, address, chainerr.ErrNotConnected)
	}

	if err := validator.Var("address", address, "eth_addr"); err != nil {
		return failure(KindBalance, address, err)
	}

	ctx, cancel := context.WithTimeout(ctx, r.callTimeout)
	defer cancel()

	block, err := r.network.BlockNumber(ctx)
	if err != nil {
		return failure(KindBalance, address, chainerr.Classify(err))
	}

	balance, err := r.network.BalanceAt(ctx, common.HexToAddress(address), new(big.Int).SetUint64(block))
	if err != nil {
		return failure(KindBalance, address, chainerr.Classify(err))
	}

	return success(KindBalance, address, balance, &block)
}

func (r *reader) ReadBlockNumber(ctx context.Context) Result {
	ctx, span := startSpan(ctx, KindBlockNumber, "")
	defer span.End()

	return observe(ctx, span, r.readBlockNumber(ctx))
}

func (r *reader) readBlockNumber(ctx context.Context) Result {
	ctx, cancel := context.WithTimeout(ctx, r.callTimeout)
	defer cancel()

	block, err := r.network.BlockNumber(ctx)
	if err != nil {
		return failure(KindBlockNumber, "", chainerr.Classify(err))
	}

	return success(KindBlockNumber, "", new(big.Int).SetUint64(block), &block)
}

type config struct {
	wallet      Wallet
	callTimeout time.Duration
}

// Option configures the reader.
type Option func(*config)

// New creates a reader over network. Without WithWallet the reader is
// read-only: explicit balance and block number reads work without a session,
// price and session balance reads fail with chainerr.ErrNotConnected.
func New(network Network, opts ...Option) *reader {
	cfg := config{
		callTimeout: defaultCallTimeout,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &reader{
		network:     network,
		wallet:      cfg.wallet,
		callTimeout: cfg.callTimeout,
	}
}

// WithWallet attaches the wallet session reads are bound to.
func WithWallet(w Wallet) Option {
	return func(c *config) {
		c.wallet = w
	}
}

// WithCallTimeout bounds each read, block pinning included. Default: 5 seconds.
func WithCallTimeout(d time.Duration) Option {
	return func(c *config) {
		c.callTimeout = d
	}
}
