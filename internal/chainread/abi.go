package chainread

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// DefaultPriceMethod is called when a ContractRef names no method.
const DefaultPriceMethod = "price"

// priceABIJSON covers the common no-argument price getters of token sale and
// oracle contracts.
const priceABIJSON = `[
  {"inputs": [], "name": "price", "outputs": [{"internalType": "uint256", "name": "", "type": "uint256"}], "stateMutability": "view", "type": "function"},
  {"inputs": [], "name": "getPrice", "outputs": [{"internalType": "uint256", "name": "", "type": "uint256"}], "stateMutability": "view", "type": "function"},
  {"inputs": [], "name": "latestAnswer", "outputs": [{"internalType": "int256", "name": "", "type": "int256"}], "stateMutability": "view", "type": "function"}
]`

// ErrUnexpectedOutput is joined with chainerr.ErrNetwork when a contract
// answers with data that does not decode as an integer.
var ErrUnexpectedOutput = errors.New("unexpected contract output")

var (
	priceABI     abi.ABI
	priceABIOnce sync.Once
	priceABIErr  error
)

// PriceABI returns the parsed default price ABI.
func PriceABI() (abi.ABI, error) {
	priceABIOnce.Do(func() {
		priceABI, priceABIErr = abi.JSON(strings.NewReader(priceABIJSON))
	})
	return priceABI, priceABIErr
}

// decodeInteger unpacks the first output of method as an integer.
func decodeInteger(contractABI abi.ABI, method string, data []byte) (*big.Int, error) {
	values, err := contractABI.Unpack(method, data)
	if err != nil {
		return nil, fmt.Errorf("%w: unpack %s: %w", ErrUnexpectedOutput, method, err)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: %s returned no values", ErrUnexpectedOutput, method)
	}

	switch v := values[0].(type) {
	case *big.Int:
		return v, nil
	case uint8:
		return new(big.Int).SetUint64(uint64(v)), nil
	case uint16:
		return new(big.Int).SetUint64(uint64(v)), nil
	case uint32:
		return new(big.Int).SetUint64(uint64(v)), nil
	case uint64:
		return new(big.Int).SetUint64(v), nil
	case int8:
		return big.NewInt(int64(v)), nil
	case int16:
		return big.NewInt(int64(v)), nil
	case int32:
		return big.NewInt(int64(v)), nil
	case int64:
		return big.NewInt(v), nil
	default:
		return nil, fmt.Errorf("%w: %s returned %T", ErrUnexpectedOutput, method, values[0])
	}
}
