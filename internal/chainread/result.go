package chainread

import "math/big"

// Kind identifies what a read queried.
type Kind uint8

const (
	KindPrice Kind = iota + 1
	KindBalance
	KindBlockNumber
)

// String returns the machine name of the kind, used in cache keys and metrics.
func (k Kind) String() string {
	switch k {
	case KindPrice:
		return "price"
	case KindBalance:
		return "balance"
	case KindBlockNumber:
		return "block_number"
	default:
		return "unknown"
	}
}

// Label returns the human name of the kind, as shown to users.
func (k Kind) Label() string {
	switch k {
	case KindPrice:
		return "Price"
	case KindBalance:
		return "Balance"
	case KindBlockNumber:
		return "Block number"
	default:
		return "Query"
	}
}

// Result is the outcome of a single read-only query. Exactly one of Value and
// Err is set.
type Result struct {
	Kind  Kind
	Value *big.Int

	// AsOfBlock is the block the read was pinned to, when known.
	AsOfBlock *uint64

	// Target is the contract or account the read refers to. Empty for block
	// number reads.
	Target string

	Err error
}

// OK reports whether the read succeeded.
func (r Result) OK() bool {
	return r.Err == nil
}

func success(kind Kind, target string, value *big.Int, block *uint64) Result {
	return Result{Kind: kind, Target: target, Value: value, AsOfBlock: block}
}

func failure(kind Kind, target string, err error) Result {
	return Result{Kind: kind, Target: target, Err: err}
}
