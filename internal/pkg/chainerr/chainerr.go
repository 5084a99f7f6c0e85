// Package chainerr defines the error taxonomy shared by the wallet service and
// the on-chain reader, and the classifier that maps raw transport, context and
// JSON-RPC failures onto it.
//
// Every classified error wraps both its category and the original cause, so
// callers can test the category with errors.Is and still log the cause:
//
//	if errors.Is(err, chainerr.ErrTimeout) {
//	    // retry is permitted
//	}
package chainerr

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/gabapcia/fantoken/internal/pkg/validator"

	"github.com/ethereum/go-ethereum/rpc"
)

var (
	// ErrNoProviderDetected indicates no compatible wallet integration is present.
	// It is user-actionable: the user has to install or enable a wallet.
	ErrNoProviderDetected = errors.New("no wallet provider detected")

	// ErrNotConnected is returned when an operation that needs a session is
	// invoked while the session is not connected.
	ErrNotConnected = errors.New("wallet not connected")

	// ErrRejected indicates the user declined the connection or authorization prompt.
	ErrRejected = errors.New("request rejected by user")

	// ErrTimeout indicates a provider or network call exceeded its bound.
	ErrTimeout = errors.New("request timed out")

	// ErrNetwork indicates a transport or RPC failure.
	ErrNetwork = errors.New("network error")

	// ErrProviderLost indicates a previously connected provider disappeared.
	ErrProviderLost = errors.New("wallet provider lost")

	// ErrCallReverted indicates a contract call reverted. It is always reported
	// together with ErrNetwork.
	ErrCallReverted = errors.New("contract call reverted")
)

const (
	// CodeUserRejected is the EIP-1193 error code for a rejected request.
	CodeUserRejected = 4001

	// codeExecutionReverted is the error code geth-compatible nodes use for reverts.
	codeExecutionReverted = 3
)

// taxonomy lists the categories that pass through Classify untouched.
var taxonomy = []error{
	ErrNoProviderDetected,
	ErrNotConnected,
	ErrRejected,
	ErrTimeout,
	ErrNetwork,
	ErrProviderLost,
}

// Classify maps err onto the taxonomy. It returns nil for a nil error, returns
// errors already in the taxonomy (and validation failures) unchanged, and wraps
// anything else with the matching category.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	for _, known := range taxonomy {
		if errors.Is(err, known) {
			return err
		}
	}

	if errors.Is(err, validator.ErrValidationFailed) {
		return err
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	}

	var rpcErr rpc.Error
	if errors.As(err, &rpcErr) {
		switch rpcErr.ErrorCode() {
		case CodeUserRejected:
			return fmt.Errorf("%w: %w", ErrRejected, err)
		case codeExecutionReverted:
			return fmt.Errorf("%w: %w: %w", ErrNetwork, ErrCallReverted, err)
		}
	}

	if strings.Contains(err.Error(), "execution reverted") {
		return fmt.Errorf("%w: %w: %w", ErrNetwork, ErrCallReverted, err)
	}

	return fmt.Errorf("%w: %w", ErrNetwork, err)
}

// Outcome returns a short, stable label for err, suitable for log fields and
// metric attributes. A nil error yields "ok".
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrNoProviderDetected):
		return "no_provider"
	case errors.Is(err, ErrNotConnected):
		return "not_connected"
	case errors.Is(err, ErrRejected):
		return "rejected"
	case errors.Is(err, ErrTimeout):
		return "timeout"
	case errors.Is(err, ErrProviderLost):
		return "provider_lost"
	case errors.Is(err, ErrCallReverted):
		return "reverted"
	case errors.Is(err, ErrNetwork):
		return "network"
	case errors.Is(err, validator.ErrValidationFailed):
		return "invalid_input"
	default:
		return "unknown"
	}
}

// Retryable reports whether a caller may retry the operation that produced err.
func Retryable(err error) bool {
	return errors.Is(err, ErrRejected) ||
		errors.Is(err, ErrTimeout) ||
		errors.Is(err, ErrNetwork)
}
