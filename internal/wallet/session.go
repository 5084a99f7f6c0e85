package wallet

import "time"

// Status is the state of the wallet session.
type Status uint8

const (
	StatusDisconnected Status = iota
	StatusConnecting
	StatusConnected
	StatusError
)

// String returns the lowercase name of the status.
func (s Status) String() string {
	switch s {
	case StatusDisconnected:
		return "disconnected"
	case StatusConnecting:
		return "connecting"
	case StatusConnected:
		return "connected"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Capabilities describes what a detected provider supports, so callers can
// query a provider instead of assuming a fixed shape.
type Capabilities struct {
	Accounts    bool
	ChainID     bool
	Balance     bool
	SignMessage bool
}

// Session is a snapshot of the wallet connection.
//
// Account and ChainID are either both set or both zero, and are set only
// while Status is StatusConnected.
type Session struct {
	Status       Status
	Account      string
	ChainID      int64
	Capabilities Capabilities

	// Reason is the classified cause of the last transition into StatusError,
	// or chainerr.ErrProviderLost after the provider vanished. Nil otherwise.
	Reason error

	// ConnectedAt is set only while connected.
	ConnectedAt time.Time
}

// Connected reports whether the session is usable for account-bound calls.
func (s Session) Connected() bool {
	return s.Status == StatusConnected
}
