package main

import (
	"time"

	"github.com/gabapcia/fantoken/internal/chainread"
)

type readers struct {
	// session is bound to the wallet when one is configured.
	session chainread.Reader

	// readOnly never consults the wallet and serves --read-only refreshes.
	readOnly chainread.Reader
}

// newReaders builds the chain readers over network. A nil w leaves both
// readers wallet-free.
func newReaders(network chainread.Network, w chainread.Wallet, callTimeout time.Duration) readers {
	readOnly := chainread.New(network, chainread.WithCallTimeout(callTimeout))
	if w == nil {
		return readers{session: readOnly, readOnly: readOnly}
	}

	return readers{
		session:  chainread.New(network, chainread.WithCallTimeout(callTimeout), chainread.WithWallet(w)),
		readOnly: readOnly,
	}
}
