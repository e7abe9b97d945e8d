package mock

import (
	"context"
	"testing"

	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/big"
	cid "github.com/ipfs/go-cid"

	abi "github.com/SenderWallet/sender-ft-lockup/actors/abi"
)

// Build for fluent initialization of a mock runtime.
type RuntimeBuilder struct {
	ctx           context.Context
	receiver      addr.Address
	caller        addr.Address
	timestamp     abi.TimestampSec
	balance       abi.TokenAmount
	valueReceived abi.TokenAmount
}

// Initializes a new builder with a receiving actor address.
func NewBuilder(ctx context.Context, receiver addr.Address) RuntimeBuilder {
	return RuntimeBuilder{
		ctx:           ctx,
		receiver:      receiver,
		caller:        addr.Undef,
		timestamp:     0,
		balance:       big.Zero(),
		valueReceived: big.Zero(),
	}
}

// Builds a new runtime object with the configured values.
func (b RuntimeBuilder) Build(t testing.TB) *Runtime {
	return &Runtime{
		ctx:           b.ctx,
		timestamp:     b.timestamp,
		receiver:      b.receiver,
		caller:        b.caller,
		valueReceived: b.valueReceived,
		balance:       b.balance,
		state:         cid.Undef,
		store:         make(map[cid.Cid][]byte),
		t:             t,
	}
}

func (b RuntimeBuilder) WithCaller(address addr.Address) RuntimeBuilder {
	b.caller = address
	return b
}

func (b RuntimeBuilder) WithTimestamp(timestamp abi.TimestampSec) RuntimeBuilder {
	b.timestamp = timestamp
	return b
}

func (b RuntimeBuilder) WithBalance(balance, received abi.TokenAmount) RuntimeBuilder {
	b.balance = balance
	b.valueReceived = received
	return b
}
