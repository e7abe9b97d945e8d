package abi

import (
	"strconv"

	"github.com/filecoin-project/go-state-types/big"
)

// The abi package contains definitions of the primitive types that cross the
// host boundary and are used within actor code.

// TimestampSec is a Unix timestamp in whole seconds, the host's proxy for time
// as observed by actor code. Vesting schedules are expressed in these units.
type TimestampSec int64

func (t TimestampSec) String() string {
	return strconv.FormatInt(int64(t), 10)
}

// MethodNum is an integer that represents a particular method
// in an actor's function table. These numbers are used to compress
// invocation of actor code, and to decouple human language concerns
// about method names from the ability to uniquely refer to a particular
// method.
type MethodNum uint64

func (e MethodNum) String() string {
	return strconv.FormatInt(int64(e), 10)
}

// TokenAmount is an amount of fungible tokens, denominated in the token's
// smallest indivisible unit.
//
// BigInt types are aliases rather than new types because the latter introduce incredible amounts of noise converting to
// and from types in order to manipulate values. We give up some type safety for ergonomics.
type TokenAmount = big.Int

func NewTokenAmount(t int64) TokenAmount {
	return big.NewInt(t)
}

// Invokee is satisfied by actor implementations for method dispatch.
type Invokee interface {
	Exports() []interface{}
}
