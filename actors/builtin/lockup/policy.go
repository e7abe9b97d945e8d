package lockup

import (
	"github.com/filecoin-project/go-state-types/big"
	"github.com/filecoin-project/go-state-types/exitcode"

	abi "github.com/SenderWallet/sender-ft-lockup/actors/abi"
)

const (
	// A termination was requested effective at a time already in the past.
	ErrInvalidTimestamp = exitcode.FirstActorSpecificExitCode + iota
	// An amount or index left the representable range.
	ErrOverflow
)

// MinSecurityDeposit is the value that must accompany state-mutating operator
// methods, proving the call carries write intent rather than being a
// misrouted read-only view.
var MinSecurityDeposit = abi.NewTokenAmount(1)

// MaxTokenAmount bounds every amount handled by this actor to the range of
// the external fungible-token standard's 128-bit balances.
var MaxTokenAmount = big.Lsh(big.NewInt(1), 128)
