package runtime

import (
	"context"
	"io"

	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/exitcode"
	rtt "github.com/filecoin-project/go-state-types/rt"
	cid "github.com/ipfs/go-cid"

	abi "github.com/SenderWallet/sender-ft-lockup/actors/abi"
)

// Runtime is the interface to everything the host exposes to actor code,
// beyond method parameters.
//
// The host processes one invocation at a time to completion; actor code never
// observes concurrent access to its state. The only suspension point is a
// token transfer scheduled with Transfer: the current invocation commits its
// state, the transfer is issued, and the attached continuation later runs as
// its own top-level invocation carrying the transfer's outcome.
type Runtime interface {
	// Information related to the current message being executed.
	Message() Message

	// The current time, in whole seconds.
	CurrTime() abi.TimestampSec

	// Validates the caller against some predicate.
	// Exported actor methods must invoke at least one caller validation before returning.
	ValidateImmediateCallerAcceptAny()
	ValidateImmediateCallerIs(addrs ...addr.Address)

	// The native balance of the receiver, including any value received with the current message.
	CurrentBalance() abi.TokenAmount

	// Provides a handle for the actor's state object.
	State() StateHandle

	// Provides the raw IPLD storage module.
	Store() Store

	// Transfer schedules an asynchronous transfer of `amount` fungible tokens
	// held with the token actor `token` to the account `to`, followed by a
	// deferred invocation of `method` on the receiver with `params`. The
	// deferred invocation observes the transfer's outcome via
	// TransferSucceeded.
	//
	// State committed by the current invocation is durable before the transfer
	// is issued; there is no caller-initiated cancellation. Must not be called
	// inside a state transaction.
	Transfer(token addr.Address, to addr.Address, amount abi.TokenAmount, memo string, method abi.MethodNum, params CBORMarshaler)

	// TransferSucceeded reports the outcome of the transfer that scheduled the
	// currently executing deferred invocation. Calling it from any other
	// context is a programmer error.
	TransferSucceeded() bool

	// EmitEvent delivers a structured fact about a committed state change to
	// the host's event sink. The sink is write-only: actor code can never
	// observe emitted events.
	EmitEvent(kind string, payload CBORMarshaler)

	// Log provides human-readable diagnostics. Never substitutes for events.
	Log(level rtt.LogLevel, msg string, args ...interface{})

	// Halts execution upon an error from which the receiver cannot recover. The caller will receive the exitcode and
	// an empty return value. State changes made within this call will be rolled back.
	// This method does not return.
	// The message and args are for diagnostic purposes and do not persist on chain. They should be suitable for
	// passing to fmt.Errorf(msg, args...).
	Abortf(errExitCode exitcode.ExitCode, msg string, args ...interface{})

	// Provides a Go context for use by HAMT, etc.
	// The host is intended to provide an idealised machine abstraction, with infinite storage etc., so this context
	// should not be used by actor code directly.
	Context() context.Context
}

// Store defines the storage module exposed to actors.
type Store interface {
	// Retrieves and deserializes an object from the store into `o`. Returns whether successful.
	Get(c cid.Cid, o CBORUnmarshaler) bool
	// Serializes and stores an object, returning its CID.
	Put(x CBORMarshaler) cid.Cid
}

// Message contains information available to the actor about the executing message.
type Message interface {
	// The address of the immediate calling actor. Always an ID-address.
	Caller() addr.Address

	// The address of the actor receiving the message. Always an ID-address.
	Receiver() addr.Address

	// The value attached to the message being processed, implicitly added to CurrentBalance() before method invocation.
	ValueReceived() abi.TokenAmount
}

// StateHandle provides mutable, exclusive access to actor state.
type StateHandle interface {
	// Create initializes the state object.
	// This is only valid in a constructor function and when the state has not yet been initialized.
	Create(obj CBORMarshaler)

	// Readonly loads a readonly copy of the state into the argument.
	//
	// Any modification to the state is illegal and will result in an abort.
	Readonly(obj CBORUnmarshaler)

	// Transaction loads a mutable version of the state into the `obj` argument and protects
	// the execution from side effects (including scheduling a transfer).
	//
	// The second argument is a function which allows the caller to mutate the state.
	// The return value from that function will be returned from the call to Transaction().
	//
	// If the state is modified after this function returns, execution will abort.
	Transaction(obj CBORer, f func() interface{}) interface{}
}

// These interfaces are intended to match those from whyrusleeping/cbor-gen, such that code generated from that
// system is automatically usable here (but not mandatory).
type CBORMarshaler interface {
	MarshalCBOR(w io.Writer) error
}

type CBORUnmarshaler interface {
	UnmarshalCBOR(r io.Reader) error
}

type CBORer interface {
	CBORMarshaler
	CBORUnmarshaler
}
