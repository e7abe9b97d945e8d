package mock

import (
	"bytes"
	"context"
	"fmt"
	"reflect"
	"runtime/debug"
	"testing"

	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/exitcode"
	rtt "github.com/filecoin-project/go-state-types/rt"
	cid "github.com/ipfs/go-cid"
	mh "github.com/multiformats/go-multihash"

	abi "github.com/SenderWallet/sender-ft-lockup/actors/abi"
	"github.com/SenderWallet/sender-ft-lockup/actors/runtime"
	"github.com/SenderWallet/sender-ft-lockup/actors/util/adt"
)

// A mock runtime for unit testing of actors in isolation.
// The mock allows direct specification of the runtime context as observable by an actor, supports
// the storage interface, and mocks out side-effect-inducing calls.
type Runtime struct {
	// Execution context
	ctx           context.Context
	timestamp     abi.TimestampSec
	receiver      addr.Address
	caller        addr.Address
	valueReceived abi.TokenAmount
	balance       abi.TokenAmount
	// Outcome observed by a deferred invocation via TransferSucceeded.
	transferResult *bool

	// Actor state
	state cid.Cid
	store map[cid.Cid][]byte

	// Expectations
	t                        testing.TB
	expectValidateCallerAny  bool
	expectValidateCallerAddr []addr.Address
	expectTransfers          []*expectedTransfer
	expectEvents             []*expectedEvent

	// Guards
	inCall        bool
	inTransaction bool
}

type expectedTransfer struct {
	token  addr.Address
	to     addr.Address
	amount abi.TokenAmount
	memo   string
	method abi.MethodNum
	params runtime.CBORMarshaler
}

func (e *expectedTransfer) String() string {
	return fmt.Sprintf("Transfer(token: %v, to: %v, amount: %v, memo: %q, method: %d, params: %v)",
		e.token, e.to, e.amount, e.memo, e.method, e.params)
}

type expectedEvent struct {
	kind    string
	payload runtime.CBORMarshaler
}

func (e *expectedEvent) String() string {
	return fmt.Sprintf("Event(kind: %s, payload: %v)", e.kind, e.payload)
}

var _ runtime.Runtime = &Runtime{}
var _ runtime.StateHandle = &Runtime{}
var _ runtime.Store = &Runtime{}
var _ runtime.Message = &Runtime{}

var cidBuilder = cid.V1Builder{Codec: cid.DagCBOR, MhType: mh.SHA2_256}

type abort struct {
	code exitcode.ExitCode
	msg  string
}

func (a abort) String() string {
	return fmt.Sprintf("abort(%v): %s", a.code, a.msg)
}

///// Implementation of the runtime API /////

func (rt *Runtime) Message() runtime.Message {
	rt.requireInCall()
	return rt
}

func (rt *Runtime) CurrTime() abi.TimestampSec {
	rt.requireInCall()
	return rt.timestamp
}

func (rt *Runtime) ValidateImmediateCallerAcceptAny() {
	rt.requireInCall()
	if !rt.expectValidateCallerAny {
		rt.failTest("unexpected validate-caller-any")
	}
	rt.expectValidateCallerAny = false
}

func (rt *Runtime) ValidateImmediateCallerIs(addrs ...addr.Address) {
	rt.requireInCall()
	rt.checkArgument(len(addrs) > 0, "addrs must be non-empty")
	// Check and clear expectations.
	if len(rt.expectValidateCallerAddr) == 0 {
		rt.failTest("unexpected validate caller addrs")
		return
	}
	if !reflect.DeepEqual(rt.expectValidateCallerAddr, addrs) {
		rt.failTest("unexpected validate caller addrs %v, expected %v", addrs, rt.expectValidateCallerAddr)
		return
	}
	defer func() {
		rt.expectValidateCallerAddr = nil
	}()
	for _, expected := range addrs {
		if rt.caller == expected {
			return
		}
	}
	rt.Abortf(exitcode.SysErrForbidden, "caller address %v forbidden, allowed: %v", rt.caller, addrs)
}

func (rt *Runtime) CurrentBalance() abi.TokenAmount {
	rt.requireInCall()
	return rt.balance
}

func (rt *Runtime) State() runtime.StateHandle {
	rt.requireInCall()
	return rt
}

func (rt *Runtime) Store() runtime.Store {
	// Storage is allowed outside invocations so tests can inspect and seed state.
	return rt
}

func (rt *Runtime) Transfer(token addr.Address, to addr.Address, amount abi.TokenAmount, memo string, method abi.MethodNum, params runtime.CBORMarshaler) {
	rt.requireInCall()
	if rt.inTransaction {
		rt.Abortf(exitcode.SysErrorIllegalActor, "side-effect within transaction")
	}
	if len(rt.expectTransfers) == 0 {
		rt.failTestNow("unexpected transfer of %v to %v (memo %q)", amount, to, memo)
	}
	exp := rt.expectTransfers[0]
	if exp.token != token || exp.to != to || !exp.amount.Equals(amount) || exp.memo != memo ||
		exp.method != method || !reflect.DeepEqual(exp.params, params) {
		rt.failTest("unexpected transfer\n  got:      Transfer(token: %v, to: %v, amount: %v, memo: %q, method: %d, params: %v)\n  expected: %v",
			token, to, amount, memo, method, params, exp)
	}
	rt.expectTransfers = rt.expectTransfers[1:]
}

func (rt *Runtime) TransferSucceeded() bool {
	rt.requireInCall()
	if rt.transferResult == nil {
		rt.failTestNow("transfer outcome queried but not set, use SetTransferResult")
	}
	return *rt.transferResult
}

func (rt *Runtime) EmitEvent(kind string, payload runtime.CBORMarshaler) {
	rt.requireInCall()
	if len(rt.expectEvents) == 0 {
		rt.failTestNow("unexpected event %s %v", kind, payload)
	}
	exp := rt.expectEvents[0]
	if exp.kind != kind || !reflect.DeepEqual(exp.payload, payload) {
		rt.failTest("unexpected event\n  got:      Event(kind: %s, payload: %v)\n  expected: %v", kind, payload, exp)
	}
	rt.expectEvents = rt.expectEvents[1:]
}

func (rt *Runtime) Log(level rtt.LogLevel, msg string, args ...interface{}) {
	rt.t.Logf(msg, args...)
}

func (rt *Runtime) Abortf(errExitCode exitcode.ExitCode, msg string, args ...interface{}) {
	rt.t.Logf("Mock Runtime Abort ExitCode: %v Reason: %s", errExitCode, fmt.Sprintf(msg, args...))
	panic(abort{errExitCode, fmt.Sprintf(msg, args...)})
}

func (rt *Runtime) Context() context.Context {
	return rt.ctx
}

///// Store implementation /////

func (rt *Runtime) Get(c cid.Cid, o runtime.CBORUnmarshaler) bool {
	data, found := rt.store[c]
	if found {
		err := o.UnmarshalCBOR(bytes.NewReader(data))
		if err != nil {
			rt.Abortf(exitcode.ErrSerialization, "failed to unmarshal %v: %v", c, err)
		}
	}
	return found
}

func (rt *Runtime) Put(o runtime.CBORMarshaler) cid.Cid {
	buf := new(bytes.Buffer)
	err := o.MarshalCBOR(buf)
	if err != nil {
		rt.Abortf(exitcode.ErrSerialization, "failed to marshal: %v", err)
	}
	data := buf.Bytes()
	key, err := cidBuilder.Sum(data)
	if err != nil {
		rt.Abortf(exitcode.ErrSerialization, "failed to compute CID: %v", err)
	}
	rt.store[key] = data
	return key
}

///// Message implementation /////

func (rt *Runtime) Caller() addr.Address {
	return rt.caller
}

func (rt *Runtime) Receiver() addr.Address {
	return rt.receiver
}

func (rt *Runtime) ValueReceived() abi.TokenAmount {
	return rt.valueReceived
}

///// State handle implementation /////

func (rt *Runtime) Create(obj runtime.CBORMarshaler) {
	if rt.state.Defined() {
		rt.Abortf(exitcode.SysErrorIllegalActor, "state already constructed")
	}
	rt.state = rt.Put(obj)
}

func (rt *Runtime) Readonly(st runtime.CBORUnmarshaler) {
	found := rt.Get(rt.state, st)
	if !found {
		rt.failTestNow("actor state not found: %v", rt.state)
	}
}

func (rt *Runtime) Transaction(st runtime.CBORer, f func() interface{}) interface{} {
	if rt.inTransaction {
		rt.Abortf(exitcode.SysErrorIllegalActor, "nested transaction")
	}
	rt.Readonly(st)
	rt.inTransaction = true
	defer func() { rt.inTransaction = false }()
	ret := f()
	rt.state = rt.Put(st)
	return ret
}

///// Mocking facilities /////

func (rt *Runtime) StateRoot() cid.Cid {
	return rt.state
}

func (rt *Runtime) GetState(o runtime.CBORUnmarshaler) {
	found := rt.Get(rt.state, o)
	if !found {
		rt.failTestNow("can't find state at root %v", rt.state)
	}
}

// AdtStore exposes the mock's storage as an ADT store for test setup and
// inspection.
func (rt *Runtime) AdtStore() adt.Store {
	return adt.AsStore(rt)
}

func (rt *Runtime) SetCaller(a addr.Address) {
	rt.caller = a
}

func (rt *Runtime) SetTimestamp(t abi.TimestampSec) {
	rt.timestamp = t
}

func (rt *Runtime) SetBalance(amt abi.TokenAmount) {
	rt.balance = amt
}

func (rt *Runtime) SetReceived(amt abi.TokenAmount) {
	rt.valueReceived = amt
}

// SetTransferResult establishes the outcome that a subsequently invoked
// deferred continuation will observe.
func (rt *Runtime) SetTransferResult(ok bool) {
	rt.transferResult = &ok
}

func (rt *Runtime) ExpectValidateCallerAny() {
	rt.expectValidateCallerAny = true
}

func (rt *Runtime) ExpectValidateCallerAddr(addrs ...addr.Address) {
	rt.require(len(addrs) > 0, "addrs must be non-empty")
	rt.expectValidateCallerAddr = addrs[:]
}

func (rt *Runtime) ExpectTransfer(token addr.Address, to addr.Address, amount abi.TokenAmount, memo string, method abi.MethodNum, params runtime.CBORMarshaler) {
	rt.expectTransfers = append(rt.expectTransfers, &expectedTransfer{
		token:  token,
		to:     to,
		amount: amount,
		memo:   memo,
		method: method,
		params: params,
	})
}

func (rt *Runtime) ExpectEmittedEvent(kind string, payload runtime.CBORMarshaler) {
	rt.expectEvents = append(rt.expectEvents, &expectedEvent{kind: kind, payload: payload})
}

// Verifies that expected calls were received, and resets all expectations.
func (rt *Runtime) Verify() {
	rt.t.Helper()
	if rt.expectValidateCallerAny {
		rt.failTest("missing expected validate caller any")
	}
	if rt.expectValidateCallerAddr != nil {
		rt.failTest("missing expected validate caller address %v", rt.expectValidateCallerAddr)
	}
	if len(rt.expectTransfers) > 0 {
		rt.failTest("missing expected transfers %v", rt.expectTransfers)
	}
	if len(rt.expectEvents) > 0 {
		rt.failTest("missing expected events %v", rt.expectEvents)
	}
	rt.Reset()
}

// Resets expectations and transfer outcome.
func (rt *Runtime) Reset() {
	rt.expectValidateCallerAny = false
	rt.expectValidateCallerAddr = nil
	rt.expectTransfers = nil
	rt.expectEvents = nil
	rt.transferResult = nil
}

// ExpectAbort requires the function to abort with the given code, and rolls
// back any state change it made.
func (rt *Runtime) ExpectAbort(expected exitcode.ExitCode, f func()) {
	rt.t.Helper()
	prevState := rt.state
	defer func() {
		rt.t.Helper()
		r := recover()
		if r == nil {
			rt.failTest("expected abort with code %v but call succeeded", expected)
			return
		}
		a, ok := r.(abort)
		if !ok {
			panic(r)
		}
		if a.code != expected {
			rt.failTest("abort expected code %v, actual %v: %s", expected, a.code, a.msg)
		}
		// Roll back state change.
		rt.state = prevState
	}()
	f()
}

// ExpectAssertionFailure requires the function to fail an internal assertion
// with the given message, and rolls back any state change it made.
func (rt *Runtime) ExpectAssertionFailure(expected string, f func()) {
	rt.t.Helper()
	prevState := rt.state
	defer func() {
		rt.t.Helper()
		r := recover()
		if r == nil {
			rt.failTest("expected assertion failure %q but call succeeded", expected)
			return
		}
		if a, ok := r.(abort); ok {
			rt.failTest("expected assertion failure %q but found abort %v: %s", expected, a.code, a.msg)
			return
		}
		p, ok := r.(string)
		if !ok {
			panic(r)
		}
		if p != expected {
			rt.failTest("expected assertion failure %q, actual %q", expected, p)
		}
		rt.state = prevState
	}()
	f()
}

// Calls an actor method with the given parameter, which must be a pointer to
// a CBOR-unmarshalable type (possibly a typed nil).
func (rt *Runtime) Call(method interface{}, params interface{}) interface{} {
	meth := reflect.ValueOf(method)
	rt.verifyExportedMethodType(meth)

	// There is no panic recovery here. If an abort is expected, this call
	// will be inside an ExpectAbort block. If not expected, the panic will
	// escape and fail the test.

	rt.inCall = true
	defer func() { rt.inCall = false }()
	ret := meth.Call([]reflect.Value{reflect.ValueOf(rt), reflect.ValueOf(params)})
	return ret[0].Interface()
}

func (rt *Runtime) verifyExportedMethodType(meth reflect.Value) {
	rt.t.Helper()
	t := meth.Type()
	rt.require(t.Kind() == reflect.Func, "%v is not a function", meth)
	rt.require(t.NumIn() == 2, "exported method %v has wrong number of parameters, expected: 2, got: %d", meth, t.NumIn())

	rt.require(t.In(0).Implements(reflect.TypeOf((*runtime.Runtime)(nil)).Elem()),
		"exported method %v must have runtime as first parameter", meth)
	rt.require(t.In(1).Implements(reflect.TypeOf((*runtime.CBORUnmarshaler)(nil)).Elem()),
		"exported method %v must have CBOR-unmarshalable second parameter", meth)

	rt.require(t.NumOut() == 1, "exported method %v must have one return value, got %d", meth, t.NumOut())
	rt.require(t.Out(0).Implements(reflect.TypeOf((*runtime.CBORMarshaler)(nil)).Elem()),
		"exported method %v must have CBOR-marshalable return value", meth)
}

func (rt *Runtime) requireInCall() {
	rt.require(rt.inCall, "invalid runtime invocation outside of method call")
}

func (rt *Runtime) require(predicate bool, msg string, args ...interface{}) {
	if !predicate {
		rt.failTestNow(msg, args...)
	}
}

func (rt *Runtime) checkArgument(predicate bool, msg string, args ...interface{}) {
	if !predicate {
		rt.Abortf(exitcode.SysErrorIllegalArgument, msg, args...)
	}
}

func (rt *Runtime) failTest(msg string, args ...interface{}) {
	rt.t.Helper()
	rt.t.Logf(msg, args...)
	rt.t.Logf(string(debug.Stack()))
	rt.t.Fail()
}

func (rt *Runtime) failTestNow(msg string, args ...interface{}) {
	rt.t.Helper()
	rt.t.Logf(msg, args...)
	rt.t.Logf(string(debug.Stack()))
	rt.t.FailNow()
}
