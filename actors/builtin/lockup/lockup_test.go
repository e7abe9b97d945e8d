package lockup_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/big"
	"github.com/filecoin-project/go-state-types/exitcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	abi "github.com/SenderWallet/sender-ft-lockup/actors/abi"
	"github.com/SenderWallet/sender-ft-lockup/actors/builtin"
	"github.com/SenderWallet/sender-ft-lockup/actors/builtin/lockup"
	"github.com/SenderWallet/sender-ft-lockup/actors/util/adt"
	"github.com/SenderWallet/sender-ft-lockup/support/mock"
	tutil "github.com/SenderWallet/sender-ft-lockup/support/testing"
)

func TestExports(t *testing.T) {
	for i, m := range (lockup.Actor{}).Exports() {
		if i == 0 {
			assert.Nil(t, m, "send slot must be empty")
		} else {
			assert.NotNil(t, m, "method %d is not exported", i)
		}
	}
}

type lockupHarness struct {
	lockup.Actor
	t *testing.T

	receiver  addr.Address
	token     addr.Address
	depositor addr.Address
	operator  addr.Address
	owner     addr.Address
}

func newHarness(t *testing.T) *lockupHarness {
	return &lockupHarness{
		Actor:     lockup.Actor{},
		t:         t,
		receiver:  tutil.NewIDAddr(t, 100),
		token:     tutil.NewIDAddr(t, 101),
		depositor: tutil.NewIDAddr(t, 102),
		operator:  tutil.NewIDAddr(t, 103),
		owner:     tutil.NewIDAddr(t, 104),
	}
}

func (h *lockupHarness) builder() mock.RuntimeBuilder {
	return mock.NewBuilder(context.Background(), h.receiver).WithCaller(h.depositor)
}

func (h *lockupHarness) construct(rt *mock.Runtime) {
	rt.ExpectValidateCallerAny()
	rt.ExpectEmittedEvent(lockup.EventNew, &lockup.NewEvent{TokenAccount: h.token})
	rt.ExpectEmittedEvent(lockup.EventAddToDepositWhitelist, &lockup.WhitelistEvent{Accounts: []addr.Address{h.depositor}})
	rt.ExpectEmittedEvent(lockup.EventAddToDraftOperatorsWhitelist, &lockup.WhitelistEvent{Accounts: []addr.Address{h.operator}})
	ret := rt.Call(h.Constructor, &lockup.ConstructorParams{
		TokenAccount:            h.token,
		DepositWhitelist:        []addr.Address{h.depositor},
		DraftOperatorsWhitelist: []addr.Address{h.operator},
	})
	assert.Nil(h.t, ret)
	rt.Verify()
}

// createLockups deposits tokens from the depositor, creating lockups directly.
func (h *lockupHarness) createLockups(rt *mock.Runtime, amount abi.TokenAmount, nextID lockup.LockupIndex, creates ...lockup.LockupCreate) {
	rt.SetCaller(h.token)
	rt.ExpectValidateCallerAddr(h.token)
	for i := range creates {
		rt.ExpectEmittedEvent(lockup.EventCreateLockup, &lockup.CreateLockupEvent{
			ID:           nextID + lockup.LockupIndex(i),
			Owner:        creates[i].Owner,
			TotalBalance: creates[i].Schedule.TotalBalance(),
		})
	}
	ret := rt.Call(h.OnTokensReceived, &lockup.OnTokensReceivedParams{
		Sender:  h.depositor,
		Amount:  amount,
		Lockups: creates,
	})
	assert.Nil(h.t, ret)
	rt.Verify()
}

// claim invokes Claim expecting the given per-lockup amounts to be recorded
// and a single aggregate transfer if they sum to more than zero. Returns the
// continuation params the claim attached to its transfer.
func (h *lockupHarness) claim(rt *mock.Runtime, owner addr.Address, now abi.TimestampSec, params *lockup.ClaimParams, expect []lockup.LockupClaimRecord) *lockup.AfterClaimTransferParams {
	rt.SetCaller(owner)
	rt.SetTimestamp(now)
	rt.ExpectValidateCallerAny()

	total := big.Zero()
	for _, c := range expect {
		total = big.Add(total, c.Amount)
	}
	continuation := &lockup.AfterClaimTransferParams{Account: owner, Claims: expect}
	if total.GreaterThan(big.Zero()) {
		rt.ExpectTransfer(h.token, owner, total, "claim of unlocked lockup balance",
			builtin.MethodsLockup.AfterClaimTransfer, continuation)
	}

	ret := rt.Call(h.Claim, params).(*lockup.ClaimReturn)
	assert.True(h.t, ret.Total.Equals(total), "claimed %v, expected %v", ret.Total, total)
	rt.Verify()
	return continuation
}

// settleClaim runs the deferred continuation of a claim's transfer.
func (h *lockupHarness) settleClaim(rt *mock.Runtime, params *lockup.AfterClaimTransferParams, ok bool) {
	rt.SetCaller(h.receiver)
	rt.ExpectValidateCallerAddr(h.receiver)
	rt.SetTransferResult(ok)
	if ok {
		for _, c := range params.Claims {
			rt.ExpectEmittedEvent(lockup.EventClaimLockup, &lockup.ClaimLockupEvent{ID: c.ID, Amount: c.Amount})
		}
	}
	ret := rt.Call(h.AfterClaimTransfer, params)
	assert.Nil(h.t, ret)
	rt.Verify()
}

func (h *lockupHarness) terminate(rt *mock.Runtime, id lockup.LockupIndex, terminationTime, effective abi.TimestampSec, unvested abi.TokenAmount, beneficiary addr.Address) *lockup.AfterTerminationTransferParams {
	rt.SetCaller(h.depositor)
	rt.SetReceived(lockup.MinSecurityDeposit)
	rt.ExpectValidateCallerAny()
	rt.ExpectEmittedEvent(lockup.EventTerminateLockup, &lockup.TerminateLockupEvent{
		ID:              id,
		TerminationTime: effective,
		UnvestedBalance: unvested,
	})
	continuation := &lockup.AfterTerminationTransferParams{ID: id, Beneficiary: beneficiary, Amount: unvested}
	if unvested.GreaterThan(big.Zero()) {
		rt.ExpectTransfer(h.token, beneficiary, unvested,
			fmt.Sprintf("refund of unvested balance from lockup #%d", id),
			builtin.MethodsLockup.AfterTerminationTransfer, continuation)
	}

	ret := rt.Call(h.Terminate, &lockup.TerminateParams{ID: id, TerminationTime: terminationTime}).(*lockup.TerminateReturn)
	assert.True(h.t, ret.UnvestedBalance.Equals(unvested))
	rt.Verify()
	rt.SetReceived(big.Zero())
	return continuation
}

func (h *lockupHarness) createDraftGroup(rt *mock.Runtime, caller addr.Address, expectID lockup.DraftGroupIndex) {
	rt.SetCaller(caller)
	rt.ExpectValidateCallerAny()
	rt.ExpectEmittedEvent(lockup.EventCreateDraftGroup, &lockup.CreateDraftGroupEvent{ID: expectID})
	ret := rt.Call(h.CreateDraftGroup, &adt.EmptyValue{}).(*lockup.CreateDraftGroupReturn)
	assert.Equal(h.t, expectID, ret.ID)
	rt.Verify()
}

func (h *lockupHarness) createDrafts(rt *mock.Runtime, caller addr.Address, nextID lockup.DraftIndex, drafts ...lockup.Draft) []lockup.DraftIndex {
	rt.SetCaller(caller)
	rt.ExpectValidateCallerAny()
	expectIDs := make([]lockup.DraftIndex, len(drafts))
	for i := range drafts {
		expectIDs[i] = nextID + lockup.DraftIndex(i)
		rt.ExpectEmittedEvent(lockup.EventCreateDraft, &lockup.CreateDraftEvent{
			ID:           expectIDs[i],
			DraftGroupID: drafts[i].DraftGroupID,
			Owner:        drafts[i].LockupCreate.Owner,
			TotalBalance: drafts[i].TotalBalance(),
		})
	}
	ret := rt.Call(h.CreateDrafts, &lockup.CreateDraftsParams{Drafts: drafts}).(*lockup.CreateDraftsReturn)
	assert.Equal(h.t, expectIDs, ret.IDs)
	rt.Verify()
	return ret.IDs
}

func (h *lockupHarness) fundDraftGroup(rt *mock.Runtime, gid lockup.DraftGroupIndex, amount abi.TokenAmount, expectLockups ...lockup.CreateLockupEvent) {
	rt.SetCaller(h.token)
	rt.ExpectValidateCallerAddr(h.token)
	rt.ExpectEmittedEvent(lockup.EventFundDraftGroup, &lockup.FundDraftGroupEvent{ID: gid, Funder: h.depositor, Amount: amount})
	for i := range expectLockups {
		rt.ExpectEmittedEvent(lockup.EventCreateLockup, &expectLockups[i])
	}
	ret := rt.Call(h.OnTokensReceived, &lockup.OnTokensReceivedParams{
		Sender:    h.depositor,
		Amount:    amount,
		FundGroup: &lockup.FundDraftGroupInstruction{ID: gid},
	})
	assert.Nil(h.t, ret)
	rt.Verify()
}

func (h *lockupHarness) getState(rt *mock.Runtime) *lockup.State {
	var st lockup.State
	rt.GetState(&st)
	return &st
}

func (h *lockupHarness) getLockup(rt *mock.Runtime, id lockup.LockupIndex) *lockup.Lockup {
	st := h.getState(rt)
	lockups := adt.AsArray(rt.AdtStore(), st.Lockups)
	var l lockup.Lockup
	found, err := lockups.Get(uint64(id), &l)
	require.NoError(h.t, err)
	require.True(h.t, found, "no lockup %d", id)
	return &l
}

func (h *lockupHarness) accountIndexes(rt *mock.Runtime, owner addr.Address) []lockup.LockupIndex {
	st := h.getState(rt)
	accounts := adt.AsMap(rt.AdtStore(), st.AccountLockups)
	var indexes lockup.LockupIndexSet
	found, err := accounts.Get(adt.AddrKey(owner), &indexes)
	require.NoError(h.t, err)
	if !found {
		return nil
	}
	return indexes.Indexes
}

func (h *lockupHarness) checkState(rt *mock.Runtime) *lockup.StateSummary {
	st := h.getState(rt)
	summary, acc := lockup.CheckStateInvariants(st, rt.AdtStore())
	assert.True(h.t, acc.IsEmpty(), strings.Join(acc.Messages(), "\n"))
	return summary
}

// vestingSchedule unlocks 1000 at time 100 and nothing more after.
func vestingSchedule() lockup.Schedule {
	return schedule(checkpoint(0, 0), checkpoint(100, 1000), checkpoint(200, 1000))
}

func TestConstruction(t *testing.T) {
	t.Run("simple construction", func(t *testing.T) {
		h := newHarness(t)
		rt := h.builder().Build(t)
		h.construct(rt)

		st := h.getState(rt)
		assert.Equal(t, h.token, st.TokenAccount)
		assert.Equal(t, uint64(0), st.LockupCount)
		assert.Equal(t, lockup.DraftIndex(0), st.NextDraftID)
		assert.Equal(t, lockup.DraftGroupIndex(0), st.NextDraftGroupID)

		summary := h.checkState(rt)
		assert.Equal(t, uint64(1), summary.DepositorCount)
	})

	t.Run("requires a token account", func(t *testing.T) {
		h := newHarness(t)
		rt := h.builder().Build(t)

		rt.ExpectValidateCallerAny()
		rt.ExpectAbort(exitcode.ErrIllegalArgument, func() {
			rt.Call(h.Constructor, &lockup.ConstructorParams{
				DepositWhitelist: []addr.Address{h.depositor},
			})
		})
		rt.Verify()
	})

	t.Run("requires a non-empty deposit whitelist", func(t *testing.T) {
		h := newHarness(t)
		rt := h.builder().Build(t)

		rt.ExpectValidateCallerAny()
		rt.ExpectAbort(exitcode.ErrIllegalArgument, func() {
			rt.Call(h.Constructor, &lockup.ConstructorParams{TokenAccount: h.token})
		})
		rt.Verify()
	})
}

func TestDeposit(t *testing.T) {
	h := newHarness(t)

	t.Run("creates lockups from a deposit", func(t *testing.T) {
		rt := h.builder().Build(t)
		h.construct(rt)

		h.createLockups(rt, abi.NewTokenAmount(1000), 0,
			lockup.LockupCreate{Owner: h.owner, Schedule: vestingSchedule(), Vesting: &lockup.VestingConditions{}})

		l := h.getLockup(rt, 0)
		assert.Equal(t, h.owner, l.Owner)
		assert.Equal(t, abi.NewTokenAmount(1000), l.TotalBalance())
		require.NotNil(t, l.TerminationConfig)
		assert.Equal(t, h.depositor, l.TerminationConfig.Beneficiary)

		assert.Equal(t, []lockup.LockupIndex{0}, h.accountIndexes(rt, h.owner))

		summary := h.checkState(rt)
		assert.Equal(t, uint64(1), summary.LockupCount)
		assert.Equal(t, abi.NewTokenAmount(1000), summary.PendingBalance)
	})

	t.Run("rejects deposit not from the token actor", func(t *testing.T) {
		rt := h.builder().Build(t)
		h.construct(rt)

		rt.SetCaller(h.depositor)
		rt.ExpectValidateCallerAddr(h.token)
		rt.ExpectAbort(exitcode.SysErrForbidden, func() {
			rt.Call(h.OnTokensReceived, &lockup.OnTokensReceivedParams{
				Sender: h.depositor,
				Amount: abi.NewTokenAmount(1000),
				Lockups: []lockup.LockupCreate{
					{Owner: h.owner, Schedule: vestingSchedule()},
				},
			})
		})
		rt.Verify()
	})

	t.Run("rejects non-whitelisted sender", func(t *testing.T) {
		rt := h.builder().Build(t)
		h.construct(rt)

		rt.SetCaller(h.token)
		rt.ExpectValidateCallerAddr(h.token)
		rt.ExpectAbort(exitcode.ErrForbidden, func() {
			rt.Call(h.OnTokensReceived, &lockup.OnTokensReceivedParams{
				Sender: h.owner,
				Amount: abi.NewTokenAmount(1000),
				Lockups: []lockup.LockupCreate{
					{Owner: h.owner, Schedule: vestingSchedule()},
				},
			})
		})
		rt.Verify()
		h.checkState(rt)
	})

	t.Run("rejects amount mismatch", func(t *testing.T) {
		rt := h.builder().Build(t)
		h.construct(rt)

		rt.SetCaller(h.token)
		rt.ExpectValidateCallerAddr(h.token)
		rt.ExpectAbort(exitcode.ErrIllegalArgument, func() {
			rt.Call(h.OnTokensReceived, &lockup.OnTokensReceivedParams{
				Sender: h.depositor,
				Amount: abi.NewTokenAmount(999),
				Lockups: []lockup.LockupCreate{
					{Owner: h.owner, Schedule: vestingSchedule()},
				},
			})
		})
		rt.Verify()

		// The aborted deposit left nothing behind.
		summary := h.checkState(rt)
		assert.Equal(t, uint64(0), summary.LockupCount)
	})

	t.Run("rejects vesting schedule slower than the lockup schedule", func(t *testing.T) {
		rt := h.builder().Build(t)
		h.construct(rt)

		// Everything unlocked at 100 but nothing vested until 200: claiming
		// and then terminating such a lockup would pay out twice.
		alt := schedule(checkpoint(0, 0), checkpoint(200, 1000))
		rt.SetCaller(h.token)
		rt.ExpectValidateCallerAddr(h.token)
		rt.ExpectAbort(exitcode.ErrIllegalArgument, func() {
			rt.Call(h.OnTokensReceived, &lockup.OnTokensReceivedParams{
				Sender: h.depositor,
				Amount: abi.NewTokenAmount(1000),
				Lockups: []lockup.LockupCreate{
					{Owner: h.owner, Schedule: vestingSchedule(), Vesting: &lockup.VestingConditions{Alternate: &alt}},
				},
			})
		})
		rt.Verify()

		summary := h.checkState(rt)
		assert.Equal(t, uint64(0), summary.LockupCount)
	})

	t.Run("rejects deposit with no instruction", func(t *testing.T) {
		rt := h.builder().Build(t)
		h.construct(rt)

		rt.SetCaller(h.token)
		rt.ExpectValidateCallerAddr(h.token)
		rt.ExpectAbort(exitcode.ErrIllegalArgument, func() {
			rt.Call(h.OnTokensReceived, &lockup.OnTokensReceivedParams{
				Sender: h.depositor,
				Amount: abi.NewTokenAmount(1000),
			})
		})
		rt.Verify()
	})
}

func TestClaim(t *testing.T) {
	h := newHarness(t)

	setupOne := func(t *testing.T) *mock.Runtime {
		rt := h.builder().Build(t)
		h.construct(rt)
		h.createLockups(rt, abi.NewTokenAmount(1000), 0,
			lockup.LockupCreate{Owner: h.owner, Schedule: vestingSchedule(), Vesting: &lockup.VestingConditions{}})
		return rt
	}

	t.Run("claims everything unlocked by default", func(t *testing.T) {
		rt := setupOne(t)

		continuation := h.claim(rt, h.owner, 150, &lockup.ClaimParams{},
			[]lockup.LockupClaimRecord{{ID: 0, Amount: abi.NewTokenAmount(1000)}})

		l := h.getLockup(rt, 0)
		assert.Equal(t, abi.NewTokenAmount(1000), l.ClaimedBalance)

		h.settleClaim(rt, continuation, true)

		// Nothing left to claim, no transfer issued.
		h.claim(rt, h.owner, 150, &lockup.ClaimParams{}, nil)
		h.checkState(rt)
	})

	t.Run("claims nothing before the cliff", func(t *testing.T) {
		rt := setupOne(t)
		h.claim(rt, h.owner, 50, &lockup.ClaimParams{}, nil)
		h.checkState(rt)
	})

	t.Run("explicit amount is capped at claimable", func(t *testing.T) {
		rt := setupOne(t)

		continuation := h.claim(rt, h.owner, 150,
			&lockup.ClaimParams{Claims: []lockup.LockupClaim{{ID: 0, Amount: abi.NewTokenAmount(600)}}},
			[]lockup.LockupClaimRecord{{ID: 0, Amount: abi.NewTokenAmount(600)}})
		h.settleClaim(rt, continuation, true)

		continuation = h.claim(rt, h.owner, 150,
			&lockup.ClaimParams{Claims: []lockup.LockupClaim{{ID: 0, Amount: abi.NewTokenAmount(600)}}},
			[]lockup.LockupClaimRecord{{ID: 0, Amount: abi.NewTokenAmount(400)}})
		h.settleClaim(rt, continuation, true)
		h.checkState(rt)
	})

	t.Run("cannot claim another account's lockup", func(t *testing.T) {
		rt := setupOne(t)

		rt.SetCaller(h.depositor)
		rt.SetTimestamp(150)
		rt.ExpectValidateCallerAny()
		rt.ExpectAbort(exitcode.ErrNotFound, func() {
			rt.Call(h.Claim, &lockup.ClaimParams{Claims: []lockup.LockupClaim{{ID: 0}}})
		})
		rt.Verify()
	})

	t.Run("rejects duplicate claim entries", func(t *testing.T) {
		rt := setupOne(t)

		rt.SetCaller(h.owner)
		rt.SetTimestamp(150)
		rt.ExpectValidateCallerAny()
		rt.ExpectAbort(exitcode.ErrIllegalArgument, func() {
			rt.Call(h.Claim, &lockup.ClaimParams{Claims: []lockup.LockupClaim{{ID: 0}, {ID: 0}}})
		})
		rt.Verify()
	})

	t.Run("failed transfer rolls back claims on both lockups", func(t *testing.T) {
		rt := h.builder().Build(t)
		h.construct(rt)
		h.createLockups(rt, abi.NewTokenAmount(2000), 0,
			lockup.LockupCreate{Owner: h.owner, Schedule: vestingSchedule(), Vesting: &lockup.VestingConditions{}},
			lockup.LockupCreate{Owner: h.owner, Schedule: vestingSchedule(), Vesting: &lockup.VestingConditions{}})

		continuation := h.claim(rt, h.owner, 150, &lockup.ClaimParams{}, []lockup.LockupClaimRecord{
			{ID: 0, Amount: abi.NewTokenAmount(1000)},
			{ID: 1, Amount: abi.NewTokenAmount(1000)},
		})

		assert.Equal(t, abi.NewTokenAmount(1000), h.getLockup(rt, 0).ClaimedBalance)
		assert.Equal(t, abi.NewTokenAmount(1000), h.getLockup(rt, 1).ClaimedBalance)

		h.settleClaim(rt, continuation, false)

		// Pre-claim accounting restored for both contributors.
		assert.True(t, h.getLockup(rt, 0).ClaimedBalance.IsZero())
		assert.True(t, h.getLockup(rt, 1).ClaimedBalance.IsZero())

		// The tokens are claimable again.
		h.claim(rt, h.owner, 150, &lockup.ClaimParams{}, []lockup.LockupClaimRecord{
			{ID: 0, Amount: abi.NewTokenAmount(1000)},
			{ID: 1, Amount: abi.NewTokenAmount(1000)},
		})
		h.checkState(rt)
	})
}

func TestTerminate(t *testing.T) {
	h := newHarness(t)

	setup := func(t *testing.T, vesting *lockup.VestingConditions) *mock.Runtime {
		rt := h.builder().Build(t)
		h.construct(rt)
		h.createLockups(rt, abi.NewTokenAmount(1000), 0,
			lockup.LockupCreate{Owner: h.owner, Schedule: vestingSchedule(), Vesting: vesting})
		return rt
	}

	t.Run("termination before vesting claws back everything", func(t *testing.T) {
		rt := setup(t, &lockup.VestingConditions{})
		rt.SetTimestamp(50)

		continuation := h.terminate(rt, 0, 0, 50, abi.NewTokenAmount(1000), h.depositor)

		l := h.getLockup(rt, 0)
		assert.True(t, l.TotalBalance().Equals(big.Zero()))
		assert.Nil(t, l.TerminationConfig)

		// Drained position pruned from the owner's index.
		assert.Empty(t, h.accountIndexes(rt, h.owner))

		// A failed refund is logged but never rolled back.
		rt.SetCaller(h.receiver)
		rt.ExpectValidateCallerAddr(h.receiver)
		rt.SetTransferResult(false)
		rt.Call(h.AfterTerminationTransfer, continuation)
		rt.Verify()

		assert.True(t, h.getLockup(rt, 0).TotalBalance().Equals(big.Zero()))
		h.checkState(rt)
	})

	t.Run("alternate vesting keeps the vested part claimable", func(t *testing.T) {
		rt := h.builder().Build(t)
		h.construct(rt)

		// The lockup unlocks everything at 200, but half is already vested
		// at 100 under the alternate schedule.
		alt := schedule(checkpoint(0, 0), checkpoint(100, 500), checkpoint(200, 1000))
		h.createLockups(rt, abi.NewTokenAmount(1000), 0, lockup.LockupCreate{
			Owner:    h.owner,
			Schedule: schedule(checkpoint(0, 0), checkpoint(200, 1000)),
			Vesting:  &lockup.VestingConditions{Alternate: &alt},
		})
		rt.SetTimestamp(150)

		continuation := h.terminate(rt, 0, 150, 150, abi.NewTokenAmount(500), h.depositor)

		// The owner still holds the vested half.
		assert.Equal(t, []lockup.LockupIndex{0}, h.accountIndexes(rt, h.owner))

		rt.SetCaller(h.receiver)
		rt.ExpectValidateCallerAddr(h.receiver)
		rt.SetTransferResult(true)
		rt.Call(h.AfterTerminationTransfer, continuation)
		rt.Verify()

		claimCont := h.claim(rt, h.owner, 150, &lockup.ClaimParams{},
			[]lockup.LockupClaimRecord{{ID: 0, Amount: abi.NewTokenAmount(500)}})
		h.settleClaim(rt, claimCont, true)
		h.checkState(rt)
	})

	t.Run("second termination fails", func(t *testing.T) {
		rt := setup(t, &lockup.VestingConditions{})
		rt.SetTimestamp(50)
		h.terminate(rt, 0, 0, 50, abi.NewTokenAmount(1000), h.depositor)

		rt.SetCaller(h.depositor)
		rt.SetReceived(lockup.MinSecurityDeposit)
		rt.ExpectValidateCallerAny()
		rt.ExpectAbort(exitcode.ErrIllegalState, func() {
			rt.Call(h.Terminate, &lockup.TerminateParams{ID: 0})
		})
		rt.Verify()
	})

	t.Run("non-terminable lockup cannot be terminated", func(t *testing.T) {
		rt := setup(t, nil)
		rt.SetTimestamp(50)

		rt.SetCaller(h.depositor)
		rt.SetReceived(lockup.MinSecurityDeposit)
		rt.ExpectValidateCallerAny()
		rt.ExpectAbort(exitcode.ErrIllegalState, func() {
			rt.Call(h.Terminate, &lockup.TerminateParams{ID: 0})
		})
		rt.Verify()
	})

	t.Run("requires a security deposit", func(t *testing.T) {
		rt := setup(t, &lockup.VestingConditions{})

		rt.SetCaller(h.depositor)
		rt.ExpectValidateCallerAny()
		rt.ExpectAbort(exitcode.ErrInsufficientFunds, func() {
			rt.Call(h.Terminate, &lockup.TerminateParams{ID: 0})
		})
		rt.Verify()
	})

	t.Run("requires a whitelisted caller", func(t *testing.T) {
		rt := setup(t, &lockup.VestingConditions{})

		rt.SetCaller(h.owner)
		rt.SetReceived(lockup.MinSecurityDeposit)
		rt.ExpectValidateCallerAny()
		rt.ExpectAbort(exitcode.ErrForbidden, func() {
			rt.Call(h.Terminate, &lockup.TerminateParams{ID: 0})
		})
		rt.Verify()
	})

	t.Run("rejects a termination time in the past", func(t *testing.T) {
		rt := setup(t, &lockup.VestingConditions{})
		rt.SetTimestamp(100)

		rt.SetCaller(h.depositor)
		rt.SetReceived(lockup.MinSecurityDeposit)
		rt.ExpectValidateCallerAny()
		rt.ExpectAbort(lockup.ErrInvalidTimestamp, func() {
			rt.Call(h.Terminate, &lockup.TerminateParams{ID: 0, TerminationTime: 50})
		})
		rt.Verify()
	})

	t.Run("unknown lockup", func(t *testing.T) {
		rt := setup(t, &lockup.VestingConditions{})

		rt.SetCaller(h.depositor)
		rt.SetReceived(lockup.MinSecurityDeposit)
		rt.ExpectValidateCallerAny()
		rt.ExpectAbort(exitcode.ErrNotFound, func() {
			rt.Call(h.Terminate, &lockup.TerminateParams{ID: 99})
		})
		rt.Verify()
	})
}

func TestDraftLifecycle(t *testing.T) {
	h := newHarness(t)

	draft := func(gid lockup.DraftGroupIndex, total int64) lockup.Draft {
		return lockup.Draft{
			DraftGroupID: gid,
			LockupCreate: lockup.LockupCreate{
				Owner:    h.owner,
				Schedule: schedule(checkpoint(0, 0), checkpoint(100, total)),
				Vesting:  &lockup.VestingConditions{},
			},
		}
	}

	t.Run("fund a group end to end", func(t *testing.T) {
		rt := h.builder().Build(t)
		h.construct(rt)

		h.createDraftGroup(rt, h.operator, 0)
		h.createDrafts(rt, h.operator, 0, draft(0, 600), draft(0, 400))

		summary := h.checkState(rt)
		assert.Equal(t, uint64(2), summary.DraftCount)
		assert.Equal(t, uint64(1), summary.DraftGroupCount)

		h.fundDraftGroup(rt, 0, abi.NewTokenAmount(1000),
			lockup.CreateLockupEvent{ID: 0, Owner: h.owner, TotalBalance: abi.NewTokenAmount(600)},
			lockup.CreateLockupEvent{ID: 1, Owner: h.owner, TotalBalance: abi.NewTokenAmount(400)},
		)

		// Drafts and group are gone, lockups conserve the funded amount.
		summary = h.checkState(rt)
		assert.Equal(t, uint64(0), summary.DraftCount)
		assert.Equal(t, uint64(0), summary.DraftGroupCount)
		assert.Equal(t, uint64(2), summary.LockupCount)
		assert.Equal(t, abi.NewTokenAmount(1000), summary.PendingBalance)

		// Funder is bound as termination beneficiary.
		require.NotNil(t, h.getLockup(rt, 0).TerminationConfig)
		assert.Equal(t, h.depositor, h.getLockup(rt, 0).TerminationConfig.Beneficiary)
	})

	t.Run("funding rejects a wrong amount", func(t *testing.T) {
		rt := h.builder().Build(t)
		h.construct(rt)
		h.createDraftGroup(rt, h.operator, 0)
		h.createDrafts(rt, h.operator, 0, draft(0, 600))

		rt.SetCaller(h.token)
		rt.ExpectValidateCallerAddr(h.token)
		rt.ExpectAbort(exitcode.ErrIllegalArgument, func() {
			rt.Call(h.OnTokensReceived, &lockup.OnTokensReceivedParams{
				Sender:    h.depositor,
				Amount:    abi.NewTokenAmount(599),
				FundGroup: &lockup.FundDraftGroupInstruction{ID: 0},
			})
		})
		rt.Verify()
		h.checkState(rt)
	})

	t.Run("funding an unknown group fails", func(t *testing.T) {
		rt := h.builder().Build(t)
		h.construct(rt)

		rt.SetCaller(h.token)
		rt.ExpectValidateCallerAddr(h.token)
		rt.ExpectAbort(exitcode.ErrNotFound, func() {
			rt.Call(h.OnTokensReceived, &lockup.OnTokensReceivedParams{
				Sender:    h.depositor,
				Amount:    abi.NewTokenAmount(1000),
				FundGroup: &lockup.FundDraftGroupInstruction{ID: 7},
			})
		})
		rt.Verify()
	})

	t.Run("depositor is implicitly a draft operator", func(t *testing.T) {
		rt := h.builder().Build(t)
		h.construct(rt)
		h.createDraftGroup(rt, h.depositor, 0)
	})

	t.Run("non-operator cannot stage drafts", func(t *testing.T) {
		rt := h.builder().Build(t)
		h.construct(rt)

		rt.SetCaller(h.owner)
		rt.ExpectValidateCallerAny()
		rt.ExpectAbort(exitcode.ErrForbidden, func() {
			rt.Call(h.CreateDraftGroup, &adt.EmptyValue{})
		})
		rt.Verify()

		h.createDraftGroup(rt, h.operator, 0)
		rt.SetCaller(h.owner)
		rt.ExpectValidateCallerAny()
		rt.ExpectAbort(exitcode.ErrForbidden, func() {
			rt.Call(h.CreateDrafts, &lockup.CreateDraftsParams{Drafts: []lockup.Draft{draft(0, 100)}})
		})
		rt.Verify()
	})

	t.Run("drafts for an unknown group fail", func(t *testing.T) {
		rt := h.builder().Build(t)
		h.construct(rt)

		rt.SetCaller(h.operator)
		rt.ExpectValidateCallerAny()
		rt.ExpectAbort(exitcode.ErrNotFound, func() {
			rt.Call(h.CreateDrafts, &lockup.CreateDraftsParams{Drafts: []lockup.Draft{draft(9, 100)}})
		})
		rt.Verify()
	})

	t.Run("deleting a draft from a pending group fails", func(t *testing.T) {
		rt := h.builder().Build(t)
		h.construct(rt)
		h.createDraftGroup(rt, h.operator, 0)
		ids := h.createDrafts(rt, h.operator, 0, draft(0, 600))

		rt.SetCaller(h.owner)
		rt.ExpectValidateCallerAny()
		rt.ExpectAbort(exitcode.ErrIllegalState, func() {
			rt.Call(h.DeleteDrafts, &lockup.DeleteDraftsParams{IDs: ids})
		})
		rt.Verify()
	})

	t.Run("discard then delete prunes everything", func(t *testing.T) {
		rt := h.builder().Build(t)
		h.construct(rt)
		h.createDraftGroup(rt, h.operator, 0)
		ids := h.createDrafts(rt, h.operator, 0, draft(0, 600), draft(0, 400))

		rt.SetCaller(h.operator)
		rt.ExpectValidateCallerAny()
		rt.ExpectEmittedEvent(lockup.EventDiscardDraftGroup, &lockup.DiscardDraftGroupEvent{ID: 0})
		rt.Call(h.DiscardDraftGroup, &lockup.DiscardDraftGroupParams{ID: 0})
		rt.Verify()

		// A discarded group accepts no new drafts.
		rt.SetCaller(h.operator)
		rt.ExpectValidateCallerAny()
		rt.ExpectAbort(exitcode.ErrIllegalState, func() {
			rt.Call(h.CreateDrafts, &lockup.CreateDraftsParams{Drafts: []lockup.Draft{draft(0, 100)}})
		})
		rt.Verify()

		// Anyone may delete the drafts of a discarded group.
		rt.SetCaller(h.owner)
		rt.ExpectValidateCallerAny()
		for _, id := range ids {
			rt.ExpectEmittedEvent(lockup.EventDeleteDraft, &lockup.DeleteDraftEvent{ID: id})
		}
		rt.Call(h.DeleteDrafts, &lockup.DeleteDraftsParams{IDs: ids})
		rt.Verify()

		summary := h.checkState(rt)
		assert.Equal(t, uint64(0), summary.DraftCount)
		assert.Equal(t, uint64(0), summary.DraftGroupCount)

		// A discarded group cannot be funded.
		rt.SetCaller(h.token)
		rt.ExpectValidateCallerAddr(h.token)
		rt.ExpectAbort(exitcode.ErrNotFound, func() {
			rt.Call(h.OnTokensReceived, &lockup.OnTokensReceivedParams{
				Sender:    h.depositor,
				Amount:    abi.NewTokenAmount(1000),
				FundGroup: &lockup.FundDraftGroupInstruction{ID: 0},
			})
		})
		rt.Verify()
	})

	t.Run("discarding an empty group prunes it immediately", func(t *testing.T) {
		rt := h.builder().Build(t)
		h.construct(rt)
		h.createDraftGroup(rt, h.operator, 0)

		rt.SetCaller(h.operator)
		rt.ExpectValidateCallerAny()
		rt.ExpectEmittedEvent(lockup.EventDiscardDraftGroup, &lockup.DiscardDraftGroupEvent{ID: 0})
		rt.Call(h.DiscardDraftGroup, &lockup.DiscardDraftGroupParams{ID: 0})
		rt.Verify()

		summary := h.checkState(rt)
		assert.Equal(t, uint64(0), summary.DraftGroupCount)
	})

	t.Run("deleting an unknown draft fails", func(t *testing.T) {
		rt := h.builder().Build(t)
		h.construct(rt)

		rt.SetCaller(h.owner)
		rt.ExpectValidateCallerAny()
		rt.ExpectAbort(exitcode.ErrNotFound, func() {
			rt.Call(h.DeleteDrafts, &lockup.DeleteDraftsParams{IDs: []lockup.DraftIndex{5}})
		})
		rt.Verify()
	})

	t.Run("draft ids are never reused", func(t *testing.T) {
		rt := h.builder().Build(t)
		h.construct(rt)
		h.createDraftGroup(rt, h.operator, 0)
		h.createDraftGroup(rt, h.operator, 1)

		ids := h.createDrafts(rt, h.operator, 0, draft(0, 600))
		assert.Equal(t, []lockup.DraftIndex{0}, ids)

		rt.SetCaller(h.operator)
		rt.ExpectValidateCallerAny()
		rt.ExpectEmittedEvent(lockup.EventDiscardDraftGroup, &lockup.DiscardDraftGroupEvent{ID: 0})
		rt.Call(h.DiscardDraftGroup, &lockup.DiscardDraftGroupParams{ID: 0})
		rt.Verify()

		rt.SetCaller(h.owner)
		rt.ExpectValidateCallerAny()
		rt.ExpectEmittedEvent(lockup.EventDeleteDraft, &lockup.DeleteDraftEvent{ID: 0})
		rt.Call(h.DeleteDrafts, &lockup.DeleteDraftsParams{IDs: ids})
		rt.Verify()

		ids = h.createDrafts(rt, h.operator, 1, draft(1, 400))
		assert.Equal(t, []lockup.DraftIndex{1}, ids)
		h.checkState(rt)
	})
}

func TestWhitelists(t *testing.T) {
	h := newHarness(t)

	t.Run("added depositor can deposit", func(t *testing.T) {
		rt := h.builder().Build(t)
		h.construct(rt)
		depositor2 := tutil.NewIDAddr(t, 105)

		rt.SetCaller(h.depositor)
		rt.SetReceived(lockup.MinSecurityDeposit)
		rt.ExpectValidateCallerAny()
		rt.ExpectEmittedEvent(lockup.EventAddToDepositWhitelist, &lockup.WhitelistEvent{Accounts: []addr.Address{depositor2}})
		rt.Call(h.AddToDepositWhitelist, &lockup.WhitelistParams{Accounts: []addr.Address{depositor2}})
		rt.Verify()
		rt.SetReceived(big.Zero())

		rt.SetCaller(h.token)
		rt.ExpectValidateCallerAddr(h.token)
		rt.ExpectEmittedEvent(lockup.EventCreateLockup, &lockup.CreateLockupEvent{
			ID: 0, Owner: h.owner, TotalBalance: abi.NewTokenAmount(1000),
		})
		rt.Call(h.OnTokensReceived, &lockup.OnTokensReceivedParams{
			Sender: depositor2,
			Amount: abi.NewTokenAmount(1000),
			Lockups: []lockup.LockupCreate{
				{Owner: h.owner, Schedule: vestingSchedule()},
			},
		})
		rt.Verify()

		summary := h.checkState(rt)
		assert.Equal(t, uint64(2), summary.DepositorCount)
	})

	t.Run("cannot empty the deposit whitelist", func(t *testing.T) {
		rt := h.builder().Build(t)
		h.construct(rt)

		rt.SetCaller(h.depositor)
		rt.SetReceived(lockup.MinSecurityDeposit)
		rt.ExpectValidateCallerAny()
		rt.ExpectAbort(exitcode.ErrIllegalState, func() {
			rt.Call(h.RemoveFromDepositWhitelist, &lockup.WhitelistParams{Accounts: []addr.Address{h.depositor}})
		})
		rt.Verify()
		h.checkState(rt)
	})

	t.Run("removed depositor loses access", func(t *testing.T) {
		rt := h.builder().Build(t)
		h.construct(rt)
		depositor2 := tutil.NewIDAddr(t, 105)

		rt.SetCaller(h.depositor)
		rt.SetReceived(lockup.MinSecurityDeposit)
		rt.ExpectValidateCallerAny()
		rt.ExpectEmittedEvent(lockup.EventAddToDepositWhitelist, &lockup.WhitelistEvent{Accounts: []addr.Address{depositor2}})
		rt.Call(h.AddToDepositWhitelist, &lockup.WhitelistParams{Accounts: []addr.Address{depositor2}})
		rt.Verify()

		rt.SetCaller(depositor2)
		rt.SetReceived(lockup.MinSecurityDeposit)
		rt.ExpectValidateCallerAny()
		rt.ExpectEmittedEvent(lockup.EventRemoveFromDepositWhitelist, &lockup.WhitelistEvent{Accounts: []addr.Address{h.depositor}})
		rt.Call(h.RemoveFromDepositWhitelist, &lockup.WhitelistParams{Accounts: []addr.Address{h.depositor}})
		rt.Verify()

		rt.SetCaller(h.depositor)
		rt.SetReceived(lockup.MinSecurityDeposit)
		rt.ExpectValidateCallerAny()
		rt.ExpectAbort(exitcode.ErrForbidden, func() {
			rt.Call(h.AddToDepositWhitelist, &lockup.WhitelistParams{Accounts: []addr.Address{h.depositor}})
		})
		rt.Verify()
		rt.SetReceived(big.Zero())
		h.checkState(rt)
	})

	t.Run("whitelist changes require a security deposit", func(t *testing.T) {
		rt := h.builder().Build(t)
		h.construct(rt)

		rt.SetCaller(h.depositor)
		rt.ExpectValidateCallerAny()
		rt.ExpectAbort(exitcode.ErrInsufficientFunds, func() {
			rt.Call(h.AddToDepositWhitelist, &lockup.WhitelistParams{Accounts: []addr.Address{h.owner}})
		})
		rt.Verify()
	})

	t.Run("draft operators cannot manage whitelists", func(t *testing.T) {
		rt := h.builder().Build(t)
		h.construct(rt)

		rt.SetCaller(h.operator)
		rt.SetReceived(lockup.MinSecurityDeposit)
		rt.ExpectValidateCallerAny()
		rt.ExpectAbort(exitcode.ErrForbidden, func() {
			rt.Call(h.AddToDraftOperatorsWhitelist, &lockup.WhitelistParams{Accounts: []addr.Address{h.owner}})
		})
		rt.Verify()
	})

	t.Run("removed draft operator cannot stage drafts", func(t *testing.T) {
		rt := h.builder().Build(t)
		h.construct(rt)

		rt.SetCaller(h.depositor)
		rt.SetReceived(lockup.MinSecurityDeposit)
		rt.ExpectValidateCallerAny()
		rt.ExpectEmittedEvent(lockup.EventRemoveFromDraftOperatorsWhitelist, &lockup.WhitelistEvent{Accounts: []addr.Address{h.operator}})
		rt.Call(h.RemoveFromDraftOperatorsWhitelist, &lockup.WhitelistParams{Accounts: []addr.Address{h.operator}})
		rt.Verify()
		rt.SetReceived(big.Zero())

		rt.SetCaller(h.operator)
		rt.ExpectValidateCallerAny()
		rt.ExpectAbort(exitcode.ErrForbidden, func() {
			rt.Call(h.CreateDraftGroup, &adt.EmptyValue{})
		})
		rt.Verify()
	})
}
