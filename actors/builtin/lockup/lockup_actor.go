package lockup

import (
	"fmt"

	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/big"
	"github.com/filecoin-project/go-state-types/exitcode"
	rtt "github.com/filecoin-project/go-state-types/rt"

	abi "github.com/SenderWallet/sender-ft-lockup/actors/abi"
	"github.com/SenderWallet/sender-ft-lockup/actors/builtin"
	vmr "github.com/SenderWallet/sender-ft-lockup/actors/runtime"
	"github.com/SenderWallet/sender-ft-lockup/actors/util"
	"github.com/SenderWallet/sender-ft-lockup/actors/util/adt"
)

// The lockup actor holds fungible tokens on an external token actor and
// releases them to owners over per-lockup schedules. Lockups are created by
// whitelisted depositors, either directly with an incoming deposit or staged
// beforehand as drafts and funded later in one batch.
type Actor struct{}

func (a Actor) Exports() []interface{} {
	return []interface{}{
		builtin.MethodConstructor: a.Constructor,
		2:                         a.Claim,
		3:                         a.Terminate,
		4:                         a.CreateDraftGroup,
		5:                         a.CreateDrafts,
		6:                         a.DiscardDraftGroup,
		7:                         a.DeleteDrafts,
		8:                         a.AddToDepositWhitelist,
		9:                         a.RemoveFromDepositWhitelist,
		10:                        a.AddToDraftOperatorsWhitelist,
		11:                        a.RemoveFromDraftOperatorsWhitelist,
		12:                        a.OnTokensReceived,
		13:                        a.AfterClaimTransfer,
		14:                        a.AfterTerminationTransfer,
	}
}

var _ abi.Invokee = Actor{}

type ConstructorParams struct {
	TokenAccount            addr.Address
	DepositWhitelist        []addr.Address
	DraftOperatorsWhitelist []addr.Address
}

func (a Actor) Constructor(rt vmr.Runtime, params *ConstructorParams) *adt.EmptyValue {
	rt.ValidateImmediateCallerAcceptAny()
	builtin.RequireParam(rt, params.TokenAccount != addr.Undef, "token account is required")
	builtin.RequireParam(rt, len(params.DepositWhitelist) > 0, "deposit whitelist must not be empty")

	st, err := ConstructState(adt.AsStore(rt), params.TokenAccount, params.DepositWhitelist, params.DraftOperatorsWhitelist)
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to construct state")
	rt.State().Create(st)

	rt.EmitEvent(EventNew, &NewEvent{TokenAccount: params.TokenAccount})
	rt.EmitEvent(EventAddToDepositWhitelist, &WhitelistEvent{Accounts: params.DepositWhitelist})
	if len(params.DraftOperatorsWhitelist) > 0 {
		rt.EmitEvent(EventAddToDraftOperatorsWhitelist, &WhitelistEvent{Accounts: params.DraftOperatorsWhitelist})
	}
	return nil
}

type LockupClaim struct {
	ID LockupIndex
	// Amount to claim from this lockup. Zero or unset claims everything
	// newly unlocked; an explicit amount is capped at the claimable balance.
	Amount abi.TokenAmount
}

type ClaimParams struct {
	// The caller's lockups to claim from. Empty claims from all of them.
	Claims []LockupClaim
}

type ClaimReturn struct {
	Total abi.TokenAmount
}

// Claim pays out the caller's unlocked balance. The claimed amounts are
// recorded first, then a single transfer for the batch total is scheduled;
// AfterClaimTransfer settles the outcome.
func (a Actor) Claim(rt vmr.Runtime, params *ClaimParams) *ClaimReturn {
	rt.ValidateImmediateCallerAcceptAny()
	caller := rt.Message().Caller()
	now := rt.CurrTime()

	var st State
	total := big.Zero()
	var claims []LockupClaimRecord
	rt.State().Transaction(&st, func() interface{} {
		store := adt.AsStore(rt)

		var entries []LockupEntry
		var err error
		requested := make([]abi.TokenAmount, 0, len(params.Claims))
		if len(params.Claims) > 0 {
			seen := make(map[LockupIndex]struct{}, len(params.Claims))
			ids := make([]LockupIndex, 0, len(params.Claims))
			for _, c := range params.Claims {
				_, dup := seen[c.ID]
				builtin.RequireParam(rt, !dup, "duplicate claim for lockup %d", c.ID)
				seen[c.ID] = struct{}{}
				ids = append(ids, c.ID)
				requested = append(requested, c.Amount)
			}
			entries, err = st.accountLockupsByID(store, caller, ids)
			builtin.RequireNoErr(rt, err, exitcode.ErrNotFound, "failed to load lockups for %v", caller)
		} else {
			entries, err = st.accountLockups(store, caller)
			builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load lockups for %v", caller)
		}

		for i, entry := range entries {
			amount := entry.Lockup.ClaimableBalance(now)
			if i < len(requested) && !requested[i].Nil() && requested[i].GreaterThan(big.Zero()) {
				amount = requested[i]
			}
			claimed := entry.Lockup.Claim(amount, now)
			if !claimed.GreaterThan(big.Zero()) {
				continue
			}
			err = st.setLockup(store, entry.ID, entry.Lockup)
			builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to record claim on lockup %d", entry.ID)
			total = big.Add(total, claimed)
			claims = append(claims, LockupClaimRecord{ID: entry.ID, Amount: claimed})
			rt.Log(rtt.DEBUG, "claiming %v from lockup %d for %v", claimed, entry.ID, caller)
		}
		return nil
	})

	if total.GreaterThan(big.Zero()) {
		rt.Transfer(st.TokenAccount, caller, total, "claim of unlocked lockup balance",
			builtin.MethodsLockup.AfterClaimTransfer,
			&AfterClaimTransferParams{Account: caller, Claims: claims})
	}
	return &ClaimReturn{Total: total}
}

type LockupClaimRecord struct {
	ID     LockupIndex
	Amount abi.TokenAmount
}

type AfterClaimTransferParams struct {
	Account addr.Address
	Claims  []LockupClaimRecord
}

// AfterClaimTransfer settles a claim's transfer. On success the claim events
// become observable; on failure every contributing lockup's claimed balance
// is restored so the tokens remain claimable.
func (a Actor) AfterClaimTransfer(rt vmr.Runtime, params *AfterClaimTransferParams) *adt.EmptyValue {
	rt.ValidateImmediateCallerIs(rt.Message().Receiver())

	if rt.TransferSucceeded() {
		for _, c := range params.Claims {
			rt.EmitEvent(EventClaimLockup, &ClaimLockupEvent{ID: c.ID, Amount: c.Amount})
		}
		return nil
	}

	var st State
	rt.State().Transaction(&st, func() interface{} {
		store := adt.AsStore(rt)
		for _, c := range params.Claims {
			lockup, found, err := st.getLockup(store, c.ID)
			builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load lockup %d", c.ID)
			util.AssertMsg(found, "claimed lockup %d not found", c.ID)

			lockup.ClaimedBalance = big.Sub(lockup.ClaimedBalance, c.Amount)
			util.AssertMsg(lockup.ClaimedBalance.GreaterThanEqual(big.Zero()),
				"claim rollback of %v on lockup %d underflows", c.Amount, c.ID)

			err = st.setLockup(store, c.ID, lockup)
			builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to roll back claim on lockup %d", c.ID)
		}
		return nil
	})
	rt.Log(rtt.WARN, "transfer of claimed tokens to %v failed, %d claims rolled back", params.Account, len(params.Claims))
	return nil
}

type TerminateParams struct {
	ID LockupIndex
	// Effective time of the termination. Zero means now; a time in the
	// future lets vesting run until then. Must not be in the past.
	TerminationTime abi.TimestampSec
}

type TerminateReturn struct {
	UnvestedBalance abi.TokenAmount
}

// Terminate stops future vesting of a terminable lockup and refunds the
// unvested remainder to the termination beneficiary. The refund transfer is
// fire-and-forget: the termination itself is final whether or not the
// transfer lands.
func (a Actor) Terminate(rt vmr.Runtime, params *TerminateParams) *TerminateReturn {
	rt.ValidateImmediateCallerAcceptAny()
	caller := rt.Message().Caller()
	requireSecurityDeposit(rt)

	now := rt.CurrTime()
	terminationTime := params.TerminationTime
	if terminationTime == 0 {
		terminationTime = now
	}
	if terminationTime < now {
		rt.Abortf(ErrInvalidTimestamp, "termination time %v is in the past (now %v)", terminationTime, now)
	}

	var st State
	var unvested abi.TokenAmount
	var beneficiary addr.Address
	rt.State().Transaction(&st, func() interface{} {
		store := adt.AsStore(rt)
		requireDepositor(rt, &st, store, caller)

		lockup, found, err := st.getLockup(store, params.ID)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load lockup %d", params.ID)
		if !found {
			rt.Abortf(exitcode.ErrNotFound, "no such lockup %d", params.ID)
		}

		unvested, beneficiary, err = lockup.Terminate(terminationTime)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to terminate lockup %d", params.ID)

		err = st.setLockup(store, params.ID, lockup)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to store lockup %d", params.ID)

		// A terminated lockup with nothing left to claim is dead weight in
		// the owner's index.
		if lockup.TotalBalance().Equals(lockup.ClaimedBalance) {
			err = st.removeAccountLockup(store, lockup.Owner, params.ID)
			builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to prune lockup %d from index", params.ID)
		}
		return nil
	})

	rt.EmitEvent(EventTerminateLockup, &TerminateLockupEvent{
		ID:              params.ID,
		TerminationTime: terminationTime,
		UnvestedBalance: unvested,
	})

	if unvested.GreaterThan(big.Zero()) {
		rt.Transfer(st.TokenAccount, beneficiary, unvested,
			fmt.Sprintf("refund of unvested balance from lockup #%d", params.ID),
			builtin.MethodsLockup.AfterTerminationTransfer,
			&AfterTerminationTransferParams{ID: params.ID, Beneficiary: beneficiary, Amount: unvested})
	}
	return &TerminateReturn{UnvestedBalance: unvested}
}

type AfterTerminationTransferParams struct {
	ID          LockupIndex
	Beneficiary addr.Address
	Amount      abi.TokenAmount
}

// AfterTerminationTransfer observes the outcome of a termination refund.
// The termination is already final, so a failed refund is not rolled back;
// it leaves the unvested value stranded with the token actor and demands
// manual recovery.
func (a Actor) AfterTerminationTransfer(rt vmr.Runtime, params *AfterTerminationTransferParams) *adt.EmptyValue {
	rt.ValidateImmediateCallerIs(rt.Message().Receiver())

	if rt.TransferSucceeded() {
		rt.Log(rtt.DEBUG, "refunded %v unvested tokens to %v for lockup %d", params.Amount, params.Beneficiary, params.ID)
		return nil
	}
	rt.Log(rtt.ERROR, "CRITICAL: refund of %v unvested tokens to %v for terminated lockup %d failed and requires manual recovery",
		params.Amount, params.Beneficiary, params.ID)
	return nil
}

type CreateDraftGroupReturn struct {
	ID DraftGroupIndex
}

func (a Actor) CreateDraftGroup(rt vmr.Runtime, _ *adt.EmptyValue) *CreateDraftGroupReturn {
	rt.ValidateImmediateCallerAcceptAny()
	caller := rt.Message().Caller()

	var st State
	var id DraftGroupIndex
	rt.State().Transaction(&st, func() interface{} {
		store := adt.AsStore(rt)
		requireDraftOperator(rt, &st, store, caller)

		id = st.NextDraftGroupID
		st.NextDraftGroupID++
		err := st.putDraftGroup(store, id, ConstructDraftGroup())
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to store draft group %d", id)
		return nil
	})

	rt.EmitEvent(EventCreateDraftGroup, &CreateDraftGroupEvent{ID: id})
	return &CreateDraftGroupReturn{ID: id}
}

type CreateDraftsParams struct {
	Drafts []Draft
}

type CreateDraftsReturn struct {
	IDs []DraftIndex
}

// CreateDrafts stages lockup blueprints into their pending groups. Each
// group referenced by the batch is read and written exactly once.
func (a Actor) CreateDrafts(rt vmr.Runtime, params *CreateDraftsParams) *CreateDraftsReturn {
	rt.ValidateImmediateCallerAcceptAny()
	caller := rt.Message().Caller()
	builtin.RequireParam(rt, len(params.Drafts) > 0, "no drafts to create")

	var st State
	ids := make([]DraftIndex, 0, len(params.Drafts))
	events := make([]CreateDraftEvent, 0, len(params.Drafts))
	rt.State().Transaction(&st, func() interface{} {
		store := adt.AsStore(rt)
		requireDraftOperator(rt, &st, store, caller)

		groups := make(map[DraftGroupIndex]*DraftGroup)
		for i := range params.Drafts {
			draft := &params.Drafts[i]
			err := draft.LockupCreate.Validate()
			builtin.RequireNoErr(rt, err, exitcode.ErrIllegalArgument, "invalid draft")

			group, ok := groups[draft.DraftGroupID]
			if !ok {
				var found bool
				group, found, err = st.getDraftGroup(store, draft.DraftGroupID)
				builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load draft group %d", draft.DraftGroupID)
				if !found {
					rt.Abortf(exitcode.ErrNotFound, "no such draft group %d", draft.DraftGroupID)
				}
				groups[draft.DraftGroupID] = group
			}

			id := st.NextDraftID
			st.NextDraftID++
			err = group.AddDraft(id, draft.TotalBalance())
			builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to add draft to group %d", draft.DraftGroupID)

			err = st.putDraft(store, id, draft)
			builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to store draft %d", id)

			ids = append(ids, id)
			events = append(events, CreateDraftEvent{
				ID:           id,
				DraftGroupID: draft.DraftGroupID,
				Owner:        draft.LockupCreate.Owner,
				TotalBalance: draft.TotalBalance(),
			})
		}

		for gid, group := range groups {
			err := st.putDraftGroup(store, gid, group)
			builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to store draft group %d", gid)
		}
		return nil
	})

	for i := range events {
		rt.EmitEvent(EventCreateDraft, &events[i])
	}
	return &CreateDraftsReturn{IDs: ids}
}

type DiscardDraftGroupParams struct {
	ID DraftGroupIndex
}

// DiscardDraftGroup retires a pending group so it can never be funded. Its
// drafts become deletable by anyone; an already empty group vanishes at once.
func (a Actor) DiscardDraftGroup(rt vmr.Runtime, params *DiscardDraftGroupParams) *adt.EmptyValue {
	rt.ValidateImmediateCallerAcceptAny()
	caller := rt.Message().Caller()

	var st State
	rt.State().Transaction(&st, func() interface{} {
		store := adt.AsStore(rt)
		requireDraftOperator(rt, &st, store, caller)

		group, found, err := st.getDraftGroup(store, params.ID)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load draft group %d", params.ID)
		if !found {
			rt.Abortf(exitcode.ErrNotFound, "no such draft group %d", params.ID)
		}

		err = group.Discard()
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to discard draft group %d", params.ID)

		err = st.saveOrPruneDraftGroup(store, params.ID, group)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to store draft group %d", params.ID)
		return nil
	})

	rt.EmitEvent(EventDiscardDraftGroup, &DiscardDraftGroupEvent{ID: params.ID})
	return nil
}

type DeleteDraftsParams struct {
	IDs []DraftIndex
}

// DeleteDrafts reclaims storage from discarded groups. No authorization is
// needed: only drafts of discarded groups can be deleted, and discarding
// already required an operator. A group emptied by deletion vanishes.
func (a Actor) DeleteDrafts(rt vmr.Runtime, params *DeleteDraftsParams) *adt.EmptyValue {
	rt.ValidateImmediateCallerAcceptAny()
	builtin.RequireParam(rt, len(params.IDs) > 0, "no drafts to delete")

	var st State
	rt.State().Transaction(&st, func() interface{} {
		store := adt.AsStore(rt)

		groups := make(map[DraftGroupIndex]*DraftGroup)
		for _, id := range params.IDs {
			draft, found, err := st.getDraft(store, id)
			builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load draft %d", id)
			if !found {
				rt.Abortf(exitcode.ErrNotFound, "no such draft %d", id)
			}

			group, ok := groups[draft.DraftGroupID]
			if !ok {
				group, found, err = st.getDraftGroup(store, draft.DraftGroupID)
				builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load draft group %d", draft.DraftGroupID)
				util.AssertMsg(found, "draft %d references missing group %d", id, draft.DraftGroupID)
				groups[draft.DraftGroupID] = group
			}

			err = group.CheckCanDeleteDrafts()
			builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "cannot delete draft %d", id)
			group.RemoveDraft(id, draft.TotalBalance())

			err = st.deleteDraft(store, id)
			builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to delete draft %d", id)
		}

		for gid, group := range groups {
			err := st.saveOrPruneDraftGroup(store, gid, group)
			builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to store draft group %d", gid)
		}
		return nil
	})

	for _, id := range params.IDs {
		rt.EmitEvent(EventDeleteDraft, &DeleteDraftEvent{ID: id})
	}
	return nil
}

type FundDraftGroupInstruction struct {
	ID DraftGroupIndex
}

type OnTokensReceivedParams struct {
	// The account that sent the tokens. Must be a whitelisted depositor.
	Sender addr.Address
	Amount abi.TokenAmount
	// Exactly one of FundGroup or Lockups directs the deposit.
	FundGroup *FundDraftGroupInstruction
	Lockups   []LockupCreate
}

// OnTokensReceived is invoked by the token actor when tokens arrive. The
// deposit either funds a pending draft group, converting every member draft
// into a live lockup, or creates the given lockups directly. The deposited
// amount must match exactly; any mismatch rejects the whole deposit.
func (a Actor) OnTokensReceived(rt vmr.Runtime, params *OnTokensReceivedParams) *adt.EmptyValue {
	var st State
	rt.State().Readonly(&st)
	rt.ValidateImmediateCallerIs(st.TokenAccount)

	builtin.RequireParam(rt, !params.Amount.Nil() && params.Amount.GreaterThan(big.Zero()), "deposit amount must be positive")
	builtin.RequireParam(rt, params.Amount.LessThanEqual(MaxTokenAmount), "deposit amount %v exceeds maximum", params.Amount)
	builtin.RequireParam(rt, (params.FundGroup != nil) != (len(params.Lockups) > 0),
		"deposit must either fund a draft group or create lockups")

	var lockupEvents []CreateLockupEvent
	rt.State().Transaction(&st, func() interface{} {
		store := adt.AsStore(rt)
		requireDepositor(rt, &st, store, params.Sender)

		if params.FundGroup != nil {
			lockupEvents = a.fundDraftGroup(rt, &st, store, params.Sender, params.Amount, params.FundGroup.ID)
		} else {
			lockupEvents = a.createLockups(rt, &st, store, params.Sender, params.Amount, params.Lockups)
		}
		return nil
	})

	if params.FundGroup != nil {
		rt.EmitEvent(EventFundDraftGroup, &FundDraftGroupEvent{
			ID:     params.FundGroup.ID,
			Funder: params.Sender,
			Amount: params.Amount,
		})
	}
	for i := range lockupEvents {
		rt.EmitEvent(EventCreateLockup, &lockupEvents[i])
	}
	return nil
}

// fundDraftGroup converts a fully funded pending group into live lockups,
// deleting the group and its drafts.
func (a Actor) fundDraftGroup(rt vmr.Runtime, st *State, store adt.Store, funder addr.Address, amount abi.TokenAmount, gid DraftGroupIndex) []CreateLockupEvent {
	group, found, err := st.getDraftGroup(store, gid)
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load draft group %d", gid)
	if !found {
		rt.Abortf(exitcode.ErrNotFound, "no such draft group %d", gid)
	}
	builtin.RequireState(rt, group.State == DraftGroupPending, "draft group %d is %v, cannot be funded", gid, group.State)
	builtin.RequireParam(rt, amount.Equals(group.TotalAmount),
		"deposit %v does not match draft group %d total %v", amount, gid, group.TotalAmount)

	events := make([]CreateLockupEvent, 0, len(group.DraftIndexes))
	for _, did := range group.DraftIndexes {
		draft, found, err := st.getDraft(store, did)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load draft %d", did)
		util.AssertMsg(found, "draft group %d references missing draft %d", gid, did)

		idx, err := st.addLockup(store, draft.LockupCreate.IntoLockup(funder))
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to create lockup from draft %d", did)

		err = st.deleteDraft(store, did)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to delete draft %d", did)

		events = append(events, CreateLockupEvent{
			ID:           idx,
			Owner:        draft.LockupCreate.Owner,
			TotalBalance: draft.TotalBalance(),
		})
	}

	err = st.deleteDraftGroup(store, gid)
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to delete draft group %d", gid)
	return events
}

// createLockups instantiates lockups directly from a deposit, requiring the
// deposit to cover their totals exactly.
func (a Actor) createLockups(rt vmr.Runtime, st *State, store adt.Store, funder addr.Address, amount abi.TokenAmount, creates []LockupCreate) []CreateLockupEvent {
	sum := big.Zero()
	events := make([]CreateLockupEvent, 0, len(creates))
	for i := range creates {
		lc := &creates[i]
		err := lc.Validate()
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalArgument, "invalid lockup")
		sum = big.Add(sum, lc.Schedule.TotalBalance())

		idx, err := st.addLockup(store, lc.IntoLockup(funder))
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to create lockup")

		events = append(events, CreateLockupEvent{
			ID:           idx,
			Owner:        lc.Owner,
			TotalBalance: lc.Schedule.TotalBalance(),
		})
	}
	builtin.RequireParam(rt, amount.Equals(sum), "deposit %v does not match lockup totals %v", amount, sum)
	return events
}

type WhitelistParams struct {
	Accounts []addr.Address
}

func (a Actor) AddToDepositWhitelist(rt vmr.Runtime, params *WhitelistParams) *adt.EmptyValue {
	a.updateWhitelist(rt, params, true, true)
	rt.EmitEvent(EventAddToDepositWhitelist, &WhitelistEvent{Accounts: params.Accounts})
	return nil
}

// RemoveFromDepositWhitelist removes depositors, refusing to empty the
// whitelist: a lockup actor nobody can deposit to or terminate on is bricked.
func (a Actor) RemoveFromDepositWhitelist(rt vmr.Runtime, params *WhitelistParams) *adt.EmptyValue {
	a.updateWhitelist(rt, params, true, false)
	rt.EmitEvent(EventRemoveFromDepositWhitelist, &WhitelistEvent{Accounts: params.Accounts})
	return nil
}

func (a Actor) AddToDraftOperatorsWhitelist(rt vmr.Runtime, params *WhitelistParams) *adt.EmptyValue {
	a.updateWhitelist(rt, params, false, true)
	rt.EmitEvent(EventAddToDraftOperatorsWhitelist, &WhitelistEvent{Accounts: params.Accounts})
	return nil
}

func (a Actor) RemoveFromDraftOperatorsWhitelist(rt vmr.Runtime, params *WhitelistParams) *adt.EmptyValue {
	a.updateWhitelist(rt, params, false, false)
	rt.EmitEvent(EventRemoveFromDraftOperatorsWhitelist, &WhitelistEvent{Accounts: params.Accounts})
	return nil
}

func (a Actor) updateWhitelist(rt vmr.Runtime, params *WhitelistParams, deposit bool, add bool) {
	rt.ValidateImmediateCallerAcceptAny()
	caller := rt.Message().Caller()
	requireSecurityDeposit(rt)
	builtin.RequireParam(rt, len(params.Accounts) > 0, "no accounts given")

	var st State
	rt.State().Transaction(&st, func() interface{} {
		store := adt.AsStore(rt)
		requireDepositor(rt, &st, store, caller)

		root := st.DraftOperatorsWhitelist
		if deposit {
			root = st.DepositWhitelist
		}

		var err error
		if add {
			root, err = addToWhitelist(store, root, params.Accounts)
			builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to update whitelist")
		} else {
			var remaining int
			root, remaining, err = removeFromWhitelist(store, root, params.Accounts)
			builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to update whitelist")
			if deposit {
				builtin.RequireState(rt, remaining > 0, "cannot remove all accounts from the deposit whitelist")
			}
		}

		if deposit {
			st.DepositWhitelist = root
		} else {
			st.DraftOperatorsWhitelist = root
		}
		return nil
	})
}

func requireSecurityDeposit(rt vmr.Runtime) {
	if rt.Message().ValueReceived().LessThan(MinSecurityDeposit) {
		rt.Abortf(exitcode.ErrInsufficientFunds, "method requires a security deposit of at least %v", MinSecurityDeposit)
	}
}

func requireDepositor(rt vmr.Runtime, st *State, store adt.Store, a addr.Address) {
	ok, err := st.isDepositor(store, a)
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to check deposit whitelist")
	if !ok {
		rt.Abortf(exitcode.ErrForbidden, "%v is not in the deposit whitelist", a)
	}
}

func requireDraftOperator(rt vmr.Runtime, st *State, store adt.Store, a addr.Address) {
	ok, err := st.isDraftOperator(store, a)
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to check draft operators whitelist")
	if !ok {
		rt.Abortf(exitcode.ErrForbidden, "%v is not a draft operator", a)
	}
}
