package lockup

import (
	"bytes"
	"encoding/binary"

	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/big"

	abi "github.com/SenderWallet/sender-ft-lockup/actors/abi"
	"github.com/SenderWallet/sender-ft-lockup/actors/builtin"
	"github.com/SenderWallet/sender-ft-lockup/actors/util/adt"
)

type StateSummary struct {
	LockupCount     uint64
	PendingBalance  abi.TokenAmount // unlocked-or-locked balance not yet claimed
	DraftCount      uint64
	DraftGroupCount uint64
	DepositorCount  uint64
}

// Checks internal invariants of the lockup actor state.
func CheckStateInvariants(st *State, store adt.Store) (*StateSummary, *builtin.MessageAccumulator) {
	acc := &builtin.MessageAccumulator{}
	summary := &StateSummary{
		PendingBalance: big.Zero(),
	}

	// Lockups
	lockupOwners := map[LockupIndex]addr.Address{}
	lockups := adt.AsArray(store, st.Lockups)
	var lockup Lockup
	err := lockups.ForEach(&lockup, func(i int64) error {
		id := LockupIndex(i)
		lockupOwners[id] = lockup.Owner
		summary.LockupCount++

		acc.Require(lockup.Owner != addr.Undef, "lockup %d has no owner", id)
		acc.Require(lockup.Schedule.Validate() == nil, "lockup %d has invalid schedule", id)
		acc.Require(lockup.ClaimedBalance.GreaterThanEqual(big.Zero()), "lockup %d claimed balance is negative", id)
		acc.Require(lockup.ClaimedBalance.LessThanEqual(lockup.TotalBalance()),
			"lockup %d claimed %v exceeds total %v", id, lockup.ClaimedBalance, lockup.TotalBalance())
		if cfg := lockup.TerminationConfig; cfg != nil {
			acc.Require(cfg.Beneficiary != addr.Undef, "lockup %d termination config has no beneficiary", id)
			if alt := cfg.Vesting.Alternate; alt != nil {
				acc.Require(alt.TotalBalance().Equals(lockup.TotalBalance()),
					"lockup %d vesting schedule total %v differs from lockup total %v", id, alt.TotalBalance(), lockup.TotalBalance())
				acc.Require(alt.UnlocksAtLeast(&lockup.Schedule),
					"lockup %d vesting schedule runs behind its lockup schedule", id)
			}
		}
		summary.PendingBalance = big.Add(summary.PendingBalance, big.Sub(lockup.TotalBalance(), lockup.ClaimedBalance))
		return nil
	})
	acc.Require(err == nil, "error iterating lockups: %v", err)
	acc.Require(summary.LockupCount == st.LockupCount, "lockup count %d does not match state %d", summary.LockupCount, st.LockupCount)

	// Account index
	accounts := adt.AsMap(store, st.AccountLockups)
	var indexes LockupIndexSet
	err = accounts.ForEach(&indexes, func(key string) error {
		owner, err := addr.NewFromBytes([]byte(key))
		acc.Require(err == nil, "account index key %x is not an address: %v", key, err)
		acc.Require(len(indexes.Indexes) > 0, "account %v has an empty lockup index entry", owner)

		prev := LockupIndex(0)
		for i, id := range indexes.Indexes {
			acc.Require(i == 0 || id > prev, "account %v lockup index is not sorted", owner)
			prev = id
			indexed, ok := lockupOwners[id]
			acc.Require(ok, "account %v indexes missing lockup %d", owner, id)
			acc.Require(!ok || indexed == owner, "account %v indexes lockup %d owned by %v", owner, id, indexed)
		}
		return nil
	})
	acc.Require(err == nil, "error iterating account index: %v", err)

	// Drafts
	draftTotals := map[DraftGroupIndex]abi.TokenAmount{}
	draftGroups := map[DraftIndex]DraftGroupIndex{}
	drafts := adt.AsMap(store, st.Drafts)
	var draft Draft
	err = drafts.ForEach(&draft, func(key string) error {
		id, err := parseIndexKey(key)
		acc.Require(err == nil, "draft key %x is not an index: %v", key, err)
		summary.DraftCount++

		acc.Require(DraftIndex(id) < st.NextDraftID, "draft %d at or above next id %d", id, st.NextDraftID)
		acc.Require(draft.LockupCreate.Validate() == nil, "draft %d has invalid lockup blueprint", id)
		draftGroups[DraftIndex(id)] = draft.DraftGroupID

		total, ok := draftTotals[draft.DraftGroupID]
		if !ok {
			total = big.Zero()
		}
		draftTotals[draft.DraftGroupID] = big.Add(total, draft.TotalBalance())
		return nil
	})
	acc.Require(err == nil, "error iterating drafts: %v", err)

	// Draft groups
	groupMembers := map[DraftGroupIndex]map[DraftIndex]bool{}
	groups := adt.AsMap(store, st.DraftGroups)
	var group DraftGroup
	err = groups.ForEach(&group, func(key string) error {
		id, err := parseIndexKey(key)
		acc.Require(err == nil, "draft group key %x is not an index: %v", key, err)
		gid := DraftGroupIndex(id)
		summary.DraftGroupCount++

		acc.Require(gid < st.NextDraftGroupID, "draft group %d at or above next id %d", gid, st.NextDraftGroupID)
		acc.Require(group.State != DraftGroupFunded, "funded draft group %d not pruned", gid)
		acc.Require(group.State == DraftGroupPending || len(group.DraftIndexes) > 0,
			"empty draft group %d in state %v not pruned", gid, group.State)

		total, ok := draftTotals[gid]
		if !ok {
			total = big.Zero()
		}
		acc.Require(group.TotalAmount.Equals(total),
			"draft group %d total %v does not match members' %v", gid, group.TotalAmount, total)

		members := map[DraftIndex]bool{}
		prev := DraftIndex(0)
		for i, did := range group.DraftIndexes {
			acc.Require(i == 0 || did > prev, "draft group %d member list is not sorted", gid)
			prev = did
			members[did] = true
		}
		groupMembers[gid] = members
		return nil
	})
	acc.Require(err == nil, "error iterating draft groups: %v", err)

	for did, gid := range draftGroups {
		acc.Require(groupMembers[gid][did], "draft %d missing from group %d member list", did, gid)
	}
	for gid, members := range groupMembers {
		for did := range members {
			_, ok := draftGroups[did]
			acc.Require(ok, "draft group %d member %d does not exist", gid, did)
		}
	}

	// Whitelists
	depositors := adt.AsSet(store, st.DepositWhitelist)
	keys, err := depositors.CollectKeys()
	acc.Require(err == nil, "error iterating deposit whitelist: %v", err)
	acc.Require(len(keys) > 0, "deposit whitelist is empty")
	summary.DepositorCount = uint64(len(keys))

	return summary, acc
}

func parseIndexKey(key string) (uint64, error) {
	return binary.ReadUvarint(bytes.NewReader([]byte(key)))
}
