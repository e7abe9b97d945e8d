package lockup

import (
	"encoding/binary"
	"sort"

	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/big"
	"github.com/filecoin-project/go-state-types/exitcode"
	cid "github.com/ipfs/go-cid"
	"golang.org/x/xerrors"

	abi "github.com/SenderWallet/sender-ft-lockup/actors/abi"
	"github.com/SenderWallet/sender-ft-lockup/actors/util"
	"github.com/SenderWallet/sender-ft-lockup/actors/util/adt"
)

type LockupIndex uint64
type DraftIndex uint64
type DraftGroupIndex uint64

func (i LockupIndex) Key() string {
	return varintKey(uint64(i))
}

func (i DraftIndex) Key() string {
	return varintKey(uint64(i))
}

func (i DraftGroupIndex) Key() string {
	return varintKey(uint64(i))
}

func varintKey(i uint64) string {
	buf := make([]byte, binary.MaxVarintLen64)
	n := binary.PutUvarint(buf, i)
	return string(buf[:n])
}

type State struct {
	// Address of the external fungible-token actor holding this actor's funds.
	TokenAccount addr.Address

	Lockups     cid.Cid // Array, AMT[LockupIndex]Lockup
	LockupCount uint64

	// Index of live lockups by owner, Map, HAMT[addr.Address]LockupIndexSet.
	// An owner appears iff they have at least one lockup with a claimable
	// future, so enumeration never walks drained positions.
	AccountLockups cid.Cid

	// Accounts allowed to deposit tokens and terminate lockups.
	// Set, HAMT[addr.Address]struct{}. Never empty.
	DepositWhitelist cid.Cid
	// Accounts additionally allowed to stage drafts. Depositors are always
	// draft operators. Set, HAMT[addr.Address]struct{}.
	DraftOperatorsWhitelist cid.Cid

	NextDraftID DraftIndex
	Drafts      cid.Cid // Map, HAMT[DraftIndex]Draft

	NextDraftGroupID DraftGroupIndex
	DraftGroups      cid.Cid // Map, HAMT[DraftGroupIndex]DraftGroup
}

// Lockup is a grant of tokens to an owner, released over time by its
// schedule of record.
type Lockup struct {
	Owner          addr.Address
	Schedule       Schedule
	ClaimedBalance abi.TokenAmount
	// Present iff the lockup is still terminable.
	TerminationConfig *TerminationConfig
}

func (l *Lockup) TotalBalance() abi.TokenAmount {
	return l.Schedule.TotalBalance()
}

func (l *Lockup) UnlockedBalance(now abi.TimestampSec) abi.TokenAmount {
	return l.Schedule.UnlockedBalance(now)
}

// ClaimableBalance is the portion unlocked but not yet claimed.
func (l *Lockup) ClaimableBalance(now abi.TimestampSec) abi.TokenAmount {
	claimable := big.Sub(l.UnlockedBalance(now), l.ClaimedBalance)
	util.AssertMsg(claimable.GreaterThanEqual(big.Zero()),
		"claimed balance %v exceeds unlocked %v", l.ClaimedBalance, l.UnlockedBalance(now))
	return claimable
}

// Claim records a claim of up to `requested` tokens, capped at the claimable
// balance. Returns the amount actually claimed.
func (l *Lockup) Claim(requested abi.TokenAmount, now abi.TimestampSec) abi.TokenAmount {
	amount := big.Min(requested, l.ClaimableBalance(now))
	l.ClaimedBalance = big.Add(l.ClaimedBalance, amount)
	return amount
}

// LockupIndexSet is one owner's entry in the account index.
type LockupIndexSet struct {
	// Sorted ascending.
	Indexes []LockupIndex
}

func (s *LockupIndexSet) add(id LockupIndex) {
	at := sort.Search(len(s.Indexes), func(i int) bool { return s.Indexes[i] >= id })
	if at < len(s.Indexes) && s.Indexes[at] == id {
		return
	}
	s.Indexes = append(s.Indexes, 0)
	copy(s.Indexes[at+1:], s.Indexes[at:])
	s.Indexes[at] = id
}

func (s *LockupIndexSet) remove(id LockupIndex) bool {
	at := sort.Search(len(s.Indexes), func(i int) bool { return s.Indexes[i] >= id })
	if at == len(s.Indexes) || s.Indexes[at] != id {
		return false
	}
	s.Indexes = append(s.Indexes[:at], s.Indexes[at+1:]...)
	return true
}

func (s *LockupIndexSet) contains(id LockupIndex) bool {
	at := sort.Search(len(s.Indexes), func(i int) bool { return s.Indexes[i] >= id })
	return at < len(s.Indexes) && s.Indexes[at] == id
}

func ConstructState(store adt.Store, tokenAccount addr.Address, depositWhitelist, draftOperators []addr.Address) (*State, error) {
	emptyArray, err := adt.MakeEmptyArray(store)
	if err != nil {
		return nil, xerrors.Errorf("failed to create empty array: %w", err)
	}
	emptyMap, err := adt.MakeEmptyMap(store)
	if err != nil {
		return nil, xerrors.Errorf("failed to create empty map: %w", err)
	}

	depositSet, err := adt.MakeEmptySet(store)
	if err != nil {
		return nil, xerrors.Errorf("failed to create deposit whitelist: %w", err)
	}
	for _, a := range depositWhitelist {
		if err := depositSet.Put(adt.AddrKey(a)); err != nil {
			return nil, xerrors.Errorf("failed to whitelist depositor %v: %w", a, err)
		}
	}

	operatorSet, err := adt.MakeEmptySet(store)
	if err != nil {
		return nil, xerrors.Errorf("failed to create draft operators whitelist: %w", err)
	}
	for _, a := range draftOperators {
		if err := operatorSet.Put(adt.AddrKey(a)); err != nil {
			return nil, xerrors.Errorf("failed to whitelist draft operator %v: %w", a, err)
		}
	}

	return &State{
		TokenAccount:            tokenAccount,
		Lockups:                 emptyArray.Root(),
		LockupCount:             0,
		AccountLockups:          emptyMap.Root(),
		DepositWhitelist:        depositSet.Root(),
		DraftOperatorsWhitelist: operatorSet.Root(),
		NextDraftID:             0,
		Drafts:                  emptyMap.Root(),
		NextDraftGroupID:        0,
		DraftGroups:             emptyMap.Root(),
	}, nil
}

//
// Lockups and the account index
//

func (st *State) getLockup(store adt.Store, id LockupIndex) (*Lockup, bool, error) {
	lockups := adt.AsArray(store, st.Lockups)
	var lockup Lockup
	found, err := lockups.Get(uint64(id), &lockup)
	if err != nil {
		return nil, false, xerrors.Errorf("failed to load lockup %d: %w", id, err)
	}
	return &lockup, found, nil
}

func (st *State) setLockup(store adt.Store, id LockupIndex, lockup *Lockup) error {
	lockups := adt.AsArray(store, st.Lockups)
	if err := lockups.Set(uint64(id), lockup); err != nil {
		return xerrors.Errorf("failed to store lockup %d: %w", id, err)
	}
	st.Lockups = lockups.Root()
	return nil
}

// addLockup appends a new lockup and indexes it under its owner, returning
// the index assigned.
func (st *State) addLockup(store adt.Store, lockup *Lockup) (LockupIndex, error) {
	lockups := adt.AsArray(store, st.Lockups)
	idx, err := lockups.Append(lockup)
	if err != nil {
		return 0, xerrors.Errorf("failed to append lockup: %w", err)
	}
	util.AssertMsg(idx == st.LockupCount, "lockup index %d does not match count %d", idx, st.LockupCount)
	st.Lockups = lockups.Root()
	st.LockupCount++

	id := LockupIndex(idx)
	indexes, err := st.loadAccountIndexes(store, lockup.Owner)
	if err != nil {
		return 0, err
	}
	indexes.add(id)
	if err := st.saveAccountIndexes(store, lockup.Owner, indexes); err != nil {
		return 0, err
	}
	return id, nil
}

func (st *State) loadAccountIndexes(store adt.Store, owner addr.Address) (*LockupIndexSet, error) {
	accounts := adt.AsMap(store, st.AccountLockups)
	var indexes LockupIndexSet
	if _, err := accounts.Get(adt.AddrKey(owner), &indexes); err != nil {
		return nil, xerrors.Errorf("failed to load lockup index for %v: %w", owner, err)
	}
	return &indexes, nil
}

// saveAccountIndexes writes an owner's index entry, dropping the entry
// entirely when it is empty.
func (st *State) saveAccountIndexes(store adt.Store, owner addr.Address, indexes *LockupIndexSet) error {
	accounts := adt.AsMap(store, st.AccountLockups)
	if len(indexes.Indexes) == 0 {
		if err := accounts.Delete(adt.AddrKey(owner)); err != nil {
			return xerrors.Errorf("failed to prune lockup index for %v: %w", owner, err)
		}
	} else {
		if err := accounts.Put(adt.AddrKey(owner), indexes); err != nil {
			return xerrors.Errorf("failed to store lockup index for %v: %w", owner, err)
		}
	}
	st.AccountLockups = accounts.Root()
	return nil
}

// LockupEntry pairs a lockup with its index for iteration and reporting.
type LockupEntry struct {
	ID     LockupIndex
	Lockup *Lockup
}

// accountLockups returns all of an owner's indexed lockups, in index order.
func (st *State) accountLockups(store adt.Store, owner addr.Address) ([]LockupEntry, error) {
	indexes, err := st.loadAccountIndexes(store, owner)
	if err != nil {
		return nil, err
	}
	return st.lockupsByID(store, indexes.Indexes)
}

// accountLockupsByID returns the requested lockups, verifying each belongs
// to the owner.
func (st *State) accountLockupsByID(store adt.Store, owner addr.Address, ids []LockupIndex) ([]LockupEntry, error) {
	indexes, err := st.loadAccountIndexes(store, owner)
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		if !indexes.contains(id) {
			return nil, exitcode.ErrNotFound.Wrapf("account %v has no lockup %d", owner, id)
		}
	}
	return st.lockupsByID(store, ids)
}

func (st *State) lockupsByID(store adt.Store, ids []LockupIndex) ([]LockupEntry, error) {
	entries := make([]LockupEntry, 0, len(ids))
	for _, id := range ids {
		lockup, found, err := st.getLockup(store, id)
		if err != nil {
			return nil, err
		}
		util.AssertMsg(found, "indexed lockup %d not found", id)
		entries = append(entries, LockupEntry{ID: id, Lockup: lockup})
	}
	return entries, nil
}

// removeAccountLockup drops a drained lockup from its owner's index.
func (st *State) removeAccountLockup(store adt.Store, owner addr.Address, id LockupIndex) error {
	indexes, err := st.loadAccountIndexes(store, owner)
	if err != nil {
		return err
	}
	if !indexes.remove(id) {
		return nil
	}
	return st.saveAccountIndexes(store, owner, indexes)
}

//
// Drafts and draft groups
//

func (st *State) getDraft(store adt.Store, id DraftIndex) (*Draft, bool, error) {
	drafts := adt.AsMap(store, st.Drafts)
	var draft Draft
	found, err := drafts.Get(id, &draft)
	if err != nil {
		return nil, false, xerrors.Errorf("failed to load draft %d: %w", id, err)
	}
	return &draft, found, nil
}

func (st *State) putDraft(store adt.Store, id DraftIndex, draft *Draft) error {
	drafts := adt.AsMap(store, st.Drafts)
	if err := drafts.Put(id, draft); err != nil {
		return xerrors.Errorf("failed to store draft %d: %w", id, err)
	}
	st.Drafts = drafts.Root()
	return nil
}

func (st *State) deleteDraft(store adt.Store, id DraftIndex) error {
	drafts := adt.AsMap(store, st.Drafts)
	if err := drafts.Delete(id); err != nil {
		return xerrors.Errorf("failed to delete draft %d: %w", id, err)
	}
	st.Drafts = drafts.Root()
	return nil
}

func (st *State) getDraftGroup(store adt.Store, id DraftGroupIndex) (*DraftGroup, bool, error) {
	groups := adt.AsMap(store, st.DraftGroups)
	var group DraftGroup
	found, err := groups.Get(id, &group)
	if err != nil {
		return nil, false, xerrors.Errorf("failed to load draft group %d: %w", id, err)
	}
	return &group, found, nil
}

func (st *State) putDraftGroup(store adt.Store, id DraftGroupIndex, group *DraftGroup) error {
	groups := adt.AsMap(store, st.DraftGroups)
	if err := groups.Put(id, group); err != nil {
		return xerrors.Errorf("failed to store draft group %d: %w", id, err)
	}
	st.DraftGroups = groups.Root()
	return nil
}

func (st *State) deleteDraftGroup(store adt.Store, id DraftGroupIndex) error {
	groups := adt.AsMap(store, st.DraftGroups)
	if err := groups.Delete(id); err != nil {
		return xerrors.Errorf("failed to delete draft group %d: %w", id, err)
	}
	st.DraftGroups = groups.Root()
	return nil
}

// saveOrPruneDraftGroup writes a group back, removing it instead once it has
// left the pending state with no members remaining.
func (st *State) saveOrPruneDraftGroup(store adt.Store, id DraftGroupIndex, group *DraftGroup) error {
	if group.State != DraftGroupPending && len(group.DraftIndexes) == 0 {
		return st.deleteDraftGroup(store, id)
	}
	return st.putDraftGroup(store, id, group)
}

//
// Whitelists
//

func (st *State) isDepositor(store adt.Store, a addr.Address) (bool, error) {
	whitelist := adt.AsSet(store, st.DepositWhitelist)
	has, err := whitelist.Has(adt.AddrKey(a))
	if err != nil {
		return false, xerrors.Errorf("failed to check deposit whitelist for %v: %w", a, err)
	}
	return has, nil
}

// isDraftOperator reports whether an account may stage drafts. Depositors
// qualify implicitly.
func (st *State) isDraftOperator(store adt.Store, a addr.Address) (bool, error) {
	isDepositor, err := st.isDepositor(store, a)
	if err != nil || isDepositor {
		return isDepositor, err
	}
	operators := adt.AsSet(store, st.DraftOperatorsWhitelist)
	has, err := operators.Has(adt.AddrKey(a))
	if err != nil {
		return false, xerrors.Errorf("failed to check draft operators whitelist for %v: %w", a, err)
	}
	return has, nil
}

func addToWhitelist(store adt.Store, root cid.Cid, accounts []addr.Address) (cid.Cid, error) {
	whitelist := adt.AsSet(store, root)
	for _, a := range accounts {
		if err := whitelist.Put(adt.AddrKey(a)); err != nil {
			return cid.Undef, xerrors.Errorf("failed to whitelist %v: %w", a, err)
		}
	}
	return whitelist.Root(), nil
}

// removeFromWhitelist removes accounts from a whitelist set, returning the
// new root and the number of entries remaining. Absent accounts are ignored.
func removeFromWhitelist(store adt.Store, root cid.Cid, accounts []addr.Address) (cid.Cid, int, error) {
	whitelist := adt.AsSet(store, root)
	for _, a := range accounts {
		has, err := whitelist.Has(adt.AddrKey(a))
		if err != nil {
			return cid.Undef, 0, xerrors.Errorf("failed to check whitelist for %v: %w", a, err)
		}
		if !has {
			continue
		}
		if err := whitelist.Delete(adt.AddrKey(a)); err != nil {
			return cid.Undef, 0, xerrors.Errorf("failed to remove %v from whitelist: %w", a, err)
		}
	}
	keys, err := whitelist.CollectKeys()
	if err != nil {
		return cid.Undef, 0, xerrors.Errorf("failed to count whitelist: %w", err)
	}
	return whitelist.Root(), len(keys), nil
}
