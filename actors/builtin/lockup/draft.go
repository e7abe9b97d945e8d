package lockup

import (
	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/big"
	"github.com/filecoin-project/go-state-types/exitcode"
	"golang.org/x/xerrors"

	abi "github.com/SenderWallet/sender-ft-lockup/actors/abi"
	"github.com/SenderWallet/sender-ft-lockup/actors/util"
)

// LockupCreate is the blueprint for a lockup, staged in a draft or submitted
// directly with a deposit. The funder (and hence termination beneficiary) is
// not part of the blueprint; it is bound when tokens arrive.
type LockupCreate struct {
	Owner    addr.Address
	Schedule Schedule
	// Terms under which the lockup may be terminated early.
	// Nil makes the lockup permanently non-terminable.
	Vesting *VestingConditions
}

func (lc *LockupCreate) Validate() error {
	if lc.Owner == addr.Undef {
		return xerrors.Errorf("lockup owner is required")
	}
	if err := lc.Schedule.Validate(); err != nil {
		return err
	}
	total := lc.Schedule.TotalBalance()
	if !total.GreaterThan(big.Zero()) {
		return xerrors.Errorf("lockup total balance must be positive, got %v", total)
	}
	if lc.Vesting != nil && lc.Vesting.Alternate != nil {
		alt := lc.Vesting.Alternate
		if err := alt.Validate(); err != nil {
			return err
		}
		if !alt.TotalBalance().Equals(total) {
			return xerrors.Errorf("vesting schedule total %v must equal lockup total %v", alt.TotalBalance(), total)
		}
		// A vesting schedule that runs behind the lockup schedule would let
		// the owner claim balance that a later termination also refunds.
		if !alt.UnlocksAtLeast(&lc.Schedule) {
			return xerrors.Errorf("vesting schedule must unlock at least as fast as the lockup schedule")
		}
	}
	return nil
}

// IntoLockup instantiates the blueprint, binding the funder as termination
// beneficiary for terminable lockups.
func (lc *LockupCreate) IntoLockup(funder addr.Address) *Lockup {
	l := &Lockup{
		Owner:          lc.Owner,
		Schedule:       lc.Schedule,
		ClaimedBalance: big.Zero(),
	}
	if lc.Vesting != nil {
		l.TerminationConfig = &TerminationConfig{
			Beneficiary: funder,
			Vesting:     *lc.Vesting,
		}
	}
	return l
}

// Draft is a staged lockup blueprint, inert until its group is funded.
type Draft struct {
	DraftGroupID DraftGroupIndex
	LockupCreate LockupCreate
}

func (d *Draft) TotalBalance() abi.TokenAmount {
	return d.LockupCreate.Schedule.TotalBalance()
}

type DraftGroupState uint64

const (
	DraftGroupPending DraftGroupState = iota
	DraftGroupFunded
	DraftGroupDiscarded
)

func (s DraftGroupState) String() string {
	switch s {
	case DraftGroupPending:
		return "pending"
	case DraftGroupFunded:
		return "funded"
	case DraftGroupDiscarded:
		return "discarded"
	default:
		return "unknown"
	}
}

// DraftGroup batches drafts for funding in a single deposit. Its TotalAmount
// always equals the sum of its member drafts' totals.
type DraftGroup struct {
	State       DraftGroupState
	TotalAmount abi.TokenAmount
	// The account whose deposit funded the group. Nil while pending or
	// discarded.
	Funder *addr.Address
	// Member draft indices, sorted ascending.
	DraftIndexes []DraftIndex
}

func ConstructDraftGroup() *DraftGroup {
	return &DraftGroup{
		State:       DraftGroupPending,
		TotalAmount: big.Zero(),
	}
}

// AddDraft admits a new member, growing the group total. Only pending groups
// admit drafts.
func (dg *DraftGroup) AddDraft(id DraftIndex, amount abi.TokenAmount) error {
	if dg.State != DraftGroupPending {
		return exitcode.ErrIllegalState.Wrapf("draft group is %v, cannot add drafts", dg.State)
	}
	newTotal := big.Add(dg.TotalAmount, amount)
	if newTotal.GreaterThan(MaxTokenAmount) {
		return ErrOverflow.Wrapf("draft group total %v exceeds maximum amount", newTotal)
	}

	at, found := dg.findDraft(id)
	util.AssertMsg(!found, "draft %d already in group", id)
	dg.DraftIndexes = append(dg.DraftIndexes, 0)
	copy(dg.DraftIndexes[at+1:], dg.DraftIndexes[at:])
	dg.DraftIndexes[at] = id
	dg.TotalAmount = newTotal
	return nil
}

// RemoveDraft evicts a member, shrinking the group total. The draft must be
// a member and the amount must match what it contributed.
func (dg *DraftGroup) RemoveDraft(id DraftIndex, amount abi.TokenAmount) {
	at, found := dg.findDraft(id)
	util.AssertMsg(found, "draft %d not in group", id)
	dg.DraftIndexes = append(dg.DraftIndexes[:at], dg.DraftIndexes[at+1:]...)
	newTotal := big.Sub(dg.TotalAmount, amount)
	util.AssertMsg(newTotal.GreaterThanEqual(big.Zero()), "draft group total underflow removing draft %d", id)
	dg.TotalAmount = newTotal
}

// Discard retires a pending group so its drafts can be deleted.
func (dg *DraftGroup) Discard() error {
	if dg.State != DraftGroupPending {
		return exitcode.ErrIllegalState.Wrapf("draft group is %v, cannot discard", dg.State)
	}
	dg.State = DraftGroupDiscarded
	return nil
}

// CheckCanDeleteDrafts verifies the group has been discarded, the only state
// in which members may be deleted.
func (dg *DraftGroup) CheckCanDeleteDrafts() error {
	if dg.State != DraftGroupDiscarded {
		return exitcode.ErrIllegalState.Wrapf("draft group is %v, drafts can only be deleted from a discarded group", dg.State)
	}
	return nil
}

// findDraft returns the position of id in the sorted member list, or the
// position at which it would be inserted.
func (dg *DraftGroup) findDraft(id DraftIndex) (int, bool) {
	lo, hi := 0, len(dg.DraftIndexes)
	for lo < hi {
		mid := (lo + hi) / 2
		if dg.DraftIndexes[mid] < id {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo, lo < len(dg.DraftIndexes) && dg.DraftIndexes[lo] == id
}
