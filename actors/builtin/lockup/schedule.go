package lockup

import (
	"github.com/filecoin-project/go-state-types/big"
	"golang.org/x/xerrors"

	abi "github.com/SenderWallet/sender-ft-lockup/actors/abi"
	"github.com/SenderWallet/sender-ft-lockup/actors/util"
)

// Checkpoint fixes the cumulative unlocked balance of a schedule at a point
// in time.
type Checkpoint struct {
	Timestamp abi.TimestampSec
	Balance   abi.TokenAmount
}

// Schedule is a monotone step function from time to cumulative unlocked
// balance, described by its checkpoints. Between checkpoints the unlocked
// balance holds at the earlier checkpoint's value; it never interpolates.
// Before the first checkpoint the balance is the first checkpoint's balance,
// at or after the last it is the schedule total.
type Schedule struct {
	Checkpoints []Checkpoint
}

// Validate checks well-formedness of a new schedule: at least one checkpoint,
// strictly increasing timestamps, and non-decreasing, non-negative balances.
func (s *Schedule) Validate() error {
	if len(s.Checkpoints) == 0 {
		return xerrors.Errorf("schedule must have at least one checkpoint")
	}
	prev := s.Checkpoints[0]
	if prev.Balance.Nil() || prev.Balance.LessThan(big.Zero()) {
		return xerrors.Errorf("schedule balance at %v must be non-negative", prev.Timestamp)
	}
	for _, c := range s.Checkpoints[1:] {
		if c.Timestamp <= prev.Timestamp {
			return xerrors.Errorf("schedule timestamps must be strictly increasing, got %v after %v", c.Timestamp, prev.Timestamp)
		}
		if c.Balance.Nil() || c.Balance.LessThan(prev.Balance) {
			return xerrors.Errorf("schedule balances must be non-decreasing, got %v after %v", c.Balance, prev.Balance)
		}
		prev = c
	}
	return nil
}

// TotalBalance returns the amount unlocked once the schedule has fully run.
func (s *Schedule) TotalBalance() abi.TokenAmount {
	if len(s.Checkpoints) == 0 {
		return big.Zero()
	}
	return s.Checkpoints[len(s.Checkpoints)-1].Balance
}

// UnlockedBalance reports the cumulative amount unlocked as of time t.
func (s *Schedule) UnlockedBalance(t abi.TimestampSec) abi.TokenAmount {
	if len(s.Checkpoints) == 0 {
		return big.Zero()
	}
	unlocked := s.Checkpoints[0].Balance
	for _, c := range s.Checkpoints {
		if c.Timestamp > t {
			break
		}
		unlocked = c.Balance
	}
	return unlocked
}

// UnlocksAtLeast reports whether this schedule's unlocked balance is at
// least that of other at every point in time. Both curves are step functions
// that change only at their checkpoints, so comparing at every checkpoint
// timestamp of either schedule covers all times.
func (s *Schedule) UnlocksAtLeast(other *Schedule) bool {
	for _, c := range s.Checkpoints {
		if s.UnlockedBalance(c.Timestamp).LessThan(other.UnlockedBalance(c.Timestamp)) {
			return false
		}
	}
	for _, c := range other.Checkpoints {
		if s.UnlockedBalance(c.Timestamp).LessThan(other.UnlockedBalance(c.Timestamp)) {
			return false
		}
	}
	return true
}

// Terminate caps the schedule so that the unlocked balance is exactly
// `vested` at and after `terminationTime`, leaving earlier behaviour
// unchanged. The caller must have established vested <= TotalBalance().
func (s *Schedule) Terminate(vested abi.TokenAmount, terminationTime abi.TimestampSec) {
	util.AssertMsg(vested.LessThanEqual(s.TotalBalance()),
		"vested balance %v exceeds schedule total %v", vested, s.TotalBalance())

	kept := make([]Checkpoint, 0, len(s.Checkpoints)+1)
	for _, c := range s.Checkpoints {
		if c.Timestamp >= terminationTime || c.Balance.GreaterThan(vested) {
			break
		}
		kept = append(kept, c)
	}
	kept = append(kept, Checkpoint{Timestamp: terminationTime, Balance: vested})
	s.Checkpoints = kept
}
