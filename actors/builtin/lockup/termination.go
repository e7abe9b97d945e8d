package lockup

import (
	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/big"
	"github.com/filecoin-project/go-state-types/exitcode"

	abi "github.com/SenderWallet/sender-ft-lockup/actors/abi"
	"github.com/SenderWallet/sender-ft-lockup/actors/util"
)

// VestingConditions selects the curve used to compute the vested balance when
// a lockup is terminated early. A nil Alternate means the lockup's own
// schedule of record vests; an explicit Alternate vests independently of it,
// and must unlock at least as fast as the schedule of record at every point
// in time.
type VestingConditions struct {
	Alternate *Schedule
}

func (v *VestingConditions) vestingSchedule(scheduleOfRecord *Schedule) *Schedule {
	if v.Alternate != nil {
		return v.Alternate
	}
	return scheduleOfRecord
}

// TerminationConfig makes a lockup terminable. It is consumed exactly once,
// at termination; a lockup without one (never configured, or already
// consumed) is permanently non-terminable.
type TerminationConfig struct {
	// The account that funded the lockup, refunded the unvested remainder.
	Beneficiary addr.Address
	Vesting     VestingConditions
}

// Terminate stops future vesting of the lockup as of terminationTime,
// consuming its termination config. Returns the unvested remainder and the
// beneficiary account owed that remainder.
func (l *Lockup) Terminate(terminationTime abi.TimestampSec) (abi.TokenAmount, addr.Address, error) {
	config := l.TerminationConfig
	if config == nil {
		return big.Zero(), addr.Undef, exitcode.ErrIllegalState.Wrapf("lockup is not terminable")
	}
	l.TerminationConfig = nil

	total := l.Schedule.TotalBalance()
	vested := config.Vesting.vestingSchedule(&l.Schedule).UnlockedBalance(terminationTime)
	util.AssertMsg(vested.LessThanEqual(total), "vested balance %v exceeds lockup total %v", vested, total)

	unvested := big.Sub(total, vested)
	if unvested.GreaterThan(big.Zero()) {
		l.Schedule.Terminate(vested, terminationTime)
	}
	return unvested, config.Beneficiary, nil
}
