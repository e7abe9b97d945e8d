package main

import (
	gen "github.com/whyrusleeping/cbor-gen"

	lockup "github.com/SenderWallet/sender-ft-lockup/actors/builtin/lockup"
)

func main() {
	// Actor state
	if err := gen.WriteTupleEncodersToFile("./actors/builtin/lockup/cbor_gen.go", "lockup",
		// actor state
		lockup.State{},
		lockup.Lockup{},
		lockup.Schedule{},
		lockup.Checkpoint{},
		lockup.VestingConditions{},
		lockup.TerminationConfig{},
		lockup.LockupIndexSet{},
		lockup.Draft{},
		lockup.LockupCreate{},
		lockup.DraftGroup{},
		// method params and returns
		lockup.ConstructorParams{},
		lockup.ClaimParams{},
		lockup.LockupClaim{},
		lockup.ClaimReturn{},
		lockup.TerminateParams{},
		lockup.TerminateReturn{},
		lockup.CreateDraftGroupReturn{},
		lockup.CreateDraftsParams{},
		lockup.CreateDraftsReturn{},
		lockup.DiscardDraftGroupParams{},
		lockup.DeleteDraftsParams{},
		lockup.WhitelistParams{},
		lockup.OnTokensReceivedParams{},
		lockup.FundDraftGroupInstruction{},
		lockup.LockupClaimRecord{},
		lockup.AfterClaimTransferParams{},
		lockup.AfterTerminationTransferParams{},
		// events
		lockup.NewEvent{},
		lockup.CreateLockupEvent{},
		lockup.ClaimLockupEvent{},
		lockup.TerminateLockupEvent{},
		lockup.CreateDraftGroupEvent{},
		lockup.FundDraftGroupEvent{},
		lockup.DiscardDraftGroupEvent{},
		lockup.CreateDraftEvent{},
		lockup.DeleteDraftEvent{},
		lockup.WhitelistEvent{},
	); err != nil {
		panic(err)
	}
}
