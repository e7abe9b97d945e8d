package builtin

import (
	abi "github.com/SenderWallet/sender-ft-lockup/actors/abi"
)

const (
	MethodSend        = abi.MethodNum(0)
	MethodConstructor = abi.MethodNum(1)
)

type lockupMethods struct {
	Constructor abi.MethodNum

	// User-callable methods
	Claim                             abi.MethodNum
	Terminate                         abi.MethodNum
	CreateDraftGroup                  abi.MethodNum
	CreateDrafts                      abi.MethodNum
	DiscardDraftGroup                 abi.MethodNum
	DeleteDrafts                      abi.MethodNum
	AddToDepositWhitelist             abi.MethodNum
	RemoveFromDepositWhitelist        abi.MethodNum
	AddToDraftOperatorsWhitelist      abi.MethodNum
	RemoveFromDraftOperatorsWhitelist abi.MethodNum

	// Called by the external token actor on incoming deposits.
	OnTokensReceived abi.MethodNum

	// Deferred continuations of scheduled token transfers.
	AfterClaimTransfer       abi.MethodNum
	AfterTerminationTransfer abi.MethodNum
}

var MethodsLockup = lockupMethods{MethodConstructor, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14}
