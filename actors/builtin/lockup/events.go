package lockup

import (
	addr "github.com/filecoin-project/go-address"

	abi "github.com/SenderWallet/sender-ft-lockup/actors/abi"
)

// Event kinds delivered to the host's event sink. Events describe committed
// state changes only; a claim's transfer event is withheld until the transfer
// settles.
const (
	EventNew             = "ft_lockup_new"
	EventCreateLockup    = "ft_lockup_create_lockup"
	EventClaimLockup     = "ft_lockup_claim_lockup"
	EventTerminateLockup = "ft_lockup_terminate_lockup"

	EventCreateDraftGroup  = "ft_lockup_create_draft_group"
	EventFundDraftGroup    = "ft_lockup_fund_draft_group"
	EventDiscardDraftGroup = "ft_lockup_discard_draft_group"
	EventCreateDraft       = "ft_lockup_create_draft"
	EventDeleteDraft       = "ft_lockup_delete_draft"

	EventAddToDepositWhitelist             = "ft_lockup_add_to_deposit_whitelist"
	EventRemoveFromDepositWhitelist        = "ft_lockup_remove_from_deposit_whitelist"
	EventAddToDraftOperatorsWhitelist      = "ft_lockup_add_to_draft_operators_whitelist"
	EventRemoveFromDraftOperatorsWhitelist = "ft_lockup_remove_from_draft_operators_whitelist"
)

type NewEvent struct {
	TokenAccount addr.Address
}

type CreateLockupEvent struct {
	ID           LockupIndex
	Owner        addr.Address
	TotalBalance abi.TokenAmount
}

type ClaimLockupEvent struct {
	ID     LockupIndex
	Amount abi.TokenAmount
}

type TerminateLockupEvent struct {
	ID              LockupIndex
	TerminationTime abi.TimestampSec
	UnvestedBalance abi.TokenAmount
}

type CreateDraftGroupEvent struct {
	ID DraftGroupIndex
}

type FundDraftGroupEvent struct {
	ID     DraftGroupIndex
	Funder addr.Address
	Amount abi.TokenAmount
}

type DiscardDraftGroupEvent struct {
	ID DraftGroupIndex
}

type CreateDraftEvent struct {
	ID           DraftIndex
	DraftGroupID DraftGroupIndex
	Owner        addr.Address
	TotalBalance abi.TokenAmount
}

type DeleteDraftEvent struct {
	ID DraftIndex
}

type WhitelistEvent struct {
	Accounts []addr.Address
}
