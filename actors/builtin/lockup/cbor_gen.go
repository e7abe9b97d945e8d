// Code generated by github.com/whyrusleeping/cbor-gen. DO NOT EDIT.

package lockup

import (
	"fmt"
	"io"

	abi "github.com/SenderWallet/sender-ft-lockup/actors/abi"
	address "github.com/filecoin-project/go-address"
	cbg "github.com/whyrusleeping/cbor-gen"
	xerrors "golang.org/x/xerrors"
)

var _ = xerrors.Errorf

var lengthBufState = []byte{138}

func (t *State) MarshalCBOR(w io.Writer) error {
	if t == nil {
		_, err := w.Write(cbg.CborNull)
		return err
	}
	if _, err := w.Write(lengthBufState); err != nil {
		return err
	}

	scratch := make([]byte, 9)

	// t.TokenAccount (address.Address) (struct)
	if err := t.TokenAccount.MarshalCBOR(w); err != nil {
		return err
	}

	// t.Lockups (cid.Cid) (struct)

	if err := cbg.WriteCidBuf(scratch, w, t.Lockups); err != nil {
		return xerrors.Errorf("failed to write cid field t.Lockups: %w", err)
	}

	// t.LockupCount (uint64) (uint64)

	if err := cbg.WriteMajorTypeHeaderBuf(scratch, w, cbg.MajUnsignedInt, uint64(t.LockupCount)); err != nil {
		return err
	}

	// t.AccountLockups (cid.Cid) (struct)

	if err := cbg.WriteCidBuf(scratch, w, t.AccountLockups); err != nil {
		return xerrors.Errorf("failed to write cid field t.AccountLockups: %w", err)
	}

	// t.DepositWhitelist (cid.Cid) (struct)

	if err := cbg.WriteCidBuf(scratch, w, t.DepositWhitelist); err != nil {
		return xerrors.Errorf("failed to write cid field t.DepositWhitelist: %w", err)
	}

	// t.DraftOperatorsWhitelist (cid.Cid) (struct)

	if err := cbg.WriteCidBuf(scratch, w, t.DraftOperatorsWhitelist); err != nil {
		return xerrors.Errorf("failed to write cid field t.DraftOperatorsWhitelist: %w", err)
	}

	// t.NextDraftID (lockup.DraftIndex) (uint64)

	if err := cbg.WriteMajorTypeHeaderBuf(scratch, w, cbg.MajUnsignedInt, uint64(t.NextDraftID)); err != nil {
		return err
	}

	// t.Drafts (cid.Cid) (struct)

	if err := cbg.WriteCidBuf(scratch, w, t.Drafts); err != nil {
		return xerrors.Errorf("failed to write cid field t.Drafts: %w", err)
	}

	// t.NextDraftGroupID (lockup.DraftGroupIndex) (uint64)

	if err := cbg.WriteMajorTypeHeaderBuf(scratch, w, cbg.MajUnsignedInt, uint64(t.NextDraftGroupID)); err != nil {
		return err
	}

	// t.DraftGroups (cid.Cid) (struct)

	if err := cbg.WriteCidBuf(scratch, w, t.DraftGroups); err != nil {
		return xerrors.Errorf("failed to write cid field t.DraftGroups: %w", err)
	}

	return nil
}

func (t *State) UnmarshalCBOR(r io.Reader) error {
	*t = State{}

	br := cbg.GetPeeker(r)
	scratch := make([]byte, 8)

	maj, extra, err := cbg.CborReadHeaderBuf(br, scratch)
	if err != nil {
		return err
	}
	if maj != cbg.MajArray {
		return fmt.Errorf("cbor input should be of type array")
	}

	if extra != 10 {
		return fmt.Errorf("cbor input had wrong number of fields")
	}

	// t.TokenAccount (address.Address) (struct)

	{

		if err := t.TokenAccount.UnmarshalCBOR(br); err != nil {
			return xerrors.Errorf("unmarshaling t.TokenAccount: %w", err)
		}

	}
	// t.Lockups (cid.Cid) (struct)

	{

		c, err := cbg.ReadCid(br)
		if err != nil {
			return xerrors.Errorf("failed to read cid field t.Lockups: %w", err)
		}

		t.Lockups = c

	}
	// t.LockupCount (uint64) (uint64)

	{

		maj, extra, err = cbg.CborReadHeaderBuf(br, scratch)
		if err != nil {
			return err
		}
		if maj != cbg.MajUnsignedInt {
			return fmt.Errorf("wrong type for uint64 field")
		}
		t.LockupCount = uint64(extra)

	}
	// t.AccountLockups (cid.Cid) (struct)

	{

		c, err := cbg.ReadCid(br)
		if err != nil {
			return xerrors.Errorf("failed to read cid field t.AccountLockups: %w", err)
		}

		t.AccountLockups = c

	}
	// t.DepositWhitelist (cid.Cid) (struct)

	{

		c, err := cbg.ReadCid(br)
		if err != nil {
			return xerrors.Errorf("failed to read cid field t.DepositWhitelist: %w", err)
		}

		t.DepositWhitelist = c

	}
	// t.DraftOperatorsWhitelist (cid.Cid) (struct)

	{

		c, err := cbg.ReadCid(br)
		if err != nil {
			return xerrors.Errorf("failed to read cid field t.DraftOperatorsWhitelist: %w", err)
		}

		t.DraftOperatorsWhitelist = c

	}
	// t.NextDraftID (lockup.DraftIndex) (uint64)

	{

		maj, extra, err = cbg.CborReadHeaderBuf(br, scratch)
		if err != nil {
			return err
		}
		if maj != cbg.MajUnsignedInt {
			return fmt.Errorf("wrong type for uint64 field")
		}
		t.NextDraftID = DraftIndex(extra)

	}
	// t.Drafts (cid.Cid) (struct)

	{

		c, err := cbg.ReadCid(br)
		if err != nil {
			return xerrors.Errorf("failed to read cid field t.Drafts: %w", err)
		}

		t.Drafts = c

	}
	// t.NextDraftGroupID (lockup.DraftGroupIndex) (uint64)

	{

		maj, extra, err = cbg.CborReadHeaderBuf(br, scratch)
		if err != nil {
			return err
		}
		if maj != cbg.MajUnsignedInt {
			return fmt.Errorf("wrong type for uint64 field")
		}
		t.NextDraftGroupID = DraftGroupIndex(extra)

	}
	// t.DraftGroups (cid.Cid) (struct)

	{

		c, err := cbg.ReadCid(br)
		if err != nil {
			return xerrors.Errorf("failed to read cid field t.DraftGroups: %w", err)
		}

		t.DraftGroups = c

	}
	return nil
}

var lengthBufLockup = []byte{132}

func (t *Lockup) MarshalCBOR(w io.Writer) error {
	if t == nil {
		_, err := w.Write(cbg.CborNull)
		return err
	}
	if _, err := w.Write(lengthBufLockup); err != nil {
		return err
	}

	// t.Owner (address.Address) (struct)
	if err := t.Owner.MarshalCBOR(w); err != nil {
		return err
	}

	// t.Schedule (lockup.Schedule) (struct)
	if err := t.Schedule.MarshalCBOR(w); err != nil {
		return err
	}

	// t.ClaimedBalance (big.Int) (struct)
	if err := t.ClaimedBalance.MarshalCBOR(w); err != nil {
		return err
	}

	// t.TerminationConfig (lockup.TerminationConfig) (struct)
	if err := t.TerminationConfig.MarshalCBOR(w); err != nil {
		return err
	}
	return nil
}

func (t *Lockup) UnmarshalCBOR(r io.Reader) error {
	*t = Lockup{}

	br := cbg.GetPeeker(r)
	scratch := make([]byte, 8)

	maj, extra, err := cbg.CborReadHeaderBuf(br, scratch)
	if err != nil {
		return err
	}
	if maj != cbg.MajArray {
		return fmt.Errorf("cbor input should be of type array")
	}

	if extra != 4 {
		return fmt.Errorf("cbor input had wrong number of fields")
	}

	// t.Owner (address.Address) (struct)

	{

		if err := t.Owner.UnmarshalCBOR(br); err != nil {
			return xerrors.Errorf("unmarshaling t.Owner: %w", err)
		}

	}
	// t.Schedule (lockup.Schedule) (struct)

	{

		if err := t.Schedule.UnmarshalCBOR(br); err != nil {
			return xerrors.Errorf("unmarshaling t.Schedule: %w", err)
		}

	}
	// t.ClaimedBalance (big.Int) (struct)

	{

		if err := t.ClaimedBalance.UnmarshalCBOR(br); err != nil {
			return xerrors.Errorf("unmarshaling t.ClaimedBalance: %w", err)
		}

	}
	// t.TerminationConfig (lockup.TerminationConfig) (struct)

	{

		b, err := br.ReadByte()
		if err != nil {
			return err
		}
		if b != cbg.CborNull[0] {
			if err := br.UnreadByte(); err != nil {
				return err
			}
			t.TerminationConfig = new(TerminationConfig)
			if err := t.TerminationConfig.UnmarshalCBOR(br); err != nil {
				return xerrors.Errorf("unmarshaling t.TerminationConfig pointer: %w", err)
			}
		}

	}
	return nil
}

var lengthBufSchedule = []byte{129}

func (t *Schedule) MarshalCBOR(w io.Writer) error {
	if t == nil {
		_, err := w.Write(cbg.CborNull)
		return err
	}
	if _, err := w.Write(lengthBufSchedule); err != nil {
		return err
	}

	scratch := make([]byte, 9)

	// t.Checkpoints ([]lockup.Checkpoint) (slice)
	if len(t.Checkpoints) > cbg.MaxLength {
		return xerrors.Errorf("Slice value in field t.Checkpoints was too long")
	}

	if err := cbg.WriteMajorTypeHeaderBuf(scratch, w, cbg.MajArray, uint64(len(t.Checkpoints))); err != nil {
		return err
	}
	for _, v := range t.Checkpoints {
		if err := v.MarshalCBOR(w); err != nil {
			return err
		}
	}
	return nil
}

func (t *Schedule) UnmarshalCBOR(r io.Reader) error {
	*t = Schedule{}

	br := cbg.GetPeeker(r)
	scratch := make([]byte, 8)

	maj, extra, err := cbg.CborReadHeaderBuf(br, scratch)
	if err != nil {
		return err
	}
	if maj != cbg.MajArray {
		return fmt.Errorf("cbor input should be of type array")
	}

	if extra != 1 {
		return fmt.Errorf("cbor input had wrong number of fields")
	}

	// t.Checkpoints ([]lockup.Checkpoint) (slice)

	maj, extra, err = cbg.CborReadHeaderBuf(br, scratch)
	if err != nil {
		return err
	}

	if extra > cbg.MaxLength {
		return fmt.Errorf("t.Checkpoints: array too large (%d)", extra)
	}

	if maj != cbg.MajArray {
		return fmt.Errorf("expected cbor array")
	}

	if extra > 0 {
		t.Checkpoints = make([]Checkpoint, extra)
	}

	for i := 0; i < int(extra); i++ {

		var v Checkpoint
		if err := v.UnmarshalCBOR(br); err != nil {
			return err
		}

		t.Checkpoints[i] = v
	}

	return nil
}

var lengthBufCheckpoint = []byte{130}

func (t *Checkpoint) MarshalCBOR(w io.Writer) error {
	if t == nil {
		_, err := w.Write(cbg.CborNull)
		return err
	}
	if _, err := w.Write(lengthBufCheckpoint); err != nil {
		return err
	}

	scratch := make([]byte, 9)

	// t.Timestamp (abi.TimestampSec) (int64)
	if t.Timestamp >= 0 {
		if err := cbg.WriteMajorTypeHeaderBuf(scratch, w, cbg.MajUnsignedInt, uint64(t.Timestamp)); err != nil {
			return err
		}
	} else {
		if err := cbg.WriteMajorTypeHeaderBuf(scratch, w, cbg.MajNegativeInt, uint64(-t.Timestamp-1)); err != nil {
			return err
		}
	}

	// t.Balance (big.Int) (struct)
	if err := t.Balance.MarshalCBOR(w); err != nil {
		return err
	}
	return nil
}

func (t *Checkpoint) UnmarshalCBOR(r io.Reader) error {
	*t = Checkpoint{}

	br := cbg.GetPeeker(r)
	scratch := make([]byte, 8)

	maj, extra, err := cbg.CborReadHeaderBuf(br, scratch)
	if err != nil {
		return err
	}
	if maj != cbg.MajArray {
		return fmt.Errorf("cbor input should be of type array")
	}

	if extra != 2 {
		return fmt.Errorf("cbor input had wrong number of fields")
	}

	// t.Timestamp (abi.TimestampSec) (int64)
	{
		maj, extra, err := cbg.CborReadHeaderBuf(br, scratch)
		var extraI int64
		if err != nil {
			return err
		}
		switch maj {
		case cbg.MajUnsignedInt:
			extraI = int64(extra)
			if extraI < 0 {
				return fmt.Errorf("int64 positive overflow")
			}
		case cbg.MajNegativeInt:
			extraI = int64(extra)
			if extraI < 0 {
				return fmt.Errorf("int64 negative oveflow")
			}
			extraI = -1 - extraI
		default:
			return fmt.Errorf("wrong type for int64 field: %d", maj)
		}

		t.Timestamp = abi.TimestampSec(extraI)
	}
	// t.Balance (big.Int) (struct)

	{

		if err := t.Balance.UnmarshalCBOR(br); err != nil {
			return xerrors.Errorf("unmarshaling t.Balance: %w", err)
		}

	}
	return nil
}

var lengthBufVestingConditions = []byte{129}

func (t *VestingConditions) MarshalCBOR(w io.Writer) error {
	if t == nil {
		_, err := w.Write(cbg.CborNull)
		return err
	}
	if _, err := w.Write(lengthBufVestingConditions); err != nil {
		return err
	}

	// t.Alternate (lockup.Schedule) (struct)
	if err := t.Alternate.MarshalCBOR(w); err != nil {
		return err
	}
	return nil
}

func (t *VestingConditions) UnmarshalCBOR(r io.Reader) error {
	*t = VestingConditions{}

	br := cbg.GetPeeker(r)
	scratch := make([]byte, 8)

	maj, extra, err := cbg.CborReadHeaderBuf(br, scratch)
	if err != nil {
		return err
	}
	if maj != cbg.MajArray {
		return fmt.Errorf("cbor input should be of type array")
	}

	if extra != 1 {
		return fmt.Errorf("cbor input had wrong number of fields")
	}

	// t.Alternate (lockup.Schedule) (struct)

	{

		b, err := br.ReadByte()
		if err != nil {
			return err
		}
		if b != cbg.CborNull[0] {
			if err := br.UnreadByte(); err != nil {
				return err
			}
			t.Alternate = new(Schedule)
			if err := t.Alternate.UnmarshalCBOR(br); err != nil {
				return xerrors.Errorf("unmarshaling t.Alternate pointer: %w", err)
			}
		}

	}
	return nil
}

var lengthBufTerminationConfig = []byte{130}

func (t *TerminationConfig) MarshalCBOR(w io.Writer) error {
	if t == nil {
		_, err := w.Write(cbg.CborNull)
		return err
	}
	if _, err := w.Write(lengthBufTerminationConfig); err != nil {
		return err
	}

	// t.Beneficiary (address.Address) (struct)
	if err := t.Beneficiary.MarshalCBOR(w); err != nil {
		return err
	}

	// t.Vesting (lockup.VestingConditions) (struct)
	if err := t.Vesting.MarshalCBOR(w); err != nil {
		return err
	}
	return nil
}

func (t *TerminationConfig) UnmarshalCBOR(r io.Reader) error {
	*t = TerminationConfig{}

	br := cbg.GetPeeker(r)
	scratch := make([]byte, 8)

	maj, extra, err := cbg.CborReadHeaderBuf(br, scratch)
	if err != nil {
		return err
	}
	if maj != cbg.MajArray {
		return fmt.Errorf("cbor input should be of type array")
	}

	if extra != 2 {
		return fmt.Errorf("cbor input had wrong number of fields")
	}

	// t.Beneficiary (address.Address) (struct)

	{

		if err := t.Beneficiary.UnmarshalCBOR(br); err != nil {
			return xerrors.Errorf("unmarshaling t.Beneficiary: %w", err)
		}

	}
	// t.Vesting (lockup.VestingConditions) (struct)

	{

		if err := t.Vesting.UnmarshalCBOR(br); err != nil {
			return xerrors.Errorf("unmarshaling t.Vesting: %w", err)
		}

	}
	return nil
}

var lengthBufLockupIndexSet = []byte{129}

func (t *LockupIndexSet) MarshalCBOR(w io.Writer) error {
	if t == nil {
		_, err := w.Write(cbg.CborNull)
		return err
	}
	if _, err := w.Write(lengthBufLockupIndexSet); err != nil {
		return err
	}

	scratch := make([]byte, 9)

	// t.Indexes ([]lockup.LockupIndex) (slice)
	if len(t.Indexes) > cbg.MaxLength {
		return xerrors.Errorf("Slice value in field t.Indexes was too long")
	}

	if err := cbg.WriteMajorTypeHeaderBuf(scratch, w, cbg.MajArray, uint64(len(t.Indexes))); err != nil {
		return err
	}
	for _, v := range t.Indexes {
		if err := cbg.CborWriteHeader(w, cbg.MajUnsignedInt, uint64(v)); err != nil {
			return err
		}
	}
	return nil
}

func (t *LockupIndexSet) UnmarshalCBOR(r io.Reader) error {
	*t = LockupIndexSet{}

	br := cbg.GetPeeker(r)
	scratch := make([]byte, 8)

	maj, extra, err := cbg.CborReadHeaderBuf(br, scratch)
	if err != nil {
		return err
	}
	if maj != cbg.MajArray {
		return fmt.Errorf("cbor input should be of type array")
	}

	if extra != 1 {
		return fmt.Errorf("cbor input had wrong number of fields")
	}

	// t.Indexes ([]lockup.LockupIndex) (slice)

	maj, extra, err = cbg.CborReadHeaderBuf(br, scratch)
	if err != nil {
		return err
	}

	if extra > cbg.MaxLength {
		return fmt.Errorf("t.Indexes: array too large (%d)", extra)
	}

	if maj != cbg.MajArray {
		return fmt.Errorf("expected cbor array")
	}

	if extra > 0 {
		t.Indexes = make([]LockupIndex, extra)
	}

	for i := 0; i < int(extra); i++ {

		maj, val, err := cbg.CborReadHeaderBuf(br, scratch)
		if err != nil {
			return xerrors.Errorf("failed to read uint64 for t.Indexes slice: %w", err)
		}

		if maj != cbg.MajUnsignedInt {
			return xerrors.Errorf("value read for array t.Indexes was not a uint, instead got %d", maj)
		}

		t.Indexes[i] = LockupIndex(val)
	}

	return nil
}

var lengthBufDraft = []byte{130}

func (t *Draft) MarshalCBOR(w io.Writer) error {
	if t == nil {
		_, err := w.Write(cbg.CborNull)
		return err
	}
	if _, err := w.Write(lengthBufDraft); err != nil {
		return err
	}

	scratch := make([]byte, 9)

	// t.DraftGroupID (lockup.DraftGroupIndex) (uint64)

	if err := cbg.WriteMajorTypeHeaderBuf(scratch, w, cbg.MajUnsignedInt, uint64(t.DraftGroupID)); err != nil {
		return err
	}

	// t.LockupCreate (lockup.LockupCreate) (struct)
	if err := t.LockupCreate.MarshalCBOR(w); err != nil {
		return err
	}
	return nil
}

func (t *Draft) UnmarshalCBOR(r io.Reader) error {
	*t = Draft{}

	br := cbg.GetPeeker(r)
	scratch := make([]byte, 8)

	maj, extra, err := cbg.CborReadHeaderBuf(br, scratch)
	if err != nil {
		return err
	}
	if maj != cbg.MajArray {
		return fmt.Errorf("cbor input should be of type array")
	}

	if extra != 2 {
		return fmt.Errorf("cbor input had wrong number of fields")
	}

	// t.DraftGroupID (lockup.DraftGroupIndex) (uint64)

	{

		maj, extra, err = cbg.CborReadHeaderBuf(br, scratch)
		if err != nil {
			return err
		}
		if maj != cbg.MajUnsignedInt {
			return fmt.Errorf("wrong type for uint64 field")
		}
		t.DraftGroupID = DraftGroupIndex(extra)

	}
	// t.LockupCreate (lockup.LockupCreate) (struct)

	{

		if err := t.LockupCreate.UnmarshalCBOR(br); err != nil {
			return xerrors.Errorf("unmarshaling t.LockupCreate: %w", err)
		}

	}
	return nil
}

var lengthBufLockupCreate = []byte{131}

func (t *LockupCreate) MarshalCBOR(w io.Writer) error {
	if t == nil {
		_, err := w.Write(cbg.CborNull)
		return err
	}
	if _, err := w.Write(lengthBufLockupCreate); err != nil {
		return err
	}

	// t.Owner (address.Address) (struct)
	if err := t.Owner.MarshalCBOR(w); err != nil {
		return err
	}

	// t.Schedule (lockup.Schedule) (struct)
	if err := t.Schedule.MarshalCBOR(w); err != nil {
		return err
	}

	// t.Vesting (lockup.VestingConditions) (struct)
	if err := t.Vesting.MarshalCBOR(w); err != nil {
		return err
	}
	return nil
}

func (t *LockupCreate) UnmarshalCBOR(r io.Reader) error {
	*t = LockupCreate{}

	br := cbg.GetPeeker(r)
	scratch := make([]byte, 8)

	maj, extra, err := cbg.CborReadHeaderBuf(br, scratch)
	if err != nil {
		return err
	}
	if maj != cbg.MajArray {
		return fmt.Errorf("cbor input should be of type array")
	}

	if extra != 3 {
		return fmt.Errorf("cbor input had wrong number of fields")
	}

	// t.Owner (address.Address) (struct)

	{

		if err := t.Owner.UnmarshalCBOR(br); err != nil {
			return xerrors.Errorf("unmarshaling t.Owner: %w", err)
		}

	}
	// t.Schedule (lockup.Schedule) (struct)

	{

		if err := t.Schedule.UnmarshalCBOR(br); err != nil {
			return xerrors.Errorf("unmarshaling t.Schedule: %w", err)
		}

	}
	// t.Vesting (lockup.VestingConditions) (struct)

	{

		b, err := br.ReadByte()
		if err != nil {
			return err
		}
		if b != cbg.CborNull[0] {
			if err := br.UnreadByte(); err != nil {
				return err
			}
			t.Vesting = new(VestingConditions)
			if err := t.Vesting.UnmarshalCBOR(br); err != nil {
				return xerrors.Errorf("unmarshaling t.Vesting pointer: %w", err)
			}
		}

	}
	return nil
}

var lengthBufDraftGroup = []byte{132}

func (t *DraftGroup) MarshalCBOR(w io.Writer) error {
	if t == nil {
		_, err := w.Write(cbg.CborNull)
		return err
	}
	if _, err := w.Write(lengthBufDraftGroup); err != nil {
		return err
	}

	scratch := make([]byte, 9)

	// t.State (lockup.DraftGroupState) (uint64)

	if err := cbg.WriteMajorTypeHeaderBuf(scratch, w, cbg.MajUnsignedInt, uint64(t.State)); err != nil {
		return err
	}

	// t.TotalAmount (big.Int) (struct)
	if err := t.TotalAmount.MarshalCBOR(w); err != nil {
		return err
	}

	// t.Funder (address.Address) (struct)
	if err := t.Funder.MarshalCBOR(w); err != nil {
		return err
	}

	// t.DraftIndexes ([]lockup.DraftIndex) (slice)
	if len(t.DraftIndexes) > cbg.MaxLength {
		return xerrors.Errorf("Slice value in field t.DraftIndexes was too long")
	}

	if err := cbg.WriteMajorTypeHeaderBuf(scratch, w, cbg.MajArray, uint64(len(t.DraftIndexes))); err != nil {
		return err
	}
	for _, v := range t.DraftIndexes {
		if err := cbg.CborWriteHeader(w, cbg.MajUnsignedInt, uint64(v)); err != nil {
			return err
		}
	}
	return nil
}

func (t *DraftGroup) UnmarshalCBOR(r io.Reader) error {
	*t = DraftGroup{}

	br := cbg.GetPeeker(r)
	scratch := make([]byte, 8)

	maj, extra, err := cbg.CborReadHeaderBuf(br, scratch)
	if err != nil {
		return err
	}
	if maj != cbg.MajArray {
		return fmt.Errorf("cbor input should be of type array")
	}

	if extra != 4 {
		return fmt.Errorf("cbor input had wrong number of fields")
	}

	// t.State (lockup.DraftGroupState) (uint64)

	{

		maj, extra, err = cbg.CborReadHeaderBuf(br, scratch)
		if err != nil {
			return err
		}
		if maj != cbg.MajUnsignedInt {
			return fmt.Errorf("wrong type for uint64 field")
		}
		t.State = DraftGroupState(extra)

	}
	// t.TotalAmount (big.Int) (struct)

	{

		if err := t.TotalAmount.UnmarshalCBOR(br); err != nil {
			return xerrors.Errorf("unmarshaling t.TotalAmount: %w", err)
		}

	}
	// t.Funder (address.Address) (struct)

	{

		b, err := br.ReadByte()
		if err != nil {
			return err
		}
		if b != cbg.CborNull[0] {
			if err := br.UnreadByte(); err != nil {
				return err
			}
			t.Funder = new(address.Address)
			if err := t.Funder.UnmarshalCBOR(br); err != nil {
				return xerrors.Errorf("unmarshaling t.Funder pointer: %w", err)
			}
		}

	}
	// t.DraftIndexes ([]lockup.DraftIndex) (slice)

	maj, extra, err = cbg.CborReadHeaderBuf(br, scratch)
	if err != nil {
		return err
	}

	if extra > cbg.MaxLength {
		return fmt.Errorf("t.DraftIndexes: array too large (%d)", extra)
	}

	if maj != cbg.MajArray {
		return fmt.Errorf("expected cbor array")
	}

	if extra > 0 {
		t.DraftIndexes = make([]DraftIndex, extra)
	}

	for i := 0; i < int(extra); i++ {

		maj, val, err := cbg.CborReadHeaderBuf(br, scratch)
		if err != nil {
			return xerrors.Errorf("failed to read uint64 for t.DraftIndexes slice: %w", err)
		}

		if maj != cbg.MajUnsignedInt {
			return xerrors.Errorf("value read for array t.DraftIndexes was not a uint, instead got %d", maj)
		}

		t.DraftIndexes[i] = DraftIndex(val)
	}

	return nil
}

var lengthBufConstructorParams = []byte{131}

func (t *ConstructorParams) MarshalCBOR(w io.Writer) error {
	if t == nil {
		_, err := w.Write(cbg.CborNull)
		return err
	}
	if _, err := w.Write(lengthBufConstructorParams); err != nil {
		return err
	}

	scratch := make([]byte, 9)

	// t.TokenAccount (address.Address) (struct)
	if err := t.TokenAccount.MarshalCBOR(w); err != nil {
		return err
	}

	// t.DepositWhitelist ([]address.Address) (slice)
	if len(t.DepositWhitelist) > cbg.MaxLength {
		return xerrors.Errorf("Slice value in field t.DepositWhitelist was too long")
	}

	if err := cbg.WriteMajorTypeHeaderBuf(scratch, w, cbg.MajArray, uint64(len(t.DepositWhitelist))); err != nil {
		return err
	}
	for _, v := range t.DepositWhitelist {
		if err := v.MarshalCBOR(w); err != nil {
			return err
		}
	}

	// t.DraftOperatorsWhitelist ([]address.Address) (slice)
	if len(t.DraftOperatorsWhitelist) > cbg.MaxLength {
		return xerrors.Errorf("Slice value in field t.DraftOperatorsWhitelist was too long")
	}

	if err := cbg.WriteMajorTypeHeaderBuf(scratch, w, cbg.MajArray, uint64(len(t.DraftOperatorsWhitelist))); err != nil {
		return err
	}
	for _, v := range t.DraftOperatorsWhitelist {
		if err := v.MarshalCBOR(w); err != nil {
			return err
		}
	}
	return nil
}

func (t *ConstructorParams) UnmarshalCBOR(r io.Reader) error {
	*t = ConstructorParams{}

	br := cbg.GetPeeker(r)
	scratch := make([]byte, 8)

	maj, extra, err := cbg.CborReadHeaderBuf(br, scratch)
	if err != nil {
		return err
	}
	if maj != cbg.MajArray {
		return fmt.Errorf("cbor input should be of type array")
	}

	if extra != 3 {
		return fmt.Errorf("cbor input had wrong number of fields")
	}

	// t.TokenAccount (address.Address) (struct)

	{

		if err := t.TokenAccount.UnmarshalCBOR(br); err != nil {
			return xerrors.Errorf("unmarshaling t.TokenAccount: %w", err)
		}

	}
	// t.DepositWhitelist ([]address.Address) (slice)

	maj, extra, err = cbg.CborReadHeaderBuf(br, scratch)
	if err != nil {
		return err
	}

	if extra > cbg.MaxLength {
		return fmt.Errorf("t.DepositWhitelist: array too large (%d)", extra)
	}

	if maj != cbg.MajArray {
		return fmt.Errorf("expected cbor array")
	}

	if extra > 0 {
		t.DepositWhitelist = make([]address.Address, extra)
	}

	for i := 0; i < int(extra); i++ {

		var v address.Address
		if err := v.UnmarshalCBOR(br); err != nil {
			return err
		}

		t.DepositWhitelist[i] = v
	}

	// t.DraftOperatorsWhitelist ([]address.Address) (slice)

	maj, extra, err = cbg.CborReadHeaderBuf(br, scratch)
	if err != nil {
		return err
	}

	if extra > cbg.MaxLength {
		return fmt.Errorf("t.DraftOperatorsWhitelist: array too large (%d)", extra)
	}

	if maj != cbg.MajArray {
		return fmt.Errorf("expected cbor array")
	}

	if extra > 0 {
		t.DraftOperatorsWhitelist = make([]address.Address, extra)
	}

	for i := 0; i < int(extra); i++ {

		var v address.Address
		if err := v.UnmarshalCBOR(br); err != nil {
			return err
		}

		t.DraftOperatorsWhitelist[i] = v
	}

	return nil
}

var lengthBufClaimParams = []byte{129}

func (t *ClaimParams) MarshalCBOR(w io.Writer) error {
	if t == nil {
		_, err := w.Write(cbg.CborNull)
		return err
	}
	if _, err := w.Write(lengthBufClaimParams); err != nil {
		return err
	}

	scratch := make([]byte, 9)

	// t.Claims ([]lockup.LockupClaim) (slice)
	if len(t.Claims) > cbg.MaxLength {
		return xerrors.Errorf("Slice value in field t.Claims was too long")
	}

	if err := cbg.WriteMajorTypeHeaderBuf(scratch, w, cbg.MajArray, uint64(len(t.Claims))); err != nil {
		return err
	}
	for _, v := range t.Claims {
		if err := v.MarshalCBOR(w); err != nil {
			return err
		}
	}
	return nil
}

func (t *ClaimParams) UnmarshalCBOR(r io.Reader) error {
	*t = ClaimParams{}

	br := cbg.GetPeeker(r)
	scratch := make([]byte, 8)

	maj, extra, err := cbg.CborReadHeaderBuf(br, scratch)
	if err != nil {
		return err
	}
	if maj != cbg.MajArray {
		return fmt.Errorf("cbor input should be of type array")
	}

	if extra != 1 {
		return fmt.Errorf("cbor input had wrong number of fields")
	}

	// t.Claims ([]lockup.LockupClaim) (slice)

	maj, extra, err = cbg.CborReadHeaderBuf(br, scratch)
	if err != nil {
		return err
	}

	if extra > cbg.MaxLength {
		return fmt.Errorf("t.Claims: array too large (%d)", extra)
	}

	if maj != cbg.MajArray {
		return fmt.Errorf("expected cbor array")
	}

	if extra > 0 {
		t.Claims = make([]LockupClaim, extra)
	}

	for i := 0; i < int(extra); i++ {

		var v LockupClaim
		if err := v.UnmarshalCBOR(br); err != nil {
			return err
		}

		t.Claims[i] = v
	}

	return nil
}

var lengthBufLockupClaim = []byte{130}

func (t *LockupClaim) MarshalCBOR(w io.Writer) error {
	if t == nil {
		_, err := w.Write(cbg.CborNull)
		return err
	}
	if _, err := w.Write(lengthBufLockupClaim); err != nil {
		return err
	}

	scratch := make([]byte, 9)

	// t.ID (lockup.LockupIndex) (uint64)

	if err := cbg.WriteMajorTypeHeaderBuf(scratch, w, cbg.MajUnsignedInt, uint64(t.ID)); err != nil {
		return err
	}

	// t.Amount (big.Int) (struct)
	if err := t.Amount.MarshalCBOR(w); err != nil {
		return err
	}
	return nil
}

func (t *LockupClaim) UnmarshalCBOR(r io.Reader) error {
	*t = LockupClaim{}

	br := cbg.GetPeeker(r)
	scratch := make([]byte, 8)

	maj, extra, err := cbg.CborReadHeaderBuf(br, scratch)
	if err != nil {
		return err
	}
	if maj != cbg.MajArray {
		return fmt.Errorf("cbor input should be of type array")
	}

	if extra != 2 {
		return fmt.Errorf("cbor input had wrong number of fields")
	}

	// t.ID (lockup.LockupIndex) (uint64)

	{

		maj, extra, err = cbg.CborReadHeaderBuf(br, scratch)
		if err != nil {
			return err
		}
		if maj != cbg.MajUnsignedInt {
			return fmt.Errorf("wrong type for uint64 field")
		}
		t.ID = LockupIndex(extra)

	}
	// t.Amount (big.Int) (struct)

	{

		if err := t.Amount.UnmarshalCBOR(br); err != nil {
			return xerrors.Errorf("unmarshaling t.Amount: %w", err)
		}

	}
	return nil
}

var lengthBufClaimReturn = []byte{129}

func (t *ClaimReturn) MarshalCBOR(w io.Writer) error {
	if t == nil {
		_, err := w.Write(cbg.CborNull)
		return err
	}
	if _, err := w.Write(lengthBufClaimReturn); err != nil {
		return err
	}

	// t.Total (big.Int) (struct)
	if err := t.Total.MarshalCBOR(w); err != nil {
		return err
	}
	return nil
}

func (t *ClaimReturn) UnmarshalCBOR(r io.Reader) error {
	*t = ClaimReturn{}

	br := cbg.GetPeeker(r)
	scratch := make([]byte, 8)

	maj, extra, err := cbg.CborReadHeaderBuf(br, scratch)
	if err != nil {
		return err
	}
	if maj != cbg.MajArray {
		return fmt.Errorf("cbor input should be of type array")
	}

	if extra != 1 {
		return fmt.Errorf("cbor input had wrong number of fields")
	}

	// t.Total (big.Int) (struct)

	{

		if err := t.Total.UnmarshalCBOR(br); err != nil {
			return xerrors.Errorf("unmarshaling t.Total: %w", err)
		}

	}
	return nil
}

var lengthBufTerminateParams = []byte{130}

func (t *TerminateParams) MarshalCBOR(w io.Writer) error {
	if t == nil {
		_, err := w.Write(cbg.CborNull)
		return err
	}
	if _, err := w.Write(lengthBufTerminateParams); err != nil {
		return err
	}

	scratch := make([]byte, 9)

	// t.ID (lockup.LockupIndex) (uint64)

	if err := cbg.WriteMajorTypeHeaderBuf(scratch, w, cbg.MajUnsignedInt, uint64(t.ID)); err != nil {
		return err
	}

	// t.TerminationTime (abi.TimestampSec) (int64)
	if t.TerminationTime >= 0 {
		if err := cbg.WriteMajorTypeHeaderBuf(scratch, w, cbg.MajUnsignedInt, uint64(t.TerminationTime)); err != nil {
			return err
		}
	} else {
		if err := cbg.WriteMajorTypeHeaderBuf(scratch, w, cbg.MajNegativeInt, uint64(-t.TerminationTime-1)); err != nil {
			return err
		}
	}
	return nil
}

func (t *TerminateParams) UnmarshalCBOR(r io.Reader) error {
	*t = TerminateParams{}

	br := cbg.GetPeeker(r)
	scratch := make([]byte, 8)

	maj, extra, err := cbg.CborReadHeaderBuf(br, scratch)
	if err != nil {
		return err
	}
	if maj != cbg.MajArray {
		return fmt.Errorf("cbor input should be of type array")
	}

	if extra != 2 {
		return fmt.Errorf("cbor input had wrong number of fields")
	}

	// t.ID (lockup.LockupIndex) (uint64)

	{

		maj, extra, err = cbg.CborReadHeaderBuf(br, scratch)
		if err != nil {
			return err
		}
		if maj != cbg.MajUnsignedInt {
			return fmt.Errorf("wrong type for uint64 field")
		}
		t.ID = LockupIndex(extra)

	}
	// t.TerminationTime (abi.TimestampSec) (int64)
	{
		maj, extra, err := cbg.CborReadHeaderBuf(br, scratch)
		var extraI int64
		if err != nil {
			return err
		}
		switch maj {
		case cbg.MajUnsignedInt:
			extraI = int64(extra)
			if extraI < 0 {
				return fmt.Errorf("int64 positive overflow")
			}
		case cbg.MajNegativeInt:
			extraI = int64(extra)
			if extraI < 0 {
				return fmt.Errorf("int64 negative oveflow")
			}
			extraI = -1 - extraI
		default:
			return fmt.Errorf("wrong type for int64 field: %d", maj)
		}

		t.TerminationTime = abi.TimestampSec(extraI)
	}
	return nil
}

var lengthBufTerminateReturn = []byte{129}

func (t *TerminateReturn) MarshalCBOR(w io.Writer) error {
	if t == nil {
		_, err := w.Write(cbg.CborNull)
		return err
	}
	if _, err := w.Write(lengthBufTerminateReturn); err != nil {
		return err
	}

	// t.UnvestedBalance (big.Int) (struct)
	if err := t.UnvestedBalance.MarshalCBOR(w); err != nil {
		return err
	}
	return nil
}

func (t *TerminateReturn) UnmarshalCBOR(r io.Reader) error {
	*t = TerminateReturn{}

	br := cbg.GetPeeker(r)
	scratch := make([]byte, 8)

	maj, extra, err := cbg.CborReadHeaderBuf(br, scratch)
	if err != nil {
		return err
	}
	if maj != cbg.MajArray {
		return fmt.Errorf("cbor input should be of type array")
	}

	if extra != 1 {
		return fmt.Errorf("cbor input had wrong number of fields")
	}

	// t.UnvestedBalance (big.Int) (struct)

	{

		if err := t.UnvestedBalance.UnmarshalCBOR(br); err != nil {
			return xerrors.Errorf("unmarshaling t.UnvestedBalance: %w", err)
		}

	}
	return nil
}

var lengthBufCreateDraftGroupReturn = []byte{129}

func (t *CreateDraftGroupReturn) MarshalCBOR(w io.Writer) error {
	if t == nil {
		_, err := w.Write(cbg.CborNull)
		return err
	}
	if _, err := w.Write(lengthBufCreateDraftGroupReturn); err != nil {
		return err
	}

	scratch := make([]byte, 9)

	// t.ID (lockup.DraftGroupIndex) (uint64)

	if err := cbg.WriteMajorTypeHeaderBuf(scratch, w, cbg.MajUnsignedInt, uint64(t.ID)); err != nil {
		return err
	}

	return nil
}

func (t *CreateDraftGroupReturn) UnmarshalCBOR(r io.Reader) error {
	*t = CreateDraftGroupReturn{}

	br := cbg.GetPeeker(r)
	scratch := make([]byte, 8)

	maj, extra, err := cbg.CborReadHeaderBuf(br, scratch)
	if err != nil {
		return err
	}
	if maj != cbg.MajArray {
		return fmt.Errorf("cbor input should be of type array")
	}

	if extra != 1 {
		return fmt.Errorf("cbor input had wrong number of fields")
	}

	// t.ID (lockup.DraftGroupIndex) (uint64)

	{

		maj, extra, err = cbg.CborReadHeaderBuf(br, scratch)
		if err != nil {
			return err
		}
		if maj != cbg.MajUnsignedInt {
			return fmt.Errorf("wrong type for uint64 field")
		}
		t.ID = DraftGroupIndex(extra)

	}
	return nil
}

var lengthBufCreateDraftsParams = []byte{129}

func (t *CreateDraftsParams) MarshalCBOR(w io.Writer) error {
	if t == nil {
		_, err := w.Write(cbg.CborNull)
		return err
	}
	if _, err := w.Write(lengthBufCreateDraftsParams); err != nil {
		return err
	}

	scratch := make([]byte, 9)

	// t.Drafts ([]lockup.Draft) (slice)
	if len(t.Drafts) > cbg.MaxLength {
		return xerrors.Errorf("Slice value in field t.Drafts was too long")
	}

	if err := cbg.WriteMajorTypeHeaderBuf(scratch, w, cbg.MajArray, uint64(len(t.Drafts))); err != nil {
		return err
	}
	for _, v := range t.Drafts {
		if err := v.MarshalCBOR(w); err != nil {
			return err
		}
	}
	return nil
}

func (t *CreateDraftsParams) UnmarshalCBOR(r io.Reader) error {
	*t = CreateDraftsParams{}

	br := cbg.GetPeeker(r)
	scratch := make([]byte, 8)

	maj, extra, err := cbg.CborReadHeaderBuf(br, scratch)
	if err != nil {
		return err
	}
	if maj != cbg.MajArray {
		return fmt.Errorf("cbor input should be of type array")
	}

	if extra != 1 {
		return fmt.Errorf("cbor input had wrong number of fields")
	}

	// t.Drafts ([]lockup.Draft) (slice)

	maj, extra, err = cbg.CborReadHeaderBuf(br, scratch)
	if err != nil {
		return err
	}

	if extra > cbg.MaxLength {
		return fmt.Errorf("t.Drafts: array too large (%d)", extra)
	}

	if maj != cbg.MajArray {
		return fmt.Errorf("expected cbor array")
	}

	if extra > 0 {
		t.Drafts = make([]Draft, extra)
	}

	for i := 0; i < int(extra); i++ {

		var v Draft
		if err := v.UnmarshalCBOR(br); err != nil {
			return err
		}

		t.Drafts[i] = v
	}

	return nil
}

var lengthBufCreateDraftsReturn = []byte{129}

func (t *CreateDraftsReturn) MarshalCBOR(w io.Writer) error {
	if t == nil {
		_, err := w.Write(cbg.CborNull)
		return err
	}
	if _, err := w.Write(lengthBufCreateDraftsReturn); err != nil {
		return err
	}

	scratch := make([]byte, 9)

	// t.IDs ([]lockup.DraftIndex) (slice)
	if len(t.IDs) > cbg.MaxLength {
		return xerrors.Errorf("Slice value in field t.IDs was too long")
	}

	if err := cbg.WriteMajorTypeHeaderBuf(scratch, w, cbg.MajArray, uint64(len(t.IDs))); err != nil {
		return err
	}
	for _, v := range t.IDs {
		if err := cbg.CborWriteHeader(w, cbg.MajUnsignedInt, uint64(v)); err != nil {
			return err
		}
	}
	return nil
}

func (t *CreateDraftsReturn) UnmarshalCBOR(r io.Reader) error {
	*t = CreateDraftsReturn{}

	br := cbg.GetPeeker(r)
	scratch := make([]byte, 8)

	maj, extra, err := cbg.CborReadHeaderBuf(br, scratch)
	if err != nil {
		return err
	}
	if maj != cbg.MajArray {
		return fmt.Errorf("cbor input should be of type array")
	}

	if extra != 1 {
		return fmt.Errorf("cbor input had wrong number of fields")
	}

	// t.IDs ([]lockup.DraftIndex) (slice)

	maj, extra, err = cbg.CborReadHeaderBuf(br, scratch)
	if err != nil {
		return err
	}

	if extra > cbg.MaxLength {
		return fmt.Errorf("t.IDs: array too large (%d)", extra)
	}

	if maj != cbg.MajArray {
		return fmt.Errorf("expected cbor array")
	}

	if extra > 0 {
		t.IDs = make([]DraftIndex, extra)
	}

	for i := 0; i < int(extra); i++ {

		maj, val, err := cbg.CborReadHeaderBuf(br, scratch)
		if err != nil {
			return xerrors.Errorf("failed to read uint64 for t.IDs slice: %w", err)
		}

		if maj != cbg.MajUnsignedInt {
			return xerrors.Errorf("value read for array t.IDs was not a uint, instead got %d", maj)
		}

		t.IDs[i] = DraftIndex(val)
	}

	return nil
}

var lengthBufDiscardDraftGroupParams = []byte{129}

func (t *DiscardDraftGroupParams) MarshalCBOR(w io.Writer) error {
	if t == nil {
		_, err := w.Write(cbg.CborNull)
		return err
	}
	if _, err := w.Write(lengthBufDiscardDraftGroupParams); err != nil {
		return err
	}

	scratch := make([]byte, 9)

	// t.ID (lockup.DraftGroupIndex) (uint64)

	if err := cbg.WriteMajorTypeHeaderBuf(scratch, w, cbg.MajUnsignedInt, uint64(t.ID)); err != nil {
		return err
	}

	return nil
}

func (t *DiscardDraftGroupParams) UnmarshalCBOR(r io.Reader) error {
	*t = DiscardDraftGroupParams{}

	br := cbg.GetPeeker(r)
	scratch := make([]byte, 8)

	maj, extra, err := cbg.CborReadHeaderBuf(br, scratch)
	if err != nil {
		return err
	}
	if maj != cbg.MajArray {
		return fmt.Errorf("cbor input should be of type array")
	}

	if extra != 1 {
		return fmt.Errorf("cbor input had wrong number of fields")
	}

	// t.ID (lockup.DraftGroupIndex) (uint64)

	{

		maj, extra, err = cbg.CborReadHeaderBuf(br, scratch)
		if err != nil {
			return err
		}
		if maj != cbg.MajUnsignedInt {
			return fmt.Errorf("wrong type for uint64 field")
		}
		t.ID = DraftGroupIndex(extra)

	}
	return nil
}

var lengthBufDeleteDraftsParams = []byte{129}

func (t *DeleteDraftsParams) MarshalCBOR(w io.Writer) error {
	if t == nil {
		_, err := w.Write(cbg.CborNull)
		return err
	}
	if _, err := w.Write(lengthBufDeleteDraftsParams); err != nil {
		return err
	}

	scratch := make([]byte, 9)

	// t.IDs ([]lockup.DraftIndex) (slice)
	if len(t.IDs) > cbg.MaxLength {
		return xerrors.Errorf("Slice value in field t.IDs was too long")
	}

	if err := cbg.WriteMajorTypeHeaderBuf(scratch, w, cbg.MajArray, uint64(len(t.IDs))); err != nil {
		return err
	}
	for _, v := range t.IDs {
		if err := cbg.CborWriteHeader(w, cbg.MajUnsignedInt, uint64(v)); err != nil {
			return err
		}
	}
	return nil
}

func (t *DeleteDraftsParams) UnmarshalCBOR(r io.Reader) error {
	*t = DeleteDraftsParams{}

	br := cbg.GetPeeker(r)
	scratch := make([]byte, 8)

	maj, extra, err := cbg.CborReadHeaderBuf(br, scratch)
	if err != nil {
		return err
	}
	if maj != cbg.MajArray {
		return fmt.Errorf("cbor input should be of type array")
	}

	if extra != 1 {
		return fmt.Errorf("cbor input had wrong number of fields")
	}

	// t.IDs ([]lockup.DraftIndex) (slice)

	maj, extra, err = cbg.CborReadHeaderBuf(br, scratch)
	if err != nil {
		return err
	}

	if extra > cbg.MaxLength {
		return fmt.Errorf("t.IDs: array too large (%d)", extra)
	}

	if maj != cbg.MajArray {
		return fmt.Errorf("expected cbor array")
	}

	if extra > 0 {
		t.IDs = make([]DraftIndex, extra)
	}

	for i := 0; i < int(extra); i++ {

		maj, val, err := cbg.CborReadHeaderBuf(br, scratch)
		if err != nil {
			return xerrors.Errorf("failed to read uint64 for t.IDs slice: %w", err)
		}

		if maj != cbg.MajUnsignedInt {
			return xerrors.Errorf("value read for array t.IDs was not a uint, instead got %d", maj)
		}

		t.IDs[i] = DraftIndex(val)
	}

	return nil
}

var lengthBufWhitelistParams = []byte{129}

func (t *WhitelistParams) MarshalCBOR(w io.Writer) error {
	if t == nil {
		_, err := w.Write(cbg.CborNull)
		return err
	}
	if _, err := w.Write(lengthBufWhitelistParams); err != nil {
		return err
	}

	scratch := make([]byte, 9)

	// t.Accounts ([]address.Address) (slice)
	if len(t.Accounts) > cbg.MaxLength {
		return xerrors.Errorf("Slice value in field t.Accounts was too long")
	}

	if err := cbg.WriteMajorTypeHeaderBuf(scratch, w, cbg.MajArray, uint64(len(t.Accounts))); err != nil {
		return err
	}
	for _, v := range t.Accounts {
		if err := v.MarshalCBOR(w); err != nil {
			return err
		}
	}
	return nil
}

func (t *WhitelistParams) UnmarshalCBOR(r io.Reader) error {
	*t = WhitelistParams{}

	br := cbg.GetPeeker(r)
	scratch := make([]byte, 8)

	maj, extra, err := cbg.CborReadHeaderBuf(br, scratch)
	if err != nil {
		return err
	}
	if maj != cbg.MajArray {
		return fmt.Errorf("cbor input should be of type array")
	}

	if extra != 1 {
		return fmt.Errorf("cbor input had wrong number of fields")
	}

	// t.Accounts ([]address.Address) (slice)

	maj, extra, err = cbg.CborReadHeaderBuf(br, scratch)
	if err != nil {
		return err
	}

	if extra > cbg.MaxLength {
		return fmt.Errorf("t.Accounts: array too large (%d)", extra)
	}

	if maj != cbg.MajArray {
		return fmt.Errorf("expected cbor array")
	}

	if extra > 0 {
		t.Accounts = make([]address.Address, extra)
	}

	for i := 0; i < int(extra); i++ {

		var v address.Address
		if err := v.UnmarshalCBOR(br); err != nil {
			return err
		}

		t.Accounts[i] = v
	}

	return nil
}

var lengthBufOnTokensReceivedParams = []byte{132}

func (t *OnTokensReceivedParams) MarshalCBOR(w io.Writer) error {
	if t == nil {
		_, err := w.Write(cbg.CborNull)
		return err
	}
	if _, err := w.Write(lengthBufOnTokensReceivedParams); err != nil {
		return err
	}

	scratch := make([]byte, 9)

	// t.Sender (address.Address) (struct)
	if err := t.Sender.MarshalCBOR(w); err != nil {
		return err
	}

	// t.Amount (big.Int) (struct)
	if err := t.Amount.MarshalCBOR(w); err != nil {
		return err
	}

	// t.FundGroup (lockup.FundDraftGroupInstruction) (struct)
	if err := t.FundGroup.MarshalCBOR(w); err != nil {
		return err
	}

	// t.Lockups ([]lockup.LockupCreate) (slice)
	if len(t.Lockups) > cbg.MaxLength {
		return xerrors.Errorf("Slice value in field t.Lockups was too long")
	}

	if err := cbg.WriteMajorTypeHeaderBuf(scratch, w, cbg.MajArray, uint64(len(t.Lockups))); err != nil {
		return err
	}
	for _, v := range t.Lockups {
		if err := v.MarshalCBOR(w); err != nil {
			return err
		}
	}
	return nil
}

func (t *OnTokensReceivedParams) UnmarshalCBOR(r io.Reader) error {
	*t = OnTokensReceivedParams{}

	br := cbg.GetPeeker(r)
	scratch := make([]byte, 8)

	maj, extra, err := cbg.CborReadHeaderBuf(br, scratch)
	if err != nil {
		return err
	}
	if maj != cbg.MajArray {
		return fmt.Errorf("cbor input should be of type array")
	}

	if extra != 4 {
		return fmt.Errorf("cbor input had wrong number of fields")
	}

	// t.Sender (address.Address) (struct)

	{

		if err := t.Sender.UnmarshalCBOR(br); err != nil {
			return xerrors.Errorf("unmarshaling t.Sender: %w", err)
		}

	}
	// t.Amount (big.Int) (struct)

	{

		if err := t.Amount.UnmarshalCBOR(br); err != nil {
			return xerrors.Errorf("unmarshaling t.Amount: %w", err)
		}

	}
	// t.FundGroup (lockup.FundDraftGroupInstruction) (struct)

	{

		b, err := br.ReadByte()
		if err != nil {
			return err
		}
		if b != cbg.CborNull[0] {
			if err := br.UnreadByte(); err != nil {
				return err
			}
			t.FundGroup = new(FundDraftGroupInstruction)
			if err := t.FundGroup.UnmarshalCBOR(br); err != nil {
				return xerrors.Errorf("unmarshaling t.FundGroup pointer: %w", err)
			}
		}

	}
	// t.Lockups ([]lockup.LockupCreate) (slice)

	maj, extra, err = cbg.CborReadHeaderBuf(br, scratch)
	if err != nil {
		return err
	}

	if extra > cbg.MaxLength {
		return fmt.Errorf("t.Lockups: array too large (%d)", extra)
	}

	if maj != cbg.MajArray {
		return fmt.Errorf("expected cbor array")
	}

	if extra > 0 {
		t.Lockups = make([]LockupCreate, extra)
	}

	for i := 0; i < int(extra); i++ {

		var v LockupCreate
		if err := v.UnmarshalCBOR(br); err != nil {
			return err
		}

		t.Lockups[i] = v
	}

	return nil
}

var lengthBufFundDraftGroupInstruction = []byte{129}

func (t *FundDraftGroupInstruction) MarshalCBOR(w io.Writer) error {
	if t == nil {
		_, err := w.Write(cbg.CborNull)
		return err
	}
	if _, err := w.Write(lengthBufFundDraftGroupInstruction); err != nil {
		return err
	}

	scratch := make([]byte, 9)

	// t.ID (lockup.DraftGroupIndex) (uint64)

	if err := cbg.WriteMajorTypeHeaderBuf(scratch, w, cbg.MajUnsignedInt, uint64(t.ID)); err != nil {
		return err
	}

	return nil
}

func (t *FundDraftGroupInstruction) UnmarshalCBOR(r io.Reader) error {
	*t = FundDraftGroupInstruction{}

	br := cbg.GetPeeker(r)
	scratch := make([]byte, 8)

	maj, extra, err := cbg.CborReadHeaderBuf(br, scratch)
	if err != nil {
		return err
	}
	if maj != cbg.MajArray {
		return fmt.Errorf("cbor input should be of type array")
	}

	if extra != 1 {
		return fmt.Errorf("cbor input had wrong number of fields")
	}

	// t.ID (lockup.DraftGroupIndex) (uint64)

	{

		maj, extra, err = cbg.CborReadHeaderBuf(br, scratch)
		if err != nil {
			return err
		}
		if maj != cbg.MajUnsignedInt {
			return fmt.Errorf("wrong type for uint64 field")
		}
		t.ID = DraftGroupIndex(extra)

	}
	return nil
}

var lengthBufLockupClaimRecord = []byte{130}

func (t *LockupClaimRecord) MarshalCBOR(w io.Writer) error {
	if t == nil {
		_, err := w.Write(cbg.CborNull)
		return err
	}
	if _, err := w.Write(lengthBufLockupClaimRecord); err != nil {
		return err
	}

	scratch := make([]byte, 9)

	// t.ID (lockup.LockupIndex) (uint64)

	if err := cbg.WriteMajorTypeHeaderBuf(scratch, w, cbg.MajUnsignedInt, uint64(t.ID)); err != nil {
		return err
	}

	// t.Amount (big.Int) (struct)
	if err := t.Amount.MarshalCBOR(w); err != nil {
		return err
	}
	return nil
}

func (t *LockupClaimRecord) UnmarshalCBOR(r io.Reader) error {
	*t = LockupClaimRecord{}

	br := cbg.GetPeeker(r)
	scratch := make([]byte, 8)

	maj, extra, err := cbg.CborReadHeaderBuf(br, scratch)
	if err != nil {
		return err
	}
	if maj != cbg.MajArray {
		return fmt.Errorf("cbor input should be of type array")
	}

	if extra != 2 {
		return fmt.Errorf("cbor input had wrong number of fields")
	}

	// t.ID (lockup.LockupIndex) (uint64)

	{

		maj, extra, err = cbg.CborReadHeaderBuf(br, scratch)
		if err != nil {
			return err
		}
		if maj != cbg.MajUnsignedInt {
			return fmt.Errorf("wrong type for uint64 field")
		}
		t.ID = LockupIndex(extra)

	}
	// t.Amount (big.Int) (struct)

	{

		if err := t.Amount.UnmarshalCBOR(br); err != nil {
			return xerrors.Errorf("unmarshaling t.Amount: %w", err)
		}

	}
	return nil
}

var lengthBufAfterClaimTransferParams = []byte{130}

func (t *AfterClaimTransferParams) MarshalCBOR(w io.Writer) error {
	if t == nil {
		_, err := w.Write(cbg.CborNull)
		return err
	}
	if _, err := w.Write(lengthBufAfterClaimTransferParams); err != nil {
		return err
	}

	scratch := make([]byte, 9)

	// t.Account (address.Address) (struct)
	if err := t.Account.MarshalCBOR(w); err != nil {
		return err
	}

	// t.Claims ([]lockup.LockupClaimRecord) (slice)
	if len(t.Claims) > cbg.MaxLength {
		return xerrors.Errorf("Slice value in field t.Claims was too long")
	}

	if err := cbg.WriteMajorTypeHeaderBuf(scratch, w, cbg.MajArray, uint64(len(t.Claims))); err != nil {
		return err
	}
	for _, v := range t.Claims {
		if err := v.MarshalCBOR(w); err != nil {
			return err
		}
	}
	return nil
}

func (t *AfterClaimTransferParams) UnmarshalCBOR(r io.Reader) error {
	*t = AfterClaimTransferParams{}

	br := cbg.GetPeeker(r)
	scratch := make([]byte, 8)

	maj, extra, err := cbg.CborReadHeaderBuf(br, scratch)
	if err != nil {
		return err
	}
	if maj != cbg.MajArray {
		return fmt.Errorf("cbor input should be of type array")
	}

	if extra != 2 {
		return fmt.Errorf("cbor input had wrong number of fields")
	}

	// t.Account (address.Address) (struct)

	{

		if err := t.Account.UnmarshalCBOR(br); err != nil {
			return xerrors.Errorf("unmarshaling t.Account: %w", err)
		}

	}
	// t.Claims ([]lockup.LockupClaimRecord) (slice)

	maj, extra, err = cbg.CborReadHeaderBuf(br, scratch)
	if err != nil {
		return err
	}

	if extra > cbg.MaxLength {
		return fmt.Errorf("t.Claims: array too large (%d)", extra)
	}

	if maj != cbg.MajArray {
		return fmt.Errorf("expected cbor array")
	}

	if extra > 0 {
		t.Claims = make([]LockupClaimRecord, extra)
	}

	for i := 0; i < int(extra); i++ {

		var v LockupClaimRecord
		if err := v.UnmarshalCBOR(br); err != nil {
			return err
		}

		t.Claims[i] = v
	}

	return nil
}

var lengthBufAfterTerminationTransferParams = []byte{131}

func (t *AfterTerminationTransferParams) MarshalCBOR(w io.Writer) error {
	if t == nil {
		_, err := w.Write(cbg.CborNull)
		return err
	}
	if _, err := w.Write(lengthBufAfterTerminationTransferParams); err != nil {
		return err
	}

	scratch := make([]byte, 9)

	// t.ID (lockup.LockupIndex) (uint64)

	if err := cbg.WriteMajorTypeHeaderBuf(scratch, w, cbg.MajUnsignedInt, uint64(t.ID)); err != nil {
		return err
	}

	// t.Beneficiary (address.Address) (struct)
	if err := t.Beneficiary.MarshalCBOR(w); err != nil {
		return err
	}

	// t.Amount (big.Int) (struct)
	if err := t.Amount.MarshalCBOR(w); err != nil {
		return err
	}
	return nil
}

func (t *AfterTerminationTransferParams) UnmarshalCBOR(r io.Reader) error {
	*t = AfterTerminationTransferParams{}

	br := cbg.GetPeeker(r)
	scratch := make([]byte, 8)

	maj, extra, err := cbg.CborReadHeaderBuf(br, scratch)
	if err != nil {
		return err
	}
	if maj != cbg.MajArray {
		return fmt.Errorf("cbor input should be of type array")
	}

	if extra != 3 {
		return fmt.Errorf("cbor input had wrong number of fields")
	}

	// t.ID (lockup.LockupIndex) (uint64)

	{

		maj, extra, err = cbg.CborReadHeaderBuf(br, scratch)
		if err != nil {
			return err
		}
		if maj != cbg.MajUnsignedInt {
			return fmt.Errorf("wrong type for uint64 field")
		}
		t.ID = LockupIndex(extra)

	}
	// t.Beneficiary (address.Address) (struct)

	{

		if err := t.Beneficiary.UnmarshalCBOR(br); err != nil {
			return xerrors.Errorf("unmarshaling t.Beneficiary: %w", err)
		}

	}
	// t.Amount (big.Int) (struct)

	{

		if err := t.Amount.UnmarshalCBOR(br); err != nil {
			return xerrors.Errorf("unmarshaling t.Amount: %w", err)
		}

	}
	return nil
}

var lengthBufNewEvent = []byte{129}

func (t *NewEvent) MarshalCBOR(w io.Writer) error {
	if t == nil {
		_, err := w.Write(cbg.CborNull)
		return err
	}
	if _, err := w.Write(lengthBufNewEvent); err != nil {
		return err
	}

	// t.TokenAccount (address.Address) (struct)
	if err := t.TokenAccount.MarshalCBOR(w); err != nil {
		return err
	}
	return nil
}

func (t *NewEvent) UnmarshalCBOR(r io.Reader) error {
	*t = NewEvent{}

	br := cbg.GetPeeker(r)
	scratch := make([]byte, 8)

	maj, extra, err := cbg.CborReadHeaderBuf(br, scratch)
	if err != nil {
		return err
	}
	if maj != cbg.MajArray {
		return fmt.Errorf("cbor input should be of type array")
	}

	if extra != 1 {
		return fmt.Errorf("cbor input had wrong number of fields")
	}

	// t.TokenAccount (address.Address) (struct)

	{

		if err := t.TokenAccount.UnmarshalCBOR(br); err != nil {
			return xerrors.Errorf("unmarshaling t.TokenAccount: %w", err)
		}

	}
	return nil
}

var lengthBufCreateLockupEvent = []byte{131}

func (t *CreateLockupEvent) MarshalCBOR(w io.Writer) error {
	if t == nil {
		_, err := w.Write(cbg.CborNull)
		return err
	}
	if _, err := w.Write(lengthBufCreateLockupEvent); err != nil {
		return err
	}

	scratch := make([]byte, 9)

	// t.ID (lockup.LockupIndex) (uint64)

	if err := cbg.WriteMajorTypeHeaderBuf(scratch, w, cbg.MajUnsignedInt, uint64(t.ID)); err != nil {
		return err
	}

	// t.Owner (address.Address) (struct)
	if err := t.Owner.MarshalCBOR(w); err != nil {
		return err
	}

	// t.TotalBalance (big.Int) (struct)
	if err := t.TotalBalance.MarshalCBOR(w); err != nil {
		return err
	}
	return nil
}

func (t *CreateLockupEvent) UnmarshalCBOR(r io.Reader) error {
	*t = CreateLockupEvent{}

	br := cbg.GetPeeker(r)
	scratch := make([]byte, 8)

	maj, extra, err := cbg.CborReadHeaderBuf(br, scratch)
	if err != nil {
		return err
	}
	if maj != cbg.MajArray {
		return fmt.Errorf("cbor input should be of type array")
	}

	if extra != 3 {
		return fmt.Errorf("cbor input had wrong number of fields")
	}

	// t.ID (lockup.LockupIndex) (uint64)

	{

		maj, extra, err = cbg.CborReadHeaderBuf(br, scratch)
		if err != nil {
			return err
		}
		if maj != cbg.MajUnsignedInt {
			return fmt.Errorf("wrong type for uint64 field")
		}
		t.ID = LockupIndex(extra)

	}
	// t.Owner (address.Address) (struct)

	{

		if err := t.Owner.UnmarshalCBOR(br); err != nil {
			return xerrors.Errorf("unmarshaling t.Owner: %w", err)
		}

	}
	// t.TotalBalance (big.Int) (struct)

	{

		if err := t.TotalBalance.UnmarshalCBOR(br); err != nil {
			return xerrors.Errorf("unmarshaling t.TotalBalance: %w", err)
		}

	}
	return nil
}

var lengthBufClaimLockupEvent = []byte{130}

func (t *ClaimLockupEvent) MarshalCBOR(w io.Writer) error {
	if t == nil {
		_, err := w.Write(cbg.CborNull)
		return err
	}
	if _, err := w.Write(lengthBufClaimLockupEvent); err != nil {
		return err
	}

	scratch := make([]byte, 9)

	// t.ID (lockup.LockupIndex) (uint64)

	if err := cbg.WriteMajorTypeHeaderBuf(scratch, w, cbg.MajUnsignedInt, uint64(t.ID)); err != nil {
		return err
	}

	// t.Amount (big.Int) (struct)
	if err := t.Amount.MarshalCBOR(w); err != nil {
		return err
	}
	return nil
}

func (t *ClaimLockupEvent) UnmarshalCBOR(r io.Reader) error {
	*t = ClaimLockupEvent{}

	br := cbg.GetPeeker(r)
	scratch := make([]byte, 8)

	maj, extra, err := cbg.CborReadHeaderBuf(br, scratch)
	if err != nil {
		return err
	}
	if maj != cbg.MajArray {
		return fmt.Errorf("cbor input should be of type array")
	}

	if extra != 2 {
		return fmt.Errorf("cbor input had wrong number of fields")
	}

	// t.ID (lockup.LockupIndex) (uint64)

	{

		maj, extra, err = cbg.CborReadHeaderBuf(br, scratch)
		if err != nil {
			return err
		}
		if maj != cbg.MajUnsignedInt {
			return fmt.Errorf("wrong type for uint64 field")
		}
		t.ID = LockupIndex(extra)

	}
	// t.Amount (big.Int) (struct)

	{

		if err := t.Amount.UnmarshalCBOR(br); err != nil {
			return xerrors.Errorf("unmarshaling t.Amount: %w", err)
		}

	}
	return nil
}

var lengthBufTerminateLockupEvent = []byte{131}

func (t *TerminateLockupEvent) MarshalCBOR(w io.Writer) error {
	if t == nil {
		_, err := w.Write(cbg.CborNull)
		return err
	}
	if _, err := w.Write(lengthBufTerminateLockupEvent); err != nil {
		return err
	}

	scratch := make([]byte, 9)

	// t.ID (lockup.LockupIndex) (uint64)

	if err := cbg.WriteMajorTypeHeaderBuf(scratch, w, cbg.MajUnsignedInt, uint64(t.ID)); err != nil {
		return err
	}

	// t.TerminationTime (abi.TimestampSec) (int64)
	if t.TerminationTime >= 0 {
		if err := cbg.WriteMajorTypeHeaderBuf(scratch, w, cbg.MajUnsignedInt, uint64(t.TerminationTime)); err != nil {
			return err
		}
	} else {
		if err := cbg.WriteMajorTypeHeaderBuf(scratch, w, cbg.MajNegativeInt, uint64(-t.TerminationTime-1)); err != nil {
			return err
		}
	}

	// t.UnvestedBalance (big.Int) (struct)
	if err := t.UnvestedBalance.MarshalCBOR(w); err != nil {
		return err
	}
	return nil
}

func (t *TerminateLockupEvent) UnmarshalCBOR(r io.Reader) error {
	*t = TerminateLockupEvent{}

	br := cbg.GetPeeker(r)
	scratch := make([]byte, 8)

	maj, extra, err := cbg.CborReadHeaderBuf(br, scratch)
	if err != nil {
		return err
	}
	if maj != cbg.MajArray {
		return fmt.Errorf("cbor input should be of type array")
	}

	if extra != 3 {
		return fmt.Errorf("cbor input had wrong number of fields")
	}

	// t.ID (lockup.LockupIndex) (uint64)

	{

		maj, extra, err = cbg.CborReadHeaderBuf(br, scratch)
		if err != nil {
			return err
		}
		if maj != cbg.MajUnsignedInt {
			return fmt.Errorf("wrong type for uint64 field")
		}
		t.ID = LockupIndex(extra)

	}
	// t.TerminationTime (abi.TimestampSec) (int64)
	{
		maj, extra, err := cbg.CborReadHeaderBuf(br, scratch)
		var extraI int64
		if err != nil {
			return err
		}
		switch maj {
		case cbg.MajUnsignedInt:
			extraI = int64(extra)
			if extraI < 0 {
				return fmt.Errorf("int64 positive overflow")
			}
		case cbg.MajNegativeInt:
			extraI = int64(extra)
			if extraI < 0 {
				return fmt.Errorf("int64 negative oveflow")
			}
			extraI = -1 - extraI
		default:
			return fmt.Errorf("wrong type for int64 field: %d", maj)
		}

		t.TerminationTime = abi.TimestampSec(extraI)
	}
	// t.UnvestedBalance (big.Int) (struct)

	{

		if err := t.UnvestedBalance.UnmarshalCBOR(br); err != nil {
			return xerrors.Errorf("unmarshaling t.UnvestedBalance: %w", err)
		}

	}
	return nil
}

var lengthBufCreateDraftGroupEvent = []byte{129}

func (t *CreateDraftGroupEvent) MarshalCBOR(w io.Writer) error {
	if t == nil {
		_, err := w.Write(cbg.CborNull)
		return err
	}
	if _, err := w.Write(lengthBufCreateDraftGroupEvent); err != nil {
		return err
	}

	scratch := make([]byte, 9)

	// t.ID (lockup.DraftGroupIndex) (uint64)

	if err := cbg.WriteMajorTypeHeaderBuf(scratch, w, cbg.MajUnsignedInt, uint64(t.ID)); err != nil {
		return err
	}

	return nil
}

func (t *CreateDraftGroupEvent) UnmarshalCBOR(r io.Reader) error {
	*t = CreateDraftGroupEvent{}

	br := cbg.GetPeeker(r)
	scratch := make([]byte, 8)

	maj, extra, err := cbg.CborReadHeaderBuf(br, scratch)
	if err != nil {
		return err
	}
	if maj != cbg.MajArray {
		return fmt.Errorf("cbor input should be of type array")
	}

	if extra != 1 {
		return fmt.Errorf("cbor input had wrong number of fields")
	}

	// t.ID (lockup.DraftGroupIndex) (uint64)

	{

		maj, extra, err = cbg.CborReadHeaderBuf(br, scratch)
		if err != nil {
			return err
		}
		if maj != cbg.MajUnsignedInt {
			return fmt.Errorf("wrong type for uint64 field")
		}
		t.ID = DraftGroupIndex(extra)

	}
	return nil
}

var lengthBufFundDraftGroupEvent = []byte{131}

func (t *FundDraftGroupEvent) MarshalCBOR(w io.Writer) error {
	if t == nil {
		_, err := w.Write(cbg.CborNull)
		return err
	}
	if _, err := w.Write(lengthBufFundDraftGroupEvent); err != nil {
		return err
	}

	scratch := make([]byte, 9)

	// t.ID (lockup.DraftGroupIndex) (uint64)

	if err := cbg.WriteMajorTypeHeaderBuf(scratch, w, cbg.MajUnsignedInt, uint64(t.ID)); err != nil {
		return err
	}

	// t.Funder (address.Address) (struct)
	if err := t.Funder.MarshalCBOR(w); err != nil {
		return err
	}

	// t.Amount (big.Int) (struct)
	if err := t.Amount.MarshalCBOR(w); err != nil {
		return err
	}
	return nil
}

func (t *FundDraftGroupEvent) UnmarshalCBOR(r io.Reader) error {
	*t = FundDraftGroupEvent{}

	br := cbg.GetPeeker(r)
	scratch := make([]byte, 8)

	maj, extra, err := cbg.CborReadHeaderBuf(br, scratch)
	if err != nil {
		return err
	}
	if maj != cbg.MajArray {
		return fmt.Errorf("cbor input should be of type array")
	}

	if extra != 3 {
		return fmt.Errorf("cbor input had wrong number of fields")
	}

	// t.ID (lockup.DraftGroupIndex) (uint64)

	{

		maj, extra, err = cbg.CborReadHeaderBuf(br, scratch)
		if err != nil {
			return err
		}
		if maj != cbg.MajUnsignedInt {
			return fmt.Errorf("wrong type for uint64 field")
		}
		t.ID = DraftGroupIndex(extra)

	}
	// t.Funder (address.Address) (struct)

	{

		if err := t.Funder.UnmarshalCBOR(br); err != nil {
			return xerrors.Errorf("unmarshaling t.Funder: %w", err)
		}

	}
	// t.Amount (big.Int) (struct)

	{

		if err := t.Amount.UnmarshalCBOR(br); err != nil {
			return xerrors.Errorf("unmarshaling t.Amount: %w", err)
		}

	}
	return nil
}

var lengthBufDiscardDraftGroupEvent = []byte{129}

func (t *DiscardDraftGroupEvent) MarshalCBOR(w io.Writer) error {
	if t == nil {
		_, err := w.Write(cbg.CborNull)
		return err
	}
	if _, err := w.Write(lengthBufDiscardDraftGroupEvent); err != nil {
		return err
	}

	scratch := make([]byte, 9)

	// t.ID (lockup.DraftGroupIndex) (uint64)

	if err := cbg.WriteMajorTypeHeaderBuf(scratch, w, cbg.MajUnsignedInt, uint64(t.ID)); err != nil {
		return err
	}

	return nil
}

func (t *DiscardDraftGroupEvent) UnmarshalCBOR(r io.Reader) error {
	*t = DiscardDraftGroupEvent{}

	br := cbg.GetPeeker(r)
	scratch := make([]byte, 8)

	maj, extra, err := cbg.CborReadHeaderBuf(br, scratch)
	if err != nil {
		return err
	}
	if maj != cbg.MajArray {
		return fmt.Errorf("cbor input should be of type array")
	}

	if extra != 1 {
		return fmt.Errorf("cbor input had wrong number of fields")
	}

	// t.ID (lockup.DraftGroupIndex) (uint64)

	{

		maj, extra, err = cbg.CborReadHeaderBuf(br, scratch)
		if err != nil {
			return err
		}
		if maj != cbg.MajUnsignedInt {
			return fmt.Errorf("wrong type for uint64 field")
		}
		t.ID = DraftGroupIndex(extra)

	}
	return nil
}

var lengthBufCreateDraftEvent = []byte{132}

func (t *CreateDraftEvent) MarshalCBOR(w io.Writer) error {
	if t == nil {
		_, err := w.Write(cbg.CborNull)
		return err
	}
	if _, err := w.Write(lengthBufCreateDraftEvent); err != nil {
		return err
	}

	scratch := make([]byte, 9)

	// t.ID (lockup.DraftIndex) (uint64)

	if err := cbg.WriteMajorTypeHeaderBuf(scratch, w, cbg.MajUnsignedInt, uint64(t.ID)); err != nil {
		return err
	}

	// t.DraftGroupID (lockup.DraftGroupIndex) (uint64)

	if err := cbg.WriteMajorTypeHeaderBuf(scratch, w, cbg.MajUnsignedInt, uint64(t.DraftGroupID)); err != nil {
		return err
	}

	// t.Owner (address.Address) (struct)
	if err := t.Owner.MarshalCBOR(w); err != nil {
		return err
	}

	// t.TotalBalance (big.Int) (struct)
	if err := t.TotalBalance.MarshalCBOR(w); err != nil {
		return err
	}
	return nil
}

func (t *CreateDraftEvent) UnmarshalCBOR(r io.Reader) error {
	*t = CreateDraftEvent{}

	br := cbg.GetPeeker(r)
	scratch := make([]byte, 8)

	maj, extra, err := cbg.CborReadHeaderBuf(br, scratch)
	if err != nil {
		return err
	}
	if maj != cbg.MajArray {
		return fmt.Errorf("cbor input should be of type array")
	}

	if extra != 4 {
		return fmt.Errorf("cbor input had wrong number of fields")
	}

	// t.ID (lockup.DraftIndex) (uint64)

	{

		maj, extra, err = cbg.CborReadHeaderBuf(br, scratch)
		if err != nil {
			return err
		}
		if maj != cbg.MajUnsignedInt {
			return fmt.Errorf("wrong type for uint64 field")
		}
		t.ID = DraftIndex(extra)

	}
	// t.DraftGroupID (lockup.DraftGroupIndex) (uint64)

	{

		maj, extra, err = cbg.CborReadHeaderBuf(br, scratch)
		if err != nil {
			return err
		}
		if maj != cbg.MajUnsignedInt {
			return fmt.Errorf("wrong type for uint64 field")
		}
		t.DraftGroupID = DraftGroupIndex(extra)

	}
	// t.Owner (address.Address) (struct)

	{

		if err := t.Owner.UnmarshalCBOR(br); err != nil {
			return xerrors.Errorf("unmarshaling t.Owner: %w", err)
		}

	}
	// t.TotalBalance (big.Int) (struct)

	{

		if err := t.TotalBalance.UnmarshalCBOR(br); err != nil {
			return xerrors.Errorf("unmarshaling t.TotalBalance: %w", err)
		}

	}
	return nil
}

var lengthBufDeleteDraftEvent = []byte{129}

func (t *DeleteDraftEvent) MarshalCBOR(w io.Writer) error {
	if t == nil {
		_, err := w.Write(cbg.CborNull)
		return err
	}
	if _, err := w.Write(lengthBufDeleteDraftEvent); err != nil {
		return err
	}

	scratch := make([]byte, 9)

	// t.ID (lockup.DraftIndex) (uint64)

	if err := cbg.WriteMajorTypeHeaderBuf(scratch, w, cbg.MajUnsignedInt, uint64(t.ID)); err != nil {
		return err
	}

	return nil
}

func (t *DeleteDraftEvent) UnmarshalCBOR(r io.Reader) error {
	*t = DeleteDraftEvent{}

	br := cbg.GetPeeker(r)
	scratch := make([]byte, 8)

	maj, extra, err := cbg.CborReadHeaderBuf(br, scratch)
	if err != nil {
		return err
	}
	if maj != cbg.MajArray {
		return fmt.Errorf("cbor input should be of type array")
	}

	if extra != 1 {
		return fmt.Errorf("cbor input had wrong number of fields")
	}

	// t.ID (lockup.DraftIndex) (uint64)

	{

		maj, extra, err = cbg.CborReadHeaderBuf(br, scratch)
		if err != nil {
			return err
		}
		if maj != cbg.MajUnsignedInt {
			return fmt.Errorf("wrong type for uint64 field")
		}
		t.ID = DraftIndex(extra)

	}
	return nil
}

var lengthBufWhitelistEvent = []byte{129}

func (t *WhitelistEvent) MarshalCBOR(w io.Writer) error {
	if t == nil {
		_, err := w.Write(cbg.CborNull)
		return err
	}
	if _, err := w.Write(lengthBufWhitelistEvent); err != nil {
		return err
	}

	scratch := make([]byte, 9)

	// t.Accounts ([]address.Address) (slice)
	if len(t.Accounts) > cbg.MaxLength {
		return xerrors.Errorf("Slice value in field t.Accounts was too long")
	}

	if err := cbg.WriteMajorTypeHeaderBuf(scratch, w, cbg.MajArray, uint64(len(t.Accounts))); err != nil {
		return err
	}
	for _, v := range t.Accounts {
		if err := v.MarshalCBOR(w); err != nil {
			return err
		}
	}
	return nil
}

func (t *WhitelistEvent) UnmarshalCBOR(r io.Reader) error {
	*t = WhitelistEvent{}

	br := cbg.GetPeeker(r)
	scratch := make([]byte, 8)

	maj, extra, err := cbg.CborReadHeaderBuf(br, scratch)
	if err != nil {
		return err
	}
	if maj != cbg.MajArray {
		return fmt.Errorf("cbor input should be of type array")
	}

	if extra != 1 {
		return fmt.Errorf("cbor input had wrong number of fields")
	}

	// t.Accounts ([]address.Address) (slice)

	maj, extra, err = cbg.CborReadHeaderBuf(br, scratch)
	if err != nil {
		return err
	}

	if extra > cbg.MaxLength {
		return fmt.Errorf("t.Accounts: array too large (%d)", extra)
	}

	if maj != cbg.MajArray {
		return fmt.Errorf("expected cbor array")
	}

	if extra > 0 {
		t.Accounts = make([]address.Address, extra)
	}

	for i := 0; i < int(extra); i++ {

		var v address.Address
		if err := v.UnmarshalCBOR(br); err != nil {
			return err
		}

		t.Accounts[i] = v
	}

	return nil
}
