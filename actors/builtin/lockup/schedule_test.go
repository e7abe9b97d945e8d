package lockup_test

import (
	"testing"

	"github.com/filecoin-project/go-state-types/big"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	abi "github.com/SenderWallet/sender-ft-lockup/actors/abi"
	"github.com/SenderWallet/sender-ft-lockup/actors/builtin/lockup"
)

func checkpoint(t abi.TimestampSec, balance int64) lockup.Checkpoint {
	return lockup.Checkpoint{Timestamp: t, Balance: abi.NewTokenAmount(balance)}
}

func schedule(checkpoints ...lockup.Checkpoint) lockup.Schedule {
	return lockup.Schedule{Checkpoints: checkpoints}
}

func TestScheduleValidate(t *testing.T) {
	t.Run("accepts single checkpoint", func(t *testing.T) {
		s := schedule(checkpoint(100, 1000))
		require.NoError(t, s.Validate())
	})

	t.Run("accepts flat tail", func(t *testing.T) {
		s := schedule(checkpoint(0, 0), checkpoint(100, 1000), checkpoint(200, 1000))
		require.NoError(t, s.Validate())
	})

	t.Run("rejects empty schedule", func(t *testing.T) {
		s := schedule()
		require.Error(t, s.Validate())
	})

	t.Run("rejects non-increasing timestamps", func(t *testing.T) {
		s := schedule(checkpoint(100, 0), checkpoint(100, 1000))
		require.Error(t, s.Validate())

		s = schedule(checkpoint(100, 0), checkpoint(50, 1000))
		require.Error(t, s.Validate())
	})

	t.Run("rejects decreasing balances", func(t *testing.T) {
		s := schedule(checkpoint(0, 500), checkpoint(100, 400))
		require.Error(t, s.Validate())
	})

	t.Run("rejects negative balance", func(t *testing.T) {
		s := schedule(lockup.Checkpoint{Timestamp: 0, Balance: abi.NewTokenAmount(-1)})
		require.Error(t, s.Validate())
	})
}

func TestScheduleUnlockedBalance(t *testing.T) {
	s := schedule(checkpoint(0, 0), checkpoint(100, 1000), checkpoint(200, 1000))

	t.Run("holds at earlier checkpoint between checkpoints", func(t *testing.T) {
		assert.Equal(t, abi.NewTokenAmount(0), s.UnlockedBalance(50))
		assert.Equal(t, abi.NewTokenAmount(1000), s.UnlockedBalance(150))
		assert.Equal(t, abi.NewTokenAmount(1000), s.UnlockedBalance(250))
	})

	t.Run("steps exactly at checkpoint times", func(t *testing.T) {
		assert.Equal(t, abi.NewTokenAmount(0), s.UnlockedBalance(99))
		assert.Equal(t, abi.NewTokenAmount(1000), s.UnlockedBalance(100))
	})

	t.Run("before first checkpoint returns its balance", func(t *testing.T) {
		cliff := schedule(checkpoint(100, 250), checkpoint(200, 1000))
		assert.Equal(t, abi.NewTokenAmount(250), cliff.UnlockedBalance(0))
	})

	t.Run("monotonic and bounded by total", func(t *testing.T) {
		s := schedule(checkpoint(0, 0), checkpoint(10, 100), checkpoint(25, 400), checkpoint(60, 400), checkpoint(90, 900))
		prev := big.Zero()
		for now := abi.TimestampSec(0); now <= 120; now++ {
			u := s.UnlockedBalance(now)
			assert.True(t, u.GreaterThanEqual(prev), "unlocked balance decreased at %v", now)
			assert.True(t, u.LessThanEqual(s.TotalBalance()))
			prev = u
		}
		assert.Equal(t, s.TotalBalance(), prev)
	})
}

func TestScheduleTotalBalance(t *testing.T) {
	s := schedule(checkpoint(0, 0), checkpoint(100, 1000))
	assert.Equal(t, abi.NewTokenAmount(1000), s.TotalBalance())
}

func TestScheduleUnlocksAtLeast(t *testing.T) {
	record := schedule(checkpoint(0, 0), checkpoint(100, 1000))

	t.Run("a schedule covers itself", func(t *testing.T) {
		assert.True(t, record.UnlocksAtLeast(&record))
	})

	t.Run("earlier unlock dominates", func(t *testing.T) {
		faster := schedule(checkpoint(0, 0), checkpoint(50, 1000))
		assert.True(t, faster.UnlocksAtLeast(&record))
		assert.False(t, record.UnlocksAtLeast(&faster))
	})

	t.Run("later unlock does not", func(t *testing.T) {
		slower := schedule(checkpoint(0, 0), checkpoint(200, 1000))
		assert.False(t, slower.UnlocksAtLeast(&record))
	})

	t.Run("compares before either schedule's first checkpoint", func(t *testing.T) {
		headStart := schedule(checkpoint(100, 250), checkpoint(200, 1000))
		tail := schedule(checkpoint(150, 0), checkpoint(200, 1000))
		assert.True(t, headStart.UnlocksAtLeast(&tail))
		assert.False(t, tail.UnlocksAtLeast(&headStart))
	})
}

func TestScheduleTerminate(t *testing.T) {
	t.Run("terminating before any vesting zeroes the schedule", func(t *testing.T) {
		s := schedule(checkpoint(0, 0), checkpoint(100, 1000))
		s.Terminate(big.Zero(), 50)

		assert.Equal(t, abi.NewTokenAmount(0), s.TotalBalance())
		assert.Equal(t, abi.NewTokenAmount(0), s.UnlockedBalance(200))
		require.NoError(t, s.Validate())
	})

	t.Run("earlier behaviour is unchanged", func(t *testing.T) {
		s := schedule(checkpoint(0, 0), checkpoint(100, 1000), checkpoint(200, 2000))
		s.Terminate(abi.NewTokenAmount(1000), 150)

		assert.Equal(t, abi.NewTokenAmount(0), s.UnlockedBalance(50))
		assert.Equal(t, abi.NewTokenAmount(1000), s.UnlockedBalance(100))
		assert.Equal(t, abi.NewTokenAmount(1000), s.UnlockedBalance(150))
		assert.Equal(t, abi.NewTokenAmount(1000), s.UnlockedBalance(1000))
		assert.Equal(t, abi.NewTokenAmount(1000), s.TotalBalance())
		require.NoError(t, s.Validate())
	})

	t.Run("termination at a checkpoint keeps earlier checkpoints only", func(t *testing.T) {
		s := schedule(checkpoint(0, 0), checkpoint(100, 1000), checkpoint(200, 2000))
		s.Terminate(abi.NewTokenAmount(1000), 100)

		assert.Equal(t, []lockup.Checkpoint{checkpoint(0, 0), checkpoint(100, 1000)}, s.Checkpoints)
	})
}
