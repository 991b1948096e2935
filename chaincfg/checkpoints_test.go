// Copyright (c) 2018 The Cerberus developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"math"
	"testing"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/stretchr/testify/require"
)

// TestCheckpointTables ensures every table starts at the genesis block and is
// ordered by strictly increasing height.
func TestCheckpointTables(t *testing.T) {
	t.Parallel()

	wantTotals := map[Network]int{MainNet: 20, TestNet: 1, RegTest: 1}
	for _, params := range allParams(t) {
		c := &params.Checkpoints
		require.Equal(t, wantTotals[params.Network], c.TotalCheckpoints(),
			params.Name)

		require.Equal(t, int32(0), c.Checkpoints[0].Height, params.Name)
		require.Equal(t, params.GenesisHash, c.Checkpoints[0].Hash,
			params.Name)
		for i := 1; i < len(c.Checkpoints); i++ {
			require.Greater(t, c.Checkpoints[i].Height,
				c.Checkpoints[i-1].Height, params.Name)
		}

		require.False(t, c.LastCheckpointTime.Before(
			params.GenesisBlock.Header.Timestamp), params.Name)
	}
}

// TestCheckpointAt exercises lookups of checkpointed and unknown heights.
func TestCheckpointAt(t *testing.T) {
	t.Parallel()

	params, err := MainNetParams()
	require.NoError(t, err)
	c := &params.Checkpoints

	tests := []struct {
		height int32
		hash   string
	}{
		{0, "00000980ea8d83f03493b7a583ce47d91de5c2469e0dc9361e9e125a64142df1"},
		{1300, "00000000004414be721ec3c863352e3c4d295eed2e153dc1c7b4fc690cd6e52c"},
		{75000, "000000005efe835b5ee643928de4143f86bbbc9dd37fb8d265b46cc3e0073236"},
		{89100, "000000000fe70b4cbe2584b15b613de1a18d0ab92433140dac9bc8d84735571e"},
		{-1, ""},
		{1, ""},
		{89099, ""},
		{89101, ""},
	}

	for _, test := range tests {
		hash, ok := c.CheckpointAt(test.height)
		if test.hash == "" {
			require.False(t, ok, "height %d", test.height)
			require.Nil(t, hash)
			continue
		}
		require.True(t, ok, "height %d", test.height)
		require.Equal(t, test.hash, hash.String())
	}

	latest := c.LatestCheckpoint()
	require.NotNil(t, latest)
	require.Equal(t, int32(89100), latest.Height)
	require.Equal(t, time.Unix(1527317112, 0), c.LastCheckpointTime)
	require.Equal(t, uint64(117367), c.TxCountAtLastCheckpoint)
	require.Equal(t, uint64(1000), c.TxPerDayAfterCheckpoint)

	var empty CheckpointData
	require.Nil(t, empty.LatestCheckpoint())
	_, ok := empty.CheckpointAt(0)
	require.False(t, ok)
}

// TestEstimatedHeightForTime checks the sync progress estimate around the
// genesis and last checkpoint times.
func TestEstimatedHeightForTime(t *testing.T) {
	t.Parallel()

	main, err := MainNetParams()
	require.NoError(t, err)
	genesisTime := main.GenesisBlock.Header.Timestamp
	lastTime := main.Checkpoints.LastCheckpointTime

	require.Equal(t, int32(0), main.EstimatedHeightForTime(genesisTime))
	require.Equal(t, int32(0),
		main.EstimatedHeightForTime(genesisTime.Add(-time.Hour)))
	require.Equal(t, int32(89100), main.EstimatedHeightForTime(lastTime))

	// Halfway between genesis and the last checkpoint.
	mid := genesisTime.Add(lastTime.Sub(genesisTime) / 2)
	require.InDelta(t, 44550, main.EstimatedHeightForTime(mid), 1)

	// 117367 transactions over 89100 blocks and 1000 transactions a day
	// add about 759 blocks a day.
	dayAfter := main.EstimatedHeightForTime(lastTime.Add(24 * time.Hour))
	require.InDelta(t, 89100+759, dayAfter, 1)

	// Estimates never decrease with time.
	prev := int32(0)
	for ts := genesisTime.Add(-24 * time.Hour); ts.Before(lastTime.Add(
		30 * 24 * time.Hour)); ts = ts.Add(36 * time.Hour) {

		height := main.EstimatedHeightForTime(ts)
		require.GreaterOrEqual(t, height, prev, "time %v", ts)
		prev = height
	}

	// Without transaction statistics the target spacing is used.
	reg, err := RegNetParams()
	require.NoError(t, err)
	regLast := reg.Checkpoints.LastCheckpointTime
	require.Equal(t, int32(0), reg.EstimatedHeightForTime(regLast))
	require.Equal(t, int32(40),
		reg.EstimatedHeightForTime(regLast.Add(time.Hour)))
}

// TestEstimatedTransactionsForTime checks the transaction count estimate.
func TestEstimatedTransactionsForTime(t *testing.T) {
	t.Parallel()

	params := &Params{
		GenesisBlock: mustMainNet(t).GenesisBlock,
		Checkpoints: CheckpointData{
			Checkpoints: []Checkpoint{
				{0, &chainhash.Hash{}},
			},
			TxCountAtLastCheckpoint: 1000,
			TxPerDayAfterCheckpoint: 100,
		},
	}
	genesisTime := params.GenesisBlock.Header.Timestamp
	params.Checkpoints.LastCheckpointTime = genesisTime.Add(10 * 24 * time.Hour)
	last := params.Checkpoints.LastCheckpointTime

	tests := []struct {
		at   time.Time
		want uint64
	}{
		{genesisTime.Add(-time.Second), 0},
		{genesisTime, 0},
		{genesisTime.Add(5 * 24 * time.Hour), 500},
		{last, 1000},
		{last.Add(24 * time.Hour), 1100},
		{last.Add(10 * 24 * time.Hour), 2000},
	}

	for _, test := range tests {
		require.Equal(t, test.want,
			params.EstimatedTransactionsForTime(test.at), "%v", test.at)
	}

	// Height estimates saturate instead of overflowing.
	params.Checkpoints.Checkpoints = append(params.Checkpoints.Checkpoints,
		Checkpoint{1, &chainhash.Hash{}})
	params.Checkpoints.TxCountAtLastCheckpoint = 1
	params.Checkpoints.TxPerDayAfterCheckpoint = 1e12
	require.Equal(t, int32(math.MaxInt32),
		params.EstimatedHeightForTime(last.Add(24*time.Hour)))
}

func mustMainNet(t *testing.T) *Params {
	t.Helper()

	params, err := MainNetParams()
	require.NoError(t, err)
	return params
}
