// Copyright (c) 2018 The Cerberus developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"math"
	"sort"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// CheckpointData is the checkpoint table of a network together with the
// statistics used to estimate sync progress past the last checkpoint.
//
// The statistics are only a progress heuristic and must never be used for
// consensus decisions.
type CheckpointData struct {
	// Checkpoints ordered by strictly increasing height.  The first entry
	// is always the genesis block.
	Checkpoints []Checkpoint

	// LastCheckpointTime is the timestamp of the last checkpoint block.
	LastCheckpointTime time.Time

	// TxCountAtLastCheckpoint is the total number of transactions between
	// genesis and the last checkpoint.
	TxCountAtLastCheckpoint uint64

	// TxPerDayAfterCheckpoint is the estimated number of transactions per
	// day after the last checkpoint.
	TxPerDayAfterCheckpoint uint64
}

// CheckpointAt returns the checkpointed hash for the given height, if any.
func (c *CheckpointData) CheckpointAt(height int32) (*chainhash.Hash, bool) {
	i := sort.Search(len(c.Checkpoints), func(i int) bool {
		return c.Checkpoints[i].Height >= height
	})
	if i < len(c.Checkpoints) && c.Checkpoints[i].Height == height {
		return c.Checkpoints[i].Hash, true
	}
	return nil, false
}

// TotalCheckpoints returns the number of checkpoints in the table.
func (c *CheckpointData) TotalCheckpoints() int {
	return len(c.Checkpoints)
}

// LatestCheckpoint returns the most recent checkpoint, or nil when the table
// is empty.
func (c *CheckpointData) LatestCheckpoint() *Checkpoint {
	if len(c.Checkpoints) == 0 {
		return nil
	}
	return &c.Checkpoints[len(c.Checkpoints)-1]
}

// EstimatedTransactionsForTime estimates the total number of transactions in
// the chain at time t.  Before the last checkpoint the count is interpolated
// from the genesis time; after it TxPerDayAfterCheckpoint is added for every
// elapsed day.
func (p *Params) EstimatedTransactionsForTime(t time.Time) uint64 {
	c := &p.Checkpoints
	genesisTime := p.GenesisBlock.Header.Timestamp
	switch {
	case !t.After(genesisTime):
		return 0

	case !t.After(c.LastCheckpointTime):
		span := int64(c.LastCheckpointTime.Sub(genesisTime) / time.Second)
		if span <= 0 {
			return c.TxCountAtLastCheckpoint
		}
		elapsed := float64(t.Sub(genesisTime) / time.Second)
		return uint64(float64(c.TxCountAtLastCheckpoint) * elapsed /
			float64(span))
	}

	days := t.Sub(c.LastCheckpointTime).Hours() / 24
	return c.TxCountAtLastCheckpoint +
		uint64(days*float64(c.TxPerDayAfterCheckpoint))
}

// EstimatedHeightForTime estimates the height of the best chain at time t.
//
// Heights up to the last checkpoint are interpolated between the genesis and
// last checkpoint times.  Past the last checkpoint the expected transactions
// are converted to blocks using the average number of transactions per block
// up to the checkpoint.  Networks without transaction statistics fall back to
// the target block spacing.
func (p *Params) EstimatedHeightForTime(t time.Time) int32 {
	c := &p.Checkpoints
	last := c.LatestCheckpoint()
	if last == nil {
		return 0
	}

	genesisTime := p.GenesisBlock.Header.Timestamp
	switch {
	case !t.After(genesisTime):
		return 0

	case !t.After(c.LastCheckpointTime):
		span := int64(c.LastCheckpointTime.Sub(genesisTime) / time.Second)
		if span <= 0 {
			return last.Height
		}
		elapsed := int64(t.Sub(genesisTime) / time.Second)
		return int32(int64(last.Height) * elapsed / span)
	}

	elapsed := t.Sub(c.LastCheckpointTime)
	var extra float64
	if c.TxCountAtLastCheckpoint > 0 && c.TxPerDayAfterCheckpoint > 0 &&
		last.Height > 0 {

		txPerBlock := float64(c.TxCountAtLastCheckpoint) /
			float64(last.Height)
		extraTxns := elapsed.Hours() / 24 *
			float64(c.TxPerDayAfterCheckpoint)
		extra = extraTxns / txPerBlock
	} else {
		extra = float64(elapsed / p.Consensus.PowTargetSpacing)
	}

	height := float64(last.Height) + extra
	if height > math.MaxInt32 {
		return math.MaxInt32
	}
	return int32(height)
}
