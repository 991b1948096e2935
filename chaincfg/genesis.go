// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2018 The Cerberus developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"bytes"
	"time"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
	"github.com/cerberusng/cerberusd/chaincfg/neoscrypt"
)

const (
	// genesisMessage is embedded in the coinbase of every genesis block as
	// proof of the earliest possible creation time.
	genesisMessage = "Times 4/1/2017 Syrian rebels destroy aircraft in " +
		"attack on Russian air base"

	// genesisExtraNonce and genesisExtraNonceLen are the values pushed
	// ahead of the message in the genesis coinbase.  They carry no meaning.
	genesisExtraNonce    = 486604799
	genesisExtraNonceLen = 4

	// genesisReward is the value of the single genesis output.
	genesisReward = 12 * btcutil.SatoshiPerBitcoin

	// genesisBits is the difficulty of all genesis blocks.
	genesisBits = 0x1e0ffff0
)

// genesisPubKey is the key the genesis output pays to.
var genesisPubKey = hexDecode("045bd7d4a1daaea5c908c88f12c58bb7a2a9987b83730ae18e8fa72350b157e38db84390dc044ade80ed75a57c33311a0346476cfa6b5606e6d52266bb67d13e35")

// genesisOutputScript returns the pay-to-pubkey script of the genesis output.
func genesisOutputScript() ([]byte, error) {
	return txscript.NewScriptBuilder().AddData(genesisPubKey).
		AddOp(txscript.OP_CHECKSIG).Script()
}

// CreateGenesisBlock assembles a block at height zero holding a single
// coinbase transaction.  The coinbase has one input spending the null outpoint
// whose signature script carries message, and one output paying reward to
// pkScript.  The merkle root is computed and stored in the header.
//
// No mining is done: nonce and bits must already satisfy the target.
func CreateGenesisBlock(message string, pkScript []byte, timestamp, nonce,
	bits uint32, version int32, reward btcutil.Amount) (*wire.MsgBlock, error) {

	// The extra nonce length is a one byte data push.  The builder's data
	// helpers would canonicalise it to OP_4, so the push is spelled out.
	sigScript, err := txscript.NewScriptBuilder().
		AddInt64(genesisExtraNonce).
		AddOps([]byte{txscript.OP_DATA_1, genesisExtraNonceLen}).
		AddData([]byte(message)).
		Script()
	if err != nil {
		return nil, err
	}

	coinbase := wire.NewMsgTx(1)
	prevOut := wire.NewOutPoint(&chainhash.Hash{}, wire.MaxPrevOutIndex)
	coinbase.AddTxIn(wire.NewTxIn(prevOut, sigScript, nil))
	coinbase.AddTxOut(wire.NewTxOut(int64(reward), pkScript))

	txns := []*btcutil.Tx{btcutil.NewTx(coinbase)}
	merkles := blockchain.BuildMerkleTreeStore(txns, false)

	block := &wire.MsgBlock{
		Header: wire.BlockHeader{
			Version:    version,
			PrevBlock:  chainhash.Hash{},
			MerkleRoot: *merkles[len(merkles)-1],
			Timestamp:  time.Unix(int64(timestamp), 0),
			Bits:       bits,
			Nonce:      nonce,
		},
	}
	if err := block.AddTransaction(coinbase); err != nil {
		return nil, err
	}
	return block, nil
}

// BlockHash returns the identity hash of a block header, the NeoScrypt hash
// of its 80 byte serialization.  It differs from wire.BlockHeader.BlockHash,
// which is the double sha256 used by bitcoin.
func BlockHash(header *wire.BlockHeader) (chainhash.Hash, error) {
	var buf bytes.Buffer
	buf.Grow(wire.MaxBlockHeaderPayload)
	if err := header.Serialize(&buf); err != nil {
		return chainhash.Hash{}, err
	}
	return chainhash.Hash(neoscrypt.Sum(buf.Bytes())), nil
}

// createNetworkGenesis builds the genesis block of a network from the literals
// shared by all networks and checks it against the expected hash and merkle
// root.  It returns the block and its hash.
func createNetworkGenesis(network Network, timestamp, nonce uint32,
	wantHash, wantMerkleRoot string) (*wire.MsgBlock, *chainhash.Hash, error) {

	pkScript, err := genesisOutputScript()
	if err != nil {
		return nil, nil, err
	}
	block, err := CreateGenesisBlock(genesisMessage, pkScript, timestamp,
		nonce, genesisBits, 1, genesisReward)
	if err != nil {
		return nil, nil, err
	}

	hash, err := BlockHash(&block.Header)
	if err != nil {
		return nil, nil, err
	}
	if want := newHashFromStr(wantHash); hash != *want {
		return nil, nil, &GenesisMismatchError{
			Network: network,
			Field:   "block hash",
			Got:     hash,
			Want:    *want,
		}
	}
	if want := newHashFromStr(wantMerkleRoot); block.Header.MerkleRoot != *want {
		return nil, nil, &GenesisMismatchError{
			Network: network,
			Field:   "merkle root",
			Got:     block.Header.MerkleRoot,
			Want:    *want,
		}
	}

	log.Debugf("Built %s genesis block %v", network, hash)
	return block, &hash, nil
}
