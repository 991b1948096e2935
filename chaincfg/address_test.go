// Copyright (c) 2018 The Cerberus developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"bytes"
	"errors"
	"math/big"
	"strings"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/stretchr/testify/require"
)

// testHash160 is the byte sequence 0x00, 0x01, ..., 0x13.
var testHash160 = func() []byte {
	b := make([]byte, hash160Size)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}()

// addressTests holds the encodings of testHash160 and of the genesis payout
// key on every network.
var addressTests = []struct {
	network       Network
	pubKeyHash    string
	scriptHash    string
	genesisPayout string
}{
	{
		network:       MainNet,
		pubKeyHash:    "CGTun4vhDQ21E6xykS3MAwGSiowvr8QjBH",
		scriptHash:    "7SQfxmMEhETVQuHwTQ3XMS11AkrcJwJS18",
		genesisPayout: "CLm1vM3inAZbkEQUV9W8JvfmtxYuvEbpTd",
	},
	{
		network:       TestNet,
		pubKeyHash:    "n4raVBxtrYwbvWgFog27uU8XbBbAai27YK",
		scriptHash:    "93m5uCYPXxJzgdrHZ5NoHw69gmtP8J8HoU",
		genesisPayout: "n99gdU5vRKVCSe7kYPUu3TXrmLC9ijARnL",
	},
	{
		network:       RegTest,
		pubKeyHash:    "yLKU4EJxjbv8peagVRM3UykZDJoaUUrXSn",
		scriptHash:    "8F5svywp7bPF3ma7WEiAKgYaRmNViRSbFa",
		genesisPayout: "yQcaCWRzJNTjLn2BE8opcy9tPTQZaCEnAX",
	},
}

// TestAddressEncoding ensures addresses are encoded with the prefixes of their
// network.
func TestAddressEncoding(t *testing.T) {
	t.Parallel()

	registry, err := NewRegistry()
	require.NoError(t, err)

	for _, test := range addressTests {
		params := registry.ByNetwork(test.network)

		addr, err := params.EncodePubKeyHash(testHash160)
		require.NoError(t, err, params.Name)
		require.Equal(t, test.pubKeyHash, addr, params.Name)

		addr, err = params.EncodeScriptHash(testHash160)
		require.NoError(t, err, params.Name)
		require.Equal(t, test.scriptHash, addr, params.Name)

		addr, err = params.GenesisPayoutAddress()
		require.NoError(t, err, params.Name)
		require.Equal(t, test.genesisPayout, addr, params.Name)

		hash, err := params.DecodePubKeyHash(test.pubKeyHash)
		require.NoError(t, err, params.Name)
		require.Equal(t, testHash160, hash)
	}

	main := registry.ByNetwork(MainNet)
	_, err = main.EncodePubKeyHash(testHash160[:19])
	require.Error(t, err)
	_, err = main.EncodeScriptHash(testHash160[:19])
	require.Error(t, err)
}

// TestDecodePubKeyHashErrors ensures addresses of another network or of the
// wrong shape are rejected.
func TestDecodePubKeyHashErrors(t *testing.T) {
	t.Parallel()

	registry, err := NewRegistry()
	require.NoError(t, err)
	main := registry.ByNetwork(MainNet)
	test := registry.ByNetwork(TestNet)

	// A testnet address on mainnet.
	_, err = main.DecodePubKeyHash(addressTests[1].pubKeyHash)
	require.ErrorIs(t, err, ErrWrongNetwork)

	// A mainnet script hash address is not a pubkey hash address.
	_, err = main.DecodePubKeyHash(addressTests[0].scriptHash)
	require.ErrorIs(t, err, ErrWrongNetwork)

	// A regtest address on testnet.
	_, err = test.DecodePubKeyHash(addressTests[2].genesisPayout)
	require.ErrorIs(t, err, ErrWrongNetwork)

	// Bad checksum.
	addr := addressTests[0].pubKeyHash
	corrupt := addr[:len(addr)-1] + "J"
	_, err = main.DecodePubKeyHash(corrupt)
	require.Error(t, err)
	require.False(t, errors.Is(err, ErrWrongNetwork))

	// Right prefix, short hash.
	short := base58.CheckEncode(testHash160[:10], main.PubKeyHashAddrID)
	_, err = main.DecodePubKeyHash(short)
	require.Error(t, err)
	require.False(t, errors.Is(err, ErrWrongNetwork))
}

// TestWIFEncoding ensures private keys are encoded with the WIF prefix of
// their network.
func TestWIFEncoding(t *testing.T) {
	t.Parallel()

	tests := []struct {
		network      Network
		uncompressed string
		compressed   string
	}{
		{
			network:      MainNet,
			uncompressed: "7qZJdeQHtG8gJnXeT2ZLh1GqoZwbvKHChoUa3mBqwmyNYUPs3d9",
			compressed:   "XBKapk5oXFntVVxGHssjuaCvQYQ18KgWf68gsC2s2mVp5tquNQUf",
		},
		{
			network:      TestNet,
			uncompressed: "93Y6yzZSZaUqAKT35tuK2Yrimg7TKfcj2p2Sq9x7jNDLJus5oF8",
			compressed:   "cWCHQZ4Bpnmqa8RvCc5tZqcTNBdVBPSgWzZP1YWGhzdSDp3DKd87",
		},
		{
			network:      RegTest,
			uncompressed: "91bMom7Qi9oc2VsLBKHK5EFwrZVjfxmrFAxLb1GDjiCwpGS6u85",
			compressed:   "cMceqPhHedrhbcR9eXgzmfWy7kRqLyAxMYwFT6ABDWsiwUp9Nsq9",
		},
	}

	registry, err := NewRegistry()
	require.NoError(t, err)
	privKey, _ := btcec.PrivKeyFromBytes(bytes.Repeat([]byte{0x01}, 32))

	for _, test := range tests {
		params := registry.ByNetwork(test.network).AddressParams()

		wif, err := btcutil.NewWIF(privKey, params, false)
		require.NoError(t, err)
		require.Equal(t, test.uncompressed, wif.String())
		require.True(t, wif.IsForNet(params))

		wif, err = btcutil.NewWIF(privKey, params, true)
		require.NoError(t, err)
		require.Equal(t, test.compressed, wif.String())

		decoded, err := btcutil.DecodeWIF(test.compressed)
		require.NoError(t, err)
		require.True(t, decoded.IsForNet(params))
		require.True(t, decoded.CompressPubKey)
	}
}

// TestExtendedKeys ensures extended keys carry the BIP32 magics of their
// network, and that registered networks can derive public extended keys.
//
// Registration mutates btcd's global network registry, so this test does not
// run in parallel.
func TestExtendedKeys(t *testing.T) {
	tests := []struct {
		network Network
		private string
		public  string
	}{
		{MainNet, "xprv", "xpub"},
		{TestNet, "tprv", "tpub"},
		{RegTest, "vprv", "vpub"},
	}

	registry, err := NewRegistry()
	require.NoError(t, err)
	seed := bytes.Repeat([]byte{0x5a}, hdkeychain.RecommendedSeedLen)

	for _, test := range tests {
		params := registry.ByNetwork(test.network)
		require.NoError(t, RegisterAddressParams(params))
		require.NoError(t, RegisterAddressParams(params))

		master, err := hdkeychain.NewMaster(seed, params.AddressParams())
		require.NoError(t, err, params.Name)
		require.True(t, strings.HasPrefix(master.String(), test.private),
			master.String())
		require.True(t, master.IsForNet(params.AddressParams()))

		public, err := master.Neuter()
		require.NoError(t, err, params.Name)
		require.True(t, strings.HasPrefix(public.String(), test.public),
			public.String())

		parsed, err := hdkeychain.NewKeyFromString(public.String())
		require.NoError(t, err)
		require.False(t, parsed.IsPrivate())
	}
}

// TestAddressParamsIndependent ensures modifying the btcd form of the
// parameters leaves the network parameters untouched.
func TestAddressParamsIndependent(t *testing.T) {
	t.Parallel()

	params, err := MainNetParams()
	require.NoError(t, err)
	genesisHash := *params.GenesisHash
	genesisHeader := params.GenesisBlock.Header
	coinbase := params.GenesisBlock.Transactions[0].TxHash()
	powLimit := new(big.Int).Set(params.Consensus.PowLimit)
	checkpoint := *params.Checkpoints.Checkpoints[0].Hash

	addrParams := params.AddressParams()
	addrParams.GenesisHash[0] ^= 0xff
	addrParams.GenesisBlock.Header.Nonce++
	addrParams.GenesisBlock.Transactions[0].TxIn[0].SignatureScript[0] ^= 0xff
	addrParams.GenesisBlock.Transactions[0].TxOut[0].Value++
	addrParams.PowLimit.SetInt64(1)
	addrParams.Checkpoints[0].Hash[0] ^= 0xff

	require.Equal(t, genesisHash, *params.GenesisHash)
	require.Equal(t, genesisHeader, params.GenesisBlock.Header)
	require.Equal(t, coinbase, params.GenesisBlock.Transactions[0].TxHash())
	require.Zero(t, powLimit.Cmp(params.Consensus.PowLimit))
	require.Equal(t, checkpoint, *params.Checkpoints.Checkpoints[0].Hash)
}
