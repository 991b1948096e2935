// Copyright (c) 2018 The Cerberus developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"encoding/binary"
	"fmt"

	"github.com/btcsuite/btcd/wire"
)

// Network identifies one of the networks the node knows how to run on.  The
// set is closed: every switch over a Network handles all three values.
type Network uint8

const (
	// MainNet is the production network.
	MainNet Network = iota

	// TestNet is the public test network.
	TestNet

	// RegTest is the local regression test network.
	RegTest

	// numNetworks is the number of defined networks.  It must always come
	// last.
	numNetworks
)

// Network identifiers accepted by Registry.Resolve.
const (
	MainNetName = "main"
	TestNetName = "test"
	RegTestName = "regtest"
)

// Magic values identifying each network on the wire.  They are expressed the
// same way btcd expresses wire.MainNet: the four message start bytes read as a
// little endian uint32.
const (
	// MainNetMagic is the message start a2 c4 cb 4a.
	MainNetMagic wire.BitcoinNet = 0x4acbc4a2

	// TestNetMagic is the message start 2a c1 b5 6c.
	TestNetMagic wire.BitcoinNet = 0x6cb5c12a

	// RegTestMagic is the message start c1 2a d1 ab.
	RegTestMagic wire.BitcoinNet = 0xabd12ac1
)

// String returns the identifier of the network as accepted by
// Registry.Resolve.
func (n Network) String() string {
	switch n {
	case MainNet:
		return MainNetName
	case TestNet:
		return TestNetName
	case RegTest:
		return RegTestName
	}
	return fmt.Sprintf("Unknown Network (%d)", uint8(n))
}

// Magic returns the wire magic of the network.
func (n Network) Magic() wire.BitcoinNet {
	switch n {
	case MainNet:
		return MainNetMagic
	case TestNet:
		return TestNetMagic
	case RegTest:
		return RegTestMagic
	}
	return 0
}

// ParseNetwork returns the Network for the given identifier.  Only the exact
// identifiers "main", "test" and "regtest" are recognized.
func ParseNetwork(name string) (Network, error) {
	switch name {
	case MainNetName:
		return MainNet, nil
	case TestNetName:
		return TestNet, nil
	case RegTestName:
		return RegTest, nil
	}
	return 0, &UnknownNetworkError{Name: name}
}

// messageStart returns the four bytes prefixed to every peer-to-peer message
// for the given magic.
func messageStart(net wire.BitcoinNet) [4]byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], uint32(net))
	return b
}
