// Copyright (c) 2018 The Cerberus developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package neoscrypt implements the NeoScrypt hash in its default profile, the
// proof of work and block identity hash of Cerberus.
//
// The input is stretched by FastKDF, a key derivation function built on keyed
// BLAKE2s.  The result is mixed twice by a sequential memory-hard function
// with N = 128 and r = 2, once with ChaCha20/20 and once with Salsa20/20.  The
// two mixes are combined and fed back through FastKDF to produce the hash.
package neoscrypt

import (
	"encoding/binary"
	"math/bits"

	"golang.org/x/crypto/blake2s"
)

// Size is the size of a NeoScrypt hash in bytes.
const Size = 32

const (
	// FastKDF buffer geometry.  The PRF is BLAKE2s keyed with 32 bytes of
	// the salt buffer over one 64 byte block of the password buffer.
	kdfBufSize   = 256
	kdfRounds    = 32
	prfInputSize = blake2s.BlockSize
	prfKeySize   = 32
	prfOutSize   = blake2s.Size

	// Mix parameters.
	iterations = 128
	blockWords = 16
	mixBlocks  = 4
	mixWords   = mixBlocks * blockWords
	coreRounds = 20
)

// mixState is the 256 byte state of the memory-hard mix as little endian
// words.
type mixState [mixWords]uint32

// Sum returns the NeoScrypt hash of data.  Block headers are hashed in their
// 80 byte serialization.
func Sum(data []byte) [Size]byte {
	var kdf [kdfBufSize]byte
	fastKDF(data, data, kdf[:])

	var x mixState
	for i := range x {
		x[i] = binary.LittleEndian.Uint32(kdf[i*4:])
	}

	v := new([iterations]mixState)
	z := x
	sMix(&z, v, chachaCore)
	sMix(&x, v, salsaCore)

	for i := range x {
		binary.LittleEndian.PutUint32(kdf[i*4:], x[i]^z[i])
	}

	var out [Size]byte
	fastKDF(data, kdf[:], out[:])
	return out
}

// fill repeats src over dst.
func fill(dst, src []byte) {
	if len(src) == 0 {
		return
	}
	for i := 0; i < len(dst); {
		i += copy(dst[i:], src)
	}
}

func xorBytes(dst, src []byte) {
	for i, v := range src {
		dst[i] ^= v
	}
}

// fastKDF derives len(out) bytes, at most kdfBufSize, from password and
// salt.
func fastKDF(password, salt, out []byte) {
	// Both buffers carry a copy of their head past the end so the PRF can
	// read across the wrap without modular indexing.
	var a [kdfBufSize + prfInputSize]byte
	var b [kdfBufSize + prfKeySize]byte
	fill(a[:kdfBufSize], password)
	copy(a[kdfBufSize:], a[:prfInputSize])
	fill(b[:kdfBufSize], salt)
	copy(b[kdfBufSize:], b[:prfKeySize])

	var bufPtr int
	var sum [prfOutSize]byte
	for i := 0; i < kdfRounds; i++ {
		prf, err := blake2s.New256(b[bufPtr : bufPtr+prfKeySize])
		if err != nil {
			// The key is never longer than blake2s.Size.
			panic(err)
		}
		prf.Write(a[bufPtr : bufPtr+prfInputSize])
		prf.Sum(sum[:0])

		bufPtr = 0
		for _, v := range sum {
			bufPtr += int(v)
		}
		bufPtr &= kdfBufSize - 1

		xorBytes(b[bufPtr:], sum[:])

		// Keep the head and the tail copy of the salt buffer in sync.
		if bufPtr < prfKeySize {
			copy(b[kdfBufSize+bufPtr:], b[bufPtr:prfKeySize])
		}
		if tail := kdfBufSize - bufPtr; tail < prfOutSize {
			copy(b[:], b[kdfBufSize:kdfBufSize+prfOutSize-tail])
		}
	}

	head := kdfBufSize - bufPtr
	if head >= len(out) {
		xorBytes(b[bufPtr:], a[:len(out)])
		copy(out, b[bufPtr:])
		return
	}
	xorBytes(b[bufPtr:kdfBufSize], a[:head])
	xorBytes(b[:], a[head:len(out)])
	copy(out, b[bufPtr:kdfBufSize])
	copy(out[head:], b[:len(out)-head])
}

// sMix runs the sequential memory-hard mix over x using v as scratch space.
func sMix(x *mixState, v *[iterations]mixState, core func(*[blockWords]uint32)) {
	for i := range v {
		v[i] = *x
		blockMix(x, core)
	}
	for i := 0; i < iterations; i++ {
		j := x[(mixBlocks-1)*blockWords] & (iterations - 1)
		for k := range x {
			x[k] ^= v[j][k]
		}
		blockMix(x, core)
	}
}

// blockMix chains the core through the four blocks of x, each block absorbing
// the output of the previous one, and swaps the two middle blocks.
func blockMix(x *mixState, core func(*[blockWords]uint32)) {
	prev := (*[blockWords]uint32)(x[(mixBlocks-1)*blockWords:])
	for i := 0; i < mixBlocks; i++ {
		block := (*[blockWords]uint32)(x[i*blockWords:])
		for k := range block {
			block[k] ^= prev[k]
		}
		core(block)
		prev = block
	}

	var tmp [blockWords]uint32
	copy(tmp[:], x[blockWords:2*blockWords])
	copy(x[blockWords:2*blockWords], x[2*blockWords:3*blockWords])
	copy(x[2*blockWords:3*blockWords], tmp[:])
}

// salsaCore replaces s with the Salsa20/20 core of s.
func salsaCore(s *[blockWords]uint32) {
	x := *s
	quarter := func(a, b, c, d int) {
		x[b] ^= bits.RotateLeft32(x[a]+x[d], 7)
		x[c] ^= bits.RotateLeft32(x[b]+x[a], 9)
		x[d] ^= bits.RotateLeft32(x[c]+x[b], 13)
		x[a] ^= bits.RotateLeft32(x[d]+x[c], 18)
	}
	for i := 0; i < coreRounds; i += 2 {
		quarter(0, 4, 8, 12)
		quarter(5, 9, 13, 1)
		quarter(10, 14, 2, 6)
		quarter(15, 3, 7, 11)

		quarter(0, 1, 2, 3)
		quarter(5, 6, 7, 4)
		quarter(10, 11, 8, 9)
		quarter(15, 12, 13, 14)
	}
	for i := range s {
		s[i] += x[i]
	}
}

// chachaCore replaces s with the ChaCha20/20 core of s.  Unlike the stream
// cipher, the whole block is state; there are no constants.
func chachaCore(s *[blockWords]uint32) {
	x := *s
	quarter := func(a, b, c, d int) {
		x[a] += x[b]
		x[d] = bits.RotateLeft32(x[d]^x[a], 16)
		x[c] += x[d]
		x[b] = bits.RotateLeft32(x[b]^x[c], 12)
		x[a] += x[b]
		x[d] = bits.RotateLeft32(x[d]^x[a], 8)
		x[c] += x[d]
		x[b] = bits.RotateLeft32(x[b]^x[c], 7)
	}
	for i := 0; i < coreRounds; i += 2 {
		quarter(0, 4, 8, 12)
		quarter(1, 5, 9, 13)
		quarter(2, 6, 10, 14)
		quarter(3, 7, 11, 15)

		quarter(0, 5, 10, 15)
		quarter(1, 6, 11, 12)
		quarter(2, 7, 8, 13)
		quarter(3, 4, 9, 14)
	}
	for i := range s {
		s[i] += x[i]
	}
}
