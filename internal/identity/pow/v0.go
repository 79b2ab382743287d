package pow

import (
	"crypto/sha512"
	"encoding/binary"
)

// V0GenMemSize is the size in bytes of the scratch buffer the V0
// Frankenhash walks while computing its digest. This is a consensus
// constant: changing it changes every V0 digest.
const V0GenMemSize = 2097152

// v0Threshold is the byte value the digest's first byte must fall below
// for an address-generation attempt to be accepted.
const v0Threshold = 17

// V0Frankenhash computes the memory-hard digest gating type-0 identity
// generation and validation. It is a pure function of publicKey: calling it
// twice with the same input always returns the same 64-byte digest.
//
// The construction seeds a Salsa20/20 stream from SHA-512(publicKey), uses
// it to fill a 2MiB buffer where each 64-byte block is the keystream XORed
// with the previous block, then walks the buffer swapping words between the
// digest and the buffer while re-encrypting the digest at every step.
func V0Frankenhash(publicKey []byte) [64]byte {
	digest := sha512.Sum512(publicKey)

	genmem := make([]byte, V0GenMemSize)

	var key [32]byte
	copy(key[:], digest[0:32])
	var nonce [8]byte
	copy(nonce[:], digest[32:40])
	stream := newSalsaStream(20, &key, &nonce)

	stream.cryptBlock(genmem[0:64], genmem[0:64])
	for i := 64; i < V0GenMemSize; i += 64 {
		copy(genmem[i:i+64], genmem[i-64:i])
		stream.cryptBlock(genmem[i:i+64], genmem[i:i+64])
	}

	const words = V0GenMemSize / 8
	for i := 0; i < words; i += 2 {
		idx1 := binary.BigEndian.Uint64(genmem[i*8:]) % 8
		idx2 := binary.BigEndian.Uint64(genmem[(i+1)*8:]) % uint64(words)

		dOff := idx1 * 8
		gOff := idx2 * 8
		dVal := binary.BigEndian.Uint64(digest[dOff:])
		gVal := binary.BigEndian.Uint64(genmem[gOff:])
		binary.BigEndian.PutUint64(genmem[gOff:], dVal)
		binary.BigEndian.PutUint64(digest[dOff:], gVal)

		stream.cryptBlock(digest[:], digest[:])
	}

	return digest
}

// V0PassesCriterion reports whether digest satisfies the V0 proof-of-work
// threshold.
func V0PassesCriterion(digest [64]byte) bool {
	return digest[0] < v0Threshold
}
