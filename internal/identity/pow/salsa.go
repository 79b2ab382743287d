package pow

import "encoding/binary"

// salsaStream is a minimal Salsa20 keystream generator supporting exactly
// the two access patterns the memory-hard hashes in this package need: a
// continuing stream across many sequential 64-byte blocks, and a single
// freshly-keyed 64-byte block. It is implemented directly because
// golang.org/x/crypto/salsa20 only exposes the full 20-round keystream
// starting at block counter zero and has no 12-round variant, so neither
// access pattern can be built on top of it.
type salsaStream struct {
	rounds  int
	key     [32]byte
	nonce   [8]byte
	counter uint64
}

func newSalsaStream(rounds int, key *[32]byte, nonce *[8]byte) *salsaStream {
	s := &salsaStream{rounds: rounds}
	copy(s.key[:], key[:])
	copy(s.nonce[:], nonce[:])
	return s
}

// cryptBlock XORs exactly 64 bytes of src with the next keystream block and
// writes the result to dst. dst and src may alias.
func (s *salsaStream) cryptBlock(dst, src []byte) {
	var in [16]byte
	copy(in[0:8], s.nonce[:])
	binary.LittleEndian.PutUint64(in[8:16], s.counter)

	var block [64]byte
	salsaCore(s.rounds, &s.key, &in, &block)

	for i := 0; i < 64; i++ {
		dst[i] = src[i] ^ block[i]
	}
	s.counter++
}

// salsaSigma are the "expand 32-byte k" constants for the 256-bit key
// variant of Salsa20.
var salsaSigma = [4]uint32{0x61707865, 0x3320646e, 0x79622d32, 0x6b206574}

// salsaCore computes one Salsa20 block with the given round count (20 or
// 12 in this package). in packs the 8-byte stream nonce followed by the
// 8-byte little-endian block counter, per the standard Salsa20 layout.
func salsaCore(rounds int, key *[32]byte, in *[16]byte, out *[64]byte) {
	j0 := salsaSigma[0]
	j1 := binary.LittleEndian.Uint32(key[0:4])
	j2 := binary.LittleEndian.Uint32(key[4:8])
	j3 := binary.LittleEndian.Uint32(key[8:12])
	j4 := binary.LittleEndian.Uint32(key[12:16])
	j5 := salsaSigma[1]
	j6 := binary.LittleEndian.Uint32(in[0:4])
	j7 := binary.LittleEndian.Uint32(in[4:8])
	j8 := binary.LittleEndian.Uint32(in[8:12])
	j9 := binary.LittleEndian.Uint32(in[12:16])
	j10 := salsaSigma[2]
	j11 := binary.LittleEndian.Uint32(key[16:20])
	j12 := binary.LittleEndian.Uint32(key[20:24])
	j13 := binary.LittleEndian.Uint32(key[24:28])
	j14 := binary.LittleEndian.Uint32(key[28:32])
	j15 := salsaSigma[3]

	x0, x1, x2, x3, x4, x5, x6, x7 := j0, j1, j2, j3, j4, j5, j6, j7
	x8, x9, x10, x11, x12, x13, x14, x15 := j8, j9, j10, j11, j12, j13, j14, j15

	for i := 0; i < rounds; i += 2 {
		// columnround
		x4 ^= rotl32(x0+x12, 7)
		x8 ^= rotl32(x4+x0, 9)
		x12 ^= rotl32(x8+x4, 13)
		x0 ^= rotl32(x12+x8, 18)

		x9 ^= rotl32(x5+x1, 7)
		x13 ^= rotl32(x9+x5, 9)
		x1 ^= rotl32(x13+x9, 13)
		x5 ^= rotl32(x1+x13, 18)

		x14 ^= rotl32(x10+x6, 7)
		x2 ^= rotl32(x14+x10, 9)
		x6 ^= rotl32(x2+x14, 13)
		x10 ^= rotl32(x6+x2, 18)

		x3 ^= rotl32(x15+x11, 7)
		x7 ^= rotl32(x3+x15, 9)
		x11 ^= rotl32(x7+x3, 13)
		x15 ^= rotl32(x11+x7, 18)

		// rowround
		x1 ^= rotl32(x0+x3, 7)
		x2 ^= rotl32(x1+x0, 9)
		x3 ^= rotl32(x2+x1, 13)
		x0 ^= rotl32(x3+x2, 18)

		x6 ^= rotl32(x5+x4, 7)
		x7 ^= rotl32(x6+x5, 9)
		x4 ^= rotl32(x7+x6, 13)
		x5 ^= rotl32(x4+x7, 18)

		x11 ^= rotl32(x10+x9, 7)
		x8 ^= rotl32(x11+x10, 9)
		x9 ^= rotl32(x8+x11, 13)
		x10 ^= rotl32(x9+x8, 18)

		x12 ^= rotl32(x15+x14, 7)
		x13 ^= rotl32(x12+x15, 9)
		x14 ^= rotl32(x13+x12, 13)
		x15 ^= rotl32(x14+x13, 18)
	}

	binary.LittleEndian.PutUint32(out[0:4], x0+j0)
	binary.LittleEndian.PutUint32(out[4:8], x1+j1)
	binary.LittleEndian.PutUint32(out[8:12], x2+j2)
	binary.LittleEndian.PutUint32(out[12:16], x3+j3)
	binary.LittleEndian.PutUint32(out[16:20], x4+j4)
	binary.LittleEndian.PutUint32(out[20:24], x5+j5)
	binary.LittleEndian.PutUint32(out[24:28], x6+j6)
	binary.LittleEndian.PutUint32(out[28:32], x7+j7)
	binary.LittleEndian.PutUint32(out[32:36], x8+j8)
	binary.LittleEndian.PutUint32(out[36:40], x9+j9)
	binary.LittleEndian.PutUint32(out[40:44], x10+j10)
	binary.LittleEndian.PutUint32(out[44:48], x11+j11)
	binary.LittleEndian.PutUint32(out[48:52], x12+j12)
	binary.LittleEndian.PutUint32(out[52:56], x13+j13)
	binary.LittleEndian.PutUint32(out[56:60], x14+j14)
	binary.LittleEndian.PutUint32(out[60:64], x15+j15)
}

func rotl32(x uint32, n uint) uint32 {
	return (x << n) | (x >> (32 - n))
}
