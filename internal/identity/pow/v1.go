package pow

import (
	"crypto/sha512"
	"encoding/binary"
	"sort"

	"golang.org/x/crypto/poly1305"
)

// V1BufSize is the size in bytes of the working buffer the V1 proof-of-work
// walks. It holds 16384 64-bit words.
const V1BufSize = 131072

const v1Words = V1BufSize / 8
const v1Modulus = 1000

// v1Primes are the eight moduli used by the modular-reduction branch. They
// are fixed consensus constants, not tuned per deployment.
var v1Primes = [8]uint64{
	4503599627370101,
	4503599627370161,
	4503599627370227,
	4503599627370287,
	4503599627370299,
	4503599627370323,
	4503599627370353,
	4503599627370449,
}

// V1PoW computes the V1 working buffer for input and reports whether it
// satisfies the proof-of-work criterion.
//
// The buffer is seeded with SHA-512(input), then filled 64 bytes (8 words)
// at a time. Each new block is derived from the block before it by one of
// three operations chosen by bits of that previous block: a SHA-512 of the
// 64 bytes, a per-word modular reduction followed by a SHA-384 whose
// 48-byte output deliberately leaves the trailing 16 bytes holding the
// just-written modulo values, or a Salsa20/12 encryption keyed from the
// previous block. Once full, the buffer's words are sorted ascending as
// little-endian integers and MACed with Poly1305 using its own first 32
// bytes as the key; the 16-byte tag overwrites the first 16 bytes. The
// criterion checks the first resulting word modulo 1000.
//
// All multi-byte integers here are interpreted as big-endian, except the
// sort step, which is little-endian by construction.
func V1PoW(input []byte) bool {
	buf, _ := v1Fill(input)
	return v1Finish(buf)
}

// V1FillBuffer runs only the block-construction phase (step 1-2 of the
// algorithm), before the sort and MAC, so the exact byte layout the
// modular-reduction branch leaves behind can be inspected without
// reimplementing the construction. The package's own tests call v1Fill,
// which also reports which blocks that branch built.
func V1FillBuffer(input []byte) [V1BufSize]byte {
	buf, _ := v1Fill(input)
	return buf
}

func v1Fill(input []byte) ([V1BufSize]byte, []bool) {
	var buf [V1BufSize]byte
	branches := make([]bool, v1Words/8)

	seed := sha512.Sum512(input)
	copy(buf[0:64], seed[:])

	for i := 8; i < v1Words; i += 8 {
		j := i - 8
		wpOff := j * 8
		wwOff := i * 8

		w0 := binary.BigEndian.Uint64(buf[wpOff:])
		w1 := binary.BigEndian.Uint64(buf[wpOff+8:])

		switch {
		case w0&7 == 0:
			sum := sha512.Sum512(buf[wpOff : wpOff+64])
			copy(buf[wwOff:wwOff+64], sum[:])

		case w1&15 == 0:
			for k := 0; k < 8; k++ {
				v := binary.BigEndian.Uint64(buf[wpOff+k*8:])
				binary.BigEndian.PutUint64(buf[wwOff+k*8:], v%v1Primes[k])
			}
			sum := sha512.Sum384(buf[wpOff : wpOff+128])
			copy(buf[wwOff:wwOff+48], sum[:])
			branches[i/8] = true

		default:
			var key [32]byte
			var nonce [8]byte
			copy(key[:], buf[wpOff:wpOff+32])
			copy(nonce[:], buf[wpOff+32:wpOff+40])
			stream := newSalsaStream(12, &key, &nonce)
			stream.cryptBlock(buf[wwOff:wwOff+64], buf[wpOff:wpOff+64])
		}
	}

	return buf, branches
}

func v1Finish(buf [V1BufSize]byte) bool {
	words := make([]uint64, v1Words)
	for i := 0; i < v1Words; i++ {
		words[i] = binary.LittleEndian.Uint64(buf[i*8:])
	}
	sort.Slice(words, func(a, b int) bool { return words[a] < words[b] })
	for i, v := range words {
		binary.LittleEndian.PutUint64(buf[i*8:], v)
	}

	var macKey [32]byte
	copy(macKey[:], buf[0:32])
	var tag [16]byte
	poly1305.Sum(&tag, buf[:], &macKey)
	copy(buf[0:16], tag[:])

	return binary.BigEndian.Uint64(buf[0:8])%v1Modulus == 0
}
