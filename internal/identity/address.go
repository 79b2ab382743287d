package identity

import (
	"encoding/binary"
	"encoding/hex"
)

// AddressSize is the wire length of an Address: a 40-bit value stored in 5
// big-endian bytes.
const AddressSize = 5

// Address is a 40-bit routable handle derived from a public key's
// proof-of-work output.
type Address uint64

const addressMask = 0x000000ffffffffff

// AddressFromBytes decodes a 5-byte big-endian address. Fewer than 5 bytes
// is a programmer error, not a runtime one; callers that receive
// attacker-controlled buffers must check length before calling this.
func AddressFromBytes(b []byte) Address {
	var buf [8]byte
	copy(buf[3:], b[:AddressSize])
	return Address(binary.BigEndian.Uint64(buf[:])) & addressMask
}

// Bytes encodes the address as 5 big-endian bytes.
func (a Address) Bytes() [AddressSize]byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(a)&addressMask)
	var out [AddressSize]byte
	copy(out[:], buf[3:])
	return out
}

// IsReserved reports whether the address is zero or has a top byte of
// 0xff. Reserved addresses must never appear in a valid identity.
func (a Address) IsReserved() bool {
	if a == 0 {
		return true
	}
	return (uint64(a)>>32)&0xff == 0xff
}

// String renders the address as 10 lowercase hex digits, zero-padded.
func (a Address) String() string {
	b := a.Bytes()
	return hex.EncodeToString(b[:])
}

// ParseAddress decodes the fixed-width hex form produced by String.
func ParseAddress(s string) (Address, bool) {
	if len(s) != AddressSize*2 {
		return 0, false
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return 0, false
	}
	return AddressFromBytes(b), true
}
