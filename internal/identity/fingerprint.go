package identity

import "crypto/subtle"

// FingerprintHashSize is the length of a fingerprint's hash half: SHA-384
// of the identity's public key material.
const FingerprintHashSize = 48

// Fingerprint stably identifies an identity by its address and the
// SHA-384 hash of its public key, independent of the key's type-specific
// encoding.
type Fingerprint struct {
	Address Address
	Hash    [FingerprintHashSize]byte
}

// IsZero reports whether the fingerprint is the all-zero value.
func (f Fingerprint) IsZero() bool {
	if f.Address != 0 {
		return false
	}
	var zero [FingerprintHashSize]byte
	return f.Hash == zero
}

// Equal compares two fingerprints in constant time on the hash half, since
// fingerprints are used to recognize peers and timing leaks here could
// help an attacker narrow down a target hash.
func (f Fingerprint) Equal(other Fingerprint) bool {
	if f.Address != other.Address {
		return false
	}
	return subtle.ConstantTimeCompare(f.Hash[:], other.Hash[:]) == 1
}
