// Package identity is the stable, exported surface of the identity
// subsystem. Internal packages may change shape; this package's
// signatures are the contract external callers build against.
package identity

import (
	internal "github.com/meshframe/identity/internal/identity"
)

// Identity is the immutable aggregate of type, keys, and fingerprint.
type Identity = internal.Identity

// Type tags an Identity's key material.
type Type = internal.Type

// Address is a 40-bit routable handle derived from a public key.
type Address = internal.Address

// Fingerprint pairs an address with the SHA-384 hash of a public key.
type Fingerprint = internal.Fingerprint

// Identity types.
const (
	TypeC25519 = internal.TypeC25519
	TypeP384   = internal.TypeP384
)

// Fixed sizes callers may need when sizing their own buffers.
const (
	AddressSize         = internal.AddressSize
	FingerprintHashSize = internal.FingerprintHashSize
	SignatureSize       = internal.SignatureSize
	AgreedKeySize       = internal.AgreedKeySize
)

// Sentinel errors, re-exported so callers can use errors.Is without
// importing the internal package.
var (
	ErrMalformedInput       = internal.ErrMalformedInput
	ErrInvalidIdentity      = internal.ErrInvalidIdentity
	ErrOperationUnavailable = internal.ErrOperationUnavailable
	ErrIncompatibleTypes    = internal.ErrIncompatibleTypes
)

// Nil returns the canonical zero-value identity.
func Nil() *Identity { return internal.Nil() }

// New generates a fresh identity of the given type, iterating its
// proof-of-work loop until a satisfying key pair is found.
func New(t Type) (*Identity, error) {
	return internal.Generate(t)
}

// FromString parses the `address:type:public[:private]` text form.
func FromString(s string) (*Identity, error) {
	return internal.FromString(s)
}

// Unmarshal decodes the binary wire form, returning the identity and the
// number of bytes consumed.
func Unmarshal(buf []byte) (*Identity, int, error) {
	return internal.Unmarshal(buf)
}

// Marshal encodes id in the binary wire form.
func Marshal(id *Identity, includePrivate bool) ([]byte, error) {
	return id.Marshal(includePrivate)
}

// Validate re-derives an identity's proof-of-work and checks it against
// the stored address and fingerprint.
func Validate(id *Identity) bool {
	return id.LocallyValidate()
}

// Sign signs data with id's private key.
func Sign(id *Identity, data []byte) ([]byte, error) {
	return id.Sign(data)
}

// Verify checks a signature produced by Sign.
func Verify(id *Identity, data, sig []byte) bool {
	return id.Verify(data, sig)
}

// Agree performs authenticated key agreement between self and other.
func Agree(self, other *Identity) ([AgreedKeySize]byte, error) {
	return self.Agree(other)
}

// BatchValidate validates a set of identities, returning an aggregate
// error naming every one that failed.
func BatchValidate(ids []*Identity) error {
	return internal.BatchValidate(ids)
}

// SignInto signs data and writes the signature into dst, returning the
// number of bytes written. It returns 0 and ErrOperationUnavailable
// (never a partial write) if dst is shorter than SignatureSize, matching
// this subsystem's write-fixed-length-or-fail-cleanly contract.
func SignInto(id *Identity, data, dst []byte) (int, error) {
	if len(dst) < SignatureSize {
		return 0, ErrOperationUnavailable
	}
	sig, err := id.Sign(data)
	if err != nil {
		return 0, err
	}
	copy(dst, sig)
	return len(sig), nil
}

// MarshalInto encodes id into dst, returning the number of bytes written,
// or ErrOperationUnavailable if dst is too small.
func MarshalInto(id *Identity, dst []byte, includePrivate bool) (int, error) {
	encoded, err := id.Marshal(includePrivate)
	if err != nil {
		return 0, err
	}
	if len(dst) < len(encoded) {
		return 0, ErrOperationUnavailable
	}
	copy(dst, encoded)
	return len(encoded), nil
}
