package identity

import "errors"

// Sentinel errors matching the four error kinds this subsystem reports:
// malformed wire/text input, an identity that fails local validation,
// an operation unavailable on the identity at hand, and a pair of types
// that cannot agree on a shared secret.
var (
	// ErrMalformedInput covers unparsable strings, truncated binary
	// buffers, unknown type tags, and invalid private-length bytes.
	ErrMalformedInput = errors.New("identity: malformed input")

	// ErrInvalidIdentity is returned when a well-formed identity fails
	// proof-of-work or address-derivation validation.
	ErrInvalidIdentity = errors.New("identity: failed local validation")

	// ErrOperationUnavailable is returned when sign or agree is called on
	// an identity with no private key, or a destination buffer is too
	// small.
	ErrOperationUnavailable = errors.New("identity: operation requires a capability this identity lacks")

	// ErrIncompatibleTypes is returned by Agree when the two identities'
	// types cannot share a secret under the rules in this package.
	ErrIncompatibleTypes = errors.New("identity: incompatible types for key agreement")
)
