package identity

import (
	"crypto/sha512"

	"github.com/meshframe/identity/internal/identity/keys"
)

// AgreedKeySize is the length of the symmetric key Agree produces,
// regardless of which type combination derived it.
const AgreedKeySize = 48

// Agree performs authenticated key agreement between self and other,
// returning a 48-byte symmetric key. The algorithm depends on both
// identities' types:
//
//   - self type 0, other type 0 or type 1: Curve25519 ECDH only; key is
//     the first 48 bytes of SHA-512(shared secret).
//   - self type 1, other type 1: both Curve25519 and P-384 ECDH,
//     concatenated (C25519 first) and hashed with SHA-384. If either
//     curve is ever broken, the other still protects the session.
//   - self type 1, other type 0: Curve25519 ECDH only, same as the
//     type-0/type-0 case.
func (id *Identity) Agree(other *Identity) ([AgreedKeySize]byte, error) {
	var key [AgreedKeySize]byte

	if !id.hasPrivate {
		return key, ErrOperationUnavailable
	}

	selfC25519Priv := id.c25519Private()
	otherC25519Pub, err := other.c25519Public()
	if err != nil {
		return key, err
	}

	if id.typ == TypeP384 && other.typ == TypeP384 {
		c25519Shared, err := keys.ECDH25519(selfC25519Priv, otherC25519Pub)
		if err != nil {
			return key, err
		}

		selfP384Priv := id.p384Private()
		otherP384Pub, err := other.p384Public()
		if err != nil {
			return key, err
		}
		p384Shared, err := keys.ECDH384(selfP384Priv, otherP384Pub)
		if err != nil {
			return key, err
		}

		h := sha512.New384()
		h.Write(c25519Shared[:])
		h.Write(p384Shared[:])
		copy(key[:], h.Sum(nil))
		return key, nil
	}

	shared, err := keys.ECDH25519(selfC25519Priv, otherC25519Pub)
	if err != nil {
		return key, err
	}
	h := sha512.Sum512(shared[:])
	copy(key[:], h[0:AgreedKeySize])
	return key, nil
}

func (id *Identity) c25519Private() [keys.C25519PrivateSize]byte {
	var p [keys.C25519PrivateSize]byte
	copy(p[:], id.private[0:keys.C25519PrivateSize])
	return p
}

func (id *Identity) c25519Public() ([keys.C25519PublicSize]byte, error) {
	var p [keys.C25519PublicSize]byte
	switch id.typ {
	case TypeC25519:
		copy(p[:], id.public[0:keys.C25519PublicSize])
	case TypeP384:
		copy(p[:], id.public[1:1+keys.C25519PublicSize])
	default:
		return p, ErrIncompatibleTypes
	}
	return p, nil
}

func (id *Identity) p384Private() [keys.P384PrivateSize]byte {
	var p [keys.P384PrivateSize]byte
	copy(p[:], id.private[keys.CombinedPrivateSize:privateSizeP384])
	return p
}

func (id *Identity) p384Public() ([keys.P384PublicSize]byte, error) {
	var p [keys.P384PublicSize]byte
	if id.typ != TypeP384 {
		return p, ErrIncompatibleTypes
	}
	copy(p[:], id.public[1+keys.CombinedPublicSize:publicSizeP384])
	return p, nil
}
