package identity

import (
	"crypto/sha512"

	"github.com/meshframe/identity/internal/identity/keys"
)

// SignatureSize is the fixed length of every signature this package
// produces, regardless of identity type.
const SignatureSize = 96

// Sign signs data with this identity's private key. Type 0 produces the
// Ed25519 signature over data followed by the first 32 bytes of
// SHA-512(data); type 1 produces a P-384 ECDSA signature over
// SHA-384(data ‖ public_key), binding the signature to the signer's public
// key so it cannot be replayed under a different identity.
//
// This deliberately does not replicate the upstream fallthrough where an
// undersized destination buffer in the type-0 path falls through into the
// type-1 code: each type is handled independently and an unavailable
// operation returns ErrOperationUnavailable.
func (id *Identity) Sign(data []byte) ([]byte, error) {
	if !id.hasPrivate {
		return nil, ErrOperationUnavailable
	}

	switch id.typ {
	case TypeC25519:
		var seed [keys.Ed25519SeedSize]byte
		copy(seed[:], id.private[keys.C25519PrivateSize:privateSizeC25519])
		sig := keys.SignEd25519(seed, data)

		h := sha512.Sum512(data)
		out := make([]byte, SignatureSize)
		copy(out[0:keys.Ed25519SigSize], sig[:])
		copy(out[keys.Ed25519SigSize:], h[0:32])
		return out, nil

	case TypeP384:
		var priv [keys.P384PrivateSize]byte
		copy(priv[:], id.private[keys.CombinedPrivateSize:privateSizeP384])

		h := sha512.New384()
		h.Write(data)
		h.Write(id.PublicKey())

		sig, err := keys.SignP384(priv, h.Sum(nil))
		if err != nil {
			return nil, err
		}
		return sig[:], nil

	default:
		return nil, ErrMalformedInput
	}
}

// Verify checks a signature produced by Sign against this identity's
// public key.
func (id *Identity) Verify(data, sig []byte) bool {
	if len(sig) != SignatureSize {
		return false
	}

	switch id.typ {
	case TypeC25519:
		var pub [keys.Ed25519PublicSize]byte
		copy(pub[:], id.public[keys.C25519PublicSize:publicSizeC25519])

		h := sha512.Sum512(data)
		if string(sig[keys.Ed25519SigSize:]) != string(h[0:32]) {
			return false
		}
		return keys.VerifyEd25519(pub, data, sig[:keys.Ed25519SigSize])

	case TypeP384:
		var pub [keys.P384PublicSize]byte
		copy(pub[:], id.public[1+keys.CombinedPublicSize:publicSizeP384])

		h := sha512.New384()
		h.Write(data)
		h.Write(id.PublicKey())
		return keys.VerifyP384(pub, h.Sum(nil), sig)

	default:
		return false
	}
}
