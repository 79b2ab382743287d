package keys

// CombinedPublicSize and CombinedPrivateSize are the sizes of the
// concatenated Curve25519-ECDH + Ed25519-signing key pair used by type-0
// identities, and embedded (minus the nonce byte) inside type-1 public
// keys.
const (
	CombinedPublicSize  = C25519PublicSize + Ed25519PublicSize
	CombinedPrivateSize = C25519PrivateSize + Ed25519SeedSize
)

// CombinedKeyPair is a Curve25519 ECDH key pair concatenated with an
// Ed25519 signing key pair: the "combined" key used throughout this
// subsystem as a 64-byte unit.
type CombinedKeyPair struct {
	Public  [CombinedPublicSize]byte
	Private [CombinedPrivateSize]byte
}

// C25519Public returns the ECDH half of the public key.
func (k CombinedKeyPair) C25519Public() [C25519PublicSize]byte {
	var p [C25519PublicSize]byte
	copy(p[:], k.Public[:C25519PublicSize])
	return p
}

// C25519Private returns the ECDH half of the private key.
func (k CombinedKeyPair) C25519Private() [C25519PrivateSize]byte {
	var p [C25519PrivateSize]byte
	copy(p[:], k.Private[:C25519PrivateSize])
	return p
}

// Ed25519Public returns the signing half of the public key.
func (k CombinedKeyPair) Ed25519Public() [Ed25519PublicSize]byte {
	var p [Ed25519PublicSize]byte
	copy(p[:], k.Public[C25519PublicSize:])
	return p
}

// Ed25519Seed returns the signing half of the private key.
func (k CombinedKeyPair) Ed25519Seed() [Ed25519SeedSize]byte {
	var p [Ed25519SeedSize]byte
	copy(p[:], k.Private[C25519PrivateSize:])
	return p
}

// GenerateCombined produces a fresh combined key pair with no proof-of-work
// filtering.
func GenerateCombined() (CombinedKeyPair, error) {
	var kp CombinedKeyPair

	c25519Pub, c25519Priv, err := GenerateC25519()
	if err != nil {
		return kp, err
	}
	edPub, edSeed, err := GenerateEd25519()
	if err != nil {
		return kp, err
	}

	copy(kp.Public[:C25519PublicSize], c25519Pub[:])
	copy(kp.Public[C25519PublicSize:], edPub[:])
	copy(kp.Private[:C25519PrivateSize], c25519Priv[:])
	copy(kp.Private[C25519PrivateSize:], edSeed[:])

	return kp, nil
}

// GenerateSatisfying repeatedly generates combined key pairs until satisfies
// returns true for the resulting public key, then returns that pair. The
// caller supplies the proof-of-work predicate; this function knows nothing
// about proof-of-work itself.
func GenerateSatisfying(satisfies func(public [CombinedPublicSize]byte) bool) (CombinedKeyPair, error) {
	for {
		kp, err := GenerateCombined()
		if err != nil {
			return kp, err
		}
		if satisfies(kp.Public) {
			return kp, nil
		}
	}
}
