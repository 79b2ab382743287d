package keys

import (
	stded25519 "crypto/ed25519"
	"crypto/rand"
)

// Ed25519PublicSize and Ed25519SeedSize are the sizes of the Ed25519 half
// of a combined key pair. The seed, not the expanded private key, is what
// gets stored on the wire; it is expanded on demand for signing.
const (
	Ed25519PublicSize = 32
	Ed25519SeedSize   = 32
	Ed25519SigSize    = 64
)

// GenerateEd25519 produces a fresh Ed25519 public key and signing seed.
func GenerateEd25519() (public [Ed25519PublicSize]byte, seed [Ed25519SeedSize]byte, err error) {
	pub, priv, err := stded25519.GenerateKey(rand.Reader)
	if err != nil {
		return public, seed, err
	}
	copy(public[:], pub)
	copy(seed[:], priv.Seed())
	return public, seed, nil
}

// SignEd25519 signs data with the expanded key derived from seed.
func SignEd25519(seed [Ed25519SeedSize]byte, data []byte) [Ed25519SigSize]byte {
	priv := stded25519.NewKeyFromSeed(seed[:])
	var sig [Ed25519SigSize]byte
	copy(sig[:], stded25519.Sign(priv, data))
	return sig
}

// VerifyEd25519 verifies a signature produced by SignEd25519 against a
// public key.
func VerifyEd25519(public [Ed25519PublicSize]byte, data, sig []byte) bool {
	if len(sig) != Ed25519SigSize {
		return false
	}
	return stded25519.Verify(public[:], data, sig)
}
