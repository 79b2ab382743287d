package keys

import (
	"crypto/rand"

	"golang.org/x/crypto/curve25519"
)

// C25519PublicSize and C25519PrivateSize are the fixed sizes of a bare
// Curve25519 ECDH key pair, before combination with an Ed25519 signing key.
const (
	C25519PublicSize  = 32
	C25519PrivateSize = 32
)

// GenerateC25519 produces a fresh Curve25519 scalar/point pair.
func GenerateC25519() (public, private [C25519PublicSize]byte, err error) {
	if _, err = rand.Read(private[:]); err != nil {
		return public, private, err
	}
	pub, err := curve25519.X25519(private[:], curve25519.Basepoint)
	if err != nil {
		return public, private, err
	}
	copy(public[:], pub)
	return public, private, nil
}

// ECDH25519 computes the Curve25519 shared secret between a local private
// scalar and a peer's public point.
func ECDH25519(private, peerPublic [C25519PublicSize]byte) ([C25519PublicSize]byte, error) {
	var shared [C25519PublicSize]byte
	s, err := curve25519.X25519(private[:], peerPublic[:])
	if err != nil {
		return shared, err
	}
	copy(shared[:], s)
	return shared, nil
}
