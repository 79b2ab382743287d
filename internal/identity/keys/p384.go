package keys

import (
	"crypto/ecdh"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"math/big"
)

// P384 key and signature sizes. The public key is stored compressed (one
// prefix byte plus the 48-byte x-coordinate); the private key is the raw
// 48-byte scalar; signatures are fixed-width r‖s, not ASN.1.
const (
	P384PublicSize  = 49
	P384PrivateSize = 48
	P384SigSize     = 96
	p384CoordSize   = 48
)

// GenerateP384 produces a fresh NIST P-384 key pair, usable for both ECDSA
// signing and ECDH agreement.
func GenerateP384() (public [P384PublicSize]byte, private [P384PrivateSize]byte, err error) {
	priv, err := ecdsa.GenerateKey(elliptic.P384(), rand.Reader)
	if err != nil {
		return public, private, err
	}

	compressed := elliptic.MarshalCompressed(elliptic.P384(), priv.X, priv.Y)
	copy(public[:], compressed)
	priv.D.FillBytes(private[:])

	return public, private, nil
}

// SignP384 produces a fixed-width 96-byte ECDSA signature (r‖s, each
// 48 bytes) over hash.
func SignP384(private [P384PrivateSize]byte, hash []byte) ([P384SigSize]byte, error) {
	var sig [P384SigSize]byte

	priv := p384PrivateKey(private)
	r, s, err := ecdsa.Sign(rand.Reader, priv, hash)
	if err != nil {
		return sig, err
	}

	r.FillBytes(sig[0:p384CoordSize])
	s.FillBytes(sig[p384CoordSize:])
	return sig, nil
}

// VerifyP384 verifies a signature produced by SignP384.
func VerifyP384(public [P384PublicSize]byte, hash, sig []byte) bool {
	if len(sig) != P384SigSize {
		return false
	}

	pub, err := p384PublicKey(public)
	if err != nil {
		return false
	}

	r := new(big.Int).SetBytes(sig[0:p384CoordSize])
	s := new(big.Int).SetBytes(sig[p384CoordSize:])
	return ecdsa.Verify(pub, hash, r, s)
}

// ECDH384 computes the P-384 ECDH shared secret (the 48-byte x-coordinate
// of the shared point) between a local private scalar and a peer's
// compressed public key.
func ECDH384(private [P384PrivateSize]byte, peerPublic [P384PublicSize]byte) ([p384CoordSize]byte, error) {
	var shared [p384CoordSize]byte

	curve := ecdh.P384()
	localPriv, err := curve.NewPrivateKey(private[:])
	if err != nil {
		return shared, err
	}

	x, y, err := decompressP384(peerPublic)
	if err != nil {
		return shared, err
	}
	peerPriv, err := curve.NewPublicKey(elliptic.Marshal(elliptic.P384(), x, y))
	if err != nil {
		return shared, err
	}

	secret, err := localPriv.ECDH(peerPriv)
	if err != nil {
		return shared, err
	}
	copy(shared[:], secret)
	return shared, nil
}

func p384PrivateKey(private [P384PrivateSize]byte) *ecdsa.PrivateKey {
	curve := elliptic.P384()
	d := new(big.Int).SetBytes(private[:])
	x, y := curve.ScalarBaseMult(private[:])
	return &ecdsa.PrivateKey{
		PublicKey: ecdsa.PublicKey{Curve: curve, X: x, Y: y},
		D:         d,
	}
}

func p384PublicKey(public [P384PublicSize]byte) (*ecdsa.PublicKey, error) {
	x, y, err := decompressP384(public)
	if err != nil {
		return nil, err
	}
	return &ecdsa.PublicKey{Curve: elliptic.P384(), X: x, Y: y}, nil
}

func decompressP384(public [P384PublicSize]byte) (x, y *big.Int, err error) {
	x, y = elliptic.UnmarshalCompressed(elliptic.P384(), public[:])
	if x == nil {
		return nil, nil, ErrInvalidKey
	}
	return x, y, nil
}
