package identity

import (
	"crypto/sha512"

	"github.com/meshframe/identity/internal/identity/keys"
	"github.com/meshframe/identity/internal/identity/pow"
	"github.com/meshframe/identity/internal/util/logger"
)

var log = logger.Logger("identity")

// Type tags an Identity's key material. There are exactly two variants;
// methods on Identity dispatch on this tag rather than through an
// interface hierarchy.
type Type uint8

const (
	// TypeC25519 identifies a type-0 identity: a combined Curve25519 ECDH
	// + Ed25519 signing key pair gated by the V0 Frankenhash.
	TypeC25519 Type = 0
	// TypeP384 identifies a type-1 identity: a nonce-prefixed combined
	// key plus a NIST P-384 key pair, gated by the V1 proof-of-work.
	TypeP384 Type = 1
)

func (t Type) String() string {
	switch t {
	case TypeC25519:
		return "c25519"
	case TypeP384:
		return "p384"
	default:
		return "unknown"
	}
}

// Fixed sizes per type.
const (
	publicSizeC25519  = keys.CombinedPublicSize
	privateSizeC25519 = keys.CombinedPrivateSize

	publicSizeP384  = 1 + keys.CombinedPublicSize + keys.P384PublicSize
	privateSizeP384 = keys.CombinedPrivateSize + keys.P384PrivateSize

	// maxPublicSize and maxPrivateSize size the fixed buffers inside
	// Identity; they must be at least as large as the largest variant.
	maxPublicSize  = publicSizeP384
	maxPrivateSize = privateSizeP384
)

// Identity is the aggregate value type this subsystem revolves around: a
// type tag, public key, optional private key, and derived fingerprint. It
// is immutable after construction and safe to share across goroutines.
type Identity struct {
	typ         Type
	public      [maxPublicSize]byte
	publicLen   int
	hasPrivate  bool
	private     [maxPrivateSize]byte
	privateLen  int
	fingerprint Fingerprint
}

// Type returns the identity's type tag.
func (id *Identity) Type() Type { return id.typ }

// Address returns the identity's routable address.
func (id *Identity) Address() Address { return id.fingerprint.Address }

// Fingerprint returns the identity's (address, hash) pair.
func (id *Identity) Fingerprint() Fingerprint { return id.fingerprint }

// HasPrivate reports whether this value carries a private key.
func (id *Identity) HasPrivate() bool { return id.hasPrivate }

// PublicKey returns the type-specific public key bytes.
func (id *Identity) PublicKey() []byte { return id.public[:id.publicLen] }

// PrivateKey returns the type-specific private key bytes and whether one
// is present.
func (id *Identity) PrivateKey() ([]byte, bool) {
	if !id.hasPrivate {
		return nil, false
	}
	return id.private[:id.privateLen], true
}

// Generate creates a fresh identity of the given type, iterating the
// appropriate proof-of-work loop until a satisfying key pair is found.
// The returned identity always carries a private key.
func Generate(t Type) (*Identity, error) {
	switch t {
	case TypeC25519:
		return generateC25519()
	case TypeP384:
		return generateP384()
	default:
		return nil, ErrMalformedInput
	}
}

func generateC25519() (*Identity, error) {
	for {
		kp, err := keys.GenerateSatisfying(func(public [keys.CombinedPublicSize]byte) bool {
			digest := pow.V0Frankenhash(public[:])
			return pow.V0PassesCriterion(digest)
		})
		if err != nil {
			return nil, err
		}

		digest := pow.V0Frankenhash(kp.Public[:])
		addr := AddressFromBytes(digest[59:64])
		if addr.IsReserved() {
			log.Debug("generated C25519 key hit a reserved address, retrying")
			continue
		}

		id := &Identity{typ: TypeC25519, hasPrivate: true}
		id.publicLen = publicSizeC25519
		copy(id.public[:], kp.Public[:])
		id.privateLen = privateSizeC25519
		copy(id.private[:], kp.Private[:])
		id.fingerprint = Fingerprint{Address: addr, Hash: sha512.Sum384(id.PublicKey())}

		log.Debug("generated type-0 identity", "address", addr)
		return id, nil
	}
}

func generateP384() (*Identity, error) {
	for {
		c25519Pub, c25519Priv, err := keys.GenerateC25519()
		if err != nil {
			return nil, err
		}
		edPub, edSeed, err := keys.GenerateEd25519()
		if err != nil {
			return nil, err
		}
		p384Pub, p384Priv, err := keys.GenerateP384()
		if err != nil {
			return nil, err
		}

		var public [publicSizeP384]byte
		nonce := byte(0)
		buildPublic := func() {
			public[0] = nonce
			copy(public[1:33], c25519Pub[:])
			copy(public[33:65], edPub[:])
			copy(public[65:114], p384Pub[:])
		}
		buildPublic()

		for !pow.V1PoW(public[:]) {
			nonce++
			if nonce == 0 {
				p384Pub, p384Priv, err = keys.GenerateP384()
				if err != nil {
					return nil, err
				}
			}
			buildPublic()
		}

		hash := sha512.Sum384(public[:])
		addr := AddressFromBytes(hash[0:5])
		if addr.IsReserved() {
			log.Debug("generated P384 key hit a reserved address, restarting outer loop")
			continue
		}

		id := &Identity{typ: TypeP384, hasPrivate: true}
		id.publicLen = publicSizeP384
		copy(id.public[:], public[:])

		id.privateLen = privateSizeP384
		copy(id.private[0:32], c25519Priv[:])
		copy(id.private[32:64], edSeed[:])
		copy(id.private[64:112], p384Priv[:])

		id.fingerprint = Fingerprint{Address: addr, Hash: hash}

		log.Debug("generated type-1 identity", "address", addr)
		return id, nil
	}
}

// LocallyValidate re-derives the proof-of-work for the public key and
// checks it against the stored address and fingerprint hash.
func (id *Identity) LocallyValidate() bool {
	if id.Address().IsReserved() {
		return false
	}

	switch id.typ {
	case TypeC25519:
		if id.publicLen != publicSizeC25519 {
			return false
		}
		digest := pow.V0Frankenhash(id.PublicKey())
		if !pow.V0PassesCriterion(digest) {
			return false
		}
		wantAddr := AddressFromBytes(digest[59:64])
		if wantAddr != id.Address() {
			return false
		}
		wantHash := sha512.Sum384(id.PublicKey())
		return wantHash == id.fingerprint.Hash

	case TypeP384:
		if id.publicLen != publicSizeP384 {
			return false
		}
		if !pow.V1PoW(id.PublicKey()) {
			return false
		}
		hash := sha512.Sum384(id.PublicKey())
		if hash != id.fingerprint.Hash {
			return false
		}
		wantAddr := AddressFromBytes(hash[0:5])
		return wantAddr == id.Address()

	default:
		return false
	}
}

// HashWithPrivate returns SHA-384 of the public key concatenated with the
// private key. If this identity carries no private key, it returns the
// zero value.
func (id *Identity) HashWithPrivate() [FingerprintHashSize]byte {
	var out [FingerprintHashSize]byte
	if !id.hasPrivate {
		return out
	}
	h := sha512.New384()
	h.Write(id.PublicKey())
	priv, _ := id.PrivateKey()
	h.Write(priv)
	copy(out[:], h.Sum(nil))
	return out
}
