package identity

import (
	"bytes"
	"crypto/sha512"
	"strings"
	"testing"

	"github.com/meshframe/identity/internal/identity/keys"
)

func TestGenerateC25519Validates(t *testing.T) {
	id, err := Generate(TypeC25519)
	if err != nil {
		t.Fatalf("Generate(TypeC25519): %v", err)
	}
	if !id.LocallyValidate() {
		t.Error("generated type-0 identity failed local validation")
	}
	if id.Address().IsReserved() {
		t.Error("generated type-0 identity has a reserved address")
	}
	if !id.HasPrivate() {
		t.Error("Generate should always produce an identity with a private key")
	}
}

func TestGenerateP384Validates(t *testing.T) {
	id, err := Generate(TypeP384)
	if err != nil {
		t.Fatalf("Generate(TypeP384): %v", err)
	}
	if !id.LocallyValidate() {
		t.Error("generated type-1 identity failed local validation")
	}
	if id.Address().IsReserved() {
		t.Error("generated type-1 identity has a reserved address")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	for _, typ := range []Type{TypeC25519, TypeP384} {
		id, err := Generate(typ)
		if err != nil {
			t.Fatalf("Generate(%v): %v", typ, err)
		}

		for _, includePrivate := range []bool{true, false} {
			encoded, err := id.Marshal(includePrivate)
			if err != nil {
				t.Fatalf("Marshal(%v, %v): %v", typ, includePrivate, err)
			}

			decoded, consumed, err := Unmarshal(encoded)
			if err != nil {
				t.Fatalf("Unmarshal(%v, %v): %v", typ, includePrivate, err)
			}
			if consumed != len(encoded) {
				t.Errorf("Unmarshal consumed %d, want %d", consumed, len(encoded))
			}
			if decoded.HasPrivate() != includePrivate {
				t.Errorf("decoded.HasPrivate() = %v, want %v", decoded.HasPrivate(), includePrivate)
			}

			reencoded, err := decoded.Marshal(includePrivate)
			if err != nil {
				t.Fatalf("re-Marshal: %v", err)
			}
			if !bytes.Equal(encoded, reencoded) {
				t.Error("marshal(unmarshal(marshal(id))) != marshal(id)")
			}
		}
	}
}

func TestUnmarshalTruncated(t *testing.T) {
	id, err := Generate(TypeC25519)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	encoded, err := id.Marshal(true)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	if _, _, err := Unmarshal(encoded[:len(encoded)-1]); err == nil {
		t.Error("expected truncated buffer to fail to unmarshal")
	}
}

func TestTextRoundTrip(t *testing.T) {
	for _, typ := range []Type{TypeC25519, TypeP384} {
		id, err := Generate(typ)
		if err != nil {
			t.Fatalf("Generate(%v): %v", typ, err)
		}

		s := id.StringWithPrivate()
		parsed, err := FromString(s)
		if err != nil {
			t.Fatalf("FromString(%v): %v", typ, err)
		}

		if parsed.Address() != id.Address() {
			t.Errorf("address mismatch: got %v, want %v", parsed.Address(), id.Address())
		}
		if parsed.Fingerprint() != id.Fingerprint() {
			t.Errorf("fingerprint mismatch for type %v", typ)
		}
		if !bytes.Equal(parsed.PublicKey(), id.PublicKey()) {
			t.Errorf("public key mismatch for type %v", typ)
		}
		parsedPriv, _ := parsed.PrivateKey()
		wantPriv, _ := id.PrivateKey()
		if !bytes.Equal(parsedPriv, wantPriv) {
			t.Errorf("private key mismatch for type %v", typ)
		}
	}
}

func TestFromStringRejectsZeroAddress(t *testing.T) {
	key := strings.Repeat("deadbeef", 16) // 128 hex chars = 64 bytes, a well-formed type-0 public key
	if _, err := FromString("0000000000:0:" + key); err == nil {
		t.Error("expected a zero address to be rejected")
	}
}

func TestSignVerify(t *testing.T) {
	for _, typ := range []Type{TypeC25519, TypeP384} {
		id, err := Generate(typ)
		if err != nil {
			t.Fatalf("Generate(%v): %v", typ, err)
		}

		data := []byte("arbitrary message")
		sig, err := id.Sign(data)
		if err != nil {
			t.Fatalf("Sign(%v): %v", typ, err)
		}
		if len(sig) != SignatureSize {
			t.Fatalf("signature length = %d, want %d", len(sig), SignatureSize)
		}
		if !id.Verify(data, sig) {
			t.Errorf("Verify failed for a signature just produced by Sign (type %v)", typ)
		}

		flipped := append([]byte(nil), sig...)
		flipped[0] ^= 0x01
		if id.Verify(data, flipped) {
			t.Errorf("Verify accepted a signature with a flipped bit (type %v)", typ)
		}
	}
}

func TestSignEmptyMessage(t *testing.T) {
	id, err := Generate(TypeP384)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	sig, err := id.Sign(nil)
	if err != nil {
		t.Fatalf("Sign(nil): %v", err)
	}
	if !id.Verify(nil, sig) {
		t.Error("Verify failed on an empty message")
	}
	flipped := append([]byte(nil), sig...)
	flipped[len(flipped)-1] ^= 0x01
	if id.Verify(nil, flipped) {
		t.Error("Verify accepted a flipped-bit signature over an empty message")
	}
}

func TestSignRequiresPrivateKey(t *testing.T) {
	id, err := Generate(TypeC25519)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	encoded, err := id.Marshal(false)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	pub, _, err := Unmarshal(encoded)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if _, err := pub.Sign([]byte("x")); err != ErrOperationUnavailable {
		t.Errorf("Sign on a public-only identity: got %v, want ErrOperationUnavailable", err)
	}
}

func TestAgreeSymmetryP384(t *testing.T) {
	a, err := Generate(TypeP384)
	if err != nil {
		t.Fatalf("Generate A: %v", err)
	}
	b, err := Generate(TypeP384)
	if err != nil {
		t.Fatalf("Generate B: %v", err)
	}

	k1, err := a.Agree(b)
	if err != nil {
		t.Fatalf("A.Agree(B): %v", err)
	}
	k2, err := b.Agree(a)
	if err != nil {
		t.Fatalf("B.Agree(A): %v", err)
	}
	if k1 != k2 {
		t.Error("agree(A,B) != agree(B,A) for two type-1 identities")
	}
}

func TestAgreeAcrossTypesUsesC25519Only(t *testing.T) {
	a, err := Generate(TypeC25519)
	if err != nil {
		t.Fatalf("Generate A: %v", err)
	}
	b, err := Generate(TypeP384)
	if err != nil {
		t.Fatalf("Generate B: %v", err)
	}

	k1, err := a.Agree(b)
	if err != nil {
		t.Fatalf("A.Agree(B): %v", err)
	}
	k2, err := b.Agree(a)
	if err != nil {
		t.Fatalf("B.Agree(A): %v", err)
	}
	if k1 != k2 {
		t.Error("agree(A,B) != agree(B,A) for a mixed type-0/type-1 pair")
	}

	bPub, err := b.c25519Public()
	if err != nil {
		t.Fatalf("B c25519Public: %v", err)
	}
	shared, err := keys.ECDH25519(a.c25519Private(), bPub)
	if err != nil {
		t.Fatalf("ECDH25519: %v", err)
	}
	want := sha512.Sum512(shared[:])
	if !bytes.Equal(k1[:], want[:AgreedKeySize]) {
		t.Error("agree(A,B) for a mixed pair is not the first 48 bytes of SHA-512 of the Curve25519 shared secret")
	}
}

func TestHashWithPrivateZeroWithoutPrivateKey(t *testing.T) {
	id, err := Generate(TypeC25519)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	encoded, err := id.Marshal(false)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	pub, _, err := Unmarshal(encoded)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	var zero [FingerprintHashSize]byte
	if h := pub.HashWithPrivate(); h != zero {
		t.Error("HashWithPrivate on a public-only identity should be all zeros")
	}

	if h := id.HashWithPrivate(); h == zero {
		t.Error("HashWithPrivate on an identity with a private key should not be all zeros")
	}
}

func TestZeroPublicKeyFailsValidation(t *testing.T) {
	id := &Identity{typ: TypeP384, publicLen: publicSizeP384}
	id.fingerprint = Fingerprint{}

	if id.LocallyValidate() {
		t.Error("expected an all-zero type-1 public key to fail validation")
	}
}

func TestNilIdentity(t *testing.T) {
	n := Nil()
	if !n.Fingerprint().IsZero() {
		t.Error("Nil() should have a zero fingerprint")
	}
	if n.Type() != TypeC25519 {
		t.Error("Nil() should be type 0")
	}
	if Nil() != n {
		t.Error("Nil() should return the same instance every call")
	}
}

func TestBatchValidate(t *testing.T) {
	good, err := Generate(TypeC25519)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	bad := &Identity{typ: TypeP384, publicLen: publicSizeP384}

	if err := BatchValidate([]*Identity{good}); err != nil {
		t.Errorf("BatchValidate with only valid identities: %v", err)
	}
	if err := BatchValidate([]*Identity{good, bad, nil}); err == nil {
		t.Error("BatchValidate should report an error when given invalid/nil identities")
	}
}
