package identity

import "testing"

func TestNewAndValidate(t *testing.T) {
	id, err := New(TypeC25519)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !Validate(id) {
		t.Error("Validate rejected a freshly generated identity")
	}
}

func TestSignVerifyAgree(t *testing.T) {
	a, err := New(TypeP384)
	if err != nil {
		t.Fatalf("New A: %v", err)
	}
	b, err := New(TypeP384)
	if err != nil {
		t.Fatalf("New B: %v", err)
	}

	data := []byte("hello")
	sig, err := Sign(a, data)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if !Verify(a, data, sig) {
		t.Error("Verify rejected a valid signature")
	}

	k1, err := Agree(a, b)
	if err != nil {
		t.Fatalf("Agree(a,b): %v", err)
	}
	k2, err := Agree(b, a)
	if err != nil {
		t.Fatalf("Agree(b,a): %v", err)
	}
	if k1 != k2 {
		t.Error("Agree is not symmetric")
	}
}

func TestSignIntoRejectsShortBuffer(t *testing.T) {
	id, err := New(TypeC25519)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	dst := make([]byte, SignatureSize-1)
	if n, err := SignInto(id, []byte("x"), dst); err != ErrOperationUnavailable || n != 0 {
		t.Errorf("SignInto with short buffer: n=%d err=%v, want 0, ErrOperationUnavailable", n, err)
	}

	full := make([]byte, SignatureSize)
	n, err := SignInto(id, []byte("x"), full)
	if err != nil {
		t.Fatalf("SignInto: %v", err)
	}
	if n != SignatureSize {
		t.Errorf("SignInto wrote %d bytes, want %d", n, SignatureSize)
	}
}

func TestMarshalUnmarshalFromString(t *testing.T) {
	id, err := New(TypeC25519)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	encoded, err := Marshal(id, true)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	decoded, consumed, err := Unmarshal(encoded)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if consumed != len(encoded) {
		t.Errorf("consumed = %d, want %d", consumed, len(encoded))
	}
	if decoded.Address() != id.Address() {
		t.Error("round-tripped address mismatch")
	}

	s := id.StringWithPrivate()
	parsed, err := FromString(s)
	if err != nil {
		t.Fatalf("FromString: %v", err)
	}
	if parsed.Address() != id.Address() {
		t.Error("text round-trip address mismatch")
	}
}
