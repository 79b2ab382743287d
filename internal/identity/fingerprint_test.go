package identity

import "testing"

func TestFingerprintZero(t *testing.T) {
	var f Fingerprint
	if !f.IsZero() {
		t.Error("expected zero-value Fingerprint to be IsZero")
	}

	f.Address = 1
	if f.IsZero() {
		t.Error("expected Fingerprint with nonzero address to not be IsZero")
	}
}

func TestFingerprintEqual(t *testing.T) {
	a := Fingerprint{Address: 42, Hash: [48]byte{1, 2, 3}}
	b := Fingerprint{Address: 42, Hash: [48]byte{1, 2, 3}}
	c := Fingerprint{Address: 42, Hash: [48]byte{1, 2, 4}}

	if !a.Equal(b) {
		t.Error("expected equal fingerprints to compare equal")
	}
	if a.Equal(c) {
		t.Error("expected differing hashes to compare unequal")
	}
}
