package identity

import "testing"

func TestAddressReserved(t *testing.T) {
	cases := []struct {
		addr     Address
		reserved bool
	}{
		{0, true},
		{0xff00000001, true},
		{0xffffffffff, true},
		{1, false},
		{0x1234567890, false},
	}
	for _, c := range cases {
		if got := c.addr.IsReserved(); got != c.reserved {
			t.Errorf("Address(%#x).IsReserved() = %v, want %v", uint64(c.addr), got, c.reserved)
		}
	}
}

func TestAddressRoundTrip(t *testing.T) {
	want := Address(0x1a2b3c4d5e)
	b := want.Bytes()
	got := AddressFromBytes(b[:])
	if got != want {
		t.Fatalf("round trip: got %#x, want %#x", uint64(got), uint64(want))
	}

	s := want.String()
	parsed, ok := ParseAddress(s)
	if !ok || parsed != want {
		t.Fatalf("ParseAddress(%q) = %#x, %v; want %#x, true", s, uint64(parsed), ok, uint64(want))
	}
}

func TestParseAddressRejectsMalformed(t *testing.T) {
	if _, ok := ParseAddress("not-hex!!!"); ok {
		t.Error("expected malformed address string to be rejected")
	}
	if _, ok := ParseAddress("abcd"); ok {
		t.Error("expected short address string to be rejected")
	}
}
