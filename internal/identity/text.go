package identity

import (
	"crypto/sha512"
	"encoding/base32"
	"encoding/hex"
	"strconv"
	"strings"
)

// base32Encoding is the lowercase, unpadded RFC 4648 base-32 alphabet used
// to encode type-1 public and private keys in text form. Addresses and
// type-0 keys are printed as lowercase hex instead.
var base32Encoding = base32.NewEncoding("abcdefghijklmnopqrstuvwxyz234567").WithPadding(base32.NoPadding)

// String renders the identity in the `address:type:public[:private]` text
// form. Type 0 keys are lowercase hex; type 1 keys use base32Encoding.
func (id *Identity) String() string {
	return id.toString(false)
}

// StringWithPrivate is String but additionally appends the private key
// when this identity has one.
func (id *Identity) StringWithPrivate() string {
	return id.toString(true)
}

func (id *Identity) toString(includePrivate bool) string {
	var fields []string
	fields = append(fields, id.Address().String())
	fields = append(fields, strconv.Itoa(int(id.typ)))
	fields = append(fields, encodeKey(id.typ, id.PublicKey()))

	if includePrivate && id.hasPrivate {
		priv, _ := id.PrivateKey()
		fields = append(fields, encodeKey(id.typ, priv))
	}

	return strings.Join(fields, ":")
}

func encodeKey(typ Type, b []byte) string {
	if typ == TypeC25519 {
		return hex.EncodeToString(b)
	}
	return base32Encoding.EncodeToString(b)
}

func decodeKey(typ Type, s string) ([]byte, error) {
	if typ == TypeC25519 {
		b, err := hex.DecodeString(s)
		if err != nil {
			return nil, ErrMalformedInput
		}
		return b, nil
	}
	b, err := base32Encoding.DecodeString(strings.ToLower(s))
	if err != nil {
		return nil, ErrMalformedInput
	}
	return b, nil
}

// FromString parses the text form produced by String/StringWithPrivate.
// Three fields yield an identity with no private key; four fields yield
// one with a private key. For type 1, the address is re-checked against
// SHA-384 of the decoded public key.
func FromString(s string) (*Identity, error) {
	fields := strings.Split(s, ":")
	if len(fields) != 3 && len(fields) != 4 {
		return nil, ErrMalformedInput
	}

	addr, ok := ParseAddress(fields[0])
	if !ok {
		return nil, ErrMalformedInput
	}
	if addr.IsReserved() {
		return nil, ErrMalformedInput
	}

	typeNum, err := strconv.Atoi(fields[1])
	if err != nil {
		return nil, ErrMalformedInput
	}
	typ := Type(typeNum)

	var publicSize, privateSize int
	switch typ {
	case TypeC25519:
		publicSize, privateSize = publicSizeC25519, privateSizeC25519
	case TypeP384:
		publicSize, privateSize = publicSizeP384, privateSizeP384
	default:
		return nil, ErrMalformedInput
	}

	public, err := decodeKey(typ, fields[2])
	if err != nil || len(public) != publicSize {
		return nil, ErrMalformedInput
	}

	hash := sha512.Sum384(public)
	if typ == TypeP384 {
		wantAddr := AddressFromBytes(hash[0:5])
		if wantAddr != addr {
			return nil, ErrInvalidIdentity
		}
	}

	id := &Identity{typ: typ, publicLen: publicSize}
	copy(id.public[:], public)
	id.fingerprint = Fingerprint{Address: addr, Hash: hash}

	if len(fields) == 4 {
		private, err := decodeKey(typ, fields[3])
		if err != nil || len(private) != privateSize {
			return nil, ErrMalformedInput
		}
		id.hasPrivate = true
		id.privateLen = privateSize
		copy(id.private[:], private)
	}

	return id, nil
}
