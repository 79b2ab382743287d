package identity

import "crypto/sha512"

// Marshal encodes the identity in the fixed binary wire format: a 5-byte
// address, a 1-byte type tag, the type-specific public key, a 1-byte
// private-key length (0 or the type's fixed private size), and that many
// private-key bytes when includePrivate is true and a private key is
// present.
func (id *Identity) Marshal(includePrivate bool) ([]byte, error) {
	writePrivate := includePrivate && id.hasPrivate

	size := AddressSize + 1 + id.publicLen + 1
	if writePrivate {
		size += id.privateLen
	}

	buf := make([]byte, size)
	addrBytes := id.Address().Bytes()
	copy(buf[0:AddressSize], addrBytes[:])
	buf[AddressSize] = byte(id.typ)
	offset := AddressSize + 1

	copy(buf[offset:], id.PublicKey())
	offset += id.publicLen

	if writePrivate {
		buf[offset] = byte(id.privateLen)
		offset++
		priv, _ := id.PrivateKey()
		copy(buf[offset:], priv)
		offset += id.privateLen
	} else {
		buf[offset] = 0
		offset++
	}

	return buf[:offset], nil
}

// Unmarshal decodes an identity from its binary wire form, returning the
// identity and the number of bytes consumed. For type 1, it additionally
// verifies that the stored address matches the first 5 bytes of
// SHA-384(public key).
func Unmarshal(buf []byte) (*Identity, int, error) {
	if len(buf) < AddressSize+1+1 {
		return nil, 0, ErrMalformedInput
	}

	addr := AddressFromBytes(buf[0:AddressSize])
	typ := Type(buf[AddressSize])
	offset := AddressSize + 1

	var publicSize, privateSize int
	switch typ {
	case TypeC25519:
		publicSize, privateSize = publicSizeC25519, privateSizeC25519
	case TypeP384:
		publicSize, privateSize = publicSizeP384, privateSizeP384
	default:
		return nil, 0, ErrMalformedInput
	}

	if len(buf) < offset+publicSize+1 {
		return nil, 0, ErrMalformedInput
	}
	public := buf[offset : offset+publicSize]
	offset += publicSize

	privLen := int(buf[offset])
	offset++
	if privLen != 0 && privLen != privateSize {
		return nil, 0, ErrMalformedInput
	}

	var private []byte
	if privLen != 0 {
		if len(buf) < offset+privLen {
			return nil, 0, ErrMalformedInput
		}
		private = buf[offset : offset+privLen]
		offset += privLen
	}

	hash := sha512.Sum384(public)
	if typ == TypeP384 {
		wantAddr := AddressFromBytes(hash[0:5])
		if wantAddr != addr {
			return nil, 0, ErrInvalidIdentity
		}
	}

	id := &Identity{typ: typ, publicLen: publicSize}
	copy(id.public[:], public)
	id.fingerprint = Fingerprint{Address: addr, Hash: hash}
	if private != nil {
		id.hasPrivate = true
		id.privateLen = privateSize
		copy(id.private[:], private)
	}

	return id, offset, nil
}
