package identity

import "sync"

var (
	nilIdentity     *Identity
	nilIdentityOnce sync.Once
)

// Nil returns the canonical NIL identity: type 0, all-zero fingerprint, no
// private key. It is the only module-level identity constant, lazily
// initialized on first use.
func Nil() *Identity {
	nilIdentityOnce.Do(func() {
		nilIdentity = &Identity{typ: TypeC25519, publicLen: publicSizeC25519}
	})
	return nilIdentity
}
