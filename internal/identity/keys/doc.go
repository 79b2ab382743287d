// Package keys wraps the elliptic-curve primitives the identity subsystem
// is built on: Curve25519 ECDH, Ed25519 signing, their 64-byte combined
// form, and NIST P-384 ECDSA/ECDH. It knows nothing about addresses,
// proof-of-work, or wire formats; those live in internal/identity.
package keys
