// Package pow implements the two memory-hard proof-of-work functions that
// gate identity generation and validation: the V0 Frankenhash used by
// type-0 (Curve25519/Ed25519) identities, and the V1 working-buffer hash
// used by type-1 (P-384) identities. Neither function depends on anything
// outside this package; callers in internal/identity decide how the result
// is used.
package pow
