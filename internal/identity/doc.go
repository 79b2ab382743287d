// Package identity implements the Identity subsystem of the overlay
// network: address and fingerprint derivation, generation and validation
// of both identity types against their respective proof-of-work
// functions, signing, verification, key agreement, and binary/text
// marshaling.
//
// Identity values are immutable after construction and safe to share
// across goroutines. Generation is CPU-bound and single-threaded;
// callers wanting concurrency should run multiple Generate calls in
// separate goroutines and take the first result.
package identity
