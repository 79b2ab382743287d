package keys

import "errors"

// ErrShortBuffer reports a caller-supplied output buffer smaller than the
// fixed size a key primitive needs to write. The primitives in this
// package write into fixed-size arrays, so none of them returns it.
var ErrShortBuffer = errors.New("keys: destination buffer too short")

// ErrInvalidKey is returned when a key's byte encoding is malformed (wrong
// length, or a point that does not lie on the expected curve).
var ErrInvalidKey = errors.New("keys: invalid key encoding")
