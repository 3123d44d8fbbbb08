package mceliece

import (
	"errors"
)

var (
	// ErrInvalidParameter is returned for malformed construction
	// arguments: field degree out of range, error count too large for
	// the code length, or a supplied polynomial that is not irreducible.
	ErrInvalidParameter = errors.New("mceliece: invalid parameter")

	// ErrLengthMismatch is returned when two vectors (or a vector and
	// its byte encoding) do not have compatible lengths.
	ErrLengthMismatch = errors.New("mceliece: length mismatch")

	// ErrDimensionMismatch is returned when matrix dimensions do not
	// fit the requested operation.
	ErrDimensionMismatch = errors.New("mceliece: dimension mismatch")

	// ErrNotFullRank is returned when Gaussian elimination cannot
	// proceed. Key generation recovers from it by resampling.
	ErrNotFullRank = errors.New("mceliece: matrix is not of full rank")

	// ErrDecodingFailure is returned by the syndrome decoder when the
	// syndrome does not correspond to at most t errors.
	ErrDecodingFailure = errors.New("mceliece: syndrome decoding failed")

	// ErrInvalidCiphertext is the only error returned by decryption.
	// It is deliberately vague to avoid adaptive attacks.
	ErrInvalidCiphertext = errors.New("mceliece: invalid ciphertext")

	// ErrOutOfRange is returned by the combinatorial encoder when the
	// index is not lower than C(n,t), and by the decoder when the vector
	// does not have length n and weight t.
	ErrOutOfRange = errors.New("mceliece: value out of range")

	// ErrDivisionByZero is returned when inverting zero in GF(2^m).
	ErrDivisionByZero = errors.New("mceliece: division by zero")

	// ErrInvalidKey is returned when an encoded key cannot be decoded.
	ErrInvalidKey = errors.New("mceliece: invalid key")

	// ErrUnsupportedHash is returned for an unknown digest identifier.
	ErrUnsupportedHash = errors.New("mceliece: unsupported hash function")
)
