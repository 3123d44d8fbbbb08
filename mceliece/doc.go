// This package implements the McEliece public-key cryptosystem over
// binary Goppa codes, along with the CCA2-secure conversions of
// Fujisaki-Okamoto, Kobara-Imai and Pointcheval.
//
// WARNING: the plain McEliece cryptosystem (the [Encrypt] and [Decrypt]
// functions, and the raw EncryptPrimitive and DecryptPrimitive methods)
// is malleable and must not be used to encrypt application data. Only
// the CCA2 conversions provide semantic security against active
// attackers. The parameter sets supported here are the classic ones
// (code length up to 2^16); they do not follow the Classic McEliece KEM
// specification and are not interoperable with it.
//
// A parameter set is characterized by the extension degree m of the
// field GF(2^m), which gives the code length n = 2^m, and by the number
// t of errors the code can correct. The code dimension is k = n - m*t.
// The default parameters (m = 11, t = 50) are obtained with
// [DefaultParameters]; [NewParameters] and [ParametersForKeySize] build
// other sets.
//
// There are two kinds of key pairs. [KeyGen] returns a plain key pair
// whose public generator matrix is scrambled with a random invertible
// matrix and a random permutation. [KeyGenCCA2] returns a key pair for
// the CCA2 conversions, whose public matrix is the non-identity part of
// the systematic generator. Both functions take a source of randomness,
// which MUST be cryptographically secure; if the source is nil, then the
// operating system's RNG is used (through crypto/rand.Reader). A 32-byte
// seed is read from the source, and the rest of key generation is
// deterministic.
//
// Keys have a compact binary encoding (the Bytes method of each key
// type); [DecodeKey] and its typed variants decode them. The encoded
// sizes are given by the methods of [Parameters].
//
// The CCA2 conversions are used with [EncryptFujisakiOkamoto],
// [EncryptKobaraImai] and [EncryptPointcheval] and the matching
// decryption functions, or through the [Scheme] dispatch functions
// [EncryptCCA2] and [DecryptCCA2]. Each of them is parameterized by a
// hash function identifier (one of the [crypto.Hash] constants listed in
// [SupportedHashes]). Decryption reports every failure with the single
// error [ErrInvalidCiphertext], so that callers cannot tell which check
// failed.
//
// Keys are immutable once built, and can be used concurrently from
// several goroutines.
package mceliece
