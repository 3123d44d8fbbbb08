package mceliece

import (
	"fmt"
	"io"
)

// Maximum number of Goppa polynomials tried before key generation gives
// up. A new polynomial is needed only when the check matrix is not of
// full rank, which is rare except for toy parameters.
const max_goppa_tries = 32

// Generate a new key pair for the plain McEliece cryptosystem.
//
//   - params is the parameter set (nil for the defaults m=11, t=50).
//   - rng is the random source to use (nil to use the OS RNG).
//
// A 32-byte seed is read from rng; the rest of the process is
// deterministic for a given seed. An error is reported if the random
// source fails, or if no full-rank Goppa code could be found (which
// indicates degenerate parameters).
func KeyGen(params *Parameters, rng io.Reader) (*PublicKey, *PrivateKey, error) {
	if params == nil {
		params = DefaultParameters()
	}
	seed, err := read_seed(rng)
	if err != nil {
		return nil, nil, err
	}
	pc := new_shake_prng(seed)
	field, goppa, h, short, p1, err := keygen_code(params, pc)
	if err != nil {
		return nil, nil, err
	}

	// G' = [M^T | I] generates the code in systematic coordinates; the
	// public generator is scrambled by S and permuted by P2.
	gp := short.Transpose().extend_left_compact()
	k := gp.rows
	s, sinv, err := random_invertible_matrix(k, pc)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrInvalidParameter, err)
	}
	p2 := random_permutation(params.N(), pc)
	sg, _ := s.Mul(gp)
	g := sg.permute_columns(p2)

	sk, err := new_private_key(field, goppa, h, p1, p2, sinv)
	if err != nil {
		return nil, nil, err
	}
	return &PublicKey{n: params.N(), t: params.t, g: g}, sk, nil
}

// Generate a new key pair for the CCA2 conversions. Parameters are as
// for [KeyGen]. The public matrix is the left compact form of the
// systematic generator, i.e. M^T where [I | M] is the systematic form
// of the check matrix.
func KeyGenCCA2(params *Parameters, rng io.Reader) (*CCA2PublicKey, *CCA2PrivateKey, error) {
	if params == nil {
		params = DefaultParameters()
	}
	seed, err := read_seed(rng)
	if err != nil {
		return nil, nil, err
	}
	pc := new_shake_prng(seed)
	field, goppa, h, short, p, err := keygen_code(params, pc)
	if err != nil {
		return nil, nil, err
	}
	sk, err := new_cca2_private_key(field, goppa, h, p)
	if err != nil {
		return nil, nil, err
	}
	return &CCA2PublicKey{n: params.N(), t: params.t, g: short.Transpose()}, sk, nil
}

// Inner function: sample the Goppa code and reduce its check matrix to
// systematic form. Returned values are the field, the Goppa polynomial,
// the canonical check matrix, the matrix M of the systematic form
// [I | M], and the column permutation.
func keygen_code(params *Parameters, pc *shake_prng) (
	*Field, []uint32, *Matrix, *Matrix, *Permutation, error) {

	field := params.Field()
	for i := 0; i < max_goppa_tries; i++ {
		// The Goppa polynomial must be irreducible of degree t.
		goppa := random_irreducible(field, params.t, pc)

		// Canonical check matrix; it cannot fail for an irreducible
		// polynomial of degree at least 2, which has no root in the field.
		h, err := CanonicalCheckMatrix(field, &Polynomial{field: field, coeffs: goppa})
		if err != nil {
			continue
		}

		// Systematic form; a rank-deficient check matrix requires
		// another polynomial.
		short, p, err := systematic_form(h, pc)
		if err != nil {
			continue
		}
		return field, goppa, h, short, p, nil
	}
	return nil, nil, nil, nil, nil, fmt.Errorf("%w: %w", ErrInvalidParameter, ErrNotFullRank)
}
