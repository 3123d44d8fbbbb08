package mceliece

import (
	"fmt"
)

// CanonicalCheckMatrix builds the (m*t)*n parity-check matrix over
// GF(2) of the binary Goppa code with support all n = 2^m elements of f
// and Goppa polynomial g (degree t). g must have no root in f.
//
// Over GF(2^m), entry (i,j) is
//
//	sum_{k=0..i} alpha_j^k * g_{t+k-i} / g(alpha_j)
//
// with alpha_j = j. Each entry is then expanded into m rows, most
// significant bit first: bit u of entry (i,j) goes to row (i+1)*m-u-1.
func CanonicalCheckMatrix(f *Field, g *Polynomial) (*Matrix, error) {
	if !f.Equal(g.field) {
		return nil, ErrInvalidParameter
	}
	t := g.Degree()
	if t < 1 || f.m > 24 {
		return nil, ErrInvalidParameter
	}
	m := int(f.m)
	n := 1 << f.m
	gc := g.coeffs

	// yz[k][j] = alpha_j^k / g(alpha_j)
	yz := make([][]uint32, t)
	for k := range yz {
		yz[k] = make([]uint32, n)
	}
	for j := 0; j < n; j++ {
		e := poly_eval(f, gc, uint32(j))
		if e == 0 {
			return nil, fmt.Errorf("%w: Goppa polynomial has root %#x",
				ErrInvalidParameter, j)
		}
		yz[0][j] = f.inv(e)
	}
	for k := 1; k < t; k++ {
		for j := 0; j < n; j++ {
			yz[k][j] = f.Mul(yz[k-1][j], uint32(j))
		}
	}

	h := NewMatrix(m*t, n)
	row := make([]uint32, n)
	for i := 0; i < t; i++ {
		for j := range row {
			row[j] = 0
		}
		for k := 0; k <= i; k++ {
			c := gc[t+k-i]
			if c == 0 {
				continue
			}
			for j := 0; j < n; j++ {
				row[j] ^= f.Mul(yz[k][j], c)
			}
		}
		for j, e := range row {
			for u := 0; e != 0; u++ {
				if (e & 1) != 0 {
					h.data[(i+1)*m-u-1].Set(uint(j))
				}
				e >>= 1
			}
		}
	}
	return h, nil
}

// SyndromeDecode runs Patterson's algorithm on a syndrome computed with
// the canonical check matrix of the Goppa code (f, g); sq is the
// square-root matrix of GF(2^m)[X]/g. It returns the error vector of
// length 2^m. ErrDecodingFailure is returned when the syndrome does not
// correspond to at most deg(g) errors.
func SyndromeDecode(syn *Vector, f *Field, g *Polynomial, sq [][]uint32) (*Vector, error) {
	t := g.Degree()
	if syn.n != int(f.m)*t || len(sq) != t {
		return nil, ErrDimensionMismatch
	}
	return syndrome_decode(syn, f, g.coeffs, sq)
}

func syndrome_decode(syn *Vector, f *Field, g []uint32, sq [][]uint32) (*Vector, error) {
	n := 1 << f.m
	errs := NewVector(n)
	if syn.IsZero() {
		return errs, nil
	}

	// T = S^-1 mod g
	s := poly_norm(syn.to_field_elements(f))
	tt, ok := poly_mod_inverse(f, s, g)
	if !ok {
		return nil, ErrDecodingFailure
	}

	// tau = sqrt(T + X) mod g
	tau := poly_sqrt_mod(f, poly_add(tt, []uint32{0, 1}), sq)

	// a = b*tau mod g with small degrees; the error locator is
	// sigma = a^2 + X*b^2, made monic.
	a, b := poly_fraction(f, tau, g)
	sigma := poly_add(poly_mul(f, a, a), poly_shift(poly_mul(f, b, b), 1))
	if len(sigma) == 0 {
		return nil, ErrDecodingFailure
	}
	sigma = poly_monic(f, sigma)

	for i := 0; i < n; i++ {
		if poly_eval(f, sigma, uint32(i)) == 0 {
			errs.bits.Set(uint(i))
		}
	}
	if errs.Weight() != poly_degree(sigma) {
		return nil, ErrDecodingFailure
	}
	return errs, nil
}

// Syndrome H*c of a word c with respect to a check matrix.
func syndrome(h *Matrix, c *Vector) *Vector {
	s, _ := h.RightMultiply(c)
	return s
}
