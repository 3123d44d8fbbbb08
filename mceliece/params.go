package mceliece

import (
	"fmt"
)

// Default parameters: m = 11 (n = 2048), t = 50.
const (
	DefaultM = 11
	DefaultT = 50
)

// Largest supported extension degree for key generation. Permutation
// entries and field elements are encoded over 16 bits.
const max_key_m = 16

// Parameters defines a McEliece parameter set: the extension degree m
// (code length n = 2^m), the error-correction capability t, and the
// polynomial defining GF(2^m). Parameters are immutable.
type Parameters struct {
	m    int
	t    int
	poly uint64
}

// DefaultParameters returns m = 11, t = 50 with the smallest
// irreducible polynomial of degree 11.
func DefaultParameters() *Parameters {
	p, err := NewParameters(DefaultM, DefaultT)
	if err != nil {
		panic(err)
	}
	return p
}

// NewParameters returns the parameter set (m, t), with the smallest
// irreducible polynomial of degree m defining GF(2^m).
func NewParameters(m, t int) (*Parameters, error) {
	poly, err := IrreduciblePolynomial(m)
	if err != nil {
		return nil, err
	}
	return NewParametersWithPoly(m, t, poly)
}

// NewParametersWithPoly returns the parameter set (m, t) with an
// explicit field polynomial, which must be irreducible of degree m.
func NewParametersWithPoly(m, t int, poly uint64) (*Parameters, error) {
	if _, err := NewFieldWithPoly(m, poly); err != nil {
		return nil, err
	}
	if m > max_key_m {
		return nil, fmt.Errorf("%w: degree %d exceeds %d",
			ErrInvalidParameter, m, max_key_m)
	}
	n := 1 << uint(m)
	if t < 2 || m*t >= n {
		return nil, fmt.Errorf("%w: t = %d out of range for n = %d",
			ErrInvalidParameter, t, n)
	}
	return &Parameters{m: m, t: t, poly: poly}, nil
}

// ParametersForKeySize derives parameters from a target code length in
// bits: m is the smallest integer with 2^m >= keysize, and
// t = (2^m / 2) / m.
func ParametersForKeySize(keysize int) (*Parameters, error) {
	if keysize < 1 {
		return nil, ErrInvalidParameter
	}
	m := 0
	n := 1
	for n < keysize {
		n <<= 1
		m++
	}
	if m == 0 {
		return nil, ErrInvalidParameter
	}
	return NewParameters(m, (n>>1)/m)
}

// M returns the extension degree.
func (p *Parameters) M() int {
	return p.m
}

// T returns the error-correction capability.
func (p *Parameters) T() int {
	return p.t
}

// N returns the code length 2^m.
func (p *Parameters) N() int {
	return 1 << uint(p.m)
}

// K returns the code dimension n - m*t.
func (p *Parameters) K() int {
	return p.N() - p.m*p.t
}

// FieldPolynomial returns the polynomial defining GF(2^m).
func (p *Parameters) FieldPolynomial() uint64 {
	return p.poly
}

// Field returns GF(2^m).
func (p *Parameters) Field() *Field {
	return &Field{m: uint(p.m), poly: p.poly}
}

// String implements fmt.Stringer.
func (p *Parameters) String() string {
	return fmt.Sprintf("McEliece(m=%d, n=%d, k=%d, t=%d)", p.m, p.N(), p.K(), p.t)
}
