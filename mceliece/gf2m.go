package mceliece

import (
	"fmt"
	"io"
	"math/bits"
)

// Field is the finite field GF(2^m), with elements represented as
// integers in [0, 2^m-1]: bit i of an element is the coefficient of
// X^i in its polynomial representation modulo the defining polynomial.
// A Field is immutable and safe for concurrent use.
type Field struct {
	m    uint
	poly uint64
}

// Arithmetic over GF(2)[X], polynomials packed into 64-bit words.

// Degree of a GF(2) polynomial (-1 for zero).
func gf2_degree(a uint64) int {
	return bits.Len64(a) - 1
}

// Remainder of a modulo p (p non-zero).
func gf2_mod(a uint64, p uint64) uint64 {
	dp := gf2_degree(p)
	for {
		da := gf2_degree(a)
		if da < dp {
			return a
		}
		a ^= p << uint(da-dp)
	}
}

// Product of a and b modulo p; a and b MUST have degree lower than
// that of p, and p MUST have degree at most 32.
func gf2_mulmod(a uint64, b uint64, p uint64) uint64 {
	dp := uint(gf2_degree(p))
	top := uint64(1) << dp
	r := uint64(0)
	for b != 0 {
		if (b & 1) != 0 {
			r ^= a
		}
		b >>= 1
		a <<= 1
		if (a & top) != 0 {
			a ^= p
		}
	}
	return r
}

// GCD of two GF(2) polynomials.
func gf2_gcd(a uint64, b uint64) uint64 {
	for b != 0 {
		a, b = b, gf2_mod(a, b)
	}
	return a
}

// Ben-Or irreducibility test for a GF(2) polynomial of degree 1 to 32:
// p is irreducible iff gcd(X^(2^i) - X, p) = 1 for all i <= deg(p)/2.
func gf2_is_irreducible(p uint64) bool {
	d := gf2_degree(p)
	if d < 1 || d > 32 {
		return false
	}
	if d == 1 {
		return true
	}
	if (p & 1) == 0 {
		return false
	}
	u := uint64(2)
	for i := 0; i < (d >> 1); i++ {
		u = gf2_mulmod(u, u, p)
		if gf2_gcd(u^2, p) != 1 {
			return false
		}
	}
	return true
}

// IrreduciblePolynomial returns the smallest irreducible polynomial
// over GF(2) of degree m (1 to 32), packed with bit i holding the
// coefficient of X^i.
func IrreduciblePolynomial(m int) (uint64, error) {
	if m < 1 || m > 32 {
		return 0, fmt.Errorf("%w: field degree %d not in [1,32]",
			ErrInvalidParameter, m)
	}
	if m == 1 {
		return 2, nil
	}
	lo := (uint64(1) << uint(m)) + 1
	hi := uint64(1) << uint(m+1)
	for p := lo; p < hi; p += 2 {
		if gf2_is_irreducible(p) {
			return p, nil
		}
	}
	// Unreachable: irreducible polynomials exist for all degrees.
	return 0, ErrInvalidParameter
}

// NewField creates GF(2^m) using the smallest irreducible polynomial of
// degree m. The degree must be in [1,32].
func NewField(m int) (*Field, error) {
	p, err := IrreduciblePolynomial(m)
	if err != nil {
		return nil, err
	}
	return &Field{m: uint(m), poly: p}, nil
}

// NewFieldWithPoly creates GF(2^m) with an explicit defining polynomial,
// which must be irreducible and of degree exactly m.
func NewFieldWithPoly(m int, poly uint64) (*Field, error) {
	if m < 1 || m > 32 {
		return nil, fmt.Errorf("%w: field degree %d not in [1,32]",
			ErrInvalidParameter, m)
	}
	if gf2_degree(poly) != m {
		return nil, fmt.Errorf("%w: polynomial degree %d, expected %d",
			ErrInvalidParameter, gf2_degree(poly), m)
	}
	if !gf2_is_irreducible(poly) {
		return nil, fmt.Errorf("%w: polynomial %#x is reducible",
			ErrInvalidParameter, poly)
	}
	return &Field{m: uint(m), poly: poly}, nil
}

// Degree returns m.
func (f *Field) Degree() int {
	return int(f.m)
}

// Polynomial returns the defining polynomial.
func (f *Field) Polynomial() uint64 {
	return f.poly
}

// Size returns 2^m, the number of field elements.
func (f *Field) Size() uint64 {
	return uint64(1) << f.m
}

// Contains reports whether a is a valid element encoding.
func (f *Field) Contains(a uint32) bool {
	return uint64(a) < f.Size()
}

// Equal reports whether both fields have the same defining polynomial.
func (f *Field) Equal(g *Field) bool {
	return f.m == g.m && f.poly == g.poly
}

// Add returns a+b (which is also a-b).
func (f *Field) Add(a, b uint32) uint32 {
	return a ^ b
}

// Mul returns a*b.
func (f *Field) Mul(a, b uint32) uint32 {
	return uint32(gf2_mulmod(uint64(a), uint64(b), f.poly))
}

// Square returns a^2.
func (f *Field) Square(a uint32) uint32 {
	return f.Mul(a, a)
}

// Exp returns a^e (with 0^0 = 1).
func (f *Field) Exp(a uint32, e uint64) uint32 {
	r := uint32(1)
	for e != 0 {
		if (e & 1) != 0 {
			r = f.Mul(r, a)
		}
		a = f.Mul(a, a)
		e >>= 1
	}
	return r
}

// Inverse returns 1/a, or ErrDivisionByZero if a is zero.
func (f *Field) Inverse(a uint32) (uint32, error) {
	if a == 0 {
		return 0, ErrDivisionByZero
	}
	return f.inv(a), nil
}

// Unchecked inverse: a^(2^m - 2), which is 0 for a = 0.
func (f *Field) inv(a uint32) uint32 {
	return f.Exp(a, f.Size()-2)
}

// Div returns a/b, or ErrDivisionByZero if b is zero.
func (f *Field) Div(a, b uint32) (uint32, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return f.Mul(a, f.inv(b)), nil
}

// Sqrt returns the unique square root of a, i.e. a^(2^(m-1)).
func (f *Field) Sqrt(a uint32) uint32 {
	for i := uint(1); i < f.m; i++ {
		a = f.Mul(a, a)
	}
	return a
}

// RandomElement returns a uniformly random element, reading a seed from
// rng (nil to use the OS RNG).
func (f *Field) RandomElement(rng io.Reader) (uint32, error) {
	seed, err := read_seed(rng)
	if err != nil {
		return 0, err
	}
	return f.random_element(new_shake_prng(seed)), nil
}

// RandomNonZeroElement returns a uniformly random non-zero element.
func (f *Field) RandomNonZeroElement(rng io.Reader) (uint32, error) {
	seed, err := read_seed(rng)
	if err != nil {
		return 0, err
	}
	return f.random_nonzero(new_shake_prng(seed)), nil
}

func (f *Field) random_element(pc *shake_prng) uint32 {
	if f.m == 32 {
		return pc.next_u32()
	}
	return pc.next_u32() & ((uint32(1) << f.m) - 1)
}

func (f *Field) random_nonzero(pc *shake_prng) uint32 {
	for {
		if x := f.random_element(pc); x != 0 {
			return x
		}
	}
}

// String implements fmt.Stringer.
func (f *Field) String() string {
	return fmt.Sprintf("GF(2^%d) mod %#x", f.m, f.poly)
}
