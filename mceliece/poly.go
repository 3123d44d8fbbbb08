package mceliece

import (
	"fmt"
	"io"
	"strings"
)

// Polynomials over GF(2^m) are handled internally as coefficient slices
// (index i holds the coefficient of X^i), always kept in normal form:
// the last coefficient is non-zero, and the zero polynomial is the
// empty slice.

// Trim leading zero coefficients.
func poly_norm(a []uint32) []uint32 {
	d := len(a)
	for d > 0 && a[d-1] == 0 {
		d--
	}
	return a[:d]
}

// Degree of a normalized polynomial (-1 for zero).
func poly_degree(a []uint32) int {
	return len(a) - 1
}

func poly_clone(a []uint32) []uint32 {
	r := make([]uint32, len(a))
	copy(r, a)
	return r
}

func poly_add(a, b []uint32) []uint32 {
	if len(a) < len(b) {
		a, b = b, a
	}
	r := poly_clone(a)
	for i, x := range b {
		r[i] ^= x
	}
	return poly_norm(r)
}

func poly_mul(f *Field, a, b []uint32) []uint32 {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	r := make([]uint32, len(a)+len(b)-1)
	for i, x := range a {
		if x == 0 {
			continue
		}
		for j, y := range b {
			r[i+j] ^= f.Mul(x, y)
		}
	}
	return poly_norm(r)
}

func poly_mul_elem(f *Field, a []uint32, e uint32) []uint32 {
	if e == 0 {
		return nil
	}
	r := make([]uint32, len(a))
	for i, x := range a {
		r[i] = f.Mul(x, e)
	}
	return r
}

// Multiply by X^k.
func poly_shift(a []uint32, k int) []uint32 {
	if len(a) == 0 {
		return nil
	}
	r := make([]uint32, len(a)+k)
	copy(r[k:], a)
	return r
}

// Quotient and remainder of a by b (b non-zero).
func poly_divmod(f *Field, a, b []uint32) (q, r []uint32) {
	db := poly_degree(b)
	r = poly_clone(a)
	if len(r) < len(b) {
		return nil, r
	}
	q = make([]uint32, len(r)-db)
	hinv := f.inv(b[db])
	for d := poly_degree(r); d >= db; d-- {
		c := r[d]
		if c == 0 {
			continue
		}
		c = f.Mul(c, hinv)
		q[d-db] = c
		for i, x := range b {
			r[d-db+i] ^= f.Mul(x, c)
		}
	}
	return poly_norm(q), poly_norm(r[:db])
}

func poly_mod(f *Field, a, g []uint32) []uint32 {
	_, r := poly_divmod(f, a, g)
	return r
}

func poly_mulmod(f *Field, a, b, g []uint32) []uint32 {
	return poly_mod(f, poly_mul(f, a, b), g)
}

// Make a non-zero polynomial monic.
func poly_monic(f *Field, a []uint32) []uint32 {
	if len(a) == 0 {
		return nil
	}
	return poly_mul_elem(f, a, f.inv(a[len(a)-1]))
}

// Monic GCD.
func poly_gcd(f *Field, a, b []uint32) []uint32 {
	for len(b) != 0 {
		a, b = b, poly_mod(f, a, b)
	}
	return poly_monic(f, a)
}

// Horner evaluation at x.
func poly_eval(f *Field, a []uint32, x uint32) uint32 {
	r := uint32(0)
	for i := len(a) - 1; i >= 0; i-- {
		r = f.Mul(r, x) ^ a[i]
	}
	return r
}

// Ben-Or irreducibility test over GF(2^m): g of degree d is irreducible
// iff gcd(X^(q^i) - X, g) = 1 for i = 1 to d/2, with q = 2^m. A
// polynomial with a zero constant term is divisible by X and rejected.
func poly_is_irreducible(f *Field, g []uint32) bool {
	d := poly_degree(g)
	if d < 1 {
		return false
	}
	if g[0] == 0 {
		return d == 1
	}
	x := []uint32{0, 1}
	u := x
	for i := 0; i < (d >> 1); i++ {
		for j := uint(0); j < f.m; j++ {
			u = poly_mulmod(f, u, u, g)
		}
		if poly_degree(poly_gcd(f, poly_add(u, x), g)) != 0 {
			return false
		}
	}
	return true
}

// Random monic irreducible polynomial of degree t: random coefficients
// with a non-zero constant term; while the candidate is reducible, one
// random coefficient is resampled.
func random_irreducible(f *Field, t int, pc *shake_prng) []uint32 {
	g := make([]uint32, t+1)
	g[t] = 1
	g[0] = f.random_nonzero(pc)
	for i := 1; i < t; i++ {
		g[i] = f.random_element(pc)
	}
	for !poly_is_irreducible(f, g) {
		j := int(pc.next_below(uint32(t)))
		if j == 0 {
			g[0] = f.random_nonzero(pc)
		} else {
			g[j] = f.random_element(pc)
		}
	}
	return g
}

// Polynomial is an immutable polynomial over a field GF(2^m).
type Polynomial struct {
	field  *Field
	coeffs []uint32
}

// NewPolynomial builds a polynomial from its coefficients (index i is
// the coefficient of X^i). All coefficients must be field elements.
func NewPolynomial(f *Field, coeffs []uint32) (*Polynomial, error) {
	for _, c := range coeffs {
		if !f.Contains(c) {
			return nil, fmt.Errorf("%w: coefficient %#x not in %v",
				ErrInvalidParameter, c, f)
		}
	}
	return &Polynomial{field: f, coeffs: poly_norm(poly_clone(coeffs))}, nil
}

// RandomIrreduciblePolynomial returns a random monic irreducible
// polynomial of degree t over f.
func RandomIrreduciblePolynomial(f *Field, t int, rng io.Reader) (*Polynomial, error) {
	if t < 1 {
		return nil, ErrInvalidParameter
	}
	seed, err := read_seed(rng)
	if err != nil {
		return nil, err
	}
	return &Polynomial{field: f, coeffs: random_irreducible(f, t, new_shake_prng(seed))}, nil
}

// Field returns the coefficient field.
func (p *Polynomial) Field() *Field {
	return p.field
}

// Degree returns the degree (-1 for the zero polynomial).
func (p *Polynomial) Degree() int {
	return poly_degree(p.coeffs)
}

// Coefficient returns the coefficient of X^i.
func (p *Polynomial) Coefficient(i int) uint32 {
	if i < 0 || i >= len(p.coeffs) {
		return 0
	}
	return p.coeffs[i]
}

// Coefficients returns a copy of the coefficients.
func (p *Polynomial) Coefficients() []uint32 {
	return poly_clone(p.coeffs)
}

// HeadCoefficient returns the leading coefficient (0 for zero).
func (p *Polynomial) HeadCoefficient() uint32 {
	if len(p.coeffs) == 0 {
		return 0
	}
	return p.coeffs[len(p.coeffs)-1]
}

// EvaluateAt returns p(x).
func (p *Polynomial) EvaluateAt(x uint32) uint32 {
	return poly_eval(p.field, p.coeffs, x)
}

// Add returns p+q.
func (p *Polynomial) Add(q *Polynomial) *Polynomial {
	return &Polynomial{field: p.field, coeffs: poly_add(p.coeffs, q.coeffs)}
}

// Mul returns p*q.
func (p *Polynomial) Mul(q *Polynomial) *Polynomial {
	return &Polynomial{field: p.field, coeffs: poly_mul(p.field, p.coeffs, q.coeffs)}
}

// MulElement returns e*p.
func (p *Polynomial) MulElement(e uint32) *Polynomial {
	return &Polynomial{field: p.field, coeffs: poly_mul_elem(p.field, p.coeffs, e)}
}

// DivMod returns the quotient and remainder of p by q.
func (p *Polynomial) DivMod(q *Polynomial) (*Polynomial, *Polynomial, error) {
	if len(q.coeffs) == 0 {
		return nil, nil, ErrDivisionByZero
	}
	a, b := poly_divmod(p.field, p.coeffs, q.coeffs)
	return &Polynomial{field: p.field, coeffs: a}, &Polynomial{field: p.field, coeffs: b}, nil
}

// Mod returns p mod q.
func (p *Polynomial) Mod(q *Polynomial) (*Polynomial, error) {
	_, r, err := p.DivMod(q)
	return r, err
}

// GCD returns the monic greatest common divisor of p and q.
func (p *Polynomial) GCD(q *Polynomial) *Polynomial {
	return &Polynomial{field: p.field, coeffs: poly_gcd(p.field, p.coeffs, q.coeffs)}
}

// IsIrreducible reports whether p is irreducible over its field.
func (p *Polynomial) IsIrreducible() bool {
	return poly_is_irreducible(p.field, p.coeffs)
}

// Equal reports whether both polynomials have the same coefficients
// (over the same field).
func (p *Polynomial) Equal(q *Polynomial) bool {
	if !p.field.Equal(q.field) || len(p.coeffs) != len(q.coeffs) {
		return false
	}
	for i := range p.coeffs {
		if p.coeffs[i] != q.coeffs[i] {
			return false
		}
	}
	return true
}

// String implements fmt.Stringer.
func (p *Polynomial) String() string {
	if len(p.coeffs) == 0 {
		return "0"
	}
	var terms []string
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		c := p.coeffs[i]
		if c == 0 {
			continue
		}
		switch i {
		case 0:
			terms = append(terms, fmt.Sprintf("%#x", c))
		case 1:
			terms = append(terms, fmt.Sprintf("%#x*X", c))
		default:
			terms = append(terms, fmt.Sprintf("%#x*X^%d", c, i))
		}
	}
	return strings.Join(terms, " + ")
}
