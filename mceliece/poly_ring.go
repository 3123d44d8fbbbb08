package mceliece

// PolynomialRing is the ring GF(2^m)[X]/g for a fixed modulus g. It
// owns the square-root matrix of the ring, computed once at
// construction. A PolynomialRing is immutable.
type PolynomialRing struct {
	field *Field
	g     []uint32
	sqrt  [][]uint32
}

// NewPolynomialRing builds the ring modulo g. The squaring map must be
// invertible modulo g, which holds whenever g is square-free (in
// particular for an irreducible Goppa polynomial); otherwise
// ErrInvalidParameter is returned.
func NewPolynomialRing(g *Polynomial) (*PolynomialRing, error) {
	if g.Degree() < 1 {
		return nil, ErrInvalidParameter
	}
	sq, ok := sqrt_matrix(g.field, g.coeffs)
	if !ok {
		return nil, ErrInvalidParameter
	}
	return &PolynomialRing{field: g.field, g: poly_clone(g.coeffs), sqrt: sq}, nil
}

// Compute the square-root matrix Q of GF(2^m)[X]/g, with t = deg(g).
// With the squaring matrix A defined by A[k][i] = coefficient of X^k in
// X^(2i) mod g, the square of a = sum a_i X^i is b = A*(a_i^2). Q is
// the inverse of A; hence a_i = sqrt(sum_k Q[i][k] b_k).
func sqrt_matrix(f *Field, g []uint32) ([][]uint32, bool) {
	t := poly_degree(g)
	a := make([][]uint32, t)
	for k := range a {
		a[k] = make([]uint32, t)
	}
	for i := 0; i < t; i++ {
		mono := make([]uint32, 2*i+1)
		mono[2*i] = 1
		col := poly_mod(f, mono, g)
		for k, c := range col {
			a[k][i] = c
		}
	}
	return gf2m_matrix_inverse(f, a)
}

// Invert a square matrix over GF(2^m) with Gauss-Jordan elimination.
// The source matrix is consumed. Returned boolean is false if the
// matrix is singular.
func gf2m_matrix_inverse(f *Field, a [][]uint32) ([][]uint32, bool) {
	n := len(a)
	inv := make([][]uint32, n)
	for i := range inv {
		inv[i] = make([]uint32, n)
		inv[i][i] = 1
	}
	for c := 0; c < n; c++ {
		p := -1
		for r := c; r < n; r++ {
			if a[r][c] != 0 {
				p = r
				break
			}
		}
		if p < 0 {
			return nil, false
		}
		a[c], a[p] = a[p], a[c]
		inv[c], inv[p] = inv[p], inv[c]
		h := f.inv(a[c][c])
		for j := 0; j < n; j++ {
			a[c][j] = f.Mul(a[c][j], h)
			inv[c][j] = f.Mul(inv[c][j], h)
		}
		for r := 0; r < n; r++ {
			e := a[r][c]
			if r == c || e == 0 {
				continue
			}
			for j := 0; j < n; j++ {
				a[r][j] ^= f.Mul(e, a[c][j])
				inv[r][j] ^= f.Mul(e, inv[c][j])
			}
		}
	}
	return inv, true
}

// Square root modulo g, using the square-root matrix.
func poly_sqrt_mod(f *Field, a []uint32, sq [][]uint32) []uint32 {
	t := len(sq)
	r := make([]uint32, t)
	for i := 0; i < t; i++ {
		c := uint32(0)
		for k, x := range a {
			if k >= t {
				break
			}
			c ^= f.Mul(sq[i][k], x)
		}
		r[i] = f.Sqrt(c)
	}
	return poly_norm(r)
}

// Inverse of a modulo g with the extended Euclidean algorithm.
// Returned boolean is false if a is not invertible.
func poly_mod_inverse(f *Field, a, g []uint32) ([]uint32, bool) {
	r0 := g
	r1 := poly_mod(f, a, g)
	var s0 []uint32
	s1 := []uint32{1}
	for len(r1) != 0 {
		q, r := poly_divmod(f, r0, r1)
		r0, r1 = r1, r
		s0, s1 = s1, poly_add(s0, poly_mulmod(f, q, s1, g))
	}
	if poly_degree(r0) != 0 {
		return nil, false
	}
	return poly_mul_elem(f, s0, f.inv(r0[0])), true
}

// Given tau, find a and b such that a = b*tau mod g, with
// deg(a) <= deg(g)/2 and deg(b) <= (deg(g)-1)/2. This is the extended
// Euclidean algorithm stopped half-way.
func poly_fraction(f *Field, tau, g []uint32) (a, b []uint32) {
	dg := poly_degree(g) >> 1
	a0 := g
	a1 := poly_mod(f, tau, g)
	var b0 []uint32
	b1 := []uint32{1}
	for poly_degree(a1) > dg {
		q, r := poly_divmod(f, a0, a1)
		a0, a1 = a1, r
		b0, b1 = b1, poly_add(b0, poly_mulmod(f, q, b1, g))
	}
	return a1, b1
}

// Field returns the coefficient field.
func (r *PolynomialRing) Field() *Field {
	return r.field
}

// Modulus returns g.
func (r *PolynomialRing) Modulus() *Polynomial {
	return &Polynomial{field: r.field, coeffs: poly_clone(r.g)}
}

// Reduce returns a mod g.
func (r *PolynomialRing) Reduce(a *Polynomial) *Polynomial {
	return &Polynomial{field: r.field, coeffs: poly_mod(r.field, a.coeffs, r.g)}
}

// Add returns a+b mod g.
func (r *PolynomialRing) Add(a, b *Polynomial) *Polynomial {
	return &Polynomial{field: r.field,
		coeffs: poly_mod(r.field, poly_add(a.coeffs, b.coeffs), r.g)}
}

// MulMod returns a*b mod g.
func (r *PolynomialRing) MulMod(a, b *Polynomial) *Polynomial {
	return &Polynomial{field: r.field, coeffs: poly_mulmod(r.field, a.coeffs, b.coeffs, r.g)}
}

// SquareMod returns a^2 mod g.
func (r *PolynomialRing) SquareMod(a *Polynomial) *Polynomial {
	return r.MulMod(a, a)
}

// InverseMod returns 1/a mod g, or ErrDivisionByZero if a is not
// invertible.
func (r *PolynomialRing) InverseMod(a *Polynomial) (*Polynomial, error) {
	inv, ok := poly_mod_inverse(r.field, a.coeffs, r.g)
	if !ok {
		return nil, ErrDivisionByZero
	}
	return &Polynomial{field: r.field, coeffs: inv}, nil
}

// SqrtMod returns the square root of a mod g.
func (r *PolynomialRing) SqrtMod(a *Polynomial) *Polynomial {
	return &Polynomial{field: r.field,
		coeffs: poly_sqrt_mod(r.field, poly_mod(r.field, a.coeffs, r.g), r.sqrt)}
}

// SquareRootMatrix returns a copy of the t*t square-root matrix: row i
// maps the coefficients of b to the square of coefficient i of sqrt(b).
func (r *PolynomialRing) SquareRootMatrix() [][]uint32 {
	q := make([][]uint32, len(r.sqrt))
	for i := range q {
		q[i] = poly_clone(r.sqrt[i])
	}
	return q
}
