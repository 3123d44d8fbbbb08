package mceliece

// Key is the capability shared by all key types.
type Key interface {
	// N returns the code length.
	N() int
	// T returns the error-correction capability.
	T() int
	// Bytes returns the binary encoding of the key.
	Bytes() []byte
}

// PublicKey is a public key of the plain McEliece cryptosystem. Its
// generator matrix G = S*[M^T | I]*P2 is k*n.
type PublicKey struct {
	n int
	t int
	g *Matrix
}

// PrivateKey is a private key of the plain McEliece cryptosystem.
type PrivateKey struct {
	n     int
	k     int
	t     int
	field *Field
	goppa []uint32
	p1    *Permutation
	p2    *Permutation
	sinv  *Matrix

	// Derived at construction.
	p1inv *Permutation
	p2inv *Permutation
	h     *Matrix
	qinv  [][]uint32
}

// CCA2PublicKey is a public key for the CCA2 conversions. Its matrix
// G = M^T (k*(n-k)) is the generator in left compact form: the full
// generator is [G | I].
type CCA2PublicKey struct {
	n int
	t int
	g *Matrix
}

// CCA2PrivateKey is a private key for the CCA2 conversions.
type CCA2PrivateKey struct {
	n     int
	k     int
	t     int
	field *Field
	goppa []uint32
	p     *Permutation

	// Derived at construction.
	pinv *Permutation
	h    *Matrix
	qinv [][]uint32
}

// Build the derived material (check matrix and square-root matrix)
// from the Goppa code definition. If h is not nil, it is the already
// computed canonical check matrix.
func derive_code(f *Field, goppa []uint32, h *Matrix) (*Matrix, [][]uint32, error) {
	if h == nil {
		var err error
		h, err = CanonicalCheckMatrix(f, &Polynomial{field: f, coeffs: goppa})
		if err != nil {
			return nil, nil, err
		}
	}
	sq, ok := sqrt_matrix(f, goppa)
	if !ok {
		return nil, nil, ErrInvalidParameter
	}
	return h, sq, nil
}

func new_private_key(f *Field, goppa []uint32, h *Matrix,
	p1, p2 *Permutation, sinv *Matrix) (*PrivateKey, error) {

	h, sq, err := derive_code(f, goppa, h)
	if err != nil {
		return nil, err
	}
	n := 1 << f.m
	t := poly_degree(goppa)
	if p1.Len() != n || p2.Len() != n || sinv.rows != sinv.cols || sinv.rows != n-int(f.m)*t {
		return nil, ErrDimensionMismatch
	}
	return &PrivateKey{
		n: n, k: sinv.rows, t: t,
		field: f, goppa: goppa, p1: p1, p2: p2, sinv: sinv,
		p1inv: p1.Inverse(), p2inv: p2.Inverse(), h: h, qinv: sq,
	}, nil
}

func new_cca2_private_key(f *Field, goppa []uint32, h *Matrix,
	p *Permutation) (*CCA2PrivateKey, error) {

	h, sq, err := derive_code(f, goppa, h)
	if err != nil {
		return nil, err
	}
	n := 1 << f.m
	t := poly_degree(goppa)
	if p.Len() != n {
		return nil, ErrDimensionMismatch
	}
	return &CCA2PrivateKey{
		n: n, k: n - int(f.m)*t, t: t,
		field: f, goppa: goppa, p: p,
		pinv: p.Inverse(), h: h, qinv: sq,
	}, nil
}

// N returns the code length.
func (pk *PublicKey) N() int { return pk.n }

// T returns the error-correction capability.
func (pk *PublicKey) T() int { return pk.t }

// K returns the code dimension.
func (pk *PublicKey) K() int { return pk.g.rows }

// G returns a copy of the generator matrix.
func (pk *PublicKey) G() *Matrix { return pk.g.Clone() }

// N returns the code length.
func (pk *CCA2PublicKey) N() int { return pk.n }

// T returns the error-correction capability.
func (pk *CCA2PublicKey) T() int { return pk.t }

// K returns the code dimension.
func (pk *CCA2PublicKey) K() int { return pk.g.rows }

// G returns a copy of the generator matrix (left compact form).
func (pk *CCA2PublicKey) G() *Matrix { return pk.g.Clone() }

// N returns the code length.
func (sk *PrivateKey) N() int { return sk.n }

// T returns the error-correction capability.
func (sk *PrivateKey) T() int { return sk.t }

// K returns the code dimension.
func (sk *PrivateKey) K() int { return sk.k }

// Field returns GF(2^m).
func (sk *PrivateKey) Field() *Field { return sk.field }

// GoppaPolynomial returns the Goppa polynomial.
func (sk *PrivateKey) GoppaPolynomial() *Polynomial {
	return &Polynomial{field: sk.field, coeffs: poly_clone(sk.goppa)}
}

// P1 returns the permutation of the systematic form.
func (sk *PrivateKey) P1() *Permutation { return &Permutation{perm: sk.p1.Slice()} }

// P2 returns the hiding permutation.
func (sk *PrivateKey) P2() *Permutation { return &Permutation{perm: sk.p2.Slice()} }

// SInv returns a copy of the inverse of the scrambling matrix.
func (sk *PrivateKey) SInv() *Matrix { return sk.sinv.Clone() }

// H returns a copy of the canonical check matrix.
func (sk *PrivateKey) H() *Matrix { return sk.h.Clone() }

// SquareRootMatrix returns a copy of the square-root matrix.
func (sk *PrivateKey) SquareRootMatrix() [][]uint32 { return clone_table(sk.qinv) }

// N returns the code length.
func (sk *CCA2PrivateKey) N() int { return sk.n }

// T returns the error-correction capability.
func (sk *CCA2PrivateKey) T() int { return sk.t }

// K returns the code dimension.
func (sk *CCA2PrivateKey) K() int { return sk.k }

// Field returns GF(2^m).
func (sk *CCA2PrivateKey) Field() *Field { return sk.field }

// GoppaPolynomial returns the Goppa polynomial.
func (sk *CCA2PrivateKey) GoppaPolynomial() *Polynomial {
	return &Polynomial{field: sk.field, coeffs: poly_clone(sk.goppa)}
}

// P returns the permutation of the systematic form.
func (sk *CCA2PrivateKey) P() *Permutation { return &Permutation{perm: sk.p.Slice()} }

// H returns a copy of the canonical check matrix.
func (sk *CCA2PrivateKey) H() *Matrix { return sk.h.Clone() }

// SquareRootMatrix returns a copy of the square-root matrix.
func (sk *CCA2PrivateKey) SquareRootMatrix() [][]uint32 { return clone_table(sk.qinv) }

// Public recomputes the public key: the check matrix with its columns
// permuted by P is reduced to [I | M], and G = M^T.
func (sk *CCA2PrivateKey) Public() (*CCA2PublicKey, error) {
	short, err := systematic_with_perm(sk.h, sk.p)
	if err != nil {
		return nil, err
	}
	return &CCA2PublicKey{n: sk.n, t: sk.t, g: short.Transpose()}, nil
}

// Reduce h*P to [I | M] without further column pivoting and return M.
func systematic_with_perm(h *Matrix, p *Permutation) (*Matrix, error) {
	a := h.permute_columns(p)
	left := a.extract_columns(0, a.rows)
	inv, err := left.Inverse()
	if err != nil {
		return nil, err
	}
	s, _ := inv.Mul(a)
	return s.extract_columns(a.rows, a.cols-a.rows), nil
}

func clone_table(q [][]uint32) [][]uint32 {
	r := make([][]uint32, len(q))
	for i := range q {
		r[i] = poly_clone(q[i])
	}
	return r
}
