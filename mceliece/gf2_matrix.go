package mceliece

import (
	"io"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Matrix is a matrix over GF(2). Each row is packed into a bitset of
// length Cols().
type Matrix struct {
	rows int
	cols int
	data []*bitset.BitSet
}

// Maximum number of random matrices sampled when looking for an
// invertible one. Each attempt succeeds with probability about 0.29.
const max_invertible_tries = 128

// NewMatrix returns the zero matrix with the given dimensions.
func NewMatrix(rows, cols int) *Matrix {
	m := &Matrix{rows: rows, cols: cols, data: make([]*bitset.BitSet, rows)}
	for i := range m.data {
		m.data[i] = bitset.New(uint(cols))
	}
	return m
}

// IdentityMatrix returns the n*n identity matrix.
func IdentityMatrix(n int) *Matrix {
	m := NewMatrix(n, n)
	for i := 0; i < n; i++ {
		m.data[i].Set(uint(i))
	}
	return m
}

// MatrixFromRows builds a matrix whose rows are the provided vectors,
// which must all have the same length.
func MatrixFromRows(rows []*Vector) (*Matrix, error) {
	if len(rows) == 0 {
		return NewMatrix(0, 0), nil
	}
	cols := rows[0].n
	m := &Matrix{rows: len(rows), cols: cols, data: make([]*bitset.BitSet, len(rows))}
	for i, r := range rows {
		if r.n != cols {
			return nil, ErrDimensionMismatch
		}
		m.data[i] = r.bits.Clone()
	}
	return m, nil
}

// RandomMatrix returns a uniformly random rows*cols matrix.
func RandomMatrix(rows, cols int, rng io.Reader) (*Matrix, error) {
	seed, err := read_seed(rng)
	if err != nil {
		return nil, err
	}
	return random_matrix(rows, cols, new_shake_prng(seed)), nil
}

func random_matrix(rows, cols int, pc *shake_prng) *Matrix {
	m := &Matrix{rows: rows, cols: cols, data: make([]*bitset.BitSet, rows)}
	for i := range m.data {
		m.data[i] = random_vector(cols, pc).bits
	}
	return m
}

// RandomInvertibleMatrix returns a random invertible n*n matrix S along
// with its inverse. Random matrices are sampled until one can be
// inverted; ErrNotFullRank is returned if all attempts fail, which
// happens with negligible probability.
func RandomInvertibleMatrix(n int, rng io.Reader) (s *Matrix, sinv *Matrix, err error) {
	seed, err := read_seed(rng)
	if err != nil {
		return nil, nil, err
	}
	return random_invertible_matrix(n, new_shake_prng(seed))
}

func random_invertible_matrix(n int, pc *shake_prng) (*Matrix, *Matrix, error) {
	for i := 0; i < max_invertible_tries; i++ {
		s := random_matrix(n, n, pc)
		sinv, err := s.Inverse()
		if err == nil {
			return s, sinv, nil
		}
	}
	return nil, nil, ErrNotFullRank
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int {
	return m.rows
}

// Cols returns the number of columns.
func (m *Matrix) Cols() int {
	return m.cols
}

// Bit returns the entry at row i, column j.
func (m *Matrix) Bit(i, j int) bool {
	if j < 0 || j >= m.cols {
		panic("mceliece: column index out of range")
	}
	return m.data[i].Test(uint(j))
}

// SetBit sets the entry at row i, column j.
func (m *Matrix) SetBit(i, j int, value bool) {
	if j < 0 || j >= m.cols {
		panic("mceliece: column index out of range")
	}
	m.data[i].SetTo(uint(j), value)
}

// Row returns a copy of row i.
func (m *Matrix) Row(i int) *Vector {
	return &Vector{n: m.cols, bits: m.data[i].Clone()}
}

// Clone returns a copy of m.
func (m *Matrix) Clone() *Matrix {
	r := &Matrix{rows: m.rows, cols: m.cols, data: make([]*bitset.BitSet, m.rows)}
	for i := range m.data {
		r.data[i] = m.data[i].Clone()
	}
	return r
}

// Equal reports whether both matrices have the same dimensions and
// entries.
func (m *Matrix) Equal(b *Matrix) bool {
	if m.rows != b.rows || m.cols != b.cols {
		return false
	}
	for i := range m.data {
		if !m.data[i].Equal(b.data[i]) {
			return false
		}
	}
	return true
}

// IsZero reports whether all entries are zero.
func (m *Matrix) IsZero() bool {
	for _, r := range m.data {
		if r.Any() {
			return false
		}
	}
	return true
}

// RightMultiply returns the column-vector product M*v; v must have
// length Cols() and the result has length Rows().
func (m *Matrix) RightMultiply(v *Vector) (*Vector, error) {
	if v.n != m.cols {
		return nil, ErrDimensionMismatch
	}
	r := NewVector(m.rows)
	for i, row := range m.data {
		if (row.IntersectionCardinality(v.bits) & 1) != 0 {
			r.bits.Set(uint(i))
		}
	}
	return r, nil
}

// LeftMultiply returns the row-vector product v*M; v must have length
// Rows() and the result has length Cols().
func (m *Matrix) LeftMultiply(v *Vector) (*Vector, error) {
	if v.n != m.rows {
		return nil, ErrDimensionMismatch
	}
	r := NewVector(m.cols)
	for i, ok := v.bits.NextSet(0); ok; i, ok = v.bits.NextSet(i + 1) {
		r.bits.InPlaceSymmetricDifference(m.data[i])
	}
	return r, nil
}

// Compute v*[M | I] for a matrix M given in left compact form, i.e.
// (v*M) || v. This is the encoding map of a systematic generator.
func (m *Matrix) left_multiply_left_compact(v *Vector) *Vector {
	r, _ := m.LeftMultiply(v)
	return r.concat(v)
}

// Build [M | I] from a matrix in left compact form.
func (m *Matrix) extend_left_compact() *Matrix {
	r := NewMatrix(m.rows, m.cols+m.rows)
	for i, row := range m.data {
		for j, ok := row.NextSet(0); ok; j, ok = row.NextSet(j + 1) {
			r.data[i].Set(j)
		}
		r.data[i].Set(uint(m.cols + i))
	}
	return r
}

// Mul returns the product M*B; Cols() of M must equal Rows() of B.
func (m *Matrix) Mul(b *Matrix) (*Matrix, error) {
	if m.cols != b.rows {
		return nil, ErrDimensionMismatch
	}
	r := &Matrix{rows: m.rows, cols: b.cols, data: make([]*bitset.BitSet, m.rows)}
	for i, row := range m.data {
		acc := bitset.New(uint(b.cols))
		for j, ok := row.NextSet(0); ok; j, ok = row.NextSet(j + 1) {
			acc.InPlaceSymmetricDifference(b.data[j])
		}
		r.data[i] = acc
	}
	return r, nil
}

// Transpose returns the transposed matrix.
func (m *Matrix) Transpose() *Matrix {
	r := NewMatrix(m.cols, m.rows)
	for i, row := range m.data {
		for j, ok := row.NextSet(0); ok; j, ok = row.NextSet(j + 1) {
			r.data[j].Set(uint(i))
		}
	}
	return r
}

// PermuteColumns returns the matrix whose column i is column p[i] of m.
func (m *Matrix) PermuteColumns(p *Permutation) (*Matrix, error) {
	if p.Len() != m.cols {
		return nil, ErrDimensionMismatch
	}
	return m.permute_columns(p), nil
}

func (m *Matrix) permute_columns(p *Permutation) *Matrix {
	r := NewMatrix(m.rows, m.cols)
	for k, row := range m.data {
		dst := r.data[k]
		for i, j := range p.perm {
			if row.Test(uint(j)) {
				dst.Set(uint(i))
			}
		}
	}
	return r
}

// ExtractLeftColumns returns the first k columns.
func (m *Matrix) ExtractLeftColumns(k int) (*Matrix, error) {
	if k < 0 || k > m.cols {
		return nil, ErrDimensionMismatch
	}
	return m.extract_columns(0, k), nil
}

// ExtractRightColumns returns the last k columns.
func (m *Matrix) ExtractRightColumns(k int) (*Matrix, error) {
	if k < 0 || k > m.cols {
		return nil, ErrDimensionMismatch
	}
	return m.extract_columns(m.cols-k, k), nil
}

func (m *Matrix) extract_columns(off, k int) *Matrix {
	r := NewMatrix(m.rows, k)
	for i := range m.data {
		r.data[i] = (&Vector{n: m.cols, bits: m.data[i]}).extract(off, k).bits
	}
	return r
}

// Swap columns i and j in place.
func (m *Matrix) swap_columns(i, j int) {
	for _, row := range m.data {
		bi := row.Test(uint(i))
		bj := row.Test(uint(j))
		if bi != bj {
			row.Flip(uint(i))
			row.Flip(uint(j))
		}
	}
}

// Inverse returns the inverse of a square matrix, computed with
// Gauss-Jordan elimination. ErrNotFullRank is returned if the matrix is
// singular.
func (m *Matrix) Inverse() (*Matrix, error) {
	if m.rows != m.cols {
		return nil, ErrDimensionMismatch
	}
	n := m.rows
	a := m.Clone()
	inv := IdentityMatrix(n)
	for c := 0; c < n; c++ {
		p := -1
		for r := c; r < n; r++ {
			if a.data[r].Test(uint(c)) {
				p = r
				break
			}
		}
		if p < 0 {
			return nil, ErrNotFullRank
		}
		if p != c {
			a.data[c], a.data[p] = a.data[p], a.data[c]
			inv.data[c], inv.data[p] = inv.data[p], inv.data[c]
		}
		for r := 0; r < n; r++ {
			if r != c && a.data[r].Test(uint(c)) {
				a.data[r].InPlaceSymmetricDifference(a.data[c])
				inv.data[r].InPlaceSymmetricDifference(inv.data[c])
			}
		}
	}
	return inv, nil
}

// SystematicForm reduces an r*n check matrix H to the form [I | M]:
// there is an invertible S such that S*H' = [I | M], with H' the
// matrix H with its columns permuted by P. The columns are first
// shuffled with a random permutation, then Gauss-Jordan elimination
// runs with column pivoting; any column swap is recorded in P. The
// returned matrices are M (r*(n-r)) and P. ErrNotFullRank is returned
// when H has rank lower than r.
func SystematicForm(h *Matrix, rng io.Reader) (*Matrix, *Permutation, error) {
	seed, err := read_seed(rng)
	if err != nil {
		return nil, nil, err
	}
	return systematic_form(h, new_shake_prng(seed))
}

func systematic_form(h *Matrix, pc *shake_prng) (*Matrix, *Permutation, error) {
	r := h.rows
	n := h.cols
	if r > n {
		return nil, nil, ErrDimensionMismatch
	}
	p := random_permutation(n, pc)
	a := h.permute_columns(p)
	for i := 0; i < r; i++ {
		// Find a pivot, preferably in column i.
		col, row := -1, -1
		for c := i; c < n && col < 0; c++ {
			for l := i; l < r; l++ {
				if a.data[l].Test(uint(c)) {
					col, row = c, l
					break
				}
			}
		}
		if col < 0 {
			return nil, nil, ErrNotFullRank
		}
		if col != i {
			a.swap_columns(i, col)
			p.swap(i, col)
		}
		if row != i {
			a.data[i], a.data[row] = a.data[row], a.data[i]
		}
		for l := 0; l < r; l++ {
			if l != i && a.data[l].Test(uint(i)) {
				a.data[l].InPlaceSymmetricDifference(a.data[i])
			}
		}
	}
	return a.extract_columns(r, n-r), p, nil
}

// String returns one line of '0'/'1' characters per row.
func (m *Matrix) String() string {
	var sb strings.Builder
	for i := range m.data {
		sb.WriteString(m.Row(i).String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
