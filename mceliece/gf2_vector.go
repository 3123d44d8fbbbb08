package mceliece

import (
	"fmt"
	"io"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Vector is a vector over GF(2) with a fixed length. Bits are packed
// into a bitset; the length never changes after construction.
type Vector struct {
	n    int
	bits *bitset.BitSet
}

// NewVector returns the zero vector of length n.
func NewVector(n int) *Vector {
	if n < 0 {
		n = 0
	}
	return &Vector{n: n, bits: bitset.New(uint(n))}
}

// VectorFromBytes decodes a vector of length n from its byte encoding
// (bit i is bit i%8 of byte i/8, least significant bit first). The
// source must have exactly (n+7)/8 bytes and the padding bits of the
// last byte must be zero.
func VectorFromBytes(n int, src []byte) (*Vector, error) {
	if n < 0 || len(src) != (n+7)>>3 {
		return nil, ErrLengthMismatch
	}
	if (n & 7) != 0 {
		if (src[len(src)-1] >> uint(n&7)) != 0 {
			return nil, ErrLengthMismatch
		}
	}
	v := NewVector(n)
	for j, b := range src {
		for b != 0 {
			low := b & -b
			v.bits.Set(uint(j<<3 + trailing_zeros8(low)))
			b ^= low
		}
	}
	return v, nil
}

func trailing_zeros8(x byte) int {
	n := 0
	for (x & 1) == 0 {
		x >>= 1
		n++
	}
	return n
}

// RandomVector returns a uniformly random vector of length n.
func RandomVector(n int, rng io.Reader) (*Vector, error) {
	seed, err := read_seed(rng)
	if err != nil {
		return nil, err
	}
	return random_vector(n, new_shake_prng(seed)), nil
}

func random_vector(n int, pc *shake_prng) *Vector {
	buf := make([]byte, (n+7)>>3)
	pc.Read(buf)
	if (n & 7) != 0 {
		buf[len(buf)-1] &= byte((1 << uint(n&7)) - 1)
	}
	v, _ := VectorFromBytes(n, buf)
	return v
}

// RandomWeightVector returns a uniformly random vector of length n and
// Hamming weight exactly t.
func RandomWeightVector(n, t int, rng io.Reader) (*Vector, error) {
	if t < 0 || t > n {
		return nil, ErrInvalidParameter
	}
	seed, err := read_seed(rng)
	if err != nil {
		return nil, err
	}
	return random_weight_vector(n, t, new_shake_prng(seed)), nil
}

// Partial Fisher-Yates shuffle over the positions.
func random_weight_vector(n, t int, pc *shake_prng) *Vector {
	help := make([]int, n)
	for i := range help {
		help[i] = i
	}
	v := NewVector(n)
	m := n
	for i := 0; i < t; i++ {
		j := int(pc.next_below(uint32(m)))
		v.bits.Set(uint(help[j]))
		m--
		help[j] = help[m]
	}
	return v
}

// Len returns the vector length.
func (v *Vector) Len() int {
	return v.n
}

// Bit returns bit i.
func (v *Vector) Bit(i int) bool {
	if i < 0 || i >= v.n {
		panic(fmt.Sprintf("mceliece: bit index %d out of range [0,%d)", i, v.n))
	}
	return v.bits.Test(uint(i))
}

// SetBit sets bit i to the given value.
func (v *Vector) SetBit(i int, value bool) {
	if i < 0 || i >= v.n {
		panic(fmt.Sprintf("mceliece: bit index %d out of range [0,%d)", i, v.n))
	}
	v.bits.SetTo(uint(i), value)
}

// Weight returns the Hamming weight.
func (v *Vector) Weight() int {
	return int(v.bits.Count())
}

// IsZero reports whether all bits are zero.
func (v *Vector) IsZero() bool {
	return v.bits.None()
}

// Clone returns a copy of v.
func (v *Vector) Clone() *Vector {
	return &Vector{n: v.n, bits: v.bits.Clone()}
}

// Equal reports whether v and w have the same length and bits.
func (v *Vector) Equal(w *Vector) bool {
	return v.n == w.n && v.bits.Equal(w.bits)
}

// Add returns v+w. Both vectors must have the same length.
func (v *Vector) Add(w *Vector) (*Vector, error) {
	if v.n != w.n {
		return nil, ErrLengthMismatch
	}
	return v.add(w), nil
}

func (v *Vector) add(w *Vector) *Vector {
	r := v.Clone()
	r.bits.InPlaceSymmetricDifference(w.bits)
	return r
}

// Bytes returns the encoding of v over (n+7)/8 bytes.
func (v *Vector) Bytes() []byte {
	out := make([]byte, (v.n+7)>>3)
	for i, ok := v.bits.NextSet(0); ok; i, ok = v.bits.NextSet(i + 1) {
		out[i>>3] |= 1 << (i & 7)
	}
	return out
}

// Permute returns w with w[i] = v[p[i]].
func (v *Vector) Permute(p *Permutation) (*Vector, error) {
	if p.Len() != v.n {
		return nil, ErrLengthMismatch
	}
	return v.permute(p), nil
}

func (v *Vector) permute(p *Permutation) *Vector {
	r := NewVector(v.n)
	for i, j := range p.perm {
		if v.bits.Test(uint(j)) {
			r.bits.Set(uint(i))
		}
	}
	return r
}

// ExtractLeft returns the first k bits.
func (v *Vector) ExtractLeft(k int) (*Vector, error) {
	if k < 0 || k > v.n {
		return nil, ErrLengthMismatch
	}
	return v.extract(0, k), nil
}

// ExtractRight returns the last k bits.
func (v *Vector) ExtractRight(k int) (*Vector, error) {
	if k < 0 || k > v.n {
		return nil, ErrLengthMismatch
	}
	return v.extract(v.n-k, k), nil
}

func (v *Vector) extract(off, k int) *Vector {
	r := NewVector(k)
	for i, ok := v.bits.NextSet(uint(off)); ok && int(i) < off+k; i, ok = v.bits.NextSet(i + 1) {
		r.bits.Set(i - uint(off))
	}
	return r
}

// Concatenate v followed by w.
func (v *Vector) concat(w *Vector) *Vector {
	r := NewVector(v.n + w.n)
	for i, ok := v.bits.NextSet(0); ok; i, ok = v.bits.NextSet(i + 1) {
		r.bits.Set(i)
	}
	for i, ok := w.bits.NextSet(0); ok; i, ok = w.bits.NextSet(i + 1) {
		r.bits.Set(i + uint(v.n))
	}
	return r
}

// MulMatrix returns the row-vector product v*M.
func (v *Vector) MulMatrix(m *Matrix) (*Vector, error) {
	return m.LeftMultiply(v)
}

// Convert a vector of length m*t into t elements of GF(2^m). Element
// t-1-i is read from bits i*m to i*m+m-1, most significant bit first.
func (v *Vector) to_field_elements(f *Field) []uint32 {
	m := int(f.m)
	t := v.n / m
	r := make([]uint32, t)
	count := 0
	for i := t - 1; i >= 0; i-- {
		for j := m - 1; j >= 0; j-- {
			if v.bits.Test(uint(count)) {
				r[i] ^= uint32(1) << uint(j)
			}
			count++
		}
	}
	return r
}

// String returns the bits as a string of '0' and '1', bit 0 first.
func (v *Vector) String() string {
	var sb strings.Builder
	sb.Grow(v.n)
	for i := 0; i < v.n; i++ {
		if v.bits.Test(uint(i)) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
