package mceliece

import (
	"io"
)

// Permutation is a bijection on {0, ..., n-1}. Applied to a vector v,
// it yields w with w[i] = v[p[i]]; applied to the columns of a matrix,
// column i of the result is column p[i] of the source.
type Permutation struct {
	perm []int
}

// IdentityPermutation returns the identity on n elements.
func IdentityPermutation(n int) *Permutation {
	p := &Permutation{perm: make([]int, n)}
	for i := range p.perm {
		p.perm[i] = i
	}
	return p
}

// PermutationFromSlice builds a permutation from its image list. The
// slice is copied; it must be a bijection on {0, ..., len-1}.
func PermutationFromSlice(s []int) (*Permutation, error) {
	seen := make([]bool, len(s))
	for _, x := range s {
		if x < 0 || x >= len(s) || seen[x] {
			return nil, ErrInvalidParameter
		}
		seen[x] = true
	}
	p := &Permutation{perm: make([]int, len(s))}
	copy(p.perm, s)
	return p, nil
}

// RandomPermutation returns a uniformly random permutation on n
// elements.
func RandomPermutation(n int, rng io.Reader) (*Permutation, error) {
	seed, err := read_seed(rng)
	if err != nil {
		return nil, err
	}
	return random_permutation(n, new_shake_prng(seed)), nil
}

func random_permutation(n int, pc *shake_prng) *Permutation {
	help := make([]int, n)
	for i := range help {
		help[i] = i
	}
	p := &Permutation{perm: make([]int, n)}
	k := n
	for j := 0; j < n; j++ {
		i := int(pc.next_below(uint32(k)))
		k--
		p.perm[j] = help[i]
		help[i] = help[k]
	}
	return p
}

// Len returns n.
func (p *Permutation) Len() int {
	return len(p.perm)
}

// At returns p[i].
func (p *Permutation) At(i int) int {
	return p.perm[i]
}

// Slice returns a copy of the image list.
func (p *Permutation) Slice() []int {
	s := make([]int, len(p.perm))
	copy(s, p.perm)
	return s
}

// Inverse returns the inverse permutation.
func (p *Permutation) Inverse() *Permutation {
	q := &Permutation{perm: make([]int, len(p.perm))}
	for i, j := range p.perm {
		q.perm[j] = i
	}
	return q
}

// Equal reports whether p and q are the same permutation.
func (p *Permutation) Equal(q *Permutation) bool {
	if len(p.perm) != len(q.perm) {
		return false
	}
	for i := range p.perm {
		if p.perm[i] != q.perm[i] {
			return false
		}
	}
	return true
}

// Swap positions i and j (used while tracking column pivots).
func (p *Permutation) swap(i, j int) {
	p.perm[i], p.perm[j] = p.perm[j], p.perm[i]
}
