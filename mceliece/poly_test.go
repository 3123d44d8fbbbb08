package mceliece

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func random_poly(f *Field, d int, pc *shake_prng) []uint32 {
	a := make([]uint32, d+1)
	for i := range a {
		a[i] = f.random_element(pc)
	}
	a[d] = f.random_nonzero(pc)
	return a
}

func TestPolynomialDivMod(t *testing.T) {
	f, err := NewField(8)
	require.NoError(t, err)
	pc := new_shake_prng([]byte("poly divmod"))
	for i := 0; i < 200; i++ {
		a := random_poly(f, int(pc.next_below(30)), pc)
		b := random_poly(f, int(pc.next_below(12)), pc)
		q, r := poly_divmod(f, a, b)
		require.Less(t, poly_degree(r), poly_degree(b))
		assert.Equal(t, a, poly_add(poly_mul(f, q, b), r))
	}

	p, err := NewPolynomial(f, []uint32{1, 2, 3})
	require.NoError(t, err)
	_, _, err = p.DivMod(&Polynomial{field: f})
	assert.ErrorIs(t, err, ErrDivisionByZero)
	_, err = NewPolynomial(f, []uint32{1, 256})
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestPolynomialNormalization(t *testing.T) {
	f, err := NewField(4)
	require.NoError(t, err)
	p, err := NewPolynomial(f, []uint32{3, 0, 5, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, 2, p.Degree())
	assert.Equal(t, uint32(5), p.HeadCoefficient())
	assert.Equal(t, uint32(0), p.Coefficient(7))
	z := p.Add(p)
	assert.Equal(t, -1, z.Degree())
	assert.Equal(t, uint32(0), z.HeadCoefficient())
}

func TestPolynomialEvaluate(t *testing.T) {
	f, err := NewField(5)
	require.NoError(t, err)
	pc := new_shake_prng([]byte("poly eval"))
	a := random_poly(f, 7, pc)
	b := random_poly(f, 4, pc)
	pa := &Polynomial{field: f, coeffs: a}
	pb := &Polynomial{field: f, coeffs: b}
	prod := pa.Mul(pb)
	for x := uint32(0); x < 32; x++ {
		assert.Equal(t, f.Mul(pa.EvaluateAt(x), pb.EvaluateAt(x)), prod.EvaluateAt(x))
	}
}

func TestIrreducible(t *testing.T) {
	f, err := NewField(4)
	require.NoError(t, err)

	// Degree-2 monic polynomials over GF(16) are irreducible exactly when
	// they have no root; check the test against exhaustive search.
	for c0 := uint32(0); c0 < 16; c0++ {
		for c1 := uint32(0); c1 < 16; c1++ {
			g := []uint32{c0, c1, 1}
			root := false
			for x := uint32(0); x < 16; x++ {
				if poly_eval(f, g, x) == 0 {
					root = true
				}
			}
			require.Equal(t, !root, poly_is_irreducible(f, g), "g=%v", g)
		}
	}

	// A product of two polynomials is reducible, even without roots.
	pc := new_shake_prng([]byte("reducible"))
	p1 := random_irreducible(f, 2, pc)
	p2 := random_irreducible(f, 3, pc)
	assert.False(t, poly_is_irreducible(f, poly_mul(f, p1, p2)))
}

func TestRandomIrreduciblePolynomial(t *testing.T) {
	rng := NewSeededReader([]byte("random irreducible"))
	for _, m := range []int{4, 8, 11} {
		f, err := NewField(m)
		require.NoError(t, err)
		for _, d := range []int{2, 5, 10} {
			g, err := RandomIrreduciblePolynomial(f, d, rng)
			require.NoError(t, err)
			assert.Equal(t, d, g.Degree())
			assert.Equal(t, uint32(1), g.HeadCoefficient())
			assert.True(t, g.IsIrreducible())
			for x := uint32(0); x < uint32(f.Size()); x++ {
				require.NotEqual(t, uint32(0), g.EvaluateAt(x))
			}
		}
	}
}

func TestPolynomialRing(t *testing.T) {
	rng := NewSeededReader([]byte("ring"))
	f, err := NewField(11)
	require.NoError(t, err)
	g, err := RandomIrreduciblePolynomial(f, 20, rng)
	require.NoError(t, err)
	ring, err := NewPolynomialRing(g)
	require.NoError(t, err)
	require.Len(t, ring.SquareRootMatrix(), 20)

	pc := new_shake_prng([]byte("ring elements"))
	for i := 0; i < 50; i++ {
		a := &Polynomial{field: f, coeffs: poly_norm(random_poly(f, 19, pc))}

		// sqrt(a)^2 = a and sqrt(a^2) = a.
		s := ring.SqrtMod(a)
		assert.True(t, ring.SquareMod(s).Equal(a))
		assert.True(t, ring.SqrtMod(ring.SquareMod(a)).Equal(a))

		// a * a^-1 = 1 (g irreducible, a non-zero).
		inv, err := ring.InverseMod(a)
		require.NoError(t, err)
		one := ring.MulMod(a, inv)
		assert.Equal(t, []uint32{1}, one.Coefficients())
	}

	_, err = ring.InverseMod(&Polynomial{field: f})
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

func TestPolynomialGCD(t *testing.T) {
	f, err := NewField(6)
	require.NoError(t, err)
	pc := new_shake_prng([]byte("gcd"))
	c := random_irreducible(f, 3, pc)
	a := poly_mul(f, c, random_irreducible(f, 4, pc))
	b := poly_mul(f, c, random_irreducible(f, 5, pc))
	pa := &Polynomial{field: f, coeffs: a}
	pb := &Polynomial{field: f, coeffs: b}
	assert.Equal(t, c, pa.GCD(pb).Coefficients())
}

func BenchmarkRandomIrreducible(b *testing.B) {
	f, _ := NewField(11)
	pc := new_shake_prng([]byte("bench irreducible"))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		random_irreducible(f, 50, pc)
	}
}
