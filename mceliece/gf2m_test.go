package mceliece

import (
	"errors"
	"testing"
)

func TestIrreduciblePolynomial(t *testing.T) {
	var expected = [17]uint64{
		0, 0x2, 0x7, 0xB, 0x13, 0x25, 0x43, 0x83, 0x11B,
		0x203, 0x409, 0x805, 0x1009, 0x201B, 0x4021, 0x8003, 0x1002B,
	}
	for m := 1; m <= 16; m++ {
		p, err := IrreduciblePolynomial(m)
		if err != nil {
			t.Fatalf("ERR: m=%d: %v\n", m, err)
		}
		if p != expected[m] {
			t.Fatalf("ERR: m=%d -> %#x (exp: %#x)\n", m, p, expected[m])
		}
	}
	for _, m := range []int{0, 33, -1} {
		if _, err := IrreduciblePolynomial(m); !errors.Is(err, ErrInvalidParameter) {
			t.Fatalf("ERR: m=%d accepted\n", m)
		}
	}
}

func TestNewFieldWithPoly(t *testing.T) {
	// x^4 + x^3 + 1 is irreducible, x^4 + 1 and x^4 + x^2 + 1 are not.
	if _, err := NewFieldWithPoly(4, 0x19); err != nil {
		t.Fatalf("ERR: 0x19 rejected: %v\n", err)
	}
	for _, p := range []uint64{0x11, 0x15, 0x13 << 1, 0x0B} {
		if _, err := NewFieldWithPoly(4, p); !errors.Is(err, ErrInvalidParameter) {
			t.Fatalf("ERR: %#x accepted\n", p)
		}
	}
}

func TestFieldArithmetic(t *testing.T) {
	for m := 1; m <= 8; m++ {
		f, err := NewField(m)
		if err != nil {
			t.Fatal(err)
		}
		q := uint32(f.Size())
		for a := uint32(0); a < q; a++ {
			for b := uint32(0); b < q; b++ {
				s := f.Add(a, b)
				p := f.Mul(a, b)
				if !f.Contains(s) || !f.Contains(p) {
					t.Fatalf("ERR: m=%d a=%d b=%d: sum=%d prod=%d\n", m, a, b, s, p)
				}
				if p != f.Mul(b, a) {
					t.Fatalf("ERR: m=%d a=%d b=%d: product not commutative\n", m, a, b)
				}
			}
			if a == 0 {
				if _, err := f.Inverse(0); !errors.Is(err, ErrDivisionByZero) {
					t.Fatalf("ERR: m=%d: inverse of zero\n", m)
				}
				continue
			}
			ia, err := f.Inverse(a)
			if err != nil {
				t.Fatal(err)
			}
			if f.Mul(a, ia) != 1 {
				t.Fatalf("ERR: m=%d a=%d: a*inv(a) = %d\n", m, a, f.Mul(a, ia))
			}
			if f.Sqrt(f.Square(a)) != a {
				t.Fatalf("ERR: m=%d a=%d: bad square root\n", m, a)
			}
			d, err := f.Div(1, a)
			if err != nil || d != ia {
				t.Fatalf("ERR: m=%d a=%d: 1/a = %d (exp: %d)\n", m, a, d, ia)
			}
			// Fermat: a^(q-1) = 1.
			if f.Exp(a, uint64(q-1)) != 1 {
				t.Fatalf("ERR: m=%d a=%d: a^(q-1) != 1\n", m, a)
			}
		}
	}
}

func TestFieldDistributive(t *testing.T) {
	f, err := NewField(11)
	if err != nil {
		t.Fatal(err)
	}
	pc := new_shake_prng([]byte("distributive"))
	for i := 0; i < 1000; i++ {
		a := f.random_element(pc)
		b := f.random_element(pc)
		c := f.random_element(pc)
		if f.Mul(a, f.Add(b, c)) != f.Add(f.Mul(a, b), f.Mul(a, c)) {
			t.Fatalf("ERR: a=%d b=%d c=%d\n", a, b, c)
		}
		if f.Mul(f.Mul(a, b), c) != f.Mul(a, f.Mul(b, c)) {
			t.Fatalf("ERR: not associative: a=%d b=%d c=%d\n", a, b, c)
		}
	}
}

func TestRandomElements(t *testing.T) {
	f, err := NewField(3)
	if err != nil {
		t.Fatal(err)
	}
	rng := NewSeededReader([]byte("elements"))
	for i := 0; i < 100; i++ {
		a, err := f.RandomNonZeroElement(rng)
		if err != nil {
			t.Fatal(err)
		}
		if a == 0 || !f.Contains(a) {
			t.Fatalf("ERR: bad random non-zero element %d\n", a)
		}
		b, err := f.RandomElement(rng)
		if err != nil {
			t.Fatal(err)
		}
		if !f.Contains(b) {
			t.Fatalf("ERR: bad random element %d\n", b)
		}
	}
}

func BenchmarkFieldMul(b *testing.B) {
	f, _ := NewField(11)
	x := uint32(0x5A3)
	y := uint32(0x1F7)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x = f.Mul(x, y) ^ 1
	}
}
