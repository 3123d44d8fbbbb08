package mceliece

import (
	"bytes"
	"errors"
	"math/big"
	"testing"
)

func TestCombinatorialBijection(t *testing.T) {
	n, w := 16, 4
	c := Binomial(n, w)
	if c.Int64() != 1820 {
		t.Fatalf("ERR: C(16,4) = %v\n", c)
	}
	seen := make(map[string]bool)
	for i := int64(0); i < c.Int64(); i++ {
		v, err := EncodeIndex(n, w, big.NewInt(i))
		if err != nil {
			t.Fatalf("ERR: encode %d: %v\n", i, err)
		}
		if v.Len() != n || v.Weight() != w {
			t.Fatalf("ERR: index %d -> len=%d weight=%d\n", i, v.Len(), v.Weight())
		}
		key := v.String()
		if seen[key] {
			t.Fatalf("ERR: index %d -> duplicate %s\n", i, key)
		}
		seen[key] = true
		d, err := DecodeIndex(n, w, v)
		if err != nil {
			t.Fatalf("ERR: decode %d: %v\n", i, err)
		}
		if d.Int64() != i {
			t.Fatalf("ERR: index %d -> %v\n", i, d)
		}
	}
}

func TestCombinatorialGolden(t *testing.T) {
	var tv = []struct {
		n, t int
		idx  int64
		enc  []byte
	}{
		{6, 2, 0, []byte{0x30}},
		{6, 2, 5, []byte{0x0C}},
		{6, 2, 7, []byte{0x12}},
		{6, 2, 9, []byte{0x06}},
		{6, 2, 14, []byte{0x03}},
		{16, 4, 0, []byte{0x00, 0xF0}},
		{16, 4, 1819, []byte{0x0F, 0x00}},
	}
	for _, v := range tv {
		w, err := EncodeIndex(v.n, v.t, big.NewInt(v.idx))
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(w.Bytes(), v.enc) {
			t.Fatalf("ERR: n=%d t=%d idx=%d -> %x (exp: %x)\n",
				v.n, v.t, v.idx, w.Bytes(), v.enc)
		}
	}

	// Byte forms: big-endian index, minimal output.
	w, err := EncodeCombination(6, 2, []byte{0x00, 0x09})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(w.Bytes(), []byte{0x06}) {
		t.Fatalf("ERR: EncodeCombination -> %x\n", w.Bytes())
	}
	d, err := DecodeCombination(6, 2, w)
	if err != nil || !bytes.Equal(d, []byte{0x09}) {
		t.Fatalf("ERR: DecodeCombination -> %x, %v\n", d, err)
	}
	w, _ = VectorFromBytes(6, []byte{0x30})
	d, err = DecodeCombination(6, 2, w)
	if err != nil || len(d) != 0 {
		t.Fatalf("ERR: DecodeCombination(index 0) -> %x, %v\n", d, err)
	}
}

func TestCombinatorialOutOfRange(t *testing.T) {
	if _, err := EncodeIndex(6, 2, big.NewInt(15)); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("ERR: index C(n,t) accepted")
	}
	if _, err := EncodeIndex(6, 2, big.NewInt(-1)); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("ERR: negative index accepted")
	}
	if _, err := EncodeCombination(6, 2, []byte{0x01, 0x00}); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("ERR: large index accepted")
	}
	v, _ := VectorFromBytes(6, []byte{0x07})
	if _, err := DecodeIndex(6, 2, v); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("ERR: weight-3 vector accepted")
	}
	if _, err := DecodeIndex(8, 3, v); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("ERR: wrong-length vector accepted")
	}
	if _, err := EncodeIndex(3, 4, big.NewInt(0)); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("ERR: t > n accepted")
	}
}

func TestCombinatorialLarge(t *testing.T) {
	// Production-size parameters: random indices round-trip.
	n, w := 2048, 50
	c := Binomial(n, w)
	pc := new_shake_prng([]byte("large combinations"))
	buf := make([]byte, (c.BitLen()+7)>>3)
	for i := 0; i < 20; i++ {
		pc.Read(buf)
		idx := new(big.Int).SetBytes(buf)
		idx.Mod(idx, c)
		v, err := EncodeIndex(n, w, idx)
		if err != nil {
			t.Fatal(err)
		}
		if v.Weight() != w {
			t.Fatalf("ERR: weight %d\n", v.Weight())
		}
		d, err := DecodeIndex(n, w, v)
		if err != nil {
			t.Fatal(err)
		}
		if d.Cmp(idx) != 0 {
			t.Fatalf("ERR: %v -> %v\n", idx, d)
		}
	}
	max := new(big.Int).Sub(c, big.NewInt(1))
	if _, err := EncodeIndex(n, w, max); err != nil {
		t.Fatalf("ERR: largest index rejected: %v\n", err)
	}
}

func TestSignConversion(t *testing.T) {
	// C(6,2) = 15: the index is the top 3 bits of the digest.
	var tv = []struct {
		digest []byte
		enc    []byte
	}{
		{[]byte{0xFF}, []byte{0x12}},
		{[]byte{0x00}, []byte{0x30}},
		{[]byte{0xA0}, []byte{0x0C}},
		{[]byte{0xA0, 0xFF, 0xFF}, []byte{0x0C}},
	}
	for _, v := range tv {
		enc, err := SignConversion(6, 2, v.digest)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(enc, v.enc) {
			t.Fatalf("ERR: digest %x -> %x (exp: %x)\n", v.digest, enc, v.enc)
		}
	}

	// A digest shorter than the index size is used whole.
	enc, err := SignConversion(2048, 50, []byte{0x00})
	if err != nil {
		t.Fatal(err)
	}
	v, _ := VectorFromBytes(2048, enc)
	idx, err := DecodeIndex(2048, 50, v)
	if err != nil || idx.Sign() != 0 {
		t.Fatalf("ERR: short digest -> index %v, %v\n", idx, err)
	}

	// Full-size digests always map to weight-t vectors.
	for _, id := range SupportedHashes {
		hv, _ := digest_concat(id, []byte("sign conversion"))
		enc, err := SignConversion(256, 8, hv)
		if err != nil {
			t.Fatal(err)
		}
		v, _ := VectorFromBytes(256, enc)
		if v.Weight() != 8 {
			t.Fatalf("ERR: %v -> weight %d\n", id, v.Weight())
		}
	}
}

func BenchmarkEncodeIndex(b *testing.B) {
	c := Binomial(2048, 50)
	idx := new(big.Int).Rsh(c, 1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		EncodeIndex(2048, 50, idx)
	}
}
