package mceliece

import (
	"math/big"
)

// Combinatorial number system: a bijection between [0, C(n,t)) and the
// binary words of length n and weight t. Bits are decided from position
// 0 upwards; at each step the current binomial coefficient counts the
// words which leave that position at zero. Index 0 maps to the word
// whose ones are all at the highest positions.

var big_one = big.NewInt(1)

// Binomial returns C(n,t) (zero if t > n).
func Binomial(n, t int) *big.Int {
	return new(big.Int).Binomial(int64(n), int64(t))
}

// EncodeIndex returns the word of length n and weight t with index idx,
// which must be in [0, C(n,t)).
func EncodeIndex(n, t int, idx *big.Int) (*Vector, error) {
	if n < 0 || t < 0 || t > n {
		return nil, ErrInvalidParameter
	}
	c := Binomial(n, t)
	if idx.Sign() < 0 || idx.Cmp(c) >= 0 {
		return nil, ErrOutOfRange
	}
	m := new(big.Int).Set(idx)
	v := NewVector(n)
	tmp := new(big.Int)
	nn := n
	tt := t
	for i := 0; i < n; i++ {
		c.Mul(c, tmp.SetInt64(int64(nn-tt)))
		c.Quo(c, tmp.SetInt64(int64(nn)))
		nn--
		if c.Cmp(m) <= 0 {
			v.bits.Set(uint(i))
			m.Sub(m, c)
			tt--
			if nn == tt {
				c.Set(big_one)
			} else {
				c.Mul(c, tmp.SetInt64(int64(tt+1)))
				c.Quo(c, tmp.SetInt64(int64(nn-tt)))
			}
		}
	}
	return v, nil
}

// DecodeIndex is the inverse of EncodeIndex. The vector must have
// length n and weight t.
func DecodeIndex(n, t int, v *Vector) (*big.Int, error) {
	if n < 0 || t < 0 || t > n {
		return nil, ErrInvalidParameter
	}
	if v.n != n || v.Weight() != t {
		return nil, ErrOutOfRange
	}
	c := Binomial(n, t)
	d := new(big.Int)
	tmp := new(big.Int)
	nn := n
	tt := t
	for i := 0; i < n; i++ {
		c.Mul(c, tmp.SetInt64(int64(nn-tt)))
		c.Quo(c, tmp.SetInt64(int64(nn)))
		nn--
		if v.bits.Test(uint(i)) {
			d.Add(d, c)
			tt--
			if nn == tt {
				c.Set(big_one)
			} else {
				c.Mul(c, tmp.SetInt64(int64(tt+1)))
				c.Quo(c, tmp.SetInt64(int64(nn-tt)))
			}
		}
	}
	return d, nil
}

// EncodeCombination interprets data as an unsigned big-endian integer
// and returns the corresponding word of length n and weight t.
func EncodeCombination(n, t int, data []byte) (*Vector, error) {
	return EncodeIndex(n, t, new(big.Int).SetBytes(data))
}

// DecodeCombination returns the index of the word v as a minimal
// unsigned big-endian integer (empty for zero).
func DecodeCombination(n, t int, v *Vector) ([]byte, error) {
	d, err := DecodeIndex(n, t, v)
	if err != nil {
		return nil, err
	}
	return d.Bytes(), nil
}

// Number of index bits which can always be encoded as a word of length
// n and weight t: bitlen(C(n,t)) - 1.
func conv_index_bits(n, t int) int {
	return Binomial(n, t).BitLen() - 1
}

// SignConversion maps a message digest to the encoding (over (n+7)/8
// bytes) of a word of length n and weight t. The index is made of the
// leading bitlen(C(n,t))-1 bits of the digest (the whole digest if it
// is shorter), read as a big-endian integer, so it is always in range.
func SignConversion(n, t int, digest []byte) ([]byte, error) {
	v, err := digest_to_error_vector(n, t, digest)
	if err != nil {
		return nil, err
	}
	return v.Bytes(), nil
}

func digest_to_error_vector(n, t int, digest []byte) (*Vector, error) {
	if n < 0 || t < 0 || t > n {
		return nil, ErrInvalidParameter
	}
	s := conv_index_bits(n, t)
	idx := new(big.Int).SetBytes(digest)
	if l := len(digest) << 3; l > s {
		idx.Rsh(idx, uint(l-s))
	}
	return EncodeIndex(n, t, idx)
}
