package mceliece

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// All vectors of length n and weight at most w.
func all_low_weight(n, w int) []*Vector {
	out := []*Vector{NewVector(n)}
	var rec func(start, left int, cur *Vector)
	rec = func(start, left int, cur *Vector) {
		for i := start; i < n; i++ {
			v := cur.Clone()
			v.SetBit(i, true)
			out = append(out, v)
			if left > 1 {
				rec(i+1, left-1, v)
			}
		}
	}
	rec(0, w, NewVector(n))
	return out
}

func TestPrimitiveExhaustive(t *testing.T) {
	params := test_params(t, 4, 2)
	rng := NewSeededReader([]byte("exhaustive"))
	pk, sk, err := KeyGen(params, rng)
	require.NoError(t, err)
	cpk, csk, err := KeyGenCCA2(params, rng)
	require.NoError(t, err)

	errs := all_low_weight(16, 2)
	require.Len(t, errs, 1+16+120)
	for mv := 0; mv < 256; mv++ {
		m, _ := VectorFromBytes(8, []byte{byte(mv)})
		for _, z := range errs {
			c, err := pk.EncryptPrimitive(m, z)
			require.NoError(t, err)
			m2, z2, err := sk.DecryptPrimitive(c)
			require.NoError(t, err, "plain m=%02x z=%s", mv, z)
			require.True(t, m.Equal(m2), "plain m=%02x z=%s", mv, z)
			require.True(t, z.Equal(z2), "plain m=%02x z=%s", mv, z)

			c, err = cpk.EncryptPrimitive(m, z)
			require.NoError(t, err)
			m2, z2, err = csk.DecryptPrimitive(c)
			require.NoError(t, err, "cca2 m=%02x z=%s", mv, z)
			require.True(t, m.Equal(m2), "cca2 m=%02x z=%s", mv, z)
			require.True(t, z.Equal(z2), "cca2 m=%02x z=%s", mv, z)
		}
	}
}

func TestPrimitiveErrors(t *testing.T) {
	params := test_params(t, 8, 8)
	rng := NewSeededReader([]byte("primitive errors"))
	pk, sk, err := KeyGenCCA2(params, rng)
	require.NoError(t, err)

	m := NewVector(pk.K())
	_, err = pk.EncryptPrimitive(m, NewVector(pk.N()-1))
	assert.ErrorIs(t, err, ErrLengthMismatch)
	_, err = pk.EncryptPrimitive(NewVector(pk.K()+1), NewVector(pk.N()))
	assert.ErrorIs(t, err, ErrLengthMismatch)
	z, err := RandomWeightVector(pk.N(), pk.T()+1, rng)
	require.NoError(t, err)
	_, err = pk.EncryptPrimitive(m, z)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, _, err = sk.DecryptPrimitive(NewVector(pk.N() + 8))
	assert.ErrorIs(t, err, ErrInvalidCiphertext)

	// A random word is almost never within distance t of the code.
	c, err := RandomVector(pk.N(), rng)
	require.NoError(t, err)
	_, _, err = sk.DecryptPrimitive(c)
	assert.ErrorIs(t, err, ErrInvalidCiphertext)
}

func TestPlainCipher(t *testing.T) {
	params := test_params(t, 8, 8)
	rng := NewSeededReader([]byte("plain cipher"))
	pk, sk, err := KeyGen(params, rng)
	require.NoError(t, err)
	require.Equal(t, 23, MaxPlaintextSize(pk))

	for _, n := range []int{0, 1, 5, 22, 23} {
		msg := bytes.Repeat([]byte{0xA5}, n)
		ct, err := Encrypt(rng, pk, msg)
		require.NoError(t, err)
		require.Len(t, ct, params.N()/8)
		pt, err := Decrypt(sk, ct)
		require.NoError(t, err, "len=%d", n)
		assert.Equal(t, msg, pt, "len=%d", n)
	}

	// Trailing zero bytes in the message survive the padding.
	msg := []byte{1, 2, 0, 0}
	ct, err := Encrypt(rng, pk, msg)
	require.NoError(t, err)
	pt, err := Decrypt(sk, ct)
	require.NoError(t, err)
	assert.Equal(t, msg, pt)

	_, err = Encrypt(rng, pk, make([]byte, 24))
	assert.ErrorIs(t, err, ErrLengthMismatch)
	_, err = Decrypt(sk, ct[:len(ct)-1])
	assert.ErrorIs(t, err, ErrInvalidCiphertext)
}
