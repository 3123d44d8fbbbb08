package mceliece

import (
	"crypto/subtle"
	"io"
)

// EncryptPrimitive computes c = m*G + z, with m of length k and z of
// length n and weight at most t. The codeword is (m*G) || m since the
// public matrix is in left compact form.
func (pk *CCA2PublicKey) EncryptPrimitive(m, z *Vector) (*Vector, error) {
	if m.n != pk.g.rows || z.n != pk.n {
		return nil, ErrLengthMismatch
	}
	if z.Weight() > pk.t {
		return nil, ErrInvalidParameter
	}
	return pk.g.left_multiply_left_compact(m).add(z), nil
}

// EncryptPrimitive computes c = m*G + z, with m of length k and z of
// length n and weight at most t.
func (pk *PublicKey) EncryptPrimitive(m, z *Vector) (*Vector, error) {
	if m.n != pk.g.rows || z.n != pk.n {
		return nil, ErrLengthMismatch
	}
	if z.Weight() > pk.t {
		return nil, ErrInvalidParameter
	}
	c, _ := pk.g.LeftMultiply(m)
	return c.add(z), nil
}

// DecryptPrimitive recovers (m, z) from c = m*G + z. ErrInvalidCiphertext
// is returned if c is not within distance t of a codeword.
func (sk *CCA2PrivateKey) DecryptPrimitive(c *Vector) (m, z *Vector, err error) {
	if c.n != sk.n {
		return nil, nil, ErrInvalidCiphertext
	}
	m, z, ok := sk.decrypt_primitive(c)
	if ok != 1 {
		return nil, nil, ErrInvalidCiphertext
	}
	return m, z, nil
}

// DecryptPrimitive recovers (m, z) from c = m*G + z. ErrInvalidCiphertext
// is returned if c is not within distance t of a codeword.
func (sk *PrivateKey) DecryptPrimitive(c *Vector) (m, z *Vector, err error) {
	if c.n != sk.n {
		return nil, nil, ErrInvalidCiphertext
	}
	m, z, ok := sk.decrypt_primitive(c)
	if ok != 1 {
		return nil, nil, ErrInvalidCiphertext
	}
	return m, z, nil
}

// Decode an error pattern from a word given in the canonical coordinates
// of the Goppa code. On failure the zero vector is returned with ok = 0,
// so that callers can carry on and fold the flag into later checks.
func decode_word(h *Matrix, f *Field, goppa []uint32, sq [][]uint32, x *Vector) (*Vector, int) {
	syn := syndrome(h, x)
	e, err := syndrome_decode(syn, f, goppa, sq)
	if err != nil {
		return NewVector(x.n), 0
	}
	ok := subtle.ConstantTimeCompare(syndrome(h, e).Bytes(), syn.Bytes())
	if ok != 1 {
		return NewVector(x.n), 0
	}
	return e, 1
}

// Inner decryption for the CCA2 keys. The received word is brought back
// to canonical coordinates with P^-1, corrected, then moved to
// systematic coordinates with P where the message is the last k bits.
func (sk *CCA2PrivateKey) decrypt_primitive(c *Vector) (m, z *Vector, ok int) {
	x := c.permute(sk.pinv)
	e, ok := decode_word(sk.h, sk.field, sk.goppa, sk.qinv, x)
	y := x.add(e).permute(sk.p)
	return y.extract(sk.n-sk.k, sk.k), e.permute(sk.p), ok
}

// Inner decryption for the plain keys. P2 is undone first, then P1;
// the corrected word yields m*S in its last k bits.
func (sk *PrivateKey) decrypt_primitive(c *Vector) (m, z *Vector, ok int) {
	x := c.permute(sk.p2inv).permute(sk.p1inv)
	e, ok := decode_word(sk.h, sk.field, sk.goppa, sk.qinv, x)
	ms := x.add(e).permute(sk.p1).extract(sk.n-sk.k, sk.k)
	m, _ = sk.sinv.LeftMultiply(ms)
	return m, e.permute(sk.p1).permute(sk.p2), ok
}

// Build a vector of length n from the first bits of src. Missing bytes
// are taken as zero and bits beyond n are ignored.
func bits_to_vector(n int, src []byte) *Vector {
	buf := make([]byte, (n+7)>>3)
	copy(buf, src)
	if (n & 7) != 0 {
		buf[len(buf)-1] &= byte((1 << uint(n&7)) - 1)
	}
	v, _ := VectorFromBytes(n, buf)
	return v
}

// MaxPlaintextSize returns the largest message length (in bytes) that
// [Encrypt] accepts with the provided key: the message and its 0x01
// terminator must fit in k bits.
func MaxPlaintextSize(pub *PublicKey) int {
	return (pub.K() - 1) >> 3
}

// Encrypt a short message with the plain McEliece cryptosystem. The
// message is followed by a 0x01 byte and zero bits up to k bits, then
// encrypted with a random error vector of weight t.
//
// This is not secure against chosen-ciphertext attacks and leaks
// relations between messages; the CCA2 conversions should be used for
// anything else than tests and interoperability.
func Encrypt(rng io.Reader, pub *PublicKey, msg []byte) ([]byte, error) {
	if len(msg) > MaxPlaintextSize(pub) {
		return nil, ErrLengthMismatch
	}
	seed, err := read_seed(rng)
	if err != nil {
		return nil, err
	}
	return encrypt_seeded(seed, pub, msg)
}

func encrypt_seeded(seed []byte, pub *PublicKey, msg []byte) ([]byte, error) {
	pc := new_shake_prng(seed)
	padded := make([]byte, len(msg)+1)
	copy(padded, msg)
	padded[len(msg)] = 0x01
	m := bits_to_vector(pub.K(), padded)
	z := random_weight_vector(pub.n, pub.t, pc)
	c, err := pub.EncryptPrimitive(m, z)
	if err != nil {
		return nil, err
	}
	return c.Bytes(), nil
}

// Decrypt a ciphertext produced by [Encrypt].
func Decrypt(priv *PrivateKey, ct []byte) ([]byte, error) {
	c, err := VectorFromBytes(priv.n, ct)
	if err != nil {
		return nil, ErrInvalidCiphertext
	}
	m, _, err := priv.DecryptPrimitive(c)
	if err != nil {
		return nil, err
	}
	buf := m.Bytes()
	i := len(buf) - 1
	for i >= 0 && buf[i] == 0 {
		i--
	}
	if i < 0 || buf[i] != 0x01 {
		return nil, ErrInvalidCiphertext
	}
	return buf[:i], nil
}
