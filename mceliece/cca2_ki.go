package mceliece

import (
	"crypto"
	"crypto/subtle"
	"io"
)

// Kobara-Imai conversion.
//
// The padded message (m || 0x01 || 0x00... || C, C the public constant)
// is masked with the keystream seeded by a random r, giving c1; then
// c2 = H(c1) XOR r. The string c2 || c1 is split into c6 || c5 || c4:
// c4 (k/8 bytes) becomes the message of the McEliece primitive and c5
// (bitlen(C(n,t))-1 bits, rounded down to bytes) is turned into the
// error vector with the combinatorial encoding. The ciphertext is
// c6 || (c4*G + Encode(n, t, c5)). The padding is sized so that c6 is
// never negative; short messages thus still fill c4 and c5 entirely.

// The public constant appended to every Kobara-Imai message.
var ki_public_constant = []byte("a predetermined public constant")

// Byte lengths of c4 and c5 for a code of length n, dimension k and
// error capability t.
func ki_lengths(n, k, t int) (c4Len, c5Len int) {
	return k >> 3, conv_index_bits(n, t) >> 3
}

// EncryptKobaraImai encrypts msg (of any length) with the Kobara-Imai
// conversion. Parameters are as for [EncryptFujisakiOkamoto].
func EncryptKobaraImai(rng io.Reader, pub *CCA2PublicKey,
	id crypto.Hash, msg []byte) ([]byte, error) {

	if _, err := new_digest(id); err != nil {
		return nil, err
	}
	seed, err := read_seed(rng)
	if err != nil {
		return nil, err
	}
	return ki_encrypt_seeded(seed, pub, id, msg)
}

func ki_encrypt_seeded(seed []byte, pub *CCA2PublicKey,
	id crypto.Hash, msg []byte) ([]byte, error) {

	pc := new_shake_prng(seed)
	k := pub.K()
	c2Len := id.Size()
	c4Len, c5Len := ki_lengths(pub.n, k, pub.t)
	constLen := len(ki_public_constant)

	// m || 0x01 || 0x00... || C
	mLen := c4Len + c5Len - c2Len - constLen
	if mLen < len(msg)+1 {
		mLen = len(msg) + 1
	}
	c1 := make([]byte, mLen+constLen)
	copy(c1, msg)
	c1[len(msg)] = 0x01
	copy(c1[mLen:], ki_public_constant)

	r := make([]byte, c2Len)
	pc.Read(r)
	xor_keystream(r, c1)
	c2, err := digest_concat(id, c1)
	if err != nil {
		return nil, err
	}
	for i := range c2 {
		c2[i] ^= r[i]
	}

	c2c1 := append(c2, c1...)
	c6Len := len(c2c1) - c4Len - c5Len
	c5 := c2c1[c6Len : c6Len+c5Len]
	c4 := c2c1[c6Len+c5Len:]

	z, err := EncodeCombination(pub.n, pub.t, c5)
	if err != nil {
		return nil, err
	}
	enc, err := pub.EncryptPrimitive(bits_to_vector(k, c4), z)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, c6Len+((pub.n+7)>>3))
	out = append(out, c2c1[:c6Len]...)
	return append(out, enc.Bytes()...), nil
}

// DecryptKobaraImai decrypts a ciphertext produced by
// [EncryptKobaraImai]. Any failure yields ErrInvalidCiphertext.
func DecryptKobaraImai(priv *CCA2PrivateKey,
	id crypto.Hash, ct []byte) ([]byte, error) {

	if _, err := new_digest(id); err != nil {
		return nil, err
	}
	c2Len := id.Size()
	c4Len, c5Len := ki_lengths(priv.n, priv.k, priv.t)
	constLen := len(ki_public_constant)
	encLen := (priv.n + 7) >> 3
	if len(ct) < encLen {
		return nil, ErrInvalidCiphertext
	}
	c6Len := len(ct) - encLen
	if c6Len+c5Len+c4Len < c2Len+constLen+1 {
		return nil, ErrInvalidCiphertext
	}
	enc, err := VectorFromBytes(priv.n, ct[c6Len:])
	if err != nil {
		return nil, ErrInvalidCiphertext
	}

	c4v, z, ok := priv.decrypt_primitive(enc)

	// c4 only spans k/8 full bytes; the remaining bits of the decoded
	// message must be zero.
	c4b := c4v.Bytes()
	var extra byte
	for _, b := range c4b[c4Len:] {
		extra |= b
	}
	ok &= subtle.ConstantTimeByteEq(extra, 0)

	// c5 is the index of z, left-padded to c5Len bytes. A wrong weight
	// or an oversized index is a failure.
	c5 := make([]byte, c5Len)
	c5b, err := DecodeCombination(priv.n, priv.t, z)
	if err != nil || len(c5b) > c5Len {
		ok = 0
	} else {
		copy(c5[c5Len-len(c5b):], c5b)
	}

	c2c1 := make([]byte, 0, c6Len+c5Len+c4Len)
	c2c1 = append(c2c1, ct[:c6Len]...)
	c2c1 = append(c2c1, c5...)
	c2c1 = append(c2c1, c4b[:c4Len]...)
	c2 := c2c1[:c2Len]
	c1 := c2c1[c2Len:]

	r, _ := digest_concat(id, c1)
	for i := range r {
		r[i] ^= c2[i]
	}
	mc := make([]byte, len(c1))
	copy(mc, c1)
	xor_keystream(r, mc)

	mLen := len(mc) - constLen
	ok &= subtle.ConstantTimeCompare(mc[mLen:], ki_public_constant)
	idx, last := last_nonzero(mc[:mLen])
	ok &= subtle.ConstantTimeByteEq(last, 0x01)
	if ok != 1 {
		return nil, ErrInvalidCiphertext
	}
	return mc[:idx], nil
}

// Find the last non-zero byte of buf without branching on its contents.
// Returned values are its index (-1 if none) and its value.
func last_nonzero(buf []byte) (int, byte) {
	idx := -1
	last := 0
	for i, b := range buf {
		nz := 1 - subtle.ConstantTimeByteEq(b, 0)
		idx = subtle.ConstantTimeSelect(nz, i, idx)
		last = subtle.ConstantTimeSelect(nz, int(b), last)
	}
	return idx, byte(last)
}
